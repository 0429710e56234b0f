package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"yebox/client"
	"yebox/config"
	"yebox/core/player"
	"yebox/logger"

	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Browse and play the library from the terminal",
	Long: `Connect to a Ye-box server, list its albums and play tracks through
ffplay. Commands: play <album> <track>, p (pause/resume), n (next),
b (previous), ls (re-fetch catalog), q (quit).`,
	Run: func(cmd *cobra.Command, args []string) {
		runPlay()
	},
}

func init() {
	rootCmd.AddCommand(playCmd)
}

func runPlay() {
	cfg := config.Load()
	logger.InitLogger(logger.Config{Level: logger.LogLevel(cfg.LogLevel)})

	catalog := client.NewCatalogClient(cfg.ServerURL)
	audio := client.NewFFplayElement(cfg.FFplayPath)
	defer audio.Stop()

	controller := player.NewController(audio, client.NewTerminalDisplay(os.Stdout), cfg.ServerURL)

	// End-of-track events arrive from the ffplay watcher goroutine; funnel
	// them into the command loop so controller transitions stay on one
	// goroutine, the way the browser's event loop serializes them.
	ended := make(chan struct{}, 1)
	audio.SetOnEnded(func() {
		select {
		case ended <- struct{}{}:
		default:
		}
	})

	lines := make(chan string)
	go func() {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		close(lines)
	}()

	refresh := func() {
		if err := catalog.Refresh(context.Background()); err != nil {
			// A failed fetch leaves the listing empty, it is not fatal.
			logger.Error("Failed to fetch catalog", logger.ErrorField(err))
		}
		controller.SetCatalog(catalog.Albums())
		catalog.Render(os.Stdout)
	}
	refresh()

	albumID := func(number string) (string, bool) {
		n, err := strconv.Atoi(number)
		if err != nil || n < 1 || n > len(catalog.Albums()) {
			return "", false
		}
		return catalog.Albums()[n-1].ID, true
	}

	fmt.Print("> ")
	for {
		select {
		case <-ended:
			controller.OnTrackEnded()
		case line, ok := <-lines:
			if !ok {
				return
			}
			fields := strings.Fields(line)
			if len(fields) == 0 {
				fmt.Print("> ")
				continue
			}

			switch fields[0] {
			case "play":
				if len(fields) != 3 {
					fmt.Println("usage: play <album> <track>")
					break
				}
				id, ok := albumID(fields[1])
				if !ok {
					fmt.Println("no such album")
					break
				}
				track, err := strconv.Atoi(fields[2])
				if err != nil || track < 1 {
					fmt.Println("no such track")
					break
				}
				controller.PlayTrack(id, track-1)
			case "p":
				controller.TogglePlayPause()
			case "n":
				controller.NextTrack()
			case "b":
				controller.PreviousTrack()
			case "ls":
				refresh()
			case "q":
				return
			default:
				fmt.Println("commands: play <album> <track>, p, n, b, ls, q")
			}
			fmt.Print("> ")
		}
	}
}
