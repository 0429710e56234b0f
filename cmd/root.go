package cmd

import (
	"fmt"
	"os"

	"yebox/server"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "yebox",
	Short: "Ye-box is a minimal self-hosted music library.",
	Run: func(cmd *cobra.Command, args []string) {
		// Running the bare binary starts the server, same as "yebox server".
		server.Start()
	},
}

// Execute executes the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
