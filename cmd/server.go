package cmd

import (
	"yebox/server"

	"github.com/spf13/cobra"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the Ye-box HTTP server",
	Long:  `Start the Ye-box HTTP server, serving the album API and the web UI.`,
	Run: func(cmd *cobra.Command, args []string) {
		server.Start()
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
