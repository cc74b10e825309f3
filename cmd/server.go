package cmd

import (
	"github.com/YutoSekiguchi/Lyricium/server"

	"github.com/spf13/cobra"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the Lyricium HTTP server",
	Long:  `Start the HTTP server serving the Lyricium API, audio uploads and static files.`,
	Run: func(cmd *cobra.Command, args []string) {
		server.Start()
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
