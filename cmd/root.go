package cmd

import (
	"fmt"
	"os"

	"github.com/YutoSekiguchi/Lyricium/server"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lyricium",
	Short: "Lyricium is the backend for the Lyricium song app.",
	Run: func(cmd *cobra.Command, args []string) {
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
