package main

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrate YouTube playlists to Spotify",
		Long: `migrate copies a YouTube playlist to Spotify.

Video titles are stripped of promotional markers, split into artist and song,
and fuzzy-matched against Spotify search results. Every run writes CSV reports
and a YAML summary to the data directory.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
	}

	cmd.AddCommand(newRunCmd())
	cmd.AddCommand(newParseCmd())
	cmd.AddCommand(newSummaryCmd())

	return cmd
}
