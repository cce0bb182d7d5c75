package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jpp0ca/yt-spotify-migrator/internal/app"
	"github.com/jpp0ca/yt-spotify-migrator/internal/domain"
	"github.com/jpp0ca/yt-spotify-migrator/internal/matching"
)

func newParseCmd() *cobra.Command {
	var channel string

	cmd := &cobra.Command{
		Use:   "parse TITLE",
		Short: "Show how a video title would be searched on Spotify",
		Example: `  migrate parse "Queen - Bohemian Rhapsody (Official Video Remastered)"
  migrate parse "Lemon (Official Video)" --channel "Kenshi Yonezu VEVO"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q := matching.NewSplitter(nil).Parse(args[0], channel)
			fmt.Fprintln(cmd.OutOrStdout(), renderKeyValues("Parsed title", parseRows(q)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&channel, "channel", "c", "", "Uploader channel name")

	return cmd
}

func parseRows(q domain.ParsedQuery) [][2]string {
	rows := [][2]string{
		{"Normalized", q.NormalizedTitle},
		{"Artist", orDash(q.Artist)},
		{"Song", orDash(q.Song)},
	}
	if !q.Searchable() {
		return append(rows, [2]string{"Query", "(skipped)"})
	}
	return append(rows,
		[2]string{"Query", app.TargetedQuery(q)},
		[2]string{"Fallback", app.BroadQuery(q)},
	)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
