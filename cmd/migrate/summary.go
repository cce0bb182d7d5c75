package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/jpp0ca/yt-spotify-migrator/internal/config"
	"github.com/jpp0ca/yt-spotify-migrator/internal/report"
)

func newSummaryCmd() *cobra.Command {
	var dataDir string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show the summary of the last run",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if dataDir == "" {
				dataDir = config.Load().DataDir
			}
			path := (&config.Config{DataDir: dataDir}).Path(config.SummaryFile)

			s, err := report.ReadSummary(path)
			if errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("no run summary found in %s", dataDir)
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderKeyValues("Last run", summaryRows(*s)))
			return nil
		},
	}

	cmd.Flags().StringVar(&dataDir, "data-dir", "", "Directory holding run reports (default $DATA_DIR or ./data)")

	return cmd
}
