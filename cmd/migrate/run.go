package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/jpp0ca/yt-spotify-migrator/internal/adapters"
	"github.com/jpp0ca/yt-spotify-migrator/internal/adapters/spotify"
	"github.com/jpp0ca/yt-spotify-migrator/internal/adapters/youtube"
	"github.com/jpp0ca/yt-spotify-migrator/internal/app"
	"github.com/jpp0ca/yt-spotify-migrator/internal/config"
	"github.com/jpp0ca/yt-spotify-migrator/internal/domain"
	"github.com/jpp0ca/yt-spotify-migrator/internal/logging"
	"github.com/jpp0ca/yt-spotify-migrator/internal/ports"
	"github.com/jpp0ca/yt-spotify-migrator/internal/report"
)

type runOptions struct {
	playlistID  string
	name        string
	description string
	threshold   int
	dataDir     string
}

func newRunCmd() *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Migrate a YouTube playlist to a Spotify playlist",
		Example: `  migrate run --playlist PLxxxxxxxx --name "Road Trip"
  migrate run --playlist PLxxxxxxxx --name "Road Trip" --threshold 90 --data-dir ./out`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if opts.dataDir != "" {
				cfg.DataDir = opts.dataDir
			}
			if cmd.Flags().Changed("threshold") {
				if opts.threshold < 0 || opts.threshold > 100 {
					return fmt.Errorf("--threshold must be between 0 and 100")
				}
				cfg.MatchThreshold = opts.threshold
			}
			if err := cfg.ValidateCLI(); err != nil {
				return err
			}
			return runMigration(cmd.Context(), cmd.OutOrStdout(), cfg, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.playlistID, "playlist", "p", "", "YouTube playlist ID")
	cmd.Flags().StringVarP(&opts.name, "name", "n", "", "Spotify playlist name (reused if you already own one)")
	cmd.Flags().StringVar(&opts.description, "description", "", "Spotify playlist description")
	cmd.Flags().IntVar(&opts.threshold, "threshold", 85, "Minimum match score (0-100)")
	cmd.Flags().StringVar(&opts.dataDir, "data-dir", "", "Directory for reports and the error log (default $DATA_DIR or ./data)")
	_ = cmd.MarkFlagRequired("playlist")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func runMigration(ctx context.Context, out io.Writer, cfg *config.Config, opts runOptions) (err error) {
	errorLog := cfg.Path(config.ErrorLogFile)
	logger, closeLog, err := logging.New(logging.Options{
		Level:     cfg.LogLevel,
		Format:    cfg.LogFormat,
		ErrorFile: errorLog,
	})
	if err != nil {
		return err
	}
	defer closeLog()

	defer func() {
		if r := recover(); r != nil {
			logger.Error("unhandled panic", "panic", r, "stack", string(debug.Stack()))
			fmt.Fprintf(out, "A critical error occurred. Check %s for details.\n", errorLog)
			err = fmt.Errorf("critical error: %v", r)
		}
	}()

	writer, err := report.NewWriter(cfg.DataDir)
	if err != nil {
		logger.Error("failed to open data directory", "dir", cfg.DataDir, "error", err)
		return err
	}
	defer func() {
		if cerr := writer.Close(); cerr != nil {
			logger.Warn("failed to release data directory lock", "error", cerr)
		}
	}()

	token, err := spotifyToken(ctx, cfg)
	if err != nil {
		logger.Error("spotify authentication failed", "error", err)
		return err
	}

	httpClient := &http.Client{Timeout: 30 * time.Second}
	sources := adapters.NewRegistry[ports.SourceCatalog]()
	sources.Register(youtube.NewProvider(httpClient))
	targets := adapters.NewRegistry[ports.TargetCatalog]()
	targets.Register(spotify.NewProvider(httpClient))

	svc := app.NewService(sources, targets, app.Options{
		Threshold:   cfg.MatchThreshold,
		SearchLimit: cfg.SearchLimit,
		BatchSize:   cfg.AddBatchSize,
		SearchDelay: cfg.RequestDelay,
	}, app.WithLogger(logger), app.WithReporter(writer))

	logger.Info("starting migration",
		"playlist", opts.playlistID,
		"name", opts.name,
		"threshold", cfg.MatchThreshold,
		"data_dir", cfg.DataDir,
	)

	result, err := svc.MigratePlaylist(ctx, domain.MigrationRequest{
		SourceProvider:      "youtube",
		SourceToken:         cfg.YouTubeAPIKey,
		DestProvider:        "spotify",
		DestToken:           token,
		PlaylistID:          opts.playlistID,
		PlaylistName:        opts.name,
		PlaylistDescription: opts.description,
		MatchThreshold:      cfg.MatchThreshold,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(out, renderKeyValues("Migration summary", summaryRows(report.Summarize(result, time.Now()))))
	fmt.Fprintf(out, "Reports written to %s\n", cfg.DataDir)

	if result.AddErrors > 0 {
		return fmt.Errorf("%d batch(es) could not be added to the playlist; see %s", result.AddErrors, errorLog)
	}
	return nil
}

func summaryRows(s report.Summary) [][2]string {
	itoa := strconv.Itoa
	return [][2]string{
		{"Run", s.RunID},
		{"Finished", s.FinishedAt.Local().Format(time.DateTime)},
		{"Source playlist", s.SourcePlaylist},
		{"Spotify playlist", fmt.Sprintf("%s (%s)", s.DestPlaylistName, s.DestPlaylistID)},
		{"Items", itoa(s.TotalItems)},
		{"Matched", itoa(s.Matched)},
		{"Not found", itoa(s.NotFound)},
		{"Skipped", itoa(s.Skipped)},
		{"Cache hits", itoa(s.CacheHits)},
		{"Search calls", itoa(s.SearchCalls)},
		{"Added", itoa(s.Added)},
		{"Add errors", itoa(s.AddErrors)},
	}
}

