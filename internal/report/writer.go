// Package report persists the records of a migration run as CSV files plus a
// YAML summary inside the data directory.
package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"gopkg.in/yaml.v3"

	"github.com/jpp0ca/yt-spotify-migrator/internal/config"
	"github.com/jpp0ca/yt-spotify-migrator/internal/domain"
)

const lockFile = ".migrate.lock"

// ErrLocked is returned when another process is writing to the same data
// directory.
var ErrLocked = errors.New("data directory is in use by another run")

var (
	fetchedHeader  = []string{"video_id", "title", "channel", "url", "normalized_title", "artist", "song"}
	migratedHeader = []string{"video_id", "title", "artist", "song", "status", "spotify_uri", "spotify_name", "spotify_artists", "score"}
	notFoundHeader = []string{"video_id", "title", "channel", "url", "artist", "song", "status", "reason"}
)

// Summary is the YAML record of one run.
type Summary struct {
	RunID            string    `yaml:"run_id"`
	FinishedAt       time.Time `yaml:"finished_at"`
	SourcePlaylist   string    `yaml:"source_playlist"`
	DestPlaylistID   string    `yaml:"dest_playlist_id,omitempty"`
	DestPlaylistName string    `yaml:"dest_playlist_name,omitempty"`
	TotalItems       int       `yaml:"total_items"`
	Matched          int       `yaml:"matched"`
	NotFound         int       `yaml:"not_found"`
	Skipped          int       `yaml:"skipped"`
	CacheHits        int       `yaml:"cache_hits"`
	SearchCalls      int       `yaml:"search_calls"`
	Added            int       `yaml:"added"`
	AddErrors        int       `yaml:"add_errors"`
}

// Writer implements ports.RunReporter. It holds an advisory lock on the data
// directory until Close.
type Writer struct {
	dir     string
	lock    *flock.Flock
	now     func() time.Time
	fetched bool
}

// NewWriter creates dir if needed and locks it.
func NewWriter(dir string) (*Writer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure data directory: %w", err)
	}

	lock := flock.New(filepath.Join(dir, lockFile))
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLocked, dir)
	}

	return &Writer{dir: dir, lock: lock, now: time.Now}, nil
}

// Close releases the data directory lock.
func (w *Writer) Close() error {
	return w.lock.Unlock()
}

// Path returns the location of a report file.
func (w *Writer) Path(name string) string {
	return filepath.Join(w.dir, name)
}

func (w *Writer) WriteFetched(items []domain.ParsedItem) error {
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		rows = append(rows, []string{
			it.Item.ID,
			it.Item.Title,
			it.Item.Channel,
			it.Item.URL,
			it.Query.NormalizedTitle,
			it.Query.Artist,
			it.Query.Song,
		})
	}
	if err := writeCSV(w.Path(config.FetchedFile), fetchedHeader, rows); err != nil {
		return err
	}
	w.fetched = true
	return nil
}

// WriteResults writes the migrated and not-found CSVs and the YAML summary.
// A run that aborted early still leaves all three CSVs behind, with headers
// only.
func (w *Writer) WriteResults(result *domain.MigrationResult) error {
	if result == nil {
		result = &domain.MigrationResult{}
	}
	if !w.fetched {
		if err := w.WriteFetched(nil); err != nil {
			return err
		}
	}

	var migrated, notFound [][]string
	for _, tr := range result.Matched() {
		row := []string{tr.Item.ID, tr.Item.Title, tr.Query.Artist, tr.Query.Song, string(tr.Status), "", "", "", ""}
		if tr.Track != nil {
			row[5] = tr.Track.URI
			row[6] = tr.Track.Name
			row[7] = strings.Join(tr.Track.Artists, ", ")
		}
		if tr.Score != nil {
			row[8] = strconv.Itoa(*tr.Score)
		}
		migrated = append(migrated, row)
	}
	for _, tr := range result.Unmatched() {
		notFound = append(notFound, []string{
			tr.Item.ID, tr.Item.Title, tr.Item.Channel, tr.Item.URL,
			tr.Query.Artist, tr.Query.Song, string(tr.Status), tr.Message,
		})
	}

	return errors.Join(
		writeCSV(w.Path(config.MigratedFile), migratedHeader, migrated),
		writeCSV(w.Path(config.NotFoundFile), notFoundHeader, notFound),
		w.writeSummary(result),
	)
}

// Summarize builds the summary of a finished run.
func Summarize(result *domain.MigrationResult, finishedAt time.Time) Summary {
	return Summary{
		RunID:            result.RunID,
		FinishedAt:       finishedAt.UTC(),
		SourcePlaylist:   result.SourcePlaylist,
		DestPlaylistID:   result.DestPlaylistID,
		DestPlaylistName: result.DestPlaylistName,
		TotalItems:       result.TotalItems,
		Matched:          result.MatchedTracks,
		NotFound:         result.NotFoundTracks,
		Skipped:          result.SkippedTracks,
		CacheHits:        result.CacheHits,
		SearchCalls:      result.SearchCalls,
		Added:            result.AddedTracks,
		AddErrors:        result.AddErrors,
	}
}

func (w *Writer) writeSummary(result *domain.MigrationResult) error {
	s := Summarize(result, w.now())

	data, err := yaml.Marshal(&s)
	if err != nil {
		return fmt.Errorf("marshal summary: %w", err)
	}
	if err := os.WriteFile(w.Path(config.SummaryFile), data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", config.SummaryFile, err)
	}
	return nil
}

// ReadSummary loads a summary written by WriteResults.
func ReadSummary(path string) (*Summary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var s Summary
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse summary: %w", err)
	}
	return &s, nil
}

func writeCSV(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", filepath.Base(path), err)
	}

	cw := csv.NewWriter(f)
	if err := cw.Write(header); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	if err := cw.WriteAll(rows); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return f.Close()
}
