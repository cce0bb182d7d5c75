package ports

import (
	"context"

	"github.com/jpp0ca/yt-spotify-migrator/internal/domain"
)

// SourceCatalog is the driven port for the catalog a playlist is migrated
// from.
type SourceCatalog interface {
	// GetPlaylistItems returns every playable item of a playlist, handling
	// pagination internally. Unavailable items are dropped.
	GetPlaylistItems(ctx context.Context, token string, playlistID string) ([]domain.SourceItem, error)

	// Name returns the provider identifier (e.g., "youtube").
	Name() string
}

// TargetCatalog is the driven port for the catalog a playlist is migrated
// to.
type TargetCatalog interface {
	// GetPlaylists returns all playlists accessible by the authenticated user.
	GetPlaylists(ctx context.Context, token string) ([]domain.Playlist, error)

	// SearchTracks runs a single search request and returns at most limit
	// candidates in the order the catalog ranked them.
	SearchTracks(ctx context.Context, token string, query string, limit int) ([]domain.CandidateTrack, error)

	// FindOrCreatePlaylist returns the ID of the user's playlist with the
	// given name, creating it when none exists.
	FindOrCreatePlaylist(ctx context.Context, token string, name string, description string) (string, error)

	// AddTracksToPlaylist adds one batch of track URIs to a playlist. Callers
	// are responsible for respecting the per-request limit.
	AddTracksToPlaylist(ctx context.Context, token string, playlistID string, uris []string) error

	// Name returns the provider identifier (e.g., "spotify").
	Name() string
}

// TitleGuesser splits a free-form title into artist and song. It is best
// effort: ok is false when no split could be made.
type TitleGuesser interface {
	GuessArtistTitle(text string) (artist, song string, ok bool)
}

// RunReporter persists the records of a migration run.
type RunReporter interface {
	WriteFetched(items []domain.ParsedItem) error
	WriteResults(result *domain.MigrationResult) error
}

// MigrationService defines the driving port for the core migration use case.
type MigrationService interface {
	// MigratePlaylist resolves every item of the source playlist against the
	// target catalog and fills the target playlist with the matches.
	MigratePlaylist(ctx context.Context, req domain.MigrationRequest) (*domain.MigrationResult, error)

	// ListPlaylists returns playlists from a target provider for the
	// authenticated user.
	ListPlaylists(ctx context.Context, provider string, token string) ([]domain.Playlist, error)

	// ParseTitle derives the search query for a raw title and channel name.
	ParseTitle(title string, channel string) domain.ParsedQuery
}
