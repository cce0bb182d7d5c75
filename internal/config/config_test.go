package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allKeys = []string{
	"PORT", "LOG_LEVEL", "LOG_FORMAT", "DATA_DIR", "YOUTUBE_API_KEY",
	"SPOTIFY_CLIENT_ID", "SPOTIFY_CLIENT_SECRET", "SPOTIFY_REDIRECT_URI",
	"SPOTIFY_REFRESH_TOKEN", "SPOTIFY_ACCESS_TOKEN",
	"MATCH_THRESHOLD", "SEARCH_LIMIT", "SPOTIFY_ADD_BATCH_SIZE", "REQUEST_DELAY",
}

// clearEnv makes every key look unset for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range allKeys {
		t.Setenv(k, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := fromEnv()

	assert.Equal(t, 85, cfg.MatchThreshold)
	assert.Equal(t, 10, cfg.SearchLimit)
	assert.Equal(t, 100, cfg.AddBatchSize)
	assert.Equal(t, 2*time.Second, cfg.RequestDelay)
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("DATA_DIR", "/tmp/out")
	t.Setenv("MATCH_THRESHOLD", "90")
	t.Setenv("SEARCH_LIMIT", "20")
	t.Setenv("SPOTIFY_ADD_BATCH_SIZE", "50")
	t.Setenv("REQUEST_DELAY", "500ms")

	cfg := fromEnv()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "/tmp/out", cfg.DataDir)
	assert.Equal(t, 90, cfg.MatchThreshold)
	assert.Equal(t, 20, cfg.SearchLimit)
	assert.Equal(t, 50, cfg.AddBatchSize)
	assert.Equal(t, 500*time.Millisecond, cfg.RequestDelay)
	assert.Equal(t, filepath.Join("/tmp/out", FetchedFile), cfg.Path(FetchedFile))
}

func TestFromEnv_ClampsAndFallsBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("MATCH_THRESHOLD", "150")
	t.Setenv("SEARCH_LIMIT", "zero")
	t.Setenv("SPOTIFY_ADD_BATCH_SIZE", "500")
	t.Setenv("REQUEST_DELAY", "-1s")

	cfg := fromEnv()

	assert.Equal(t, 100, cfg.MatchThreshold)
	assert.Equal(t, 10, cfg.SearchLimit)
	assert.Equal(t, 100, cfg.AddBatchSize)
	assert.Equal(t, 2*time.Second, cfg.RequestDelay)
}

func TestValidate_ListsAllMissing(t *testing.T) {
	cfg := &Config{SpotifyClientID: "id"}

	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "YOUTUBE_API_KEY")
	assert.Contains(t, err.Error(), "SPOTIFY_CLIENT_SECRET")
	assert.Contains(t, err.Error(), "SPOTIFY_REDIRECT_URI")
	assert.NotContains(t, err.Error(), "SPOTIFY_CLIENT_ID")
}

func TestValidateCLI(t *testing.T) {
	cfg := &Config{
		YouTubeAPIKey:       "yt",
		SpotifyClientID:     "id",
		SpotifyClientSecret: "secret",
		SpotifyRedirectURI:  "http://localhost:8888/callback",
	}
	require.NoError(t, cfg.Validate())

	err := cfg.ValidateCLI()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SPOTIFY_REFRESH_TOKEN")

	cfg.SpotifyRefreshToken = "refresh"
	assert.NoError(t, cfg.ValidateCLI())
}
