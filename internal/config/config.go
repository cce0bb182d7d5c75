package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Output file names inside the data directory.
const (
	FetchedFile  = "youtube_songs_fetched.csv"
	MigratedFile = "successfully_migrated.csv"
	NotFoundFile = "not_found_on_spotify.csv"
	ErrorLogFile = "app_errors.log"
	SummaryFile  = "run_summary.yaml"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	Port      string
	LogLevel  string
	LogFormat string
	DataDir   string

	YouTubeAPIKey string

	SpotifyClientID     string
	SpotifyClientSecret string
	SpotifyRedirectURI  string
	SpotifyRefreshToken string
	SpotifyAccessToken  string

	MatchThreshold int
	SearchLimit    int
	AddBatchSize   int
	RequestDelay   time.Duration
}

// Load reads configuration from .env file (if present) and environment variables.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using environment variables")
	}
	return fromEnv()
}

func fromEnv() *Config {
	threshold := getInt("MATCH_THRESHOLD", 85)
	threshold = max(0, min(100, threshold))

	return &Config{
		Port:      getEnv("PORT", "8080"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),
		DataDir:   getEnv("DATA_DIR", "data"),

		YouTubeAPIKey: getEnv("YOUTUBE_API_KEY", ""),

		SpotifyClientID:     getEnv("SPOTIFY_CLIENT_ID", ""),
		SpotifyClientSecret: getEnv("SPOTIFY_CLIENT_SECRET", ""),
		SpotifyRedirectURI:  getEnv("SPOTIFY_REDIRECT_URI", ""),
		SpotifyRefreshToken: getEnv("SPOTIFY_REFRESH_TOKEN", ""),
		SpotifyAccessToken:  getEnv("SPOTIFY_ACCESS_TOKEN", ""),

		MatchThreshold: threshold,
		SearchLimit:    positive(getInt("SEARCH_LIMIT", 10), 10),
		AddBatchSize:   max(1, min(100, getInt("SPOTIFY_ADD_BATCH_SIZE", 100))),
		RequestDelay:   getDuration("REQUEST_DELAY", 2*time.Second),
	}
}

// Validate reports every missing credential in a single error.
func (c *Config) Validate() error {
	var missing []string
	for _, v := range []struct{ key, value string }{
		{"YOUTUBE_API_KEY", c.YouTubeAPIKey},
		{"SPOTIFY_CLIENT_ID", c.SpotifyClientID},
		{"SPOTIFY_CLIENT_SECRET", c.SpotifyClientSecret},
		{"SPOTIFY_REDIRECT_URI", c.SpotifyRedirectURI},
	} {
		if strings.TrimSpace(v.value) == "" {
			missing = append(missing, v.key)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}

// ValidateCLI is Validate plus the user credential the command line needs to
// act on the user's behalf.
func (c *Config) ValidateCLI() error {
	var errs []error
	if err := c.Validate(); err != nil {
		errs = append(errs, err)
	}
	if c.SpotifyRefreshToken == "" && c.SpotifyAccessToken == "" {
		errs = append(errs, errors.New("one of SPOTIFY_REFRESH_TOKEN or SPOTIFY_ACCESS_TOKEN is required"))
	}
	return errors.Join(errs...)
}

// Path returns the location of a file inside the data directory.
func (c *Config) Path(name string) string {
	return filepath.Join(c.DataDir, name)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	n, err := strconv.Atoi(getEnv(key, strconv.Itoa(fallback)))
	if err != nil {
		return fallback
	}
	return n
}

func getDuration(key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(getEnv(key, fallback.String()))
	if err != nil || d < 0 {
		return fallback
	}
	return d
}

func positive(n, fallback int) int {
	if n < 1 {
		return fallback
	}
	return n
}
