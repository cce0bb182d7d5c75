package main

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/jpp0ca/yt-spotify-migrator/internal/adapters"
	handler "github.com/jpp0ca/yt-spotify-migrator/internal/adapters/http"
	"github.com/jpp0ca/yt-spotify-migrator/internal/adapters/spotify"
	"github.com/jpp0ca/yt-spotify-migrator/internal/adapters/youtube"
	"github.com/jpp0ca/yt-spotify-migrator/internal/app"
	"github.com/jpp0ca/yt-spotify-migrator/internal/config"
	"github.com/jpp0ca/yt-spotify-migrator/internal/logging"
	"github.com/jpp0ca/yt-spotify-migrator/internal/ports"

	_ "github.com/jpp0ca/yt-spotify-migrator/docs"
)

// @title			yt-spotify-migrator API
// @version		1.0
// @description	API for migrating YouTube playlists to Spotify.
// @description	Video titles are cleaned, split into artist and song, and fuzzy-matched against Spotify search results.

// @contact.name	yt-spotify-migrator Support
// @license.name	MIT

// @host		localhost:8080
// @BasePath	/

// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
// @description				Bearer token for the target catalog (e.g. "Bearer your_token_here")
func main() {
	cfg := config.Load()

	logger, closeLog, err := logging.New(logging.Options{
		Level:     cfg.LogLevel,
		Format:    cfg.LogFormat,
		ErrorFile: cfg.Path(config.ErrorLogFile),
	})
	if err != nil {
		slog.Error("failed to set up logging", "error", err)
		os.Exit(1)
	}
	defer closeLog()
	slog.SetDefault(logger)

	// Create catalog adapters
	httpClient := &http.Client{Timeout: 30 * time.Second}

	sources := adapters.NewRegistry[ports.SourceCatalog]()
	sources.Register(youtube.NewProvider(httpClient))

	targets := adapters.NewRegistry[ports.TargetCatalog]()
	targets.Register(spotify.NewProvider(httpClient))

	// Create application service
	migrationService := app.NewService(sources, targets, app.Options{
		Threshold:   cfg.MatchThreshold,
		SearchLimit: cfg.SearchLimit,
		BatchSize:   cfg.AddBatchSize,
		SearchDelay: cfg.RequestDelay,
	}, app.WithLogger(logger))

	// Setup HTTP server
	r := gin.Default()
	h := handler.NewHandler(migrationService)
	h.RegisterRoutes(r)

	// Swagger UI
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	addr := ":" + cfg.Port
	logger.Info("starting yt-spotify-migrator API",
		"addr", addr,
		"sources", sources.Available(),
		"targets", targets.Available(),
		"threshold", cfg.MatchThreshold,
	)
	logger.Info("swagger UI available", "url", "http://localhost"+addr+"/swagger/index.html")

	if err := r.Run(addr); err != nil {
		logger.Error("failed to start server", "error", err)
		os.Exit(1)
	}
}
