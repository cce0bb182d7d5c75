package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jpp0ca/yt-spotify-migrator/internal/adapters"
	"github.com/jpp0ca/yt-spotify-migrator/internal/app"
	"github.com/jpp0ca/yt-spotify-migrator/internal/domain"
	"github.com/jpp0ca/yt-spotify-migrator/internal/ports"
)

// Handler holds the HTTP handlers for the migration API.
type Handler struct {
	service ports.MigrationService
}

// NewHandler creates a new HTTP handler with the given migration service.
func NewHandler(service ports.MigrationService) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes sets up all API routes on the given Gin engine.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.Health)

	api := r.Group("/api/v1")
	{
		api.GET("/playlists", h.ListPlaylists)
		api.POST("/migrate", h.MigratePlaylist)
		api.POST("/parse", h.ParseTitle)
	}
}

// Health returns a simple health check response.
//
//	@Summary		Health check
//	@Description	Returns the health status of the API
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	map[string]string
//	@Router			/health [get]
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// ListPlaylists returns playlists for the given provider and authenticated user.
//
//	@Summary		List user playlists
//	@Description	Returns all playlists for the authenticated user on the specified target catalog.
//	@Description	Supported providers: spotify.
//	@Tags			playlists
//	@Produce		json
//	@Param			provider	query		string	true	"Target catalog"	Enums(spotify)
//	@Param			Authorization	header	string	true	"Bearer token for the streaming provider"
//	@Success		200	{array}		domain.Playlist
//	@Failure		400	{object}	ErrorResponse
//	@Failure		401	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/api/v1/playlists [get]
func (h *Handler) ListPlaylists(c *gin.Context) {
	provider := c.Query("provider")
	if provider == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "bad_request",
			Message: "query parameter 'provider' is required",
		})
		return
	}

	token := extractToken(c)
	if token == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error:   "unauthorized",
			Message: "Authorization header with Bearer token is required",
		})
		return
	}

	playlists, err := h.service.ListPlaylists(c.Request.Context(), provider, token)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, playlists)
}

// MigratePlaylist runs a playlist migration from a source catalog to a target catalog.
//
//	@Summary		Migrate playlist
//	@Description	Fetches every video of the source playlist, derives an artist and song from each title,
//	@Description	searches the target catalog and fuzzy-matches the results, then adds the matches to a
//	@Description	playlist of the requested name (reused when the user already owns one). Searches are paced,
//	@Description	so large playlists take several seconds per item.
//	@Tags			migration
//	@Accept			json
//	@Produce		json
//	@Param			request	body		domain.MigrationRequest	true	"Migration request with source/dest providers, tokens, and playlist ID"
//	@Success		200		{object}	domain.MigrationResult
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		502		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/api/v1/migrate [post]
func (h *Handler) MigratePlaylist(c *gin.Context) {
	var req domain.MigrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "bad_request",
			Message: "invalid request body: " + err.Error(),
		})
		return
	}

	result, err := h.service.MigratePlaylist(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ParseRequest is the body of a title parse request.
type ParseRequest struct {
	Title   string `json:"title" binding:"required"`
	Channel string `json:"channel"`
}

// ParseTitle shows the search query a video title would produce.
//
//	@Summary		Parse video title
//	@Description	Strips promotional markers from a video title and splits it into artist and song,
//	@Description	falling back to the channel name for the artist.
//	@Tags			matching
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ParseRequest	true	"Video title and optional channel name"
//	@Success		200		{object}	domain.ParsedQuery
//	@Failure		400		{object}	ErrorResponse
//	@Router			/api/v1/parse [post]
func (h *Handler) ParseTitle(c *gin.Context) {
	var req ParseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "bad_request",
			Message: "invalid request body: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, h.service.ParseTitle(req.Title, req.Channel))
}

// ErrorResponse is the standard error response format.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// errorKinds maps service sentinel errors to a status and an error code.
// Anything unlisted is a 500.
var errorKinds = []struct {
	target error
	status int
	code   string
}{
	{adapters.ErrUnknownProvider, http.StatusBadRequest, "unknown_provider"},
	{app.ErrEmptyPlaylist, http.StatusNotFound, "playlist_empty"},
	{app.ErrPlaylistUnavailable, http.StatusBadGateway, "playlist_unavailable"},
}

func writeError(c *gin.Context, err error) {
	for _, k := range errorKinds {
		if errors.Is(err, k.target) {
			c.JSON(k.status, ErrorResponse{Error: k.code, Message: err.Error()})
			return
		}
	}
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   "internal_error",
		Message: err.Error(),
	})
}

// extractToken retrieves the Bearer token from the Authorization header.
func extractToken(c *gin.Context) string {
	auth := c.GetHeader("Authorization")
	if len(auth) > 7 && auth[:7] == "Bearer " {
		return auth[7:]
	}
	return auth
}
