package spotify

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/zmb3/spotify/v2"
	"golang.org/x/oauth2"

	"github.com/jpp0ca/yt-spotify-migrator/internal/domain"
)

const (
	defaultBaseURL = "https://api.spotify.com/v1/"
	maxPerPage     = 50
	maxBatch       = 100
	trackURIPrefix = "spotify:track:"
)

// Provider implements ports.TargetCatalog for Spotify using the Web API.
type Provider struct {
	client  *http.Client
	baseURL string
	public  bool
}

// NewProvider creates a new Spotify provider with the given HTTP client.
// If client is nil, http.DefaultClient is used. Playlists it creates are
// public.
func NewProvider(client *http.Client) *Provider {
	if client == nil {
		client = http.DefaultClient
	}
	return &Provider{client: client, baseURL: defaultBaseURL, public: true}
}

func (p *Provider) Name() string {
	return "spotify"
}

// api returns a Web API client that authenticates with the bearer token.
func (p *Provider) api(ctx context.Context, token string) *spotify.Client {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, p.client)
	httpClient := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}))
	return spotify.New(httpClient, spotify.WithBaseURL(p.baseURL), spotify.WithRetry(true))
}

// -- TargetCatalog implementation --------------------------------------------

func (p *Provider) GetPlaylists(ctx context.Context, token string) ([]domain.Playlist, error) {
	client := p.api(ctx, token)

	var playlists []domain.Playlist
	for offset := 0; ; offset += maxPerPage {
		page, err := client.CurrentUsersPlaylists(ctx, spotify.Limit(maxPerPage), spotify.Offset(offset))
		if err != nil {
			return nil, fmt.Errorf("spotify: failed to get playlists: %w", err)
		}

		for _, item := range page.Playlists {
			playlists = append(playlists, domain.Playlist{
				ID:          item.ID.String(),
				Name:        item.Name,
				Description: item.Description,
				OwnerName:   item.Owner.DisplayName,
				TrackCount:  int(item.Tracks.Total),
			})
		}

		if len(page.Playlists) == 0 || offset+maxPerPage >= int(page.Total) {
			break
		}
	}

	return playlists, nil
}

func (p *Provider) SearchTracks(ctx context.Context, token string, query string, limit int) ([]domain.CandidateTrack, error) {
	if limit < 1 {
		limit = 1
	}

	result, err := p.api(ctx, token).Search(ctx, query, spotify.SearchTypeTrack, spotify.Limit(limit))
	if err != nil {
		return nil, fmt.Errorf("spotify: search failed: %w", err)
	}
	if result.Tracks == nil {
		return nil, nil
	}

	candidates := make([]domain.CandidateTrack, 0, len(result.Tracks.Tracks))
	for _, t := range result.Tracks.Tracks {
		candidates = append(candidates, toCandidate(t))
	}
	return candidates, nil
}

// FindOrCreatePlaylist looks for a playlist owned by the current user whose
// name matches exactly. Playlists followed but owned by someone else are
// ignored.
func (p *Provider) FindOrCreatePlaylist(ctx context.Context, token string, name string, description string) (string, error) {
	client := p.api(ctx, token)

	user, err := client.CurrentUser(ctx)
	if err != nil {
		return "", fmt.Errorf("spotify: failed to get current user: %w", err)
	}

	for offset := 0; ; offset += maxPerPage {
		page, err := client.CurrentUsersPlaylists(ctx, spotify.Limit(maxPerPage), spotify.Offset(offset))
		if err != nil {
			return "", fmt.Errorf("spotify: failed to get playlists: %w", err)
		}

		for _, item := range page.Playlists {
			if item.Name == name && item.Owner.ID == user.ID {
				return item.ID.String(), nil
			}
		}

		if len(page.Playlists) == 0 || offset+maxPerPage >= int(page.Total) {
			break
		}
	}

	created, err := client.CreatePlaylistForUser(ctx, user.ID, name, description, p.public, false)
	if err != nil {
		return "", fmt.Errorf("spotify: failed to create playlist: %w", err)
	}
	return created.ID.String(), nil
}

func (p *Provider) AddTracksToPlaylist(ctx context.Context, token string, playlistID string, uris []string) error {
	if len(uris) == 0 {
		return nil
	}
	if len(uris) > maxBatch {
		return fmt.Errorf("spotify: %d tracks exceeds the per-request limit of %d", len(uris), maxBatch)
	}

	ids := make([]spotify.ID, 0, len(uris))
	for _, uri := range uris {
		ids = append(ids, spotify.ID(strings.TrimPrefix(uri, trackURIPrefix)))
	}

	if _, err := p.api(ctx, token).AddTracksToPlaylist(ctx, spotify.ID(playlistID), ids...); err != nil {
		return fmt.Errorf("spotify: failed to add tracks to playlist: %w", err)
	}
	return nil
}

// -- Helpers -----------------------------------------------------------------

func toCandidate(t spotify.FullTrack) domain.CandidateTrack {
	artists := make([]string, 0, len(t.Artists))
	for _, a := range t.Artists {
		artists = append(artists, a.Name)
	}

	uri := string(t.URI)
	if uri == "" && t.ID != "" {
		uri = trackURIPrefix + t.ID.String()
	}

	return domain.CandidateTrack{
		URI:         uri,
		ID:          t.ID.String(),
		Name:        t.Name,
		Artists:     artists,
		Album:       t.Album.Name,
		DurationMS:  int(t.Duration),
		ExternalURL: t.ExternalURLs["spotify"],
	}
}
