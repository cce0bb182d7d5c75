package youtube

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/api/googleapi/transport"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"github.com/jpp0ca/yt-spotify-migrator/internal/domain"
)

const (
	maxResults = 50
	watchURL   = "https://www.youtube.com/watch?v="
)

// Titles YouTube substitutes for videos that can no longer be played.
var unavailableTitles = []string{"private video", "deleted video"}

// Provider implements ports.SourceCatalog for YouTube using the Data API v3.
// The token passed to each call is an API key.
type Provider struct {
	client   *http.Client
	endpoint string
}

// NewProvider creates a new YouTube provider with the given HTTP client.
// If client is nil, http.DefaultClient is used.
func NewProvider(client *http.Client) *Provider {
	if client == nil {
		client = http.DefaultClient
	}
	return &Provider{client: client}
}

func (p *Provider) Name() string {
	return "youtube"
}

func (p *Provider) service(ctx context.Context, apiKey string) (*youtube.Service, error) {
	base := p.client.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	opts := []option.ClientOption{
		option.WithHTTPClient(&http.Client{
			Transport: &transport.APIKey{Key: apiKey, Transport: base},
			Timeout:   p.client.Timeout,
		}),
	}
	if p.endpoint != "" {
		opts = append(opts, option.WithEndpoint(p.endpoint))
	}
	return youtube.NewService(ctx, opts...)
}

// GetPlaylistItems pages through playlistItems.list and returns the videos in
// playlist order. Private and deleted videos and items without an ID or
// title are skipped.
func (p *Provider) GetPlaylistItems(ctx context.Context, token string, playlistID string) ([]domain.SourceItem, error) {
	svc, err := p.service(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("youtube: failed to create client: %w", err)
	}

	var items []domain.SourceItem
	call := svc.PlaylistItems.List([]string{"snippet", "contentDetails"}).
		PlaylistId(playlistID).
		MaxResults(maxResults)

	err = call.Pages(ctx, func(resp *youtube.PlaylistItemListResponse) error {
		for _, it := range resp.Items {
			if item, ok := toSourceItem(it); ok {
				items = append(items, item)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("youtube: failed to get playlist items: %w", err)
	}

	return items, nil
}

// -- Helpers -----------------------------------------------------------------

func toSourceItem(it *youtube.PlaylistItem) (domain.SourceItem, bool) {
	if it == nil || it.Snippet == nil {
		return domain.SourceItem{}, false
	}
	s := it.Snippet

	videoID := ""
	if s.ResourceId != nil {
		videoID = s.ResourceId.VideoId
	}
	if videoID == "" && it.ContentDetails != nil {
		videoID = it.ContentDetails.VideoId
	}
	if videoID == "" || s.Title == "" || isUnavailable(s.Title) {
		return domain.SourceItem{}, false
	}

	channel := s.VideoOwnerChannelTitle
	if channel == "" {
		channel = s.ChannelTitle
	}

	return domain.SourceItem{
		ID:      videoID,
		Title:   s.Title,
		Channel: channel,
		URL:     watchURL + videoID,
	}, true
}

func isUnavailable(title string) bool {
	t := strings.ToLower(strings.TrimSpace(title))
	for _, u := range unavailableTitles {
		if t == u {
			return true
		}
	}
	return false
}
