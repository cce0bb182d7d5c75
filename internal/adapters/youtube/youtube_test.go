package youtube

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const firstPage = `{
  "items": [
    {"snippet": {"title": "Queen - Bohemian Rhapsody (Official Video)", "channelTitle": "Playlist Owner",
      "videoOwnerChannelTitle": "Queen Official", "resourceId": {"kind": "youtube#video", "videoId": "fJ9rUzIMcZQ"}}},
    {"snippet": {"title": "Private video", "channelTitle": "Playlist Owner", "resourceId": {"videoId": "priv"}}},
    {"snippet": {"title": "DELETED VIDEO", "channelTitle": "Playlist Owner", "resourceId": {"videoId": "gone"}}},
    {"snippet": {"title": "No Id Here", "channelTitle": "Playlist Owner"}}
  ],
  "nextPageToken": "page-2"
}`

const secondPage = `{
  "items": [
    {"snippet": {"title": "Rolling in the Deep", "channelTitle": "AdeleVEVO"},
     "contentDetails": {"videoId": "rYEDA3JcQqw"}},
    {"snippet": {"title": "", "channelTitle": "Playlist Owner", "resourceId": {"videoId": "untitled"}}}
  ]
}`

type fakeAPI struct {
	mu         sync.Mutex
	keys       []string
	pageTokens []string
	playlists  []string
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !strings.HasSuffix(r.URL.Path, "/playlistItems") {
		http.NotFound(w, r)
		return
	}

	q := r.URL.Query()
	f.mu.Lock()
	f.keys = append(f.keys, q.Get("key"))
	f.pageTokens = append(f.pageTokens, q.Get("pageToken"))
	f.playlists = append(f.playlists, q.Get("playlistId"))
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if q.Get("playlistId") == "missing" {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"error":{"code":404,"message":"playlistNotFound"}}`)
		return
	}
	if q.Get("pageToken") == "page-2" {
		_, _ = io.WriteString(w, secondPage)
		return
	}
	_, _ = io.WriteString(w, firstPage)
}

func newTestProvider(t *testing.T, api *fakeAPI) *Provider {
	t.Helper()
	server := httptest.NewServer(api)
	t.Cleanup(server.Close)

	p := NewProvider(server.Client())
	p.endpoint = server.URL + "/"
	return p
}

func TestGetPlaylistItems(t *testing.T) {
	api := &fakeAPI{}
	p := newTestProvider(t, api)

	items, err := p.GetPlaylistItems(t.Context(), "api-key", "PL123")

	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "fJ9rUzIMcZQ", items[0].ID)
	assert.Equal(t, "Queen - Bohemian Rhapsody (Official Video)", items[0].Title)
	assert.Equal(t, "Queen Official", items[0].Channel)
	assert.Equal(t, "https://www.youtube.com/watch?v=fJ9rUzIMcZQ", items[0].URL)

	// Falls back to the playlist channel and the content details ID.
	assert.Equal(t, "rYEDA3JcQqw", items[1].ID)
	assert.Equal(t, "AdeleVEVO", items[1].Channel)

	assert.Equal(t, []string{"api-key", "api-key"}, api.keys)
	assert.Equal(t, []string{"", "page-2"}, api.pageTokens)
	assert.Equal(t, []string{"PL123", "PL123"}, api.playlists)
}

func TestGetPlaylistItems_NotFound(t *testing.T) {
	p := newTestProvider(t, &fakeAPI{})

	items, err := p.GetPlaylistItems(t.Context(), "api-key", "missing")

	require.Error(t, err)
	assert.Nil(t, items)
	assert.Contains(t, err.Error(), "youtube: failed to get playlist items")
}

func TestIsUnavailable(t *testing.T) {
	assert.True(t, isUnavailable("Private video"))
	assert.True(t, isUnavailable(" deleted VIDEO "))
	assert.False(t, isUnavailable("Private Video Game OST"))
}
