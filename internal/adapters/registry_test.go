package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpp0ca/yt-spotify-migrator/internal/domain"
	"github.com/jpp0ca/yt-spotify-migrator/internal/ports"
)

// -- Minimal stubs for registry tests ----------------------------------------

type stubSource struct {
	name string
}

func (s *stubSource) Name() string { return s.name }
func (s *stubSource) GetPlaylistItems(_ context.Context, _ string, _ string) ([]domain.SourceItem, error) {
	return nil, nil
}

type stubTarget struct {
	name string
}

func (s *stubTarget) Name() string { return s.name }
func (s *stubTarget) GetPlaylists(_ context.Context, _ string) ([]domain.Playlist, error) {
	return nil, nil
}
func (s *stubTarget) SearchTracks(_ context.Context, _ string, _ string, _ int) ([]domain.CandidateTrack, error) {
	return nil, nil
}
func (s *stubTarget) FindOrCreatePlaylist(_ context.Context, _ string, _ string, _ string) (string, error) {
	return "", nil
}
func (s *stubTarget) AddTracksToPlaylist(_ context.Context, _ string, _ string, _ []string) error {
	return nil
}

// -- Tests -------------------------------------------------------------------

func TestRegistry_RegisterAndGet(t *testing.T) {
	registry := NewRegistry[ports.TargetCatalog]()
	registry.Register(&stubTarget{name: "spotify"})
	registry.Register(&stubTarget{name: "deezer"})

	p, err := registry.Get("spotify")
	require.NoError(t, err)
	assert.Equal(t, "spotify", p.Name())

	p, err = registry.Get("deezer")
	require.NoError(t, err)
	assert.Equal(t, "deezer", p.Name())
}

func TestRegistry_GetUnknown(t *testing.T) {
	registry := NewRegistry[ports.SourceCatalog]()

	p, err := registry.Get("vimeo")
	require.Error(t, err)
	assert.Nil(t, p)
	assert.ErrorIs(t, err, ErrUnknownProvider)
	assert.Equal(t, "unknown provider: vimeo", err.Error())
}

func TestRegistry_AvailableIsSorted(t *testing.T) {
	registry := NewRegistry[ports.SourceCatalog]()
	registry.Register(&stubSource{name: "youtube"})
	registry.Register(&stubSource{name: "soundcloud"})

	assert.Equal(t, []string{"soundcloud", "youtube"}, registry.Available())
}

func TestRegistry_OverwriteExisting(t *testing.T) {
	registry := NewRegistry[ports.TargetCatalog]()
	first := &stubTarget{name: "spotify"}
	second := &stubTarget{name: "spotify"}
	registry.Register(first)
	registry.Register(second) // re-register

	assert.Len(t, registry.Available(), 1)
	p, err := registry.Get("spotify")
	require.NoError(t, err)
	assert.Same(t, second, p)
}
