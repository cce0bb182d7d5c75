package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeuristicGuesser(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantArtist string
		wantSong   string
		wantOK     bool
	}{
		{"hyphen", "Artist - Song", "Artist", "Song", true},
		{"en dash", "Artist – Song", "Artist", "Song", true},
		{"pipe", "Artist | Song", "Artist", "Song", true},
		{"first separator wins", "Artist - Song - Remix", "Artist", "Song - Remix", true},
		{"topic channel artist", "Artist - Topic - Song", "Artist", "Topic - Song", true},
		{"quoted", `Artist "Song Title"`, "Artist", "Song Title", true},
		{"curly quoted", "Artist “Song Title”", "Artist", "Song Title", true},
		{"by", "Song Title by Artist", "Artist", "Song Title", true},
		{"capitalized By is part of the title", "Stand By Me", "", "", false},
		{"by splits at the last occurrence", "Stand By Me by Ben E. King", "Ben E. King", "Stand By Me", true},
		{"lowercase by inside title", "Written by Hand by The Band", "The Band", "Written by Hand", true},
		{"no layout", "JustOneTitle", "", "", false},
		{"blank", "   ", "", "", false},
		{"dangling separator", " - Song", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			artist, song, ok := HeuristicGuesser{}.GuessArtistTitle(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantArtist, artist)
			assert.Equal(t, tt.wantSong, song)
		})
	}
}
