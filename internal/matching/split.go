package matching

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/jpp0ca/yt-spotify-migrator/internal/domain"
	"github.com/jpp0ca/yt-spotify-migrator/internal/ports"
)

var channelSuffix = regexp.MustCompile(`(?i)\s*(VEVO|Music|Official|Records|Label)$`)

const partCutset = " \t\n\r-_|[]()"

// Splitter derives an (artist, song) pair from a normalized title and the
// uploader's channel name.
type Splitter struct {
	guesser ports.TitleGuesser
}

// NewSplitter returns a Splitter that consults guesser first. A nil guesser
// selects HeuristicGuesser.
func NewSplitter(guesser ports.TitleGuesser) *Splitter {
	if guesser == nil {
		guesser = HeuristicGuesser{}
	}
	return &Splitter{guesser: guesser}
}

// Split returns the artist and song for a title that has already been
// through Normalize. Either value may be empty. An empty channel means the
// uploader is unknown.
func (s *Splitter) Split(normalized string, channel string) (artist, song string) {
	if normalized == "" {
		return "", ""
	}

	a, t, ok := s.guesser.GuessArtistTitle(normalized)
	if ok && utf8.RuneCountInString(a) > 1 && utf8.RuneCountInString(t) > 1 {
		artist, song = a, t
	} else {
		song = normalized
		if channel != "" {
			artist = DeriveArtist(channel)
		}
	}

	artist = strings.Trim(artist, partCutset)
	song = strings.Trim(song, partCutset)

	if artist == "" && channel != "" {
		artist = DeriveArtist(channel)
	}
	return artist, song
}

// Parse normalizes a raw title and splits it.
func (s *Splitter) Parse(title string, channel string) domain.ParsedQuery {
	normalized := Normalize(title)
	artist, song := s.Split(normalized, channel)
	return domain.ParsedQuery{
		NormalizedTitle: normalized,
		Artist:          artist,
		Song:            song,
	}
}

// DeriveArtist turns a channel name into an artist name by dropping a
// trailing "VEVO", "Music", "Official", "Records" or "Label". The raw
// channel is returned when nothing would be left.
func DeriveArtist(channel string) string {
	cleaned := strings.TrimSpace(channelSuffix.ReplaceAllString(strings.TrimSpace(channel), ""))
	if cleaned == "" {
		return channel
	}
	return cleaned
}
