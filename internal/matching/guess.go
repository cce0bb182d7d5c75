package matching

import (
	"regexp"
	"strings"
)

// separators in priority order.
var separators = []string{" - ", " – ", " — ", " | ", " ~ "}

var (
	// Artist "Song" with straight or curly quotes.
	quotedPattern = regexp.MustCompile("^(.+?)\\s+[\"“](.+?)[\"”]$")
	// Lowercase "by" only, split at the last occurrence: "Stand By Me" is a title.
	byPattern     = regexp.MustCompile(`^(.+)\s+by\s+(.+)$`)
	topicSuffix   = regexp.MustCompile(`(?i)\s*-\s*topic\s*$`)
)

// HeuristicGuesser splits common "Artist - Song", `Artist "Song"` and
// "Song by Artist" title layouts.
type HeuristicGuesser struct{}

// GuessArtistTitle implements ports.TitleGuesser.
func (HeuristicGuesser) GuessArtistTitle(text string) (artist, song string, ok bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", "", false
	}

	for _, sep := range separators {
		if idx := strings.Index(text, sep); idx > 0 {
			a := strings.TrimSpace(topicSuffix.ReplaceAllString(text[:idx], ""))
			s := strings.TrimSpace(text[idx+len(sep):])
			if a != "" && s != "" {
				return a, s, true
			}
		}
	}

	if m := quotedPattern.FindStringSubmatch(text); m != nil {
		a, s := strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
		if a != "" && s != "" {
			return a, s, true
		}
	}

	if m := byPattern.FindStringSubmatch(text); m != nil {
		s, a := strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
		if a != "" && s != "" {
			return a, s, true
		}
	}

	return "", "", false
}
