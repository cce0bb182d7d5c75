// Package matching turns noisy video titles into (artist, song) queries and
// scores catalog search results against them.
package matching

import (
	"regexp"
	"strings"
)

// rule is one entry of the normalizer table. Rules run top to bottom.
type rule struct {
	name        string
	pattern     *regexp.Regexp
	replacement string
}

// contentMarkers are removed when they appear anywhere inside a bracketed
// span. More specific markers come first.
var contentMarkers = []string{
	"soundtrack",
	"official music video",
	"official video",
	"official lyric video",
	"lyric video",
	"lyrics",
	"official audio",
	"audio",
	"visualizer",
	"full album",
	"live",
}

var rules = buildRules()

func buildRules() []rule {
	var rs []rule
	for _, marker := range contentMarkers {
		m := strings.ReplaceAll(regexp.QuoteMeta(marker), " ", `\s+`)
		rs = append(rs,
			rule{
				name:    "paren " + marker,
				pattern: regexp.MustCompile(`(?i)\([^()]*\b` + m + `\b[^()]*\)`),
			},
			rule{
				name:    "bracket " + marker,
				pattern: regexp.MustCompile(`(?i)\[[^\[\]]*\b` + m + `\b[^\[\]]*\]`),
			},
		)
	}

	rs = append(rs,
		rule{name: "paren quality", pattern: regexp.MustCompile(`(?i)\(\s*(?:HD|HQ|4K)\s*\)`)},
		rule{name: "bracket quality", pattern: regexp.MustCompile(`(?i)\[\s*(?:HD|HQ|4K)\s*\]`)},
		rule{name: "paren credit", pattern: regexp.MustCompile(`(?i)\(\s*(?:feat|ft|featuring|prod)\b\.?[^)]*\)`)},
		rule{name: "bracket credit", pattern: regexp.MustCompile(`(?i)\[\s*(?:feat|ft|featuring|prod)\b\.?[^\]]*\]`)},
		rule{name: "bare official", pattern: regexp.MustCompile(`(?i)[(\[]\s*official\s*[)\]]`)},
		rule{name: "hashtag", pattern: regexp.MustCompile(`\s*#[\p{L}\p{N}_]+`)},
		rule{name: "empty paren", pattern: regexp.MustCompile(`\(\s*\)`)},
		rule{name: "empty bracket", pattern: regexp.MustCompile(`\[\s*\]`)},
		// A bare " - Audio" may be a song name; only multi-word markers follow a dash.
		rule{
			name:    "trailing dash marker",
			pattern: regexp.MustCompile(`(?i)\s*-\s*(?:official\s+(?:music\s+|lyric\s+)?video|official\s+audio|lyric\s+video)\s*$`),
		},
		rule{
			name:    "trailing pipe marker",
			pattern: regexp.MustCompile(`(?i)\s*\|\s*(?:official\s+(?:music\s+|lyric\s+)?video|official\s+audio|lyrics?(?:\s+video)?|audio|visuali[sz]er|hd|hq|4k)\s*$`),
		},
	)
	return rs
}

const separatorCutset = " \t\n\r-_|"

// Normalize strips promotional and boilerplate markers from a raw title.
// The rule table is applied until the title stops changing, so
// Normalize(Normalize(x)) == Normalize(x).
func Normalize(title string) string {
	cleaned := title
	for {
		next := normalizeOnce(cleaned)
		if next == cleaned {
			return cleaned
		}
		cleaned = next
	}
}

func normalizeOnce(s string) string {
	for _, r := range rules {
		s = r.pattern.ReplaceAllString(s, r.replacement)
	}
	return strings.TrimSpace(strings.Trim(s, separatorCutset))
}
