package matching

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/xrash/smetrics"
	"golang.org/x/text/unicode/norm"

	"github.com/jpp0ca/yt-spotify-migrator/internal/domain"
)

// Match is the winning candidate of a scoring pass.
type Match struct {
	Track domain.CandidateTrack
	Score int
}

// SelectBest scores every candidate against "{artist} {song}" and returns
// the first candidate with the highest score that is at least threshold.
// A score of zero never wins, so thresholds 0 and 1 behave alike.
// Candidates without a name or without artists are ignored.
func SelectBest(artist, song string, candidates []domain.CandidateTrack, threshold int) (Match, bool) {
	target := strings.ToLower(strings.TrimSpace(artist + " " + song))
	if target == "" {
		return Match{}, false
	}

	var (
		best  Match
		found bool
	)
	for _, c := range candidates {
		cs, ok := candidateString(c)
		if !ok {
			continue
		}
		score := TokenSetRatio(target, strings.ToLower(cs))
		if score > 0 && score >= threshold && (!found || score > best.Score) {
			best = Match{Track: c, Score: score}
			found = true
		}
	}
	return best, found
}

func candidateString(c domain.CandidateTrack) (string, bool) {
	if c.Name == "" {
		return "", false
	}
	artists := make([]string, 0, len(c.Artists))
	for _, a := range c.Artists {
		if a != "" {
			artists = append(artists, a)
		}
	}
	if len(artists) == 0 {
		return "", false
	}
	return strings.TrimSpace(strings.Join(artists, " & ") + " " + c.Name), true
}

// TokenSetRatio returns a 0-100 similarity of a and b that ignores word
// order and is 100 when the words of one string are a subset of the other's.
func TokenSetRatio(a, b string) int {
	ta, tb := tokenSet(a), tokenSet(b)
	if len(ta) == 0 || len(tb) == 0 {
		return 0
	}

	var sect, onlyA, onlyB []string
	for tok := range ta {
		if _, ok := tb[tok]; ok {
			sect = append(sect, tok)
		} else {
			onlyA = append(onlyA, tok)
		}
	}
	for tok := range tb {
		if _, ok := ta[tok]; !ok {
			onlyB = append(onlyB, tok)
		}
	}
	sort.Strings(sect)
	sort.Strings(onlyA)
	sort.Strings(onlyB)

	base := strings.Join(sect, " ")
	combinedA := strings.TrimSpace(base + " " + strings.Join(onlyA, " "))
	combinedB := strings.TrimSpace(base + " " + strings.Join(onlyB, " "))

	return max(ratio(base, combinedA), ratio(base, combinedB), ratio(combinedA, combinedB))
}

// ratio is the indel similarity of a and b on a 0-100 scale.
func ratio(a, b string) int {
	if a == "" || b == "" {
		return 0
	}
	total := len(a) + len(b)
	dist := smetrics.WagnerFischer(a, b, 1, 1, 2)
	return int(math.Round(100 * float64(total-dist) / float64(total)))
}

func tokenSet(s string) map[string]struct{} {
	s = strings.ToLower(norm.NFKC.String(s))
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
	set := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		set[f] = struct{}{}
	}
	return set
}
