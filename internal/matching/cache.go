package matching

import (
	"strings"
	"sync"

	"golang.org/x/text/cases"

	"github.com/jpp0ca/yt-spotify-migrator/internal/domain"
)

// Key identifies a search. Two queries that differ only in case or in
// surrounding whitespace share a key.
type Key struct {
	Artist string
	Song   string
}

var fold = cases.Fold()

// NewKey builds the cache key for an (artist, song) pair.
func NewKey(artist, song string) Key {
	return Key{
		Artist: fold.String(strings.TrimSpace(artist)),
		Song:   fold.String(strings.TrimSpace(song)),
	}
}

// Verdict is a remembered search outcome. A nil Track records that nothing
// cleared the threshold.
type Verdict struct {
	Track *domain.CandidateTrack
	Score int
}

// Cache remembers verdicts for the duration of one run.
type Cache struct {
	mu      sync.Mutex
	entries map[Key]Verdict
	hits    int
	misses  int
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[Key]Verdict)}
}

// Lookup returns the verdict stored for k.
func (c *Cache) Lookup(k Key) (Verdict, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.entries[k]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return v, ok
}

// Store records the verdict for k, replacing any previous one.
func (c *Cache) Store(k Key, v Verdict) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[k] = v
}

// Len returns the number of distinct keys with a verdict.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Stats returns the number of lookups that hit and missed.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}
