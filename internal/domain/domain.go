package domain

// SourceItem is a single video taken from the source playlist. It is
// produced once per playlist fetch and never modified afterwards.
type SourceItem struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Channel string `json:"channel"`
	URL     string `json:"url"`
}

// ParsedQuery is the (artist, song) pair inferred from a SourceItem.
// Absent values are empty strings.
type ParsedQuery struct {
	NormalizedTitle string `json:"normalized_title"`
	Artist          string `json:"artist,omitempty"`
	Song            string `json:"song,omitempty"`
}

// Searchable reports whether the query carries enough information to be
// looked up on the target catalog.
func (q ParsedQuery) Searchable() bool {
	return q.Song != ""
}

// ParsedItem pairs a fetched item with the query derived from it.
type ParsedItem struct {
	Item  SourceItem  `json:"item"`
	Query ParsedQuery `json:"query"`
}

// CandidateTrack is a track returned by a target catalog search.
type CandidateTrack struct {
	URI         string   `json:"uri"`
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Artists     []string `json:"artists"`
	Album       string   `json:"album,omitempty"`
	DurationMS  int      `json:"duration_ms,omitempty"`
	ExternalURL string   `json:"external_url,omitempty"`
}

// Playlist represents a playlist owned by the user on a target catalog.
type Playlist struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	OwnerName   string `json:"owner_name,omitempty"`
	TrackCount  int    `json:"track_count"`
}

// MigrationRequest contains all information needed to migrate a playlist
// from the source catalog to the target catalog.
type MigrationRequest struct {
	SourceProvider      string `json:"source_provider" binding:"required"`
	SourceToken         string `json:"source_token" binding:"required"`
	DestProvider        string `json:"dest_provider" binding:"required"`
	DestToken           string `json:"dest_token" binding:"required"`
	PlaylistID          string `json:"playlist_id" binding:"required"`
	PlaylistName        string `json:"playlist_name,omitempty"`
	PlaylistDescription string `json:"playlist_description,omitempty"`
	// MatchThreshold overrides the configured threshold when in 1..100.
	// Zero keeps the configured value. Zero scores never match, so 1 is the
	// loosest threshold a request needs.
	MatchThreshold int `json:"match_threshold,omitempty"`
}

// MatchStatus describes the verdict reached for a single source item.
type MatchStatus string

const (
	StatusMatched           MatchStatus = "MATCHED"
	StatusMatchedFromCache  MatchStatus = "MATCHED_FROM_CACHE"
	StatusNotFound          MatchStatus = "NOT_FOUND"
	StatusNotFoundFromCache MatchStatus = "NOT_FOUND_FROM_CACHE"
	StatusSkipped           MatchStatus = "SKIPPED"
)

// IsMatched reports whether the status carries a winning track.
func (s MatchStatus) IsMatched() bool {
	return s == StatusMatched || s == StatusMatchedFromCache
}

// MatchResult is the verdict for one source item.
type MatchResult struct {
	Item    SourceItem      `json:"source"`
	Query   ParsedQuery     `json:"query"`
	Track   *CandidateTrack `json:"matched,omitempty"`
	Score   *int            `json:"score,omitempty"`
	Status  MatchStatus     `json:"status"`
	Message string          `json:"message,omitempty"`
}

// MigrationResult summarizes the outcome of a full playlist migration.
type MigrationResult struct {
	RunID            string        `json:"run_id"`
	SourcePlaylist   string        `json:"source_playlist"`
	DestPlaylistID   string        `json:"dest_playlist_id"`
	DestPlaylistName string        `json:"dest_playlist_name"`
	TotalItems       int           `json:"total_items"`
	MatchedTracks    int           `json:"matched_tracks"`
	NotFoundTracks   int           `json:"not_found_tracks"`
	SkippedTracks    int           `json:"skipped_tracks"`
	CacheHits        int           `json:"cache_hits"`
	SearchCalls      int           `json:"search_calls"`
	AddedTracks      int           `json:"added_tracks"`
	AddErrors        int           `json:"add_errors"`
	TrackResults     []MatchResult `json:"track_results"`
}

// Matched returns the results that resolved to a target track.
func (r *MigrationResult) Matched() []MatchResult {
	var out []MatchResult
	for _, tr := range r.TrackResults {
		if tr.Status.IsMatched() {
			out = append(out, tr)
		}
	}
	return out
}

// Unmatched returns the not-found and skipped results.
func (r *MigrationResult) Unmatched() []MatchResult {
	var out []MatchResult
	for _, tr := range r.TrackResults {
		if !tr.Status.IsMatched() {
			out = append(out, tr)
		}
	}
	return out
}
