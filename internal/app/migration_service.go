package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jpp0ca/yt-spotify-migrator/internal/adapters"
	"github.com/jpp0ca/yt-spotify-migrator/internal/domain"
	"github.com/jpp0ca/yt-spotify-migrator/internal/matching"
	"github.com/jpp0ca/yt-spotify-migrator/internal/ports"
)

var (
	// ErrEmptyPlaylist is returned when the source playlist could not be
	// fetched or has no playable items.
	ErrEmptyPlaylist = errors.New("source playlist is empty")

	// ErrPlaylistUnavailable is returned when the target playlist could not
	// be found or created.
	ErrPlaylistUnavailable = errors.New("destination playlist unavailable")
)

// Options tunes matching and pacing.
type Options struct {
	Threshold   int
	SearchLimit int
	BatchSize   int
	SearchDelay time.Duration
}

// DefaultOptions returns the settings used when none are configured.
func DefaultOptions() Options {
	return Options{
		Threshold:   85,
		SearchLimit: 10,
		BatchSize:   100,
		SearchDelay: 2 * time.Second,
	}
}

// Option configures optional Service collaborators.
type Option func(*Service)

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithReporter makes every run persist its records through r.
func WithReporter(r ports.RunReporter) Option {
	return func(s *Service) { s.reporter = r }
}

// WithGuesser replaces the title guesser used by the splitter.
func WithGuesser(g ports.TitleGuesser) Option {
	return func(s *Service) { s.splitter = matching.NewSplitter(g) }
}

// Service implements ports.MigrationService. A run is strictly sequential:
// every remote search is followed by a fixed pacing delay so a single
// process stays under the target catalog's rate limit.
type Service struct {
	sources  *adapters.Registry[ports.SourceCatalog]
	targets  *adapters.Registry[ports.TargetCatalog]
	splitter *matching.Splitter
	opts     Options
	logger   *slog.Logger
	reporter ports.RunReporter

	sleep    func(ctx context.Context, d time.Duration) error
	newRunID func() string
}

// NewService creates a migration service over the given source and target
// registries. A SearchLimit or BatchSize below 1 and a Threshold outside
// 0..100 fall back to DefaultOptions. Threshold 0 and SearchDelay 0 are kept.
func NewService(
	sources *adapters.Registry[ports.SourceCatalog],
	targets *adapters.Registry[ports.TargetCatalog],
	opts Options,
	extra ...Option,
) *Service {
	def := DefaultOptions()
	if opts.SearchLimit < 1 {
		opts.SearchLimit = def.SearchLimit
	}
	if opts.BatchSize < 1 {
		opts.BatchSize = def.BatchSize
	}
	if opts.Threshold < 0 || opts.Threshold > 100 {
		opts.Threshold = def.Threshold
	}
	if opts.SearchDelay < 0 {
		opts.SearchDelay = 0
	}

	s := &Service{
		sources:  sources,
		targets:  targets,
		splitter: matching.NewSplitter(nil),
		opts:     opts,
		logger:   slog.Default(),
		sleep:    sleepContext,
		newRunID: uuid.NewString,
	}
	for _, o := range extra {
		o(s)
	}
	return s
}

func (s *Service) ListPlaylists(ctx context.Context, provider string, token string) ([]domain.Playlist, error) {
	p, err := s.targets.Get(provider)
	if err != nil {
		return nil, err
	}
	return p.GetPlaylists(ctx, token)
}

func (s *Service) ParseTitle(title string, channel string) domain.ParsedQuery {
	return s.splitter.Parse(title, channel)
}

func (s *Service) MigratePlaylist(ctx context.Context, req domain.MigrationRequest) (*domain.MigrationResult, error) {
	source, err := s.sources.Get(req.SourceProvider)
	if err != nil {
		return nil, fmt.Errorf("source provider error: %w", err)
	}

	dest, err := s.targets.Get(req.DestProvider)
	if err != nil {
		return nil, fmt.Errorf("destination provider error: %w", err)
	}

	run := &domain.MigrationResult{
		RunID:            s.newRunID(),
		SourcePlaylist:   req.PlaylistID,
		DestPlaylistName: req.PlaylistName,
	}
	if run.DestPlaylistName == "" {
		run.DestPlaylistName = fmt.Sprintf("Migrated from %s", req.SourceProvider)
	}
	description := req.PlaylistDescription
	if description == "" {
		description = fmt.Sprintf("Migrated from %s playlist %s", req.SourceProvider, req.PlaylistID)
	}
	threshold := s.opts.Threshold
	if req.MatchThreshold > 0 && req.MatchThreshold <= 100 {
		threshold = req.MatchThreshold
	}

	logger := s.logger.With("run_id", run.RunID)

	// The result files are written even when the run aborts early.
	if s.reporter != nil {
		defer func() {
			if werr := s.reporter.WriteResults(run); werr != nil {
				logger.Error("failed to write run results", "error", werr)
			}
		}()
	}

	// Step 1: Fetch items from the source playlist
	logger.Info("fetching source playlist", "provider", req.SourceProvider, "playlist", req.PlaylistID)
	items, err := source.GetPlaylistItems(ctx, req.SourceToken, req.PlaylistID)
	if err != nil {
		logger.Error("failed to fetch source playlist", "playlist", req.PlaylistID, "error", err)
		return nil, fmt.Errorf("%w: %w", ErrEmptyPlaylist, err)
	}
	if len(items) == 0 {
		logger.Warn("no playable items in source playlist", "playlist", req.PlaylistID)
		return nil, fmt.Errorf("%w: %s", ErrEmptyPlaylist, req.PlaylistID)
	}
	run.TotalItems = len(items)

	// Step 2: Derive a search query for every item
	parsed := make([]domain.ParsedItem, 0, len(items))
	for _, item := range items {
		parsed = append(parsed, domain.ParsedItem{Item: item, Query: s.splitter.Parse(item.Title, item.Channel)})
	}
	if s.reporter != nil {
		if werr := s.reporter.WriteFetched(parsed); werr != nil {
			logger.Error("failed to write fetched items", "error", werr)
		}
	}
	logger.Info("fetched source items", "count", len(items))

	// Step 3: Find or create the destination playlist
	destID, err := dest.FindOrCreatePlaylist(ctx, req.DestToken, run.DestPlaylistName, description)
	if err != nil {
		logger.Error("failed to find or create destination playlist", "name", run.DestPlaylistName, "error", err)
		return nil, fmt.Errorf("%w: %w", ErrPlaylistUnavailable, err)
	}
	run.DestPlaylistID = destID
	logger.Info("using destination playlist", "id", destID, "name", run.DestPlaylistName)

	// Step 4: Resolve every item, one at a time
	r := &resolver{
		service:   s,
		dest:      dest,
		token:     req.DestToken,
		threshold: threshold,
		cache:     matching.NewCache(),
		run:       run,
		logger:    logger,
	}
	var uris uriSet
	for _, p := range parsed {
		if err := ctx.Err(); err != nil {
			logger.Warn("migration cancelled", "processed", len(run.TrackResults), "total", run.TotalItems)
			return run, err
		}

		mr := r.resolve(ctx, p)
		run.TrackResults = append(run.TrackResults, mr)

		switch {
		case mr.Status.IsMatched():
			run.MatchedTracks++
			uris.add(mr.Track.URI)
		case mr.Status == domain.StatusSkipped:
			run.SkippedTracks++
		default:
			run.NotFoundTracks++
		}
	}

	logger.Info("matching complete",
		"matched", run.MatchedTracks,
		"not_found", run.NotFoundTracks,
		"skipped", run.SkippedTracks,
		"cache_hits", run.CacheHits,
		"search_calls", run.SearchCalls,
	)

	// Step 5: Add matched tracks in batches
	if uris.count() == 0 {
		logger.Info("no tracks to add")
	} else {
		s.addInBatches(ctx, dest, req.DestToken, destID, uris.items(), run, logger)
	}

	logger.Info("migration complete", "added", run.AddedTracks, "add_errors", run.AddErrors)
	return run, nil
}

// addInBatches sends uris in chunks of at most BatchSize. A failed chunk is
// logged and counted; the remaining chunks are still sent.
func (s *Service) addInBatches(
	ctx context.Context,
	dest ports.TargetCatalog,
	token, playlistID string,
	uris []string,
	run *domain.MigrationResult,
	logger *slog.Logger,
) {
	batches := chunk(uris, s.opts.BatchSize)
	for i, batch := range batches {
		if i > 0 {
			if err := s.sleep(ctx, s.opts.SearchDelay); err != nil {
				run.AddErrors += len(batches) - i
				logger.Warn("adding tracks cancelled", "remaining_batches", len(batches)-i)
				return
			}
		}

		if err := dest.AddTracksToPlaylist(ctx, token, playlistID, batch); err != nil {
			run.AddErrors++
			logger.Error("failed to add batch", "batch", i+1, "batches", len(batches), "size", len(batch), "error", err)
			continue
		}
		run.AddedTracks += len(batch)
		logger.Debug("added batch", "batch", i+1, "batches", len(batches), "size", len(batch))
	}
}

// resolver carries the state of one run's matching loop.
type resolver struct {
	service   *Service
	dest      ports.TargetCatalog
	token     string
	threshold int
	cache     *matching.Cache
	run       *domain.MigrationResult
	logger    *slog.Logger
}

func (r *resolver) resolve(ctx context.Context, p domain.ParsedItem) domain.MatchResult {
	q := p.Query
	mr := domain.MatchResult{Item: p.Item, Query: q}

	if !q.Searchable() {
		mr.Status = domain.StatusSkipped
		mr.Message = "no song name could be derived from the title"
		r.logger.Warn("skipping item", "video_id", p.Item.ID, "title", p.Item.Title)
		return mr
	}

	key := matching.NewKey(q.Artist, q.Song)
	if v, ok := r.cache.Lookup(key); ok {
		r.run.CacheHits++
		if v.Track == nil {
			mr.Status = domain.StatusNotFoundFromCache
			return mr
		}
		track := *v.Track
		score := v.Score
		mr.Track, mr.Score = &track, &score
		mr.Status = domain.StatusMatchedFromCache
		return mr
	}

	candidates := r.search(ctx, q)
	m, ok := matching.SelectBest(q.Artist, q.Song, candidates, r.threshold)
	if !ok {
		r.cache.Store(key, matching.Verdict{})
		mr.Status = domain.StatusNotFound
		r.logger.Info("not found", "artist", q.Artist, "song", q.Song, "candidates", len(candidates))
		return mr
	}

	track := m.Track
	score := m.Score
	r.cache.Store(key, matching.Verdict{Track: &track, Score: score})
	mr.Track, mr.Score = &track, &score
	mr.Status = domain.StatusMatched
	r.logger.Info("matched", "artist", q.Artist, "song", q.Song, "uri", track.URI, "score", score)
	return mr
}

// search runs the targeted query and falls back to a free-text query when
// it fails or comes back empty. Each remote call is followed by the pacing
// delay.
func (r *resolver) search(ctx context.Context, q domain.ParsedQuery) []domain.CandidateTrack {
	targeted := TargetedQuery(q)
	candidates, err := r.call(ctx, targeted)
	if (err == nil && len(candidates) > 0) || ctx.Err() != nil {
		return candidates
	}
	if err != nil {
		r.logger.Warn("targeted search failed", "query", targeted, "error", err)
	}

	broad := BroadQuery(q)
	candidates, err = r.call(ctx, broad)
	if err != nil {
		r.logger.Warn("broad search failed", "query", broad, "error", err)
		return nil
	}
	return candidates
}

// call runs one remote search followed by the pacing delay. A cancelled
// delay does not discard the results; the run loop notices the cancellation.
func (r *resolver) call(ctx context.Context, query string) ([]domain.CandidateTrack, error) {
	r.run.SearchCalls++
	candidates, err := r.dest.SearchTracks(ctx, r.token, query, r.service.opts.SearchLimit)
	_ = r.service.sleep(ctx, r.service.opts.SearchDelay)
	return candidates, err
}

// TargetedQuery builds the field-filtered search query for q.
func TargetedQuery(q domain.ParsedQuery) string {
	if q.Artist == "" {
		return "track:" + q.Song
	}
	return "track:" + q.Song + " artist:" + q.Artist
}

// BroadQuery builds the free-text search query for q.
func BroadQuery(q domain.ParsedQuery) string {
	return strings.TrimSpace(q.Artist + " " + q.Song)
}

// uriSet keeps the first occurrence of each URI in insertion order.
type uriSet struct {
	seen  map[string]struct{}
	order []string
}

func (u *uriSet) add(uri string) {
	if uri == "" {
		return
	}
	if u.seen == nil {
		u.seen = make(map[string]struct{})
	}
	if _, ok := u.seen[uri]; ok {
		return
	}
	u.seen[uri] = struct{}{}
	u.order = append(u.order, uri)
}

func (u *uriSet) items() []string { return u.order }

func (u *uriSet) count() int { return len(u.order) }

func chunk(items []string, size int) [][]string {
	if size < 1 {
		size = 1
	}
	var out [][]string
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		out = append(out, items[start:end])
	}
	return out
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
