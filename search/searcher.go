package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/igbodict/storage"
)

// Request is a structured search request. Page, Range and Sort are the raw
// modifier strings; malformed values degrade instead of failing.
type Request struct {
	Keyword   string
	IsEnglish bool
	Page      string
	Range     string
	Sort      string
}

// Searcher answers keyword queries against a dictionary corpus.
type Searcher struct {
	corpus    storage.CorpusReader
	logger    *slog.Logger
	poolSize  int
	chunkSize int
	cacheSize int

	pool    *ants.Pool
	matcher *Matcher
	cache   *resultCache
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithPoolSize sets the number of workers scanning large corpora.
// Zero disables the pool and scans sequentially. Default is 4.
func WithPoolSize(size int) Option {
	return func(s *Searcher) error {
		if size < 0 {
			return fmt.Errorf("%w: pool size %d", ErrInvalidOption, size)
		}
		s.poolSize = size
		return nil
	}
}

// WithScanChunkSize sets how many entries each worker scans at a time.
// Corpora no larger than one chunk are scanned sequentially.
func WithScanChunkSize(size int) Option {
	return func(s *Searcher) error {
		if size <= 0 {
			return fmt.Errorf("%w: chunk size %d", ErrInvalidOption, size)
		}
		s.chunkSize = size
		return nil
	}
}

// WithCache enables a result cache holding up to size pages.
func WithCache(size int) Option {
	return func(s *Searcher) error {
		if size <= 0 {
			return fmt.Errorf("%w: cache size %d", ErrInvalidOption, size)
		}
		s.cacheSize = size
		return nil
	}
}

// NewSearcher creates a new searcher. Call Release when done with it.
func NewSearcher(corpus storage.CorpusReader, opts ...Option) (*Searcher, error) {
	if corpus == nil {
		return nil, ErrCorpusRequired
	}

	s := &Searcher{
		corpus:    corpus,
		logger:    slog.Default(),
		poolSize:  4,
		chunkSize: defaultScanChunkSize,
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	if s.poolSize > 0 {
		pool, err := ants.NewPool(s.poolSize)
		if err != nil {
			return nil, err
		}
		s.pool = pool
	}
	s.matcher = NewMatcher(s.pool, s.chunkSize, s.logger)

	if s.cacheSize > 0 {
		cache, err := newResultCache(s.cacheSize)
		if err != nil {
			s.Release()
			return nil, err
		}
		s.cache = cache
	}

	return s, nil
}

// Release frees the worker pool and the cache.
func (s *Searcher) Release() {
	if s.pool != nil {
		s.pool.Release()
	}
	if s.cache != nil {
		s.cache.close()
	}
}

// Search returns one page of entries matching req.
// The result is never nil; no match yields an empty slice.
func (s *Searcher) Search(ctx context.Context, req Request) ([]Result, error) {
	return s.SearchWithMonitor(ctx, req, nil)
}

// SearchWithMonitor is Search with a monitor receiving callbacks at each
// stage of the search process.
func (s *Searcher) SearchWithMonitor(ctx context.Context, req Request, monitor SearchMonitor) ([]Result, error) {
	// Use noop monitor if none provided
	if monitor == nil {
		monitor = &noopMonitor{}
	}
	monitor.Start(req)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	keyword := strings.TrimSpace(req.Keyword)
	if keyword == "" {
		// Browsing needs a well-formed range; nothing else selects entries.
		if _, ok := ParseRange(req.Range); !ok {
			return nil, ErrInvalidRequest
		}
	}

	window := ParseWindow(req.Page, req.Range)
	spec := ParseSort(req.Sort)
	if spec.Malformed {
		s.logger.Debug("malformed sort modifier", "sort", req.Sort, "fallback", spec.String())
	}

	var (
		pattern Pattern
		kind    = BrowseQuery
	)
	if keyword != "" {
		pattern = BuildPattern(keyword)
		if !pattern.Probe() {
			s.logger.Debug("keyword below probe length", "keyword", keyword)
			return s.finish(monitor, []Result{}), nil
		}
		kind = Classify(pattern, req.IsEnglish)
	}
	monitor.AfterClassify(kind, pattern)

	if window.Empty() {
		return s.finish(monitor, []Result{}), nil
	}

	var key string
	if s.cache != nil {
		rev, err := s.corpus.Revision(ctx)
		if err != nil {
			return nil, s.upstreamError(ctx, err)
		}
		s.cache.observe(rev)
		key = cacheKey(rev, kind, pattern, spec, window)
		if cached, ok := s.cache.get(key); ok {
			monitor.CacheHit(key)
			return s.finish(monitor, cached), nil
		}
	}

	entries, err := s.corpus.AllEntries(ctx)
	if err != nil {
		return nil, s.upstreamError(ctx, err)
	}

	cands, err := s.matcher.Match(ctx, entries, kind, pattern)
	if err != nil {
		return nil, err
	}
	if len(cands) == 0 && kind == SourceQuery {
		monitor.TranslationFallback()
		kind = TranslationQuery
		cands, err = s.matcher.Match(ctx, entries, kind, pattern)
		if err != nil {
			return nil, err
		}
	}
	monitor.AfterMatch(cands)

	if kind == TranslationQuery && !spec.Explicit() {
		Score(pattern, cands)
	}
	Order(cands, kind, spec)
	monitor.AfterOrder(cands)

	lo, hi := window.Bounds(len(cands))
	results := ProjectAll(cands[lo:hi])

	s.logger.Debug("search complete",
		"keyword", keyword,
		"kind", kind.String(),
		"matched", len(cands),
		"returned", len(results),
		"sort", spec.String(),
		"window", window.String())

	if s.cache != nil {
		s.cache.put(key, results)
	}
	return s.finish(monitor, results), nil
}

func (s *Searcher) finish(monitor SearchMonitor, results []Result) []Result {
	monitor.Finish(results)
	return results
}

// upstreamError wraps a corpus failure. Cancellation is reported as is.
func (s *Searcher) upstreamError(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
		return err
	}
	s.logger.Error("error reading corpus", "err", err)
	return fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
}
