package search

import (
	"context"
	"log/slog"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/igbodict/core"
)

// Channel identifies how an entry matched. Lower values take precedence.
type Channel int

const (
	// ChannelNone marks candidates produced without matching (browse mode).
	ChannelNone Channel = iota
	// ChannelExactWord: the headword equals the keyword.
	ChannelExactWord
	// ChannelPattern: the headword or a variation contains the keyword.
	ChannelPattern
	// ChannelStem: a stem contains the keyword.
	ChannelStem
	// ChannelDefinition: a definition contains the keyword.
	ChannelDefinition
)

func (c Channel) String() string {
	switch c {
	case ChannelExactWord:
		return "exact"
	case ChannelPattern:
		return "pattern"
	case ChannelStem:
		return "stem"
	case ChannelDefinition:
		return "definition"
	}
	return "none"
}

// Candidate is an entry that matched a query, with the bookkeeping the
// ordering stages need.
type Candidate struct {
	Entry            *core.Entry
	Index            int     // position in the corpus snapshot
	Channel          Channel // best channel that matched
	MatchedVariation string  // variation that produced a ChannelPattern hit
	Score            float64 // relevance, set for translation queries
}

const defaultScanChunkSize = 512

// Matcher scans a corpus snapshot for candidates. Large snapshots are split
// into chunks scanned on a worker pool; results are merged in chunk order,
// so output never depends on scheduling.
type Matcher struct {
	pool      *ants.Pool
	chunkSize int
	logger    *slog.Logger
}

// NewMatcher creates a Matcher. A nil pool scans sequentially.
func NewMatcher(pool *ants.Pool, chunkSize int, logger *slog.Logger) *Matcher {
	if chunkSize <= 0 {
		chunkSize = defaultScanChunkSize
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Matcher{pool: pool, chunkSize: chunkSize, logger: logger}
}

// Match returns the candidates of corpus matching p under kind, in scan
// order, each entry id at most once. BrowseQuery returns every entry.
func (m *Matcher) Match(ctx context.Context, corpus []*core.Entry, kind QueryKind, p Pattern) ([]Candidate, error) {
	var match func(int, *core.Entry) (Candidate, bool)
	switch kind {
	case SourceQuery:
		match = func(i int, e *core.Entry) (Candidate, bool) { return matchSource(i, e, p) }
	case TranslationQuery:
		match = func(i int, e *core.Entry) (Candidate, bool) { return matchTranslation(i, e, p) }
	default:
		match = func(i int, e *core.Entry) (Candidate, bool) { return Candidate{Entry: e, Index: i}, true }
	}

	var hits []Candidate
	if m.pool == nil || len(corpus) <= m.chunkSize {
		hits = scan(corpus, 0, match)
	} else {
		var err error
		hits, err = m.parallelScan(ctx, corpus, match)
		if err != nil {
			return nil, err
		}
	}

	return dedupe(hits), ctx.Err()
}

func (m *Matcher) parallelScan(ctx context.Context, corpus []*core.Entry, match func(int, *core.Entry) (Candidate, bool)) ([]Candidate, error) {
	chunks := (len(corpus) + m.chunkSize - 1) / m.chunkSize
	results := make([][]Candidate, chunks)

	var wg sync.WaitGroup
	for c := 0; c < chunks; c++ {
		if err := ctx.Err(); err != nil {
			wg.Wait()
			return nil, err
		}
		lo := c * m.chunkSize
		hi := min(lo+m.chunkSize, len(corpus))
		wg.Add(1)
		task := func() {
			defer wg.Done()
			results[c] = scan(corpus[lo:hi], lo, match)
		}
		if err := m.pool.Submit(task); err != nil {
			m.logger.Debug("scan pool unavailable, scanning inline", "chunk", c, "err", err)
			task()
		}
	}
	wg.Wait()

	total := 0
	for _, r := range results {
		total += len(r)
	}
	hits := make([]Candidate, 0, total)
	for _, r := range results {
		hits = append(hits, r...)
	}
	return hits, nil
}

func scan(entries []*core.Entry, offset int, match func(int, *core.Entry) (Candidate, bool)) []Candidate {
	var hits []Candidate
	for i, e := range entries {
		if e == nil {
			continue
		}
		if c, ok := match(offset+i, e); ok {
			hits = append(hits, c)
		}
	}
	return hits
}

// dedupe keeps the first candidate for each entry id.
func dedupe(hits []Candidate) []Candidate {
	seen := make(map[core.ID]struct{}, len(hits))
	out := hits[:0]
	for _, h := range hits {
		if _, dup := seen[h.Entry.Id]; dup {
			continue
		}
		seen[h.Entry.Id] = struct{}{}
		out = append(out, h)
	}
	return out
}

// matchSource tries the source channels in precedence order and returns
// the best one that matches.
func matchSource(i int, e *core.Entry, p Pattern) (Candidate, bool) {
	c := Candidate{Entry: e, Index: i}

	word := Normalize(e.Word)
	if word == p.Normalized {
		c.Channel = ChannelExactWord
		return c, true
	}
	if p.MatchNormalized(word) {
		c.Channel = ChannelPattern
		return c, true
	}
	for _, v := range e.Variations {
		if p.Match(v) {
			c.Channel = ChannelPattern
			c.MatchedVariation = v
			return c, true
		}
	}
	for _, s := range e.Stems {
		if p.Match(s) {
			c.Channel = ChannelStem
			return c, true
		}
	}
	return c, false
}

func matchTranslation(i int, e *core.Entry, p Pattern) (Candidate, bool) {
	for _, d := range e.Definitions {
		if p.Match(d) {
			return Candidate{Entry: e, Index: i, Channel: ChannelDefinition}, true
		}
	}
	return Candidate{}, false
}
