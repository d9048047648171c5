package search

import (
	"strconv"
	"strings"
	"sync"

	"github.com/dgraph-io/ristretto/v2"
)

// resultCache memoizes projected pages. Keys embed the corpus revision and
// the cache is cleared wholesale the first time a new revision is seen.
type resultCache struct {
	store *ristretto.Cache[string, []Result]

	mu      sync.Mutex
	rev     uint64
	started bool
}

func newResultCache(maxEntries int) (*resultCache, error) {
	store, err := ristretto.NewCache(&ristretto.Config[string, []Result]{
		NumCounters:        int64(maxEntries) * 10,
		MaxCost:            int64(maxEntries),
		BufferItems:        64,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, err
	}
	return &resultCache{store: store}, nil
}

// observe records the current corpus revision, dropping everything cached
// under an older one.
func (c *resultCache) observe(rev uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.started && rev != c.rev {
		c.store.Clear()
	}
	c.rev = rev
	c.started = true
}

func (c *resultCache) get(key string) ([]Result, bool) {
	v, ok := c.store.Get(key)
	if !ok {
		return nil, false
	}
	return cloneResults(v), true
}

func (c *resultCache) put(key string, results []Result) {
	c.store.Set(key, cloneResults(results), 1)
	c.store.Wait()
}

func (c *resultCache) close() {
	c.store.Close()
}

// cacheKey identifies a response. Everything that changes the page is in it.
func cacheKey(rev uint64, kind QueryKind, p Pattern, spec SortSpec, w Window) string {
	var b strings.Builder
	b.Grow(len(p.Normalized) + 48)
	b.WriteString(strconv.FormatUint(rev, 10))
	b.WriteByte('|')
	b.WriteString(kind.String())
	b.WriteByte('|')
	if p.Exact {
		b.WriteByte('=')
	}
	b.WriteString(p.Normalized)
	b.WriteByte('|')
	b.WriteString(spec.String())
	b.WriteByte('|')
	b.WriteString(w.String())
	return b.String()
}
