package search

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/poiesic/igbodict/core"
)

// fakeCorpus is an in-memory CorpusReader that counts snapshot fetches.
type fakeCorpus struct {
	mu      sync.Mutex
	entries []*core.Entry
	rev     uint64
	err     error
	fetches atomic.Int32
}

func (f *fakeCorpus) AllEntries(ctx context.Context) ([]*core.Entry, error) {
	f.fetches.Add(1)
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*core.Entry, len(f.entries))
	for i, e := range f.entries {
		out[i] = e.Clone()
	}
	return out, nil
}

func (f *fakeCorpus) Revision(ctx context.Context) (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.rev, nil
}

func (f *fakeCorpus) add(e *core.Entry) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e.Id = core.ID(len(f.entries) + 1)
	f.entries = append(f.entries, e)
	f.rev++
}

func entry(word string, wc core.WordClass, defs []string, opts ...func(*core.Entry)) *core.Entry {
	e := &core.Entry{Word: word, WordClass: wc, Definitions: defs}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func variations(v ...string) func(*core.Entry) {
	return func(e *core.Entry) { e.Variations = v }
}

func stems(s ...string) func(*core.Entry) {
	return func(e *core.Entry) { e.Stems = s }
}

func examples(ex ...core.Example) func(*core.Entry) {
	return func(e *core.Entry) { e.Examples = ex }
}

// dictionaryCorpus is a small hand-built dictionary. Ids follow the order
// below, starting at 1.
func dictionaryCorpus() *fakeCorpus {
	f := &fakeCorpus{}
	for _, e := range []*core.Entry{
		entry("anụ", core.WordClassNoun, []string{"animal; meat"}, variations("anu"),
			examples(core.Example{Id: 101, Igbo: "Anụ a dị ụtọ", English: "This meat is tasty"})),
		entry("anụ ọhịa", core.WordClassNoun, []string{"wild animal", "bush meat"}),
		entry("ehi", core.WordClassNoun, []string{"cow; domestic animal"}),
		entry("ewu", core.WordClassNoun, []string{"goat", "an animal kept for meat"}),
		entry("àkwà", core.WordClassNoun, []string{"bed"}),
		entry("ákwà", core.WordClassNoun, []string{"cloth"}),
		entry("akwá", core.WordClassNoun, []string{"egg"}),
		entry("ákwá", core.WordClassNoun, []string{"cry; weeping"}),
		entry("ụlọ", core.WordClassNoun, []string{"house"}, variations("ụnọ")),
		entry("bịa", core.WordClassActiveVerb, []string{"come"}, stems("bịa")),
		entry("bịakwute", core.WordClassActiveVerb, []string{"come to; approach"}, stems("bịa")),
		entry("nwa", core.WordClassNoun, []string{"child"}),
		entry("nwanne", core.WordClassNoun, []string{"sibling"}, stems("nwa", "nne")),
		entry("nne", core.WordClassNoun, []string{"mother"}),
		entry("ọkụ", core.WordClassNoun, []string{"fire"}),
		entry("mmiri", core.WordClassNoun, []string{"water; rain"}),
		entry("nkịta", core.WordClassNoun, []string{"dog"}),
		entry("gara", core.WordClassActiveVerb, []string{"went"}, stems("ga")),
		entry("jere", core.WordClassActiveVerb, []string{"went (dialectal)"}, stems("ga")),
		entry("ga", core.WordClassActiveVerb, []string{"go"}),
	} {
		f.add(e)
	}
	return f
}

// numberedCorpus returns n entries named "ọkụ 01", "ọkụ 02", ... so that
// the keyword "oku" matches all of them through the same channel.
func numberedCorpus(n int) *fakeCorpus {
	f := &fakeCorpus{}
	for i := 1; i <= n; i++ {
		f.add(entry(fmt.Sprintf("ọkụ %02d", i), core.WordClassNoun, []string{fmt.Sprintf("fire number %d", i)}))
	}
	return f
}

func ids(results []Result) []core.ID {
	out := make([]core.ID, len(results))
	for i, r := range results {
		out[i] = r.Id
	}
	return out
}

func words(results []Result) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Word
	}
	return out
}
