package search

import (
	"context"
	"fmt"
	"testing"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/igbodict/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func matchWords(t *testing.T, m *Matcher, corpus []*core.Entry, kind QueryKind, keyword string) []Candidate {
	t.Helper()
	cands, err := m.Match(context.Background(), corpus, kind, BuildPattern(keyword))
	require.NoError(t, err)
	return cands
}

func TestMatcher_SourceChannels(t *testing.T) {
	corpus, err := dictionaryCorpus().AllEntries(context.Background())
	require.NoError(t, err)
	m := NewMatcher(nil, 0, nil)

	t.Run("exact and pattern", func(t *testing.T) {
		cands := matchWords(t, m, corpus, SourceQuery, "nne")
		require.Len(t, cands, 2)
		assert.Equal(t, "nwanne", cands[0].Entry.Word)
		assert.Equal(t, ChannelPattern, cands[0].Channel)
		assert.Equal(t, "nne", cands[1].Entry.Word)
		assert.Equal(t, ChannelExactWord, cands[1].Channel)
	})

	t.Run("stem only", func(t *testing.T) {
		cands := matchWords(t, m, corpus, SourceQuery, "ga")
		require.Len(t, cands, 3)
		got := map[string]Channel{}
		for _, c := range cands {
			got[c.Entry.Word] = c.Channel
		}
		assert.Equal(t, map[string]Channel{
			"gara": ChannelPattern,
			"jere": ChannelStem,
			"ga":   ChannelExactWord,
		}, got)
	})

	t.Run("variation records the match", func(t *testing.T) {
		cands := matchWords(t, m, corpus, SourceQuery, "uno")
		require.Len(t, cands, 1)
		assert.Equal(t, "ụlọ", cands[0].Entry.Word)
		assert.Equal(t, ChannelPattern, cands[0].Channel)
		assert.Equal(t, "ụnọ", cands[0].MatchedVariation)
	})

	t.Run("accent insensitive", func(t *testing.T) {
		for _, kw := range []string{"akwa", "ákwá", "AKWÀ"} {
			cands := matchWords(t, m, corpus, SourceQuery, kw)
			require.Len(t, cands, 4, kw)
			for _, c := range cands {
				assert.Equal(t, "akwa", Normalize(c.Entry.Word))
				assert.Equal(t, ChannelExactWord, c.Channel)
			}
		}
	})

	t.Run("source query ignores definitions", func(t *testing.T) {
		assert.Empty(t, matchWords(t, m, corpus, SourceQuery, "mother"))
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, matchWords(t, m, corpus, SourceQuery, "zzz"))
	})
}

func TestMatcher_TranslationChannel(t *testing.T) {
	corpus, err := dictionaryCorpus().AllEntries(context.Background())
	require.NoError(t, err)
	m := NewMatcher(nil, 0, nil)

	cands := matchWords(t, m, corpus, TranslationQuery, "animal; meat")
	require.Len(t, cands, 1)
	assert.Equal(t, "anụ", cands[0].Entry.Word)
	assert.Equal(t, ChannelDefinition, cands[0].Channel)

	cands = matchWords(t, m, corpus, TranslationQuery, "animal")
	assert.Len(t, cands, 4)

	// Secondary definitions match too.
	cands = matchWords(t, m, corpus, TranslationQuery, "bush meat")
	require.Len(t, cands, 1)
	assert.Equal(t, "anụ ọhịa", cands[0].Entry.Word)

	// Translation queries never look at headwords.
	assert.Empty(t, matchWords(t, m, corpus, TranslationQuery, "nne"))
}

func TestMatcher_Browse(t *testing.T) {
	corpus, err := dictionaryCorpus().AllEntries(context.Background())
	require.NoError(t, err)

	cands := matchWords(t, NewMatcher(nil, 0, nil), corpus, BrowseQuery, "")
	require.Len(t, cands, len(corpus))
	for i, c := range cands {
		assert.Equal(t, i, c.Index)
		assert.Equal(t, ChannelNone, c.Channel)
	}
}

func TestMatcher_DuplicateIds(t *testing.T) {
	a := &core.Entry{Id: 1, Word: "akwa", WordClass: core.WordClassNoun}
	b := &core.Entry{Id: 1, Word: "àkwà", WordClass: core.WordClassNoun}
	c := &core.Entry{Id: 2, Word: "akwá", WordClass: core.WordClassNoun}

	cands := matchWords(t, NewMatcher(nil, 0, nil), []*core.Entry{a, b, nil, c}, SourceQuery, "akwa")
	require.Len(t, cands, 2)
	assert.Same(t, a, cands[0].Entry)
	assert.Same(t, c, cands[1].Entry)
}

func TestMatcher_ParallelScanMatchesSequential(t *testing.T) {
	var corpus []*core.Entry
	for i := 1; i <= 1000; i++ {
		word := fmt.Sprintf("okwu %d", i)
		if i%7 == 0 {
			word = fmt.Sprintf("ákwà %d", i)
		}
		corpus = append(corpus, &core.Entry{
			Id:          core.ID(i),
			Word:        word,
			WordClass:   core.WordClassNoun,
			Definitions: []string{fmt.Sprintf("definition %d", i)},
			Stems:       []string{"kw"},
		})
	}

	pool, err := ants.NewPool(4)
	require.NoError(t, err)
	defer pool.Release()

	sequential := NewMatcher(nil, 0, nil)
	parallel := NewMatcher(pool, 16, nil)

	for _, tc := range []struct {
		kind    QueryKind
		keyword string
	}{
		{SourceQuery, "akwa"},
		{SourceQuery, "kw"},
		{TranslationQuery, "definition 1"},
		{BrowseQuery, ""},
	} {
		want := matchWords(t, sequential, corpus, tc.kind, tc.keyword)
		got := matchWords(t, parallel, corpus, tc.kind, tc.keyword)
		require.Equal(t, len(want), len(got), tc.keyword)
		for i := range want {
			assert.Equal(t, want[i].Entry.Id, got[i].Entry.Id)
			assert.Equal(t, want[i].Index, got[i].Index)
			assert.Equal(t, want[i].Channel, got[i].Channel)
		}
	}
}

func TestMatcher_CanceledContext(t *testing.T) {
	corpus, err := dictionaryCorpus().AllEntries(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = NewMatcher(nil, 0, nil).Match(ctx, corpus, SourceQuery, BuildPattern("akwa"))
	assert.ErrorIs(t, err, context.Canceled)
}
