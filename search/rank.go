package search

import (
	"github.com/poiesic/igbodict/core"
	"github.com/xrash/smetrics"
)

// Jaro-Winkler parameters: the prefix bonus applies above boostThreshold
// and counts at most prefixSize leading runes.
const (
	boostThreshold = 0.7
	prefixSize     = 4
)

// Relevance scores how closely the primary definition of e resembles the
// normalized query, in [0, 1].
func Relevance(normalizedQuery string, e *core.Entry) float64 {
	def := Normalize(e.PrimaryDefinition())
	if def == "" || normalizedQuery == "" {
		return 0
	}
	if def == normalizedQuery {
		return 1
	}
	return smetrics.JaroWinkler(normalizedQuery, def, boostThreshold, prefixSize)
}

// Score sets Candidate.Score on every candidate.
func Score(p Pattern, cands []Candidate) {
	for i := range cands {
		cands[i].Score = Relevance(p.Normalized, cands[i].Entry)
	}
}

// byRelevance orders higher scores first.
func byRelevance(a, b *Candidate) int {
	switch {
	case a.Score > b.Score:
		return -1
	case a.Score < b.Score:
		return 1
	}
	return 0
}
