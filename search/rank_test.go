package search

import (
	"testing"

	"github.com/poiesic/igbodict/core"
	"github.com/stretchr/testify/assert"
)

func TestRelevance(t *testing.T) {
	exact := &core.Entry{Definitions: []string{"Animal"}}
	near := &core.Entry{Definitions: []string{"animal; meat"}}
	far := &core.Entry{Definitions: []string{"cow; domestic animal"}}
	empty := &core.Entry{}

	assert.Equal(t, 1.0, Relevance("animal", exact))
	assert.Equal(t, 0.0, Relevance("animal", empty))

	nearScore := Relevance("animal", near)
	farScore := Relevance("animal", far)
	assert.Greater(t, nearScore, farScore)
	assert.LessOrEqual(t, nearScore, 1.0)
	assert.GreaterOrEqual(t, farScore, 0.0)
}

func TestRelevance_UsesPrimaryDefinitionOnly(t *testing.T) {
	primaryFar := &core.Entry{Definitions: []string{"goat", "animal"}}
	primaryClose := &core.Entry{Definitions: []string{"animals"}}

	assert.Greater(t, Relevance("animal", primaryClose), Relevance("animal", primaryFar))
}

func TestScoreAndOrder_Translation(t *testing.T) {
	cands := []Candidate{
		{Entry: &core.Entry{Id: 1, Definitions: []string{"cow; domestic animal"}}, Index: 0},
		{Entry: &core.Entry{Id: 2, Definitions: []string{"animal; meat"}}, Index: 1},
		{Entry: &core.Entry{Id: 3, Definitions: []string{"animal; meat"}}, Index: 2},
	}

	Score(BuildPattern("animal"), cands)
	Order(cands, TranslationQuery, SortSpec{})

	// Ties keep scan order.
	assert.EqualValues(t, 2, cands[0].Entry.Id)
	assert.EqualValues(t, 3, cands[1].Entry.Id)
	assert.EqualValues(t, 1, cands[2].Entry.Id)
	assert.Equal(t, cands[0].Score, cands[1].Score)
}
