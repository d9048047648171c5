package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryMUS_RoundTrip(t *testing.T) {
	inserted := time.Date(2025, 3, 4, 5, 6, 7, 8000, time.UTC)
	entry := Entry{
		Id:          42,
		Word:        "ụlọ",
		WordClass:   WordClassNoun,
		Definitions: []string{"house", "home"},
		Variations:  []string{"ụnọ"},
		Stems:       nil,
		Examples: []Example{
			{Id: 9, Igbo: "Ụlọ m dị n'obodo", English: "My house is in town", AssociatedWords: []ID{1, 2}},
			{Id: 10, English: "A big house"},
		},
		InsertedAt: inserted,
		UpdatedAt:  inserted.Add(time.Hour),
		Revision:   3,
	}

	bs := make([]byte, EntryMUS.Size(entry))
	n := EntryMUS.Marshal(entry, bs)
	require.Equal(t, len(bs), n)

	got, n, err := EntryMUS.Unmarshal(bs)
	require.NoError(t, err)
	assert.Equal(t, len(bs), n)
	assert.Equal(t, entry.Id, got.Id)
	assert.Equal(t, entry.Word, got.Word)
	assert.Equal(t, entry.WordClass, got.WordClass)
	assert.Equal(t, entry.Definitions, got.Definitions)
	assert.Equal(t, entry.Variations, got.Variations)
	assert.Empty(t, got.Stems)
	require.Len(t, got.Examples, 2)
	assert.Equal(t, entry.Examples[0], got.Examples[0])
	assert.Equal(t, "A big house", got.Examples[1].English)
	assert.Empty(t, got.Examples[1].AssociatedWords)
	assert.True(t, entry.InsertedAt.Equal(got.InsertedAt))
	assert.True(t, entry.UpdatedAt.Equal(got.UpdatedAt))
	assert.Equal(t, uint64(3), got.Revision)

	skipped, err := EntryMUS.Skip(bs)
	require.NoError(t, err)
	assert.Equal(t, len(bs), skipped)
}

func TestEntryMUS_Truncated(t *testing.T) {
	entry := Entry{Id: 1, Word: "akwa", WordClass: WordClassNoun, Definitions: []string{"cloth"}}
	bs := make([]byte, EntryMUS.Size(entry))
	EntryMUS.Marshal(entry, bs)

	_, _, err := EntryMUS.Unmarshal(bs[:len(bs)/2])
	assert.Error(t, err)
}

func TestEntryMUS_MicrosecondTimestamps(t *testing.T) {
	inserted := time.Date(2025, 3, 4, 5, 6, 7, 123456789, time.UTC)
	entry := Entry{Id: 7, Word: "nne", WordClass: WordClassNoun, InsertedAt: inserted, UpdatedAt: inserted}

	bs := make([]byte, EntryMUS.Size(entry))
	EntryMUS.Marshal(entry, bs)
	got, _, err := EntryMUS.Unmarshal(bs)
	require.NoError(t, err)

	want := inserted.Truncate(time.Microsecond)
	assert.True(t, want.Equal(got.InsertedAt), "got %v", got.InsertedAt)
	assert.True(t, want.Equal(got.UpdatedAt), "got %v", got.UpdatedAt)

	later := entry
	later.InsertedAt = inserted.Add(1000 * time.Hour)
	assert.Equal(t, EntryMUS.Size(entry), EntryMUS.Size(later), "timestamps are fixed width")
}

func TestExampleMUS_Skip(t *testing.T) {
	ex := Example{Id: 3, Igbo: "Akwa ọcha", English: "White cloth", AssociatedWords: []ID{1, 2, 3}}
	bs := make([]byte, ExampleMUS.Size(ex))
	n := ExampleMUS.Marshal(ex, bs)

	skipped, err := ExampleMUS.Skip(bs)
	require.NoError(t, err)
	assert.Equal(t, n, skipped)

	got, _, err := ExampleMUS.Unmarshal(bs)
	require.NoError(t, err)
	assert.Equal(t, ex, got)
}
