package core

import (
	"testing"
)

func TestIDFromContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "ascii word", content: "akwa"},
		{name: "empty string", content: ""},
		{name: "tone marked word", content: "àkwà"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id1 := IDFromContent(tt.content)
			id2 := IDFromContent(tt.content)

			if id1 != id2 {
				t.Errorf("IDFromContent() produced different IDs for same content: %d vs %d", id1, id2)
			}
		})
	}
}

func TestIDFromContent_Different(t *testing.T) {
	id1 := IDFromContent("akwa")
	id2 := IDFromContent("àkwà")

	if id1 == id2 {
		t.Errorf("IDFromContent() produced same ID for different content")
	}
}

func TestEntry_PrimaryDefinition(t *testing.T) {
	tests := []struct {
		name  string
		entry Entry
		want  string
	}{
		{
			name:  "first of several",
			entry: Entry{Definitions: []string{"cloth", "egg"}},
			want:  "cloth",
		},
		{
			name:  "no definitions",
			entry: Entry{},
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.entry.PrimaryDefinition()
			if got != tt.want {
				t.Errorf("Entry.PrimaryDefinition() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEntry_Clone(t *testing.T) {
	orig := &Entry{
		Id:          7,
		Word:        "anụ",
		WordClass:   WordClassNoun,
		Definitions: []string{"animal; meat"},
		Examples: []Example{
			{Id: 1, Igbo: "Anụ a dị ụtọ", English: "This meat is sweet", AssociatedWords: []ID{3}},
		},
	}

	c := orig.Clone()
	c.Definitions[0] = "changed"
	c.Examples[0].AssociatedWords[0] = 99

	if orig.Definitions[0] != "animal; meat" {
		t.Errorf("Clone() shares Definitions with original")
	}
	if orig.Examples[0].AssociatedWords[0] != 3 {
		t.Errorf("Clone() shares example AssociatedWords with original")
	}
	if c.Variations != nil {
		t.Errorf("Clone() turned nil Variations into %v", c.Variations)
	}
}
