package search

import (
	"encoding/json"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/poiesic/igbodict/core"
)

// Sortable fields, keyed by lower-cased name.
var sortFields = map[string]string{
	"id":          "id",
	"word":        "word",
	"wordclass":   "wordClass",
	"definitions": "definitions",
	"variations":  "variations",
	"stems":       "stems",
	"examples":    "examples",
	"normalized":  "normalized",
}

var identToken = regexp.MustCompile(`[A-Za-z]+`)

// SortSpec is a parsed sort modifier. The zero value means no explicit sort.
type SortSpec struct {
	Field     string // canonical field name, "" for natural order
	Desc      bool
	Malformed bool // raw input was not well-formed and a fallback was applied
}

// Explicit reports whether s overrides the default ordering.
func (s SortSpec) Explicit() bool {
	return s.Field != ""
}

func (s SortSpec) String() string {
	if !s.Explicit() {
		return "natural"
	}
	if s.Desc {
		return s.Field + ":desc"
	}
	return s.Field + ":asc"
}

// ParseSort parses a sort modifier of the form ["field", "asc"|"desc"].
// It never fails: input that is not well-formed sorts ascending on the
// first known field name found in it, or not at all when there is none.
func ParseSort(raw string) SortSpec {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return SortSpec{}
	}

	var parts []string
	if err := json.Unmarshal([]byte(raw), &parts); err == nil && len(parts) == 2 {
		field, ok := sortFields[strings.ToLower(strings.TrimSpace(parts[0]))]
		if ok {
			switch strings.ToLower(strings.TrimSpace(parts[1])) {
			case "asc":
				return SortSpec{Field: field}
			case "desc":
				return SortSpec{Field: field, Desc: true}
			}
		}
	}

	for _, tok := range identToken.FindAllString(raw, -1) {
		if field, ok := sortFields[strings.ToLower(tok)]; ok {
			return SortSpec{Field: field, Malformed: true}
		}
	}
	return SortSpec{Malformed: true}
}

// sortKey is the string form of field on e. Sequences use their first
// element and examples use the first example's Igbo sentence.
func sortKey(field string, e *core.Entry) string {
	switch field {
	case "id":
		return strconv.FormatUint(uint64(e.Id), 10)
	case "word":
		return e.Word
	case "wordClass":
		return string(e.WordClass)
	case "definitions":
		return first(e.Definitions)
	case "variations":
		return first(e.Variations)
	case "stems":
		return first(e.Stems)
	case "examples":
		if len(e.Examples) == 0 {
			return ""
		}
		return e.Examples[0].Igbo
	case "normalized":
		return Normalize(e.Word)
	}
	return ""
}

func first(s []string) string {
	if len(s) == 0 {
		return ""
	}
	return s[0]
}

type comparator func(a, b *Candidate) int

// chain runs comparators in priority order until one separates a and b.
func chain(cmps ...comparator) comparator {
	return func(a, b *Candidate) int {
		for _, cmp := range cmps {
			if c := cmp(a, b); c != 0 {
				return c
			}
		}
		return 0
	}
}

func byScanOrder(a, b *Candidate) int {
	return a.Index - b.Index
}

func byChannel(a, b *Candidate) int {
	return int(a.Channel) - int(b.Channel)
}

func (s SortSpec) comparator() comparator {
	field, desc := s.Field, s.Desc
	return func(a, b *Candidate) int {
		c := strings.Compare(sortKey(field, a.Entry), sortKey(field, b.Entry))
		if desc {
			return -c
		}
		return c
	}
}

// Order sorts cands in place. An explicit sort decides alone; otherwise
// translation queries order by relevance and source queries by channel.
// Scan order breaks every remaining tie.
func Order(cands []Candidate, kind QueryKind, spec SortSpec) {
	var primary comparator
	switch {
	case spec.Explicit():
		primary = spec.comparator()
	case kind == TranslationQuery:
		primary = byRelevance
	case kind == SourceQuery:
		primary = byChannel
	default:
		primary = func(a, b *Candidate) int { return 0 }
	}
	cmp := chain(primary, byScanOrder)
	slices.SortStableFunc(cands, func(a, b Candidate) int { return cmp(&a, &b) })
}
