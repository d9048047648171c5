package search

import "unicode"

// QueryKind tags which side of the dictionary a keyword is matched against.
type QueryKind int

const (
	// SourceQuery matches Igbo headwords, variations and stems.
	SourceQuery QueryKind = iota + 1
	// TranslationQuery matches English definitions.
	TranslationQuery
	// BrowseQuery has no keyword and walks the whole corpus.
	BrowseQuery
)

func (k QueryKind) String() string {
	switch k {
	case SourceQuery:
		return "source"
	case TranslationQuery:
		return "translation"
	case BrowseQuery:
		return "browse"
	}
	return "unknown"
}

// Classify decides how p is matched. Flagged queries and keywords
// containing a token that cannot be Igbo are translation queries.
func Classify(p Pattern, isEnglish bool) QueryKind {
	if isEnglish || hasForeignToken(p.Normalized) {
		return TranslationQuery
	}
	return SourceQuery
}

// hasForeignToken reports whether normalized text holds something outside
// the Igbo alphabet. Igbo has no q or x, and c only occurs in the digraph ch.
func hasForeignToken(normalized string) bool {
	rs := []rune(normalized)
	for i, r := range rs {
		switch {
		case r == ' ' || r == '-' || r == '\'':
		case r == 'q' || r == 'x':
			return true
		case r == 'c':
			if i+1 >= len(rs) || rs[i+1] != 'h' {
				return true
			}
		case unicode.IsLetter(r):
		default:
			return true
		}
	}
	return false
}
