package search

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MinProbeLength is the shortest normalized keyword, in runes, that is
// matched against the corpus. Shorter keywords match nothing.
const MinProbeLength = 2

// newFolder returns the transformer chain behind Normalize.
// Chains carry state, so each call gets its own.
func newFolder() transform.Transformer {
	return transform.Chain(
		norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
		runes.Map(foldPunctuation),
		cases.Fold(),
		norm.NFC,
		&whitespaceFolder{},
	)
}

// foldPunctuation maps typographic apostrophes and dashes to ASCII so
// n’ụlọ and n'ụlọ compare equal.
func foldPunctuation(r rune) rune {
	switch r {
	case '‘', '’', 'ʼ', '`', '´':
		return '\''
	case '‐', '‑', '‒', '–', '—':
		return '-'
	}
	return r
}

// Normalize strips diacritics (tone marks and the dots of ị, ọ, ụ and ṅ),
// folds case and collapses whitespace. Two strings that differ only in
// accents, case or spacing normalize to the same value.
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	out, _, err := transform.String(newFolder(), s)
	if err != nil {
		// Only reachable with invalid UTF-8; fall back to the cheap fold.
		return strings.ToLower(strings.Join(strings.Fields(s), " "))
	}
	return out
}

// Pattern is a keyword prepared for accent-insensitive matching.
type Pattern struct {
	Raw        string // keyword as received, trimmed
	Normalized string // Normalize(Raw) without surrounding quotes
	Exact      bool   // keyword was quoted: whole-form equality only
}

// BuildPattern prepares keyword for matching. A keyword wrapped in double
// quotes only matches forms that are equal to it after normalization.
func BuildPattern(keyword string) Pattern {
	raw := strings.TrimSpace(keyword)
	p := Pattern{Raw: raw}
	inner, quoted := unquote(raw)
	if quoted {
		p.Exact = true
	}
	p.Normalized = Normalize(inner)
	return p
}

func unquote(s string) (string, bool) {
	if len(s) < 2 {
		return s, false
	}
	first, _ := utf8.DecodeRuneInString(s)
	last, _ := utf8.DecodeLastRuneInString(s)
	if (first == '"' && last == '"') || (first == '“' && last == '”') {
		return s[utf8.RuneLen(first) : len(s)-utf8.RuneLen(last)], true
	}
	return s, false
}

// Probe reports whether the pattern is long enough to be matched.
func (p Pattern) Probe() bool {
	return utf8.RuneCountInString(p.Normalized) >= MinProbeLength
}

// Match reports whether s matches the pattern after normalization.
func (p Pattern) Match(s string) bool {
	return p.MatchNormalized(Normalize(s))
}

// MatchNormalized is Match for a value that is already normalized.
func (p Pattern) MatchNormalized(ns string) bool {
	if p.Normalized == "" {
		return false
	}
	if p.Exact {
		return ns == p.Normalized
	}
	return strings.Contains(ns, p.Normalized)
}

// Equal reports whether s equals the pattern after normalization.
func (p Pattern) Equal(s string) bool {
	return p.Normalized != "" && Normalize(s) == p.Normalized
}

// whitespaceFolder removes leading and trailing whitespace and replaces
// internal whitespace spans with a single ASCII space.
type whitespaceFolder struct {
	notStart bool
	wsSpan   bool
}

func (w *whitespaceFolder) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	var nSrc, nDst int
	for nSrc < len(src) {
		c, size := utf8.DecodeRune(src[nSrc:])
		if c == utf8.RuneError && !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}

		if unicode.IsSpace(c) {
			nSrc += size
			if w.notStart {
				w.wsSpan = true
			}
			continue
		}

		if w.wsSpan {
			if nDst+1 > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = ' '
			nDst++
			w.wsSpan = false
		}
		w.notStart = true

		// size can't be used here: for utf8.RuneError size is 1 but the
		// encoded rune is 3 bytes.
		if nDst+utf8.RuneLen(c) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nSrc += size
		nDst += utf8.EncodeRune(dst[nDst:], c)
	}
	return nDst, nSrc, nil
}

func (w *whitespaceFolder) Reset() {
	*w = whitespaceFolder{}
}
