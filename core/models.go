package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for dictionary entries and examples.
// It is generated from database sequences or content-based hashing.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// WordClass is the part-of-speech tag of a headword.
type WordClass string

const (
	WordClassAdjective          WordClass = "ADJ"
	WordClassAdverb             WordClass = "ADV"
	WordClassActiveVerb         WordClass = "AV"
	WordClassMedialVerb         WordClass = "MV"
	WordClassPassiveVerb        WordClass = "PV"
	WordClassConjunction        WordClass = "CJN"
	WordClassDemonstrative      WordClass = "DEM"
	WordClassInterjection       WordClass = "INTJ"
	WordClassNoun               WordClass = "NNC"
	WordClassProperNoun         WordClass = "NNP"
	WordClassNumeral            WordClass = "NUM"
	WordClassPreposition        WordClass = "PREP"
	WordClassPronoun            WordClass = "PRN"
	WordClassQuantifier         WordClass = "QTF"
	WordClassInflectionalSuffix WordClass = "ISUF"
	WordClassExtensionalSuffix  WordClass = "ESUF"
	WordClassCardinal           WordClass = "CD"
	WordClassPhrase             WordClass = "PHRASE"
)

// WordClasses lists every accepted word class in display order.
var WordClasses = []WordClass{
	WordClassAdjective,
	WordClassAdverb,
	WordClassActiveVerb,
	WordClassMedialVerb,
	WordClassPassiveVerb,
	WordClassConjunction,
	WordClassDemonstrative,
	WordClassInterjection,
	WordClassNoun,
	WordClassProperNoun,
	WordClassNumeral,
	WordClassPreposition,
	WordClassPronoun,
	WordClassQuantifier,
	WordClassInflectionalSuffix,
	WordClassExtensionalSuffix,
	WordClassCardinal,
	WordClassPhrase,
}

// Example is a usage sentence owned by an Entry.
type Example struct {
	Id              ID
	Igbo            string
	English         string
	AssociatedWords []ID // Other entries the sentence illustrates
}

// Entry is a dictionary headword together with its glosses and usage examples.
type Entry struct {
	Id          ID
	Word        string
	WordClass   WordClass
	Definitions []string // Definitions[0] is the primary gloss
	Variations  []string // Alternative spellings or dialectal forms
	Stems       []string
	Examples    []Example
	InsertedAt  time.Time // When the entry was inserted into the database
	UpdatedAt   time.Time // When the entry was last updated
	Revision    uint64    // Incremented by storage on every write of this entry
}

// PrimaryDefinition returns the first definition, or "" when there is none.
func (e *Entry) PrimaryDefinition() string {
	if len(e.Definitions) == 0 {
		return ""
	}
	return e.Definitions[0]
}

// Clone returns a deep copy of the entry.
func (e *Entry) Clone() *Entry {
	c := *e
	c.Definitions = cloneStrings(e.Definitions)
	c.Variations = cloneStrings(e.Variations)
	c.Stems = cloneStrings(e.Stems)
	if e.Examples != nil {
		c.Examples = make([]Example, len(e.Examples))
		for i, ex := range e.Examples {
			ex.AssociatedWords = append([]ID(nil), ex.AssociatedWords...)
			c.Examples[i] = ex
		}
	}
	return &c
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s...)
}
