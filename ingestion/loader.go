package ingestion

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/poiesic/igbodict/core"
)

// WordRecord is one word in a JSON word list.
type WordRecord struct {
	Word        string          `json:"word"`
	WordClass   string          `json:"wordClass"`
	Definitions []string        `json:"definitions"`
	Variations  []string        `json:"variations"`
	Stems       []string        `json:"stems"`
	Examples    []ExampleRecord `json:"examples"`
}

// ExampleRecord is one example sentence in a JSON word list.
type ExampleRecord struct {
	Igbo    string `json:"igbo"`
	English string `json:"english"`
}

// Entry converts the record to a core.Entry without ids or timestamps.
func (w WordRecord) Entry() *core.Entry {
	e := &core.Entry{
		Word:        w.Word,
		WordClass:   core.WordClass(w.WordClass),
		Definitions: w.Definitions,
		Variations:  w.Variations,
		Stems:       w.Stems,
	}
	if len(w.Examples) > 0 {
		e.Examples = make([]core.Example, len(w.Examples))
		for i, ex := range w.Examples {
			e.Examples[i] = core.Example{Igbo: ex.Igbo, English: ex.English}
		}
	}
	return e
}

// LoadWordList reads a JSON word list from path.
func LoadWordList(path string) ([]*core.Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodeWordList(f)
}

// DecodeWordList decodes either a JSON array of words or an object
// wrapping them as { "words": [...] }.
func DecodeWordList(r io.Reader) ([]*core.Entry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var records []WordRecord
	trimmed := bytes.TrimSpace(data)
	switch {
	case len(trimmed) == 0:
		return nil, fmt.Errorf("%w: empty input", ErrMalformedWordList)
	case trimmed[0] == '{':
		var wrapper struct {
			Words []WordRecord `json:"words"`
		}
		if err := json.Unmarshal(trimmed, &wrapper); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedWordList, err)
		}
		records = wrapper.Words
	default:
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedWordList, err)
		}
	}

	entries := make([]*core.Entry, len(records))
	for i, rec := range records {
		entries[i] = rec.Entry()
	}
	return entries, nil
}
