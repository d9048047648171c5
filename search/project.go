package search

import "github.com/poiesic/igbodict/core"

// Result is the externally visible form of an entry. Its JSON form has
// exactly these keys; storage fields never appear.
type Result struct {
	Variations  []string        `json:"variations"`
	Definitions []string        `json:"definitions"`
	Stems       []string        `json:"stems"`
	Examples    []ExampleResult `json:"examples"`
	Id          core.ID         `json:"id"`
	Normalized  string          `json:"normalized"`
	Word        string          `json:"word"`
	WordClass   string          `json:"wordClass"`
}

// ExampleResult is the externally visible form of an example.
type ExampleResult struct {
	Igbo            string    `json:"igbo"`
	English         string    `json:"english"`
	AssociatedWords []core.ID `json:"associatedWords"`
	Id              core.ID   `json:"id"`
}

// Project builds the Result for e. Slices are copied and never nil.
func Project(e *core.Entry) Result {
	r := Result{
		Variations:  copyStrings(e.Variations),
		Definitions: copyStrings(e.Definitions),
		Stems:       copyStrings(e.Stems),
		Examples:    make([]ExampleResult, len(e.Examples)),
		Id:          e.Id,
		Normalized:  Normalize(e.Word),
		Word:        e.Word,
		WordClass:   string(e.WordClass),
	}
	for i, ex := range e.Examples {
		r.Examples[i] = ExampleResult{
			Igbo:            ex.Igbo,
			English:         ex.English,
			AssociatedWords: append(make([]core.ID, 0, len(ex.AssociatedWords)), ex.AssociatedWords...),
			Id:              ex.Id,
		}
	}
	return r
}

// ProjectAll projects cands in order, skipping repeated entry ids.
func ProjectAll(cands []Candidate) []Result {
	out := make([]Result, 0, len(cands))
	seen := make(map[core.ID]struct{}, len(cands))
	for _, c := range cands {
		if _, dup := seen[c.Entry.Id]; dup {
			continue
		}
		seen[c.Entry.Id] = struct{}{}
		out = append(out, Project(c.Entry))
	}
	return out
}

func copyStrings(s []string) []string {
	return append(make([]string, 0, len(s)), s...)
}

func cloneResults(rs []Result) []Result {
	out := make([]Result, len(rs))
	for i, r := range rs {
		r.Variations = copyStrings(r.Variations)
		r.Definitions = copyStrings(r.Definitions)
		r.Stems = copyStrings(r.Stems)
		examples := make([]ExampleResult, len(r.Examples))
		for j, ex := range r.Examples {
			ex.AssociatedWords = append(make([]core.ID, 0, len(ex.AssociatedWords)), ex.AssociatedWords...)
			examples[j] = ex
		}
		r.Examples = examples
		out[i] = r
	}
	return out
}
