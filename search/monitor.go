package search

// SearchMonitor provides hooks to observe the search process.
// Implement this interface to track intermediate steps and results during search.
type SearchMonitor interface {
	Start(req Request)
	AfterClassify(kind QueryKind, p Pattern)
	CacheHit(key string)
	AfterMatch(cands []Candidate)
	TranslationFallback()
	AfterOrder(cands []Candidate)
	Finish(results []Result)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ Request)                      {}
func (n *noopMonitor) AfterClassify(_ QueryKind, _ Pattern) {}
func (n *noopMonitor) CacheHit(_ string)                    {}
func (n *noopMonitor) AfterMatch(_ []Candidate)             {}
func (n *noopMonitor) TranslationFallback()                 {}
func (n *noopMonitor) AfterOrder(_ []Candidate)             {}
func (n *noopMonitor) Finish(_ []Result)                    {}
