package commands

import (
	"errors"
	"sync"
)

// ErrAnalysisInProgress is returned when a refresh is requested for a
// repository that is already being analyzed. Two concurrent runs for the
// same repository would race to become "the previous snapshot", so the
// second request is rejected instead of queued.
var ErrAnalysisInProgress = errors.New("an analysis is already running for this repository")

// runGuard enforces at most one concurrent analysis run per repository.
// Runs for different repositories are independent and may proceed in
// parallel.
type runGuard struct {
	mu     sync.Mutex
	active map[string]bool
}

func newRunGuard() *runGuard {
	return &runGuard{active: make(map[string]bool)}
}

// TryAcquire reserves the repository for one run. It returns false when a
// run is already in flight.
func (g *runGuard) TryAcquire(repository string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.active[repository] {
		return false
	}
	g.active[repository] = true
	return true
}

// Release frees the repository after a run finishes, whatever its outcome.
func (g *runGuard) Release(repository string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.active, repository)
}
