package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"sync"

	"github.com/Masterminds/semver/v3"

	"github.com/rios0rios0/depwatch/internal/domain/entities"
	"github.com/rios0rios0/depwatch/internal/domain/repositories"
)

// SpyRegistryRepository implements repositories.RegistryRepository as a
// configurable spy. Candidates are keyed by "name@version"; lookups for
// unconfigured pairs report no newer version. Safe for concurrent use, the
// refresh command fans out candidate lookups.
type SpyRegistryRepository struct {
	Candidates   map[string]*entities.UpdateCandidate
	CandidateErr error

	// spy: "name@version" pairs that were requested
	mu             sync.Mutex
	RequestedPairs []string
}

var _ repositories.RegistryRepository = (*SpyRegistryRepository)(nil)

func (it *SpyRegistryRepository) GetCandidate(
	_ context.Context, _ string, name string, version *semver.Version,
) (*entities.UpdateCandidate, error) {
	key := name + "@" + version.String()

	it.mu.Lock()
	it.RequestedPairs = append(it.RequestedPairs, key)
	it.mu.Unlock()

	if it.CandidateErr != nil {
		return nil, it.CandidateErr
	}
	return it.Candidates[key], nil
}
