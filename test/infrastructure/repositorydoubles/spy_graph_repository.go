// Package repositorydoubles provides test doubles (spies, stubs, dummies) for
// repository interfaces. These are hand-crafted implementations, no mock
// frameworks.
package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/depwatch/internal/domain/entities"
	"github.com/rios0rios0/depwatch/internal/domain/repositories"
)

// SpyGraphRepository implements repositories.GraphRepository as a configurable spy.
type SpyGraphRepository struct {
	Graph    *entities.DependencyGraph
	GraphErr error

	// spy: sources that were requested
	RequestedSources []string
}

var _ repositories.GraphRepository = (*SpyGraphRepository)(nil)

func (it *SpyGraphRepository) GetGraph(
	_ context.Context, source string,
) (*entities.DependencyGraph, error) {
	it.RequestedSources = append(it.RequestedSources, source)
	return it.Graph, it.GraphErr
}
