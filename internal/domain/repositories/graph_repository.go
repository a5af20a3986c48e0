package repositories

import (
	"context"

	"github.com/rios0rios0/depwatch/internal/domain/entities"
)

// GraphRepository abstracts the collaborator that supplies the raw
// dependency graph for a tracked repository: the ordered sequence of
// (name, version, source, direct, dev) occurrences at a given commit.
// depwatch never parses manifests or lockfiles itself; the graph arrives
// already resolved.
type GraphRepository interface {
	// GetGraph loads the dependency graph from the given source locator
	// (a file path for the exported-feed implementation).
	GetGraph(ctx context.Context, source string) (*entities.DependencyGraph, error)
}
