package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/depwatch/internal/domain/entities"
	"github.com/rios0rios0/depwatch/internal/domain/repositories"
)

// SpyAdvisoryRepository implements repositories.AdvisoryRepository as a configurable spy.
type SpyAdvisoryRepository struct {
	Advisories  []entities.Advisory
	AdvisoryErr error

	// spy: sources that were requested
	RequestedSources []string
}

var _ repositories.AdvisoryRepository = (*SpyAdvisoryRepository)(nil)

func (it *SpyAdvisoryRepository) GetAdvisories(
	_ context.Context, source string,
) ([]entities.Advisory, error) {
	it.RequestedSources = append(it.RequestedSources, source)
	return it.Advisories, it.AdvisoryErr
}
