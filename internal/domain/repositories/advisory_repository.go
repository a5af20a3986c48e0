package repositories

import (
	"context"
	"errors"

	"github.com/rios0rios0/depwatch/internal/domain/entities"
)

// ErrAdvisoryDataUnavailable signals that the advisory feed could not be
// obtained at all. It is fatal for correctness reasons: silently proceeding
// with an empty advisory set could mask a vulnerability.
var ErrAdvisoryDataUnavailable = errors.New("advisory data unavailable")

// AdvisoryRepository abstracts the advisory database collaborator.
type AdvisoryRepository interface {
	// GetAdvisories returns every advisory in the feed at the given source
	// locator, in feed order. Errors wrap ErrAdvisoryDataUnavailable.
	GetAdvisories(ctx context.Context, source string) ([]entities.Advisory, error)
}
