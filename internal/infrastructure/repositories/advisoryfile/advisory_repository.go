// Package advisoryfile reads advisory feeds: JSON exports of a RustSec-style
// advisory database (identifier, package, title, kind, patched and
// unaffected version ranges).
package advisoryfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/Masterminds/semver/v3"

	"github.com/rios0rios0/depwatch/internal/domain/entities"
	"github.com/rios0rios0/depwatch/internal/domain/repositories"
)

// AdvisoryRepository loads advisory feed exports from disk. Any failure to
// obtain or understand the feed is fatal and wraps
// repositories.ErrAdvisoryDataUnavailable: proceeding with an empty set
// could mask a vulnerability.
type AdvisoryRepository struct{}

// NewAdvisoryRepository creates a new file-backed advisory repository.
func NewAdvisoryRepository() *AdvisoryRepository {
	return &AdvisoryRepository{}
}

// advisoryDocument is the wire form of an advisory feed.
type advisoryDocument struct {
	Advisories []entities.Advisory `json:"advisories"`
}

// GetAdvisories reads every advisory from the feed at the given path, in
// feed order.
func (it *AdvisoryRepository) GetAdvisories(
	_ context.Context,
	source string,
) ([]entities.Advisory, error) {
	data, err := os.ReadFile(source)
	if err != nil {
		return nil, fmt.Errorf("failed to read advisory feed %q: %v: %w",
			source, err, repositories.ErrAdvisoryDataUnavailable)
	}

	var document advisoryDocument
	if unmarshalErr := json.Unmarshal(data, &document); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse advisory feed %q: %v: %w",
			source, unmarshalErr, repositories.ErrAdvisoryDataUnavailable)
	}

	for i, advisory := range document.Advisories {
		if validateErr := validateAdvisory(advisory); validateErr != nil {
			return nil, fmt.Errorf("invalid advisory at index %d: %v: %w",
				i, validateErr, repositories.ErrAdvisoryDataUnavailable)
		}
	}

	return document.Advisories, nil
}

// validateAdvisory rejects advisories that could never match correctly:
// missing identity or unparseable version ranges.
func validateAdvisory(advisory entities.Advisory) error {
	if advisory.ID == "" {
		return fmt.Errorf("advisory without id")
	}
	if advisory.Package == "" {
		return fmt.Errorf("advisory %s without package", advisory.ID)
	}
	if advisory.Kind != entities.AdvisoryVulnerability &&
		advisory.Kind != entities.AdvisoryWarning {
		return fmt.Errorf("advisory %s with unknown kind %q", advisory.ID, advisory.Kind)
	}

	for _, expr := range advisory.Patched {
		if _, err := semver.NewConstraint(expr); err != nil {
			return fmt.Errorf("advisory %s with invalid patched range %q: %w",
				advisory.ID, expr, err)
		}
	}
	for _, expr := range advisory.Unaffected {
		if _, err := semver.NewConstraint(expr); err != nil {
			return fmt.Errorf("advisory %s with invalid unaffected range %q: %w",
				advisory.ID, expr, err)
		}
	}

	return nil
}
