package repositories

import (
	"context"

	"github.com/Masterminds/semver/v3"

	"github.com/rios0rios0/depwatch/internal/domain/entities"
)

// RegistryRepository abstracts the collaborator that knows which newer
// versions exist for a (name, version) pair, with optional changelog/commit
// metadata and the build-script-changed flag.
//
// Missing metadata is not an error: implementations degrade to absent
// optional fields. A nil candidate with nil error means no newer version is
// known.
type RegistryRepository interface {
	// GetCandidate returns the update candidate for one dependency
	// occurrence, looked up in the given source (a feed file path for the
	// exported-feed implementation).
	GetCandidate(
		ctx context.Context,
		source string,
		name string,
		version *semver.Version,
	) (*entities.UpdateCandidate, error)
}
