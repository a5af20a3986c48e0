package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/depwatch/internal/domain/repositories"
)

// SpyMirrorRepository implements repositories.MirrorRepository as a configurable spy.
type SpyMirrorRepository struct {
	HeadCommit string
	HeadErr    error

	Origin    string
	OriginErr error

	// spy: paths that were inspected
	RequestedPaths []string
}

var _ repositories.MirrorRepository = (*SpyMirrorRepository)(nil)

func (it *SpyMirrorRepository) Head(path string) (string, error) {
	it.RequestedPaths = append(it.RequestedPaths, path)
	return it.HeadCommit, it.HeadErr
}

func (it *SpyMirrorRepository) OriginURL(path string) (string, error) {
	it.RequestedPaths = append(it.RequestedPaths, path)
	return it.Origin, it.OriginErr
}
