// Package gitmirror inspects already-cloned local mirrors of tracked
// repositories. It never clones or pulls; keeping mirrors fresh is the
// surrounding service's job.
package gitmirror

import (
	"fmt"

	git "github.com/go-git/go-git/v5"
)

// MirrorRepository resolves commit and origin information from a local
// clone.
type MirrorRepository struct{}

// NewMirrorRepository creates a new go-git backed mirror repository.
func NewMirrorRepository() *MirrorRepository {
	return &MirrorRepository{}
}

// Head returns the commit hash the mirror's HEAD points at.
func (it *MirrorRepository) Head(path string) (string, error) {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return "", fmt.Errorf("failed to open mirror %q: %w", path, err)
	}

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("failed to resolve HEAD of %q: %w", path, err)
	}

	return head.Hash().String(), nil
}

// OriginURL returns the URL of the mirror's origin remote.
func (it *MirrorRepository) OriginURL(path string) (string, error) {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return "", fmt.Errorf("failed to open mirror %q: %w", path, err)
	}

	remote, err := repo.Remote(git.DefaultRemoteName)
	if err != nil {
		return "", fmt.Errorf("failed to resolve origin of %q: %w", path, err)
	}

	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", fmt.Errorf("mirror %q has an origin remote without URLs", path)
	}
	return urls[0], nil
}
