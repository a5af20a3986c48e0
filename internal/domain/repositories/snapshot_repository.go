package repositories

import (
	"context"
	"fmt"

	"github.com/rios0rios0/depwatch/internal/domain/entities"
)

// PersistenceError reports a failed snapshot store operation. It occurs only
// after the engine has produced a complete snapshot: the in-memory snapshot
// remains valid and retryable, and previously committed snapshots are
// untouched.
type PersistenceError struct {
	Op         string
	Repository string
	Err        error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("snapshot store %s failed for %q: %v", e.Op, e.Repository, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// SnapshotRepository abstracts the persistent document store for analysis
// snapshots. Snapshots are immutable once committed, so no locking is needed
// on the read side.
type SnapshotRepository interface {
	// GetLastAnalysis returns the most recent committed snapshot for the
	// repository, or nil when none exists.
	GetLastAnalysis(ctx context.Context, dir, repository string) (*entities.AnalysisSnapshot, error)

	// FindCommit returns the newest snapshot of the repository at the given
	// commit, or nil when none exists.
	FindCommit(ctx context.Context, dir, repository, commit string) (*entities.AnalysisSnapshot, error)

	// SaveAnalysis commits one fully-formed snapshot. Failures are reported
	// as *PersistenceError.
	SaveAnalysis(ctx context.Context, dir string, snapshot *entities.AnalysisSnapshot) error
}
