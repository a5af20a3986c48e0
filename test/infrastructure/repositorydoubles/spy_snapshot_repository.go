package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/depwatch/internal/domain/entities"
	"github.com/rios0rios0/depwatch/internal/domain/repositories"
)

// SpySnapshotRepository implements repositories.SnapshotRepository as a configurable spy.
type SpySnapshotRepository struct {
	// --- GetLastAnalysis ---
	LastAnalysis    *entities.AnalysisSnapshot
	LastAnalysisErr error

	// --- FindCommit ---
	FoundSnapshot *entities.AnalysisSnapshot
	FindCommitErr error
	// spy: commits that were looked up
	RequestedCommits []string

	// --- SaveAnalysis ---
	SaveErr error
	// spy: snapshots that were saved
	SavedSnapshots []*entities.AnalysisSnapshot
}

var _ repositories.SnapshotRepository = (*SpySnapshotRepository)(nil)

func (it *SpySnapshotRepository) GetLastAnalysis(
	_ context.Context, _, _ string,
) (*entities.AnalysisSnapshot, error) {
	return it.LastAnalysis, it.LastAnalysisErr
}

func (it *SpySnapshotRepository) FindCommit(
	_ context.Context, _, _, commit string,
) (*entities.AnalysisSnapshot, error) {
	it.RequestedCommits = append(it.RequestedCommits, commit)
	return it.FoundSnapshot, it.FindCommitErr
}

func (it *SpySnapshotRepository) SaveAnalysis(
	_ context.Context, _ string, snapshot *entities.AnalysisSnapshot,
) error {
	it.SavedSnapshots = append(it.SavedSnapshots, snapshot)
	return it.SaveErr
}
