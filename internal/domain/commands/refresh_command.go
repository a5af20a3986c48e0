package commands

import (
	"context"
	"fmt"
	"sync"

	"github.com/Masterminds/semver/v3"
	logger "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/rios0rios0/depwatch/internal/domain/analysis"
	"github.com/rios0rios0/depwatch/internal/domain/entities"
	"github.com/rios0rios0/depwatch/internal/domain/repositories"
)

// Refresh is the interface for a single analysis run of one repository.
type Refresh interface {
	Execute(
		ctx context.Context,
		settings *entities.Settings,
		repo entities.RepositoryConfig,
	) (*entities.AnalysisSnapshot, error)
}

// RefreshCommand orchestrates one analysis run: resolve the commit, load the
// graph, attach update candidates, load advisories, run the engine against
// the previous snapshot, and commit the result. Everything is computed fully
// in memory and saved once at the end, so a failure or cancellation mid-run
// never exposes a partial snapshot.
type RefreshCommand struct {
	graphs     repositories.GraphRepository
	registry   repositories.RegistryRepository
	advisories repositories.AdvisoryRepository
	snapshots  repositories.SnapshotRepository
	mirrors    repositories.MirrorRepository
	analyzer   *analysis.Analyzer
	guard      *runGuard
}

// NewRefreshCommand creates a new RefreshCommand with the given collaborators.
func NewRefreshCommand(
	graphs repositories.GraphRepository,
	registry repositories.RegistryRepository,
	advisories repositories.AdvisoryRepository,
	snapshots repositories.SnapshotRepository,
	mirrors repositories.MirrorRepository,
) *RefreshCommand {
	return &RefreshCommand{
		graphs:     graphs,
		registry:   registry,
		advisories: advisories,
		snapshots:  snapshots,
		mirrors:    mirrors,
		analyzer:   analysis.NewAnalyzer(),
		guard:      newRunGuard(),
	}
}

// Execute runs one full analysis for the repository. A second concurrent
// call for the same repository URL fails with ErrAnalysisInProgress.
func (it *RefreshCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	repo entities.RepositoryConfig,
) (*entities.AnalysisSnapshot, error) {
	if !it.guard.TryAcquire(repo.URL) {
		return nil, fmt.Errorf("refresh of %q rejected: %w", repo.URL, ErrAnalysisInProgress)
	}
	defer it.guard.Release(repo.URL)

	graph, err := it.graphs.GetGraph(ctx, repo.Graph)
	if err != nil {
		return nil, fmt.Errorf("failed to load dependency graph for %q: %w", repo.URL, err)
	}

	commit := graph.Commit
	if repo.Mirror != "" {
		head, headErr := it.mirrors.Head(repo.Mirror)
		if headErr != nil {
			return nil, fmt.Errorf("failed to resolve HEAD of mirror %q: %w", repo.Mirror, headErr)
		}
		commit = head
	}
	logger.Infof("Analyzing %s at commit %s", repo.URL, commit)

	records := it.attachCandidates(ctx, repo.Updates, graph.Dependencies, settings.Parallelism)

	advisories, err := it.advisories.GetAdvisories(ctx, settings.AdvisoryDB)
	if err != nil {
		// Fatal: an empty advisory set could silently mask a vulnerability.
		return nil, err
	}

	previous, err := it.snapshots.GetLastAnalysis(ctx, settings.StateDir, repo.URL)
	if err != nil {
		// A missing or unreadable previous snapshot only disables the diff,
		// perhaps because the stored format changed.
		logger.Warnf("Couldn't load previous analysis for %q: %v", repo.URL, err)
		previous = nil
	}

	snapshot, err := it.analyzer.Analyze(analysis.Input{
		Repository:   repo.URL,
		Commit:       commit,
		Dependencies: records,
		Advisories:   advisories,
		Previous:     previous,
	})
	if err != nil {
		return nil, err
	}

	if saveErr := it.snapshots.SaveAnalysis(ctx, settings.StateDir, snapshot); saveErr != nil {
		// The snapshot itself is complete and retryable; only the commit to
		// storage failed.
		return snapshot, saveErr
	}

	logger.Infof("Analysis of %s done: %d dependencies, %d new updates",
		repo.URL, len(snapshot.Dependencies), len(snapshot.Changes.NewUpdates))
	return snapshot, nil
}

// attachCandidates looks up update candidates for every distinct
// (name, version) pair with bounded parallelism and attaches them to the
// matching records. Lookup failures are non-fatal: the affected records
// simply keep no candidate, mirroring how a missing changelog degrades to an
// absent optional field.
func (it *RefreshCommand) attachCandidates(
	ctx context.Context,
	source string,
	dependencies []entities.DependencyRecord,
	parallelism int,
) []entities.DependencyRecord {
	records := make([]entities.DependencyRecord, len(dependencies))
	copy(records, dependencies)

	type pair struct {
		name    string
		version string
	}

	// The same package name+version can occur several times (direct/dev
	// flags differ), but the registry answer is identical for all of them.
	// Records without a version are left for graph validation to reject.
	distinct := make(map[pair]*semver.Version)
	for i := range records {
		if records[i].Version == nil {
			continue
		}
		key := pair{name: records[i].Name, version: records[i].Version.String()}
		distinct[key] = records[i].Version
	}

	var mu sync.Mutex
	candidates := make(map[pair]*entities.UpdateCandidate, len(distinct))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(parallelism)

	for key, version := range distinct {
		group.Go(func() error {
			candidate, err := it.registry.GetCandidate(
				groupCtx, source, key.name, version)
			if err != nil {
				logger.Debugf("No update candidate for %s@%s: %v",
					key.name, key.version, err)
				return nil
			}
			mu.Lock()
			candidates[key] = candidate
			mu.Unlock()
			return nil
		})
	}
	_ = group.Wait() // workers never return errors; failures degrade per record

	for i := range records {
		record := &records[i]
		if record.Version == nil {
			continue
		}
		key := pair{name: record.Name, version: record.Version.String()}
		if candidate := candidates[key]; candidate != nil && len(candidate.Versions) > 0 {
			record.Update = candidate
		}
	}

	return records
}
