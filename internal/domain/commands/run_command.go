package commands

import (
	"context"
	"errors"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/depwatch/internal/domain/entities"
)

// Run is the interface for the run command (batch mode).
type Run interface {
	Execute(ctx context.Context, settings *entities.Settings, opts RunOptions) error
}

// RunOptions holds runtime options for a single batch run.
type RunOptions struct {
	Verbose bool
	RepoURL string // If set, only analyze this repository (CLI override)
}

// RunCommand refreshes every configured repository in sequence. Individual
// repository failures are logged and counted; they never abort the batch.
type RunCommand struct {
	refresh Refresh
}

// NewRunCommand creates a new RunCommand wrapping the refresh command.
func NewRunCommand(refresh Refresh) *RunCommand {
	return &RunCommand{refresh: refresh}
}

// Execute analyzes all configured repositories using the provided settings.
func (it *RunCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts RunOptions,
) error {
	if opts.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	if len(settings.Repositories) == 0 {
		return errors.New("no repositories configured")
	}

	totalRepos := 0
	totalErrors := 0
	totalChanges := 0

	for _, repo := range settings.Repositories {
		// Skip if CLI filter is set and doesn't match
		if opts.RepoURL != "" && repo.URL != opts.RepoURL {
			continue
		}

		totalRepos++

		snapshot, err := it.refresh.Execute(ctx, settings, repo)
		if err != nil {
			logger.Errorf("Failed to analyze %q: %v", repo.URL, err)
			totalErrors++
			continue
		}

		if !snapshot.Changes.IsEmpty() {
			totalChanges++
		}
	}

	logger.Infof(
		"Run complete: %d repos analyzed, %d with changes, %d errors",
		totalRepos, totalChanges, totalErrors,
	)
	return nil
}
