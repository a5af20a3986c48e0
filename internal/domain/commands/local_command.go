package commands

import (
	"context"
	"io"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/depwatch/internal/domain/entities"
	"github.com/rios0rios0/depwatch/internal/domain/repositories"
)

// Local is the interface for the local command (standalone mode).
type Local interface {
	Execute(ctx context.Context, opts LocalOptions, out io.Writer) error
}

// LocalOptions holds runtime options for the local mode.
type LocalOptions struct {
	RepoDir    string // Local clone to analyze
	Graph      string // Dependency graph export
	Updates    string // Update feed export
	Advisories string // Advisory feed export
	StateDir   string // Snapshot storage root
	Verbose    bool
}

// LocalCommand analyzes a single local repository without a config file:
// the clone identifies the repository (origin URL + HEAD commit), the data
// feeds come from flags, and the resulting report is written to out.
type LocalCommand struct {
	refresh Refresh
	mirrors repositories.MirrorRepository
}

// NewLocalCommand creates a new LocalCommand.
func NewLocalCommand(
	refresh Refresh,
	mirrors repositories.MirrorRepository,
) *LocalCommand {
	return &LocalCommand{refresh: refresh, mirrors: mirrors}
}

// Execute runs one standalone analysis for the repository at RepoDir.
func (it *LocalCommand) Execute(
	ctx context.Context,
	opts LocalOptions,
	out io.Writer,
) error {
	if opts.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	repoURL, err := it.mirrors.OriginURL(opts.RepoDir)
	if err != nil {
		// A clone without an origin remote is still analyzable; the path
		// then identifies the repository in the snapshot store.
		logger.Warnf("Couldn't resolve origin of %q, using the path as identity: %v",
			opts.RepoDir, err)
		repoURL = opts.RepoDir
	}

	settings := &entities.Settings{
		StateDir:    opts.StateDir,
		AdvisoryDB:  opts.Advisories,
		Parallelism: entities.DefaultParallelism,
	}

	snapshot, err := it.refresh.Execute(ctx, settings, entities.RepositoryConfig{
		URL:     repoURL,
		Mirror:  opts.RepoDir,
		Graph:   opts.Graph,
		Updates: opts.Updates,
	})
	if err != nil {
		return err
	}

	_, err = io.WriteString(out, entities.FormatReport(snapshot))
	return err
}
