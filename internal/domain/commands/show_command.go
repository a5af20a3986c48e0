package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/rios0rios0/depwatch/internal/domain/entities"
	"github.com/rios0rios0/depwatch/internal/domain/repositories"
)

// Show is the interface for the show command.
type Show interface {
	Execute(ctx context.Context, settings *entities.Settings, opts ShowOptions, out io.Writer) error
}

// ShowOptions holds runtime options for the show command.
type ShowOptions struct {
	RepoURL string
	Commit  string // If set, show the snapshot taken at this commit
	AsJSON  bool   // Raw JSON instead of the Markdown report
}

// ShowCommand prints the latest committed analysis for a repository.
type ShowCommand struct {
	snapshots repositories.SnapshotRepository
}

// NewShowCommand creates a new ShowCommand.
func NewShowCommand(snapshots repositories.SnapshotRepository) *ShowCommand {
	return &ShowCommand{snapshots: snapshots}
}

// Execute writes the latest analysis of the repository to out.
func (it *ShowCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts ShowOptions,
	out io.Writer,
) error {
	var snapshot *entities.AnalysisSnapshot
	var err error
	if opts.Commit != "" {
		snapshot, err = it.snapshots.FindCommit(ctx, settings.StateDir, opts.RepoURL, opts.Commit)
	} else {
		snapshot, err = it.snapshots.GetLastAnalysis(ctx, settings.StateDir, opts.RepoURL)
	}
	if err != nil {
		return fmt.Errorf("failed to load analysis for %q: %w", opts.RepoURL, err)
	}
	if snapshot == nil {
		return fmt.Errorf("no analysis found for %q, refresh it first", opts.RepoURL)
	}

	if opts.AsJSON {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(snapshot)
	}

	_, err = io.WriteString(out, entities.FormatReport(snapshot))
	return err
}
