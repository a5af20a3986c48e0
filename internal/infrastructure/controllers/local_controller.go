package controllers

import (
	"context"
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/depwatch/internal/domain/commands"
	"github.com/rios0rios0/depwatch/internal/domain/entities"
)

// LocalController handles the root command with a path argument (standalone local mode).
type LocalController struct {
	command commands.Local
}

// NewLocalController creates a new LocalController.
func NewLocalController(command commands.Local) *LocalController {
	return &LocalController{command: command}
}

// GetBind returns the Cobra command metadata for the local controller.
func (it *LocalController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "local",
		Short: "Analyze a local repository",
		Long: `Analyze the dependencies of a local Git repository.
Reads the dependency graph and update feed exports, matches advisories,
scores every update, and prints the resulting report.`,
	}
}

// Execute runs the standalone local analysis mode.
func (it *LocalController) Execute(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	verbose, _ := cmd.Flags().GetBool("verbose")
	graph, _ := cmd.Flags().GetString("graph")
	updates, _ := cmd.Flags().GetString("updates")
	advisories, _ := cmd.Flags().GetString("advisories")
	stateDir, _ := cmd.Flags().GetString("state-dir")

	repoDir := "."
	if len(args) > 0 {
		repoDir = args[0]
	}

	if graph == "" || updates == "" || advisories == "" {
		logger.Error("the --graph, --updates and --advisories flags are required in local mode")
		return
	}

	if err := it.command.Execute(ctx, commands.LocalOptions{
		RepoDir:    repoDir,
		Graph:      graph,
		Updates:    updates,
		Advisories: advisories,
		StateDir:   stateDir,
		Verbose:    verbose,
	}, os.Stdout); err != nil {
		logger.Errorf("Local analysis failed: %v", err)
	}
}

// AddFlags adds the local-specific flags to the given Cobra command.
func (it *LocalController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("graph", "", "Path to the dependency graph export")
	cmd.Flags().String("updates", "", "Path to the update feed export")
	cmd.Flags().String("advisories", "", "Path to the advisory database export")
	cmd.Flags().String("state-dir", "", "Snapshot storage root (default: ~/.depwatch/state)")
}
