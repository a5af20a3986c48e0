package controllers

import (
	"context"
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/depwatch/internal/domain/commands"
	"github.com/rios0rios0/depwatch/internal/domain/entities"
)

// ShowController handles the "show" subcommand.
type ShowController struct {
	command commands.Show
}

// NewShowController creates a new ShowController.
func NewShowController(command commands.Show) *ShowController {
	return &ShowController{command: command}
}

// GetBind returns the Cobra command metadata for the show controller.
func (it *ShowController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "show",
		Short: "Show the latest analysis of a repository",
		Long: `Show the latest committed analysis snapshot of a repository,
either as a Markdown report or as raw JSON.`,
	}
}

// Execute prints the latest analysis of the selected repository.
func (it *ShowController) Execute(cmd *cobra.Command, _ []string) {
	ctx := context.Background()

	configPath, _ := cmd.Flags().GetString("config")
	repoURL, _ := cmd.Flags().GetString("repo")
	commit, _ := cmd.Flags().GetString("commit")
	asJSON, _ := cmd.Flags().GetBool("json")

	cfgPath := configPath
	if cfgPath == "" {
		var err error
		cfgPath, err = entities.FindConfigFile()
		if err != nil {
			logger.Errorf(
				"no config file found: %v\nSpecify one with --config or create depwatch.yaml",
				err,
			)
			return
		}
	}

	settings, err := entities.NewSettings(cfgPath)
	if err != nil {
		logger.Errorf("failed to load config: %v", err)
		return
	}

	if repoURL == "" {
		if len(settings.Repositories) != 1 {
			logger.Error("multiple repositories configured, select one with --repo")
			return
		}
		repoURL = settings.Repositories[0].URL
	}

	if showErr := it.command.Execute(ctx, settings, commands.ShowOptions{
		RepoURL: repoURL,
		Commit:  commit,
		AsJSON:  asJSON,
	}, os.Stdout); showErr != nil {
		logger.Errorf("Show failed: %v", showErr)
	}
}

// AddFlags adds the show-specific flags to the given Cobra command.
func (it *ShowController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("repo", "", "Repository URL to show (default: the only configured one)")
	cmd.Flags().String("commit", "", "Show the snapshot taken at this commit (default: latest)")
	cmd.Flags().Bool("json", false, "Print the raw snapshot as JSON")
}
