package entities

import (
	"github.com/spf13/cobra"
)

// Controller is the contract between the CLI layer and its controllers.
type Controller interface {
	// GetBind returns the Cobra command metadata for the controller.
	GetBind() ControllerBind

	// Execute runs the controller with the parsed command and arguments.
	Execute(cmd *cobra.Command, args []string)
}
