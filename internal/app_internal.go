package internal

import (
	"github.com/rios0rios0/depwatch/internal/domain/entities"
)

// AppInternal aggregates everything the CLI layer needs from the container.
type AppInternal struct {
	controllers *[]entities.Controller
}

// NewAppInternal creates a new AppInternal.
func NewAppInternal(controllers *[]entities.Controller) *AppInternal {
	return &AppInternal{controllers: controllers}
}

// GetControllers returns the registered controllers.
func (it *AppInternal) GetControllers() []entities.Controller {
	return *it.controllers
}
