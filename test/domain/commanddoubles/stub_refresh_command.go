// Package commanddoubles provides test doubles for command interfaces.
package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/depwatch/internal/domain/commands"
	"github.com/rios0rios0/depwatch/internal/domain/entities"
)

// StubRefreshCommand is a stub implementation of commands.Refresh.
type StubRefreshCommand struct {
	Snapshot   *entities.AnalysisSnapshot
	ExecuteErr error

	ExecuteCallCount int
	LastSettings     *entities.Settings
	LastRepo         entities.RepositoryConfig
}

var _ commands.Refresh = (*StubRefreshCommand)(nil)

func (it *StubRefreshCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	repo entities.RepositoryConfig,
) (*entities.AnalysisSnapshot, error) {
	it.ExecuteCallCount++
	it.LastSettings = settings
	it.LastRepo = repo
	return it.Snapshot, it.ExecuteErr
}
