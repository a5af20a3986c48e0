package repositories

import (
	"go.uber.org/dig"

	domainRepos "github.com/rios0rios0/depwatch/internal/domain/repositories"
	"github.com/rios0rios0/depwatch/internal/infrastructure/repositories/advisoryfile"
	"github.com/rios0rios0/depwatch/internal/infrastructure/repositories/filestore"
	"github.com/rios0rios0/depwatch/internal/infrastructure/repositories/gitmirror"
	"github.com/rios0rios0/depwatch/internal/infrastructure/repositories/graphfile"
	"github.com/rios0rios0/depwatch/internal/infrastructure/repositories/updatefeed"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register constructors
	if err := container.Provide(graphfile.NewGraphRepository); err != nil {
		return err
	}
	if err := container.Provide(updatefeed.NewRegistryRepository); err != nil {
		return err
	}
	if err := container.Provide(advisoryfile.NewAdvisoryRepository); err != nil {
		return err
	}
	if err := container.Provide(filestore.NewSnapshotRepository); err != nil {
		return err
	}
	if err := container.Provide(gitmirror.NewMirrorRepository); err != nil {
		return err
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *graphfile.GraphRepository) domainRepos.GraphRepository {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *updatefeed.RegistryRepository) domainRepos.RegistryRepository {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *advisoryfile.AdvisoryRepository) domainRepos.AdvisoryRepository {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *filestore.SnapshotRepository) domainRepos.SnapshotRepository {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *gitmirror.MirrorRepository) domainRepos.MirrorRepository {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
