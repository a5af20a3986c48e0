package analysis //nolint:testpackage // tests live next to the code under test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/depwatch/internal/domain/entities"
	"github.com/rios0rios0/depwatch/test/domain/entitybuilders"
)

func TestAttachAdvisories(t *testing.T) {
	t.Parallel()

	t.Run("should attach an advisory when the version escapes both sets", func(t *testing.T) {
		t.Parallel()

		// given
		records := []entities.DependencyRecord{
			entitybuilders.NewDependencyRecordBuilder().
				WithName("tokio").WithVersion("1.7.1").BuildRecord(),
		}
		advisories := []entities.Advisory{
			entitybuilders.NewAdvisoryBuilder().
				WithID("RUSTSEC-2016-0005").WithPackage("tokio").
				WithPatched(">= 1.8.0").BuildAdvisory(),
		}

		// when
		AttachAdvisories(records, advisories)

		// then
		require.Len(t, records[0].Vulnerabilities, 1)
		assert.Equal(t, "RUSTSEC-2016-0005", records[0].Vulnerabilities[0].ID)
		assert.Empty(t, records[0].Warnings)
	})

	t.Run("should not attach when the version satisfies a patched range", func(t *testing.T) {
		t.Parallel()

		// given
		records := []entities.DependencyRecord{
			entitybuilders.NewDependencyRecordBuilder().
				WithName("tokio").WithVersion("1.8.0").BuildRecord(),
		}
		advisories := []entities.Advisory{
			entitybuilders.NewAdvisoryBuilder().
				WithPackage("tokio").WithPatched(">= 1.8.0").BuildAdvisory(),
		}

		// when
		AttachAdvisories(records, advisories)

		// then
		assert.Empty(t, records[0].Vulnerabilities)
	})

	t.Run("should not attach when the version satisfies an unaffected range", func(t *testing.T) {
		t.Parallel()

		// given
		records := []entities.DependencyRecord{
			entitybuilders.NewDependencyRecordBuilder().
				WithName("tokio").WithVersion("0.9.0").BuildRecord(),
		}
		advisories := []entities.Advisory{
			entitybuilders.NewAdvisoryBuilder().
				WithPackage("tokio").WithPatched(">= 1.8.0").
				WithUnaffected("< 1.0.0").BuildAdvisory(),
		}

		// when
		AttachAdvisories(records, advisories)

		// then
		assert.Empty(t, records[0].Vulnerabilities)
	})

	t.Run("should not attach to a different package", func(t *testing.T) {
		t.Parallel()

		// given
		records := []entities.DependencyRecord{
			entitybuilders.NewDependencyRecordBuilder().
				WithName("hyper").WithVersion("1.7.1").BuildRecord(),
		}
		advisories := []entities.Advisory{
			entitybuilders.NewAdvisoryBuilder().WithPackage("tokio").BuildAdvisory(),
		}

		// when
		AttachAdvisories(records, advisories)

		// then
		assert.Empty(t, records[0].Vulnerabilities)
		assert.Empty(t, records[0].Warnings)
	})

	t.Run("should route warnings to the warning list", func(t *testing.T) {
		t.Parallel()

		// given
		records := []entities.DependencyRecord{
			entitybuilders.NewDependencyRecordBuilder().
				WithName("chrono").WithVersion("0.4.19").BuildRecord(),
		}
		advisories := []entities.Advisory{
			entitybuilders.NewAdvisoryBuilder().
				WithID("RUSTSEC-2020-0159").WithPackage("chrono").
				WithKind(entities.AdvisoryWarning).BuildAdvisory(),
		}

		// when
		AttachAdvisories(records, advisories)

		// then
		assert.Empty(t, records[0].Vulnerabilities)
		require.Len(t, records[0].Warnings, 1)
		assert.Equal(t, "RUSTSEC-2020-0159", records[0].Warnings[0].ID)
	})

	t.Run("should keep the input advisory order when several match", func(t *testing.T) {
		t.Parallel()

		// given
		records := []entities.DependencyRecord{
			entitybuilders.NewDependencyRecordBuilder().
				WithName("openssl").WithVersion("0.9.0").BuildRecord(),
		}
		advisories := []entities.Advisory{
			entitybuilders.NewAdvisoryBuilder().
				WithID("RUSTSEC-2021-0001").WithPackage("openssl").BuildAdvisory(),
			entitybuilders.NewAdvisoryBuilder().
				WithID("RUSTSEC-2021-0002").WithPackage("openssl").BuildAdvisory(),
		}

		// when
		AttachAdvisories(records, advisories)

		// then
		require.Len(t, records[0].Vulnerabilities, 2)
		assert.Equal(t, "RUSTSEC-2021-0001", records[0].Vulnerabilities[0].ID)
		assert.Equal(t, "RUSTSEC-2021-0002", records[0].Vulnerabilities[1].ID)
	})

	t.Run("should treat an unparsable range as matching nothing", func(t *testing.T) {
		t.Parallel()

		// given - a patched set that cannot be parsed leaves the version
		// outside both sets, so the advisory still applies
		records := []entities.DependencyRecord{
			entitybuilders.NewDependencyRecordBuilder().
				WithName("tokio").WithVersion("1.7.1").BuildRecord(),
		}
		advisories := []entities.Advisory{
			entitybuilders.NewAdvisoryBuilder().
				WithPackage("tokio").WithPatched("not-a-range").BuildAdvisory(),
		}

		// when
		AttachAdvisories(records, advisories)

		// then
		assert.Len(t, records[0].Vulnerabilities, 1)
	})
}
