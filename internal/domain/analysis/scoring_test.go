package analysis //nolint:testpackage // tests live next to the code under test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/depwatch/internal/domain/entities"
	"github.com/rios0rios0/depwatch/test/domain/entitybuilders"
)

func TestScorer_Score(t *testing.T) {
	t.Parallel()

	t.Run("should score a major change with a vulnerability as 40", func(t *testing.T) {
		t.Parallel()

		// given
		record := entitybuilders.NewDependencyRecordBuilder().
			WithVersion("1.2.3").WithCandidates("2.0.0").BuildRecord()
		record.Vulnerabilities = []entities.Advisory{
			entitybuilders.NewAdvisoryBuilder().BuildAdvisory(),
		}

		// when
		NewScorer().Score(&record)

		// then
		assert.Equal(t, 40, record.PriorityScore)
		assert.Equal(t, []string{
			"MAJOR version change",
			"RUSTSEC vulnerability associated",
		}, record.PriorityReasons)
	})

	t.Run("should score a minor change as 3", func(t *testing.T) {
		t.Parallel()

		// given
		record := entitybuilders.NewDependencyRecordBuilder().
			WithVersion("1.2.3").WithCandidates("1.3.0").BuildRecord()

		// when
		NewScorer().Score(&record)

		// then
		assert.Equal(t, 3, record.PriorityScore)
		assert.Equal(t, []string{"MINOR version change"}, record.PriorityReasons)
	})

	t.Run("should score a patch change with a warning as 21", func(t *testing.T) {
		t.Parallel()

		// given
		record := entitybuilders.NewDependencyRecordBuilder().
			WithVersion("1.7.1").WithCandidates("1.7.2").BuildRecord()
		record.Warnings = []entities.Advisory{
			entitybuilders.NewAdvisoryBuilder().
				WithKind(entities.AdvisoryWarning).BuildAdvisory(),
		}

		// when
		NewScorer().Score(&record)

		// then
		assert.Equal(t, 21, record.PriorityScore)
		assert.Equal(t, []string{
			"PATCH version change",
			"RUSTSEC warning associated",
		}, record.PriorityReasons)
	})

	t.Run("should score against the latest candidate only", func(t *testing.T) {
		t.Parallel()

		// given - the patch candidate is shadowed by the minor one
		record := entitybuilders.NewDependencyRecordBuilder().
			WithVersion("1.2.3").WithCandidates("1.2.4", "1.3.0").BuildRecord()

		// when
		NewScorer().Score(&record)

		// then
		assert.Equal(t, 3, record.PriorityScore)
		assert.Equal(t, []string{"MINOR version change"}, record.PriorityReasons)
	})

	t.Run("should keep score zero without an update candidate", func(t *testing.T) {
		t.Parallel()

		// given - an advisory alone does not make a record scorable
		record := entitybuilders.NewDependencyRecordBuilder().BuildRecord()
		record.Vulnerabilities = []entities.Advisory{
			entitybuilders.NewAdvisoryBuilder().BuildAdvisory(),
		}

		// when
		NewScorer().Score(&record)

		// then
		assert.Zero(t, record.PriorityScore)
		assert.Empty(t, record.PriorityReasons)
		assert.Zero(t, record.RiskScore)
	})

	t.Run("should carry no urgency for a pre-release-only change", func(t *testing.T) {
		t.Parallel()

		// given
		record := entitybuilders.NewDependencyRecordBuilder().
			WithVersion("1.2.3-alpha.1").WithCandidates("1.2.3-alpha.2").BuildRecord()

		// when
		NewScorer().Score(&record)

		// then
		assert.Zero(t, record.PriorityScore)
		assert.Empty(t, record.PriorityReasons)
	})

	t.Run("should add risk when the build script changed", func(t *testing.T) {
		t.Parallel()

		// given
		record := entitybuilders.NewDependencyRecordBuilder().
			WithVersion("1.2.3").WithCandidates("1.2.4").BuildRecord()
		record.Update.BuildScriptChanged = true

		// when
		NewScorer().Score(&record)

		// then
		assert.Equal(t, 10, record.RiskScore)
		assert.Equal(t,
			[]string{"build script build.rs changed in the new version"},
			record.RiskReasons)
	})

	t.Run("should fold custom risk rules", func(t *testing.T) {
		t.Parallel()

		// given
		flagEverything := func(_ *entities.DependencyRecord) (int, string) {
			return 5, "flagged by test rule"
		}
		record := entitybuilders.NewDependencyRecordBuilder().
			WithVersion("1.2.3").WithCandidates("1.2.4").BuildRecord()

		// when
		NewScorer(flagEverything).Score(&record)

		// then
		assert.Equal(t, 5, record.RiskScore)
		assert.Equal(t, []string{"flagged by test rule"}, record.RiskReasons)
	})
}
