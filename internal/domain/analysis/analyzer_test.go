package analysis //nolint:testpackage // tests live next to the code under test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/depwatch/internal/domain/entities"
	"github.com/rios0rios0/depwatch/test/domain/entitybuilders"
)

func TestAnalyzer_Analyze(t *testing.T) {
	t.Parallel()

	t.Run("should run the full pipeline on a mixed graph", func(t *testing.T) {
		t.Parallel()

		// given
		input := Input{
			Repository: "https://example.com/diem/diem.git",
			Commit:     "0d9b439e632cfc8a2d51bfaf5e101351d87e1d36",
			Dependencies: []entities.DependencyRecord{
				entitybuilders.NewDependencyRecordBuilder().
					WithName("tokio").WithVersion("1.7.1").WithDirect(false).
					WithCandidates("1.7.2").BuildRecord(),
				entitybuilders.NewDependencyRecordBuilder().
					WithName("adler").WithVersion("0.2.3").WithDirect(false).
					WithCandidates("1.0.0", "1.0.1").BuildRecord(),
				entitybuilders.NewDependencyRecordBuilder().
					WithName("quiet").WithVersion("3.0.0").BuildRecord(),
			},
			Advisories: []entities.Advisory{
				entitybuilders.NewAdvisoryBuilder().
					WithID("RUSTSEC-2016-0005").WithPackage("tokio").
					WithPatched(">= 1.8.0").BuildAdvisory(),
			},
		}

		// when
		snapshot, err := NewAnalyzer().Analyze(input)

		// then
		require.NoError(t, err)
		assert.NotEmpty(t, snapshot.ID)
		assert.Equal(t, input.Repository, snapshot.Repository)
		assert.Equal(t, input.Commit, snapshot.Commit)
		assert.WithinDuration(t, time.Now().UTC(), snapshot.Timestamp, time.Minute)
		assert.Nil(t, snapshot.Previous)

		index := snapshot.Index()
		tokio := index[entities.DependencyKey{Name: "tokio", Version: "1.7.1"}]
		require.NotNil(t, tokio)
		// patch change (1) + vulnerability (30)
		assert.Equal(t, 31, tokio.PriorityScore)
		assert.True(t, tokio.UpdateAllowed)

		require.Len(t, snapshot.Buckets.UpdatableNonDev, 1)
		assert.Equal(t, "tokio", snapshot.Buckets.UpdatableNonDev[0].Name)
		require.Len(t, snapshot.Buckets.BlockedBySemver, 1)
		assert.Equal(t, "adler", snapshot.Buckets.BlockedBySemver[0].Name)
		assert.Empty(t, snapshot.Buckets.VulnerableNoUpdate)
		assert.Empty(t, snapshot.Buckets.UpdatableDev)

		// first-ever analysis: empty change summary
		assert.True(t, snapshot.Changes.IsEmpty())
	})

	t.Run("should not mutate the input records", func(t *testing.T) {
		t.Parallel()

		// given
		input := Input{
			Repository: "https://example.com/repo.git",
			Dependencies: []entities.DependencyRecord{
				entitybuilders.NewDependencyRecordBuilder().
					WithName("tokio").WithVersion("1.7.1").
					WithCandidates("1.7.2").BuildRecord(),
			},
		}

		// when
		_, err := NewAnalyzer().Analyze(input)

		// then
		require.NoError(t, err)
		assert.Zero(t, input.Dependencies[0].PriorityScore)
		assert.False(t, input.Dependencies[0].UpdateAllowed)
	})

	t.Run("should diff against the previous snapshot", func(t *testing.T) {
		t.Parallel()

		// given
		previous := &entities.AnalysisSnapshot{
			Commit:    "aaaa",
			Timestamp: time.Date(2021, 6, 1, 12, 0, 0, 0, time.UTC),
			Dependencies: []entities.DependencyRecord{
				entitybuilders.NewDependencyRecordBuilder().
					WithName("tokio").WithVersion("1.7.1").BuildRecord(),
			},
		}
		input := Input{
			Repository: "https://example.com/repo.git",
			Commit:     "bbbb",
			Dependencies: []entities.DependencyRecord{
				entitybuilders.NewDependencyRecordBuilder().
					WithName("tokio").WithVersion("1.7.1").
					WithCandidates("1.7.2").BuildRecord(),
			},
			Previous: previous,
		}

		// when
		snapshot, err := NewAnalyzer().Analyze(input)

		// then
		require.NoError(t, err)
		require.NotNil(t, snapshot.Previous)
		assert.Equal(t, "aaaa", snapshot.Previous.Commit)
		assert.Equal(t, previous.Timestamp, snapshot.Previous.Timestamp)
		require.Len(t, snapshot.Changes.NewUpdates, 1)
		assert.Equal(t, "tokio", snapshot.Changes.NewUpdates[0].Name)
	})

	t.Run("should reject a duplicate identity key", func(t *testing.T) {
		t.Parallel()

		// given
		record := entitybuilders.NewDependencyRecordBuilder().
			WithName("tokio").WithVersion("1.7.1").BuildRecord()
		input := Input{
			Repository:   "https://example.com/repo.git",
			Dependencies: []entities.DependencyRecord{record, record},
		}

		// when
		snapshot, err := NewAnalyzer().Analyze(input)

		// then
		assert.Nil(t, snapshot)
		var malformed *MalformedGraphError
		require.ErrorAs(t, err, &malformed)
		assert.Equal(t, "duplicate identity key", malformed.Reason)
	})

	t.Run("should reject a dependency with an empty name", func(t *testing.T) {
		t.Parallel()

		// given
		record := entitybuilders.NewDependencyRecordBuilder().WithName("").BuildRecord()
		input := Input{
			Repository:   "https://example.com/repo.git",
			Dependencies: []entities.DependencyRecord{record},
		}

		// when
		snapshot, err := NewAnalyzer().Analyze(input)

		// then
		assert.Nil(t, snapshot)
		var malformed *MalformedGraphError
		require.ErrorAs(t, err, &malformed)
	})

	t.Run("should reject a dependency without a version", func(t *testing.T) {
		t.Parallel()

		// given
		record := entitybuilders.NewDependencyRecordBuilder().WithName("tokio").BuildRecord()
		record.Version = nil
		input := Input{
			Repository:   "https://example.com/repo.git",
			Dependencies: []entities.DependencyRecord{record},
		}

		// when
		snapshot, err := NewAnalyzer().Analyze(input)

		// then
		assert.Nil(t, snapshot)
		var malformed *MalformedGraphError
		require.ErrorAs(t, err, &malformed)
		assert.Contains(t, err.Error(), "missing version")
	})
}
