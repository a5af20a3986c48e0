package filestore //nolint:testpackage // tests live next to the code under test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/depwatch/internal/domain/entities"
	"github.com/rios0rios0/depwatch/internal/domain/repositories"
	"github.com/rios0rios0/depwatch/test/domain/entitybuilders"
)

const testRepo = "https://github.com/diem/diem.git"

func testSnapshot(id, commit string, at time.Time) *entities.AnalysisSnapshot {
	return &entities.AnalysisSnapshot{
		ID:         id,
		Repository: testRepo,
		Commit:     commit,
		Timestamp:  at,
		Dependencies: []entities.DependencyRecord{
			entitybuilders.NewDependencyRecordBuilder().
				WithName("tokio").WithVersion("1.7.1").WithCandidates("1.7.2").BuildRecord(),
		},
	}
}

func TestSnapshotRepository(t *testing.T) {
	t.Parallel()

	t.Run("should round-trip a snapshot", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		store := NewSnapshotRepository()
		snapshot := testSnapshot("snap-1", "abc123",
			time.Date(2021, 6, 15, 10, 0, 0, 0, time.UTC))

		// when
		saveErr := store.SaveAnalysis(context.Background(), dir, snapshot)
		loaded, loadErr := store.GetLastAnalysis(context.Background(), dir, testRepo)

		// then
		require.NoError(t, saveErr)
		require.NoError(t, loadErr)
		require.NotNil(t, loaded)
		assert.Equal(t, "snap-1", loaded.ID)
		assert.Equal(t, "abc123", loaded.Commit)
		require.Len(t, loaded.Dependencies, 1)
		assert.Equal(t, "tokio", loaded.Dependencies[0].Name)
		assert.Equal(t, "1.7.2", loaded.Dependencies[0].Update.Latest().String())
	})

	t.Run("should return the newest snapshot", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		store := NewSnapshotRepository()
		older := testSnapshot("snap-1", "aaa",
			time.Date(2021, 6, 15, 10, 0, 0, 0, time.UTC))
		newer := testSnapshot("snap-2", "bbb",
			time.Date(2021, 6, 16, 10, 0, 0, 0, time.UTC))
		require.NoError(t, store.SaveAnalysis(context.Background(), dir, older))
		require.NoError(t, store.SaveAnalysis(context.Background(), dir, newer))

		// when
		loaded, err := store.GetLastAnalysis(context.Background(), dir, testRepo)

		// then
		require.NoError(t, err)
		assert.Equal(t, "snap-2", loaded.ID)
	})

	t.Run("should return nil when no snapshot exists", func(t *testing.T) {
		t.Parallel()

		// when
		loaded, err := NewSnapshotRepository().GetLastAnalysis(
			context.Background(), t.TempDir(), testRepo)

		// then
		require.NoError(t, err)
		assert.Nil(t, loaded)
	})

	t.Run("should isolate repositories from each other", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		store := NewSnapshotRepository()
		require.NoError(t, store.SaveAnalysis(context.Background(), dir,
			testSnapshot("snap-1", "aaa", time.Date(2021, 6, 15, 10, 0, 0, 0, time.UTC))))

		// when
		loaded, err := store.GetLastAnalysis(
			context.Background(), dir, "https://github.com/other/repo.git")

		// then
		require.NoError(t, err)
		assert.Nil(t, loaded)
	})

	t.Run("should find a snapshot by commit", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		store := NewSnapshotRepository()
		require.NoError(t, store.SaveAnalysis(context.Background(), dir,
			testSnapshot("snap-1", "aaa", time.Date(2021, 6, 15, 10, 0, 0, 0, time.UTC))))
		require.NoError(t, store.SaveAnalysis(context.Background(), dir,
			testSnapshot("snap-2", "bbb", time.Date(2021, 6, 16, 10, 0, 0, 0, time.UTC))))

		// when
		found, err := store.FindCommit(context.Background(), dir, testRepo, "aaa")
		missing, missErr := store.FindCommit(context.Background(), dir, testRepo, "zzz")

		// then
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "snap-1", found.ID)
		require.NoError(t, missErr)
		assert.Nil(t, missing)
	})

	t.Run("should report a save failure as a persistence error", func(t *testing.T) {
		t.Parallel()

		// given - the state dir path is occupied by a regular file
		blocked := filepath.Join(t.TempDir(), "blocked")
		require.NoError(t, os.WriteFile(blocked, []byte("not a directory"), 0o600))

		// when
		err := NewSnapshotRepository().SaveAnalysis(context.Background(), blocked,
			testSnapshot("snap-1", "aaa", time.Now()))

		// then
		var persistence *repositories.PersistenceError
		require.ErrorAs(t, err, &persistence)
		assert.Equal(t, "mkdir", persistence.Op)
	})
}
