// Package filestore persists analysis snapshots as JSON documents on disk:
// one directory per repository (keyed by the md5 of its URL), one immutable
// document per snapshot. The write path is temp-file-plus-rename, so a
// crashed or cancelled save never leaves a partial document and never
// touches previously committed snapshots.
package filestore

import (
	"context"
	"crypto/md5" //nolint:gosec // directory naming only, not security
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rios0rios0/depwatch/internal/domain/entities"
	"github.com/rios0rios0/depwatch/internal/domain/repositories"
)

const documentSuffix = ".json"

// SnapshotRepository stores snapshots under a state directory.
type SnapshotRepository struct{}

// NewSnapshotRepository creates a new file-backed snapshot repository.
func NewSnapshotRepository() *SnapshotRepository {
	return &SnapshotRepository{}
}

// GetLastAnalysis returns the most recent committed snapshot for the
// repository, or nil when none exists.
func (it *SnapshotRepository) GetLastAnalysis(
	_ context.Context,
	dir, repository string,
) (*entities.AnalysisSnapshot, error) {
	documents, err := listDocuments(repoDir(dir, repository))
	if err != nil {
		return nil, err
	}
	if len(documents) == 0 {
		return nil, nil
	}
	return readDocument(documents[len(documents)-1])
}

// FindCommit returns the newest snapshot of the repository at the given
// commit, or nil when none exists.
func (it *SnapshotRepository) FindCommit(
	_ context.Context,
	dir, repository, commit string,
) (*entities.AnalysisSnapshot, error) {
	documents, err := listDocuments(repoDir(dir, repository))
	if err != nil {
		return nil, err
	}

	for i := len(documents) - 1; i >= 0; i-- {
		snapshot, readErr := readDocument(documents[i])
		if readErr != nil {
			return nil, readErr
		}
		if snapshot.Commit == commit {
			return snapshot, nil
		}
	}
	return nil, nil
}

// SaveAnalysis commits one fully-formed snapshot. The document becomes
// visible atomically via rename; any failure before that leaves the store
// exactly as it was.
func (it *SnapshotRepository) SaveAnalysis(
	_ context.Context,
	dir string,
	snapshot *entities.AnalysisSnapshot,
) error {
	targetDir := repoDir(dir, snapshot.Repository)
	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return &repositories.PersistenceError{
			Op: "mkdir", Repository: snapshot.Repository, Err: err,
		}
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return &repositories.PersistenceError{
			Op: "marshal", Repository: snapshot.Repository, Err: err,
		}
	}

	// Zero-padded nanoseconds keep lexical order chronological.
	name := fmt.Sprintf("%020d-%s%s",
		snapshot.Timestamp.UnixNano(), snapshot.ID, documentSuffix)

	tmp, err := os.CreateTemp(targetDir, "pending-*")
	if err != nil {
		return &repositories.PersistenceError{
			Op: "create", Repository: snapshot.Repository, Err: err,
		}
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if _, writeErr := tmp.Write(data); writeErr != nil {
		tmp.Close()
		return &repositories.PersistenceError{
			Op: "write", Repository: snapshot.Repository, Err: writeErr,
		}
	}
	if closeErr := tmp.Close(); closeErr != nil {
		return &repositories.PersistenceError{
			Op: "write", Repository: snapshot.Repository, Err: closeErr,
		}
	}

	if renameErr := os.Rename(tmp.Name(), filepath.Join(targetDir, name)); renameErr != nil {
		return &repositories.PersistenceError{
			Op: "commit", Repository: snapshot.Repository, Err: renameErr,
		}
	}

	return nil
}

// repoDir maps a repository URL to its storage directory, keyed by md5 the
// same way the mirror directories are.
func repoDir(dir, repository string) string {
	sum := md5.Sum([]byte(repository)) //nolint:gosec // directory naming only
	return filepath.Join(dir, hex.EncodeToString(sum[:]))
}

// listDocuments returns the snapshot document paths of one repository in
// chronological order. A missing directory means no snapshots yet.
func listDocuments(dir string) ([]string, error) {
	dirEntries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshot store %q: %w", dir, err)
	}

	var documents []string
	for _, entry := range dirEntries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), documentSuffix) {
			continue
		}
		documents = append(documents, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(documents)
	return documents, nil
}

func readDocument(path string) (*entities.AnalysisSnapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot %q: %w", path, err)
	}

	var snapshot entities.AnalysisSnapshot
	if unmarshalErr := json.Unmarshal(data, &snapshot); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse snapshot %q: %w", path, unmarshalErr)
	}
	return &snapshot, nil
}
