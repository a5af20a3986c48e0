// Package updatefeed reads update-candidate feeds: JSON exports mapping each
// (name, version) occurrence to its known newer versions, optional
// changelog/commit metadata and the build-script-changed flag.
package updatefeed

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	semverv3 "github.com/Masterminds/semver/v3"
	"golang.org/x/mod/semver"

	"github.com/rios0rios0/depwatch/internal/domain/entities"
)

// RegistryRepository answers update-candidate lookups from a feed file.
// Feeds are parsed once and cached per path, so the bounded-parallel lookups
// of a refresh run share one parse.
type RegistryRepository struct {
	mu    sync.Mutex
	feeds map[string]map[feedKey]*feedEntry
}

type feedKey struct {
	name    string
	version string
}

// NewRegistryRepository creates a new feed-backed registry repository.
func NewRegistryRepository() *RegistryRepository {
	return &RegistryRepository{feeds: make(map[string]map[feedKey]*feedEntry)}
}

// feedDocument is the wire form of an update feed.
type feedDocument struct {
	Packages []feedEntry `json:"packages"`
}

type feedEntry struct {
	Name               string                   `json:"name"`
	Version            string                   `json:"version"`
	Versions           []string                 `json:"versions"`
	Metadata           *entities.UpdateMetadata `json:"metadata,omitempty"`
	BuildScriptChanged bool                     `json:"build_script_changed"`
}

// GetCandidate returns the update candidate for one dependency occurrence:
// every feed version strictly newer than the current one, ascending. A nil
// candidate means the feed knows no newer version.
func (it *RegistryRepository) GetCandidate(
	_ context.Context,
	source string,
	name string,
	version *semverv3.Version,
) (*entities.UpdateCandidate, error) {
	feed, err := it.loadFeed(source)
	if err != nil {
		return nil, err
	}

	entry := feed[feedKey{name: name, version: version.String()}]
	if entry == nil {
		// Fall back to the per-package entry when the feed is not keyed by
		// occurrence version.
		entry = feed[feedKey{name: name}]
	}
	if entry == nil {
		return nil, nil
	}

	newer := newerVersions(entry.Versions, version)
	if len(newer) == 0 {
		return nil, nil
	}

	return &entities.UpdateCandidate{
		Versions:           newer,
		Metadata:           entry.Metadata,
		BuildScriptChanged: entry.BuildScriptChanged,
	}, nil
}

// loadFeed parses the feed file once and caches the result by path.
func (it *RegistryRepository) loadFeed(source string) (map[feedKey]*feedEntry, error) {
	it.mu.Lock()
	defer it.mu.Unlock()

	if feed, ok := it.feeds[source]; ok {
		return feed, nil
	}

	data, err := os.ReadFile(source)
	if err != nil {
		return nil, fmt.Errorf("failed to read update feed %q: %w", source, err)
	}

	var document feedDocument
	if unmarshalErr := json.Unmarshal(data, &document); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse update feed %q: %w", source, unmarshalErr)
	}

	feed := make(map[feedKey]*feedEntry, len(document.Packages))
	for i := range document.Packages {
		entry := &document.Packages[i]
		sortVersionsAscending(entry.Versions)
		feed[feedKey{name: entry.Name, version: entry.Version}] = entry
		if entry.Version == "" {
			feed[feedKey{name: entry.Name}] = entry
		}
	}

	it.feeds[source] = feed
	return feed, nil
}

// newerVersions parses the feed's version strings and keeps those strictly
// greater than current, ascending. Strings that don't parse as semver are
// skipped; a feed may list tags for other toolchains.
func newerVersions(raw []string, current *semverv3.Version) []*semverv3.Version {
	var newer []*semverv3.Version
	for _, s := range raw {
		parsed, err := semverv3.NewVersion(s)
		if err != nil {
			continue
		}
		if parsed.GreaterThan(current) {
			newer = append(newer, parsed)
		}
	}
	sort.Slice(newer, func(i, j int) bool {
		return newer[i].LessThan(newer[j])
	})
	return newer
}

// sortVersionsAscending sorts version strings in ascending order (oldest
// first), using semver ordering when both sides are valid semver.
func sortVersionsAscending(versions []string) {
	sort.SliceStable(versions, func(i, j int) bool {
		v1 := normalizeVersion(versions[i])
		v2 := normalizeVersion(versions[j])

		// Use semver comparison if both are valid semver
		if semver.IsValid(v1) && semver.IsValid(v2) {
			return semver.Compare(v1, v2) < 0
		}

		// Fall back to string comparison
		return versions[i] < versions[j]
	})
}

// normalizeVersion ensures version has 'v' prefix for semver compatibility
func normalizeVersion(version string) string {
	version = strings.TrimSpace(version)
	if strings.HasPrefix(version, "v") {
		return version
	}
	return "v" + version
}
