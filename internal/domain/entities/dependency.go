package entities

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// DependencyRecord represents one occurrence of a package in a repository's
// dependency graph. The same package name+version can appear more than once
// with different role flags, because direct/transitive and dev/non-dev usage
// are tracked separately and never merged.
type DependencyRecord struct {
	Name    string          `json:"name"`
	Version *semver.Version `json:"version"`
	Source  string          `json:"source"` // Registry identity or git/path origin
	Direct  bool            `json:"direct"` // Declared by the root manifest
	Dev     bool            `json:"dev"`    // Only reachable through dev-only build paths

	// Update is present when at least one newer version is known.
	Update *UpdateCandidate `json:"update,omitempty"`

	// Advisory lists filled by the advisory matcher. A record may accumulate
	// several advisories; order follows the input advisory feed.
	Vulnerabilities []Advisory `json:"vulnerabilities,omitempty"`
	Warnings        []Advisory `json:"warnings,omitempty"`

	// Fields computed by the scoring engine and the graph classifier.
	PriorityScore   int      `json:"priority_score"`
	PriorityReasons []string `json:"priority_reasons,omitempty"`
	RiskScore       int      `json:"risk_score"`
	RiskReasons     []string `json:"risk_reasons,omitempty"`
	UpdateAllowed   bool     `json:"update_allowed"`
}

// Key returns the identity key of this occurrence. Uniqueness of the key is
// an invariant within one snapshot.
func (r *DependencyRecord) Key() DependencyKey {
	return DependencyKey{
		Name:    r.Name,
		Version: r.Version.String(),
		Direct:  r.Direct,
		Dev:     r.Dev,
	}
}

// HasAdvisories returns true when at least one vulnerability or warning is
// attached to the record.
func (r *DependencyRecord) HasAdvisories() bool {
	return len(r.Vulnerabilities) > 0 || len(r.Warnings) > 0
}

// DependencyKey identifies one dependency occurrence across snapshots.
type DependencyKey struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Direct  bool   `json:"direct"`
	Dev     bool   `json:"dev"`
}

// Less orders keys lexically: name, then version, then direct, then dev
// (false before true). Used as the deterministic tie-breaker in bucket
// ordering.
func (k DependencyKey) Less(other DependencyKey) bool {
	if k.Name != other.Name {
		return k.Name < other.Name
	}
	if k.Version != other.Version {
		return k.Version < other.Version
	}
	if k.Direct != other.Direct {
		return !k.Direct
	}
	if k.Dev != other.Dev {
		return !k.Dev
	}
	return false
}

// String renders the key for logs and error messages.
func (k DependencyKey) String() string {
	role := "transitive"
	if k.Direct {
		role = "direct"
	}
	if k.Dev {
		role += ",dev"
	}
	return fmt.Sprintf("%s@%s (%s)", k.Name, k.Version, role)
}

// UpdateCandidate describes the newer versions available for a dependency
// occurrence.
type UpdateCandidate struct {
	// Versions holds every known version strictly newer than the current one,
	// ascending, ending with the latest.
	Versions []*semver.Version `json:"versions"`

	// Metadata is absent when the external collaborator could not supply it.
	Metadata *UpdateMetadata `json:"metadata,omitempty"`

	// BuildScriptChanged is true when the build-time script differs between
	// the current and the latest candidate version.
	BuildScriptChanged bool `json:"build_script_changed"`
}

// Latest returns the newest known version, or nil when the candidate holds
// no versions.
func (c *UpdateCandidate) Latest() *semver.Version {
	if c == nil || len(c.Versions) == 0 {
		return nil
	}
	return c.Versions[len(c.Versions)-1]
}

// UpdateMetadata carries optional changelog and commit information for an
// update candidate. Absence of any field is not an error.
type UpdateMetadata struct {
	ChangelogURL  string   `json:"changelog_url,omitempty"`
	ChangelogText string   `json:"changelog_text,omitempty"`
	CommitsURL    string   `json:"commits_url,omitempty"`
	Commits       []Commit `json:"commits,omitempty"`
}

// Commit is a single upstream commit referenced by update metadata.
type Commit struct {
	Message string `json:"message"`
	HTMLURL string `json:"html_url"`
}
