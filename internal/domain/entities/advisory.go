package entities

// AdvisoryKind distinguishes security vulnerabilities from non-fatal
// maintenance warnings (unmaintained, unsound, notice).
type AdvisoryKind string

const (
	AdvisoryVulnerability AdvisoryKind = "vulnerability"
	AdvisoryWarning       AdvisoryKind = "warning"
)

// Advisory is a vulnerability or warning sourced from an external advisory
// database, keyed by package name.
type Advisory struct {
	ID      string       `json:"id"`      // e.g. "RUSTSEC-2016-0005"
	Package string       `json:"package"` // Affected package name
	Title   string       `json:"title"`
	Kind    AdvisoryKind `json:"kind"`

	// Patched and Unaffected are semver range expressions. A dependency is
	// affected by the advisory iff its version satisfies neither set.
	Patched    []string `json:"patched,omitempty"`
	Unaffected []string `json:"unaffected,omitempty"`
}
