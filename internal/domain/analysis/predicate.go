// Package analysis implements the dependency update analysis engine: pure
// functions that take an already-resolved dependency graph plus update and
// advisory data and produce a classified, scored, diffable snapshot. The
// package holds no state and performs no I/O; collaborators feed it and
// persist its output.
package analysis

import (
	"github.com/Masterminds/semver/v3"
)

// IsCompatible reports whether candidate lies within the caret-style
// compatibility range implied by current, per Cargo's caret-requirement
// semantics: compatibility is defined by the left-most non-zero component of
// major/minor/patch. Before 1.0.0 the judgement goes one level deeper than
// pure SemVer (0.2.x is only compatible with 0.2.y, 0.0.3 only with 0.0.3
// pre-release bumps).
//
// The degenerate "0.0.0" case pins nothing and fails open: every candidate
// is considered compatible rather than silently rejected.
func IsCompatible(current, candidate *semver.Version) bool {
	switch {
	case current.Major() != 0:
		return candidate.Major() == current.Major() && !candidate.LessThan(current)
	case current.Minor() != 0:
		return candidate.Major() == 0 &&
			candidate.Minor() == current.Minor() &&
			!candidate.LessThan(current)
	case current.Patch() != 0:
		return candidate.Major() == 0 &&
			candidate.Minor() == 0 &&
			candidate.Patch() == current.Patch() &&
			!candidate.LessThan(current)
	default:
		return true
	}
}
