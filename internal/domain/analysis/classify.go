package analysis

import (
	"github.com/Masterminds/semver/v3"
)

// ChangeLevel is the highest-order semver component that differs between two
// versions.
type ChangeLevel int

const (
	ChangeMajor ChangeLevel = iota
	ChangeMinor
	ChangePatch
	ChangePrerelease
)

// String returns the lowercase name of the change level.
func (l ChangeLevel) String() string {
	switch l {
	case ChangeMajor:
		return "major"
	case ChangeMinor:
		return "minor"
	case ChangePatch:
		return "patch"
	case ChangePrerelease:
		return "prerelease"
	}
	return "unknown"
}

// Classify reports the highest-order component that differs between current
// and candidate, in semver order: major first, then minor, patch and
// pre-release. Two versions differing only in their pre-release tag (or not
// at all) classify as a pre-release change. Used for scoring and display
// only; it does not gate whether an update is allowed.
func Classify(current, candidate *semver.Version) ChangeLevel {
	switch {
	case candidate.Major() != current.Major():
		return ChangeMajor
	case candidate.Minor() != current.Minor():
		return ChangeMinor
	case candidate.Patch() != current.Patch():
		return ChangePatch
	default:
		return ChangePrerelease
	}
}
