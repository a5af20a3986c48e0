package analysis

import (
	"github.com/rios0rios0/depwatch/internal/domain/entities"
)

// Priority score deltas and their human-readable reasons. Evaluation order
// is fixed so reason lists are deterministic and reproducible across runs.
const (
	priorityMajor         = 10
	priorityMinor         = 3
	priorityPatch         = 1
	priorityVulnerability = 30
	priorityWarning       = 20

	reasonMajor         = "MAJOR version change"
	reasonMinor         = "MINOR version change"
	reasonPatch         = "PATCH version change"
	reasonVulnerability = "RUSTSEC vulnerability associated"
	reasonWarning       = "RUSTSEC warning associated"
)

// RiskRule is a pure function of a dependency record returning a risk score
// delta and an optional reason. Rules are independent of each other: adding
// a rule never requires changing an existing one.
type RiskRule func(record *entities.DependencyRecord) (int, string)

// buildScriptRule flags updates whose build-time script changed between the
// current and the candidate version.
func buildScriptRule(record *entities.DependencyRecord) (int, string) {
	if record.Update == nil || !record.Update.BuildScriptChanged {
		return 0, ""
	}
	return 10, "build script build.rs changed in the new version"
}

// DefaultRiskRules returns the built-in risk rule set.
func DefaultRiskRules() []RiskRule {
	return []RiskRule{buildScriptRule}
}

// Scorer computes priority (urgency) and risk (danger) scores for
// dependency records.
type Scorer struct {
	riskRules []RiskRule
}

// NewScorer creates a scorer with the given risk rules, falling back to the
// default rule set when none are supplied.
func NewScorer(rules ...RiskRule) *Scorer {
	if len(rules) == 0 {
		rules = DefaultRiskRules()
	}
	return &Scorer{riskRules: rules}
}

// Score fills the priority and risk fields of the record. Scoring only runs
// for records that have an update candidate; records without one keep score
// zero and empty reason lists.
func (it *Scorer) Score(record *entities.DependencyRecord) {
	latest := record.Update.Latest()
	if latest == nil {
		return
	}

	// Priority: each triggered signal both increments the score and appends
	// its reason, in this fixed order.
	switch Classify(record.Version, latest) {
	case ChangeMajor:
		record.PriorityScore += priorityMajor
		record.PriorityReasons = append(record.PriorityReasons, reasonMajor)
	case ChangeMinor:
		record.PriorityScore += priorityMinor
		record.PriorityReasons = append(record.PriorityReasons, reasonMinor)
	case ChangePatch:
		record.PriorityScore += priorityPatch
		record.PriorityReasons = append(record.PriorityReasons, reasonPatch)
	case ChangePrerelease:
		// A pure pre-release transition carries no urgency on its own.
	}

	if len(record.Vulnerabilities) > 0 {
		record.PriorityScore += priorityVulnerability
		record.PriorityReasons = append(record.PriorityReasons, reasonVulnerability)
	}
	if len(record.Warnings) > 0 {
		record.PriorityScore += priorityWarning
		record.PriorityReasons = append(record.PriorityReasons, reasonWarning)
	}

	// Risk: fold over the registered rule set.
	for _, rule := range it.riskRules {
		delta, reason := rule(record)
		if delta == 0 && reason == "" {
			continue
		}
		record.RiskScore += delta
		if reason != "" {
			record.RiskReasons = append(record.RiskReasons, reason)
		}
	}
}
