package analysis

import (
	"github.com/rios0rios0/depwatch/internal/domain/entities"
)

// Diff compares the current snapshot against the immediately preceding one
// for the same repository. Records are matched across snapshots by identity
// key, never by list position. When previous is nil (first-ever analysis of
// a repository) the summary is empty: there is nothing to compare against.
func Diff(current, previous *entities.AnalysisSnapshot) entities.ChangeSummary {
	var summary entities.ChangeSummary
	if previous == nil {
		return summary
	}

	before := previous.Index()

	for i := range current.Dependencies {
		record := &current.Dependencies[i]
		key := record.Key()
		prior := before[key]

		// A new update: the key either did not exist before, or existed
		// without an update candidate, and now has one.
		if record.Update.Latest() != nil &&
			(prior == nil || prior.Update.Latest() == nil) {
			summary.NewUpdates = append(summary.NewUpdates, key)
		}

		summary.NewVulnerabilities = append(summary.NewVulnerabilities,
			newAdvisories(key, record.Vulnerabilities, priorVulnerabilities(prior))...)
		summary.NewWarnings = append(summary.NewWarnings,
			newAdvisories(key, record.Warnings, priorWarnings(prior))...)
	}

	return summary
}

// newAdvisories returns the advisories in current that are absent, by ID,
// from the prior list of the same identity key.
func newAdvisories(
	key entities.DependencyKey,
	current, prior []entities.Advisory,
) []entities.AdvisoryChange {
	if len(current) == 0 {
		return nil
	}

	seen := make(map[string]bool, len(prior))
	for _, advisory := range prior {
		seen[advisory.ID] = true
	}

	var changes []entities.AdvisoryChange
	for _, advisory := range current {
		if seen[advisory.ID] {
			continue
		}
		changes = append(changes, entities.AdvisoryChange{
			Dependency: key,
			Advisory:   advisory,
		})
	}
	return changes
}

func priorVulnerabilities(record *entities.DependencyRecord) []entities.Advisory {
	if record == nil {
		return nil
	}
	return record.Vulnerabilities
}

func priorWarnings(record *entities.DependencyRecord) []entities.Advisory {
	if record == nil {
		return nil
	}
	return record.Warnings
}
