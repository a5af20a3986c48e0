package analysis

import (
	"sort"

	"github.com/rios0rios0/depwatch/internal/domain/entities"
)

// Partition splits the actionable subset of the records — those with an
// advisory or an update candidate — into four disjoint, covering buckets.
// Records with neither appear in none of them.
//
// As a side effect it computes UpdateAllowed for every record that has a
// candidate: direct dependencies are always considered updatable (the
// maintainer controls the version constraint), transitive ones are gated by
// the caret compatibility predicate against the latest candidate version.
func Partition(records []entities.DependencyRecord) entities.Buckets {
	var vulnerable, nonDev, dev, blocked []*entities.DependencyRecord

	for i := range records {
		record := &records[i]

		latest := record.Update.Latest()
		if latest != nil {
			record.UpdateAllowed = record.Direct ||
				IsCompatible(record.Version, latest)
		}

		switch {
		case latest == nil && record.HasAdvisories():
			vulnerable = append(vulnerable, record)
		case latest == nil:
			// Nothing actionable: no update, no advisory.
		case record.UpdateAllowed && !record.Dev:
			nonDev = append(nonDev, record)
		case record.UpdateAllowed && record.Dev:
			dev = append(dev, record)
		default:
			blocked = append(blocked, record)
		}
	}

	return entities.Buckets{
		VulnerableNoUpdate: bucketKeys(vulnerable),
		UpdatableNonDev:    bucketKeys(nonDev),
		UpdatableDev:       bucketKeys(dev),
		BlockedBySemver:    bucketKeys(blocked),
	}
}

// bucketKeys orders a bucket by priority score descending, ties broken by
// identity key, and reduces it to keys. The ordering is total, so output is
// reproducible across runs with identical input.
func bucketKeys(records []*entities.DependencyRecord) []entities.DependencyKey {
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].PriorityScore != records[j].PriorityScore {
			return records[i].PriorityScore > records[j].PriorityScore
		}
		return records[i].Key().Less(records[j].Key())
	})

	keys := make([]entities.DependencyKey, 0, len(records))
	for _, record := range records {
		keys = append(keys, record.Key())
	}
	return keys
}
