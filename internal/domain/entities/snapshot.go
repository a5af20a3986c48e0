package entities

import "time"

// AnalysisSnapshot is one complete, immutable analysis result for a
// repository at a specific commit. It is fully computed in memory and handed
// whole to the persistence collaborator; it is never mutated after handoff
// and never partially persisted.
type AnalysisSnapshot struct {
	ID         string    `json:"id"`
	Repository string    `json:"repository"`
	Commit     string    `json:"commit"`
	Timestamp  time.Time `json:"timestamp"`

	// Previous references the immediately preceding snapshot for the same
	// repository, when one exists.
	Previous *PreviousAnalysis `json:"previous,omitempty"`

	// Dependencies holds every record post-scoring, in graph input order.
	Dependencies []DependencyRecord `json:"dependencies"`

	// Buckets partitions the actionable subset of the records.
	Buckets Buckets `json:"buckets"`

	// Changes summarizes what is new compared to the previous snapshot.
	Changes ChangeSummary `json:"changes"`
}

// PreviousAnalysis points at the snapshot this one was diffed against.
type PreviousAnalysis struct {
	Commit    string    `json:"commit"`
	Timestamp time.Time `json:"timestamp"`
}

// Index builds a lookup from identity key to record. The index is derived,
// not stored; build it once per snapshot and reuse it.
func (s *AnalysisSnapshot) Index() map[DependencyKey]*DependencyRecord {
	index := make(map[DependencyKey]*DependencyRecord, len(s.Dependencies))
	for i := range s.Dependencies {
		record := &s.Dependencies[i]
		index[record.Key()] = record
	}
	return index
}

// Buckets is a strict partition over the records that have an advisory or an
// update candidate. Records with neither appear in none of the buckets.
// Within each bucket, keys are ordered by priority score descending, ties
// broken by identity key.
type Buckets struct {
	VulnerableNoUpdate []DependencyKey `json:"vulnerable_no_update"`
	UpdatableNonDev    []DependencyKey `json:"updatable_non_dev"`
	UpdatableDev       []DependencyKey `json:"updatable_dev"`
	BlockedBySemver    []DependencyKey `json:"blocked_by_semver"`
}

// ChangeSummary lists what appeared since the previous snapshot. Empty when
// there is no previous snapshot to compare against.
type ChangeSummary struct {
	// NewUpdates identifies records whose update candidate did not exist (by
	// identity key) in the previous snapshot.
	NewUpdates []DependencyKey `json:"new_updates,omitempty"`

	// NewVulnerabilities and NewWarnings hold advisories newly affecting a
	// dependency occurrence that were not affecting it before.
	NewVulnerabilities []AdvisoryChange `json:"new_vulnerabilities,omitempty"`
	NewWarnings        []AdvisoryChange `json:"new_warnings,omitempty"`
}

// IsEmpty reports whether the summary records no changes at all.
func (c ChangeSummary) IsEmpty() bool {
	return len(c.NewUpdates) == 0 &&
		len(c.NewVulnerabilities) == 0 &&
		len(c.NewWarnings) == 0
}

// AdvisoryChange ties a newly matching advisory to the dependency occurrence
// it affects.
type AdvisoryChange struct {
	Dependency DependencyKey `json:"dependency"`
	Advisory   Advisory      `json:"advisory"`
}
