package analysis

import (
	"time"

	"github.com/google/uuid"

	"github.com/rios0rios0/depwatch/internal/domain/entities"
)

// Input is everything an analysis run consumes, already resolved by the
// external collaborators: the raw graph with update candidates attached,
// the advisory set, and the previous snapshot when one exists.
type Input struct {
	Repository   string
	Commit       string
	Dependencies []entities.DependencyRecord
	Advisories   []entities.Advisory
	Previous     *entities.AnalysisSnapshot
}

// Analyzer runs the full pipeline: validate -> match advisories -> score ->
// partition -> diff. It is stateless and safe for concurrent use across
// repositories.
type Analyzer struct {
	scorer *Scorer
}

// NewAnalyzer creates an analyzer with the given risk rules (default rules
// when none are supplied).
func NewAnalyzer(rules ...RiskRule) *Analyzer {
	return &Analyzer{scorer: NewScorer(rules...)}
}

// Analyze computes a complete snapshot from the input. The input slices are
// not modified; the returned snapshot is fully built in memory and must be
// handed to persistence unmodified. Any error leaves no partial result.
func (it *Analyzer) Analyze(input Input) (*entities.AnalysisSnapshot, error) {
	records := make([]entities.DependencyRecord, len(input.Dependencies))
	copy(records, input.Dependencies)

	if err := validateGraph(records); err != nil {
		return nil, err
	}

	AttachAdvisories(records, input.Advisories)

	for i := range records {
		it.scorer.Score(&records[i])
	}

	buckets := Partition(records)

	snapshot := &entities.AnalysisSnapshot{
		ID:           uuid.NewString(),
		Repository:   input.Repository,
		Commit:       input.Commit,
		Timestamp:    time.Now().UTC(),
		Dependencies: records,
		Buckets:      buckets,
	}
	if input.Previous != nil {
		snapshot.Previous = &entities.PreviousAnalysis{
			Commit:    input.Previous.Commit,
			Timestamp: input.Previous.Timestamp,
		}
	}

	snapshot.Changes = Diff(snapshot, input.Previous)

	return snapshot, nil
}

// validateGraph enforces the graph input invariants: required fields present
// and no duplicate identity keys within one snapshot.
func validateGraph(records []entities.DependencyRecord) error {
	seen := make(map[entities.DependencyKey]bool, len(records))

	for i := range records {
		record := &records[i]
		if record.Name == "" {
			return &MalformedGraphError{Reason: "dependency with empty name"}
		}
		if record.Version == nil {
			return &MalformedGraphError{
				Reason: "dependency with missing version",
				Key:    entities.DependencyKey{Name: record.Name},
			}
		}

		key := record.Key()
		if seen[key] {
			return &MalformedGraphError{Reason: "duplicate identity key", Key: key}
		}
		seen[key] = true
	}

	return nil
}
