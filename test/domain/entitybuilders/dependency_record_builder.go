package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/Masterminds/semver/v3"
	"github.com/rios0rios0/depwatch/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// DependencyRecordBuilder helps create test dependency records with a fluent interface.
type DependencyRecordBuilder struct {
	*testkit.BaseBuilder
	name       string
	version    string
	source     string
	direct     bool
	dev        bool
	candidates []string
}

// NewDependencyRecordBuilder creates a new record builder with sensible defaults.
func NewDependencyRecordBuilder() *DependencyRecordBuilder {
	return &DependencyRecordBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		name:        "test-dependency",
		version:     "1.2.3",
		source:      "registry",
		direct:      true,
		dev:         false,
		candidates:  nil,
	}
}

// WithName sets the dependency name.
func (b *DependencyRecordBuilder) WithName(name string) *DependencyRecordBuilder {
	b.name = name
	return b
}

// WithVersion sets the resolved version.
func (b *DependencyRecordBuilder) WithVersion(version string) *DependencyRecordBuilder {
	b.version = version
	return b
}

// WithSource sets the registry source.
func (b *DependencyRecordBuilder) WithSource(source string) *DependencyRecordBuilder {
	b.source = source
	return b
}

// WithDirect sets the direct flag.
func (b *DependencyRecordBuilder) WithDirect(direct bool) *DependencyRecordBuilder {
	b.direct = direct
	return b
}

// WithDev sets the dev flag.
func (b *DependencyRecordBuilder) WithDev(dev bool) *DependencyRecordBuilder {
	b.dev = dev
	return b
}

// WithCandidates sets the newer versions of the update candidate, in
// ascending order.
func (b *DependencyRecordBuilder) WithCandidates(versions ...string) *DependencyRecordBuilder {
	b.candidates = versions
	return b
}

// Build creates the record (satisfies testkit.Builder interface).
func (b *DependencyRecordBuilder) Build() interface{} {
	return b.BuildRecord()
}

// BuildRecord creates the record with a concrete return type. Version
// strings must be valid semver; invalid ones panic, which is acceptable in
// test setup.
func (b *DependencyRecordBuilder) BuildRecord() entities.DependencyRecord {
	record := entities.DependencyRecord{
		Name:    b.name,
		Version: semver.MustParse(b.version),
		Source:  b.source,
		Direct:  b.direct,
		Dev:     b.dev,
	}

	if len(b.candidates) > 0 {
		versions := make([]*semver.Version, 0, len(b.candidates))
		for _, candidate := range b.candidates {
			versions = append(versions, semver.MustParse(candidate))
		}
		record.Update = &entities.UpdateCandidate{Versions: versions}
	}

	return record
}

// Reset clears the builder state, allowing it to be reused.
func (b *DependencyRecordBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.name = "test-dependency"
	b.version = "1.2.3"
	b.source = "registry"
	b.direct = true
	b.dev = false
	b.candidates = nil
	return b
}

// Clone creates a deep copy of the DependencyRecordBuilder.
func (b *DependencyRecordBuilder) Clone() testkit.Builder {
	candidates := make([]string, len(b.candidates))
	copy(candidates, b.candidates)
	return &DependencyRecordBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		name:        b.name,
		version:     b.version,
		source:      b.source,
		direct:      b.direct,
		dev:         b.dev,
		candidates:  candidates,
	}
}
