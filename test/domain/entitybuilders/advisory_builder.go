package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/depwatch/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// AdvisoryBuilder helps create test advisories with a fluent interface.
type AdvisoryBuilder struct {
	*testkit.BaseBuilder
	id         string
	pkg        string
	title      string
	kind       entities.AdvisoryKind
	patched    []string
	unaffected []string
}

// NewAdvisoryBuilder creates a new advisory builder with sensible defaults.
func NewAdvisoryBuilder() *AdvisoryBuilder {
	return &AdvisoryBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		id:          "RUSTSEC-2020-0001",
		pkg:         "test-dependency",
		title:       "Test advisory",
		kind:        entities.AdvisoryVulnerability,
		patched:     nil,
		unaffected:  nil,
	}
}

// WithID sets the advisory identifier.
func (b *AdvisoryBuilder) WithID(id string) *AdvisoryBuilder {
	b.id = id
	return b
}

// WithPackage sets the affected package name.
func (b *AdvisoryBuilder) WithPackage(pkg string) *AdvisoryBuilder {
	b.pkg = pkg
	return b
}

// WithTitle sets the advisory title.
func (b *AdvisoryBuilder) WithTitle(title string) *AdvisoryBuilder {
	b.title = title
	return b
}

// WithKind sets the advisory kind.
func (b *AdvisoryBuilder) WithKind(kind entities.AdvisoryKind) *AdvisoryBuilder {
	b.kind = kind
	return b
}

// WithPatched sets the patched version constraints.
func (b *AdvisoryBuilder) WithPatched(constraints ...string) *AdvisoryBuilder {
	b.patched = constraints
	return b
}

// WithUnaffected sets the unaffected version constraints.
func (b *AdvisoryBuilder) WithUnaffected(constraints ...string) *AdvisoryBuilder {
	b.unaffected = constraints
	return b
}

// Build creates the advisory (satisfies testkit.Builder interface).
func (b *AdvisoryBuilder) Build() interface{} {
	return b.BuildAdvisory()
}

// BuildAdvisory creates the advisory with a concrete return type.
func (b *AdvisoryBuilder) BuildAdvisory() entities.Advisory {
	return entities.Advisory{
		ID:         b.id,
		Package:    b.pkg,
		Title:      b.title,
		Kind:       b.kind,
		Patched:    b.patched,
		Unaffected: b.unaffected,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *AdvisoryBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.id = "RUSTSEC-2020-0001"
	b.pkg = "test-dependency"
	b.title = "Test advisory"
	b.kind = entities.AdvisoryVulnerability
	b.patched = nil
	b.unaffected = nil
	return b
}

// Clone creates a deep copy of the AdvisoryBuilder.
func (b *AdvisoryBuilder) Clone() testkit.Builder {
	patched := make([]string, len(b.patched))
	copy(patched, b.patched)
	unaffected := make([]string, len(b.unaffected))
	copy(unaffected, b.unaffected)
	return &AdvisoryBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		id:          b.id,
		pkg:         b.pkg,
		title:       b.title,
		kind:        b.kind,
		patched:     patched,
		unaffected:  unaffected,
	}
}
