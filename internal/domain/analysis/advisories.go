package analysis

import (
	"github.com/Masterminds/semver/v3"

	"github.com/rios0rios0/depwatch/internal/domain/entities"
)

// AttachAdvisories associates advisories with the dependency records they
// affect. A record is affected by an advisory iff the advisory targets the
// record's package name and the record's version satisfies neither the
// patched set nor the unaffected set.
//
// Only the advisory-list fields of matching records are mutated; no records
// are created. A record may accumulate several advisories, and the order of
// each resulting list follows the order of the input advisory slice.
func AttachAdvisories(records []entities.DependencyRecord, advisories []entities.Advisory) {
	for _, advisory := range advisories {
		for i := range records {
			record := &records[i]
			if record.Name != advisory.Package {
				continue
			}
			if !affects(advisory, record.Version) {
				continue
			}
			switch advisory.Kind {
			case entities.AdvisoryVulnerability:
				record.Vulnerabilities = append(record.Vulnerabilities, advisory)
			case entities.AdvisoryWarning:
				record.Warnings = append(record.Warnings, advisory)
			}
		}
	}
}

// affects reports whether version escapes both the patched and the
// unaffected sets of the advisory.
func affects(advisory entities.Advisory, version *semver.Version) bool {
	return !satisfiesAny(advisory.Patched, version) &&
		!satisfiesAny(advisory.Unaffected, version)
}

// satisfiesAny reports whether version satisfies at least one of the given
// range expressions. Expressions that fail to parse match nothing.
func satisfiesAny(ranges []string, version *semver.Version) bool {
	for _, expr := range ranges {
		constraint, err := semver.NewConstraint(expr)
		if err != nil {
			continue
		}
		if constraint.Check(version) {
			return true
		}
	}
	return false
}
