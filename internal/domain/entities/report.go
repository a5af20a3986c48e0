package entities

import (
	"fmt"
	"strings"
)

const (
	reportBullet    = "- "
	reportH2Prefix  = "## "
	emptyBucketLine = "- (none)"
)

// FormatReport renders an analysis snapshot as a Markdown summary, one
// section per classification bucket plus a section for changes since the
// previous snapshot. Intended for terminal output and PR/issue bodies.
func FormatReport(snapshot *AnalysisSnapshot) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Dependency analysis: %s\n", snapshot.Repository)
	fmt.Fprintf(&b, "Commit %s, analyzed %s\n", shortCommit(snapshot.Commit),
		snapshot.Timestamp.UTC().Format("2006-01-02 15:04:05 UTC"))

	index := snapshot.Index()

	writeBucketSection(&b, "Vulnerable, no update available",
		snapshot.Buckets.VulnerableNoUpdate, index)
	writeBucketSection(&b, "Updatable", snapshot.Buckets.UpdatableNonDev, index)
	writeBucketSection(&b, "Updatable (dev only)", snapshot.Buckets.UpdatableDev, index)
	writeBucketSection(&b, "Blocked by semver", snapshot.Buckets.BlockedBySemver, index)
	writeChangesSection(&b, snapshot.Changes)

	return b.String()
}

// writeBucketSection appends one "## <title>" section with a bullet line per
// bucket member, in bucket order (priority descending).
func writeBucketSection(
	b *strings.Builder,
	title string,
	keys []DependencyKey,
	index map[DependencyKey]*DependencyRecord,
) {
	fmt.Fprintf(b, "\n%s%s\n\n", reportH2Prefix, title)

	if len(keys) == 0 {
		b.WriteString(emptyBucketLine + "\n")
		return
	}

	for _, key := range keys {
		record, ok := index[key]
		if !ok {
			// Bucket keys always resolve within their own snapshot; a miss
			// means the snapshot was assembled by hand.
			fmt.Fprintf(b, "%s%s\n", reportBullet, key)
			continue
		}
		b.WriteString(formatRecordLine(record))
	}
}

// formatRecordLine renders one dependency bullet with its target version,
// scores and reasons.
func formatRecordLine(record *DependencyRecord) string {
	var b strings.Builder

	b.WriteString(reportBullet)
	b.WriteString(record.Key().String())

	if latest := record.Update.Latest(); latest != nil {
		fmt.Fprintf(&b, " -> %s", latest)
	}
	if record.PriorityScore > 0 {
		fmt.Fprintf(&b, " [priority %d]", record.PriorityScore)
	}
	if record.RiskScore > 0 {
		fmt.Fprintf(&b, " [risk %d]", record.RiskScore)
	}
	b.WriteString("\n")

	for _, reason := range record.PriorityReasons {
		fmt.Fprintf(&b, "  %s%s\n", reportBullet, reason)
	}
	for _, reason := range record.RiskReasons {
		fmt.Fprintf(&b, "  %s%s\n", reportBullet, reason)
	}

	return b.String()
}

// writeChangesSection appends the summary of what is new since the previous
// snapshot.
func writeChangesSection(b *strings.Builder, changes ChangeSummary) {
	fmt.Fprintf(b, "\n%sSince previous snapshot\n\n", reportH2Prefix)

	if changes.IsEmpty() {
		b.WriteString("- no changes\n")
		return
	}

	for _, key := range changes.NewUpdates {
		fmt.Fprintf(b, "%snew update: %s\n", reportBullet, key)
	}
	for _, change := range changes.NewVulnerabilities {
		fmt.Fprintf(b, "%snew vulnerability %s: %s\n",
			reportBullet, change.Advisory.ID, change.Dependency)
	}
	for _, change := range changes.NewWarnings {
		fmt.Fprintf(b, "%snew warning %s: %s\n",
			reportBullet, change.Advisory.ID, change.Dependency)
	}
}

// shortCommit abbreviates a SHA-1 hash for display.
func shortCommit(commit string) string {
	if len(commit) > 12 {
		return commit[:12]
	}
	if commit == "" {
		return "(unknown)"
	}
	return commit
}
