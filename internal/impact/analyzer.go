// Package impact derives the operational footprint of a Windows
// Installer package from its already-extracted relational tables: a
// phased, severity-annotated action timeline and a categorized,
// risk-scored footprint report.
//
// The engine is a pure, synchronous function of its inputs. It performs
// no I/O, keeps no state between calls, and is total over arbitrary,
// even inconsistent, table data: malformed numbers degrade to documented
// defaults, absent tables act as empty, malformed rows are skipped, and
// cyclic directory graphs resolve to a best-effort anchor.
package impact

import "github.com/msikit/msiscope/internal/msi"

// Analyze runs a full analysis pass over one table snapshot. All lookup
// maps are rebuilt per call, so re-invocation with a new snapshot is
// never affected by a previous one.
func Analyze(tables []msi.Table, opts Options) *Report {
	lookups := BuildLookups(tables)
	return &Report{
		Timeline:  BuildTimeline(tables, lookups),
		Footprint: BuildFootprint(tables, lookups, opts),
	}
}
