package impact

import (
	"strconv"
	"strings"

	"github.com/msikit/msiscope/internal/msi"
)

// phaseBucket is one installation stage, addressed by sequence number.
// Upper bounds are exclusive; numbers beyond the last bound land in the
// finalization remainder.
type phaseBucket struct {
	Name  string
	Upper int
}

// phaseBuckets is the canonical six-boundary phase table. Actions past
// 6000 fall into finalizationPhase.
var phaseBuckets = []phaseBucket{
	{"Initialization Phase", 1000},
	{"Validation Phase", 2000},
	{"Preparation Phase", 3000},
	{"Execution Phase", 4000},
	{"Commit Phase", 5000},
	{"Rollback Phase", 6000},
}

const finalizationPhase = "Finalization Phase"

// PhaseForSequence names the phase bucket a sequence number falls into.
func PhaseForSequence(seq int) string {
	for _, b := range phaseBuckets {
		if seq < b.Upper {
			return b.Name
		}
	}
	return finalizationPhase
}

// BuildTimeline buckets the InstallExecuteSequence into ordered phases
// and classifies every action. Rows keep their original table order
// inside a phase; a new phase group starts whenever a row's bucket
// differs from the previous row's, so an out-of-order sequence table can
// legitimately produce the same phase name more than once.
func BuildTimeline(tables []msi.Table, lookups *Lookups) []Phase {
	seqTable := msi.Find(tables, msi.TableInstallExecuteSequence)
	if seqTable == nil {
		return nil
	}

	var phases []Phase
	currentPhase := ""

	for _, row := range seqTable.Rows {
		if len(row) < 1 || row[0] == "" {
			continue
		}
		name := row[0]
		condition := ""
		if len(row) >= 2 {
			condition = row[1]
		}
		seq := 0
		if len(row) >= 3 {
			if n, err := strconv.Atoi(strings.TrimSpace(row[2])); err == nil {
				seq = n
			}
		}

		entry := TimelineEntry{
			SequenceNumber: seq,
			ActionName:     name,
			Condition:      condition,
		}
		if info, ok := lookups.CustomActions[name]; ok {
			decoded := DecodeActionType(info.Type)
			entry.ActionType = decoded.Label()
			entry.Impact = decoded.Impact
			entry.Severity = decoded.Severity
		} else {
			entry.ActionType = "Standard"
			entry.Impact, entry.Severity = ClassifyStandardAction(name)
		}

		bucket := PhaseForSequence(seq)
		if len(phases) == 0 || bucket != currentPhase {
			phases = append(phases, Phase{Name: bucket})
			currentPhase = bucket
		}
		last := &phases[len(phases)-1]
		last.Entries = append(last.Entries, entry)
	}

	return phases
}
