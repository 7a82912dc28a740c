package impact

import (
	"encoding/json"
	"fmt"
)

// Severity is the seven-level risk ranking attached to every classified
// action and footprint entry.
type Severity int

const (
	SeverityNone Severity = iota
	SeverityLow
	SeverityLowMedium
	SeverityMedium
	SeverityMediumHigh
	SeverityHigh
	SeverityCritical
)

var severityNames = [...]string{
	SeverityNone:       "None",
	SeverityLow:        "Low",
	SeverityLowMedium:  "Low-Medium",
	SeverityMedium:     "Medium",
	SeverityMediumHigh: "Medium-High",
	SeverityHigh:       "High",
	SeverityCritical:   "Critical",
}

// severityColors are display hints only; rendering layers may substitute
// their own palette.
var severityColors = [...]string{
	SeverityNone:       "#888888",
	SeverityLow:        "#228B22",
	SeverityLowMedium:  "#9ACD32",
	SeverityMedium:     "#FF8800",
	SeverityMediumHigh: "#FF6633",
	SeverityHigh:       "#CC3333",
	SeverityCritical:   "#8B0000",
}

func (s Severity) String() string {
	if s < SeverityNone || s > SeverityCritical {
		return fmt.Sprintf("Severity(%d)", int(s))
	}
	return severityNames[s]
}

// ColorHint returns the hex color associated with the severity.
func (s Severity) ColorHint() string {
	if s < SeverityNone || s > SeverityCritical {
		return severityColors[SeverityNone]
	}
	return severityColors[s]
}

func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Severity) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	*s = ParseSeverity(name)
	return nil
}

func (s Severity) MarshalYAML() (any, error) {
	return s.String(), nil
}

// ParseSeverity maps a severity name back to its level. Unknown names
// map to SeverityNone.
func ParseSeverity(name string) Severity {
	for i, n := range severityNames {
		if n == name {
			return Severity(i)
		}
	}
	return SeverityNone
}

// RiskAssessment pairs a severity with the concern that produced it.
// Values are never mutated after creation.
type RiskAssessment struct {
	Severity Severity `json:"severity" yaml:"severity"`
	Concern  string   `json:"concern,omitempty" yaml:"concern,omitempty"`
}

// Category identifies which MSI table a footprint entry came from.
type Category string

const (
	CategoryFile        Category = "File"
	CategoryRegistry    Category = "Registry"
	CategoryService     Category = "Service"
	CategoryShortcut    Category = "Shortcut"
	CategoryExtension   Category = "Extension"
	CategoryEnvironment Category = "Environment"
)

// Categories lists every footprint category in report order.
var Categories = []Category{
	CategoryFile,
	CategoryRegistry,
	CategoryService,
	CategoryShortcut,
	CategoryExtension,
	CategoryEnvironment,
}

// FootprintEntry is one item the installation would leave on the target
// machine.
type FootprintEntry struct {
	Category   Category       `json:"category" yaml:"category"`
	Label      string         `json:"label" yaml:"label"`
	Assessment RiskAssessment `json:"assessment" yaml:"assessment"`
	Details    string         `json:"details,omitempty" yaml:"details,omitempty"`
}

// CategoryReport groups the entries of one footprint category.
type CategoryReport struct {
	Count   int              `json:"count" yaml:"count"`
	Entries []FootprintEntry `json:"entries" yaml:"entries"`
}

// TimelineEntry is one action of the InstallExecuteSequence, annotated
// with its decoded impact.
type TimelineEntry struct {
	SequenceNumber int      `json:"sequenceNumber" yaml:"sequenceNumber"`
	ActionName     string   `json:"actionName" yaml:"actionName"`
	Condition      string   `json:"condition,omitempty" yaml:"condition,omitempty"`
	ActionType     string   `json:"actionType" yaml:"actionType"`
	Impact         string   `json:"impact" yaml:"impact"`
	Severity       Severity `json:"severity" yaml:"severity"`
}

// Phase is one installation stage of the execute sequence.
type Phase struct {
	Name    string          `json:"phaseName" yaml:"phaseName"`
	Entries []TimelineEntry `json:"entries" yaml:"entries"`
}

// Report is the full analysis output: plain data with no references back
// into the input tables, safe to serialize or hand to a UI.
type Report struct {
	Timeline  []Phase                     `json:"timeline" yaml:"timeline"`
	Footprint map[Category]CategoryReport `json:"footprint" yaml:"footprint"`
}

// TotalFindings counts footprint entries at or above the given severity.
func (r *Report) TotalFindings(min Severity) int {
	n := 0
	for _, cat := range r.Footprint {
		for _, e := range cat.Entries {
			if e.Assessment.Severity >= min {
				n++
			}
		}
	}
	return n
}

// SeverityCounts tallies footprint entries per severity level, for
// summary views.
func (r *Report) SeverityCounts() map[Severity]int {
	counts := make(map[Severity]int)
	for _, cat := range r.Footprint {
		for _, e := range cat.Entries {
			counts[e.Assessment.Severity]++
		}
	}
	return counts
}

// Options adjusts presentation aspects of an analysis pass. The zero
// value is valid.
type Options struct {
	// UseExamplePaths renders well-known directory anchors as
	// illustrative OS paths instead of [BRACKETED] ids.
	UseExamplePaths bool
}
