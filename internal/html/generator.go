// Package html renders an analysis report as a self-contained HTML page.
package html

import (
	_ "embed"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/msikit/msiscope/internal/impact"
	"github.com/msikit/msiscope/internal/msi"
)

//go:embed templates/template.html
var htmlTemplate string

//go:embed templates/styles.css
var cssContent string

// ReportData is everything the page template needs.
type ReportData struct {
	ReportID    string
	GeneratedAt time.Time
	Package     msi.PackageInfo
	Report      *impact.Report
	Categories  []impact.Category
	Summary     []SummaryRow
	CSS         template.CSS
}

// SummaryRow is one severity level's footprint tally.
type SummaryRow struct {
	Severity string
	Class    string
	Count    int
}

var pageTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"severityClass": severityClass,
}).Parse(htmlTemplate))

// GenerateReport writes the HTML report and returns the absolute path it
// was written to.
func GenerateReport(info msi.PackageInfo, report *impact.Report, outputPath string) (string, error) {
	if report == nil {
		return "", fmt.Errorf("no report to render")
	}

	data := &ReportData{
		ReportID:    uuid.NewString(),
		GeneratedAt: time.Now(),
		Package:     info,
		Report:      report,
		Categories:  impact.Categories,
		Summary:     summarize(report),
		CSS:         template.CSS(cssContent),
	}

	var sb strings.Builder
	if err := pageTemplate.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("rendering report: %w", err)
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(absPath, []byte(sb.String()), 0644); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}
	return absPath, nil
}

func summarize(report *impact.Report) []SummaryRow {
	counts := report.SeverityCounts()
	levels := []impact.Severity{
		impact.SeverityCritical,
		impact.SeverityHigh,
		impact.SeverityMediumHigh,
		impact.SeverityMedium,
		impact.SeverityLowMedium,
		impact.SeverityLow,
		impact.SeverityNone,
	}

	rows := make([]SummaryRow, 0, len(levels))
	for _, level := range levels {
		rows = append(rows, SummaryRow{
			Severity: level.String(),
			Class:    severityClass(level.String()),
			Count:    counts[level],
		})
	}
	return rows
}

func severityClass(severity string) string {
	return "sev-" + strings.ToLower(strings.ReplaceAll(severity, "-", ""))
}
