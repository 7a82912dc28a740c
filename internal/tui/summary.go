package tui

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"

	"github.com/msikit/msiscope/internal/impact"
	"github.com/msikit/msiscope/utils"
)

func (m *Model) renderSummary() string {
	var sections []string

	sections = append(sections, m.renderPackageBox())
	sections = append(sections, m.renderSeverityChart())
	sections = append(sections, m.renderCategoryBars())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) renderPackageBox() string {
	var lines []string
	if m.info.ProductName != "" {
		lines = append(lines, utils.TextStyle.Render("Product:      ")+m.info.ProductName)
	}
	if m.info.ProductVersion != "" {
		lines = append(lines, utils.TextStyle.Render("Version:      ")+m.info.ProductVersion)
	}
	if m.info.Manufacturer != "" {
		lines = append(lines, utils.TextStyle.Render("Manufacturer: ")+m.info.Manufacturer)
	}
	if m.info.ProductCode != "" {
		lines = append(lines, utils.MutedStyle.Render("ProductCode:  "+m.info.ProductCode))
	}
	if len(lines) == 0 {
		lines = append(lines, utils.MutedStyle.Render("No Property table metadata"))
	}
	return utils.BoxStyle.Render(strings.Join(lines, "\n"))
}

// renderSeverityChart draws the severity distribution of every
// classified item (timeline actions plus footprint entries).
func (m *Model) renderSeverityChart() string {
	counts := m.report.SeverityCounts()
	for _, phase := range m.report.Timeline {
		for _, entry := range phase.Entries {
			counts[entry.Severity]++
		}
	}

	levels := []impact.Severity{
		impact.SeverityNone,
		impact.SeverityLow,
		impact.SeverityLowMedium,
		impact.SeverityMedium,
		impact.SeverityMediumHigh,
		impact.SeverityHigh,
		impact.SeverityCritical,
	}

	width := min(m.width-4, 60)
	bc := barchart.New(width, 10)
	for _, level := range levels {
		bc.Push(barchart.BarData{
			Label: shortSeverityLabel(level),
			Values: []barchart.BarValue{{
				Name:  level.String(),
				Value: float64(counts[level]),
				Style: utils.GetSeverityStyle(level.String()),
			}},
		})
	}
	bc.Draw()

	title := utils.HeaderStyle.Render("Severity distribution (actions + footprint)")
	return lipgloss.JoinVertical(lipgloss.Left, "", title, bc.View())
}

func shortSeverityLabel(s impact.Severity) string {
	switch s {
	case impact.SeverityLowMedium:
		return "L-M"
	case impact.SeverityMediumHigh:
		return "M-H"
	default:
		name := s.String()
		if len(name) > 4 {
			return name[:4]
		}
		return name
	}
}

// renderCategoryBars shows footprint volume per category as horizontal
// bars.
func (m *Model) renderCategoryBars() string {
	total := 0
	for _, category := range impact.Categories {
		total += m.report.Footprint[category].Count
	}

	var bars []BarData
	for _, category := range impact.Categories {
		count := m.report.Footprint[category].Count
		pct := 0.0
		if total > 0 {
			pct = float64(count) * 100 / float64(total)
		}
		bars = append(bars, BarData{
			Label:      string(category),
			Value:      float64(count),
			Percentage: pct,
			Style:      utils.InfoStyle,
			Suffix:     fmt.Sprintf("- %d entries", count),
		})
	}

	config := DefaultBarConfig(min(m.width/3, 30))
	config.ValueFormat = "%.0f"
	config.ShowValue = false

	title := utils.HeaderStyle.Render("Footprint by category")
	return lipgloss.JoinVertical(lipgloss.Left, "",
		CreateHorizontalBarChart(title, bars, config))
}
