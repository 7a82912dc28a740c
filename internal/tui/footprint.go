package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/msikit/msiscope/internal/impact"
	"github.com/msikit/msiscope/utils"
)

func (m *Model) renderFootprint() string {
	header := m.renderCategoryTabs()
	category := impact.Categories[m.footprintSubTab]
	cat := m.report.Footprint[category]

	if cat.Count == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, header, "",
			utils.MutedStyle.Render(fmt.Sprintf("No %s entries in this package.", category)))
	}

	var lines []string
	for _, entry := range cat.Entries {
		lines = append(lines, m.renderFootprintEntry(entry))
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, "",
		strings.Join(lines, "\n"))
}

func (m *Model) renderCategoryTabs() string {
	var tabs []string
	for i, category := range impact.Categories {
		style := utils.TabInactiveStyle
		if FootprintSubTab(i) == m.footprintSubTab {
			style = utils.TabActiveStyle
		}
		count := m.report.Footprint[category].Count
		tabs = append(tabs, style.Render(fmt.Sprintf("%s: %d", category, count)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m *Model) renderFootprintEntry(entry impact.FootprintEntry) string {
	icon := utils.GetSeverityIcon(entry.Assessment.Severity.String())
	style := utils.GetSeverityStyle(entry.Assessment.Severity.String())

	line := fmt.Sprintf(" %s %s", icon, utils.TruncateString(entry.Label, m.width-6))
	if entry.Assessment.Concern != "" {
		line += "\n     " + style.Render(entry.Assessment.Concern)
	}
	if entry.Details != "" {
		line += "\n     " + utils.MutedStyle.Render(utils.TruncateString(entry.Details, m.width-8))
	}
	return line
}
