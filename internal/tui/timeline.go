package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/msikit/msiscope/internal/impact"
	"github.com/msikit/msiscope/utils"
)

func (m *Model) renderTimeline() string {
	if len(m.report.Timeline) == 0 {
		return utils.MutedStyle.Render("No InstallExecuteSequence table present.")
	}

	var lines []string
	for _, phase := range m.report.Timeline {
		lines = append(lines, utils.HeaderStyle.Render(phase.Name))
		for _, entry := range phase.Entries {
			lines = append(lines, m.renderTimelineEntry(entry))
		}
		lines = append(lines, "")
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *Model) renderTimelineEntry(entry impact.TimelineEntry) string {
	icon := utils.GetSeverityIcon(entry.Severity.String())
	style := utils.GetSeverityStyle(entry.Severity.String())

	name := utils.PadRight(utils.TruncateString(entry.ActionName, 32), 32)
	line := fmt.Sprintf(" %s %5d  %s  %s",
		icon, entry.SequenceNumber, name, style.Render(entry.Impact))

	if entry.Condition != "" {
		cond := utils.MutedStyle.Render("when " + utils.TruncateString(entry.Condition, m.width-14))
		line += "\n" + strings.Repeat(" ", 10) + cond
	}
	return line
}
