// Package tui is the interactive report viewer: summary, timeline and
// footprint tabs over one finished analysis.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/msikit/msiscope/internal/impact"
	"github.com/msikit/msiscope/internal/msi"
	"github.com/msikit/msiscope/utils"
)

const pageSize = 10 // Number of lines to scroll per page

func initialModel(source string, info msi.PackageInfo, report *impact.Report) *Model {
	return &Model{
		source:          source,
		info:            info,
		report:          report,
		currentTab:      SummaryTab,
		keys:            DefaultKeyMap(),
		scrollPositions: make(map[TabType]int),
	}
}

// Run starts the viewer and blocks until the user quits.
func Run(source string, info msi.PackageInfo, report *impact.Report) error {
	p := tea.NewProgram(initialModel(source, info, report), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "1":
			m.currentTab = SummaryTab
		case "2":
			m.currentTab = TimelineTab
		case "3":
			m.currentTab = FootprintTab

		case "left", "h":
			if m.currentTab == FootprintTab {
				utils.CycleEnumPtr(&m.footprintSubTab, -1, maxFootprintSubTab)
				m.scrollPositions[FootprintTab] = 0
			}
		case "right", "l":
			if m.currentTab == FootprintTab {
				utils.CycleEnumPtr(&m.footprintSubTab, 1, maxFootprintSubTab)
				m.scrollPositions[FootprintTab] = 0
			}

		case "up", "k":
			m.scrollBy(-1)
		case "down", "j":
			m.scrollBy(1)
		case "pgup":
			m.scrollBy(-pageSize)
		case "pgdown":
			m.scrollBy(pageSize)
		case "home":
			m.scrollPositions[m.currentTab] = 0
		}
	}

	return m, nil
}

func (m *Model) scrollBy(delta int) {
	pos := m.scrollPositions[m.currentTab] + delta
	if pos < 0 {
		pos = 0
	}
	m.scrollPositions[m.currentTab] = pos
}

func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	header := m.renderTabBar()

	var content string
	switch m.currentTab {
	case SummaryTab:
		content = m.renderSummary()
	case TimelineTab:
		content = m.renderTimeline()
	case FootprintTab:
		content = m.renderFootprint()
	}

	content = m.applyScroll(content)
	help := utils.HelpBarStyle.Width(m.width).Render(
		"1/2/3 tabs • ←/→ category • ↑/↓ scroll • q quit")

	return lipgloss.JoinVertical(lipgloss.Left, header, content, help)
}

func (m *Model) renderTabBar() string {
	names := []string{"Summary", "Timeline", "Footprint"}
	var tabs []string
	for i, name := range names {
		style := utils.TabInactiveStyle
		if TabType(i) == m.currentTab {
			style = utils.TabActiveStyle
		}
		tabs = append(tabs, style.Render(fmt.Sprintf("%d %s", i+1, name)))
	}
	title := utils.TitleStyle.Render("msiscope — " + m.source)
	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

// applyScroll clamps the current tab's scroll offset to the content and
// returns the visible window.
func (m *Model) applyScroll(content string) string {
	lines := strings.Split(content, "\n")
	availableHeight := m.height - 4
	if availableHeight < 1 || len(lines) <= availableHeight {
		m.scrollPositions[m.currentTab] = 0
		return content
	}

	maxScroll := len(lines) - availableHeight
	scrollY := m.scrollPositions[m.currentTab]
	if scrollY > maxScroll {
		scrollY = maxScroll
		m.scrollPositions[m.currentTab] = scrollY
	}

	return strings.Join(lines[scrollY:scrollY+availableHeight], "\n")
}
