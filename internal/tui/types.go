package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/msikit/msiscope/internal/impact"
	"github.com/msikit/msiscope/internal/msi"
)

type Model struct {
	// Data
	source string
	info   msi.PackageInfo
	report *impact.Report

	// UI State
	currentTab TabType
	width      int
	height     int

	scrollPositions map[TabType]int
	footprintSubTab FootprintSubTab

	// Key bindings
	keys KeyMap
}

type TabType int

const (
	SummaryTab TabType = iota
	TimelineTab
	FootprintTab
)

// FootprintSubTab indexes impact.Categories.
type FootprintSubTab int

var maxFootprintSubTab = FootprintSubTab(len(impact.Categories) - 1)

type KeyMap struct {
	Tab1  key.Binding
	Tab2  key.Binding
	Tab3  key.Binding
	Left  key.Binding
	Right key.Binding
	Up    key.Binding
	Down  key.Binding
	Quit  key.Binding
}

func k(keys []string, help, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(help, desc),
	)
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Tab1:  k([]string{"1"}, "1", "summary"),
		Tab2:  k([]string{"2"}, "2", "timeline"),
		Tab3:  k([]string{"3"}, "3", "footprint"),
		Left:  k([]string{"left", "h"}, "←/h", "prev category"),
		Right: k([]string{"right", "l"}, "→/l", "next category"),
		Up:    k([]string{"up", "k"}, "↑/k", "up"),
		Down:  k([]string{"down", "j"}, "↓/j", "down"),
		Quit:  k([]string{"q", "ctrl+c"}, "q", "quit"),
	}
}
