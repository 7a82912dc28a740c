package impact

import (
	"github.com/msikit/msiscope/internal/msi"
)

// nullParent is the Directory table's sentinel for "no parent": the
// directory is a filesystem root anchor.
const nullParent = "NULL"

// CustomActionInfo is one row of the CustomAction table, keyed by action
// name in the lookups.
type CustomActionInfo struct {
	Name   string
	Type   string
	Source string
	Target string
}

// Lookups are the typed views over one table snapshot. They are built
// fresh per analysis pass and never shared mutably across passes.
type Lookups struct {
	// Properties maps property name to value.
	Properties map[string]string
	// DirectoryParents maps directory id to parent id (nullParent at roots).
	DirectoryParents map[string]string
	// ComponentDirs maps component id to the directory it installs into.
	ComponentDirs map[string]string
	// CustomActions maps action name to its CustomAction row.
	CustomActions map[string]CustomActionInfo
}

// BuildLookups constructs every lookup map in one O(total rows) pass.
// Absent tables yield empty maps, not errors; rows with fewer cells than
// the schema requires are skipped.
func BuildLookups(tables []msi.Table) *Lookups {
	l := &Lookups{
		Properties:       make(map[string]string),
		DirectoryParents: make(map[string]string),
		ComponentDirs:    make(map[string]string),
		CustomActions:    make(map[string]CustomActionInfo),
	}

	if t := msi.Find(tables, msi.TableProperty); t != nil {
		for _, row := range t.Rows {
			if len(row) >= 2 {
				l.Properties[row[0]] = row[1]
			}
		}
	}

	if t := msi.Find(tables, msi.TableDirectory); t != nil {
		for _, row := range t.Rows {
			if len(row) >= 2 {
				l.DirectoryParents[row[0]] = row[1]
			}
		}
	}

	// Component schema: Component, ComponentId, Directory_, ...
	if t := msi.Find(tables, msi.TableComponent); t != nil {
		for _, row := range t.Rows {
			if len(row) >= 3 {
				l.ComponentDirs[row[0]] = row[2]
			}
		}
	}

	if t := msi.Find(tables, msi.TableCustomAction); t != nil {
		for _, row := range t.Rows {
			if len(row) < 2 {
				continue
			}
			info := CustomActionInfo{Name: row[0], Type: row[1]}
			if len(row) >= 3 {
				info.Source = row[2]
			}
			if len(row) >= 4 {
				info.Target = row[3]
			}
			l.CustomActions[info.Name] = info
		}
	}

	return l
}
