package impact

import (
	"fmt"
	"strings"

	"github.com/msikit/msiscope/internal/msi"
)

// BuildFootprint walks the footprint tables and emits one categorized,
// risk-scored report. Absent tables contribute empty categories; rows
// with fewer cells than their schema requires are skipped.
func BuildFootprint(tables []msi.Table, lookups *Lookups, opts Options) map[Category]CategoryReport {
	footprint := make(map[Category]CategoryReport, len(Categories))

	footprint[CategoryFile] = categorize(classifyFiles(tables, lookups, opts))
	footprint[CategoryRegistry] = categorize(classifyRegistry(tables))
	footprint[CategoryService] = categorize(classifyServices(tables))
	footprint[CategoryShortcut] = categorize(recordShortcuts(tables, lookups, opts))
	footprint[CategoryExtension] = categorize(recordExtensions(tables, lookups, opts))
	footprint[CategoryEnvironment] = categorize(recordEnvironment(tables, lookups, opts))

	return footprint
}

func categorize(entries []FootprintEntry) CategoryReport {
	return CategoryReport{Count: len(entries), Entries: entries}
}

// File table: File, Component_, FileName, FileSize, ...
func classifyFiles(tables []msi.Table, lookups *Lookups, opts Options) []FootprintEntry {
	t := msi.Find(tables, msi.TableFile)
	if t == nil {
		return nil
	}

	var entries []FootprintEntry
	for _, row := range t.Rows {
		if len(row) < 3 {
			continue
		}
		name := longFileName(row[2])
		dirID := lookups.ComponentDirs[row[1]]
		dirPath := ""
		if dirID != "" {
			dirPath = RenderDirectoryPath(dirID, lookups.DirectoryParents, opts)
		}
		fullPath := joinDisplayPath(dirPath, name)

		entries = append(entries, FootprintEntry{
			Category:   CategoryFile,
			Label:      name,
			Assessment: assessFile(dirID, name, fullPath, lookups),
			Details:    fullPath,
		})
	}
	return entries
}

// assessFile applies the file risk rules in priority order: critical
// install directory, then extension risk sets, then suspicious path
// patterns. Only the first matching rule applies.
func assessFile(dirID, name, fullPath string, lookups *Lookups) RiskAssessment {
	if dirID != "" {
		// Well-known folders usually chain up to TARGETDIR, so the raw
		// id is checked before the resolved anchor.
		if assessment, ok := criticalDirectories[dirID]; ok {
			return assessment
		}
		anchor := ResolveDirectoryAnchor(dirID, lookups.DirectoryParents)
		if assessment, ok := criticalDirectories[anchor]; ok {
			return assessment
		}
	}

	ext := strings.ToLower(fileExtension(name))
	if kind, ok := highRiskExtensions[ext]; ok {
		return RiskAssessment{SeverityHigh, kind}
	}
	if kind, ok := mediumRiskExtensions[ext]; ok {
		return RiskAssessment{SeverityMedium, kind}
	}

	for _, p := range suspiciousPathPatterns {
		if p.Pattern.MatchString(fullPath) {
			return p.Assessment
		}
	}

	return RiskAssessment{Severity: SeverityLow}
}

// longFileName extracts the long name from MSI's "short|long" filename
// convention.
func longFileName(raw string) string {
	if i := strings.LastIndexByte(raw, '|'); i >= 0 {
		return raw[i+1:]
	}
	return raw
}

func fileExtension(name string) string {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[i:]
	}
	return ""
}

// registryRoots maps the Registry table's Root column to hive names.
// -1 means "per-machine under ALLUSERS, per-user otherwise"; the
// original tool displays it as HKCU.
var registryRoots = map[string]string{
	"-1": "HKCU",
	"0":  "HKCR",
	"1":  "HKCU",
	"2":  "HKLM",
	"3":  "HKU",
}

// Registry table: Registry, Root, Key, Name, Value, Component_.
func classifyRegistry(tables []msi.Table) []FootprintEntry {
	t := msi.Find(tables, msi.TableRegistry)
	if t == nil {
		return nil
	}

	var entries []FootprintEntry
	for _, row := range t.Rows {
		if len(row) < 3 {
			continue
		}
		root, ok := registryRoots[strings.TrimSpace(row[1])]
		if !ok {
			root = row[1]
		}
		fullPath := root + "\\" + row[2]
		if len(row) >= 4 && row[3] != "" {
			fullPath += "\\" + row[3]
		}

		value := ""
		if len(row) >= 5 {
			value = row[4]
		}
		kind, display := DecodeRegistryValue(value)

		details := string(kind)
		if display != "" {
			details = fmt.Sprintf("%s = %s", kind, display)
		}

		entries = append(entries, FootprintEntry{
			Category:   CategoryRegistry,
			Label:      fullPath,
			Assessment: assessRegistry(fullPath, value),
			Details:    details,
		})
	}
	return entries
}

// assessRegistry scores one registry write. The autorun check
// short-circuits; the remaining rules compose by keeping the highest
// severity seen.
func assessRegistry(fullPath, value string) RiskAssessment {
	for _, p := range autorunRegistryPatterns {
		if p.MatchString(fullPath) {
			return RiskAssessment{SeverityHigh, "Persistence Mechanism"}
		}
	}

	result := RiskAssessment{Severity: SeverityLow}
	for _, p := range suspiciousRegistryPatterns {
		if p.Pattern.MatchString(fullPath) && p.Assessment.Severity > result.Severity {
			result = p.Assessment
		}
	}

	if systemExecutableValue.MatchString(value) && SeverityHigh > result.Severity {
		result = RiskAssessment{SeverityHigh, "System executable in registry value"}
	}

	return result
}

// ServiceInstall table: ServiceInstall, Name, DisplayName, ServiceType,
// StartType, ErrorControl, ...
func classifyServices(tables []msi.Table) []FootprintEntry {
	t := msi.Find(tables, msi.TableServiceInstall)
	if t == nil {
		return nil
	}

	var entries []FootprintEntry
	for _, row := range t.Rows {
		if len(row) < 5 {
			continue
		}
		name := row[1]
		display := row[2]
		if display == "" {
			display = name
		}

		entries = append(entries, FootprintEntry{
			Category:   CategoryService,
			Label:      display,
			Assessment: assessService(row[3], row[4]),
			Details:    fmt.Sprintf("Service %s (type %s, start %s)", name, row[3], row[4]),
		})
	}
	return entries
}

func assessService(serviceType, startType string) RiskAssessment {
	// Start type 2 is auto-start; service type 16 runs in its own
	// process. Either one marks the service critical to inspect.
	if startType == "2" || serviceType == "16" {
		return RiskAssessment{SeverityHigh, "Service starts automatically at boot"}
	}
	if startType == "0x00000002" {
		if serviceType == "0x00000001" || serviceType == "0x00000002" {
			return RiskAssessment{SeverityHigh, "Auto-start kernel or filesystem driver"}
		}
		return RiskAssessment{SeverityMedium, "Auto-start service"}
	}
	return RiskAssessment{Severity: SeverityLow}
}

// Shortcut table: Shortcut, Directory_, Name, Component_, Target, ...
func recordShortcuts(tables []msi.Table, lookups *Lookups, opts Options) []FootprintEntry {
	t := msi.Find(tables, msi.TableShortcut)
	if t == nil {
		return nil
	}

	var entries []FootprintEntry
	for _, row := range t.Rows {
		if len(row) < 3 {
			continue
		}
		name := longFileName(row[2])
		location := RenderDirectoryPath(row[1], lookups.DirectoryParents, opts)
		details := joinDisplayPath(location, name)
		if len(row) >= 5 && row[4] != "" {
			target := ResolvePlaceholders(row[4], lookups.Properties, lookups.DirectoryParents, opts)
			details = fmt.Sprintf("%s -> %s", details, target)
		}

		entries = append(entries, FootprintEntry{
			Category:   CategoryShortcut,
			Label:      name,
			Assessment: RiskAssessment{Severity: SeverityNone},
			Details:    details,
		})
	}
	return entries
}

// Extension table: Extension, Component_, ProgId_, MIME_, Feature_.
func recordExtensions(tables []msi.Table, lookups *Lookups, opts Options) []FootprintEntry {
	t := msi.Find(tables, msi.TableExtension)
	if t == nil {
		return nil
	}

	var entries []FootprintEntry
	for _, row := range t.Rows {
		if len(row) < 1 || row[0] == "" {
			continue
		}
		details := "File type association"
		if len(row) >= 3 && row[2] != "" {
			details = "Associated with " + row[2]
		}
		if len(row) >= 2 {
			if dirID, ok := lookups.ComponentDirs[row[1]]; ok {
				details += ", handled from " + RenderDirectoryPath(dirID, lookups.DirectoryParents, opts)
			}
		}

		entries = append(entries, FootprintEntry{
			Category:   CategoryExtension,
			Label:      "." + strings.TrimPrefix(row[0], "."),
			Assessment: RiskAssessment{Severity: SeverityNone},
			Details:    details,
		})
	}
	return entries
}

// Environment table: Environment, Name, Value, Component_.
func recordEnvironment(tables []msi.Table, lookups *Lookups, opts Options) []FootprintEntry {
	t := msi.Find(tables, msi.TableEnvironment)
	if t == nil {
		return nil
	}

	var entries []FootprintEntry
	for _, row := range t.Rows {
		if len(row) < 2 || row[1] == "" {
			continue
		}
		details := ""
		if len(row) >= 3 {
			details = ResolvePlaceholders(row[2], lookups.Properties, lookups.DirectoryParents, opts)
		}

		entries = append(entries, FootprintEntry{
			Category:   CategoryEnvironment,
			Label:      strings.TrimLeft(row[1], "=+-!*"),
			Assessment: RiskAssessment{Severity: SeverityNone},
			Details:    details,
		})
	}
	return entries
}
