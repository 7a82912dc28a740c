package impact

import (
	"testing"

	"github.com/msikit/msiscope/internal/msi"
)

func testDirectoryTables() []msi.Table {
	return []msi.Table{
		{
			Name:    msi.TableDirectory,
			Columns: []string{"Directory", "Directory_Parent", "DefaultDir"},
			Rows: [][]string{
				{"TARGETDIR", "NULL", "SourceDir"},
				{"ProgramFilesFolder", "TARGETDIR", "PFiles"},
				{"SystemFolder", "TARGETDIR", "System"},
				{"INSTALLDIR", "ProgramFilesFolder", "Contoso"},
			},
		},
		{
			Name:    msi.TableComponent,
			Columns: []string{"Component", "ComponentId", "Directory_", "Attributes", "Condition", "KeyPath"},
			Rows: [][]string{
				{"MainExe", "{11111111-0000-0000-0000-000000000001}", "INSTALLDIR", "0", "", ""},
				{"SysLib", "{11111111-0000-0000-0000-000000000002}", "SystemFolder", "0", "", ""},
			},
		},
	}
}

func TestClassifyFilesCriticalDirectoryWins(t *testing.T) {
	tables := append(testDirectoryTables(), msi.Table{
		Name:    msi.TableFile,
		Columns: []string{"File", "Component_", "FileName", "FileSize"},
		Rows: [][]string{
			// .dll is in neither extension risk set; the critical
			// directory rule must fire anyway.
			{"f1", "SysLib", "helper.dll", "1024"},
			{"f2", "MainExe", "setup.vbs", "2048"},
			{"f3", "MainExe", "tool.ps1", "512"},
			{"f4", "MainExe", "readme.txt", "128"},
		},
	})

	entries := classifyFiles(tables, BuildLookups(tables), Options{})
	if len(entries) != 4 {
		t.Fatalf("got %d entries, want 4", len(entries))
	}

	sysDLL := entries[0]
	if sysDLL.Assessment.Severity != SeverityHigh {
		t.Errorf("SystemFolder .dll severity = %v, want %v", sysDLL.Assessment.Severity, SeverityHigh)
	}
	if sysDLL.Assessment.Concern != "Installs into the Windows system directory" {
		t.Errorf("SystemFolder concern = %q, want critical-directory concern", sysDLL.Assessment.Concern)
	}

	if entries[1].Assessment.Severity != SeverityHigh {
		t.Errorf(".vbs severity = %v, want %v", entries[1].Assessment.Severity, SeverityHigh)
	}
	if entries[2].Assessment.Severity != SeverityMedium {
		t.Errorf(".ps1 severity = %v, want %v", entries[2].Assessment.Severity, SeverityMedium)
	}
	if entries[3].Assessment.Severity != SeverityLow || entries[3].Assessment.Concern != "" {
		t.Errorf(".txt assessment = %+v, want plain Low", entries[3].Assessment)
	}
}

func TestClassifyFilesLongNameConvention(t *testing.T) {
	tables := append(testDirectoryTables(), msi.Table{
		Name:    msi.TableFile,
		Columns: []string{"File", "Component_", "FileName", "FileSize"},
		Rows: [][]string{
			{"f1", "MainExe", "LAUNCH~1.VBS|Launch Helper.vbs", "64"},
		},
	})

	entries := classifyFiles(tables, BuildLookups(tables), Options{})
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0].Label != "Launch Helper.vbs" {
		t.Errorf("label = %q, want the long file name", entries[0].Label)
	}
	if entries[0].Assessment.Severity != SeverityHigh {
		t.Errorf("long-name .vbs severity = %v, want %v", entries[0].Assessment.Severity, SeverityHigh)
	}
}

func registryTables(rows [][]string) []msi.Table {
	return []msi.Table{{
		Name:    msi.TableRegistry,
		Columns: []string{"Registry", "Root", "Key", "Name", "Value", "Component_"},
		Rows:    rows,
	}}
}

func TestClassifyRegistryPersistenceShortCircuit(t *testing.T) {
	tables := registryTables([][]string{
		{"r1", "2", `SOFTWARE\Microsoft\Windows\CurrentVersion\Run`, "Updater", "[INSTALLDIR]updater.exe", "MainExe"},
	})

	entries := classifyRegistry(tables)
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	got := entries[0]
	if got.Assessment.Severity != SeverityHigh || got.Assessment.Concern != "Persistence Mechanism" {
		t.Errorf("autorun assessment = %+v, want (High, Persistence Mechanism)", got.Assessment)
	}
	if got.Label != `HKLM\SOFTWARE\Microsoft\Windows\CurrentVersion\Run\Updater` {
		t.Errorf("label = %q, want full hive path", got.Label)
	}
}

func TestClassifyRegistryRootsAndRules(t *testing.T) {
	tests := []struct {
		name         string
		row          []string
		wantPrefix   string
		wantSeverity Severity
		wantConcern  string
	}{
		{
			"hkcu plain value",
			[]string{"r1", "1", `Software\Contoso`, "Setting", "on", "c"},
			"HKCU\\", SeverityLow, "",
		},
		{
			"ambiguous root displays as hkcu",
			[]string{"r2", "-1", `Software\Contoso`, "", "x", "c"},
			"HKCU\\", SeverityLow, "",
		},
		{
			"hkcr shell extension",
			[]string{"r3", "0", `CLSID\{abc}\shellex\ContextMenuHandlers\x`, "", "", "c"},
			"HKCR\\", SeverityHigh, "Registers a shell extension",
		},
		{
			"hklm app path override",
			[]string{"r4", "2", `SOFTWARE\Microsoft\Windows\CurrentVersion\App Paths\tool.exe`, "", "", "c"},
			"HKLM\\", SeverityMedium, "Registers an application path override",
		},
		{
			"system executable value",
			[]string{"r5", "2", `SOFTWARE\Contoso`, "Helper", `C:\Windows\system32\evil.exe`, "c"},
			"HKLM\\", SeverityHigh, "System executable in registry value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := classifyRegistry(registryTables([][]string{tt.row}))
			if len(entries) != 1 {
				t.Fatalf("got %d entries, want 1", len(entries))
			}
			got := entries[0]
			if got.Label[:len(tt.wantPrefix)] != tt.wantPrefix {
				t.Errorf("label = %q, want prefix %q", got.Label, tt.wantPrefix)
			}
			if got.Assessment.Severity != tt.wantSeverity {
				t.Errorf("severity = %v, want %v", got.Assessment.Severity, tt.wantSeverity)
			}
			if got.Assessment.Concern != tt.wantConcern {
				t.Errorf("concern = %q, want %q", got.Assessment.Concern, tt.wantConcern)
			}
		})
	}
}

func TestClassifyServices(t *testing.T) {
	tests := []struct {
		name         string
		serviceType  string
		startType    string
		wantSeverity Severity
	}{
		{"auto start decimal", "272", "2", SeverityHigh},
		{"own process type", "16", "3", SeverityHigh},
		{"auto start driver", "0x00000001", "0x00000002", SeverityHigh},
		{"auto start service hex", "0x00000010", "0x00000002", SeverityMedium},
		{"demand start", "272", "3", SeverityLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tables := []msi.Table{{
				Name:    msi.TableServiceInstall,
				Columns: []string{"ServiceInstall", "Name", "DisplayName", "ServiceType", "StartType", "ErrorControl"},
				Rows: [][]string{
					{"s1", "ContosoSvc", "Contoso Service", tt.serviceType, tt.startType, "1"},
				},
			}}

			entries := classifyServices(tables)
			if len(entries) != 1 {
				t.Fatalf("got %d entries, want 1", len(entries))
			}
			if entries[0].Assessment.Severity != tt.wantSeverity {
				t.Errorf("severity = %v, want %v", entries[0].Assessment.Severity, tt.wantSeverity)
			}
			if entries[0].Label != "Contoso Service" {
				t.Errorf("label = %q, want display name", entries[0].Label)
			}
		})
	}
}

func TestInformationalCategories(t *testing.T) {
	tables := append(testDirectoryTables(),
		msi.Table{
			Name:    msi.TableShortcut,
			Columns: []string{"Shortcut", "Directory_", "Name", "Component_", "Target"},
			Rows: [][]string{
				{"sc1", "INSTALLDIR", "CONTOSO|Contoso Widget", "MainExe", "[INSTALLDIR]widget.exe"},
			},
		},
		msi.Table{
			Name:    msi.TableExtension,
			Columns: []string{"Extension", "Component_", "ProgId_", "MIME_", "Feature_"},
			Rows: [][]string{
				{"cwz", "MainExe", "Contoso.Widget", "", "Main"},
			},
		},
		msi.Table{
			Name:    msi.TableEnvironment,
			Columns: []string{"Environment", "Name", "Value", "Component_"},
			Rows: [][]string{
				{"e1", "*=-CONTOSO_HOME", "[INSTALLDIR]", "MainExe"},
			},
		},
	)

	lookups := BuildLookups(tables)
	opts := Options{}

	shortcuts := recordShortcuts(tables, lookups, opts)
	if len(shortcuts) != 1 || shortcuts[0].Assessment.Severity != SeverityNone {
		t.Fatalf("shortcuts = %+v, want one informational entry", shortcuts)
	}
	if shortcuts[0].Label != "Contoso Widget" {
		t.Errorf("shortcut label = %q, want long name", shortcuts[0].Label)
	}

	extensions := recordExtensions(tables, lookups, opts)
	if len(extensions) != 1 || extensions[0].Label != ".cwz" {
		t.Fatalf("extensions = %+v, want one .cwz entry", extensions)
	}
	if extensions[0].Assessment.Severity != SeverityNone {
		t.Errorf("extension severity = %v, want None", extensions[0].Assessment.Severity)
	}

	env := recordEnvironment(tables, lookups, opts)
	if len(env) != 1 || env[0].Assessment.Severity != SeverityNone {
		t.Fatalf("environment = %+v, want one informational entry", env)
	}
	if env[0].Label != "CONTOSO_HOME" {
		t.Errorf("environment label = %q, want modifier prefix stripped", env[0].Label)
	}
}

func TestBuildFootprintMalformedRowsSkipped(t *testing.T) {
	tables := []msi.Table{
		{
			Name:    msi.TableFile,
			Columns: []string{"File", "Component_", "FileName"},
			Rows: [][]string{
				{"f1"},          // too short, skipped
				{"f2", "c"},     // still too short
				{"f3", "c", "ok.txt"},
			},
		},
		{
			Name:    msi.TableRegistry,
			Columns: []string{"Registry", "Root", "Key"},
			Rows: [][]string{
				{"r1", "2"}, // missing key, skipped
				{"r2", "2", `Software\X`},
			},
		},
	}

	footprint := BuildFootprint(tables, BuildLookups(tables), Options{})
	if footprint[CategoryFile].Count != 1 {
		t.Errorf("file count = %d, want 1", footprint[CategoryFile].Count)
	}
	if footprint[CategoryRegistry].Count != 1 {
		t.Errorf("registry count = %d, want 1", footprint[CategoryRegistry].Count)
	}
}
