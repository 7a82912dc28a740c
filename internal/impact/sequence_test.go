package impact

import (
	"testing"

	"github.com/msikit/msiscope/internal/msi"
)

func TestPhaseForSequence(t *testing.T) {
	tests := []struct {
		seq  int
		want string
	}{
		{0, "Initialization Phase"},
		{999, "Initialization Phase"},
		{1000, "Validation Phase"},
		{1500, "Validation Phase"},
		{2500, "Preparation Phase"},
		{3500, "Execution Phase"},
		{4500, "Commit Phase"},
		{5500, "Rollback Phase"},
		{6000, "Finalization Phase"},
		{6500, "Finalization Phase"},
	}

	for _, tt := range tests {
		if got := PhaseForSequence(tt.seq); got != tt.want {
			t.Errorf("PhaseForSequence(%d) = %q, want %q", tt.seq, got, tt.want)
		}
	}
}

func sequenceTable(rows [][]string) msi.Table {
	return msi.Table{
		Name:    msi.TableInstallExecuteSequence,
		Columns: []string{"Action", "Condition", "Sequence"},
		Rows:    rows,
	}
}

func TestBuildTimeline(t *testing.T) {
	tables := []msi.Table{
		sequenceTable([][]string{
			{"LaunchConditions", "", "100"},
			{"AppSearch", "", "400"},
			{"CostInitialize", "", "800"},
			{"InstallValidate", "", "1400"},
			{"InstallInitialize", "", "1500"},
			{"MyCustomAction", "NOT Installed", "3200"},
			{"InstallFiles", "", "4000"},
			{"InstallFinalize", "", "6600"},
		}),
		{
			Name:    msi.TableCustomAction,
			Columns: []string{"Action", "Type", "Source", "Target"},
			Rows: [][]string{
				{"MyCustomAction", "3073", "MyBinary", "Entry"},
			},
		},
	}

	phases := BuildTimeline(tables, BuildLookups(tables))

	wantPhases := []string{
		"Initialization Phase",
		"Validation Phase",
		"Execution Phase",
		"Commit Phase",
		"Finalization Phase",
	}
	if len(phases) != len(wantPhases) {
		t.Fatalf("got %d phases, want %d", len(phases), len(wantPhases))
	}
	for i, want := range wantPhases {
		if phases[i].Name != want {
			t.Errorf("phase[%d] = %q, want %q", i, phases[i].Name, want)
		}
	}

	init := phases[0]
	if len(init.Entries) != 3 {
		t.Fatalf("initialization entries = %d, want 3", len(init.Entries))
	}
	if init.Entries[0].ActionName != "LaunchConditions" {
		t.Errorf("first action = %q, want LaunchConditions", init.Entries[0].ActionName)
	}

	// 3073 is an in-script DLL call without the no-impersonation flag,
	// so severity stays Medium.
	custom := phases[2].Entries[0]
	if custom.ActionName != "MyCustomAction" {
		t.Fatalf("execution entry = %q, want MyCustomAction", custom.ActionName)
	}
	if custom.Impact != "Calls DLL function" || custom.Severity != SeverityMedium {
		t.Errorf("custom action classified as (%q, %v)", custom.Impact, custom.Severity)
	}
	if custom.Condition != "NOT Installed" {
		t.Errorf("condition = %q, want NOT Installed", custom.Condition)
	}

	std := phases[3].Entries[0]
	if std.ActionType != "Standard" {
		t.Errorf("InstallFiles ActionType = %q, want Standard", std.ActionType)
	}
	if std.Severity != SeverityMedium {
		t.Errorf("InstallFiles severity = %v, want %v", std.Severity, SeverityMedium)
	}
}

func TestBuildTimelineDegradedRows(t *testing.T) {
	tables := []msi.Table{
		sequenceTable([][]string{
			{"CostInitialize", "", "not-a-number"}, // sequence defaults to 0
			{"InstallValidate", ""},                // missing sequence cell
			{},                                     // skipped entirely
			{"InstallFiles", "", "4000"},
		}),
	}

	phases := BuildTimeline(tables, BuildLookups(tables))
	if len(phases) != 2 {
		t.Fatalf("got %d phases, want 2", len(phases))
	}
	if len(phases[0].Entries) != 2 {
		t.Errorf("initialization entries = %d, want 2", len(phases[0].Entries))
	}
	for _, e := range phases[0].Entries {
		if e.SequenceNumber != 0 {
			t.Errorf("unparsable sequence number = %d, want 0", e.SequenceNumber)
		}
	}
}

func TestBuildTimelineNoTable(t *testing.T) {
	if phases := BuildTimeline(nil, BuildLookups(nil)); phases != nil {
		t.Errorf("missing sequence table should yield no phases, got %v", phases)
	}
}
