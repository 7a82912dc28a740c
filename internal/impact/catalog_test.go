package impact

import "testing"

func TestClassifyStandardAction(t *testing.T) {
	tests := []struct {
		name         string
		action       string
		wantImpact   string
		wantSeverity Severity
	}{
		{"catalog high", "RemoveExistingProducts", "Removes previously installed products", SeverityHigh},
		{"catalog medium-high", "InstallServices", "Installs Windows services", SeverityMediumHigh},
		{"catalog medium", "InstallFiles", "Copies files to the target machine", SeverityMedium},
		{"catalog low-medium", "WriteEnvironmentStrings", "Writes environment variables", SeverityLowMedium},
		{"catalog low", "CreateShortcuts", "Creates shortcuts", SeverityLow},
		{"catalog none", "CostFinalize", "Finishes disk cost calculation", SeverityNone},

		{"generated guid name", "_BA95A0BD61A24C199D0D180D1086AB1F", "Custom action with generated name", SeverityMedium},
		{"vs directory action", "DIRCA_TARGETDIR", "Visual Studio directory custom action", SeverityLow},
		{"vs error action", "ERRCA_UIANDADVERTISED", "Visual Studio error-check custom action", SeverityLow},
		{"ai detection helper", "AI_DetectDotNet", "Advanced Installer detection helper", SeverityLow},
		{"ai prereq check", "AI_CHECK_PREREQ", "Advanced Installer detection helper", SeverityLow},
		{"ai state change", "AI_SetPermissions", "Advanced Installer state-changing helper", SeverityMedium},
		{"ai execute", "AI_ExecuteChained", "Advanced Installer state-changing helper", SeverityMedium},
		{"ai generic", "AI_RollbackFx", "Advanced Installer helper action", SeverityLow},

		{"unrecognized name", "ContosoConfigure", "Standard MSI action", SeverityLow},
		{"short underscore name", "_Short1", "Standard MSI action", SeverityLow},
		{"long underscore no digit", "_AbcdefghijabcdefghijAbcdefghijX", "Standard MSI action", SeverityLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			impact, severity := ClassifyStandardAction(tt.action)
			if impact != tt.wantImpact || severity != tt.wantSeverity {
				t.Errorf("ClassifyStandardAction(%q) = (%q, %v), want (%q, %v)",
					tt.action, impact, severity, tt.wantImpact, tt.wantSeverity)
			}
		})
	}
}

func TestStandardActionCatalogSeverityBounds(t *testing.T) {
	// Standard actions never reach Critical; that tier belongs to
	// deferred elevated custom actions.
	for name, entry := range standardActionCatalog {
		if entry.Severity >= SeverityCritical {
			t.Errorf("%s carries severity %v, catalog must stay below Critical", name, entry.Severity)
		}
		if entry.Impact == "" {
			t.Errorf("%s has no impact description", name)
		}
	}
}
