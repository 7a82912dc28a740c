package impact

import (
	"fmt"
	"strconv"
	"strings"
)

// Custom action type bitfield layout. The low six bits select the action
// kind; the remaining fields carry source/target location, scheduling
// and elevation/visibility flags.
const (
	actionBaseMask      = 0x3F
	actionSourceMask    = 0xC0
	actionTargetMask    = 0x300
	actionExecModeMask  = 0xC00
	actionNoImpersonate = 0x1000
	actionWin64         = 0x2000
	actionHiddenTarget  = 0x4000
	execModeDeferred    = 2
)

// ActionTypeInfo is the unpacked form of a CustomAction type code plus
// the derived impact description and severity.
type ActionTypeInfo struct {
	Raw             int
	Base            int
	SourceLocation  int
	TargetLocation  int
	ExecutionMode   int
	NoImpersonation bool
	Win64           bool
	Hidden          bool

	Impact   string
	Severity Severity
}

// Label is the short form shown in timeline listings.
func (i ActionTypeInfo) Label() string {
	if i.Raw == 0 {
		return "Unknown"
	}
	var flags []string
	if i.ExecutionMode == execModeDeferred {
		flags = append(flags, "deferred")
	}
	if i.NoImpersonation {
		flags = append(flags, "no impersonation")
	}
	if i.Win64 {
		flags = append(flags, "64-bit")
	}
	if i.Hidden {
		flags = append(flags, "hidden")
	}
	if len(flags) == 0 {
		return fmt.Sprintf("Type %d", i.Raw)
	}
	return fmt.Sprintf("Type %d (%s)", i.Raw, strings.Join(flags, ", "))
}

// Full-value overrides recognized before the generic base-category rule.
var actionTypeOverrides = map[int]struct {
	impact   string
	severity Severity
}{
	51:  {"Sets system property", SeverityMedium},
	307: {"Directory operation with custom data", SeverityMedium},
	70:  {"Custom setup execution", SeverityHigh},
	257: {"Software detection routine", SeverityMedium},
	210: {"External program execution", SeverityHigh},
}

// DecodeActionType unpacks a CustomAction type code and derives its
// impact description and severity. It is total: any string, including
// non-numeric garbage, yields a usable result.
func DecodeActionType(raw string) ActionTypeInfo {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return ActionTypeInfo{Impact: "Unknown custom action", Severity: SeverityLow}
	}

	info := ActionTypeInfo{
		Raw:             v,
		Base:            v & actionBaseMask,
		SourceLocation:  (v & actionSourceMask) >> 6,
		TargetLocation:  (v & actionTargetMask) >> 8,
		ExecutionMode:   (v & actionExecModeMask) >> 10,
		NoImpersonation: v&actionNoImpersonate != 0,
		Win64:           v&actionWin64 != 0,
		Hidden:          v&actionHiddenTarget != 0,
	}

	if override, ok := actionTypeOverrides[v]; ok {
		info.Impact = override.impact
		info.Severity = override.severity
	} else {
		info.Impact, info.Severity = classifyActionBase(info)
	}

	info.Impact, info.Severity = escalateActionType(info)
	return info
}

func classifyActionBase(info ActionTypeInfo) (string, Severity) {
	switch info.Base {
	case 2, 18, 34, 50, 210:
		if info.NoImpersonation {
			return "Launches executable with elevated privileges", SeverityCritical
		}
		return "Launches executable", SeverityHigh

	case 5, 6, 98:
		impact := scriptImpact(info.Base)
		if info.NoImpersonation {
			return impact + " with elevated privileges", SeverityCritical
		}
		return impact, SeverityHigh

	case 1, 17, 33, 49, 257:
		if info.NoImpersonation {
			return "Calls DLL function with elevated privileges", SeverityHigh
		}
		return "Calls DLL function", SeverityMedium

	case 35:
		return "Registry modification", SeverityMedium

	case 38:
		if info.NoImpersonation {
			return "Executes command line with elevated privileges", SeverityHigh
		}
		return "Executes command line", SeverityMedium

	case 65:
		return "User interface action", SeverityLow

	case 70, 226:
		return "Custom setup execution", SeverityHigh

	default:
		if info.NoImpersonation {
			return "Custom action with elevated privileges", SeverityMedium
		}
		return "Custom action", SeverityLow
	}
}

func scriptImpact(base int) string {
	switch base {
	case 5:
		return "Executes JScript code"
	case 6:
		return "Executes VBScript code"
	default:
		return "Executes PowerShell script"
	}
}

// escalateActionType applies the post-classification escalation rules:
// deferred execution without impersonation is always critical, and hidden
// actions step Low to Medium or Medium to High.
func escalateActionType(info ActionTypeInfo) (string, Severity) {
	impact, severity := info.Impact, info.Severity

	if info.ExecutionMode == execModeDeferred && info.NoImpersonation {
		severity = SeverityCritical
		if !strings.Contains(impact, "elevated privileges") {
			impact += " with elevated privileges (deferred)"
		}
	}

	if info.Hidden {
		if !strings.Contains(impact, "(hidden action)") {
			impact += " (hidden action)"
		}
		switch severity {
		case SeverityMedium:
			severity = SeverityHigh
		case SeverityLow:
			severity = SeverityMedium
		}
	}

	return impact, severity
}
