package impact

import "regexp"

// The classifier's heuristics live in these tables rather than in
// control flow, so individual entries can be unit-tested and tuned in
// isolation.

// criticalDirectories maps resolved directory anchors to the risk of
// installing a file there. Checked before any extension or path rule.
var criticalDirectories = map[string]RiskAssessment{
	"SystemFolder":        {SeverityHigh, "Installs into the Windows system directory"},
	"System64Folder":      {SeverityHigh, "Installs into the Windows system directory"},
	"WindowsFolder":       {SeverityHigh, "Installs into the Windows directory"},
	"StartupFolder":       {SeverityHigh, "Installs into the startup folder"},
	"CommonFilesFolder":   {SeverityMedium, "Installs into the shared Common Files directory"},
	"CommonFiles64Folder": {SeverityMedium, "Installs into the shared Common Files directory"},
}

// highRiskExtensions are file types that execute or hook into the shell
// on their own.
var highRiskExtensions = map[string]string{
	".vbs": "VBScript file",
	".vbe": "Encoded VBScript file",
	".wsf": "Windows Script file",
	".wsh": "Windows Script Host settings file",
	".hta": "HTML application",
	".scr": "Screen saver executable",
	".cpl": "Control Panel applet",
	".msc": "Management console snap-in",
	".lnk": "Shortcut file",
	".pif": "Program information file",
}

// mediumRiskExtensions are scriptable or system-adjacent file types.
var mediumRiskExtensions = map[string]string{
	".ps1":  "PowerShell script",
	".psm1": "PowerShell module",
	".psd1": "PowerShell data file",
	".bat":  "Batch script",
	".cmd":  "Command script",
	".reg":  "Registry merge file",
	".sys":  "Kernel driver",
	".xll":  "Excel add-in library",
}

// pathPattern pairs a compiled pattern with its assessment.
type pathPattern struct {
	Pattern    *regexp.Regexp
	Assessment RiskAssessment
}

// suspiciousPathPatterns flag install paths that land in system or
// persistence locations. First match wins.
var suspiciousPathPatterns = []pathPattern{
	{regexp.MustCompile(`(?i)\\system32\\`), RiskAssessment{SeverityHigh, "Writes into System32"}},
	{regexp.MustCompile(`(?i)\\syswow64\\`), RiskAssessment{SeverityHigh, "Writes into SysWOW64"}},
	{regexp.MustCompile(`(?i)start menu\\programs\\startup`), RiskAssessment{SeverityHigh, "Writes into a startup folder"}},
	{regexp.MustCompile(`(?i)\[StartupFolder\]`), RiskAssessment{SeverityHigh, "Writes into a startup folder"}},
	{regexp.MustCompile(`(?i)common files\\.*\.(exe|dll|ocx)`), RiskAssessment{SeverityMedium, "Executable under Common Files"}},
	{regexp.MustCompile(`(?i)\[(CommonFilesFolder|CommonFiles64Folder)\].*\.(exe|dll|ocx)`), RiskAssessment{SeverityMedium, "Executable under Common Files"}},
	{regexp.MustCompile(`(?i)\\windows\\`), RiskAssessment{SeverityMedium, "Writes under the Windows directory"}},
}

// autorunRegistryPatterns are persistence locations. A match classifies
// the entry immediately, before any other registry rule.
var autorunRegistryPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\\CurrentVersion\\Run\b`),
	regexp.MustCompile(`(?i)\\CurrentVersion\\RunOnce\b`),
	regexp.MustCompile(`(?i)\\CurrentVersion\\RunServices\b`),
	regexp.MustCompile(`(?i)\\CurrentVersion\\Policies\\Explorer\\Run\b`),
	regexp.MustCompile(`(?i)\\Winlogon\\(Shell|Userinit|Notify)\b`),
	regexp.MustCompile(`(?i)\\Image File Execution Options\\`),
	regexp.MustCompile(`(?i)\\CurrentControlSet\\Services\\.*\\ImagePath`),
}

// suspiciousRegistryPatterns flag registry locations that extend the
// shell or loosen security posture.
var suspiciousRegistryPatterns = []pathPattern{
	{regexp.MustCompile(`(?i)Browser Helper Objects`), RiskAssessment{SeverityHigh, "Installs a browser helper object"}},
	{regexp.MustCompile(`(?i)\\(ShellEx|shellex|ShellExecuteHooks|ShellServiceObjects)\\`), RiskAssessment{SeverityHigh, "Registers a shell extension"}},
	{regexp.MustCompile(`(?i)\\ContextMenuHandlers\\`), RiskAssessment{SeverityHigh, "Registers a context menu handler"}},
	{regexp.MustCompile(`(?i)\\Policies\\(System|Microsoft)`), RiskAssessment{SeverityHigh, "Modifies security policy keys"}},
	{regexp.MustCompile(`(?i)\\(Lsa|SecurityProviders|Authentication Packages)`), RiskAssessment{SeverityHigh, "Touches authentication configuration"}},
	{regexp.MustCompile(`(?i)\\Environment\b`), RiskAssessment{SeverityMedium, "Modifies environment configuration"}},
	{regexp.MustCompile(`(?i)\\App Paths\\`), RiskAssessment{SeverityMedium, "Registers an application path override"}},
	{regexp.MustCompile(`(?i)\\Protocols\\(Handler|Filter)`), RiskAssessment{SeverityMedium, "Registers a protocol handler"}},
	{regexp.MustCompile(`(?i)\\FileSystem\b`), RiskAssessment{SeverityMedium, "Touches filesystem configuration"}},
}

// systemExecutableValue matches registry values that point executables
// into system paths.
var systemExecutableValue = regexp.MustCompile(`(?i)(system32|syswow64|\[SystemFolder\]|\[System64Folder\]|\[WindowsFolder\]).*\.(exe|dll|sys|bat|cmd|scr)`)
