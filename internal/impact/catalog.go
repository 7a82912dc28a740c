package impact

import (
	"strings"
	"unicode"
)

type catalogEntry struct {
	Impact   string
	Severity Severity
}

// standardActionCatalog assigns every well-known MSI standard action an
// impact description and severity tier. Kept as data so individual
// entries can be tested and tuned without touching classification logic.
// No standard action reaches Critical; that tier is reserved for custom
// actions running deferred without impersonation.
var standardActionCatalog = map[string]catalogEntry{
	// High: executes the install script or changes machine availability.
	"InstallExecute":         {"Runs the installation script", SeverityHigh},
	"InstallExecuteAgain":    {"Runs the installation script again", SeverityHigh},
	"RemoveExistingProducts": {"Removes previously installed products", SeverityHigh},
	"ForceReboot":            {"Forces a system reboot", SeverityHigh},

	// Medium-High: service lifecycle, self-registration, rollback control.
	"InstallFinalize": {"Commits the installation script", SeverityMediumHigh},
	"InstallServices": {"Installs Windows services", SeverityMediumHigh},
	"DeleteServices":  {"Removes existing Windows services", SeverityMediumHigh},
	"StartServices":   {"Starts installed services", SeverityMediumHigh},
	"SelfRegModules":  {"Self-registers modules", SeverityMediumHigh},
	"DisableRollback": {"Disables installation rollback", SeverityMediumHigh},
	"ScheduleReboot":  {"Schedules a system reboot", SeverityMediumHigh},
	"RemoveFiles":     {"Deletes files from the target machine", SeverityMediumHigh},

	// Medium: writes persistent machine state.
	"InstallFiles":         {"Copies files to the target machine", SeverityMedium},
	"WriteRegistryValues":  {"Writes registry values", SeverityMedium},
	"RemoveRegistryValues": {"Removes registry values", SeverityMedium},
	"StopServices":         {"Stops running services", SeverityMedium},
	"PatchFiles":           {"Applies file patches", SeverityMedium},
	"SelfUnregModules":     {"Unregisters self-registered modules", SeverityMedium},

	// Low-Medium: scoped configuration writes.
	"WriteEnvironmentStrings":  {"Writes environment variables", SeverityLowMedium},
	"RemoveEnvironmentStrings": {"Removes environment variables", SeverityLowMedium},
	"WriteIniValues":           {"Writes INI file values", SeverityLowMedium},
	"RemoveIniValues":          {"Removes INI file values", SeverityLowMedium},
	"DuplicateFiles":           {"Duplicates installed files", SeverityLowMedium},
	"MoveFiles":                {"Moves files on the target machine", SeverityLowMedium},
	"RegisterProduct":          {"Registers the product with Windows Installer", SeverityLowMedium},
	"RegisterTypeLibraries":    {"Registers type libraries", SeverityLowMedium},
	"UnregisterTypeLibraries":  {"Unregisters type libraries", SeverityLowMedium},
	"RegisterClassInfo":        {"Registers COM class information", SeverityLowMedium},
	"RegisterExtensionInfo":    {"Registers file extension associations", SeverityLowMedium},
	"RegisterProgIdInfo":       {"Registers ProgId information", SeverityLowMedium},
	"RegisterMIMEInfo":         {"Registers MIME type information", SeverityLowMedium},
	"InstallODBC":              {"Installs ODBC drivers", SeverityLowMedium},
	"RemoveODBC":               {"Removes ODBC drivers", SeverityLowMedium},
	"BindImage":                {"Binds executables to imported DLLs", SeverityLowMedium},

	// Low: shortcuts, folders, bookkeeping.
	"CreateShortcuts":         {"Creates shortcuts", SeverityLow},
	"RemoveShortcuts":         {"Removes shortcuts", SeverityLow},
	"CreateFolders":           {"Creates folders", SeverityLow},
	"RemoveFolders":           {"Removes folders", SeverityLow},
	"RemoveDuplicateFiles":    {"Removes duplicated files", SeverityLow},
	"RegisterFonts":           {"Registers fonts", SeverityLow},
	"UnregisterFonts":         {"Unregisters fonts", SeverityLow},
	"RegisterUser":            {"Registers user information", SeverityLow},
	"ProcessComponents":       {"Registers component key paths", SeverityLow},
	"PublishComponents":       {"Publishes component information", SeverityLow},
	"PublishFeatures":         {"Publishes feature information", SeverityLow},
	"PublishProduct":          {"Publishes product information", SeverityLow},
	"UnpublishComponents":     {"Unpublishes component information", SeverityLow},
	"UnpublishFeatures":       {"Unpublishes feature information", SeverityLow},
	"UnregisterClassInfo":     {"Unregisters COM class information", SeverityLow},
	"UnregisterExtensionInfo": {"Unregisters file extension associations", SeverityLow},
	"UnregisterProgIdInfo":    {"Unregisters ProgId information", SeverityLow},
	"UnregisterMIMEInfo":      {"Unregisters MIME type information", SeverityLow},
	"InstallAdminPackage":     {"Copies an administrative image", SeverityLow},
	"IsolateComponents":       {"Installs shared component copies", SeverityLow},
	"SetODBCFolders":          {"Resolves ODBC directories", SeverityLow},
	"InstallInitialize":       {"Begins the installation transaction", SeverityLow},

	// None: costing, searches and validation; nothing touches the machine.
	"AppSearch":             {"Searches for existing applications", SeverityNone},
	"CCPSearch":             {"Checks for compliance products", SeverityNone},
	"RMCCPSearch":           {"Checks for compliance products", SeverityNone},
	"LaunchConditions":      {"Evaluates launch conditions", SeverityNone},
	"FindRelatedProducts":   {"Finds related installed products", SeverityNone},
	"MigrateFeatureStates":  {"Migrates feature states from older versions", SeverityNone},
	"ValidateProductID":     {"Validates the product identifier", SeverityNone},
	"CostInitialize":        {"Starts disk cost calculation", SeverityNone},
	"FileCost":              {"Calculates per-file disk cost", SeverityNone},
	"CostFinalize":          {"Finishes disk cost calculation", SeverityNone},
	"InstallValidate":       {"Validates the install state", SeverityNone},
	"ResolveSource":         {"Resolves the installation source", SeverityNone},
	"AllocateRegistrySpace": {"Reserves registry space", SeverityNone},
	"ExecuteAction":         {"Transfers control to the execute sequence", SeverityNone},
	"ScheduleApproxCost":    {"Estimates installation cost", SeverityNone},
}

// generatedNameMinLen is the length at which a leading-underscore action
// name with a digit is treated as tool-generated (GUID-derived names
// emitted by WiX and Visual Studio).
const generatedNameMinLen = 30

// ClassifyStandardAction classifies a sequence action that has no
// CustomAction row: prefix rules for generated and vendor names first,
// then the exact-name catalog, then a generic default.
func ClassifyStandardAction(name string) (string, Severity) {
	switch {
	case isGeneratedActionName(name):
		return "Custom action with generated name", SeverityMedium
	case strings.HasPrefix(name, "DIRCA_"):
		return "Visual Studio directory custom action", SeverityLow
	case strings.HasPrefix(name, "ERRCA_"):
		return "Visual Studio error-check custom action", SeverityLow
	case strings.HasPrefix(name, "AI_"):
		return classifyAdvancedInstallerAction(name)
	}

	if entry, ok := standardActionCatalog[name]; ok {
		return entry.Impact, entry.Severity
	}
	return "Standard MSI action", SeverityLow
}

func isGeneratedActionName(name string) bool {
	if !strings.HasPrefix(name, "_") || len(name) < generatedNameMinLen {
		return false
	}
	for _, r := range name {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

func classifyAdvancedInstallerAction(name string) (string, Severity) {
	upper := strings.ToUpper(name)
	if strings.Contains(upper, "DETECT") || strings.Contains(upper, "CHECK") {
		return "Advanced Installer detection helper", SeverityLow
	}
	for _, kw := range []string{"SET", "WRITE", "INSTALL", "EXECUTE"} {
		if strings.Contains(upper, kw) {
			return "Advanced Installer state-changing helper", SeverityMedium
		}
	}
	return "Advanced Installer helper action", SeverityLow
}
