package msi

import (
	"encoding/json"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// analyzedTables is the extraction worklist: every table the impact
// engine knows how to read. Tables the package does not carry are simply
// absent from the result.
var analyzedTables = []string{
	TableProperty,
	TableDirectory,
	TableComponent,
	TableCustomAction,
	TableInstallExecuteSequence,
	TableRegistry,
	TableFile,
	TableServiceInstall,
	TableShortcut,
	TableExtension,
	TableEnvironment,
}

// ExtractTables reads the analyzed tables out of an MSI database through
// the WindowsInstaller COM automation interface. It only works on
// Windows hosts; elsewhere, produce a JSON dump with an external reader
// and feed it to LoadTables instead.
func ExtractTables(msiPath string) ([]Table, error) {
	if runtime.GOOS != "windows" {
		return nil, fmt.Errorf("direct MSI extraction requires Windows; use a JSON table dump on %s", runtime.GOOS)
	}

	psCommand := fmt.Sprintf(`
$msi = "%s"
$installer = New-Object -ComObject WindowsInstaller.Installer
$db = $installer.GetType().InvokeMember('OpenDatabase','InvokeMethod',$null,$installer,@($msi,0))
$wanted = @(%s)
$tables = @()
foreach ($name in $wanted) {
  try {
    $view = $db.GetType().InvokeMember('OpenView','InvokeMethod',$null,$db,@("SELECT * FROM `+"``$name``"+`"))
    $view.GetType().InvokeMember('Execute','InvokeMethod',$null,$view,$null)
  } catch { continue }
  $cols = @()
  $colInfo = $view.GetType().InvokeMember('ColumnInfo','GetProperty',$null,$view,@(0))
  $fieldCount = $colInfo.GetType().InvokeMember('FieldCount','GetProperty',$null,$colInfo,$null)
  for ($i = 1; $i -le $fieldCount; $i++) {
    $cols += $colInfo.GetType().InvokeMember('StringData','GetProperty',$null,$colInfo,@($i))
  }
  $rows = @()
  while ($rec = $view.GetType().InvokeMember('Fetch','InvokeMethod',$null,$view,$null)) {
    $row = @()
    for ($i = 1; $i -le $fieldCount; $i++) {
      $row += [string]$rec.GetType().InvokeMember('StringData','GetProperty',$null,$rec,@($i))
    }
    $rows += ,$row
  }
  $tables += [PSCustomObject]@{ name = $name; columns = $cols; rows = $rows }
}
$tables | ConvertTo-Json -Depth 5 -Compress
`, msiPath, quotedTableList())

	out, err := exec.Command("powershell", "-NoProfile", "-NonInteractive", "-Command", psCommand).Output()
	if err != nil {
		return nil, fmt.Errorf("extracting MSI tables: %w", err)
	}

	var tables []Table
	if err := json.Unmarshal(out, &tables); err != nil {
		// ConvertTo-Json emits a bare object when exactly one table exists.
		var single Table
		if err2 := json.Unmarshal(out, &single); err2 != nil {
			return nil, fmt.Errorf("decoding extractor output: %w", err)
		}
		tables = []Table{single}
	}
	return tables, nil
}

func quotedTableList() string {
	quoted := make([]string, len(analyzedTables))
	for i, name := range analyzedTables {
		quoted[i] = "'" + name + "'"
	}
	return strings.Join(quoted, ",")
}
