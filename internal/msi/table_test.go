package msi

import "testing"

const envelopeDump = `{
	"product": "Contoso Widget",
	"tables": [
		{
			"name": "Property",
			"columns": ["Property", "Value"],
			"rows": [
				["ProductName", "Contoso Widget"],
				["ProductVersion", "2.1.0"],
				["Manufacturer", "Contoso Ltd"],
				["ProductCode", "{AAAA0000-0000-0000-0000-000000000001}"]
			]
		},
		{
			"name": "Directory",
			"columns": ["Directory", "Directory_Parent", "DefaultDir"],
			"rows": [["TARGETDIR", "NULL", "SourceDir"]]
		}
	]
}`

const bareArrayDump = `[
	{"name": "Property", "columns": ["Property", "Value"], "rows": [["ProductName", "Bare"]]}
]`

func TestParseTablesEnvelope(t *testing.T) {
	tables, err := ParseTables([]byte(envelopeDump))
	if err != nil {
		t.Fatalf("ParseTables: %v", err)
	}
	if len(tables) != 2 {
		t.Fatalf("got %d tables, want 2", len(tables))
	}
	if tables[0].Name != TableProperty || tables[1].Name != TableDirectory {
		t.Errorf("table names = %q, %q", tables[0].Name, tables[1].Name)
	}
	if len(tables[0].Rows) != 4 {
		t.Errorf("Property rows = %d, want 4", len(tables[0].Rows))
	}
}

func TestParseTablesBareArray(t *testing.T) {
	tables, err := ParseTables([]byte(bareArrayDump))
	if err != nil {
		t.Fatalf("ParseTables: %v", err)
	}
	if len(tables) != 1 || tables[0].Name != TableProperty {
		t.Fatalf("tables = %+v, want one Property table", tables)
	}
}

func TestParseTablesInvalid(t *testing.T) {
	if _, err := ParseTables([]byte(`{"tables": "nope"`)); err == nil {
		t.Error("truncated input: want error")
	}
	if _, err := ParseTables([]byte(`"just a string"`)); err == nil {
		t.Error("non-table JSON: want error")
	}
}

func TestFind(t *testing.T) {
	tables, err := ParseTables([]byte(envelopeDump))
	if err != nil {
		t.Fatalf("ParseTables: %v", err)
	}

	if got := Find(tables, TableDirectory); got == nil || got.Name != TableDirectory {
		t.Errorf("Find(Directory) = %v", got)
	}
	if got := Find(tables, TableRegistry); got != nil {
		t.Errorf("Find(Registry) = %v, want nil for absent table", got)
	}
	if got := Find(nil, TableProperty); got != nil {
		t.Errorf("Find on nil slice = %v, want nil", got)
	}
}

func TestExtractPackageInfo(t *testing.T) {
	tables, err := ParseTables([]byte(envelopeDump))
	if err != nil {
		t.Fatalf("ParseTables: %v", err)
	}

	info := ExtractPackageInfo(tables)
	if info.ProductName != "Contoso Widget" {
		t.Errorf("ProductName = %q", info.ProductName)
	}
	if info.ProductVersion != "2.1.0" {
		t.Errorf("ProductVersion = %q", info.ProductVersion)
	}
	if info.Manufacturer != "Contoso Ltd" {
		t.Errorf("Manufacturer = %q", info.Manufacturer)
	}
	if info.UpgradeCode != "" {
		t.Errorf("UpgradeCode = %q, want empty for absent property", info.UpgradeCode)
	}
}

func TestExtractPackageInfoMissingTable(t *testing.T) {
	if info := ExtractPackageInfo(nil); info != (PackageInfo{}) {
		t.Errorf("info = %+v, want zero value", info)
	}
}
