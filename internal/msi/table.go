// Package msi carries the table data model shared between the external
// MSI database readers and the impact engine. A table is a named relation
// with positionally-ordered string columns, exactly as extracted from a
// Windows Installer database.
package msi

import (
	"encoding/json"
	"fmt"
	"os"
)

// Table is one MSI relation. Rows hold one string cell per column, in
// the column order of the table's MSI schema.
type Table struct {
	Name    string     `json:"name" yaml:"name"`
	Columns []string   `json:"columns" yaml:"columns"`
	Rows    [][]string `json:"rows" yaml:"rows"`
}

// Well-known table names consumed by the impact engine.
const (
	TableProperty               = "Property"
	TableDirectory              = "Directory"
	TableComponent              = "Component"
	TableCustomAction           = "CustomAction"
	TableInstallExecuteSequence = "InstallExecuteSequence"
	TableRegistry               = "Registry"
	TableFile                   = "File"
	TableServiceInstall         = "ServiceInstall"
	TableShortcut               = "Shortcut"
	TableExtension              = "Extension"
	TableEnvironment            = "Environment"
)

// Find returns the table with the given name, or nil if the dump does
// not contain it. Absent tables are normal: most packages populate only
// a subset of the standard schema.
func Find(tables []Table, name string) *Table {
	for i := range tables {
		if tables[i].Name == name {
			return &tables[i]
		}
	}
	return nil
}

// dump is the on-disk envelope written by table extractors. A bare JSON
// array of tables is accepted too.
type dump struct {
	Product string  `json:"product,omitempty"`
	Tables  []Table `json:"tables"`
}

// LoadTables reads a JSON table dump produced by an external MSI reader.
func LoadTables(path string) ([]Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading table dump: %w", err)
	}
	return ParseTables(data)
}

// ParseTables decodes a JSON table dump from memory. Both the
// {"tables": [...]} envelope and a bare array are accepted.
func ParseTables(data []byte) ([]Table, error) {
	var d dump
	if err := json.Unmarshal(data, &d); err == nil && d.Tables != nil {
		return d.Tables, nil
	}

	var tables []Table
	if err := json.Unmarshal(data, &tables); err != nil {
		return nil, fmt.Errorf("parsing table dump: %w", err)
	}
	return tables, nil
}

// PackageInfo is the product metadata pulled from the Property table for
// report headers.
type PackageInfo struct {
	ProductName    string `json:"productName" yaml:"productName"`
	ProductVersion string `json:"productVersion" yaml:"productVersion"`
	Manufacturer   string `json:"manufacturer" yaml:"manufacturer"`
	ProductCode    string `json:"productCode,omitempty" yaml:"productCode,omitempty"`
	UpgradeCode    string `json:"upgradeCode,omitempty" yaml:"upgradeCode,omitempty"`
}

// ExtractPackageInfo reads product metadata from the Property table.
// Missing properties stay empty; a missing table yields the zero value.
func ExtractPackageInfo(tables []Table) PackageInfo {
	var info PackageInfo
	prop := Find(tables, TableProperty)
	if prop == nil {
		return info
	}
	for _, row := range prop.Rows {
		if len(row) < 2 {
			continue
		}
		switch row[0] {
		case "ProductName":
			info.ProductName = row[1]
		case "ProductVersion":
			info.ProductVersion = row[1]
		case "Manufacturer":
			info.Manufacturer = row[1]
		case "ProductCode":
			info.ProductCode = row[1]
		case "UpgradeCode":
			info.UpgradeCode = row[1]
		}
	}
	return info
}
