package impact

import "strings"

// RegistryValueKind is the decoded type of a Registry table value cell.
type RegistryValueKind string

const (
	RegSZ       RegistryValueKind = "REG_SZ"
	RegExpandSZ RegistryValueKind = "REG_EXPAND_SZ"
	RegDword    RegistryValueKind = "REG_DWORD"
	RegBinary   RegistryValueKind = "REG_BINARY"
	RegMultiSZ  RegistryValueKind = "REG_MULTI_SZ"
)

// DecodeRegistryValue decodes the MSI registry-value prefix convention
// into a value kind plus the display form of the value. Check order
// matters: #x (binary), #% (expandable) and ## (escaped literal #) must
// be recognized before the bare # integer prefix.
func DecodeRegistryValue(raw string) (RegistryValueKind, string) {
	switch {
	case raw == "" || raw == "NULL":
		return RegSZ, raw
	case strings.HasPrefix(raw, "#x"):
		return RegBinary, raw[2:]
	case strings.HasPrefix(raw, "#%"):
		return RegExpandSZ, raw[2:]
	case strings.HasPrefix(raw, "##"):
		return RegSZ, raw[1:]
	case strings.HasPrefix(raw, "#"):
		return RegDword, raw[1:]
	case strings.Contains(raw, "[~]"):
		// [~] is the REG_MULTI_SZ list separator; kept verbatim.
		return RegMultiSZ, raw
	default:
		return RegSZ, raw
	}
}
