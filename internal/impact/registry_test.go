package impact

import "testing"

func TestDecodeRegistryValue(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		wantKind    RegistryValueKind
		wantDisplay string
	}{
		{"empty", "", RegSZ, ""},
		{"null sentinel", "NULL", RegSZ, "NULL"},
		{"binary", "#x0102", RegBinary, "0102"},
		{"expandable", "#%PATH", RegExpandSZ, "PATH"},
		{"escaped hash literal", "##literal", RegSZ, "#literal"},
		{"dword", "#5", RegDword, "5"},
		{"dword multi digit", "#1024", RegDword, "1024"},
		{"multi string", "one[~]two", RegMultiSZ, "one[~]two"},
		{"plain string", "hello", RegSZ, "hello"},
		{"plain numeric string", "5", RegSZ, "5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, display := DecodeRegistryValue(tt.raw)
			if kind != tt.wantKind || display != tt.wantDisplay {
				t.Errorf("DecodeRegistryValue(%q) = (%v, %q), want (%v, %q)",
					tt.raw, kind, display, tt.wantKind, tt.wantDisplay)
			}
		})
	}
}
