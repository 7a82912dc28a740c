package impact

import "testing"

func TestResolveDirectoryAnchor(t *testing.T) {
	parents := map[string]string{
		"TARGETDIR":          "NULL",
		"ProgramFilesFolder": "TARGETDIR",
		"INSTALLDIR":         "ProgramFilesFolder",
		"BinDir":             "INSTALLDIR",
	}

	tests := []struct {
		name  string
		dirID string
		want  string
	}{
		{"deep chain resolves to root", "BinDir", "TARGETDIR"},
		{"mid chain resolves to root", "INSTALLDIR", "TARGETDIR"},
		{"root resolves to itself", "TARGETDIR", "TARGETDIR"},
		{"unknown id returned as-is", "NotInTable", "NotInTable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveDirectoryAnchor(tt.dirID, parents); got != tt.want {
				t.Errorf("ResolveDirectoryAnchor(%q) = %q, want %q", tt.dirID, got, tt.want)
			}
		})
	}
}

func TestResolveDirectoryAnchorDanglingParent(t *testing.T) {
	// A parent id that never appears as a key ends the walk there.
	parents := map[string]string{"A": "B"}
	if got := ResolveDirectoryAnchor("A", parents); got != "B" {
		t.Errorf("ResolveDirectoryAnchor(A) = %q, want B", got)
	}
}

func TestResolveDirectoryAnchorCycle(t *testing.T) {
	// A cyclic parent graph must terminate with a best-effort anchor.
	parents := map[string]string{"A": "B", "B": "A"}
	got := ResolveDirectoryAnchor("A", parents)
	if got != "A" && got != "B" {
		t.Errorf("ResolveDirectoryAnchor on cycle = %q, want a member of the cycle", got)
	}
}

func TestResolvePlaceholders(t *testing.T) {
	parents := map[string]string{
		"TARGETDIR":  "NULL",
		"INSTALLDIR": "TARGETDIR",
	}
	props := map[string]string{
		"ProductName": "Contoso Widget",
		"Nested":      "[ProductName] rocks",
	}

	tests := []struct {
		name string
		text string
		want string
	}{
		{"directory token", "[INSTALLDIR]app.exe", "[TARGETDIR]\\app.exe"},
		{"property token", "Installing [ProductName]", "Installing Contoso Widget"},
		{"unknown token untouched", "run [MagicValue] now", "run [MagicValue] now"},
		{"single pass no recursion", "[Nested]", "[ProductName] rocks"},
		{"mixed tokens", "[INSTALLDIR][ProductName]", "[TARGETDIR]\\Contoso Widget"},
		{"no tokens", "plain text", "plain text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolvePlaceholders(tt.text, props, parents, Options{})
			if got != tt.want {
				t.Errorf("ResolvePlaceholders(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestRenderDirectoryPathExamplePaths(t *testing.T) {
	parents := map[string]string{
		"ProgramFilesFolder": "NULL",
		"INSTALLDIR":         "ProgramFilesFolder",
	}

	plain := RenderDirectoryPath("INSTALLDIR", parents, Options{})
	if plain != "[ProgramFilesFolder]" {
		t.Errorf("plain rendering = %q, want [ProgramFilesFolder]", plain)
	}

	example := RenderDirectoryPath("INSTALLDIR", parents, Options{UseExamplePaths: true})
	if example != "C:\\Program Files (x86)" {
		t.Errorf("example rendering = %q, want illustrative path", example)
	}
}
