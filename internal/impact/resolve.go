package impact

import (
	"regexp"
	"strings"
)

// placeholderRe matches one non-nested [Token] occurrence.
var placeholderRe = regexp.MustCompile(`\[([^\[\]]+)\]`)

// examplePaths renders well-known anchors as illustrative OS paths when
// Options.UseExamplePaths is set. Presentation only; correctness never
// depends on an entry being here.
var examplePaths = map[string]string{
	"TARGETDIR":            "C:\\",
	"WindowsFolder":        "C:\\Windows",
	"SystemFolder":         "C:\\Windows\\System32",
	"System64Folder":       "C:\\Windows\\System32",
	"SystemRoot":           "C:\\Windows",
	"ProgramFilesFolder":   "C:\\Program Files (x86)",
	"ProgramFiles64Folder": "C:\\Program Files",
	"CommonFilesFolder":    "C:\\Program Files (x86)\\Common Files",
	"CommonFiles64Folder":  "C:\\Program Files\\Common Files",
	"AppDataFolder":        "C:\\Users\\<user>\\AppData\\Roaming",
	"LocalAppDataFolder":   "C:\\Users\\<user>\\AppData\\Local",
	"CommonAppDataFolder":  "C:\\ProgramData",
	"DesktopFolder":        "C:\\Users\\<user>\\Desktop",
	"StartMenuFolder":      "C:\\Users\\<user>\\Start Menu",
	"StartupFolder":        "C:\\Users\\<user>\\Start Menu\\Programs\\Startup",
	"ProgramMenuFolder":    "C:\\Users\\<user>\\Start Menu\\Programs",
	"FontsFolder":          "C:\\Windows\\Fonts",
	"TempFolder":           "C:\\Users\\<user>\\AppData\\Local\\Temp",
}

// ResolveDirectoryAnchor follows the Directory parent chain from dirId
// and returns the root-most directory id that is still present in the
// map. This is deliberately an anchor, not a concatenated filesystem
// path: per-segment DefaultDir names are ignored. Iteration is bounded
// by len(parents)+1 so a cyclic parent graph terminates with a
// best-effort answer instead of hanging.
func ResolveDirectoryAnchor(dirID string, parents map[string]string) string {
	current := dirID
	last := dirID
	for range len(parents) + 1 {
		if current == nullParent {
			return last
		}
		parent, ok := parents[current]
		if !ok {
			return current
		}
		last = current
		current = parent
	}
	return last
}

// RenderDirectoryPath renders a directory id for display: the resolved
// anchor in brackets, or an illustrative OS path when the caller opted
// into example paths and the anchor is a well-known folder.
func RenderDirectoryPath(dirID string, parents map[string]string, opts Options) string {
	anchor := ResolveDirectoryAnchor(dirID, parents)
	if opts.UseExamplePaths {
		if p, ok := examplePaths[anchor]; ok {
			return p
		}
	}
	return "[" + anchor + "]"
}

// ResolvePlaceholders substitutes [Token] occurrences in text. Directory
// anchors win over properties; tokens resolving to neither are left
// untouched. Substitution is single-pass: freshly substituted text is
// never re-scanned, so placeholder expansion cannot recurse.
func ResolvePlaceholders(text string, props map[string]string, parents map[string]string, opts Options) string {
	return placeholderRe.ReplaceAllStringFunc(text, func(match string) string {
		token := match[1 : len(match)-1]
		if anchor := ResolveDirectoryAnchor(token, parents); anchor != token {
			return RenderDirectoryPath(token, parents, opts) + "\\"
		}
		if value, ok := props[token]; ok {
			return value
		}
		return match
	})
}

// joinDisplayPath joins an anchor rendering with a trailing file name
// for display, avoiding doubled separators.
func joinDisplayPath(dir, name string) string {
	if dir == "" {
		return name
	}
	if strings.HasSuffix(dir, "\\") {
		return dir + name
	}
	return dir + "\\" + name
}
