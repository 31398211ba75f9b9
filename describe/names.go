package describe

import (
	"strings"
	"unicode"
)

// ToolNameFromID derives a display name from a tool id. Ids are
// double-underscore paths (plugin__action__variant); the leading namespace
// segment is dropped and the rest joined with spaces.
func ToolNameFromID(id string) string {
	segments := strings.Split(id, "__")
	if len(segments) > 1 {
		segments = segments[1:]
	}
	return strings.Join(segments, " ")
}

// PrettyFormatName renders a CamelCase format type name as spaced words,
// expanding the Fmt and Dir abbreviations.
func PrettyFormatName(name string) string {
	var words []string
	start := 0
	runes := []rune(name)
	for i := 1; i < len(runes); i++ {
		prevLower := unicode.IsLower(runes[i-1])
		nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
		if unicode.IsUpper(runes[i]) && (prevLower || nextLower) {
			words = append(words, string(runes[start:i]))
			start = i
		}
	}
	words = append(words, string(runes[start:]))

	for i, w := range words {
		switch w {
		case "Fmt":
			words[i] = "Format"
		case "Dir":
			words[i] = "Directory"
		}
	}
	return strings.Join(words, " ")
}

// RSTHeader renders a reStructuredText section header at the given level
// (1-based; levels use '=', '-', '*', '^').
func RSTHeader(header string, level int) string {
	fill := []string{"=", "-", "*", "^"}[level-1]
	return strings.Join([]string{"", header, strings.Repeat(fill, len(header)), ""}, "\n")
}
