package utils

import (
	"regexp"
	"strings"
)

var (
	// Characters invalid in filenames on most filesystems
	invalidFilenameChars = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	// Whitespace runs become a single separator
	whitespaceRuns = regexp.MustCompile(`\s+`)
)

// maxFilenameLength leaves room for an extension within the usual 255 bytes.
const maxFilenameLength = 200

// SanitizeFilename turns free text (an employee name, a pay period, an
// invoice number typed by a user) into a download-safe file name stem.
// Whitespace runs are replaced by sep.
func SanitizeFilename(name, sep string) string {
	name = invalidFilenameChars.ReplaceAllString(name, " ")
	name = strings.TrimSpace(name)
	name = whitespaceRuns.ReplaceAllString(name, sep)

	if len(name) > maxFilenameLength {
		name = name[:maxFilenameLength]
		// Do not leave a truncated multi-byte rune behind.
		name = strings.ToValidUTF8(name, "")
		name = strings.TrimRight(name, sep)
	}

	if name == "" {
		name = "document"
	}
	return name
}
