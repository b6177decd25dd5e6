package core

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

const commentPrefix = "#"

// ParseNames returns the trimmed, non-blank, non-comment lines of content in
// their original order. Lines have no length limit.
func ParseNames(content string) []string {
	names := make([]string, 0)

	for _, line := range strings.FieldsFunc(content, isLineBreak) {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}
		names = append(names, norm.NFC.String(line))
	}

	return names
}

// isLineBreak reports line boundaries, including bare carriage returns and the
// Unicode line and paragraph separators. A "\r\n" pair leaves an empty field
// that is dropped as blank.
func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}
