package core

import "strings"

// Letters that reach past the x-height of the engraved text.
const (
	LettersLargerBelow = "gjpqy"
	LettersLargerAbove = "bdhklt"
	LettersLarger      = LettersLargerBelow + LettersLargerAbove
)

// NeedsOffset reports whether the logo and text must be shifted to stay
// vertically centred. Only descenders are checked; ascenders alone do not
// suppress the compensation.
func NeedsOffset(name string) bool {
	return !strings.ContainsAny(name, LettersLargerBelow)
}

// HasAscender reports whether name contains a letter rising above the cap line.
func HasAscender(name string) bool {
	return strings.ContainsAny(name, LettersLargerAbove)
}
