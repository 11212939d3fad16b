package util

import "strings"

// FilterRunes returns s with every rune that keep rejects removed.
func FilterRunes(s string, keep func(rune) bool) string {
	return strings.Map(func(r rune) rune {
		if keep(r) {
			return r
		}
		return -1
	}, s)
}

// IsHexInputRune reports whether r may be typed into a hex colour field:
// a hex digit or the leading '#'.
func IsHexInputRune(r rune) bool {
	return r == '#' || isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// IsRGBInputRune reports whether r may be typed into an "r,g,b" field:
// a decimal digit, a comma or a parenthesis.
func IsRGBInputRune(r rune) bool {
	return isDigit(r) || r == ',' || r == '(' || r == ')'
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
