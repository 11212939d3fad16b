package color

import "strings"

// Parse accepts any colour literal the CLI takes: "#RRGGBB", "RRGGBB", an
// alias, or "r,g,b" text. Input containing a comma is read as RGB.
func Parse(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, ",") {
		return NewRGBParser().Parse(s)
	}
	if _, ok := aliases[normalizeAlias(s)]; !ok && !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	return ParseHex(s)
}
