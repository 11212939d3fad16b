package color

import (
	"fmt"
	"strconv"
	"strings"
)

// aliases are accepted as input synonyms only; Hex never produces them.
var aliases = map[string]Color{
	"white":     {R: 255, G: 255, B: 255},
	"lightblue": {R: 48, G: 48, B: 240},
}

// ParseHex parses a "#RRGGBB" literal (case-insensitive) or one of the
// named aliases "white" and "lightblue". Alias matching ignores case,
// spaces, hyphens and underscores, so "Light Blue" and "light_blue" both
// resolve. Anything else fails with ErrInvalidColor.
func ParseHex(s string) (Color, error) {
	if c, ok := aliases[normalizeAlias(s)]; ok {
		return c, nil
	}

	if len(s) != 7 || s[0] != '#' {
		return Color{}, fmt.Errorf("%w: expected #RRGGBB, got %q", ErrInvalidColor, s)
	}

	var ch [3]uint8
	for i := range ch {
		group := s[1+2*i : 3+2*i]
		v, err := strconv.ParseUint(group, 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q is not a hex byte", ErrInvalidColor, group)
		}
		ch[i] = uint8(v)
	}

	return Color{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// MustParseHex is like ParseHex but panics on error. Intended for
// package-level defaults and tests.
func MustParseHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func normalizeAlias(s string) string {
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(strings.ToLower(s))
}
