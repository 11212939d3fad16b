package color

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// RGBParser parses free-form "r,g,b" text such as "10,20,30" or
// "(10, 20, 30)". The first three runs of one to three digits are taken as
// the channels. A comma must appear somewhere in the input.
//
// The matcher is compiled once by NewRGBParser and owned by the parser, so
// callers that parse repeatedly should keep one around.
type RGBParser struct {
	digits *regexp.Regexp
}

// NewRGBParser returns a ready-to-use parser.
func NewRGBParser() *RGBParser {
	return &RGBParser{digits: regexp.MustCompile(`\d{1,3}`)}
}

// Parse converts s to a Color. All failures wrap ErrInvalidRGBFormat; a
// channel above 255 is reported as a *ComponentError.
func (p *RGBParser) Parse(s string) (Color, error) {
	if !strings.Contains(s, ",") {
		return Color{}, ErrMissingDelimiter
	}

	groups := p.digits.FindAllString(s, -1)
	if len(groups) != 3 {
		return Color{}, fmt.Errorf("%w, got %d", ErrComponentCount, len(groups))
	}

	var ch [3]uint8
	for i, g := range groups {
		v, err := strconv.ParseUint(g, 10, 8)
		if err != nil {
			return Color{}, &ComponentError{Value: g}
		}
		ch[i] = uint8(v)
	}

	return Color{R: ch[0], G: ch[1], B: ch[2]}, nil
}
