// Package palette holds the five-role palette and the undo/redo history
// that every palette mutation goes through.
package palette

import (
	"fmt"

	"nathanbeddoewebdev/huepick/internal/color"
)

// Palette assigns a colour to each of the five roles. Palettes are plain
// values: every mutation helper returns a new one.
type Palette struct {
	Background color.Color
	AccentA    color.Color
	AccentB    color.Color
	AccentC    color.Color
	Highlight  color.Color
}

// Default is the palette a new session starts with.
func Default() Palette {
	return Palette{
		Background: color.New(32, 32, 32),
		AccentA:    color.New(255, 255, 255),
		AccentB:    color.New(144, 72, 93),
		AccentC:    color.New(26, 97, 127),
		Highlight:  color.New(72, 220, 3),
	}
}

// FromColors builds a palette from colours in Roles order.
func FromColors(c [5]color.Color) Palette {
	return Palette{
		Background: c[0],
		AccentA:    c[1],
		AccentB:    c[2],
		AccentC:    c[3],
		Highlight:  c[4],
	}
}

// Colors returns the colours in Roles order.
func (p Palette) Colors() [5]color.Color {
	return [5]color.Color{p.Background, p.AccentA, p.AccentB, p.AccentC, p.Highlight}
}

// Get returns the colour assigned to role. It panics on a role outside
// Roles.
func (p Palette) Get(role Role) color.Color {
	switch role {
	case Background:
		return p.Background
	case AccentA:
		return p.AccentA
	case AccentB:
		return p.AccentB
	case AccentC:
		return p.AccentC
	case Highlight:
		return p.Highlight
	}
	panic(fmt.Sprintf("palette: unknown role %q", string(role)))
}

// With returns a copy of p with role replaced by c.
func (p Palette) With(role Role, c color.Color) Palette {
	switch role {
	case Background:
		p.Background = c
	case AccentA:
		p.AccentA = c
	case AccentB:
		p.AccentB = c
	case AccentC:
		p.AccentC = c
	case Highlight:
		p.Highlight = c
	default:
		panic(fmt.Sprintf("palette: unknown role %q", string(role)))
	}
	return p
}

// Inverted returns p with every role flipped.
func (p Palette) Inverted() Palette {
	c := p.Colors()
	for i := range c {
		c[i] = c[i].Flip()
	}
	return FromColors(c)
}
