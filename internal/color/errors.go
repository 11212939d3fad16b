package color

import (
	"errors"
	"fmt"
)

// Sentinel errors for colour parsing. Parsers wrap these so callers can
// classify failures with errors.Is and still print the specific rule that
// was violated.
//
//	return Color{}, fmt.Errorf("%w: expected #RRGGBB, got %q", ErrInvalidColor, s)
var (
	// ErrInvalidColor indicates a malformed hex literal or an unknown alias.
	ErrInvalidColor = errors.New("invalid color")

	// ErrInvalidRGBFormat indicates an RGB text literal with a missing
	// delimiter, the wrong number of components, or a component outside
	// 0..255.
	ErrInvalidRGBFormat = errors.New("invalid rgb format")
)

// Specific RGB failures. Each wraps ErrInvalidRGBFormat.
var (
	ErrMissingDelimiter = fmt.Errorf("%w: no delimiter, expected r, g, b", ErrInvalidRGBFormat)
	ErrComponentCount   = fmt.Errorf("%w: expected 3 components", ErrInvalidRGBFormat)
)

// ComponentError reports a channel outside 0..255.
type ComponentError struct {
	Value string
}

func (e *ComponentError) Error() string {
	return fmt.Sprintf("%v: invalid value %s", ErrInvalidRGBFormat, e.Value)
}

func (e *ComponentError) Unwrap() error {
	return ErrInvalidRGBFormat
}
