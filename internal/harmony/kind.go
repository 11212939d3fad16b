// Package harmony derives five-role palettes from a single seed colour.
//
// Every generator works in HSV space around the seed's hue and is a pure,
// total function: the same seed always yields the same palette and no
// input can make a generator fail.
package harmony

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"nathanbeddoewebdev/huepick/internal/util"
)

// ErrUnknownHarmony is returned by ParseKind for a name that is not one of
// the six harmony kinds.
var ErrUnknownHarmony = errors.New("unknown harmony")

// Kind selects which generator runs.
type Kind string

const (
	Monochromatic      Kind = "monochromatic"
	Complementary      Kind = "complementary"
	SplitComplementary Kind = "split-complementary"
	Triadic            Kind = "triadic"
	Tetradic           Kind = "tetradic"
	Analogous          Kind = "analogous"
)

// kinds is the display order used by selectors and help text.
var kinds = []Kind{
	Monochromatic,
	Complementary,
	SplitComplementary,
	Triadic,
	Tetradic,
	Analogous,
}

var labels = map[Kind]string{
	Monochromatic:      "Monochromatic",
	Complementary:      "Complementary",
	SplitComplementary: "Split Complementary",
	Triadic:            "Triadic",
	Tetradic:           "Tetradic",
	Analogous:          "Analogous",
}

// Kinds returns all harmony kinds in display order. The returned slice is
// a copy.
func Kinds() []Kind {
	out := make([]Kind, len(kinds))
	copy(out, kinds)
	return out
}

// KindNames returns the kind names in display order.
func KindNames() []string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return names
}

// ParseKind resolves a kind by name. Matching ignores case, surrounding
// whitespace and the separator between "split" and "complementary", so
// "Split Complementary", "split_complementary" and "splitcomplementary"
// all resolve.
func ParseKind(s string) (Kind, error) {
	want := compact(s)
	for _, k := range kinds {
		if compact(string(k)) == want {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q (valid: %s)", ErrUnknownHarmony, s, strings.Join(KindNames(), ", "))
}

// Label returns the human-readable name, e.g. "Split Complementary".
func (k Kind) Label() string {
	if l, ok := labels[k]; ok {
		return l
	}
	return string(k)
}

// String implements fmt.Stringer and pflag.Value.
func (k Kind) String() string {
	return string(k)
}

// Set implements pflag.Value so a Kind can back a command-line flag.
func (k *Kind) Set(s string) error {
	parsed, err := ParseKind(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Type implements pflag.Value.
func (k *Kind) Type() string {
	return "harmony"
}

var _ pflag.Value = (*Kind)(nil)

func compact(s string) string {
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(util.NormalizeKey(s))
}
