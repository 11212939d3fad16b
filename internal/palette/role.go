package palette

import (
	"errors"
	"fmt"
	"strings"

	"nathanbeddoewebdev/huepick/internal/util"
)

// ErrUnknownRole is returned by ParseRole for a name that is not one of
// the five roles.
var ErrUnknownRole = errors.New("unknown role")

// Role names one of the five palette slots.
type Role string

const (
	Background Role = "background"
	AccentA    Role = "accentA"
	AccentB    Role = "accentB"
	AccentC    Role = "accentC"
	Highlight  Role = "highlight"
)

// Roles lists the roles in palette order. Index i of Roles corresponds to
// index i of Palette.Colors.
var Roles = [5]Role{Background, AccentA, AccentB, AccentC, Highlight}

var roleLabels = map[Role]string{
	Background: "Background",
	AccentA:    "Accent A",
	AccentB:    "Accent B",
	AccentC:    "Accent C",
	Highlight:  "Highlight",
}

// ParseRole resolves a role by name, ignoring case, whitespace, hyphens and
// underscores ("accent-a", "Accent A" and "accenta" are all AccentA).
func ParseRole(s string) (Role, error) {
	want := compact(s)
	for _, r := range Roles {
		if compact(string(r)) == want {
			return r, nil
		}
	}
	names := make([]string, len(Roles))
	for i, r := range Roles {
		names[i] = string(r)
	}
	return "", fmt.Errorf("%w: %q (valid: %s)", ErrUnknownRole, s, strings.Join(names, ", "))
}

// Index returns the position of r in Roles, or -1.
func (r Role) Index() int {
	for i, role := range Roles {
		if role == r {
			return i
		}
	}
	return -1
}

// Label returns the display name, e.g. "Accent A".
func (r Role) Label() string {
	if l, ok := roleLabels[r]; ok {
		return l
	}
	return string(r)
}

func (r Role) String() string {
	return string(r)
}

func compact(s string) string {
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(util.NormalizeKey(s))
}
