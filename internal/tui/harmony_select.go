package tui

import (
	"errors"

	"nathanbeddoewebdev/huepick/internal/color"
	"nathanbeddoewebdev/huepick/internal/harmony"

	"github.com/charmbracelet/huh"
)

// ErrAborted is returned when a user cancels an interactive prompt.
var ErrAborted = errors.New("aborted by user")

// SelectHarmony asks which harmony to generate from seed. The list starts
// on initial.
func SelectHarmony(accessible bool, seed color.Color, initial harmony.Kind) (harmony.Kind, error) {
	kind := initial
	selectField := huh.NewSelect[harmony.Kind]().
		Title("Harmony from " + seed.Hex()).
		Options(buildHarmonyOptions(seed)...).
		Value(&kind).
		Height(len(harmony.Kinds()) + 2)

	if err := runForm(accessible, huh.NewGroup(selectField)); err != nil {
		return "", err
	}
	return kind, nil
}

// buildHarmonyOptions labels each kind with the hex codes it would produce.
func buildHarmonyOptions(seed color.Color) []huh.Option[harmony.Kind] {
	kinds := harmony.Kinds()
	options := make([]huh.Option[harmony.Kind], len(kinds))
	for i, k := range kinds {
		label := k.Label() + "  " + formatPalette(harmony.Generate(k, seed))
		options[i] = huh.NewOption(label, k)
	}
	return options
}

// runForm creates and runs a huh.Form, translating ErrUserAborted to ErrAborted.
func runForm(accessible bool, groups ...*huh.Group) error {
	err := huh.NewForm(groups...).WithAccessible(accessible).Run()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrAborted
		}
		return err
	}
	return nil
}
