package tui

import "github.com/charmbracelet/bubbles/key"

// pickerKeyMap holds the bindings of the picker outside the input prompt.
// Bindings that only make sense in one display mode are still matched
// everywhere; handleKey decides what they do per mode.
type pickerKeyMap struct {
	NextRole     key.Binding
	PrevRole     key.Binding
	Up           key.Binding
	Down         key.Binding
	Submit       key.Binding
	Input        key.Binding
	HexMode      key.Binding
	RGBMode      key.Binding
	Shades       key.Binding
	HSV          key.Binding
	Harmony      key.Binding
	Increase     key.Binding
	Decrease     key.Binding
	Invert       key.Binding
	InvertAll    key.Binding
	Random       key.Binding
	Undo         key.Binding
	Redo         key.Binding
	Back         key.Binding
	Quit         key.Binding
	ToggleInput  key.Binding
	CancelPrompt key.Binding
}

func defaultPickerKeyMap() pickerKeyMap {
	return pickerKeyMap{
		NextRole: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next role"),
		),
		PrevRole: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("shift+tab", "prev role"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply"),
		),
		Input: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "input"),
		),
		HexMode: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "hex"),
		),
		RGBMode: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "rgb"),
		),
		Shades: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "shades"),
		),
		HSV: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "hsv"),
		),
		Harmony: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "harmony"),
		),
		Increase: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+/-", "adjust"),
		),
		Decrease: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "decrease"),
		),
		Invert: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "invert"),
		),
		InvertAll: key.NewBinding(
			key.WithKeys("N"),
			key.WithHelp("N", "invert all"),
		),
		Random: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "random"),
		),
		Undo: key.NewBinding(
			key.WithKeys("u", "ctrl+z"),
			key.WithHelp("u", "undo"),
		),
		Redo: key.NewBinding(
			key.WithKeys("ctrl+r", "ctrl+y"),
			key.WithHelp("ctrl+r", "redo"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		ToggleInput: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "hex/rgb"),
		),
		CancelPrompt: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "close"),
		),
	}
}
