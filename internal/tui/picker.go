package tui

import (
	"errors"
	"fmt"
	"strings"

	"nathanbeddoewebdev/huepick/internal/color"
	"nathanbeddoewebdev/huepick/internal/harmony"
	"nathanbeddoewebdev/huepick/internal/palette"
	"nathanbeddoewebdev/huepick/internal/selector"
	"nathanbeddoewebdev/huepick/internal/util"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hashicorp/go-hclog"
)

// --- Display modes ---

type displayMode int

const (
	displayNormal displayMode = iota
	displayInput
	displayShades
	displayHSV
	displayHarmony
)

func (d displayMode) breadcrumb() string {
	switch d {
	case displayInput:
		return "input"
	case displayShades:
		return "shades"
	case displayHSV:
		return "hsv"
	case displayHarmony:
		return "harmony"
	default:
		return ""
	}
}

type inputMode int

const (
	inputHex inputMode = iota
	inputRGB
)

// --- Shade rows ---

// shadeRow is one entry of the shades list. The list is framed by a blank
// spacer row at each end; spacers carry no colour and cannot be applied.
type shadeRow struct {
	color  color.Color
	spacer bool
}

func shadeRows(c color.Color) []shadeRow {
	ramp := c.ShadeRamp()
	rows := make([]shadeRow, 0, len(ramp)+2)
	rows = append(rows, shadeRow{spacer: true})
	for _, s := range ramp {
		rows = append(rows, shadeRow{color: s})
	}
	return append(rows, shadeRow{spacer: true})
}

// --- HSV sliders ---

type hsvChannel int

const (
	channelHue hsvChannel = iota
	channelSaturation
	channelValue
)

const (
	hueStep   = 5.0
	levelStep = 0.05
)

// --- Picker model ---

// PickerOptions configures an interactive picker session.
type PickerOptions struct {
	// Initial is the palette the session starts from.
	Initial palette.Palette

	// InputMode is "hex" or "rgb"; anything else means hex.
	InputMode string

	// Harmony is preselected in the harmony view.
	Harmony harmony.Kind

	// Logger receives session events. Nil disables logging.
	Logger hclog.Logger
}

type pickerModel struct {
	state *palette.State

	roles     *selector.Cyclic[palette.Role]
	shades    *selector.Cyclic[shadeRow]
	harmonies *selector.Cyclic[harmony.Kind]
	channels  *selector.Cyclic[hsvChannel]

	mode      displayMode
	inputMode inputMode
	input     textinput.Model
	parser    *color.RGBParser

	keys pickerKeyMap
	log  hclog.Logger

	width  int
	height int

	status  string
	isError bool
}

func newPickerModel(opts PickerOptions) pickerModel {
	log := opts.Logger
	if log == nil {
		log = hclog.NewNullLogger()
	}

	roles := selector.New(palette.Roles[:])
	roles.Select(0)

	kinds := harmony.Kinds()
	harmonies := selector.New(kinds)
	harmonies.Select(0)
	for i, k := range kinds {
		if k == opts.Harmony {
			harmonies.Select(i)
		}
	}

	channels := selector.New([]hsvChannel{channelHue, channelSaturation, channelValue})
	channels.Select(0)

	mode := inputHex
	if util.NormalizeKey(opts.InputMode) == "rgb" {
		mode = inputRGB
	}

	m := pickerModel{
		state:     palette.NewState(opts.Initial),
		roles:     roles,
		harmonies: harmonies,
		channels:  channels,
		inputMode: mode,
		input:     textinput.New(),
		parser:    color.NewRGBParser(),
		keys:      defaultPickerKeyMap(),
		log:       log,
	}
	m.refreshShades()
	m.configureInput()
	return m
}

// RunPicker starts the full-window picker and returns the palette that was
// current when the user quit.
func RunPicker(opts PickerOptions) (palette.Palette, error) {
	m := newPickerModel(opts)
	m.log.Info("session started", "palette", formatPalette(m.state.Current()))

	p := tea.NewProgram(m, tea.WithAltScreen())
	result, err := p.Run()
	if err != nil {
		return palette.Palette{}, fmt.Errorf("failed to run picker: %w", err)
	}

	final := result.(pickerModel)
	current := final.state.Current()
	m.log.Info("session ended", "palette", formatPalette(current), "changes", final.state.UndoDepth())
	return current, nil
}

func (m pickerModel) Init() tea.Cmd {
	return nil
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.mode == displayInput {
			return m.handlePromptKey(msg)
		}
		return m.handleKey(msg)
	}

	if m.mode == displayInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m pickerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		if m.mode == displayNormal {
			return m, tea.Quit
		}
		m.mode = displayNormal
	case key.Matches(msg, m.keys.NextRole):
		m.roles.Next()
		m.refreshShades()
	case key.Matches(msg, m.keys.PrevRole):
		m.roles.Previous()
		m.refreshShades()
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Submit):
		m.submit()
	case key.Matches(msg, m.keys.Input):
		return m.openPrompt()
	case key.Matches(msg, m.keys.HexMode):
		m.inputMode = inputHex
		m.configureInput()
		m.setStatus("Input mode: HEX", false)
	case key.Matches(msg, m.keys.RGBMode):
		m.inputMode = inputRGB
		m.configureInput()
		m.setStatus("Input mode: RGB", false)
	case key.Matches(msg, m.keys.Shades):
		m.toggle(displayShades)
	case key.Matches(msg, m.keys.HSV):
		m.toggle(displayHSV)
	case key.Matches(msg, m.keys.Harmony):
		m.toggle(displayHarmony)
	case key.Matches(msg, m.keys.Increase):
		m.adjust(1)
	case key.Matches(msg, m.keys.Decrease):
		m.adjust(-1)
	case key.Matches(msg, m.keys.Invert):
		m.state.InvertRole(m.role())
		m.changed("invert")
		m.setStatus("Inverted "+m.role().Label(), false)
	case key.Matches(msg, m.keys.InvertAll):
		m.state.InvertAll()
		m.changed("invert all")
		m.setStatus("Inverted all colours", false)
	case key.Matches(msg, m.keys.Random):
		m.random()
	case key.Matches(msg, m.keys.Undo):
		if m.state.Undo() {
			m.refreshShades()
			m.log.Debug("undo", "undo", m.state.UndoDepth(), "redo", m.state.RedoDepth())
			m.setStatus("Undid change", false)
		} else {
			m.setStatus("Nothing to undo", false)
		}
	case key.Matches(msg, m.keys.Redo):
		if m.state.Redo() {
			m.refreshShades()
			m.log.Debug("redo", "undo", m.state.UndoDepth(), "redo", m.state.RedoDepth())
			m.setStatus("Redid change", false)
		} else {
			m.setStatus("Nothing to redo", false)
		}
	}

	return m, nil
}

// toggle switches to mode, or back to normal if mode is already shown.
func (m *pickerModel) toggle(mode displayMode) {
	if m.mode == mode {
		m.mode = displayNormal
		return
	}
	m.mode = mode
}

// moveCursor moves the list cursor of the current mode. In normal mode it
// walks the roles.
func (m *pickerModel) moveCursor(dir int) {
	var mover interface {
		Next()
		Previous()
	}
	switch m.mode {
	case displayShades:
		mover = m.shades
	case displayHarmony:
		mover = m.harmonies
	case displayHSV:
		mover = m.channels
	default:
		mover = m.roles
	}
	if dir > 0 {
		mover.Next()
	} else {
		mover.Previous()
	}
	if m.mode == displayNormal {
		m.refreshShades()
	}
}

// submit applies the row under the cursor in the shades and harmony views.
func (m *pickerModel) submit() {
	switch m.mode {
	case displayShades:
		row, ok := m.shades.SelectedItem()
		if !ok || row.spacer {
			m.setStatus("No shade selected", false)
			return
		}
		m.state.SetRole(m.role(), row.color)
		m.changed("shade")
		m.setStatus("Applied shade "+row.color.Hex(), false)

	case displayHarmony:
		kind, ok := m.harmonies.SelectedItem()
		if !ok {
			return
		}
		seed := m.selectedColor()
		m.state.Apply(harmony.Generate(kind, seed))
		m.changed("harmony")
		m.log.Debug("harmony generated", "kind", kind.String(), "seed", seed.Hex())
		m.setStatus(fmt.Sprintf("Applied %s palette from %s", kind.Label(), seed.Hex()), false)
	}
}

// adjust nudges the selected HSV channel of the selected role by one step.
func (m *pickerModel) adjust(dir float64) {
	if m.mode != displayHSV {
		return
	}
	ch, _ := m.channels.SelectedItem()
	c := m.selectedColor()

	var next color.Color
	switch ch {
	case channelHue:
		next = c.ShiftHue(dir * hueStep)
	case channelSaturation:
		next = c.ShiftSaturation(dir * levelStep)
	default:
		next = c.ShiftValue(dir * levelStep)
	}

	if next == c {
		m.setStatus("No change", false)
		return
	}
	m.state.SetRole(m.role(), next)
	m.changed("hsv")
	hsv := next.HSV()
	m.setStatus(fmt.Sprintf("HSV %.0f %.2f %.2f", hsv.H, hsv.S, hsv.V), false)
}

func (m *pickerModel) random() {
	kind, _ := m.harmonies.SelectedItem()
	seed := color.Random()
	m.state.Apply(harmony.Generate(kind, seed))
	m.changed("random")
	m.log.Debug("harmony generated", "kind", kind.String(), "seed", seed.Hex(), "random", true)
	m.setStatus(fmt.Sprintf("Random %s palette from %s", kind.Label(), seed.Hex()), false)
}

// --- Input prompt ---

func (m pickerModel) openPrompt() (tea.Model, tea.Cmd) {
	m.mode = displayInput
	m.input.Reset()
	m.configureInput()
	return m, m.input.Focus()
}

func (m *pickerModel) configureInput() {
	if m.inputMode == inputRGB {
		m.input.Prompt = "RGB > "
		m.input.Placeholder = "r,g,b"
		m.input.CharLimit = 15
	} else {
		m.input.Prompt = "HEX > "
		m.input.Placeholder = "#RRGGBB"
		m.input.CharLimit = 7
	}
	m.input.Width = 20
}

func (m pickerModel) allowedRune() func(rune) bool {
	if m.inputMode == inputRGB {
		return util.IsRGBInputRune
	}
	return util.IsHexInputRune
}

func (m pickerModel) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.CancelPrompt):
		m.mode = displayNormal
		m.input.Blur()
		return m, nil
	case key.Matches(msg, m.keys.ToggleInput):
		if m.inputMode == inputHex {
			m.inputMode = inputRGB
		} else {
			m.inputMode = inputHex
		}
		m.input.Reset()
		m.configureInput()
		return m, nil
	case key.Matches(msg, m.keys.Submit):
		m.submitInput()
		return m, nil
	}

	switch msg.Type {
	case tea.KeyRunes, tea.KeySpace:
		kept := util.FilterRunes(string(msg.Runes), m.allowedRune())
		if kept == "" {
			return m, nil
		}
		msg.Type = tea.KeyRunes
		msg.Runes = []rune(kept)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submitInput parses the prompt text for the selected role. On success the
// prompt is cleared and stays open; on failure the text is kept.
func (m *pickerModel) submitInput() {
	raw := util.FilterRunes(m.input.Value(), m.allowedRune())

	var (
		c   color.Color
		err error
		msg string
	)
	if m.inputMode == inputRGB {
		c, err = m.parser.Parse(raw)
		msg = rgbErrorMessage(err)
	} else {
		if !strings.Contains(raw, "#") {
			raw = "#" + raw
		}
		c, err = color.ParseHex(raw)
		msg = "Invalid HEX"
	}
	if err != nil {
		m.log.Warn("input rejected", "input", raw, "error", err)
		m.setStatus(msg, true)
		return
	}

	m.state.SetRole(m.role(), c)
	m.changed("input")
	m.input.Reset()
	m.setStatus("Changed Colors", false)
}

func rgbErrorMessage(err error) string {
	var compErr *color.ComponentError
	switch {
	case errors.Is(err, color.ErrMissingDelimiter):
		return "Invalid RGB, no delimiter -> r, g, b"
	case errors.As(err, &compErr):
		return "Invalid Value: " + compErr.Value
	default:
		return "Invalid RGB"
	}
}

// --- Helpers ---

func (m pickerModel) role() palette.Role {
	r, _ := m.roles.SelectedItem()
	return r
}

func (m pickerModel) selectedColor() color.Color {
	return m.state.Current().Get(m.role())
}

// changed refreshes derived state after a palette was applied.
func (m *pickerModel) changed(reason string) {
	m.refreshShades()
	m.log.Debug("palette applied",
		"reason", reason,
		"role", m.role().String(),
		"hex", m.selectedColor().Hex(),
		"undo", m.state.UndoDepth(),
	)
}

// refreshShades rebuilds the shade list for the selected role. The cursor
// resets.
func (m *pickerModel) refreshShades() {
	m.shades = selector.New(shadeRows(m.selectedColor()))
}

func (m *pickerModel) setStatus(msg string, isError bool) {
	m.status = msg
	m.isError = isError
}

func formatPalette(p palette.Palette) string {
	colors := p.Colors()
	hexes := make([]string, len(colors))
	for i, c := range colors {
		hexes[i] = c.Hex()
	}
	return strings.Join(hexes, " ")
}
