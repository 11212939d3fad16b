package tui

import (
	"fmt"
	"strings"

	"nathanbeddoewebdev/huepick/internal/color"
	"nathanbeddoewebdev/huepick/internal/harmony"
	"nathanbeddoewebdev/huepick/internal/palette"
	"nathanbeddoewebdev/huepick/internal/tui/components"
	"nathanbeddoewebdev/huepick/internal/tui/styles"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// previewWords is the sample sentence of the preview card. Each word is
// drawn in the next palette role.
var previewWords = []string{"Background", "Lorem", "ipsum", "dolor", "sit"}

func (m pickerModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	info := fmt.Sprintf("undo %d  redo %d", m.state.UndoDepth(), m.state.RedoDepth())
	header := components.Header(m.width, m.mode.breadcrumb(), info)
	footer := components.Footer(m.width, components.FromKeys(m.footerBindings()...))
	statusBar := components.StatusBar(m.width, m.status, m.isError)

	headerH := lipgloss.Height(header)
	footerH := lipgloss.Height(footer)
	statusH := 0
	if statusBar != "" {
		statusH = lipgloss.Height(statusBar)
	}
	contentH := max(m.height-headerH-footerH-statusH, 1)

	content := lipgloss.NewStyle().
		Width(m.width).
		Height(contentH).
		MaxHeight(contentH).
		Padding(0, 1).
		Render(m.renderContent())

	parts := []string{header, content}
	if statusBar != "" {
		parts = append(parts, statusBar)
	}
	parts = append(parts, footer)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m pickerModel) footerBindings() []key.Binding {
	k := m.keys
	switch m.mode {
	case displayInput:
		return []key.Binding{k.Submit, k.ToggleInput, k.CancelPrompt}
	case displayShades:
		return []key.Binding{k.Up, k.Down, k.Submit, k.NextRole, k.Shades, k.Undo, k.Back}
	case displayHSV:
		return []key.Binding{k.Up, k.Down, k.Increase, k.Decrease, k.NextRole, k.HSV, k.Undo, k.Back}
	case displayHarmony:
		return []key.Binding{k.Up, k.Down, k.Submit, k.Random, k.Harmony, k.Undo, k.Back}
	default:
		return []key.Binding{
			k.NextRole, k.Input, k.Shades, k.HSV, k.Harmony,
			k.Invert, k.InvertAll, k.Random, k.Undo, k.Redo, k.Quit,
		}
	}
}

func (m pickerModel) renderContent() string {
	inner := max(m.width-2, 10)
	sections := []string{
		m.renderPreview(inner),
		"",
		m.renderRoles(inner),
	}

	if panel := m.renderPanel(inner); panel != "" {
		sections = append(sections, "", panel)
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderPreview draws a sample sentence on the palette background, one word
// per role.
func (m pickerModel) renderPreview(width int) string {
	p := m.state.Current()
	colors := p.Colors()
	bg := p.Background

	words := make([]string, len(previewWords))
	for i, w := range previewWords {
		fg := colors[i]
		if i == 0 {
			fg = bg.Flip()
		}
		words[i] = styles.On(fg, bg).Bold(true).Render(w)
	}
	line := strings.Join(words, styles.Fill(bg).Render(" "))

	return lipgloss.NewStyle().
		Background(styles.Of(bg)).
		Width(width).
		Padding(1, 2).
		Render(line)
}

func (m pickerModel) renderRoles(width int) string {
	p := m.state.Current()
	selected := m.role()

	lines := make([]string, len(palette.Roles))
	for i, r := range palette.Roles {
		marker := "  "
		if r == selected {
			marker = styles.Cursor.Render("> ")
		}
		lines[i] = marker + components.RoleLine(r.Label(), p.Get(r), p.Background, width-2)
	}
	return strings.Join(lines, "\n")
}

func (m pickerModel) renderPanel(width int) string {
	switch m.mode {
	case displayInput:
		return m.renderPrompt()
	case displayShades:
		return m.renderShades(width)
	case displayHSV:
		return m.renderHSV()
	case displayHarmony:
		return m.renderHarmony()
	default:
		return ""
	}
}

func (m pickerModel) renderPrompt() string {
	title := "Insert Hex #"
	if m.inputMode == inputRGB {
		title = "Insert RGB (r,g,b)"
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render(title))
	b.WriteString("  ")
	b.WriteString(styles.MutedText.Render(m.role().Label()))
	b.WriteString("\n\n")
	b.WriteString(styles.InputFocused.Render(m.input.View()))

	return styles.CardActive.Render(b.String())
}

func (m pickerModel) renderShades(width int) string {
	c := m.selectedColor()
	bg := m.state.Current().Background
	cursor, hasCursor := m.shades.Selected()

	var b strings.Builder
	b.WriteString(styles.Title.Render("Shades for " + c.Hex()))
	b.WriteString("\n")
	for i, row := range m.shades.Items() {
		prefix := "   "
		if hasCursor && i == cursor {
			prefix = styles.Cursor.Render(">> ")
		}
		if row.spacer {
			b.WriteString(prefix + "\n")
			continue
		}
		b.WriteString(prefix + components.ShadeRow(row.color, bg) + "\n")
	}
	list := strings.TrimRight(b.String(), "\n")

	chartW := width - lipgloss.Width(list) - 4
	if chartW < 30 {
		return list
	}
	chart := components.LuminanceDualChart("Luminance",
		components.Luminances(c), components.Luminances(c.Flip()),
		"shade", "inverse", min(chartW, 60))
	return lipgloss.JoinHorizontal(lipgloss.Top, list, "    ", chart)
}

func (m pickerModel) renderHSV() string {
	c := m.selectedColor()
	ch, _ := m.channels.Selected()

	columns := components.HSVColumns(c, ch)
	bars := components.HSVBars(c.HSV(), ch, 24, 10)

	title := styles.Title.Render(fmt.Sprintf("HSV for %s  %s", m.role().Label(), c.Hex()))
	body := lipgloss.JoinHorizontal(lipgloss.Top, columns, "    ", bars)
	return lipgloss.JoinVertical(lipgloss.Left, title, "", body)
}

func (m pickerModel) renderHarmony() string {
	seed := m.selectedColor()
	cursor, hasCursor := m.harmonies.Selected()

	var b strings.Builder
	b.WriteString(styles.Title.Render("Harmony from " + seed.Hex()))
	b.WriteString("\n")
	for i, k := range m.harmonies.Items() {
		if hasCursor && i == cursor {
			b.WriteString(styles.Cursor.Render(">> ") + styles.SelectedRow.Render(k.Label()) + "\n")
			continue
		}
		b.WriteString("   " + styles.Value.Render(k.Label()) + "\n")
	}
	list := strings.TrimRight(b.String(), "\n")

	kind, ok := m.harmonies.SelectedItem()
	if !ok {
		return list
	}
	preview := harmonyPreview(kind, seed)
	return lipgloss.JoinHorizontal(lipgloss.Top, list, "    ", preview)
}

func harmonyPreview(kind harmony.Kind, seed color.Color) string {
	colors := harmony.Generate(kind, seed).Colors()
	labels := make([]string, len(palette.Roles))
	for i, r := range palette.Roles {
		labels[i] = r.Label()
	}
	return components.PaletteStrip(colors[:], labels, 12)
}
