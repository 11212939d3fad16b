package tui

import (
	"fmt"
	"strings"

	"nathanbeddoewebdev/huepick/internal/config"
	"nathanbeddoewebdev/huepick/internal/tui/components"
	"nathanbeddoewebdev/huepick/internal/tui/styles"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// --- Config messages ---

type configSavedMsg struct {
	key   string
	value string
}

type configSaveErrorMsg struct {
	err error
}

// --- Config keys ---

type configKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Edit   key.Binding
	Clear  key.Binding
	Quit   key.Binding
	Save   key.Binding
	Cancel key.Binding
}

func defaultConfigKeyMap() configKeyMap {
	return configKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("j/k", "navigate")),
		Down:   key.NewBinding(key.WithKeys("down", "j")),
		Edit:   key.NewBinding(key.WithKeys("enter", "e"), key.WithHelp("e", "edit")),
		Clear:  key.NewBinding(key.WithKeys("d", "backspace"), key.WithHelp("d", "reset")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c", "q", "esc"), key.WithHelp("q", "quit")),
		Save:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// --- Config model ---

type configViewModel struct {
	cfg   *config.Config
	specs []config.KeySpec
	keys  configKeyMap
	save  func(*config.Config) error

	cursor  int
	editing bool
	editor  textinput.Model

	width  int
	height int

	status  string
	isError bool
}

func newConfigViewModel(cfg *config.Config, save func(*config.Config) error) configViewModel {
	return configViewModel{
		cfg:   cfg,
		specs: config.Keys,
		keys:  defaultConfigKeyMap(),
		save:  save,
	}
}

// RunConfigView starts the interactive config viewer/editor TUI.
func RunConfigView() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	m := newConfigViewModel(cfg, (*config.Config).Save)

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func (m configViewModel) Init() tea.Cmd {
	return nil
}

func (m configViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case configSavedMsg:
		m.editing = false
		if msg.value == "" {
			m.status = fmt.Sprintf("Reset %s to default", msg.key)
		} else {
			m.status = fmt.Sprintf("Saved %s = %s", msg.key, msg.value)
		}
		m.isError = false
		return m, nil

	case configSaveErrorMsg:
		m.status = "Error: " + msg.err.Error()
		m.isError = true
		return m, nil
	}

	if m.editing {
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m configViewModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editing {
		return m.handleEditKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.specs)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Clear):
		if len(m.specs) == 0 {
			return m, nil
		}
		return m.apply("")
	case key.Matches(msg, m.keys.Edit):
		if len(m.specs) == 0 {
			return m, nil
		}
		spec := m.specs[m.cursor]
		ti := textinput.New()
		ti.SetValue(spec.Get(m.cfg))
		ti.Width = 40
		ti.Placeholder = "enter value"
		m.editor = ti
		m.editing = true
		m.status = ""
		return m, m.editor.Focus()
	}

	return m, nil
}

func (m configViewModel) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.editing = false
		return m, nil
	case key.Matches(msg, m.keys.Save):
		return m.apply(m.editor.Value())
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

// apply validates value for the selected key and saves on success. A
// rejected value keeps the editor open.
func (m configViewModel) apply(value string) (tea.Model, tea.Cmd) {
	spec := m.specs[m.cursor]
	stored, err := spec.Apply(m.cfg, value)
	if err != nil {
		m.status = "Error: " + err.Error()
		m.isError = true
		return m, nil
	}
	return m, m.saveConfig(spec.Name, stored)
}

func (m configViewModel) saveConfig(name, value string) tea.Cmd {
	cfg, save := m.cfg, m.save
	return func() tea.Msg {
		if err := save(cfg); err != nil {
			return configSaveErrorMsg{err: err}
		}
		return configSavedMsg{key: name, value: value}
	}
}

func (m configViewModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	header := components.Header(m.width, "config", "")

	var bindings []key.Binding
	if m.editing {
		bindings = []key.Binding{m.keys.Save, m.keys.Cancel}
	} else {
		bindings = []key.Binding{m.keys.Up, m.keys.Edit, m.keys.Clear, m.keys.Quit}
	}
	footer := components.Footer(m.width, components.FromKeys(bindings...))

	statusBar := ""
	if m.status != "" {
		statusBar = components.StatusBar(m.width, m.status, m.isError)
	}

	headerH := lipgloss.Height(header)
	footerH := lipgloss.Height(footer)
	statusH := lipgloss.Height(statusBar)
	contentH := max(m.height-headerH-footerH-statusH, 1)

	content := m.renderContent(contentH)

	sections := []string{header, content}
	if statusBar != "" {
		sections = append(sections, statusBar)
	}
	sections = append(sections, footer)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// effectiveValue shows what a session would actually use for unset keys.
func (m configViewModel) effectiveValue(spec config.KeySpec) string {
	if v := spec.Get(m.cfg); v != "" {
		return v
	}
	switch spec.Name {
	case "default-harmony":
		return "(default: " + m.cfg.Harmony().String() + ")"
	case "input-mode":
		return "(default: " + m.cfg.Mode() + ")"
	case "log-level":
		return "(default: off)"
	}
	return "(not set)"
}

func (m configViewModel) renderContent(height int) string {
	title := styles.Title.Render("Configuration")

	if len(m.specs) == 0 {
		combined := lipgloss.JoinVertical(lipgloss.Center,
			title,
			"",
			styles.MutedText.Render("No configuration keys defined."),
		)
		return lipgloss.Place(
			m.width, height,
			lipgloss.Center, lipgloss.Center,
			combined,
		)
	}

	cardWidth := 64
	labelWidth := 20

	rows := make([]string, 0, len(m.specs)+1)
	for i, spec := range m.specs {
		isSelected := i == m.cursor

		prefix := "  "
		if isSelected {
			prefix = styles.AccentText.Render("> ")
		}

		value := m.effectiveValue(spec)

		var row string
		switch {
		case isSelected && m.editing:
			row = prefix + styles.Label.Width(labelWidth).Render(spec.Name) + m.editor.View()
		case isSelected:
			row = prefix + styles.Label.Width(labelWidth).Render(spec.Name) + styles.Value.Bold(true).Render(value)
		default:
			row = prefix + styles.MutedText.Width(labelWidth).Render(spec.Name) + styles.MutedText.Render(value)
		}
		rows = append(rows, row)

		if isSelected && !m.editing {
			descLine := strings.Repeat(" ", 4) + styles.MutedText.Italic(true).Render(spec.Description)
			rows = append(rows, descLine)
		}
	}

	content := strings.Join(rows, "\n")
	card := styles.Card.Width(cardWidth).Render(content)

	combined := lipgloss.JoinVertical(lipgloss.Center, title, "", card)

	return lipgloss.Place(
		m.width, height,
		lipgloss.Center, lipgloss.Center,
		combined,
	)
}
