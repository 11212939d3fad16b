package tui

import (
	"errors"
	"testing"

	"nathanbeddoewebdev/huepick/internal/config"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"
)

// configPress feeds msgs to m. Commands returned by keys that save are run
// and their result fed back in.
func configPress(m configViewModel, msgs ...tea.Msg) configViewModel {
	for _, msg := range msgs {
		next, cmd := m.Update(msg)
		m = next.(configViewModel)
		if cmd != nil && savesConfig(msg) {
			next, _ = m.Update(cmd())
			m = next.(configViewModel)
		}
	}
	return m
}

func savesConfig(msg tea.Msg) bool {
	k, ok := msg.(tea.KeyMsg)
	return ok && (k.Type == tea.KeyEnter || k.String() == "d")
}

func TestConfigView_EditAndSave(t *testing.T) {
	cfg := &config.Config{}
	var saved *config.Config
	m := newConfigViewModel(cfg, func(c *config.Config) error {
		saved = c
		return nil
	})

	m = configPress(m,
		runes("e"),
		runes("Triadic"),
		tea.KeyMsg{Type: tea.KeyEnter},
	)

	if saved == nil {
		t.Fatal("expected save to be called")
	}
	if diff := cmp.Diff("triadic", cfg.DefaultHarmony); diff != "" {
		t.Errorf("unexpected default harmony (-want +got):\n%s", diff)
	}
	if m.editing {
		t.Errorf("expected editor to close after save")
	}
	if diff := cmp.Diff("Saved default-harmony = triadic", m.status); diff != "" {
		t.Errorf("unexpected status (-want +got):\n%s", diff)
	}
}

func TestConfigView_RejectsInvalidValue(t *testing.T) {
	cfg := &config.Config{}
	called := false
	m := newConfigViewModel(cfg, func(*config.Config) error {
		called = true
		return nil
	})

	m = configPress(m,
		runes("j"),
		runes("e"),
		runes("cmyk"),
		tea.KeyMsg{Type: tea.KeyEnter},
	)

	if called {
		t.Errorf("expected invalid value not to be saved")
	}
	if !m.editing {
		t.Errorf("expected editor to stay open")
	}
	if !m.isError {
		t.Errorf("expected error status, got %q", m.status)
	}
	if cfg.InputMode != "" {
		t.Errorf("expected input mode unchanged, got %q", cfg.InputMode)
	}
}

func TestConfigView_ResetKey(t *testing.T) {
	cfg := &config.Config{LogLevel: "debug"}
	m := newConfigViewModel(cfg, func(*config.Config) error { return nil })

	m = configPress(m, runes("j"), runes("j"), runes("d"))

	if cfg.LogLevel != "" {
		t.Errorf("expected log level cleared, got %q", cfg.LogLevel)
	}
	if diff := cmp.Diff("Reset log-level to default", m.status); diff != "" {
		t.Errorf("unexpected status (-want +got):\n%s", diff)
	}
}

func TestConfigView_SaveError(t *testing.T) {
	cfg := &config.Config{}
	m := newConfigViewModel(cfg, func(*config.Config) error { return errors.New("disk full") })

	m = configPress(m, runes("d"))

	if !m.isError || m.status != "Error: disk full" {
		t.Errorf("unexpected status %q (error=%v)", m.status, m.isError)
	}
}

func TestConfigView_CursorBounds(t *testing.T) {
	m := newConfigViewModel(&config.Config{}, nil)

	m = configPress(m, runes("k"))
	if m.cursor != 0 {
		t.Errorf("expected cursor to stay at 0, got %d", m.cursor)
	}

	for range len(config.Keys) + 2 {
		m = configPress(m, runes("j"))
	}
	if m.cursor != len(config.Keys)-1 {
		t.Errorf("expected cursor at last key, got %d", m.cursor)
	}
}

func TestConfigView_EffectiveValue(t *testing.T) {
	m := newConfigViewModel(&config.Config{}, nil)

	got := m.effectiveValue(config.Keys[0])
	if diff := cmp.Diff("(default: monochromatic)", got); diff != "" {
		t.Errorf("unexpected value (-want +got):\n%s", diff)
	}
}
