package config

import (
	"strings"
	"testing"

	"nathanbeddoewebdev/huepick/internal/config"
)

func TestGet_DefaultHarmony_NotSet(t *testing.T) {
	setupTestConfig(t)

	stdout, stderr := execConfig(t, "get", "default-harmony")

	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if !strings.Contains(stdout, "not set") {
		t.Errorf("expected 'not set', got: %s", stdout)
	}
}

func TestGet_DefaultHarmony_Set(t *testing.T) {
	path := setupTestConfig(t)

	// Write a config value directly.
	cfg := &config.Config{DefaultHarmony: "tetradic"}
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	stdout, stderr := execConfig(t, "get", "default-harmony")

	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if !strings.Contains(stdout, "tetradic") {
		t.Errorf("expected 'tetradic', got: %s", stdout)
	}
}

func TestGet_KeyFlag(t *testing.T) {
	path := setupTestConfig(t)

	cfg := &config.Config{LogLevel: "debug"}
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	stdout, _ := execConfig(t, "get", "--key", "LOG-LEVEL")

	if strings.TrimSpace(stdout) != "debug" {
		t.Errorf("expected 'debug', got: %q", stdout)
	}
}

func TestGet_UnknownKey(t *testing.T) {
	setupTestConfig(t)

	_, stderr := execConfig(t, "get", "bogus-key")

	if !strings.Contains(stderr, "unknown configuration key") {
		t.Errorf("expected 'unknown configuration key' error, got: %s", stderr)
	}
}

func TestGet_ListsAllWhenNotATerminal(t *testing.T) {
	path := setupTestConfig(t)

	cfg := &config.Config{InputMode: "rgb"}
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	// Test stdout is never a terminal, so this lists instead of opening the viewer.
	stdout, _ := execConfig(t, "get")

	for _, want := range []string{"default-harmony: (not set)", "input-mode: rgb", "log-file: (not set)"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("expected %q in output, got:\n%s", want, stdout)
		}
	}
}
