package config

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-hclog"

	"nathanbeddoewebdev/huepick/internal/harmony"
	"nathanbeddoewebdev/huepick/internal/util"
)

// KeySpec describes a single configuration key.
type KeySpec struct {
	// Name is the CLI-facing key name (e.g. "default-harmony").
	Name string

	// Description is a short human-readable explanation shown in help text.
	Description string

	// Get returns the current value for this key from a loaded Config.
	Get func(cfg *Config) string

	// Set applies a value for this key to the given Config (in memory only;
	// the caller is responsible for calling Save).
	Set func(cfg *Config, value string)

	// Validate rejects values the key cannot hold. Nil accepts anything.
	Validate func(value string) error

	// CaseSensitive keys store the value verbatim instead of lowercased.
	CaseSensitive bool
}

// Keys is the authoritative list of all supported configuration keys.
// To add a new option: add a field to Config and append a KeySpec here.
var Keys = []KeySpec{
	{
		Name:        "default-harmony",
		Description: "Harmony preselected in the harmony view and used by palette generate",
		Get:         func(cfg *Config) string { return cfg.DefaultHarmony },
		Set:         func(cfg *Config, v string) { cfg.DefaultHarmony = v },
		Validate: func(v string) error {
			_, err := harmony.ParseKind(v)
			return err
		},
	},
	{
		Name:        "input-mode",
		Description: "Initial colour prompt mode (hex or rgb)",
		Get:         func(cfg *Config) string { return cfg.InputMode },
		Set:         func(cfg *Config, v string) { cfg.InputMode = v },
		Validate:    validateInputMode,
	},
	{
		Name:        "log-level",
		Description: "Log verbosity (trace, debug, info, warn, error, off)",
		Get:         func(cfg *Config) string { return cfg.LogLevel },
		Set:         func(cfg *Config, v string) { cfg.LogLevel = v },
		Validate:    validateLogLevel,
	},
	{
		Name:          "log-file",
		Description:   "File the interactive picker appends logs to",
		Get:           func(cfg *Config) string { return cfg.LogFile },
		Set:           func(cfg *Config, v string) { cfg.LogFile = v },
		CaseSensitive: true,
	},
}

// Lookup returns the KeySpec for the given name, or nil if not found.
// The name is matched case-insensitively after trimming whitespace.
func Lookup(name string) *KeySpec {
	normalized := util.NormalizeKey(name)
	for i := range Keys {
		if Keys[i].Name == normalized {
			return &Keys[i]
		}
	}
	return nil
}

// Apply validates value and stores it in cfg, lowercasing it first unless
// the key is case-sensitive. It returns the value as stored.
func (k *KeySpec) Apply(cfg *Config, value string) (string, error) {
	value = strings.TrimSpace(value)
	if !k.CaseSensitive {
		value = util.NormalizeKey(value)
	}
	if k.Validate != nil && value != "" {
		if err := k.Validate(value); err != nil {
			return "", err
		}
	}
	k.Set(cfg, value)
	return value, nil
}

// KeyNames returns the names of all registered keys.
func KeyNames() []string {
	names := make([]string, len(Keys))
	for i, k := range Keys {
		names[i] = k.Name
	}
	return names
}

// KeysHelp builds a formatted block listing all available keys and their
// descriptions, suitable for inclusion in Cobra Long help text.
func KeysHelp() string {
	if len(Keys) == 0 {
		return ""
	}

	maxLen := 0
	for _, k := range Keys {
		maxLen = max(maxLen, len(k.Name))
	}

	var b strings.Builder
	b.WriteString("Available keys:\n")
	for _, k := range Keys {
		fmt.Fprintf(&b, "  %-*s   %s\n", maxLen, k.Name, k.Description)
	}
	return b.String()
}

func validateInputMode(v string) error {
	switch util.NormalizeKey(v) {
	case InputModeHex, InputModeRGB:
		return nil
	}
	return fmt.Errorf("invalid input mode %q (valid: %s, %s)", v, InputModeHex, InputModeRGB)
}

func validateLogLevel(v string) error {
	if hclog.LevelFromString(v) == hclog.NoLevel {
		return fmt.Errorf("invalid log level %q (valid: trace, debug, info, warn, error, off)", v)
	}
	return nil
}
