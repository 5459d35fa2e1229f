// Package config loads and saves the daemon's on-disk settings.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/vnimed/vnimed/internal/engine"
)

// Config holds vnimed's persisted settings. Field names mirror the
// EngineConfig feature flags; ToEngineConfig translates the
// TOML-friendly ints into the engine's own enum types.
type Config struct {
	Enabled     bool `toml:"enabled"`
	InputMethod int  `toml:"input_method"` // 0=Telex, 1=VNI
	ToneRule    int  `toml:"tone_rule"`    // 0=old, 1=modern

	EnableDoubleKeyRevert bool `toml:"double_key_revert"`
	EnableWAsVowel        bool `toml:"w_as_vowel"`
	EnableValidation      bool `toml:"validation"`

	EscRestore         bool `toml:"esc_restore"`
	AutoCapitalize     bool `toml:"auto_capitalize"`
	EnglishAutoRestore bool `toml:"english_auto_restore"`
	BracketShortcut    bool `toml:"bracket_shortcut"`
	SkipWShortcut      bool `toml:"skip_w_shortcut"`

	DictionaryPath string            `toml:"dictionary_path"`
	Shortcuts      map[string]string `toml:"shortcuts"`

	ToggleHotkey string `toml:"toggle_hotkey"`
}

// Default returns vnimed's out-of-the-box configuration.
func Default() *Config {
	return &Config{
		Enabled:               true,
		InputMethod:           0,
		ToneRule:              0,
		EnableDoubleKeyRevert: true,
		EnableWAsVowel:        true,
		EnableValidation:      true,
		EscRestore:            true,
		AutoCapitalize:        false,
		EnglishAutoRestore:    true,
		BracketShortcut:       false,
		SkipWShortcut:         false,
		Shortcuts:             map[string]string{},
		ToggleHotkey:          "Ctrl+Space",
	}
}

// ConfigPath returns the XDG-compliant config file path.
func ConfigPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "vnimed", "config.toml")
}

// Load reads the config file, creating it with defaults on first run.
func Load() (*Config, error) {
	path := ConfigPath()
	cfg := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := Save(cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	if cfg.Shortcuts == nil {
		cfg.Shortcuts = map[string]string{}
	}
	return cfg, nil
}

// Save writes cfg to the config file, creating its directory if
// needed.
func Save(cfg *Config) error {
	path := ConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(cfg)
}

// ToEngineConfig builds an engine.EngineConfig from the persisted
// settings.
func (c *Config) ToEngineConfig() *engine.EngineConfig {
	method := engine.Telex
	if c.InputMethod == 1 {
		method = engine.VNI
	}
	rule := engine.ToneRuleOld
	if c.ToneRule == 1 {
		rule = engine.ToneRuleModern
	}
	shortcuts := make(map[string]string, len(c.Shortcuts))
	for k, v := range c.Shortcuts {
		shortcuts[k] = v
	}
	return &engine.EngineConfig{
		Enabled:               c.Enabled,
		InputMethod:           method,
		ToneRule:              rule,
		EnableDoubleKeyRevert: c.EnableDoubleKeyRevert,
		EnableWAsVowel:        c.EnableWAsVowel,
		EnableValidation:      c.EnableValidation,
		EscRestore:            c.EscRestore,
		AutoCapitalize:        c.AutoCapitalize,
		EnglishAutoRestore:    c.EnglishAutoRestore,
		BracketShortcut:       c.BracketShortcut,
		SkipWShortcut:         c.SkipWShortcut,
		Shortcuts:             shortcuts,
	}
}
