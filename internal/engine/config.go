package engine

// EngineConfig holds the per-process feature flags that shape how the
// transform stages, Restore Policy and shortcut expansion behave.
// Field names follow the convention the desktop shells in this project
// family use for their own settings structs.
type EngineConfig struct {
	Enabled     bool
	InputMethod Method
	ToneRule    ToneRule

	EnableDoubleKeyRevert bool
	EnableWAsVowel        bool
	EnableValidation      bool

	EscRestore         bool // ESC reverts the last committed word to raw
	AutoCapitalize     bool // capitalize the letter after a sentence-ending terminator
	EnglishAutoRestore bool // let the Restore Policy consult the English Detector
	BracketShortcut    bool // '[' ']' '{' '}' insert ơ ư Ơ Ư
	SkipWShortcut      bool // when true, bare 'w' never becomes 'ư' word-initially

	Shortcuts map[string]string
}

// DefaultConfig returns the engine's out-of-the-box configuration:
// Telex, old tone rule, every safety feature on, no user shortcuts.
func DefaultConfig() *EngineConfig {
	return &EngineConfig{
		Enabled:               true,
		InputMethod:           Telex,
		ToneRule:              ToneRuleOld,
		EnableDoubleKeyRevert: true,
		EnableWAsVowel:        true,
		EnableValidation:      true,
		EscRestore:            true,
		AutoCapitalize:        false,
		EnglishAutoRestore:    true,
		BracketShortcut:       false,
		SkipWShortcut:         false,
		Shortcuts:             map[string]string{},
	}
}
