package engine

import "unicode/utf8"

// SetShortcut installs or replaces a user-defined trigger/expansion
// pair. Expansion may itself contain precomposed Vietnamese glyphs; it
// is never re-transformed, only emitted verbatim. Rejects malformed
// input synchronously and leaves the table unchanged.
func (cfg *EngineConfig) SetShortcut(trigger, expansion string) error {
	if len(trigger) > maxShortcutTriggerLen {
		return ErrShortcutTriggerTooLong
	}
	if !utf8.ValidString(expansion) {
		return ErrShortcutInvalidUTF8
	}
	if cfg.Shortcuts == nil {
		cfg.Shortcuts = map[string]string{}
	}
	cfg.Shortcuts[trigger] = expansion
	return nil
}

// RemoveShortcut deletes a trigger, if present.
func (cfg *EngineConfig) RemoveShortcut(trigger string) {
	delete(cfg.Shortcuts, trigger)
}

// expandShortcut looks up rawWord (the literal keystrokes typed this
// word, with their original caps) in the shortcut table. Matching is exact and
// case-sensitive against the stored trigger, mirroring how the trigger
// was originally entered by the user in settings.
func (cfg *EngineConfig) expandShortcut(rawWord string) (string, bool) {
	if cfg == nil || len(cfg.Shortcuts) == 0 {
		return "", false
	}
	exp, ok := cfg.Shortcuts[rawWord]
	return exp, ok
}
