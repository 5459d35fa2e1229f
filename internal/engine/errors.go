package engine

import "errors"

// ErrShortcutTriggerTooLong and ErrShortcutInvalidUTF8 are the two
// synchronous configuration errors a shortcut-table setter can return.
// Neither ever reaches the keystroke path: invalid configuration is
// rejected at the edge, before it can affect engine state.
var (
	ErrShortcutTriggerTooLong = errors.New("engine: shortcut trigger exceeds maximum length")
	ErrShortcutInvalidUTF8    = errors.New("engine: shortcut expansion is not valid UTF-8")
)

const maxShortcutTriggerLen = 32
