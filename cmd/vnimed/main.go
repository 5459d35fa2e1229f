// Command vnimed is the vnimed D-Bus daemon: it exposes the engine
// core to a desktop input-method shell (Fcitx5, an IBus bridge, or a
// platform-specific keyboard hook) over the session bus.
package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/godbus/dbus/v5"

	"github.com/vnimed/vnimed/internal/config"
	"github.com/vnimed/vnimed/internal/dictionary"
	"github.com/vnimed/vnimed/internal/engine"
)

const (
	serviceName = "com.github.vnimed.engine"
	objectPath  = "/Engine"
)

// EngineService is the D-Bus object a host shell drives one keystroke
// at a time.
type EngineService struct {
	eng    *engine.Engine
	cfg    *config.Config
	logger *log.Logger
}

// NewEngineService builds the D-Bus object from a loaded config.
func NewEngineService(cfg *config.Config, logger *log.Logger) *EngineService {
	eng := engine.NewEngine(cfg.ToEngineConfig())
	dict := dictionary.New()
	if cfg.DictionaryPath != "" {
		if loaded, err := dictionary.Load(cfg.DictionaryPath); err == nil {
			dict = loaded
		} else if logger != nil {
			logger.Printf("[vnimed] dictionary load failed, using built-in defaults: %v", err)
		}
	}
	eng.SetDictionary(dict)
	return &EngineService{eng: eng, cfg: cfg, logger: logger}
}

// ProcessKey is the D-Bus-exposed form of Engine.OnKey. key is a
// macOS-space keycode (or a PunctKey-wrapped rune for punctuation);
// chars is padded to result.Count entries.
func (s *EngineService) ProcessKey(key uint16, caps, ctrl, shift bool) (byte, byte, []uint32, *dbus.Error) {
	result := s.eng.OnKey(engine.KeyCode(key), caps, ctrl, shift)
	chars := make([]uint32, result.Count)
	for i := 0; i < int(result.Count); i++ {
		chars[i] = uint32(result.Chars[i])
	}
	if s.logger != nil {
		s.logger.Printf("key=0x%x caps=%v ctrl=%v shift=%v -> action=%d backspace=%d chars=%q",
			key, caps, ctrl, shift, result.Action, result.Backspace, string(runesOf(chars)))
	}
	return byte(result.Action), byte(result.Backspace), chars, nil
}

func runesOf(u []uint32) []rune {
	r := make([]rune, len(u))
	for i, c := range u {
		r[i] = rune(c)
	}
	return r
}

// SetEnabled toggles the engine on or off.
func (s *EngineService) SetEnabled(enabled bool) *dbus.Error {
	s.eng.Config().Enabled = enabled
	return nil
}

// SetMethod switches Telex/VNI (0=Telex, 1=VNI).
func (s *EngineService) SetMethod(method byte) *dbus.Error {
	if method == 1 {
		s.eng.Config().InputMethod = engine.VNI
	} else {
		s.eng.Config().InputMethod = engine.Telex
	}
	return nil
}

// SetModernTone toggles the oa/oe/uy tone placement convention.
func (s *EngineService) SetModernTone(modern bool) *dbus.Error {
	if modern {
		s.eng.Config().ToneRule = engine.ToneRuleModern
	} else {
		s.eng.Config().ToneRule = engine.ToneRuleOld
	}
	return nil
}

// SetEnglishAutoRestore toggles the Restore Policy's English-pattern
// branches.
func (s *EngineService) SetEnglishAutoRestore(on bool) *dbus.Error {
	s.eng.Config().EnglishAutoRestore = on
	return nil
}

// SetAutoCapitalize toggles sentence-start auto-capitalization.
func (s *EngineService) SetAutoCapitalize(on bool) *dbus.Error {
	s.eng.Config().AutoCapitalize = on
	return nil
}

// SetEscRestore toggles the ESC-restores-last-word feature.
func (s *EngineService) SetEscRestore(on bool) *dbus.Error {
	s.eng.Config().EscRestore = on
	return nil
}

// SetSkipWShortcut toggles the word-initial w→ư convenience shortcut.
func (s *EngineService) SetSkipWShortcut(on bool) *dbus.Error {
	s.eng.Config().SkipWShortcut = on
	return nil
}

// SetBracketShortcut toggles the [ ] { } → ơ ư Ơ Ư shortcut.
func (s *EngineService) SetBracketShortcut(on bool) *dbus.Error {
	s.eng.Config().BracketShortcut = on
	return nil
}

// AddShortcut installs a user shortcut.
func (s *EngineService) AddShortcut(trigger, replacement string) *dbus.Error {
	if err := s.eng.Config().SetShortcut(trigger, replacement); err != nil {
		return dbus.MakeFailedError(err)
	}
	return nil
}

// RemoveShortcut deletes a user shortcut.
func (s *EngineService) RemoveShortcut(trigger string) *dbus.Error {
	s.eng.Config().RemoveShortcut(trigger)
	return nil
}

// ClearShortcuts empties the shortcut table.
func (s *EngineService) ClearShortcuts() *dbus.Error {
	s.eng.Config().Shortcuts = map[string]string{}
	return nil
}

// ClearAll resets the engine's current word, discarding any
// in-progress composition.
func (s *EngineService) ClearAll() *dbus.Error {
	s.eng.Reset()
	return nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "vnimed: failed to load config:", err)
		os.Exit(1)
	}

	conn, err := dbus.SessionBus()
	if err != nil {
		fmt.Fprintln(os.Stderr, "vnimed: failed to connect to session bus:", err)
		os.Exit(1)
	}
	defer conn.Close()

	reply, err := conn.RequestName(serviceName, dbus.NameFlagDoNotQueue)
	if err != nil {
		fmt.Fprintln(os.Stderr, "vnimed: failed to request name:", err)
		os.Exit(1)
	}
	if reply != dbus.RequestNameReplyPrimaryOwner {
		fmt.Fprintln(os.Stderr, "vnimed: name already taken, another instance may be running")
		os.Exit(1)
	}

	logPath := os.Getenv("VNIMED_LOG")
	if logPath == "" {
		logPath = "vnimed.log"
	}
	logFile, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	var logger *log.Logger
	if err == nil {
		logger = log.New(logFile, "", log.LstdFlags)
		defer logFile.Close()
	} else {
		fmt.Fprintf(os.Stderr, "vnimed: failed to open log file: %v\n", err)
	}

	svc := NewEngineService(cfg, logger)
	if err := conn.Export(svc, dbus.ObjectPath(objectPath), serviceName); err != nil {
		fmt.Fprintln(os.Stderr, "vnimed: failed to export object:", err)
		os.Exit(1)
	}

	fmt.Println("vnimed is running")
	fmt.Printf("  service:      %s\n", serviceName)
	fmt.Printf("  object path:  %s\n", objectPath)
	fmt.Printf("  input method: %v\n", cfg.InputMethod)
	fmt.Println("waiting for key events...")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
	fmt.Println("\nvnimed: shutting down")
}
