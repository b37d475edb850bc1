package config

import (
	"strconv"
	"time"

	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeySlotPrefix          = "slot"
	KeySelectedSlot        = "selected_slot"
	KeySubprotocolEnabled  = "subprotocol_enabled"
	KeySubprotocol         = "subprotocol"
	KeyHandshakeTimeoutSec = "handshake_timeout_sec"
	KeyScrollbackLimit     = "scrollback_limit"
	KeyLanguage            = "app_language"
)

// Default values
const (
	SlotCount               = 5
	DefaultSlotURL          = "ws://localhost:1234/path/to/ws"
	DefaultSelectedSlot     = 0
	DefaultHandshakeTimeout = 10
	DefaultScrollbackLimit  = 1000
	DefaultLanguage         = "system"
)

// Bounds
const (
	MinHandshakeTimeout = 1
	MaxHandshakeTimeout = 120
	MinScrollbackLimit  = 50
	MaxScrollbackLimit  = 100000
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// SlotKey returns the preferences key of a saved URL slot
func SlotKey(index int) string {
	return KeySlotPrefix + strconv.Itoa(index)
}

// slotUnset marks a slot key that was never written; a saved empty URL is kept
const slotUnset = "\x00"

// GetSlot returns the URL saved in the given slot. A missing slot is
// initialised with DefaultSlotURL.
func (s *Settings) GetSlot(index int) string {
	index = clampSlot(index)
	url := s.app.Preferences().StringWithFallback(SlotKey(index), slotUnset)
	if url == slotUnset {
		s.SetSlot(index, DefaultSlotURL)
		return DefaultSlotURL
	}
	return url
}

// SetSlot stores a URL in the given slot
func (s *Settings) SetSlot(index int, url string) {
	s.app.Preferences().SetString(SlotKey(clampSlot(index)), url)
}

// GetSlots returns all saved URL slots in order
func (s *Settings) GetSlots() []string {
	slots := make([]string, SlotCount)
	for i := range slots {
		slots[i] = s.GetSlot(i)
	}
	return slots
}

// GetSelectedSlot returns the index of the last selected slot
func (s *Settings) GetSelectedSlot() int {
	value := s.app.Preferences().IntWithFallback(KeySelectedSlot, DefaultSelectedSlot)
	if value < 0 || value >= SlotCount {
		return DefaultSelectedSlot
	}
	return value
}

// SetSelectedSlot remembers the selected slot
func (s *Settings) SetSelectedSlot(index int) {
	s.app.Preferences().SetInt(KeySelectedSlot, clampSlot(index))
}

// GetSubprotocolEnabled returns whether a subprotocol is requested on connect
func (s *Settings) GetSubprotocolEnabled() bool {
	return s.app.Preferences().BoolWithFallback(KeySubprotocolEnabled, false)
}

// SetSubprotocolEnabled sets whether a subprotocol is requested on connect
func (s *Settings) SetSubprotocolEnabled(enabled bool) {
	s.app.Preferences().SetBool(KeySubprotocolEnabled, enabled)
}

// GetSubprotocol returns the subprotocol requested on connect
func (s *Settings) GetSubprotocol() string {
	return s.app.Preferences().String(KeySubprotocol)
}

// SetSubprotocol sets the subprotocol requested on connect
func (s *Settings) SetSubprotocol(protocol string) {
	s.app.Preferences().SetString(KeySubprotocol, protocol)
}

// GetHandshakeTimeout returns the opening handshake timeout
func (s *Settings) GetHandshakeTimeout() time.Duration {
	value := s.app.Preferences().Int(KeyHandshakeTimeoutSec)
	if value <= 0 {
		s.SetHandshakeTimeout(DefaultHandshakeTimeout)
		value = DefaultHandshakeTimeout
	}
	return time.Duration(value) * time.Second
}

// SetHandshakeTimeout sets the opening handshake timeout in seconds
func (s *Settings) SetHandshakeTimeout(seconds int) {
	if seconds < MinHandshakeTimeout {
		seconds = MinHandshakeTimeout
	}
	if seconds > MaxHandshakeTimeout {
		seconds = MaxHandshakeTimeout
	}
	s.app.Preferences().SetInt(KeyHandshakeTimeoutSec, seconds)
}

// GetScrollbackLimit returns the maximum number of log lines kept
func (s *Settings) GetScrollbackLimit() int {
	value := s.app.Preferences().Int(KeyScrollbackLimit)
	if value <= 0 {
		s.SetScrollbackLimit(DefaultScrollbackLimit)
		return DefaultScrollbackLimit
	}
	return value
}

// SetScrollbackLimit sets the maximum number of log lines kept
func (s *Settings) SetScrollbackLimit(lines int) {
	if lines < MinScrollbackLimit {
		lines = MinScrollbackLimit
	}
	if lines > MaxScrollbackLimit {
		lines = MaxScrollbackLimit
	}
	s.app.Preferences().SetInt(KeyScrollbackLimit, lines)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

func clampSlot(index int) int {
	if index < 0 {
		return 0
	}
	if index >= SlotCount {
		return SlotCount - 1
	}
	return index
}
