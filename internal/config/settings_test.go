package config

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestSlots(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Missing slots fall back to the default and are persisted
	for i := 0; i < SlotCount; i++ {
		if url := settings.GetSlot(i); url != DefaultSlotURL {
			t.Errorf("Slot %d: expected default %s, got %s", i, DefaultSlotURL, url)
		}
		if stored := app.Preferences().String(SlotKey(i)); stored != DefaultSlotURL {
			t.Errorf("Slot %d: default should be persisted, got '%s'", i, stored)
		}
	}

	settings.SetSlot(2, "wss://echo.example.org/socket")
	if url := settings.GetSlot(2); url != "wss://echo.example.org/socket" {
		t.Errorf("Expected saved slot URL, got %s", url)
	}

	slots := settings.GetSlots()
	if len(slots) != SlotCount {
		t.Fatalf("Expected %d slots, got %d", SlotCount, len(slots))
	}
	if slots[2] != "wss://echo.example.org/socket" {
		t.Errorf("GetSlots()[2] = %s", slots[2])
	}
}

func TestSlotSavedEmpty(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	settings.SetSlot(1, "")

	if url := settings.GetSlot(1); url != "" {
		t.Errorf("Saved empty slot should stay empty, got '%s'", url)
	}
	if url := NewSettings(app).GetSlots()[1]; url != "" {
		t.Errorf("Saved empty slot should survive a reload, got '%s'", url)
	}
	if url := settings.GetSlot(0); url != DefaultSlotURL {
		t.Errorf("Unwritten slot should get the default, got '%s'", url)
	}
}

func TestSlotKey(t *testing.T) {
	if SlotKey(0) != "slot0" || SlotKey(4) != "slot4" {
		t.Errorf("Unexpected slot keys: %s, %s", SlotKey(0), SlotKey(4))
	}
}

func TestSelectedSlot(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetSelectedSlot() != DefaultSelectedSlot {
		t.Errorf("Expected default selected slot %d", DefaultSelectedSlot)
	}

	settings.SetSelectedSlot(3)
	if settings.GetSelectedSlot() != 3 {
		t.Errorf("Expected selected slot 3, got %d", settings.GetSelectedSlot())
	}

	settings.SetSelectedSlot(42) // Should be clamped to last slot
	if settings.GetSelectedSlot() != SlotCount-1 {
		t.Errorf("Selected slot should be clamped to %d, got %d", SlotCount-1, settings.GetSelectedSlot())
	}

	// Out-of-range value written by an older build
	app.Preferences().SetInt(KeySelectedSlot, -3)
	if settings.GetSelectedSlot() != DefaultSelectedSlot {
		t.Error("Out-of-range stored slot should read as default")
	}
}

func TestSubprotocol(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetSubprotocolEnabled() {
		t.Error("Subprotocol should be disabled by default")
	}
	if settings.GetSubprotocol() != "" {
		t.Error("Subprotocol should be empty by default")
	}

	settings.SetSubprotocolEnabled(true)
	settings.SetSubprotocol("graphql-ws")

	if !settings.GetSubprotocolEnabled() || settings.GetSubprotocol() != "graphql-ws" {
		t.Errorf("Expected enabled graphql-ws, got %v %s", settings.GetSubprotocolEnabled(), settings.GetSubprotocol())
	}
}

func TestHandshakeTimeout(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetHandshakeTimeout() != DefaultHandshakeTimeout*time.Second {
		t.Errorf("Expected default timeout, got %v", settings.GetHandshakeTimeout())
	}

	settings.SetHandshakeTimeout(30)
	if settings.GetHandshakeTimeout() != 30*time.Second {
		t.Errorf("Expected 30s, got %v", settings.GetHandshakeTimeout())
	}

	settings.SetHandshakeTimeout(0)
	if settings.GetHandshakeTimeout() != MinHandshakeTimeout*time.Second {
		t.Error("Timeout should be clamped to minimum")
	}

	settings.SetHandshakeTimeout(1000)
	if settings.GetHandshakeTimeout() != MaxHandshakeTimeout*time.Second {
		t.Error("Timeout should be clamped to maximum")
	}
}

func TestScrollbackLimit(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetScrollbackLimit() != DefaultScrollbackLimit {
		t.Errorf("Expected default scrollback %d, got %d", DefaultScrollbackLimit, settings.GetScrollbackLimit())
	}

	settings.SetScrollbackLimit(10)
	if settings.GetScrollbackLimit() != MinScrollbackLimit {
		t.Error("Scrollback should be clamped to minimum")
	}

	settings.SetScrollbackLimit(5000)
	if settings.GetScrollbackLimit() != 5000 {
		t.Errorf("Expected 5000, got %d", settings.GetScrollbackLimit())
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	settings.SetLanguage("ru")
	if settings.GetLanguage() != "ru" {
		t.Errorf("Expected language 'ru', got %s", settings.GetLanguage())
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
