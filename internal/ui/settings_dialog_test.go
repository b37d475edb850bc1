package ui

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"

	"github.com/ytget/ws-tester/internal/config"
)

func TestSettingsDialog_LoadAndApply(t *testing.T) {
	app := test.NewApp()
	window := test.NewWindow(nil)
	defer window.Close()

	settings := config.NewSettings(app)
	settings.SetLanguage("ru")

	saved := 0
	sd := NewSettingsDialog(settings, NewLocalization(), window, func() { saved++ })
	sd.loadCurrentSettings()

	assert.Equal(t, "10", sd.timeoutEntry.Text)
	assert.Equal(t, "1000", sd.scrollbackEntry.Text)
	assert.Equal(t, "Русский", sd.languageSelect.Selected)

	sd.timeoutEntry.SetText("30")
	sd.scrollbackEntry.SetText("not a number")
	sd.languageSelect.SetSelectedIndex(0)
	sd.apply()

	assert.Equal(t, 1, saved)
	assert.Equal(t, 30*time.Second, settings.GetHandshakeTimeout())
	assert.Equal(t, config.DefaultScrollbackLimit, settings.GetScrollbackLimit())
	assert.Equal(t, config.DefaultLanguage, settings.GetLanguage())
}

func TestSettingsDialog_LanguageOrder(t *testing.T) {
	app := test.NewApp()
	window := test.NewWindow(nil)
	defer window.Close()

	sd := NewSettingsDialog(config.NewSettings(app), NewLocalization(), window, nil)

	assert.Equal(t, []string{"system", "en", "pt", "ru"}, sd.languageCodes)
	assert.Equal(t, "System Default", sd.languageSelect.Options[0])
}
