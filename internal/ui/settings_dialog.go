package ui

import (
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/ws-tester/internal/config"
	"github.com/ytget/ws-tester/internal/platform"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	timeoutEntry    *widget.Entry
	scrollbackEntry *widget.Entry
	languageSelect  *widget.Select
	languageCodes   []string
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after the
// settings have been stored.
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	l := sd.localization

	sd.timeoutEntry = widget.NewEntry()
	sd.timeoutEntry.SetPlaceHolder(strconv.Itoa(config.MinHandshakeTimeout) + "-" + strconv.Itoa(config.MaxHandshakeTimeout))

	sd.scrollbackEntry = widget.NewEntry()
	sd.scrollbackEntry.SetPlaceHolder(strconv.Itoa(config.DefaultScrollbackLimit))

	// Language selection, "system" first
	labels := sd.settings.GetLanguageOptions()
	sd.languageCodes = append([]string{config.DefaultLanguage}, l.SortedLanguageCodes()...)
	options := make([]string, 0, len(sd.languageCodes))
	for _, code := range sd.languageCodes {
		options = append(options, labels[code])
	}
	sd.languageSelect = widget.NewSelect(options, nil)

	// TLS stack, read-only
	tlsLabel := widget.NewLabel(strings.Join(platform.GetTLSInfo().Lines(), "\n"))
	tlsLabel.Wrapping = fyne.TextWrapWord

	form := container.NewVBox(
		widget.NewLabel(l.GetText(KeyConnectionSettings)),
		widget.NewSeparator(),

		widget.NewLabel(l.GetText(KeyHandshakeTimeout)),
		sd.timeoutEntry,

		widget.NewSeparator(),
		widget.NewLabel(l.GetText(KeyInterfaceSettings)),
		widget.NewSeparator(),

		widget.NewLabel(l.GetText(KeyScrollbackLimit)),
		sd.scrollbackEntry,

		widget.NewLabel(l.GetText(KeyLanguage)+":"),
		sd.languageSelect,

		widget.NewSeparator(),
		widget.NewLabel(l.GetText(KeyTLSInfo)),
		tlsLabel,
	)

	sd.dialog = dialog.NewCustomConfirm(
		l.GetText(KeySettings),
		l.GetText(KeySave),
		l.GetText(KeyCancel),
		container.NewVScroll(form),
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogW, SettingsDialogH))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.timeoutEntry.SetText(strconv.Itoa(int(sd.settings.GetHandshakeTimeout().Seconds())))
	sd.scrollbackEntry.SetText(strconv.Itoa(sd.settings.GetScrollbackLimit()))

	current := sd.settings.GetLanguage()
	for i, code := range sd.languageCodes {
		if code == current {
			sd.languageSelect.SetSelectedIndex(i)
			break
		}
	}
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.apply()
	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}

// apply stores valid field values; invalid numbers are ignored
func (sd *SettingsDialog) apply() {
	if seconds, err := strconv.Atoi(strings.TrimSpace(sd.timeoutEntry.Text)); err == nil {
		sd.settings.SetHandshakeTimeout(seconds)
	}

	if lines, err := strconv.Atoi(strings.TrimSpace(sd.scrollbackEntry.Text)); err == nil {
		sd.settings.SetScrollbackLimit(lines)
	}

	if idx := sd.languageSelect.SelectedIndex(); idx >= 0 && idx < len(sd.languageCodes) {
		sd.settings.SetLanguage(sd.languageCodes[idx])
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
