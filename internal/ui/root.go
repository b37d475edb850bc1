package ui

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ytget/ws-tester/internal/config"
	"github.com/ytget/ws-tester/internal/history"
	"github.com/ytget/ws-tester/internal/logger"
	"github.com/ytget/ws-tester/internal/model"
	"github.com/ytget/ws-tester/internal/platform"
	"github.com/ytget/ws-tester/internal/socket"
)

// RootUI represents the main window. It relays widget events to the socket
// and socket events back to the widgets.
type RootUI struct {
	window       fyne.Window
	socket       socket.Socket
	settings     *config.Settings
	localization *Localization
	logger       zerolog.Logger

	urlEntry         *widget.Entry
	connectBtn       *widget.Button
	slotSelect       *widget.Select
	saveBtn          *widget.Button
	subprotocolCheck *widget.Check
	subprotocolEntry *widget.Entry
	statusLabel      *widget.Label
	statusCaption    *widget.Label
	sendEntry        *widget.Entry
	sendBtn          *widget.Button
	pingBtn          *widget.Button
	logView          *LogView

	slots     []string
	sessionID string

	// reconnect once the current connection reports Disconnected
	reconnectPending bool

	// warn shows a modal warning
	warn func(title, message string)
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, sock socket.Socket, log zerolog.Logger) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		socket:       sock,
		settings:     settings,
		localization: localization,
		logger:       logger.Component(log, "ui"),
	}
	ui.warn = ui.showWarning

	window.SetTitle(localization.GetText(KeyAppTitle))
	if icon, err := LoadLogoResource(); err == nil {
		window.SetIcon(icon)
	}

	// Socket events arrive on the socket's goroutine
	sock.SetHandlers(socket.Handlers{
		OnStateChanged: func(s model.ConnState) { fyne.Do(func() { ui.onStateChanged(s) }) },
		OnConnected:    func(p string) { fyne.Do(func() { ui.onConnected(p) }) },
		OnDisconnected: func() { fyne.Do(ui.onDisconnected) },
		OnText:         func(m string) { fyne.Do(func() { ui.onTextMessage(m) }) },
		OnBinary:       func(b []byte) { fyne.Do(func() { ui.onBinaryMessage(b) }) },
		OnError:        func(k model.SocketError, err error) { fyne.Do(func() { ui.onError(k, err) }) },
		OnPong:         func(d time.Duration, p []byte) { fyne.Do(func() { ui.onPong(d, p) }) },
	})

	ui.setupUI()
	ui.loadSettings()
	ui.onStateChanged(sock.State())

	ui.logger.Debug().Int("slots", len(ui.slots)).Msg("UI setup completed")
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	l := ui.localization
	ui.createMenu()

	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder(l.GetText(KeyEnterURL))
	ui.urlEntry.OnSubmitted = func(string) { ui.onConnectClick() }

	ui.connectBtn = widget.NewButton(l.GetText(KeyConnect), ui.onConnectClick)
	ui.connectBtn.Importance = widget.HighImportance

	ui.slotSelect = widget.NewSelect(ui.slotNames(), nil)
	ui.saveBtn = widget.NewButton(l.GetText(KeySave), ui.onSaveClick)

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	ui.subprotocolCheck = widget.NewCheck(l.GetText(KeySubprotocol), nil)
	ui.subprotocolEntry = widget.NewEntry()
	ui.subprotocolEntry.SetPlaceHolder(l.GetText(KeySubprotocolHint))

	ui.statusCaption = widget.NewLabel(l.GetText(KeyStatus))
	ui.statusLabel = widget.NewLabel("")
	ui.statusLabel.TextStyle = fyne.TextStyle{Monospace: true}

	ui.sendEntry = widget.NewEntry()
	ui.sendEntry.SetPlaceHolder(l.GetText(KeyEnterMessage))
	ui.sendEntry.OnSubmitted = func(string) { ui.onSendClick() }

	ui.sendBtn = widget.NewButton(l.GetText(KeySend), ui.onSendClick)
	ui.pingBtn = widget.NewButton(l.GetText(KeyPing), ui.onPingClick)

	ui.logView = NewLogView(ui.settings.GetScrollbackLimit(), l)

	urlRow := container.NewBorder(nil, nil,
		container.NewHBox(settingsBtn, ui.slotSelect, ui.saveBtn),
		ui.connectBtn,
		ui.urlEntry,
	)
	optionsRow := container.NewBorder(nil, nil,
		ui.subprotocolCheck,
		container.NewHBox(ui.statusCaption, ui.statusLabel),
		ui.subprotocolEntry,
	)
	sendRow := container.NewBorder(nil, nil, nil,
		container.NewHBox(ui.pingBtn, ui.sendBtn),
		ui.sendEntry,
	)

	content := container.NewBorder(
		container.NewVBox(urlRow, optionsRow), // top
		sendRow,                               // bottom
		nil,                                   // left
		nil,                                   // right
		ui.logView.Container(),                // center
	)

	ui.window.SetContent(content)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	l := ui.localization

	fileMenu := fyne.NewMenu(l.GetText(KeyFile),
		fyne.NewMenuItem(l.GetText(KeySettings), ui.onShowSettings),
		fyne.NewMenuItem(l.GetText(KeyExportLog), ui.onExportClick),
		fyne.NewMenuItem(l.GetText(KeyClearLog), ui.onClearClick),
	)

	languageMenu := fyne.NewMenu(l.GetText(KeyLanguage))
	available := l.GetAvailableLanguages()
	for _, code := range l.SortedLanguageCodes() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(available[code], func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = l.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(fileMenu, languageMenu))
}

// loadSettings restores slots, the selected slot and the subprotocol option
func (ui *RootUI) loadSettings() {
	ui.slots = ui.settings.GetSlots()

	ui.subprotocolCheck.SetChecked(ui.settings.GetSubprotocolEnabled())
	ui.subprotocolEntry.SetText(ui.settings.GetSubprotocol())
	ui.subprotocolCheck.OnChanged = ui.settings.SetSubprotocolEnabled
	ui.subprotocolEntry.OnChanged = ui.settings.SetSubprotocol

	ui.slotSelect.SetSelectedIndex(ui.settings.GetSelectedSlot())
	ui.loadSelectedURL()
	ui.slotSelect.OnChanged = func(string) { ui.onSlotChanged() }
}

// SetURL replaces the URL field text without saving it to a slot
func (ui *RootUI) SetURL(text string) {
	ui.urlEntry.SetText(text)
}

// SelectSlot selects a saved slot by index, loading its URL
func (ui *RootUI) SelectSlot(index int) {
	if index < 0 || index >= len(ui.slots) {
		return
	}
	ui.slotSelect.SetSelectedIndex(index)
}

func (ui *RootUI) slotNames() []string {
	names := make([]string, config.SlotCount)
	for i := range names {
		names[i] = fmt.Sprintf(ui.localization.GetText(KeySlotFormat), i+1)
	}
	return names
}

// onConnectClick connects when unconnected and disconnects otherwise
func (ui *RootUI) onConnectClick() {
	if ui.socket.State().IsIdle() {
		ui.connectToWebsocket()
		return
	}

	ui.reconnectPending = false
	if err := ui.socket.Close(); err != nil {
		ui.logger.Error().Err(err).Msg("close failed")
	}
}

// connectToWebsocket validates the URL field and opens the socket
func (ui *RootUI) connectToWebsocket() {
	l := ui.localization

	u, err := socket.ParseURL(ui.urlEntry.Text)
	if err != nil {
		ui.logger.Warn().Err(err).Str(logger.FieldURL, ui.urlEntry.Text).Msg("url rejected")
		title := l.GetText(KeyInvalidURL)
		switch {
		case errors.Is(err, socket.ErrEmptyURL):
			ui.warn(title, title)
		case errors.Is(err, socket.ErrUnsupportedScheme):
			ui.warn(title, l.GetText(KeyOnlyWebSocketURLs))
		default:
			ui.warn(title, title+"\n\n"+err.Error())
		}
		return
	}

	ui.sessionID = uuid.NewString()
	ui.appendLog(model.NewInfoEntry(ui.sessionID, fmt.Sprintf(l.GetText(KeyConnectingTo), u.String())))

	opts := socket.OpenOptions{
		HandshakeTimeout: ui.settings.GetHandshakeTimeout(),
		Subprotocols:     ui.requestedSubprotocols(),
	}

	ui.logger.Info().
		Str(logger.FieldSession, ui.sessionID).
		Str(logger.FieldURL, u.String()).
		Msg("connect requested")

	if err := ui.socket.Open(u, opts); err != nil {
		ui.logger.Error().Err(err).Msg("open failed")
		ui.warn(l.GetText(KeyWebSocketError), l.GetText(KeyWebSocketError)+"\n\n"+socket.Classify(err).String())
	}
}

// requestedSubprotocols returns the subprotocols to offer, if enabled
func (ui *RootUI) requestedSubprotocols() []string {
	if !ui.subprotocolCheck.Checked {
		return nil
	}

	var protocols []string
	for _, p := range strings.Split(ui.subprotocolEntry.Text, SubprotocolSeparator) {
		if p = strings.TrimSpace(p); p != "" {
			protocols = append(protocols, p)
		}
	}
	return protocols
}

// onSendClick sends the message field as one text frame
func (ui *RootUI) onSendClick() {
	l := ui.localization

	if !ui.socket.State().IsOpen() {
		ui.warn(l.GetText(KeyNotConnected), l.GetText(KeyNotConnected))
		return
	}

	msg := ui.sendEntry.Text
	if err := ui.socket.SendText(msg); err != nil {
		ui.logger.Error().Err(err).Str(logger.FieldSession, ui.sessionID).Msg("send failed")
		ui.warn(l.GetText(KeyWebSocketError), l.GetText(KeyWebSocketError)+"\n\n"+socket.Classify(err).String())
		return
	}

	ui.sendEntry.SetText("")
	ui.appendLog(model.NewTextEntry(ui.sessionID, model.DirectionSend, msg))
}

// onPingClick sends a ping; the pong is logged by onPong
func (ui *RootUI) onPingClick() {
	l := ui.localization

	if !ui.socket.State().IsOpen() {
		ui.warn(l.GetText(KeyNotConnected), l.GetText(KeyNotConnected))
		return
	}

	if err := ui.socket.Ping([]byte(PingPayload)); err != nil {
		ui.logger.Error().Err(err).Msg("ping failed")
		ui.warn(l.GetText(KeyWebSocketError), l.GetText(KeyWebSocketError)+"\n\n"+socket.Classify(err).String())
	}
}

// onSlotChanged closes the socket and loads the selected slot's URL
func (ui *RootUI) onSlotChanged() {
	ui.settings.SetSelectedSlot(ui.slotSelect.SelectedIndex())
	ui.loadSelectedURL()
}

// loadSelectedURL puts the selected slot's URL in the URL field. An open
// connection is closed and reopened on the new URL.
func (ui *RootUI) loadSelectedURL() {
	idx := ui.slotSelect.SelectedIndex()
	if idx < 0 || idx >= len(ui.slots) {
		return
	}

	wasConnected := ui.socket.State().IsOpen()
	if err := ui.socket.Close(); err != nil {
		ui.logger.Error().Err(err).Msg("close failed")
	}

	ui.urlEntry.SetText(ui.slots[idx])
	ui.reconnectPending = wasConnected
}

// onSaveClick stores the URL field into the selected slot
func (ui *RootUI) onSaveClick() {
	idx := ui.slotSelect.SelectedIndex()
	if idx < 0 || idx >= len(ui.slots) {
		return
	}

	ui.slots[idx] = ui.urlEntry.Text
	ui.settings.SetSlot(idx, ui.urlEntry.Text)
	ui.appendLog(model.NewInfoEntry(ui.sessionID, fmt.Sprintf(ui.localization.GetText(KeySlotSaved), idx+1)))

	ui.logger.Info().Int("slot", idx).Str(logger.FieldURL, ui.urlEntry.Text).Msg("slot saved")
}

// onStateChanged updates input availability, the status label and the connect button
func (ui *RootUI) onStateChanged(state model.ConnState) {
	idle := state.IsIdle()
	open := state.IsOpen()

	setEnabled(ui.urlEntry, idle)
	setEnabled(ui.subprotocolCheck, idle)
	setEnabled(ui.subprotocolEntry, idle)
	setEnabled(ui.sendEntry, open)
	setEnabled(ui.sendBtn, open)
	setEnabled(ui.pingBtn, open)

	if idle {
		ui.connectBtn.SetText(ui.localization.GetText(KeyConnect))
	} else {
		ui.connectBtn.SetText(ui.localization.GetText(KeyDisconnect))
	}
	ui.statusLabel.SetText(state.String())
}

func (ui *RootUI) onConnected(subprotocol string) {
	text := ui.localization.GetText(KeyConnected)
	if subprotocol != "" {
		text = fmt.Sprintf(ui.localization.GetText(KeyConnectedSubprotocol), subprotocol)
	}
	ui.appendLog(model.NewInfoEntry(ui.sessionID, text))
}

func (ui *RootUI) onDisconnected() {
	ui.appendLog(model.NewInfoEntry(ui.sessionID, ui.localization.GetText(KeyDisconnected)))

	if ui.reconnectPending {
		ui.reconnectPending = false
		ui.connectToWebsocket()
	}
}

func (ui *RootUI) onTextMessage(message string) {
	ui.appendLog(model.NewTextEntry(ui.sessionID, model.DirectionRecv, message))
}

func (ui *RootUI) onBinaryMessage(payload []byte) {
	ui.appendLog(model.NewBinaryEntry(ui.sessionID, payload))
}

func (ui *RootUI) onError(kind model.SocketError, err error) {
	ui.reconnectPending = false
	ui.logger.Error().Err(err).Str("kind", kind.String()).Str(logger.FieldSession, ui.sessionID).Msg("socket error")

	title := ui.localization.GetText(KeyWebSocketError)
	ui.warn(title, title+"\n\n"+kind.String())
}

func (ui *RootUI) onPong(elapsed time.Duration, payload []byte) {
	ui.logger.Debug().Dur("elapsed", elapsed).Int("bytes", len(payload)).Msg("pong")
	rtt := elapsed.Round(time.Microsecond).String()
	ui.appendLog(model.NewInfoEntry(ui.sessionID, fmt.Sprintf(ui.localization.GetText(KeyPongReceived), rtt)))
}

func (ui *RootUI) appendLog(e model.LogEntry) {
	ui.logView.Append(e)
}

func (ui *RootUI) onClearClick() {
	ui.logView.Clear()
}

// onExportClick asks for a file and writes the scrollback to it
func (ui *RootUI) onExportClick() {
	save := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			ui.warn(ui.localization.GetText(KeyExportLog), err.Error())
			return
		}
		if writer == nil {
			return
		}

		path := writer.URI().Path()
		if err := ui.saveExport(writer, path); err != nil {
			ui.warn(ui.localization.GetText(KeyExportLog), err.Error())
			return
		}
		ui.offerReveal(path)
	}, ui.window)

	save.SetFileName(history.DefaultFileName(time.Now()))
	save.Show()
}

// saveExport writes the scrollback and closes w. The file is complete only
// when both succeed.
func (ui *RootUI) saveExport(w io.WriteCloser, path string) error {
	writeErr := ui.exportLog(w, path)
	closeErr := w.Close()
	if writeErr != nil {
		return writeErr
	}
	if closeErr != nil {
		ui.logger.Error().Err(closeErr).Str("path", path).Msg("log export not flushed")
		return fmt.Errorf("close %s: %w", path, closeErr)
	}
	return nil
}

// exportLog writes the scrollback to w in the format implied by path
func (ui *RootUI) exportLog(w io.Writer, path string) error {
	entries := ui.logView.Entries()
	if err := history.Write(w, entries, history.FormatFromPath(path)); err != nil {
		ui.logger.Error().Err(err).Str("path", path).Msg("log export failed")
		return err
	}
	ui.logger.Info().Str("path", path).Int("entries", len(entries)).Msg("log exported")
	return nil
}

func (ui *RootUI) offerReveal(path string) {
	l := ui.localization
	dialog.ShowConfirm(l.GetText(KeyLogExported), fmt.Sprintf(l.GetText(KeyRevealExport), path), func(ok bool) {
		if !ok {
			return
		}
		if err := platform.RevealFile(path); err != nil {
			ui.logger.Warn().Err(err).Str("path", path).Msg("reveal failed")
			ui.warn(l.GetText(KeyLogExported), err.Error())
		}
	}, ui.window)
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.applySettings).Show()
}

// applySettings picks up values changed in the settings dialog
func (ui *RootUI) applySettings() {
	ui.logView.SetLimit(ui.settings.GetScrollbackLimit())
	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.refreshUITexts()
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	l := ui.localization

	ui.window.SetTitle(l.GetText(KeyAppTitle))
	ui.createMenu()

	ui.urlEntry.SetPlaceHolder(l.GetText(KeyEnterURL))
	ui.sendEntry.SetPlaceHolder(l.GetText(KeyEnterMessage))
	ui.subprotocolEntry.SetPlaceHolder(l.GetText(KeySubprotocolHint))
	ui.subprotocolCheck.Text = l.GetText(KeySubprotocol)
	ui.subprotocolCheck.Refresh()
	ui.statusCaption.SetText(l.GetText(KeyStatus))
	ui.saveBtn.SetText(l.GetText(KeySave))
	ui.sendBtn.SetText(l.GetText(KeySend))
	ui.pingBtn.SetText(l.GetText(KeyPing))

	selected := ui.slotSelect.SelectedIndex()
	onChanged := ui.slotSelect.OnChanged
	ui.slotSelect.OnChanged = nil
	ui.slotSelect.Options = ui.slotNames()
	ui.slotSelect.SetSelectedIndex(selected)
	ui.slotSelect.OnChanged = onChanged

	ui.onStateChanged(ui.socket.State())
	ui.logView.Relabel()
}

// showWarning displays a modal warning dialog
func (ui *RootUI) showWarning(title, message string) {
	dialog.ShowInformation(title, message, ui.window)
}

func setEnabled(w fyne.Disableable, enabled bool) {
	if enabled {
		w.Enable()
	} else {
		w.Disable()
	}
}
