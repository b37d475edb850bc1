package ui

import "sort"

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle             = "app_title"
	KeyConnect              = "connect"
	KeyDisconnect           = "disconnect"
	KeySend                 = "send"
	KeyPing                 = "ping"
	KeySave                 = "save"
	KeyCancel               = "cancel"
	KeySettings             = "settings"
	KeyClearLog             = "clear_log"
	KeyExportLog            = "export_log"
	KeyFile                 = "file"
	KeyLanguage             = "language"
	KeyEnterURL             = "enter_url"
	KeyEnterMessage         = "enter_message"
	KeySubprotocol          = "subprotocol"
	KeySubprotocolHint      = "subprotocol_hint"
	KeySlotFormat           = "slot_format"
	KeyStatus               = "status"
	KeySendTag              = "send_tag"
	KeyRecvTag              = "recv_tag"
	KeyInvalidURL           = "invalid_url"
	KeyOnlyWebSocketURLs    = "only_websocket_urls"
	KeyNotConnected         = "not_connected"
	KeyWebSocketError       = "websocket_error"
	KeyConnectingTo         = "connecting_to"
	KeyConnected            = "connected"
	KeyConnectedSubprotocol = "connected_subprotocol"
	KeyDisconnected         = "disconnected"
	KeyPongReceived         = "pong_received"
	KeySlotSaved            = "slot_saved"
	KeyLogExported          = "log_exported"
	KeyRevealExport         = "reveal_export"
	KeySettingsSaved        = "settings_saved"
	KeyConnectionSettings   = "connection_settings"
	KeyInterfaceSettings    = "interface_settings"
	KeyHandshakeTimeout     = "handshake_timeout"
	KeyScrollbackLimit      = "scrollback_limit"
	KeyTLSInfo              = "tls_info"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// SortedLanguageCodes returns the available language codes in a stable order
func (l *Localization) SortedLanguageCodes() []string {
	codes := make([]string, 0, len(l.texts))
	for code := range l.GetAvailableLanguages() {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:             "WebSocket Tester",
		KeyConnect:              "Connect",
		KeyDisconnect:           "Disconnect",
		KeySend:                 "Send",
		KeyPing:                 "Ping",
		KeySave:                 "Save",
		KeyCancel:               "Cancel",
		KeySettings:             "Settings",
		KeyClearLog:             "Clear log",
		KeyExportLog:            "Export log...",
		KeyFile:                 "File",
		KeyLanguage:             "Language",
		KeyEnterURL:             "ws://host:port/path",
		KeyEnterMessage:         "Message to send",
		KeySubprotocol:          "Subprotocol",
		KeySubprotocolHint:      "e.g. graphql-ws, chat",
		KeySlotFormat:           "Slot %d",
		KeyStatus:               "Status:",
		KeySendTag:              "SEND",
		KeyRecvTag:              "RECV",
		KeyInvalidURL:           "Invalid url entered!",
		KeyOnlyWebSocketURLs:    "Only urls starting with ws:// or wss:// are allowed!",
		KeyNotConnected:         "WebSocket not connected!",
		KeyWebSocketError:       "WebSocket error occurred!",
		KeyConnectingTo:         "Connecting to %s",
		KeyConnected:            "Connected",
		KeyConnectedSubprotocol: "Connected (subprotocol: %s)",
		KeyDisconnected:         "Disconnected",
		KeyPongReceived:         "Pong received after %s",
		KeySlotSaved:            "URL saved to slot %d",
		KeyLogExported:          "Log exported",
		KeyRevealExport:         "Saved to %s\n\nShow in file manager?",
		KeySettingsSaved:        "Settings saved successfully!",
		KeyConnectionSettings:   "Connection Settings",
		KeyInterfaceSettings:    "Interface Settings",
		KeyHandshakeTimeout:     "Handshake Timeout (seconds):",
		KeyScrollbackLimit:      "Scrollback Lines:",
		KeyTLSInfo:              "TLS Library",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:             "Тестер WebSocket",
		KeyConnect:              "Подключить",
		KeyDisconnect:           "Отключить",
		KeySend:                 "Отправить",
		KeyPing:                 "Пинг",
		KeySave:                 "Сохранить",
		KeyCancel:               "Отмена",
		KeySettings:             "Настройки",
		KeyClearLog:             "Очистить журнал",
		KeyExportLog:            "Экспорт журнала...",
		KeyFile:                 "Файл",
		KeyLanguage:             "Язык",
		KeyEnterMessage:         "Сообщение",
		KeySubprotocol:          "Подпротокол",
		KeySubprotocolHint:      "например graphql-ws, chat",
		KeySlotFormat:           "Слот %d",
		KeyStatus:               "Состояние:",
		KeySendTag:              "ОТПР",
		KeyRecvTag:              "ПОЛУЧ",
		KeyInvalidURL:           "Введён неверный URL!",
		KeyOnlyWebSocketURLs:    "Допускаются только URL, начинающиеся с ws:// или wss://!",
		KeyNotConnected:         "WebSocket не подключён!",
		KeyWebSocketError:       "Ошибка WebSocket!",
		KeyConnectingTo:         "Подключение к %s",
		KeyConnected:            "Подключено",
		KeyConnectedSubprotocol: "Подключено (подпротокол: %s)",
		KeyDisconnected:         "Отключено",
		KeyPongReceived:         "Понг получен через %s",
		KeySlotSaved:            "URL сохранён в слот %d",
		KeyLogExported:          "Журнал экспортирован",
		KeyRevealExport:         "Сохранено в %s\n\nПоказать в файловом менеджере?",
		KeySettingsSaved:        "Настройки успешно сохранены!",
		KeyConnectionSettings:   "Настройки подключения",
		KeyInterfaceSettings:    "Настройки интерфейса",
		KeyHandshakeTimeout:     "Тайм-аут рукопожатия (сек):",
		KeyScrollbackLimit:      "Строк в журнале:",
		KeyTLSInfo:              "Библиотека TLS",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:             "Testador WebSocket",
		KeyConnect:              "Conectar",
		KeyDisconnect:           "Desconectar",
		KeySend:                 "Enviar",
		KeyPing:                 "Ping",
		KeySave:                 "Salvar",
		KeyCancel:               "Cancelar",
		KeySettings:             "Configurações",
		KeyClearLog:             "Limpar registro",
		KeyExportLog:            "Exportar registro...",
		KeyFile:                 "Arquivo",
		KeyLanguage:             "Idioma",
		KeyEnterMessage:         "Mensagem para enviar",
		KeySubprotocol:          "Subprotocolo",
		KeySubprotocolHint:      "ex. graphql-ws, chat",
		KeySlotFormat:           "Slot %d",
		KeyStatus:               "Estado:",
		KeySendTag:              "ENVIO",
		KeyRecvTag:              "RECEB",
		KeyInvalidURL:           "URL inválida!",
		KeyOnlyWebSocketURLs:    "Apenas URLs começando com ws:// ou wss:// são permitidas!",
		KeyNotConnected:         "WebSocket não conectado!",
		KeyWebSocketError:       "Erro de WebSocket!",
		KeyConnectingTo:         "Conectando a %s",
		KeyConnected:            "Conectado",
		KeyConnectedSubprotocol: "Conectado (subprotocolo: %s)",
		KeyDisconnected:         "Desconectado",
		KeyPongReceived:         "Pong recebido após %s",
		KeySlotSaved:            "URL salva no slot %d",
		KeyLogExported:          "Registro exportado",
		KeyRevealExport:         "Salvo em %s\n\nMostrar no gerenciador de arquivos?",
		KeySettingsSaved:        "Configurações salvas com sucesso!",
		KeyConnectionSettings:   "Configurações de Conexão",
		KeyInterfaceSettings:    "Configurações da Interface",
		KeyHandshakeTimeout:     "Tempo limite do handshake (segundos):",
		KeyScrollbackLimit:      "Linhas do registro:",
		KeyTLSInfo:              "Biblioteca TLS",
	}
}
