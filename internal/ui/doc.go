package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It relays widget events to the WebSocket client and renders the client's
// events into the status label, input states and the scrollback log.
// All UI strings are localized via Localization.
