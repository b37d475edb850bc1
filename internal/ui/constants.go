package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
)

// Layout sizing
const (
	SettingsDialogW float32 = 520
	SettingsDialogH float32 = 420
	LogMinHeight    float32 = 240
)

// Ping payload sent by the Ping button
const PingPayload = "ws-tester"

// Separator between subprotocols typed into the subprotocol field
const SubprotocolSeparator = ","
