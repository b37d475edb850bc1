package model

import (
	"testing"
	"time"
)

func TestLogEntry_DisplayText(t *testing.T) {
	tests := []struct {
		entry    LogEntry
		expected string
	}{
		{NewTextEntry("s", DirectionRecv, "hello"), "hello"},
		{NewTextEntry("s", DirectionSend, ""), ""},
		{NewBinaryEntry("s", []byte{0x01, 0x02}), BinaryFlag},
		{NewInfoEntry("s", "Connected"), "Connected"},
	}

	for _, test := range tests {
		result := test.entry.DisplayText()
		if result != test.expected {
			t.Errorf("DisplayText() for %s/%s = '%s', expected '%s'",
				test.entry.Direction, test.entry.Kind, result, test.expected)
		}
	}
}

func TestNewBinaryEntry_KeepsOnlySize(t *testing.T) {
	entry := NewBinaryEntry("session-1", []byte("abcdef"))

	if entry.Text != "" {
		t.Errorf("Expected binary entry text to be empty, got '%s'", entry.Text)
	}
	if entry.Size != 6 {
		t.Errorf("Expected size 6, got %d", entry.Size)
	}
	if entry.Direction != DirectionRecv {
		t.Errorf("Expected direction RECV, got %s", entry.Direction)
	}
	if entry.SessionID != "session-1" {
		t.Errorf("Expected session 'session-1', got '%s'", entry.SessionID)
	}
}

func TestLogEntry_String(t *testing.T) {
	at := time.Date(2025, 3, 4, 9, 5, 7, 0, time.Local)

	tests := []struct {
		entry    LogEntry
		expected string
	}{
		{LogEntry{Time: at, Direction: DirectionSend, Kind: KindText, Text: "ping"}, "09:05:07 SEND: ping"},
		{LogEntry{Time: at, Direction: DirectionRecv, Kind: KindText, Text: "pong"}, "09:05:07 RECV: pong"},
		{LogEntry{Time: at, Direction: DirectionRecv, Kind: KindBinary, Size: 3}, "09:05:07 RECV: <BINARY>"},
		{LogEntry{Time: at, Direction: DirectionInfo, Kind: KindText, Text: "Disconnected"}, "09:05:07 Disconnected"},
	}

	for _, test := range tests {
		result := test.entry.String()
		if result != test.expected {
			t.Errorf("String() = '%s', expected '%s'", result, test.expected)
		}
	}
}
