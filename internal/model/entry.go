package model

import (
	"fmt"
	"time"
)

// Direction tells where a log entry came from
type Direction string

const (
	DirectionSend Direction = "SEND"
	DirectionRecv Direction = "RECV"
	DirectionInfo Direction = "INFO"
)

// MessageKind is the frame type of a logged message
type MessageKind string

const (
	KindText   MessageKind = "text"
	KindBinary MessageKind = "binary"
)

// Display constants
const (
	TimeLayout  = "15:04:05"
	BinaryFlag  = "<BINARY>"
	EntryFormat = "%s %s: %s"
)

// LogEntry represents a single line of the scrollback
type LogEntry struct {
	Time      time.Time
	Direction Direction
	Kind      MessageKind
	Text      string // message text; empty for binary payloads
	Size      int    // payload size in bytes
	SessionID string // connection attempt the entry belongs to
}

// NewInfoEntry creates an informational entry (connecting, connected, ...)
func NewInfoEntry(sessionID, text string) LogEntry {
	return LogEntry{
		Time:      time.Now(),
		Direction: DirectionInfo,
		Kind:      KindText,
		Text:      text,
		Size:      len(text),
		SessionID: sessionID,
	}
}

// NewTextEntry creates an entry for a text frame sent or received
func NewTextEntry(sessionID string, dir Direction, text string) LogEntry {
	return LogEntry{
		Time:      time.Now(),
		Direction: dir,
		Kind:      KindText,
		Text:      text,
		Size:      len(text),
		SessionID: sessionID,
	}
}

// NewBinaryEntry creates an entry for a received binary frame. The payload
// is not kept, only its size.
func NewBinaryEntry(sessionID string, payload []byte) LogEntry {
	return LogEntry{
		Time:      time.Now(),
		Direction: DirectionRecv,
		Kind:      KindBinary,
		Size:      len(payload),
		SessionID: sessionID,
	}
}

// TimeString returns the entry time formatted as hh:mm:ss
func (e LogEntry) TimeString() string {
	return e.Time.Format(TimeLayout)
}

// DisplayText returns the text shown in the log; binary payloads are flagged
func (e LogEntry) DisplayText() string {
	if e.Kind == KindBinary {
		return BinaryFlag
	}
	return e.Text
}

// IsInfo returns true for state/notice entries
func (e LogEntry) IsInfo() bool {
	return e.Direction == DirectionInfo
}

// String renders the entry as a plain text line
func (e LogEntry) String() string {
	if e.IsInfo() {
		return e.TimeString() + " " + e.Text
	}
	return fmt.Sprintf(EntryFormat, e.TimeString(), e.Direction, e.DisplayText())
}
