// Package history exports the scrollback to a file.
package history

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ytget/ws-tester/internal/model"
)

// Format is an export file format
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// TimeLayout is RFC 3339 with milliseconds
const TimeLayout = "2006-01-02T15:04:05.000Z07:00"

// Record is the exported form of a log entry
type Record struct {
	Time      string `yaml:"time" json:"time"`
	Session   string `yaml:"session,omitempty" json:"session,omitempty"`
	Direction string `yaml:"direction" json:"direction"`
	Kind      string `yaml:"kind" json:"kind"`
	Text      string `yaml:"text,omitempty" json:"text,omitempty"`
	Size      int    `yaml:"size" json:"size"`
}

// FormatFromPath picks the format from the file extension; YAML is the default
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// DefaultFileName suggests a file name for an export made at t
func DefaultFileName(t time.Time) string {
	return "ws-log-" + t.Format("20060102-150405") + ".yaml"
}

// NewRecord converts a log entry
func NewRecord(e model.LogEntry) Record {
	return Record{
		Time:      e.Time.Format(TimeLayout),
		Session:   e.SessionID,
		Direction: string(e.Direction),
		Kind:      string(e.Kind),
		Text:      e.Text,
		Size:      e.Size,
	}
}

// Write encodes entries to w
func Write(w io.Writer, entries []model.LogEntry, format Format) error {
	records := make([]Record, 0, len(entries))
	for _, e := range entries {
		records = append(records, NewRecord(e))
	}

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(records); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(records); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
	default:
		return fmt.Errorf("unsupported export format: %s", format)
	}
	return nil
}
