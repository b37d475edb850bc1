package model

// LogBook is the in-memory scrollback. It keeps at most Limit entries and
// drops the oldest when full. It is owned by the UI thread.
type LogBook struct {
	entries []LogEntry
	limit   int
}

// NewLogBook creates a scrollback holding up to limit entries
func NewLogBook(limit int) *LogBook {
	if limit < 1 {
		limit = 1
	}
	return &LogBook{limit: limit}
}

// Append adds an entry and returns how many of the oldest entries were dropped
func (b *LogBook) Append(e LogEntry) int {
	b.entries = append(b.entries, e)
	drop := len(b.entries) - b.limit
	if drop <= 0 {
		return 0
	}
	// append reallocates with only the live tail, so the backing array stays bounded
	b.entries = b.entries[drop:]
	return drop
}

// Entries returns a copy of the entries, oldest first
func (b *LogBook) Entries() []LogEntry {
	out := make([]LogEntry, len(b.entries))
	copy(out, b.entries)
	return out
}

// Len returns the number of entries
func (b *LogBook) Len() int {
	return len(b.entries)
}

// Limit returns the maximum number of entries kept
func (b *LogBook) Limit() int {
	return b.limit
}

// SetLimit changes the limit, trimming the oldest entries if needed
func (b *LogBook) SetLimit(limit int) bool {
	if limit < 1 {
		limit = 1
	}
	b.limit = limit
	if len(b.entries) <= limit {
		return false
	}
	b.entries = append([]LogEntry(nil), b.entries[len(b.entries)-limit:]...)
	return true
}

// Clear removes all entries
func (b *LogBook) Clear() {
	b.entries = nil
}
