package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/ws-tester/internal/model"
)

// LogView renders the scrollback as rich text: a bold timestamp, then either
// an italic notice or a colored SEND/RECV tag followed by the message.
type LogView struct {
	book         *model.LogBook
	segCounts    []int // segments per entry in book, oldest first
	text         *widget.RichText
	scroll       *container.Scroll
	localization *Localization
}

// NewLogView creates a log view keeping at most limit entries
func NewLogView(limit int, localization *Localization) *LogView {
	lv := &LogView{
		book:         model.NewLogBook(limit),
		text:         widget.NewRichText(),
		localization: localization,
	}
	lv.text.Wrapping = fyne.TextWrapWord
	lv.scroll = container.NewVScroll(lv.text)
	lv.scroll.SetMinSize(fyne.NewSize(0, LogMinHeight))
	return lv
}

// Container returns the widget to place in the window
func (lv *LogView) Container() fyne.CanvasObject {
	return lv.scroll
}

// Append adds an entry and scrolls to it. Entries pushed out of the
// scrollback lose their leading segments; the rest are kept as they are.
func (lv *LogView) Append(e model.LogEntry) {
	if dropped := lv.book.Append(e); dropped > 0 {
		cut := 0
		for _, n := range lv.segCounts[:dropped] {
			cut += n
		}
		lv.text.Segments = lv.text.Segments[cut:]
		lv.segCounts = lv.segCounts[dropped:]
	}

	segments := lv.segments(e)
	lv.text.Segments = append(lv.text.Segments, segments...)
	lv.segCounts = append(lv.segCounts, len(segments))

	lv.text.Refresh()
	lv.scroll.ScrollToBottom()
}

// Clear empties the log
func (lv *LogView) Clear() {
	lv.book.Clear()
	lv.rebuild()
	lv.text.Refresh()
}

// SetLimit changes the number of entries kept
func (lv *LogView) SetLimit(limit int) {
	if lv.book.SetLimit(limit) {
		lv.rebuild()
		lv.text.Refresh()
	}
}

// Entries returns the entries currently shown, oldest first
func (lv *LogView) Entries() []model.LogEntry {
	return lv.book.Entries()
}

// Len returns the number of entries shown
func (lv *LogView) Len() int {
	return lv.book.Len()
}

// Relabel re-renders all entries, e.g. after a language change
func (lv *LogView) Relabel() {
	lv.rebuild()
	lv.text.Refresh()
}

func (lv *LogView) rebuild() {
	entries := lv.book.Entries()
	segments := make([]widget.RichTextSegment, 0, len(entries)*3)
	counts := make([]int, 0, len(entries))
	for _, e := range entries {
		segs := lv.segments(e)
		segments = append(segments, segs...)
		counts = append(counts, len(segs))
	}
	lv.text.Segments = segments
	lv.segCounts = counts
}

// segments renders one entry; the last segment ends the line
func (lv *LogView) segments(e model.LogEntry) []widget.RichTextSegment {
	stamp := &widget.TextSegment{
		Text:  e.TimeString() + " ",
		Style: widget.RichTextStyle{Inline: true, TextStyle: fyne.TextStyle{Bold: true}},
	}

	if e.IsInfo() {
		return []widget.RichTextSegment{
			stamp,
			&widget.TextSegment{
				Text:  e.Text,
				Style: widget.RichTextStyle{TextStyle: fyne.TextStyle{Italic: true}},
			},
		}
	}

	return []widget.RichTextSegment{
		stamp,
		&widget.TextSegment{
			Text:  lv.tag(e.Direction),
			Style: widget.RichTextStyle{Inline: true, ColorName: tagColor(e), TextStyle: fyne.TextStyle{Bold: true}},
		},
		&widget.TextSegment{
			Text:  ": " + e.DisplayText(),
			Style: widget.RichTextStyle{TextStyle: fyne.TextStyle{Monospace: true}},
		},
	}
}

func (lv *LogView) tag(dir model.Direction) string {
	switch dir {
	case model.DirectionSend:
		return lv.localization.GetText(KeySendTag)
	case model.DirectionRecv:
		return lv.localization.GetText(KeyRecvTag)
	}
	return string(dir)
}

// tagColor: red for sent, green for received text, blue for received binary
func tagColor(e model.LogEntry) fyne.ThemeColorName {
	switch {
	case e.Direction == model.DirectionSend:
		return theme.ColorNameError
	case e.Kind == model.KindBinary:
		return theme.ColorNamePrimary
	default:
		return theme.ColorNameSuccess
	}
}
