package ui

import (
	"fmt"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/ws-tester/internal/model"
)

func segmentTexts(lv *LogView) []string {
	var out []string
	for _, seg := range lv.text.Segments {
		if ts, ok := seg.(*widget.TextSegment); ok {
			out = append(out, ts.Text)
		}
	}
	return out
}

func TestLogView_TextEntries(t *testing.T) {
	test.NewApp()
	lv := NewLogView(100, NewLocalization())
	at := time.Date(2025, 1, 1, 12, 30, 45, 0, time.Local)

	lv.Append(model.LogEntry{Time: at, Direction: model.DirectionSend, Kind: model.KindText, Text: "hi"})
	lv.Append(model.LogEntry{Time: at, Direction: model.DirectionRecv, Kind: model.KindText, Text: "yo"})

	assert.Equal(t, []string{
		"12:30:45 ", "SEND", ": hi",
		"12:30:45 ", "RECV", ": yo",
	}, segmentTexts(lv))

	send := lv.text.Segments[1].(*widget.TextSegment)
	recv := lv.text.Segments[4].(*widget.TextSegment)
	assert.Equal(t, theme.ColorNameError, send.Style.ColorName)
	assert.Equal(t, theme.ColorNameSuccess, recv.Style.ColorName)
	assert.True(t, send.Style.Inline)

	body := lv.text.Segments[2].(*widget.TextSegment)
	assert.False(t, body.Style.Inline, "message segment must end the line")
}

func TestLogView_BinaryIsFlagged(t *testing.T) {
	test.NewApp()
	lv := NewLogView(100, NewLocalization())

	lv.Append(model.NewBinaryEntry("s", []byte{0xde, 0xad}))

	require.Len(t, lv.text.Segments, 3)
	tag := lv.text.Segments[1].(*widget.TextSegment)
	body := lv.text.Segments[2].(*widget.TextSegment)
	assert.Equal(t, theme.ColorNamePrimary, tag.Style.ColorName)
	assert.Equal(t, ": "+model.BinaryFlag, body.Text)
}

func TestLogView_InfoEntry(t *testing.T) {
	test.NewApp()
	lv := NewLogView(100, NewLocalization())

	lv.Append(model.NewInfoEntry("s", "Connected"))

	require.Len(t, lv.text.Segments, 2)
	notice := lv.text.Segments[1].(*widget.TextSegment)
	assert.Equal(t, "Connected", notice.Text)
	assert.True(t, notice.Style.TextStyle.Italic)
}

func TestLogView_LimitDropsOldest(t *testing.T) {
	test.NewApp()
	lv := NewLogView(2, NewLocalization())

	for i := 0; i < 3; i++ {
		lv.Append(model.NewInfoEntry("", fmt.Sprintf("line %d", i)))
	}

	assert.Equal(t, 2, lv.Len())
	texts := segmentTexts(lv)
	assert.Len(t, texts, 4)
	assert.Equal(t, "line 1", texts[1])
	assert.Equal(t, "line 2", texts[3])

	lv.SetLimit(1)
	assert.Equal(t, 1, lv.Len())
	assert.Len(t, lv.text.Segments, 2)
}

func TestLogView_FullLogKeepsSurvivingSegments(t *testing.T) {
	test.NewApp()
	lv := NewLogView(3, NewLocalization())

	lv.Append(model.NewInfoEntry("", "first"))
	lv.Append(model.NewTextEntry("", model.DirectionSend, "second"))
	lv.Append(model.NewInfoEntry("", "third"))
	survivor := lv.text.Segments[2]

	lv.Append(model.NewTextEntry("", model.DirectionRecv, "fourth"))

	assert.Equal(t, 3, lv.Len())
	assert.Len(t, lv.text.Segments, 3+2+3)
	assert.Same(t, survivor, lv.text.Segments[0])
	assert.Equal(t, []int{3, 2, 3}, lv.segCounts)

	texts := segmentTexts(lv)
	assert.Equal(t, ": second", texts[2])
	assert.Equal(t, ": fourth", texts[7])
}

func TestLogView_ClearAndRelabel(t *testing.T) {
	test.NewApp()
	l := NewLocalization()
	lv := NewLogView(10, l)

	lv.Append(model.NewTextEntry("", model.DirectionSend, "x"))
	l.SetLanguage("pt")
	lv.Relabel()
	assert.Equal(t, "ENVIO", lv.text.Segments[1].(*widget.TextSegment).Text)

	lv.Clear()
	assert.Zero(t, lv.Len())
	assert.Empty(t, lv.text.Segments)
}
