package model

import (
	"fmt"
	"testing"
)

func TestLogBook_AppendWithinLimit(t *testing.T) {
	book := NewLogBook(3)

	for i := 0; i < 3; i++ {
		if dropped := book.Append(NewInfoEntry("", fmt.Sprintf("line %d", i))); dropped != 0 {
			t.Errorf("Append %d should not drop entries", i)
		}
	}

	if book.Len() != 3 {
		t.Errorf("Expected 3 entries, got %d", book.Len())
	}
}

func TestLogBook_DropsOldest(t *testing.T) {
	book := NewLogBook(2)
	book.Append(NewInfoEntry("", "a"))
	book.Append(NewInfoEntry("", "b"))

	if dropped := book.Append(NewInfoEntry("", "c")); dropped != 1 {
		t.Errorf("Expected third append to drop one entry, dropped %d", dropped)
	}

	entries := book.Entries()
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if entries[0].Text != "b" || entries[1].Text != "c" {
		t.Errorf("Expected [b c], got [%s %s]", entries[0].Text, entries[1].Text)
	}
}

func TestLogBook_SetLimit(t *testing.T) {
	book := NewLogBook(10)
	for i := 0; i < 5; i++ {
		book.Append(NewInfoEntry("", fmt.Sprintf("%d", i)))
	}

	if !book.SetLimit(2) {
		t.Error("Shrinking below the current length should trim")
	}
	entries := book.Entries()
	if len(entries) != 2 || entries[0].Text != "3" || entries[1].Text != "4" {
		t.Errorf("Expected last two entries to survive, got %+v", entries)
	}

	if book.SetLimit(0); book.Limit() != 1 {
		t.Errorf("Limit should be clamped to 1, got %d", book.Limit())
	}
}

func TestLogBook_EntriesIsCopy(t *testing.T) {
	book := NewLogBook(5)
	book.Append(NewInfoEntry("", "original"))

	entries := book.Entries()
	entries[0].Text = "changed"

	if book.Entries()[0].Text != "original" {
		t.Error("Entries() must return a copy")
	}
}

func TestLogBook_Clear(t *testing.T) {
	book := NewLogBook(5)
	book.Append(NewInfoEntry("", "x"))
	book.Clear()

	if book.Len() != 0 {
		t.Errorf("Expected empty log after Clear, got %d", book.Len())
	}
}

func TestLogBook_AppendWhenFullKeepsWindow(t *testing.T) {
	book := NewLogBook(3)
	for i := 0; i < 1000; i++ {
		book.Append(NewInfoEntry("", fmt.Sprintf("%d", i)))
	}

	entries := book.Entries()
	if len(entries) != 3 || entries[0].Text != "997" || entries[2].Text != "999" {
		t.Errorf("Expected the last three entries, got %+v", entries)
	}
	if cap(book.entries) > 4*book.Limit() {
		t.Errorf("Backing array should stay bounded, cap %d", cap(book.entries))
	}
}
