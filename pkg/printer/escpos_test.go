package printer

import (
	"bytes"
	"testing"
)

func TestDocumentPair(t *testing.T) {
	t.Run("right-aligns the value", func(t *testing.T) {
		doc := NewDocument(16)
		doc.Pair("TOTAL", "Rs. 40")

		want := "TOTAL     Rs. 40\n"
		got := string(doc.Bytes()[2:]) // skip the init sequence
		if got != want {
			t.Errorf("Pair output %q, want %q", got, want)
		}
	})

	t.Run("keeps at least one space when the line overflows", func(t *testing.T) {
		doc := NewDocument(8)
		doc.Pair("LONGLABEL", "VALUE")

		got := string(doc.Bytes()[2:])
		if got != "LONGLABEL VALUE\n" {
			t.Errorf("overflow Pair output %q", got)
		}
	})
}

func TestDocumentSeparator(t *testing.T) {
	doc := NewDocument(10)
	doc.Separator()

	if !bytes.Contains(doc.Bytes(), []byte("----------\n")) {
		t.Errorf("expected full-width separator, got %q", doc.Bytes())
	}
}

func TestDocumentCut(t *testing.T) {
	doc := NewDocument(32)
	doc.Cut()

	if !bytes.HasSuffix(doc.Bytes(), []byte{GS, 'V', 1}) {
		t.Errorf("expected cut command at end, got %q", doc.Bytes())
	}
}

func TestMoney(t *testing.T) {
	if got := Money(40); got != "Rs. 40" {
		t.Errorf("Money(40) = %q", got)
	}
}
