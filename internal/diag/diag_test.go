package diag

import (
	"testing"

	"github.com/eyelash/joy/internal/source"
)

func TestBagHasErrorsOnlyAfterAnErrorIsRecorded(t *testing.T) {
	b := NewBag()
	if b.HasErrors() {
		t.Fatal("want HasErrors false on an empty bag")
	}
	b.Warning("f.joy", source.NoSpan, UnknownCode, "a warning")
	if b.HasErrors() {
		t.Fatal("want HasErrors false with only a warning recorded")
	}
	b.Error("f.joy", source.NoSpan, UnknownCode, "an error")
	if !b.HasErrors() {
		t.Fatal("want HasErrors true once an error is recorded")
	}
	if b.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", b.Len())
	}
}

func TestBagItemsPreservesReportOrder(t *testing.T) {
	b := NewBag()
	b.Error("f.joy", source.NoSpan, LexUnknownChar, "first")
	b.Error("f.joy", source.NoSpan, SynUnexpectedToken, "second")
	items := b.Items()
	if len(items) != 2 || items[0].Message != "first" || items[1].Message != "second" {
		t.Fatalf("Items() = %+v, want [first, second] in order", items)
	}
}

func TestSeverityString(t *testing.T) {
	if SevError.String() != "error" {
		t.Errorf("SevError.String() = %q, want %q", SevError.String(), "error")
	}
	if SevWarning.String() != "warning" {
		t.Errorf("SevWarning.String() = %q, want %q", SevWarning.String(), "warning")
	}
}
