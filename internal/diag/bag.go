package diag

import "github.com/eyelash/joy/internal/source"

// Bag accumulates diagnostics for one compilation. The pipeline is
// error-tolerant locally (a failing subroutine reports and returns an
// absent sentinel, siblings still run) but error-final overall: the bag is
// consulted once at the end to decide whether the emitter runs at all.
type Bag struct {
	items []Diagnostic
}

// NewBag creates an empty diagnostics sink.
func NewBag() *Bag {
	return &Bag{}
}

// Error records an error-severity diagnostic.
func (b *Bag) Error(path string, span source.Span, code Code, msg string) {
	b.items = append(b.items, Diagnostic{Severity: SevError, Code: code, Path: path, Span: span, Message: msg})
}

// Warning records a warning-severity diagnostic.
func (b *Bag) Warning(path string, span source.Span, code Code, msg string) {
	b.items = append(b.items, Diagnostic{Severity: SevWarning, Code: code, Path: path, Span: span, Message: msg})
}

// HasErrors reports whether any error-severity diagnostic has been recorded.
func (b *Bag) HasErrors() bool {
	for i := range b.items {
		if b.items[i].Severity == SevError {
			return true
		}
	}
	return false
}

// Len returns the number of diagnostics recorded so far.
func (b *Bag) Len() int {
	return len(b.items)
}

// Items returns a read-only view of the recorded diagnostics in the order
// they were reported. Do not mutate the returned slice's backing array.
func (b *Bag) Items() []Diagnostic {
	return b.items
}
