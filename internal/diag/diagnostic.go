package diag

import "github.com/eyelash/joy/internal/source"

// Diagnostic is one error or warning, tied to a source location.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Path     string
	Span     source.Span
	Message  string
}
