package token

import "github.com/eyelash/joy/internal/source"

// Token is a single source token with its location and literal text.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}
