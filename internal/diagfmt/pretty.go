// Package diagfmt renders colourised, human-readable diagnostic output
// with source snippets, over a flat severity/code/span/message shape.
package diagfmt

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/width"

	"github.com/eyelash/joy/internal/diag"
	"github.com/eyelash/joy/internal/source"
)

var (
	errorColor = color.New(color.FgRed, color.Bold)
	warnColor  = color.New(color.FgYellow, color.Bold)
)

// Options controls rendering.
type Options struct {
	Color          bool
	MaxDiagnostics int // 0 means unlimited
}

// Render formats every diagnostic in items against the source held in fs,
// one diagnostic per paragraph: location, severity-coloured message, and a
// one-line snippet with a caret underline under the offending span.
func Render(fs *source.FileSet, items []diag.Diagnostic, opt Options) string {
	var b strings.Builder
	n := len(items)
	if opt.MaxDiagnostics > 0 && n > opt.MaxDiagnostics {
		n = opt.MaxDiagnostics
	}
	for _, d := range items[:n] {
		renderOne(&b, fs, d, opt.Color)
	}
	if opt.MaxDiagnostics > 0 && len(items) > opt.MaxDiagnostics {
		fmt.Fprintf(&b, "... %d more diagnostic(s) suppressed\n", len(items)-opt.MaxDiagnostics)
	}
	return b.String()
}

func renderOne(b *strings.Builder, fs *source.FileSet, d diag.Diagnostic, useColor bool) {
	start, _ := fs.Resolve(d.Span)
	sev := severityText(d.Severity, useColor)
	fmt.Fprintf(b, "%s:%d:%d: %s [%d]: %s\n", d.Path, start.Line, start.Col, sev, d.Code, d.Message)

	if d.Span == source.NoSpan {
		return
	}
	file := fs.Get(d.Span.File)
	line := file.GetLine(start.Line)
	if line == "" {
		return
	}
	fmt.Fprintf(b, "  %s\n", width.Fold.String(line))

	prefixLen := min(int(start.Col)-1, len(line))
	caretCol := runeWidthUpTo(line, utf8.RuneCountInString(line[:prefixLen]))
	underlineLen := int(d.Span.Len())
	fmt.Fprintf(b, "  %s%s\n", strings.Repeat(" ", caretCol), strings.Repeat("^", max(1, underlineLen)))
}

// runeWidthUpTo returns the terminal column width of line's first n runes,
// normalising fullwidth/halfwidth forms first (golang.org/x/text/width) so
// go-runewidth measures the form that will actually be printed.
func runeWidthUpTo(line string, n int) int {
	folded := width.Fold.String(line)
	runes := []rune(folded)
	if n > len(runes) {
		n = len(runes)
	}
	return runewidth.StringWidth(string(runes[:n]))
}

func severityText(sev diag.Severity, useColor bool) string {
	label := sev.String()
	if !useColor {
		return label
	}
	switch sev {
	case diag.SevError:
		return errorColor.Sprint(label)
	case diag.SevWarning:
		return warnColor.Sprint(label)
	}
	return label
}
