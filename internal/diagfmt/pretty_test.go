package diagfmt

import (
	"strings"
	"testing"

	"github.com/eyelash/joy/internal/diag"
	"github.com/eyelash/joy/internal/source"
)

func newFS(t *testing.T, content string) (*source.FileSet, source.FileID) {
	t.Helper()
	fs := source.NewFileSet()
	return fs, fs.Add("t.joy", []byte(content))
}

func TestRenderIncludesLocationAndMessage(t *testing.T) {
	src := "func main() { undefined(); }\n"
	fs, fid := newFS(t, src)
	span := source.Span{File: fid, Start: 14, End: 23}
	items := []diag.Diagnostic{{
		Severity: diag.SevError,
		Code:     diag.ErrNoMatchingFunction,
		Path:     "t.joy",
		Span:     span,
		Message:  `no matching function "undefined" found`,
	}}

	out := Render(fs, items, Options{Color: false})
	if !strings.Contains(out, "t.joy:1:15:") {
		t.Errorf("missing location prefix:\n%s", out)
	}
	if !strings.Contains(out, `no matching function "undefined" found`) {
		t.Errorf("missing message:\n%s", out)
	}
	if !strings.Contains(out, src[:len(src)-1]) {
		t.Errorf("missing source snippet:\n%s", out)
	}
}

func TestRenderCaretUnderlinesTheSpan(t *testing.T) {
	fs, fid := newFS(t, "let x: Int = y;\n")
	span := source.Span{File: fid, Start: 13, End: 14}
	items := []diag.Diagnostic{{
		Severity: diag.SevError,
		Code:     diag.ErrUndefinedVariable,
		Path:     "t.joy",
		Span:     span,
		Message:  `undefined variable "y"`,
	}}

	out := Render(fs, items, Options{})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("want 3 lines (location, snippet, caret), got %d: %q", len(lines), out)
	}
	caretLine := lines[2]
	if !strings.Contains(caretLine, "^") {
		t.Errorf("caret line has no caret: %q", caretLine)
	}
	if strings.Index(caretLine, "^") != 13+2 {
		t.Errorf("caret at column %d, want %d: %q", strings.Index(caretLine, "^"), 13+2, caretLine)
	}
}

func TestRenderTruncatesAtMaxDiagnostics(t *testing.T) {
	fs, fid := newFS(t, "func main() { }\n")
	var items []diag.Diagnostic
	for i := 0; i < 5; i++ {
		items = append(items, diag.Diagnostic{
			Severity: diag.SevError,
			Code:     diag.ErrUnsupportedConstruct,
			Path:     "t.joy",
			Span:     source.Span{File: fid, Start: 0, End: 1},
			Message:  "boom",
		})
	}

	out := Render(fs, items, Options{MaxDiagnostics: 2})
	if strings.Count(out, "boom") != 2 {
		t.Errorf("want 2 rendered diagnostics, got output:\n%s", out)
	}
	if !strings.Contains(out, "3 more diagnostic(s) suppressed") {
		t.Errorf("missing truncation notice:\n%s", out)
	}
}

func TestRenderSkipsSnippetForNoSpan(t *testing.T) {
	fs, _ := newFS(t, "func main() { }\n")
	items := []diag.Diagnostic{{
		Severity: diag.SevError,
		Code:     diag.UnknownCode,
		Path:     "t.joy",
		Span:     source.NoSpan,
		Message:  "failed to read file",
	}}
	out := Render(fs, items, Options{})
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected a single line for a spanless diagnostic, got:\n%s", out)
	}
}
