package pipeline

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeSource(t *testing.T, src string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "main.joy")
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

func TestRunEmitsCSourceOnSuccess(t *testing.T) {
	path := writeSource(t, `func main() { }`)
	res := Run(Options{SourcePath: path}, nil)
	if res.Bag.HasErrors() {
		t.Fatalf("unexpected errors: %+v", res.Bag.Items())
	}
	if !strings.Contains(res.CSource, "int main(void)") {
		t.Errorf("missing entry wrapper in generated C:\n%s", res.CSource)
	}
	if res.Program == nil {
		t.Error("expected a non-nil instantiated program on success")
	}
}

func TestRunStopsBeforeEmitOnCheckError(t *testing.T) {
	path := writeSource(t, `func main() { undefined_function(); }`)
	res := Run(Options{SourcePath: path}, nil)
	if !res.Bag.HasErrors() {
		t.Fatal("expected a semantic error for a call to an undefined function")
	}
	if res.CSource != "" {
		t.Errorf("emitter should not run after a semantic error, got:\n%s", res.CSource)
	}
}

func TestRunReportsMissingFile(t *testing.T) {
	res := Run(Options{SourcePath: filepath.Join(t.TempDir(), "missing.joy")}, nil)
	if !res.Bag.HasErrors() {
		t.Fatal("expected an error for a missing source file")
	}
}

func TestRunEmitsEventsForEveryPhase(t *testing.T) {
	path := writeSource(t, `func main() { }`)
	events := make(chan Event, 16)
	Run(Options{SourcePath: path}, events)
	close(events)

	var phases []Phase
	for ev := range events {
		if ev.Status == StatusDone {
			phases = append(phases, ev.Phase)
		}
	}
	want := []Phase{PhaseLex, PhaseParse, PhaseCheck, PhaseEmit}
	if len(phases) != len(want) {
		t.Fatalf("got %d completed phases, want %d: %v", len(phases), len(want), phases)
	}
	for i, p := range want {
		if phases[i] != p {
			t.Errorf("phase %d = %s, want %s", i, phases[i], p)
		}
	}
}

func TestRunWithUIJoinsCompileAndUIGoroutines(t *testing.T) {
	path := writeSource(t, `func main() { }`)
	var seen int
	res, err := RunWithUI(Options{SourcePath: path}, func(events <-chan Event) error {
		for range events {
			seen++
		}
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Bag.HasErrors() {
		t.Fatalf("unexpected errors: %+v", res.Bag.Items())
	}
	if seen == 0 {
		t.Error("expected the UI callback to observe at least one event")
	}
}
