// Package pipeline orchestrates one compilation end to end: lex, parse,
// check, emit, reporting progress over a channel to internal/ui. Joy
// compiles a single file, so phases replace files as the unit of
// progress.
package pipeline

import (
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/eyelash/joy/internal/ast"
	"github.com/eyelash/joy/internal/diag"
	"github.com/eyelash/joy/internal/emitc"
	"github.com/eyelash/joy/internal/ir"
	"github.com/eyelash/joy/internal/lexer"
	"github.com/eyelash/joy/internal/parser"
	"github.com/eyelash/joy/internal/sema"
	"github.com/eyelash/joy/internal/source"
)

// Phase identifies one stage of the pipeline, in run order.
type Phase int

const (
	PhaseLex Phase = iota
	PhaseParse
	PhaseCheck
	PhaseEmit
)

func (p Phase) String() string {
	switch p {
	case PhaseLex:
		return "lex"
	case PhaseParse:
		return "parse"
	case PhaseCheck:
		return "check"
	case PhaseEmit:
		return "emit"
	}
	return "?"
}

// Status is a phase's progress state.
type Status int

const (
	StatusStarted Status = iota
	StatusDone
	StatusFailed
)

// Event is one progress notification. The pipeline goroutine is the sole
// writer; UI code only ever reads.
type Event struct {
	Phase  Phase
	Status Status
}

// Result is everything a caller needs after a run: the diagnostics, the
// instantiated program (nil if the semantic pass did not run or failed),
// and the emitted C source (empty if emission did not run).
type Result struct {
	Bag     *diag.Bag
	Files   *source.FileSet
	Program *ir.Program
	CSource string
}

// Options configures one Run.
type Options struct {
	SourcePath string
}

// Run executes the full pipeline synchronously, sending one Started/Done
// (or Failed) Event per phase to events if non-nil. It never blocks on
// events: sends are attempted only if the channel has room, so a slow or
// absent UI goroutine never stalls compilation.
func Run(opt Options, events chan<- Event) Result {
	bag := diag.NewBag()
	res := Result{Bag: bag}

	content, err := os.ReadFile(opt.SourcePath) // #nosec G304 -- path is the CLI's own positional argument
	if err != nil {
		bag.Error(opt.SourcePath, source.NoSpan, diag.UnknownCode, fmt.Sprintf("failed to read %q: %v", opt.SourcePath, err))
		return res
	}

	fs := source.NewFileSet()
	fid := fs.Add(opt.SourcePath, content)
	file := fs.Get(fid)
	res.Files = fs

	emit(events, PhaseLex, StatusStarted)
	tokens := lexer.New(file, bag).Tokenize()
	emit(events, PhaseLex, StatusDone)

	emit(events, PhaseParse, StatusStarted)
	var prog *ast.Program
	if bag.Len() == 0 {
		prog = parser.New(file, tokens, bag).ParseProgram()
		emit(events, PhaseParse, StatusDone)
	} else {
		emit(events, PhaseParse, StatusFailed)
	}

	emit(events, PhaseCheck, StatusStarted)
	var ip *ir.Program
	if prog != nil {
		ip = sema.Check(prog, bag)
	}
	if bag.HasErrors() {
		emit(events, PhaseCheck, StatusFailed)
		return res
	}
	emit(events, PhaseCheck, StatusDone)
	res.Program = ip

	emit(events, PhaseEmit, StatusStarted)
	res.CSource = emitc.Emit(ip)
	emit(events, PhaseEmit, StatusDone)

	return res
}

func emit(events chan<- Event, phase Phase, status Status) {
	if events == nil {
		return
	}
	select {
	case events <- Event{Phase: phase, Status: status}:
	default:
	}
}

// RunWithUI runs the pipeline on its own goroutine and joins it with the
// caller-supplied UI loop using an errgroup, returning once both have
// finished, with the UI loop's error if it had one. Neither goroutine
// cancels the other: the compilation always runs to completion.
func RunWithUI(opt Options, ui func(<-chan Event) error) (Result, error) {
	events := make(chan Event, 16)
	var res Result
	var g errgroup.Group
	g.Go(func() error {
		defer close(events)
		res = Run(opt, events)
		return nil
	})
	g.Go(func() error {
		return ui(events)
	})
	err := g.Wait()
	return res, err
}
