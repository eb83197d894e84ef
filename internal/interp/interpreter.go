package interp

import (
	"github.com/pkelchte/scm-core/internal/heap"
	"github.com/pkelchte/scm-core/internal/parser"
	"github.com/pkelchte/scm-core/internal/scmerr"
	"github.com/pkelchte/scm-core/internal/token"
	"github.com/rs/zerolog"
)

// Interpreter is the persistent-root-environment façade spec.md §6
// describes: Run tokenizes, parses, evaluates, serializes, and
// collects, in that order, once per call. It owns the Heap and holds
// the root Environment for its entire lifetime — there is no persisted
// state beyond that single environment, and a fresh Interpreter starts
// from a fresh root.
type Interpreter struct {
	heap *heap.Heap
	root *heap.Environment
	log  zerolog.Logger
}

// New returns an Interpreter with a fresh Heap, a root environment
// pre-populated with every primitive binding, and logger for GC/eval
// diagnostics (zerolog.Nop() if logger is the zero value).
func New(logger zerolog.Logger) *Interpreter {
	h := heap.New(logger)
	root := h.NewRootEnvironment()
	install(h, root)
	return &Interpreter{heap: h, root: root, log: logger}
}

// Run tokenizes, parses, and evaluates one line against the persistent
// root environment, returns its serialized `display` form, and triggers
// a collection cycle. Empty input is a RuntimeError ("Unable to
// evaluate"), matching original_source/scheme.cpp's Interpreter::Run.
func (in *Interpreter) Run(line string) (string, error) {
	tz := token.New(line)
	p := parser.New(in.heap, tz)

	end, err := tz.IsEnd()
	if err != nil {
		return "", err
	}
	if end {
		return "", scmerr.NewRuntime("Unable to evaluate")
	}

	expr, err := p.Read()
	if err != nil {
		return "", err
	}

	result, err := heap.Evaluate(in.heap, expr, in.root)
	if err != nil {
		return "", err
	}

	out, err := heap.SerializeExpr(result)
	if err != nil {
		return "", err
	}

	stats := in.heap.Collect(in.root)
	in.log.Debug().
		Str("line", line).
		Int("objects_before", stats.Before).
		Int("objects_after", stats.After).
		Int("swept", stats.Swept).
		Msg("interpreter run")

	return out, nil
}

// Close destroys every heap-allocated object, for interpreter shutdown.
func (in *Interpreter) Close() {
	in.heap.DestroyAll()
}

// Live reports the number of currently tracked heap objects, for tests.
func (in *Interpreter) Live() int { return in.heap.Live() }
