package heap

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Heap owns every allocated Value and reclaims unreachable ones with a
// cycle-safe mark-sweep collector. It is single-owner and single-threaded:
// collection never races a mutator because both run on the same
// goroutine at well-defined points.
type Heap struct {
	objects map[Value]struct{}
	log     zerolog.Logger
}

// New returns an empty Heap. A zerolog.Nop() logger is used if logger is
// the zero value.
func New(logger zerolog.Logger) *Heap {
	return &Heap{objects: make(map[Value]struct{}), log: logger}
}

// allocate registers v in the object set and returns it. O(1) amortized.
func (h *Heap) allocate(v Value) Value {
	h.objects[v] = struct{}{}
	h.log.Debug().
		Str("obj", uuid.NewString()).
		Str("kind", kindOf(v)).
		Int("live", len(h.objects)).
		Msg("heap allocate")
	return v
}

func kindOf(v Value) string {
	switch v.(type) {
	case *Number:
		return "Number"
	case *Symbol:
		return "Symbol"
	case *Pair:
		return "Pair"
	case *Environment:
		return "Environment"
	case *PrimitiveFunction:
		return "PrimitiveFunction"
	case *Closure:
		return "Closure"
	default:
		return "Unknown"
	}
}

// NewNumber allocates a Number.
func (h *Heap) NewNumber(v int64) Value { return h.allocate(&Number{Value: v}) }

// NewSymbol allocates a Symbol.
func (h *Heap) NewSymbol(name string) Value { return h.allocate(&Symbol{Name: name}) }

// NewPair allocates a Pair with the given car/cdr.
func (h *Heap) NewPair(car, cdr Value) Value { return h.allocate(&Pair{Car: car, Cdr: cdr}) }

// NewRootEnvironment allocates a parentless Environment (the interpreter's
// root, and GC root set).
func (h *Heap) NewRootEnvironment() *Environment {
	env := &Environment{Bindings: make(map[string]Value)}
	h.allocate(env)
	return env
}

// NewChildEnvironment allocates an Environment whose parent is fixed at
// construction to parent.
func (h *Heap) NewChildEnvironment(parent *Environment) *Environment {
	env := &Environment{Bindings: make(map[string]Value), Parent: parent}
	h.allocate(env)
	return env
}

// NewPrimitive allocates a PrimitiveFunction.
func (h *Heap) NewPrimitive(name string, fn func(h *Heap, env *Environment, args []Value) (Value, error)) Value {
	return h.allocate(&PrimitiveFunction{Name: name, Fn: fn})
}

// NewClosure allocates a Closure capturing env by reference.
func (h *Heap) NewClosure(capturedEnv *Environment, params []string, body []Value) Value {
	return h.allocate(&Closure{CapturedEnv: capturedEnv, Params: params, Body: body})
}

// Evaluate computes v in env, treating a nil Value (the empty list) as
// self-evaluating to nil.
func Evaluate(h *Heap, v Value, env *Environment) (Value, error) {
	if v == nil {
		return nil, nil
	}
	return v.Evaluate(h, env)
}

// CollectStats reports the result of a collection cycle, surfaced only
// through logging and tests.
type CollectStats struct {
	Before int
	After  int
	Swept  int
}

// Collect performs mark-sweep from root: every object reachable by
// following Pair car/cdr, Environment bindings/parent, and Closure
// captured-env/body edges survives; everything else is destroyed and
// removed from the object set. Marking is cycle-safe — an already-marked
// object is never revisited, so the mutual reference a recursive closure
// forms with its defining environment terminates normally.
func (h *Heap) Collect(root *Environment) CollectStats {
	before := len(h.objects)
	marked := make(map[Value]struct{}, before)
	if root != nil {
		markValue(root, marked)
	}
	swept := 0
	for obj := range h.objects {
		if _, ok := marked[obj]; !ok {
			delete(h.objects, obj)
			swept++
		}
	}
	stats := CollectStats{Before: before, After: len(h.objects), Swept: swept}
	h.log.Debug().
		Int("objects_before", stats.Before).
		Int("objects_after", stats.After).
		Int("swept", stats.Swept).
		Msg("heap collect")
	return stats
}

func markValue(v Value, marked map[Value]struct{}) {
	if v == nil {
		return
	}
	if _, ok := marked[v]; ok {
		return
	}
	marked[v] = struct{}{}
	for _, child := range v.Children() {
		markValue(child, marked)
	}
}

// DestroyAll unconditionally reclaims every tracked object, for
// interpreter shutdown.
func (h *Heap) DestroyAll() {
	h.log.Debug().Int("objects", len(h.objects)).Msg("heap destroy all")
	h.objects = make(map[Value]struct{})
}

// Live reports the number of currently tracked objects, for tests.
func (h *Heap) Live() int { return len(h.objects) }
