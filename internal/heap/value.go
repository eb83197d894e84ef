// Package heap implements the tagged heap object model (§3-4.1 of the
// interpreter's design) and the mark-sweep collector that tolerates the
// reference cycles closures introduce when a defining environment binds
// a name back to the closure that captured it.
package heap

// Value is a heap-owned runtime object: a Number, Symbol, Pair,
// Environment, PrimitiveFunction, or Closure. A nil Value denotes the
// empty list / absent reference ("nil" in spec terms) — it is never a
// heap object in its own right.
type Value interface {
	// Evaluate computes this value's result in env, allocating any new
	// objects through h.
	Evaluate(h *Heap, env *Environment) (Value, error)
	// Serialize renders the value in `display` form.
	Serialize() (string, error)
	// Clone produces a fresh heap copy of this value, or an error if the
	// variant cannot be cloned (Pair, Environment).
	Clone(h *Heap) (Value, error)
	// Children returns this value's direct outgoing references, for GC
	// tracing. Nil entries (representing the empty list) are skipped by
	// the caller.
	Children() []Value
}

// Function is a callable Value: a PrimitiveFunction or a Closure. Both
// receive their operand expressions unevaluated and decide for
// themselves when (and whether) to evaluate them — this is how special
// forms like if and quote share a call path with ordinary functions.
type Function interface {
	Value
	Apply(h *Heap, env *Environment, args []Value) (Value, error)
}

// IsTruthy reports whether v is truthy: anything other than the symbol
// #f, including nil (the empty list), is truthy.
func IsTruthy(v Value) bool {
	if s, ok := v.(*Symbol); ok {
		return s.Name != "#f"
	}
	return true
}

// BoolSymbol returns the canonical #t or #f symbol value for b, freshly
// allocated on h (booleans are not interned; see SPEC_FULL.md's Open
// Question resolutions).
func BoolSymbol(h *Heap, b bool) Value {
	if b {
		return h.NewSymbol("#t")
	}
	return h.NewSymbol("#f")
}
