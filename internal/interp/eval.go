// Package interp wires the primitive table into a root heap.Environment
// and exposes the Interpreter façade spec.md §6 describes. The recursive
// eval/apply dance itself lives on heap.Value.Evaluate and
// heap.Function.Apply (internal/heap) — this package supplies the
// primitive bindings and the top-level Run entry point.
package interp

import "github.com/pkelchte/scm-core/internal/heap"

// evaluateAll evaluates exprs left-to-right in env, returning their
// values in order.
func evaluateAll(h *heap.Heap, env *heap.Environment, exprs []heap.Value) ([]heap.Value, error) {
	out := make([]heap.Value, len(exprs))
	for i, e := range exprs {
		v, err := heap.Evaluate(h, e, env)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
