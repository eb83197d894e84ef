package heap

import "strconv"

// Number is a signed 64-bit integer literal, immutable after construction.
type Number struct {
	Value int64
}

func (n *Number) Evaluate(h *Heap, env *Environment) (Value, error) { return n, nil }

func (n *Number) Serialize() (string, error) {
	return strconv.FormatInt(n.Value, 10), nil
}

func (n *Number) Clone(h *Heap) (Value, error) {
	return h.NewNumber(n.Value), nil
}

func (n *Number) Children() []Value { return nil }
