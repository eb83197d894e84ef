package heap

import "github.com/pkelchte/scm-core/internal/scmerr"

// Pair is a mutable cons cell. Both Car and Cdr may be nil (the empty
// list) or any Value; set-car!/set-cdr! mutate them in place.
type Pair struct {
	Car Value
	Cdr Value
}

func (p *Pair) Evaluate(h *Heap, env *Environment) (Value, error) {
	if p.Car == nil {
		return nil, scmerr.NewRuntime("function is missing")
	}
	headVal, err := p.Car.Evaluate(h, env)
	if err != nil {
		return nil, err
	}
	fn, ok := headVal.(Function)
	if !ok {
		return nil, scmerr.NewRuntime("this expression can't be used as a function")
	}
	// Closures are applied without a clone: Closure.Apply already gives
	// each call a fresh frame. Primitives are cloned before application.
	if _, isClosure := fn.(*Closure); !isClosure {
		cloned, err := fn.Clone(h)
		if err != nil {
			return nil, err
		}
		clonedFn, ok := cloned.(Function)
		if !ok {
			return nil, scmerr.NewRuntime("this expression can't be used as a function")
		}
		fn = clonedFn
	}
	operands, err := ProperList(p.Cdr)
	if err != nil {
		return nil, err
	}
	return fn.Apply(h, env, operands)
}

func (p *Pair) Serialize() (string, error) {
	res := "("
	var cur Value = p
	first := true
	for cur != nil {
		cp, ok := cur.(*Pair)
		if !ok {
			res += " . "
			tail, err := cur.Serialize()
			if err != nil {
				return "", err
			}
			res += tail
			cur = nil
			break
		}
		if !first {
			res += " "
		}
		first = false
		elem, err := SerializeExpr(cp.Car)
		if err != nil {
			return "", err
		}
		res += elem
		cur = cp.Cdr
	}
	res += ")"
	return res, nil
}

// SerializeExpr renders v, treating a nil Value as "()".
func SerializeExpr(v Value) (string, error) {
	if v == nil {
		return "()", nil
	}
	return v.Serialize()
}

func (p *Pair) Clone(h *Heap) (Value, error) {
	return nil, scmerr.NewRuntime("can't clone a pair")
}

func (p *Pair) Children() []Value { return []Value{p.Car, p.Cdr} }

// RawList walks a Pair chain starting at v, returning the elements found
// in each car and the final non-Pair terminator (nil for a proper list).
// A nil v yields no elements and a nil terminator.
func RawList(v Value) ([]Value, Value) {
	var elems []Value
	cur := v
	for {
		p, ok := cur.(*Pair)
		if !ok {
			return elems, cur
		}
		elems = append(elems, p.Car)
		cur = p.Cdr
	}
}

// ProperList walks a Pair chain starting at v and returns its elements,
// failing if the chain is improper (a non-nil, non-Pair terminator).
func ProperList(v Value) ([]Value, error) {
	elems, tail := RawList(v)
	if tail != nil {
		return nil, scmerr.NewImproperList()
	}
	return elems, nil
}

// IsProperList reports whether v is nil or a proper list, without
// allocating or raising an error.
func IsProperList(v Value) bool {
	_, tail := RawList(v)
	return tail == nil
}

// MakeList builds a proper list Pair chain from elems, or nil for an
// empty slice.
func MakeList(h *Heap, elems []Value) Value {
	var head Value
	var tail *Pair
	for _, e := range elems {
		cell := h.NewPair(e, nil).(*Pair)
		if tail == nil {
			head = cell
		} else {
			tail.Cdr = cell
		}
		tail = cell
	}
	return head
}
