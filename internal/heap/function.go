package heap

import "github.com/pkelchte/scm-core/internal/scmerr"

// PrimitiveFunction is a built-in callable. It receives its operand
// expressions unevaluated along with the calling environment and decides
// for itself when to evaluate them — this is how special forms (if,
// quote, define, lambda, and, or, set!) share a call path with ordinary
// functions like + or cons.
type PrimitiveFunction struct {
	Name string
	Fn   func(h *Heap, env *Environment, args []Value) (Value, error)
}

func (p *PrimitiveFunction) Evaluate(h *Heap, env *Environment) (Value, error) {
	return nil, scmerr.NewRuntime("can't compute a function")
}

func (p *PrimitiveFunction) Serialize() (string, error) { return "Just a function", nil }

func (p *PrimitiveFunction) Clone(h *Heap) (Value, error) {
	return h.NewPrimitive(p.Name, p.Fn), nil
}

func (p *PrimitiveFunction) Children() []Value { return nil }

func (p *PrimitiveFunction) Apply(h *Heap, env *Environment, args []Value) (Value, error) {
	return p.Fn(h, env, args)
}

// Closure is a user-defined lambda: a captured defining environment, its
// parameter names, and its body expressions. Each application binds the
// parameters in a fresh child frame parented at CapturedEnv — the
// source's "clone before apply" step exists precisely to guarantee a
// fresh frame per call so in-progress recursive invocations don't clobber
// each other's bindings; we get the same guarantee directly in Apply
// rather than by literally cloning (see DESIGN.md).
type Closure struct {
	CapturedEnv *Environment
	Params      []string
	Body        []Value
}

func (c *Closure) Evaluate(h *Heap, env *Environment) (Value, error) {
	return nil, scmerr.NewRuntime("can't compute a function")
}

func (c *Closure) Serialize() (string, error) { return "Just a function", nil }

func (c *Closure) Clone(h *Heap) (Value, error) {
	return h.NewClosure(c.CapturedEnv, c.Params, c.Body), nil
}

func (c *Closure) Children() []Value {
	children := make([]Value, 0, len(c.Body)+1)
	children = append(children, c.CapturedEnv)
	children = append(children, c.Body...)
	return children
}

func (c *Closure) Apply(h *Heap, env *Environment, args []Value) (Value, error) {
	if len(args) != len(c.Params) {
		return nil, scmerr.NewRuntime(scmerr.WrongArgs)
	}
	values := make([]Value, len(args))
	for i, a := range args {
		v, err := Evaluate(h, a, env)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	callEnv := h.NewChildEnvironment(c.CapturedEnv)
	for i, name := range c.Params {
		callEnv.Define(name, values[i])
	}
	var res Value
	for _, expr := range c.Body {
		v, err := Evaluate(h, expr, callEnv)
		if err != nil {
			return nil, err
		}
		res = v
	}
	return res, nil
}
