package heap

import "github.com/pkelchte/scm-core/internal/scmerr"

// Environment is a name -> value scope frame with an optional parent.
// The root environment (no parent) holds every primitive binding plus
// user top-level definitions; closures capture a frame by reference and
// each call gets a fresh child frame (see Closure.Apply).
type Environment struct {
	Bindings map[string]Value
	Parent   *Environment
}

// Resolve walks the parent chain for name, innermost frame first.
func (e *Environment) Resolve(name string) (Value, error) {
	for cur := e; cur != nil; cur = cur.Parent {
		if v, ok := cur.Bindings[name]; ok {
			return v, nil
		}
	}
	return nil, scmerr.NewName("can't resolve this name: " + name)
}

// Define binds name in this exact frame, overwriting any prior binding.
func (e *Environment) Define(name string, v Value) {
	e.Bindings[name] = v
}

// Set walks the parent chain and updates the frame that already binds
// name. It fails with a NameError if no frame binds it.
func (e *Environment) Set(name string, v Value) error {
	for cur := e; cur != nil; cur = cur.Parent {
		if _, ok := cur.Bindings[name]; ok {
			cur.Bindings[name] = v
			return nil
		}
	}
	return scmerr.NewName("can't resolve this name: " + name)
}

func (e *Environment) Evaluate(h *Heap, env *Environment) (Value, error) {
	return nil, scmerr.NewRuntime("can't compute internal structure")
}

func (e *Environment) Serialize() (string, error) {
	return "", scmerr.NewRuntime("can't serialize an environment")
}

func (e *Environment) Clone(h *Heap) (Value, error) {
	return nil, scmerr.NewRuntime("can't clone an environment")
}

func (e *Environment) Children() []Value {
	children := make([]Value, 0, len(e.Bindings)+1)
	for _, v := range e.Bindings {
		children = append(children, v)
	}
	if e.Parent != nil {
		children = append(children, e.Parent)
	}
	return children
}
