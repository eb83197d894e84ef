package heap

// Symbol is an identifier. #t and #f double as the canonical boolean
// literals (see BoolSymbol and IsTruthy) — there is no separate boolean
// variant, which is why boolean? (internal/interp) accepts any symbol
// named #t/#f.
type Symbol struct {
	Name string
}

func (s *Symbol) Evaluate(h *Heap, env *Environment) (Value, error) {
	if s.Name == "#t" || s.Name == "#f" {
		return h.NewSymbol(s.Name), nil
	}
	return env.Resolve(s.Name)
}

func (s *Symbol) Serialize() (string, error) { return s.Name, nil }

func (s *Symbol) Clone(h *Heap) (Value, error) {
	return h.NewSymbol(s.Name), nil
}

func (s *Symbol) Children() []Value { return nil }
