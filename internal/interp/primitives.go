package interp

import (
	"github.com/pkelchte/scm-core/internal/heap"
	"github.com/pkelchte/scm-core/internal/scmerr"
)

// install registers every primitive binding spec.md §4.4.1 lists into
// root: predicates, numeric comparison, arithmetic, logic, pairs/lists,
// and the syntactic special forms (quote, if, define, set!, set-car!,
// set-cdr!, lambda).
func install(h *heap.Heap, root *heap.Environment) {
	prim := func(name string, fn func(h *heap.Heap, env *heap.Environment, args []heap.Value) (heap.Value, error)) {
		root.Define(name, h.NewPrimitive(name, fn))
	}

	prim("number?", wrapPredicate(isNumber))
	prim("symbol?", wrapPredicate(isSymbol))
	prim("pair?", wrapPredicate(isPair))
	prim("null?", wrapPredicate(isNull))
	prim("boolean?", wrapPredicate(isBoolean))
	prim("list?", funcIsList)

	prim("=", numericChain(func(a, b int64) bool { return a == b }))
	prim("<", numericChain(func(a, b int64) bool { return a < b }))
	prim(">", numericChain(func(a, b int64) bool { return a > b }))
	prim("<=", numericChain(func(a, b int64) bool { return a <= b }))
	prim(">=", numericChain(func(a, b int64) bool { return a >= b }))

	prim("+", funcAdd)
	prim("-", funcSub)
	prim("*", funcMul)
	prim("/", funcDiv)
	prim("min", funcMin)
	prim("max", funcMax)
	prim("abs", funcAbs)

	prim("quote", funcQuote)
	prim("not", funcNot)
	prim("and", funcAnd)
	prim("or", funcOr)

	prim("cons", funcCons)
	prim("car", funcCar)
	prim("cdr", funcCdr)
	prim("list", funcList)
	prim("list-ref", funcListRef)
	prim("list-tail", funcListTail)

	prim("if", funcIf)
	prim("define", funcDefine)
	prim("set!", funcSet)
	prim("set-car!", funcSetCar)
	prim("set-cdr!", funcSetCdr)
	prim("lambda", funcLambda)
}

// -- predicates ---------------------------------------------------------

func wrapPredicate(pred func(v heap.Value) bool) func(*heap.Heap, *heap.Environment, []heap.Value) (heap.Value, error) {
	return func(h *heap.Heap, env *heap.Environment, args []heap.Value) (heap.Value, error) {
		vals, err := evaluateAll(h, env, args)
		if err != nil {
			return nil, err
		}
		if len(vals) != 1 {
			return nil, scmerr.NewRuntime(scmerr.WrongArgs)
		}
		return heap.BoolSymbol(h, pred(vals[0])), nil
	}
}

func isNumber(v heap.Value) bool {
	_, ok := v.(*heap.Number)
	return ok
}

func isSymbol(v heap.Value) bool {
	_, ok := v.(*heap.Symbol)
	return ok
}

// isPair uses the standard definition: true for any non-nil Pair,
// proper or improper. spec.md's original narrower rule ("2 elements with
// a non-nil tail, or 3 elements with a nil tail") is flagged as a latent
// defect and explicitly left to the implementation's discretion; this
// diverges from it on purpose (see DESIGN.md).
func isPair(v heap.Value) bool {
	_, ok := v.(*heap.Pair)
	return ok
}

func isNull(v heap.Value) bool { return v == nil }

// isBoolean is true for any symbol literally named #t or #f, not a
// distinct boolean type — this peculiarity of the source is preserved
// as specified.
func isBoolean(v heap.Value) bool {
	s, ok := v.(*heap.Symbol)
	return ok && (s.Name == "#t" || s.Name == "#f")
}

func funcIsList(h *heap.Heap, env *heap.Environment, args []heap.Value) (heap.Value, error) {
	vals, err := evaluateAll(h, env, args)
	if err != nil {
		return nil, err
	}
	if len(vals) != 1 {
		return nil, scmerr.NewRuntime(scmerr.WrongArgs)
	}
	// list? probes for properness without raising: per spec.md §7 it is
	// the one primitive that swallows an improper-list condition instead
	// of propagating it as a RuntimeError.
	return heap.BoolSymbol(h, heap.IsProperList(vals[0])), nil
}

// -- numeric comparison ---------------------------------------------------

func toNumbers(vals []heap.Value) ([]int64, error) {
	out := make([]int64, len(vals))
	for i, v := range vals {
		n, ok := v.(*heap.Number)
		if !ok {
			return nil, scmerr.NewRuntime(scmerr.WrongArgs)
		}
		out[i] = n.Value
	}
	return out, nil
}

// numericChain builds a variadic, chained comparison primitive: all
// arguments must be Numbers; zero or one argument yields #t.
func numericChain(cmp func(a, b int64) bool) func(*heap.Heap, *heap.Environment, []heap.Value) (heap.Value, error) {
	return func(h *heap.Heap, env *heap.Environment, args []heap.Value) (heap.Value, error) {
		vals, err := evaluateAll(h, env, args)
		if err != nil {
			return nil, err
		}
		nums, err := toNumbers(vals)
		if err != nil {
			return nil, err
		}
		for i := 0; i+1 < len(nums); i++ {
			if !cmp(nums[i], nums[i+1]) {
				return heap.BoolSymbol(h, false), nil
			}
		}
		return heap.BoolSymbol(h, true), nil
	}
}

// -- arithmetic -----------------------------------------------------------

func funcAdd(h *heap.Heap, env *heap.Environment, args []heap.Value) (heap.Value, error) {
	vals, err := evaluateAll(h, env, args)
	if err != nil {
		return nil, err
	}
	nums, err := toNumbers(vals)
	if err != nil {
		return nil, err
	}
	var res int64
	for _, n := range nums {
		res += n
	}
	return h.NewNumber(res), nil
}

func funcMul(h *heap.Heap, env *heap.Environment, args []heap.Value) (heap.Value, error) {
	vals, err := evaluateAll(h, env, args)
	if err != nil {
		return nil, err
	}
	nums, err := toNumbers(vals)
	if err != nil {
		return nil, err
	}
	res := int64(1)
	for _, n := range nums {
		res *= n
	}
	return h.NewNumber(res), nil
}

func funcSub(h *heap.Heap, env *heap.Environment, args []heap.Value) (heap.Value, error) {
	vals, err := evaluateAll(h, env, args)
	if err != nil {
		return nil, err
	}
	nums, err := toNumbers(vals)
	if err != nil {
		return nil, err
	}
	if len(nums) < 2 {
		return nil, scmerr.NewRuntime(scmerr.WrongArgs)
	}
	res := nums[0]
	for _, n := range nums[1:] {
		res -= n
	}
	return h.NewNumber(res), nil
}

func funcDiv(h *heap.Heap, env *heap.Environment, args []heap.Value) (heap.Value, error) {
	vals, err := evaluateAll(h, env, args)
	if err != nil {
		return nil, err
	}
	nums, err := toNumbers(vals)
	if err != nil {
		return nil, err
	}
	if len(nums) < 2 {
		return nil, scmerr.NewRuntime(scmerr.WrongArgs)
	}
	res := nums[0]
	for _, n := range nums[1:] {
		if n == 0 {
			return nil, scmerr.NewRuntime("division by zero")
		}
		res /= n
	}
	return h.NewNumber(res), nil
}

func funcMin(h *heap.Heap, env *heap.Environment, args []heap.Value) (heap.Value, error) {
	vals, err := evaluateAll(h, env, args)
	if err != nil {
		return nil, err
	}
	nums, err := toNumbers(vals)
	if err != nil {
		return nil, err
	}
	if len(nums) < 1 {
		return nil, scmerr.NewRuntime(scmerr.WrongArgs)
	}
	res := nums[0]
	for _, n := range nums[1:] {
		if n < res {
			res = n
		}
	}
	return h.NewNumber(res), nil
}

func funcMax(h *heap.Heap, env *heap.Environment, args []heap.Value) (heap.Value, error) {
	vals, err := evaluateAll(h, env, args)
	if err != nil {
		return nil, err
	}
	nums, err := toNumbers(vals)
	if err != nil {
		return nil, err
	}
	if len(nums) < 1 {
		return nil, scmerr.NewRuntime(scmerr.WrongArgs)
	}
	res := nums[0]
	for _, n := range nums[1:] {
		if n > res {
			res = n
		}
	}
	return h.NewNumber(res), nil
}

func funcAbs(h *heap.Heap, env *heap.Environment, args []heap.Value) (heap.Value, error) {
	vals, err := evaluateAll(h, env, args)
	if err != nil {
		return nil, err
	}
	nums, err := toNumbers(vals)
	if err != nil {
		return nil, err
	}
	if len(nums) != 1 {
		return nil, scmerr.NewRuntime(scmerr.WrongArgs)
	}
	n := nums[0]
	if n < 0 {
		n = -n
	}
	return h.NewNumber(n), nil
}

// -- logic ------------------------------------------------------------

// funcQuote's own arity check is a RuntimeError, not a SyntaxError: §7
// lists only if/define/lambda/set!/set-car!/set-cdr! as the syntactic
// primitives whose bad arity is a SyntaxError, matching
// internal_funcs.cpp::FuncQuote's CheckAndThrow<RuntimeError>.
func funcQuote(h *heap.Heap, env *heap.Environment, args []heap.Value) (heap.Value, error) {
	if len(args) != 1 {
		return nil, scmerr.NewRuntime(scmerr.WrongArgs)
	}
	return args[0], nil
}

func funcNot(h *heap.Heap, env *heap.Environment, args []heap.Value) (heap.Value, error) {
	vals, err := evaluateAll(h, env, args)
	if err != nil {
		return nil, err
	}
	if len(vals) != 1 {
		return nil, scmerr.NewRuntime(scmerr.WrongArgs)
	}
	return heap.BoolSymbol(h, !heap.IsTruthy(vals[0])), nil
}

// funcAnd evaluates operands left-to-right, stopping (short-circuiting)
// at the first falsy value. Operands past the decisive one are never
// evaluated, so their side effects (e.g. set!) must not occur.
func funcAnd(h *heap.Heap, env *heap.Environment, args []heap.Value) (heap.Value, error) {
	if len(args) == 0 {
		return heap.BoolSymbol(h, true), nil
	}
	var last heap.Value
	for _, a := range args {
		v, err := heap.Evaluate(h, a, env)
		if err != nil {
			return nil, err
		}
		last = v
		if !heap.IsTruthy(v) {
			return last, nil
		}
	}
	return last, nil
}

func funcOr(h *heap.Heap, env *heap.Environment, args []heap.Value) (heap.Value, error) {
	if len(args) == 0 {
		return heap.BoolSymbol(h, false), nil
	}
	var last heap.Value
	for _, a := range args {
		v, err := heap.Evaluate(h, a, env)
		if err != nil {
			return nil, err
		}
		last = v
		if heap.IsTruthy(v) {
			return last, nil
		}
	}
	return last, nil
}

// -- pairs and lists ----------------------------------------------------

func funcCons(h *heap.Heap, env *heap.Environment, args []heap.Value) (heap.Value, error) {
	vals, err := evaluateAll(h, env, args)
	if err != nil {
		return nil, err
	}
	if len(vals) != 2 {
		return nil, scmerr.NewRuntime(scmerr.WrongArgs)
	}
	return h.NewPair(vals[0], vals[1]), nil
}

func funcCar(h *heap.Heap, env *heap.Environment, args []heap.Value) (heap.Value, error) {
	vals, err := evaluateAll(h, env, args)
	if err != nil {
		return nil, err
	}
	if len(vals) != 1 {
		return nil, scmerr.NewRuntime(scmerr.WrongArgs)
	}
	p, ok := vals[0].(*heap.Pair)
	if !ok {
		return nil, scmerr.NewRuntime(scmerr.WrongArgs)
	}
	return p.Car, nil
}

func funcCdr(h *heap.Heap, env *heap.Environment, args []heap.Value) (heap.Value, error) {
	vals, err := evaluateAll(h, env, args)
	if err != nil {
		return nil, err
	}
	if len(vals) != 1 {
		return nil, scmerr.NewRuntime(scmerr.WrongArgs)
	}
	p, ok := vals[0].(*heap.Pair)
	if !ok {
		return nil, scmerr.NewRuntime(scmerr.WrongArgs)
	}
	return p.Cdr, nil
}

func funcList(h *heap.Heap, env *heap.Environment, args []heap.Value) (heap.Value, error) {
	vals, err := evaluateAll(h, env, args)
	if err != nil {
		return nil, err
	}
	return heap.MakeList(h, vals), nil
}

func funcListRef(h *heap.Heap, env *heap.Environment, args []heap.Value) (heap.Value, error) {
	vals, err := evaluateAll(h, env, args)
	if err != nil {
		return nil, err
	}
	if len(vals) != 2 {
		return nil, scmerr.NewRuntime(scmerr.WrongArgs)
	}
	elems, err := heap.ProperList(vals[0])
	if err != nil {
		return nil, err
	}
	n, ok := vals[1].(*heap.Number)
	if !ok {
		return nil, scmerr.NewRuntime(scmerr.WrongArgs)
	}
	if n.Value < 0 || n.Value >= int64(len(elems)) {
		return nil, scmerr.NewRuntime(scmerr.WrongArgs)
	}
	return elems[n.Value], nil
}

func funcListTail(h *heap.Heap, env *heap.Environment, args []heap.Value) (heap.Value, error) {
	vals, err := evaluateAll(h, env, args)
	if err != nil {
		return nil, err
	}
	if len(vals) != 2 {
		return nil, scmerr.NewRuntime(scmerr.WrongArgs)
	}
	elems, err := heap.ProperList(vals[0])
	if err != nil {
		return nil, err
	}
	n, ok := vals[1].(*heap.Number)
	if !ok {
		return nil, scmerr.NewRuntime(scmerr.WrongArgs)
	}
	if n.Value < 0 || n.Value > int64(len(elems)) {
		return nil, scmerr.NewRuntime(scmerr.WrongArgs)
	}
	return heap.MakeList(h, elems[n.Value:]), nil
}

// -- special forms ------------------------------------------------------

func funcIf(h *heap.Heap, env *heap.Environment, args []heap.Value) (heap.Value, error) {
	if len(args) != 2 && len(args) != 3 {
		return nil, scmerr.NewSyntax(scmerr.WrongArgs)
	}
	cond, err := heap.Evaluate(h, args[0], env)
	if err != nil {
		return nil, err
	}
	if heap.IsTruthy(cond) {
		return heap.Evaluate(h, args[1], env)
	}
	if len(args) == 2 {
		return nil, nil
	}
	return heap.Evaluate(h, args[2], env)
}

// symbolNames extracts a proper list of Symbol values as their names,
// for lambda parameter lists and define's function-shorthand head. An
// improper list or a non-Symbol element is a RuntimeError, matching
// object.cpp::ExtractProperListWithoutComputing / ArgsToStr — only the
// outer arity checks in funcDefine/funcLambda are SyntaxErrors.
func symbolNames(v heap.Value) ([]string, error) {
	elems, err := heap.ProperList(v)
	if err != nil {
		return nil, scmerr.NewRuntime(scmerr.WrongArgs)
	}
	names := make([]string, len(elems))
	for i, e := range elems {
		s, ok := e.(*heap.Symbol)
		if !ok {
			return nil, scmerr.NewRuntime(scmerr.WrongArgs)
		}
		names[i] = s.Name
	}
	return names, nil
}

// funcDefine implements both shapes: (define name expr) and the
// (define (name p1 .. pn) body...) sugar for
// (define name (lambda (p1 .. pn) body...)).
func funcDefine(h *heap.Heap, env *heap.Environment, args []heap.Value) (heap.Value, error) {
	if len(args) < 2 {
		return nil, scmerr.NewSyntax(scmerr.WrongArgs)
	}
	if sym, ok := args[0].(*heap.Symbol); ok {
		if len(args) != 2 {
			return nil, scmerr.NewSyntax(scmerr.WrongArgs)
		}
		v, err := heap.Evaluate(h, args[1], env)
		if err != nil {
			return nil, err
		}
		env.Define(sym.Name, v)
		return nil, nil
	}
	names, err := symbolNames(args[0])
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, scmerr.NewRuntime(scmerr.WrongArgs)
	}
	closure := h.NewClosure(env, names[1:], args[1:])
	env.Define(names[0], closure)
	return nil, nil
}

func funcSet(h *heap.Heap, env *heap.Environment, args []heap.Value) (heap.Value, error) {
	if len(args) != 2 {
		return nil, scmerr.NewSyntax(scmerr.WrongArgs)
	}
	sym, ok := args[0].(*heap.Symbol)
	if !ok {
		return nil, scmerr.NewRuntime(scmerr.WrongArgs)
	}
	v, err := heap.Evaluate(h, args[1], env)
	if err != nil {
		return nil, err
	}
	if err := env.Set(sym.Name, v); err != nil {
		return nil, err
	}
	return nil, nil
}

func funcSetCar(h *heap.Heap, env *heap.Environment, args []heap.Value) (heap.Value, error) {
	if len(args) != 2 {
		return nil, scmerr.NewSyntax(scmerr.WrongArgs)
	}
	vals, err := evaluateAll(h, env, args)
	if err != nil {
		return nil, err
	}
	p, ok := vals[0].(*heap.Pair)
	if !ok {
		return nil, scmerr.NewRuntime(scmerr.WrongArgs)
	}
	p.Car = vals[1]
	return nil, nil
}

func funcSetCdr(h *heap.Heap, env *heap.Environment, args []heap.Value) (heap.Value, error) {
	if len(args) != 2 {
		return nil, scmerr.NewSyntax(scmerr.WrongArgs)
	}
	vals, err := evaluateAll(h, env, args)
	if err != nil {
		return nil, err
	}
	p, ok := vals[0].(*heap.Pair)
	if !ok {
		return nil, scmerr.NewRuntime(scmerr.WrongArgs)
	}
	p.Cdr = vals[1]
	return nil, nil
}

func funcLambda(h *heap.Heap, env *heap.Environment, args []heap.Value) (heap.Value, error) {
	if len(args) < 2 {
		return nil, scmerr.NewSyntax(scmerr.WrongArgs)
	}
	names, err := symbolNames(args[0])
	if err != nil {
		return nil, err
	}
	return h.NewClosure(env, names, args[1:]), nil
}
