package heap_test

import (
	"testing"

	"github.com/pkelchte/scm-core/internal/heap"
	"github.com/pkelchte/scm-core/internal/scmerr"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestSerializeProperList(t *testing.T) {
	h := heap.New(zerolog.Nop())
	list := heap.MakeList(h, []heap.Value{h.NewNumber(1), h.NewNumber(2), h.NewNumber(3)})
	out, err := heap.SerializeExpr(list)
	require.NoError(t, err)
	require.Equal(t, "(1 2 3)", out)
}

func TestSerializeImproperList(t *testing.T) {
	h := heap.New(zerolog.Nop())
	p := h.NewPair(h.NewNumber(1), h.NewNumber(2))
	out, err := heap.SerializeExpr(p)
	require.NoError(t, err)
	require.Equal(t, "(1 . 2)", out)
}

func TestSerializeEmptyList(t *testing.T) {
	out, err := heap.SerializeExpr(nil)
	require.NoError(t, err)
	require.Equal(t, "()", out)
}

func TestSerializeNegativeNumber(t *testing.T) {
	h := heap.New(zerolog.Nop())
	out, err := h.NewNumber(-5).Serialize()
	require.NoError(t, err)
	require.Equal(t, "-5", out)
}

func TestIsTruthy(t *testing.T) {
	h := heap.New(zerolog.Nop())
	require.True(t, heap.IsTruthy(h.NewSymbol("#t")))
	require.False(t, heap.IsTruthy(h.NewSymbol("#f")))
	require.True(t, heap.IsTruthy(nil), "nil (the empty list) is truthy per spec")
	require.True(t, heap.IsTruthy(h.NewNumber(0)))
}

func TestProperListRejectsImproperChain(t *testing.T) {
	h := heap.New(zerolog.Nop())
	p := h.NewPair(h.NewNumber(1), h.NewNumber(2))
	_, err := heap.ProperList(p)
	require.Error(t, err)
	require.True(t, scmerr.IsImproperList(err))
}

func TestConsCarCdr(t *testing.T) {
	h := heap.New(zerolog.Nop())
	a := h.NewNumber(1)
	b := h.NewNumber(2)
	p := h.NewPair(a, b).(*heap.Pair)
	require.Equal(t, a, p.Car)
	require.Equal(t, b, p.Cdr)
}

func TestEnvironmentResolveWalksParentChain(t *testing.T) {
	h := heap.New(zerolog.Nop())
	root := h.NewRootEnvironment()
	root.Define("x", h.NewNumber(1))
	child := h.NewChildEnvironment(root)

	v, err := child.Resolve("x")
	require.NoError(t, err)
	require.Equal(t, int64(1), v.(*heap.Number).Value)
}

func TestEnvironmentSetFindsDefiningFrame(t *testing.T) {
	h := heap.New(zerolog.Nop())
	root := h.NewRootEnvironment()
	root.Define("x", h.NewNumber(1))
	child := h.NewChildEnvironment(root)

	require.NoError(t, child.Set("x", h.NewNumber(2)))
	v, err := root.Resolve("x")
	require.NoError(t, err)
	require.Equal(t, int64(2), v.(*heap.Number).Value)
}

func TestEnvironmentSetUnboundIsNameError(t *testing.T) {
	h := heap.New(zerolog.Nop())
	root := h.NewRootEnvironment()
	err := root.Set("nope", h.NewNumber(1))
	require.Error(t, err)
}
