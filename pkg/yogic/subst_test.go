package yogic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBindAndDeref(t *testing.T) {
	x := Fresh()
	s := emptySubst().bind(x, NewAtom("t"))

	assert.Equal(t, NewAtom("t"), s.deref(x))
	assert.Equal(t, NewAtom("t"), s.deref(NewAtom("t")), "deref of a non-Variable is the identity")
}

func TestDerefChasesChains(t *testing.T) {
	x, y, z := Fresh(), Fresh(), Fresh()
	s := emptySubst().bind(x, y).bind(y, z).bind(z, NewAtom(1))

	assert.Equal(t, NewAtom(1), s.deref(x))
}

func TestDerefDoesNotDescendIntoCompounds(t *testing.T) {
	x := Fresh()
	s := emptySubst().bind(x, NewAtom(1))
	c := List(x, NewAtom(2))

	result := s.deref(c)
	assert.Equal(t, c, result, "deref must leave compound contents untouched")
}

func TestSmoothResolvesNestedStructure(t *testing.T) {
	x, y := Fresh(), Fresh()
	s := emptySubst().bind(x, NewAtom(1)).bind(y, List(x, NewAtom(2)))

	assert.Equal(t, List(NewAtom(1), NewAtom(2)), s.smooth(y))
}

func TestSmoothOfUnboundVariableIsIdentity(t *testing.T) {
	x := Fresh()
	assert.Equal(t, x, emptySubst().smooth(x))
}

// TestSmoothRoundTripOverEmptySubst is property 10 of spec.md §8: for any
// term t, smooth(t) over an empty substitution equals t.
func TestSmoothRoundTripOverEmptySubst(t *testing.T) {
	x := Fresh()
	terms := []Term{
		NewAtom(1),
		NewAtom("hello"),
		x,
		List(NewAtom(1), x, Tuple(NewAtom("a"), NewAtom("b"))),
	}
	s := emptySubst()
	for _, term := range terms {
		assert.Equal(t, term, s.smooth(term))
	}
}

func TestBindDoesNotMutateParent(t *testing.T) {
	x := Fresh()
	parent := emptySubst()
	child := parent.bind(x, NewAtom(1))

	_, ok := parent.lookup(x)
	assert.False(t, ok, "binding on a child layer must not leak into the parent")

	bound, ok := child.lookup(x)
	assert.True(t, ok)
	assert.Equal(t, NewAtom(1), bound)
}

func TestProxyLookupSmooths(t *testing.T) {
	x, y := Fresh(), Fresh()
	s := emptySubst().bind(x, NewAtom(1)).bind(y, List(x))
	p := &Proxy{subst: s}

	assert.Equal(t, List(NewAtom(1)), p.Lookup(y))
}
