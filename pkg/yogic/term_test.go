package yogic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAtomEquality(t *testing.T) {
	assert.True(t, NewAtom(1).Equal(NewAtom(1)))
	assert.False(t, NewAtom(1).Equal(NewAtom(2)))
	assert.False(t, NewAtom("a").Equal(NewAtom(1)))
}

func TestVarIdentity(t *testing.T) {
	x := Fresh()
	y := Fresh()
	assert.True(t, x.Equal(x))
	assert.False(t, x.Equal(y))
	assert.NotEqual(t, x.id, y.id)
}

func TestCompoundEquality(t *testing.T) {
	a := List(NewAtom(1), NewAtom(2))
	b := List(NewAtom(1), NewAtom(2))
	c := List(NewAtom(1), NewAtom(3))
	d := Tuple(NewAtom(1), NewAtom(2))

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(d), "same elements, different tag, must not compare equal")
}

func TestCompoundLengthMismatch(t *testing.T) {
	a := List(NewAtom(1))
	b := List(NewAtom(1), NewAtom(2))
	assert.False(t, a.Equal(b))
}

func TestNewCompoundRejectsEmptyTag(t *testing.T) {
	require.Panics(t, func() {
		NewCompound("", NewAtom(1))
	})
}
