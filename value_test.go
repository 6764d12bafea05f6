package fift

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEq_AtomIdentity(t *testing.T) {
	var atoms atomTable
	a1 := atoms.intern("foo")
	a2 := atoms.intern("foo")
	a3 := atoms.intern("bar")
	assert.True(t, Eq(a1, a2))
	assert.False(t, Eq(a1, a3))
}

func TestEq_BoxIdentityNotValue(t *testing.T) {
	b1 := NewBox(NewInteger(1))
	b2 := NewBox(NewInteger(1))
	assert.False(t, Eq(b1, b2))
	assert.True(t, Eq(b1, b1))
}

func TestEqv_StringsByValue(t *testing.T) {
	assert.True(t, Eqv(String("abc"), String("abc")))
	assert.False(t, Eqv(String("abc"), String("abd")))
}

func TestEqual_DeepOnTuplesAndLists(t *testing.T) {
	a := NewTuple(NewInteger(1), NewPair(NewInteger(2), Null{}))
	b := NewTuple(NewInteger(1), NewPair(NewInteger(2), Null{}))
	assert.True(t, Equal(a, b))

	c := NewTuple(NewInteger(1), NewPair(NewInteger(3), Null{}))
	assert.False(t, Equal(a, c))
}

func TestCompare_IntegersAndStrings(t *testing.T) {
	cmp, ok := Compare(NewInteger(3), NewInteger(5))
	assert.True(t, ok)
	assert.Less(t, cmp, 0)

	cmp, ok = Compare(String("abc"), String("abd"))
	assert.True(t, ok)
	assert.Less(t, cmp, 0)
}

func TestCompare_UndefinedAcrossTypes(t *testing.T) {
	_, ok := Compare(NewInteger(1), String("1"))
	assert.False(t, ok)
}

func TestPairString_Formatting(t *testing.T) {
	list := NewPair(NewInteger(1), NewPair(NewInteger(2), Null{}))
	assert.Equal(t, "( 1 2 )", list.String())
}

func TestPairString_ImproperList(t *testing.T) {
	dotted := NewPair(NewInteger(1), NewInteger(2))
	assert.Equal(t, "( 1 . 2 )", dotted.String())
}
