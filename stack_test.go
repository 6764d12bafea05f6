package fift

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStack_PushPopOrder(t *testing.T) {
	var s Stack
	s.Push(NewInteger(1))
	s.Push(NewInteger(2))
	s.Push(NewInteger(3))

	v, err := s.Pop()
	require.NoError(t, err)
	assert.Equal(t, NewInteger(3), v)
	assert.Equal(t, 2, s.Depth())
}

func TestStack_PopUnderflow(t *testing.T) {
	var s Stack
	_, err := s.Pop()
	assert.ErrorIs(t, err, StackUnderflow{Need: 1, Have: 0})
}

func TestStack_PickAndRoll(t *testing.T) {
	var s Stack
	s.Push(NewInteger(1))
	s.Push(NewInteger(2))
	s.Push(NewInteger(3))

	require.NoError(t, s.Pick(2))
	v, err := s.Pop()
	require.NoError(t, err)
	assert.Equal(t, NewInteger(1), v)

	s = Stack{}
	s.Push(NewInteger(1))
	s.Push(NewInteger(2))
	s.Push(NewInteger(3))
	require.NoError(t, s.Roll(2))
	assert.Equal(t, []Value{NewInteger(2), NewInteger(3), NewInteger(1)}, s.Values())
}

func TestStack_TypedPopMismatch(t *testing.T) {
	var s Stack
	s.Push(String("x"))
	_, err := s.PopInt()
	var mismatch TypeMismatch
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "Integer", mismatch.Expected)
	assert.Equal(t, "String", mismatch.Got)
}

func TestStack_SwapAndDrop(t *testing.T) {
	var s Stack
	s.Push(NewInteger(1))
	s.Push(NewInteger(2))
	require.NoError(t, s.Swap(0, 1))
	assert.Equal(t, []Value{NewInteger(2), NewInteger(1)}, s.Values())

	require.NoError(t, s.Drop(2))
	assert.Equal(t, 0, s.Depth())
}
