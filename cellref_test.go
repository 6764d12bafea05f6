package fift

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_StoreAndFinalize(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.StoreBits(0b101, 3))
	require.NoError(t, b.StoreBits(0xFF, 8))
	c := b.Finalize()
	assert.Equal(t, 11, len(c.Bits))
	assert.Equal(t, 0, len(c.Refs))
}

func TestBuilder_StoreRefLimitOfFour(t *testing.T) {
	b := NewBuilder()
	leaf := NewBuilder().Finalize()
	for i := 0; i < 4; i++ {
		require.NoError(t, b.StoreRef(leaf))
	}
	err := b.StoreRef(leaf)
	var rerr RangeError
	require.ErrorAs(t, err, &rerr)
}

func TestBuilder_OverflowPastMaxBits(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.StoreBits(0, 1023))
	err := b.StoreBits(1, 1)
	var rerr RangeError
	require.ErrorAs(t, err, &rerr)
}

func TestSlice_LoadBitsRoundTrip(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.StoreBits(0b1011, 4))
	require.NoError(t, b.StoreBits(0xAB, 8))
	c := b.Finalize()

	s := NewSlice(c)
	v, err := s.LoadBits(4)
	require.NoError(t, err)
	assert.Equal(t, uint64(0b1011), v)

	v, err = s.LoadBits(8)
	require.NoError(t, err)
	assert.Equal(t, uint64(0xAB), v)

	assert.Equal(t, 0, s.BitsLeft())
}

func TestSlice_LoadRefRoundTrip(t *testing.T) {
	leaf := NewBuilder().Finalize()
	b := NewBuilder()
	require.NoError(t, b.StoreRef(leaf))
	c := b.Finalize()

	s := NewSlice(c)
	got, err := s.LoadRef()
	require.NoError(t, err)
	assert.Same(t, leaf, got)
	assert.Equal(t, 0, s.RefsLeft())
}

func TestSlice_UnderflowErrors(t *testing.T) {
	c := NewBuilder().Finalize()
	s := NewSlice(c)
	_, err := s.LoadBits(1)
	var rerr RangeError
	require.ErrorAs(t, err, &rerr)

	_, err = s.LoadRef()
	require.ErrorAs(t, err, &rerr)
}
