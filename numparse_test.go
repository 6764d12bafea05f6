package fift

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tonfift/fift/internal/bigint"
)

func TestParseNumber_Decimal(t *testing.T) {
	vals, ok := ParseNumber("42")
	assert.True(t, ok)
	assert.Equal(t, []Value{Integer{I: bigint.FromInt64(42)}}, vals)
}

func TestParseNumber_NegativeDecimal(t *testing.T) {
	vals, ok := ParseNumber("-17")
	assert.True(t, ok)
	assert.Equal(t, []Value{Integer{I: bigint.FromInt64(-17)}}, vals)
}

func TestParseNumber_HexPrefix(t *testing.T) {
	vals, ok := ParseNumber("0x2A")
	assert.True(t, ok)
	assert.Equal(t, []Value{Integer{I: bigint.FromInt64(42)}}, vals)
}

func TestParseNumber_BinaryAndOctalPrefix(t *testing.T) {
	vals, ok := ParseNumber("0b101010")
	assert.True(t, ok)
	assert.Equal(t, []Value{Integer{I: bigint.FromInt64(42)}}, vals)

	vals, ok = ParseNumber("0o52")
	assert.True(t, ok)
	assert.Equal(t, []Value{Integer{I: bigint.FromInt64(42)}}, vals)
}

func TestParseNumber_Fraction(t *testing.T) {
	vals, ok := ParseNumber("3/4")
	assert.True(t, ok)
	assert.Equal(t, []Value{Integer{I: bigint.FromInt64(3)}, Integer{I: bigint.FromInt64(4)}}, vals)
}

func TestParseNumber_FractionNotReduced(t *testing.T) {
	// DESIGN.md's Open Question decision: a/b literals are kept exactly
	// as written, not reduced to lowest terms.
	vals, ok := ParseNumber("6/8")
	assert.True(t, ok)
	assert.Equal(t, []Value{Integer{I: bigint.FromInt64(6)}, Integer{I: bigint.FromInt64(8)}}, vals)
}

func TestParseNumber_NotANumber(t *testing.T) {
	_, ok := ParseNumber("sq")
	assert.False(t, ok)

	_, ok = ParseNumber("1-")
	assert.False(t, ok)

	_, ok = ParseNumber("")
	assert.False(t, ok)
}
