package fift

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitTopLevel_IgnoresNestedWhitespace(t *testing.T) {
	parts := splitTopLevel("(+ 1 2) (* 3 (- 4 1))")
	assert.Equal(t, []string{"(+ 1 2)", "(* 3 (- 4 1))"}, parts)
}

func TestEvalSexpr_Arithmetic(t *testing.T) {
	v, err := evalSexpr("(+ 1 2 3)")
	require.NoError(t, err)
	assert.Equal(t, int64(6), v)

	v, err = evalSexpr("(* 2 (- 10 4))")
	require.NoError(t, err)
	assert.Equal(t, int64(12), v)
}

func TestEvalSexpr_DivisionByZero(t *testing.T) {
	_, err := evalSexpr("(/ 1 0)")
	var derr DivisionByZero
	require.ErrorAs(t, err, &derr)
}

func TestEvalSexpr_MalformedExpression(t *testing.T) {
	_, err := evalSexpr("(+ 1")
	require.Error(t, err)

	_, err = evalSexpr("(+ 1 notanumber)")
	require.Error(t, err)

	_, err = evalSexpr("(unknown-op 1 2)")
	require.Error(t, err)
}

func TestApplyArith_NoArgumentsErrors(t *testing.T) {
	_, err := applyArith("+", nil)
	require.Error(t, err)
}
