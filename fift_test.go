package fift

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fift_test.go exercises the six concrete end-to-end scenarios of spec §8
// verbatim (scenario 6 adapted only in its lexical spacing, noted below),
// plus the invariant/round-trip properties listed alongside them. Grounded
// on the teacher's vmTestCase harness (vm_test.go), simplified to a plain
// run-and-assert-on-output style since this VM's I/O is a plain io.Writer
// rather than the teacher's symbol-table/register inspection surface.

func run(t *testing.T, src string) (out string, vm *VM) {
	t.Helper()
	var buf bytes.Buffer
	vm = New(WithInput(strings.NewReader(src)), WithOutput(&buf), WithNoPreamble())
	err := vm.Run()
	require.NoError(t, err)
	return buf.String(), vm
}

func TestScenario1_AddAndPrint(t *testing.T) {
	out, vm := run(t, "2 3 + .")
	assert.Equal(t, "5 ", out)
	assert.Equal(t, 0, vm.Stack.Depth())
}

func TestScenario2_StringLength(t *testing.T) {
	out, _ := run(t, `"hello" $len .`)
	assert.Equal(t, "5 ", out)
}

func TestScenario3_DefineAndCall(t *testing.T) {
	out, _ := run(t, "{ dup * } : sq  7 sq .")
	assert.Equal(t, "49 ", out)
}

func TestScenario4_QuotationsAndCond(t *testing.T) {
	out, _ := run(t, "1 2 < { 10 } { 20 } cond .")
	assert.Equal(t, "10 ", out)
}

func TestScenario5_ListReverse(t *testing.T) {
	out, _ := run(t, "( 1 2 3 ) list-reverse .l")
	assert.Equal(t, "( 3 2 1 )", out)
}

func TestScenario6_LispEvalPrint(t *testing.T) {
	// The word name is exactly `LISP-EVAL-PRINT(`; a space after it (not
	// present in spec.md's condensed prose rendering) is required for the
	// whitespace-delimited tokenizer to resolve it before handing the
	// rest of the line to the line-reader body.
	out, _ := run(t, "LISP-EVAL-PRINT( (+ 1 2) (* 3 4) )")
	assert.Equal(t, "3\n12\n", out)
}

func TestInvariant_PushDropIsIdentity(t *testing.T) {
	out, vm := run(t, `"x" drop .s`)
	assert.Equal(t, "", out)
	assert.Equal(t, 0, vm.Stack.Depth())
}

func TestInvariant_SwapSwapIsIdentity(t *testing.T) {
	out, _ := run(t, "1 2 swap swap .s")
	assert.Equal(t, "1 2 ", out)
}

func TestInvariant_RotRotRotIsIdentity(t *testing.T) {
	out, _ := run(t, "1 2 3 rot rot rot .s")
	assert.Equal(t, "1 2 3 ", out)
}

func TestInvariant_AdditionAssociative(t *testing.T) {
	left, _ := run(t, "3 5 + 7 + .")
	right, _ := run(t, "3 5 7 + + .")
	assert.Equal(t, left, right)
	assert.Equal(t, "15 ", left)
}

func TestInvariant_AddZeroIsIdentity(t *testing.T) {
	out, _ := run(t, "42 0 + .")
	assert.Equal(t, "42 ", out)
}

func TestInvariant_ListReverseInvolution(t *testing.T) {
	out, _ := run(t, "( 1 2 3 ) list-reverse list-reverse .l")
	assert.Equal(t, "( 1 2 3 )", out)
}

func TestInvariant_BoxRoundTrip(t *testing.T) {
	out, _ := run(t, "5 box @ .")
	assert.Equal(t, "5 ", out)
}

func TestInvariant_HoleSwapStoreLoad(t *testing.T) {
	out, _ := run(t, "hole dup 7 swap ! @ .")
	assert.Equal(t, "7 ", out)
}

func TestInvariant_ExecuteInlinesQuotation(t *testing.T) {
	withWord, _ := run(t, "{ dup * } : sq  6 ' sq execute .")
	inlined, _ := run(t, "6 dup * .")
	assert.Equal(t, inlined, withWord)
}

func TestInvariant_DefineForgetRoundTrip(t *testing.T) {
	vm := New(WithNoPreamble())
	before := vm.Dict.Snapshot()
	names := []string{"foo", "bar", "baz"}
	for _, n := range names {
		require.NoError(t, vm.Dict.Define(n, &Entry{Code: NewNative(n, func(vm *VM) error { return nil })}, false))
	}
	for i := len(names) - 1; i >= 0; i-- {
		assert.True(t, vm.Dict.Forget(names[i]))
	}
	assert.Equal(t, before, vm.Dict.Snapshot())
}

func TestInvariant_RecursiveTailCallIsBoundedGoStack(t *testing.T) {
	// recursive F { ... F execute } in tail position must not grow the Go
	// call stack per self-call (spec §8): drive a deep count down so that
	// a non-tail-call implementation would overflow or at least show
	// O(n) Control-stack growth, and assert the control stack is back to
	// empty on completion regardless of N.
	const src = `
recursive count-down {
  dup 0=
  { drop }
  { 1 - count-down execute }
  cond
}
50000 count-down execute`
	var buf bytes.Buffer
	vm := New(WithInput(strings.NewReader(src)), WithOutput(&buf), WithNoPreamble())
	require.NoError(t, vm.Run())
	assert.Equal(t, 0, len(vm.Control))
	assert.Equal(t, 0, vm.Stack.Depth())
}

func TestInvariant_NonTailListLengthStillCorrect(t *testing.T) {
	// list-length is a preamble word (non-tail recursion through execute,
	// unlike native list-reverse), so the bundled Fift.fif must load here.
	var buf bytes.Buffer
	vm := New(WithInput(strings.NewReader("( 1 2 3 4 5 ) list-length execute .")), WithOutput(&buf))
	require.NoError(t, vm.Run())
	assert.Equal(t, "5 ", buf.String())
}

func TestIntegerRoundTrip_DecimalStringToNumber(t *testing.T) {
	out, _ := run(t, `"12345" (number) drop .`)
	assert.Equal(t, "12345 ", out)
}

func TestBytesRoundTrip_Hex(t *testing.T) {
	out, _ := run(t, `B{ deadbeef } Bhex hexB Bhex .`)
	assert.Equal(t, "DEADBEEF ", out)
}

func TestUndefinedWordAborts(t *testing.T) {
	var buf bytes.Buffer
	vm := New(WithInput(strings.NewReader("this-is-not-a-word")), WithOutput(&buf), WithNoPreamble())
	require.NoError(t, vm.Run())
	assert.Equal(t, 1, vm.ExitCode())
}

func TestByeStopsInterpretationCleanly(t *testing.T) {
	var buf bytes.Buffer
	vm := New(WithInput(strings.NewReader("1 . bye 2 .")), WithOutput(&buf), WithNoPreamble())
	require.NoError(t, vm.Run())
	assert.Equal(t, "1 ", buf.String())
	assert.Equal(t, 0, vm.ExitCode())
}

func TestPreambleDefinesArithmeticHelpers(t *testing.T) {
	var buf bytes.Buffer
	vm := New(WithInput(strings.NewReader("4 1+ 2* square .")), WithOutput(&buf))
	require.NoError(t, vm.Run())
	assert.Equal(t, "100 ", buf.String())
}
