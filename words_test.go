package fift

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWords_DivisionByZeroAborts(t *testing.T) {
	var buf bytes.Buffer
	vm := New(WithInput(strings.NewReader("5 0 / .")), WithOutput(&buf), WithNoPreamble())
	require.NoError(t, vm.Run())
	assert.Equal(t, 1, vm.ExitCode())
	assert.Equal(t, "", buf.String())
}

func TestWords_ModAndDivMod(t *testing.T) {
	out, _ := run(t, "17 5 mod .")
	assert.Equal(t, "2 ", out)

	out, _ = run(t, "17 5 /mod .s")
	assert.Equal(t, "3 2 ", out)
}

func TestWords_FitsRangeCheck(t *testing.T) {
	out, _ := run(t, "127 8 fits .")
	assert.Equal(t, "127 ", out)

	var buf bytes.Buffer
	vm := New(WithInput(strings.NewReader("200 8 fits .")), WithOutput(&buf), WithNoPreamble())
	require.NoError(t, vm.Run())
	assert.Equal(t, 1, vm.ExitCode())
}

func TestWords_IfIfnot(t *testing.T) {
	out, _ := run(t, "-1 { 1 } if .")
	assert.Equal(t, "1 ", out)

	out, _ = run(t, "0 { 1 } if .s")
	assert.Equal(t, "", out)

	out, _ = run(t, "0 { 9 } ifnot .")
	assert.Equal(t, "9 ", out)
}

func TestWords_Times(t *testing.T) {
	// times uses the default preamble's 1+ word, so it is constructed
	// directly rather than through the shared WithNoPreamble() helper.
	var buf bytes.Buffer
	vm := New(WithInput(strings.NewReader("0 5 { 1+ } times .")), WithOutput(&buf))
	require.NoError(t, vm.Run())
	assert.Equal(t, "5 ", buf.String())
}

func TestWords_WhileAndUntil(t *testing.T) {
	var buf bytes.Buffer
	vm := New(WithInput(strings.NewReader(
		"0 { dup 5 < } { 1+ } while .")), WithOutput(&buf))
	require.NoError(t, vm.Run())
	assert.Equal(t, "5 ", buf.String())

	buf.Reset()
	vm = New(WithInput(strings.NewReader(
		"0 { 1+ dup 5 = } until .")), WithOutput(&buf))
	require.NoError(t, vm.Run())
	assert.Equal(t, "5 ", buf.String())
}

func TestWords_DoesBindsCapturedValues(t *testing.T) {
	out, _ := run(t, "3 4 2 { + } does execute .")
	assert.Equal(t, "7 ", out)
}

func TestWords_AbortMessageReported(t *testing.T) {
	// abort unwinds only the current Fift-level call, not the whole
	// reader (spec §4.9): interpretation resumes with the next token.
	var buf bytes.Buffer
	vm := New(WithInput(strings.NewReader(`"boom" abort 1 .`)), WithOutput(&buf), WithNoPreamble())
	require.NoError(t, vm.Run())
	assert.Equal(t, 1, vm.ExitCode())
	assert.Equal(t, "1 ", buf.String())
}

func TestWords_AbortQuoteConsumesRestOfLine(t *testing.T) {
	// abort" is unconditional, like abort, but takes the rest of the
	// source line as its message (the `::_` line-reader shape).
	var buf bytes.Buffer
	vm := New(WithInput(strings.NewReader(`abort" stop here"`+"\n2 .")), WithOutput(&buf), WithNoPreamble())
	require.NoError(t, vm.Run())
	assert.Equal(t, "2 ", buf.String())
	assert.Equal(t, 1, vm.ExitCode())
}

func TestWords_AbortMidQuotationClearsCompileState(t *testing.T) {
	// An abort while a `{ ... }` is still open must abandon that
	// compilation along with the call, not leave a dangling target that
	// silently swallows every later top-level token (spec §4.9).
	var buf bytes.Buffer
	vm := New(WithInput(strings.NewReader(`{ abort" boom"`+"\n3 4 + .")), WithOutput(&buf), WithNoPreamble())
	require.NoError(t, vm.Run())
	assert.Equal(t, 1, vm.ExitCode())
	assert.Equal(t, "7 ", buf.String())
	assert.False(t, vm.Compiling)
	assert.Empty(t, vm.Targets)
}

func TestWords_WordRefAndExecute(t *testing.T) {
	out, _ := run(t, "{ dup * } : sq  5 ' sq execute .")
	assert.Equal(t, "25 ", out)
}

func TestWords_FindMissingWord(t *testing.T) {
	out, _ := run(t, `"no-such-word" find .s`)
	assert.Equal(t, "(null) 0 ", out)
}

func TestWords_AbortErrDistinguishesLibraryScope(t *testing.T) {
	vm := New(WithNoPreamble())

	err := vm.abortErr("top-level")
	var user UserAbort
	require.ErrorAs(t, err, &user)
	assert.Equal(t, "top-level", user.Msg)

	vm.Dict.PushScope()
	err = vm.abortErr("library precondition")
	var af AssertionFailure
	require.ErrorAs(t, err, &af)
	assert.Equal(t, "library precondition", af.Msg)
	vm.Dict.PopScope()
}

func TestWords_AtomLiteralIdentity(t *testing.T) {
	out, _ := run(t, "`foo `foo eq? .")
	assert.Equal(t, "-1 ", out)
}
