// Package fift implements the core Fift interpreter: the value model, the
// stack, the dictionary, the continuation-based executor, the source
// reader, and the built-in vocabulary that together make the system
// self-hosting enough to load the bundled Lists.fif/Lisp.fif/TonUtil.fif
// style libraries (spec.md §1).
//
// It is grounded on github.com/jcorbin/gothird, a from-scratch
// self-hosting Forth dialect where (as here) the parser and the executor
// are the same loop: there is no separate compile phase.
package fift

import (
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/tonfift/fift/internal/flushio"
	"github.com/tonfift/fift/internal/logio"
	"github.com/tonfift/fift/internal/panicerr"
	"github.com/tonfift/fift/internal/reader"
)

// VM is the whole interpreter state: data stack, control stack, current
// continuation, dictionary, atom table, source reader, compile-mode
// flag and nested compile targets, and the I/O façade (spec §4.5).
type VM struct {
	Stack   Stack
	Current *Continuation
	Control []*Continuation

	Dict  *Dictionary
	atoms atomTable

	In  reader.Input
	Out flushio.WriteFlusher

	closers []io.Closer

	// Compiling is the single mode flag of spec §4.5: false = interpret,
	// true = compile (append to the innermost Targets entry).
	Compiling bool
	Targets   []*compileTarget

	IncludePath []string

	Log   *logio.Logger
	trace func(mess string, args ...interface{})

	exitCode int
	bye      bool

	// scriptArgs backs $1, $2, ... $# in -s script mode (spec §6.1).
	scriptArgs []string

	skipPreamble bool
	preamble     string
}

type compileTarget struct {
	entries []QEntry
}

// Option configures a VM at construction time, grounded on the teacher's
// functional-options VMOption pattern (api.go/options.go).
type Option interface{ apply(vm *VM) }

type optionFunc func(vm *VM)

func (f optionFunc) apply(vm *VM) { f(vm) }

// WithInput pushes r onto the input stack, as `include` does: the last
// WithInput supplied is read first, and each earlier one resumes when the
// one above it reaches EOF.
func WithInput(r io.Reader) Option {
	return optionFunc(func(vm *VM) { vm.In.Push(r) })
}

// WithOutput sets the interpreter's output stream (stdout equivalent).
func WithOutput(w io.Writer) Option {
	return optionFunc(func(vm *VM) {
		vm.Out = flushio.NewWriteFlusher(w)
		if c, ok := w.(io.Closer); ok {
			vm.closers = append(vm.closers, c)
		}
	})
}

// WithIncludePath sets the FIFTPATH-equivalent search list (spec §6.2).
func WithIncludePath(dirs []string) Option {
	return optionFunc(func(vm *VM) { vm.IncludePath = dirs })
}

// WithScriptArgs binds $1..$n and $# for `-s script arg...` mode.
func WithScriptArgs(args []string) Option {
	return optionFunc(func(vm *VM) { vm.scriptArgs = args })
}

// WithLogOutput points the VM's diagnostic logger (abort/error reports)
// at w, per the teacher's logio.Logger.
func WithLogOutput(w io.WriteCloser) Option {
	return optionFunc(func(vm *VM) { vm.Log.SetOutput(w) })
}

// WithTrace stores a trace function for tracef; nil (the default) makes
// tracef a no-op. The executor does not call tracef, so no trace lines
// are produced.
func WithTrace(trace func(mess string, args ...interface{})) Option {
	return optionFunc(func(vm *VM) { vm.trace = trace })
}

// New builds a VM with its dictionary, atom table and built-in vocabulary
// installed, ready to read from whatever WithInput options were given.
func New(opts ...Option) *VM {
	vm := &VM{Dict: NewDictionary(), Log: &logio.Logger{}}
	vm.Log.SetOutput(nopWriteCloser{io.Discard})
	vm.Out = flushio.NewWriteFlusher(io.Discard)
	for _, o := range opts {
		o.apply(vm)
	}
	vm.installBuiltins()
	vm.bindScriptArgs()
	vm.loadPreamble()
	return vm
}

// bindScriptArgs installs $1, $2, ... and $# for `-s script arg...`
// mode (spec §6.1).
func (vm *VM) bindScriptArgs() {
	for i, arg := range vm.scriptArgs {
		v := String(arg)
		_ = vm.Dict.Define(fmt.Sprintf("$%d", i+1), &Entry{Code: NewNative("$arg", func(vm *VM) error {
			vm.Stack.Push(v)
			return nil
		})}, true)
	}
	n := len(vm.scriptArgs)
	_ = vm.Dict.Define("$#", &Entry{Code: NewNative("$#", func(vm *VM) error {
		vm.Stack.Push(NewInteger(int64(n)))
		return nil
	})}, true)
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

func (vm *VM) tracef(mark, mess string, args ...interface{}) {
	if vm.trace == nil {
		return
	}
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	vm.trace("%v %v", mark, mess)
}

// Close flushes and closes every owned output/closer, most-recently-added
// first (teacher's Core.Close / ioCore.Close pattern).
func (vm *VM) Close() error {
	var err error
	if vm.Out != nil {
		err = vm.Out.Flush()
	}
	for i := len(vm.closers) - 1; i >= 0; i-- {
		if cerr := vm.closers[i].Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// ExitCode reports the process exit code this run should use (spec
// §6.1): 0 unless an uncaught abort reached the outermost reader.
func (vm *VM) ExitCode() int { return vm.exitCode }

var errBye = errors.New("bye")

// abort raises a Fift-level error (spec §4.9): it is returned up through
// the Go call stack as a plain error, not a panic -- the interpreter loop
// (Interpret) is what gives it the "unwind to top-level reader" meaning.
func (vm *VM) abort(err error) error { return err }

// Run loads the bundled preamble (unless suppressed) and then drives the
// tokenizer/executor loop over every queued input until EOF on the
// outermost source or `bye`. Top-level Go panics from a misbehaving
// native are recovered and reported as errors, mirroring the teacher's
// goroutine-isolated vm.Run (api.go, internal/panicerr).
func (vm *VM) Run() error {
	return panicerr.Recover("fift", func() error {
		return vm.Interpret()
	})
}
