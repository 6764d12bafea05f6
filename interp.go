package fift

import (
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Interpret is the tokenizer/executor loop of spec §4.5-§4.7: the parser
// IS the executor, there is no separate compile pass. It is grounded on
// the teacher's Core.step loop (first.go), generalized from "read one
// opcode word, dispatch on a fixed table" to "read one token, resolve it
// against the dictionary or the number grammar, and either run it,
// compile it, or push it".
func (vm *VM) Interpret() error {
	for {
		tok, err := vm.In.Word()
		if err == io.EOF {
			return nil // every include frame, down to the outermost, is exhausted
		}
		if err != nil {
			return vm.reportAndContinue(err)
		}
		if tok == "" {
			continue
		}
		if err := vm.execToken(tok); err != nil {
			if errors.Is(err, errBye) {
				return nil
			}
			if rerr := vm.reportAndContinue(err); rerr != nil {
				return rerr
			}
		}
	}
}

// execToken resolves one token against the dictionary (spec §4.2) or, if
// undefined, the number grammar (spec §4.7), and runs or compiles it.
func (vm *VM) execToken(tok string) error {
	entry := vm.Dict.Lookup(tok)
	if entry == nil {
		vals, ok := ParseNumber(tok)
		if !ok {
			// A token that starts with an active word (`"hello"`, `foo with
			// a leading backtick, B{..}) runs the longest such prefix, with
			// the rest of the token put back in front of the reader.
			for i := len(tok) - 1; i > 0; i-- {
				if p := vm.Dict.Lookup(tok[:i]); p != nil && p.Active {
					loc := vm.In.Scan.Location
					vm.In.Push(strings.NewReader(tok[i:] + " "))
					vm.In.Scan.Location = loc
					return vm.execToken(tok[:i])
				}
			}
			return Undefined{Token: tok}
		}
		for _, v := range vals {
			if err := vm.pushOrCompile(v); err != nil {
				return err
			}
		}
		return nil
	}

	if entry.LineReader && entry.Active {
		line, err := vm.In.RestOfLine()
		if err != nil && err != io.EOF {
			return err
		}
		vm.Stack.Push(String(line))
		return vm.Invoke(entry.Code)
	}

	if entry.Active {
		return vm.Invoke(entry.Code)
	}

	if vm.Compiling {
		vm.compileCall(entry.Code, tok)
		return nil
	}
	return vm.Invoke(entry.Code)
}

// pushOrCompile pushes a literal in interpret mode, or compiles it as a
// literal-push entry when inside `{ ... }` (spec §4.6).
func (vm *VM) pushOrCompile(v Value) error {
	if vm.Compiling {
		vm.compilePush(v)
		return nil
	}
	vm.Stack.Push(v)
	return nil
}

func (vm *VM) compilePush(v Value) {
	top := vm.Targets[len(vm.Targets)-1]
	top.entries = append(top.entries, QEntry{Push: v})
}

func (vm *VM) compileCall(c *Continuation, name string) {
	top := vm.Targets[len(vm.Targets)-1]
	top.entries = append(top.entries, QEntry{Call: c, Name: name})
}

// reportAndContinue reports err to the log (spec §7's diagnostic format)
// and resumes the token loop at the current reader position -- an abort
// unwinds only the Fift-level call in progress, not the whole reader
// (spec §4.9). Any `{ ... }` compilation in progress is abandoned along
// with it, down to the nearest interactive boundary, so a token after
// the error is interpreted rather than silently appended to a dangling
// half-built quotation. It marks a non-zero process exit code once.
func (vm *VM) reportAndContinue(err error) error {
	loc := vm.In.Last
	vm.Log.Errorf("%v:%v: %+v", loc.Name, loc.Line, err)
	vm.exitCode = 1
	vm.Targets = nil
	vm.Compiling = false
	return nil
}
