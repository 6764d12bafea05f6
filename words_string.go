package fift

import (
	"encoding/hex"
	"io"
	"strings"
)

// words_string.go: String/Bytes operations, and the active
// lexer-extension words of spec §4.7 (`"`, `B{`, `` ` ``, `'`) that read
// directly from the source reader rather than being hard-coded lexer
// rules.

func (vm *VM) installStringWords() {
	vm.define("$len", func(vm *VM) error {
		s, err := vm.Stack.PopString()
		if err != nil {
			return err
		}
		vm.Stack.Push(NewInteger(int64(len(s))))
		return nil
	})
	vm.define("$+", func(vm *VM) error {
		b, err := vm.Stack.PopString()
		if err != nil {
			return err
		}
		a, err := vm.Stack.PopString()
		if err != nil {
			return err
		}
		vm.Stack.Push(a + b)
		return nil
	})
	vm.define("$=", func(vm *VM) error {
		b, err := vm.Stack.PopString()
		if err != nil {
			return err
		}
		a, err := vm.Stack.PopString()
		if err != nil {
			return err
		}
		vm.Stack.Push(boolInt(a == b))
		return nil
	})
	vm.define("$reverse", func(vm *VM) error {
		s, err := vm.Stack.PopString()
		if err != nil {
			return err
		}
		r := []rune(string(s))
		for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
			r[i], r[j] = r[j], r[i]
		}
		vm.Stack.Push(String(r))
		return nil
	})
	vm.define("(number)", func(vm *VM) error {
		s, err := vm.Stack.PopString()
		if err != nil {
			return err
		}
		vals, ok := ParseNumber(string(s))
		if !ok {
			vm.Stack.Push(NewInteger(0))
			return nil
		}
		for _, v := range vals {
			vm.Stack.Push(v)
		}
		vm.Stack.Push(NewInteger(int64(len(vals))))
		return nil
	})

	vm.define("$>B", func(vm *VM) error {
		s, err := vm.Stack.PopString()
		if err != nil {
			return err
		}
		vm.Stack.Push(Bytes([]byte(s)))
		return nil
	})
	vm.define("B>$", func(vm *VM) error {
		b, err := vm.Stack.PopBytes()
		if err != nil {
			return err
		}
		vm.Stack.Push(String(b))
		return nil
	})
	vm.define("Bhex", func(vm *VM) error {
		b, err := vm.Stack.PopBytes()
		if err != nil {
			return err
		}
		vm.Stack.Push(String(strings.ToUpper(hex.EncodeToString(b))))
		return nil
	})
	vm.define("hexB", func(vm *VM) error {
		s, err := vm.Stack.PopString()
		if err != nil {
			return err
		}
		b, derr := hex.DecodeString(strings.TrimSpace(string(s)))
		if derr != nil {
			return ParseError{Msg: "malformed hex: " + derr.Error()}
		}
		vm.Stack.Push(Bytes(b))
		return nil
	})

	vm.define("bl", func(vm *VM) error { vm.Stack.Push(NewInteger(' ')); return nil })
	vm.defineActive("char", func(vm *VM) error {
		w, err := vm.In.Word()
		if err != nil && err != io.EOF {
			return err
		}
		r := []rune(w)
		if len(r) == 0 {
			return ParseError{Msg: "char: expected a token"}
		}
		return vm.pushOrCompile(NewInteger(int64(r[0])))
	})
	vm.define("word", func(vm *VM) error {
		n, err := vm.Stack.PopInt()
		if err != nil {
			return err
		}
		if n.I.IsZero() {
			line, rerr := vm.In.RestOfLine()
			if rerr != nil && rerr != io.EOF {
				return rerr
			}
			vm.Stack.Push(String(line))
			return nil
		}
		w, rerr := vm.In.Word()
		if rerr != nil && rerr != io.EOF {
			return rerr
		}
		vm.Stack.Push(String(w))
		return nil
	})

	vm.defineActive(`"`, func(vm *VM) error {
		var sb strings.Builder
		for {
			r, _, err := vm.In.ReadRune()
			if err == io.EOF {
				return ParseError{Msg: "unterminated string literal"}
			}
			if err != nil {
				return err
			}
			if r == '"' {
				break
			}
			sb.WriteRune(r)
		}
		return vm.pushOrCompile(String(sb.String()))
	})

	vm.defineActive("B{", func(vm *VM) error {
		txt, err := vm.In.WordFunc(func(r rune) bool { return r == '}' })
		if err != nil && err != io.EOF {
			return err
		}
		txt = strings.Join(strings.Fields(txt), "")
		b, derr := hex.DecodeString(txt)
		if derr != nil {
			return ParseError{Msg: "malformed B{} literal: " + derr.Error()}
		}
		return vm.pushOrCompile(Bytes(b))
	})

	vm.defineActive("`", func(vm *VM) error {
		w, err := vm.In.Word()
		if err != nil && err != io.EOF {
			return err
		}
		return vm.pushOrCompile(vm.atoms.intern(w))
	})

	vm.defineActive("'", func(vm *VM) error {
		w, err := vm.In.Word()
		if err != nil && err != io.EOF {
			return err
		}
		entry := vm.Dict.Lookup(w)
		if entry == nil {
			return Undefined{Token: w}
		}
		return vm.pushOrCompile(&WordRef{Entry: entry})
	})

	vm.define("find", func(vm *VM) error {
		name, err := vm.Stack.PopString()
		if err != nil {
			return err
		}
		entry := vm.Dict.Lookup(string(name))
		if entry == nil {
			vm.Stack.Push(Null{})
			vm.Stack.Push(NewInteger(0))
			return nil
		}
		vm.Stack.Push(&WordRef{Entry: entry})
		vm.Stack.Push(NewInteger(-1))
		return nil
	})

	vm.define("execute", func(vm *VM) error {
		v, err := vm.Stack.Pop()
		if err != nil {
			return err
		}
		switch w := v.(type) {
		case *WordRef:
			vm.TailCall(w.Entry.Code)
			return nil
		case *Continuation:
			vm.TailCall(w)
			return nil
		default:
			return TypeMismatch{Expected: "WordRef or Continuation", Got: TypeOf(v)}
		}
	})
}
