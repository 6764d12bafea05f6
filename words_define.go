package fift

// words_define.go: the defining words of spec §4.8. Following the
// concrete end-to-end scenario in spec §8 ("{ dup * } : sq  7 sq ."),
// `:`/`::`/`::_` consume an already-built Continuation from the data
// stack and a following NAME token, rather than themselves scanning a
// body up to a `;` terminator -- the quotation is built the ordinary
// way, with `{ ... }`, before the defining word ever runs. See
// DESIGN.md for why this reading was chosen over the semicolon-bodied
// form also implied by §4.8's prose.

// doneNative is a no-op tail step shared by every Bound continuation
// built here (constant/variable): Bound already pushes its
// captured values before tail-calling Inner, so Inner has nothing left
// to do.
var doneNative = NewNative("(done)", func(vm *VM) error { return nil })

func (vm *VM) installDefineWords() {
	vm.defineActive("{", func(vm *VM) error {
		vm.Targets = append(vm.Targets, &compileTarget{})
		vm.Compiling = true
		return nil
	})
	vm.defineActive("}", func(vm *VM) error {
		n := len(vm.Targets)
		if n == 0 {
			return ParseError{Msg: "unmatched }"}
		}
		top := vm.Targets[n-1]
		vm.Targets = vm.Targets[:n-1]
		vm.Compiling = len(vm.Targets) > 0
		return vm.pushOrCompile(NewQuotation(top.entries))
	})

	vm.defineActive(":", func(vm *VM) error { return vm.defineFromStack(false, false) })
	vm.defineActive("::", func(vm *VM) error { return vm.defineFromStack(true, false) })
	vm.defineActive("::_", func(vm *VM) error { return vm.defineFromStack(true, true) })

	vm.defineActive("constant", func(vm *VM) error {
		v, err := vm.Stack.Pop()
		if err != nil {
			return err
		}
		name, err := vm.In.Word()
		if err != nil {
			return err
		}
		return vm.Dict.Define(name, &Entry{Code: NewBound([]Value{v}, doneNative)}, false)
	})

	vm.defineActive("variable", func(vm *VM) error {
		name, err := vm.In.Word()
		if err != nil {
			return err
		}
		box := NewBox(Value(NewInteger(0)))
		return vm.Dict.Define(name, &Entry{Code: NewBound([]Value{box}, doneNative)}, false)
	})

	vm.define("hole", func(vm *VM) error {
		vm.Stack.Push(NewBox(Value(Null{})))
		return nil
	})

	vm.defineActive("forget", func(vm *VM) error {
		name, err := vm.In.Word()
		if err != nil {
			return err
		}
		vm.Dict.Forget(name)
		return nil
	})

	vm.defineActive("library", func(vm *VM) error {
		if _, err := vm.In.Word(); err != nil {
			return err
		}
		vm.Dict.PushScope()
		return nil
	})
	vm.defineActive("}Libs", func(vm *VM) error {
		vm.Dict.PopScope()
		return nil
	})
}

func (vm *VM) defineFromStack(active, lineReader bool) error {
	c, err := vm.Stack.PopContinuation()
	if err != nil {
		return err
	}
	name, err := vm.In.Word()
	if err != nil {
		return err
	}
	return vm.Dict.Define(name, &Entry{Active: active, LineReader: lineReader, Code: c}, false)
}
