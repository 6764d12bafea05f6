package fift

// words_control.go: control-flow natives (spec §4.4/§4.8). `if`, `ifnot`
// and `cond` do not re-enter the executor from Go; they manipulate
// vm.Current (already advanced to "what runs next" by the time a native's
// Fn runs, see exec.go's dispatch) directly via TailCall, so that deep
// tail-recursive Fift code uses O(1) Go stack frames (spec §8). `times`,
// `while` and `until` do re-enter it: each run of their body or test is
// a nested vm.Invoke on the Go stack.

func (vm *VM) installControlWords() {
	vm.define("if", func(vm *VM) error {
		c, err := vm.Stack.PopContinuation()
		if err != nil {
			return err
		}
		flag, err := vm.Stack.PopInt()
		if err != nil {
			return err
		}
		if !flag.I.IsZero() {
			vm.TailCall(c)
		}
		return nil
	})
	vm.define("ifnot", func(vm *VM) error {
		c, err := vm.Stack.PopContinuation()
		if err != nil {
			return err
		}
		flag, err := vm.Stack.PopInt()
		if err != nil {
			return err
		}
		if flag.I.IsZero() {
			vm.TailCall(c)
		}
		return nil
	})
	vm.define("cond", func(vm *VM) error {
		cf, err := vm.Stack.PopContinuation()
		if err != nil {
			return err
		}
		ct, err := vm.Stack.PopContinuation()
		if err != nil {
			return err
		}
		flag, err := vm.Stack.PopInt()
		if err != nil {
			return err
		}
		if !flag.I.IsZero() {
			vm.TailCall(ct)
		} else {
			vm.TailCall(cf)
		}
		return nil
	})

	vm.define("times", func(vm *VM) error {
		body, err := vm.Stack.PopContinuation()
		if err != nil {
			return err
		}
		n, err := vm.Stack.PopInt()
		if err != nil {
			return err
		}
		count, _ := n.I.Int64()
		for i := int64(0); i < count; i++ {
			if err := vm.Invoke(body); err != nil {
				return err
			}
		}
		return nil
	})

	vm.define("while", func(vm *VM) error {
		body, err := vm.Stack.PopContinuation()
		if err != nil {
			return err
		}
		test, err := vm.Stack.PopContinuation()
		if err != nil {
			return err
		}
		for {
			if err := vm.Invoke(test); err != nil {
				return err
			}
			flag, err := vm.Stack.PopInt()
			if err != nil {
				return err
			}
			if flag.I.IsZero() {
				return nil
			}
			if err := vm.Invoke(body); err != nil {
				return err
			}
		}
	})

	vm.define("until", func(vm *VM) error {
		body, err := vm.Stack.PopContinuation()
		if err != nil {
			return err
		}
		for {
			if err := vm.Invoke(body); err != nil {
				return err
			}
			flag, err := vm.Stack.PopInt()
			if err != nil {
				return err
			}
			if !flag.I.IsZero() {
				return nil
			}
		}
	})

	vm.define("does", func(vm *VM) error {
		inner, err := vm.Stack.PopContinuation()
		if err != nil {
			return err
		}
		n, err := vm.Stack.PopInt()
		if err != nil {
			return err
		}
		count, _ := n.I.Int64()
		captured := make([]Value, count)
		for i := count - 1; i >= 0; i-- {
			v, err := vm.Stack.Pop()
			if err != nil {
				return err
			}
			captured[i] = v
		}
		vm.Stack.Push(NewBound(captured, inner))
		return nil
	})

	vm.define("recursive", func(vm *VM) error { return vm.defRecursive() })

	vm.define("abort", func(vm *VM) error {
		msg, err := vm.Stack.PopString()
		if err != nil {
			return vm.abortErr("abort")
		}
		return vm.abortErr(string(msg))
	})
	vm.defineLineReader(`abort"`, func(vm *VM) error {
		msg, err := vm.Stack.PopString()
		if err != nil {
			return err
		}
		return vm.abortErr(string(msg))
	})

	vm.define("bye", func(vm *VM) error { vm.bye = true; return errBye })
}

// abortErr reports msg as AssertionFailure when raised while a `library
// NAME ... }Libs` scope is open (spec §7: "from conditional aborts like
// `abort"workchain id must be an integer"` in library code"), or as a
// plain UserAbort otherwise.
func (vm *VM) abortErr(msg string) error {
	if vm.Dict.ScopeDepth() > 1 {
		return AssertionFailure{Msg: msg}
	}
	return UserAbort{Msg: msg}
}

// defRecursive implements `recursive NAME { ... }` (spec §8's tail-call
// testable property): NAME is bound, before the body quotation is even
// parsed, to a native that fetches whatever continuation a box holds;
// the body can therefore reference NAME to call itself. Once the `{ ...
// }` that follows has been compiled, its Quotation result is popped off
// the data stack and stashed into the box, closing the loop.
func (vm *VM) defRecursive() error {
	name, err := vm.In.Word()
	if err != nil {
		return err
	}
	box := NewBox(Value(Null{}))
	vm.define(name, func(vm *VM) error {
		vm.Stack.Push(box.Val)
		return nil
	})

	open, err := vm.In.Word()
	if err != nil {
		return err
	}
	if open != "{" {
		return ParseError{Msg: "recursive: expected { after name"}
	}
	depthBefore := len(vm.Targets)
	if err := vm.execToken("{"); err != nil {
		return err
	}
	for len(vm.Targets) > depthBefore {
		tok, err := vm.In.Word()
		if err != nil {
			return err
		}
		if err := vm.execToken(tok); err != nil {
			return err
		}
	}
	body, err := vm.Stack.PopContinuation()
	if err != nil {
		return err
	}
	box.Val = body
	return nil
}
