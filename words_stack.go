package fift

// words_stack.go: the stack-shuffling primitives of spec §4.1, directly
// over the Stack type's push/pop/peek/pick/roll/swap/drop.

func (vm *VM) installStackWords() {
	vm.define("drop", func(vm *VM) error { _, err := vm.Stack.Pop(); return err })
	vm.define("2drop", func(vm *VM) error { return vm.Stack.Drop(2) })

	vm.define("dup", func(vm *VM) error { return vm.Stack.Pick(0) })
	vm.define("2dup", func(vm *VM) error {
		a, err := vm.Stack.Peek(1)
		if err != nil {
			return err
		}
		b, err := vm.Stack.Peek(0)
		if err != nil {
			return err
		}
		vm.Stack.Push(a)
		vm.Stack.Push(b)
		return nil
	})

	vm.define("over", func(vm *VM) error { return vm.Stack.Pick(1) })
	vm.define("2over", func(vm *VM) error {
		a, err := vm.Stack.Peek(3)
		if err != nil {
			return err
		}
		b, err := vm.Stack.Peek(2)
		if err != nil {
			return err
		}
		vm.Stack.Push(a)
		vm.Stack.Push(b)
		return nil
	})

	vm.define("swap", func(vm *VM) error { return vm.Stack.Swap(0, 1) })
	vm.define("2swap", func(vm *VM) error {
		if err := vm.Stack.Swap(0, 2); err != nil {
			return err
		}
		return vm.Stack.Swap(1, 3)
	})

	vm.define("rot", func(vm *VM) error { return vm.Stack.Roll(2) })
	vm.define("-rot", func(vm *VM) error {
		// (a b c -- c a b): roll the top to depth 2.
		v, err := vm.Stack.Pop()
		if err != nil {
			return err
		}
		a, err := vm.Stack.Pop()
		if err != nil {
			return err
		}
		b, err := vm.Stack.Pop()
		if err != nil {
			return err
		}
		vm.Stack.Push(v)
		vm.Stack.Push(b)
		vm.Stack.Push(a)
		return nil
	})

	vm.define("nip", func(vm *VM) error {
		v, err := vm.Stack.Pop()
		if err != nil {
			return err
		}
		if _, err := vm.Stack.Pop(); err != nil {
			return err
		}
		vm.Stack.Push(v)
		return nil
	})

	vm.define("tuck", func(vm *VM) error {
		if err := vm.Stack.Swap(0, 1); err != nil {
			return err
		}
		return vm.Stack.Pick(1)
	})

	vm.define("pick", func(vm *VM) error {
		n, err := vm.Stack.PopInt()
		if err != nil {
			return err
		}
		i, _ := n.I.Int64()
		return vm.Stack.Pick(int(i))
	})
	vm.define("roll", func(vm *VM) error {
		n, err := vm.Stack.PopInt()
		if err != nil {
			return err
		}
		i, _ := n.I.Int64()
		return vm.Stack.Roll(int(i))
	})

	vm.define("depth", func(vm *VM) error {
		vm.Stack.Push(NewInteger(int64(vm.Stack.Depth())))
		return nil
	})
}
