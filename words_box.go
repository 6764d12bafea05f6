package fift

// words_box.go: Box operations (spec §3.1/§4.8) -- the sole mutable
// reference type. `box` wraps a value; `@`/`!` read/write it.

func (vm *VM) installBoxWords() {
	vm.define("box", func(vm *VM) error {
		v, err := vm.Stack.Pop()
		if err != nil {
			return err
		}
		vm.Stack.Push(NewBox(v))
		return nil
	})
	vm.define("@", func(vm *VM) error {
		b, err := vm.Stack.PopBox()
		if err != nil {
			return err
		}
		vm.Stack.Push(b.Val)
		return nil
	})
	vm.define("!", func(vm *VM) error {
		b, err := vm.Stack.PopBox()
		if err != nil {
			return err
		}
		v, err := vm.Stack.Pop()
		if err != nil {
			return err
		}
		b.Val = v
		return nil
	})
}
