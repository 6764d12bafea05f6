package fift

// words_compare.go: the polymorphic equality/ordering primitives of
// spec §4.3, over the Eq/Eqv/Equal/Compare helpers in value.go.

func (vm *VM) installCompareWords() {
	binPred := func(test func(a, b Value) bool) func(vm *VM) error {
		return func(vm *VM) error {
			b, err := vm.Stack.Pop()
			if err != nil {
				return err
			}
			a, err := vm.Stack.Pop()
			if err != nil {
				return err
			}
			vm.Stack.Push(boolInt(test(a, b)))
			return nil
		}
	}
	vm.define("eq?", binPred(Eq))
	vm.define("eqv?", binPred(Eqv))
	vm.define("equal?", binPred(Equal))

	vm.define("null?", func(vm *VM) error {
		v, err := vm.Stack.Pop()
		if err != nil {
			return err
		}
		_, isNull := v.(Null)
		vm.Stack.Push(boolInt(isNull))
		return nil
	})
}
