package fift

import "github.com/tonfift/fift/internal/bigint"

// words_arith.go: integer arithmetic, comparisons, logical and/or/not over
// integer flags (-1 true, 0 false), and the `fits`/`ufits`
// range checks of spec §7.

func (vm *VM) binInt(fn func(a, b bigint.Int) (bigint.Int, error)) func(vm *VM) error {
	return func(vm *VM) error {
		b, err := vm.Stack.PopInt()
		if err != nil {
			return err
		}
		a, err := vm.Stack.PopInt()
		if err != nil {
			return err
		}
		r, err := fn(a.I, b.I)
		if err != nil {
			return err
		}
		vm.Stack.Push(Integer{I: r})
		return nil
	}
}

func (vm *VM) installArithWords() {
	vm.define("+", vm.binInt(func(a, b bigint.Int) (bigint.Int, error) { return a.Add(b), nil }))
	vm.define("-", vm.binInt(func(a, b bigint.Int) (bigint.Int, error) { return a.Sub(b), nil }))
	vm.define("*", vm.binInt(func(a, b bigint.Int) (bigint.Int, error) { return a.Mul(b), nil }))

	vm.define("negate", func(vm *VM) error {
		a, err := vm.Stack.PopInt()
		if err != nil {
			return err
		}
		vm.Stack.Push(Integer{I: a.I.Neg()})
		return nil
	})
	vm.define("abs", func(vm *VM) error {
		a, err := vm.Stack.PopInt()
		if err != nil {
			return err
		}
		vm.Stack.Push(Integer{I: a.I.Abs()})
		return nil
	})

	vm.define("/", vm.binInt(func(a, b bigint.Int) (bigint.Int, error) {
		q, _, ok := a.DivMod(b)
		if !ok {
			return bigint.Int{}, DivisionByZero{}
		}
		return q, nil
	}))
	vm.define("mod", vm.binInt(func(a, b bigint.Int) (bigint.Int, error) {
		_, r, ok := a.DivMod(b)
		if !ok {
			return bigint.Int{}, DivisionByZero{}
		}
		return r, nil
	}))
	vm.define("/mod", func(vm *VM) error {
		b, err := vm.Stack.PopInt()
		if err != nil {
			return err
		}
		a, err := vm.Stack.PopInt()
		if err != nil {
			return err
		}
		q, r, ok := a.I.DivMod(b.I)
		if !ok {
			return DivisionByZero{}
		}
		vm.Stack.Push(Integer{I: q})
		vm.Stack.Push(Integer{I: r})
		return nil
	})

	vm.define("max", func(vm *VM) error {
		b, err := vm.Stack.PopInt()
		if err != nil {
			return err
		}
		a, err := vm.Stack.PopInt()
		if err != nil {
			return err
		}
		if a.I.Cmp(b.I) >= 0 {
			vm.Stack.Push(a)
		} else {
			vm.Stack.Push(b)
		}
		return nil
	})
	vm.define("min", func(vm *VM) error {
		b, err := vm.Stack.PopInt()
		if err != nil {
			return err
		}
		a, err := vm.Stack.PopInt()
		if err != nil {
			return err
		}
		if a.I.Cmp(b.I) <= 0 {
			vm.Stack.Push(a)
		} else {
			vm.Stack.Push(b)
		}
		return nil
	})

	cmp := func(test func(c int) bool) func(vm *VM) error {
		return func(vm *VM) error {
			b, err := vm.Stack.PopInt()
			if err != nil {
				return err
			}
			a, err := vm.Stack.PopInt()
			if err != nil {
				return err
			}
			vm.Stack.Push(boolInt(test(a.I.Cmp(b.I))))
			return nil
		}
	}
	vm.define("=", cmp(func(c int) bool { return c == 0 }))
	vm.define("<>", cmp(func(c int) bool { return c != 0 }))
	vm.define("<", cmp(func(c int) bool { return c < 0 }))
	vm.define(">", cmp(func(c int) bool { return c > 0 }))
	vm.define("<=", cmp(func(c int) bool { return c <= 0 }))
	vm.define(">=", cmp(func(c int) bool { return c >= 0 }))

	vm.define("0=", func(vm *VM) error {
		a, err := vm.Stack.PopInt()
		if err != nil {
			return err
		}
		vm.Stack.Push(boolInt(a.I.IsZero()))
		return nil
	})
	vm.define("0<", func(vm *VM) error {
		a, err := vm.Stack.PopInt()
		if err != nil {
			return err
		}
		vm.Stack.Push(boolInt(a.I.Sign() < 0))
		return nil
	})
	vm.define("0>", func(vm *VM) error {
		a, err := vm.Stack.PopInt()
		if err != nil {
			return err
		}
		vm.Stack.Push(boolInt(a.I.Sign() > 0))
		return nil
	})

	vm.define("and", func(vm *VM) error {
		b, err := vm.Stack.PopInt()
		if err != nil {
			return err
		}
		a, err := vm.Stack.PopInt()
		if err != nil {
			return err
		}
		vm.Stack.Push(boolInt(!a.I.IsZero() && !b.I.IsZero()))
		return nil
	})
	vm.define("or", func(vm *VM) error {
		b, err := vm.Stack.PopInt()
		if err != nil {
			return err
		}
		a, err := vm.Stack.PopInt()
		if err != nil {
			return err
		}
		vm.Stack.Push(boolInt(!a.I.IsZero() || !b.I.IsZero()))
		return nil
	})
	vm.define("not", func(vm *VM) error {
		a, err := vm.Stack.PopInt()
		if err != nil {
			return err
		}
		vm.Stack.Push(boolInt(a.I.IsZero()))
		return nil
	})

	// fits(n): signed value must fit in n bits. ufits(n): unsigned.
	vm.define("fits", func(vm *VM) error {
		n, err := vm.Stack.PopInt()
		if err != nil {
			return err
		}
		a, err := vm.Stack.PopInt()
		if err != nil {
			return err
		}
		bits, _ := n.I.Int64()
		if a.I.Bits() > int(bits) {
			return RangeError{Op: "fits"}
		}
		vm.Stack.Push(a)
		return nil
	})
	vm.define("ufits", func(vm *VM) error {
		n, err := vm.Stack.PopInt()
		if err != nil {
			return err
		}
		a, err := vm.Stack.PopInt()
		if err != nil {
			return err
		}
		bits, _ := n.I.Int64()
		if a.I.Sign() < 0 || a.I.Bits()-1 > int(bits) {
			return RangeError{Op: "ufits"}
		}
		vm.Stack.Push(a)
		return nil
	})
}

func boolInt(b bool) Integer {
	if b {
		return NewInteger(-1)
	}
	return NewInteger(0)
}
