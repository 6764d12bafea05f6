package fift

// words_cell.go: a minimal slice of the TVM Cell/Slice/Builder vocabulary
// (spec §3.1's "handled opaquely by the core"). Deep cell semantics
// (serialization, hashing, the full Asm.fif assembler) are the external
// collaborator spec.md §1 calls out of scope; these words exist only so
// that library code can hold and pass around Cell/Slice/Builder values.

func (vm *VM) installCellWords() {
	vm.define("<b", func(vm *VM) error { vm.Stack.Push(NewBuilder()); return nil })

	vm.define("b>", func(vm *VM) error {
		v, err := vm.Stack.Pop()
		if err != nil {
			return err
		}
		b, ok := v.(*Builder)
		if !ok {
			return TypeMismatch{Expected: "Builder", Got: TypeOf(v)}
		}
		vm.Stack.Push(b.Finalize())
		return nil
	})

	vm.define("i,", func(vm *VM) error { return vm.storeBits(true) })
	vm.define("u,", func(vm *VM) error { return vm.storeBits(false) })

	vm.define("ref,", func(vm *VM) error {
		v, err := vm.Stack.Pop()
		if err != nil {
			return err
		}
		c, ok := v.(*Cell)
		if !ok {
			return TypeMismatch{Expected: "Cell", Got: TypeOf(v)}
		}
		bv, err := vm.Stack.Pop()
		if err != nil {
			return err
		}
		b, ok := bv.(*Builder)
		if !ok {
			return TypeMismatch{Expected: "Builder", Got: TypeOf(bv)}
		}
		if err := b.StoreRef(c); err != nil {
			return err
		}
		vm.Stack.Push(b)
		return nil
	})

	vm.define("<s", func(vm *VM) error {
		v, err := vm.Stack.Pop()
		if err != nil {
			return err
		}
		c, ok := v.(*Cell)
		if !ok {
			return TypeMismatch{Expected: "Cell", Got: TypeOf(v)}
		}
		vm.Stack.Push(NewSlice(c))
		return nil
	})

	vm.define("i@", func(vm *VM) error { return vm.loadBits(true) })
	vm.define("u@", func(vm *VM) error { return vm.loadBits(false) })

	vm.define("ref@", func(vm *VM) error {
		v, err := vm.Stack.Pop()
		if err != nil {
			return err
		}
		s, ok := v.(*Slice)
		if !ok {
			return TypeMismatch{Expected: "Slice", Got: TypeOf(v)}
		}
		c, err := s.LoadRef()
		if err != nil {
			return err
		}
		vm.Stack.Push(s)
		vm.Stack.Push(c)
		return nil
	})

	vm.define("s-empty?", func(vm *VM) error {
		v, err := vm.Stack.Pop()
		if err != nil {
			return err
		}
		s, ok := v.(*Slice)
		if !ok {
			return TypeMismatch{Expected: "Slice", Got: TypeOf(v)}
		}
		vm.Stack.Push(boolInt(s.BitsLeft() == 0 && s.RefsLeft() == 0))
		return nil
	})
}

func (vm *VM) storeBits(signed bool) error {
	n, err := vm.Stack.PopInt()
	if err != nil {
		return err
	}
	bits, _ := n.I.Int64()
	v, err := vm.Stack.Pop()
	if err != nil {
		return err
	}
	val, ok := v.(Integer)
	if !ok {
		return TypeMismatch{Expected: "Integer", Got: TypeOf(v)}
	}
	bv, err := vm.Stack.Pop()
	if err != nil {
		return err
	}
	b, ok := bv.(*Builder)
	if !ok {
		return TypeMismatch{Expected: "Builder", Got: TypeOf(bv)}
	}
	want := int(bits)
	if !signed {
		want++
	}
	if val.I.Bits() > want || (!signed && val.I.Sign() < 0) {
		return NumericOverflowIntoFixed{Bits: int(bits), Have: val.I.Bits()}
	}
	u, _ := val.I.Int64()
	if err := b.StoreBits(uint64(u)&mask(int(bits)), int(bits)); err != nil {
		return err
	}
	vm.Stack.Push(b)
	return nil
}

func (vm *VM) loadBits(signed bool) error {
	n, err := vm.Stack.PopInt()
	if err != nil {
		return err
	}
	bits, _ := n.I.Int64()
	v, err := vm.Stack.Pop()
	if err != nil {
		return err
	}
	s, ok := v.(*Slice)
	if !ok {
		return TypeMismatch{Expected: "Slice", Got: TypeOf(v)}
	}
	u, err := s.LoadBits(int(bits))
	if err != nil {
		return err
	}
	if signed && bits > 0 && u&(1<<uint(bits-1)) != 0 {
		u -= 1 << uint(bits)
	}
	vm.Stack.Push(s)
	vm.Stack.Push(NewInteger(int64(u)))
	return nil
}

func mask(bits int) uint64 {
	if bits >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << uint(bits)) - 1
}
