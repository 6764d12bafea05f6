package fift

// words_list.go: the cons-list primitives (spec §3.1 "List cell"), plus
// the native list-reverse and the `( ... )` list literal. Other list
// utilities such as list-length are defined in Fift itself over these
// primitives by the bundled preamble (preamble.go); `.l` is a native
// printer in words_io.go.

func (vm *VM) installListWords() {
	vm.define("cons", func(vm *VM) error {
		tail, err := vm.Stack.Pop()
		if err != nil {
			return err
		}
		head, err := vm.Stack.Pop()
		if err != nil {
			return err
		}
		vm.Stack.Push(NewPair(head, tail))
		return nil
	})
	vm.define("uncons", func(vm *VM) error {
		v, err := vm.Stack.Pop()
		if err != nil {
			return err
		}
		p, ok := v.(*Pair)
		if !ok {
			return TypeMismatch{Expected: "Pair", Got: TypeOf(v)}
		}
		vm.Stack.Push(p.Head)
		vm.Stack.Push(p.Tail)
		return nil
	})
	vm.define("car", func(vm *VM) error {
		v, err := vm.Stack.Pop()
		if err != nil {
			return err
		}
		p, ok := v.(*Pair)
		if !ok {
			return TypeMismatch{Expected: "Pair", Got: TypeOf(v)}
		}
		vm.Stack.Push(p.Head)
		return nil
	})
	vm.define("cdr", func(vm *VM) error {
		v, err := vm.Stack.Pop()
		if err != nil {
			return err
		}
		p, ok := v.(*Pair)
		if !ok {
			return TypeMismatch{Expected: "Pair", Got: TypeOf(v)}
		}
		vm.Stack.Push(p.Tail)
		return nil
	})
	vm.define("pair?", func(vm *VM) error {
		v, err := vm.Stack.Pop()
		if err != nil {
			return err
		}
		_, ok := v.(*Pair)
		vm.Stack.Push(boolInt(ok))
		return nil
	})
	vm.define("nil", func(vm *VM) error { vm.Stack.Push(Null{}); return nil })

	// list-reverse is native rather than written in preamble Fift text
	// (unlike the higher-level helpers in preamble.go) because it is
	// exercised directly by a spec §8 invariant property
	// (list-reverse . list-reverse == identity) and a concrete
	// end-to-end scenario; keeping it in Go keeps that path independent
	// of the preamble actually having been loaded (e.g. under `-n`).
	vm.define("list-reverse", func(vm *VM) error {
		v, err := vm.Stack.Pop()
		if err != nil {
			return err
		}
		var acc Value = Null{}
		cur := v
		for {
			p, ok := cur.(*Pair)
			if !ok {
				if _, isNull := cur.(Null); !isNull {
					return TypeMismatch{Expected: "list", Got: TypeOf(cur)}
				}
				break
			}
			acc = NewPair(p.Head, acc)
			cur = p.Tail
		}
		vm.Stack.Push(acc)
		return nil
	})

	// ( ... ) is Lists.fif's list-literal idiom (spec §8 scenario 5:
	// `( 1 2 3 ) list-reverse .l`): `(` marks the stack depth, `)` conses
	// everything above the mark into a list, innermost (top of stack)
	// first, so elements read left-to-right land in the same order.
	vm.define("(", func(vm *VM) error { vm.Stack.Push(listMark{}); return nil })
	vm.define(")", func(vm *VM) error {
		var acc Value = Null{}
		for {
			v, err := vm.Stack.Pop()
			if err != nil {
				return err
			}
			if _, ok := v.(listMark); ok {
				break
			}
			acc = NewPair(v, acc)
		}
		vm.Stack.Push(acc)
		return nil
	})
}

// listMark is the `(` sentinel consumed by `)`; it is never otherwise
// observable from Fift code.
type listMark struct{}

func (listMark) TypeName() string { return "listMark" }
func (listMark) String() string   { return "(" }
