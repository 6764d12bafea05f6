package fift

import (
	"os"
	"path/filepath"
)

// words_io.go: output and file/include primitives (spec §4.6's
// `include`, spec §6.4's value printing).

func (vm *VM) installIOWords() {
	vm.define(".", func(vm *VM) error {
		v, err := vm.Stack.Pop()
		if err != nil {
			return err
		}
		_, err = vm.Out.Write([]byte(Display(v) + " "))
		return err
	})
	vm.define(".l", func(vm *VM) error {
		v, err := vm.Stack.Pop()
		if err != nil {
			return err
		}
		_, err = vm.Out.Write([]byte(Display(v)))
		return err
	})
	vm.define(".s", func(vm *VM) error {
		for _, v := range vm.Stack.Values() {
			if _, err := vm.Out.Write([]byte(Display(v) + " ")); err != nil {
				return err
			}
		}
		return nil
	})
	vm.define("type", func(vm *VM) error {
		s, err := vm.Stack.PopString()
		if err != nil {
			return err
		}
		_, err = vm.Out.Write([]byte(s))
		return err
	})
	vm.define("cr", func(vm *VM) error { _, err := vm.Out.Write([]byte("\n")); return err })
	vm.define("space", func(vm *VM) error { _, err := vm.Out.Write([]byte(" ")); return err })
	vm.define("emit", func(vm *VM) error {
		n, err := vm.Stack.PopInt()
		if err != nil {
			return err
		}
		r, _ := n.I.Int64()
		_, err = vm.Out.Write([]byte(string(rune(r))))
		return err
	})

	vm.define("include", func(vm *VM) error {
		path, err := vm.Stack.PopString()
		if err != nil {
			return err
		}
		f, err := vm.openInclude(string(path))
		if err != nil {
			return err
		}
		vm.In.Push(f)
		return nil
	})
}

// openInclude resolves name against the include search path (spec
// §6.2): the name itself first, then each directory in vm.IncludePath.
func (vm *VM) openInclude(name string) (*os.File, error) {
	if f, err := os.Open(name); err == nil {
		return f, nil
	} else if !os.IsNotExist(err) && !filepath.IsAbs(name) {
		return nil, IoError{Op: "include " + name, Err: err}
	}
	for _, dir := range vm.IncludePath {
		f, err := os.Open(filepath.Join(dir, name))
		if err == nil {
			return f, nil
		}
	}
	return nil, IoError{Op: "include " + name, Err: os.ErrNotExist}
}
