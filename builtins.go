package fift

// builtins.go wires every native primitive into the base dictionary
// scope at VM construction time (spec §4.8's defining words are
// themselves entries built the same way). Grounded on the teacher's
// symbol-table bootstrap in first.go (a flat table of name -> opcode
// function), generalized to name -> *Continuation.

// define installs an ordinary (ops-are-appended-when-compiling) native.
func (vm *VM) define(name string, fn func(vm *VM) error) {
	_ = vm.Dict.Define(name, &Entry{Code: NewNative(name, fn)}, true)
}

// defineActive installs an active (immediate) native.
func (vm *VM) defineActive(name string, fn func(vm *VM) error) {
	_ = vm.Dict.Define(name, &Entry{Active: true, Code: NewNative(name, fn)}, true)
}

// defineLineReader installs an active native that additionally consumes
// the rest of the current source line before running (the `::_` shape).
func (vm *VM) defineLineReader(name string, fn func(vm *VM) error) {
	_ = vm.Dict.Define(name, &Entry{Active: true, LineReader: true, Code: NewNative(name, fn)}, true)
}

func (vm *VM) installBuiltins() {
	vm.installStackWords()
	vm.installArithWords()
	vm.installCompareWords()
	vm.installStringWords()
	vm.installListWords()
	vm.installBoxWords()
	vm.installCellWords()
	vm.installControlWords()
	vm.installDefineWords()
	vm.installIOWords()
	vm.installLispWords()
	vm.installCommentWords()
}
