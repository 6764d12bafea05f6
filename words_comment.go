package fift

import "io"

// words_comment.go: `//` line comments and nestable `/* ... */` block
// comments (spec §6.3), scanned directly off the source cursor the same
// way `"` and the backtick word read their own delimiters in
// words_string.go -- so the library sources spec §1 expects the core to
// load (Lists.fif, Lisp.fif, TonUtil.fif) can carry ordinary comments.

func (vm *VM) installCommentWords() {
	vm.defineActive("//", func(vm *VM) error {
		_, err := vm.In.RestOfLine()
		if err != nil && err != io.EOF {
			return err
		}
		return nil
	})

	vm.defineActive("/*", func(vm *VM) error {
		depth := 1
		var prev rune
		havePrev := false
		for depth > 0 {
			r, _, err := vm.In.ReadRune()
			if err == io.EOF {
				return ParseError{Msg: "unterminated /* comment"}
			}
			if err != nil {
				return err
			}
			switch {
			case havePrev && prev == '*' && r == '/':
				depth--
				havePrev = false
			case havePrev && prev == '/' && r == '*':
				depth++
				havePrev = false
			default:
				prev, havePrev = r, true
			}
		}
		return nil
	})
}
