package fift

import "strings"

// preamble.go embeds Fift.fif, the small bootstrap library loaded before
// user input (spec §6.1's default mode, and the GLOSSARY's "Preamble"
// entry). It is written in Fift itself, over the core primitives
// installed by builtins.go, demonstrating the self-hosting spec.md §1
// calls for: list-length here is ordinary (non-tail) recursion built
// from `recursive`/`uncons`/`cond`, unlike list-reverse (kept
// native; see words_list.go) or Lisp evaluation (kept native; see
// lisp.go).
const preambleSource = `
{ 1 + } : 1+
{ 1 - } : 1-
{ dup + } : 2*
{ dup * } : square
{ dup 0< { negate } { } cond } : abs2

recursive list-length {
  dup null?
  { drop 0 }
  { uncons swap drop list-length execute 1+ }
  cond
}
`

type namedReader struct {
	*strings.Reader
	name string
}

func (r namedReader) Name() string { return r.name }

// WithNoPreamble suppresses loading Fift.fif (the `-n` flag of spec
// §6.1).
func WithNoPreamble() Option {
	return optionFunc(func(vm *VM) { vm.skipPreamble = true })
}

// WithPreamble replaces the built-in Fift.fif text with src (the `-L`
// flag's "explicit path to the preamble file", after the CLI has read
// that file).
func WithPreamble(src string) Option {
	return optionFunc(func(vm *VM) { vm.preamble = src })
}

func (vm *VM) loadPreamble() {
	if vm.skipPreamble {
		return
	}
	src := vm.preamble
	if src == "" {
		src = preambleSource
	}
	vm.In.Push(namedReader{Reader: strings.NewReader(src), name: "Fift.fif"})
}
