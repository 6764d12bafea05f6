package fift

// Executor state (spec §4.5): the current continuation, a control stack
// of suspended continuations pending resumption, and the helpers natives
// use to drive them (TailCall / Enter). Grounded structurally on the
// teacher's `internals.go` `step`/`exec` loop, generalized from "array of
// int opcodes" to the Continuation variants of spec §4.4.

// TailCall replaces the current continuation with c, folding in
// whatever was already queued to run next so that repeated tail calls
// never grow the control stack (spec §8's O(1)-host-frames property).
func (vm *VM) TailCall(c *Continuation) {
	vm.Current = withNext(c, vm.Current)
}

// Enter suspends the caller's resume point on the control stack and
// jumps into c; when c's own chain runs out (Current becomes nil), the
// resume point is popped and execution continues there.
func (vm *VM) Enter(c *Continuation) {
	vm.Control = append(vm.Control, vm.Current)
	vm.Current = c
}

// runContinuation drives the executor until Current and the control stack are both
// empty (the continuation, and everything suspended above it, completed)
// or a primitive aborts.
func (vm *VM) runContinuation() error {
	for {
		if vm.Current == nil {
			if len(vm.Control) == 0 {
				return nil
			}
			i := len(vm.Control) - 1
			vm.Current = vm.Control[i]
			vm.Control = vm.Control[:i]
			continue
		}
		if err := vm.dispatch(vm.Current); err != nil {
			return err
		}
	}
}

// Invoke runs c to completion as a fresh top-level call: it temporarily
// swaps in empty Current/Control, invokes c, and restores the caller's
// executor state afterward. This is what the tokenizer uses to run a
// word (an active word always, an ordinary one when not compiling), and
// what `times`/`while`/`until` use to run their bodies; `execute` instead
// tail-calls its argument (see words_string.go).
func (vm *VM) Invoke(c *Continuation) error {
	savedCur, savedCtl := vm.Current, vm.Control
	vm.Current, vm.Control = c, nil
	err := vm.runContinuation()
	vm.Current, vm.Control = savedCur, savedCtl
	return err
}

func (vm *VM) dispatch(step *Continuation) error {
	switch step.Kind {
	case ContNative:
		vm.Current = step.Next
		if step.Fn == nil {
			return nil
		}
		return step.Fn(vm)

	case ContBound:
		vm.Stack.vals = append(vm.Stack.vals, step.Captured...)
		vm.TailCall(step.Inner)
		return nil

	case ContQuotation:
		return vm.dispatchQuotation(step)

	default:
		return TypeMismatch{Expected: "Continuation", Got: "unknown kind"}
	}
}

func (vm *VM) dispatchQuotation(step *Continuation) error {
	if step.Pos >= len(step.Entries) {
		vm.Current = step.Next
		return nil
	}
	entry := step.Entries[step.Pos]
	isLast := step.Pos+1 >= len(step.Entries)

	if !entry.IsCall() {
		vm.Stack.Push(entry.Push)
		if isLast {
			vm.Current = step.Next
		} else {
			vm.Current = &Continuation{Kind: ContQuotation, Entries: step.Entries, Pos: step.Pos + 1, Next: step.Next}
		}
		return nil
	}

	if isLast {
		// tail-call: the whole quotation's continuation becomes exactly
		// this entry's, chained onto what runs after the quotation.
		vm.Current = withNext(entry.Call, step.Next)
		return nil
	}

	next := &Continuation{Kind: ContQuotation, Entries: step.Entries, Pos: step.Pos + 1, Next: step.Next}
	vm.Control = append(vm.Control, next)
	vm.Current = entry.Call
	return nil
}
