// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hdlsim

// The five builtin primitives of spec §4.7. Each has a fixed pinline
// shape and no children; their semantics are implemented directly in
// eval.go, keyed by Identity rather than by composition.

func newNand() *Chip {
	c := &Chip{Name: "Nand", Identity: NandGate, Input: newPinSet(), Internal: newPinSet(), Output: newPinSet()}
	must(c.Input.add("a", 1))
	must(c.Input.add("b", 1))
	must(c.Output.add("out", 1))
	return c
}

func newNot() *Chip {
	c := &Chip{Name: "Not", Identity: NotGate, Input: newPinSet(), Internal: newPinSet(), Output: newPinSet()}
	must(c.Input.add("in", 1))
	must(c.Output.add("out", 1))
	return c
}

func newMux() *Chip {
	c := &Chip{Name: "Mux", Identity: MuxGate, Input: newPinSet(), Internal: newPinSet(), Output: newPinSet()}
	must(c.Input.add("a", 1))
	must(c.Input.add("b", 1))
	must(c.Input.add("sel", 1))
	must(c.Output.add("out", 1))
	return c
}

func newDFF() *Chip {
	c := &Chip{Name: "DFF", Identity: DFF, Clocked: true, Input: newPinSet(), Internal: newPinSet(), Output: newPinSet()}
	must(c.Input.add("in", 1))
	must(c.Internal.add("buf0", 1))
	must(c.Internal.add("buf1", 1))
	must(c.Output.add("out", 1))
	return c
}

func newBit() *Chip {
	c := &Chip{Name: "Bit", Identity: Bit, Clocked: true, Input: newPinSet(), Internal: newPinSet(), Output: newPinSet()}
	must(c.Input.add("in", 1))
	must(c.Input.add("load", 1))
	must(c.Internal.add("buf0", 1))
	must(c.Internal.add("buf1", 1))
	must(c.Output.add("out", 1))
	return c
}

// must panics on error; only used while building the fixed, known-good
// shapes of the builtin primitives above, where an error would be a bug
// in this file, not a user-facing condition.
func must(err error) {
	if err != nil {
		panic(err)
	}
}
