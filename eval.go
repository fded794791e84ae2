// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hdlsim

// Evaluate drives combinational stabilisation for an unclocked chip. If c
// is builtin, its output is computed directly (spec §4.7). If c is
// composite, each child is evaluated in declared order: sendInput,
// recursively Evaluate, receiveOutput. The caller is responsible for
// ordering children topologically with respect to their internal-pin
// dependencies; Evaluate performs no cycle detection or fixed-point
// iteration.
//
// Calling Evaluate on a clocked chip is a UsageError.
func (c *Chip) Evaluate() (*PinSet, error) {
	if c.Clocked {
		return nil, &UsageError{Msg: "Evaluate called on clocked chip " + c.Name}
	}
	c.evaluate()
	return &c.Output, nil
}

func (c *Chip) evaluate() {
	switch c.Identity {
	case NandGate:
		a, b := c.Input.Line("a").Get(0), c.Input.Line("b").Get(0)
		c.Output.Line("out").Set(0, !(a && b))
	case NotGate:
		in := c.Input.Line("in").Get(0)
		c.Output.Line("out").Set(0, !in)
	case MuxGate:
		a, b, sel := c.Input.Line("a").Get(0), c.Input.Line("b").Get(0), c.Input.Line("sel").Get(0)
		out := a
		if sel {
			out = b
		}
		c.Output.Line("out").Set(0, out)
	default:
		// An unclocked chip has no clocked children by construction: the
		// Clocked flag is the OR of every child's Clocked flag.
		for _, child := range c.Children {
			sendInput(c, child)
			child.Chip.evaluate()
			receiveOutput(c, child)
		}
	}
}

// Tick is the input-capture phase of a clocked step (spec §4.6): it
// propagates combinational inputs by evaluating every unclocked child in
// declared order, then sends input to and ticks every clocked child in
// declared order. Tick returns no output and tocks no clocked child, so
// latched state reaches the chip's pins only on Tock; pins driven by
// unclocked children are updated from the current inputs.
//
// Calling Tick on an unclocked chip, or calling it twice without an
// intervening Tock, is a UsageError.
func (c *Chip) Tick() error {
	if !c.Clocked {
		return &UsageError{Msg: "Tick called on unclocked chip " + c.Name}
	}
	if c.phase != phaseReady {
		return &UsageError{Msg: "Tick called out of sequence on chip " + c.Name}
	}
	c.tick()
	c.phase = phaseArmed
	return nil
}

func (c *Chip) tick() {
	switch c.Identity {
	case DFF:
		buf0, buf1 := c.Internal.Line("buf0"), c.Internal.Line("buf1")
		buf1.Set(0, buf0.Get(0))
		buf0.Set(0, c.Input.Line("in").Get(0))
	case Bit:
		buf0, buf1 := c.Internal.Line("buf0"), c.Internal.Line("buf1")
		buf1.Set(0, buf0.Get(0))
		if c.Input.Line("load").Get(0) {
			buf0.Set(0, c.Input.Line("in").Get(0))
		}
	default:
		for _, child := range c.Children {
			if !child.Chip.Clocked {
				sendInput(c, child)
				child.Chip.evaluate()
				receiveOutput(c, child)
			}
		}
		for _, child := range c.Children {
			if child.Chip.Clocked {
				sendInput(c, child)
				child.Chip.tick()
			}
		}
	}
}

// Tock is the output-emission phase of a clocked step (spec §4.6): it
// tocks every clocked child in declared order and latches its output into
// the parent, then evaluates every unclocked child in declared order so
// combinational outputs stabilise against the newly latched state. It
// returns a reference to the chip's output pinlines.
//
// Calling Tock on an unclocked chip, or calling it before a matching Tick,
// is a UsageError.
func (c *Chip) Tock() (*PinSet, error) {
	if !c.Clocked {
		return nil, &UsageError{Msg: "Tock called on unclocked chip " + c.Name}
	}
	if c.phase != phaseArmed {
		return nil, &UsageError{Msg: "Tock called out of sequence on chip " + c.Name}
	}
	c.tock()
	c.phase = phaseReady
	return &c.Output, nil
}

func (c *Chip) tock() {
	switch c.Identity {
	case DFF, Bit:
		out, buf1 := c.Output.Line("out"), c.Internal.Line("buf1")
		out.Set(0, buf1.Get(0))
	default:
		for _, child := range c.Children {
			if child.Chip.Clocked {
				child.Chip.tock()
				receiveOutput(c, child)
			}
		}
		for _, child := range c.Children {
			if !child.Chip.Clocked {
				sendInput(c, child)
				child.Chip.evaluate()
				receiveOutput(c, child)
			}
		}
	}
}
