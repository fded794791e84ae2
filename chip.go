// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hdlsim

// Identity distinguishes composite chips (semantics arise from wiring
// children) from the five builtin primitives whose semantics are
// primitive and keyed by identity rather than by composition.
type Identity int

// The builtin identities named in spec §4.7, plus Composite for every
// chip built by wiring children together.
const (
	Composite Identity = iota
	NandGate
	NotGate
	MuxGate
	DFF
	Bit
)

func (id Identity) String() string {
	switch id {
	case NandGate:
		return "Nand"
	case NotGate:
		return "Not"
	case MuxGate:
		return "Mux"
	case DFF:
		return "DFF"
	case Bit:
		return "Bit"
	default:
		return "Composite"
	}
}

// clockPhase models the Ready/Armed state machine described in spec §9:
// tick moves a clocked chip Ready -> Armed, tock moves it back. Calling
// tick twice in a row, or tock before a tick, is a UsageError.
type clockPhase int

const (
	phaseReady clockPhase = iota
	phaseArmed
)

// Connection is one child-pinline-to-parent-pinline mapping: the own
// endpoint (a pinline name plus selected pin indices on the child) and the
// foreign endpoint (a pinline name plus selected pin indices on the
// parent). |OwnIndices| always equals |ForeignIndices|.
type Connection struct {
	OwnName        string
	OwnIndices     []int
	ForeignName    string
	ForeignIndices []int
}

// Child is a reference to an inner chip instance plus its wiring into the
// host chip. Connections are partitioned at construction time into the
// ones whose own endpoint is a child input (driven from the parent before
// evaluating the child) and the ones whose own endpoint is a child output
// (read from the child after evaluating it).
type Child struct {
	Chip        *Chip
	InputConns  []Connection
	OutputConns []Connection
}

// Chip is a named entity with three disjoint pinline sets — Input,
// Internal and Output — and, for composite chips, a list of child
// instances. A chip is either builtin (Identity != Composite, no
// children, semantics by identity) or composite (Identity == Composite,
// at least one child, no intrinsic semantics). Once built, a chip's shape
// (pinlines, children, connections, Clocked, Identity) is immutable; only
// pin values mutate during evaluation.
type Chip struct {
	Name     string
	Input    PinSet
	Internal PinSet
	Output   PinSet
	Children []*Child
	Clocked  bool
	Identity Identity

	phase clockPhase
}

// hasName reports whether name is already used by one of c's three
// disjoint pinline sets.
func (c *Chip) hasName(name string) bool {
	return c.Input.Has(name) || c.Internal.Has(name) || c.Output.Has(name)
}

// line returns the named pinline, searching Input, then Internal, then
// Output. Every connection's foreign endpoint must resolve to exactly one
// of these three sets.
func (c *Chip) line(name string) *Pinline {
	if l := c.Input.Line(name); l != nil {
		return l
	}
	if l := c.Internal.Line(name); l != nil {
		return l
	}
	return c.Output.Line(name)
}

// SetInput writes vals to the named input pinline. It is a UsageError if
// vals does not have the pinline's declared width or if name is not an
// input of c.
func (c *Chip) SetInput(name string, vals []bool) error {
	l := c.Input.Line(name)
	if l == nil {
		return &UsageError{Msg: "no such input pinline " + name}
	}
	return l.SetValues(vals)
}

// GetOutput returns the current values of the named output pinline. The
// values reflect the most recently completed Evaluate or Tock call.
func (c *Chip) GetOutput(name string) ([]bool, bool) {
	l := c.Output.Line(name)
	if l == nil {
		return nil, false
	}
	return l.Values(), true
}

// clone returns a fresh chip instance with the same shape (pinlines,
// children shapes, connections, Clocked, Identity) but independent,
// zero-valued pin storage throughout — including recursively cloned
// children. Used when instantiating a registry template as a Part.
func (c *Chip) clone() *Chip {
	nc := &Chip{
		Name:     c.Name,
		Input:    c.Input.clone(),
		Internal: c.Internal.clone(),
		Output:   c.Output.clone(),
		Clocked:  c.Clocked,
		Identity: c.Identity,
		phase:    phaseReady,
	}
	if len(c.Children) > 0 {
		nc.Children = make([]*Child, len(c.Children))
		for i, ch := range c.Children {
			nc.Children[i] = &Child{
				Chip:        ch.Chip.clone(),
				InputConns:  append([]Connection(nil), ch.InputConns...),
				OutputConns: append([]Connection(nil), ch.OutputConns...),
			}
		}
	}
	return nc
}
