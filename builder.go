// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hdlsim

import (
	"github.com/dbernard/hdlsim/internal/hdl"
	"github.com/pkg/errors"
)

// Build turns a parsed chip definition into a constructed, validated Chip,
// resolving each Part against reg. This is the chip construction step of
// spec §4.4: it derives Internal pinlines, partitions connections, computes
// the Clocked flag, and validates widths, indices and pinline references
// before returning. The returned chip is immutable in shape; only pin
// values change from here on.
func Build(def *hdl.ChipDef, reg *Registry) (*Chip, error) {
	c := &Chip{
		Input:    newPinSet(),
		Internal: newPinSet(),
		Output:   newPinSet(),
		Name:     def.Name,
		Identity: Composite,
	}

	for _, d := range def.Inputs {
		if err := c.Input.add(d.Name, d.Width); err != nil {
			return nil, errors.Wrapf(err, "chip %s: input %s", def.Name, d.Name)
		}
	}
	for _, d := range def.Outputs {
		if c.Input.Has(d.Name) {
			return nil, &WiringError{Msg: "chip " + def.Name + ": " + d.Name + " declared as both input and output"}
		}
		if err := c.Output.add(d.Name, d.Width); err != nil {
			return nil, errors.Wrapf(err, "chip %s: output %s", def.Name, d.Name)
		}
	}

	for _, part := range def.Parts {
		template, ok := reg.Lookup(part.ChipName)
		if !ok {
			return nil, &UnknownChip{Name: part.ChipName, Pos: part.Pos}
		}
		child := &Child{Chip: template.clone()}
		if err := wireChild(c, child, part); err != nil {
			return nil, errors.Wrapf(err, "chip %s: part %s", def.Name, part.ChipName)
		}
		c.Children = append(c.Children, child)
		c.Clocked = c.Clocked || child.Chip.Clocked
	}

	if err := checkDuplicateDrivers(c); err != nil {
		return nil, err
	}

	return c, nil
}

// wireChild resolves every Assign of part against child's own pinlines and
// against parent's Input/Internal/Output, appending a Connection to either
// child.InputConns or child.OutputConns and, when needed, creating a new
// Internal pinline on parent.
func wireChild(parent *Chip, child *Child, part hdl.PartDecl) error {
	for _, a := range part.Assigns {
		isInput := child.Chip.Input.Has(a.Own.Name)
		isOutput := !isInput && child.Chip.Output.Has(a.Own.Name)
		if !isInput && !isOutput {
			return &WiringError{Msg: "no pin named " + a.Own.Name + " on " + child.Chip.Name}
		}

		var ownSet *PinSet
		if isInput {
			ownSet = &child.Chip.Input
		} else {
			ownSet = &child.Chip.Output
		}
		ownWidth, _ := ownSet.Width(a.Own.Name)

		ownIdx, foreignIdx, err := resolveConnection(a.Own, ownWidth, a.Foreign)
		if err != nil {
			return err
		}

		if err := bindForeign(parent, a.Foreign.Name, foreignIdx); err != nil {
			return err
		}

		conn := Connection{
			OwnName:        a.Own.Name,
			OwnIndices:     ownIdx,
			ForeignName:    a.Foreign.Name,
			ForeignIndices: foreignIdx,
		}
		if isInput {
			child.InputConns = append(child.InputConns, conn)
		} else {
			child.OutputConns = append(child.OutputConns, conn)
		}
	}
	return nil
}

// bindForeign makes sure parent has a pinline named name wide enough for
// the indices in idx, creating a new Internal pinline of width
// len(idx) if name is not already one of parent's Input/Internal/Output
// pinlines. A pre-existing pinline (from an earlier connection, or an
// Input/Output declared on the chip) is reused; if it was created by an
// earlier connection, its width must agree with len(idx) (spec §4.4).
func bindForeign(parent *Chip, name string, idx []int) error {
	if l := parent.line(name); l != nil {
		if l.Width() != len(idx) && !parent.Input.Has(name) && !parent.Output.Has(name) {
			return &WiringError{Msg: "pin " + name + " used with inconsistent width"}
		}
		for _, i := range idx {
			if i < 0 || i >= l.Width() {
				return &WiringError{Msg: "index out of range for pin " + name}
			}
		}
		return nil
	}
	return parent.Internal.add(name, len(idx))
}

// checkDuplicateDrivers enforces Open Question (a): two output connections
// (from any children) that drive the same (pinline, index) pair are a
// WiringError rather than a last-write-wins overwrite.
func checkDuplicateDrivers(c *Chip) error {
	driven := make(map[string]bool)
	for _, child := range c.Children {
		for _, conn := range child.OutputConns {
			for _, i := range conn.ForeignIndices {
				key := conn.ForeignName + "#" + itoa(i)
				if driven[key] {
					return &WiringError{Msg: "pin " + conn.ForeignName + "[" + itoa(i) + "] driven by more than one output"}
				}
				driven[key] = true
			}
		}
	}
	return nil
}

// resolveConnection computes the own and foreign index lists for one
// Assign. ownWidth is always known (the own pinline belongs to an already
// built child). When a side omits its index/range ("whole pinline"), its
// index list mirrors the other side's length; when both sides omit it,
// the connection spans the own pinline's full width — which collapses to
// the single index [0] for a width-1 pinline, matching spec §4.3.
func resolveConnection(own hdl.PinRef, ownWidth int, foreign hdl.PinRef) ([]int, []int, error) {
	ownExplicit := own.Kind != hdl.RefWhole
	foreignExplicit := foreign.Kind != hdl.RefWhole

	var ownIdx, foreignIdx []int
	var err error
	if ownExplicit {
		ownIdx, err = indicesFromRef(own, ownWidth, true)
		if err != nil {
			return nil, nil, err
		}
	}
	if foreignExplicit {
		foreignIdx, err = indicesFromRef(foreign, 0, false)
		if err != nil {
			return nil, nil, err
		}
	}

	switch {
	case ownExplicit && foreignExplicit:
		if len(ownIdx) != len(foreignIdx) {
			return nil, nil, &WiringError{Msg: "connection width mismatch between " + own.Name + " and " + foreign.Name}
		}
	case ownExplicit && !foreignExplicit:
		foreignIdx = seq(len(ownIdx))
	case !ownExplicit && foreignExplicit:
		if len(foreignIdx) > ownWidth {
			return nil, nil, &WiringError{Msg: "connection width mismatch between " + own.Name + " and " + foreign.Name}
		}
		ownIdx = seq(len(foreignIdx))
	default:
		ownIdx = seq(ownWidth)
		foreignIdx = seq(ownWidth)
	}
	return ownIdx, foreignIdx, nil
}

// indicesFromRef expands a PinRef into an explicit index list. When
// boundCheck is true (own endpoints, whose width is always known already)
// indices are validated against width; foreign endpoints are validated
// later, once their pinline is resolved or created by bindForeign.
func indicesFromRef(ref hdl.PinRef, width int, boundCheck bool) ([]int, error) {
	switch ref.Kind {
	case hdl.RefIndex:
		if boundCheck && (ref.Index < 0 || ref.Index >= width) {
			return nil, &WiringError{Msg: "index out of range for pin " + ref.Name}
		}
		return []int{ref.Index}, nil
	case hdl.RefRange:
		if ref.Start > ref.End {
			return nil, &WiringError{Msg: "invalid range for pin " + ref.Name}
		}
		if boundCheck && (ref.Start < 0 || ref.End >= width) {
			return nil, &WiringError{Msg: "range out of bounds for pin " + ref.Name}
		}
		return seqRange(ref.Start, ref.End), nil
	default:
		return seq(width), nil
	}
}

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func seqRange(start, end int) []int {
	out := make([]int, end-start+1)
	for i := range out {
		out[i] = start + i
	}
	return out
}
