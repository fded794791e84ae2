// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hdl

// RefKind distinguishes the three ways a pin name may appear on either
// side of an Assign: unadorned (the whole pinline), with a single index,
// or with a range.
type RefKind int

// Kinds of pin reference recognised in an Assign.
const (
	RefWhole RefKind = iota
	RefIndex
	RefRange
)

// PinRef is one side of an Assign: a pinline name plus an optional index
// or range selecting a subset of its pins.
type PinRef struct {
	Name  string
	Pos   Position
	Kind  RefKind
	Index int // valid when Kind == RefIndex
	Start int // valid when Kind == RefRange
	End   int // valid when Kind == RefRange
}

func refFromIdent(id *Ident) PinRef {
	r := PinRef{Name: id.Name, Pos: id.Pos}
	switch {
	case id.HasRange:
		r.Kind = RefRange
		r.Start, r.End = id.Start, id.End
	case id.HasIndex:
		r.Kind = RefIndex
		r.Index = id.Index
	default:
		r.Kind = RefWhole
	}
	return r
}

// Assign is one "own = foreign" pair inside a Part's parenthesised
// connection list.
type Assign struct {
	Own     PinRef
	Foreign PinRef
}

// PartDecl is one instantiation of a chip within a PARTS block.
type PartDecl struct {
	ChipName string
	Assigns  []Assign
	Pos      Position
}

// PinDecl is one entry of an IN or OUT list: a pinline name and its
// declared width (1 when no "[N]" suffix is present).
type PinDecl struct {
	Name  string
	Width int
	Pos   Position
}

// ChipDef is the tentative, unvalidated chip description produced by the
// parser directly from HDL source. It still needs to be resolved against a
// chip registry and validated before it can be evaluated; see the top-level
// Build function.
type ChipDef struct {
	Name    string
	Inputs  []PinDecl
	Outputs []PinDecl
	Parts   []PartDecl
}
