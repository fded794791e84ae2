// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hdlsim

import (
	"fmt"

	"github.com/dbernard/hdlsim/internal/hdl"
)

// Position identifies a line/column in HDL source. It is re-exported from
// the internal tokeniser/parser so that callers never need to import
// internal/hdl directly.
type Position = hdl.Position

// LexError and UnexpectedToken are produced by the tokeniser and parser;
// re-exported here under their own names so the whole error taxonomy in
// spec §7 is reachable from a single package.
type LexError = hdl.LexError
type UnexpectedToken = hdl.UnexpectedToken

// UnknownChip is returned when a Part references a chip name absent from
// the registry used to build it.
type UnknownChip struct {
	Name string
	Pos  Position
}

func (e *UnknownChip) Error() string {
	return fmt.Sprintf("%s: unknown chip %q", e.Pos, e.Name)
}

// WiringError reports a structural problem detected while constructing a
// chip: width mismatches, out-of-range indices, duplicate output drivers,
// or a reference to a pinline that exists nowhere in the chip.
type WiringError struct {
	Msg string
}

func (e *WiringError) Error() string {
	return e.Msg
}

// UsageError reports a caller mistake that the core treats as a
// programmer bug rather than a recoverable error: evaluate() called on a
// clocked chip, tick()/tock() called on an unclocked chip, tick/tock
// invoked out of sequence, or an input write of the wrong width.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string {
	return e.Msg
}
