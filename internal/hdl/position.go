// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hdl implements a hand-written scanner, tokeniser and
// recursive-descent parser for the Nand2Tetris-style HDL chip description
// language.
package hdl

import "fmt"

// Position is a 1-based line/column pair identifying a point in an HDL
// source string.
type Position struct {
	Line   int
	Column int
}

// String implements fmt.Stringer.
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}
