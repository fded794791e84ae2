// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hdl

import "fmt"

// LexError reports a malformed token: an unterminated comment or an
// otherwise invalid character sequence encountered outside of a token.
type LexError struct {
	Msg string
	Pos Position
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

// UnexpectedToken reports that the tokeniser or parser expected a
// particular token and found something else at Pos.
type UnexpectedToken struct {
	Expected string
	Pos      Position
}

func (e *UnexpectedToken) Error() string {
	return fmt.Sprintf("%s: expected %s", e.Pos, e.Expected)
}
