// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hdl

import (
	"strings"
	"unicode"
)

// Keywords reserved by the HDL grammar.
var keywords = map[string]bool{
	"CHIP":  true,
	"IN":    true,
	"OUT":   true,
	"PARTS": true,
}

// IsKeyword reports whether s is a reserved HDL keyword.
func IsKeyword(s string) bool {
	return keywords[s]
}

func isIdentStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

func isIdentCont(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// Ident is an identifier token, optionally followed by a bracketed index or
// range: name, name[n] or name[n..m].
type Ident struct {
	Name     string
	Pos      Position
	HasIndex bool
	Index    int
	HasRange bool
	Start    int
	End      int
}

// Tokeniser scans HDL source on demand; it has no separate lexing pass, it
// is driven directly by the parser's expect* and value-producing methods.
type Tokeniser struct {
	s *scanner
}

// NewTokeniser returns a tokeniser over src.
func NewTokeniser(src string) *Tokeniser {
	return &Tokeniser{s: newScanner(src)}
}

// Position returns the position the tokeniser is currently stopped at,
// after skipping any leading whitespace and comments.
func (t *Tokeniser) Position() (Position, error) {
	if err := t.s.skipNontokens(); err != nil {
		return Position{}, err
	}
	return t.s.position(), nil
}

// AtEOF reports whether only whitespace and comments remain in the input.
func (t *Tokeniser) AtEOF() bool {
	if err := t.s.skipNontokens(); err != nil {
		return false
	}
	return t.s.atEnd()
}

// ExpectKeyword succeeds iff the remaining input begins with kw and the
// character immediately following kw does not continue an identifier.
func (t *Tokeniser) ExpectKeyword(kw string) error {
	if err := t.s.skipNontokens(); err != nil {
		return err
	}
	pos := t.s.position()
	if !t.s.hasPrefix(kw) {
		return &UnexpectedToken{Expected: "keyword " + kw, Pos: pos}
	}
	if r, ok := t.s.peekAt(len([]rune(kw))); ok && isIdentCont(r) {
		return &UnexpectedToken{Expected: "keyword " + kw, Pos: pos}
	}
	t.s.consumePrefix(kw)
	return nil
}

// ExpectSymbol succeeds iff the next character equals c, and consumes it.
func (t *Tokeniser) ExpectSymbol(c rune) error {
	if err := t.s.skipNontokens(); err != nil {
		return err
	}
	pos := t.s.position()
	r, ok := t.s.peek()
	if !ok || r != c {
		return &UnexpectedToken{Expected: "'" + string(c) + "'", Pos: pos}
	}
	t.s.consume()
	return nil
}

// Identifier scans an identifier, rejecting reserved keywords, and
// optionally a following "[index]" or "[start..end]" suffix.
func (t *Tokeniser) Identifier() (*Ident, error) {
	if err := t.s.skipNontokens(); err != nil {
		return nil, err
	}
	pos := t.s.position()
	r, ok := t.s.peek()
	if !ok || !isIdentStart(r) {
		return nil, &UnexpectedToken{Expected: "identifier", Pos: pos}
	}
	var b strings.Builder
	for {
		r, ok := t.s.peek()
		if !ok || !isIdentCont(r) {
			break
		}
		t.s.consume()
		b.WriteRune(r)
	}
	name := b.String()
	if IsKeyword(name) {
		return nil, &UnexpectedToken{Expected: "identifier", Pos: pos}
	}

	id := &Ident{Name: name, Pos: pos}
	if err := t.s.skipNontokens(); err != nil {
		return nil, err
	}
	if r, ok := t.s.peek(); !ok || r != '[' {
		return id, nil
	}
	t.s.consume()
	start, err := t.Number()
	if err != nil {
		return nil, err
	}
	if err := t.s.skipNontokens(); err != nil {
		return nil, err
	}
	if t.s.hasPrefix("..") {
		t.s.consume()
		t.s.consume()
		end, err := t.Number()
		if err != nil {
			return nil, err
		}
		if err := t.ExpectSymbol(']'); err != nil {
			return nil, err
		}
		id.HasRange = true
		id.Start, id.End = start, end
		return id, nil
	}
	if err := t.ExpectSymbol(']'); err != nil {
		return nil, err
	}
	id.HasIndex = true
	id.Index = start
	return id, nil
}

// Number scans the longest run of decimal digits and parses it as a
// non-negative integer.
func (t *Tokeniser) Number() (int, error) {
	if err := t.s.skipNontokens(); err != nil {
		return 0, err
	}
	pos := t.s.position()
	r, ok := t.s.peek()
	if !ok || !isDigit(r) {
		return 0, &UnexpectedToken{Expected: "number", Pos: pos}
	}
	n := 0
	for {
		r, ok := t.s.peek()
		if !ok || !isDigit(r) {
			return n, nil
		}
		t.s.consume()
		n = n*10 + int(r-'0')
	}
}
