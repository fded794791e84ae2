// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hdl

import "testing"

func TestExpectKeyword(t *testing.T) {
	tk := NewTokeniser("CHIP {")
	if err := tk.ExpectKeyword("CHIP"); err != nil {
		t.Fatal(err)
	}
	r, _ := tk.s.peek()
	if r != ' ' {
		t.Fatalf("got %q after keyword, want ' '", r)
	}

	tk = NewTokeniser("NOTCHIP {")
	if err := tk.ExpectKeyword("CHIP"); err == nil {
		t.Fatal("expected an error: NOTCHIP is not the keyword CHIP")
	}

	// a keyword immediately followed by an identifier continuation is not
	// the keyword: "INx" is the identifier "INx", not "IN" then "x".
	tk = NewTokeniser("INx")
	if err := tk.ExpectKeyword("IN"); err == nil {
		t.Fatal("expected an error: INx must not match keyword IN")
	}
}

func TestExpectSymbol(t *testing.T) {
	tk := NewTokeniser("  ; next")
	if err := tk.ExpectSymbol(';'); err != nil {
		t.Fatal(err)
	}
	if err := tk.ExpectSymbol(';'); err == nil {
		t.Fatal("expected an error, no more semicolons")
	}
}

func TestIdentifier(t *testing.T) {
	cases := []struct {
		src      string
		name     string
		hasIndex bool
		index    int
		hasRange bool
		start    int
		end      int
	}{
		{"foo", "foo", false, 0, false, 0, 0},
		{"_bar1, x", "_bar1", false, 0, false, 0, 0},
		{"bus[4]", "bus", true, 4, false, 0, 0},
		{"bus[1..4]", "bus", false, 0, true, 1, 4},
		{"a;", "a", false, 0, false, 0, 0},
		{"a(", "a", false, 0, false, 0, 0},
	}
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			tk := NewTokeniser(c.src)
			id, err := tk.Identifier()
			if err != nil {
				t.Fatal(err)
			}
			if id.Name != c.name || id.HasIndex != c.hasIndex || id.Index != c.index ||
				id.HasRange != c.hasRange || id.Start != c.start || id.End != c.end {
				t.Fatalf("got %+v, want name=%s index=%v/%d range=%v/%d..%d",
					id, c.name, c.hasIndex, c.index, c.hasRange, c.start, c.end)
			}
		})
	}
}

func TestIdentifierRejectsKeyword(t *testing.T) {
	tk := NewTokeniser("PARTS")
	if _, err := tk.Identifier(); err == nil {
		t.Fatal("expected an error, PARTS is a reserved keyword")
	}
}

func TestNumber(t *testing.T) {
	tk := NewTokeniser("  042abc")
	n, err := tk.Number()
	if err != nil {
		t.Fatal(err)
	}
	if n != 42 {
		t.Fatalf("got %d, want 42", n)
	}
}
