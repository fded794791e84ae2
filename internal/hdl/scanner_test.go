// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hdl

import "testing"

func drain(s *scanner) string {
	var out []rune
	for {
		if err := s.skipNontokens(); err != nil {
			break
		}
		r, ok := s.consume()
		if !ok {
			break
		}
		out = append(out, r)
	}
	return string(out)
}

func TestSkipWhitespace(t *testing.T) {
	s := newScanner("   a")
	if !s.skipWhitespace() {
		t.Fatal("expected skipWhitespace to move the cursor")
	}
	r, ok := s.peek()
	if !ok || r != 'a' {
		t.Fatalf("got %q, want 'a'", r)
	}

	s = newScanner("a    ")
	if s.skipWhitespace() {
		t.Fatal("expected skipWhitespace not to move the cursor")
	}
}

func TestSkipComment(t *testing.T) {
	src := "/*com*/This/* comment */string/* comment 2*//**/\n" +
		"// line comment\n" +
		"// another\n" +
		"extra"
	want := "Thisstring\nextra"
	got := drain(newScanner(src))
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestSkipNontokensIdempotent(t *testing.T) {
	s := newScanner("  /* c */ a")
	if err := s.skipNontokens(); err != nil {
		t.Fatal(err)
	}
	pos1 := s.position()
	if err := s.skipNontokens(); err != nil {
		t.Fatal(err)
	}
	pos2 := s.position()
	if pos1 != pos2 {
		t.Fatalf("skipNontokens not idempotent: %v != %v", pos1, pos2)
	}
}

func TestUnterminatedBlockComment(t *testing.T) {
	s := newScanner("/* never closes")
	if err := s.skipNontokens(); err == nil {
		t.Fatal("expected an error for an unterminated block comment")
	} else if _, ok := err.(*LexError); !ok {
		t.Fatalf("got %T, want *LexError", err)
	}
}

func TestPositionTracking(t *testing.T) {
	s := newScanner("ab\ncd")
	for i := 0; i < 3; i++ {
		s.consume()
	}
	pos := s.position()
	if pos.Line != 2 || pos.Column != 1 {
		t.Fatalf("got %v, want 2:1", pos)
	}
}
