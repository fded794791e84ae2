// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hdlsim_test

import (
	"testing"

	hs "github.com/dbernard/hdlsim"
)

const andSrc = `
CHIP And {
	IN a, b;
	OUT out;
	PARTS:
	Nand(a=a, b=b, out=nandOut);
	Nand(a=nandOut, b=nandOut, out=out);
}
`

func TestBuildAndFromTwoNands(t *testing.T) {
	reg := hs.NewRegistry()
	c, err := hs.Parse(andSrc, reg)
	if err != nil {
		t.Fatal(err)
	}

	for a := 0; a < 2; a++ {
		for b := 0; b < 2; b++ {
			if err := c.SetInput("a", []bool{a != 0}); err != nil {
				t.Fatal(err)
			}
			if err := c.SetInput("b", []bool{b != 0}); err != nil {
				t.Fatal(err)
			}
			if _, err := c.Evaluate(); err != nil {
				t.Fatal(err)
			}
			out, _ := c.GetOutput("out")
			want := a != 0 && b != 0
			if out[0] != want {
				t.Errorf("And(%d,%d) = %v, want %v", a, b, out[0], want)
			}
		}
	}

	// the internal pinline derived for the Nand-to-Nand wire must not leak
	// into the chip's Input/Output sets.
	if c.Input.Has("nandOut") || c.Output.Has("nandOut") {
		t.Fatal("internal pinline nandOut leaked into input/output")
	}
}

func TestBuild_errors(t *testing.T) {
	data := []struct {
		name string
		src  string
	}{
		{"unknown_chip", `
			CHIP Broken {
				IN a, b;
				OUT out;
				PARTS:
				Xyzzy(a=a, b=b, out=out);
			}`},
		{"unknown_pin", `
			CHIP Broken {
				IN a, b;
				OUT out;
				PARTS:
				Nand(a=a, typo=b, out=out);
			}`},
		{"duplicate_driver", `
			CHIP Broken {
				IN a, b;
				OUT out;
				PARTS:
				Nand(a=a, b=b, out=out);
				Not(in=a, out=out);
			}`},
		{"in_out_collision", `
			CHIP Broken {
				IN a;
				OUT a;
				PARTS:
			}`},
		{"width_mismatch", `
			CHIP Broken {
				IN a[2];
				OUT out;
				PARTS:
				Not(in=a[0..1], out=out);
			}`},
	}
	reg := hs.NewRegistry()
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			if _, err := hs.Parse(d.src, reg); err == nil {
				t.Fatalf("expected an error for %s", d.name)
			}
		})
	}
}

func TestParseRegisterReuseAsPart(t *testing.T) {
	reg := hs.NewRegistry()
	and, err := hs.Parse(andSrc, reg)
	if err != nil {
		t.Fatal(err)
	}
	if err := reg.Register(and); err != nil {
		t.Fatal(err)
	}

	or, err := hs.Parse(`
		CHIP Or {
			IN a, b;
			OUT out;
			PARTS:
			Not(in=a, out=na);
			Not(in=b, out=nb);
			And(a=na, b=nb, out=nandedOut);
			Not(in=nandedOut, out=out);
		}
	`, reg)
	if err != nil {
		t.Fatal(err)
	}

	for a := 0; a < 2; a++ {
		for b := 0; b < 2; b++ {
			or.SetInput("a", []bool{a != 0})
			or.SetInput("b", []bool{b != 0})
			if _, err := or.Evaluate(); err != nil {
				t.Fatal(err)
			}
			out, _ := or.GetOutput("out")
			want := a != 0 || b != 0
			if out[0] != want {
				t.Errorf("Or(%d,%d) = %v, want %v", a, b, out[0], want)
			}
		}
	}
}
