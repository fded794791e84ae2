// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"strconv"
	"strings"

	"github.com/dbernard/hdlsim"
)

// DMux registers and returns a demultiplexer built out of And and Not.
//
//	Inputs: in, sel
//	Outputs: a, b
//	Function: if sel == 0 { a = in; b = 0 } else { a = 0; b = in }
func DMux(reg *hdlsim.Registry) (*hdlsim.Chip, error) {
	if _, err := And(reg); err != nil {
		return nil, err
	}
	return registerOnce(reg, "DMux", `
		CHIP DMux {
			IN in, sel;
			OUT a, b;
			PARTS:
			Not(in=sel, out=nsel);
			And(a=in, b=nsel, out=a);
			And(a=in, b=sel, out=b);
		}
	`)
}

// MuxN registers and returns a bits-wide multiplexer, named "Mux"+bits,
// built from bits instances of the builtin one-bit Mux.
//
//	Inputs: a[bits], b[bits], sel
//	Outputs: out[bits]
func MuxN(reg *hdlsim.Registry, bits int) (*hdlsim.Chip, error) {
	name := "Mux" + strconv.Itoa(bits)
	if c, ok := reg.Lookup(name); ok {
		return c, nil
	}
	var parts strings.Builder
	for i := 0; i < bits; i++ {
		parts.WriteString("Mux(a=")
		parts.WriteString(bitName("a", i))
		parts.WriteString(", b=")
		parts.WriteString(bitName("b", i))
		parts.WriteString(", sel=sel, out=")
		parts.WriteString(bitName("out", i))
		parts.WriteString(");\n\t\t\t")
	}
	src := "CHIP " + name + " {\n\t\t\tIN " + busDecl(bits, "a", "b") + ", sel;\n\t\t\tOUT " +
		busDecl(bits, "out") + ";\n\t\t\tPARTS:\n\t\t\t" + parts.String() + "}\n"
	return registerOnce(reg, name, src)
}

// DMuxN registers and returns a bits-wide demultiplexer, named "DMux"+bits.
//
//	Inputs: in[bits], sel
//	Outputs: a[bits], b[bits]
func DMuxN(reg *hdlsim.Registry, bits int) (*hdlsim.Chip, error) {
	if _, err := DMux(reg); err != nil {
		return nil, err
	}
	name := "DMux" + strconv.Itoa(bits)
	if c, ok := reg.Lookup(name); ok {
		return c, nil
	}
	var parts strings.Builder
	for i := 0; i < bits; i++ {
		parts.WriteString("DMux(in=")
		parts.WriteString(bitName("in", i))
		parts.WriteString(", sel=sel, a=")
		parts.WriteString(bitName("a", i))
		parts.WriteString(", b=")
		parts.WriteString(bitName("b", i))
		parts.WriteString(");\n\t\t\t")
	}
	src := "CHIP " + name + " {\n\t\t\tIN " + busDecl(bits, "in") + ", sel;\n\t\t\tOUT " +
		busDecl(bits, "a", "b") + ";\n\t\t\tPARTS:\n\t\t\t" + parts.String() + "}\n"
	return registerOnce(reg, name, src)
}

// Mux4Way16 registers and returns a 4-way 16-bit multiplexer, wired as a
// binary tree of Mux16 instances the way the Nand2Tetris standard chip
// set builds it.
//
//	Inputs: a[16], b[16], c[16], d[16], sel[2]
//	Outputs: out[16]
func Mux4Way16(reg *hdlsim.Registry) (*hdlsim.Chip, error) {
	if _, err := MuxN(reg, 16); err != nil {
		return nil, err
	}
	return registerOnce(reg, "Mux4Way16", `
		CHIP Mux4Way16 {
			IN a[16], b[16], c[16], d[16], sel[2];
			OUT out[16];
			PARTS:
			Mux16(a=a, b=b, sel=sel[0], out=ab);
			Mux16(a=c, b=d, sel=sel[0], out=cd);
			Mux16(a=ab, b=cd, sel=sel[1], out=out);
		}
	`)
}

// Mux8Way16 registers and returns an 8-way 16-bit multiplexer, wired as a
// tree of two Mux4Way16 instances feeding a final Mux16.
//
//	Inputs: a[16] ... h[16], sel[3]
//	Outputs: out[16]
func Mux8Way16(reg *hdlsim.Registry) (*hdlsim.Chip, error) {
	if _, err := Mux4Way16(reg); err != nil {
		return nil, err
	}
	return registerOnce(reg, "Mux8Way16", `
		CHIP Mux8Way16 {
			IN a[16], b[16], c[16], d[16], e[16], f[16], g[16], h[16], sel[3];
			OUT out[16];
			PARTS:
			Mux4Way16(a=a, b=b, c=c, d=d, sel=sel[0..1], out=abcd);
			Mux4Way16(a=e, b=f, c=g, d=h, sel=sel[0..1], out=efgh);
			Mux16(a=abcd, b=efgh, sel=sel[2], out=out);
		}
	`)
}

// DMux4Way registers and returns a 4-way demultiplexer built as a tree of
// DMux instances.
//
//	Inputs: in, sel[2]
//	Outputs: a, b, c, d
func DMux4Way(reg *hdlsim.Registry) (*hdlsim.Chip, error) {
	if _, err := DMux(reg); err != nil {
		return nil, err
	}
	return registerOnce(reg, "DMux4Way", `
		CHIP DMux4Way {
			IN in, sel[2];
			OUT a, b, c, d;
			PARTS:
			DMux(in=in, sel=sel[1], a=ab, b=cd);
			DMux(in=ab, sel=sel[0], a=a, b=b);
			DMux(in=cd, sel=sel[0], a=c, b=d);
		}
	`)
}

// DMux8Way registers and returns an 8-way demultiplexer built as a tree of
// DMux4Way and DMux instances.
//
//	Inputs: in, sel[3]
//	Outputs: a, b, c, d, e, f, g, h
func DMux8Way(reg *hdlsim.Registry) (*hdlsim.Chip, error) {
	if _, err := DMux4Way(reg); err != nil {
		return nil, err
	}
	return registerOnce(reg, "DMux8Way", `
		CHIP DMux8Way {
			IN in, sel[3];
			OUT a, b, c, d, e, f, g, h;
			PARTS:
			DMux(in=in, sel=sel[2], a=abcd, b=efgh);
			DMux4Way(in=abcd, sel=sel[0..1], a=a, b=b, c=c, d=d);
			DMux4Way(in=efgh, sel=sel[0..1], a=e, b=f, c=g, d=h);
		}
	`)
}
