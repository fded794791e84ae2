// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"strconv"
	"strings"

	"github.com/dbernard/hdlsim"
)

// HalfAdder registers and returns a half adder built out of Xor and And.
//
//	Inputs: a, b
//	Outputs: s, c
//	Function: s = lsb(a + b); c = msb(a + b)
func HalfAdder(reg *hdlsim.Registry) (*hdlsim.Chip, error) {
	if _, err := Xor(reg); err != nil {
		return nil, err
	}
	if _, err := And(reg); err != nil {
		return nil, err
	}
	return registerOnce(reg, "HalfAdder", `
		CHIP HalfAdder {
			IN a, b;
			OUT s, c;
			PARTS:
			Xor(a=a, b=b, out=s);
			And(a=a, b=b, out=c);
		}
	`)
}

// FullAdder registers and returns a full adder built out of two
// HalfAdders and an Or.
//
//	Inputs: a, b, cin
//	Outputs: s, cout
//	Function: s = lsb(a + b + cin); cout = msb(a + b + cin)
func FullAdder(reg *hdlsim.Registry) (*hdlsim.Chip, error) {
	if _, err := HalfAdder(reg); err != nil {
		return nil, err
	}
	if _, err := Or(reg); err != nil {
		return nil, err
	}
	return registerOnce(reg, "FullAdder", `
		CHIP FullAdder {
			IN a, b, cin;
			OUT s, cout;
			PARTS:
			HalfAdder(a=a, b=b, s=s1, c=c1);
			HalfAdder(a=s1, b=cin, s=s, c=c2);
			Or(a=c1, b=c2, out=cout);
		}
	`)
}

// AdderN registers and returns a bits-wide ripple-carry adder, named
// "Adder"+bits, built as a chain of a HalfAdder followed by bits-1
// FullAdders. Index 0 of each bus is the most significant bit, so the
// HalfAdder takes index bits-1 and the carry ripples toward index 0.
//
//	Inputs: a[bits], b[bits]
//	Outputs: out[bits], c
func AdderN(reg *hdlsim.Registry, bits int) (*hdlsim.Chip, error) {
	name := "Adder" + strconv.Itoa(bits)
	if c, ok := reg.Lookup(name); ok {
		return c, nil
	}
	if _, err := FullAdder(reg); err != nil {
		return nil, err
	}

	firstCarry := "carry0"
	if bits == 1 {
		firstCarry = "c"
	}
	var parts strings.Builder
	lsb := bits - 1
	parts.WriteString("HalfAdder(a=" + bitName("a", lsb) + ", b=" + bitName("b", lsb) + ", s=" + bitName("out", lsb) + ", c=" + firstCarry + ");\n\t\t\t")
	carryIn := firstCarry
	for i := 1; i < bits; i++ {
		carryOut := "carry" + strconv.Itoa(i)
		if i == bits-1 {
			carryOut = "c"
		}
		parts.WriteString("FullAdder(a=" + bitName("a", lsb-i) + ", b=" + bitName("b", lsb-i) + ", cin=" + carryIn +
			", s=" + bitName("out", lsb-i) + ", cout=" + carryOut + ");\n\t\t\t")
		carryIn = carryOut
	}
	src := "CHIP " + name + " {\n\t\t\tIN " + busDecl(bits, "a", "b") + ";\n\t\t\tOUT " +
		busDecl(bits, "out") + ", c;\n\t\t\tPARTS:\n\t\t\t" + parts.String() + "}\n"
	return registerOnce(reg, name, src)
}
