// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"strconv"
	"strings"

	"github.com/dbernard/hdlsim"
)

// And registers and returns a two-input AND gate built out of Nand and Not.
//
//	Inputs: a, b
//	Outputs: out
func And(reg *hdlsim.Registry) (*hdlsim.Chip, error) {
	return registerOnce(reg, "And", `
		CHIP And {
			IN a, b;
			OUT out;
			PARTS:
			Nand(a=a, b=b, out=nandOut);
			Not(in=nandOut, out=out);
		}
	`)
}

// Or registers and returns a two-input OR gate built out of Nand and Not.
//
//	Inputs: a, b
//	Outputs: out
func Or(reg *hdlsim.Registry) (*hdlsim.Chip, error) {
	return registerOnce(reg, "Or", `
		CHIP Or {
			IN a, b;
			OUT out;
			PARTS:
			Not(in=a, out=na);
			Not(in=b, out=nb);
			Nand(a=na, b=nb, out=out);
		}
	`)
}

// Nor registers and returns a two-input NOR gate.
//
//	Inputs: a, b
//	Outputs: out
func Nor(reg *hdlsim.Registry) (*hdlsim.Chip, error) {
	if _, err := Or(reg); err != nil {
		return nil, err
	}
	return registerOnce(reg, "Nor", `
		CHIP Nor {
			IN a, b;
			OUT out;
			PARTS:
			Or(a=a, b=b, out=orOut);
			Not(in=orOut, out=out);
		}
	`)
}

// Xor registers and returns a two-input XOR gate.
//
//	Inputs: a, b
//	Outputs: out
func Xor(reg *hdlsim.Registry) (*hdlsim.Chip, error) {
	if _, err := Or(reg); err != nil {
		return nil, err
	}
	return registerOnce(reg, "Xor", `
		CHIP Xor {
			IN a, b;
			OUT out;
			PARTS:
			Or(a=a, b=b, out=orOut);
			Nand(a=a, b=b, out=nandOut);
			Nand(a=orOut, b=nandOut, out=preOut);
			Not(in=preOut, out=out);
		}
	`)
}

// Xnor registers and returns a two-input XNOR gate.
//
//	Inputs: a, b
//	Outputs: out
func Xnor(reg *hdlsim.Registry) (*hdlsim.Chip, error) {
	if _, err := Xor(reg); err != nil {
		return nil, err
	}
	return registerOnce(reg, "Xnor", `
		CHIP Xnor {
			IN a, b;
			OUT out;
			PARTS:
			Xor(a=a, b=b, out=xorOut);
			Not(in=xorOut, out=out);
		}
	`)
}

// gateN composes bits instances of a two-input, one-output 1-bit gate
// (already registered under gateName) into a bus-width gate registered as
// gateName+bits.
func gateN(reg *hdlsim.Registry, gateName string, bits int) (*hdlsim.Chip, error) {
	name := gateName + strconv.Itoa(bits)
	if c, ok := reg.Lookup(name); ok {
		return c, nil
	}
	var parts strings.Builder
	for i := 0; i < bits; i++ {
		parts.WriteString(gateName)
		parts.WriteString("(a=")
		parts.WriteString(bitName("a", i))
		parts.WriteString(", b=")
		parts.WriteString(bitName("b", i))
		parts.WriteString(", out=")
		parts.WriteString(bitName("out", i))
		parts.WriteString(");\n\t\t\t")
	}
	src := "CHIP " + name + " {\n\t\t\tIN " + busDecl(bits, "a", "b") + ";\n\t\t\tOUT " +
		busDecl(bits, "out") + ";\n\t\t\tPARTS:\n\t\t\t" + parts.String() + "}\n"
	return registerOnce(reg, name, src)
}

// AndN registers and returns a bits-wide AND gate, named "And"+bits.
func AndN(reg *hdlsim.Registry, bits int) (*hdlsim.Chip, error) {
	if _, err := And(reg); err != nil {
		return nil, err
	}
	return gateN(reg, "And", bits)
}

// OrN registers and returns a bits-wide OR gate, named "Or"+bits.
func OrN(reg *hdlsim.Registry, bits int) (*hdlsim.Chip, error) {
	if _, err := Or(reg); err != nil {
		return nil, err
	}
	return gateN(reg, "Or", bits)
}

// NandN registers and returns a bits-wide NAND gate, named "Nand"+bits.
func NandN(reg *hdlsim.Registry, bits int) (*hdlsim.Chip, error) {
	return gateN(reg, "Nand", bits)
}

// NorN registers and returns a bits-wide NOR gate, named "Nor"+bits.
func NorN(reg *hdlsim.Registry, bits int) (*hdlsim.Chip, error) {
	if _, err := Nor(reg); err != nil {
		return nil, err
	}
	return gateN(reg, "Nor", bits)
}

// gateNWay chains ways-1 instances (a single instance when ways is 1) of
// an already-registered two-input, one-output 1-bit gate (gateName) into a
// single-output reduction over a ways-wide input bus, registered as
// gateName+"NWay"+ways.
func gateNWay(reg *hdlsim.Registry, gateName string, ways int) (*hdlsim.Chip, error) {
	name := gateName + "NWay" + strconv.Itoa(ways)
	if c, ok := reg.Lookup(name); ok {
		return c, nil
	}
	var parts strings.Builder
	acc := bitName("in", 0)
	if ways == 1 {
		parts.WriteString(gateName + "(a=" + acc + ", b=" + acc + ", out=out);\n\t\t\t")
	}
	for i := 1; i < ways; i++ {
		next := "out"
		if i < ways-1 {
			next = "acc" + strconv.Itoa(i)
		}
		parts.WriteString(gateName + "(a=" + acc + ", b=" + bitName("in", i) + ", out=" + next + ");\n\t\t\t")
		acc = next
	}
	src := "CHIP " + name + " {\n\t\t\tIN in[" + strconv.Itoa(ways) + "];\n\t\t\tOUT out;\n\t\t\tPARTS:\n\t\t\t" +
		parts.String() + "}\n"
	return registerOnce(reg, name, src)
}

// OrNWay registers and returns a ways-way single-output OR gate, named
// "OrNWay"+ways: out = in[0] || in[1] || ... || in[ways-1].
func OrNWay(reg *hdlsim.Registry, ways int) (*hdlsim.Chip, error) {
	if _, err := Or(reg); err != nil {
		return nil, err
	}
	return gateNWay(reg, "Or", ways)
}

// AndNWay registers and returns a ways-way single-output AND gate, named
// "AndNWay"+ways: out = in[0] && in[1] && ... && in[ways-1].
func AndNWay(reg *hdlsim.Registry, ways int) (*hdlsim.Chip, error) {
	if _, err := And(reg); err != nil {
		return nil, err
	}
	return gateNWay(reg, "And", ways)
}

// NotN registers and returns a bits-wide NOT gate, named "Not"+bits.
func NotN(reg *hdlsim.Registry, bits int) (*hdlsim.Chip, error) {
	name := "Not" + strconv.Itoa(bits)
	if c, ok := reg.Lookup(name); ok {
		return c, nil
	}
	var parts strings.Builder
	for i := 0; i < bits; i++ {
		parts.WriteString("Not(in=")
		parts.WriteString(bitName("in", i))
		parts.WriteString(", out=")
		parts.WriteString(bitName("out", i))
		parts.WriteString(");\n\t\t\t")
	}
	src := "CHIP " + name + " {\n\t\t\tIN " + busDecl(bits, "in") + ";\n\t\t\tOUT " +
		busDecl(bits, "out") + ";\n\t\t\tPARTS:\n\t\t\t" + parts.String() + "}\n"
	return registerOnce(reg, name, src)
}
