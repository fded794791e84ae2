/*
Package hdlsim implements a Nand2Tetris-style Hardware Description
Language simulator: a hand-written tokeniser and recursive-descent parser
for HDL chip descriptions, and a hierarchical chip evaluation core built
on named, fixed-width pin buses (Pinline) and tree-structured chip
instances (Chip).

A chip is built from HDL source with Parse, against a Registry that
resolves the chip names referenced by its Parts:

	reg := hdlsim.NewRegistry()
	and, err := hdlsim.Parse(`
		CHIP And {
			IN a, b;
			OUT out;
			PARTS:
			Nand(a=a, b=b, out=c);
			Nand(a=c, b=c, out=out);
		}`, reg)

Unclocked chips are driven with Evaluate; clocked chips (those containing
a DFF, a Bit, or any child that is itself clocked) are driven with a
Tick/Tock pair per cycle. The sub-package hdltest provides a helper for
cross-checking a built chip against a reference Go function across its
input space.
*/
package hdlsim
