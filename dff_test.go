// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hdlsim_test

import (
	"math/rand"
	"testing"

	hs "github.com/dbernard/hdlsim"
	"github.com/dbernard/hdlsim/hdltest"
)

func TestDFFDelay(t *testing.T) {
	reg := hs.NewRegistry()
	c, err := reg.NewInstance("DFF")
	if err != nil {
		t.Fatal(err)
	}

	var prev bool
	hdltest.CompareSequential(t, c, 16,
		func(step int) map[string][]bool {
			return map[string][]bool{"in": {step%3 == 0}}
		},
		func(step int, in map[string][]bool) map[string][]bool {
			want := prev
			prev = in["in"][0]
			return map[string][]bool{"out": {want}}
		},
	)
}

func TestBitDelay(t *testing.T) {
	reg := hs.NewRegistry()
	c, err := reg.NewInstance("Bit")
	if err != nil {
		t.Fatal(err)
	}

	var p bool
	hdltest.CompareSequential(t, c, 200,
		func(step int) map[string][]bool {
			return map[string][]bool{
				"in":   {rand.Intn(2) != 0},
				"load": {rand.Intn(2) != 0},
			}
		},
		func(step int, in map[string][]bool) map[string][]bool {
			want := p
			if in["load"][0] {
				p = in["in"][0]
			}
			return map[string][]bool{"out": {want}}
		},
	)
}

func TestDFFUsageErrors(t *testing.T) {
	reg := hs.NewRegistry()
	c, err := reg.NewInstance("DFF")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := c.Tock(); err == nil {
		t.Fatal("expected error calling Tock before Tick")
	}
	if err := c.Tick(); err != nil {
		t.Fatal(err)
	}
	if err := c.Tick(); err == nil {
		t.Fatal("expected error calling Tick twice without an intervening Tock")
	}
}

func TestBitRegister(t *testing.T) {
	const src = `
		CHIP BitReg {
			IN in, load;
			OUT out;
			PARTS:
			Mux(a=out, b=in, sel=load, out=muxOut);
			DFF(in=muxOut, out=out);
		}
	`
	reg := hs.NewRegistry()
	c, err := hs.Parse(src, reg)
	if err != nil {
		t.Fatal(err)
	}

	// The Mux reads out as left by the previous Tock, and the DFF shows its
	// input one step late, so out at step k is the Mux output of step k-1,
	// which selected either in or the out of step k-2.
	var prevOut, muxOut bool
	hdltest.CompareSequential(t, c, 200,
		func(step int) map[string][]bool {
			return map[string][]bool{
				"in":   {rand.Intn(2) != 0},
				"load": {rand.Intn(2) != 0},
			}
		},
		func(step int, in map[string][]bool) map[string][]bool {
			want := muxOut
			if in["load"][0] {
				muxOut = in["in"][0]
			} else {
				muxOut = prevOut
			}
			prevOut = want
			return map[string][]bool{"out": {want}}
		},
	)
}
