// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hdlsim_test

import (
	"testing"

	hs "github.com/dbernard/hdlsim"
	"github.com/dbernard/hdlsim/hdltest"
)

func TestBuiltinGates(t *testing.T) {
	data := []struct {
		name string
		ref  func(in map[string][]bool) map[string][]bool
	}{
		{"Nand", func(in map[string][]bool) map[string][]bool {
			return map[string][]bool{"out": {!(in["a"][0] && in["b"][0])}}
		}},
		{"Not", func(in map[string][]bool) map[string][]bool {
			return map[string][]bool{"out": {!in["in"][0]}}
		}},
	}

	reg := hs.NewRegistry()
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			c, err := reg.NewInstance(d.name)
			if err != nil {
				t.Fatal(err)
			}
			hdltest.Compare(t, c, d.ref)
		})
	}
}

func TestMux(t *testing.T) {
	reg := hs.NewRegistry()
	c, err := reg.NewInstance("Mux")
	if err != nil {
		t.Fatal(err)
	}
	hdltest.Compare(t, c, func(in map[string][]bool) map[string][]bool {
		a, b, sel := in["a"][0], in["b"][0], in["sel"][0]
		out := a
		if sel {
			out = b
		}
		return map[string][]bool{"out": {out}}
	})
}

func TestEvaluateOnClockedChipIsUsageError(t *testing.T) {
	reg := hs.NewRegistry()
	c, err := reg.NewInstance("DFF")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := c.Evaluate(); err == nil {
		t.Fatal("expected error evaluating a clocked chip")
	}
}

func TestTickOnUnclockedChipIsUsageError(t *testing.T) {
	reg := hs.NewRegistry()
	c, err := reg.NewInstance("Nand")
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Tick(); err == nil {
		t.Fatal("expected error ticking an unclocked chip")
	}
}
