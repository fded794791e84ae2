// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hdlsim_test

import (
	"testing"

	hs "github.com/dbernard/hdlsim"
)

func TestRegistryBuiltinsPreregistered(t *testing.T) {
	reg := hs.NewRegistry()
	for _, name := range []string{"Nand", "Not", "Mux", "DFF", "Bit"} {
		if _, ok := reg.Lookup(name); !ok {
			t.Errorf("builtin %s not registered", name)
		}
	}
}

func TestRegistryDuplicateRegistration(t *testing.T) {
	reg := hs.NewRegistry()
	c, err := hs.Parse(andSrc, reg)
	if err != nil {
		t.Fatal(err)
	}
	if err := reg.Register(c); err != nil {
		t.Fatal(err)
	}
	if err := reg.Register(c); err == nil {
		t.Fatal("expected error re-registering the same chip name")
	}
}

func TestRegistryNewInstanceIndependence(t *testing.T) {
	reg := hs.NewRegistry()
	a, err := reg.NewInstance("Not")
	if err != nil {
		t.Fatal(err)
	}
	b, err := reg.NewInstance("Not")
	if err != nil {
		t.Fatal(err)
	}
	if err := a.SetInput("in", []bool{true}); err != nil {
		t.Fatal(err)
	}
	if _, err := a.Evaluate(); err != nil {
		t.Fatal(err)
	}
	if _, err := b.Evaluate(); err != nil {
		t.Fatal(err)
	}
	aOut, _ := a.GetOutput("out")
	bOut, _ := b.GetOutput("out")
	if aOut[0] == bOut[0] {
		t.Fatalf("expected independent instances: a=%v b=%v", aOut[0], bOut[0])
	}
}

func TestRegistryUnknownChip(t *testing.T) {
	reg := hs.NewRegistry()
	if _, err := reg.NewInstance("Nope"); err == nil {
		t.Fatal("expected error for unregistered chip name")
	}
}
