// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hdltest_test

import (
	"testing"

	"github.com/dbernard/hdlsim"
	"github.com/dbernard/hdlsim/hdltest"
	"github.com/dbernard/hdlsim/hwlib"
)

func TestCompareAnd(t *testing.T) {
	reg := hdlsim.NewRegistry()
	c, err := hdlsim.Parse(`
		CHIP And {
			IN a, b;
			OUT out;
			PARTS:
			Nand(a=a, b=b, out=n);
			Not(in=n, out=out);
		}
	`, reg)
	if err != nil {
		t.Fatal(err)
	}
	hdltest.Compare(t, c, func(in map[string][]bool) map[string][]bool {
		return map[string][]bool{"out": {in["a"][0] && in["b"][0]}}
	})
}

func TestCompareAdderN(t *testing.T) {
	reg := hdlsim.NewRegistry()
	if _, err := hwlib.AdderN(reg, 4); err != nil {
		t.Fatal(err)
	}
	c, err := reg.NewInstance("Adder4")
	if err != nil {
		t.Fatal(err)
	}
	toInt := func(bits []bool) int {
		v := 0
		for _, b := range bits {
			v <<= 1
			if b {
				v |= 1
			}
		}
		return v
	}
	hdltest.Compare(t, c, func(in map[string][]bool) map[string][]bool {
		a, b := toInt(in["a"]), toInt(in["b"])
		sum := a + b
		out := make([]bool, 4)
		for i := range out {
			out[i] = sum&(1<<uint(3-i)) != 0
		}
		return map[string][]bool{"out": out, "c": {sum&16 != 0}}
	})
}
