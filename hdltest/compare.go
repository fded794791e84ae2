// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hdltest provides helpers for cross-checking a built chip against
// an arbitrary Go reference function: Compare for unclocked chips, across
// their whole input space (or a random sample of it, for wide inputs), and
// CompareSequential for clocked chips, over a sequence of Tick/Tock steps.
package hdltest

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/dbernard/hdlsim"
)

// Func computes the expected output of a chip given its inputs, keyed by
// pinline name, in the same shape SetInput/GetOutput use.
type Func func(in map[string][]bool) map[string][]bool

// maxBits caps the input space size tested exhaustively; wider chips are
// checked with random sampling instead.
const maxBits = 16

// Compare evaluates c against ref over its input space and fails t with a
// counter-example on the first mismatch. c must be unclocked: Compare
// drives it with Evaluate, not Tick/Tock.
func Compare(t *testing.T, c *hdlsim.Chip, ref Func) {
	t.Helper()

	names := c.Input.Names()
	widths := make([]int, len(names))
	total := 0
	for i, n := range names {
		w, _ := c.Input.Width(n)
		widths[i] = w
		total += w
	}

	set := func(bits uint64) map[string][]bool {
		in := make(map[string][]bool, len(names))
		pos := 0
		for i, n := range names {
			w := widths[i]
			vals := make([]bool, w)
			for b := 0; b < w; b++ {
				vals[b] = bits&(1<<uint(pos+w-1-b)) != 0
			}
			in[n] = vals
			pos += w
		}
		return in
	}

	check := func(bits uint64) {
		in := set(bits)
		for n, vals := range in {
			if err := c.SetInput(n, vals); err != nil {
				t.Fatal(err)
			}
		}
		if _, err := c.Evaluate(); err != nil {
			t.Fatal(err)
		}
		want := ref(in)
		for name, wantVals := range want {
			got, ok := c.GetOutput(name)
			if !ok {
				t.Fatalf("chip %s has no output %s", c.Name, name)
			}
			for i := range wantVals {
				if got[i] != wantVals[i] {
					t.Fatalf("chip %s: %s => %s = %v, want %v", c.Name, describe(in), name, got, wantVals)
				}
			}
		}
	}

	if total == 0 {
		check(0)
		return
	}
	if total <= maxBits {
		for bits := uint64(0); bits < uint64(1)<<uint(total); bits++ {
			check(bits)
		}
		return
	}

	rand.Seed(time.Now().UnixNano())
	const iterations = 1 << 12
	for i := 0; i < iterations; i++ {
		check(rand.Uint64())
	}
}

// Step computes the expected output of a clocked chip at the given step
// index given that step's inputs, keyed by pinline name.
type Step func(step int, in map[string][]bool) map[string][]bool

// CompareSequential drives c through steps Tick/Tock cycles, feeding it
// genIn(i) before each Tick, and compares the Tock output against
// ref(i, genIn(i)) for every step. c must be clocked.
func CompareSequential(t *testing.T, c *hdlsim.Chip, steps int, genIn func(step int) map[string][]bool, ref Step) {
	t.Helper()

	for i := 0; i < steps; i++ {
		in := genIn(i)
		for n, vals := range in {
			if err := c.SetInput(n, vals); err != nil {
				t.Fatal(err)
			}
		}
		if err := c.Tick(); err != nil {
			t.Fatal(err)
		}
		out, err := c.Tock()
		if err != nil {
			t.Fatal(err)
		}
		want := ref(i, in)
		for name, wantVals := range want {
			line := out.Line(name)
			if line == nil {
				t.Fatalf("chip %s has no output %s", c.Name, name)
			}
			for b, wv := range wantVals {
				if got := line.Get(b); got != wv {
					t.Fatalf("chip %s step %d: %s => %s[%d] = %v, want %v", c.Name, i, describe(in), name, b, got, wv)
				}
			}
		}
	}
}

func describe(in map[string][]bool) string {
	var b strings.Builder
	for n, vals := range in {
		if b.Len() > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s=%v", n, vals)
	}
	return b.String()
}
