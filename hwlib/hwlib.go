// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hwlib provides a library of standard chips built out of the
// simulator's five builtins, registered on demand against a
// hdlsim.Registry in the same way a hand-written HDL file would
// reference them as Parts.
package hwlib

import (
	"strconv"
	"strings"

	"github.com/dbernard/hdlsim"
)

// registerOnce parses src and registers the resulting chip under name,
// unless it is already registered (each of these chips is a fixed,
// parameterless shape, so a second request for the same name is always
// requesting the same chip).
func registerOnce(reg *hdlsim.Registry, name, src string) (*hdlsim.Chip, error) {
	if c, ok := reg.Lookup(name); ok {
		return c, nil
	}
	c, err := hdlsim.Parse(src, reg)
	if err != nil {
		return nil, err
	}
	if err := reg.Register(c); err != nil {
		return nil, err
	}
	return c, nil
}

// bitName returns the indexed name of one pin of an N-bit bus, e.g.
// bitName("a", 3) == "a[3]".
func bitName(name string, bit int) string {
	return name + "[" + strconv.Itoa(bit) + "]"
}

func busDecl(bits int, names ...string) string {
	var b strings.Builder
	for i, n := range names {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(n)
		if bits != 1 {
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(bits))
			b.WriteByte(']')
		}
	}
	return b.String()
}
