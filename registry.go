// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hdlsim

import "github.com/pkg/errors"

// Registry maps chip names to already-constructed chip templates, used by
// Build to resolve the Parts of a chip definition (spec §6). Builtin
// names (Nand, Not, Mux, DFF, Bit) are pre-registered; composite chips are
// added with Register as they are built, so that later chips can use them
// as Parts.
//
// A Registry is not safe for concurrent use; the core is strictly
// single-threaded (spec §5).
type Registry struct {
	chips map[string]*Chip
}

// NewRegistry returns a registry with the five builtins pre-registered
// under their canonical names.
func NewRegistry() *Registry {
	r := &Registry{chips: make(map[string]*Chip)}
	r.chips["Nand"] = newNand()
	r.chips["Not"] = newNot()
	r.chips["Mux"] = newMux()
	r.chips["DFF"] = newDFF()
	r.chips["Bit"] = newBit()
	return r
}

// Register adds chip to the registry under its own Name. It is an error
// to register two chips under the same name, including a builtin's name.
func (r *Registry) Register(chip *Chip) error {
	if _, ok := r.chips[chip.Name]; ok {
		return errors.New("chip " + chip.Name + " already registered")
	}
	r.chips[chip.Name] = chip
	return nil
}

// Lookup returns the chip template registered under name, if any. The
// returned chip must not be evaluated directly: Build clones it before use
// so that each Part gets independent pin storage.
func (r *Registry) Lookup(name string) (*Chip, bool) {
	c, ok := r.chips[name]
	return c, ok
}

// NewInstance returns a fresh, independently evaluable clone of the chip
// registered under name. Unlike Lookup, the result is never a shared
// template: it is safe to set inputs on it and evaluate it directly.
func (r *Registry) NewInstance(name string) (*Chip, error) {
	c, ok := r.chips[name]
	if !ok {
		return nil, errors.New("no such chip " + name)
	}
	return c.clone(), nil
}
