// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hdlsim

// A Pinline is a named, fixed-width bus of boolean pins. Its length is set
// once, at construction, and never changes; only the pin values mutate.
type Pinline struct {
	name string
	pins []bool
}

// NewPinline returns a zero-valued pinline of the given name and width.
func NewPinline(name string, width int) Pinline {
	return Pinline{name: name, pins: make([]bool, width)}
}

// Name returns the pinline's name.
func (p *Pinline) Name() string { return p.name }

// Width returns the pinline's declared width.
func (p *Pinline) Width() int { return len(p.pins) }

// Get returns the value of pin i.
func (p *Pinline) Get(i int) bool { return p.pins[i] }

// Set sets the value of pin i.
func (p *Pinline) Set(i int, v bool) { p.pins[i] = v }

// Values returns the pinline's values as a fresh slice.
func (p *Pinline) Values() []bool {
	out := make([]bool, len(p.pins))
	copy(out, p.pins)
	return out
}

// SetValues overwrites every pin with vals, which must have the pinline's
// declared width.
func (p *Pinline) SetValues(vals []bool) error {
	if len(vals) != len(p.pins) {
		return &UsageError{Msg: "value width " + itoa(len(vals)) + " does not match pinline " + p.name + " of width " + itoa(len(p.pins))}
	}
	copy(p.pins, vals)
	return nil
}

// clone returns a pinline with the same name and width, all pins zeroed.
func (p *Pinline) clone() Pinline {
	return NewPinline(p.name, len(p.pins))
}

// Equal reports whether p and o have the same name and the same pin values.
func (p *Pinline) Equal(o *Pinline) bool {
	if p.name != o.name || len(p.pins) != len(o.pins) {
		return false
	}
	for i := range p.pins {
		if p.pins[i] != o.pins[i] {
			return false
		}
	}
	return true
}

// A PinSet is an ordered collection of uniquely-named pinlines, used to
// model a chip's input, internal or output pin groups. Lookups are by name;
// the index is built once so repeated name lookups during evaluation stay
// O(1) rather than a linear scan per access.
type PinSet struct {
	order []string
	index map[string]int
	lines []Pinline
}

func newPinSet() PinSet {
	return PinSet{index: make(map[string]int)}
}

// add appends a new pinline of the given name and width. It is an error to
// add a name that already exists in this set.
func (s *PinSet) add(name string, width int) error {
	if _, ok := s.index[name]; ok {
		return &WiringError{Msg: "duplicate pinline name " + name}
	}
	s.index[name] = len(s.lines)
	s.order = append(s.order, name)
	s.lines = append(s.lines, NewPinline(name, width))
	return nil
}

// Names returns the pinline names in declaration order.
func (s *PinSet) Names() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Has reports whether name is a pinline in this set.
func (s *PinSet) Has(name string) bool {
	_, ok := s.index[name]
	return ok
}

// Line returns a pointer to the named pinline, or nil if it doesn't exist.
func (s *PinSet) Line(name string) *Pinline {
	i, ok := s.index[name]
	if !ok {
		return nil
	}
	return &s.lines[i]
}

// Width returns the width of the named pinline and whether it exists.
func (s *PinSet) Width(name string) (int, bool) {
	l := s.Line(name)
	if l == nil {
		return 0, false
	}
	return l.Width(), true
}

func (s *PinSet) clone() PinSet {
	c := PinSet{
		order: append([]string(nil), s.order...),
		index: make(map[string]int, len(s.index)),
		lines: make([]Pinline, len(s.lines)),
	}
	for k, v := range s.index {
		c.index[k] = v
	}
	for i := range s.lines {
		c.lines[i] = s.lines[i].clone()
	}
	return c
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var b []byte
	for n > 0 {
		b = append([]byte{byte('0' + n%10)}, b...)
		n /= 10
	}
	if neg {
		b = append([]byte{'-'}, b...)
	}
	return string(b)
}
