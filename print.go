// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hdlsim

import "strconv"

// String renders c as canonical HDL source. Reparsing the result against a
// registry that already has every part name c uses must yield a chip
// structurally equal to c (spec §8, testable property 5).
func (c *Chip) String() string {
	s := "CHIP " + c.Name + " {\n\tIN " + pinDeclString(&c.Input) + ";\n"
	s += "\tOUT " + pinDeclString(&c.Output) + ";\n\tPARTS:\n"
	for _, child := range c.Children {
		s += "\t" + child.Chip.Name + "("
		s += connString(child.InputConns, &child.Chip.Input)
		if len(child.InputConns) > 0 && len(child.OutputConns) > 0 {
			s += ","
		}
		s += connString(child.OutputConns, &child.Chip.Output)
		s += ");\n"
	}
	return s + "}\n"
}

func pinDeclString(set *PinSet) string {
	s := ""
	for i, name := range set.Names() {
		if i > 0 {
			s += ", "
		}
		w, _ := set.Width(name)
		s += name
		if w != 1 {
			s += "[" + strconv.Itoa(w) + "]"
		}
	}
	return s
}

// connString renders conns as HDL assignments. ownSet holds the child's
// pinlines for these connections; an own endpoint is printed without a
// suffix only when it covers its whole pinline.
func connString(conns []Connection, ownSet *PinSet) string {
	s := ""
	for i, conn := range conns {
		if i > 0 {
			s += ","
		}
		own := refIndicesString(conn.OwnIndices)
		if w, _ := ownSet.Width(conn.OwnName); own == "" && len(conn.OwnIndices) != w {
			own = "[0.." + strconv.Itoa(len(conn.OwnIndices)-1) + "]"
		}
		s += conn.OwnName + own + "=" + conn.ForeignName + refIndicesString(conn.ForeignIndices)
	}
	return s
}

// refIndicesString renders an index list as the shortest HDL index
// suffix that reproduces it: "[n]" for a single index (even index 0,
// since a lone index always means a width-1 slice of the referenced
// pinline, never the whole of it), nothing for a multi-index reference
// that is a contiguous 0..n-1 range, or "[start..end]" for any other
// contiguous run. connString restores the range on an own endpoint that
// does not span its whole pinline.
func refIndicesString(idx []int) string {
	if len(idx) == 1 {
		return "[" + strconv.Itoa(idx[0]) + "]"
	}
	if isSeqFromZero(idx) {
		return ""
	}
	return "[" + strconv.Itoa(idx[0]) + ".." + strconv.Itoa(idx[len(idx)-1]) + "]"
}

func isSeqFromZero(idx []int) bool {
	for i, v := range idx {
		if v != i {
			return false
		}
	}
	return true
}
