// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hdlsim

// project copies the pins at srcIdx in src into the pins at dstIdx in dst,
// in order. Pins of dst outside dstIdx are left untouched, which is how
// send_input's "unaddressed own indices default to false" is realised: dst
// is always a freshly zeroed pinline at the start of a send_input pass (see
// sendInput), so anything not explicitly assigned here stays false.
func project(dst *Pinline, dstIdx []int, src *Pinline, srcIdx []int) {
	for k, di := range dstIdx {
		dst.Set(di, src.Get(srcIdx[k]))
	}
}

// sendInput drives a child's input pins from its parent, immediately
// before the child is evaluated or ticked. Every child input pinline that
// has a connection is reset to false and then has its connected indices
// projected in from the corresponding parent input or internal pinline
// (spec §4.5).
func sendInput(parent *Chip, child *Child) {
	touched := make(map[string]bool)
	for _, conn := range child.InputConns {
		own := child.Chip.Input.Line(conn.OwnName)
		if !touched[conn.OwnName] {
			for i := 0; i < own.Width(); i++ {
				own.Set(i, false)
			}
			touched[conn.OwnName] = true
		}
		src := parent.line(conn.ForeignName)
		project(own, conn.OwnIndices, src, conn.ForeignIndices)
	}
}

// receiveOutput latches a child's output pins into its parent, immediately
// after the child is evaluated or tocked. Each output connection projects
// the child's output pinline into the parent's internal or output pinline
// of the connection's foreign name.
func receiveOutput(parent *Chip, child *Child) {
	for _, conn := range child.OutputConns {
		own := child.Chip.Output.Line(conn.OwnName)
		dst := parent.line(conn.ForeignName)
		project(dst, conn.ForeignIndices, own, conn.OwnIndices)
	}
}
