// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hdlsim

import (
	"github.com/dbernard/hdlsim/internal/hdl"
	"github.com/pkg/errors"
)

// Parse tokenises and parses src as a single HDL chip definition and
// builds it against reg, resolving every Part by name (spec §6). On
// success the returned chip is ready to evaluate; reg is unmodified. The
// caller typically follows up with reg.Register(chip) so that later chip
// definitions can reference it as a Part.
func Parse(src string, reg *Registry) (*Chip, error) {
	def, err := hdl.Parse(src)
	if err != nil {
		return nil, err
	}
	c, err := Build(def, reg)
	if err != nil {
		return nil, errors.Wrapf(err, "building chip %s", def.Name)
	}
	return c, nil
}
