// This file is part of intcode - https://github.com/db47h/intcode
//
// Copyright 2019 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vm

import (
	"strconv"

	"github.com/pkg/errors"
)

// Mode is a parameter addressing mode.
type Mode int

// Parameter modes.
const (
	ModePosition  Mode = iota // value is an address
	ModeImmediate             // value is used as is
	ModeRelative              // value is an offset from the relative base
)

func (m Mode) String() string {
	switch m {
	case ModePosition:
		return "position"
	case ModeImmediate:
		return "immediate"
	case ModeRelative:
		return "relative"
	}
	return "mode(" + strconv.Itoa(int(m)) + ")"
}

// Param is a decoded instruction parameter.
type Param struct {
	Mode  Mode
	Value Cell
}

// String formats p using the assembler syntax: 42 for immediate values, [42]
// for positions and [rb+42] for relative offsets.
func (p Param) String() string {
	v := strconv.FormatInt(int64(p.Value), 10)
	switch p.Mode {
	case ModeImmediate:
		return v
	case ModeRelative:
		switch {
		case p.Value == 0:
			return "[rb]"
		case p.Value > 0:
			return "[rb+" + v + "]"
		}
		return "[rb" + v + "]"
	}
	return "[" + v + "]"
}

// digit returns the decimal digit of n at position pos, 0 being the least
// significant.
func digit(n Cell, pos int) Cell {
	for ; pos > 0; pos-- {
		n /= 10
	}
	return n % 10
}

// decodeMode returns the mode of parameter index (0 based) in the given
// instruction header. Destination parameters cannot be immediate.
func decodeMode(header Cell, index int, dst bool) (Mode, error) {
	m := Mode(digit(header, index+2))
	switch m {
	case ModePosition, ModeRelative:
	case ModeImmediate:
		if dst {
			return m, errors.Wrapf(ErrDestination, "header %d, parameter %d", header, index)
		}
	default:
		return m, errors.Wrapf(ErrMode, "header %d, parameter %d: mode %d", header, index, m)
	}
	return m, nil
}

// read resolves p to a value.
func (i *Instance) read(p Param) (Cell, error) {
	switch p.Mode {
	case ModeImmediate:
		return p.Value, nil
	case ModePosition, ModeRelative:
		a, err := i.addr(p)
		if err != nil {
			return 0, err
		}
		return i.load(a)
	}
	return 0, errors.Wrapf(ErrMode, "%v", p.Mode)
}

// addr resolves a destination parameter to an address.
func (i *Instance) addr(p Param) (Cell, error) {
	switch p.Mode {
	case ModePosition:
		return p.Value, nil
	case ModeRelative:
		return add(i.rb, p.Value)
	case ModeImmediate:
		return 0, errors.Wrap(ErrDestination, "immediate parameter used as address")
	}
	return 0, errors.Wrapf(ErrMode, "%v", p.Mode)
}
