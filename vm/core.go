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
	"math"

	"github.com/pkg/errors"
)

func add(a, b Cell) (Cell, error) {
	s := a + b
	if (b > 0 && s < a) || (b < 0 && s > a) {
		return 0, errors.Wrapf(ErrOverflow, "%d + %d", a, b)
	}
	return s, nil
}

func mul(a, b Cell) (Cell, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	p := a * b
	if p/b != a || (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, errors.Wrapf(ErrOverflow, "%d * %d", a, b)
	}
	return p, nil
}

func bool2Cell(b bool) Cell {
	if b {
		return 1
	}
	return 0
}

// checkSimple rejects the relative mode and arb, which the simple machine
// selected by FixedMemory does not have.
func checkSimple(in *Instruction) error {
	if in.Op == OpAdjustBase {
		return errors.Wrapf(ErrOpcode, "%v: no relative base", in.Op)
	}
	for k, p := range in.Args() {
		if p.Mode == ModeRelative {
			return errors.Wrapf(ErrMode, "%v parameter %d: %v", in.Op, k+1, p.Mode)
		}
	}
	return nil
}

// Step executes a single instruction. Unless the instruction is a taken jump,
// the PC is then advanced past it. Step is a no-op once the VM has halted.
//
// If an error occurs, the PC is left pointing to the instruction that
// triggered it.
func (i *Instance) Step() error {
	if i.halted {
		return nil
	}
	if i.fixed && i.PC >= len(i.Image) {
		return errors.Wrapf(ErrAddress, "pc %d out of bounds (size %d)", i.PC, len(i.Image))
	}
	in, err := Decode(i.Image, i.PC)
	if err != nil {
		return err
	}
	if i.fixed {
		if err = checkSimple(&in); err != nil {
			return err
		}
	}
	if i.fixed && i.PC+in.Len() > len(i.Image) {
		return errors.Wrapf(ErrAddress, "truncated instruction at %d", i.PC)
	}
	if i.trace != nil {
		i.trace(i, in)
	}
	next := i.PC + in.Len()

	switch in.Op {
	case OpAdd, OpMul, OpLessThan, OpEquals:
		var a, b, dst, v Cell
		if a, err = i.read(in.Params[0]); err != nil {
			return err
		}
		if b, err = i.read(in.Params[1]); err != nil {
			return err
		}
		if dst, err = i.addr(in.Params[2]); err != nil {
			return err
		}
		switch in.Op {
		case OpAdd:
			v, err = add(a, b)
		case OpMul:
			v, err = mul(a, b)
		case OpLessThan:
			v = bool2Cell(a < b)
		case OpEquals:
			v = bool2Cell(a == b)
		}
		if err != nil {
			return err
		}
		if err = i.store(dst, v); err != nil {
			return err
		}
	case OpIn:
		dst, err := i.addr(in.Params[0])
		if err != nil {
			return err
		}
		if i.inH == nil {
			return errors.Wrap(ErrNoPort, "in")
		}
		v, err := i.inH(i)
		if err != nil {
			return errors.Wrap(err, "in")
		}
		if err = i.store(dst, v); err != nil {
			return err
		}
	case OpOut:
		v, err := i.read(in.Params[0])
		if err != nil {
			return err
		}
		if i.outH == nil {
			return errors.Wrap(ErrNoPort, "out")
		}
		if err = i.outH(i, v); err != nil {
			return errors.Wrap(err, "out")
		}
	case OpJumpIfTrue, OpJumpIfFalse:
		test, err := i.read(in.Params[0])
		if err != nil {
			return err
		}
		target, err := i.read(in.Params[1])
		if err != nil {
			return err
		}
		if (test != 0) == (in.Op == OpJumpIfTrue) {
			if err = checkAddr(target); err != nil {
				return errors.Wrap(err, "jump target")
			}
			next = int(target)
		}
	case OpAdjustBase:
		d, err := i.read(in.Params[0])
		if err != nil {
			return err
		}
		if i.rb, err = add(i.rb, d); err != nil {
			return err
		}
	case OpHalt:
		i.halted = true
		next = i.PC
	}
	i.PC = next
	i.insCount++
	return nil
}
