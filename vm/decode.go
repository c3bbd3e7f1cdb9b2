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
	"strings"

	"github.com/pkg/errors"
)

// Instruction is a decoded instruction.
type Instruction struct {
	Op     Opcode
	Params [3]Param
	n      int
}

// Args returns the instruction's parameters.
func (in *Instruction) Args() []Param {
	return in.Params[:in.n]
}

// Len returns the encoded length of the instruction in cells, opcode included.
func (in *Instruction) Len() int {
	return in.n + 1
}

func (in Instruction) String() string {
	var b strings.Builder
	b.WriteString(in.Op.String())
	for _, p := range in.Args() {
		b.WriteByte(' ')
		b.WriteString(p.String())
	}
	return b.String()
}

// Decode decodes the instruction at address pc in mem. Cells past the end of
// mem read as 0. Decode does not modify mem.
func Decode(mem Image, pc int) (in Instruction, err error) {
	if pc < 0 {
		return in, errors.Wrapf(ErrAddress, "pc %d", pc)
	}
	header := mem.at(pc)
	if header < 0 {
		return in, errors.Wrapf(ErrOpcode, "header %d", header)
	}
	in.Op = Opcode(header % 100)
	reads, writes, ok := in.Op.arity()
	if !ok {
		return in, errors.Wrapf(ErrOpcode, "opcode %d", header%100)
	}
	in.n = reads + writes
	for k := 0; k < in.n; k++ {
		m, err := decodeMode(header, k, k >= reads)
		if err != nil {
			return in, err
		}
		in.Params[k] = Param{m, mem.at(pc + 1 + k)}
	}
	return in, nil
}
