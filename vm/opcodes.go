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

import "strconv"

// Opcode identifies an instruction. It is the value of the two low order
// decimal digits of an instruction header.
type Opcode Cell

// Intcode opcodes.
const (
	OpAdd         Opcode = 1
	OpMul         Opcode = 2
	OpIn          Opcode = 3
	OpOut         Opcode = 4
	OpJumpIfTrue  Opcode = 5
	OpJumpIfFalse Opcode = 6
	OpLessThan    Opcode = 7
	OpEquals      Opcode = 8
	OpAdjustBase  Opcode = 9
	OpHalt        Opcode = 99
)

var opcodes = map[Opcode]string{
	OpAdd:         "add",
	OpMul:         "mul",
	OpIn:          "in",
	OpOut:         "out",
	OpJumpIfTrue:  "jnz",
	OpJumpIfFalse: "jz",
	OpLessThan:    "lt",
	OpEquals:      "eq",
	OpAdjustBase:  "arb",
	OpHalt:        "hlt",
}

var opcodeIndex = make(map[string]Opcode)

func init() {
	for op, name := range opcodes {
		opcodeIndex[name] = op
	}
}

// String returns the assembler mnemonic for op.
func (op Opcode) String() string {
	if s, ok := opcodes[op]; ok {
		return s
	}
	return "op" + strconv.Itoa(int(op))
}

// Lookup returns the opcode for the given assembler mnemonic.
func Lookup(mnemonic string) (Opcode, bool) {
	op, ok := opcodeIndex[mnemonic]
	return op, ok
}

// arity returns the number of parameters read and written by op. Written
// parameters always come last.
func (op Opcode) arity() (reads, writes int, ok bool) {
	switch op {
	case OpAdd, OpMul, OpLessThan, OpEquals:
		return 2, 1, true
	case OpIn:
		return 0, 1, true
	case OpOut, OpAdjustBase:
		return 1, 0, true
	case OpJumpIfTrue, OpJumpIfFalse:
		return 2, 0, true
	case OpHalt:
		return 0, 0, true
	}
	return 0, 0, false
}

// Arity returns the number of parameters of op, and whether the last one is a
// write destination. It returns (-1, false) for unknown opcodes.
func (op Opcode) Arity() (params int, dst bool) {
	r, w, ok := op.arity()
	if !ok {
		return -1, false
	}
	return r + w, w > 0
}
