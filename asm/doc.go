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

// Package asm provides utility functions to assemble and disassemble Intcode
// programs.
//
// Supported assembler mnemonics:
//
//	opcode	asm	operands	description
//	------	---	--------	------------------------------------------------------------
//	1	add	a b dst	store a + b in dst
//	2	mul	a b dst	store a * b in dst
//	3	in	dst	read a value from the input port and store it in dst
//	4	out	a	write a to the output port
//	5	jnz	a target	jump to target if a != 0
//	6	jz	a target	jump to target if a == 0
//	7	lt	a b dst	store 1 in dst if a < b, 0 otherwise
//	8	eq	a b dst	store 1 in dst if a == b, 0 otherwise
//	9	arb	a	add a to the relative base
//	99	hlt		halt
//
// Operands:
//
// The addressing mode of an operand is given by its syntax:
//
//	42		immediate value 42
//	[42]		position mode: the value at address 42
//	[rb]		relative mode, offset 0
//	[rb+3]		relative mode, offset 3
//	[rb-3]		relative mode, offset -3
//
// Destination operands (dst) cannot be immediate values.
//
// Values can be written in decimal, octal (0666) or hexadecimal (0x27), or as
// character literals ('x'). A label name in place of a value stands for the
// label's address, so that "jnz 1 loop" jumps to loop and "add [count] 1
// [count]" increments the cell labeled count.
//
// Labels and directives:
//
//	:name		defines label name at the current address
//	.dat v ...	emits the following values as raw cells, up to the next
//			mnemonic, label or directive.
//
// Comments:
//
// Comments are placed between parentheses, i.e. '(' and ')'. The body of the
// comment must be separated from the enclosing parentheses by a space:
//
//	( this is a valid comment )
//
// The parser splits its input at white space: operands such as [rb+3] must not
// contain any.
package asm
