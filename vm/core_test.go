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

package vm_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/db47h/intcode/asm"
	"github.com/db47h/intcode/vm"
)

func runAsm(name, code string, input ...vm.Cell) (*vm.Instance, vm.Image, []vm.Cell, error) {
	img, err := asm.Assemble(name, strings.NewReader(code))
	if err != nil {
		return nil, nil, nil, err
	}
	in := vm.NewPort(input...)
	in.Close()
	out := vm.NewPort()
	i, err := vm.New(img.Clone(), vm.InputPort(in), vm.OutputPort(out))
	if err != nil {
		return nil, img, nil, err
	}
	err = i.Run()
	return i, img, out.Drain(), err
}

var fib = `
	in [n]
:loop
	out [a]
	add [a] [b] [t]
	add [b] 0 [a]
	add [t] 0 [b]
	add [n] -1 [n]
	jnz [n] loop
	hlt
:n	.dat 0
:a	.dat 0
:b	.dat 1
:t	.dat 0
`

var tests = [...]struct {
	name  string
	code  string
	input []vm.Cell
	out   []vm.Cell
}{
	{"add", "add 2 3 [t] out [t] hlt :t .dat 0", nil, C{5}},
	{"add position", "add [x] [y] [t] out [t] hlt :x .dat 30 :y .dat 40 :t .dat 0", nil, C{70}},
	{"mul", "mul -4 6 [t] out [t] hlt :t .dat 0", nil, C{-24}},
	{"in/out", "in [t] out [t] in [t] out [t] hlt :t .dat 0", C{42, -7}, C{42, -7}},
	{"out immediate", "out 1125899906842624 hlt", nil, C{1125899906842624}},
	{"jnz", "jnz 1 skip out 1 :skip out 2 hlt", nil, C{2}},
	{"jnz not taken", "jnz 0 skip out 1 :skip out 2 hlt", nil, C{1, 2}},
	{"jz", "jz 0 skip out 1 :skip out 2 hlt", nil, C{2}},
	{"jz not taken", "jz -5 skip out 1 :skip out 2 hlt", nil, C{1, 2}},
	{"jump position", "jnz 1 [dst] out 1 :end hlt :dst .dat end", nil, nil},
	{"lt", "lt 1 2 [t] out [t] lt 2 1 [t] out [t] lt 2 2 [t] out [t] hlt :t .dat 0", nil, C{1, 0, 0}},
	{"eq", "eq 1 2 [t] out [t] eq 2 2 [t] out [t] hlt :t .dat 0", nil, C{0, 1}},
	{"arb", "arb 100 arb -50 add 7 0 [rb+1] out [51] out [rb+1] hlt", nil, C{7, 7}},
	{"relative read", "arb t out [rb] out [rb+1] hlt :t .dat 11 22", nil, C{11, 22}},
	{"relative input", "arb t in [rb+1] out [rb+1] hlt :t .dat 0 0", C{9}, C{9}},
	{"countdown", ":loop out [n] add [n] -1 [n] jnz [n] loop hlt :n .dat 3", nil, C{3, 2, 1}},
	{"fib", fib, C{10}, C{0, 1, 1, 2, 3, 5, 8, 13, 21, 34}},
}

func TestCore(t *testing.T) {
	for _, test := range tests {
		_, img, out, err := runAsm(test.name, test.code, test.input...)
		if err != nil {
			t.Errorf("%s: %+v", test.name, err)
		} else if !equal(out, test.out) {
			t.Errorf("%s: expected output %v, got %v", test.name, test.out, out)
		}
		if t.Failed() && img != nil {
			// disasm
			var b bytes.Buffer
			b.WriteString(test.name)
			b.WriteString(":\n")
			asm.DisassembleAll(img, 0, &b)
			t.Log(b.String())
		}
	}
}

// Comparison and jump programs from the thermal environment supervision
// terminal diagnostics.
func TestCompare(t *testing.T) {
	larger := "3,21,1008,21,8,20,1005,20,22,107,8,21,20,1006,20,31," +
		"1106,0,36,98,0,0,1002,21,125,20,4,20,1105,1,46,104," +
		"999,1105,1,46,1101,1000,1,20,4,20,1105,1,46,98,99"
	tests := []struct {
		name string
		code string
		in   vm.Cell
		out  vm.Cell
	}{
		{"eq position 8", "3,9,8,9,10,9,4,9,99,-1,8", 8, 1},
		{"eq position 7", "3,9,8,9,10,9,4,9,99,-1,8", 7, 0},
		{"lt position 7", "3,9,7,9,10,9,4,9,99,-1,8", 7, 1},
		{"lt position 9", "3,9,7,9,10,9,4,9,99,-1,8", 9, 0},
		{"eq immediate 8", "3,3,1108,-1,8,3,4,3,99", 8, 1},
		{"eq immediate 1", "3,3,1108,-1,8,3,4,3,99", 1, 0},
		{"lt immediate 3", "3,3,1107,-1,8,3,4,3,99", 3, 1},
		{"lt immediate 8", "3,3,1107,-1,8,3,4,3,99", 8, 0},
		{"jump position 0", "3,12,6,12,15,1,13,14,13,4,13,99,-1,0,1,9", 0, 0},
		{"jump position 5", "3,12,6,12,15,1,13,14,13,4,13,99,-1,0,1,9", 5, 1},
		{"jump immediate 0", "3,3,1105,-1,9,1101,0,0,12,4,12,99,1", 0, 0},
		{"jump immediate -2", "3,3,1105,-1,9,1101,0,0,12,4,12,99,1", -2, 1},
		{"larger 7", larger, 7, 999},
		{"larger 8", larger, 8, 1000},
		{"larger 9", larger, 9, 1001},
	}
	for _, test := range tests {
		i := setup(t, test.code)
		in, out := i.CreateInput(), i.CreateOutput()
		in.Send(test.in)
		if err := i.Run(); err != nil {
			t.Errorf("%s: %+v", test.name, err)
			continue
		}
		if got := out.Drain(); !equal(got, C{test.out}) {
			t.Errorf("%s: expected %d, got %v", test.name, test.out, got)
		}
	}
}

func Benchmark_Fib(b *testing.B) {
	img, err := asm.Assemble("fib", strings.NewReader(fib))
	if err != nil {
		b.Fatal(err)
	}
	i, _ := vm.New(nil)
	in, out := i.CreateInput(), i.CreateOutput()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		i.Load(img)
		in.Send(90)
		if err = i.Run(); err != nil {
			b.Fatalf("%+v", err)
		}
		out.Drain()
	}
}
