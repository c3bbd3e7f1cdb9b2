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

// Package vm implements an Intcode virtual machine.
//
// An Intcode program is a comma separated list of integers that doubles as the
// machine's initial memory. The machine supports the full instruction set:
// arithmetic, I/O, conditional jumps, comparisons and relative base
// adjustment, with position, immediate and relative parameter modes. Memory
// grows on demand: any non-negative address is valid and reads as 0 until
// written to.
//
// I/O is done through handlers bound with the Input and Output options. The Port
// type provides an unbounded FIFO with a blocking receive which can be used to
// feed a machine from another goroutine while it runs:
//
//	i, _ := vm.New(img)
//	in, out := i.CreateInput(), i.CreateOutput()
//	in.Send(1)
//	err := i.Run()
//	results := out.Drain()
//
// Errors returned by Run wrap one of the package's Err* values and can be
// tested with errors.Cause.
package vm
