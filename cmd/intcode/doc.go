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

// The intcode command line tool runs Intcode programs, as found in the
// Advent of Code 2019 puzzles, and is a showcase for the package
// github.com/db47h/intcode/vm.
//
// Usage:
//
//	intcode [flags] [filename]
//
//	-ascii
//		  ASCII I/O: feed input bytes one by one and print output values as characters
//	-config filename
//		  load run settings from TOML file filename
//	-debug
//		  enable debug diagnostics
//	-disasm
//		  disassemble the program and exit
//	-dump
//		  dump registers and memory image upon exit
//	-fixed
//		  simple machine: no memory growth, no relative mode
//	-image filename
//		  load program from file filename, - for stdin (default "input.txt")
//	-in values
//		  comma separated input values
//	-limit int
//		  maximum memory size in cells (0 for no limit)
//	-patch addr=value
//		  store value at address addr before running (can be specified multiple times)
//	-raw
//		  switch the terminal to raw mode in ASCII mode
//	-search value
//		  search the noun and verb that produce value (negative disables)
//	-trace
//		  log every executed instruction
//	-v int
//		  log verbosity
//
// A program file given as the first argument takes precedence over -image.
//
// -in: when no input values are given, input is read from stdin: white space or
// comma separated integers, or raw bytes in ASCII mode.
//
// -patch: used to restore a program to a given state before running it, for
// example "-patch 1=12 -patch 2=2". The value left at address 0 is printed once
// the program halts.
//
// -search: runs the noun and verb search. The program is run with every
// combination of values in [0, 99] at addresses 1 and 2, starting from a fresh
// copy of the program each time, until address 0 holds the requested value.
// Prints 100 * noun + verb.
//
// -config: settings are read from a TOML file first, then overridden by any
// flag present on the command line. Example:
//
//	image = "day9.txt"
//	input = [1]
//	ascii = false
//	fixed-memory = false
//	memory-limit = 0
//	trace = false
//	verbosity = 1
//
//	[patch]
//	1 = 12
//	2 = 2
//
// -debug: will print a full stacktrace should the VM crash.
//
// -trace: implies -v 2.
package main
