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

// Package aoc provides drivers for the usual shapes of Intcode puzzle
// programs: one shot runs with a fixed input, memory patching with exhaustive
// search, and ASCII I/O.
package aoc

import (
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
)

// ErrNotFound is returned by FindNounVerb when no pair of inputs produces the
// requested value.
var ErrNotFound = errors.New("no matching noun and verb")

// RunWithInput runs a copy of img with inputs queued on its input port and
// returns all the values it output. The outputs produced before a failure are
// returned along with the error. Running out of input fails with
// vm.ErrPortClosed.
func RunWithInput(img vm.Image, inputs ...vm.Cell) ([]vm.Cell, error) {
	in := vm.NewPort(inputs...)
	in.Close()
	out := vm.NewPort()
	i, err := vm.New(img.Clone(), vm.InputPort(in), vm.OutputPort(out))
	if err != nil {
		return nil, err
	}
	err = i.Run()
	return out.Drain(), err
}

// Patch stores noun and verb at addresses 1 and 2 of img.
func Patch(img *vm.Image, noun, verb vm.Cell) error {
	if err := img.Set(1, noun); err != nil {
		return err
	}
	return img.Set(2, verb)
}

// RunPatched runs a copy of img patched with noun and verb and returns the
// value left at address 0 once it halts.
func RunPatched(img vm.Image, noun, verb vm.Cell) (vm.Cell, error) {
	i, err := vm.New(img.Clone())
	if err != nil {
		return 0, err
	}
	return runPatched(i, noun, verb)
}

func runPatched(i *vm.Instance, noun, verb vm.Cell) (vm.Cell, error) {
	if err := Patch(&i.Image, noun, verb); err != nil {
		return 0, err
	}
	if err := i.Run(); err != nil {
		return 0, errors.Wrapf(err, "noun %d, verb %d", noun, verb)
	}
	return i.Image[0], nil
}

// FindNounVerb searches for the noun and verb in the range [0, max] that make
// img leave target at address 0. The pristine image is reloaded before each
// trial. Trials that fail are skipped.
func FindNounVerb(img vm.Image, target, max vm.Cell) (noun, verb vm.Cell, err error) {
	i, err := vm.New(nil)
	if err != nil {
		return 0, 0, err
	}
	for noun = 0; noun <= max; noun++ {
		for verb = 0; verb <= max; verb++ {
			i.Load(img)
			v, err := runPatched(i, noun, verb)
			if err == nil && v == target {
				return noun, verb, nil
			}
		}
	}
	return 0, 0, errors.Wrapf(ErrNotFound, "target %d", target)
}
