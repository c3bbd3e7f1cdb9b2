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

const maxAddress = Cell(math.MaxInt32)

// grow extends the image with zeroed cells so that addr becomes a valid index.
// Existing values are never discarded.
func (img *Image) grow(addr int) {
	n := addr + 1
	if n <= len(*img) {
		return
	}
	if n <= cap(*img) {
		l := len(*img)
		*img = (*img)[:n]
		clear((*img)[l:])
		return
	}
	c := 2 * cap(*img)
	if c < n {
		c = n
	}
	t := make(Image, n, c)
	copy(t, *img)
	*img = t
}

func checkAddr(addr Cell) error {
	if addr < 0 || addr > maxAddress {
		return errors.Wrapf(ErrAddress, "address %d", addr)
	}
	return nil
}

// Get returns the value at address addr. Addresses beyond the end of the
// image are valid: the image grows to accommodate them. Negative addresses
// fail with ErrAddress.
func (img *Image) Get(addr Cell) (Cell, error) {
	if err := checkAddr(addr); err != nil {
		return 0, err
	}
	img.grow(int(addr))
	return (*img)[addr], nil
}

// Set stores v at address addr, growing the image as needed. Negative
// addresses fail with ErrAddress.
func (img *Image) Set(addr, v Cell) error {
	if err := checkAddr(addr); err != nil {
		return err
	}
	img.grow(int(addr))
	(*img)[addr] = v
	return nil
}

// load and store apply the instance's memory policy.
func (i *Instance) load(addr Cell) (Cell, error) {
	if err := i.bound(addr); err != nil {
		return 0, err
	}
	return i.Image.Get(addr)
}

func (i *Instance) store(addr, v Cell) error {
	if err := i.bound(addr); err != nil {
		return err
	}
	return i.Image.Set(addr, v)
}

func (i *Instance) bound(addr Cell) error {
	switch {
	case i.fixed && addr >= Cell(len(i.Image)):
		return errors.Wrapf(ErrAddress, "address %d out of bounds (size %d)", addr, len(i.Image))
	case i.limit > 0 && addr >= Cell(i.limit):
		return errors.Wrapf(ErrAddress, "address %d exceeds memory limit %d", addr, i.limit)
	}
	return nil
}
