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
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Image encapsulates a VM's memory.
type Image []Cell

// Parse parses a program in its textual form: comma separated integers,
// optionally surrounded by white space.
func Parse(s string) (Image, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Image{}, nil
	}
	fields := strings.Split(s, ",")
	img := make(Image, len(fields))
	for k, f := range fields {
		n, err := strconv.ParseInt(strings.TrimSpace(f), 10, 64)
		if err != nil {
			return nil, errors.Wrapf(ErrParse, "cell %d: %v", k, err)
		}
		img[k] = Cell(n)
	}
	return img, nil
}

// ReadImage reads a whole program from r and parses it.
func ReadImage(r io.Reader) (Image, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "ReadImage")
	}
	return Parse(string(b))
}

// Load loads an image from file fileName.
func Load(fileName string) (Image, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "Load")
	}
	defer f.Close()
	img, err := ReadImage(f)
	if err != nil {
		return nil, errors.Wrapf(err, "Load %v", fileName)
	}
	return img, nil
}

// String returns the textual form of the image, as accepted by Parse.
func (img Image) String() string {
	var b []byte
	for k, v := range img {
		if k > 0 {
			b = append(b, ',')
		}
		b = strconv.AppendInt(b, int64(v), 10)
	}
	return string(b)
}

// Clone returns a copy of the image that shares no storage with img.
func (img Image) Clone() Image {
	c := make(Image, len(img))
	copy(c, img)
	return c
}

// at returns the value at addr or 0 if addr is out of bounds. It never grows
// the image.
func (img Image) at(addr int) Cell {
	if addr < 0 || addr >= len(img) {
		return 0
	}
	return img[addr]
}
