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

package aoc

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
)

// ASCII implements a codec for programs that talk ASCII: each character is
// sent or received as a single value.
//
// Encode returns the values for the bytes of s.
//
// Decode splits cells into the text made of the values in the ASCII range, and
// the remaining values, in order. Programs usually report their final result
// as a single value outside of that range.
var ASCII asciiCodec

type asciiCodec struct{}

func isASCII(v vm.Cell) bool {
	return v >= 0 && v < 128
}

func (asciiCodec) Encode(s string) []vm.Cell {
	cells := make([]vm.Cell, len(s))
	for k := 0; k < len(s); k++ {
		cells[k] = vm.Cell(s[k])
	}
	return cells
}

func (asciiCodec) Decode(cells []vm.Cell) (string, []vm.Cell) {
	var (
		b    strings.Builder
		rest []vm.Cell
	)
	for _, v := range cells {
		if isASCII(v) {
			b.WriteByte(byte(v))
		} else {
			rest = append(rest, v)
		}
	}
	return b.String(), rest
}

// ASCIIIn returns an IN handler that feeds the bytes read from r one at a
// time. At the end of r, IN instructions fail with vm.ErrPortClosed.
func ASCIIIn(r io.Reader) vm.InHandler {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return func(*vm.Instance) (vm.Cell, error) {
		c, err := br.ReadByte()
		switch err {
		case nil:
			return vm.Cell(c), nil
		case io.EOF:
			return 0, errors.WithStack(vm.ErrPortClosed)
		}
		return 0, errors.Wrap(err, "read failed")
	}
}

// ASCIIOut returns an OUT handler that writes values in the ASCII range as
// characters and any other value in decimal on its own line.
func ASCIIOut(w io.Writer) vm.OutHandler {
	var b []byte
	return func(_ *vm.Instance, v vm.Cell) error {
		if isASCII(v) {
			b = append(b[:0], byte(v))
		} else {
			b = strconv.AppendInt(append(b[:0], '\n'), int64(v), 10)
			b = append(b, '\n')
		}
		_, err := w.Write(b)
		return errors.Wrap(err, "write failed")
	}
}
