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
	"bufio"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

// ChanIn returns an IN handler that receives values from ch. Once ch is
// closed, IN instructions fail with ErrPortClosed.
func ChanIn(ch <-chan Cell) InHandler {
	return func(*Instance) (Cell, error) {
		v, ok := <-ch
		if !ok {
			return 0, errors.WithStack(ErrPortClosed)
		}
		return v, nil
	}
}

// ChanOut returns an OUT handler that sends values to ch. The handler blocks
// if ch is full.
func ChanOut(ch chan<- Cell) OutHandler {
	return func(_ *Instance, v Cell) error {
		ch <- v
		return nil
	}
}

// isSep reports whether c is a comma or ASCII white space. Bytes of multi-byte
// UTF-8 sequences are never separators.
func isSep(c byte) bool {
	switch c {
	case ',', ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// scanCells is a bufio.SplitFunc for integers separated by commas or white
// space.
func scanCells(data []byte, atEOF bool) (advance int, token []byte, err error) {
	start := 0
	for start < len(data) && isSep(data[start]) {
		start++
	}
	for k := start; k < len(data); k++ {
		if isSep(data[k]) {
			return k + 1, data[start:k], nil
		}
	}
	if atEOF && len(data) > start {
		return len(data), data[start:], nil
	}
	return start, nil, nil
}

// ReaderIn returns an IN handler that reads decimal integers, separated by
// commas or white space, from r. At the end of r, IN instructions fail with
// ErrPortClosed.
func ReaderIn(r io.Reader) InHandler {
	s := bufio.NewScanner(r)
	s.Split(scanCells)
	return func(*Instance) (Cell, error) {
		if !s.Scan() {
			if err := s.Err(); err != nil {
				return 0, errors.Wrap(err, "read failed")
			}
			return 0, errors.WithStack(ErrPortClosed)
		}
		n, err := strconv.ParseInt(s.Text(), 10, 64)
		if err != nil {
			return 0, errors.Wrapf(ErrParse, "input %q", s.Text())
		}
		return Cell(n), nil
	}
}

// WriterOut returns an OUT handler that writes each value on its own line to
// w.
func WriterOut(w io.Writer) OutHandler {
	var b []byte
	return func(_ *Instance, v Cell) error {
		b = strconv.AppendInt(b[:0], int64(v), 10)
		b = append(b, '\n')
		_, err := w.Write(b)
		return errors.Wrap(err, "write failed")
	}
}
