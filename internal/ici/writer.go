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

// Package ici - or intcode-internal with some commonly used stuff.
package ici

import (
	"fmt"
	"io"
	"strconv"

	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
)

// ErrWriter wraps an io.Writer and records the first write error. Once an
// error has occurred, writes do nothing and keep returning it, so a dump or a
// listing can be written without checking every call.
type ErrWriter struct {
	w   io.Writer
	buf []byte
	Err error
}

// NewErrWriter returns a new ErrWriter.
func NewErrWriter(w io.Writer) *ErrWriter {
	return &ErrWriter{w: w}
}

func (w *ErrWriter) Write(p []byte) (n int, err error) {
	if w.Err != nil {
		return 0, w.Err
	}
	n, err = w.w.Write(p)
	if err != nil {
		w.Err = errors.Wrap(err, "write failed")
	}
	return n, w.Err
}

// WriteCells writes cells in the program text format: decimal values
// separated by commas, without a trailing newline.
func (w *ErrWriter) WriteCells(cells []vm.Cell) error {
	w.buf = w.buf[:0]
	for k, v := range cells {
		if k > 0 {
			w.buf = append(w.buf, ',')
		}
		w.buf = strconv.AppendInt(w.buf, int64(v), 10)
		// flush long images in chunks
		if len(w.buf) >= 4096 {
			if _, err := w.Write(w.buf); err != nil {
				return err
			}
			w.buf = w.buf[:0]
		}
	}
	_, err := w.Write(w.buf)
	return err
}

// WriteAddr writes the address column of a listing: addr right aligned on 10
// characters, followed by a tab.
func (w *ErrWriter) WriteAddr(addr int) error {
	_, err := fmt.Fprintf(w, "% 10d\t", addr)
	return err
}
