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

package ici_test

import (
	"strings"
	"testing"

	"github.com/db47h/intcode/internal/ici"
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
)

var errFull = errors.New("full")

type limitWriter int

func (l *limitWriter) Write(p []byte) (int, error) {
	if len(p) > int(*l) {
		n := int(*l)
		*l = 0
		return n, errFull
	}
	*l -= limitWriter(len(p))
	return len(p), nil
}

func TestErrWriter(t *testing.T) {
	lw := limitWriter(4)
	w := ici.NewErrWriter(&lw)
	if n, err := w.Write([]byte("abc")); n != 3 || err != nil {
		t.Fatalf("expected 3, nil, got %d, %v", n, err)
	}
	if n, err := w.Write([]byte("de")); n != 1 || errors.Cause(err) != errFull {
		t.Fatalf("expected 1, %v, got %d, %v", errFull, n, err)
	}
	if _, err := w.Write([]byte("f")); errors.Cause(err) != errFull || w.Err != err {
		t.Fatalf("error not sticky: %v", err)
	}
}

func TestErrWriter_cells(t *testing.T) {
	var b strings.Builder
	w := ici.NewErrWriter(&b)
	w.WriteAddr(7)
	w.WriteCells(vm.Image{1002, -4, 3})
	w.Write([]byte{'\n'})
	w.WriteAddr(1234)
	w.WriteCells(nil)
	if w.Err != nil {
		t.Fatal(w.Err)
	}
	if s := b.String(); s != "         7\t1002,-4,3\n      1234\t" {
		t.Errorf("got %q", s)
	}

	// long images are written in several chunks
	img := make(vm.Image, 3000)
	for k := range img {
		img[k] = vm.Cell(k)
	}
	b.Reset()
	if err := w.WriteCells(img); err != nil {
		t.Fatal(err)
	}
	if s := b.String(); s != img.String() {
		t.Errorf("chunked write: got %d bytes, expected %d", len(s), len(img.String()))
	}

	lw := limitWriter(5)
	w = ici.NewErrWriter(&lw)
	if err := w.WriteCells(img); errors.Cause(err) != errFull {
		t.Errorf("expected %v, got %v", errFull, err)
	}
	if err := w.WriteAddr(0); errors.Cause(err) != errFull {
		t.Errorf("error not sticky: %v", err)
	}
}
