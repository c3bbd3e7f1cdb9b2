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

package main

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRun_trace(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "day2.txt")
	if err := os.WriteFile(fn, []byte("1,0,0,3,2,3,11,0,99,30,40,50\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	var logBuf, outBuf bytes.Buffer
	setupLog(2, &logBuf)
	defer setupLog(0, nil)

	cfg := &config{
		Image: fn,
		Input: []int64{},
		Patch: map[string]int64{"1": 9, "2": 10},
		Trace: true,
	}
	stdout := bufio.NewWriter(&outBuf)
	i, err := run(cfg, stdout)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	stdout.Flush()
	if !i.Halted() {
		t.Error("not halted")
	}
	if s := outBuf.String(); s != "3500\n" {
		t.Errorf("expected output 3500, got %q", s)
	}
	l := logBuf.String()
	for _, exp := range []string{
		"loaded " + fn + ": 12 cells",
		"add [9] [10] [3]",
		"mul [3] [11] [0]",
		"hlt",
		"halted after 3 instructions",
	} {
		if !strings.Contains(l, exp) {
			t.Errorf("log: missing %q in:\n%s", exp, l)
		}
	}

	logBuf.Reset()
	setupLog(0, &logBuf)
	cfg.Patch = nil
	if _, err = run(cfg, bufio.NewWriter(&outBuf)); err != nil {
		t.Fatalf("%+v", err)
	}
	if logBuf.Len() != 0 {
		t.Errorf("expected no log output at verbosity 0, got:\n%s", logBuf.String())
	}
}
