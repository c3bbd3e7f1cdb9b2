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
	"os"
	"path/filepath"
	"testing"

	"github.com/db47h/intcode/vm"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "day2.toml")
	data := `image = "day2.txt"
input = [1, 2]
fixed-memory = true
verbosity = 1

[patch]
1 = 12
2 = 2
`
	if err := os.WriteFile(fn, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	var cfg config
	if err := loadConfig(fn, &cfg); err != nil {
		t.Fatalf("%+v", err)
	}
	if cfg.Image != "day2.txt" || !cfg.FixedMemory || cfg.Verbosity != 1 || len(cfg.Input) != 2 {
		t.Errorf("bad config: %+v", cfg)
	}
	p, err := cfg.patches()
	if err != nil {
		t.Fatal(err)
	}
	if len(p) != 2 || p[1] != 12 || p[2] != 2 {
		t.Errorf("bad patches: %v", p)
	}

	if err = os.WriteFile(fn, []byte("imgae = \"x\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err = loadConfig(fn, &cfg); err == nil {
		t.Error("unknown key: expected error")
	}
}

func TestFlagValues(t *testing.T) {
	p := make(patchList)
	for _, s := range []string{"1=12", " 2 = -2"} {
		if err := p.Set(s); err != nil {
			t.Fatal(err)
		}
	}
	if len(p) != 2 || p["1"] != 12 || p["2"] != -2 {
		t.Errorf("bad patch list: %v", p)
	}
	for _, s := range []string{"1", "1=x"} {
		if err := p.Set(s); err == nil {
			t.Errorf("%q: expected error", s)
		}
	}
	cfg := config{Patch: map[string]int64{"-1": 0}}
	if _, err := cfg.patches(); err == nil {
		t.Error("negative address: expected error")
	}

	var l cellList
	if err := l.Set("1,2"); err != nil {
		t.Fatal(err)
	}
	if err := l.Set("-3"); err != nil {
		t.Fatal(err)
	}
	if s := l.String(); s != "1,2,-3" {
		t.Errorf("expected 1,2,-3, got %s", s)
	}
	if err := l.Set("1,x"); err == nil {
		t.Error("expected parse error")
	}
	img := make(vm.Image, len(l))
	for k, v := range l {
		img[k] = vm.Cell(v)
	}
	if img.String() != "1,2,-3" {
		t.Errorf("got %v", img)
	}
}
