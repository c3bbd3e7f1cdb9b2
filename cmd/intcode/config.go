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
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
)

type config struct {
	Image       string           `toml:"image"`
	Input       []int64          `toml:"input"`
	ASCII       bool             `toml:"ascii"`
	Raw         bool             `toml:"raw"`
	Patch       map[string]int64 `toml:"patch"`
	FixedMemory bool             `toml:"fixed-memory"`
	MemoryLimit int              `toml:"memory-limit"`
	Trace       bool             `toml:"trace"`
	Verbosity   int              `toml:"verbosity"`
}

func loadConfig(fileName string, cfg *config) error {
	md, err := toml.DecodeFile(fileName, cfg)
	if err != nil {
		return errors.Wrapf(err, "config %s", fileName)
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		return errors.Errorf("config %s: unknown key %v", fileName, keys[0])
	}
	return nil
}

// patches returns the cfg.Patch entries as addresses and values.
func (cfg *config) patches() (map[vm.Cell]vm.Cell, error) {
	p := make(map[vm.Cell]vm.Cell, len(cfg.Patch))
	for k, v := range cfg.Patch {
		a, err := strconv.ParseInt(strings.TrimSpace(k), 10, 64)
		if err != nil || a < 0 {
			return nil, errors.Errorf("invalid patch address %q", k)
		}
		p[vm.Cell(a)] = vm.Cell(v)
	}
	return p, nil
}

type patchList map[string]int64

func (p patchList) String() string { return "" }
func (p patchList) Set(s string) error {
	kv := strings.SplitN(s, "=", 2)
	if len(kv) != 2 {
		return errors.Errorf("%q: expected addr=value", s)
	}
	v, err := strconv.ParseInt(strings.TrimSpace(kv[1]), 10, 64)
	if err != nil {
		return errors.Errorf("%q: invalid value", s)
	}
	p[strings.TrimSpace(kv[0])] = v
	return nil
}
func (p patchList) Get() interface{} { return map[string]int64(p) }

type cellList []int64

func (l *cellList) String() string {
	var b []byte
	for k, v := range *l {
		if k > 0 {
			b = append(b, ',')
		}
		b = strconv.AppendInt(b, v, 10)
	}
	return string(b)
}
func (l *cellList) Set(s string) error {
	img, err := vm.Parse(s)
	if err != nil {
		return err
	}
	for _, v := range img {
		*l = append(*l, int64(v))
	}
	return nil
}
func (l *cellList) Get() interface{} { return []int64(*l) }
