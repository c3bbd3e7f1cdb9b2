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

package asm

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"text/scanner"
	"unicode"

	"github.com/db47h/intcode/vm"
)

const maxErrors = 10

// ErrAsm encapsulates errors generated by the assembler.
type ErrAsm []struct {
	Pos scanner.Position
	Msg string
}

func (e ErrAsm) Error() string {
	var b strings.Builder
	for k, err := range e {
		if k > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(err.Pos.String())
		b.WriteString(": ")
		b.WriteString(err.Msg)
	}
	return b.String()
}

func isIdentRune(ch rune, i int) bool {
	return unicode.IsLetter(ch) || unicode.IsSymbol(ch) || unicode.IsPunct(ch) || unicode.IsDigit(ch)
}

func isLabelName(s string) bool {
	for k, r := range s {
		if !(unicode.IsLetter(r) || r == '_' || k > 0 && unicode.IsDigit(r)) {
			return false
		}
	}
	return s != "" && s != "rb"
}

type labelSite struct {
	pos     scanner.Position
	address int
}

type label struct {
	labelSite
	uses []labelSite
}

type parser struct {
	img    vm.Image
	s      scanner.Scanner
	labels map[string]*label
	errs   ErrAsm
	data   bool // within a .dat directive
}

func newParser() *parser {
	return &parser{labels: make(map[string]*label)}
}

func (p *parser) errorf(pos scanner.Position, format string, args ...interface{}) {
	if len(p.errs) >= maxErrors {
		return
	}
	p.errs = append(p.errs, struct {
		Pos scanner.Position
		Msg string
	}{pos, fmt.Sprintf(format, args...)})
}

func (p *parser) write(v vm.Cell) {
	p.img = append(p.img, v)
}

// word returns the next white space delimited word, skipping comments.
func (p *parser) word() (string, scanner.Position, bool) {
	for tok := p.s.Scan(); tok != scanner.EOF; tok = p.s.Scan() {
		if s := p.s.TokenText(); s != "(" {
			return s, p.s.Position, true
		}
		start := p.s.Position
		for tok = p.s.Scan(); tok != scanner.EOF && p.s.TokenText() != ")"; tok = p.s.Scan() {
		}
		if tok == scanner.EOF {
			p.errorf(start, "Unterminated comment")
			break
		}
	}
	return "", p.s.Pos(), false
}

func (p *parser) useLabel(name string, pos scanner.Position) {
	lbl := p.labels[name]
	if lbl == nil {
		lbl = &label{labelSite{pos, -1}, nil}
		p.labels[name] = lbl
	}
	lbl.uses = append(lbl.uses, labelSite{pos, len(p.img)})
}

func (p *parser) defineLabel(name string, pos scanner.Position) {
	if !isLabelName(name) {
		p.errorf(pos, "Invalid label name: %s", name)
		return
	}
	if l, ok := p.labels[name]; ok {
		if l.address != -1 {
			p.errorf(pos, "Label redefinition: %s, previous definition here: %s", name, l.pos)
			return
		}
		l.labelSite = labelSite{pos, len(p.img)}
		return
	}
	p.labels[name] = &label{labelSite{pos, len(p.img)}, nil}
}

// value emits a single cell: an integer, a char literal or a label address.
func (p *parser) value(s string, pos scanner.Position) bool {
	if n, err := strconv.ParseInt(s, 0, 64); err == nil {
		p.write(vm.Cell(n))
		return true
	}
	if len(s) > 2 && s[0] == '\'' && s[len(s)-1] == '\'' {
		r, _, tail, err := strconv.UnquoteChar(s[1:len(s)-1], '\'')
		if err != nil || tail != "" {
			p.errorf(pos, "Invalid char literal %s", s)
			return false
		}
		p.write(vm.Cell(r))
		return true
	}
	if isLabelName(s) {
		p.useLabel(s, pos)
		p.write(0)
		return true
	}
	p.errorf(pos, "Invalid value %s", s)
	return false
}

// operand emits an instruction operand and returns its addressing mode.
func (p *parser) operand(s string, pos scanner.Position) (vm.Mode, bool) {
	m := vm.ModeImmediate
	if len(s) > 2 && s[0] == '[' && s[len(s)-1] == ']' {
		m = vm.ModePosition
		s = s[1 : len(s)-1]
		switch {
		case s == "rb":
			m, s = vm.ModeRelative, "0"
		case strings.HasPrefix(s, "rb+"):
			m, s = vm.ModeRelative, s[3:]
		case strings.HasPrefix(s, "rb-"):
			m, s = vm.ModeRelative, s[2:]
		}
	}
	return m, p.value(s, pos)
}

func (p *parser) instruction(op vm.Opcode, pos scanner.Position) {
	at := len(p.img)
	p.write(vm.Cell(op))
	n, dst := op.Arity()
	scale := vm.Cell(100)
	for k := 0; k < n; k++ {
		s, apos, ok := p.word()
		if !ok {
			p.errorf(pos, "%v: expected %d operands, got %d", op, n, k)
			return
		}
		if _, isOp := vm.Lookup(s); isOp || s[0] == ':' || s[0] == '.' {
			p.errorf(apos, "%v: unexpected %s as operand", op, s)
		}
		m, ok := p.operand(s, apos)
		if !ok {
			continue
		}
		if dst && k == n-1 && m == vm.ModeImmediate {
			p.errorf(apos, "%v: immediate destination %s", op, s)
		}
		p.img[at] += vm.Cell(m) * scale
		scale *= 10
	}
}

// Parse does the parsing and compiling.
func (p *parser) Parse(name string, r io.Reader) error {
	p.s.Init(r)
	p.s.Error = func(s *scanner.Scanner, msg string) {
		pos := s.Position
		if !pos.IsValid() {
			pos = s.Pos()
		}
		p.errorf(pos, "%s", msg)
	}
	p.s.IsIdentRune = isIdentRune
	p.s.Mode = scanner.ScanIdents
	p.s.Filename = name

	for s, pos, ok := p.word(); ok && len(p.errs) < maxErrors; s, pos, ok = p.word() {
		if op, isOp := vm.Lookup(s); isOp {
			p.data = false
			p.instruction(op, pos)
			continue
		}
		switch s[0] {
		case ':':
			p.data = false
			p.defineLabel(s[1:], pos)
		case '.':
			p.data = s == ".dat"
			if !p.data {
				p.errorf(pos, "Unknown directive: %s", s)
			}
		default:
			if !p.data {
				p.errorf(pos, "Unknown mnemonic: %s", s)
				continue
			}
			p.value(s, pos)
		}
	}

	// resolve labels
	for n, l := range p.labels {
		if l.address == -1 {
			p.errorf(l.uses[0].pos, "Undefined label %s", n)
			continue
		}
		for _, u := range l.uses {
			p.img[u.address] = vm.Cell(l.address)
		}
	}

	if len(p.errs) > 0 {
		sort.SliceStable(p.errs, func(i, j int) bool { return p.errs[i].Pos.Offset < p.errs[j].Pos.Offset })
		return p.errs
	}
	return nil
}
