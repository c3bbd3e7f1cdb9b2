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

// Cell is the raw type stored in a memory location.
type Cell int64

// Instance represents an Intcode VM instance.
type Instance struct {
	PC       int   // Program Counter (aka. Instruction Pointer)
	Image    Image // Memory image
	rb       Cell
	halted   bool
	insCount int64
	inH      InHandler
	outH     OutHandler
	trace    TraceFunc
	fixed    bool
	limit    int
}

// Option interface
type Option func(*Instance) error

// InHandler is the function prototype for IN handlers. It must block until a
// value is available.
type InHandler func(i *Instance) (Cell, error)

// OutHandler is the function prototype for OUT handlers.
type OutHandler func(i *Instance, v Cell) error

// TraceFunc is called before each instruction is executed, with the PC still
// pointing at it.
type TraceFunc func(i *Instance, in Instruction)

// Input binds the provided IN handler. Programs that execute an IN
// instruction with no handler bound fail with ErrNoPort.
func Input(h InHandler) Option {
	return func(i *Instance) error {
		i.inH = h
		return nil
	}
}

// Output binds the provided OUT handler. Programs that execute an OUT
// instruction with no handler bound fail with ErrNoPort.
func Output(h OutHandler) Option {
	return func(i *Instance) error {
		i.outH = h
		return nil
	}
}

// InputPort binds p as the instance's input.
func InputPort(p *Port) Option {
	return Input(p.In)
}

// OutputPort binds p as the instance's output.
func OutputPort(p *Port) Option {
	return Output(p.Out)
}

// FixedMemory selects the simple machine. Memory does not grow: accessing an
// address past the end of the image fails with ErrAddress. Relative mode
// parameters fail with ErrMode and arb fails with ErrOpcode.
func FixedMemory() Option {
	return func(i *Instance) error { i.fixed = true; return nil }
}

// MemoryLimit sets the maximum number of cells the image may grow to. 0 means
// no limit besides what the platform can address.
func MemoryLimit(cells int) Option {
	return func(i *Instance) error {
		if cells < 0 {
			cells = 0
		}
		i.limit = cells
		return nil
	}
}

// Trace sets a function to be called before each instruction.
func Trace(f TraceFunc) Option {
	return func(i *Instance) error { i.trace = f; return nil }
}

// SetOptions sets the provided options.
func (i *Instance) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return err
		}
	}
	return nil
}

// New creates a new Intcode Virtual Machine instance.
//
// The image parameter is the Cell array used as memory by the VM. The
// instance takes ownership of it: use Image.Clone to keep a pristine copy.
//
// Options will be set by calling SetOptions.
func New(image Image, opts ...Option) (*Instance, error) {
	i := &Instance{Image: image}
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	return i, nil
}

// Load replaces the instance's memory with a copy of image and resets the PC,
// the relative base and the instruction count. I/O handlers are kept.
func (i *Instance) Load(image Image) {
	i.Image = image.Clone()
	i.PC = 0
	i.rb = 0
	i.halted = false
	i.insCount = 0
}

// CreateInput creates a new Port and binds it as the instance's input.
func (i *Instance) CreateInput() *Port {
	p := NewPort()
	i.inH = p.In
	return p
}

// CreateOutput creates a new Port and binds it as the instance's output.
func (i *Instance) CreateOutput() *Port {
	p := NewPort()
	i.outH = p.Out
	return p
}

// RelativeBase returns the current relative base.
func (i *Instance) RelativeBase() Cell {
	return i.rb
}

// Halted returns true once the VM has executed a HLT instruction.
func (i *Instance) Halted() bool {
	return i.halted
}

// InstructionCount returns the number of instructions executed so far.
func (i *Instance) InstructionCount() int64 {
	return i.insCount
}
