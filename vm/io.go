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
	"sync"

	"github.com/pkg/errors"
)

// Port is an unbounded FIFO of Cells. Send never blocks and Recv blocks until
// a value is available or the port is closed. A Port is safe for concurrent
// use by one producer and one consumer.
type Port struct {
	mu     sync.Mutex
	cond   sync.Cond
	q      []Cell
	closed bool
}

// NewPort returns a new Port with the given values already queued.
func NewPort(values ...Cell) *Port {
	p := &Port{q: append([]Cell(nil), values...)}
	p.cond.L = &p.mu
	return p
}

// Send queues v. It fails with ErrPortClosed if the port has been closed.
func (p *Port) Send(v Cell) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return errors.WithStack(ErrPortClosed)
	}
	p.q = append(p.q, v)
	p.cond.Signal()
	return nil
}

// Close marks the end of the stream. Values already queued can still be
// received.
func (p *Port) Close() {
	p.mu.Lock()
	p.closed = true
	p.cond.Broadcast()
	p.mu.Unlock()
}

// Recv returns the next value in the queue, waiting for one if necessary. Once
// the port is closed and empty, it fails with ErrPortClosed.
func (p *Port) Recv() (Cell, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for len(p.q) == 0 {
		if p.closed {
			return 0, errors.WithStack(ErrPortClosed)
		}
		p.cond.Wait()
	}
	v := p.q[0]
	p.q = p.q[1:]
	return v, nil
}

// TryRecv returns the next value in the queue, if any, without blocking.
func (p *Port) TryRecv() (Cell, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.q) == 0 {
		return 0, false
	}
	v := p.q[0]
	p.q = p.q[1:]
	return v, true
}

// Drain removes and returns all queued values.
func (p *Port) Drain() []Cell {
	p.mu.Lock()
	defer p.mu.Unlock()
	q := p.q
	p.q = nil
	return q
}

// Len returns the number of queued values.
func (p *Port) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.q)
}

// In implements InHandler.
func (p *Port) In(*Instance) (Cell, error) {
	return p.Recv()
}

// Out implements OutHandler.
func (p *Port) Out(_ *Instance, v Cell) error {
	return p.Send(v)
}
