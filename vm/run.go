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

import "github.com/pkg/errors"

// Run starts execution of the VM and returns when the program halts, in which
// case err is nil, or on the first error.
//
// If an error occurs, the PC will point to the instruction that triggered
// the error and Halted will return false. The returned error wraps one of the
// package's Err* values or the error returned by an I/O handler.
func (i *Instance) Run() error {
	for !i.halted {
		if err := i.Step(); err != nil {
			return errors.Wrapf(err, "@pc=%d/%d, rb=%d", i.PC, len(i.Image), i.rb)
		}
	}
	return nil
}
