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

package vm_test

import (
	"fmt"

	"github.com/db47h/intcode/vm"
)

func ExampleInstance_Run() {
	img, err := vm.Parse("109,1,204,-1,1001,100,1,100,1008,100,16,101,1006,101,0,99")
	if err != nil {
		panic(err)
	}
	i, err := vm.New(img)
	if err != nil {
		panic(err)
	}
	out := i.CreateOutput()
	if err = i.Run(); err != nil {
		fmt.Printf("%+v\n", err)
		return
	}
	fmt.Println(vm.Image(out.Drain()))

	// Output:
	// 109,1,204,-1,1001,100,1,100,1008,100,16,101,1006,101,0,99
}

func ExampleParse() {
	img, err := vm.Parse("1,9,10,3,2,3,11,0,99,30,40,50")
	if err != nil {
		panic(err)
	}
	i, _ := vm.New(img)
	if err = i.Run(); err != nil {
		panic(err)
	}
	fmt.Println(i.Image[0])

	// Output:
	// 3500
}
