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
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/db47h/intcode/asm"
	"github.com/db47h/intcode/lang/aoc"
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
	"github.com/tliron/commonlog"
	"github.com/tliron/commonlog/simple"
	"github.com/tliron/kutil/util"
)

var (
	debug  bool
	dump   bool
	disasm bool
	search int64 = -1

	log = commonlog.GetLogger("intcode")
)

func atExit(i *vm.Instance, err error) {
	if err == nil {
		util.Exit(0)
	}
	if !debug {
		fmt.Fprintf(os.Stderr, "\n%v\n", err)
		util.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "\n%+v\n", err)
	if i != nil {
		if in, e := vm.Decode(i.Image, i.PC); e == nil {
			fmt.Fprintf(os.Stderr, "PC: %v (%v), RB: %v\n", i.PC, in, i.RelativeBase())
		} else {
			fmt.Fprintf(os.Stderr, "PC: %v, RB: %v\n", i.PC, i.RelativeBase())
		}
	}
	util.Exit(1)
}

func loadImage(fileName string) (vm.Image, error) {
	if fileName == "-" {
		return vm.ReadImage(os.Stdin)
	}
	return vm.Load(fileName)
}

// parseFlags builds the run configuration from the config file, if any, and
// the command line flags, which take precedence.
func parseFlags() (*config, error) {
	var (
		fl      config
		input   cellList
		patches = make(patchList)
		cfgFile string
	)
	flag.StringVar(&fl.Image, "image", "input.txt", "load program from file `filename`, - for stdin")
	flag.Var(&input, "in", "comma separated input `values`")
	flag.BoolVar(&fl.ASCII, "ascii", false, "ASCII I/O: feed input bytes one by one and print output values as characters")
	flag.BoolVar(&fl.Raw, "raw", false, "switch the terminal to raw mode in ASCII mode")
	flag.Var(patches, "patch", "store value at address addr before running (can be specified multiple times) `addr=value`")
	flag.BoolVar(&fl.FixedMemory, "fixed", false, "simple machine: no memory growth, no relative mode")
	flag.IntVar(&fl.MemoryLimit, "limit", 0, "maximum memory size in cells (0 for no limit)")
	flag.BoolVar(&fl.Trace, "trace", false, "log every executed instruction")
	flag.IntVar(&fl.Verbosity, "v", 0, "log verbosity")
	flag.StringVar(&cfgFile, "config", "", "load run settings from TOML file `filename`")
	flag.BoolVar(&debug, "debug", false, "enable debug diagnostics")
	flag.BoolVar(&dump, "dump", false, "dump registers and memory image upon exit")
	flag.BoolVar(&disasm, "disasm", false, "disassemble the program and exit")
	flag.Int64Var(&search, "search", -1, "search the noun and verb that produce `value` (negative disables)")
	flag.Parse()

	cfg := &config{Image: fl.Image}
	if cfgFile != "" {
		if err := loadConfig(cfgFile, cfg); err != nil {
			return nil, err
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "image":
			cfg.Image = fl.Image
		case "in":
			cfg.Input = input
		case "ascii":
			cfg.ASCII = fl.ASCII
		case "raw":
			cfg.Raw = fl.Raw
		case "patch":
			if cfg.Patch == nil {
				cfg.Patch = make(map[string]int64)
			}
			for k, v := range patches {
				cfg.Patch[k] = v
			}
		case "fixed":
			cfg.FixedMemory = fl.FixedMemory
		case "limit":
			cfg.MemoryLimit = fl.MemoryLimit
		case "trace":
			cfg.Trace = fl.Trace
		case "v":
			cfg.Verbosity = fl.Verbosity
		}
	})
	if flag.NArg() > 0 {
		cfg.Image = flag.Arg(0)
	}
	if cfg.Trace && cfg.Verbosity < 2 {
		cfg.Verbosity = 2
	}
	return cfg, nil
}

func setupIO(cfg *config, stdout *bufio.Writer) (opts []vm.Option, tearDown func()) {
	var in vm.InHandler
	switch {
	case cfg.Input != nil:
		p := vm.NewPort()
		for _, v := range cfg.Input {
			p.Send(vm.Cell(v))
		}
		p.Close()
		in = p.In
	case cfg.ASCII:
		if cfg.Raw {
			var err error
			if tearDown, err = setRawIO(); err != nil {
				log.Warningf("raw IO disabled: %v", err)
			}
		}
		in = aoc.ASCIIIn(bufio.NewReader(os.Stdin))
	default:
		in = vm.ReaderIn(bufio.NewReader(os.Stdin))
	}
	// make sure that any prompt is visible before blocking on input
	opts = append(opts, vm.Input(func(i *vm.Instance) (vm.Cell, error) {
		if err := stdout.Flush(); err != nil {
			return 0, errors.Wrap(err, "flush failed")
		}
		return in(i)
	}))
	if cfg.ASCII {
		opts = append(opts, vm.Output(aoc.ASCIIOut(stdout)))
	} else {
		opts = append(opts, vm.Output(vm.WriterOut(stdout)))
	}
	return opts, tearDown
}

func runSearch(img vm.Image, target vm.Cell, w io.Writer) error {
	noun, verb, err := aoc.FindNounVerb(img, target, 99)
	if err != nil {
		return err
	}
	log.Infof("noun=%d verb=%d", noun, verb)
	_, err = fmt.Fprintln(w, 100*noun+verb)
	return err
}

// run executes the program described by cfg, writing its output to stdout.
func run(cfg *config, stdout *bufio.Writer) (i *vm.Instance, err error) {
	img, err := loadImage(cfg.Image)
	if err != nil {
		return nil, err
	}
	log.Infof("loaded %s: %d cells", cfg.Image, len(img))

	if disasm {
		return nil, asm.DisassembleAll(img, 0, stdout)
	}
	if search >= 0 {
		return nil, runSearch(img, vm.Cell(search), stdout)
	}

	patches, err := cfg.patches()
	if err != nil {
		return nil, err
	}
	for a, v := range patches {
		if err = img.Set(a, v); err != nil {
			return nil, err
		}
	}

	opts, ioTearDownFn := setupIO(cfg, stdout)
	if ioTearDownFn != nil {
		defer ioTearDownFn()
	}
	if cfg.FixedMemory {
		opts = append(opts, vm.FixedMemory())
	}
	if cfg.MemoryLimit > 0 {
		opts = append(opts, vm.MemoryLimit(cfg.MemoryLimit))
	}
	if cfg.Trace {
		opts = append(opts, vm.Trace(func(i *vm.Instance, in vm.Instruction) {
			log.Debugf("% 8d\t%-32v\trb=%d", i.PC, in, i.RelativeBase())
		}))
	}

	i, err = vm.New(img, opts...)
	if err != nil {
		return nil, err
	}
	if err = i.Run(); err != nil {
		return i, err
	}
	log.Infof("halted after %d instructions", i.InstructionCount())
	if len(patches) > 0 {
		_, err = fmt.Fprintln(stdout, i.Image[0])
	}
	return i, err
}

// setupLog configures the log backend. With a nil w, messages go to stderr
// and are buffered until util.Exit.
func setupLog(verbosity int, w io.Writer) {
	if w == nil {
		commonlog.Configure(verbosity, nil)
		return
	}
	b := simple.NewBackend()
	b.Buffered = false
	b.Configure(verbosity, nil)
	b.Writer = w
	commonlog.SetBackend(b)
}

func main() {
	var i *vm.Instance

	stdout := bufio.NewWriter(os.Stdout)
	cfg, err := parseFlags()
	if err == nil {
		setupLog(cfg.Verbosity, nil)
		i, err = run(cfg, stdout)
	}
	if e := stdout.Flush(); err == nil {
		err = errors.Wrap(e, "flush failed")
	}
	if err == nil && dump && i != nil {
		err = aoc.DumpVM(i, os.Stdout)
	}
	atExit(i, err)
}

func init() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] [filename]\n", os.Args[0])
		flag.PrintDefaults()
		fmt.Fprintln(flag.CommandLine.Output(), strings.TrimSpace(`
See "go doc github.com/db47h/intcode/cmd/intcode" for details.`))
	}
}
