// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/wdamron/rows/internal/scenario"
)

const shellHelp = `steps are entered as single-line YAML:
  constrain: {var: T, record: {name: string}}
  unify: {left: T, right: {record: {name: string, age: int}}}
generic variables must be quoted inside flow collections:
  unify: {left: T, right: {tuple: [int, "'a"]}}
commands:
  :show    print resolved variables and constraints
  :reset   discard all variables and constraints
  :quit    exit`

func runShell(out *reporter) error {
	rl, err := readline.New("> ")
	if err != nil {
		return fmt.Errorf("readline: %w", err)
	}
	defer rl.Close()

	s := scenario.NewSession("<shell>")
	fmt.Fprintln(rl.Stdout(), shellHelp)
	for {
		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		line = strings.TrimSpace(line)
		switch line {
		case "":
			continue
		case ":quit":
			return nil
		case ":reset":
			s.Reset()
			continue
		case ":show":
			show(rl, s)
			continue
		case ":help":
			fmt.Fprintln(rl.Stdout(), shellHelp)
			continue
		}
		step, err := scenario.ParseStep([]byte(line))
		if err != nil {
			out.errorf("%v", err)
			continue
		}
		before := len(s.Env().Diagnostics())
		if err := s.Exec(&step); err != nil {
			out.errorf("%v", err)
		}
		for _, d := range s.Env().Diagnostics()[before:] {
			out.diagnostic(d)
		}
	}
}

func show(rl *readline.Instance, s *scenario.Session) {
	w := rl.Stdout()
	for _, name := range s.Vars() {
		t, _ := s.Resolve(name)
		fmt.Fprintf(w, "%s = %s\n", name, t)
	}
	for _, b := range s.Solver().Bounds() {
		fmt.Fprintf(w, "%s: %s\n", b.Var.Name(), b.Constraint)
	}
}
