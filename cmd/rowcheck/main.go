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

// Command rowcheck runs scenario files of constraint and unification steps, or an interactive shell.
//
//	rowcheck [-color auto|always|never] [-stamp format] file.yaml...
//	rowcheck -i
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/lestrrat-go/strftime"
	"github.com/mattn/go-isatty"
	"github.com/wdamron/rows/internal/scenario"
	"github.com/wdamron/rows/types"
)

func main() {
	interactive := flag.Bool("i", false, "run an interactive shell")
	color := flag.String("color", "auto", "color output: auto, always, or never")
	stamp := flag.String("stamp", "%Y-%m-%d %H:%M:%S", "strftime format of the report timestamp")
	flag.Parse()

	out, err := newReporter(os.Stderr, *color, *stamp)
	if err != nil {
		fatal("rowcheck: %v\n", err)
	}
	if *interactive {
		if err := runShell(out); err != nil {
			fatal("rowcheck: %v\n", err)
		}
		return
	}
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}
	failed := 0
	for _, path := range flag.Args() {
		doc, err := scenario.Load(path)
		if err != nil {
			out.errorf("%v", err)
			failed++
			continue
		}
		if !out.result(scenario.Run(doc)) {
			failed++
		}
	}
	out.summary(flag.NArg(), failed)
	if failed > 0 {
		os.Exit(1)
	}
}

func fatal(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
	os.Exit(1)
}

const (
	ansiReset = "\x1b[0m"
	ansiRed   = "\x1b[31m"
	ansiGreen = "\x1b[32m"
	ansiDim   = "\x1b[2m"
)

type reporter struct {
	w     io.Writer
	color bool
	stamp *strftime.Strftime
}

func newReporter(f *os.File, color, stamp string) (*reporter, error) {
	r := &reporter{w: f}
	switch color {
	case "auto":
		r.color = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	case "always":
		r.color = true
	case "never":
	default:
		return nil, fmt.Errorf("invalid -color %q", color)
	}
	s, err := strftime.New(stamp)
	if err != nil {
		return nil, fmt.Errorf("invalid -stamp %q: %w", stamp, err)
	}
	r.stamp = s
	return r, nil
}

func (r *reporter) paint(code, s string) string {
	if !r.color {
		return s
	}
	return code + s + ansiReset
}

func (r *reporter) errorf(format string, args ...any) {
	fmt.Fprintln(r.w, r.paint(ansiRed, "error: ")+fmt.Sprintf(format, args...))
}

func (r *reporter) diagnostic(d types.Diagnostic) {
	fmt.Fprintln(r.w, r.paint(ansiDim, "  "+d.String()))
}

func (r *reporter) result(res *scenario.Result) bool {
	if res.Passed() {
		fmt.Fprintln(r.w, r.paint(ansiGreen, "PASS")+" "+res.Name)
		return true
	}
	fmt.Fprintln(r.w, r.paint(ansiRed, "FAIL")+" "+res.Name)
	for _, err := range res.Errors {
		fmt.Fprintf(r.w, "  %v\n", err)
	}
	for _, f := range res.Failures {
		fmt.Fprintf(r.w, "  %s\n", f)
	}
	for _, d := range res.Diagnostics {
		r.diagnostic(d)
	}
	return false
}

func (r *reporter) summary(total, failed int) {
	fmt.Fprintf(r.w, "%s: %d scenarios, %d failed\n", r.stamp.FormatString(time.Now()), total, failed)
}
