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

package scenario

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wdamron/rows"
	"github.com/wdamron/rows/types"
)

func TestRunTestdata(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("testdata", "*.yaml"))
	require.NoError(t, err)
	require.NotEmpty(t, paths)
	for _, path := range paths {
		t.Run(filepath.Base(path), func(t *testing.T) {
			doc, err := Load(path)
			require.NoError(t, err)
			res := Run(doc)
			assert.Empty(t, res.Errors)
			assert.Empty(t, res.Failures)
			assert.True(t, res.Passed())
		})
	}
}

func TestRunReportsDiagnostics(t *testing.T) {
	doc, err := Load(filepath.Join("testdata", "schemes.yaml"))
	require.NoError(t, err)
	res := Run(doc)
	require.True(t, res.Passed())

	var unsupported []types.Diagnostic
	for _, d := range res.Diagnostics {
		if d.Kind == types.UnsupportedMerge {
			unsupported = append(unsupported, d)
		}
	}
	require.Len(t, unsupported, 1)
	assert.Equal(t, "testdata/schemes.yaml", unsupported[0].Loc.File)
	assert.Equal(t, 15, unsupported[0].Loc.Line)
}

func TestRunFailures(t *testing.T) {
	doc, err := Parse([]byte(`
name: failures
steps:
  - unify: {left: T, right: int}
  - unify: {left: T, right: bool}
  - unify: {left: U, right: int}
    fail: true
expect:
  T: bool
  V: int
`), "failures.yaml")
	require.NoError(t, err)
	res := Run(doc)
	assert.False(t, res.Passed())

	require.Len(t, res.Errors, 2)
	assert.True(t, errors.Is(res.Errors[0], rows.ErrMismatch))
	assert.Contains(t, res.Errors[0].Error(), "steps[1]")
	assert.True(t, errors.Is(res.Errors[1], ErrUnexpectedSuccess))

	assert.Equal(t, []string{"T: expected bool, found int", "V: never used"}, res.Failures)
	assert.Equal(t, map[string]string{"T": "int"}, res.Resolved)
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		msg  string
	}{
		{"no steps", "name: empty\n", "no steps defined"},
		{"no operation", "steps:\n  - fail: true\n", "step has no operation"},
		{"two operations", "steps:\n  - unify: {left: T, right: int}\n    constrain: {var: T, any: _}\n", "step has both"},
		{"invalid yaml", "steps: [", "parsing bad.yaml"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Parse([]byte(c.src), "bad.yaml")
			require.Error(t, err)
			assert.Contains(t, err.Error(), c.msg)
		})
	}

	_, err := Load(filepath.Join("testdata", "missing.yaml"))
	assert.Error(t, err)
}

func TestDecodeErrors(t *testing.T) {
	cases := []struct {
		step string
		msg  string
	}{
		{"unify: {left: T, right: {record: [int]}}", "expected a mapping"},
		{"unify: {left: T, right: {set: [int]}}", `unknown type constructor "set"`},
		{"unify: {left: T, right: {record: {a: int}, tuple: [int]}}", "expected a single type constructor"},
		{"unify: {left: T}", `missing "right"`},
		{"constrain: {var: T, shape: {a: int}}", `unknown constraint "shape"`},
		{"constrain: {var: t, any: _}", "is not a type-variable"},
		{"constrain: {var: T}", "missing constraint"},
		{"constrain: {var: T, any: _, tuple: [int]}", "expected a single constraint"},
		{"instantiate: {name: f, as: int}", `"f" is not declared`},
		{"unify: {left: T, right: {app: {con: list, kind: unary, params: [int, int]}}}", "Kind mismatch"},
		{"unify: {left: T, right: {app: {con: list, kind: huge, params: [int]}}}", `unknown kind "huge"`},
		{"unify: {left: T, right: {enum: {base: int}}}", `missing "tags"`},
	}
	for _, c := range cases {
		t.Run(c.step, func(t *testing.T) {
			step, err := ParseStep([]byte(c.step))
			require.NoError(t, err)
			err = NewSession("shell").Exec(&step)
			require.Error(t, err)
			assert.Contains(t, err.Error(), c.msg)
		})
	}
}

func TestSession(t *testing.T) {
	s := NewSession("<shell>")
	for _, line := range []string{
		"constrain: {var: T, tuple: [int]}",
		`unify: {left: T, right: {tuple: [int, "'b"]}}`,
		"unify: {left: U, right: {variant: {ok: int, err: string}}}",
		"unify: {left: M, right: {map: {a: int}}}",
		"unify: {left: F, right: {arrow: {args: [int, bool], return: {list: [int]}}}}",
		"unify: {left: N, right: {enum: {base: int, tags: {A: int, B: string}}}}",
	} {
		step, err := ParseStep([]byte(line))
		require.NoError(t, err, line)
		require.NoError(t, s.Exec(&step), line)
	}
	assert.Equal(t, []string{"F", "M", "N", "T", "U"}, s.Vars())

	want := map[string]string{
		"T":  "(int, 'a)",
		"U":  "[err: string, ok: int]",
		"M":  "<a: int>",
		"F":  "(int, bool) -> <int>",
		"N":  "enum(int)[A, B: string]",
		"'b": "'a",
	}
	for name, text := range want {
		got, ok := s.Resolve(name)
		require.True(t, ok, name)
		assert.Equal(t, text, got, name)
	}

	s.Reset()
	assert.Empty(t, s.Vars())
	_, ok := s.Resolve("T")
	assert.False(t, ok)
	assert.Empty(t, s.Env().Diagnostics())
	assert.Empty(t, s.Solver().Bounds())

	_, err := ParseStep([]byte(""))
	assert.Error(t, err)
}
