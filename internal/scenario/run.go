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
	"fmt"
	"sort"

	"github.com/wdamron/rows"
	"github.com/wdamron/rows/types"
	"gopkg.in/yaml.v3"
)

// Session executes steps against a solver. Type-variable names refer to the same type-variable
// across all steps of a session.
type Session struct {
	env    *rows.TypeEnv
	solver *rows.Solver
	dec    *decoder
}

// Create a session. The file is used for locations within diagnostics.
func NewSession(file string) *Session {
	env := rows.NewTypeEnv(nil)
	return &Session{env: env, solver: rows.NewSolver(env), dec: newDecoder(file, env)}
}

func (s *Session) Env() *rows.TypeEnv   { return s.env }
func (s *Session) Solver() *rows.Solver { return s.solver }

// Reset discards all variables, declarations, constraints, and diagnostics.
func (s *Session) Reset() {
	*s = *NewSession(s.dec.file)
}

// Exec runs a single step.
func (s *Session) Exec(step *Step) error {
	op, n, err := step.Op()
	if err != nil {
		return err
	}
	switch op {
	case "constrain":
		tv, c, err := s.dec.bound(n)
		if err != nil {
			return err
		}
		return s.solver.Constrain(s.dec.loc(n), tv, c)

	case "unify":
		_, m, err := s.dec.fields(n)
		if err != nil {
			return err
		}
		a, err := s.typeField(n, m, "left")
		if err != nil {
			return err
		}
		b, err := s.typeField(n, m, "right")
		if err != nil {
			return err
		}
		return s.solver.Unify(s.dec.loc(n), a, b)

	case "declare":
		return s.declare(n)

	case "instantiate":
		_, m, err := s.dec.fields(n)
		if err != nil {
			return err
		}
		nn, err := s.dec.field(n, m, "name")
		if err != nil {
			return err
		}
		name, err := s.dec.scalar(nn)
		if err != nil {
			return err
		}
		sc, ok := s.env.Lookup(name)
		if !ok {
			return s.dec.errorf(nn, "%q is not declared", name)
		}
		t, err := s.solver.Instantiate(s.dec.loc(n), sc)
		if err != nil {
			return err
		}
		as, err := s.typeField(n, m, "as")
		if err != nil {
			return err
		}
		return s.solver.Unify(s.dec.loc(n), t, as)
	}
	return fmt.Errorf("unknown operation %q", op)
}

func (s *Session) typeField(n *yaml.Node, m map[string]*yaml.Node, key string) (types.Type, error) {
	v, err := s.dec.field(n, m, key)
	if err != nil {
		return nil, err
	}
	return s.dec.typeOf(v)
}

// Declare a type-scheme: `{name: f, type: {arrow: ...}, bounds: {"'a": {record: {x: int}}}}`
func (s *Session) declare(n *yaml.Node) error {
	_, m, err := s.dec.fields(n)
	if err != nil {
		return err
	}
	nn, err := s.dec.field(n, m, "name")
	if err != nil {
		return err
	}
	name, err := s.dec.scalar(nn)
	if err != nil {
		return err
	}
	t, err := s.typeField(n, m, "type")
	if err != nil {
		return err
	}
	sc := rows.NewScheme(t)
	if bn, ok := m["bounds"]; ok {
		keys, bm, err := s.dec.fields(bn)
		if err != nil {
			return err
		}
		for _, k := range keys {
			if !isVarName(k) {
				return s.dec.errorf(bm[k], "%q is not a type-variable", k)
			}
			c, err := s.dec.constraintNode(bm[k])
			if err != nil {
				return err
			}
			sc.Bounds = append(sc.Bounds, rows.Bound{Var: s.dec.variable(k), Constraint: c})
		}
	}
	s.env.Declare(name, sc)
	return nil
}

// Resolve returns the text of the resolved type of a named type-variable.
func (s *Session) Resolve(name string) (string, bool) {
	tv, ok := s.dec.lookup(name)
	if !ok {
		return "", false
	}
	return types.TypeString(s.solver.Resolve(tv)), true
}

// Vars returns the names of all non-generic type-variables used within the session, in sorted order.
func (s *Session) Vars() []string {
	names := make([]string, 0, len(s.dec.vars))
	for name := range s.dec.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Result is the outcome of running a scenario.
type Result struct {
	Name string
	// Errors of steps which failed unexpectedly, and steps which were expected to fail but succeeded
	Errors []error
	// Resolved types of expected type-variables
	Resolved map[string]string
	// Expectations which were not met
	Failures []string
	// Diagnostics reported while running the scenario, including those of expected failures
	Diagnostics []types.Diagnostic
}

// Passed checks if all steps behaved as expected and all expectations were met.
func (r *Result) Passed() bool { return len(r.Errors) == 0 && len(r.Failures) == 0 }

// ErrUnexpectedSuccess is returned for steps which were expected to fail but succeeded.
var ErrUnexpectedSuccess = errors.New("step was expected to fail")

// Run executes all steps of a scenario within a new session and checks its expectations.
func Run(doc *Document) *Result {
	s := NewSession(doc.File)
	res := &Result{Name: doc.Name, Resolved: make(map[string]string, len(doc.Expect))}
	for i := range doc.Steps {
		step := &doc.Steps[i]
		err := s.Exec(step)
		switch {
		case err != nil && !step.Fail:
			res.Errors = append(res.Errors, fmt.Errorf("steps[%d]: %w", i, err))
		case err == nil && step.Fail:
			res.Errors = append(res.Errors, fmt.Errorf("steps[%d]: %w", i, ErrUnexpectedSuccess))
		}
	}
	names := make([]string, 0, len(doc.Expect))
	for name := range doc.Expect {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		want := doc.Expect[name]
		got, ok := s.Resolve(name)
		if !ok {
			res.Failures = append(res.Failures, fmt.Sprintf("%s: never used", name))
			continue
		}
		res.Resolved[name] = got
		if got != want {
			res.Failures = append(res.Failures, fmt.Sprintf("%s: expected %s, found %s", name, want, got))
		}
	}
	res.Diagnostics = s.env.Diagnostics()
	return res
}
