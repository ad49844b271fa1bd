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

package rows

import (
	"errors"

	"github.com/wdamron/rows/internal/typeutil"
	"github.com/wdamron/rows/types"
)

var _ types.TypeEnv = (*TypeEnv)(nil)

// TypeEnv is a type-enviroment containing declared type-schemes and the diagnostics reported
// while checking constraints.
//
// A type-environment cannot be used concurrently; to check independent modules in parallel,
// create a new type-environment for each goroutine which inherits from a shared environment.
// Every environment descending from the same root allocates type-variable ids from one source,
// so sibling environments never allocate the same id.
type TypeEnv struct {
	// Declared type-schemes in the parent of the current type-environment
	Parent *TypeEnv
	// Mappings from identifiers to declared type-schemes in the current type-environment
	Types map[string]Scheme

	vars        typeutil.VarTracker
	diagnostics []types.Diagnostic
}

// Create a type-environment. The new environment will inherit declarations from the parent, if the parent is not nil.
func NewTypeEnv(parent *TypeEnv) *TypeEnv {
	env := &TypeEnv{
		Parent: parent,
		Types:  make(map[string]Scheme),
	}
	if parent != nil {
		env.vars.Ids = parent.vars.Ids
	}
	if env.vars.Ids == nil {
		env.vars.Ids = new(typeutil.IdSource)
	}
	return env
}

// Create an unbound type-variable with a unique id.
func (e *TypeEnv) NewVar(name string) *types.Var { return e.vars.New(name) }

// Create a generic type-variable with a unique id.
func (e *TypeEnv) NewGenericVar(name string) *types.Var { return e.vars.NewGeneric(name) }

// Declare a type-scheme for an identifier within the type environment.
func (e *TypeEnv) Declare(name string, sc Scheme) { e.Types[name] = sc }

// Remove the declared type-scheme for an identifier within the type environment. Parent environment(s) will not be affected,
// and the identifier's type-scheme will still be visible if declared in a parent environment.
func (e *TypeEnv) Remove(name string) { delete(e.Types, name) }

// Lookup the type-scheme for an identifier in the environment or its parent environment(s).
func (e *TypeEnv) Lookup(name string) (Scheme, bool) {
	if sc, ok := e.Types[name]; ok {
		return sc, true
	}
	if e.Parent == nil {
		return Scheme{}, false
	}
	return e.Parent.Lookup(name)
}

// Report records a diagnostic.
func (e *TypeEnv) Report(d types.Diagnostic) { e.diagnostics = append(e.diagnostics, d) }

// Diagnostics returns the diagnostics reported within the current type-environment, in order of reporting.
func (e *TypeEnv) Diagnostics() []types.Diagnostic { return e.diagnostics }

// Err returns an error joining every reported diagnostic, or nil if no diagnostics were reported.
func (e *TypeEnv) Err() error {
	if len(e.diagnostics) == 0 {
		return nil
	}
	errs := make([]error, len(e.diagnostics))
	for i, d := range e.diagnostics {
		errs[i] = errors.New(d.String())
	}
	return errors.Join(errs...)
}

// Reset clears reported diagnostics. Declarations are not affected.
func (e *TypeEnv) Reset() { e.diagnostics = nil }

// Check if a diagnostic of the given kind has been reported.
func (e *TypeEnv) HasDiagnostic(kind types.DiagnosticKind) bool {
	for _, d := range e.diagnostics {
		if d.Kind == kind {
			return true
		}
	}
	return false
}

// checkEnv forwards diagnostics to a type-environment while tracking unsupported merges.
// Diagnostics without a location receive the location of the current operation.
type checkEnv struct {
	env         types.TypeEnv
	loc         types.Location
	unsupported bool
}

func (e *checkEnv) Report(d types.Diagnostic) {
	if !d.Loc.IsKnown() && d.Loc.File == "" {
		d.Loc = e.loc
	}
	if d.Kind == types.UnsupportedMerge {
		e.unsupported = true
	}
	if e.env != nil {
		e.env.Report(d)
	}
}
