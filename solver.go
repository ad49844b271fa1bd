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

	"github.com/benbjohnson/immutable"
	"github.com/wdamron/rows/constraint"
	"github.com/wdamron/rows/internal/typeutil"
	"github.com/wdamron/rows/types"
)

var emptyBounds = immutable.NewSortedMap(nil)

// Solver unifies types while propagating constraints on type-variables.
//
// Each operation either succeeds completely or leaves the solver unchanged. A solver cannot be
// used concurrently.
type Solver struct {
	env   *TypeEnv
	state solverState
}

// Snapshot is the saved state of a solver.
type Snapshot struct {
	state solverState
}

type solverState struct {
	subst types.SubstMap
	// constraints of unresolved type-variables, by type-variable id:
	bounds *immutable.SortedMap
}

// Create a solver which reports diagnostics to env. If env is nil, a new type-environment will be created.
func NewSolver(env *TypeEnv) *Solver {
	if env == nil {
		env = NewTypeEnv(nil)
	}
	return &Solver{env: env, state: solverState{subst: types.EmptySubst, bounds: emptyBounds}}
}

// Env returns the solver's type-environment.
func (s *Solver) Env() *TypeEnv { return s.env }

// Subst returns the substitution accumulated by the solver.
func (s *Solver) Subst() types.SubstMap { return s.state.subst }

// Resolve applies the accumulated substitution to t.
func (s *Solver) Resolve(t types.Type) types.Type { return t.Subst(s.state.subst) }

// ConstraintOf returns the constraint of an unresolved type-variable. If tv is bound to another type-variable,
// the constraint of that type-variable is returned.
func (s *Solver) ConstraintOf(tv *types.Var) (constraint.Constraint, bool) {
	if rv, ok := s.Resolve(tv).(*types.Var); ok {
		if b, ok := s.state.lookup(rv); ok {
			return b.Constraint, true
		}
	}
	return nil, false
}

// Bounds returns the constraints of all unresolved type-variables, ordered by type-variable id.
func (s *Solver) Bounds() []Bound {
	bounds := make([]Bound, 0, s.state.bounds.Len())
	iter := s.state.bounds.Iterator()
	for !iter.Done() {
		_, b := iter.Next()
		bounds = append(bounds, b.(Bound))
	}
	return bounds
}

// Snapshot saves the state of the solver. Snapshots are cheap; the state is immutable.
func (s *Solver) Snapshot() Snapshot { return Snapshot{s.state} }

// Restore the state of the solver from a snapshot.
func (s *Solver) Restore(snap Snapshot) { s.state = snap.state }

// Reset clears the accumulated substitution and constraints.
func (s *Solver) Reset() { s.state = solverState{subst: types.EmptySubst, bounds: emptyBounds} }

// Constrain adds a constraint to a type-variable. An existing constraint on the type-variable is merged with c.
// If the type-variable is already bound to a concrete type, the type must satisfy c.
func (s *Solver) Constrain(loc types.Location, tv *types.Var, c constraint.Constraint) error {
	env := &checkEnv{env: s.env}
	st, err := s.state.constrain(loc, tv, c, env)
	if err != nil {
		return s.fail(err)
	}
	s.state = st
	return nil
}

// Unify a and b. Constrained type-variables bound during unification must satisfy their constraints.
func (s *Solver) Unify(loc types.Location, a, b types.Type) error {
	env := &checkEnv{env: s.env}
	st, err := s.state.unify(loc, a, b, env)
	if err != nil {
		return s.fail(err)
	}
	s.state = st
	return nil
}

// CanUnify checks if a and b can be unified, without changing the solver or reporting diagnostics.
func (s *Solver) CanUnify(a, b types.Type) bool {
	_, err := s.state.unify(types.NoLocation, a, b, &checkEnv{})
	return err == nil
}

// Instantiate a type-scheme. Generic type-variables are replaced with fresh type-variables, which are
// constrained with instances of the scheme's constraints.
func (s *Solver) Instantiate(loc types.Location, sc Scheme) (types.Type, error) {
	inst := typeutil.NewInstantiator(&s.env.vars)
	t := inst.Instantiate(sc.Type)
	env := &checkEnv{env: s.env}
	st := s.state
	for _, b := range sc.Bounds {
		tv, ok := inst.InstantiateVar(b.Var).(*types.Var)
		if !ok {
			continue
		}
		var err error
		if st, err = st.constrain(loc, tv, b.Constraint.Instance(inst), env); err != nil {
			return nil, s.fail(err)
		}
	}
	s.state = st
	return t, nil
}

func (s *Solver) fail(err error) error {
	var te *TypeError
	// unsupported merges are reported when the merge fails:
	if errors.As(err, &te) && te.Kind != ErrUnsupportedMerge {
		s.env.Report(te.Diagnostic())
	}
	return err
}

func (st solverState) lookup(tv *types.Var) (Bound, bool) {
	b, ok := st.bounds.Get(tv.Id())
	if !ok {
		return Bound{}, false
	}
	return b.(Bound), true
}

func (st solverState) unify(loc types.Location, a, b types.Type, env *checkEnv) (solverState, error) {
	a, b = a.Subst(st.subst), b.Subst(st.subst)
	s, ok := a.Unify(loc, b, env)
	if !ok {
		return st, newTypeError(ErrMismatch, loc, typeStringer{a}, typeStringer{b})
	}
	return st.bind(loc, s, env)
}

// Extend the substitution with s. Constraints of type-variables bound within s are merged into the
// constraints of other type-variables, or are checked against the types they are bound to.
func (st solverState) bind(loc types.Location, s types.SubstMap, env *checkEnv) (solverState, error) {
	if s.IsEmpty() {
		return st, nil
	}
	st.subst = st.subst.Compose(s)
	var triggered []Bound
	s.Range(func(tv *types.Var, _ types.Type) bool {
		if b, ok := st.lookup(tv); ok {
			triggered = append(triggered, b)
			st.bounds = st.bounds.Delete(tv.Id())
		}
		return true
	})
	st.bounds = substBounds(st.bounds, s)
	var err error
	for _, b := range triggered {
		t := b.Var.Subst(st.subst)
		c := b.Constraint.Subst(st.subst)
		if tv, ok := t.(*types.Var); ok {
			st, err = st.constrain(loc, tv, c, env)
		} else {
			st, err = st.satisfy(loc, t, c, env)
		}
		if err != nil {
			return st, err
		}
	}
	return st, nil
}

func (st solverState) satisfy(loc types.Location, t types.Type, c constraint.Constraint, env *checkEnv) (solverState, error) {
	s, ok := c.Satisfy(loc, t, env)
	if !ok {
		return st, newTypeError(ErrUnsatisfied, loc, c, typeStringer{t})
	}
	return st.bind(loc, s, env)
}

func (st solverState) constrain(loc types.Location, tv *types.Var, c constraint.Constraint, env *checkEnv) (solverState, error) {
	c = c.Subst(st.subst)
	t := tv.Subst(st.subst)
	rv, ok := t.(*types.Var)
	if !ok {
		return st.satisfy(loc, t, c, env)
	}
	if constraint.IsAny(c) {
		return st, nil
	}
	existing, ok := st.lookup(rv)
	if !ok {
		st.bounds = st.bounds.Set(rv.Id(), Bound{rv, c})
		return st, nil
	}
	env.loc, env.unsupported = loc, false
	merged, s, ok := existing.Constraint.Merge(c, env)
	if !ok {
		kind := ErrIncompatible
		if env.unsupported {
			kind = ErrUnsupportedMerge
		}
		return st, newTypeError(kind, loc, existing.Constraint, c)
	}
	st.bounds = st.bounds.Set(rv.Id(), Bound{rv, merged})
	return st.bind(loc, s, env)
}

// Apply a substitution to every constraint. Unaffected constraints are shared.
func substBounds(bounds *immutable.SortedMap, s types.SubstMap) *immutable.SortedMap {
	next := bounds
	iter := bounds.Iterator()
	for !iter.Done() {
		id, v := iter.Next()
		b := v.(Bound)
		if c := b.Constraint.Subst(s); c != b.Constraint {
			next = next.Set(id, Bound{b.Var, c})
		}
	}
	return next
}
