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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	. "github.com/wdamron/rows/construct"
	"github.com/wdamron/rows/types"
)

type m = map[string]types.Type

func TestSolverRecordConstraint(t *testing.T) {
	env := NewTypeEnv(nil)
	s := NewSolver(env)
	T := env.NewVar("T")

	require.NoError(t, s.Constrain(types.NoLocation, T, CRecord(m{"name": TConst("string")})))
	c, ok := s.ConstraintOf(T)
	require.True(t, ok)
	assert.Equal(t, "{name: string, ...}", c.String())

	require.NoError(t, s.Unify(types.NoLocation, T, TRecord(m{"name": TConst("string"), "age": TConst("int")})))
	assert.Equal(t, "{age: int, name: string}", types.TypeString(s.Resolve(T)))
	assert.Equal(t, 1, s.Subst().Len())

	_, ok = s.ConstraintOf(T)
	assert.False(t, ok)
	assert.Empty(t, s.Bounds())
	assert.NoError(t, env.Err())
}

func TestSolverUnsatisfiedConstraint(t *testing.T) {
	env := NewTypeEnv(nil)
	s := NewSolver(env)
	T := env.NewVar("T")
	loc := types.Location{File: "test", Line: 2, Column: 3}

	require.NoError(t, s.Constrain(loc, T, CRecord(m{"name": TConst("string")})))
	err := s.Unify(loc, T, TRecord(m{"age": TConst("int")}))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsatisfied))

	var te *TypeError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, loc, te.Loc)
	assert.Equal(t, "{name: string, ...}", te.Left)
	assert.Equal(t, "{age: int}", te.Right)

	// failed operations leave the solver unchanged:
	assert.Same(t, T, s.Resolve(T))
	_, ok := s.ConstraintOf(T)
	assert.True(t, ok)

	require.Len(t, env.Diagnostics(), 1)
	assert.Equal(t, types.ShapeMismatch, env.Diagnostics()[0].Kind)
	assert.Error(t, env.Err())
}

func TestSolverMismatch(t *testing.T) {
	env := NewTypeEnv(nil)
	s := NewSolver(env)
	err := s.Unify(types.NoLocation, TConst("int"), TConst("bool"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMismatch))
	assert.Equal(t, "<unknown>: type mismatch: int and bool", err.Error())
	assert.True(t, env.HasDiagnostic(types.TypeMismatch))

	env.Reset()
	assert.NoError(t, env.Err())
}

func TestSolverPropagatesConstraints(t *testing.T) {
	env := NewTypeEnv(nil)
	s := NewSolver(env)
	T, U := env.NewVar("T"), env.NewVar("U")

	require.NoError(t, s.Constrain(types.NoLocation, T, CRecord(m{"a": TConst("int")})))
	require.NoError(t, s.Constrain(types.NoLocation, U, CRecord(m{"b": TConst("bool")})))
	require.NoError(t, s.Unify(types.NoLocation, T, U))

	c, ok := s.ConstraintOf(T)
	require.True(t, ok)
	assert.Equal(t, "{a: int, b: bool, ...}", c.String())
	require.Len(t, s.Bounds(), 1)
	assert.Same(t, U, s.Bounds()[0].Var)

	snap := s.Snapshot()
	assert.Error(t, s.Unify(types.NoLocation, U, TRecord(m{"a": TConst("int")})))
	require.NoError(t, s.Unify(types.NoLocation, U, TRecord(m{"a": TConst("int"), "b": TConst("bool"), "c": TConst("string")})))
	assert.Equal(t, "{a: int, b: bool, c: string}", types.TypeString(s.Resolve(T)))

	s.Restore(snap)
	assert.Same(t, U, s.Resolve(T))
}

func TestSolverMergeBindsVariables(t *testing.T) {
	env := NewTypeEnv(nil)
	s := NewSolver(env)
	T, X := env.NewVar("T"), env.NewVar("X")

	require.NoError(t, s.Constrain(types.NoLocation, T, CRecord(m{"a": X})))
	require.NoError(t, s.Constrain(types.NoLocation, T, CRecord(m{"a": TConst("int")})))
	assert.Equal(t, "int", types.TypeString(s.Resolve(X)))

	err := s.Constrain(types.NoLocation, T, CRecord(m{"a": TConst("bool")}))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIncompatible))

	err = s.Constrain(types.NoLocation, T, CTuple(TConst("int")))
	assert.True(t, errors.Is(err, ErrIncompatible))
}

func TestSolverMergeDiagnosticKeepsEarlierVariable(t *testing.T) {
	env := NewTypeEnv(nil)
	s := NewSolver(env)
	T, X, Y := env.NewVar("T"), env.NewVar("X"), env.NewVar("Y")

	require.NoError(t, s.Constrain(types.NoLocation, T, CRecord(m{"a": X})))
	require.NoError(t, s.Constrain(types.NoLocation, T, CRecord(m{"a": Y})))
	assert.Same(t, X, s.Resolve(Y))
	require.NoError(t, s.Constrain(types.NoLocation, T, CRecord(m{"b": TConst("int")})))

	err := s.Constrain(types.NoLocation, T, CTuple(TConst("int")))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIncompatible))

	require.Len(t, env.Diagnostics(), 1)
	d := env.Diagnostics()[0]
	assert.Equal(t, types.ShapeMismatch, d.Kind)
	assert.Equal(t, "{a: X, b: int, ...}", d.Left)
	assert.NotContains(t, d.Left, "Y")
	assert.Equal(t, "(int, ...)", d.Right)
}

func TestSolverTupleConstraints(t *testing.T) {
	env := NewTypeEnv(nil)
	s := NewSolver(env)
	T, U, X := env.NewVar("T"), env.NewVar("U"), env.NewVar("X")

	require.NoError(t, s.Constrain(types.NoLocation, T, CTuple(X)))
	require.NoError(t, s.Constrain(types.NoLocation, U, CTuple(TConst("int"), TConst("bool"))))
	require.NoError(t, s.Unify(types.NoLocation, T, U))
	assert.Equal(t, "int", types.TypeString(s.Resolve(X)))

	require.NoError(t, s.Unify(types.NoLocation, U, TTuple(TConst("int"), TConst("bool"), TConst("string"))))
	V := env.NewVar("V")
	require.NoError(t, s.Constrain(types.NoLocation, V, CTuple(TConst("int"), TConst("bool"))))
	assert.Error(t, s.Unify(types.NoLocation, V, TTuple(TConst("int"))))
}

func TestSolverConstrainBoundVariable(t *testing.T) {
	env := NewTypeEnv(nil)
	s := NewSolver(env)
	T := env.NewVar("T")

	require.NoError(t, s.Unify(types.NoLocation, T, TRecord(m{"a": TConst("int")})))
	require.NoError(t, s.Constrain(types.NoLocation, T, CRecord(m{"a": TConst("int")})))
	require.NoError(t, s.Constrain(types.NoLocation, T, CAny()))

	err := s.Constrain(types.NoLocation, T, CTuple(TConst("int")))
	assert.True(t, errors.Is(err, ErrUnsatisfied))

	E := env.NewVar("E")
	require.NoError(t, s.Constrain(types.NoLocation, E, CEnum(TConst("int"), "A")))
	require.NoError(t, s.Unify(types.NoLocation, E, TConst("int")))
}

func TestSolverUnsupportedMerge(t *testing.T) {
	env := NewTypeEnv(nil)
	s := NewSolver(env)
	T := env.NewVar("T")

	require.NoError(t, s.Constrain(types.NoLocation, T, CSubsume(TConst("int"))))
	err := s.Constrain(types.NoLocation, T, CSubsume(TConst("bool")))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedMerge))

	// the diagnostic is reported once, by the constraint:
	require.Len(t, env.Diagnostics(), 1)
	d := env.Diagnostics()[0]
	assert.Equal(t, types.UnsupportedMerge, d.Kind)
	assert.Equal(t, "bool", d.Left)
	assert.Equal(t, "int", d.Right)

	require.NoError(t, s.Constrain(types.NoLocation, T, CAny()))
	require.NoError(t, s.Unify(types.NoLocation, T, TConst("int")))
}

func TestSolverInstantiate(t *testing.T) {
	env := NewTypeEnv(nil)
	s := NewSolver(env)
	A := env.NewGenericVar("a")
	sc := NewScheme(TArrow1(A, TConst("int")), Bound{Var: A, Constraint: CRecord(m{"name": TConst("string")})})
	assert.Equal(t, "('a: {name: string, ...}) => 'a -> int", sc.String())

	t1, err := s.Instantiate(types.NoLocation, sc)
	require.NoError(t, err)
	t2, err := s.Instantiate(types.NoLocation, sc)
	require.NoError(t, err)

	arg1 := t1.(*types.Arrow).Args[0].(*types.Var)
	arg2 := t2.(*types.Arrow).Args[0].(*types.Var)
	assert.False(t, arg1.IsGeneric())
	assert.NotEqual(t, arg1.Id(), arg2.Id())
	c, ok := s.ConstraintOf(arg1)
	require.True(t, ok)
	assert.Equal(t, "{name: string, ...}", c.String())

	require.NoError(t, s.Unify(types.NoLocation, arg1, TRecord(m{"name": TConst("string"), "id": TConst("int")})))
	err = s.Unify(types.NoLocation, arg2, TRecord(m{"id": TConst("int")}))
	assert.True(t, errors.Is(err, ErrUnsatisfied))

	// the scheme itself is not constrained:
	_, ok = s.ConstraintOf(A)
	assert.False(t, ok)
}

func TestSolverCanUnify(t *testing.T) {
	env := NewTypeEnv(nil)
	s := NewSolver(env)
	T := env.NewVar("T")
	require.NoError(t, s.Constrain(types.NoLocation, T, CVariant(m{"ok": TConst("int")})))

	assert.True(t, s.CanUnify(T, TVariant(m{"ok": TConst("int"), "err": TConst("string")})))
	assert.False(t, s.CanUnify(T, TVariant(m{"err": TConst("string")})))
	assert.False(t, s.CanUnify(TConst("int"), TConst("bool")))
	assert.Same(t, T, s.Resolve(T))
	assert.Empty(t, env.Diagnostics())

	s.Reset()
	_, ok := s.ConstraintOf(T)
	assert.False(t, ok)
}
