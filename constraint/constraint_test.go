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

package constraint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wdamron/rows/types"
)

var (
	tInt    = types.NewConst("int")
	tBool   = types.NewConst("bool")
	tString = types.NewConst("string")
)

type diagnostics []types.Diagnostic

func (d *diagnostics) Report(diag types.Diagnostic) { *d = append(*d, diag) }

type freshVars struct {
	next int
	seen map[int]*types.Var
}

func (f *freshVars) InstantiateVar(tv *types.Var) types.Type {
	if !tv.IsGeneric() {
		return tv
	}
	if v, ok := f.seen[tv.Id()]; ok {
		return v
	}
	v := types.NewVar(f.next, tv.Name())
	f.next++
	f.seen[tv.Id()] = v
	return v
}

func fields(m map[string]types.Type) types.TypeMap { return types.NewTypeMap(m) }

func sampleConstraints() []Constraint {
	return []Constraint{
		NewRecord(fields(map[string]types.Type{"a": tInt})),
		NewTuple(tInt, tBool),
		NewVariant(fields(map[string]types.Type{"ok": tInt})),
		NewEnum(types.NewEnumType(tInt, "A", "B")),
		NewSubsumption(types.NewRecord(fields(map[string]types.Type{"a": tInt}))),
	}
}

func TestAnyIsIdentity(t *testing.T) {
	for _, c := range sampleConstraints() {
		merged, s, ok := Unconstrained.Merge(c, nil)
		require.True(t, ok, c.String())
		assert.Same(t, c, merged)
		assert.True(t, s.IsEmpty())

		merged, s, ok = c.Merge(Unconstrained, nil)
		require.True(t, ok, c.String())
		assert.Same(t, c, merged)
		assert.True(t, s.IsEmpty())
	}
	merged, _, ok := Unconstrained.Merge(Unconstrained, nil)
	require.True(t, ok)
	assert.True(t, IsAny(merged))

	_, ok = Unconstrained.Satisfy(types.NoLocation, tInt, nil)
	assert.True(t, ok)
}

func TestMergeShapeMismatch(t *testing.T) {
	cs := sampleConstraints()
	// the subsumption constraint is excluded; it merges by payload shape:
	for i, a := range cs[:4] {
		for j, b := range cs[:4] {
			if i == j {
				continue
			}
			_, _, ok := a.Merge(b, nil)
			assert.False(t, ok, "%s and %s", a, b)
		}
	}
}

func TestRecordMerge(t *testing.T) {
	X := types.NewVar(0, "X")

	merged, s, ok := NewRecord(fields(map[string]types.Type{"a": tInt})).
		Merge(NewRecord(fields(map[string]types.Type{"b": tBool})), nil)
	require.True(t, ok)
	assert.True(t, s.IsEmpty())
	assert.Equal(t, "{a: int, b: bool, ...}", merged.String())

	merged, s, ok = NewRecord(fields(map[string]types.Type{"a": X})).
		Merge(NewRecord(fields(map[string]types.Type{"a": tInt})), nil)
	require.True(t, ok)
	assert.Same(t, tInt, X.Subst(s))
	assert.Equal(t, "{a: int, ...}", merged.String())

	self := NewRecord(fields(map[string]types.Type{"a": tInt}))
	merged, s, ok = self.Merge(NewRecord(fields(map[string]types.Type{"a": tInt})), nil)
	require.True(t, ok)
	assert.Same(t, self, merged)
	assert.True(t, s.IsEmpty())

	_, _, ok = NewRecord(fields(map[string]types.Type{"a": tInt})).
		Merge(NewRecord(fields(map[string]types.Type{"a": tBool})), nil)
	assert.False(t, ok)
}

func TestRecordSatisfyEndToEnd(t *testing.T) {
	c := NewRecord(fields(map[string]types.Type{"name": tString}))
	s, ok := c.Satisfy(types.NoLocation, types.NewRecord(fields(map[string]types.Type{"name": tString, "age": tInt})), nil)
	require.True(t, ok)
	assert.True(t, s.IsEmpty())
}

func TestMergeKeepsEarlierVariable(t *testing.T) {
	X, Y := types.NewVar(0, "X"), types.NewVar(1, "Y")
	self := NewRecord(fields(map[string]types.Type{"a": X}))
	other := NewRecord(fields(map[string]types.Type{"a": Y}))

	merged, s, ok := self.Merge(other, nil)
	require.True(t, ok)
	assert.Same(t, self, merged)
	assert.Equal(t, []*types.Var{Y}, s.Domain())
	assert.Same(t, X, Y.Subst(s))

	a, _ := merged.(*Record).Fields.Get("a")
	assert.Same(t, X, a)
}

func TestTupleMerge(t *testing.T) {
	X := types.NewVar(0, "X")
	merged, s, ok := NewTuple(X).Merge(NewTuple(tInt, tBool), nil)
	require.True(t, ok)
	assert.Equal(t, "(int, bool, ...)", merged.String())
	assert.Same(t, tInt, X.Subst(s))

	_, _, ok = NewTuple(tBool).Merge(NewTuple(tInt), nil)
	assert.False(t, ok)
}

func TestVariantAndEnumMerge(t *testing.T) {
	merged, _, ok := NewVariant(fields(map[string]types.Type{"ok": tInt})).
		Merge(NewVariant(fields(map[string]types.Type{"err": tString})), nil)
	require.True(t, ok)
	assert.Equal(t, "[err: string, ok: int, ...]", merged.String())

	self := NewEnum(types.NewEnumType(tInt, "A", "B"))
	merged, _, ok = self.Merge(NewEnum(types.NewEnumType(tInt, "A")), nil)
	require.True(t, ok)
	assert.Same(t, self, merged)

	merged, _, ok = self.Merge(NewEnum(types.NewEnumType(tInt, "C")), nil)
	require.True(t, ok)
	assert.Equal(t, "enum(int)[A, B, C]", merged.String())

	_, _, ok = self.Merge(NewEnum(types.NewEnumType(tString, "A")), nil)
	assert.False(t, ok)
}

func TestSatisfy(t *testing.T) {
	X := types.NewVar(0, "X")
	record := func(m map[string]types.Type) types.Type { return types.NewRecord(fields(m)) }
	variant := func(m map[string]types.Type) types.Type { return types.NewVariant(fields(m)) }

	cases := []struct {
		name string
		c    Constraint
		t    types.Type
		ok   bool
	}{
		{"record width", NewRecord(fields(map[string]types.Type{"name": tString})), record(map[string]types.Type{"name": tString, "age": tInt}), true},
		{"record missing field", NewRecord(fields(map[string]types.Type{"name": tString})), record(map[string]types.Type{"age": tInt}), false},
		{"record field type", NewRecord(fields(map[string]types.Type{"name": tString})), record(map[string]types.Type{"name": tInt}), false},
		{"record shape", NewRecord(fields(map[string]types.Type{"name": tString})), types.NewTuple(tString), false},
		{"tuple prefix", NewTuple(tInt), types.NewTuple(tInt, tBool), true},
		{"tuple exact", NewTuple(tInt, tBool), types.NewTuple(tInt, tBool), true},
		{"tuple too short", NewTuple(tInt, tBool), types.NewTuple(tInt), false},
		{"tuple member", NewTuple(tInt), types.NewTuple(tBool), false},
		{"variant options", NewVariant(fields(map[string]types.Type{"ok": tInt})), variant(map[string]types.Type{"ok": tInt, "err": tString}), true},
		{"variant missing option", NewVariant(fields(map[string]types.Type{"ok": tInt})), variant(map[string]types.Type{"err": tString}), false},
		{"variant missing case", NewVariant(fields(map[string]types.Type{"ok": tInt, "timeout": types.NewConst("unit")})), variant(map[string]types.Type{"ok": tInt}), false},
		{"enum tags", NewEnum(types.NewEnumType(tInt, "A")), types.NewEnumType(tInt, "A", "B"), true},
		{"enum missing tag", NewEnum(types.NewEnumType(tInt, "A")), types.NewEnumType(tInt, "B"), false},
		{"enum base", NewEnum(types.NewEnumType(tInt, "A")), tInt, true},
		{"enum other base", NewEnum(types.NewEnumType(tInt, "A")), tBool, false},
		{"subsumption", NewSubsumption(record(map[string]types.Type{"a": tInt})), record(map[string]types.Type{"a": tInt, "b": tBool}), true},
		{"subsumption narrower", NewSubsumption(record(map[string]types.Type{"a": tInt, "b": tBool})), record(map[string]types.Type{"a": tInt}), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, ok := c.c.Satisfy(types.NoLocation, c.t, nil)
			assert.Equal(t, c.ok, ok)
		})
	}

	s, ok := NewEnum(types.NewEnumType(tInt, "A")).Satisfy(types.NoLocation, X, nil)
	require.True(t, ok)
	assert.Same(t, tInt, X.Subst(s))

	s, ok = NewRecord(fields(map[string]types.Type{"a": X})).
		Satisfy(types.NoLocation, record(map[string]types.Type{"a": tBool}), nil)
	require.True(t, ok)
	assert.Same(t, tBool, X.Subst(s))
}

func TestSubstAndInstanceShareUnchanged(t *testing.T) {
	X := types.NewVar(0, "X")
	unrelated := types.SingletonSubst(types.NewVar(9, "Z"), tInt)
	inst := &freshVars{next: 100, seen: map[int]*types.Var{}}
	for _, c := range sampleConstraints() {
		assert.Same(t, c, c.Subst(unrelated), c.String())
		assert.Same(t, c, c.Subst(types.EmptySubst), c.String())
		assert.Same(t, c, c.Instance(inst), c.String())
	}

	c := NewRecord(fields(map[string]types.Type{"a": X}))
	next := c.Subst(types.SingletonSubst(X, tInt))
	assert.NotSame(t, c, next)
	assert.Equal(t, "{a: int, ...}", next.String())
	assert.Equal(t, "{a: X, ...}", c.String())

	G := types.NewGenericVar(1, "g")
	g := NewTuple(G, G)
	instance := g.Instance(inst).(*Tuple)
	first, second := instance.Members.Get(0), instance.Members.Get(1)
	assert.Same(t, first, second)
	assert.False(t, first.(*types.Var).IsGeneric())
	assert.Equal(t, 1, g.Vars().Len())
}

func TestVars(t *testing.T) {
	X, Y := types.NewVar(0, "X"), types.NewVar(1, "Y")
	cases := []struct {
		c    Constraint
		want []*types.Var
	}{
		{Unconstrained, []*types.Var{}},
		{NewRecord(fields(map[string]types.Type{"a": X, "b": types.NewTuple(Y)})), []*types.Var{X, Y}},
		{NewTuple(tInt, Y), []*types.Var{Y}},
		{NewVariant(fields(map[string]types.Type{"ok": X})), []*types.Var{X}},
		{NewEnum(types.NewEnumType(tInt, "A")), []*types.Var{}},
		{NewSubsumption(&types.Arrow{Args: []types.Type{Y}, Return: X}), []*types.Var{X, Y}},
		{NewSubsumption(X), []*types.Var{X}},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.c.Vars().Slice(), c.c.String())
	}
}

func TestSubsumptionMerge(t *testing.T) {
	record := func(m map[string]types.Type) types.Type { return types.NewRecord(fields(m)) }

	merged, _, ok := NewSubsumption(record(map[string]types.Type{"a": tInt})).
		Merge(NewSubsumption(record(map[string]types.Type{"b": tBool})), nil)
	require.True(t, ok)
	assert.Equal(t, ":> {a: int, b: bool}", merged.String())

	self := NewSubsumption(types.NewTypeList(tInt, tBool))
	merged, _, ok = self.Merge(NewSubsumption(types.NewTypeList(tInt)), nil)
	require.True(t, ok)
	assert.Same(t, self, merged)

	merged, _, ok = NewSubsumption(types.NewEnumType(tInt, "A")).Merge(NewEnum(types.NewEnumType(tInt, "B")), nil)
	require.True(t, ok)
	assert.Equal(t, ":> enum(int)[A, B]", merged.String())
}

func TestSubsumptionUnsupportedMerge(t *testing.T) {
	var diags diagnostics
	_, _, ok := NewSubsumption(tInt).Merge(NewSubsumption(tBool), &diags)
	require.False(t, ok)
	require.Len(t, diags, 1)
	assert.Equal(t, types.UnsupportedMerge, diags[0].Kind)
	assert.Equal(t, "merging constraints is not implemented for Const and Const", diags[0].Message)
	assert.Equal(t, "bool", diags[0].Left)
	assert.Equal(t, "int", diags[0].Right)

	// tuples are not merged structurally:
	diags = nil
	_, _, ok = NewSubsumption(types.NewTuple(tInt)).Merge(NewSubsumption(types.NewTuple(tInt, tBool)), &diags)
	require.False(t, ok)
	require.Len(t, diags, 1)
	assert.Equal(t, "(int, bool)", diags[0].Left)

	// a record constraint carries a type-map, which does not match a record-type:
	diags = nil
	_, _, ok = NewSubsumption(types.NewRecord(fields(map[string]types.Type{"a": tInt}))).
		Merge(NewRecord(fields(map[string]types.Type{"a": tInt})), &diags)
	require.False(t, ok)
	require.Len(t, diags, 1)
	assert.Equal(t, "merging constraints is not implemented for TypeMap and Record", diags[0].Message)

	// without an environment the merge still fails:
	_, _, ok = NewSubsumption(tInt).Merge(NewSubsumption(tBool), nil)
	assert.False(t, ok)
}

func TestString(t *testing.T) {
	cases := []struct {
		c    Constraint
		want string
	}{
		{Unconstrained, "_"},
		{NewRecord(fields(map[string]types.Type{"b": tBool, "a": tInt})), "{a: int, b: bool, ...}"},
		{NewTuple(tInt), "(int, ...)"},
		{NewVariant(fields(map[string]types.Type{"ok": tInt})), "[ok: int, ...]"},
		{NewEnum(types.NewEnumType(tInt, "A")), "enum(int)[A]"},
		{NewSubsumption(tInt), ":> int"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.c.String())
	}
}
