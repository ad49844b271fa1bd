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

package types

import (
	"github.com/benbjohnson/immutable"
)

var emptyVars = immutable.NewSortedMap(nil)

// EmptyVarSet contains no type-variables.
var EmptyVarSet = VarSet{}

// VarSet is an immutable set of type-variables, ordered by id.
type VarSet struct {
	m *immutable.SortedMap
}

// Create a set containing the given type-variables.
func NewVarSet(vars ...*Var) VarSet {
	b := newVarSetBuilder()
	for _, tv := range vars {
		b.Add(tv)
	}
	return b.Build()
}

func (vs VarSet) Len() int {
	if vs.m == nil {
		return 0
	}
	return vs.m.Len()
}

func (vs VarSet) Has(tv *Var) bool {
	if vs.m == nil {
		return false
	}
	_, ok := vs.m.Get(tv.Id())
	return ok
}

// Add returns a set containing tv and every type-variable in vs.
func (vs VarSet) Add(tv *Var) VarSet {
	if vs.Has(tv) {
		return vs
	}
	imm := vs.m
	if imm == nil {
		imm = emptyVars
	}
	return VarSet{imm.Set(tv.Id(), tv)}
}

// Iterate over the type-variables in the set, ordered by id.
// If f returns false, iteration will be stopped.
func (vs VarSet) Range(f func(*Var) bool) {
	if vs.m == nil {
		return
	}
	iter := vs.m.Iterator()
	for !iter.Done() {
		_, v := iter.Next()
		if !f(v.(*Var)) {
			return
		}
	}
}

// Copy the type-variables in the set into a slice, ordered by id.
func (vs VarSet) Slice() []*Var {
	vars := make([]*Var, 0, vs.Len())
	vs.Range(func(tv *Var) bool {
		vars = append(vars, tv)
		return true
	})
	return vars
}

type varSetBuilder struct {
	b *immutable.SortedMapBuilder
}

func newVarSetBuilder() varSetBuilder {
	return varSetBuilder{immutable.NewSortedMapBuilder(emptyVars)}
}

func (b varSetBuilder) Add(tv *Var) { b.b.Set(tv.Id(), tv) }

func (b varSetBuilder) Build() VarSet {
	if b.b.Len() == 0 {
		return EmptyVarSet
	}
	return VarSet{b.b.Map()}
}
