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

var emptyList = immutable.NewList()

var EmptyTypeList = TypeList{emptyList}

// TypeList is an immutable list of types. A TypeList is also the type-level sequence of kind *List,
// and is the payload of tuple types.
type TypeList struct {
	l *immutable.List
}

// Create a TypeList containing the given types.
func NewTypeList(types ...Type) TypeList {
	if len(types) == 0 {
		return EmptyTypeList
	}
	b := NewTypeListBuilder()
	for _, t := range types {
		b.Append(t)
	}
	return b.Build()
}

func (l TypeList) Len() int {
	if l.l == nil {
		return 0
	}
	return l.l.Len()
}

func (l TypeList) Get(i int) Type { return l.l.Get(i).(Type) }

// Check if l and other share the same underlying list. Operations which do not change a list
// return the same list.
func (l TypeList) Same(other TypeList) bool { return l.l == other.l || (l.Len() == 0 && other.Len() == 0) }

// Iterate over the types in the list.
// If f returns false, iteration will be stopped.
func (l TypeList) Range(f func(int, Type) bool) {
	if l.l == nil {
		return
	}
	iter := l.l.Iterator()
	for !iter.Done() {
		i, v := iter.Next()
		if !f(i, v.(Type)) {
			return
		}
	}
}

// Copy the types in the list into a slice.
func (l TypeList) Types() []Type {
	ts := make([]Type, 0, l.Len())
	l.Range(func(i int, t Type) bool {
		ts = append(ts, t)
		return true
	})
	return ts
}

// Append returns a copy of l with t added to the end.
func (l TypeList) Append(t Type) TypeList {
	imm := l.l
	if imm == nil {
		imm = emptyList
	}
	return TypeList{imm.Append(t)}
}

// Apply a substitution to every type in the list. The list is returned unchanged if no
// type is affected.
func (l TypeList) Apply(s SubstMap) TypeList {
	if s.IsEmpty() {
		return l
	}
	return l.rewrite(s.lookupOrSelf)
}

// Instantiate every type in the list. The list is returned unchanged if no type is affected.
func (l TypeList) Instantiate(inst Instantiator) TypeList { return l.rewrite(inst.InstantiateVar) }

func (l TypeList) rewrite(f func(*Var) Type) TypeList {
	next := l.l
	l.Range(func(i int, t Type) bool {
		if r := rewrite(t, f); r != t {
			next = next.Set(i, r)
		}
		return true
	})
	if next == l.l {
		return l
	}
	return TypeList{next}
}

// MergeList unifies l and other position-wise over their common prefix. The remaining types of
// the longer list are carried into the merged list.
func (l TypeList) MergeList(other TypeList, env TypeEnv) (TypeList, SubstMap, bool) {
	return mergeLists(l, other)
}

// SubsumeList checks if l is at least as long as lower, where each type in l subsumes the type
// at the same position in lower.
func (l TypeList) SubsumeList(loc Location, lower TypeList, env TypeEnv) (SubstMap, bool) {
	return subsumeLists(l, lower)
}

type TypeListBuilder struct {
	b *immutable.ListBuilder
}

func NewTypeListBuilder() TypeListBuilder {
	return TypeListBuilder{immutable.NewListBuilder(emptyList)}
}

func (b TypeListBuilder) Append(t Type)   { b.b.Append(t) }
func (b TypeListBuilder) Build() TypeList { return TypeList{b.b.List()} }
