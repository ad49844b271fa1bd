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
	"sort"
)

// Canonical kinds, shared by reference:
var (
	// Unary type constructors: `* -> *`
	UnaryKind = NewArrowKind(Star, Star)
	// Binary type constructors: `(*, *) -> *`
	BinaryKind = NewArrowKind(NewTupleKind(Star, Star), Star)
	// List-accepting type constructors: `*List -> *`
	ListKind = NewArrowKind(StarList, Star)
	// Map-accepting type constructors: `*Map -> *`
	MapKind = NewArrowKind(StarMap, Star)
	// Type-indexed enumeration: `*List -> *`
	EnumKind = NewArrowKind(StarList, Star)
	// Pairwise concatenation of type-lists: `(*List, *List) -> *List`
	ConcatKind = NewArrowKind(NewTupleKind(StarList, StarList), StarList)
	// Value-keyed type association: `(*, *Map) -> *`
	AssocKind = NewArrowKind(NewTupleKind(Star, StarMap), Star)
	// Exponentiation producing uniform tuples: `(*, *List) -> *`
	PowTupleKind = NewArrowKind(NewTupleKind(Star, StarList), Star)
	// Exponentiation producing uniform records: `(*, *Map) -> *`
	PowRecordKind = NewArrowKind(NewTupleKind(Star, StarMap), Star)
	// One function type per domain in a list, sharing one codomain: `(*List, *) -> *List`
	ConeKind = NewArrowKind(NewTupleKind(StarList, Star), StarList)
)

var kindRegistry = map[string]Kind{
	"*":          Star,
	"unary":      UnaryKind,
	"binary":     BinaryKind,
	"list":       ListKind,
	"map":        MapKind,
	"enum":       EnumKind,
	"concat":     ConcatKind,
	"assoc":      AssocKind,
	"pow-tuple":  PowTupleKind,
	"pow-record": PowRecordKind,
	"cone":       ConeKind,
}

func init() {
	for name, k := range kindRegistry {
		if !IsClosedKind(k) {
			panic("invalid kind registry entry " + name + ": " + k.String())
		}
	}
}

// Lookup a canonical kind by name.
func LookupKind(name string) (Kind, bool) {
	k, ok := kindRegistry[name]
	return k, ok
}

// Get the names of all canonical kinds, in sorted order.
func KindNames() []string {
	names := make([]string, 0, len(kindRegistry))
	for name := range kindRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
