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

var emptyMap = immutable.NewSortedMap(nil)

var EmptyTypeMap = TypeMap{emptyMap}

// TypeMap contains immutable mappings from labels to types. A TypeMap is also the type-level
// map of kind *Map, and is the payload of record and variant types.
type TypeMap struct {
	m *immutable.SortedMap
}

// Create a TypeMap from labels and types.
func NewTypeMap(m map[string]Type) TypeMap {
	b := NewTypeMapBuilder()
	for label, t := range m {
		b.Set(label, t)
	}
	return b.Build()
}

// Create a TypeMap with a single entry.
func SingletonTypeMap(label string, t Type) TypeMap {
	return TypeMap{emptyMap.Set(label, t)}
}

// Get the number of entries in the map.
func (m TypeMap) Len() int {
	if m.m == nil {
		return 0
	}
	return m.m.Len()
}

// Check if m and other share the same underlying map. Operations which do not change a map
// return the same map.
func (m TypeMap) Same(other TypeMap) bool { return m.m == other.m || (m.Len() == 0 && other.Len() == 0) }

// Get the type for a label.
func (m TypeMap) Get(label string) (Type, bool) {
	if m.m == nil {
		return nil, false
	}
	t, ok := m.m.Get(label)
	if !ok {
		return nil, false
	}
	return t.(Type), true
}

// Iterate over entries in the map, sorted by label.
// If f returns false, iteration will be stopped.
func (m TypeMap) Range(f func(string, Type) bool) {
	if m.m == nil {
		return
	}
	iter := m.m.Iterator()
	for !iter.Done() {
		k, v := iter.Next()
		if !f(k.(string), v.(Type)) {
			return
		}
	}
}

// Get the labels in the map, in sorted order.
func (m TypeMap) Labels() []string {
	labels := make([]string, 0, m.Len())
	m.Range(func(label string, _ Type) bool {
		labels = append(labels, label)
		return true
	})
	return labels
}

// Apply a substitution to every type in the map. The map is returned unchanged if no
// type is affected.
func (m TypeMap) Apply(s SubstMap) TypeMap {
	if s.IsEmpty() {
		return m
	}
	return m.rewrite(s.lookupOrSelf)
}

// Instantiate every type in the map. The map is returned unchanged if no type is affected.
func (m TypeMap) Instantiate(inst Instantiator) TypeMap { return m.rewrite(inst.InstantiateVar) }

func (m TypeMap) rewrite(f func(*Var) Type) TypeMap {
	// only build a new map if an entry is changed:
	next := m.m
	m.Range(func(label string, t Type) bool {
		if r := rewrite(t, f); r != t {
			next = next.Set(label, r)
		}
		return true
	})
	if next == m.m {
		return m
	}
	return TypeMap{next}
}

// Set returns a copy of m with the type for label replaced.
func (m TypeMap) Set(label string, t Type) TypeMap {
	imm := m.m
	if imm == nil {
		imm = emptyMap
	}
	return TypeMap{imm.Set(label, t)}
}

// MergeMap computes the union of m and other. Types for labels present in both maps must unify;
// m is unified against other for each shared label.
func (m TypeMap) MergeMap(other TypeMap, env TypeEnv) (TypeMap, SubstMap, bool) {
	return mergeMaps(m, other)
}

// SubsumeMap checks if m contains every label within lower, where each type in m subsumes the
// type for the same label in lower.
func (m TypeMap) SubsumeMap(loc Location, lower TypeMap, env TypeEnv) (SubstMap, bool) {
	return subsumeMaps(m, lower)
}

// TypeMapBuilder enables in-place updates of a map before finalization.
type TypeMapBuilder struct {
	b *immutable.SortedMapBuilder
}

func NewTypeMapBuilder() TypeMapBuilder {
	return TypeMapBuilder{immutable.NewSortedMapBuilder(emptyMap)}
}

// Set the type for the given label in the builder.
func (b TypeMapBuilder) Set(label string, t Type) TypeMapBuilder {
	b.b.Set(label, t)
	return b
}

// Finalize the builder into an immutable map.
func (b TypeMapBuilder) Build() TypeMap {
	if b.b == nil {
		return EmptyTypeMap
	}
	return TypeMap{b.b.Map()}
}
