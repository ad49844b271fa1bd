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
	"strings"

	"github.com/benbjohnson/immutable"
)

var emptyBindings = immutable.NewSortedMap(nil)

// EmptySubst is the identity substitution.
var EmptySubst = SubstMap{}

type binding struct {
	v *Var
	t Type
}

// SubstMap contains immutable bindings from type-variables to types.
//
// Substitutions are kept idempotent: no bound type contains a type-variable which is bound
// within the same substitution.
type SubstMap struct {
	m *immutable.SortedMap
}

// Create a substitution with a single binding. The caller must ensure tv does not occur within t.
func SingletonSubst(tv *Var, t Type) SubstMap {
	return SubstMap{emptyBindings.Set(tv.Id(), binding{tv, t})}
}

// Get the number of bindings in the substitution.
func (s SubstMap) Len() int {
	if s.m == nil {
		return 0
	}
	return s.m.Len()
}

func (s SubstMap) IsEmpty() bool { return s.Len() == 0 }

// Get the type bound to a type-variable.
func (s SubstMap) Lookup(tv *Var) (Type, bool) {
	if s.m == nil {
		return nil, false
	}
	b, ok := s.m.Get(tv.Id())
	if !ok {
		return nil, false
	}
	return b.(binding).t, true
}

func (s SubstMap) lookupOrSelf(tv *Var) Type {
	if t, ok := s.Lookup(tv); ok {
		return t
	}
	return tv
}

// Iterate over bindings in the substitution, ordered by type-variable id.
// If f returns false, iteration will be stopped.
func (s SubstMap) Range(f func(*Var, Type) bool) {
	if s.m == nil {
		return
	}
	iter := s.m.Iterator()
	for !iter.Done() {
		_, v := iter.Next()
		b := v.(binding)
		if !f(b.v, b.t) {
			return
		}
	}
}

// Get the type-variables bound within the substitution, ordered by id.
func (s SubstMap) Domain() []*Var {
	vars := make([]*Var, 0, s.Len())
	s.Range(func(tv *Var, _ Type) bool {
		vars = append(vars, tv)
		return true
	})
	return vars
}

// Compose s with next, producing a substitution equivalent to applying s then next.
//
// next is applied to every type bound within s, and bindings from next are added for
// type-variables which are not already bound within s.
func (s SubstMap) Compose(next SubstMap) SubstMap {
	switch {
	case next.IsEmpty():
		return s
	case s.IsEmpty():
		return next
	}
	m := s.m
	s.Range(func(tv *Var, t Type) bool {
		if applied := t.Subst(next); applied != t {
			m = m.Set(tv.Id(), binding{tv, applied})
		}
		return true
	})
	next.Range(func(tv *Var, t Type) bool {
		if _, exists := m.Get(tv.Id()); !exists {
			m = m.Set(tv.Id(), binding{tv, t})
		}
		return true
	})
	return SubstMap{m}
}

func (s SubstMap) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	i := 0
	s.Range(func(tv *Var, t Type) bool {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(tv.Name())
		sb.WriteString(" := ")
		sb.WriteString(TypeString(t))
		i++
		return true
	})
	sb.WriteByte('}')
	return sb.String()
}

func asVar(t Type) *Var {
	tv, _ := t.(*Var)
	return tv
}
