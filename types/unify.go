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

// Pairs of types are unified left-to-right. Each pair is unified after applying the substitution
// accumulated from the previous pairs, so that the composed substitution remains idempotent.
type unifier struct {
	s  SubstMap
	ok bool
}

func newUnifier() *unifier { return &unifier{s: EmptySubst, ok: true} }

func (u *unifier) unify(a, b Type) bool {
	if !u.ok {
		return false
	}
	s, ok := unify(a.Subst(u.s), b.Subst(u.s))
	if !ok {
		u.ok = false
		return false
	}
	u.s = u.s.Compose(s)
	return true
}

func (u *unifier) subsume(t, lower Type) bool {
	if !u.ok {
		return false
	}
	s, ok := subsume(t.Subst(u.s), lower.Subst(u.s))
	if !ok {
		u.ok = false
		return false
	}
	u.s = u.s.Compose(s)
	return true
}

func (u *unifier) result() (SubstMap, bool) {
	if !u.ok {
		return EmptySubst, false
	}
	return u.s, true
}

func bindVar(tv *Var, t Type) (SubstMap, bool) {
	if tv.Is(asVar(t)) {
		return EmptySubst, true
	}
	// prevent cyclical types:
	if tv.OccursIn(t) {
		return EmptySubst, false
	}
	return SingletonSubst(tv, t), true
}

func unify(a, b Type) (SubstMap, bool) {
	if a == b {
		return EmptySubst, true
	}

	// unify type variables:

	if avar, ok := a.(*Var); ok {
		return bindVar(avar, b)
	}
	if bvar, ok := b.(*Var); ok {
		return bindVar(bvar, a)
	}

	// unify types:

	switch a := a.(type) {
	case *Const:
		if b, ok := b.(*Const); ok && a.Name == b.Name {
			return EmptySubst, true
		}

	case *App:
		b, ok := b.(*App)
		if !ok || len(a.Params) != len(b.Params) {
			break
		}
		u := newUnifier()
		u.unify(a.Const, b.Const)
		for i := range a.Params {
			u.unify(a.Params[i], b.Params[i])
		}
		return u.result()

	case *Arrow:
		b, ok := b.(*Arrow)
		if !ok || len(a.Args) != len(b.Args) {
			break
		}
		u := newUnifier()
		for i := range a.Args {
			u.unify(a.Args[i], b.Args[i])
		}
		u.unify(a.Return, b.Return)
		return u.result()

	case *Record:
		if b, ok := b.(*Record); ok {
			return unifyMaps(a.Fields, b.Fields)
		}

	case *Variant:
		if b, ok := b.(*Variant); ok {
			return unifyMaps(a.Options, b.Options)
		}

	case *Tuple:
		if b, ok := b.(*Tuple); ok {
			return unifyLists(a.Members, b.Members)
		}

	case *EnumType:
		if b, ok := b.(*EnumType); ok {
			u := newUnifier()
			u.unify(a.Base, b.Base)
			if s, ok := u.result(); ok {
				if tags, ok := unifyMaps(a.Tags.Apply(s), b.Tags.Apply(s)); ok {
					return s.Compose(tags), true
				}
			}
		}

	case TypeMap:
		if b, ok := b.(TypeMap); ok {
			return unifyMaps(a, b)
		}

	case TypeList:
		if b, ok := b.(TypeList); ok {
			return unifyLists(a, b)
		}
	}

	return EmptySubst, false
}

// Unify maps with identical sets of labels.
func unifyMaps(a, b TypeMap) (SubstMap, bool) {
	if a.Len() != b.Len() {
		return EmptySubst, false
	}
	u := newUnifier()
	a.Range(func(label string, ta Type) bool {
		tb, ok := b.Get(label)
		if !ok {
			u.ok = false
			return false
		}
		return u.unify(ta, tb)
	})
	return u.result()
}

// Unify lists with identical lengths.
func unifyLists(a, b TypeList) (SubstMap, bool) {
	if a.Len() != b.Len() {
		return EmptySubst, false
	}
	u := newUnifier()
	a.Range(func(i int, ta Type) bool {
		return u.unify(ta, b.Get(i))
	})
	return u.result()
}

// Check if t is a valid specialization of lower. Records, variants, tuples, and enums are
// specialized by width: t must contain at least the labels, members, or tags of lower.
func subsume(t, lower Type) (SubstMap, bool) {
	if t == lower {
		return EmptySubst, true
	}
	if lvar, ok := lower.(*Var); ok {
		return bindVar(lvar, t)
	}
	if tvar, ok := t.(*Var); ok {
		return bindVar(tvar, lower)
	}

	switch lower := lower.(type) {
	case *Record:
		if t, ok := t.(*Record); ok {
			return subsumeMaps(t.Fields, lower.Fields)
		}
		return EmptySubst, false

	case *Variant:
		if t, ok := t.(*Variant); ok {
			return subsumeMaps(t.Options, lower.Options)
		}
		return EmptySubst, false

	case *Tuple:
		if t, ok := t.(*Tuple); ok {
			return subsumeLists(t.Members, lower.Members)
		}
		return EmptySubst, false

	case *EnumType:
		if t, ok := t.(*EnumType); ok {
			return subsumeEnums(t, lower)
		}
		return EmptySubst, false

	case TypeMap:
		if t, ok := t.(TypeMap); ok {
			return subsumeMaps(t, lower)
		}
		return EmptySubst, false

	case TypeList:
		if t, ok := t.(TypeList); ok {
			return subsumeLists(t, lower)
		}
		return EmptySubst, false
	}

	return unify(t, lower)
}

func subsumeMaps(t, lower TypeMap) (SubstMap, bool) {
	if t.Len() < lower.Len() {
		return EmptySubst, false
	}
	u := newUnifier()
	lower.Range(func(label string, lt Type) bool {
		tt, ok := t.Get(label)
		if !ok {
			u.ok = false
			return false
		}
		return u.subsume(tt, lt)
	})
	return u.result()
}

func subsumeLists(t, lower TypeList) (SubstMap, bool) {
	if t.Len() < lower.Len() {
		return EmptySubst, false
	}
	u := newUnifier()
	lower.Range(func(i int, lt Type) bool {
		return u.subsume(t.Get(i), lt)
	})
	return u.result()
}

func subsumeEnums(t, lower *EnumType) (SubstMap, bool) {
	u := newUnifier()
	if !u.unify(t.Base, lower.Base) {
		return EmptySubst, false
	}
	s, ok := u.result()
	if !ok {
		return s, false
	}
	tags, ok := subsumeMaps(t.Tags.Apply(s), lower.Tags.Apply(s))
	if !ok {
		return EmptySubst, false
	}
	return s.Compose(tags), true
}

// Compute the least upper structural bound of a and b. Shared labels and positions are unified
// with a on the left-hand side.
func merge(a, b Type) (Type, SubstMap, bool) {
	switch a := a.(type) {
	case *Record:
		if b, ok := b.(*Record); ok {
			fields, s, ok := mergeMaps(a.Fields, b.Fields)
			if !ok {
				return nil, EmptySubst, false
			}
			if fields.Same(b.Fields) {
				return b, s, true
			}
			return &Record{Fields: fields}, s, true
		}

	case *Variant:
		if b, ok := b.(*Variant); ok {
			options, s, ok := mergeMaps(a.Options, b.Options)
			if !ok {
				return nil, EmptySubst, false
			}
			if options.Same(b.Options) {
				return b, s, true
			}
			return &Variant{Options: options}, s, true
		}

	case *Tuple:
		if b, ok := b.(*Tuple); ok {
			members, s, ok := mergeLists(a.Members, b.Members)
			if !ok {
				return nil, EmptySubst, false
			}
			if members.Same(b.Members) {
				return b, s, true
			}
			return &Tuple{Members: members}, s, true
		}

	case *EnumType:
		if b, ok := b.(*EnumType); ok {
			e, s, ok := mergeEnums(a, b)
			if !ok {
				return nil, EmptySubst, false
			}
			return e, s, true
		}

	case TypeMap:
		if b, ok := b.(TypeMap); ok {
			m, s, ok := mergeMaps(a, b)
			if !ok {
				return nil, EmptySubst, false
			}
			return m, s, true
		}

	case TypeList:
		if b, ok := b.(TypeList); ok {
			l, s, ok := mergeLists(a, b)
			if !ok {
				return nil, EmptySubst, false
			}
			return l, s, true
		}
	}

	s, ok := unify(a, b)
	if !ok {
		return nil, EmptySubst, false
	}
	return b.Subst(s), s, true
}

// The merged map contains every label within a or b. If a contributes no new labels and no
// type-variables are bound, b is returned unchanged.
func mergeMaps(a, b TypeMap) (TypeMap, SubstMap, bool) {
	u := newUnifier()
	merged := b
	a.Range(func(label string, ta Type) bool {
		tb, ok := b.Get(label)
		if !ok {
			merged = merged.Set(label, ta)
			return true
		}
		return u.unify(ta, tb)
	})
	s, ok := u.result()
	if !ok {
		return TypeMap{}, EmptySubst, false
	}
	return merged.Apply(s), s, true
}

// The merged list is as long as the longer of a and b.
func mergeLists(a, b TypeList) (TypeList, SubstMap, bool) {
	u := newUnifier()
	n := a.Len()
	if b.Len() < n {
		n = b.Len()
	}
	for i := 0; i < n; i++ {
		if !u.unify(a.Get(i), b.Get(i)) {
			return TypeList{}, EmptySubst, false
		}
	}
	s, _ := u.result()
	merged := b
	for i := n; i < a.Len(); i++ {
		merged = merged.Append(a.Get(i))
	}
	return merged.Apply(s), s, true
}

func mergeEnums(a, b *EnumType) (*EnumType, SubstMap, bool) {
	u := newUnifier()
	if !u.unify(a.Base, b.Base) {
		return nil, EmptySubst, false
	}
	s, _ := u.result()
	tags, ts, ok := mergeMaps(a.Tags.Apply(s), b.Tags.Apply(s))
	if !ok {
		return nil, EmptySubst, false
	}
	s = s.Compose(ts)
	base := b.Base.Subst(s)
	tags = tags.Apply(s)
	if base == b.Base && tags.Same(b.Tags) {
		return b, s, true
	}
	return &EnumType{Base: base, Tags: tags}, s, true
}
