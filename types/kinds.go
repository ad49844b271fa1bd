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
	"errors"
	"strings"
)

// Kind classifies type-level values: ordinary types, type-level lists and maps, and type constructors.
//
// Kinds are immutable and compared structurally.
type Kind interface {
	String() string
	// Equal checks if two kinds are structurally equal.
	Equal(Kind) bool
	// Key returns a canonical encoding of the kind. Equal kinds have equal keys.
	Key() string
	kind()
}

// BaseKind is the kind of ordinary types or of type-level sequences and maps of ordinary types.
type BaseKind uint8

const (
	// Star is the kind of ordinary types: `*`
	Star BaseKind = iota
	// StarList is the kind of type-level lists of ordinary types: `*List`
	StarList
	// StarMap is the kind of type-level maps of ordinary types: `*Map`
	StarMap
)

// ArrowKind is the kind of a type constructor: `* -> *`
type ArrowKind struct {
	Param  Kind
	Result Kind
}

// TupleKind is the kind of a fixed-width tuple of type-level values, used as the parameter kind
// of multi-argument constructors: `(*, *)`
type TupleKind struct {
	Members []Kind
}

// KindVar is an unresolved kind.
type KindVar struct {
	Name string
}

func (BaseKind) kind()   {}
func (*ArrowKind) kind() {}
func (*TupleKind) kind() {}
func (*KindVar) kind()   {}

func NewArrowKind(param, result Kind) *ArrowKind { return &ArrowKind{Param: param, Result: result} }
func NewTupleKind(members ...Kind) *TupleKind   { return &TupleKind{Members: members} }
func NewKindVar(name string) *KindVar           { return &KindVar{Name: name} }

func (k BaseKind) String() string {
	switch k {
	case Star:
		return "*"
	case StarList:
		return "*List"
	case StarMap:
		return "*Map"
	}
	return "<INVALID-KIND>"
}

func (k *ArrowKind) String() string {
	var sb strings.Builder
	writeKind(&sb, k)
	return sb.String()
}

func (k *TupleKind) String() string {
	var sb strings.Builder
	writeKind(&sb, k)
	return sb.String()
}

func (k *KindVar) String() string { return "?" + k.Name }

func (k BaseKind) Key() string   { return k.String() }
func (k *ArrowKind) Key() string { return k.String() }
func (k *TupleKind) Key() string { return k.String() }
func (k *KindVar) Key() string   { return k.String() }

func writeKind(sb *strings.Builder, k Kind) {
	switch k := k.(type) {
	case *ArrowKind:
		if _, nested := k.Param.(*ArrowKind); nested {
			sb.WriteByte('(')
			writeKind(sb, k.Param)
			sb.WriteByte(')')
		} else {
			writeKind(sb, k.Param)
		}
		sb.WriteString(" -> ")
		writeKind(sb, k.Result)
	case *TupleKind:
		sb.WriteByte('(')
		for i, m := range k.Members {
			if i > 0 {
				sb.WriteString(", ")
			}
			writeKind(sb, m)
		}
		sb.WriteByte(')')
	case nil:
		sb.WriteString("<INVALID-KIND>")
	default:
		sb.WriteString(k.String())
	}
}

func (k BaseKind) Equal(other Kind) bool {
	o, ok := other.(BaseKind)
	return ok && o == k
}

func (k *ArrowKind) Equal(other Kind) bool {
	o, ok := other.(*ArrowKind)
	if !ok {
		return false
	}
	return k == o || (k.Param.Equal(o.Param) && k.Result.Equal(o.Result))
}

func (k *TupleKind) Equal(other Kind) bool {
	o, ok := other.(*TupleKind)
	if !ok || len(k.Members) != len(o.Members) {
		return false
	}
	for i, m := range k.Members {
		if !m.Equal(o.Members[i]) {
			return false
		}
	}
	return true
}

func (k *KindVar) Equal(other Kind) bool {
	o, ok := other.(*KindVar)
	return ok && o.Name == k.Name
}

// Check if a kind contains no unresolved kind-variables.
func IsClosedKind(k Kind) bool {
	switch k := k.(type) {
	case BaseKind:
		return k <= StarMap
	case *ArrowKind:
		return k.Param != nil && k.Result != nil && IsClosedKind(k.Param) && IsClosedKind(k.Result)
	case *TupleKind:
		for _, m := range k.Members {
			if m == nil || !IsClosedKind(m) {
				return false
			}
		}
		return len(k.Members) > 0
	}
	return false
}

// KindOf computes the kind of a type.
//
// Constants carry a declared kind (ordinary types by default). Type-level lists and maps have the kinds
// *List and *Map. A type application must apply a constructor with an arrow kind to arguments matching
// its parameter kind; multiple arguments match a tuple kind.
func KindOf(t Type) (Kind, error) {
	switch t := t.(type) {
	case *Const:
		if t.Kind == nil {
			return Star, nil
		}
		return t.Kind, nil
	case TypeList:
		return StarList, nil
	case TypeMap:
		return StarMap, nil
	case *App:
		ck, err := KindOf(t.Const)
		if err != nil {
			return nil, err
		}
		arrow, ok := ck.(*ArrowKind)
		if !ok {
			return nil, errors.New("Cannot apply type of kind " + ck.String())
		}
		var param Kind
		if len(t.Params) == 1 {
			if param, err = KindOf(t.Params[0]); err != nil {
				return nil, err
			}
		} else {
			members := make([]Kind, len(t.Params))
			for i, p := range t.Params {
				if members[i], err = KindOf(p); err != nil {
					return nil, err
				}
			}
			param = NewTupleKind(members...)
		}
		if !arrow.Param.Equal(param) {
			return nil, errors.New("Kind mismatch in type application: expected " + arrow.Param.String() + ", found " + param.String())
		}
		return arrow.Result, nil
	case nil:
		return nil, errors.New("Cannot compute the kind of a nil type")
	}
	return Star, nil
}
