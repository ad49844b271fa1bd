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
	"strconv"
)

// Type-variable
//
// Type-variables are immutable; a type-variable is resolved by binding it within a SubstMap.
// Two type-variables with the same id are the same variable.
type Var struct {
	id      int
	name    string
	generic bool
}

// Create a new unbound type-variable with the given id. The name is used for printing only.
func NewVar(id int, name string) *Var {
	return &Var{id: id, name: name}
}

// Create a new generic type-variable. Generic type-variables are replaced during instantiation.
func NewGenericVar(id int, name string) *Var {
	return &Var{id: id, name: name, generic: true}
}

// Id returns the unique identifier of the type-variable.
func (tv *Var) Id() int { return tv.id }

// Name returns the display name of the type-variable, or a name derived from its id.
func (tv *Var) Name() string {
	if tv.name != "" {
		return tv.name
	}
	return "_" + strconv.Itoa(tv.id)
}

func (tv *Var) IsGeneric() bool { return tv.generic }

// Check if tv and other are the same type-variable.
func (tv *Var) Is(other *Var) bool { return tv == other || (other != nil && tv.id == other.id) }

// Check if tv occurs within t.
func (tv *Var) OccursIn(t Type) bool {
	switch t := t.(type) {
	case *Var:
		return tv.Is(t)
	case *Const, nil:
		return false
	}
	return t.Vars().Has(tv)
}
