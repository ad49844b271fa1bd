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

package typeutil

import (
	"github.com/wdamron/rows/types"
)

var _ types.Instantiator = (*Instantiator)(nil)

// Instantiator replaces generic type-variables with fresh unbound type-variables. Each generic
// type-variable is replaced consistently across every type visited by the same instantiator.
type Instantiator struct {
	vars   *VarTracker
	lookup map[int]*types.Var // instantiation lookup for generic type-variables
}

func NewInstantiator(vars *VarTracker) *Instantiator {
	return &Instantiator{vars: vars, lookup: make(map[int]*types.Var, 16)}
}

func (inst *Instantiator) InstantiateVar(tv *types.Var) types.Type {
	// Non-generic types can be shared:
	if !tv.IsGeneric() {
		return tv
	}
	if next, ok := inst.lookup[tv.Id()]; ok {
		return next
	}
	next := inst.vars.New(tv.Name())
	inst.lookup[tv.Id()] = next
	return next
}

// Lookup the instance of a generic type-variable.
func (inst *Instantiator) Lookup(tv *types.Var) (*types.Var, bool) {
	next, ok := inst.lookup[tv.Id()]
	return next, ok
}

// Instantiate a type. Generic type-variables shared with previously instantiated types receive the same instances.
func (inst *Instantiator) Instantiate(t types.Type) types.Type {
	if t.Vars().Len() == 0 {
		return t
	}
	return t.Accept(inst)
}

// ClearInstantiationLookup forgets previous instances, so generic type-variables will be instantiated again.
func (inst *Instantiator) ClearInstantiationLookup() {
	for k := range inst.lookup {
		delete(inst.lookup, k)
	}
}
