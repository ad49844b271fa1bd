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
	"sync/atomic"

	"github.com/wdamron/rows/types"
)

// IdSource hands out type-variable ids. It is safe for concurrent use.
type IdSource struct {
	next atomic.Int64
}

// Next returns an id which has not been returned before.
func (s *IdSource) Next() int { return int(s.next.Add(1) - 1) }

// VarTracker allocates type-variables with unique ids and tracks allocations.
//
// Trackers which share an IdSource never allocate the same id.
type VarTracker struct {
	Ids  *IdSource
	vars []*types.Var
}

// Reset forgets tracked allocations. Ids are not reused.
func (vt *VarTracker) Reset() { vt.vars = nil }

// Count returns the number of tracked allocations.
func (vt *VarTracker) Count() int { return len(vt.vars) }

// List returns tracked allocations, in order of allocation.
func (vt *VarTracker) List() []*types.Var { return vt.vars }

// Allocate an unbound type-variable.
func (vt *VarTracker) New(name string) *types.Var {
	tv := types.NewVar(vt.nextId(), name)
	vt.track(tv)
	return tv
}

// Allocate a generic type-variable.
func (vt *VarTracker) NewGeneric(name string) *types.Var {
	tv := types.NewGenericVar(vt.nextId(), name)
	vt.track(tv)
	return tv
}

// Allocate count unbound type-variables.
func (vt *VarTracker) NewList(count int) []*types.Var {
	vars := make([]*types.Var, count)
	for i := range vars {
		vars[i] = vt.New("")
	}
	return vars
}

func (vt *VarTracker) nextId() int {
	if vt.Ids == nil {
		vt.Ids = new(IdSource)
	}
	return vt.Ids.Next()
}

func (vt *VarTracker) track(tv *types.Var) { vt.vars = append(vt.vars, tv) }
