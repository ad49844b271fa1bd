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

package constraint

import (
	"github.com/wdamron/rows/types"
)

// Record requires a record-type containing at least the fields of its payload.
type Record struct {
	Fields types.TypeMap
}

func NewRecord(fields types.TypeMap) *Record { return &Record{Fields: fields} }

func (c *Record) Merge(other Constraint, env types.TypeEnv) (Constraint, types.SubstMap, bool) {
	switch other := other.(type) {
	case *Any:
		return c, types.EmptySubst, true
	case *Record:
		fields, s, ok := other.Fields.MergeMap(c.Fields, env)
		if !ok {
			return failed()
		}
		if fields.Same(c.Fields) {
			return c, s, true
		}
		return &Record{Fields: fields}, s, true
	}
	return failed()
}

func (c *Record) Satisfy(loc types.Location, t types.Type, env types.TypeEnv) (types.SubstMap, bool) {
	r, ok := t.(*types.Record)
	if !ok {
		return types.EmptySubst, false
	}
	return r.Fields.SubsumeMap(loc, c.Fields, env)
}

func (c *Record) Subst(s types.SubstMap) Constraint {
	fields := c.Fields.Apply(s)
	if fields.Same(c.Fields) {
		return c
	}
	return &Record{Fields: fields}
}

func (c *Record) Instance(inst types.Instantiator) Constraint {
	fields := c.Fields.Instantiate(inst)
	if fields.Same(c.Fields) {
		return c
	}
	return &Record{Fields: fields}
}

func (c *Record) Vars() types.VarSet { return c.Fields.Vars() }

func (c *Record) String() string { return "{" + labelsString(c.Fields) + "}" }
