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
	"strings"

	"github.com/wdamron/rows/types"
)

// Tuple requires a tuple-type whose members start with the members of its payload.
type Tuple struct {
	Members types.TypeList
}

func NewTuple(members ...types.Type) *Tuple { return &Tuple{Members: types.NewTypeList(members...)} }

func (c *Tuple) Merge(other Constraint, env types.TypeEnv) (Constraint, types.SubstMap, bool) {
	switch other := other.(type) {
	case *Any:
		return c, types.EmptySubst, true
	case *Tuple:
		members, s, ok := other.Members.MergeList(c.Members, env)
		if !ok {
			return failed()
		}
		if members.Same(c.Members) {
			return c, s, true
		}
		return &Tuple{Members: members}, s, true
	}
	return failed()
}

func (c *Tuple) Satisfy(loc types.Location, t types.Type, env types.TypeEnv) (types.SubstMap, bool) {
	tup, ok := t.(*types.Tuple)
	if !ok {
		return types.EmptySubst, false
	}
	return tup.Members.SubsumeList(loc, c.Members, env)
}

func (c *Tuple) Subst(s types.SubstMap) Constraint {
	members := c.Members.Apply(s)
	if members.Same(c.Members) {
		return c
	}
	return &Tuple{Members: members}
}

func (c *Tuple) Instance(inst types.Instantiator) Constraint {
	members := c.Members.Instantiate(inst)
	if members.Same(c.Members) {
		return c
	}
	return &Tuple{Members: members}
}

func (c *Tuple) Vars() types.VarSet { return c.Members.Vars() }

func (c *Tuple) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for _, s := range types.TypeStrings(c.Members.Types()...) {
		sb.WriteString(s)
		sb.WriteString(", ")
	}
	sb.WriteString("...)")
	return sb.String()
}
