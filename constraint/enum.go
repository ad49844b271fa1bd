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

// Enum requires an enum-type containing at least the tags of its payload.
//
// The payload is treated as ground: Subst and Instance never change it.
type Enum struct {
	Type *types.EnumType
}

func NewEnum(t *types.EnumType) *Enum { return &Enum{Type: t} }

func (c *Enum) Merge(other Constraint, env types.TypeEnv) (Constraint, types.SubstMap, bool) {
	switch other := other.(type) {
	case *Any:
		return c, types.EmptySubst, true
	case *Enum:
		merged, s, ok := other.Type.MergeEnum(c.Type, env)
		if !ok {
			return failed()
		}
		if merged == c.Type {
			return c, s, true
		}
		return &Enum{Type: merged}, s, true
	}
	return failed()
}

// Satisfy checks if an enum-type contains the required tags. Other types must unify with the
// base representation type, which allows a type-variable to satisfy the constraint before it
// is specialized.
func (c *Enum) Satisfy(loc types.Location, t types.Type, env types.TypeEnv) (types.SubstMap, bool) {
	if e, ok := t.(*types.EnumType); ok {
		return e.SubsumeEnum(loc, c.Type, env)
	}
	return t.Unify(loc, c.Type.Base, env)
}

func (c *Enum) Subst(s types.SubstMap) Constraint            { return c }
func (c *Enum) Instance(inst types.Instantiator) Constraint { return c }
func (c *Enum) Vars() types.VarSet                          { return types.EmptyVarSet }
func (c *Enum) String() string                              { return types.TypeString(c.Type) }
