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

// Subsumption requires a type which subsumes its payload. It is used when the shape of the
// constrained type is not yet known to be a record, tuple, variant, or enum.
type Subsumption struct {
	Type types.Type
}

func NewSubsumption(t types.Type) *Subsumption { return &Subsumption{Type: t} }

// Merge finds the most specific structural merge for the shapes of both payloads, in order:
// variants, records, type-maps, type-lists, then enums. Other pairs of shapes are not supported;
// an UnsupportedMerge diagnostic is reported and the merge fails.
func (c *Subsumption) Merge(other Constraint, env types.TypeEnv) (Constraint, types.SubstMap, bool) {
	if IsAny(other) {
		return c, types.EmptySubst, true
	}
	a, _ := Payload(other)
	b := c.Type

	switch a := a.(type) {
	case *types.Variant:
		if b, ok := b.(*types.Variant); ok {
			options, s, ok := a.Options.MergeMap(b.Options, env)
			if !ok {
				return failed()
			}
			return c.with(&types.Variant{Options: options}, options.Same(b.Options)), s, true
		}

	case *types.Record:
		if b, ok := b.(*types.Record); ok {
			fields, s, ok := a.Fields.MergeMap(b.Fields, env)
			if !ok {
				return failed()
			}
			return c.with(&types.Record{Fields: fields}, fields.Same(b.Fields)), s, true
		}

	case types.TypeMap:
		if b, ok := b.(types.TypeMap); ok {
			m, s, ok := a.MergeMap(b, env)
			if !ok {
				return failed()
			}
			return c.with(m, m.Same(b)), s, true
		}

	case types.TypeList:
		if b, ok := b.(types.TypeList); ok {
			l, s, ok := a.MergeList(b, env)
			if !ok {
				return failed()
			}
			return c.with(l, l.Same(b)), s, true
		}

	case *types.EnumType:
		if b, ok := b.(*types.EnumType); ok {
			e, s, ok := a.MergeEnum(b, env)
			if !ok {
				return failed()
			}
			return c.with(e, e == b), s, true
		}
	}

	if env != nil {
		operands := types.TypeStrings(a, b)
		env.Report(types.Diagnostic{
			Kind:    types.UnsupportedMerge,
			Message: "merging constraints is not implemented for " + typeName(a) + " and " + typeName(b),
			Left:    operands[0],
			Right:   operands[1],
		})
	}
	return failed()
}

func (c *Subsumption) with(t types.Type, unchanged bool) *Subsumption {
	if unchanged {
		return c
	}
	return &Subsumption{Type: t}
}

// Satisfy checks if t subsumes the payload. Unlike the other constraints, the check is delegated to
// the candidate type, with the payload as the lower bound.
func (c *Subsumption) Satisfy(loc types.Location, t types.Type, env types.TypeEnv) (types.SubstMap, bool) {
	return t.Subsume(loc, c.Type, env)
}

func (c *Subsumption) Subst(s types.SubstMap) Constraint {
	t := c.Type.Subst(s)
	if t == c.Type {
		return c
	}
	return &Subsumption{Type: t}
}

func (c *Subsumption) Instance(inst types.Instantiator) Constraint {
	t := c.Type.Accept(inst)
	if t == c.Type {
		return c
	}
	return &Subsumption{Type: t}
}

func (c *Subsumption) Vars() types.VarSet { return c.Type.Vars() }

func (c *Subsumption) String() string { return ":> " + types.TypeString(c.Type) }

func typeName(t types.Type) string {
	if t == nil {
		return "nil"
	}
	return t.TypeName()
}
