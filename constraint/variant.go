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

// Variant requires a variant-type containing at least the cases of its payload.
type Variant struct {
	Options types.TypeMap
}

func NewVariant(options types.TypeMap) *Variant { return &Variant{Options: options} }

func (c *Variant) Merge(other Constraint, env types.TypeEnv) (Constraint, types.SubstMap, bool) {
	switch other := other.(type) {
	case *Any:
		return c, types.EmptySubst, true
	case *Variant:
		options, s, ok := other.Options.MergeMap(c.Options, env)
		if !ok {
			return failed()
		}
		if options.Same(c.Options) {
			return c, s, true
		}
		return &Variant{Options: options}, s, true
	}
	return failed()
}

func (c *Variant) Satisfy(loc types.Location, t types.Type, env types.TypeEnv) (types.SubstMap, bool) {
	v, ok := t.(*types.Variant)
	if !ok {
		return types.EmptySubst, false
	}
	return v.Options.SubsumeMap(loc, c.Options, env)
}

func (c *Variant) Subst(s types.SubstMap) Constraint {
	options := c.Options.Apply(s)
	if options.Same(c.Options) {
		return c
	}
	return &Variant{Options: options}
}

func (c *Variant) Instance(inst types.Instantiator) Constraint {
	options := c.Options.Instantiate(inst)
	if options.Same(c.Options) {
		return c
	}
	return &Variant{Options: options}
}

func (c *Variant) Vars() types.VarSet { return c.Options.Vars() }

func (c *Variant) String() string { return "[" + labelsString(c.Options) + "]" }
