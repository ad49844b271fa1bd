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

// Package constraint implements structural lower-bound constraints on type-variables.
//
// A constraint is attached to a type-variable during inference. When the variable is unified with a
// concrete type, the unifier checks the type with Satisfy; when two constrained variables are unified,
// the unifier combines their constraints with Merge. Constraints are immutable: Subst and Instance return
// the receiver itself when the payload is unaffected.
//
// Merge always merges the other constraint's payload against the receiver's payload, i.e.
// `otherPayload.Merge(selfPayload)`. The unifier passes the existing constraint as the receiver, so for
// shared fields the variable introduced by the later constraint is bound to the earlier one and
// diagnostics keep the names in declaration order.
package constraint

import (
	"strings"

	"github.com/wdamron/rows/types"
)

// Constraint is a lower bound on the structural shape of a type.
//
// The set of constraints is closed: *Any, *Enum, *Record, *Tuple, *Variant, and *Subsumption.
type Constraint interface {
	// Merge combines two constraints on the same type-variable. The returned substitution contains
	// bindings forced by the combination. Merge fails for incompatible shapes.
	Merge(other Constraint, env types.TypeEnv) (Constraint, types.SubstMap, bool)
	// Satisfy checks if t meets the constraint.
	Satisfy(loc types.Location, t types.Type, env types.TypeEnv) (types.SubstMap, bool)
	Subst(s types.SubstMap) Constraint
	Instance(inst types.Instantiator) Constraint
	// Vars returns the free type-variables within the constraint's payload.
	Vars() types.VarSet
	String() string

	constraint()
}

func (*Any) constraint()         {}
func (*Enum) constraint()        {}
func (*Record) constraint()      {}
func (*Tuple) constraint()       {}
func (*Variant) constraint()     {}
func (*Subsumption) constraint() {}

// Any is satisfied by every type.
type Any struct{}

// Unconstrained is the shared Any constraint.
var Unconstrained = &Any{}

func (c *Any) Merge(other Constraint, env types.TypeEnv) (Constraint, types.SubstMap, bool) {
	return other, types.EmptySubst, true
}

func (c *Any) Satisfy(loc types.Location, t types.Type, env types.TypeEnv) (types.SubstMap, bool) {
	return types.EmptySubst, true
}

func (c *Any) Subst(s types.SubstMap) Constraint            { return c }
func (c *Any) Instance(inst types.Instantiator) Constraint { return c }
func (c *Any) Vars() types.VarSet                          { return types.EmptyVarSet }
func (c *Any) String() string                              { return "_" }

// Check if c is the Any constraint.
func IsAny(c Constraint) bool {
	_, ok := c.(*Any)
	return ok
}

// Payload returns the structural payload of a constraint as a type. Any has no payload.
func Payload(c Constraint) (types.Type, bool) {
	switch c := c.(type) {
	case *Enum:
		return c.Type, true
	case *Record:
		return c.Fields, true
	case *Tuple:
		return c.Members, true
	case *Variant:
		return c.Options, true
	case *Subsumption:
		return c.Type, true
	}
	return nil, false
}

func failed() (Constraint, types.SubstMap, bool) { return nil, types.EmptySubst, false }

// Print labels of an open row: `a: int, b: bool, ...`
func labelsString(m types.TypeMap) string {
	labels := m.Labels()
	ts := make([]types.Type, len(labels))
	for i, label := range labels {
		ts[i], _ = m.Get(label)
	}
	var sb strings.Builder
	for i, s := range types.TypeStrings(ts...) {
		sb.WriteString(labels[i])
		sb.WriteString(": ")
		sb.WriteString(s)
		sb.WriteString(", ")
	}
	sb.WriteString("...")
	return sb.String()
}
