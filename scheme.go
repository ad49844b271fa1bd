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

package rows

import (
	"strings"

	"github.com/wdamron/rows/constraint"
	"github.com/wdamron/rows/types"
)

// Scheme is a type with generic type-variables. Generic type-variables may be constrained; each
// instance of the scheme carries instances of the constraints.
type Scheme struct {
	Type   types.Type
	Bounds []Bound
}

// Bound pairs a type-variable with its constraint.
type Bound struct {
	Var        *types.Var
	Constraint constraint.Constraint
}

// Create a type-scheme with constrained type-variables.
func NewScheme(t types.Type, bounds ...Bound) Scheme { return Scheme{Type: t, Bounds: bounds} }

// `(T: {a: int, ...}) => T -> int`
func (sc Scheme) String() string {
	if sc.Type == nil {
		return "<INVALID-SCHEME>"
	}
	if len(sc.Bounds) == 0 {
		return types.TypeString(sc.Type)
	}
	ts := make([]types.Type, 0, len(sc.Bounds)+1)
	for _, b := range sc.Bounds {
		ts = append(ts, b.Var)
	}
	ts = append(ts, sc.Type)
	names := types.TypeStrings(ts...)
	var sb strings.Builder
	sb.WriteByte('(')
	for i, b := range sc.Bounds {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(names[i])
		sb.WriteString(": ")
		sb.WriteString(b.Constraint.String())
	}
	sb.WriteString(") => ")
	sb.WriteString(names[len(names)-1])
	return sb.String()
}
