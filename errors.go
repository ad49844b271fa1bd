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
	"errors"
	"fmt"

	"github.com/wdamron/rows/types"
)

var (
	// Two types failed to unify.
	ErrMismatch = errors.New("type mismatch")
	// A type did not satisfy the constraint of a type-variable.
	ErrUnsatisfied = errors.New("unsatisfied constraint")
	// Two constraints on the same type-variable could not be merged.
	ErrIncompatible = errors.New("incompatible constraints")
	// Merging two constraints is not implemented for the shapes of their payloads.
	ErrUnsupportedMerge = errors.New("unsupported constraint merge")
)

// TypeError is a located error with the textual forms of the conflicting types or constraints.
type TypeError struct {
	// One of ErrMismatch, ErrUnsatisfied, ErrIncompatible, or ErrUnsupportedMerge
	Kind  error
	Loc   types.Location
	Left  string
	Right string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("%v: %v: %s and %s", e.Loc, e.Kind, e.Left, e.Right)
}

func (e *TypeError) Unwrap() error { return e.Kind }

// Diagnostic converts the error into a diagnostic.
func (e *TypeError) Diagnostic() types.Diagnostic {
	kind := types.TypeMismatch
	switch e.Kind {
	case ErrUnsatisfied, ErrIncompatible:
		kind = types.ShapeMismatch
	case ErrUnsupportedMerge:
		kind = types.UnsupportedMerge
	}
	return types.Diagnostic{Kind: kind, Loc: e.Loc, Message: e.Kind.Error(), Left: e.Left, Right: e.Right}
}

func newTypeError(kind error, loc types.Location, left, right fmt.Stringer) *TypeError {
	return &TypeError{Kind: kind, Loc: loc, Left: left.String(), Right: right.String()}
}

type typeStringer struct{ t types.Type }

func (s typeStringer) String() string { return types.TypeString(s.t) }
