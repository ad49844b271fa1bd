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

package types

// DiagnosticKind classifies diagnostics reported while checking constraints.
type DiagnosticKind int

const (
	// Two types failed to unify.
	TypeMismatch DiagnosticKind = iota
	// A type or constraint did not have the shape required by a constraint.
	ShapeMismatch
	// Merging two constraints is not implemented for the shapes of their payloads. This indicates
	// a gap in the type-system rather than an error within the checked program.
	UnsupportedMerge
)

func (k DiagnosticKind) String() string {
	switch k {
	case TypeMismatch:
		return "type mismatch"
	case ShapeMismatch:
		return "unsatisfied constraint"
	case UnsupportedMerge:
		return "unsupported merge"
	}
	return "unknown diagnostic"
}

// Diagnostic is a located error message with the textual forms of the two conflicting types
// or constraints.
type Diagnostic struct {
	Kind    DiagnosticKind
	Loc     Location
	Message string
	Left    string
	Right   string
}

func (d Diagnostic) String() string {
	msg := d.Message
	if msg == "" {
		msg = d.Kind.String()
	}
	s := d.Loc.String() + ": " + msg
	if d.Left != "" || d.Right != "" {
		s += ": " + d.Left + " and " + d.Right
	}
	return s
}

// TypeEnv is the ambient context for reporting diagnostics.
type TypeEnv interface {
	Report(d Diagnostic)
}
