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

// rows checks structural typing constraints for unification-based type inference with
// row-polymorphic records, tuples, tagged variants, and closed enumerations.
//
// A type-variable may carry a constraint: a lower bound on the structural shape of the types it can be
// bound to (see package constraint). The Solver unifies types while propagating constraints. When a
// constrained type-variable is bound to a concrete type, the type must satisfy the constraint; when it is
// bound to another type-variable, the two constraints are merged.
//
// Types, substitutions, and constraints are immutable values. Independent solvers and type-environments
// may be used concurrently.
//
//
// Supported Features:
//
//   * Records and variants with "at least these labels" constraints
//   * Tuples with "at least this prefix" constraints
//   * Closed enumerations over a base representation type
//   * Subsumption constraints for types with an unknown shape
//   * Instantiation of constrained generic types
//   * Kinds for type constructors over types, type-lists, and type-maps
//
//
// Links:
//
// Extensible Records with Scoped Labels (Leijen, 2005): https://www.microsoft.com/en-us/research/publication/extensible-records-with-scoped-labels/
//
// Hindley-Milner type system: https://en.wikipedia.org/wiki/Hindley–Milner_type_system
package rows
