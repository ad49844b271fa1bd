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

package rows_test

import (
	"testing"

	. "github.com/wdamron/rows"
	. "github.com/wdamron/rows/construct"

	"github.com/wdamron/rows/types"
)

func BenchmarkConstrainedUnify(b *testing.B) {
	env := NewTypeEnv(nil)
	s := NewSolver(env)
	T, U, X := env.NewVar("T"), env.NewVar("U"), env.NewVar("X")
	record := TRecord(map[string]types.Type{
		"name": TConst("string"),
		"age":  TConst("int"),
		"tags": TTuple(TConst("string"), TConst("string")),
	})

	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		s.Reset()
		if err := s.Constrain(types.NoLocation, T, CRecord(map[string]types.Type{"name": X})); err != nil {
			b.Fatal(err)
		}
		if err := s.Constrain(types.NoLocation, U, CRecord(map[string]types.Type{"age": TConst("int")})); err != nil {
			b.Fatal(err)
		}
		if err := s.Unify(types.NoLocation, T, U); err != nil {
			b.Fatal(err)
		}
		if err := s.Unify(types.NoLocation, U, record); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkInstantiate(b *testing.B) {
	env := NewTypeEnv(nil)
	s := NewSolver(env)
	A := env.NewGenericVar("a")
	sc := NewScheme(TArrow2(A, TConst("int"), A), Bound{Var: A, Constraint: CTuple(TConst("int"))})

	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		if _, err := s.Instantiate(types.NoLocation, sc); err != nil {
			b.Fatal(err)
		}
	}
}
