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

// Package construct contains shorthand for building types and constraints.
package construct

import (
	"github.com/wdamron/rows/constraint"
	"github.com/wdamron/rows/types"
)

// Types

// Create a new type-variable with the given id.
func TVar(id int) *types.Var {
	return types.NewVar(id, "")
}

// Create a new generic type-variable with the given id.
func TGenericVar(id int) *types.Var {
	return types.NewGenericVar(id, "")
}

// Type constant: `int`, `bool`, etc
func TConst(name string) *types.Const {
	return types.NewConst(name)
}

// Type constructor with a kind: `list :: * -> *`
func TConstKind(name string, kind types.Kind) *types.Const {
	return types.NewConstKind(name, kind)
}

// Type application: `list[int]`
func TApp(constructor types.Type, params ...types.Type) *types.App {
	return &types.App{Const: constructor, Params: params}
}

// Function type: `(int, int) -> int`
func TArrow(args []types.Type, ret types.Type) *types.Arrow {
	return &types.Arrow{Args: args, Return: ret}
}

// Function type: `int -> int`
func TArrow1(arg types.Type, ret types.Type) *types.Arrow {
	return &types.Arrow{Args: []types.Type{arg}, Return: ret}
}

// Function type: `(int, int) -> int`
func TArrow2(arg1, arg2 types.Type, ret types.Type) *types.Arrow {
	return &types.Arrow{Args: []types.Type{arg1, arg2}, Return: ret}
}

// Record type: `{a: int, b: bool}`
func TRecord(fields map[string]types.Type) *types.Record {
	return types.NewRecord(types.NewTypeMap(fields))
}

// Tuple type: `(int, bool)`
func TTuple(members ...types.Type) *types.Tuple {
	return types.NewTuple(members...)
}

// Tagged variant-type: `[ok: int, err: string]`
func TVariant(options map[string]types.Type) *types.Variant {
	return types.NewVariant(types.NewTypeMap(options))
}

// Enum-type: `enum(int)[A, B]`
func TEnum(base types.Type, tags ...string) *types.EnumType {
	return types.NewEnumType(base, tags...)
}

// Labeled types: `<a: int, b: bool>`
func TMap(labels map[string]types.Type) types.TypeMap {
	return types.NewTypeMap(labels)
}

// Ordered types: `<int, bool>`
func TList(members ...types.Type) types.TypeList {
	return types.NewTypeList(members...)
}

// Constraints

// Unconstrained: `_`
func CAny() constraint.Constraint {
	return constraint.Unconstrained
}

// At least the given fields: `{a: int, ...}`
func CRecord(fields map[string]types.Type) *constraint.Record {
	return constraint.NewRecord(types.NewTypeMap(fields))
}

// At least the given members as a prefix: `(int, ...)`
func CTuple(members ...types.Type) *constraint.Tuple {
	return constraint.NewTuple(members...)
}

// At least the given options: `[ok: int, ...]`
func CVariant(options map[string]types.Type) *constraint.Variant {
	return constraint.NewVariant(types.NewTypeMap(options))
}

// At least the given tags: `enum(int)[A, B]`
func CEnum(base types.Type, tags ...string) *constraint.Enum {
	return constraint.NewEnum(types.NewEnumType(base, tags...))
}

// Subsumes the given type: `:> t`
func CSubsume(t types.Type) *constraint.Subsumption {
	return constraint.NewSubsumption(t)
}
