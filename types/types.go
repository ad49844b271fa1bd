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

import (
	"strconv"
)

// Type is the base interface for all types.
//
// Types are immutable values. Operations which may fail report failure with an explicit ok flag,
// and operations which rewrite a type return the receiver itself when nothing was changed.
type Type interface {
	TypeName() string
	// Subsume checks if t is a valid specialization of lower. The returned substitution binds
	// type-variables within either type.
	Subsume(loc Location, lower Type, env TypeEnv) (SubstMap, bool)
	// Merge computes the least upper structural bound of t and other, where t is the more recent side.
	Merge(other Type, env TypeEnv) (Type, SubstMap, bool)
	Unify(loc Location, other Type, env TypeEnv) (SubstMap, bool)
	Subst(s SubstMap) Type
	Accept(inst Instantiator) Type
	Vars() VarSet

	// sealed
	typ()
}

// Instantiator replaces type-variables while a type is instantiated.
type Instantiator interface {
	// InstantiateVar returns the replacement for tv, or tv itself.
	InstantiateVar(tv *Var) Type
}

// Location is a position within a source file.
type Location struct {
	File   string
	Line   int
	Column int
}

// NoLocation is used where a position is not known.
var NoLocation = Location{}

func (l Location) IsKnown() bool { return l.Line > 0 }

func (l Location) String() string {
	if !l.IsKnown() {
		if l.File != "" {
			return l.File
		}
		return "<unknown>"
	}
	file := l.File
	if file == "" {
		file = "<input>"
	}
	if l.Column <= 0 {
		return file + ":" + strconv.Itoa(l.Line)
	}
	return file + ":" + strconv.Itoa(l.Line) + ":" + strconv.Itoa(l.Column)
}

func (t *Var) TypeName() string      { return "Var" }
func (t *Const) TypeName() string    { return "Const" }
func (t *App) TypeName() string      { return "App" }
func (t *Arrow) TypeName() string    { return "Arrow" }
func (t *Record) TypeName() string   { return "Record" }
func (t *Tuple) TypeName() string    { return "Tuple" }
func (t *Variant) TypeName() string  { return "Variant" }
func (t *EnumType) TypeName() string { return "Enum" }
func (t TypeMap) TypeName() string   { return "TypeMap" }
func (t TypeList) TypeName() string  { return "TypeList" }

func (*Var) typ()      {}
func (*Const) typ()    {}
func (*App) typ()      {}
func (*Arrow) typ()    {}
func (*Record) typ()   {}
func (*Tuple) typ()    {}
func (*Variant) typ()  {}
func (*EnumType) typ() {}
func (TypeMap) typ()   {}
func (TypeList) typ()  {}

// Type constant: `int` or `bool`
type Const struct {
	Name string
	// Kind of the constant. A nil kind is the kind of ordinary types.
	Kind Kind
}

// Type application: `list[int]`
type App struct {
	Const  Type
	Params []Type
}

// Function type: `(int, int) -> int`
type Arrow struct {
	Args   []Type
	Return Type
}

// Record type: `{a: int, b: bool}`
type Record struct {
	Fields TypeMap
}

// Tuple type: `(int, bool)`
type Tuple struct {
	Members TypeList
}

// Tagged variant-type: `[ok: int, err: string]`
type Variant struct {
	Options TypeMap
}

// EnumType is a closed set of tags over a base representation type. Each tag maps to its associated type.
type EnumType struct {
	Base Type
	Tags TypeMap
}

// Create an enum-type where every tag is associated with the base type.
func NewEnumType(base Type, tags ...string) *EnumType {
	b := NewTypeMapBuilder()
	for _, tag := range tags {
		b.Set(tag, base)
	}
	return &EnumType{Base: base, Tags: b.Build()}
}

func NewRecord(fields TypeMap) *Record         { return &Record{Fields: fields} }
func NewTuple(members ...Type) *Tuple          { return &Tuple{Members: NewTypeList(members...)} }
func NewVariant(options TypeMap) *Variant      { return &Variant{Options: options} }
func NewConst(name string) *Const              { return &Const{Name: name} }
func NewConstKind(name string, k Kind) *Const { return &Const{Name: name, Kind: k} }

func (t *Var) Subsume(loc Location, lower Type, env TypeEnv) (SubstMap, bool) {
	return subsume(t, lower)
}
func (t *Const) Subsume(loc Location, lower Type, env TypeEnv) (SubstMap, bool) {
	return subsume(t, lower)
}
func (t *App) Subsume(loc Location, lower Type, env TypeEnv) (SubstMap, bool) {
	return subsume(t, lower)
}
func (t *Arrow) Subsume(loc Location, lower Type, env TypeEnv) (SubstMap, bool) {
	return subsume(t, lower)
}
func (t *Record) Subsume(loc Location, lower Type, env TypeEnv) (SubstMap, bool) {
	return subsume(t, lower)
}
func (t *Tuple) Subsume(loc Location, lower Type, env TypeEnv) (SubstMap, bool) {
	return subsume(t, lower)
}
func (t *Variant) Subsume(loc Location, lower Type, env TypeEnv) (SubstMap, bool) {
	return subsume(t, lower)
}
func (t *EnumType) Subsume(loc Location, lower Type, env TypeEnv) (SubstMap, bool) {
	return subsume(t, lower)
}
func (t TypeMap) Subsume(loc Location, lower Type, env TypeEnv) (SubstMap, bool) {
	return subsume(t, lower)
}
func (t TypeList) Subsume(loc Location, lower Type, env TypeEnv) (SubstMap, bool) {
	return subsume(t, lower)
}

func (t *Var) Merge(other Type, env TypeEnv) (Type, SubstMap, bool)      { return merge(t, other) }
func (t *Const) Merge(other Type, env TypeEnv) (Type, SubstMap, bool)    { return merge(t, other) }
func (t *App) Merge(other Type, env TypeEnv) (Type, SubstMap, bool)      { return merge(t, other) }
func (t *Arrow) Merge(other Type, env TypeEnv) (Type, SubstMap, bool)    { return merge(t, other) }
func (t *Record) Merge(other Type, env TypeEnv) (Type, SubstMap, bool)   { return merge(t, other) }
func (t *Tuple) Merge(other Type, env TypeEnv) (Type, SubstMap, bool)    { return merge(t, other) }
func (t *Variant) Merge(other Type, env TypeEnv) (Type, SubstMap, bool)  { return merge(t, other) }
func (t *EnumType) Merge(other Type, env TypeEnv) (Type, SubstMap, bool) { return merge(t, other) }
func (t TypeMap) Merge(other Type, env TypeEnv) (Type, SubstMap, bool)   { return merge(t, other) }
func (t TypeList) Merge(other Type, env TypeEnv) (Type, SubstMap, bool)  { return merge(t, other) }

func (t *Var) Unify(loc Location, other Type, env TypeEnv) (SubstMap, bool)   { return unify(t, other) }
func (t *Const) Unify(loc Location, other Type, env TypeEnv) (SubstMap, bool) { return unify(t, other) }
func (t *App) Unify(loc Location, other Type, env TypeEnv) (SubstMap, bool)   { return unify(t, other) }
func (t *Arrow) Unify(loc Location, other Type, env TypeEnv) (SubstMap, bool) { return unify(t, other) }
func (t *Record) Unify(loc Location, other Type, env TypeEnv) (SubstMap, bool) {
	return unify(t, other)
}
func (t *Tuple) Unify(loc Location, other Type, env TypeEnv) (SubstMap, bool) { return unify(t, other) }
func (t *Variant) Unify(loc Location, other Type, env TypeEnv) (SubstMap, bool) {
	return unify(t, other)
}
func (t *EnumType) Unify(loc Location, other Type, env TypeEnv) (SubstMap, bool) {
	return unify(t, other)
}
func (t TypeMap) Unify(loc Location, other Type, env TypeEnv) (SubstMap, bool)  { return unify(t, other) }
func (t TypeList) Unify(loc Location, other Type, env TypeEnv) (SubstMap, bool) { return unify(t, other) }

func (t *Var) Subst(s SubstMap) Type      { return substType(t, s) }
func (t *Const) Subst(s SubstMap) Type    { return t }
func (t *App) Subst(s SubstMap) Type      { return substType(t, s) }
func (t *Arrow) Subst(s SubstMap) Type    { return substType(t, s) }
func (t *Record) Subst(s SubstMap) Type   { return substType(t, s) }
func (t *Tuple) Subst(s SubstMap) Type    { return substType(t, s) }
func (t *Variant) Subst(s SubstMap) Type  { return substType(t, s) }
func (t *EnumType) Subst(s SubstMap) Type { return substType(t, s) }
func (t TypeMap) Subst(s SubstMap) Type   { return t.Apply(s) }
func (t TypeList) Subst(s SubstMap) Type  { return t.Apply(s) }

func (t *Var) Accept(inst Instantiator) Type      { return inst.InstantiateVar(t) }
func (t *Const) Accept(inst Instantiator) Type    { return t }
func (t *App) Accept(inst Instantiator) Type      { return rewrite(t, inst.InstantiateVar) }
func (t *Arrow) Accept(inst Instantiator) Type    { return rewrite(t, inst.InstantiateVar) }
func (t *Record) Accept(inst Instantiator) Type   { return rewrite(t, inst.InstantiateVar) }
func (t *Tuple) Accept(inst Instantiator) Type    { return rewrite(t, inst.InstantiateVar) }
func (t *Variant) Accept(inst Instantiator) Type  { return rewrite(t, inst.InstantiateVar) }
func (t *EnumType) Accept(inst Instantiator) Type { return rewrite(t, inst.InstantiateVar) }
func (t TypeMap) Accept(inst Instantiator) Type   { return t.Instantiate(inst) }
func (t TypeList) Accept(inst Instantiator) Type  { return t.Instantiate(inst) }

func (t *Var) Vars() VarSet      { return EmptyVarSet.Add(t) }
func (t *Const) Vars() VarSet    { return EmptyVarSet }
func (t *App) Vars() VarSet      { return collectVars(t) }
func (t *Arrow) Vars() VarSet    { return collectVars(t) }
func (t *Record) Vars() VarSet   { return collectVars(t) }
func (t *Tuple) Vars() VarSet    { return collectVars(t) }
func (t *Variant) Vars() VarSet  { return collectVars(t) }
func (t *EnumType) Vars() VarSet { return collectVars(t) }
func (t TypeMap) Vars() VarSet   { return collectVars(t) }
func (t TypeList) Vars() VarSet  { return collectVars(t) }

func substType(t Type, s SubstMap) Type {
	if s.IsEmpty() {
		return t
	}
	return rewrite(t, s.lookupOrSelf)
}

// Rewrite every type-variable in t with f. Unchanged types are shared with t.
func rewrite(t Type, f func(*Var) Type) Type {
	switch t := t.(type) {
	case *Var:
		return f(t)
	case *Const:
		return t
	case *App:
		c := rewrite(t.Const, f)
		params, changed := rewriteTypes(t.Params, f)
		if !changed && c == t.Const {
			return t
		}
		return &App{Const: c, Params: params}
	case *Arrow:
		args, changed := rewriteTypes(t.Args, f)
		ret := rewrite(t.Return, f)
		if !changed && ret == t.Return {
			return t
		}
		return &Arrow{Args: args, Return: ret}
	case *Record:
		fields := t.Fields.rewrite(f)
		if fields.Same(t.Fields) {
			return t
		}
		return &Record{Fields: fields}
	case *Tuple:
		members := t.Members.rewrite(f)
		if members.Same(t.Members) {
			return t
		}
		return &Tuple{Members: members}
	case *Variant:
		options := t.Options.rewrite(f)
		if options.Same(t.Options) {
			return t
		}
		return &Variant{Options: options}
	case *EnumType:
		base := rewrite(t.Base, f)
		tags := t.Tags.rewrite(f)
		if base == t.Base && tags.Same(t.Tags) {
			return t
		}
		return &EnumType{Base: base, Tags: tags}
	case TypeMap:
		return t.rewrite(f)
	case TypeList:
		return t.rewrite(f)
	case nil:
		return nil
	}
	panic("unexpected type " + t.TypeName())
}

func rewriteTypes(ts []Type, f func(*Var) Type) ([]Type, bool) {
	var next []Type
	for i, t := range ts {
		r := rewrite(t, f)
		if r == t {
			continue
		}
		if next == nil {
			next = make([]Type, len(ts))
			copy(next, ts)
		}
		next[i] = r
	}
	if next == nil {
		return ts, false
	}
	return next, true
}

func collectVars(t Type) VarSet {
	b := newVarSetBuilder()
	visitVars(b, t)
	return b.Build()
}

func visitVars(b varSetBuilder, t Type) {
	switch t := t.(type) {
	case *Var:
		b.Add(t)
	case *App:
		visitVars(b, t.Const)
		for _, p := range t.Params {
			visitVars(b, p)
		}
	case *Arrow:
		for _, arg := range t.Args {
			visitVars(b, arg)
		}
		visitVars(b, t.Return)
	case *Record:
		visitVars(b, t.Fields)
	case *Tuple:
		visitVars(b, t.Members)
	case *Variant:
		visitVars(b, t.Options)
	case *EnumType:
		visitVars(b, t.Base)
		visitVars(b, t.Tags)
	case TypeMap:
		t.Range(func(label string, t Type) bool {
			visitVars(b, t)
			return true
		})
	case TypeList:
		t.Range(func(i int, t Type) bool {
			visitVars(b, t)
			return true
		})
	}
}
