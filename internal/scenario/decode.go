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

package scenario

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/wdamron/rows/constraint"
	"github.com/wdamron/rows/types"
	"gopkg.in/yaml.v3"
)

// Allocates type-variables for names used within scenario steps.
type varAllocator interface {
	NewVar(name string) *types.Var
	NewGenericVar(name string) *types.Var
}

// decoder converts YAML nodes into types and constraints. Names of type-variables are
// resolved to the same type-variable for the lifetime of the decoder.
type decoder struct {
	file    string
	alloc   varAllocator
	vars    map[string]*types.Var
	generic map[string]*types.Var
	consts  map[string]*types.Const
}

func newDecoder(file string, alloc varAllocator) *decoder {
	return &decoder{
		file:    file,
		alloc:   alloc,
		vars:    make(map[string]*types.Var),
		generic: make(map[string]*types.Var),
		consts:  make(map[string]*types.Const),
	}
}

func (d *decoder) loc(n *yaml.Node) types.Location {
	return types.Location{File: d.file, Line: n.Line, Column: n.Column}
}

func (d *decoder) errorf(n *yaml.Node, format string, args ...interface{}) error {
	return fmt.Errorf("%v: %s", d.loc(n), fmt.Sprintf(format, args...))
}

// Look up or create the type-variable with the given name. Names starting with `'` are generic.
func (d *decoder) variable(name string) *types.Var {
	if strings.HasPrefix(name, "'") {
		name = name[1:]
		if tv, ok := d.generic[name]; ok {
			return tv
		}
		tv := d.alloc.NewGenericVar(name)
		d.generic[name] = tv
		return tv
	}
	if tv, ok := d.vars[name]; ok {
		return tv
	}
	tv := d.alloc.NewVar(name)
	d.vars[name] = tv
	return tv
}

// Lookup returns the type-variable with the given name, if it has been used.
func (d *decoder) lookup(name string) (*types.Var, bool) {
	if strings.HasPrefix(name, "'") {
		tv, ok := d.generic[name[1:]]
		return tv, ok
	}
	tv, ok := d.vars[name]
	return tv, ok
}

func isVarName(name string) bool {
	if strings.HasPrefix(name, "'") {
		return len(name) > 1
	}
	for _, r := range name {
		return unicode.IsUpper(r)
	}
	return false
}

// Get the fields of a mapping node, in order.
func (d *decoder) fields(n *yaml.Node) ([]string, map[string]*yaml.Node, error) {
	n = resolveAlias(n)
	if n.Kind != yaml.MappingNode {
		return nil, nil, d.errorf(n, "expected a mapping")
	}
	keys := make([]string, 0, len(n.Content)/2)
	m := make(map[string]*yaml.Node, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		k := n.Content[i]
		if _, dup := m[k.Value]; dup {
			return nil, nil, d.errorf(k, "duplicate key %q", k.Value)
		}
		keys = append(keys, k.Value)
		m[k.Value] = n.Content[i+1]
	}
	return keys, m, nil
}

func (d *decoder) field(n *yaml.Node, m map[string]*yaml.Node, key string) (*yaml.Node, error) {
	v, ok := m[key]
	if !ok {
		return nil, d.errorf(n, "missing %q", key)
	}
	return v, nil
}

func (d *decoder) scalar(n *yaml.Node) (string, error) {
	n = resolveAlias(n)
	if n.Kind != yaml.ScalarNode {
		return "", d.errorf(n, "expected a scalar")
	}
	return n.Value, nil
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

// Decode a type:
//
//	int                          constant
//	T                            type-variable
//	'a                           generic type-variable
//	{record: {a: int}}           record
//	{tuple: [int, bool]}         tuple
//	{variant: {ok: int}}         variant
//	{enum: {base: int, tags: [A, B]}}
//	{arrow: {args: [int], return: bool}}
//	{app: {con: list, params: [int]}}
//	{app: {con: list, kind: unary, params: [int]}}
//	{list: [int, bool]}          ordered types
//	{map: {a: int}}              labeled types
func (d *decoder) typeOf(n *yaml.Node) (types.Type, error) {
	n = resolveAlias(n)
	switch n.Kind {
	case yaml.ScalarNode:
		if n.Value == "" {
			return nil, d.errorf(n, "empty type")
		}
		if isVarName(n.Value) {
			return d.variable(n.Value), nil
		}
		// constants are shared, so that unchanged types are identical:
		c, ok := d.consts[n.Value]
		if !ok {
			c = types.NewConst(n.Value)
			d.consts[n.Value] = c
		}
		return c, nil
	case yaml.MappingNode:
		keys, m, err := d.fields(n)
		if err != nil {
			return nil, err
		}
		if len(keys) != 1 {
			return nil, d.errorf(n, "expected a single type constructor, found %d keys", len(keys))
		}
		return d.compound(keys[0], m[keys[0]])
	}
	return nil, d.errorf(n, "expected a type")
}

func (d *decoder) compound(key string, v *yaml.Node) (types.Type, error) {
	switch key {
	case "record":
		fields, err := d.typeMap(v)
		if err != nil {
			return nil, err
		}
		return types.NewRecord(fields), nil
	case "variant":
		options, err := d.typeMap(v)
		if err != nil {
			return nil, err
		}
		return types.NewVariant(options), nil
	case "map":
		return d.typeMap(v)
	case "tuple":
		members, err := d.typeSlice(v)
		if err != nil {
			return nil, err
		}
		return types.NewTuple(members...), nil
	case "list":
		members, err := d.typeSlice(v)
		if err != nil {
			return nil, err
		}
		return types.NewTypeList(members...), nil
	case "enum":
		return d.enum(v)
	case "arrow":
		_, m, err := d.fields(v)
		if err != nil {
			return nil, err
		}
		var args []types.Type
		if a, ok := m["args"]; ok {
			if args, err = d.typeSlice(a); err != nil {
				return nil, err
			}
		}
		r, err := d.field(v, m, "return")
		if err != nil {
			return nil, err
		}
		ret, err := d.typeOf(r)
		if err != nil {
			return nil, err
		}
		return &types.Arrow{Args: args, Return: ret}, nil
	case "app":
		_, m, err := d.fields(v)
		if err != nil {
			return nil, err
		}
		c, err := d.field(v, m, "con")
		if err != nil {
			return nil, err
		}
		con, err := d.typeOf(c)
		if err != nil {
			return nil, err
		}
		var params []types.Type
		if p, ok := m["params"]; ok {
			if params, err = d.typeSlice(p); err != nil {
				return nil, err
			}
		}
		app := &types.App{Const: con, Params: params}
		kn, ok := m["kind"]
		if !ok {
			return app, nil
		}
		// a kinded constructor must be applied to parameters of its parameter kind:
		name, err := d.scalar(kn)
		if err != nil {
			return nil, err
		}
		k, ok := types.LookupKind(name)
		if !ok {
			return nil, d.errorf(kn, "unknown kind %q", name)
		}
		cc, ok := con.(*types.Const)
		if !ok {
			return nil, d.errorf(c, "only constants may be kinded")
		}
		app.Const = types.NewConstKind(cc.Name, k)
		if _, err := types.KindOf(app); err != nil {
			return nil, d.errorf(v, "%v", err)
		}
		return app, nil
	}
	return nil, d.errorf(v, "unknown type constructor %q", key)
}

func (d *decoder) typeMap(n *yaml.Node) (types.TypeMap, error) {
	keys, m, err := d.fields(n)
	if err != nil {
		return types.EmptyTypeMap, err
	}
	b := types.NewTypeMapBuilder()
	for _, k := range keys {
		t, err := d.typeOf(m[k])
		if err != nil {
			return types.EmptyTypeMap, err
		}
		b.Set(k, t)
	}
	return b.Build(), nil
}

func (d *decoder) typeSlice(n *yaml.Node) ([]types.Type, error) {
	n = resolveAlias(n)
	if n.Kind != yaml.SequenceNode {
		return nil, d.errorf(n, "expected a sequence")
	}
	ts := make([]types.Type, len(n.Content))
	for i, c := range n.Content {
		t, err := d.typeOf(c)
		if err != nil {
			return nil, err
		}
		ts[i] = t
	}
	return ts, nil
}

// Decode an enum-type. Tags are either a sequence of names associated with the base type,
// or a mapping from names to associated types.
func (d *decoder) enum(n *yaml.Node) (*types.EnumType, error) {
	_, m, err := d.fields(n)
	if err != nil {
		return nil, err
	}
	b, err := d.field(n, m, "base")
	if err != nil {
		return nil, err
	}
	base, err := d.typeOf(b)
	if err != nil {
		return nil, err
	}
	tn, err := d.field(n, m, "tags")
	if err != nil {
		return nil, err
	}
	tn = resolveAlias(tn)
	if tn.Kind == yaml.MappingNode {
		tags, err := d.typeMap(tn)
		if err != nil {
			return nil, err
		}
		return &types.EnumType{Base: base, Tags: tags}, nil
	}
	if tn.Kind != yaml.SequenceNode {
		return nil, d.errorf(tn, "expected a sequence or mapping of tags")
	}
	tags := make([]string, len(tn.Content))
	for i, c := range tn.Content {
		if tags[i], err = d.scalar(c); err != nil {
			return nil, err
		}
	}
	return types.NewEnumType(base, tags...), nil
}

// Decode a constraint from its key and payload:
//
//	record: {a: int}
//	tuple: [int]
//	variant: {ok: int}
//	enum: {base: int, tags: [A]}
//	subsume: {record: {a: int}}
//	any: _
func (d *decoder) constraint(key string, v *yaml.Node) (constraint.Constraint, error) {
	switch key {
	case "any":
		return constraint.Unconstrained, nil
	case "record":
		fields, err := d.typeMap(v)
		if err != nil {
			return nil, err
		}
		return constraint.NewRecord(fields), nil
	case "variant":
		options, err := d.typeMap(v)
		if err != nil {
			return nil, err
		}
		return constraint.NewVariant(options), nil
	case "tuple":
		members, err := d.typeSlice(v)
		if err != nil {
			return nil, err
		}
		return constraint.NewTuple(members...), nil
	case "enum":
		t, err := d.enum(v)
		if err != nil {
			return nil, err
		}
		return constraint.NewEnum(t), nil
	case "subsume":
		t, err := d.typeOf(v)
		if err != nil {
			return nil, err
		}
		return constraint.NewSubsumption(t), nil
	}
	return nil, d.errorf(v, "unknown constraint %q", key)
}

// Decode a mapping with a single constraint key.
func (d *decoder) constraintNode(n *yaml.Node) (constraint.Constraint, error) {
	keys, m, err := d.fields(n)
	if err != nil {
		return nil, err
	}
	if len(keys) != 1 {
		return nil, d.errorf(n, "expected a single constraint, found %d keys", len(keys))
	}
	return d.constraint(keys[0], m[keys[0]])
}

// Decode the variable and constraint of a constrain step: `{var: T, record: {a: int}}`
func (d *decoder) bound(n *yaml.Node) (*types.Var, constraint.Constraint, error) {
	keys, m, err := d.fields(n)
	if err != nil {
		return nil, nil, err
	}
	vn, err := d.field(n, m, "var")
	if err != nil {
		return nil, nil, err
	}
	name, err := d.scalar(vn)
	if err != nil {
		return nil, nil, err
	}
	if !isVarName(name) {
		return nil, nil, d.errorf(vn, "%q is not a type-variable", name)
	}
	var c constraint.Constraint
	for _, k := range keys {
		if k == "var" {
			continue
		}
		if c != nil {
			return nil, nil, d.errorf(n, "expected a single constraint")
		}
		if c, err = d.constraint(k, m[k]); err != nil {
			return nil, nil, err
		}
	}
	if c == nil {
		return nil, nil, d.errorf(n, "missing constraint")
	}
	return d.variable(name), c, nil
}
