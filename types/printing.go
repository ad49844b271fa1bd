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
	"strings"
	"sync"
)

var printerPool = sync.Pool{
	New: func() interface{} {
		return &typePrinter{idNames: make(map[int]string, 16)}
	},
}

func newTypePrinter() *typePrinter { return printerPool.Get().(*typePrinter) }

func (p *typePrinter) Release() {
	for k := range p.idNames {
		delete(p.idNames, k)
	}
	p.sb.Reset()
	printerPool.Put(p)
}

// TypeString returns a string representation of a Type.
//
// Generic type-variables are named sequentially ('a, 'b, ...) in order of appearance; other
// type-variables are printed with their display names.
func TypeString(t Type) string {
	p := newTypePrinter()
	typeString(p, false, t)
	s := p.sb.String()
	p.Release()
	return s
}

// TypeStrings returns string representations of multiple types, sharing names for generic type-variables.
func TypeStrings(ts ...Type) []string {
	p := newTypePrinter()
	out := make([]string, len(ts))
	for i, t := range ts {
		typeString(p, false, t)
		out[i] = p.sb.String()
		p.sb.Reset()
	}
	p.Release()
	return out
}

type typePrinter struct {
	idNames map[int]string
	sb      strings.Builder
}

var _names [128]string

func init() {
	for i := range _names {
		_names[i] = getVarName(uint(i))
	}
}

func getVarName(i uint) string {
	if i < uint(len(_names)) && _names[i] != "" {
		return _names[i]
	}
	if i >= 26 {
		return "'" + string(byte(97+i%26)) + strconv.Itoa(int(i/26))
	}
	return "'" + string(byte(97+i%26))
}

func (p *typePrinter) nextName() string {
	return getVarName(uint(len(p.idNames)))
}

func typeString(p *typePrinter, simple bool, t Type) {
	switch t := t.(type) {
	case *Const:
		p.sb.WriteString(t.Name)

	case *Var:
		if !t.IsGeneric() {
			p.sb.WriteString(t.Name())
			return
		}
		if name, ok := p.idNames[t.Id()]; ok {
			p.sb.WriteString(name)
			return
		}
		name := p.nextName()
		p.idNames[t.Id()] = name
		p.sb.WriteString(name)

	case *App:
		typeString(p, true, t.Const)
		if len(t.Params) == 0 {
			return
		}
		p.sb.WriteByte('[')
		for i, param := range t.Params {
			if i > 0 {
				p.sb.WriteString(", ")
			}
			typeString(p, false, param)
		}
		p.sb.WriteByte(']')

	case *Arrow:
		if simple {
			p.sb.WriteByte('(')
		}
		if len(t.Args) == 1 {
			typeString(p, true, t.Args[0])
		} else {
			p.sb.WriteByte('(')
			for i, arg := range t.Args {
				if i > 0 {
					p.sb.WriteString(", ")
				}
				typeString(p, false, arg)
			}
			p.sb.WriteByte(')')
		}
		p.sb.WriteString(" -> ")
		typeString(p, false, t.Return)
		if simple {
			p.sb.WriteByte(')')
		}

	case *Record:
		p.sb.WriteByte('{')
		labelsString(p, t.Fields)
		p.sb.WriteByte('}')

	case *Variant:
		p.sb.WriteByte('[')
		labelsString(p, t.Options)
		p.sb.WriteByte(']')

	case *Tuple:
		p.sb.WriteByte('(')
		listString(p, t.Members)
		p.sb.WriteByte(')')

	case *EnumType:
		p.sb.WriteString("enum(")
		typeString(p, false, t.Base)
		p.sb.WriteString(")[")
		i := 0
		t.Tags.Range(func(tag string, assoc Type) bool {
			if i > 0 {
				p.sb.WriteString(", ")
			}
			p.sb.WriteString(tag)
			if assoc != t.Base {
				p.sb.WriteString(": ")
				typeString(p, false, assoc)
			}
			i++
			return true
		})
		p.sb.WriteByte(']')

	case TypeMap:
		p.sb.WriteByte('<')
		labelsString(p, t)
		p.sb.WriteByte('>')

	case TypeList:
		p.sb.WriteByte('<')
		listString(p, t)
		p.sb.WriteByte('>')

	case nil:
		p.sb.WriteString("<INVALID-TYPE>")
	}
}

func labelsString(p *typePrinter, m TypeMap) {
	i := 0
	m.Range(func(label string, t Type) bool {
		if i > 0 {
			p.sb.WriteString(", ")
		}
		p.sb.WriteString(label)
		p.sb.WriteString(": ")
		typeString(p, false, t)
		i++
		return true
	})
}

func listString(p *typePrinter, l TypeList) {
	l.Range(func(i int, t Type) bool {
		if i > 0 {
			p.sb.WriteString(", ")
		}
		typeString(p, false, t)
		return true
	})
}
