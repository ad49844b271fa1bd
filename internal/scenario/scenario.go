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

// Package scenario loads YAML documents describing sequences of constraint and unification steps,
// and runs them against a solver.
//
// A document names a scenario, lists its steps, and maps type-variables to the expected text of
// their resolved types:
//
//	name: record access
//	steps:
//	  - constrain: {var: T, record: {name: string}}
//	  - unify: {left: T, right: {record: {name: string, age: int}}}
//	expect:
//	  T: "{age: int, name: string}"
package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Document is a parsed scenario file.
type Document struct {
	Name   string            `yaml:"name"`
	Steps  []Step            `yaml:"steps"`
	Expect map[string]string `yaml:"expect,omitempty"`

	// File is the path the document was loaded from. It is used for locations within diagnostics.
	File string `yaml:"-"`
}

// Step is a single operation within a scenario. Exactly one of the operation nodes is set.
type Step struct {
	Constrain   yaml.Node `yaml:"constrain,omitempty"`
	Unify       yaml.Node `yaml:"unify,omitempty"`
	Declare     yaml.Node `yaml:"declare,omitempty"`
	Instantiate yaml.Node `yaml:"instantiate,omitempty"`

	// Fail marks a step which is expected to fail.
	Fail bool `yaml:"fail,omitempty"`
}

// Op returns the name and node of the step's operation.
func (s *Step) Op() (string, *yaml.Node, error) {
	var name string
	var node *yaml.Node
	for _, op := range []struct {
		name string
		node *yaml.Node
	}{
		{"constrain", &s.Constrain},
		{"unify", &s.Unify},
		{"declare", &s.Declare},
		{"instantiate", &s.Instantiate},
	} {
		if op.node.Kind == 0 {
			continue
		}
		if node != nil {
			return "", nil, fmt.Errorf("line %d: step has both %s and %s", op.node.Line, name, op.name)
		}
		name, node = op.name, op.node
	}
	if node == nil {
		return "", nil, fmt.Errorf("step has no operation")
	}
	return name, node, nil
}

// Load reads and parses a scenario file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse parses scenario content from bytes. The path is used for error messages and locations.
func Parse(data []byte, path string) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(doc.Steps) == 0 {
		return nil, fmt.Errorf("%s: no steps defined", path)
	}
	for i := range doc.Steps {
		if _, _, err := doc.Steps[i].Op(); err != nil {
			return nil, fmt.Errorf("%s: steps[%d]: %w", path, i, err)
		}
	}
	if doc.Name == "" {
		doc.Name = path
	}
	doc.File = path
	return &doc, nil
}

// ParseStep parses a single step, such as a line entered within an interactive shell:
//
//	unify: {left: T, right: int}
func ParseStep(data []byte) (Step, error) {
	var step Step
	if err := yaml.Unmarshal(data, &step); err != nil {
		return Step{}, fmt.Errorf("parsing step: %w", err)
	}
	if _, _, err := step.Op(); err != nil {
		return Step{}, err
	}
	return step, nil
}
