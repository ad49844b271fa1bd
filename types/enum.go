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

// Check if the enum-type contains a tag.
func (t *EnumType) HasTag(tag string) bool {
	_, ok := t.Tags.Get(tag)
	return ok
}

// MergeEnum computes the union of the tags of t and other. The base types must unify, and the
// associated types of shared tags must unify; t is unified against other.
func (t *EnumType) MergeEnum(other *EnumType, env TypeEnv) (*EnumType, SubstMap, bool) {
	return mergeEnums(t, other)
}

// SubsumeEnum checks if t contains at least the tags of lower, over a unifiable base type.
func (t *EnumType) SubsumeEnum(loc Location, lower *EnumType, env TypeEnv) (SubstMap, bool) {
	return subsumeEnums(t, lower)
}
