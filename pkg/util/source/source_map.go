// Copyright The go-leo Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package source

// Map provides a mechanism for mapping terms of an AST back to the spans of
// the source file they were parsed from.  This is needed when reporting
// errors, in order to highlight the relevant line(s) of the original source.
type Map[T comparable] struct {
	mapping map[T]Span
	srcfile *File
}

// NewMap constructs an (initially empty) source map for a given file.  The
// intention is that this is populated during parsing.
func NewMap[T comparable](srcfile *File) *Map[T] {
	return &Map[T]{make(map[T]Span), srcfile}
}

// SourceFile returns the source file this map is over.
func (p *Map[T]) SourceFile() *File {
	return p.srcfile
}

// Put registers the span for a given node.
func (p *Map[T]) Put(node T, span Span) {
	p.mapping[node] = span
}

// Has checks whether a given node has a mapping in this source map.
func (p *Map[T]) Has(node T) bool {
	_, ok := p.mapping[node]
	return ok
}

// Get determines the span for a given node.  This will panic if the node is
// not present, which should not be possible provided the parser registers
// every node it constructs.
func (p *Map[T]) Get(node T) Span {
	if span, ok := p.mapping[node]; ok {
		return span
	}
	//
	panic("missing mapping for source node")
}

// SyntaxError constructs a syntax error for a given node contained within the
// source file managed by this map.
func (p *Map[T]) SyntaxError(node T, msg string) *SyntaxError {
	return p.srcfile.SyntaxError(p.Get(node), msg)
}
