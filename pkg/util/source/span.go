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

import "fmt"

// Span represents a contiguous slice of an original source string.  Instead of
// representing this as a string slice, it retains the physical indices into
// the original text, along with the line/column position of its first
// character.  The position is what constraint namespaces are labeled with, so
// it travels with the span rather than being recomputed on demand.
type Span struct {
	// The first character of this span in the original string.
	start int
	// One past the final character of this span in the original string.
	end int
	// Line on which this span begins (counting from 1).
	line int
	// Column at which this span begins (counting from 1).
	column int
}

// NewSpan constructs a new span whilst checking the internal invariants are
// maintained.  The resulting span carries no line/column position; use
// NewSpanAt (or File.Span) when one is known.
func NewSpan(start int, end int) Span {
	return NewSpanAt(start, end, 0, 0)
}

// NewSpanAt constructs a new span at a known line/column position.
func NewSpanAt(start int, end int, line int, column int) Span {
	if start > end {
		panic("invalid span")
	}

	return Span{start, end, line, column}
}

// Start returns the starting index of this span in the original string.
func (p Span) Start() int {
	return p.start
}

// End returns one past the last index of this span in the original string.
func (p Span) End() int {
	return p.end
}

// Length returns the number of characters covered by this span in the
// original string.
func (p Span) Length() int {
	return p.end - p.start
}

// Line returns the line on which this span begins, counting from 1, or 0 if
// the span carries no position.
func (p Span) Line() int {
	return p.line
}

// Column returns the column at which this span begins, counting from 1, or 0
// if the span carries no position.
func (p Span) Column() int {
	return p.column
}

// String returns the position of this span in "line:column" form.
func (p Span) String() string {
	return fmt.Sprintf("%d:%d", p.line, p.column)
}
