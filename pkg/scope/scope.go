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

// Package scope provides structured identifiers for the lexical scopes of a
// program under enforcement.  A scope is an immutable path of segments (file,
// function, nested call frames); qualifying a bare name against a scope
// yields a key which is unique across the whole program.  Two identically
// named locals in different functions therefore never collide.
package scope

import "strings"

// Segments are joined internally with the ASCII unit separator, which cannot
// occur inside an identifier.  This keeps the composite key collision-free
// without carrying a slice around; display strings are only ever produced at
// the constraint-namespace boundary via String.
const separator = "\x1f"

// Scope identifies one lexical scope as a path of nested segments.  The zero
// value is the empty (global) scope.  Scope is comparable and may be used as
// a map key.
type Scope struct {
	path string
}

// New constructs a scope from a given sequence of segments.
func New(segments ...string) Scope {
	var s Scope
	//
	for _, segment := range segments {
		s = s.Enter(segment)
	}
	//
	return s
}

// Enter returns the scope nested within this one under the given segment.
func (s Scope) Enter(segment string) Scope {
	if strings.Contains(segment, separator) {
		panic("malformed scope segment")
	}
	//
	if s.path == "" {
		return Scope{segment}
	}
	//
	return Scope{s.path + separator + segment}
}

// IsEmpty reports whether this is the empty (global) scope.
func (s Scope) IsEmpty() bool {
	return s.path == ""
}

// Qualify builds the symbol-table key for a bare name within this scope.
func (s Scope) Qualify(name string) Qualified {
	return Qualified{s, name}
}

// String returns a display form of this scope with segments joined by "/".
// This is intended for constraint-namespace labels and diagnostics only;
// never use it as a lookup key.
func (s Scope) String() string {
	return strings.ReplaceAll(s.path, separator, "/")
}

// Qualified is a scope-qualified name: the unique key under which a value is
// stored in the symbol table.  Qualified is comparable and is used directly
// as a map key.
type Qualified struct {
	Scope Scope
	Name  string
}

// String returns a display form of this qualified name.
func (q Qualified) String() string {
	if q.Scope.IsEmpty() {
		return q.Name
	}
	//
	return q.Scope.String() + "/" + q.Name
}
