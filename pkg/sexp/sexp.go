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
package sexp

import "strings"

// SExp is an S-Expression is either a List of zero or more S-Expressions, or
// a Symbol.
type SExp interface {
	// String generates a string representation.
	String() string
}

// List represents a list of zero or more S-Expressions.
type List struct{ Elements []SExp }

// NewList constructs a new list from a given array of S-Expressions.
func NewList(elements []SExp) *List {
	return &List{elements}
}

// Len gets the number of elements in this list.
func (l *List) Len() int {
	return len(l.Elements)
}

// Get the ith element of this list
func (l *List) Get(i int) SExp {
	return l.Elements[i]
}

// MatchSymbols matches a list which starts with at least n symbols, of which
// the first m match the given strings.
func (l *List) MatchSymbols(n int, symbols ...string) bool {
	if len(l.Elements) < n || len(symbols) > n {
		return false
	}

	for i := 0; i < len(symbols); i++ {
		switch ith := l.Elements[i].(type) {
		case *Symbol:
			if ith.Value != symbols[i] {
				return false
			}
		default:
			return false
		}
	}

	return true
}

func (l *List) String() string {
	var sb strings.Builder
	//
	sb.WriteString("(")
	//
	for i, e := range l.Elements {
		if i != 0 {
			sb.WriteString(" ")
		}

		sb.WriteString(e.String())
	}
	//
	sb.WriteString(")")
	//
	return sb.String()
}

// Symbol represents a terminating symbol.
type Symbol struct{ Value string }

// NewSymbol constructs a new symbol from a given string.
func NewSymbol(value string) *Symbol {
	return &Symbol{value}
}

func (s *Symbol) String() string {
	return s.Value
}
