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

import (
	"testing"

	"github.com/leolang/go-leo/pkg/util/assert"
	"github.com/leolang/go-leo/pkg/util/source"
)

func TestParseSymbol(t *testing.T) {
	term := parseString(t, "hello")
	//
	symbol, ok := term.(*Symbol)
	assert.True(t, ok)
	assert.Equal(t, "hello", symbol.Value)
}

func TestParseList(t *testing.T) {
	term := parseString(t, "(+ 1 2)")
	//
	list, ok := term.(*List)
	assert.True(t, ok)
	assert.Equal(t, 3, list.Len())
	assert.True(t, list.MatchSymbols(1, "+"))
	assert.Equal(t, "(+ 1 2)", list.String())
}

func TestParseNested(t *testing.T) {
	term := parseString(t, "(if (== x 1) 2u8 3u8)")
	//
	list, ok := term.(*List)
	assert.True(t, ok)
	assert.Equal(t, 4, list.Len())
	//
	condition, ok := list.Get(1).(*List)
	assert.True(t, ok)
	assert.True(t, condition.MatchSymbols(1, "=="))
}

func TestParseComment(t *testing.T) {
	srcfile := source.NewFile("test", []byte("; leading comment\n(array 1 2) ; trailing"))
	//
	terms, _, err := ParseAll(srcfile)
	assert.True(t, err == nil)
	assert.Equal(t, 1, len(terms))
	//
	list, ok := terms[0].(*List)
	assert.True(t, ok)
	assert.Equal(t, 3, list.Len())
}

func TestParseSpans(t *testing.T) {
	srcfile := source.NewFile("test", []byte("  (+ ab 1)"))
	//
	term, srcmap, err := Parse(srcfile)
	assert.True(t, err == nil)
	//
	list := term.(*List)
	// Whole list starts after leading whitespace.
	assert.Equal(t, 2, srcmap.Get(list).Start())
	// Second element covers "ab".
	assert.Equal(t, 5, srcmap.Get(list.Get(1)).Start())
	assert.Equal(t, 2, srcmap.Get(list.Get(1)).Length())
}

func TestParseAllSequence(t *testing.T) {
	srcfile := source.NewFile("test", []byte("(a) (b c) d"))
	//
	terms, _, err := ParseAll(srcfile)
	assert.True(t, err == nil)
	assert.Equal(t, 3, len(terms))
}

func TestParseUnclosedList(t *testing.T) {
	srcfile := source.NewFile("test", []byte("(+ 1 2"))
	//
	_, _, err := Parse(srcfile)
	assert.True(t, err != nil)
}

func TestParseDanglingParenthesis(t *testing.T) {
	srcfile := source.NewFile("test", []byte(")"))
	//
	_, _, err := Parse(srcfile)
	assert.True(t, err != nil)
}

func parseString(t *testing.T, input string) SExp {
	t.Helper()
	//
	term, _, err := Parse(source.NewFile("test", []byte(input)))
	if err != nil {
		t.Fatalf("unexpected parse error: %s", err)
	}
	//
	return term
}
