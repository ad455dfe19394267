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
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leolang/go-leo/pkg/ast"
	"github.com/leolang/go-leo/pkg/util/source"
)

// Expressions print in the same surface syntax they parse from, so a
// parse/print round trip pins down the constructed tree.
func TestParseExpressionRoundTrip(t *testing.T) {
	inputs := []string{
		"x",
		"5",
		"5u8",
		"-3i16",
		"3field",
		"1group",
		"true",
		"false",
		"(+ a b)",
		"(- a 1)",
		"(* (+ a b) c)",
		"(/ a b)",
		"(** x 2u8)",
		"(! flag)",
		"(&& a b)",
		"(|| a b)",
		"(== a b)",
		"(>= a b)",
		"(> a b)",
		"(<= a b)",
		"(< a b)",
		"(if c a b)",
		"(array 1 2 3)",
		"(index xs 0u32)",
		"(new Point (x 1) (y 2))",
		"(member p x)",
		"(static Point origin)",
		"(call f 1 2)",
	}
	//
	for _, input := range inputs {
		expression := parseExpr(t, input)
		assert.Equal(t, input, expression.String())
	}
}

func TestParseLiteralClassification(t *testing.T) {
	assert.IsType(t, &ast.ImplicitLiteral{}, parseExpr(t, "42"))
	assert.IsType(t, &ast.IntegerLiteral{}, parseExpr(t, "42u32"))
	assert.IsType(t, &ast.FieldLiteral{}, parseExpr(t, "42field"))
	assert.IsType(t, &ast.GroupLiteral{}, parseExpr(t, "42group"))
	assert.IsType(t, &ast.BooleanLiteral{}, parseExpr(t, "true"))
	assert.IsType(t, &ast.AddressLiteral{}, parseExpr(t, "aleo1qqqqqq"))
	assert.IsType(t, &ast.Identifier{}, parseExpr(t, "x42"))
}

func TestParseIntegerSuffixes(t *testing.T) {
	literal := parseExpr(t, "7i64").(*ast.IntegerLiteral)
	//
	assert.Equal(t, ast.IntegerType{Width: 64, Signed: true}, literal.Type)
	assert.Equal(t, "7", literal.Text)
	// An unknown suffix is rejected outright.
	_, err := ParseExpression(source.NewFile("test", []byte("7u7")))
	assert.Error(t, err)
}

func TestParseSpansAttached(t *testing.T) {
	expression := parseExpr(t, "(+ ab 1)")
	//
	sum := expression.(*ast.Add)
	assert.Equal(t, 0, sum.Span().Start())
	assert.Equal(t, 3, sum.Left.Span().Start())
	assert.Equal(t, 2, sum.Left.Span().Length())
}

func TestParseFunctionDeclaration(t *testing.T) {
	declarations := parseDecls(t, `
		(function main ((a u8) (b u8)) (returns u8)
			(let c (+ a b))
			(return c))`)
	//
	require.Len(t, declarations, 1)
	//
	fn, ok := declarations[0].(*ast.Function)
	require.True(t, ok)
	assert.Equal(t, "main", fn.Name.Name)
	require.Len(t, fn.Parameters, 2)
	assert.Equal(t, "a", fn.Parameters[0].Name.Name)
	assert.Equal(t, ast.IntegerType{Width: 8, Signed: false}, fn.Parameters[0].Type)
	require.Len(t, fn.Returns, 1)
	require.Len(t, fn.Body, 2)
	//
	definition, ok := fn.Body[0].(*ast.Definition)
	require.True(t, ok)
	assert.Equal(t, "c", definition.Name.Name)
	assert.Nil(t, definition.Type)
	//
	_, ok = fn.Body[1].(*ast.Return)
	assert.True(t, ok)
}

func TestParseFunctionWithoutReturns(t *testing.T) {
	declarations := parseDecls(t, "(function check () (== 1 1))")
	//
	fn := declarations[0].(*ast.Function)
	assert.Empty(t, fn.Returns)
	require.Len(t, fn.Body, 1)
	//
	_, ok := fn.Body[0].(*ast.ExpressionStatement)
	assert.True(t, ok)
}

func TestParseTypedLet(t *testing.T) {
	declarations := parseDecls(t, "(function main () (let x field 3))")
	//
	fn := declarations[0].(*ast.Function)
	definition := fn.Body[0].(*ast.Definition)
	//
	assert.Equal(t, ast.FieldType{}, definition.Type)
	assert.IsType(t, &ast.ImplicitLiteral{}, definition.Value)
}

func TestParseCircuitDeclaration(t *testing.T) {
	declarations := parseDecls(t, `
		(circuit Point
			(var x u32)
			(var y u32)
			(function norm () (returns u32)
				(return (+ (* x x) (* y y))))
			(static origin () (returns u32)
				(return 0u32)))`)
	//
	require.Len(t, declarations, 1)
	//
	circuit, ok := declarations[0].(*ast.Circuit)
	require.True(t, ok)
	assert.Equal(t, "Point", circuit.Name.Name)
	require.Len(t, circuit.Members, 4)
	//
	assert.Equal(t, "x", circuit.Members[0].Variable.Name.Name)
	assert.Equal(t, ast.IntegerType{Width: 32, Signed: false}, circuit.Members[0].Variable.Type)
	//
	assert.Equal(t, "norm", circuit.Members[2].Function.Name.Name)
	assert.False(t, circuit.Members[2].Static)
	//
	assert.Equal(t, "origin", circuit.Members[3].Function.Name.Name)
	assert.True(t, circuit.Members[3].Static)
}

func TestParseArrayType(t *testing.T) {
	declarations := parseDecls(t, "(function main ((xs (array u8 3))) (return))")
	//
	fn := declarations[0].(*ast.Function)
	assert.Equal(t, ast.ArrayType{Element: ast.IntegerType{Width: 8, Signed: false}, Size: 3},
		fn.Parameters[0].Type)
}

func TestParseCircuitType(t *testing.T) {
	declarations := parseDecls(t, "(function main ((p Point)) (return))")
	//
	fn := declarations[0].(*ast.Function)
	assert.Equal(t, ast.CircuitType{Name: "Point"}, fn.Parameters[0].Type)
}

func TestParseErrors(t *testing.T) {
	inputs := []string{
		"(badop 1 2)",
		"(+ 1)",
		"(if c a)",
		"(let x)",
		"(function)",
		"(circuit Point (frob x))",
		"(function main ((xs (array u8 many))) (return))",
	}
	//
	for _, input := range inputs {
		_, err := ParseFile(source.NewFile("test", []byte(input)))
		assert.Error(t, err, "expected parse failure for %q", input)
	}
}

func parseExpr(t *testing.T, input string) ast.Expression {
	t.Helper()
	//
	expression, err := ParseExpression(source.NewFile("test", []byte(input)))
	if err != nil {
		t.Fatalf("unexpected parse error for %q: %s", input, err)
	}
	//
	return expression
}

func parseDecls(t *testing.T, input string) []ast.Declaration {
	t.Helper()
	//
	declarations, err := ParseFile(source.NewFile("test", []byte(input)))
	if err != nil {
		t.Fatalf("unexpected parse error for %q: %s", input, err)
	}
	//
	return declarations
}
