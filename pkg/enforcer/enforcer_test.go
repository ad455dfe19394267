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
package enforcer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leolang/go-leo/pkg/ast"
	"github.com/leolang/go-leo/pkg/diag"
	"github.com/leolang/go-leo/pkg/parser"
	"github.com/leolang/go-leo/pkg/r1cs"
	"github.com/leolang/go-leo/pkg/scope"
	"github.com/leolang/go-leo/pkg/util/source"
	"github.com/leolang/go-leo/pkg/value"
)

func TestMainReturnsSum(t *testing.T) {
	result, cs := enforce(t, `
		(function main () (returns u8)
			(return (+ 2u8 3)))`)
	//
	assert.Equal(t, "5u8", result.String())
	assert.Equal(t, uint(1), cs.NumConstraints())
}

func TestMainReturnsNothing(t *testing.T) {
	result, cs := enforce(t, `
		(function main ()
			(== 1u8 1u8))`)
	//
	returned, ok := result.(*value.Return)
	require.True(t, ok)
	assert.Empty(t, returned.Values)
	// The expression statement still enforced its comparison (an equality
	// emits its is-zero constraint pair).
	assert.Equal(t, uint(2), cs.NumConstraints())
}

func TestMainReturnsAggregate(t *testing.T) {
	result, _ := enforce(t, `
		(function main () (returns u8 bool)
			(return 5u8 true))`)
	//
	returned, ok := result.(*value.Return)
	require.True(t, ok)
	require.Len(t, returned.Values, 2)
	assert.Equal(t, "5u8", returned.Values[0].String())
	assert.Equal(t, "true", returned.Values[1].String())
}

func TestLetBindingShadowsFileScope(t *testing.T) {
	// The local binding of x wins over the file-scope declaration.
	result, _ := enforce(t, `
		(function x () (returns u8) (return 1u8))
		(function main () (returns u8)
			(let x 2u8)
			(return x))`)
	//
	assert.Equal(t, "2u8", result.String())
}

func TestLiteralInferenceFromSibling(t *testing.T) {
	result, _ := enforce(t, `
		(function main () (returns u16)
			(let x 5u16)
			(return (+ x 1)))`)
	//
	assert.Equal(t, "6u16", result.String())
}

func TestBoundIdentifierPlusLiteral(t *testing.T) {
	result, _ := enforce(t, `
		(function main () (returns u8)
			(let x 5u8)
			(return (+ x 3)))`)
	//
	assert.Equal(t, "8u8", result.String())
}

func TestComparisonIsTypeAgnostic(t *testing.T) {
	// The boolean expectation on the comparison must not leak into its
	// operands; the literal 3 infers field from its sibling instead.
	result, _ := enforce(t, `
		(function main () (returns bool)
			(return (== 3field 3)))`)
	//
	assert.Equal(t, "true", result.String())
}

func TestConditionalExpression(t *testing.T) {
	result, _ := enforce(t, `
		(function main () (returns u8)
			(return (if (< 1u8 2u8) 10 20)))`)
	//
	assert.Equal(t, "10u8", result.String())
}

func TestFunctionCallNormalization(t *testing.T) {
	result, cs := enforce(t, `
		(function double ((x u8)) (returns u8)
			(return (+ x x)))
		(function main () (returns u8)
			(return (+ (call double 2u8) (call double 3u8))))`)
	//
	assert.Equal(t, "10u8", result.String())
	// Two call sites of one function must never collide in the witness.
	assertDistinctNames(t, cs)
	//
	sites := 0
	for _, name := range cs.VariableNames() {
		if strings.Contains(name, "function call double") {
			sites++
		}
	}
	//
	assert.True(t, sites > 0, "expected call-site namespaces in witness names")
}

func TestFunctionArgumentTypeDrivesLiterals(t *testing.T) {
	result, _ := enforce(t, `
		(function id ((x u64)) (returns u64) (return x))
		(function main () (returns u64)
			(return (call id 7)))`)
	//
	assert.Equal(t, "7u64", result.String())
}

func TestCallWithoutReturnValue(t *testing.T) {
	_, _, err := tryEnforce(t, `
		(function noop () 1u8)
		(function main () (returns u8)
			(return (call noop)))`)
	//
	assertRootKind(t, err, diag.NoReturnValue)
}

func TestCallNonFunction(t *testing.T) {
	_, _, err := tryEnforce(t, `
		(function main () (returns u8)
			(let f 1u8)
			(return (call f)))`)
	//
	assertRootKind(t, err, diag.NotCallable)
}

func TestCallArityMismatch(t *testing.T) {
	_, _, err := tryEnforce(t, `
		(function id ((x u8)) (returns u8) (return x))
		(function main () (returns u8)
			(return (call id 1u8 2u8)))`)
	//
	assertRootKind(t, err, diag.InvalidOperation)
}

func TestReturnArityMismatch(t *testing.T) {
	_, _, err := tryEnforce(t, `
		(function main () (returns u8)
			(return 1u8 2u8))`)
	//
	assertRootKind(t, err, diag.TypeMismatch)
}

func TestUndefinedIdentifier(t *testing.T) {
	_, _, err := tryEnforce(t, `
		(function main () (returns u8)
			(return y))`)
	//
	assertRootKind(t, err, diag.UndefinedIdentifier)
}

func TestMissingMainFunction(t *testing.T) {
	_, _, err := tryEnforce(t, `
		(function helper () (returns u8) (return 1u8))`)
	//
	assertRootKind(t, err, diag.UndefinedIdentifier)
}

func TestMainRequiresNoArguments(t *testing.T) {
	_, _, err := tryEnforce(t, `
		(function main ((x u8)) (returns u8)
			(return x))`)
	//
	assertRootKind(t, err, diag.InvalidOperation)
}

func TestDivisionByZero(t *testing.T) {
	_, _, err := tryEnforce(t, `
		(function main () (returns u8)
			(return (/ 1u8 0u8)))`)
	//
	assertRootKind(t, err, diag.InvalidOperation)
}

func TestArrayIndexing(t *testing.T) {
	result, _ := enforce(t, `
		(function main () (returns u8)
			(let xs (array 1 2 3))
			(return (index xs 1u32)))`)
	//
	assert.Equal(t, "2u8", result.String())
}

func TestArrayElementUnification(t *testing.T) {
	// One concrete element settles its unresolved siblings.
	result, _ := enforce(t, `
		(function main () (returns u16)
			(let xs (array 1 2u16 3))
			(return (index xs 2u32)))`)
	//
	assert.Equal(t, "3u16", result.String())
}

func TestArraySizeMismatch(t *testing.T) {
	_, _, err := tryEnforce(t, `
		(function main () (returns u8)
			(let xs (array u8 2) (array 1 2 3))
			(return 0u8))`)
	//
	assertRootKind(t, err, diag.TypeMismatch)
}

func TestArrayIndexOutOfBounds(t *testing.T) {
	_, _, err := tryEnforce(t, `
		(function main () (returns u8)
			(let xs (array 1 2 3))
			(return (index xs 3u32)))`)
	//
	assertRootKind(t, err, diag.InvalidOperation)
}

func TestCircuitConstruction(t *testing.T) {
	result, _ := enforce(t, `
		(circuit Point
			(var x u8)
			(var y u8)
			(static one () (returns u8) (return 1u8)))
		(function main () (returns u8)
			(let p (new Point (x 2) (y 3)))
			(return (+ (member p x) (call (static Point one)))))`)
	//
	assert.Equal(t, "3u8", result.String())
}

func TestCircuitMissingMember(t *testing.T) {
	_, _, err := tryEnforce(t, `
		(circuit Point (var x u8) (var y u8))
		(function main () (returns u8)
			(let p (new Point (x 2)))
			(return 0u8))`)
	//
	assertRootKind(t, err, diag.UndefinedIdentifier)
}

func TestCircuitUnknownInitialiser(t *testing.T) {
	_, _, err := tryEnforce(t, `
		(circuit Point (var x u8))
		(function main () (returns u8)
			(let p (new Point (x 2) (z 3)))
			(return 0u8))`)
	//
	assertRootKind(t, err, diag.UndefinedIdentifier)
}

func TestCircuitMemberTypeEnforced(t *testing.T) {
	_, _, err := tryEnforce(t, `
		(circuit Point (var x u8))
		(function main () (returns u8)
			(let p (new Point (x 5field)))
			(return 0u8))`)
	//
	assertRootKind(t, err, diag.TypeMismatch)
}

// ============================================================================
// Identifier resolution
// ============================================================================

func TestIdentifierScopePriority(t *testing.T) {
	var (
		p             = NewProgram("test")
		fileScope     = p.FileScope()
		functionScope = fileScope.Enter("main")
		span          = source.NewSpanAt(0, 1, 1, 1)
	)
	//
	p.store(scope.New().Qualify("v"), mustU8(t, "1"))
	p.store(fileScope.Qualify("v"), mustU8(t, "2"))
	p.store(functionScope.Qualify("v"), mustU8(t, "3"))
	// Innermost binding wins.
	v, err := p.evaluateIdentifier(fileScope, functionScope, nil, ast.NewIdentifier("v", span))
	require.NoError(t, err)
	assert.Equal(t, "3u8", v.String())
	// File scope next.
	v, err = p.evaluateIdentifier(fileScope, fileScope.Enter("other"), nil, ast.NewIdentifier("v", span))
	require.NoError(t, err)
	assert.Equal(t, "2u8", v.String())
	// Imported bare names last.
	p.store(scope.New().Qualify("g"), mustU8(t, "9"))
	v, err = p.evaluateIdentifier(fileScope, functionScope, nil, ast.NewIdentifier("g", span))
	require.NoError(t, err)
	assert.Equal(t, "9u8", v.String())
}

func TestIdentifierAddressFallback(t *testing.T) {
	var (
		p       = NewProgram("test")
		fs      = p.FileScope()
		span    = source.NewSpanAt(0, 1, 1, 1)
		literal = "aleo1" + strings.Repeat("q", 58)
	)
	// An unbound name read under an address expectation becomes an address.
	v, err := p.evaluateIdentifier(fs, fs.Enter("main"), []ast.Type{ast.AddressType{}}, ast.NewIdentifier(literal, span))
	require.NoError(t, err)
	assert.Equal(t, literal, v.String())
	// Without the expectation it stays undefined.
	_, err = p.evaluateIdentifier(fs, fs.Enter("main"), nil, ast.NewIdentifier(literal, span))
	assertRootKind(t, err, diag.UndefinedIdentifier)
}

// ============================================================================
// Helpers
// ============================================================================

func enforce(t *testing.T, src string) (value.ConstrainedValue, *r1cs.System) {
	t.Helper()
	//
	result, cs, err := tryEnforce(t, src)
	require.NoError(t, err)
	//
	return result, cs
}

func tryEnforce(t *testing.T, src string) (value.ConstrainedValue, *r1cs.System, error) {
	t.Helper()
	//
	declarations, errSyntax := parser.ParseFile(source.NewFile("test", []byte(src)))
	if errSyntax != nil {
		t.Fatalf("unexpected parse error: %s", errSyntax)
	}
	//
	program := NewProgram("test")
	program.RegisterDeclarations(declarations)
	//
	cs := r1cs.NewSystem()
	result, err := program.EnforceMain(cs)
	//
	return result, cs, err
}

func mustU8(t *testing.T, text string) *value.Integer {
	t.Helper()
	//
	v, err := value.NewInteger(ast.IntegerType{Width: 8, Signed: false}, text, source.Span{})
	require.NoError(t, err)
	//
	return v
}

func assertRootKind(t *testing.T, err error, kind diag.Kind) {
	t.Helper()
	//
	require.Error(t, err)
	//
	actual, ok := diag.RootKindOf(err)
	require.True(t, ok, "expected structured error, got %v", err)
	assert.Equal(t, kind, actual)
}

func assertDistinctNames(t *testing.T, cs *r1cs.System) {
	t.Helper()
	//
	seen := make(map[string]bool)
	//
	for _, name := range cs.VariableNames() {
		if seen[name] {
			t.Errorf("duplicate witness name %q", name)
		}
		//
		seen[name] = true
	}
}
