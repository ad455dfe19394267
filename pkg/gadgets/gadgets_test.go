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
package gadgets

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leolang/go-leo/pkg/ast"
	"github.com/leolang/go-leo/pkg/diag"
	"github.com/leolang/go-leo/pkg/r1cs"
	"github.com/leolang/go-leo/pkg/util/source"
	"github.com/leolang/go-leo/pkg/value"
)

var (
	span = source.NewSpanAt(0, 1, 1, 1)
	u8   = ast.IntegerType{Width: 8, Signed: false}
)

func TestAddIntegers(t *testing.T) {
	cs := r1cs.NewSystem()
	//
	out, err := Add(cs, u8val(t, "2"), u8val(t, "3"), span)
	require.NoError(t, err)
	assert.Equal(t, "5u8", out.String())
	assert.Equal(t, uint(1), cs.NumConstraints())
	assertAllSatisfied(t, cs)
}

func TestAddOverflow(t *testing.T) {
	cs := r1cs.NewSystem()
	//
	_, err := Add(cs, u8val(t, "200"), u8val(t, "100"), span)
	assertKind(t, err, diag.InvalidOperation)
}

func TestAddFields(t *testing.T) {
	cs := r1cs.NewSystem()
	//
	out, err := Add(cs, fieldVal(t, "2"), fieldVal(t, "3"), span)
	require.NoError(t, err)
	assert.Equal(t, "5", out.String())
	assertAllSatisfied(t, cs)
}

func TestAddRejectsBooleans(t *testing.T) {
	cs := r1cs.NewSystem()
	//
	_, err := Add(cs, &value.Bool{Value: true}, &value.Bool{Value: false}, span)
	assertKind(t, err, diag.InvalidOperation)
}

func TestSubUnsignedUnderflow(t *testing.T) {
	cs := r1cs.NewSystem()
	//
	_, err := Sub(cs, u8val(t, "2"), u8val(t, "3"), span)
	assertKind(t, err, diag.InvalidOperation)
}

func TestMulIntegers(t *testing.T) {
	cs := r1cs.NewSystem()
	//
	out, err := Mul(cs, u8val(t, "6"), u8val(t, "7"), span)
	require.NoError(t, err)
	assert.Equal(t, "42u8", out.String())
	assertAllSatisfied(t, cs)
}

func TestDivTruncates(t *testing.T) {
	cs := r1cs.NewSystem()
	//
	out, err := Div(cs, u8val(t, "7"), u8val(t, "2"), span)
	require.NoError(t, err)
	assert.Equal(t, "3u8", out.String())
	assertAllSatisfied(t, cs)
}

func TestDivByZero(t *testing.T) {
	cs := r1cs.NewSystem()
	//
	_, err := Div(cs, u8val(t, "7"), u8val(t, "0"), span)
	assertKind(t, err, diag.InvalidOperation)
	//
	_, err = Div(cs, fieldVal(t, "7"), fieldVal(t, "0"), span)
	assertKind(t, err, diag.InvalidOperation)
}

func TestDivFields(t *testing.T) {
	cs := r1cs.NewSystem()
	// Field division is exact: (7/2) * 2 = 7.
	out, err := Div(cs, fieldVal(t, "7"), fieldVal(t, "2"), span)
	require.NoError(t, err)
	//
	back, err := Mul(cs, out, fieldVal(t, "2"), span)
	require.NoError(t, err)
	assert.Equal(t, "7", back.String())
	assertAllSatisfied(t, cs)
}

func TestPow(t *testing.T) {
	cs := r1cs.NewSystem()
	//
	out, err := Pow(cs, u8val(t, "2"), u8val(t, "6"), span)
	require.NoError(t, err)
	assert.Equal(t, "64u8", out.String())
	// One multiplication step per unit of exponent.
	assert.Equal(t, uint(6), cs.NumConstraints())
	assertAllSatisfied(t, cs)
}

func TestPowOverflow(t *testing.T) {
	cs := r1cs.NewSystem()
	//
	_, err := Pow(cs, u8val(t, "2"), u8val(t, "8"), span)
	assertKind(t, err, diag.InvalidOperation)
}

func TestNot(t *testing.T) {
	cs := r1cs.NewSystem()
	//
	out, err := Not(cs, &value.Bool{Value: true}, span)
	require.NoError(t, err)
	assert.Equal(t, &value.Bool{Value: false}, out)
	assertAllSatisfied(t, cs)
	//
	_, err = Not(cs, u8val(t, "1"), span)
	assertKind(t, err, diag.InvalidOperation)
}

func TestAndOrTruthTable(t *testing.T) {
	cases := []struct{ l, r, and, or bool }{
		{false, false, false, false},
		{false, true, false, true},
		{true, false, false, true},
		{true, true, true, true},
	}
	//
	for _, tc := range cases {
		cs := r1cs.NewSystem()
		//
		and, err := And(cs, &value.Bool{Value: tc.l}, &value.Bool{Value: tc.r}, span)
		require.NoError(t, err)
		assert.Equal(t, &value.Bool{Value: tc.and}, and)
		//
		or, err := Or(cs, &value.Bool{Value: tc.l}, &value.Bool{Value: tc.r}, span)
		require.NoError(t, err)
		assert.Equal(t, &value.Bool{Value: tc.or}, or)
		//
		assertAllSatisfied(t, cs)
	}
}

func TestAndRejectsIntegers(t *testing.T) {
	cs := r1cs.NewSystem()
	//
	_, err := And(cs, u8val(t, "1"), u8val(t, "0"), span)
	assertKind(t, err, diag.InvalidOperation)
}

func TestEq(t *testing.T) {
	cs := r1cs.NewSystem()
	//
	out, err := Eq(cs, u8val(t, "5"), u8val(t, "5"), span)
	require.NoError(t, err)
	assert.Equal(t, &value.Bool{Value: true}, out)
	//
	out, err = Eq(cs, fieldVal(t, "1"), fieldVal(t, "2"), span)
	require.NoError(t, err)
	assert.Equal(t, &value.Bool{Value: false}, out)
	//
	out, err = Eq(cs, &value.Bool{Value: true}, &value.Bool{Value: true}, span)
	require.NoError(t, err)
	assert.Equal(t, &value.Bool{Value: true}, out)
	//
	assertAllSatisfied(t, cs)
}

func TestEqFalseComparisonSatisfied(t *testing.T) {
	cs := r1cs.NewSystem()
	// A false comparison must still be satisfied by its own witness.
	out, err := Eq(cs, fieldVal(t, "1"), fieldVal(t, "2"), span)
	require.NoError(t, err)
	assert.Equal(t, &value.Bool{Value: false}, out)
	assert.Equal(t, uint(2), cs.NumConstraints())
	assertAllSatisfied(t, cs)
}

func TestOrdering(t *testing.T) {
	cs := r1cs.NewSystem()
	//
	type op func(*r1cs.System, value.ConstrainedValue, value.ConstrainedValue, source.Span) (value.ConstrainedValue, error)
	//
	cases := []struct {
		apply    op
		expected bool
	}{
		{Ge, false}, {Gt, false}, {Le, true}, {Lt, true},
	}
	// 3 vs 5 under every ordering.
	for _, tc := range cases {
		out, err := tc.apply(cs, u8val(t, "3"), u8val(t, "5"), span)
		require.NoError(t, err)
		assert.Equal(t, &value.Bool{Value: tc.expected}, out)
	}
	//
	assertAllSatisfied(t, cs)
}

func TestOrderingRejectsFields(t *testing.T) {
	cs := r1cs.NewSystem()
	//
	_, err := Lt(cs, fieldVal(t, "1"), fieldVal(t, "2"), span)
	assertKind(t, err, diag.InvalidOperation)
}

func TestSelect(t *testing.T) {
	cs := r1cs.NewSystem()
	//
	out, err := Select(cs, &value.Bool{Value: true}, u8val(t, "1"), u8val(t, "2"), span)
	require.NoError(t, err)
	assert.Equal(t, "1u8", out.String())
	//
	out, err = Select(cs, &value.Bool{Value: false}, u8val(t, "1"), u8val(t, "2"), span)
	require.NoError(t, err)
	assert.Equal(t, "2u8", out.String())
	//
	assertAllSatisfied(t, cs)
}

func TestSelectRequiresBooleanCondition(t *testing.T) {
	cs := r1cs.NewSystem()
	//
	_, err := Select(cs, u8val(t, "1"), u8val(t, "2"), u8val(t, "3"), span)
	assertKind(t, err, diag.InvalidOperation)
}

// ============================================================================
// Helpers
// ============================================================================

func u8val(t *testing.T, text string) *value.Integer {
	t.Helper()
	//
	v, err := value.NewInteger(u8, text, span)
	require.NoError(t, err)
	//
	return v
}

func fieldVal(t *testing.T, text string) *value.Field {
	t.Helper()
	//
	v, err := value.NewField(text, span)
	require.NoError(t, err)
	//
	return v
}

func assertKind(t *testing.T, err error, kind diag.Kind) {
	t.Helper()
	//
	require.Error(t, err)
	//
	actual, ok := diag.KindOf(err)
	require.True(t, ok, "expected structured error, got %v", err)
	assert.Equal(t, kind, actual)
}

// assertAllSatisfied checks every emitted constraint holds over the witness.
func assertAllSatisfied(t *testing.T, cs *r1cs.System) {
	t.Helper()
	//
	eval := func(terms []r1cs.Term) fr.Element {
		var sum fr.Element
		//
		for _, term := range terms {
			v := cs.Value(term.Var)
			v.Mul(&v, &term.Coeff)
			sum.Add(&sum, &v)
		}
		//
		return sum
	}
	//
	for _, c := range cs.Constraints() {
		l, r, o := eval(c.L), eval(c.R), eval(c.O)
		l.Mul(&l, &r)
		//
		if !l.Equal(&o) {
			t.Errorf("constraint %q not satisfied", c.Label)
		}
	}
}
