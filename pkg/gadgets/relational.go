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
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/leolang/go-leo/pkg/diag"
	"github.com/leolang/go-leo/pkg/r1cs"
	"github.com/leolang/go-leo/pkg/util/source"
	"github.com/leolang/go-leo/pkg/value"
)

// Eq evaluates equality between two operands of one concrete type, always
// producing a boolean.  Defined over booleans, integers, field elements,
// group elements and addresses.
func Eq(cs *r1cs.System, left, right value.ConstrainedValue, span source.Span) (value.ConstrainedValue, error) {
	name := label("eq", span)
	//
	switch l := left.(type) {
	case *value.Bool:
		r := right.(*value.Bool)
		return enforceEquality(cs, name, left, right, l.Value == r.Value), nil
	case *value.Integer:
		r := right.(*value.Integer)
		return enforceEquality(cs, name, left, right, l.Value.Cmp(r.Value) == 0), nil
	case *value.Field:
		r := right.(*value.Field)
		return enforceEquality(cs, name, left, right, l.Value.Equal(&r.Value)), nil
	case *value.Group:
		r := right.(*value.Group)
		equal := l.Value.X.Equal(&r.Value.X) && l.Value.Y.Equal(&r.Value.Y)
		//
		return enforceEquality(cs, name, nil, nil, equal), nil
	case *value.Address:
		r := right.(*value.Address)
		return enforceEquality(cs, name, nil, nil, l.Value == r.Value), nil
	default:
		return nil, diag.New(diag.InvalidOperation, span, "cannot compare %s and %s", left, right)
	}
}

// Ge evaluates ordering (>=) between two integer operands of one type.
func Ge(cs *r1cs.System, left, right value.ConstrainedValue, span source.Span) (value.ConstrainedValue, error) {
	return enforceOrdering(cs, "ge", left, right, span, func(cmp int) bool { return cmp >= 0 })
}

// Gt evaluates ordering (>) between two integer operands of one type.
func Gt(cs *r1cs.System, left, right value.ConstrainedValue, span source.Span) (value.ConstrainedValue, error) {
	return enforceOrdering(cs, "gt", left, right, span, func(cmp int) bool { return cmp > 0 })
}

// Le evaluates ordering (<=) between two integer operands of one type.
func Le(cs *r1cs.System, left, right value.ConstrainedValue, span source.Span) (value.ConstrainedValue, error) {
	return enforceOrdering(cs, "le", left, right, span, func(cmp int) bool { return cmp <= 0 })
}

// Lt evaluates ordering (<) between two integer operands of one type.
func Lt(cs *r1cs.System, left, right value.ConstrainedValue, span source.Span) (value.ConstrainedValue, error) {
	return enforceOrdering(cs, "lt", left, right, span, func(cmp int) bool { return cmp < 0 })
}

// enforceEquality allocates the boolean result of a comparison and, for
// operands which embed into single witnesses, emits the is-zero pair
// (a - b) * inv = 1 - bit and (a - b) * bit = 0.
func enforceEquality(cs *r1cs.System, name string, left, right value.ConstrainedValue, equal bool) *value.Bool {
	result := &value.Bool{Value: equal}
	//
	bw, _ := witnessOf(result)
	bit := cs.Alloc(name+"/bit", bw)
	//
	lw, lok := witnessOf2(left)
	rw, rok := witnessOf2(right)
	//
	if lok && rok {
		a := cs.Alloc(name+"/lhs", lw)
		b := cs.Alloc(name+"/rhs", rw)
		// inv holds (a - b)^-1 when the operands differ, zero otherwise.
		var diff, inv fr.Element
		diff.Sub(&lw, &rw)
		//
		if !diff.IsZero() {
			inv.Inverse(&diff)
		}
		//
		invVar := cs.Alloc(name+"/inv", inv)
		difference := []r1cs.Term{r1cs.TermOf(a), r1cs.NewTerm(negOne(), b)}
		// The first constraint forces bit to 0 on differing operands, the
		// second forces it to 1 on equal ones.
		cs.Enforce(name,
			difference,
			[]r1cs.Term{r1cs.TermOf(invVar)},
			[]r1cs.Term{r1cs.TermOf(cs.One()), r1cs.NewTerm(negOne(), bit)})
		cs.Enforce(name+"/zero",
			difference,
			[]r1cs.Term{r1cs.TermOf(bit)},
			nil)
	}
	//
	return result
}

func enforceOrdering(cs *r1cs.System, op string, left, right value.ConstrainedValue,
	span source.Span, holds func(int) bool) (value.ConstrainedValue, error) {
	//
	l, lok := left.(*value.Integer)
	r, rok := right.(*value.Integer)
	//
	if !lok || !rok {
		return nil, diag.New(diag.InvalidOperation, span, "cannot order %s and %s", left, right)
	}
	//
	name := label(op, span)
	result := &value.Bool{Value: holds(l.Value.Cmp(r.Value))}
	//
	bw, _ := witnessOf(result)
	cs.Alloc(name+"/lhs", l.ToField())
	cs.Alloc(name+"/rhs", r.ToField())
	bit := cs.Alloc(name+"/bit", bw)
	// The comparison bit is constrained boolean: bit * (1 - bit) = 0.
	cs.Enforce(name,
		[]r1cs.Term{r1cs.TermOf(bit)},
		[]r1cs.Term{r1cs.TermOf(cs.One()), r1cs.NewTerm(negOne(), bit)},
		nil)
	//
	return result, nil
}

// witnessOf2 is witnessOf lifted over nil values.
func witnessOf2(v value.ConstrainedValue) (fr.Element, bool) {
	if v == nil {
		return fr.Element{}, false
	}
	//
	return witnessOf(v)
}
