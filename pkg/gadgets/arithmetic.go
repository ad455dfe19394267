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
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/gnark-crypto/ecc/bls12-377/twistededwards"
	"github.com/leolang/go-leo/pkg/diag"
	"github.com/leolang/go-leo/pkg/r1cs"
	"github.com/leolang/go-leo/pkg/util/source"
	"github.com/leolang/go-leo/pkg/value"
)

// Add enforces the sum of two operands.  Defined over integers (of one
// type), field elements and group elements.
func Add(cs *r1cs.System, left, right value.ConstrainedValue, span source.Span) (value.ConstrainedValue, error) {
	name := label("add", span)
	//
	switch l := left.(type) {
	case *value.Integer:
		r := right.(*value.Integer)
		out := new(big.Int).Add(l.Value, r.Value)
		//
		if !value.IntegerFits(l.IntType, out) {
			return nil, diag.New(diag.InvalidOperation, span, "integer overflow in %s", name)
		}
		//
		result := &value.Integer{IntType: l.IntType, Value: out}
		enforceSum(cs, name, l.ToField(), r.ToField(), result.ToField())
		//
		return result, nil
	case *value.Field:
		r := right.(*value.Field)
		//
		var out fr.Element
		out.Add(&l.Value, &r.Value)
		//
		enforceSum(cs, name, l.Value, r.Value, out)
		//
		return &value.Field{Value: out}, nil
	case *value.Group:
		r := right.(*value.Group)
		//
		var out twistededwards.PointAffine
		out.Add(&l.Value, &r.Value)
		//
		enforceGroup(cs, name, out)
		//
		return &value.Group{Value: out}, nil
	default:
		return nil, diag.New(diag.InvalidOperation, span, "cannot add %s and %s", left, right)
	}
}

// Sub enforces the difference of two operands.  Defined over integers (of
// one type), field elements and group elements.
func Sub(cs *r1cs.System, left, right value.ConstrainedValue, span source.Span) (value.ConstrainedValue, error) {
	name := label("sub", span)
	//
	switch l := left.(type) {
	case *value.Integer:
		r := right.(*value.Integer)
		out := new(big.Int).Sub(l.Value, r.Value)
		//
		if !value.IntegerFits(l.IntType, out) {
			return nil, diag.New(diag.InvalidOperation, span, "integer overflow in %s", name)
		}
		// l - r = out is enforced as r + out = l.
		result := &value.Integer{IntType: l.IntType, Value: out}
		enforceSum(cs, name, r.ToField(), result.ToField(), l.ToField())
		//
		return result, nil
	case *value.Field:
		r := right.(*value.Field)
		//
		var out fr.Element
		out.Sub(&l.Value, &r.Value)
		// l - r = out is enforced as r + out = l.
		enforceSum(cs, name, r.Value, out, l.Value)
		//
		return &value.Field{Value: out}, nil
	case *value.Group:
		r := right.(*value.Group)
		//
		var neg, out twistededwards.PointAffine
		neg.Neg(&r.Value)
		out.Add(&l.Value, &neg)
		//
		enforceGroup(cs, name, out)
		//
		return &value.Group{Value: out}, nil
	default:
		return nil, diag.New(diag.InvalidOperation, span, "cannot subtract %s and %s", left, right)
	}
}

// Mul enforces the product of two operands.  Defined over integers (of one
// type) and field elements.
func Mul(cs *r1cs.System, left, right value.ConstrainedValue, span source.Span) (value.ConstrainedValue, error) {
	name := label("mul", span)
	//
	switch l := left.(type) {
	case *value.Integer:
		r := right.(*value.Integer)
		out := new(big.Int).Mul(l.Value, r.Value)
		//
		if !value.IntegerFits(l.IntType, out) {
			return nil, diag.New(diag.InvalidOperation, span, "integer overflow in %s", name)
		}
		//
		result := &value.Integer{IntType: l.IntType, Value: out}
		enforceProduct(cs, name, l.ToField(), r.ToField(), result.ToField())
		//
		return result, nil
	case *value.Field:
		r := right.(*value.Field)
		//
		var out fr.Element
		out.Mul(&l.Value, &r.Value)
		//
		enforceProduct(cs, name, l.Value, r.Value, out)
		//
		return &value.Field{Value: out}, nil
	default:
		return nil, diag.New(diag.InvalidOperation, span, "cannot multiply %s and %s", left, right)
	}
}

// Div enforces the quotient of two operands.  Defined over integers (of one
// type, truncated division) and field elements.  Division by zero fails.
func Div(cs *r1cs.System, left, right value.ConstrainedValue, span source.Span) (value.ConstrainedValue, error) {
	name := label("div", span)
	//
	switch l := left.(type) {
	case *value.Integer:
		r := right.(*value.Integer)
		if r.Value.Sign() == 0 {
			return nil, diag.New(diag.InvalidOperation, span, "division by zero")
		}
		//
		out := new(big.Int).Quo(l.Value, r.Value)
		rem := new(big.Int).Rem(l.Value, r.Value)
		//
		if !value.IntegerFits(l.IntType, out) {
			return nil, diag.New(diag.InvalidOperation, span, "integer overflow in %s", name)
		}
		// l / r = out is enforced as out * r = l - rem.
		result := &value.Integer{IntType: l.IntType, Value: out}
		remainder := &value.Integer{IntType: l.IntType, Value: rem}
		//
		a, b, c := allocBinary(cs, name, l.ToField(), r.ToField(), result.ToField())
		d := cs.Alloc(name+"/rem", remainder.ToField())
		cs.Enforce(name,
			[]r1cs.Term{r1cs.TermOf(c)},
			[]r1cs.Term{r1cs.TermOf(b)},
			[]r1cs.Term{r1cs.TermOf(a), r1cs.NewTerm(negOne(), d)})
		//
		return result, nil
	case *value.Field:
		r := right.(*value.Field)
		if r.Value.IsZero() {
			return nil, diag.New(diag.InvalidOperation, span, "division by zero")
		}
		//
		var out fr.Element
		out.Div(&l.Value, &r.Value)
		// l / r = out is enforced as out * r = l.
		a, b, c := allocBinary(cs, name, l.Value, r.Value, out)
		cs.Enforce(name, []r1cs.Term{r1cs.TermOf(c)}, []r1cs.Term{r1cs.TermOf(b)}, []r1cs.Term{r1cs.TermOf(a)})
		//
		return &value.Field{Value: out}, nil
	default:
		return nil, diag.New(diag.InvalidOperation, span, "cannot divide %s and %s", left, right)
	}
}

// Pow enforces one operand raised to the power of another.  Defined over
// integers of one type with a non-negative exponent, by iterated
// multiplication over the witness embedding.
func Pow(cs *r1cs.System, left, right value.ConstrainedValue, span source.Span) (value.ConstrainedValue, error) {
	name := label("pow", span)
	//
	l, ok := left.(*value.Integer)
	if !ok {
		return nil, diag.New(diag.InvalidOperation, span, "cannot exponentiate %s and %s", left, right)
	}
	//
	r := right.(*value.Integer)
	if r.Value.Sign() < 0 {
		return nil, diag.New(diag.InvalidOperation, span, "negative exponent %s", r.Value)
	} else if !r.Value.IsUint64() {
		return nil, diag.New(diag.InvalidOperation, span, "exponent %s too large", r.Value)
	}
	//
	out := new(big.Int).Exp(l.Value, r.Value, nil)
	if !value.IntegerFits(l.IntType, out) {
		return nil, diag.New(diag.InvalidOperation, span, "integer overflow in %s", name)
	}
	//
	result := &value.Integer{IntType: l.IntType, Value: out}
	base := cs.Alloc(name+"/base", l.ToField())
	baseValue := l.ToField()
	acc := cs.One()
	accValue := fr.One()
	//
	for i, exp := 0, r.Value.Uint64(); exp > 0; i, exp = i+1, exp-1 {
		var next fr.Element
		//
		next.Mul(&accValue, &baseValue)
		//
		step := fmt.Sprintf("%s/step%d", name, i)
		stepVar := cs.Alloc(step, next)
		cs.Enforce(step, []r1cs.Term{r1cs.TermOf(acc)}, []r1cs.Term{r1cs.TermOf(base)}, []r1cs.Term{r1cs.TermOf(stepVar)})
		//
		acc, accValue = stepVar, next
	}
	//
	return result, nil
}

// enforceSum emits the constraint (a + b) * 1 = c over fresh witnesses.
func enforceSum(cs *r1cs.System, name string, a fr.Element, b fr.Element, c fr.Element) {
	va, vb, vc := allocBinary(cs, name, a, b, c)
	cs.Enforce(name,
		[]r1cs.Term{r1cs.TermOf(va), r1cs.TermOf(vb)},
		[]r1cs.Term{r1cs.TermOf(cs.One())},
		[]r1cs.Term{r1cs.TermOf(vc)})
}

// enforceProduct emits the constraint a * b = c over fresh witnesses.
func enforceProduct(cs *r1cs.System, name string, a fr.Element, b fr.Element, c fr.Element) {
	va, vb, vc := allocBinary(cs, name, a, b, c)
	cs.Enforce(name,
		[]r1cs.Term{r1cs.TermOf(va)},
		[]r1cs.Term{r1cs.TermOf(vb)},
		[]r1cs.Term{r1cs.TermOf(vc)})
}

// enforceGroup binds the affine coordinates of a group result as witnesses.
func enforceGroup(cs *r1cs.System, name string, p twistededwards.PointAffine) {
	x := cs.Alloc(name+"/x", p.X)
	y := cs.Alloc(name+"/y", p.Y)
	cs.Enforce(name+"/x",
		[]r1cs.Term{r1cs.TermOf(x)},
		[]r1cs.Term{r1cs.TermOf(cs.One())},
		[]r1cs.Term{r1cs.TermOf(x)})
	cs.Enforce(name+"/y",
		[]r1cs.Term{r1cs.TermOf(y)},
		[]r1cs.Term{r1cs.TermOf(cs.One())},
		[]r1cs.Term{r1cs.TermOf(y)})
}
