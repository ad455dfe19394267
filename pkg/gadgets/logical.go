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
	"github.com/leolang/go-leo/pkg/diag"
	"github.com/leolang/go-leo/pkg/r1cs"
	"github.com/leolang/go-leo/pkg/util/source"
	"github.com/leolang/go-leo/pkg/value"
)

// Not evaluates logical negation of a boolean operand.
func Not(cs *r1cs.System, operand value.ConstrainedValue, span source.Span) (value.ConstrainedValue, error) {
	b, ok := operand.(*value.Bool)
	if !ok {
		return nil, diag.New(diag.InvalidOperation, span, "cannot negate non-boolean %s", operand)
	}
	//
	name := label("not", span)
	result := &value.Bool{Value: !b.Value}
	//
	in, _ := witnessOf(b)
	out, _ := witnessOf(result)
	a := cs.Alloc(name+"/in", in)
	c := cs.Alloc(name+"/out", out)
	// out = 1 - in.
	cs.Enforce(name,
		[]r1cs.Term{r1cs.TermOf(cs.One()), r1cs.NewTerm(negOne(), a)},
		[]r1cs.Term{r1cs.TermOf(cs.One())},
		[]r1cs.Term{r1cs.TermOf(c)})
	//
	return result, nil
}

// And enforces logical conjunction of two boolean operands.
func And(cs *r1cs.System, left, right value.ConstrainedValue, span source.Span) (value.ConstrainedValue, error) {
	l, r, err := booleanPair(left, right, span, "conjoin")
	if err != nil {
		return nil, err
	}
	//
	name := label("and", span)
	result := &value.Bool{Value: l.Value && r.Value}
	// out = a * b.
	lw, _ := witnessOf(l)
	rw, _ := witnessOf(r)
	ow, _ := witnessOf(result)
	a, b, c := allocBinary(cs, name, lw, rw, ow)
	cs.Enforce(name, []r1cs.Term{r1cs.TermOf(a)}, []r1cs.Term{r1cs.TermOf(b)}, []r1cs.Term{r1cs.TermOf(c)})
	//
	return result, nil
}

// Or enforces logical disjunction of two boolean operands.
func Or(cs *r1cs.System, left, right value.ConstrainedValue, span source.Span) (value.ConstrainedValue, error) {
	l, r, err := booleanPair(left, right, span, "disjoin")
	if err != nil {
		return nil, err
	}
	//
	name := label("or", span)
	result := &value.Bool{Value: l.Value || r.Value}
	// a + b - out = a * b.
	lw, _ := witnessOf(l)
	rw, _ := witnessOf(r)
	ow, _ := witnessOf(result)
	a, b, c := allocBinary(cs, name, lw, rw, ow)
	cs.Enforce(name,
		[]r1cs.Term{r1cs.TermOf(a)},
		[]r1cs.Term{r1cs.TermOf(b)},
		[]r1cs.Term{r1cs.TermOf(a), r1cs.TermOf(b), r1cs.NewTerm(negOne(), c)})
	//
	return result, nil
}

func booleanPair(left, right value.ConstrainedValue, span source.Span, verb string) (*value.Bool, *value.Bool, error) {
	l, lok := left.(*value.Bool)
	r, rok := right.(*value.Bool)
	//
	if !lok || !rok {
		return nil, nil, diag.New(diag.InvalidOperation, span, "cannot %s %s and %s", verb, left, right)
	}
	//
	return l, r, nil
}
