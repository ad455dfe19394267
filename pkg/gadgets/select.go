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

// Select enforces a conditional choice between two branch values of one
// concrete type.  For single-witness branches it emits the select constraint
// cond * (a - b) = (out - b).
func Select(cs *r1cs.System, condition, first, second value.ConstrainedValue,
	span source.Span) (value.ConstrainedValue, error) {
	//
	cond, ok := condition.(*value.Bool)
	if !ok {
		return nil, diag.New(diag.InvalidOperation, span, "conditional condition must be boolean, found %s", condition)
	}
	//
	name := label("select", span)
	//
	result := second
	if cond.Value {
		result = first
	}
	//
	cw, _ := witnessOf(cond)
	fw, fok := witnessOf(first)
	sw, sok := witnessOf(second)
	//
	if fok && sok {
		ow, _ := witnessOf(result)
		c := cs.Alloc(name+"/cond", cw)
		a := cs.Alloc(name+"/first", fw)
		b := cs.Alloc(name+"/second", sw)
		out := cs.Alloc(name+"/out", ow)
		cs.Enforce(name,
			[]r1cs.Term{r1cs.TermOf(c)},
			[]r1cs.Term{r1cs.TermOf(a), r1cs.NewTerm(negOne(), b)},
			[]r1cs.Term{r1cs.TermOf(out), r1cs.NewTerm(negOne(), b)})
	}
	//
	return result, nil
}
