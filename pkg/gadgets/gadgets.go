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

// Package gadgets encodes the semantics of each operator as constraints over
// already-type-resolved operand values.  Each gadget is a pure function from
// (constraint system, operands, span) to a result value or error, plus
// side-effecting constraint emission.  Gadget labels embed the operand span,
// so two occurrences of the same operator at different source locations never
// share constraint names.
package gadgets

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/leolang/go-leo/pkg/r1cs"
	"github.com/leolang/go-leo/pkg/util/source"
	"github.com/leolang/go-leo/pkg/value"
)

// label constructs the constraint label for one operator application.
func label(op string, span source.Span) string {
	return fmt.Sprintf("%s %s", op, span.String())
}

// witnessOf embeds a primitive constant into the scalar field, for operands
// which occupy a single witness variable.
func witnessOf(v value.ConstrainedValue) (fr.Element, bool) {
	switch v := v.(type) {
	case *value.Bool:
		if v.Value {
			return fr.One(), true
		}
		//
		return fr.Element{}, true
	case *value.Field:
		return v.Value, true
	case *value.Integer:
		return v.ToField(), true
	default:
		return fr.Element{}, false
	}
}

// allocBinary allocates witness variables for the operands and result of a
// binary operator over single-witness values.
func allocBinary(cs *r1cs.System, name string, l fr.Element, r fr.Element,
	o fr.Element) (r1cs.Variable, r1cs.Variable, r1cs.Variable) {
	//
	a := cs.Alloc(name+"/lhs", l)
	b := cs.Alloc(name+"/rhs", r)
	c := cs.Alloc(name+"/out", o)
	//
	return a, b, c
}

// negOne returns the additive inverse of one.
func negOne() fr.Element {
	var e fr.Element
	//
	one := fr.One()
	e.Neg(&one)
	//
	return e
}
