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
package value

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/leolang/go-leo/pkg/ast"
	"github.com/leolang/go-leo/pkg/diag"
	"github.com/leolang/go-leo/pkg/util/source"
)

// NewInteger constructs an integer value of a given type from a literal
// string, range-checking it against the type's width and signedness.
func NewInteger(typ ast.IntegerType, text string, span source.Span) (*Integer, error) {
	n, ok := new(big.Int).SetString(text, 10)
	if !ok {
		return nil, diag.New(diag.MalformedLiteral, span, "invalid integer literal '%s'", text)
	}
	//
	if !IntegerFits(typ, n) {
		return nil, diag.New(diag.MalformedLiteral, span, "literal '%s' out of range for %s", text, typ)
	}
	//
	return &Integer{typ, n}, nil
}

// IntegerFits determines whether a given constant lies within the value range
// of a given integer type.
func IntegerFits(typ ast.IntegerType, n *big.Int) bool {
	minimum, maximum := IntegerBounds(typ)
	return n.Cmp(minimum) >= 0 && n.Cmp(maximum) <= 0
}

// IntegerBounds returns the inclusive value range of a given integer type.
func IntegerBounds(typ ast.IntegerType) (*big.Int, *big.Int) {
	one := big.NewInt(1)
	//
	if typ.Signed {
		// [-2^(w-1), 2^(w-1)-1]
		bound := new(big.Int).Lsh(one, typ.Width-1)
		maximum := new(big.Int).Sub(bound, one)
		minimum := new(big.Int).Neg(bound)
		//
		return minimum, maximum
	}
	// [0, 2^w-1]
	bound := new(big.Int).Lsh(one, typ.Width)
	maximum := new(big.Int).Sub(bound, one)
	//
	return big.NewInt(0), maximum
}

// ToField embeds this integer into the scalar field, for use as a witness
// value.  Negative constants map to their additive inverse.
func (v *Integer) ToField() fr.Element {
	var element fr.Element
	//
	element.SetBigInt(v.Value)
	//
	return element
}
