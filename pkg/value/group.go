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

	"github.com/consensys/gnark-crypto/ecc/bls12-377/twistededwards"
	"github.com/leolang/go-leo/pkg/diag"
	"github.com/leolang/go-leo/pkg/util/source"
)

// NewGroup constructs a group-element value from a literal string.  A group
// literal "Ngroup" denotes the scalar multiple N of the curve's base point,
// with N reduced modulo the group order.
func NewGroup(text string, span source.Span) (*Group, error) {
	scalar, ok := new(big.Int).SetString(text, 10)
	if !ok {
		return nil, diag.New(diag.MalformedLiteral, span, "invalid group literal '%s'", text)
	}
	//
	curve := twistededwards.GetEdwardsCurve()
	scalar.Mod(scalar, &curve.Order)
	//
	var point twistededwards.PointAffine
	point.ScalarMultiplication(&curve.Base, scalar)
	//
	return &Group{point}, nil
}
