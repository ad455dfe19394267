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
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/leolang/go-leo/pkg/diag"
	"github.com/leolang/go-leo/pkg/util/source"
)

// NewField constructs a field-element value from a literal string, or fails
// with a malformed-literal error.
func NewField(text string, span source.Span) (*Field, error) {
	var element fr.Element
	//
	if _, err := element.SetString(text); err != nil {
		return nil, diag.New(diag.MalformedLiteral, span, "invalid field literal '%s'", text)
	}
	//
	return &Field{element}, nil
}
