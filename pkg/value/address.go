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
	"strings"

	"github.com/leolang/go-leo/pkg/diag"
	"github.com/leolang/go-leo/pkg/util/source"
)

// Addresses are bech32 strings under a fixed human-readable prefix: the
// prefix, the separator "1", then 58 characters of the bech32 alphabet
// (data plus checksum).
const (
	addressPrefix = "aleo1"
	addressLength = 63
	bech32Charset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"
)

// NewAddress constructs an address value from a literal string, or fails with
// a malformed-literal error.
func NewAddress(text string, span source.Span) (*Address, error) {
	if !strings.HasPrefix(text, addressPrefix) {
		return nil, diag.New(diag.MalformedLiteral, span, "invalid address prefix in '%s'", text)
	}
	//
	if len(text) != addressLength {
		return nil, diag.New(diag.MalformedLiteral, span, "invalid address length %d in '%s'", len(text), text)
	}
	// Remaining characters must be drawn from the bech32 alphabet.
	for _, c := range text[len(addressPrefix):] {
		if !strings.ContainsRune(bech32Charset, c) {
			return nil, diag.New(diag.MalformedLiteral, span, "invalid address character '%c' in '%s'", c, text)
		}
	}
	//
	return &Address{text}, nil
}
