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
package scope

import (
	"testing"

	"github.com/leolang/go-leo/pkg/util/assert"
)

func TestScopeEnter(t *testing.T) {
	file := New("prog")
	fn := file.Enter("main")
	//
	assert.True(t, New().IsEmpty())
	assert.True(t, !fn.IsEmpty())
	assert.Equal(t, "prog/main", fn.String())
	assert.Equal(t, New("prog", "main"), fn)
}

func TestScopeQualify(t *testing.T) {
	key := New("prog", "main").Qualify("x")
	//
	assert.Equal(t, "prog/main/x", key.String())
	assert.Equal(t, New("prog").Enter("main").Qualify("x"), key)
	// Global names have no scope prefix.
	assert.Equal(t, "x", New().Qualify("x").String())
}

func TestScopeAsMapKey(t *testing.T) {
	table := map[Qualified]int{
		New("prog", "f").Qualify("x"): 1,
		New("prog", "g").Qualify("x"): 2,
	}
	//
	assert.Equal(t, 1, table[New("prog", "f").Qualify("x")])
	assert.Equal(t, 2, table[New("prog", "g").Qualify("x")])
}

// Identifiers containing the display delimiter must not collide with nested
// scopes which render identically.
func TestScopeNoDisplayCollision(t *testing.T) {
	tricky := New().Qualify("f/x")
	nested := New("f").Qualify("x")
	//
	assert.Equal(t, tricky.String(), nested.String())
	assert.True(t, tricky != nested)
}

func TestScopeRejectsSeparator(t *testing.T) {
	defer func() {
		assert.True(t, recover() != nil)
	}()
	//
	New("a\x1fb")
}
