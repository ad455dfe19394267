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
package enforcer

import (
	"github.com/leolang/go-leo/pkg/ast"
	"github.com/leolang/go-leo/pkg/diag"
	"github.com/leolang/go-leo/pkg/r1cs"
	"github.com/leolang/go-leo/pkg/scope"
	"github.com/leolang/go-leo/pkg/value"
)

// enforceArrayExpression enforces an inline array constructor.  When the
// context expects exactly one array type, its element type drives literal
// inference and its size must match; elements are then unified pairwise so
// that literals anywhere in the array pick up a concrete sibling's type.
func (p *Program) enforceArrayExpression(cs *r1cs.System, fileScope, functionScope scope.Scope,
	expected []ast.Type, e *ast.ArrayInline) (value.ConstrainedValue, error) {
	//
	var elementExpected []ast.Type
	//
	if len(expected) == 1 {
		arrayType, ok := expected[0].(ast.ArrayType)
		if !ok {
			return nil, diag.New(diag.TypeMismatch, e.Span(), "expected %s, found array", expected[0])
		} else if arrayType.Size != uint(len(e.Elements)) {
			return nil, diag.New(diag.TypeMismatch, e.Span(),
				"expected array of size %d, found size %d", arrayType.Size, len(e.Elements))
		}
		//
		elementExpected = []ast.Type{arrayType.Element}
	}
	//
	elements := make([]value.ConstrainedValue, len(e.Elements))
	//
	for i, element := range e.Elements {
		v, err := p.enforceExpressionValue(cs, fileScope, functionScope, elementExpected, element, element.Span())
		if err != nil {
			return nil, err
		}
		//
		elements[i] = v
	}
	// Unify forwards then backwards, so a single concrete element settles
	// unresolved literals on either side of it.
	var err error
	//
	for i := 1; i < len(elements); i++ {
		elements[i-1], elements[i], err = value.ResolveTypes(elements[i-1], elements[i], elementExpected, e.Span())
		if err != nil {
			return nil, err
		}
	}
	//
	for i := len(elements) - 1; i > 0; i-- {
		elements[i-1], elements[i], err = value.ResolveTypes(elements[i-1], elements[i], elementExpected, e.Span())
		if err != nil {
			return nil, err
		}
	}
	//
	return &value.Array{Elements: elements}, nil
}

// enforceArrayAccessExpression enforces indexing into an array.  The index
// must resolve to an integer constant and lie within bounds; the projected
// element then resolves against the caller's expected types.
func (p *Program) enforceArrayAccessExpression(cs *r1cs.System, fileScope, functionScope scope.Scope,
	expected []ast.Type, e *ast.ArrayAccess) (value.ConstrainedValue, error) {
	//
	arrayValue, err := p.EnforceExpression(cs, fileScope, functionScope, nil, e.Array)
	if err != nil {
		return nil, err
	}
	//
	array, ok := arrayValue.(*value.Array)
	if !ok {
		return nil, diag.New(diag.InvalidOperation, e.Span(), "cannot index into non-array %s", arrayValue)
	}
	//
	indexValue, err := p.enforceExpressionValue(cs, fileScope, functionScope,
		[]ast.Type{ast.IntegerType{Width: 32, Signed: false}}, e.Index, e.Index.Span())
	if err != nil {
		return nil, err
	}
	//
	index, ok := indexValue.(*value.Integer)
	if !ok {
		return nil, diag.New(diag.InvalidOperation, e.Index.Span(), "array index must be an integer, found %s", indexValue)
	}
	//
	i := index.Value.Int64()
	if !index.Value.IsInt64() || i < 0 || i >= int64(len(array.Elements)) {
		return nil, diag.New(diag.InvalidOperation, e.Index.Span(),
			"index %s out of bounds for array of size %d", index.Value, len(array.Elements))
	}
	//
	return value.ResolveType(array.Elements[i], expected, e.Span())
}
