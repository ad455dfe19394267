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
	"github.com/leolang/go-leo/pkg/r1cs"
	"github.com/leolang/go-leo/pkg/scope"
	"github.com/leolang/go-leo/pkg/util/source"
	"github.com/leolang/go-leo/pkg/value"
)

// enforceExpressionValue enforces one branch of a binary expression and
// resolves its type against the expected set.
func (p *Program) enforceExpressionValue(cs *r1cs.System, fileScope, functionScope scope.Scope,
	expected []ast.Type, expression ast.Expression, span source.Span) (value.ConstrainedValue, error) {
	//
	branch, err := p.EnforceExpression(cs, fileScope, functionScope, expected, expression)
	if err != nil {
		return nil, err
	}
	//
	return value.ResolveType(branch, expected, span)
}

// enforceBinaryExpression enforces both operands of a binary expression
// under one shared expected-type set, then unifies their resolved types.
// The left operand is fully evaluated (including constraint emission) before
// the right begins: emission order determines constraint-variable naming,
// and resolution can have side effects read by later operands.  The
// two-phase resolution (individually, then jointly) is what lets a literal
// on either side infer its width from the other side.
func (p *Program) enforceBinaryExpression(cs *r1cs.System, fileScope, functionScope scope.Scope,
	expected []ast.Type, left, right ast.Expression,
	span source.Span) (value.ConstrainedValue, value.ConstrainedValue, error) {
	//
	resolvedLeft, err := p.enforceExpressionValue(cs, fileScope, functionScope, expected, left, span)
	if err != nil {
		return nil, nil, err
	}
	//
	resolvedRight, err := p.enforceExpressionValue(cs, fileScope, functionScope, expected, right, span)
	if err != nil {
		return nil, nil, err
	}
	//
	return value.ResolveTypes(resolvedLeft, resolvedRight, expected, span)
}
