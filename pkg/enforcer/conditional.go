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
	"github.com/leolang/go-leo/pkg/gadgets"
	"github.com/leolang/go-leo/pkg/r1cs"
	"github.com/leolang/go-leo/pkg/scope"
	"github.com/leolang/go-leo/pkg/value"
)

// enforceConditionalExpression enforces an if/else expression.  Both
// branches are enforced under the caller's expected types and unified to one
// concrete type; the select gadget then chooses between them on the
// condition.
func (p *Program) enforceConditionalExpression(cs *r1cs.System, fileScope, functionScope scope.Scope,
	expected []ast.Type, e *ast.Conditional) (value.ConstrainedValue, error) {
	//
	condition, err := p.enforceExpressionValue(cs, fileScope, functionScope,
		[]ast.Type{ast.BooleanType{}}, e.Condition, e.Span())
	if err != nil {
		return nil, err
	}
	//
	first, second, err := p.enforceBinaryExpression(cs, fileScope, functionScope, expected,
		e.Then, e.Else, e.Span())
	if err != nil {
		return nil, err
	}
	//
	return gadgets.Select(cs, condition, first, second, e.Span())
}
