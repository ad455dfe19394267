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
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/leolang/go-leo/pkg/ast"
	"github.com/leolang/go-leo/pkg/diag"
	"github.com/leolang/go-leo/pkg/r1cs"
	"github.com/leolang/go-leo/pkg/scope"
	"github.com/leolang/go-leo/pkg/value"
)

// EnforceFunction enforces one invocation of a function body.  The function's
// declaration scope becomes the file scope for the body; argument
// expressions are evaluated in the caller's scope and bound into a fresh
// function scope.  The result is the aggregate produced by the first
// executed return statement, or an empty aggregate if none executes.
func (p *Program) EnforceFunction(cs *r1cs.System, declarationScope, callerScope scope.Scope,
	function *ast.Function, arguments []ast.Expression) (value.ConstrainedValue, error) {
	//
	log.Debugf("enforcing function '%s'", function.Name.Name)
	//
	if len(arguments) != len(function.Parameters) {
		return nil, diag.New(diag.InvalidOperation, function.Span(),
			"function '%s' expects %d arguments, found %d",
			function.Name.Name, len(function.Parameters), len(arguments))
	}
	//
	functionScope := declarationScope.Enter(function.Name.Name)
	// Bind parameters.  Each argument is evaluated in the caller's scope
	// against the declared parameter type, then bound into the callee scope.
	for i, parameter := range function.Parameters {
		v, err := p.enforceExpressionValue(cs, declarationScope, callerScope,
			[]ast.Type{parameter.Type}, arguments[i], arguments[i].Span())
		if err != nil {
			return nil, err
		}
		//
		p.store(functionScope.Qualify(parameter.Name.Name), v)
	}
	//
	return p.enforceStatements(cs, declarationScope, functionScope, function)
}

// enforceStatements walks a function body in source order, stopping at the
// first executed return statement.
func (p *Program) enforceStatements(cs *r1cs.System, fileScope, functionScope scope.Scope,
	function *ast.Function) (value.ConstrainedValue, error) {
	//
	for _, statement := range function.Body {
		switch s := statement.(type) {
		case *ast.Definition:
			var expected []ast.Type
			//
			if s.Type != nil {
				expected = []ast.Type{s.Type}
			}
			//
			v, err := p.enforceExpressionValue(cs, fileScope, functionScope, expected, s.Value, s.Span())
			if err != nil {
				return nil, err
			}
			//
			p.store(functionScope.Qualify(s.Name.Name), v)
		case *ast.Return:
			return p.enforceReturn(cs, fileScope, functionScope, function, s)
		case *ast.ExpressionStatement:
			if _, err := p.EnforceExpression(cs, fileScope, functionScope, nil, s.Inner); err != nil {
				return nil, err
			}
		default:
			panic(fmt.Sprintf("unknown statement %T", statement))
		}
	}
	// No return statement executed.
	return &value.Return{}, nil
}

// enforceReturn evaluates the values of a return statement against the
// function's declared return types.
func (p *Program) enforceReturn(cs *r1cs.System, fileScope, functionScope scope.Scope,
	function *ast.Function, s *ast.Return) (value.ConstrainedValue, error) {
	//
	if len(function.Returns) != len(s.Values) {
		return nil, diag.New(diag.TypeMismatch, s.Span(),
			"function '%s' declares %d return values, found %d",
			function.Name.Name, len(function.Returns), len(s.Values))
	}
	//
	values := make([]value.ConstrainedValue, len(s.Values))
	//
	for i, expression := range s.Values {
		v, err := p.enforceExpressionValue(cs, fileScope, functionScope,
			[]ast.Type{function.Returns[i]}, expression, expression.Span())
		if err != nil {
			return nil, err
		}
		//
		values[i] = v
	}
	//
	return &value.Return{Values: values}, nil
}
