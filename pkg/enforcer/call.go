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

	"github.com/leolang/go-leo/pkg/ast"
	"github.com/leolang/go-leo/pkg/diag"
	"github.com/leolang/go-leo/pkg/r1cs"
	"github.com/leolang/go-leo/pkg/scope"
	"github.com/leolang/go-leo/pkg/value"
)

// enforceFunctionCallExpression resolves the callee to a function value,
// establishes a fresh constraint namespace for this call site, invokes the
// function body, and normalizes the returned aggregate.  The namespace is
// keyed by function name and source position, so repeated or recursive calls
// of one function within a single expression never produce colliding
// constraint-variable names.
func (p *Program) enforceFunctionCallExpression(cs *r1cs.System, fileScope, functionScope scope.Scope,
	expected []ast.Type, e *ast.Call) (value.ConstrainedValue, error) {
	//
	functionValue, err := p.EnforceExpression(cs, fileScope, functionScope, expected, e.Function)
	if err != nil {
		return nil, err
	}
	//
	span := e.Span()
	//
	declarationScope, function, err := value.ExtractFunction(functionValue, fileScope, span)
	if err != nil {
		return nil, err
	}
	// One fresh namespace per call site.
	nameUnique := fmt.Sprintf("function call %s %d:%d", function.Name.Name, span.Line(), span.Column())
	//
	result, err := p.EnforceFunction(cs.Namespace(nameUnique), declarationScope, functionScope, function, e.Arguments)
	if err != nil {
		return nil, diag.Wrap(err, span, "call to '%s' failed", function.Name.Name)
	}
	//
	returned, ok := result.(*value.Return)
	if !ok || len(returned.Values) == 0 {
		return nil, diag.New(diag.NoReturnValue, span, "function '%s' has no return value", e.Function)
	}
	// A singleton aggregate unwraps to the value itself.
	if len(returned.Values) == 1 {
		return returned.Values[0], nil
	}
	//
	return returned, nil
}
