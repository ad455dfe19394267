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
	"github.com/leolang/go-leo/pkg/scope"
	"github.com/leolang/go-leo/pkg/value"
)

// evaluateIdentifier resolves a bare identifier against the nested scopes.
// The lookup order is fixed: function-local bindings shadow file-scope
// declarations, which shadow imported bare names; finally, if an address is
// expected and no variable binds, the bare word itself is read as an address
// literal.  This last tier is deliberate: it lets an unquoted address appear
// wherever an address-typed value is expected.
func (p *Program) evaluateIdentifier(fileScope, functionScope scope.Scope, expected []ast.Type,
	unresolved *ast.Identifier) (value.ConstrainedValue, error) {
	//
	result, ok := p.Get(functionScope.Qualify(unresolved.Name))
	//
	if !ok {
		// Check file scope (function and circuit declarations).
		result, ok = p.Get(fileScope.Qualify(unresolved.Name))
	}
	//
	if !ok {
		// Check imported bare names.
		result, ok = p.Get(scope.Scope{}.Qualify(unresolved.Name))
	}
	//
	if !ok {
		if ast.ContainsType(expected, ast.AddressType{}) {
			return value.NewAddress(unresolved.Name, unresolved.Span())
		}
		//
		return nil, diag.New(diag.UndefinedIdentifier, unresolved.Span(),
			"cannot find value '%s' in this scope", unresolved.Name)
	}
	//
	return value.ResolveType(result, expected, unresolved.Span())
}
