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

// enforceCircuitExpression enforces a circuit constructor: every declared
// member variable must be initialised exactly once, each initialiser
// enforced against the member's declared type.  Member functions are bound
// into the instance so they can be projected and called later.
func (p *Program) enforceCircuitExpression(cs *r1cs.System, fileScope, functionScope scope.Scope,
	e *ast.CircuitInit) (value.ConstrainedValue, error) {
	//
	definition, err := p.resolveCircuitDef(fileScope, e.Name)
	if err != nil {
		return nil, err
	}
	//
	members := make([]value.CircuitMemberValue, 0, len(definition.Decl.Members))
	//
	for _, member := range definition.Decl.Members {
		switch {
		case member.Variable != nil:
			initialiser := findCircuitVariable(e.Members, member.Variable.Name.Name)
			if initialiser == nil {
				return nil, diag.New(diag.UndefinedIdentifier, e.Span(),
					"missing circuit member '%s'", member.Variable.Name.Name)
			}
			//
			v, err := p.enforceExpressionValue(cs, fileScope, functionScope,
				[]ast.Type{member.Variable.Type}, initialiser.Expression, initialiser.Expression.Span())
			if err != nil {
				return nil, err
			}
			//
			members = append(members, value.CircuitMemberValue{Name: member.Variable.Name.Name, Value: v})
		case !member.Static:
			members = append(members, value.CircuitMemberValue{
				Name:  member.Function.Name.Name,
				Value: &value.Function{Scope: definition.Scope, Decl: member.Function},
			})
		}
	}
	// Reject initialisers which match no declared member.
	for _, initialiser := range e.Members {
		if !circuitDeclares(definition.Decl, initialiser.Name.Name) {
			return nil, diag.New(diag.UndefinedIdentifier, initialiser.Name.Span(),
				"circuit '%s' has no member '%s'", definition.Decl.Name.Name, initialiser.Name.Name)
		}
	}
	//
	return &value.CircuitInstance{Decl: definition.Decl, Members: members}, nil
}

// enforceCircuitAccessExpression projects a member out of a circuit
// instance, resolving it against the caller's expected types.
func (p *Program) enforceCircuitAccessExpression(cs *r1cs.System, fileScope, functionScope scope.Scope,
	expected []ast.Type, e *ast.CircuitMemberAccess) (value.ConstrainedValue, error) {
	//
	target, err := p.EnforceExpression(cs, fileScope, functionScope, nil, e.Target)
	if err != nil {
		return nil, err
	}
	//
	instance, ok := target.(*value.CircuitInstance)
	if !ok {
		return nil, diag.New(diag.InvalidOperation, e.Span(), "cannot access member of non-circuit %s", target)
	}
	//
	for _, member := range instance.Members {
		if member.Name == e.Member.Name {
			return value.ResolveType(member.Value, expected, e.Span())
		}
	}
	//
	return nil, diag.New(diag.UndefinedIdentifier, e.Member.Span(),
		"circuit '%s' has no member '%s'", instance.Decl.Name.Name, e.Member.Name)
}

// enforceCircuitStaticAccessExpression projects a static function out of a
// circuit declaration.
func (p *Program) enforceCircuitStaticAccessExpression(cs *r1cs.System, fileScope, functionScope scope.Scope,
	expected []ast.Type, e *ast.CircuitStaticAccess) (value.ConstrainedValue, error) {
	//
	name, ok := e.Target.(*ast.Identifier)
	if !ok {
		return nil, diag.New(diag.InvalidOperation, e.Span(), "static access requires a circuit name, found %s", e.Target)
	}
	//
	definition, err := p.resolveCircuitDef(fileScope, name)
	if err != nil {
		return nil, err
	}
	//
	for _, member := range definition.Decl.Members {
		if member.Function != nil && member.Static && member.Function.Name.Name == e.Member.Name {
			return &value.Function{Scope: definition.Scope, Decl: member.Function}, nil
		}
	}
	//
	return nil, diag.New(diag.UndefinedIdentifier, e.Member.Span(),
		"circuit '%s' has no static member '%s'", definition.Decl.Name.Name, e.Member.Name)
}

// resolveCircuitDef looks up a circuit declaration by name, first at file
// scope and then among imported bare names.
func (p *Program) resolveCircuitDef(fileScope scope.Scope, name *ast.Identifier) (*value.CircuitDef, error) {
	v, ok := p.Get(fileScope.Qualify(name.Name))
	//
	if !ok {
		v, ok = p.Get(scope.Scope{}.Qualify(name.Name))
	}
	//
	if !ok {
		return nil, diag.New(diag.UndefinedIdentifier, name.Span(), "cannot find circuit '%s'", name.Name)
	}
	//
	definition, isCircuit := v.(*value.CircuitDef)
	if !isCircuit {
		return nil, diag.New(diag.TypeMismatch, name.Span(), "'%s' is not a circuit", name.Name)
	}
	//
	return definition, nil
}

func findCircuitVariable(members []ast.CircuitVariable, name string) *ast.CircuitVariable {
	for i, member := range members {
		if member.Name.Name == name {
			return &members[i]
		}
	}
	//
	return nil
}

func circuitDeclares(decl *ast.Circuit, name string) bool {
	for _, member := range decl.Members {
		if member.Variable != nil && member.Variable.Name.Name == name {
			return true
		} else if member.Function != nil && member.Function.Name.Name == name {
			return true
		}
	}
	//
	return false
}
