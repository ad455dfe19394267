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
	"github.com/leolang/go-leo/pkg/gadgets"
	"github.com/leolang/go-leo/pkg/r1cs"
	"github.com/leolang/go-leo/pkg/scope"
	"github.com/leolang/go-leo/pkg/util/source"
	"github.com/leolang/go-leo/pkg/value"
)

// EnforceExpression evaluates one expression node under a pair of nested
// lexical scopes and the set of types the surrounding context expects,
// recursing into every sub-expression.  The match is exhaustive over the
// expression sum; a variant without a handler is a panic, never a silent
// fallthrough.
func (p *Program) EnforceExpression(cs *r1cs.System, fileScope, functionScope scope.Scope,
	expected []ast.Type, expression ast.Expression) (value.ConstrainedValue, error) {
	//
	switch e := expression.(type) {
	// Variables
	case *ast.Identifier:
		return p.evaluateIdentifier(fileScope, functionScope, expected, e)

	// Values
	case *ast.AddressLiteral:
		return value.NewAddress(e.Value, e.Span())
	case *ast.BooleanLiteral:
		return &value.Bool{Value: e.Value}, nil
	case *ast.FieldLiteral:
		return value.NewField(e.Text, e.Span())
	case *ast.GroupLiteral:
		return value.NewGroup(e.Text, e.Span())
	case *ast.ImplicitLiteral:
		return enforceNumberImplicit(expected, e.Text, e.Span())
	case *ast.IntegerLiteral:
		return value.NewInteger(e.Type, e.Text, e.Span())

	// Binary operations
	case *ast.Add:
		left, right, err := p.enforceBinaryExpression(cs, fileScope, functionScope, expected, e.Left, e.Right, e.Span())
		if err != nil {
			return nil, err
		}
		//
		return gadgets.Add(cs, left, right, e.Span())
	case *ast.Sub:
		left, right, err := p.enforceBinaryExpression(cs, fileScope, functionScope, expected, e.Left, e.Right, e.Span())
		if err != nil {
			return nil, err
		}
		//
		return gadgets.Sub(cs, left, right, e.Span())
	case *ast.Mul:
		left, right, err := p.enforceBinaryExpression(cs, fileScope, functionScope, expected, e.Left, e.Right, e.Span())
		if err != nil {
			return nil, err
		}
		//
		return gadgets.Mul(cs, left, right, e.Span())
	case *ast.Div:
		left, right, err := p.enforceBinaryExpression(cs, fileScope, functionScope, expected, e.Left, e.Right, e.Span())
		if err != nil {
			return nil, err
		}
		//
		return gadgets.Div(cs, left, right, e.Span())
	case *ast.Pow:
		left, right, err := p.enforceBinaryExpression(cs, fileScope, functionScope, expected, e.Left, e.Right, e.Span())
		if err != nil {
			return nil, err
		}
		//
		return gadgets.Pow(cs, left, right, e.Span())

	// Boolean operations
	case *ast.Not:
		inner, err := p.EnforceExpression(cs, fileScope, functionScope, expected, e.Inner)
		if err != nil {
			return nil, err
		}
		//
		return gadgets.Not(cs, inner, e.Span())
	case *ast.Or:
		left, right, err := p.enforceBinaryExpression(cs, fileScope, functionScope, expected, e.Left, e.Right, e.Span())
		if err != nil {
			return nil, err
		}
		//
		return gadgets.Or(cs, left, right, e.Span())
	case *ast.And:
		left, right, err := p.enforceBinaryExpression(cs, fileScope, functionScope, expected, e.Left, e.Right, e.Span())
		if err != nil {
			return nil, err
		}
		//
		return gadgets.And(cs, left, right, e.Span())

	// Comparisons resolve their operands against an empty expected-type set:
	// they are type-agnostic on input and fixed-boolean on output, so the
	// caller's expectation must not constrain the operands.
	case *ast.Eq:
		left, right, err := p.enforceBinaryExpression(cs, fileScope, functionScope, nil, e.Left, e.Right, e.Span())
		if err != nil {
			return nil, err
		}
		//
		return gadgets.Eq(cs, left, right, e.Span())
	case *ast.Ge:
		left, right, err := p.enforceBinaryExpression(cs, fileScope, functionScope, nil, e.Left, e.Right, e.Span())
		if err != nil {
			return nil, err
		}
		//
		return gadgets.Ge(cs, left, right, e.Span())
	case *ast.Gt:
		left, right, err := p.enforceBinaryExpression(cs, fileScope, functionScope, nil, e.Left, e.Right, e.Span())
		if err != nil {
			return nil, err
		}
		//
		return gadgets.Gt(cs, left, right, e.Span())
	case *ast.Le:
		left, right, err := p.enforceBinaryExpression(cs, fileScope, functionScope, nil, e.Left, e.Right, e.Span())
		if err != nil {
			return nil, err
		}
		//
		return gadgets.Le(cs, left, right, e.Span())
	case *ast.Lt:
		left, right, err := p.enforceBinaryExpression(cs, fileScope, functionScope, nil, e.Left, e.Right, e.Span())
		if err != nil {
			return nil, err
		}
		//
		return gadgets.Lt(cs, left, right, e.Span())

	// Conditionals
	case *ast.Conditional:
		return p.enforceConditionalExpression(cs, fileScope, functionScope, expected, e)

	// Arrays
	case *ast.ArrayInline:
		return p.enforceArrayExpression(cs, fileScope, functionScope, expected, e)
	case *ast.ArrayAccess:
		return p.enforceArrayAccessExpression(cs, fileScope, functionScope, expected, e)

	// Circuits
	case *ast.CircuitInit:
		return p.enforceCircuitExpression(cs, fileScope, functionScope, e)
	case *ast.CircuitMemberAccess:
		return p.enforceCircuitAccessExpression(cs, fileScope, functionScope, expected, e)
	case *ast.CircuitStaticAccess:
		return p.enforceCircuitStaticAccessExpression(cs, fileScope, functionScope, expected, e)

	// Functions
	case *ast.Call:
		return p.enforceFunctionCallExpression(cs, fileScope, functionScope, expected, e)

	default:
		panic(fmt.Sprintf("unknown expression %T", expression))
	}
}

// enforceNumberImplicit resolves an implicitly-typed numeric literal.  With
// exactly one expected type the literal converts now; with zero or several
// candidates it stays unresolved until more context (e.g. the other operand
// of a binary expression) narrows it down.
func enforceNumberImplicit(expected []ast.Type, text string, span source.Span) (value.ConstrainedValue, error) {
	if len(expected) == 1 {
		return value.FromType(text, expected[0], span)
	}
	//
	return &value.Unresolved{Text: text}, nil
}
