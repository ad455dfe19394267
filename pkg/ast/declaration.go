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
package ast

import (
	"github.com/leolang/go-leo/pkg/util/source"
)

// Statement represents a single statement within a function body.  Like
// expressions, statements form a closed sum dispatched exhaustively by the
// function enforcer.
type Statement interface {
	// Span returns the span of the original source text covered by this
	// statement.
	Span() source.Span
	//
	isStatement()
}

// Definition binds the value of an expression to a fresh local variable
// (a "let" statement).  The declared type is optional; when present it
// drives literal-type inference for the bound expression.
type Definition struct {
	Name  *Identifier
	Type  Type
	Value Expression
	span  source.Span
}

// Return produces zero or more values from the enclosing function.
type Return struct {
	Values []Expression
	span   source.Span
}

// ExpressionStatement evaluates an expression purely for its emitted
// constraints, discarding the resulting value.
type ExpressionStatement struct {
	Inner Expression
	span  source.Span
}

// NewDefinition constructs a new let binding.  The declared type may be nil.
func NewDefinition(name *Identifier, typ Type, value Expression, span source.Span) *Definition {
	return &Definition{name, typ, value, span}
}

// NewReturn constructs a new return statement.
func NewReturn(values []Expression, span source.Span) *Return {
	return &Return{values, span}
}

// NewExpressionStatement constructs a new expression statement.
func NewExpressionStatement(inner Expression, span source.Span) *ExpressionStatement {
	return &ExpressionStatement{inner, span}
}

// Span returns the span covered by this statement.
func (s *Definition) Span() source.Span { return s.span }

// Span returns the span covered by this statement.
func (s *Return) Span() source.Span { return s.span }

// Span returns the span covered by this statement.
func (s *ExpressionStatement) Span() source.Span { return s.span }

func (s *Definition) isStatement()          {}
func (s *Return) isStatement()              {}
func (s *ExpressionStatement) isStatement() {}

// Declaration is a top-level declaration within a program: a function or a
// circuit.
type Declaration interface {
	// Span returns the span of the original source text covered by this
	// declaration.
	Span() source.Span
	//
	isDeclaration()
}

func (f *Function) isDeclaration() {}
func (c *Circuit) isDeclaration()  {}

// Parameter is a single named, typed input of a function.
type Parameter struct {
	Name *Identifier
	Type Type
}

// Function represents a function declaration: a name, typed parameters, a
// (possibly empty) list of return types and a body of statements.
type Function struct {
	Name       *Identifier
	Parameters []Parameter
	Returns    []Type
	Body       []Statement
	span       source.Span
}

// NewFunction constructs a new function declaration.
func NewFunction(name *Identifier, parameters []Parameter, returns []Type, body []Statement, span source.Span) *Function {
	return &Function{name, parameters, returns, body, span}
}

// Span returns the span covered by this declaration.
func (f *Function) Span() source.Span { return f.span }

// CircuitMember is either a typed member variable or a (possibly static)
// member function of a circuit declaration.
type CircuitMember struct {
	// Variable member (nil for function members).
	Variable *Parameter
	// Function member (nil for variable members).
	Function *Function
	// Static indicates a function member invoked on the declaration rather
	// than an instance.
	Static bool
}

// Circuit represents a circuit (struct-like composite) declaration.
type Circuit struct {
	Name    *Identifier
	Members []CircuitMember
	span    source.Span
}

// NewCircuit constructs a new circuit declaration.
func NewCircuit(name *Identifier, members []CircuitMember, span source.Span) *Circuit {
	return &Circuit{name, members, span}
}

// Span returns the span covered by this declaration.
func (c *Circuit) Span() source.Span { return c.span }
