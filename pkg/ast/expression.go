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
	"fmt"
	"strings"

	"github.com/leolang/go-leo/pkg/util/source"
)

// Expression represents an arbitrary expression over the variables in scope.
// Expressions form a closed sum: the expression enforcer dispatches over
// every variant with no default case, so adding a variant without a handler
// is a compile-or-panic failure rather than silent misbehaviour.  Every
// expression retains the span of the source text it was parsed from, which is
// what errors and constraint namespaces are attributed to.
type Expression interface {
	fmt.Stringer
	// Span returns the span of the original source text covered by this
	// expression.
	Span() source.Span
	//
	isExpression()
}

// Identifier represents an unresolved reference to a named variable,
// function or circuit.  Identifiers double as name holders within
// declarations (function names, parameter names, circuit members).
type Identifier struct {
	Name string
	span source.Span
}

// NewIdentifier constructs a new identifier over a given span.
func NewIdentifier(name string, span source.Span) *Identifier {
	return &Identifier{name, span}
}

// ============================================================================
// Literals
// ============================================================================

// AddressLiteral represents an explicit address constant.
type AddressLiteral struct {
	Value string
	span  source.Span
}

// BooleanLiteral represents a boolean constant.
type BooleanLiteral struct {
	Value bool
	span  source.Span
}

// FieldLiteral represents a field-element constant, retained in textual form
// until converted by the value layer.
type FieldLiteral struct {
	Text string
	span source.Span
}

// GroupLiteral represents a group-element constant, retained in textual form
// until converted by the value layer.
type GroupLiteral struct {
	Text string
	span source.Span
}

// IntegerLiteral represents an integer constant of an explicit integer type.
type IntegerLiteral struct {
	Type IntegerType
	Text string
	span source.Span
}

// ImplicitLiteral represents a numeric constant whose type is not given by
// the source text, and must instead be inferred from context.
type ImplicitLiteral struct {
	Text string
	span source.Span
}

// ============================================================================
// Operators
// ============================================================================

// Add represents the sum of two expressions.
type Add struct{ Binary }

// Sub represents the difference of two expressions.
type Sub struct{ Binary }

// Mul represents the product of two expressions.
type Mul struct{ Binary }

// Div represents the quotient of two expressions.
type Div struct{ Binary }

// Pow represents one expression raised to the power of another.
type Pow struct{ Binary }

// Not represents logical negation of an expression.
type Not struct {
	Inner Expression
	span  source.Span
}

// Or represents logical disjunction of two expressions.
type Or struct{ Binary }

// And represents logical conjunction of two expressions.
type And struct{ Binary }

// Eq represents equality between two expressions.
type Eq struct{ Binary }

// Ge represents ordering (>=) between two expressions.
type Ge struct{ Binary }

// Gt represents ordering (>) between two expressions.
type Gt struct{ Binary }

// Le represents ordering (<=) between two expressions.
type Le struct{ Binary }

// Lt represents ordering (<) between two expressions.
type Lt struct{ Binary }

// Conditional represents a ternary if/else expression.
type Conditional struct {
	Condition Expression
	Then      Expression
	Else      Expression
	span      source.Span
}

// ============================================================================
// Composites
// ============================================================================

// ArrayInline represents an inline array constructor.
type ArrayInline struct {
	Elements []Expression
	span     source.Span
}

// ArrayAccess represents indexing into an array.
type ArrayAccess struct {
	Array Expression
	Index Expression
	span  source.Span
}

// CircuitVariable is a single named member initialiser within a circuit
// constructor.
type CircuitVariable struct {
	Name       *Identifier
	Expression Expression
}

// CircuitInit represents construction of a circuit instance from named
// member initialisers.
type CircuitInit struct {
	Name    *Identifier
	Members []CircuitVariable
	span    source.Span
}

// CircuitMemberAccess represents projection of a member out of a circuit
// instance.
type CircuitMemberAccess struct {
	Target Expression
	Member *Identifier
	span   source.Span
}

// CircuitStaticAccess represents projection of a static function out of a
// circuit declaration (rather than an instance).
type CircuitStaticAccess struct {
	Target Expression
	Member *Identifier
	span   source.Span
}

// Call represents invocation of a function-valued expression on zero or more
// argument expressions.  Arguments are deliberately unevaluated here; the
// function enforcer evaluates and binds them.
type Call struct {
	Function  Expression
	Arguments []Expression
	span      source.Span
}

// ============================================================================
// Shared binary shape
// ============================================================================

// Binary holds the two operands shared by every binary operator variant.
type Binary struct {
	Left  Expression
	Right Expression
	span  source.Span
}

// NewBinary constructs the operand pair for a binary operator.
func NewBinary(left Expression, right Expression, span source.Span) Binary {
	return Binary{left, right, span}
}

// Span returns the span covered by this operator expression.
func (e Binary) Span() source.Span { return e.span }

// ============================================================================
// Constructors for span-carrying variants
// ============================================================================

// NewAddressLiteral constructs a new address literal.
func NewAddressLiteral(value string, span source.Span) *AddressLiteral {
	return &AddressLiteral{value, span}
}

// NewBooleanLiteral constructs a new boolean literal.
func NewBooleanLiteral(value bool, span source.Span) *BooleanLiteral {
	return &BooleanLiteral{value, span}
}

// NewFieldLiteral constructs a new field literal.
func NewFieldLiteral(text string, span source.Span) *FieldLiteral {
	return &FieldLiteral{text, span}
}

// NewGroupLiteral constructs a new group literal.
func NewGroupLiteral(text string, span source.Span) *GroupLiteral {
	return &GroupLiteral{text, span}
}

// NewIntegerLiteral constructs a new explicitly-typed integer literal.
func NewIntegerLiteral(typ IntegerType, text string, span source.Span) *IntegerLiteral {
	return &IntegerLiteral{typ, text, span}
}

// NewImplicitLiteral constructs a new implicitly-typed numeric literal.
func NewImplicitLiteral(text string, span source.Span) *ImplicitLiteral {
	return &ImplicitLiteral{text, span}
}

// NewNot constructs a new logical negation.
func NewNot(inner Expression, span source.Span) *Not {
	return &Not{inner, span}
}

// NewConditional constructs a new if/else expression.
func NewConditional(condition, then, els Expression, span source.Span) *Conditional {
	return &Conditional{condition, then, els, span}
}

// NewArrayInline constructs a new inline array constructor.
func NewArrayInline(elements []Expression, span source.Span) *ArrayInline {
	return &ArrayInline{elements, span}
}

// NewArrayAccess constructs a new array access.
func NewArrayAccess(array, index Expression, span source.Span) *ArrayAccess {
	return &ArrayAccess{array, index, span}
}

// NewCircuitInit constructs a new circuit constructor expression.
func NewCircuitInit(name *Identifier, members []CircuitVariable, span source.Span) *CircuitInit {
	return &CircuitInit{name, members, span}
}

// NewCircuitMemberAccess constructs a new circuit member access.
func NewCircuitMemberAccess(target Expression, member *Identifier, span source.Span) *CircuitMemberAccess {
	return &CircuitMemberAccess{target, member, span}
}

// NewCircuitStaticAccess constructs a new static circuit member access.
func NewCircuitStaticAccess(target Expression, member *Identifier, span source.Span) *CircuitStaticAccess {
	return &CircuitStaticAccess{target, member, span}
}

// NewCall constructs a new function call expression.
func NewCall(function Expression, arguments []Expression, span source.Span) *Call {
	return &Call{function, arguments, span}
}

// ============================================================================
// Expression interface plumbing
// ============================================================================

// Span returns the span covered by this identifier.
func (e *Identifier) Span() source.Span { return e.span }

// Span returns the span covered by this literal.
func (e *AddressLiteral) Span() source.Span { return e.span }

// Span returns the span covered by this literal.
func (e *BooleanLiteral) Span() source.Span { return e.span }

// Span returns the span covered by this literal.
func (e *FieldLiteral) Span() source.Span { return e.span }

// Span returns the span covered by this literal.
func (e *GroupLiteral) Span() source.Span { return e.span }

// Span returns the span covered by this literal.
func (e *IntegerLiteral) Span() source.Span { return e.span }

// Span returns the span covered by this literal.
func (e *ImplicitLiteral) Span() source.Span { return e.span }

// Span returns the span covered by this expression.
func (e *Not) Span() source.Span { return e.span }

// Span returns the span covered by this expression.
func (e *Conditional) Span() source.Span { return e.span }

// Span returns the span covered by this expression.
func (e *ArrayInline) Span() source.Span { return e.span }

// Span returns the span covered by this expression.
func (e *ArrayAccess) Span() source.Span { return e.span }

// Span returns the span covered by this expression.
func (e *CircuitInit) Span() source.Span { return e.span }

// Span returns the span covered by this expression.
func (e *CircuitMemberAccess) Span() source.Span { return e.span }

// Span returns the span covered by this expression.
func (e *CircuitStaticAccess) Span() source.Span { return e.span }

// Span returns the span covered by this expression.
func (e *Call) Span() source.Span { return e.span }

func (e *Identifier) isExpression()          {}
func (e *AddressLiteral) isExpression()      {}
func (e *BooleanLiteral) isExpression()      {}
func (e *FieldLiteral) isExpression()        {}
func (e *GroupLiteral) isExpression()        {}
func (e *IntegerLiteral) isExpression()      {}
func (e *ImplicitLiteral) isExpression()     {}
func (e *Add) isExpression()                 {}
func (e *Sub) isExpression()                 {}
func (e *Mul) isExpression()                 {}
func (e *Div) isExpression()                 {}
func (e *Pow) isExpression()                 {}
func (e *Not) isExpression()                 {}
func (e *Or) isExpression()                  {}
func (e *And) isExpression()                 {}
func (e *Eq) isExpression()                  {}
func (e *Ge) isExpression()                  {}
func (e *Gt) isExpression()                  {}
func (e *Le) isExpression()                  {}
func (e *Lt) isExpression()                  {}
func (e *Conditional) isExpression()         {}
func (e *ArrayInline) isExpression()         {}
func (e *ArrayAccess) isExpression()         {}
func (e *CircuitInit) isExpression()         {}
func (e *CircuitMemberAccess) isExpression() {}
func (e *CircuitStaticAccess) isExpression() {}
func (e *Call) isExpression()                {}

func (e *Identifier) String() string      { return e.Name }
func (e *AddressLiteral) String() string  { return e.Value }
func (e *BooleanLiteral) String() string  { return fmt.Sprintf("%t", e.Value) }
func (e *FieldLiteral) String() string    { return e.Text + "field" }
func (e *GroupLiteral) String() string    { return e.Text + "group" }
func (e *IntegerLiteral) String() string  { return e.Text + e.Type.String() }
func (e *ImplicitLiteral) String() string { return e.Text }

func (e *Add) String() string { return binaryString("+", e.Left, e.Right) }
func (e *Sub) String() string { return binaryString("-", e.Left, e.Right) }
func (e *Mul) String() string { return binaryString("*", e.Left, e.Right) }
func (e *Div) String() string { return binaryString("/", e.Left, e.Right) }
func (e *Pow) String() string { return binaryString("**", e.Left, e.Right) }
func (e *Not) String() string { return fmt.Sprintf("(! %s)", e.Inner.String()) }
func (e *Or) String() string  { return binaryString("||", e.Left, e.Right) }
func (e *And) String() string { return binaryString("&&", e.Left, e.Right) }
func (e *Eq) String() string  { return binaryString("==", e.Left, e.Right) }
func (e *Ge) String() string  { return binaryString(">=", e.Left, e.Right) }
func (e *Gt) String() string  { return binaryString(">", e.Left, e.Right) }
func (e *Le) String() string  { return binaryString("<=", e.Left, e.Right) }
func (e *Lt) String() string  { return binaryString("<", e.Left, e.Right) }

func (e *Conditional) String() string {
	return fmt.Sprintf("(if %s %s %s)", e.Condition, e.Then, e.Else)
}

func (e *ArrayInline) String() string {
	var sb strings.Builder
	//
	sb.WriteString("(array")
	//
	for _, element := range e.Elements {
		sb.WriteString(" ")
		sb.WriteString(element.String())
	}
	//
	sb.WriteString(")")
	//
	return sb.String()
}

func (e *ArrayAccess) String() string {
	return fmt.Sprintf("(index %s %s)", e.Array, e.Index)
}

func (e *CircuitInit) String() string {
	var sb strings.Builder
	//
	fmt.Fprintf(&sb, "(new %s", e.Name.Name)
	//
	for _, member := range e.Members {
		fmt.Fprintf(&sb, " (%s %s)", member.Name.Name, member.Expression)
	}
	//
	sb.WriteString(")")
	//
	return sb.String()
}

func (e *CircuitMemberAccess) String() string {
	return fmt.Sprintf("(member %s %s)", e.Target, e.Member.Name)
}

func (e *CircuitStaticAccess) String() string {
	return fmt.Sprintf("(static %s %s)", e.Target, e.Member.Name)
}

func (e *Call) String() string {
	var sb strings.Builder
	//
	fmt.Fprintf(&sb, "(call %s", e.Function)
	//
	for _, argument := range e.Arguments {
		sb.WriteString(" ")
		sb.WriteString(argument.String())
	}
	//
	sb.WriteString(")")
	//
	return sb.String()
}

func binaryString(op string, left Expression, right Expression) string {
	return fmt.Sprintf("(%s %s %s)", op, left, right)
}
