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
package parser

import (
	"strconv"
	"strings"

	"github.com/leolang/go-leo/pkg/ast"
	"github.com/leolang/go-leo/pkg/sexp"
	"github.com/leolang/go-leo/pkg/util/source"
)

func (t *translator) translateExpression(term sexp.SExp) (ast.Expression, *source.SyntaxError) {
	switch term := term.(type) {
	case *sexp.Symbol:
		return t.translateSymbol(term)
	case *sexp.List:
		return t.translateList(term)
	default:
		return nil, t.srcmap.SyntaxError(term, "expected expression")
	}
}

func (t *translator) translateExpressions(terms []sexp.SExp) ([]ast.Expression, *source.SyntaxError) {
	expressions := make([]ast.Expression, len(terms))
	//
	for i, term := range terms {
		expression, err := t.translateExpression(term)
		if err != nil {
			return nil, err
		}
		//
		expressions[i] = expression
	}
	//
	return expressions, nil
}

// ============================================================================
// Atoms
// ============================================================================

// translateSymbol classifies a bare token as one of the literal forms, or
// else an identifier.  Numeric tokens carry an optional type suffix (e.g.
// "5u8", "3field"); without one the literal's type is inferred from context.
func (t *translator) translateSymbol(symbol *sexp.Symbol) (ast.Expression, *source.SyntaxError) {
	var (
		span = t.spanOf(symbol)
		text = symbol.Value
	)
	//
	switch {
	case text == "true":
		return ast.NewBooleanLiteral(true, span), nil
	case text == "false":
		return ast.NewBooleanLiteral(false, span), nil
	case strings.HasPrefix(text, "aleo1"):
		return ast.NewAddressLiteral(text, span), nil
	}
	//
	if digits, suffix, ok := splitNumeric(text); ok {
		switch suffix {
		case "":
			return ast.NewImplicitLiteral(digits, span), nil
		case "field":
			return ast.NewFieldLiteral(digits, span), nil
		case "group":
			return ast.NewGroupLiteral(digits, span), nil
		default:
			typ, ok := integerTypeOf(suffix)
			if !ok {
				return nil, t.srcmap.SyntaxError(symbol, "unknown literal suffix")
			}
			//
			return ast.NewIntegerLiteral(typ, digits, span), nil
		}
	}
	//
	return ast.NewIdentifier(text, span), nil
}

// splitNumeric splits a token into leading digits (with optional sign) and
// the trailing suffix, reporting whether the token is numeric at all.
func splitNumeric(text string) (string, string, bool) {
	i := 0
	//
	if strings.HasPrefix(text, "-") {
		i = 1
	}
	//
	n := i
	for n < len(text) && text[n] >= '0' && text[n] <= '9' {
		n++
	}
	// At least one digit required.
	if n == i {
		return "", "", false
	}
	//
	return text[:n], text[n:], true
}

func integerTypeOf(suffix string) (ast.IntegerType, bool) {
	var signed bool
	//
	switch suffix[0] {
	case 'u':
		signed = false
	case 'i':
		signed = true
	default:
		return ast.IntegerType{}, false
	}
	//
	switch suffix[1:] {
	case "8", "16", "32", "64", "128":
		width, _ := strconv.ParseUint(suffix[1:], 10, 16)
		return ast.IntegerType{Width: uint(width), Signed: signed}, true
	default:
		return ast.IntegerType{}, false
	}
}

// ============================================================================
// Compound forms
// ============================================================================

func (t *translator) translateList(list *sexp.List) (ast.Expression, *source.SyntaxError) {
	if list.Len() == 0 {
		return nil, t.srcmap.SyntaxError(list, "empty expression")
	}
	//
	head, ok := list.Get(0).(*sexp.Symbol)
	if !ok {
		return nil, t.srcmap.SyntaxError(list.Get(0), "expected operator")
	}
	//
	span := t.spanOf(list)
	//
	switch head.Value {
	case "+", "-", "*", "/", "**", "&&", "||", "==", ">=", ">", "<=", "<":
		return t.translateBinary(list, head.Value, span)
	case "!":
		return t.translateNot(list, span)
	case "if":
		return t.translateConditional(list, span)
	case "array":
		return t.translateArrayInline(list, span)
	case "index":
		return t.translateArrayAccess(list, span)
	case "new":
		return t.translateCircuitInit(list, span)
	case "member":
		return t.translateCircuitAccess(list, span)
	case "static":
		return t.translateCircuitStaticAccess(list, span)
	case "call":
		return t.translateCall(list, span)
	default:
		return nil, t.srcmap.SyntaxError(head, "unknown operator")
	}
}

func (t *translator) translateBinary(list *sexp.List, op string, span source.Span) (ast.Expression, *source.SyntaxError) {
	if list.Len() != 3 {
		return nil, t.srcmap.SyntaxError(list, "binary operator expects two operands")
	}
	//
	left, err := t.translateExpression(list.Get(1))
	if err != nil {
		return nil, err
	}
	//
	right, err := t.translateExpression(list.Get(2))
	if err != nil {
		return nil, err
	}
	//
	operands := ast.NewBinary(left, right, span)
	//
	switch op {
	case "+":
		return &ast.Add{Binary: operands}, nil
	case "-":
		return &ast.Sub{Binary: operands}, nil
	case "*":
		return &ast.Mul{Binary: operands}, nil
	case "/":
		return &ast.Div{Binary: operands}, nil
	case "**":
		return &ast.Pow{Binary: operands}, nil
	case "&&":
		return &ast.And{Binary: operands}, nil
	case "||":
		return &ast.Or{Binary: operands}, nil
	case "==":
		return &ast.Eq{Binary: operands}, nil
	case ">=":
		return &ast.Ge{Binary: operands}, nil
	case ">":
		return &ast.Gt{Binary: operands}, nil
	case "<=":
		return &ast.Le{Binary: operands}, nil
	default:
		return &ast.Lt{Binary: operands}, nil
	}
}

func (t *translator) translateNot(list *sexp.List, span source.Span) (ast.Expression, *source.SyntaxError) {
	if list.Len() != 2 {
		return nil, t.srcmap.SyntaxError(list, "negation expects one operand")
	}
	//
	inner, err := t.translateExpression(list.Get(1))
	if err != nil {
		return nil, err
	}
	//
	return ast.NewNot(inner, span), nil
}

func (t *translator) translateConditional(list *sexp.List, span source.Span) (ast.Expression, *source.SyntaxError) {
	if list.Len() != 4 {
		return nil, t.srcmap.SyntaxError(list, "conditional expects condition and two branches")
	}
	//
	condition, err := t.translateExpression(list.Get(1))
	if err != nil {
		return nil, err
	}
	//
	then, err := t.translateExpression(list.Get(2))
	if err != nil {
		return nil, err
	}
	//
	els, err := t.translateExpression(list.Get(3))
	if err != nil {
		return nil, err
	}
	//
	return ast.NewConditional(condition, then, els, span), nil
}

func (t *translator) translateArrayInline(list *sexp.List, span source.Span) (ast.Expression, *source.SyntaxError) {
	elements, err := t.translateExpressions(list.Elements[1:])
	if err != nil {
		return nil, err
	}
	//
	return ast.NewArrayInline(elements, span), nil
}

func (t *translator) translateArrayAccess(list *sexp.List, span source.Span) (ast.Expression, *source.SyntaxError) {
	if list.Len() != 3 {
		return nil, t.srcmap.SyntaxError(list, "index expects array and index")
	}
	//
	array, err := t.translateExpression(list.Get(1))
	if err != nil {
		return nil, err
	}
	//
	index, err := t.translateExpression(list.Get(2))
	if err != nil {
		return nil, err
	}
	//
	return ast.NewArrayAccess(array, index, span), nil
}

// translateCircuitInit translates "(new Name (member expr)...)".
func (t *translator) translateCircuitInit(list *sexp.List, span source.Span) (ast.Expression, *source.SyntaxError) {
	if list.Len() < 2 {
		return nil, t.srcmap.SyntaxError(list, "malformed circuit constructor")
	}
	//
	name, err := t.translateIdentifier(list.Get(1))
	if err != nil {
		return nil, err
	}
	//
	members := make([]ast.CircuitVariable, len(list.Elements[2:]))
	//
	for i, term := range list.Elements[2:] {
		pair, ok := term.(*sexp.List)
		if !ok || pair.Len() != 2 {
			return nil, t.srcmap.SyntaxError(term, "expected (member expr) initialiser")
		}
		//
		memberName, err := t.translateIdentifier(pair.Get(0))
		if err != nil {
			return nil, err
		}
		//
		expression, err := t.translateExpression(pair.Get(1))
		if err != nil {
			return nil, err
		}
		//
		members[i] = ast.CircuitVariable{Name: memberName, Expression: expression}
	}
	//
	return ast.NewCircuitInit(name, members, span), nil
}

func (t *translator) translateCircuitAccess(list *sexp.List, span source.Span) (ast.Expression, *source.SyntaxError) {
	if list.Len() != 3 {
		return nil, t.srcmap.SyntaxError(list, "member access expects target and member")
	}
	//
	target, err := t.translateExpression(list.Get(1))
	if err != nil {
		return nil, err
	}
	//
	member, err := t.translateIdentifier(list.Get(2))
	if err != nil {
		return nil, err
	}
	//
	return ast.NewCircuitMemberAccess(target, member, span), nil
}

func (t *translator) translateCircuitStaticAccess(list *sexp.List, span source.Span) (ast.Expression, *source.SyntaxError) {
	if list.Len() != 3 {
		return nil, t.srcmap.SyntaxError(list, "static access expects circuit and member")
	}
	//
	target, err := t.translateExpression(list.Get(1))
	if err != nil {
		return nil, err
	}
	//
	member, err := t.translateIdentifier(list.Get(2))
	if err != nil {
		return nil, err
	}
	//
	return ast.NewCircuitStaticAccess(target, member, span), nil
}

func (t *translator) translateCall(list *sexp.List, span source.Span) (ast.Expression, *source.SyntaxError) {
	if list.Len() < 2 {
		return nil, t.srcmap.SyntaxError(list, "call expects a function")
	}
	//
	function, err := t.translateExpression(list.Get(1))
	if err != nil {
		return nil, err
	}
	//
	arguments, err := t.translateExpressions(list.Elements[2:])
	if err != nil {
		return nil, err
	}
	//
	return ast.NewCall(function, arguments, span), nil
}

// ============================================================================
// Identifiers & types
// ============================================================================

func (t *translator) translateIdentifier(term sexp.SExp) (*ast.Identifier, *source.SyntaxError) {
	symbol, ok := term.(*sexp.Symbol)
	if !ok {
		return nil, t.srcmap.SyntaxError(term, "expected identifier")
	}
	//
	return ast.NewIdentifier(symbol.Value, t.spanOf(symbol)), nil
}

// translateType translates a type denotation: a primitive name, an integer
// type, "(array type size)", or a circuit name.
func (t *translator) translateType(term sexp.SExp) (ast.Type, *source.SyntaxError) {
	switch term := term.(type) {
	case *sexp.Symbol:
		switch term.Value {
		case "address":
			return ast.AddressType{}, nil
		case "bool":
			return ast.BooleanType{}, nil
		case "field":
			return ast.FieldType{}, nil
		case "group":
			return ast.GroupType{}, nil
		}
		//
		if typ, ok := integerTypeOf(term.Value); ok {
			return typ, nil
		}
		//
		return ast.CircuitType{Name: term.Value}, nil
	case *sexp.List:
		if term.Len() != 3 || !term.MatchSymbols(1, "array") {
			return nil, t.srcmap.SyntaxError(term, "malformed array type")
		}
		//
		element, err := t.translateType(term.Get(1))
		if err != nil {
			return nil, err
		}
		//
		sizeSymbol, ok := term.Get(2).(*sexp.Symbol)
		if !ok {
			return nil, t.srcmap.SyntaxError(term.Get(2), "expected array size")
		}
		//
		size, sizeErr := strconv.ParseUint(sizeSymbol.Value, 10, 32)
		if sizeErr != nil {
			return nil, t.srcmap.SyntaxError(sizeSymbol, "invalid array size")
		}
		//
		return ast.ArrayType{Element: element, Size: uint(size)}, nil
	default:
		return nil, t.srcmap.SyntaxError(term, "expected type")
	}
}
