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

// Package parser translates the s-expression surface syntax into the
// abstract syntax tree.  Each constructed node carries the span of the
// s-expression it was translated from.
package parser

import (
	"github.com/leolang/go-leo/pkg/ast"
	"github.com/leolang/go-leo/pkg/sexp"
	"github.com/leolang/go-leo/pkg/util/source"
)

// ParseFile parses a given source file into a sequence of top-level
// declarations.
func ParseFile(file *source.File) ([]ast.Declaration, *source.SyntaxError) {
	terms, srcmap, err := sexp.ParseAll(file)
	if err != nil {
		return nil, err
	}
	//
	t := translator{srcmap}
	declarations := make([]ast.Declaration, len(terms))
	//
	for i, term := range terms {
		declaration, err := t.translateDeclaration(term)
		if err != nil {
			return nil, err
		}
		//
		declarations[i] = declaration
	}
	//
	return declarations, nil
}

// ParseExpression parses a given source file as a single expression.
func ParseExpression(file *source.File) (ast.Expression, *source.SyntaxError) {
	term, srcmap, err := sexp.Parse(file)
	if err != nil {
		return nil, err
	}
	//
	t := translator{srcmap}
	//
	return t.translateExpression(term)
}

// Translator packages up information needed for translating s-expressions
// into AST nodes.
type translator struct {
	srcmap *source.Map[sexp.SExp]
}

func (t *translator) spanOf(term sexp.SExp) source.Span {
	return t.srcmap.Get(term)
}

// ============================================================================
// Declarations
// ============================================================================

func (t *translator) translateDeclaration(term sexp.SExp) (ast.Declaration, *source.SyntaxError) {
	list, ok := term.(*sexp.List)
	if !ok || list.Len() == 0 {
		return nil, t.srcmap.SyntaxError(term, "expected declaration")
	}
	//
	switch {
	case list.MatchSymbols(1, "function"):
		return t.translateFunction(list)
	case list.MatchSymbols(1, "circuit"):
		return t.translateCircuit(list)
	default:
		return nil, t.srcmap.SyntaxError(term, "unknown declaration")
	}
}

// translateFunction translates "(function name ((p type)...) (returns type...) stmt...)".
func (t *translator) translateFunction(list *sexp.List) (*ast.Function, *source.SyntaxError) {
	if list.Len() < 3 {
		return nil, t.srcmap.SyntaxError(list, "malformed function declaration")
	}
	//
	name, err := t.translateIdentifier(list.Get(1))
	if err != nil {
		return nil, err
	}
	//
	parameters, err := t.translateParameters(list.Get(2))
	if err != nil {
		return nil, err
	}
	//
	returns, rest, err := t.translateReturns(list)
	if err != nil {
		return nil, err
	}
	//
	body := make([]ast.Statement, len(rest))
	//
	for i, term := range rest {
		statement, err := t.translateStatement(term)
		if err != nil {
			return nil, err
		}
		//
		body[i] = statement
	}
	//
	return ast.NewFunction(name, parameters, returns, body, t.spanOf(list)), nil
}

func (t *translator) translateParameters(term sexp.SExp) ([]ast.Parameter, *source.SyntaxError) {
	list, ok := term.(*sexp.List)
	if !ok {
		return nil, t.srcmap.SyntaxError(term, "expected parameter list")
	}
	//
	parameters := make([]ast.Parameter, list.Len())
	//
	for i, element := range list.Elements {
		pair, ok := element.(*sexp.List)
		if !ok || pair.Len() != 2 {
			return nil, t.srcmap.SyntaxError(element, "expected (name type) parameter")
		}
		//
		name, err := t.translateIdentifier(pair.Get(0))
		if err != nil {
			return nil, err
		}
		//
		typ, err := t.translateType(pair.Get(1))
		if err != nil {
			return nil, err
		}
		//
		parameters[i] = ast.Parameter{Name: name, Type: typ}
	}
	//
	return parameters, nil
}

// translateReturns extracts the optional "(returns type...)" clause,
// returning the declared types along with the remaining body terms.
func (t *translator) translateReturns(list *sexp.List) ([]ast.Type, []sexp.SExp, *source.SyntaxError) {
	rest := list.Elements[3:]
	//
	if list.Len() < 4 {
		return nil, nil, nil
	}
	//
	clause, ok := list.Get(3).(*sexp.List)
	if !ok || !clause.MatchSymbols(1, "returns") {
		return nil, rest, nil
	}
	//
	returns := make([]ast.Type, clause.Len()-1)
	//
	for i, element := range clause.Elements[1:] {
		typ, err := t.translateType(element)
		if err != nil {
			return nil, nil, err
		}
		//
		returns[i] = typ
	}
	//
	return returns, list.Elements[4:], nil
}

// translateCircuit translates "(circuit Name member...)" where a member is
// "(var name type)", a nested function, or "(static ...)".
func (t *translator) translateCircuit(list *sexp.List) (*ast.Circuit, *source.SyntaxError) {
	if list.Len() < 2 {
		return nil, t.srcmap.SyntaxError(list, "malformed circuit declaration")
	}
	//
	name, err := t.translateIdentifier(list.Get(1))
	if err != nil {
		return nil, err
	}
	//
	members := make([]ast.CircuitMember, len(list.Elements[2:]))
	//
	for i, term := range list.Elements[2:] {
		member, ok := term.(*sexp.List)
		if !ok || member.Len() == 0 {
			return nil, t.srcmap.SyntaxError(term, "expected circuit member")
		}
		//
		switch {
		case member.MatchSymbols(3, "var"):
			memberName, err := t.translateIdentifier(member.Get(1))
			if err != nil {
				return nil, err
			}
			//
			typ, err := t.translateType(member.Get(2))
			if err != nil {
				return nil, err
			}
			//
			members[i] = ast.CircuitMember{Variable: &ast.Parameter{Name: memberName, Type: typ}}
		case member.MatchSymbols(1, "function"):
			fn, err := t.translateFunction(member)
			if err != nil {
				return nil, err
			}
			//
			members[i] = ast.CircuitMember{Function: fn}
		case member.MatchSymbols(1, "static"):
			fn, err := t.translateFunction(member)
			if err != nil {
				return nil, err
			}
			//
			members[i] = ast.CircuitMember{Function: fn, Static: true}
		default:
			return nil, t.srcmap.SyntaxError(term, "unknown circuit member")
		}
	}
	//
	return ast.NewCircuit(name, members, t.spanOf(list)), nil
}

// ============================================================================
// Statements
// ============================================================================

func (t *translator) translateStatement(term sexp.SExp) (ast.Statement, *source.SyntaxError) {
	if list, ok := term.(*sexp.List); ok {
		switch {
		case list.MatchSymbols(1, "let"):
			return t.translateDefinition(list)
		case list.MatchSymbols(1, "return"):
			return t.translateReturn(list)
		}
	}
	// Otherwise, an expression statement.
	expression, err := t.translateExpression(term)
	if err != nil {
		return nil, err
	}
	//
	return ast.NewExpressionStatement(expression, t.spanOf(term)), nil
}

// translateDefinition translates "(let name expr)" or "(let name type expr)".
func (t *translator) translateDefinition(list *sexp.List) (*ast.Definition, *source.SyntaxError) {
	if list.Len() != 3 && list.Len() != 4 {
		return nil, t.srcmap.SyntaxError(list, "malformed let binding")
	}
	//
	name, err := t.translateIdentifier(list.Get(1))
	if err != nil {
		return nil, err
	}
	//
	var typ ast.Type
	//
	valueTerm := list.Get(2)
	//
	if list.Len() == 4 {
		if typ, err = t.translateType(list.Get(2)); err != nil {
			return nil, err
		}
		//
		valueTerm = list.Get(3)
	}
	//
	expression, err := t.translateExpression(valueTerm)
	if err != nil {
		return nil, err
	}
	//
	return ast.NewDefinition(name, typ, expression, t.spanOf(list)), nil
}

func (t *translator) translateReturn(list *sexp.List) (*ast.Return, *source.SyntaxError) {
	values, err := t.translateExpressions(list.Elements[1:])
	if err != nil {
		return nil, err
	}
	//
	return ast.NewReturn(values, t.spanOf(list)), nil
}
