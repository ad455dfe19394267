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
package value

import (
	"strings"

	"github.com/leolang/go-leo/pkg/ast"
	"github.com/leolang/go-leo/pkg/diag"
	"github.com/leolang/go-leo/pkg/scope"
	"github.com/leolang/go-leo/pkg/util/source"
)

// FromType converts a literal's raw text into a value of a given concrete
// type, or fails with a malformed-literal error.
func FromType(text string, typ ast.Type, span source.Span) (ConstrainedValue, error) {
	switch t := typ.(type) {
	case ast.AddressType:
		return NewAddress(text, span)
	case ast.BooleanType:
		switch text {
		case "true":
			return &Bool{true}, nil
		case "false":
			return &Bool{false}, nil
		default:
			return nil, diag.New(diag.MalformedLiteral, span, "invalid boolean literal '%s'", text)
		}
	case ast.FieldType:
		return NewField(text, span)
	case ast.GroupType:
		return NewGroup(text, span)
	case ast.IntegerType:
		return NewInteger(t, text, span)
	default:
		return nil, diag.New(diag.TypeMismatch, span, "cannot convert literal '%s' to %s", text, typ)
	}
}

// ResolveType resolves a value against the set of types the surrounding
// context expects.  An unresolved literal converts when exactly one type is
// expected, and otherwise stays unresolved.  A concrete value must already
// inhabit one of the expected types (an empty set accepts anything).
func ResolveType(v ConstrainedValue, expected []ast.Type, span source.Span) (ConstrainedValue, error) {
	if u, ok := v.(*Unresolved); ok {
		if len(expected) == 1 {
			return FromType(u.Text, expected[0], span)
		}
		// Not enough context yet; stays unresolved.
		return u, nil
	}
	//
	typ, ok := v.Type()
	if !ok || len(expected) == 0 {
		return v, nil
	}
	//
	if !ast.ContainsType(expected, typ) {
		return nil, diag.New(diag.TypeMismatch, span, "expected %s, found %s", typesString(expected), typ)
	}
	//
	return v, nil
}

// ResolveTypes unifies two values to a single common concrete type, given the
// set of types the surrounding context expects.  If one side is an
// unresolved literal, it is coerced to the other side's type; if both are
// unresolved, each resolves against the expected set independently.  Two
// concrete values must agree exactly.
func ResolveTypes(left ConstrainedValue, right ConstrainedValue, expected []ast.Type,
	span source.Span) (ConstrainedValue, ConstrainedValue, error) {
	//
	leftU, leftUnresolved := left.(*Unresolved)
	rightU, rightUnresolved := right.(*Unresolved)
	//
	switch {
	case leftUnresolved && rightUnresolved:
		l, err := ResolveType(leftU, expected, span)
		if err != nil {
			return nil, nil, err
		}
		//
		r, err := ResolveType(rightU, expected, span)
		if err != nil {
			return nil, nil, err
		}
		//
		return l, r, nil
	case leftUnresolved:
		typ, ok := right.Type()
		if !ok {
			return nil, nil, diag.New(diag.TypeMismatch, span, "cannot infer type of '%s' from %s", leftU.Text, right)
		}
		//
		l, err := FromType(leftU.Text, typ, span)
		if err != nil {
			return nil, nil, err
		}
		//
		return l, right, nil
	case rightUnresolved:
		typ, ok := left.Type()
		if !ok {
			return nil, nil, diag.New(diag.TypeMismatch, span, "cannot infer type of '%s' from %s", rightU.Text, left)
		}
		//
		r, err := FromType(rightU.Text, typ, span)
		if err != nil {
			return nil, nil, err
		}
		//
		return left, r, nil
	default:
		leftType, leftOk := left.Type()
		rightType, rightOk := right.Type()
		//
		if !leftOk || !rightOk || !ast.EqualTypes(leftType, rightType) {
			return nil, nil, diag.New(diag.TypeMismatch, span, "mismatched types for %s and %s", left, right)
		}
		//
		return left, right, nil
	}
}

// ExtractFunction extracts a function reference, along with the scope under
// which the function was declared, from a resolved value.  Fails with a
// not-callable error for anything which is not a function.
func ExtractFunction(v ConstrainedValue, fileScope scope.Scope, span source.Span) (scope.Scope, *ast.Function, error) {
	fn, ok := v.(*Function)
	if !ok {
		return scope.Scope{}, nil, diag.New(diag.NotCallable, span, "cannot call non-function value %s", v)
	}
	// Functions registered without an explicit declaration scope inherit
	// the current file scope.
	declScope := fn.Scope
	if declScope.IsEmpty() {
		declScope = fileScope
	}
	//
	return declScope, fn.Decl, nil
}

func typesString(types []ast.Type) string {
	parts := make([]string, len(types))
	//
	for i, t := range types {
		parts[i] = t.String()
	}
	//
	return strings.Join(parts, " | ")
}
