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

// Package value defines the runtime representation of an expression's result:
// a tagged union of primitive constants, composites, function references,
// return aggregates and unresolved literals pending contextual type
// inference.  Values are never mutated destructively; type resolution either
// produces a (possibly converted) value or fails with a type error.
package value

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/gnark-crypto/ecc/bls12-377/twistededwards"
	"github.com/leolang/go-leo/pkg/ast"
	"github.com/leolang/go-leo/pkg/scope"
)

// ConstrainedValue is the resolved value of an expression within a constraint
// program.  The sum is closed; collaborators dispatch over it exhaustively.
type ConstrainedValue interface {
	fmt.Stringer
	// Type returns the source-language type of this value, if it has one.
	// Unresolved literals, function references, circuit declarations and
	// return aggregates have no type at this level.
	Type() (ast.Type, bool)
	//
	isValue()
}

// Address is a constant account address.
type Address struct {
	Value string
}

// Bool is a constant boolean.
type Bool struct {
	Value bool
}

// Field is a constant element of the base field.
type Field struct {
	Value fr.Element
}

// Group is a constant point on the embedded twisted Edwards curve.
type Group struct {
	Value twistededwards.PointAffine
}

// Integer is a constant sized integer of a specific width and signedness.
type Integer struct {
	IntType ast.IntegerType
	Value   *big.Int
}

// Array is a composite of zero or more element values of uniform type.
type Array struct {
	Elements []ConstrainedValue
}

// CircuitDef is a circuit declaration registered at file scope, from which
// instances are constructed and static members projected.
type CircuitDef struct {
	Scope scope.Scope
	Decl  *ast.Circuit
}

// CircuitInstance is a constructed instance of a circuit, holding one value
// per member variable (and the member functions of its declaration).
type CircuitInstance struct {
	Decl    *ast.Circuit
	Members []CircuitMemberValue
}

// CircuitMemberValue is a single named member of a circuit instance.
type CircuitMemberValue struct {
	Name  string
	Value ConstrainedValue
}

// Function is a reference to a declared function together with the scope
// under which it was declared.  The declaration scope becomes the file scope
// when the function body is enforced.
type Function struct {
	Scope scope.Scope
	Decl  *ast.Function
}

// Return is the aggregate of values produced by a function's return
// statement.  Call sites unwrap singleton aggregates.
type Return struct {
	Values []ConstrainedValue
}

// Unresolved is a numeric literal whose concrete type is not yet known,
// carried in raw textual form pending later contextual resolution.
type Unresolved struct {
	Text string
}

func (v *Address) isValue()         {}
func (v *Bool) isValue()            {}
func (v *Field) isValue()           {}
func (v *Group) isValue()           {}
func (v *Integer) isValue()         {}
func (v *Array) isValue()           {}
func (v *CircuitDef) isValue()      {}
func (v *CircuitInstance) isValue() {}
func (v *Function) isValue()        {}
func (v *Return) isValue()          {}
func (v *Unresolved) isValue()      {}

// Type returns the type of this value.
func (v *Address) Type() (ast.Type, bool) { return ast.AddressType{}, true }

// Type returns the type of this value.
func (v *Bool) Type() (ast.Type, bool) { return ast.BooleanType{}, true }

// Type returns the type of this value.
func (v *Field) Type() (ast.Type, bool) { return ast.FieldType{}, true }

// Type returns the type of this value.
func (v *Group) Type() (ast.Type, bool) { return ast.GroupType{}, true }

// Type returns the type of this value.
func (v *Integer) Type() (ast.Type, bool) { return v.IntType, true }

// Type returns the type of this value, which is defined only when the array
// is non-empty and its first element has a type.
func (v *Array) Type() (ast.Type, bool) {
	if len(v.Elements) == 0 {
		return nil, false
	}
	//
	element, ok := v.Elements[0].Type()
	if !ok {
		return nil, false
	}
	//
	return ast.ArrayType{Element: element, Size: uint(len(v.Elements))}, true
}

// Type returns no type; declarations are not first-class values.
func (v *CircuitDef) Type() (ast.Type, bool) { return nil, false }

// Type returns the nominal type of this instance.
func (v *CircuitInstance) Type() (ast.Type, bool) {
	return ast.CircuitType{Name: v.Decl.Name.Name}, true
}

// Type returns no type; function signatures are not first-class types.
func (v *Function) Type() (ast.Type, bool) { return nil, false }

// Type returns no type; return aggregates exist only at call boundaries.
func (v *Return) Type() (ast.Type, bool) { return nil, false }

// Type returns no type, by definition.
func (v *Unresolved) Type() (ast.Type, bool) { return nil, false }

func (v *Address) String() string { return v.Value }
func (v *Bool) String() string    { return fmt.Sprintf("%t", v.Value) }
func (v *Field) String() string   { return v.Value.String() }

func (v *Group) String() string {
	return fmt.Sprintf("(%s, %s)group", v.Value.X.String(), v.Value.Y.String())
}

func (v *Integer) String() string {
	return fmt.Sprintf("%s%s", v.Value.String(), v.IntType.String())
}

func (v *Array) String() string {
	var sb strings.Builder
	//
	sb.WriteString("[")
	//
	for i, e := range v.Elements {
		if i != 0 {
			sb.WriteString(", ")
		}

		sb.WriteString(e.String())
	}
	//
	sb.WriteString("]")
	//
	return sb.String()
}

func (v *CircuitDef) String() string { return v.Decl.Name.Name }

func (v *CircuitInstance) String() string {
	var sb strings.Builder
	//
	fmt.Fprintf(&sb, "%s {", v.Decl.Name.Name)
	//
	for i, m := range v.Members {
		if i != 0 {
			sb.WriteString(", ")
		}

		fmt.Fprintf(&sb, "%s: %s", m.Name, m.Value)
	}
	//
	sb.WriteString("}")
	//
	return sb.String()
}

func (v *Function) String() string { return v.Decl.Name.Name }

func (v *Return) String() string {
	var sb strings.Builder
	//
	sb.WriteString("(")
	//
	for i, e := range v.Values {
		if i != 0 {
			sb.WriteString(", ")
		}

		sb.WriteString(e.String())
	}
	//
	sb.WriteString(")")
	//
	return sb.String()
}

func (v *Unresolved) String() string { return v.Text }
