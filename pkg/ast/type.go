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
	"reflect"
)

// Type represents the type of a value within the source language.  Types form
// a closed sum: primitive types (address, boolean, field, group, sized
// integers) and composites (arrays, circuits).  Function signatures are not
// first-class types at this level.
type Type interface {
	fmt.Stringer
	isType()
}

// AddressType is the type of account addresses.
type AddressType struct{}

// BooleanType is the type of booleans.
type BooleanType struct{}

// FieldType is the type of base-field elements.
type FieldType struct{}

// GroupType is the type of group elements (points on the embedded curve).
type GroupType struct{}

// IntegerType is the type of a sized integer of a specific width and
// signedness.
type IntegerType struct {
	// Width in bits (8, 16, 32, 64 or 128).
	Width uint
	// Signed indicates a two's-complement signed integer.
	Signed bool
}

// ArrayType is the type of a fixed-size array over some element type.
type ArrayType struct {
	Element Type
	Size    uint
}

// CircuitType is the (nominal) type of instances of a named circuit.
type CircuitType struct {
	Name string
}

func (AddressType) isType() {}
func (BooleanType) isType() {}
func (FieldType) isType()   {}
func (GroupType) isType()   {}
func (IntegerType) isType() {}
func (ArrayType) isType()   {}
func (CircuitType) isType() {}

func (AddressType) String() string { return "address" }
func (BooleanType) String() string { return "bool" }
func (FieldType) String() string   { return "field" }
func (GroupType) String() string   { return "group" }

func (t IntegerType) String() string {
	if t.Signed {
		return fmt.Sprintf("i%d", t.Width)
	}

	return fmt.Sprintf("u%d", t.Width)
}

func (t ArrayType) String() string {
	return fmt.Sprintf("[%s; %d]", t.Element.String(), t.Size)
}

func (t CircuitType) String() string { return t.Name }

// EqualTypes determines whether two types are structurally identical.
func EqualTypes(l Type, r Type) bool {
	return reflect.DeepEqual(l, r)
}

// ContainsType determines whether a given set of expected types contains a
// type structurally identical to the given one.
func ContainsType(types []Type, t Type) bool {
	for _, ith := range types {
		if EqualTypes(ith, t) {
			return true
		}
	}
	//
	return false
}
