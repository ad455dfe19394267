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

// Package r1cs provides the append-only constraint system which gadgets emit
// rank-1 constraints into.  A constraint has the form (ΣL)·(ΣR) = (ΣO) over
// the bls12-377 scalar field.  The system is held behind handles; namespacing
// a handle yields a child handle over the same backing store whose variable
// and constraint names carry the namespace prefix.  This is what keeps
// constraint variables attributable to source location, and what guarantees
// two calls of the same function at different call sites never collide.
package r1cs

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

// Variable is an index into the witness of a constraint system.  Variable 0
// is always the constant one.
type Variable uint

// Term is a coefficient-scaled variable within a linear combination.
type Term struct {
	Coeff fr.Element
	Var   Variable
}

// NewTerm constructs a term with an explicit coefficient.
func NewTerm(coeff fr.Element, v Variable) Term {
	return Term{coeff, v}
}

// TermOf constructs a term with coefficient one.
func TermOf(v Variable) Term {
	return Term{fr.One(), v}
}

// Constraint is a single labeled rank-1 constraint (ΣL)·(ΣR) = (ΣO).
type Constraint struct {
	Label string
	L     []Term
	R     []Term
	O     []Term
}

// System is a handle onto a constraint system.  Handles produced by Namespace
// share one backing store; only names differ.  All writes are appends.
type System struct {
	state  *state
	prefix string
}

type state struct {
	// Qualified witness names, indexed by variable.
	names []string
	// Witness values, indexed by variable.
	values []fr.Element
	// Emitted constraints, in emission order.
	constraints []Constraint
}

// NewSystem constructs an empty constraint system.  The witness initially
// contains the single constant-one variable.
func NewSystem() *System {
	st := &state{
		names:  []string{"one"},
		values: []fr.Element{fr.One()},
	}
	//
	return &System{st, ""}
}

// Namespace returns a child handle onto the same system, under which every
// allocated variable and emitted constraint is named "<prefix>/<label>/...".
func (s *System) Namespace(label string) *System {
	return &System{s.state, s.qualify(label)}
}

// One returns the constant-one variable.
func (s *System) One() Variable {
	return 0
}

// Alloc appends a new witness variable with a given name and value, returning
// its index.  The recorded name is qualified by this handle's namespace.
func (s *System) Alloc(name string, value fr.Element) Variable {
	v := Variable(len(s.state.names))
	s.state.names = append(s.state.names, s.qualify(name))
	s.state.values = append(s.state.values, value)
	//
	return v
}

// Enforce appends the constraint (Σl)·(Σr) = (Σo) under a given label.
func (s *System) Enforce(label string, l []Term, r []Term, o []Term) {
	s.state.constraints = append(s.state.constraints, Constraint{s.qualify(label), l, r, o})
}

// Value returns the witness value of a given variable.
func (s *System) Value(v Variable) fr.Element {
	return s.state.values[v]
}

// NumConstraints returns the number of constraints emitted so far.
func (s *System) NumConstraints() uint {
	return uint(len(s.state.constraints))
}

// Constraints returns all constraints emitted so far, in emission order.
func (s *System) Constraints() []Constraint {
	return s.state.constraints
}

// VariableNames returns the qualified names of all witness variables.
func (s *System) VariableNames() []string {
	return s.state.names
}

func (s *System) qualify(name string) string {
	if s.prefix == "" {
		return name
	}
	//
	return s.prefix + "/" + name
}
