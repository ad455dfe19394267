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

// Package enforcer implements the expression-evaluation core of the
// compiler: given an expression tree, a pair of nested lexical scopes and the
// set of types the surrounding context expects, it produces a fully resolved
// value together with constraints emitted into the constraint system, or a
// precise error.  Evaluation is a single-threaded recursive tree walk;
// sub-expressions are evaluated in source left-to-right order, and every
// error propagates immediately without local recovery.
package enforcer

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/leolang/go-leo/pkg/ast"
	"github.com/leolang/go-leo/pkg/diag"
	"github.com/leolang/go-leo/pkg/r1cs"
	"github.com/leolang/go-leo/pkg/scope"
	"github.com/leolang/go-leo/pkg/util/source"
	"github.com/leolang/go-leo/pkg/value"
)

// MainFunction is the name of a program's entry function.
const MainFunction = "main"

// Program holds the symbol table for one compilation unit's enforcement
// pass: a mapping from scope-qualified name to resolved value.  Lookups are
// shared by the whole recursive walk; insertions happen only at statement
// level (declarations, let bindings, parameter bindings).
type Program struct {
	name        string
	identifiers map[scope.Qualified]value.ConstrainedValue
}

// NewProgram constructs an empty program with a given (file) name.
func NewProgram(name string) *Program {
	return &Program{name, make(map[scope.Qualified]value.ConstrainedValue)}
}

// Name returns the name of this program.
func (p *Program) Name() string {
	return p.name
}

// FileScope returns the file scope under which this program's declarations
// are registered.
func (p *Program) FileScope() scope.Scope {
	return scope.New(p.name)
}

// Get looks up the value stored under a given qualified name, or returns
// false if no binding exists.
func (p *Program) Get(key scope.Qualified) (value.ConstrainedValue, bool) {
	v, ok := p.identifiers[key]
	return v, ok
}

// store binds a value under a given qualified name.  Unexported: insertion
// is the responsibility of statement-level enforcement, never of expression
// evaluation.
func (p *Program) store(key scope.Qualified, v value.ConstrainedValue) {
	p.identifiers[key] = v
}

// RegisterDeclarations walks the top-level declarations of a parsed program
// into the symbol table at file scope.
func (p *Program) RegisterDeclarations(declarations []ast.Declaration) {
	fileScope := p.FileScope()
	//
	for _, declaration := range declarations {
		switch d := declaration.(type) {
		case *ast.Function:
			log.Debugf("registering function '%s'", d.Name.Name)
			p.store(fileScope.Qualify(d.Name.Name), &value.Function{Scope: fileScope, Decl: d})
		case *ast.Circuit:
			log.Debugf("registering circuit '%s'", d.Name.Name)
			p.store(fileScope.Qualify(d.Name.Name), &value.CircuitDef{Scope: fileScope, Decl: d})
		default:
			panic(fmt.Sprintf("unknown declaration %T", declaration))
		}
	}
}

// EnforceMain enforces this program's main function under a given constraint
// system, returning whatever main returns.
func (p *Program) EnforceMain(cs *r1cs.System) (value.ConstrainedValue, error) {
	fileScope := p.FileScope()
	//
	v, ok := p.Get(fileScope.Qualify(MainFunction))
	if !ok {
		return nil, diag.New(diag.UndefinedIdentifier, spanless(), "program '%s' has no main function", p.name)
	}
	//
	fn, isFunction := v.(*value.Function)
	if !isFunction {
		return nil, diag.New(diag.NotCallable, spanless(), "'%s' is not a function", MainFunction)
	}
	//
	log.Debugf("enforcing main function of '%s'", p.name)
	//
	result, err := p.EnforceFunction(cs.Namespace(fmt.Sprintf("function %s", MainFunction)),
		fileScope, fileScope, fn.Decl, nil)
	if err != nil {
		return nil, err
	}
	// As at call sites, a singleton aggregate unwraps to the value itself.
	// Unlike call sites, a main returning nothing is fine.
	if returned, ok := result.(*value.Return); ok && len(returned.Values) == 1 {
		return returned.Values[0], nil
	}
	//
	return result, nil
}

// spanless is used for failures with no associated source location, such as
// a missing entry function.
func spanless() source.Span {
	return source.Span{}
}
