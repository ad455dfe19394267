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

// Package diag defines the structured errors produced during enforcement.
// Every error carries the kind of failure, the source span of the expression
// where it was detected and, for failures inside called functions, the inner
// cause.  Errors are fail-fast: enforcement never recovers, substitutes
// defaults or produces partial values.
package diag

import (
	"errors"
	"fmt"

	"github.com/leolang/go-leo/pkg/util/source"
)

// Kind identifies the category of an enforcement failure.
type Kind int

const (
	// UndefinedIdentifier indicates a name which was not found in any
	// lookup tier and was not usable as an address literal.
	UndefinedIdentifier Kind = iota
	// TypeMismatch indicates operand types which disagree, or which cannot
	// be unified against the expected-type set.
	TypeMismatch
	// NotCallable indicates a callee expression which did not resolve to a
	// function value.
	NotCallable
	// NoReturnValue indicates a called function which completed without
	// producing a return value.
	NoReturnValue
	// MalformedLiteral indicates a literal whose textual form cannot be
	// converted to its target type.
	MalformedLiteral
	// InvalidOperation indicates an operator applied to operand types it is
	// not defined over, or with operand values it cannot accept (division
	// by zero, integer overflow, out-of-bounds index).
	InvalidOperation
	// Wrapped indicates a failure raised inside a called function's body,
	// carried upward with the call site's context attached.
	Wrapped
)

func (k Kind) String() string {
	switch k {
	case UndefinedIdentifier:
		return "undefined identifier"
	case TypeMismatch:
		return "type mismatch"
	case NotCallable:
		return "not callable"
	case NoReturnValue:
		return "no return value"
	case MalformedLiteral:
		return "malformed literal"
	case InvalidOperation:
		return "invalid operation"
	case Wrapped:
		return "call failed"
	default:
		return "unknown"
	}
}

// Error is a structured enforcement error.
type Error struct {
	kind  Kind
	span  source.Span
	msg   string
	inner error
}

// New constructs a new error of a given kind at a given span.
func New(kind Kind, span source.Span, format string, args ...any) *Error {
	return &Error{kind, span, fmt.Sprintf(format, args...), nil}
}

// Wrap attributes an inner failure to an outer call site, preserving the
// original cause for diagnostics.
func Wrap(inner error, span source.Span, format string, args ...any) *Error {
	return &Error{Wrapped, span, fmt.Sprintf(format, args...), inner}
}

// Kind returns the kind of this error.
func (e *Error) Kind() Kind {
	return e.kind
}

// Span returns the span of the expression where this error was detected.
func (e *Error) Span() source.Span {
	return e.span
}

// Message returns the message of this error, without kind or cause.
func (e *Error) Message() string {
	return e.msg
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.inner != nil {
		return fmt.Sprintf("%s: %s: %s", e.span.String(), e.msg, e.inner)
	}
	//
	return fmt.Sprintf("%s: %s: %s", e.span.String(), e.kind, e.msg)
}

// Unwrap exposes the inner cause (if any) to errors.Is / errors.As.
func (e *Error) Unwrap() error {
	return e.inner
}

// KindOf extracts the kind of the outermost structured error in a chain.
func KindOf(err error) (Kind, bool) {
	var e *Error
	//
	if errors.As(err, &e) {
		return e.kind, true
	}
	//
	return 0, false
}

// RootKindOf extracts the kind of the innermost structured error in a chain,
// looking through any Wrapped layers.
func RootKindOf(err error) (Kind, bool) {
	var last *Error
	//
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			break
		}
		//
		last = e
		err = e.inner
	}
	//
	if last == nil {
		return 0, false
	}
	//
	return last.kind, true
}
