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
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/leolang/go-leo/pkg/diag"
	"github.com/leolang/go-leo/pkg/util/source"
)

// GetFlag gets an expected flag, or panic if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// ReadSourceFile reads a source file, exiting on failure.
func ReadSourceFile(filename string) *source.File {
	srcfile, err := source.ReadFile(filename)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return srcfile
}

// ReportError prints an error against its source file, highlighting the
// offending span when attached to a terminal.
func ReportError(srcfile *source.File, err error) {
	var (
		diagnostic *diag.Error
		syntax     *source.SyntaxError
	)
	//
	switch {
	case errors.As(err, &syntax):
		printSpan(srcfile, syntax.Span(), syntax.Message())
	case errors.As(err, &diagnostic):
		printSpan(srcfile, diagnostic.Span(), diagnostic.Message())
		// Walk the cause chain, innermost last.
		for inner := diagnostic.Unwrap(); inner != nil; {
			fmt.Printf("caused by: %s\n", inner)
			inner = errors.Unwrap(inner)
		}
	default:
		fmt.Println(err)
	}
}

func printSpan(srcfile *source.File, span source.Span, msg string) {
	fmt.Printf("%s:%d:%d: %s\n", srcfile.Filename(), span.Line(), span.Column(), msg)
	//
	line := srcfile.FindFirstEnclosingLine(span)
	fmt.Println(line.String())
	// Determine start of highlight within line.
	offset := span.Start() - line.Start()
	length := min(span.Length(), line.Length()-offset)
	//
	if length <= 0 {
		return
	}
	//
	marker := strings.Repeat(" ", offset) + strings.Repeat("^", length)
	// Colour the marker when writing to a terminal.
	if term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Printf("\033[31m%s\033[0m\n", marker)
	} else {
		fmt.Println(marker)
	}
}
