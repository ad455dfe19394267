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
	"fmt"
	"os"
	"path"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/leolang/go-leo/pkg/enforcer"
	"github.com/leolang/go-leo/pkg/parser"
	"github.com/leolang/go-leo/pkg/r1cs"
)

var evalCmd = &cobra.Command{
	Use:   "eval [flags] source_file",
	Short: "evaluate a program into a constraint system.",
	Long: `Evaluate the main function of a given source file, producing its result value
	 along with the rank-1 constraint system enforced during evaluation.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		srcfile := ReadSourceFile(args[0])
		//
		declarations, errSyntax := parser.ParseFile(srcfile)
		if errSyntax != nil {
			ReportError(srcfile, errSyntax)
			os.Exit(1)
		}
		// Program named after the source file.
		name := strings.TrimSuffix(path.Base(args[0]), path.Ext(args[0]))
		program := enforcer.NewProgram(name)
		program.RegisterDeclarations(declarations)
		//
		cs := r1cs.NewSystem()
		//
		result, err := program.EnforceMain(cs)
		if err != nil {
			ReportError(srcfile, err)
			os.Exit(1)
		}
		//
		fmt.Printf("result: %s\n", result)
		fmt.Printf("constraints: %d\n", cs.NumConstraints())
		//
		if GetFlag(cmd, "constraints") {
			for _, constraint := range cs.Constraints() {
				fmt.Println(constraint.Label)
			}
		}
		//
		if GetFlag(cmd, "witness") {
			for i, variable := range cs.VariableNames() {
				v := cs.Value(r1cs.Variable(i))
				fmt.Printf("%s = %s\n", variable, v.String())
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(evalCmd)
	evalCmd.Flags().BoolP("constraints", "c", false, "print the label of every enforced constraint")
	evalCmd.Flags().BoolP("witness", "w", false, "print every witness variable and its assignment")
}
