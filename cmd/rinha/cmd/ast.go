// Copyright 2024 The Rinha Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/asfernandes/rinha-de-compiler/ast"
	"github.com/asfernandes/rinha-de-compiler/errors"
	"github.com/asfernandes/rinha-de-compiler/rinha"
)

// newASTCmd builds the supplemental `rinha ast` debug command: spec.md's
// AST model (§3.3) is otherwise write-only from a CLI user's perspective,
// so this dumps the parsed term tree as YAML, the structured-dump format
// CUE's own config-export tooling favors.
func newASTCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "ast <file>",
		Short:         "Print the parsed syntax tree of a Rinha source file",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			program, parseErrs := rinha.Parse(args[0], src)
			if parseErrs != nil {
				parseErrs.SortByPosition()
				errors.Print(cmd.ErrOrStderr(), parseErrs)
				return exitError{code: 1}
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			defer enc.Close()
			return enc.Encode(dumpTerm(program.AST()))
		},
	}
}

// dumpTerm converts an ast.Term into a plain map/slice tree so yaml.v3 can
// render it without every node type needing its own yaml tags.
func dumpTerm(term ast.Term) interface{} {
	if term == nil {
		return nil
	}

	pos := term.Pos()
	node := map[string]interface{}{"line": pos.Line, "column": pos.Column}

	switch n := term.(type) {
	case *ast.Literal:
		node["kind"] = "literal"
		switch n.Kind {
		case ast.BoolLiteral:
			node["value"] = n.Bool
		case ast.IntLiteral:
			node["value"] = n.Int
		default:
			node["value"] = n.Str
		}
	case *ast.Tuple:
		node["kind"] = "tuple"
		node["first"] = dumpTerm(n.First)
		node["second"] = dumpTerm(n.Second)
	case *ast.Fn:
		node["kind"] = "fn"
		params := make([]string, len(n.Parameters))
		for i, p := range n.Parameters {
			params[i] = p.Name
		}
		node["parameters"] = params
		node["body"] = dumpTerm(n.Body)
	case *ast.Call:
		node["kind"] = "call"
		node["callee"] = dumpTerm(n.Callee)
		args := make([]interface{}, len(n.Arguments))
		for i, a := range n.Arguments {
			args[i] = dumpTerm(a)
		}
		node["arguments"] = args
	case *ast.BinaryOp:
		node["kind"] = "binary"
		node["op"] = n.Op.String()
		node["left"] = dumpTerm(n.Left)
		node["right"] = dumpTerm(n.Right)
	case *ast.If:
		node["kind"] = "if"
		node["cond"] = dumpTerm(n.Cond)
		node["then"] = dumpTerm(n.Then)
		node["otherwise"] = dumpTerm(n.Otherwise)
	case *ast.TupleIndex:
		node["kind"] = "tuple_index"
		node["index"] = n.Index
		node["arg"] = dumpTerm(n.Arg)
	case *ast.Var:
		node["kind"] = "var"
		node["name"] = n.Ref.Name
	case *ast.Let:
		node["kind"] = "let"
		node["name"] = n.Ref.Name
		node["value"] = dumpTerm(n.Value)
		node["next"] = dumpTerm(n.Next)
	case *ast.Print:
		node["kind"] = "print"
		node["arg"] = dumpTerm(n.Arg)
	default:
		node["kind"] = "unknown"
	}
	return node
}
