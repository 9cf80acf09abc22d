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

package core

import (
	"github.com/asfernandes/rinha-de-compiler/ast"
	"github.com/asfernandes/rinha-de-compiler/errors"
)

// Compile performs the AST's pre-execution validation/declaration walk
// (spec.md §4.3): it declares every Let name in term's sub-tree into scope
// before term ever runs, and rejects any Fn literal with duplicate
// parameter names. It does not evaluate operators or touch Values.
//
// A Fn's body is deliberately NOT compiled here: it is compiled lazily, at
// call time, against the callee's fresh scope (spec.md §4.3, §4.5 Call
// rule), so a Fn's own local lets are declared in the scope they will
// actually run in, not in the (irrelevant, at this point) defining scope.
func Compile(term ast.Term, scope *Scope) errors.Error {
	switch n := term.(type) {
	case *ast.Literal:
		return nil

	case *ast.Tuple:
		if err := Compile(n.First, scope); err != nil {
			return err
		}
		return Compile(n.Second, scope)

	case *ast.Fn:
		return checkDuplicateParameters(n)

	case *ast.Call:
		if err := Compile(n.Callee, scope); err != nil {
			return err
		}
		for _, arg := range n.Arguments {
			if err := Compile(arg, scope); err != nil {
				return err
			}
		}
		return nil

	case *ast.BinaryOp:
		if err := Compile(n.Left, scope); err != nil {
			return err
		}
		return Compile(n.Right, scope)

	case *ast.If:
		if err := Compile(n.Cond, scope); err != nil {
			return err
		}
		if err := Compile(n.Then, scope); err != nil {
			return err
		}
		return Compile(n.Otherwise, scope)

	case *ast.TupleIndex:
		return Compile(n.Arg, scope)

	case *ast.Var:
		return nil

	case *ast.Let:
		scope.Declare(n.Ref.Name)
		if err := Compile(n.Value, scope); err != nil {
			return err
		}
		return Compile(n.Next, scope)

	case *ast.Print:
		return Compile(n.Arg, scope)

	default:
		return internal(term.Pos(), "compile: unreachable term type %T", term)
	}
}

func checkDuplicateParameters(fn *ast.Fn) errors.Error {
	seen := make(map[string]bool, len(fn.Parameters))
	for _, p := range fn.Parameters {
		if seen[p.Name] {
			return duplicateParameter(p.From, p.Name)
		}
		seen[p.Name] = true
	}
	return nil
}
