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

// EvalTreeWalk is Strategy A (spec.md §4.5): each term is evaluated by
// direct, recursive host calls. It is the default strategy: fast and
// simple, at the cost of consuming native Go stack proportionally to the
// Rinha program's recursion depth.
func EvalTreeWalk(term ast.Term, scope *Scope) (Value, errors.Error) {
	switch n := term.(type) {
	case *ast.Literal:
		return literalValue(n), nil

	case *ast.Tuple:
		first, err := EvalTreeWalk(n.First, scope)
		if err != nil {
			return nil, err
		}
		second, err := EvalTreeWalk(n.Second, scope)
		if err != nil {
			return nil, err
		}
		return &Tuple{First: first, Second: second}, nil

	case *ast.Fn:
		return &Fn{Node: n, Captured: scope}, nil

	case *ast.Call:
		return evalCallTreeWalk(n, scope)

	case *ast.BinaryOp:
		left, err := EvalTreeWalk(n.Left, scope)
		if err != nil {
			return nil, err
		}
		right, err := EvalTreeWalk(n.Right, scope)
		if err != nil {
			return nil, err
		}
		return BinaryOp(n.From, n.Op, left, right)

	case *ast.If:
		cond, err := EvalTreeWalk(n.Cond, scope)
		if err != nil {
			return nil, err
		}
		b, ok := cond.(Bool)
		if !ok {
			return nil, typeMismatch(n.From, "'if' condition must be a boolean")
		}
		if bool(b) {
			return EvalTreeWalk(n.Then, scope)
		}
		return EvalTreeWalk(n.Otherwise, scope)

	case *ast.TupleIndex:
		v, err := EvalTreeWalk(n.Arg, scope)
		if err != nil {
			return nil, err
		}
		t, ok := v.(*Tuple)
		if !ok {
			return nil, typeMismatch(n.From, "'first'/'second' require a tuple")
		}
		if n.Index == 0 {
			return t.First, nil
		}
		return t.Second, nil

	case *ast.Var:
		v, ok := scope.Lookup(n.Ref.Name)
		if !ok {
			return nil, unboundName(n.From, n.Ref.Name)
		}
		return v, nil

	case *ast.Let:
		value, err := EvalTreeWalk(n.Value, scope)
		if err != nil {
			return nil, err
		}
		scope.Assign(n.Ref.Name, value)
		return EvalTreeWalk(n.Next, scope)

	case *ast.Print:
		v, err := EvalTreeWalk(n.Arg, scope)
		if err != nil {
			return nil, err
		}
		scope.Output().PrintLine(v.String())
		return v, nil

	default:
		return nil, internal(term.Pos(), "eval: unreachable term type %T", term)
	}
}

func evalCallTreeWalk(n *ast.Call, scope *Scope) (Value, errors.Error) {
	calleeValue, err := EvalTreeWalk(n.Callee, scope)
	if err != nil {
		return nil, err
	}
	fn, ok := calleeValue.(*Fn)
	if !ok {
		return nil, notCallable(n.From, calleeValue.Kind())
	}
	if len(fn.Node.Parameters) != len(n.Arguments) {
		return nil, arity(n.From, len(fn.Node.Parameters), len(n.Arguments))
	}

	calleeScope := Child(fn.Captured)
	for i, param := range fn.Node.Parameters {
		argValue, err := EvalTreeWalk(n.Arguments[i], scope)
		if err != nil {
			return nil, err
		}
		calleeScope.Declare(param.Name)
		calleeScope.Assign(param.Name, argValue)
	}

	if err := Compile(fn.Node.Body, calleeScope); err != nil {
		return nil, err
	}
	return EvalTreeWalk(fn.Node.Body, calleeScope)
}

// literalValue converts a parsed ast.Literal into the core's own Value,
// the one place the two representations meet (SPEC_FULL.md §2.1).
func literalValue(n *ast.Literal) Value {
	switch n.Kind {
	case ast.BoolLiteral:
		return Bool(n.Bool)
	case ast.IntLiteral:
		return Int(n.Int)
	default:
		return Str(n.Str)
	}
}
