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
	"strings"

	"github.com/asfernandes/rinha-de-compiler/ast"
	"github.com/asfernandes/rinha-de-compiler/errors"
	"github.com/asfernandes/rinha-de-compiler/token"
)

// BinaryOp applies op to left and right (spec.md §4.4). It is pure: it
// never touches a Scope and never evaluates anything itself, matching the
// reference's free function taking already-evaluated operands.
func BinaryOp(pos token.Pos, op ast.Op, left, right Value) (Value, errors.Error) {
	switch op {
	case ast.ADD:
		if l, ok := left.(Int); ok {
			if r, ok := right.(Int); ok {
				return Int(int32(l) + int32(r)), nil
			}
		}
		if isIntOrStr(left) && isIntOrStr(right) {
			return Str(left.String() + right.String()), nil
		}
		return nil, typeMismatch(pos, "'+' requires two integers or strings")

	case ast.SUB:
		l, r, ok := bothInt(left, right)
		if !ok {
			return nil, typeMismatch(pos, "'-' requires two integers")
		}
		return Int(int32(l) - int32(r)), nil

	case ast.MUL:
		l, r, ok := bothInt(left, right)
		if !ok {
			return nil, typeMismatch(pos, "'*' requires two integers")
		}
		return Int(int32(l) * int32(r)), nil

	case ast.DIV:
		l, r, ok := bothInt(left, right)
		if !ok {
			return nil, typeMismatch(pos, "'/' requires two integers")
		}
		return Int(int32(l) / int32(r)), nil

	case ast.REM:
		l, r, ok := bothInt(left, right)
		if !ok {
			return nil, typeMismatch(pos, "'%%' requires two integers")
		}
		return Int(int32(l) % int32(r)), nil

	case ast.EQ:
		return Bool(Equal(left, right)), nil

	case ast.NEQ:
		return Bool(!Equal(left, right)), nil

	case ast.LT, ast.GT, ast.LTE, ast.GTE:
		return compare(pos, op, left, right)

	case ast.AND:
		l, r, ok := bothBool(left, right)
		if !ok {
			return nil, typeMismatch(pos, "'&&' requires two booleans")
		}
		return Bool(bool(l) && bool(r)), nil

	case ast.OR:
		l, r, ok := bothBool(left, right)
		if !ok {
			return nil, typeMismatch(pos, "'||' requires two booleans")
		}
		return Bool(bool(l) || bool(r)), nil

	default:
		return nil, internal(pos, "unreachable binary operator %v", op)
	}
}

func isIntOrStr(v Value) bool {
	switch v.(type) {
	case Int, Str:
		return true
	default:
		return false
	}
}

func bothInt(left, right Value) (Int, Int, bool) {
	l, ok := left.(Int)
	if !ok {
		return 0, 0, false
	}
	r, ok := right.(Int)
	if !ok {
		return 0, 0, false
	}
	return l, r, true
}

func bothBool(left, right Value) (Bool, Bool, bool) {
	l, ok := left.(Bool)
	if !ok {
		return false, false, false
	}
	r, ok := right.(Bool)
	if !ok {
		return false, false, false
	}
	return l, r, true
}

// compare implements spec.md §4.4's ordering operators: both operands must
// share one of {Bool, Int, Str}; Tuple and Fn are never orderable, and
// differing variants are always a TypeMismatch (never a false result, the
// way EQ/NEQ treat them).
func compare(pos token.Pos, op ast.Op, left, right Value) (Value, errors.Error) {
	if left.Kind() != right.Kind() {
		return nil, typeMismatch(pos, "cannot compare values of different types")
	}

	var less, equal bool
	switch l := left.(type) {
	case Bool:
		r := right.(Bool)
		less = !bool(l) && bool(r)
		equal = l == r
	case Int:
		r := right.(Int)
		less = l < r
		equal = l == r
	case Str:
		r := right.(Str)
		c := strings.Compare(string(l), string(r))
		less = c < 0
		equal = c == 0
	default:
		return nil, typeMismatch(pos, "cannot compare values of type "+left.Kind().String())
	}

	switch op {
	case ast.LT:
		return Bool(less), nil
	case ast.GT:
		return Bool(!less && !equal), nil
	case ast.LTE:
		return Bool(less || equal), nil
	case ast.GTE:
		return Bool(!less), nil
	default:
		return nil, internal(pos, "unreachable comparison operator %v", op)
	}
}
