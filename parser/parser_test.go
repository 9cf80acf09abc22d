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

package parser

import (
	"testing"

	"github.com/asfernandes/rinha-de-compiler/ast"
	"github.com/go-quicktest/qt"
	"github.com/kr/pretty"
)

func TestParseLiterals(t *testing.T) {
	cases := []struct {
		src  string
		kind ast.LiteralKind
	}{
		{"true", ast.BoolLiteral},
		{"false", ast.BoolLiteral},
		{"42", ast.IntLiteral},
		{`"hello"`, ast.StrLiteral},
	}
	for _, c := range cases {
		source, errs := ParseFile("t.rinha", []byte(c.src))
		qt.Assert(t, qt.IsNil(errs))
		lit, ok := source.Root().(*ast.Literal)
		qt.Assert(t, qt.Equals(ok, true))
		qt.Assert(t, qt.Equals(lit.Kind, c.kind))
	}
}

func TestParseStringLiteralHasNoEscapeProcessing(t *testing.T) {
	source, errs := ParseFile("t.rinha", []byte(`"a\nb"`))
	qt.Assert(t, qt.IsNil(errs))
	lit := source.Root().(*ast.Literal)
	qt.Assert(t, qt.Equals(lit.Str, `a\nb`))
}

func TestParseArithmeticPrecedence(t *testing.T) {
	// 1 + 2 * 3 must bind as 1 + (2 * 3), not (1 + 2) * 3.
	source, errs := ParseFile("t.rinha", []byte(`1 + 2 * 3`))
	qt.Assert(t, qt.IsNil(errs))
	top := source.Root().(*ast.BinaryOp)
	qt.Assert(t, qt.Equals(top.Op, ast.ADD))
	right := top.Right.(*ast.BinaryOp)
	qt.Assert(t, qt.Equals(right.Op, ast.MUL))
}

func TestParseArithmeticRightAssociative(t *testing.T) {
	// 1 - 2 - 3 parses as 1 - (2 - 3), mirroring the reference grammar's
	// right-recursive ArithmeticOpRule exactly (a redesign would make this
	// left-associative, but spec.md keeps the original semantics).
	source, errs := ParseFile("t.rinha", []byte(`1 - 2 - 3`))
	qt.Assert(t, qt.IsNil(errs))
	top := source.Root().(*ast.BinaryOp)
	qt.Assert(t, qt.Equals(top.Op, ast.SUB))
	left := top.Left.(*ast.Literal)
	qt.Assert(t, qt.Equals(left.Int, int32(1)))
	right := top.Right.(*ast.BinaryOp)
	qt.Assert(t, qt.Equals(right.Op, ast.SUB))
}

func TestParseTupleVsParenthesized(t *testing.T) {
	source, errs := ParseFile("t.rinha", []byte(`(1, 2)`))
	qt.Assert(t, qt.IsNil(errs))
	_, ok := source.Root().(*ast.Tuple)
	qt.Assert(t, qt.Equals(ok, true))

	source, errs = ParseFile("t.rinha", []byte(`(1 + 2)`))
	qt.Assert(t, qt.IsNil(errs))
	_, ok = source.Root().(*ast.BinaryOp)
	qt.Assert(t, qt.Equals(ok, true))
}

func TestParseCurriedCallChain(t *testing.T) {
	// f(a)(b) must parse as Call{Callee: Call{Callee: f, Arguments: [a]},
	// Arguments: [b]}, the left-recursive `apply` production's reading.
	source, errs := ParseFile("t.rinha", []byte(`f(a)(b)`))
	qt.Assert(t, qt.IsNil(errs))
	outer := source.Root().(*ast.Call)
	qt.Assert(t, qt.Equals(len(outer.Arguments), 1))
	inner, ok := outer.Callee.(*ast.Call)
	qt.Assert(t, qt.Equals(ok, true))
	qt.Assert(t, qt.Equals(len(inner.Arguments), 1))
	callee, ok := inner.Callee.(*ast.Var)
	qt.Assert(t, qt.Equals(ok, true))
	qt.Assert(t, qt.Equals(callee.Ref.Name, "f"))
}

func TestParseBuiltinCallForms(t *testing.T) {
	source, errs := ParseFile("t.rinha", []byte(`first((1, 2))`))
	qt.Assert(t, qt.IsNil(errs))
	idx, ok := source.Root().(*ast.TupleIndex)
	qt.Assert(t, qt.Equals(ok, true))
	qt.Assert(t, qt.Equals(idx.Index, 0))

	source, errs = ParseFile("t.rinha", []byte(`print("hi")`))
	qt.Assert(t, qt.IsNil(errs))
	_, ok = source.Root().(*ast.Print)
	qt.Assert(t, qt.Equals(ok, true))
}

func TestParseFnMultipleParameters(t *testing.T) {
	source, errs := ParseFile("t.rinha", []byte(`fn (a, b, c) => a`))
	qt.Assert(t, qt.IsNil(errs))
	fn := source.Root().(*ast.Fn)
	qt.Assert(t, qt.Equals(len(fn.Parameters), 3))
	qt.Assert(t, qt.Equals(fn.Parameters[1].Name, "b"))
}

func TestParseLetChain(t *testing.T) {
	source, errs := ParseFile("t.rinha", []byte(`let x = 1; let y = 2; x + y`))
	qt.Assert(t, qt.IsNil(errs))
	outer := source.Root().(*ast.Let)
	qt.Assert(t, qt.Equals(outer.Ref.Name, "x"))
	inner, ok := outer.Next.(*ast.Let)
	qt.Assert(t, qt.Equals(ok, true))
	qt.Assert(t, qt.Equals(inner.Ref.Name, "y"))
}

func TestParseIf(t *testing.T) {
	source, errs := ParseFile("t.rinha", []byte(`if (true) { 1 } else { 2 }`))
	qt.Assert(t, qt.IsNil(errs))
	n := source.Root().(*ast.If)
	_, ok := n.Cond.(*ast.Literal)
	qt.Assert(t, qt.Equals(ok, true))
}

func TestParseUnterminatedStringReportsError(t *testing.T) {
	_, errs := ParseFile("t.rinha", []byte(`"unterminated`))
	qt.Assert(t, qt.IsNotNil(errs))
	qt.Assert(t, qt.Equals(len(errs) > 0, true))
}

func TestParseIntOverflowReportsError(t *testing.T) {
	_, errs := ParseFile("t.rinha", []byte(`99999999999999999999`))
	qt.Assert(t, qt.IsNotNil(errs))
	t.Logf("diagnostics: %# v", pretty.Formatter(errs))
}

func TestParseMissingElseReportsError(t *testing.T) {
	_, errs := ParseFile("t.rinha", []byte(`if (true) { 1 }`))
	qt.Assert(t, qt.IsNotNil(errs))
	t.Logf("diagnostics: %# v", pretty.Formatter(errs))
}

func TestParsePositionsTrackLineAndColumn(t *testing.T) {
	source, errs := ParseFile("t.rinha", []byte("\n\n  42"))
	qt.Assert(t, qt.IsNil(errs))
	lit := source.Root().(*ast.Literal)
	qt.Assert(t, qt.Equals(lit.From.Line, 3))
	qt.Assert(t, qt.Equals(lit.From.Column, 3))
}
