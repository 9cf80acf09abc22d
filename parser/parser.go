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
	"strconv"

	"github.com/asfernandes/rinha-de-compiler/ast"
	"github.com/asfernandes/rinha-de-compiler/errors"
	"github.com/asfernandes/rinha-de-compiler/internal/rinhadebug"
	"github.com/asfernandes/rinha-de-compiler/token"
)

// ParseFile parses a whole Rinha program from src. The filename is accepted
// for API symmetry with cue/parser.ParseFile but is not used: positions are
// plain line/column pairs and diagnostics do not mention the file.
// Parsing continues past a bad production so that one run can report more
// than one diagnostic; when any diagnostic was recorded, the returned
// *ast.Source is nil and only the errors are returned.
func ParseFile(filename string, src []byte) (*ast.Source, errors.List) {
	p := &parser{lex: newLexer(src)}
	p.advance()

	root := p.parseTerm()

	if p.tok.kind != tokEOF {
		p.errorf("unexpected trailing input after program")
	}
	for _, e := range p.lex.errs {
		pos := token.NoPos
		if le, ok := e.(*lexError); ok {
			pos = le.pos
		}
		p.errs.Add(errors.Newf(pos, "%s", e.Error()))
	}

	if len(p.errs) > 0 {
		return nil, p.errs
	}
	return ast.NewSource(root), nil
}

type parser struct {
	lex  *lexer
	tok  scannedToken
	errs errors.List
}

func (p *parser) advance() {
	p.tok = p.lex.scan()
	rinhadebug.Logf(rinhadebug.Flags.ParserTrace, "token %v %q at %s", p.tok.kind, p.tok.text, p.tok.pos)
}

func (p *parser) errorf(format string, args ...interface{}) {
	p.errs.Add(errors.Newf(p.tok.pos, format, args...))
}

// expect consumes the current token if it has kind, else records a
// recoverable error and leaves the cursor in place so callers can keep
// trying to make progress.
func (p *parser) expect(kind tokenKind, what string) token.Pos {
	pos := p.tok.pos
	if p.tok.kind != kind {
		p.errorf("expected %s", what)
		return pos
	}
	p.advance()
	return pos
}

// parseTerm implements the grammar's `term` production
// (original_source/src/interpreter/Parser.cpp: TermLetRule, TermIfRule,
// TermFnRule, TermTupleRule, TermLogicalRule, TermTermRule).
func (p *parser) parseTerm() ast.Term {
	switch p.tok.kind {
	case tokKwLet:
		return p.parseLet()
	case tokKwIf:
		return p.parseIf()
	case tokKwFn:
		return p.parseFn()
	case tokLParen:
		return p.parseParenOrTuple()
	default:
		return p.parseLogical()
	}
}

func (p *parser) parseLet() ast.Term {
	pos := p.tok.pos
	p.advance() // 'let'
	ref := p.parseReference()
	p.expect(tokAssign, "'=' in let binding")
	value := p.parseTerm()
	p.expect(tokSemi, "';' after let binding")
	next := p.parseTerm()
	return &ast.Let{From: pos, Ref: ref, Value: value, Next: next}
}

func (p *parser) parseIf() ast.Term {
	pos := p.tok.pos
	p.advance() // 'if'
	p.expect(tokLParen, "'(' after 'if'")
	cond := p.parseTerm()
	p.expect(tokRParen, "')' after if condition")
	p.expect(tokLBrace, "'{' starting if branch")
	then := p.parseTerm()
	p.expect(tokRBrace, "'}' closing if branch")
	p.expect(tokKwElse, "'else'")
	p.expect(tokLBrace, "'{' starting else branch")
	otherwise := p.parseTerm()
	p.expect(tokRBrace, "'}' closing else branch")
	return &ast.If{From: pos, Cond: cond, Then: then, Otherwise: otherwise}
}

func (p *parser) parseFn() ast.Term {
	pos := p.tok.pos
	p.advance() // 'fn'
	p.expect(tokLParen, "'(' starting parameter list")
	var params []*ast.Reference
	if p.tok.kind != tokRParen {
		params = append(params, p.parseReference())
		for p.tok.kind == tokComma {
			p.advance()
			params = append(params, p.parseReference())
		}
	}
	p.expect(tokRParen, "')' closing parameter list")
	p.expect(tokArrow, "'=>' after parameter list")
	body := p.parseTerm()
	return &ast.Fn{From: pos, Parameters: params, Body: body}
}

// parseParenOrTuple resolves the grammar's ambiguity between a parenthesized
// sub-term and a tuple literal: both start with '(' term, and the presence
// of a following ',' distinguishes them (TermTupleRule vs PrimaryTermRule).
func (p *parser) parseParenOrTuple() ast.Term {
	pos := p.tok.pos
	p.advance() // '('
	first := p.parseTerm()
	if p.tok.kind == tokComma {
		p.advance()
		second := p.parseTerm()
		p.expect(tokRParen, "')' closing tuple")
		return &ast.Tuple{From: pos, First: first, Second: second}
	}
	p.expect(tokRParen, "')' closing parenthesized term")
	return first
}

// parseLogical implements `logical`: right-associative &&, ||, ==, !=, <,
// >, <=, >=, all at a single precedence level, binding looser than
// arithmetic (TermLogicalRule / LogicalOpRule in the reference grammar).
func (p *parser) parseLogical() ast.Term {
	left := p.parseArithmetic()
	if op, ok := logicalOp(p.tok.kind); ok {
		pos := p.tok.pos
		p.advance()
		right := p.parseLogical()
		return &ast.BinaryOp{From: pos, Op: op, Left: left, Right: right}
	}
	return left
}

func logicalOp(k tokenKind) (ast.Op, bool) {
	switch k {
	case tokAnd:
		return ast.AND, true
	case tokOr:
		return ast.OR, true
	case tokEq:
		return ast.EQ, true
	case tokNeq:
		return ast.NEQ, true
	case tokLt:
		return ast.LT, true
	case tokGt:
		return ast.GT, true
	case tokLte:
		return ast.LTE, true
	case tokGte:
		return ast.GTE, true
	default:
		return 0, false
	}
}

// parseArithmetic implements `arithmetic`: right-associative + and -
// (ArithmeticOpRule).
func (p *parser) parseArithmetic() ast.Term {
	left := p.parseFactor()
	if p.tok.kind == tokPlus || p.tok.kind == tokMinus {
		op := ast.ADD
		if p.tok.kind == tokMinus {
			op = ast.SUB
		}
		pos := p.tok.pos
		p.advance()
		right := p.parseArithmetic()
		return &ast.BinaryOp{From: pos, Op: op, Left: left, Right: right}
	}
	return left
}

// parseFactor implements `factor`: right-associative *, /, % (FactorOpRule).
func (p *parser) parseFactor() ast.Term {
	left := p.parseApply()
	switch p.tok.kind {
	case tokStar, tokSlash, tokPercent:
		op := map[tokenKind]ast.Op{tokStar: ast.MUL, tokSlash: ast.DIV, tokPercent: ast.REM}[p.tok.kind]
		pos := p.tok.pos
		p.advance()
		right := p.parseFactor()
		return &ast.BinaryOp{From: pos, Op: op, Left: left, Right: right}
	default:
		return left
	}
}

// parseApply implements `apply`: either a bare primary, a built-in call
// form (print/first/second), or a chain of argument lists applied to a
// primary, which is how the reference grammar expresses currying
// (CallApplyRule's `apply '(' term (',' term)* ')'`, left-recursive on
// `apply` so `f(a)(b)` parses as Call{Call{f,[a]},[b]}).
func (p *parser) parseApply() ast.Term {
	switch p.tok.kind {
	case tokKwPrint:
		pos := p.tok.pos
		p.advance()
		p.expect(tokLParen, "'(' after 'print'")
		arg := p.parseTerm()
		p.expect(tokRParen, "')' closing print")
		return &ast.Print{From: pos, Arg: arg}

	case tokKwFirst:
		pos := p.tok.pos
		p.advance()
		p.expect(tokLParen, "'(' after 'first'")
		arg := p.parseTerm()
		p.expect(tokRParen, "')' closing first")
		return &ast.TupleIndex{From: pos, Arg: arg, Index: 0}

	case tokKwSecond:
		pos := p.tok.pos
		p.advance()
		p.expect(tokLParen, "'(' after 'second'")
		arg := p.parseTerm()
		p.expect(tokRParen, "')' closing second")
		return &ast.TupleIndex{From: pos, Arg: arg, Index: 1}
	}

	term := p.parsePrimary()
	for p.tok.kind == tokLParen {
		pos := p.tok.pos
		p.advance()
		var args []ast.Term
		if p.tok.kind != tokRParen {
			args = append(args, p.parseTerm())
			for p.tok.kind == tokComma {
				p.advance()
				args = append(args, p.parseTerm())
			}
		}
		p.expect(tokRParen, "')' closing call arguments")
		term = &ast.Call{From: pos, Callee: term, Arguments: args}
	}
	return term
}

// parsePrimary implements `primary`: literals, a parenthesized/tuple term,
// or a variable reference.
func (p *parser) parsePrimary() ast.Term {
	pos := p.tok.pos
	switch p.tok.kind {
	case tokKwTrue:
		p.advance()
		return &ast.Literal{From: pos, Kind: ast.BoolLiteral, Bool: true}

	case tokKwFalse:
		p.advance()
		return &ast.Literal{From: pos, Kind: ast.BoolLiteral, Bool: false}

	case tokInt:
		text := p.tok.text
		p.advance()
		n, err := strconv.ParseInt(text, 10, 32)
		if err != nil {
			p.errs.Add(errors.Newf(pos, "integer literal %q out of range", text))
			n = 0
		}
		return &ast.Literal{From: pos, Kind: ast.IntLiteral, Int: int32(n)}

	case tokString:
		text := p.tok.text
		p.advance()
		return &ast.Literal{From: pos, Kind: ast.StrLiteral, Str: text}

	case tokIdent:
		ref := p.parseReference()
		return &ast.Var{From: ref.From, Ref: ref}

	case tokLParen:
		return p.parseParenOrTuple()

	default:
		p.errorf("expected a term")
		p.advance()
		return &ast.Literal{From: pos, Kind: ast.BoolLiteral, Bool: false}
	}
}

func (p *parser) parseReference() *ast.Reference {
	pos := p.tok.pos
	if p.tok.kind != tokIdent {
		p.errorf("expected an identifier")
		return &ast.Reference{From: pos, Name: "<error>"}
	}
	name := p.tok.text
	p.advance()
	return &ast.Reference{From: pos, Name: name}
}
