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

// Package rinha is the public entry point for parsing and running Rinha
// programs, playing the role cue/cuecontext plays for the teacher repo: a
// small facade that hides the internal/core evaluation engine and the
// parser behind a couple of functions and a Strategy enum, so embedders
// never need to import internal packages directly.
package rinha

import (
	"fmt"

	"github.com/asfernandes/rinha-de-compiler/ast"
	"github.com/asfernandes/rinha-de-compiler/errors"
	"github.com/asfernandes/rinha-de-compiler/internal/core"
	"github.com/asfernandes/rinha-de-compiler/parser"
	"github.com/asfernandes/rinha-de-compiler/sink"
)

// A Strategy selects which evaluation engine Run uses. Both strategies
// produce identical results (spec.md §4.5); they differ only in how native
// Go stack they consume per level of Rinha recursion.
type Strategy int

const (
	// TreeWalker evaluates terms with direct, recursive Go calls. It is the
	// default: simpler and faster for programs whose recursion depth stays
	// well within the host's native stack limits.
	TreeWalker Strategy = iota

	// Coroutine evaluates terms through a continuation-passing trampoline,
	// trading some throughput for a native call stack that does not grow
	// with the Rinha program's own recursion depth.
	Coroutine
)

func (s Strategy) String() string {
	switch s {
	case Coroutine:
		return "coroutine"
	default:
		return "tree-walker"
	}
}

// ResolveStrategy maps the RINHA_EXEC_STRATEGY environment variable's value
// to a Strategy, mirroring original_source/src/interpreter/EnvVarExecutionStrategy.cpp:
// unset or "tree-walker" selects TreeWalker, "coroutine" selects Coroutine,
// and any other value is rejected.
func ResolveStrategy(env string) (Strategy, error) {
	switch env {
	case "", "tree-walker":
		return TreeWalker, nil
	case "coroutine":
		return Coroutine, nil
	default:
		return 0, fmt.Errorf("unknown RINHA_EXEC_STRATEGY %q", env)
	}
}

// A Value is the result of running a program, opaque beyond its printable
// form: embedders that need to inspect structure use AST() on a parsed
// Program plus their own walk, the way cue.Value wraps an unexported
// adt.Value behind String()/Kind() accessors.
type Value struct {
	v core.Value
}

// String renders the value the same way `print` renders it.
func (v Value) String() string {
	if v.v == nil {
		return "<nil>"
	}
	return v.v.String()
}

// A Program is a successfully parsed Rinha source file, ready to run
// repeatedly (e.g. under both strategies, as the test suite does) without
// re-parsing.
type Program struct {
	source *ast.Source
}

// Parse parses src into a Program. filename is passed on to
// parser.ParseFile, which does not use it.
func Parse(filename string, src []byte) (*Program, errors.List) {
	source, errs := parser.ParseFile(filename, src)
	if errs != nil {
		return nil, errs
	}
	return &Program{source: source}, nil
}

// AST exposes the parsed term tree, e.g. for the `rinha ast` debug command.
func (p *Program) AST() ast.Term {
	return p.source.Root()
}

// Run evaluates p with strategy, sending any `print` output to out.
func (p *Program) Run(strategy Strategy, out sink.OutputSink) (Value, errors.Error) {
	scope := core.NewRoot(out)
	root := p.source.Root()

	if err := core.Compile(root, scope); err != nil {
		return Value{}, err
	}

	var v core.Value
	var err errors.Error
	switch strategy {
	case Coroutine:
		v, err = core.EvalCoroutine(root, scope)
	default:
		v, err = core.EvalTreeWalk(root, scope)
	}
	if err != nil {
		return Value{}, err
	}
	return Value{v: v}, nil
}
