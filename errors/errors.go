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

// Package errors defines the shared error type used by the parser and the
// interpreter core, and the diagnostic line format the CLI prints.
package errors

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/asfernandes/rinha-de-compiler/token"
)

// Severity distinguishes a fatal diagnostic from an informational one.
// List.HasErrors counts only Error severity.
type Severity int

const (
	Error Severity = iota
	Warning
)

func (s Severity) String() string {
	if s == Warning {
		return "Warning"
	}
	return "Error"
}

// An Error is the common error type produced by the parser and the
// interpreter core. It always carries a position: parse errors carry the
// offending token's position and interpreter errors the position of the term
// that raised them; token.NoPos marks an error with no known location.
type Error interface {
	error
	Position() token.Pos
	Severity() Severity
}

type posError struct {
	pos      token.Pos
	severity Severity
	msg      string
}

func (e *posError) Error() string        { return e.msg }
func (e *posError) Position() token.Pos  { return e.pos }
func (e *posError) Severity() Severity   { return e.severity }

// Newf creates an Error at the given position with Error severity.
func Newf(p token.Pos, format string, args ...interface{}) Error {
	return &posError{pos: p, severity: Error, msg: fmt.Sprintf(format, args...)}
}

// Warnf creates an Error at the given position with Warning severity.
func Warnf(p token.Pos, format string, args ...interface{}) Error {
	return &posError{pos: p, severity: Warning, msg: fmt.Sprintf(format, args...)}
}

// A List collects zero or more Errors in the order they were appended, the
// way the parser's diagnostics collector does (spec.md §1: "Diagnostics
// collector: owned by the parser, not consulted by the core").
type List []Error

// Add appends err to the list.
func (l *List) Add(err Error) {
	*l = append(*l, err)
}

// HasErrors reports whether any entry in the list has Error severity.
func (l List) HasErrors() bool {
	for _, e := range l {
		if e.Severity() == Error {
			return true
		}
	}
	return false
}

// SortByPosition orders the list by (line, column), matching
// cue/errors.Positions' intent of giving a deterministic report order.
func (l List) SortByPosition() {
	sort.SliceStable(l, func(i, j int) bool {
		a, b := l[i].Position(), l[j].Position()
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Column < b.Column
	})
}

// Print writes one line per error to w in the CLI's required format:
//
//	(<line>, <col>): <Error|Warning>: <message>
//
// This is spec.md §6's CLI surface, factored out so both the parser's
// diagnostics and a fatal interpreter error share one renderer.
func Print(w io.Writer, errs []Error) {
	for _, e := range errs {
		pos := e.Position()
		fmt.Fprintf(w, "(%d, %d): %s: %s\n", pos.Line, pos.Column, e.Severity(), e.Error())
	}
}

// PrintOne renders a single error, as the CLI does when reporting an
// uncaught interpreter error.
func PrintOne(w io.Writer, err Error) {
	Print(w, []Error{err})
}

// Join renders multiple Errors' messages on one line, separated by "; ".
func Join(errs []Error) string {
	parts := make([]string, len(errs))
	for i, e := range errs {
		parts[i] = e.Error()
	}
	return strings.Join(parts, "; ")
}
