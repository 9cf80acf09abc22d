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

import "github.com/asfernandes/rinha-de-compiler/sink"

// A Scope is a node in the lexical scope chain (spec.md §3.2), the Go
// analogue of Context in the reference implementation. Entries are either
// "declared but unset" (a present map entry whose value is nil) or
// "assigned" (a non-nil Value). Lookup skips unset entries, so the
// right-hand side of `let x = x` sees the outer x, and a self-recursive
// `let f = fn() => f()` finds f once it has been assigned (spec.md §4.2).
//
// Scopes form a DAG from leaves toward the root (closures may keep a scope
// alive long after the frame that created it returns); Go's garbage
// collector retires the need for the reference-counting or arena schemes
// spec.md §9 discusses for a non-GC'd host.
type Scope struct {
	outer *Scope
	vars  map[string]Value
	out   sink.OutputSink
}

// NewRoot creates the outermost scope, holding the program's output sink.
func NewRoot(out sink.OutputSink) *Scope {
	return &Scope{vars: make(map[string]Value), out: out}
}

// Child creates a new scope nested inside parent, sharing its output sink.
func Child(parent *Scope) *Scope {
	return &Scope{outer: parent, vars: make(map[string]Value), out: parent.out}
}

// Output returns the scope chain's output sink.
func (s *Scope) Output() sink.OutputSink {
	return s.out
}

// Declare inserts name into the current scope as unset. It is idempotent:
// re-declaring a name already present in this scope resets it to unset,
// which is only observable during a nested Let's compile pre-pass (spec.md
// §4.2).
func (s *Scope) Declare(name string) {
	s.vars[name] = nil
}

// Assign writes value into the current scope's entry for name. It never
// walks outward: per spec.md §4.2, assign always targets the scope that
// declared name during compile.
func (s *Scope) Assign(name string, value Value) {
	s.vars[name] = value
}

// Lookup walks outward from s until it finds a scope whose entry for name
// is assigned, skipping scopes where the name is merely declared-but-unset.
// It reports ok == false if no enclosing scope ever assigns name.
func (s *Scope) Lookup(name string) (Value, bool) {
	for scope := s; scope != nil; scope = scope.outer {
		if v, present := scope.vars[name]; present && v != nil {
			return v, true
		}
	}
	return nil, false
}
