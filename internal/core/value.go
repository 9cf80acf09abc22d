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

// Package core is the interpreter's evaluation engine: the value model, the
// lexical scope chain, the AST compile pre-pass, the operator runtime, and
// the two execution strategies (spec.md §2). It is the "hard part" the rest
// of the repository (parser, sink, CLI) treats as an opaque collaborator.
package core

import "github.com/asfernandes/rinha-de-compiler/ast"

// A Value is one of five immutable variants (spec.md §3.1). Kind reports
// which one a concrete Value is; the zero Kind is never produced.
type Kind int

const (
	_ Kind = iota
	BoolKind
	IntKind
	StrKind
	TupleKind
	FnKind
)

func (k Kind) String() string {
	switch k {
	case BoolKind:
		return "bool"
	case IntKind:
		return "int"
	case StrKind:
		return "string"
	case TupleKind:
		return "tuple"
	case FnKind:
		return "function"
	default:
		return "<invalid-kind>"
	}
}

// Value is implemented by Bool, Int, Str, *Tuple, and *Fn. It carries no
// mutable state: Tuple and Fn share their children/scope by reference
// (cheap to copy, per spec.md §3.1) rather than deep-copying them.
type Value interface {
	Kind() Kind
	String() string
	valueNode()
}

// Bool is the host boolean variant.
type Bool bool

func (Bool) Kind() Kind { return BoolKind }
func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}
func (Bool) valueNode() {}

// Int is a signed 32-bit integer. Arithmetic on it wraps modulo 2^32,
// following Go's defined int32 overflow behavior (spec.md §3.1, §4.4).
type Int int32

func (Int) Kind() Kind        { return IntKind }
func (i Int) String() string  { return itoa(int32(i)) }
func (Int) valueNode()        {}

// itoa avoids pulling in strconv for a single call site's worth of use,
// matching the reference's direct std::to_string(int32_t) call.
func itoa(v int32) string {
	if v == 0 {
		return "0"
	}
	neg := v < 0
	// math.MinInt32 cannot be negated in int32; widen to int64 first.
	n := int64(v)
	if neg {
		n = -n
	}
	var buf [11]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// Str is an immutable Unicode string.
type Str string

func (Str) Kind() Kind       { return StrKind }
func (s Str) String() string { return string(s) }
func (Str) valueNode()       {}

// Tuple is an ordered pair of Values, structurally shared (spec.md §3.1).
type Tuple struct {
	First, Second Value
}

func (*Tuple) Kind() Kind { return TupleKind }
func (t *Tuple) String() string {
	return "(" + t.First.String() + ", " + t.Second.String() + ")"
}
func (*Tuple) valueNode() {}

// Fn is a closure: a non-owning reference to the AST function node plus the
// scope that was live when the closure was created (spec.md §3.1). The AST
// outlives every closure that references it, via the Source that owns it.
type Fn struct {
	Node    *ast.Fn
	Captured *Scope
}

func (*Fn) Kind() Kind      { return FnKind }
func (*Fn) String() string  { return "<#closure>" }
func (*Fn) valueNode()      {}

// Equal implements spec.md §3.1's structural equality: same variant,
// structurally equal (Tuples recurse); Fn equality is by identity of both
// the node pointer and the captured scope pointer. Cross-variant operands
// are never equal, but that's not an error (§4.4: EQ/NEQ never raise).
func Equal(a, b Value) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	switch x := a.(type) {
	case Bool:
		return x == b.(Bool)
	case Int:
		return x == b.(Int)
	case Str:
		return x == b.(Str)
	case *Tuple:
		y := b.(*Tuple)
		return Equal(x.First, y.First) && Equal(x.Second, y.Second)
	case *Fn:
		y := b.(*Fn)
		return x.Node == y.Node && x.Captured == y.Captured
	default:
		return false
	}
}
