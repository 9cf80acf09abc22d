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
	"math"
	"testing"

	"github.com/asfernandes/rinha-de-compiler/ast"
	"github.com/go-quicktest/qt"
)

func TestEqual(t *testing.T) {
	cases := []struct {
		name string
		a, b Value
		want bool
	}{
		{"same int", Int(1), Int(1), true},
		{"different int", Int(1), Int(2), false},
		{"int vs str never equal", Int(1), Str("1"), false},
		{"same str", Str("a"), Str("a"), true},
		{"same bool", Bool(true), Bool(true), true},
		{"different bool", Bool(true), Bool(false), false},
		{
			"equal tuples",
			&Tuple{First: Int(1), Second: Str("x")},
			&Tuple{First: Int(1), Second: Str("x")},
			true,
		},
		{
			"tuples differ in second",
			&Tuple{First: Int(1), Second: Str("x")},
			&Tuple{First: Int(1), Second: Str("y")},
			false,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			qt.Assert(t, qt.Equals(Equal(c.a, c.b), c.want))
		})
	}
}

func TestEqualFnIdentity(t *testing.T) {
	node := &ast.Fn{}
	scope := NewRoot(nil)
	f1 := &Fn{Node: node, Captured: scope}
	f2 := &Fn{Node: node, Captured: scope}
	f3 := &Fn{Node: &ast.Fn{}, Captured: scope}

	qt.Assert(t, qt.Equals(Equal(f1, f2), true))
	qt.Assert(t, qt.Equals(Equal(f1, f3), false))
}

func TestIntString(t *testing.T) {
	cases := []struct {
		v    int32
		want string
	}{
		{0, "0"},
		{42, "42"},
		{-42, "-42"},
		{math.MinInt32, "-2147483648"},
		{math.MaxInt32, "2147483647"},
	}
	for _, c := range cases {
		qt.Assert(t, qt.Equals(Int(c.v).String(), c.want))
	}
}

func TestTupleString(t *testing.T) {
	tup := &Tuple{First: Int(1), Second: Str("x")}
	qt.Assert(t, qt.Equals(tup.String(), `(1, x)`))
}
