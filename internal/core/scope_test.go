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
	"testing"

	"github.com/asfernandes/rinha-de-compiler/sink"
	"github.com/go-quicktest/qt"
)

func TestScopeLookupSkipsDeclaredButUnset(t *testing.T) {
	outer := NewRoot(sink.Stdout)
	outer.Assign("x", Int(1))

	inner := Child(outer)
	inner.Declare("x")

	v, ok := inner.Lookup("x")
	qt.Assert(t, qt.Equals(ok, true))
	qt.Assert(t, qt.Equals(v.String(), "1"))

	inner.Assign("x", Int(2))
	v, ok = inner.Lookup("x")
	qt.Assert(t, qt.Equals(ok, true))
	qt.Assert(t, qt.Equals(v.String(), "2"))
}

func TestScopeLookupFallsThroughToOuter(t *testing.T) {
	outer := NewRoot(sink.Stdout)
	outer.Assign("shared", Int(7))

	inner := Child(outer)
	v, ok := inner.Lookup("shared")
	qt.Assert(t, qt.Equals(ok, true))
	qt.Assert(t, qt.Equals(v.String(), "7"))
}

func TestScopeLookupUnboundReportsFalse(t *testing.T) {
	scope := NewRoot(sink.Stdout)
	_, ok := scope.Lookup("nowhere")
	qt.Assert(t, qt.Equals(ok, false))
}

func TestScopeChildSharesOutputSink(t *testing.T) {
	buf := &sink.Buffer{}
	outer := NewRoot(buf)
	inner := Child(outer)
	qt.Assert(t, qt.Equals(inner.Output(), sink.OutputSink(buf)))
}

func TestScopeDeclareIsIdempotent(t *testing.T) {
	scope := NewRoot(sink.Stdout)
	scope.Assign("x", Int(1))
	scope.Declare("x")

	_, ok := scope.Lookup("x")
	qt.Assert(t, qt.Equals(ok, false))
}
