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

package token_test

import (
	"testing"

	"github.com/asfernandes/rinha-de-compiler/token"
	"github.com/go-quicktest/qt"
)

func TestPosString(t *testing.T) {
	qt.Assert(t, qt.Equals(token.Pos{Line: 2, Column: 5}.String(), "2:5"))
	qt.Assert(t, qt.Equals(token.NoPos.String(), "-"))
}

func TestPosIsValid(t *testing.T) {
	qt.Assert(t, qt.Equals(token.NoPos.IsValid(), false))
	qt.Assert(t, qt.Equals(token.Pos{Line: 1, Column: 1}.IsValid(), true))
}
