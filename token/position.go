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

// Package token defines source positions used throughout the parser, the
// AST, and diagnostics.
package token

import "fmt"

// A Pos identifies a single-line, single-column location in a source file.
// Unlike cue/token.Pos, it carries no file set index: Rinha programs are a
// single file, so a bare (line, column) pair is the whole story.
type Pos struct {
	Line   int // 1-based; 0 means invalid
	Column int // 1-based
}

// NoPos is the zero value of Pos, representing an unknown or absent
// position.
var NoPos = Pos{}

// IsValid reports whether the position refers to an actual source location.
func (p Pos) IsValid() bool {
	return p.Line > 0
}

// String renders the position the way Rinha diagnostics do: "line:column".
func (p Pos) String() string {
	if !p.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}
