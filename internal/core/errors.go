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
	"github.com/asfernandes/rinha-de-compiler/errors"
	"github.com/asfernandes/rinha-de-compiler/token"
)

// The error kinds the core can raise (spec.md §7). Every one of them is
// constructed with the position of the term that triggered it and
// satisfies errors.Error, so the CLI's single diagnostic renderer handles
// both parse-time and run-time failures uniformly.

func duplicateParameter(pos token.Pos, name string) errors.Error {
	return errors.Newf(pos, "duplicate parameter %q", name)
}

func arity(pos token.Pos, want, got int) errors.Error {
	return errors.Newf(pos, "wrong number of arguments: expected %d, got %d", want, got)
}

func notCallable(pos token.Pos, k Kind) errors.Error {
	return errors.Newf(pos, "cannot call a value of type %s", k)
}

func typeMismatch(pos token.Pos, context string) errors.Error {
	return errors.Newf(pos, "type mismatch: %s", context)
}

func unboundName(pos token.Pos, name string) errors.Error {
	return errors.Newf(pos, "unbound variable %q", name)
}

func internal(pos token.Pos, format string, args ...interface{}) errors.Error {
	return errors.Newf(pos, "internal error: "+format, args...)
}
