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

package rinhadebug

import (
	"testing"

	"github.com/go-quicktest/qt"
)

func TestParse(t *testing.T) {
	cases := []struct {
		env  string
		want Config
	}{
		{"", Config{}},
		{"logeval", Config{LogEval: true}},
		{"logeval=false", Config{}},
		{"logeval,parsertrace", Config{LogEval: true, ParserTrace: true}},
		{"unknown=1", Config{}},
	}
	for _, c := range cases {
		qt.Assert(t, qt.Equals(parse(c.env), c.want))
	}
}
