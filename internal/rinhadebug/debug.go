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

// Package rinhadebug parses the RINHA_DEBUG environment variable into a set
// of flags the evaluator consults, mirroring internal/cuedebug's CUE_DEBUG
// handling in the teacher repo: a single comma-separated env var rather than
// a family of booleans, and plain stdlib log output rather than a
// third-party structured logger (the teacher's own ambient choice, see
// internal/core/adt/log.go).
package rinhadebug

import (
	"log"
	"os"
	"strconv"
	"strings"
	"sync"
)

// Config holds the set of known RINHA_DEBUG flags.
type Config struct {
	// LogEval logs the start and end of each coroutine (Strategy B) run.
	LogEval bool

	// ParserTrace logs each token the parser reads, with its position.
	ParserTrace bool
}

// Flags holds the process-wide debug configuration, populated by Init.
var Flags Config

var initOnce sync.Once

// Init parses RINHA_DEBUG once per process. It is safe to call more than
// once; only the first call has an effect.
func Init() {
	initOnce.Do(func() {
		Flags = parse(os.Getenv("RINHA_DEBUG"))
		log.SetFlags(0)
	})
}

func parse(env string) Config {
	var c Config
	for _, kv := range strings.Split(env, ",") {
		kv = strings.TrimSpace(kv)
		if kv == "" {
			continue
		}
		name, value, hasValue := strings.Cut(kv, "=")
		enabled := true
		if hasValue {
			if b, err := strconv.ParseBool(value); err == nil {
				enabled = b
			}
		}
		switch name {
		case "logeval":
			c.LogEval = enabled
		case "parsertrace":
			c.ParserTrace = enabled
		}
	}
	return c
}

// Logf writes a trace line via the standard logger, gated on enabled so
// call sites in hot loops can skip building the message entirely.
func Logf(enabled bool, format string, args ...interface{}) {
	if !enabled {
		return
	}
	log.Printf(format, args...)
}
