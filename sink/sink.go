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

// Package sink defines the single external resource the interpreter core
// writes to: the output of Rinha's "print" builtin (spec.md §6, "Output
// sink contract").
package sink

import (
	"bufio"
	"io"
	"os"
)

// An OutputSink receives one line per "print" evaluation. Implementations
// are called from a single evaluator goroutine at a time; the core performs
// no locking of its own (spec.md §5).
type OutputSink interface {
	PrintLine(s string)
}

// Stdout is the default sink: it writes each line to os.Stdout followed by a
// newline, unbuffered, matching StdEnvironment::printLine in the reference
// implementation.
var Stdout OutputSink = stdoutSink{}

type stdoutSink struct{}

func (stdoutSink) PrintLine(s string) {
	io.WriteString(os.Stdout, s+"\n")
}

// writerSink adapts any io.Writer into an OutputSink, buffering writes the
// way a CLI talking to a terminal or a redirected file should.
type writerSink struct {
	w *bufio.Writer
}

// NewWriter wraps w as an OutputSink. Callers that need every line flushed
// immediately (e.g. before a process exit) should call Flush.
func NewWriter(w io.Writer) *writerSink {
	return &writerSink{w: bufio.NewWriter(w)}
}

func (s *writerSink) PrintLine(str string) {
	s.w.WriteString(str)
	s.w.WriteByte('\n')
}

// Flush pushes any buffered output to the underlying writer.
func (s *writerSink) Flush() error {
	return s.w.Flush()
}

// Buffer is an in-memory OutputSink used by tests and embedders that want
// to inspect the printed lines instead of routing them to a stream.
type Buffer struct {
	Lines []string
}

func (b *Buffer) PrintLine(s string) {
	b.Lines = append(b.Lines, s)
}

// String joins the recorded lines with newlines, each line terminated, the
// way they would appear on a terminal.
func (b *Buffer) String() string {
	var out string
	for _, l := range b.Lines {
		out += l + "\n"
	}
	return out
}
