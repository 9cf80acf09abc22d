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
	"github.com/asfernandes/rinha-de-compiler/ast"
	"github.com/asfernandes/rinha-de-compiler/errors"
	"github.com/asfernandes/rinha-de-compiler/internal/rinhadebug"
	"github.com/google/uuid"
)

// EvalCoroutine is Strategy B (spec.md §4.5, §5): the same term-by-term
// semantics as EvalTreeWalk, but every evaluation step is a suspendable
// continuation scheduled by a single-threaded cooperative driver (drive)
// instead of a direct recursive Go call. This bounds the native Go call
// stack growth to the depth of the *driver's* loop, not the Rinha program's
// recursion depth: each pending computation is a heap-allocated Go closure
// (a step.next thunk) sitting in a value, not a stack frame, the same
// trade-off the reference's heap-allocated C++20 coroutine frames make
// (see original_source/src/interpreter/Task.h and
// CoroutineExecutionStrategy.cpp).
func EvalCoroutine(term ast.Term, scope *Scope) (Value, errors.Error) {
	runID := uuid.New()
	rinhadebug.Logf(rinhadebug.Flags.LogEval, "coroutine run %s: start", runID)

	final := evalCPS(term, scope, doneValue)
	v, err := drive(final)

	rinhadebug.Logf(rinhadebug.Flags.LogEval, "coroutine run %s: done (err=%v)", runID, err)
	return v, err
}

// cont is a continuation: "resume with this Value". Errors never reach a
// cont — they short-circuit directly to a done step, unwinding to the
// nearest awaiter exactly as spec.md §4.5 describes.
type cont func(Value) step

// A step is either finished (done, carrying the final Value or error) or
// suspended (next holds the heap-allocated closure that performs the next
// unit of work when the driver gets to it).
type step struct {
	done  bool
	value Value
	err   errors.Error
	next  func() step
}

func doneValue(v Value) step          { return step{done: true, value: v} }
func doneError(err errors.Error) step { return step{done: true, err: err} }

// suspend wraps a unit of work so that calling evalCPS never itself
// recurses natively: the work only runs when the driver's loop invokes it.
func suspend(work func() step) step {
	return step{done: false, next: work}
}

// drive is the single-threaded cooperative scheduler: a FIFO of exactly one
// pending continuation at a time, matching the reference's ManualExecutor
// in spirit (most resumes happen immediately, "not via the queue" per
// spec.md §4.5) while still bounding native stack usage to this loop.
func drive(s step) (Value, errors.Error) {
	queue := newScheduler()
	queue.schedule(s)
	for {
		s, ok := queue.pop()
		if !ok {
			panic("core: scheduler drained with no result")
		}
		if s.done {
			return s.value, s.err
		}
		queue.schedule(s.next())
	}
}

// scheduler is the FIFO the driver drains, kept as an explicit type (rather
// than a bare local variable) so its queueing discipline is visible and
// testable on its own, the way the reference keeps ManualExecutor separate
// from Task.
type scheduler struct {
	pending []step
}

func newScheduler() *scheduler { return &scheduler{} }

func (s *scheduler) schedule(st step) { s.pending = append(s.pending, st) }

func (s *scheduler) pop() (step, bool) {
	if len(s.pending) == 0 {
		return step{}, false
	}
	st := s.pending[0]
	s.pending = s.pending[1:]
	return st, true
}

// evalCPS is the continuation-passing counterpart of EvalTreeWalk. Every
// branch either resolves immediately via k (literals, reads) or builds a
// chain of suspended continuations so that left-to-right evaluation order
// (spec.md §5) is preserved without native recursion.
func evalCPS(term ast.Term, scope *Scope, k cont) step {
	// Resuming k is suspended as well, so handing a value back up a chain of
	// pending continuations (the return path of non-tail recursion) does not
	// nest native calls either.
	resume := k
	k = func(v Value) step { return suspend(func() step { return resume(v) }) }
	return suspend(func() step {
		switch n := term.(type) {
		case *ast.Literal:
			return k(literalValue(n))

		case *ast.Tuple:
			return evalCPS(n.First, scope, func(first Value) step {
				return evalCPS(n.Second, scope, func(second Value) step {
					return k(&Tuple{First: first, Second: second})
				})
			})

		case *ast.Fn:
			return k(&Fn{Node: n, Captured: scope})

		case *ast.Call:
			return evalCallCPS(n, scope, k)

		case *ast.BinaryOp:
			return evalCPS(n.Left, scope, func(left Value) step {
				return evalCPS(n.Right, scope, func(right Value) step {
					v, err := BinaryOp(n.From, n.Op, left, right)
					if err != nil {
						return doneError(err)
					}
					return k(v)
				})
			})

		case *ast.If:
			return evalCPS(n.Cond, scope, func(cond Value) step {
				b, ok := cond.(Bool)
				if !ok {
					return doneError(typeMismatch(n.From, "'if' condition must be a boolean"))
				}
				if bool(b) {
					return evalCPS(n.Then, scope, k)
				}
				return evalCPS(n.Otherwise, scope, k)
			})

		case *ast.TupleIndex:
			return evalCPS(n.Arg, scope, func(v Value) step {
				t, ok := v.(*Tuple)
				if !ok {
					return doneError(typeMismatch(n.From, "'first'/'second' require a tuple"))
				}
				if n.Index == 0 {
					return k(t.First)
				}
				return k(t.Second)
			})

		case *ast.Var:
			v, ok := scope.Lookup(n.Ref.Name)
			if !ok {
				return doneError(unboundName(n.From, n.Ref.Name))
			}
			return k(v)

		case *ast.Let:
			return evalCPS(n.Value, scope, func(v Value) step {
				scope.Assign(n.Ref.Name, v)
				return evalCPS(n.Next, scope, k)
			})

		case *ast.Print:
			return evalCPS(n.Arg, scope, func(v Value) step {
				scope.Output().PrintLine(v.String())
				return k(v)
			})

		default:
			return doneError(internal(term.Pos(), "eval: unreachable term type %T", term))
		}
	})
}

func evalCallCPS(n *ast.Call, scope *Scope, k cont) step {
	return evalCPS(n.Callee, scope, func(calleeValue Value) step {
		fn, ok := calleeValue.(*Fn)
		if !ok {
			return doneError(notCallable(n.From, calleeValue.Kind()))
		}
		if len(fn.Node.Parameters) != len(n.Arguments) {
			return doneError(arity(n.From, len(fn.Node.Parameters), len(n.Arguments)))
		}
		calleeScope := Child(fn.Captured)
		return evalArgsCPS(n.Arguments, 0, scope, calleeScope, fn, k)
	})
}

// evalArgsCPS evaluates call arguments left-to-right in the caller's scope,
// binding each into calleeScope as it completes, then compiles and
// evaluates the function body (spec.md §4.5 Call rule).
func evalArgsCPS(args []ast.Term, i int, callerScope, calleeScope *Scope, fn *Fn, k cont) step {
	if i == len(args) {
		if err := Compile(fn.Node.Body, calleeScope); err != nil {
			return doneError(err)
		}
		return evalCPS(fn.Node.Body, calleeScope, k)
	}
	param := fn.Node.Parameters[i]
	return evalCPS(args[i], callerScope, func(argValue Value) step {
		calleeScope.Declare(param.Name)
		calleeScope.Assign(param.Name, argValue)
		return evalArgsCPS(args, i+1, callerScope, calleeScope, fn, k)
	})
}
