// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package letany provides let-style sequencing over any monad-like type.
//
// A caller writes straight-line code that yields wrapped values (a Result,
// an Either, a continuation, ...) and receives their unwrapped payloads.
// A caller-supplied [Bind] decides how each wrapped value is unwrapped and
// whether the computation continues at all.
//
// # Core Operations
//
//   - [Bind]: func(value W, k func(T) R) R — the sole extension point
//   - [Config]: Bind plus options
//   - [New]: Create a [Sequencer]
//   - [Anything]: Create a run function, shorthand for New(cfg).Run
//
// Execution:
//
//   - [Sequencer.Run]: Drive a [Generator] to completion
//   - [Sequencer.Detach]: Drive a Generator, keeping it alive for retained continuations
//   - [Sequencer.RunSteps]: Drive an explicit list of [Step] functions
//
// # Generators
//
// A [Generator] is a function receiving a [Yield]. Each call to yield
// suspends the generator on a wrapped value; the driver hands it to Bind,
// and the continuation Bind receives resumes the generator with the
// unwrapped payload. The generator completes by returning its final value,
// whose type R may differ from the yielded type W.
//
// Generators run on a pull iterator (see [iter.Pull]), so they suspend and
// resume synchronously on the caller's turn. Run releases the generator
// before returning: a generator abandoned by Bind unwinds at its pending
// yield and its deferred calls run.
//
// # Control Inversion
//
// Bind alone decides whether a computation proceeds past a yield point:
//
//   - Calling k once continues the computation
//   - Not calling k short-circuits; Bind's return value becomes the result
//   - Calling k again resumes from the current, already-advanced position,
//     not from the original yield point
//
// A completed computation reports its final value once; resuming it again
// returns the zero R. Set [Config.OneShot] to make a second invocation of a
// continuation panic instead.
//
// The package defines no error values. Panics raised by Bind, by the
// generator body, or by a continuation propagate unchanged.
//
// # Step Machines
//
// [Sequencer.RunSteps] drives the same protocol without a coroutine. Each
// [Step] receives the previous payload and returns an [Instr]:
//
//   - [Emit]: Yield a wrapped value to Bind
//   - [Finish]: Complete with a final value
//
// # Continuations
//
// [Cont] is the continuation monad. [ContBind] lets generators yield
// continuation-passing computations directly:
//
//   - [Return]: Lift a pure value into a continuation
//   - [ContBind]: Bind that applies a Cont to the continuation
//
// # Example
//
//	type Result struct {
//		Val string
//		Err error
//	}
//
//	run := letany.Anything(letany.Config[Result, string, Result]{
//		Bind: func(r Result, k func(string) Result) Result {
//			if r.Err != nil {
//				return r
//			}
//			return k(r.Val)
//		},
//	})
//
//	got := run(func(yield letany.Yield[Result, string]) Result {
//		a := yield(Result{Val: "d"})
//		b := yield(Result{Val: "e"})
//		return Result{Val: a + b}
//	})
//	// got.Val == "de"
package letany
