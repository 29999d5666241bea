// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package letany

// Explicit step machine.
// RunSteps drives an ordered list of step functions with a program counter
// instead of a coroutine. Semantics match Run; no goroutine is involved and
// nothing needs releasing.

// Instr is the outcome of one [Step]: either a wrapped value for Bind
// (see [Emit]) or the final result (see [Finish]).
type Instr[W, R any] struct {
	value  W
	result R
	done   bool
}

// Emit yields w to Bind. The next step receives the unwrapped payload.
func Emit[W, R any](w W) Instr[W, R] {
	return Instr[W, R]{value: w}
}

// Finish completes the computation with r.
func Finish[W, R any](r R) Instr[W, R] {
	return Instr[W, R]{result: r, done: true}
}

// Done reports whether the instruction completes the computation.
func (i Instr[W, R]) Done() bool { return i.done }

// Value returns the wrapped value of an [Emit] instruction.
func (i Instr[W, R]) Value() W { return i.value }

// Result returns the final value of a [Finish] instruction.
func (i Instr[W, R]) Result() R { return i.result }

// Step is one stage of a step machine.
// It receives the payload unwrapped from the previous stage's emitted
// value; the first step receives the zero T.
type Step[W, T, R any] func(prev T) Instr[W, R]

// machine is the per-run state of RunSteps.
// pc is shared by every continuation of the run, so a continuation invoked
// twice advances the machine twice.
type machine[W, T, R any] struct {
	steps []Step[W, T, R]
	pc    int
}

// advance runs the step at pc with payload p.
// Reports false once the machine has halted or run out of steps.
func (m *machine[W, T, R]) advance(p T) (Instr[W, R], bool) {
	if m.pc >= len(m.steps) {
		return Instr[W, R]{}, false
	}
	st := m.steps[m.pc]
	m.pc++
	in := st(p)
	if in.done {
		m.pc = len(m.steps)
	}
	return in, true
}

// RunSteps executes steps in order and returns the result of the first
// [Finish], or whatever Bind returned at the step where it declined to
// continue.
//
// A machine that runs out of steps without finishing returns the zero R,
// as does a continuation invoked after the machine has halted.
func (s *Sequencer[W, T, R]) RunSteps(steps ...Step[W, T, R]) R {
	m := &machine[W, T, R]{steps: steps}
	var zero T
	in, ok := m.advance(zero)
	return s.eval(m, in, ok)
}

func (s *Sequencer[W, T, R]) eval(m *machine[W, T, R], in Instr[W, R], ok bool) R {
	if !ok {
		var zero R
		return zero
	}
	if in.done {
		return in.result
	}
	return s.bind(in.value, s.continuation(func(p T) R {
		next, ok := m.advance(p)
		return s.eval(m, next, ok)
	}))
}
