// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package letany

// Bind is the caller-supplied bind operation.
// It receives a wrapped value and the continuation k, which represents the
// rest of the computation once the payload has been unwrapped.
//
// Bind decides, from the state of value, whether to call k with the payload
// or to short-circuit and return some R without calling it. It may also call
// k more than once; each call resumes the computation from wherever the
// previous call left it.
type Bind[W, T, R any] func(value W, k func(T) R) R

// Config configures a [Sequencer].
type Config[W, T, R any] struct {
	// Bind unwraps yielded values. Required.
	Bind Bind[W, T, R]

	// OneShot makes every continuation passed to Bind affine:
	// invoking it a second time panics.
	OneShot bool
}

// Sequencer drives suspending computations through a [Bind].
// A Sequencer is immutable and may be shared by concurrent runs.
type Sequencer[W, T, R any] struct {
	bind    Bind[W, T, R]
	oneShot bool
}

// New creates a Sequencer from cfg.
// Panics if cfg.Bind is nil.
func New[W, T, R any](cfg Config[W, T, R]) *Sequencer[W, T, R] {
	if cfg.Bind == nil {
		panic("letany: nil bind")
	}
	return &Sequencer[W, T, R]{bind: cfg.Bind, oneShot: cfg.OneShot}
}

// Anything returns the run function of a new Sequencer.
// It is shorthand for New(cfg).Run.
func Anything[W, T, R any](cfg Config[W, T, R]) func(Generator[W, T, R]) R {
	return New(cfg).Run
}

// Run executes gen to completion and returns its final value, or whatever
// Bind returned at the step where it declined to continue.
//
// The computation does not outlive Run. If Bind abandons it, the pending
// yield unwinds when Run returns, running the body's deferred calls.
// Continuations invoked after Run returns see a completed computation and
// return the zero R.
func (s *Sequencer[W, T, R]) Run(gen Generator[W, T, R]) R {
	c := startCoroutine(gen)
	defer c.release()
	w, ok := c.start()
	return s.compose(c, w, ok)
}

// Detach executes gen like [Sequencer.Run] but keeps the computation alive
// after returning, so continuations retained by Bind can still resume it.
// The caller must call release once the computation is no longer needed;
// release is idempotent.
//
// If Bind or gen panics, the computation is released before the panic
// propagates.
func (s *Sequencer[W, T, R]) Detach(gen Generator[W, T, R]) (result R, release func()) {
	c := startCoroutine(gen)
	detached := false
	defer func() {
		if !detached {
			c.release()
		}
	}()
	w, ok := c.start()
	result = s.compose(c, w, ok)
	detached = true
	return result, c.release
}

// compose is the recursive driver: a completed step is the result, a
// suspended step is handed to Bind along with the rest of the computation.
func (s *Sequencer[W, T, R]) compose(c *coroutine[W, T, R], w W, suspended bool) R {
	if !suspended {
		return c.final()
	}
	return s.bind(w, s.continuation(func(p T) R {
		next, ok := c.resume(p)
		return s.compose(c, next, ok)
	}))
}

func (s *Sequencer[W, T, R]) continuation(k func(T) R) func(T) R {
	if s.oneShot {
		return once(k).resume
	}
	return k
}
