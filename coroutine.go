// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package letany

import "iter"

// Yield suspends the running [Generator] on a wrapped value.
// It returns the payload the driver resumes the generator with.
//
// Yield does not return if the computation is abandoned and released;
// the generator unwinds instead, running its deferred calls.
type Yield[W, T any] func(W) T

// Generator is a suspending computation.
// Each call is a fresh, single-pass instance: the body yields zero or more
// wrapped values and completes by returning the final value.
//
// Example:
//
//	func(yield letany.Yield[Result[string], string]) Result[string] {
//	    a := yield(Ok("d"))
//	    b := yield(Ok("e"))
//	    return Ok(a + b)
//	}
type Generator[W, T, R any] func(yield Yield[W, T]) R

// coroutine runs a Generator on a pull iterator.
// The iterator's elements are the yielded wrapped values; payloads travel
// back through the payload slot, and the final value through result.
//
// A coroutine is owned by one run and is not safe for concurrent use.
type coroutine[W, T, R any] struct {
	next      func() (W, bool)
	stop      func()
	payload   T
	result    R
	unwinding bool
}

// unwind is panicked out of a pending yield when its coroutine is released.
type unwind struct{}

func startCoroutine[W, T, R any](gen Generator[W, T, R]) *coroutine[W, T, R] {
	c := &coroutine[W, T, R]{}
	c.next, c.stop = iter.Pull(c.seq(gen))
	return c
}

func (c *coroutine[W, T, R]) seq(gen Generator[W, T, R]) iter.Seq[W] {
	return func(yield func(W) bool) {
		defer func() {
			if !c.unwinding {
				return
			}
			if r := recover(); r != nil {
				if _, ok := r.(unwind); !ok {
					panic(r)
				}
			}
		}()
		c.result = gen(func(w W) T {
			if !yield(w) {
				c.unwinding = true
				panic(unwind{})
			}
			p := c.payload
			var zero T
			c.payload = zero
			return p
		})
	}
}

// start advances a fresh coroutine to its first suspension or completion.
// Reports false when the generator has completed.
func (c *coroutine[W, T, R]) start() (W, bool) {
	return c.next()
}

// resume advances the coroutine from its current suspension with payload p.
// Once the generator has completed, resume reports false without running it.
func (c *coroutine[W, T, R]) resume(p T) (W, bool) {
	c.payload = p
	w, ok := c.next()
	if !ok {
		var zero T
		c.payload = zero
	}
	return w, ok
}

// final hands out the generator's return value.
// The value is reported once; subsequent calls return the zero R.
func (c *coroutine[W, T, R]) final() R {
	r := c.result
	var zero R
	c.result = zero
	return r
}

// release stops the coroutine, unwinding a pending yield.
func (c *coroutine[W, T, R]) release() {
	c.stop()
}
