// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package letany_test

import "code.hybscloud.com/letany"

// Result is a minimal success/failure wrapper used as the monad under test.
type Result[T any] struct {
	ok  bool
	val T
	err string
}

func Ok[T any](v T) Result[T] {
	return Result[T]{ok: true, val: v}
}

func Err[T any](e string) Result[T] {
	return Result[T]{err: e}
}

func (r Result[T]) IsOk() bool { return r.ok }

func (r Result[T]) Unwrap() T { return r.val }

func (r Result[T]) Error() string { return r.err }

// bindResult continues on Ok and returns Err unchanged.
func bindResult[T any](r Result[T], k func(T) Result[T]) Result[T] {
	if r.IsOk() {
		return k(r.Unwrap())
	}
	return r
}

// bindResultTo is bindResult for a final payload type differing from the
// yielded one; Err is re-typed on the way out.
func bindResultTo[T, F any](r Result[T], k func(T) Result[F]) Result[F] {
	if r.IsOk() {
		return k(r.Unwrap())
	}
	return Err[F](r.Error())
}

func resultSequencer() *letany.Sequencer[Result[string], string, Result[string]] {
	return letany.New(letany.Config[Result[string], string, Result[string]]{
		Bind: bindResult[string],
	})
}

// bindList calls k once per element and concatenates the results.
func bindList(xs []int, k func(int) []int) []int {
	var out []int
	for _, x := range xs {
		out = append(out, k(x)...)
	}
	return out
}
