// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package letany

// Cont represents a continuation-passing computation.
// Cont[R, A] computes a value of type A, with final result type R.
type Cont[R, A any] func(k func(A) R) R

// Return lifts a pure value into the continuation monad.
func Return[R, A any](a A) Cont[R, A] {
	return func(k func(A) R) R {
		return k(a)
	}
}

// ContBind returns the Bind for continuation-passing computations.
// The wrapped computation is applied to the continuation directly, so a
// Cont that calls k several times resumes the generator several times.
func ContBind[R, A any]() Bind[Cont[R, A], A, R] {
	return applyCont[R, A]
}

// applyCont is a named generic function so ContBind returns a static
// function value per instantiation instead of allocating a closure.
func applyCont[R, A any](m Cont[R, A], k func(A) R) R {
	return m(k)
}
