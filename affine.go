// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package letany

import "sync/atomic"

// affine wraps a continuation with one-shot enforcement.
// It backs Config.OneShot.
type affine[T, R any] struct {
	used atomic.Uintptr
	k    func(T) R
}

func once[T, R any](k func(T) R) *affine[T, R] {
	return &affine[T, R]{k: k}
}

// resume invokes the continuation.
// Panics if the continuation has already been used.
func (a *affine[T, R]) resume(v T) R {
	if a.used.Add(1) != 1 {
		panic("letany: continuation resumed twice")
	}
	return a.k(v)
}
