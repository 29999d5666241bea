// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package letany

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAffineResume(t *testing.T) {
	r := require.New(t)

	a := once(func(x int) int { return x * 2 })
	r.Equal(20, a.resume(10))
	r.PanicsWithValue("letany: continuation resumed twice", func() {
		a.resume(20)
	})
}

func TestAffineConcurrentResume(t *testing.T) {
	var calls sync.Map
	a := once(func(x int) int {
		calls.Store(x, true)
		return x
	})

	var wg sync.WaitGroup
	var mu sync.Mutex
	panics := 0
	for i := range 10 {
		wg.Go(func() {
			defer func() {
				if recover() != nil {
					mu.Lock()
					panics++
					mu.Unlock()
				}
			}()
			a.resume(i)
		})
	}
	wg.Wait()

	n := 0
	calls.Range(func(_, _ any) bool {
		n++
		return true
	})
	require.Equal(t, 1, n)
	require.Equal(t, 9, panics)
}
