// Copyright 2024 The fibdrv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fib

import "github.com/fibdrv/fibdrv/ubn"

// Linear computes F(k) by the textbook recurrence, keeping only a pair of
// bignums alive and alternating which one receives the next sum: a <- a+b
// when i is even, b <- a+b otherwise, exactly as fib_sequence's rolling
// accumulation does and spec.md's §4.G describes. Because ubn.Add supports
// aliasing its destination with either operand, each step mutates its
// target in place - no scratch bignum is allocated inside the loop. The
// returned error is non-nil only if an addition hit ubn's allocation
// ceiling, and carries that operation's *ubn.OpError.
func Linear(k uint64) (*ubn.Uint, error) {
	a := ubn.New(presizeLimbs(k)) // F(0)
	b := ubn.New(presizeLimbs(k))
	if err := b.SetUint64(1); err != nil { // F(1)
		return nil, err
	}

	if k == 0 {
		return a, nil
	}

	for i := uint64(2); i <= k; i++ {
		if i%2 == 0 {
			if err := a.Add(a, b); err != nil {
				return nil, err
			}
		} else {
			if err := b.Add(a, b); err != nil {
				return nil, err
			}
		}
	}
	if k%2 == 0 {
		return a, nil
	}
	return b, nil
}
