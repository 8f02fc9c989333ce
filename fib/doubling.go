// Copyright 2024 The fibdrv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fib

import (
	"math/bits"

	"github.com/fibdrv/fibdrv/ubn"
)

// Doubling computes F(k) via the fast-doubling identity, processing one
// bit of k per iteration instead of one value of n:
//
//	F(2n)   = F(n) * (2*F(n+1) - F(n))
//	F(2n+1) = F(n)^2 + F(n+1)^2
//
// starting from F(0), F(1) and folding in the bits of k from the most to
// the least significant, exactly as fib_fast walks k's bits, but through
// this arithmetically equivalent, unsigned-subtraction-safe pairing (both
// operands of the shift-and-subtract are never negative, since
// 2*F(n+1) >= F(n) for every n >= 0). The returned error is non-nil only
// if one of the underlying ubn operations hit its allocation ceiling, and
// carries that operation's *ubn.OpError.
func Doubling(k uint64) (*ubn.Uint, error) {
	a := ubn.New(presizeLimbs(k)) // F(n), n starts at 0
	b := ubn.New(presizeLimbs(k))
	if err := b.SetUint64(1); err != nil { // F(n+1)
		return nil, err
	}

	if k == 0 {
		return a, nil
	}

	t := ubn.New(0)
	asq := ubn.New(0)
	bsq := ubn.New(0)
	c := ubn.New(0)
	d := ubn.New(0)

	for i := bits.Len64(k) - 1; i >= 0; i-- {
		if err := t.Lsh(b, 1); err != nil {
			return nil, err
		}
		if err := t.Sub(t, a); err != nil {
			return nil, err
		}
		if err := c.Mul(a, t); err != nil { // F(2n)
			return nil, err
		}

		if err := asq.Sqr(a); err != nil {
			return nil, err
		}
		if err := bsq.Sqr(b); err != nil {
			return nil, err
		}
		if err := d.Add(asq, bsq); err != nil { // F(2n+1)
			return nil, err
		}

		if k&(uint64(1)<<uint(i)) != 0 {
			if err := a.Set(d); err != nil {
				return nil, err
			}
			if err := t.Add(c, d); err != nil {
				return nil, err
			}
			if err := b.Set(t); err != nil {
				return nil, err
			}
		} else {
			if err := a.Set(c); err != nil {
				return nil, err
			}
			if err := b.Set(d); err != nil {
				return nil, err
			}
		}
	}
	return a, nil
}
