// Copyright 2024 The fibdrv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ubn

import "math/bits"

// Word is a single limb: one digit of a base-2**_W positional number.
type Word = uint64

const (
	_W      = 64            // limb width in bits
	_WMax   = ^Word(0)       // largest representable Word
	_W2     = _W * 2         // width of a double-limb product
)

// addWithCarry returns a+b+cin and the carry out of the full-width addition,
// which is always 0 or 1. It mirrors the hardware add-with-carry instruction
// that the original C source reached for via __builtin_uaddll_overflow.
func addWithCarry(a, b Word, cin uint) (sum Word, cout uint) {
	s, c := bits.Add64(a, b, uint64(cin))
	return s, uint(c)
}

// subWithBorrow returns a-b-bin and the borrow out, 0 or 1.
func subWithBorrow(a, b Word, bin uint) (diff Word, bout uint) {
	d, bo := bits.Sub64(a, b, uint64(bin))
	return d, uint(bo)
}

// widenMul returns hi, lo such that a*b == hi*2**_W + lo.
func widenMul(a, b Word) (hi, lo Word) {
	hi, lo = bits.Mul64(a, b)
	return
}

// clz counts leading zero bits of a non-zero limb. Callers must not pass 0;
// the only caller that could (Uint.clz) special-cases it separately.
func clz(x Word) uint {
	return uint(bits.LeadingZeros64(x))
}
