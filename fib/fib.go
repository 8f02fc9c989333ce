// Copyright 2024 The fibdrv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fib implements two Fibonacci number algorithms over the
// arbitrary-precision package ubn: a linear recurrence and a fast-doubling
// identity. Neither algorithm touches ubn below its public interface;
// picking between them is purely a question of how many ubn operations
// are spent reaching F(k).
package fib

import "github.com/fibdrv/fibdrv/ubn"

// Method names the Fibonacci algorithm a caller wants run.
type Method uint8

const (
	MethodLinear Method = iota
	MethodFastDoubling
)

//go:generate stringer -type=Method -output=method_string.go

// growthBits estimates the bit length of F(k) as k*log2(phi), the golden
// ratio growth rate, so the algorithms below can pre-size their working
// bignums instead of growing them limb by limb across the whole
// computation. Fibonacci numbers grow as phi**k / sqrt(5), so their bit
// length grows linearly in k with this slope.
const growthBits = 0.69424

// presizeLimbs returns a capacity, in limbs, generous enough to hold F(k)
// without a mid-computation reallocation for the common case.
func presizeLimbs(k uint64) int {
	bits := float64(k)*growthBits + 64
	limbs := int(bits/64) + 1
	if limbs < 1 {
		limbs = 1
	}
	return limbs
}

// Compute runs the requested algorithm and returns F(k).
func Compute(method Method, k uint64) (*ubn.Uint, error) {
	if method == MethodFastDoubling {
		return Doubling(k)
	}
	return Linear(k)
}
