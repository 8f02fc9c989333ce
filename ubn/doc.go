// Copyright 2024 The fibdrv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package ubn implements arbitrary-precision unsigned integer arithmetic on a
little-endian array of machine words ("limbs").

The representation is deliberately narrow: there is no sign, no exponent, no
rational or floating-point layer. A Uint is a sequence of Word limbs such
that

	x = data[0] + data[1]*2**W + data[2]*2**(2*W) + ...

with W the limb width in bits (64 on the targets this module ships for).
The zero value of a Uint (size 0) denotes the integer 0.

Supported operations are addition, subtraction (non-negative results only),
left shift, schoolbook multiplication, a squaring routine that exploits the
symmetry of the cross-product terms, long division by another Uint, a fast
path for division by the largest power of ten that fits in one limb, and a
hierarchical binary-to-decimal string conversion built on top of that fast
division.

Karatsuba multiplication, modular exponentiation, and generic bignum/bignum
division are intentionally out of scope: the only division this package
needs is the large-divisor form the decimal converter uses.
*/
package ubn
