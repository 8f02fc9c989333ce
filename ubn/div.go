// Copyright 2024 The fibdrv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ubn

import "math/bits"

// LTEN is the largest power of ten that fits in one limb: 10**16 for the
// 64-bit limb width this module targets (base.h's UBN_LTEN for CPU64).
const LTEN Word = 10000000000000000

// ltenExp is the decimal exponent of LTEN (UBN_LTEN_EXP).
const ltenExp = 16

// ltenBit is the bit length of LTEN (UBN_LTEN_BIT): ceil(log2(LTEN)).
const ltenBit = 54

// Div bundles the scratch bignums the division routines need so that
// repeated divisions - as the hierarchical decimal converter performs -
// don't allocate on every call. The caller seeds Dividend with the value to
// divide; Quotient (and ShortRemainder, for DivLTEN) hold the result. Div is
// not safe for concurrent use, matching the single-threaded scratch model
// the design requires.
type Div struct {
	Dividend       *Uint
	Quotient       *Uint
	Subtrahend     *Uint
	ShortRemainder uint64
}

// NewDiv returns a Div whose scratch bignums are pre-sized for dividends of
// up to capacity limbs.
func NewDiv(capacity int) *Div {
	return &Div{
		Dividend:   New(capacity),
		Quotient:   New(capacity),
		Subtrahend: New(capacity + 1),
	}
}

// setBit ORs a single bit, at absolute position pos, into z, growing z as
// needed. It is used by both division routines to set quotient bits; since
// both routines set bits in strictly non-increasing position order, z's size
// only ever grows while doing so.
func (z *Uint) setBit(pos uint) error {
	limb := int(pos / _W)
	bit := pos % _W
	if err := z.growTo(limb + 1); err != nil {
		return err
	}
	z.data[limb] |= Word(1) << bit
	if limb+1 > z.size {
		z.size = limb + 1
	}
	return nil
}

// DivMod divides Dividend by dvs, the bignum-by-bignum long division form
// the hierarchical decimal converter uses to peel off SUPERTEN-sized
// blocks. On return, Quotient holds the quotient and Dividend holds the
// remainder. It fails, leaving both unchanged and returning an *OpError
// with Kind ErrInvalidOperand, only if dvs is zero.
func (d *Div) DivMod(dvs *Uint) error {
	if dvs.IsZero() {
		return invalidOperandErr("DivMod")
	}
	dvd := d.Dividend
	quo := d.Quotient
	sub := d.Subtrahend

	quo.SetZero()
	if Compare(dvd, dvs) < 0 {
		return nil // quotient 0, dvd already holds the remainder
	}

	for Compare(dvd, dvs) >= 0 {
		s := dvd.bitLen() - dvs.bitLen()
		if err := sub.Lsh(dvs, s); err != nil {
			return err
		}
		if Compare(sub, dvd) > 0 {
			s--
			if err := sub.Lsh(dvs, s); err != nil {
				return err
			}
		}
		if err := quo.setBit(s); err != nil {
			return err
		}
		if err := dvd.Sub(dvd, sub); err != nil {
			return err
		}
	}
	return nil
}

// DivLTEN divides Dividend by LTEN, extracting up to ltenExp decimal digits
// in one call. On return, Quotient holds the quotient, Dividend holds what
// remains of the working value (consumed down as digits are peeled off),
// and ShortRemainder holds the remainder, a value in [0, LTEN). Unlike
// DivMod, it never fails on the divisor (LTEN is a compile-time constant,
// never zero); it can still return an *OpError with Kind ErrAlloc if the
// quotient cannot grow to hold a set bit.
//
// The dividend is processed two limbs at a time so that the number of
// limb-level operations per produced quotient bit is constant, instead of
// scanning the full dividend on every bit the way repeated division by ten
// would.
func (d *Div) DivLTEN() error {
	dvd := d.Dividend
	quo := d.Quotient
	quo.SetZero()

	if dvd.IsZero() {
		d.ShortRemainder = 0
		return nil
	}

	for dvd.size >= 2 {
		top := dvd.size - 1
		hi, lo := dvd.data[top], dvd.data[top-1]

		mBits := pairBitLen(hi, lo)
		s := int(mBits) - ltenBit
		if s < 0 {
			s = 0
		}
		ah, al := pairLsh(0, LTEN, uint(s))
		for pairCmp(ah, al, hi, lo) > 0 {
			s--
			ah, al = pairLsh(0, LTEN, uint(s))
		}
		hi, lo = pairSub(hi, lo, ah, al)
		dvd.data[top], dvd.data[top-1] = hi, lo
		dvd.finish(top + 1)
		if err := quo.setBit(uint(top-1)*_W + uint(s)); err != nil {
			return err
		}
	}

	for dvd.size == 1 && dvd.data[0] >= LTEN {
		x := dvd.data[0]
		s := int(_W-clz(x)) - ltenBit
		if s < 0 {
			s = 0
		}
		shifted := LTEN << uint(s)
		for shifted > x {
			s--
			shifted = LTEN << uint(s)
		}
		x -= shifted
		dvd.data[0] = x
		if err := quo.setBit(uint(s)); err != nil {
			return err
		}
	}
	dvd.finish(1)

	if dvd.size == 0 {
		d.ShortRemainder = 0
	} else {
		d.ShortRemainder = uint64(dvd.data[0])
	}
	return nil
}

// The following helpers treat a pair of limbs (hi, lo) as one 2*_W-bit
// value, used by DivLTEN's two-limb window. Go has no native 2*_W integer
// for _W == 64, so the pair is carried explicitly, the same substitution
// the design notes prescribe for targets without a hardware double-width
// type.

func pairBitLen(hi, lo Word) uint {
	if hi != 0 {
		return _W + (_W - clz(hi))
	}
	if lo != 0 {
		return _W - clz(lo)
	}
	return 0
}

func pairLsh(hi, lo Word, s uint) (Word, Word) {
	switch {
	case s == 0:
		return hi, lo
	case s >= _W2:
		return 0, 0
	case s >= _W:
		return lo << (s - _W), 0
	default:
		return hi<<s | lo>>(_W-s), lo << s
	}
}

func pairCmp(ah, al, bh, bl Word) int {
	switch {
	case ah != bh:
		if ah < bh {
			return -1
		}
		return 1
	case al != bl:
		if al < bl {
			return -1
		}
		return 1
	default:
		return 0
	}
}

func pairSub(ah, al, bh, bl Word) (Word, Word) {
	lo, borrow := bits.Sub64(al, bl, 0)
	hi, _ := bits.Sub64(ah, bh, borrow)
	return hi, lo
}
