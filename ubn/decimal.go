// Copyright 2024 The fibdrv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ubn

import (
	"strconv"
	"strings"
)

// superTenExp is the decimal exponent of SUPERTEN, the first-level block
// divisor the large-number path peels off.
const superTenExp = 1024

// superTenChunk is the number of limbs needed to hold SUPERTEN (54 for
// W == 64, per base.h's UBN_SUPERTEN_CHUNK).
const superTenChunk = 54

// mediumThreshold is the limb count at which Text switches from the medium
// (repeated DivLTEN) tier to the large (SUPERTEN block) tier. Chosen, as
// the design requires, as 2*superTenChunk so that the SUPERTEN path only
// engages once it has at least two blocks worth of work to amortize its
// own precomputation cost over.
const mediumThreshold = 2 * superTenChunk

// superTen holds 10**1024, computed once by repeated squaring of LTEN and
// reused by every large-tier conversion.
var superTen = computeSuperTen()

// computeSuperTen derives SUPERTEN = 10**1024 from LTEN = 10**16 by
// repeated squaring, doubling the decimal exponent each time (16, 32, 64,
// ..., 1024) rather than incrementing it one multiply at a time. It panics
// on allocation failure, the same way a package-level MustCompile would:
// SUPERTEN is a small, fixed-size constant computed once at package init,
// so there is no caller to return an error to.
func computeSuperTen() *Uint {
	st := New(1)
	if err := st.SetUint64(uint64(LTEN)); err != nil {
		panic(err)
	}
	for exp := ltenExp; exp < superTenExp; exp *= 2 {
		if err := st.Sqr(st); err != nil {
			panic(err)
		}
	}
	return st
}

// Text returns N's value as a heap-allocated, null-terminator-free ASCII
// decimal string with no leading zeros ("0" for N == 0). Conversion is
// size-stratified: a single limb is formatted directly; a medium-sized
// value is peeled into LTEN-sized (16-digit) chunks; a large value is
// first split into SUPERTEN-sized (1024-digit) blocks, each of which is
// then run through the medium tier.
//
// Text has no error return because, unlike the mutating operations in this
// package, it never needs storage beyond what N and its own scratch
// divisions already hold: every intermediate quotient is no larger than
// the value it was extracted from. If the division or multiplication
// machinery it calls ever does report an *OpError, that signals a bug in
// this package, not a reachable runtime condition, so Text panics with the
// error rather than silently dropping it or forcing every caller (most of
// which only want a string) to check one.
func (z *Uint) Text() string {
	switch {
	case z.IsZero():
		return "0"
	case z.size == 1:
		return strconv.FormatUint(uint64(z.data[0]), 10)
	case z.size < mediumThreshold:
		s, err := mediumDigits(z)
		if err != nil {
			panic(err)
		}
		return s
	default:
		s, err := largeDigits(z)
		if err != nil {
			panic(err)
		}
		return s
	}
}

// mediumDigits formats v by repeatedly dividing it by LTEN, collecting one
// 16-digit chunk per division, least significant chunk first. The most
// significant chunk is printed without padding; every other chunk is
// zero-padded to 16 digits.
func mediumDigits(v *Uint) (string, error) {
	if v.IsZero() {
		return "0", nil
	}
	d := NewDiv(v.size)
	if err := d.Dividend.Set(v); err != nil {
		return "", err
	}

	var chunks []uint64
	for !d.Dividend.IsZero() {
		if err := d.DivLTEN(); err != nil {
			return "", err
		}
		chunks = append(chunks, d.ShortRemainder)
		if err := d.Dividend.Set(d.Quotient); err != nil {
			return "", err
		}
	}

	var sb strings.Builder
	last := len(chunks) - 1
	sb.WriteString(strconv.FormatUint(chunks[last], 10))
	for i := last - 1; i >= 0; i-- {
		pad := strconv.FormatUint(chunks[i], 10)
		sb.WriteString(strings.Repeat("0", ltenExp-len(pad)))
		sb.WriteString(pad)
	}
	return sb.String(), nil
}

// largeDigits formats v (v.size >= mediumThreshold) by peeling SUPERTEN
// sized blocks off via bignum-by-bignum long division, least significant
// block first, then printing each block through the medium tier: the most
// significant block unpadded, every other block zero-padded to
// superTenExp digits, concatenated in natural (most significant first)
// order.
func largeDigits(v *Uint) (string, error) {
	d := NewDiv(v.size + 1)
	if err := d.Dividend.Set(v); err != nil {
		return "", err
	}

	var blocks []*Uint
	for !d.Dividend.IsZero() {
		if err := d.DivMod(superTen); err != nil {
			return "", err
		}
		rem := New(d.Dividend.Len())
		if err := rem.Set(d.Dividend); err != nil {
			return "", err
		}
		blocks = append(blocks, rem)
		if err := d.Dividend.Set(d.Quotient); err != nil {
			return "", err
		}
	}

	var sb strings.Builder
	n := len(blocks)
	msb, err := mediumDigits(blocks[n-1])
	if err != nil {
		return "", err
	}
	sb.WriteString(msb)
	for i := n - 2; i >= 0; i-- {
		digits, err := mediumDigits(blocks[i])
		if err != nil {
			return "", err
		}
		sb.WriteString(strings.Repeat("0", superTenExp-len(digits)))
		sb.WriteString(digits)
	}
	return sb.String(), nil
}
