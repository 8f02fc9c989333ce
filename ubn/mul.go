// Copyright 2024 The fibdrv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ubn

// addShifted adds a (scaled by 2**(offset*_W)) into out, growing out as
// needed. out must not alias a. Mirrors ubignum_mult_add.
func addShifted(out *Uint, a []Word, offset int) error {
	n := len(a)
	for n > 0 && a[n-1] == 0 {
		n--
	}
	if n == 0 {
		return nil
	}
	ub := offset + n
	if err := out.growTo(ub); err != nil {
		return err
	}
	var carry uint
	oi := offset
	for ai := 0; ai < n; ai, oi = ai+1, oi+1 {
		out.data[oi], carry = addWithCarry(out.data[oi], a[ai], carry)
	}
	for ; carry != 0; oi++ {
		if err := out.growTo(oi + 1); err != nil {
			return err
		}
		out.data[oi], carry = addWithCarry(out.data[oi], 0, carry)
		ub = oi + 1
	}
	if ub < out.size {
		ub = out.size
	}
	out.finish(ub)
	return nil
}

// Mul sets z = a * b (schoolbook multiplication), returning an *OpError
// with Kind ErrAlloc if it could not allocate the working storage. The
// product is always built in a fresh backing array and then swapped into z,
// so z may alias a and/or b safely.
func (z *Uint) Mul(a, b *Uint) error {
	if a.IsZero() || b.IsZero() {
		z.SetZero()
		return nil
	}

	// keep mcand the longer operand, mplier the shorter, as the original
	// source does, so the inner loop runs over the larger operand only
	// mplier.size times.
	mcand, mplier := a, b
	if mcand.size < mplier.size {
		mcand, mplier = mplier, mcand
	}

	ans := New(mcand.size + mplier.size)
	pprod := make([]Word, mcand.size+1)

	for i := 0; i < mplier.size; i++ {
		var carry uint
		var overlap Word
		pi := mplier.data[i]
		for j := 0; j < mcand.size; j++ {
			hi, lo := widenMul(mcand.data[j], pi)
			pprod[j], carry = addWithCarry(lo, overlap, carry)
			overlap = hi
		}
		pprod[mcand.size] = overlap + Word(carry) // cannot overflow: see §4.D
		if err := addShifted(ans, pprod, i); err != nil {
			return err
		}
	}

	z.Swap(ans)
	return nil
}

// Sqr sets z = a*a, exploiting the symmetry of the cross-product terms: each
// a[i]*a[j] for i != j is counted twice, so the routine computes it once per
// pair and doubles the whole cross-product row with a single left shift
// before accumulating, rather than doubling every product individually. It
// returns an *OpError with Kind ErrAlloc if it could not allocate the
// working storage.
func (z *Uint) Sqr(a *Uint) error {
	if a.IsZero() {
		z.SetZero()
		return nil
	}
	n := a.size
	ans := New(2 * n)
	for i := 0; i < n; i++ {
		hi, lo := widenMul(a.data[i], a.data[i])
		ans.data[2*i] = lo
		ans.data[2*i+1] = hi
	}
	ans.finish(2 * n)

	row := New(n + 2)
	for i := 0; i < n-1; i++ {
		row.SetZero()
		if err := row.growTo(n + 1); err != nil {
			return err
		}
		var carry uint
		var overlap Word
		ai := a.data[i]
		for j := i + 1; j < n; j++ {
			hi, lo := widenMul(a.data[j], ai)
			row.data[j], carry = addWithCarry(lo, overlap, carry)
			overlap = hi
		}
		row.data[n] = overlap + Word(carry)
		row.finish(n + 1)
		if err := row.Lsh(row, 1); err != nil { // double the cross-product row
			return err
		}
		if err := addShifted(ans, row.data[:row.size], i); err != nil {
			return err
		}
	}

	z.Swap(ans)
	return nil
}
