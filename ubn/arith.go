// Copyright 2024 The fibdrv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ubn

// Lsh sets z = a << d (d in bits), returning an *OpError with Kind ErrAlloc
// if it could not grow z. Aliasing z with a is supported: limbs are written
// from the most significant end down to the least significant end so that,
// when z and a share storage, a destination limb is always written only
// after every source limb it reads from has already been consumed.
func (z *Uint) Lsh(a *Uint, d uint) error {
	if a.IsZero() {
		z.SetZero()
		return nil
	}
	if d == 0 {
		if z == a {
			return nil
		}
		return z.Set(a)
	}

	chunkShift := int(d / _W)
	shift := d % _W
	newSize := a.size + chunkShift
	if shift > a.clz() {
		newSize++
	}
	if err := z.growTo(newSize); err != nil {
		return err
	}

	if shift == 0 {
		copy(z.data[chunkShift:newSize], a.data[:a.size])
	} else {
		ai, oi := a.size-1, a.size+chunkShift-1
		if shift > a.clz() {
			z.data[oi+1] = a.data[ai] >> (_W - shift)
		}
		for ; ai > 0; ai-- {
			z.data[oi] = a.data[ai]<<shift | a.data[ai-1]>>(_W-shift)
			oi--
		}
		z.data[oi] = a.data[0] << shift
	}
	clear(z.data[:chunkShift])
	z.finish(newSize)
	return nil
}

// Add sets z = a + b, returning an *OpError with Kind ErrAlloc if it could
// not grow z. Aliasing z with a and/or b is supported.
func (z *Uint) Add(a, b *Uint) error {
	if a.size < b.size {
		a, b = b, a
	}
	// a.size >= b.size

	var newSize int
	switch {
	case a.IsZero(), b.IsZero():
		newSize = a.size
	case a.clz() == 0:
		newSize = a.size + 1
	default:
		newSize = a.size
	}
	if err := z.growTo(newSize); err != nil {
		return err
	}

	var carry uint
	i := 0
	for ; i < b.size; i++ {
		z.data[i], carry = addWithCarry(a.data[i], b.data[i], carry)
	}
	for ; i < a.size; i++ {
		z.data[i], carry = addWithCarry(a.data[i], 0, carry)
	}
	ub := a.size
	if carry != 0 {
		if err := z.growTo(a.size + 1); err != nil {
			return err
		}
		z.data[a.size] = Word(carry)
		ub = a.size + 1
	}
	z.finish(ub)
	return nil
}

// Sub sets z = a - b. It fails, leaving z unchanged and returning an
// *OpError with Kind ErrInvalidOperand, when a < b (the package's other
// invalid-operand case is DivMod's zero divisor; shifts take an unsigned
// count, so they have none); it returns Kind ErrAlloc if it could not grow z.
// Aliasing z with a and/or b is supported.
func (z *Uint) Sub(a, b *Uint) error {
	if Compare(a, b) < 0 {
		return invalidOperandErr("Sub")
	}
	if Compare(a, b) == 0 {
		z.SetZero()
		return nil
	}
	if err := z.growTo(a.size); err != nil {
		return err
	}

	// out = a + ^b + 1, with b zero-extended to a.size using U_MAX limbs;
	// the final carry out of the top limb is discarded by construction.
	borrow := uint(1)
	var carry uint
	for i := 0; i < b.size; i++ {
		z.data[i], carry = addWithCarry(a.data[i], ^b.data[i], borrow)
		borrow = carry
	}
	for i := b.size; i < a.size; i++ {
		z.data[i], carry = addWithCarry(a.data[i], _WMax, borrow)
		borrow = carry
	}
	z.finish(a.size)
	return nil
}
