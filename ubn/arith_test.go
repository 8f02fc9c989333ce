// Copyright 2024 The fibdrv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ubn

import (
	"math/big"
	"math/rand"
	"testing"
)

func randBig(r *rand.Rand, bits int) *big.Int {
	n := new(big.Int).Rand(r, new(big.Int).Lsh(big.NewInt(1), uint(bits)))
	return n
}

func TestAddAgainstMathBig(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		xb := randBig(r, 1+r.Intn(600))
		yb := randBig(r, 1+r.Intn(600))
		want := new(big.Int).Add(xb, yb)

		x, y := fromBig(xb), fromBig(yb)
		z := New(0)
		must(t, z.Add(x, y))
		if got := toBig(z); got.Cmp(want) != 0 {
			t.Fatalf("Add(%v, %v) = %v, want %v", xb, yb, got, want)
		}
	}
}

func TestAddAliasing(t *testing.T) {
	a, b := New(0), New(0)
	must(t, a.SetUint64(5))
	must(t, b.SetUint64(7))
	must(t, a.Add(a, b))
	if a.limb(0) != 12 {
		t.Fatalf("Add(a, a, b) = %d, want 12", a.limb(0))
	}
}

// TestAddMSBIsUMaxCarriesIntoNewLimb is B2: the operand's most significant
// (and only) limb is U_MAX, so the addition must carry out into a freshly
// allocated limb rather than silently dropping the overflow.
func TestAddMSBIsUMaxCarriesIntoNewLimb(t *testing.T) {
	a, b, z := New(0), New(0), New(0)
	must(t, a.SetUint64(uint64(_WMax)))
	must(t, b.SetUint64(1))
	must(t, z.Add(a, b))

	want := new(big.Int).Lsh(big.NewInt(1), _W) // 2**_W
	if got := toBig(z); got.Cmp(want) != 0 {
		t.Fatalf("Add(U_MAX, 1) = %v, want %v", got, want)
	}
	if z.Len() != 2 {
		t.Fatalf("Add(U_MAX, 1): Len=%d, want 2 (carry must force a new limb)", z.Len())
	}
}

func TestSubAgainstMathBig(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 200; i++ {
		xb := randBig(r, 1+r.Intn(600))
		yb := randBig(r, 1+r.Intn(600))
		if xb.Cmp(yb) < 0 {
			xb, yb = yb, xb
		}
		want := new(big.Int).Sub(xb, yb)

		x, y := fromBig(xb), fromBig(yb)
		z := New(0)
		must(t, z.Sub(x, y))
		if got := toBig(z); got.Cmp(want) != 0 {
			t.Fatalf("Sub(%v, %v) = %v, want %v", xb, yb, got, want)
		}
	}
}

func TestSubUnderflowFails(t *testing.T) {
	a, b := New(0), New(0)
	must(t, a.SetUint64(1))
	must(t, b.SetUint64(2))
	z := New(0)
	if err := z.Sub(a, b); err == nil {
		t.Fatal("Sub(1, 2) succeeded, want failure")
	} else if oe, ok := err.(*OpError); !ok || oe.Kind != ErrInvalidOperand {
		t.Fatalf("Sub(1, 2) error = %v, want an *OpError with Kind ErrInvalidOperand", err)
	}
}

func TestSubEqualIsZero(t *testing.T) {
	a := New(0)
	must(t, a.SetUint64(123456789))
	z := New(0)
	must(t, z.Sub(a, a))
	if !z.IsZero() {
		t.Fatalf("Sub(x, x): IsZero=%v, want true", z.IsZero())
	}
}

// TestSubBorrowPropagatesAcrossZeroLimbs is the subtraction half of B2: the
// minuend's low limbs are all zero, so the borrow from the lowest limb must
// ripple all the way up to the most significant limb, turning each zero
// limb into U_MAX and the top limb from 1 into 0 (so the result shrinks to
// two limbs).
func TestSubBorrowPropagatesAcrossZeroLimbs(t *testing.T) {
	a := fromBig(new(big.Int).Lsh(big.NewInt(1), 2*_W)) // 2**(2*_W): {0, 0, 1}
	b := New(0)
	must(t, b.SetUint64(1))
	z := New(0)
	must(t, z.Sub(a, b))

	want := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 2*_W), big.NewInt(1))
	if got := toBig(z); got.Cmp(want) != 0 {
		t.Fatalf("Sub(2**(2W), 1) = %v, want %v", got, want)
	}
	if z.Len() != 2 || z.limb(0) != _WMax || z.limb(1) != _WMax {
		t.Fatalf("Sub(2**(2W), 1): limbs = [%#x, %#x] len %d, want two U_MAX limbs",
			z.limb(0), z.limb(1), z.Len())
	}
}

func TestLshAgainstMathBig(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 200; i++ {
		xb := randBig(r, 1+r.Intn(400))
		d := uint(r.Intn(300))
		want := new(big.Int).Lsh(xb, d)

		x := fromBig(xb)
		z := New(0)
		must(t, z.Lsh(x, d))
		if got := toBig(z); got.Cmp(want) != 0 {
			t.Fatalf("Lsh(%v, %d) = %v, want %v", xb, d, got, want)
		}
	}
}

// TestLshBoundaryShiftAmounts is B3: shifts of exactly d = 0, W-1, W, and
// W+1, which straddle every edge the limb/residual split in Lsh has to
// handle (no-op copy, almost-a-whole-limb, exactly-a-limb, a-limb-plus-one).
func TestLshBoundaryShiftAmounts(t *testing.T) {
	xb := new(big.Int).SetUint64(0xDEADBEEFCAFEBABE)
	for _, d := range []uint{0, _W - 1, _W, _W + 1} {
		want := new(big.Int).Lsh(xb, d)
		x := fromBig(xb)
		z := New(0)
		must(t, z.Lsh(x, d))
		if got := toBig(z); got.Cmp(want) != 0 {
			t.Fatalf("Lsh(%v, %d) = %v, want %v", xb, d, got, want)
		}
	}
}

// TestLshTopBitSetBoundary combines B2 and B3: the operand's most
// significant limb is U_MAX (clz == 0, so Lsh's "shift > a.clz()" carry
// branch is forced on any nonzero residual shift), exercised at every
// boundary shift amount from TestLshBoundaryShiftAmounts.
func TestLshTopBitSetBoundary(t *testing.T) {
	xb := new(big.Int).SetUint64(uint64(_WMax))
	for _, d := range []uint{0, 1, _W - 1, _W, _W + 1} {
		want := new(big.Int).Lsh(xb, d)
		x := fromBig(xb)
		z := New(0)
		must(t, z.Lsh(x, d))
		if got := toBig(z); got.Cmp(want) != 0 {
			t.Fatalf("Lsh(U_MAX, %d) = %v, want %v", d, got, want)
		}
	}
}

func TestLshAliasing(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	for i := 0; i < 50; i++ {
		xb := randBig(r, 1+r.Intn(400))
		d := uint(r.Intn(200))
		want := new(big.Int).Lsh(xb, d)

		x := fromBig(xb)
		must(t, x.Lsh(x, d))
		if got := toBig(x); got.Cmp(want) != 0 {
			t.Fatalf("Lsh(x, x, %d) = %v, want %v", d, got, want)
		}
	}
}

func TestLshZero(t *testing.T) {
	z := New(0)
	x := New(0)
	must(t, z.Lsh(x, 5))
	if !z.IsZero() {
		t.Fatal("Lsh(0, 5) should remain zero")
	}
}
