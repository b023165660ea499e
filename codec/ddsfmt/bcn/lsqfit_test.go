/*
DESCRIPTION
  lsqfit_test.go checks the least-squares endpoint fits used by the BC1 and
  BC4/BC5 encoders: that they pick the extremes along the dominant axis of
  variation, and fall back sanely on degenerate (zero-variance) blocks.

AUTHOR
  Mara Lindqvist <mara@ddsgo.dev>

LICENSE
  Copyright (C) 2026 the DDS-Go Authors. All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the DDS-Go Authors.
*/

package bcn

import "testing"

func TestFitLine3DSolidBlockDegenerate(t *testing.T) {
	var px [16]RGBA
	for i := range px {
		px[i] = RGBA{100, 120, 140, 255}
	}
	lo, hi := fitLine3D(px)
	if lo != (RGBA{100, 120, 140, 255}) || hi != (RGBA{100, 120, 140, 255}) {
		t.Fatalf("fitLine3D on a solid block = (%+v,%+v), want both equal to the solid color", lo, hi)
	}
}

func TestFitLine3DPicksExtremesAlongGradient(t *testing.T) {
	var px [16]RGBA
	for i := range px {
		v := uint8(i * 17)
		px[i] = RGBA{v, v, v, 255}
	}
	lo, hi := fitLine3D(px)
	// The block is a pure grey ramp: the fitted line's extremes must be the
	// darkest and brightest texels (R==G==B in both cases).
	if lo.R != lo.G || lo.G != lo.B {
		t.Fatalf("lo endpoint %+v is not grey", lo)
	}
	if hi.R != hi.G || hi.G != hi.B {
		t.Fatalf("hi endpoint %+v is not grey", hi)
	}
	if lo.R > hi.R {
		t.Fatalf("lo.R=%d should be <= hi.R=%d", lo.R, hi.R)
	}
}

func TestFitEndpoints1DNonDegenerate(t *testing.T) {
	var px [16]uint8
	for i := range px {
		px[i] = uint8(10 + i*5)
	}
	lo, hi := fitEndpoints1D(px)
	if lo >= hi {
		t.Fatalf("fitEndpoints1D(%v) = (%d,%d), want lo < hi", px, lo, hi)
	}
}

func TestFitEndpoints1DSolidForcesNonDegenerate(t *testing.T) {
	var px [16]uint8
	for i := range px {
		px[i] = 200
	}
	lo, hi := fitEndpoints1D(px)
	if lo == hi {
		t.Fatalf("fitEndpoints1D on a solid block must force lo != hi, got (%d,%d)", lo, hi)
	}
}

func TestClampChanSaturates(t *testing.T) {
	if clampChan(-10) != 0 {
		t.Fatalf("clampChan(-10) should saturate to 0")
	}
	if clampChan(300) != 255 {
		t.Fatalf("clampChan(300) should saturate to 255")
	}
}
