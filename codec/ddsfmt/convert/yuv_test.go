/*
DESCRIPTION
  yuv_test.go sanity-checks the BT.601 limited-range YUV->RGB kernels:
  black/white/grey literal samples and the fused-kernel-matches-two-step
  property.

AUTHOR
  Mara Lindqvist <mara@ddsgo.dev>

LICENSE
  Copyright (C) 2026 the DDS-Go Authors. All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the DDS-Go Authors.
*/

package convert

import "testing"

func TestYUV8BlackWhiteGrey(t *testing.T) {
	// Limited-range black: Y=16, U=V=128 (neutral chroma).
	r, g, b := YUV8ToRGBF32(16, 128, 128)
	if r != 0 || g != 0 || b != 0 {
		t.Fatalf("limited-range black = (%v,%v,%v), want (0,0,0)", r, g, b)
	}

	// Limited-range white: Y=235, U=V=128.
	r, g, b = YUV8ToRGBF32(235, 128, 128)
	const tol = 0.01
	if absF32(r-1) > tol || absF32(g-1) > tol || absF32(b-1) > tol {
		t.Fatalf("limited-range white = (%v,%v,%v), want ~(1,1,1)", r, g, b)
	}

	// Neutral chroma must always produce grey (R==G==B) for any luma.
	r, g, b = YUV8ToRGBF32(128, 128, 128)
	if r != g || g != b {
		t.Fatalf("neutral chroma must yield grey, got (%v,%v,%v)", r, g, b)
	}
}

func TestYUV8ToRGBN8FusedMatchesTwoStep(t *testing.T) {
	for y := 0; y < 256; y += 17 {
		for u := 0; u < 256; u += 31 {
			for v := 0; v < 256; v += 31 {
				rf, gf, bf := YUV8ToRGBF32(uint8(y), uint8(u), uint8(v))
				wantR, wantG, wantB := FPToN8(rf), FPToN8(gf), FPToN8(bf)
				gotR, gotG, gotB := YUV8ToRGBN8(uint8(y), uint8(u), uint8(v))
				if gotR != wantR || gotG != wantG || gotB != wantB {
					t.Fatalf("YUV8ToRGBN8(%d,%d,%d) = (%d,%d,%d), want (%d,%d,%d)",
						y, u, v, gotR, gotG, gotB, wantR, wantG, wantB)
				}
			}
		}
	}
}

func TestYUVOutputsClamped(t *testing.T) {
	// Out-of-range chroma combinations must still clamp into [0,1], never
	// overflow or go negative.
	extremes := []uint8{0, 255}
	for _, y := range extremes {
		for _, u := range extremes {
			for _, v := range extremes {
				r, g, b := YUV8ToRGBF32(y, u, v)
				for _, c := range []float32{r, g, b} {
					if c < 0 || c > 1 {
						t.Fatalf("YUV8ToRGBF32(%d,%d,%d) produced out-of-range channel %v", y, u, v, c)
					}
				}
			}
		}
	}
}

func absF32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
