/*
DESCRIPTION
  xr10_test.go checks the XR_BIAS 2.8 fixed-point kernel: the F32 target
  keeps its extended [-0.75294, 1.25294] range unclamped, while the Unorm
  targets clamp into [0, maxOut] as any narrower output representation
  must.

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

func TestXR10ZeroBias(t *testing.T) {
	// 0x180 is the bias point (1.5 in 2.8 fixed-point) -> F32 0.0.
	if got := XR10ToF32(0x180); got != 0 {
		t.Fatalf("XR10ToF32(0x180) = %v, want 0", got)
	}
}

func TestXR10UnitPoint(t *testing.T) {
	// 0x180+510 == 0x37E maps to F32 1.0.
	if got := XR10ToF32(0x180 + 510); got != 1 {
		t.Fatalf("XR10ToF32(bias+510) = %v, want 1", got)
	}
}

func TestXR10UnormClampsBelowRange(t *testing.T) {
	if got := XR10ToN8(0); got != 0 {
		t.Fatalf("XR10ToN8(0) = %d, want 0 (clamped)", got)
	}
	if got := XR10ToN16(0); got != 0 {
		t.Fatalf("XR10ToN16(0) = %d, want 0 (clamped)", got)
	}
}

func TestXR10UnormClampsAboveRange(t *testing.T) {
	if got := XR10ToN8(1023); got != 255 {
		t.Fatalf("XR10ToN8(1023) = %d, want 255 (clamped)", got)
	}
	if got := XR10ToN16(1023); got != 65535 {
		t.Fatalf("XR10ToN16(1023) = %d, want 65535 (clamped)", got)
	}
}

func TestXR10F32StaysUnclampedBeyondUnitRange(t *testing.T) {
	// Below the bias point the extended format legitimately goes negative;
	// the F32 target must preserve that, unlike the Unorm targets above.
	if got := XR10ToF32(0); got >= 0 {
		t.Fatalf("XR10ToF32(0) = %v, want a negative value", got)
	}
	if got := XR10ToF32(1023); got <= 1 {
		t.Fatalf("XR10ToF32(1023) = %v, want a value above 1", got)
	}
}
