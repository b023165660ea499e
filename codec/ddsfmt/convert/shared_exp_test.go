/*
DESCRIPTION
  shared_exp_test.go checks the RGB9E5 shared-exponent kernels: the literal
  scenario spec.md §8 gives by value, and the fused-kernel equivalence
  property exhaustively over the full 9-bit mantissa x 5-bit exponent
  domain.

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

func TestRGB9E5Scenario(t *testing.T) {
	// Spec.md §8 scenario 5: mantissa 256, exponent 15 (bias) -> 0.5.
	if got := RGB9E5ChannelToF32(256, 15); got != 0.5 {
		t.Fatalf("RGB9E5ChannelToF32(256,15) = %v, want 0.5", got)
	}
	if got := RGB9E5ChannelToN8(256, 15); got != 128 {
		t.Fatalf("RGB9E5ChannelToN8(256,15) = %d, want 128", got)
	}
	if got := RGB9E5ChannelToN16(256, 15); got != 32768 {
		t.Fatalf("RGB9E5ChannelToN16(256,15) = %d, want 32768", got)
	}
}

func TestRGB9E5FusedEquivalenceExhaustive(t *testing.T) {
	for exp := 0; exp < 32; exp++ {
		for mant := 0; mant < 512; mant++ {
			f := RGB9E5ChannelToF32(uint16(mant), uint8(exp))
			wantN8 := FPToN8(f)
			wantN16 := FPToN16(f)
			if got := RGB9E5ChannelToN8(uint16(mant), uint8(exp)); got != wantN8 {
				t.Fatalf("RGB9E5ChannelToN8(%d,%d) = %d, want %d", mant, exp, got, wantN8)
			}
			if got := RGB9E5ChannelToN16(uint16(mant), uint8(exp)); got != wantN16 {
				t.Fatalf("RGB9E5ChannelToN16(%d,%d) = %d, want %d", mant, exp, got, wantN16)
			}
		}
	}
}

func TestRGB9E5NonNegative(t *testing.T) {
	if RGB9E5ChannelToF32(0, 0) < 0 {
		t.Fatalf("RGB9E5 must never be negative")
	}
	if RGB9E5ChannelToF32(511, 31) <= 0 {
		t.Fatalf("max mantissa/exponent must decode to a positive value")
	}
}
