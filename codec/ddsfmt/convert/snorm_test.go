/*
DESCRIPTION
  snorm_test.go checks the Snorm8/16 normalization and conversion kernels
  against the literal values spec.md §8 enumerates for "Snorm
  normalization".

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

func TestSnorm8Normalize(t *testing.T) {
	// Scenario 3 from spec.md §8: bytes [0x80, 0x81, 0x00, 0x7F] -> u8 [0, 0, 128, 255].
	cases := []struct {
		in   uint8
		want uint8
	}{
		{0x80, 0}, // -128 (-1.0 and one-past) both clamp to 0.
		{0x81, 0}, // -127, the other extreme, also clamps to 0.
		{0x00, 128},
		{0x7F, 255},
	}
	for _, c := range cases {
		if got := S8ToN8(c.in); got != c.want {
			t.Fatalf("S8ToN8(%#02x) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestSnorm16Normalize(t *testing.T) {
	if got := S16ToN16(0x8000); got != 0 { // -32768
		t.Fatalf("S16ToN16(min) = %d, want 0", got)
	}
	if got := S16ToN16(0x8001); got != 0 { // -32767, the other negative extreme
		t.Fatalf("S16ToN16(min+1) = %d, want 0", got)
	}
	if got := S16ToN16(0x7FFF); got != 65535 { // +max
		t.Fatalf("S16ToN16(max) = %d, want 65535", got)
	}
	if got := S16ToN16(0); got != 32768 { // 0 as signed
		t.Fatalf("S16ToN16(0) = %d, want 32768", got)
	}
}

func TestNormS8Exhaustive(t *testing.T) {
	for x := 0; x < 256; x++ {
		got := NormS8(uint8(x))
		if got > 254 {
			t.Fatalf("NormS8(%d) = %d, out of [0,254]", x, got)
		}
	}
	if NormS8(0x80) != 0 || NormS8(0x81) != 0 {
		t.Fatalf("both negative extremes must clamp to 0")
	}
	if NormS8(0x7F) != 254 {
		t.Fatalf("NormS8(max) = %d, want 254", NormS8(0x7F))
	}
}

func TestSnormUF32NonNegative(t *testing.T) {
	for x := 0; x < 256; x++ {
		if v := S8ToUF32(uint8(x)); v < 0 || v > 1 {
			t.Fatalf("S8ToUF32(%d) = %v, out of [0,1]", x, v)
		}
	}
}
