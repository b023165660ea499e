/*
DESCRIPTION
  bc2_bc3_test.go checks BC2/BC3 explicit-alpha decode, the premultiplied
  encode/decode convention (alpha==0 forces RGB==0, per the decision
  recorded alongside the rest of this engine's Open Question calls), and
  the RXGB swizzle.

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

func TestBC2AlphaExpansion(t *testing.T) {
	block := make([]byte, 16)
	// All 4-bit alpha nibbles set to 0xA -> replicated to 0xAA per texel.
	for i := 0; i < 8; i++ {
		block[i] = 0xAA
	}
	alpha := bc2Alpha(block[0:8])
	for i, a := range alpha {
		if a != 0xAA {
			t.Fatalf("alpha[%d] = %#02x, want 0xAA", i, a)
		}
	}
}

func TestBC2PremultipliedZeroAlphaForcesZeroRGB(t *testing.T) {
	// Open Question decision: premultiplied alpha==0 must decode to RGB==0,
	// not leave the underlying (possibly nonzero) RGB block color visible.
	got := unpremultiply(RGBA{R: 200, G: 150, B: 50, A: 0})
	if got != (RGBA{0, 0, 0, 0}) {
		t.Fatalf("unpremultiply(a=0) = %+v, want zero", got)
	}
}

func TestBC2PremultiplyRoundTrip(t *testing.T) {
	original := RGBA{R: 200, G: 150, B: 50, A: 128}
	pm := premultiply(original)
	back := unpremultiply(pm)
	// Premultiply then unpremultiply loses precision at low alpha but must
	// stay within a few levels for a mid-range alpha like 128.
	if absDiffInt(int(back.R), int(original.R)) > 3 ||
		absDiffInt(int(back.G), int(original.G)) > 3 ||
		absDiffInt(int(back.B), int(original.B)) > 3 {
		t.Fatalf("premultiply round trip: got %+v, want near %+v", back, original)
	}
}

func TestBC3RXGBIgnoresRGBBlockRedBits(t *testing.T) {
	var px [16]RGBA
	for i := range px {
		px[i] = RGBA{R: uint8(i * 16), G: 60, B: 90, A: 255}
	}
	block := EncodeBC3RXGBBlock(px)
	decoded := DecodeBC3RXGBBlock(block[:])
	for i, p := range decoded {
		if p.A != 255 {
			t.Fatalf("RXGB decode should force A=255, got %d at %d", p.A, i)
		}
		if absDiffInt(int(p.G), 60) > 2 || absDiffInt(int(p.B), 90) > 2 {
			t.Fatalf("texel %d G/B = (%d,%d), want near (60,90)", i, p.G, p.B)
		}
	}
}

func TestBC3AlwaysFourColorMode(t *testing.T) {
	// BC2/BC3's RGB block never uses BC1's 1-bit-alpha 3-color mode: the
	// third and fourth palette entries must always be independent colors,
	// never transparent black, since alpha is explicit elsewhere.
	pal := bc2AlwaysFourColor(0, 0xFFFF)
	if pal[3].A != 255 {
		t.Fatalf("bc2AlwaysFourColor must never produce a transparent entry, got %+v", pal[3])
	}
}
