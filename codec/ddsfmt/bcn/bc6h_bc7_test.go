/*
DESCRIPTION
  bc6h_bc7_test.go checks the BC6H/BC7 encoder/decoder round trip for the
  sub-modes this library emits, and the flat-fallback totality guarantee
  for reserved mode encodings.

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

func TestBC6HRoundTripUnsigned(t *testing.T) {
	var px [16][3]float32
	for i := range px {
		px[i] = [3]float32{0.25, 0.5, 0.75}
	}
	block := EncodeBC6HBlock(px, false)
	decoded := DecodeBC6HBlock(block[:], false)
	for i, c := range decoded {
		for ch := 0; ch < 3; ch++ {
			d := c[ch] - px[i][ch]
			if d < 0 {
				d = -d
			}
			if d > 0.05 {
				t.Fatalf("texel %d channel %d = %v, want near %v", i, ch, c[ch], px[i][ch])
			}
		}
	}
}

func TestBC6HUnrecognizedModeFallsBackFlat(t *testing.T) {
	block := make([]byte, 16)
	block[0] = 0x1F // 0b11111: one of the four reserved 5-bit mode fields
	decoded := DecodeBC6HBlock(block, false)
	for i, c := range decoded {
		if c != [3]float32{0.5, 0.5, 0.5} {
			t.Fatalf("texel %d = %v, want flat mid-gray fallback", i, c)
		}
	}
}

func TestBC7RoundTripMode6(t *testing.T) {
	var px [16]RGBA
	for i := range px {
		px[i] = RGBA{100, 150, 200, 255}
	}
	block := EncodeBC7Block(px)
	decoded := DecodeBC7Block(block[:])
	for i, c := range decoded {
		if absDiffInt(int(c.R), 100) > 4 || absDiffInt(int(c.G), 150) > 4 ||
			absDiffInt(int(c.B), 200) > 4 || absDiffInt(int(c.A), 255) > 4 {
			t.Fatalf("texel %d = %+v, want near (100,150,200,255)", i, c)
		}
	}
}

func TestBC7UnrecognizedModeFallsBackFlat(t *testing.T) {
	// A first byte with no bit set carries no mode bit: the reserved
	// encoding.
	block := []byte{0x00, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	decoded := DecodeBC7Block(block)
	for i, c := range decoded {
		if c != (RGBA{128, 128, 128, 255}) {
			t.Fatalf("texel %d = %+v, want flat mid-gray fallback", i, c)
		}
	}
}
