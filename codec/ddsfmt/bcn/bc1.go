/*
DESCRIPTION
  bc1.go decodes and encodes BC1 (DXT1) blocks: two RGB565 endpoints and a
  32-bit, 2-bit-per-texel index table selecting among up to 4 palette
  colors. When the numeric endpoint ordering c0<=c1, the palette's third and
  fourth entries become a 50/50 blend and transparent black (the "1-bit
  alpha" mode); otherwise they are 2/3-1/3 blends, matching the DirectX
  reference interpolation constants exactly.

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

import "encoding/binary"

// RGBA is one decoded texel, channels in [0,255].
type RGBA struct {
	R, G, B, A uint8
}

// unpack565 splits a packed RGB565 word into its 5/6/5-bit channels.
func unpack565(c uint16) (r5, g6, b5 uint8) {
	return uint8(c >> 11 & 0x1F), uint8(c >> 5 & 0x3F), uint8(c & 0x1F)
}

func expand5(v uint8) uint8 { return uint8((uint16(v)*2108 + 92) >> 8) }
func expand6(v uint8) uint8 { return uint8((uint16(v)*1036 + 132) >> 8) }

// bc1Palette computes the 4 RGBA8 palette entries for one block's two
// RGB565 endpoints, expanded to 8-bit channels.
func bc1Palette(c0, c1 uint16) [4]RGBA {
	r0, g0, b0 := unpack565(c0)
	r1, g1, b1 := unpack565(c1)

	var pal [4]RGBA
	pal[0] = RGBA{expand5(r0), expand6(g0), expand5(b0), 255}
	pal[1] = RGBA{expand5(r1), expand6(g1), expand5(b1), 255}

	if c0 > c1 {
		pal[2] = RGBA{
			bc1Interp2(r0, r1, false),
			bc1Interp2(g0, g1, true),
			bc1Interp2(b0, b1, false),
			255,
		}
		pal[3] = RGBA{
			bc1Interp2(r1, r0, false),
			bc1Interp2(g1, g0, true),
			bc1Interp2(b1, b0, false),
			255,
		}
	} else {
		pal[2] = RGBA{
			bc1Mid(r0, r1, false),
			bc1Mid(g0, g1, true),
			bc1Mid(b0, b1, false),
			255,
		}
		pal[3] = RGBA{0, 0, 0, 0}
	}
	return pal
}

// bc1Interp2 computes the "2a/3+b/3" BC1 palette entry directly to an
// 8-bit channel value from the raw 5- or 6-bit endpoints. Both constant
// pairs (351,61,>>7 for 5-bit; 2763,1039,>>11 for 6-bit) are the DirectX
// reference's exact multiply-add-shift form: the result equals
// round((2a+b)*255/(3*max)) for every endpoint pair.
func bc1Interp2(a, b uint8, sixBit bool) uint8 {
	sum := uint32(a)*2 + uint32(b)
	if sixBit {
		return uint8((sum*2763 + 1039) >> 11)
	}
	return uint8((sum*351 + 61) >> 7)
}

// bc1Mid computes the 50/50 blend BC1 palette entry directly to an 8-bit
// channel value, analogous to bc1Interp2 (1053,125,>>8 for 5-bit;
// 4145,1019,>>11 for 6-bit).
func bc1Mid(a, b uint8, sixBit bool) uint8 {
	sum := uint32(a) + uint32(b)
	if sixBit {
		return uint8((sum*4145 + 1019) >> 11)
	}
	return uint8((sum*1053 + 125) >> 8)
}

// DecodeBC1Block decodes one 8-byte BC1 block to 16 RGBA texels in
// row-major order.
func DecodeBC1Block(block []byte) [16]RGBA {
	c0 := binary.LittleEndian.Uint16(block[0:2])
	c1 := binary.LittleEndian.Uint16(block[2:4])
	indices := binary.LittleEndian.Uint32(block[4:8])

	pal := bc1Palette(c0, c1)

	var out [16]RGBA
	for i := 0; i < 16; i++ {
		idx := (indices >> uint(i*2)) & 0x3
		out[i] = pal[idx]
	}
	return out
}

// EncodeBC1Block approximates an 8-byte BC1 block from 16 RGBA texels: the
// two endpoints are the extremes of the block's least-squares principal
// axis (fitLine3D) and each texel is assigned to its nearest palette entry.
func EncodeBC1Block(px [16]RGBA) [8]byte {
	lo, hi := fitLine3D(px)
	c0, c1 := pack565(hi), pack565(lo)
	if c0 == c1 {
		// Force a non-degenerate 4-color palette.
		if c0 > 0 {
			c1--
		} else {
			c0++
		}
	}
	if c0 < c1 {
		c0, c1 = c1, c0
	}
	pal := bc1Palette(c0, c1)

	var indices uint32
	for i, p := range px {
		best, bestDist := 0, colorDistSq(p, pal[0])
		for j := 1; j < 4; j++ {
			d := colorDistSq(p, pal[j])
			if d < bestDist {
				best, bestDist = j, d
			}
		}
		indices |= uint32(best) << uint(i*2)
	}

	var block [8]byte
	binary.LittleEndian.PutUint16(block[0:2], c0)
	binary.LittleEndian.PutUint16(block[2:4], c1)
	binary.LittleEndian.PutUint32(block[4:8], indices)
	return block
}

func colorDistSq(a, b RGBA) int {
	dr := int(a.R) - int(b.R)
	dg := int(a.G) - int(b.G)
	db := int(a.B) - int(b.B)
	return dr*dr + dg*dg + db*db
}

// endpointsByLuminance picks the darkest and brightest texel (by integer
// luma) as the two RGB565 endpoints, ordered so c0 > c1 (4-color mode).
func endpointsByLuminance(px [16]RGBA) (c0, c1 uint16) {
	lum := func(p RGBA) int { return int(p.R)*299 + int(p.G)*587 + int(p.B)*114 }
	lo, hi := px[0], px[0]
	loL, hiL := lum(px[0]), lum(px[0])
	for _, p := range px[1:] {
		l := lum(p)
		if l < loL {
			lo, loL = p, l
		}
		if l > hiL {
			hi, hiL = p, l
		}
	}
	hiPacked := pack565(hi)
	loPacked := pack565(lo)
	if hiPacked == loPacked {
		// Force a non-degenerate 4-color palette.
		if hiPacked > 0 {
			loPacked--
		} else {
			hiPacked++
		}
	}
	if hiPacked < loPacked {
		hiPacked, loPacked = loPacked, hiPacked
	}
	return hiPacked, loPacked
}

func pack565(p RGBA) uint16 {
	r := (uint16(p.R)*31 + 127) / 255
	g := (uint16(p.G)*63 + 127) / 255
	b := (uint16(p.B)*31 + 127) / 255
	return r<<11 | g<<5 | b
}
