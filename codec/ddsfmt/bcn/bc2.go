/*
DESCRIPTION
  bc2.go decodes and encodes BC2 blocks: a 64-bit, 4-bit-per-texel explicit
  alpha channel followed by a BC1-style RGB block (always the 4-color
  palette, never the 1-bit-alpha mode — the explicit alpha channel
  supersedes it). The premultiplied variant divides decoded RGB by decoded
  A.

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

// bc2Alpha unpacks the 16 4-bit alpha values from the first 8 bytes of a
// BC2 block, expanded to 8 bits by replication (0xA -> 0xAA).
func bc2Alpha(block []byte) [16]uint8 {
	lo := binary.LittleEndian.Uint64(block[0:8])
	var out [16]uint8
	for i := 0; i < 16; i++ {
		nibble := uint8((lo >> uint(i*4)) & 0xF)
		out[i] = nibble<<4 | nibble
	}
	return out
}

func packBC2Alpha(a [16]uint8) [8]byte {
	var lo uint64
	for i, v := range a {
		nibble := uint64(v >> 4)
		lo |= nibble << uint(i*4)
	}
	var out [8]byte
	binary.LittleEndian.PutUint64(out[:], lo)
	return out
}

// DecodeBC2Block decodes one 16-byte BC2 block to 16 RGBA texels. When
// premultiplied is true, RGB is un-premultiplied (divided by A; A=0
// yields RGB=0 to avoid division by zero, matching this engine's documented
// BC2/BC3 premultiplied-encode convention's decode counterpart).
func DecodeBC2Block(block []byte, premultiplied bool) [16]RGBA {
	alpha := bc2Alpha(block[0:8])
	c0 := binary.LittleEndian.Uint16(block[8:10])
	c1 := binary.LittleEndian.Uint16(block[10:12])
	indices := binary.LittleEndian.Uint32(block[12:16])
	pal := bc2AlwaysFourColor(c0, c1)

	var out [16]RGBA
	for i := 0; i < 16; i++ {
		idx := (indices >> uint(i*2)) & 0x3
		p := pal[idx]
		p.A = alpha[i]
		if premultiplied {
			p = unpremultiply(p)
		}
		out[i] = p
	}
	return out
}

// bc2AlwaysFourColor computes the BC1-style palette, but always in 4-color
// mode (no 1-bit-alpha fallback): BC2/BC3 carry alpha separately.
func bc2AlwaysFourColor(c0, c1 uint16) [4]RGBA {
	r0, g0, b0 := unpack565(c0)
	r1, g1, b1 := unpack565(c1)
	return [4]RGBA{
		{expand5(r0), expand6(g0), expand5(b0), 255},
		{expand5(r1), expand6(g1), expand5(b1), 255},
		{bc1Interp2(r0, r1, false), bc1Interp2(g0, g1, true), bc1Interp2(b0, b1, false), 255},
		{bc1Interp2(r1, r0, false), bc1Interp2(g1, g0, true), bc1Interp2(b1, b0, false), 255},
	}
}

func unpremultiply(p RGBA) RGBA {
	if p.A == 0 {
		return RGBA{0, 0, 0, 0}
	}
	scale := func(c uint8) uint8 {
		v := uint32(c) * 255 / uint32(p.A)
		if v > 255 {
			v = 255
		}
		return uint8(v)
	}
	return RGBA{scale(p.R), scale(p.G), scale(p.B), p.A}
}

// premultiply is the inverse of unpremultiply, used by the encoder.
func premultiply(p RGBA) RGBA {
	scale := func(c uint8) uint8 {
		return uint8(uint32(c) * uint32(p.A) / 255)
	}
	return RGBA{scale(p.R), scale(p.G), scale(p.B), p.A}
}

// EncodeBC2Block approximates a 16-byte BC2 block from 16 RGBA texels.
func EncodeBC2Block(px [16]RGBA, premultiplied bool) [16]byte {
	var alpha [16]uint8
	var rgb [16]RGBA
	for i, p := range px {
		if premultiplied {
			p = premultiply(p)
		}
		alpha[i] = p.A
		rgb[i] = RGBA{p.R, p.G, p.B, 255}
	}

	c0, c1 := endpointsByLuminance(rgb)
	pal := bc2AlwaysFourColor(c0, c1)

	var indices uint32
	for i, p := range rgb {
		best, bestDist := 0, colorDistSq(p, pal[0])
		for j := 1; j < 4; j++ {
			d := colorDistSq(p, pal[j])
			if d < bestDist {
				best, bestDist = j, d
			}
		}
		indices |= uint32(best) << uint(i*2)
	}

	var block [16]byte
	alphaBytes := packBC2Alpha(alpha)
	copy(block[0:8], alphaBytes[:])
	binary.LittleEndian.PutUint16(block[8:10], c0)
	binary.LittleEndian.PutUint16(block[10:12], c1)
	binary.LittleEndian.PutUint32(block[12:16], indices)
	return block
}
