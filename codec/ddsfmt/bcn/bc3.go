/*
DESCRIPTION
  bc3.go decodes and encodes BC3 blocks: a BC4-style 8-point alpha ramp
  followed by a BC1-style (always 4-color) RGB block. The premultiplied
  variant un-premultiplies on decode, as BC2 does. The RXGB variant treats
  the BC3-decoded alpha ramp as the R channel and discards the RGB block's
  R bits (conventionally zero in RXGB-encoded data).

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

// DecodeBC3Block decodes one 16-byte BC3 block to 16 RGBA texels.
func DecodeBC3Block(block []byte, premultiplied bool) [16]RGBA {
	alpha := bc4Ramp(block[0], block[1])
	idx := bc4Indices(block[0:8])
	c0 := binary.LittleEndian.Uint16(block[8:10])
	c1 := binary.LittleEndian.Uint16(block[10:12])
	indices := binary.LittleEndian.Uint32(block[12:16])
	pal := bc2AlwaysFourColor(c0, c1)

	var out [16]RGBA
	for i := 0; i < 16; i++ {
		p := pal[(indices>>uint(i*2))&0x3]
		p.A = alpha[idx[i]]
		if premultiplied {
			p = unpremultiply(p)
		}
		out[i] = p
	}
	return out
}

// DecodeBC3RXGBBlock decodes one 16-byte BC3_RXGB block to 16 texels whose
// R channel is the BC3 alpha ramp; the RGB block's R bits are ignored.
func DecodeBC3RXGBBlock(block []byte) [16]RGBA {
	rChannel := bc4Ramp(block[0], block[1])
	idx := bc4Indices(block[0:8])
	c0 := binary.LittleEndian.Uint16(block[8:10])
	c1 := binary.LittleEndian.Uint16(block[10:12])
	indices := binary.LittleEndian.Uint32(block[12:16])
	pal := bc2AlwaysFourColor(c0, c1)

	var out [16]RGBA
	for i := 0; i < 16; i++ {
		p := pal[(indices>>uint(i*2))&0x3]
		out[i] = RGBA{rChannel[idx[i]], p.G, p.B, 255}
	}
	return out
}

// EncodeBC3Block approximates a 16-byte BC3 block from 16 RGBA texels.
func EncodeBC3Block(px [16]RGBA, premultiplied bool) [16]byte {
	var alpha [16]uint8
	var rgb [16]RGBA
	for i, p := range px {
		if premultiplied {
			p = premultiply(p)
		}
		alpha[i] = p.A
		rgb[i] = RGBA{p.R, p.G, p.B, 255}
	}

	a0, a1 := alpha[0], alpha[0]
	for _, v := range alpha[1:] {
		if v < a0 {
			a0 = v
		}
		if v > a1 {
			a1 = v
		}
	}
	ramp := bc4Ramp(a1, a0)
	var alphaIdx [16]uint8
	for i, v := range alpha {
		best, bestDist := 0, absDiff(v, ramp[0])
		for j := 1; j < 8; j++ {
			if d := absDiff(v, ramp[j]); d < bestDist {
				best, bestDist = j, d
			}
		}
		alphaIdx[i] = uint8(best)
	}

	c0, c1 := endpointsByLuminance(rgb)
	pal := bc2AlwaysFourColor(c0, c1)
	var rgbIdx uint32
	for i, p := range rgb {
		best, bestDist := 0, colorDistSq(p, pal[0])
		for j := 1; j < 4; j++ {
			if d := colorDistSq(p, pal[j]); d < bestDist {
				best, bestDist = j, d
			}
		}
		rgbIdx |= uint32(best) << uint(i*2)
	}

	var block [16]byte
	block[0], block[1] = a1, a0
	idxBytes := packBC4Indices(alphaIdx)
	copy(block[2:8], idxBytes[:])
	binary.LittleEndian.PutUint16(block[8:10], c0)
	binary.LittleEndian.PutUint16(block[10:12], c1)
	binary.LittleEndian.PutUint32(block[12:16], rgbIdx)
	return block
}

// EncodeBC3RXGBBlock encodes 16 texels into a BC3_RXGB block: the R channel
// goes through the alpha ramp (mirroring DecodeBC3RXGBBlock), and the RGB
// block's R bits are forced to 0, per the RXGB convention.
func EncodeBC3RXGBBlock(px [16]RGBA) [16]byte {
	var rChannel [16]uint8
	var gb [16]RGBA
	for i, p := range px {
		rChannel[i] = p.R
		gb[i] = RGBA{0, p.G, p.B, 255}
	}

	r0, r1 := rChannel[0], rChannel[0]
	for _, v := range rChannel[1:] {
		if v < r0 {
			r0 = v
		}
		if v > r1 {
			r1 = v
		}
	}
	ramp := bc4Ramp(r1, r0)
	var rIdx [16]uint8
	for i, v := range rChannel {
		best, bestDist := 0, absDiff(v, ramp[0])
		for j := 1; j < 8; j++ {
			if d := absDiff(v, ramp[j]); d < bestDist {
				best, bestDist = j, d
			}
		}
		rIdx[i] = uint8(best)
	}

	c0, c1 := endpointsByLuminance(gb)
	pal := bc2AlwaysFourColor(c0, c1)
	var rgbIdx uint32
	for i, p := range gb {
		best, bestDist := 0, colorDistSq(p, pal[0])
		for j := 1; j < 4; j++ {
			if d := colorDistSq(p, pal[j]); d < bestDist {
				best, bestDist = j, d
			}
		}
		rgbIdx |= uint32(best) << uint(i*2)
	}

	var block [16]byte
	block[0], block[1] = r1, r0
	idxBytes := packBC4Indices(rIdx)
	copy(block[2:8], idxBytes[:])
	binary.LittleEndian.PutUint16(block[8:10], c0)
	binary.LittleEndian.PutUint16(block[10:12], c1)
	binary.LittleEndian.PutUint32(block[12:16], rgbIdx)
	return block
}
