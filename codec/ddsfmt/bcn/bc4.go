/*
DESCRIPTION
  bc4.go decodes and encodes BC4 blocks: two 8-bit endpoints and a 48-bit,
  3-bit-per-texel index into an 8-entry ramp. BC5 (bc5.go) is two BC4
  blocks side by side, one per channel, so the per-channel ramp logic lives
  here and is reused there.

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

import (
	"github.com/ddsgo/dds/codec/ddsfmt/convert"
)

// bc4Ramp computes the 8-entry palette for one BC4 channel's two endpoints.
func bc4Ramp(a0, a1 uint8) [8]uint8 {
	var ramp [8]uint8
	ramp[0], ramp[1] = a0, a1
	if a0 > a1 {
		for i := 1; i <= 6; i++ {
			ramp[1+i] = uint8((uint32(7-i)*uint32(a0) + uint32(i)*uint32(a1) + 3) / 7)
		}
	} else {
		for i := 1; i <= 4; i++ {
			ramp[1+i] = uint8((uint32(5-i)*uint32(a0) + uint32(i)*uint32(a1) + 2) / 5)
		}
		ramp[6] = 0
		ramp[7] = 255
	}
	return ramp
}

// bc4Indices unpacks the 16 3-bit indices from a BC4 block's 48-bit index
// table (bytes 2..8), LSB-first.
func bc4Indices(block []byte) [16]uint8 {
	bits := uint64(0)
	for i := 0; i < 6; i++ {
		bits |= uint64(block[2+i]) << uint(8*i)
	}
	var idx [16]uint8
	for i := 0; i < 16; i++ {
		idx[i] = uint8((bits >> uint(i*3)) & 0x7)
	}
	return idx
}

func packBC4Indices(idx [16]uint8) [6]byte {
	var bits uint64
	for i, v := range idx {
		bits |= uint64(v&0x7) << uint(i*3)
	}
	var out [6]byte
	for i := range out {
		out[i] = byte(bits >> uint(8*i))
	}
	return out
}

// DecodeBC4Block decodes one 8-byte BC4 block to 16 single-channel Unorm8
// values. When signed is true the endpoints/ramp are Snorm8-normalized
// (unsigned-only, per the library's Snorm convention) before interpolation.
func DecodeBC4Block(block []byte, signed bool) [16]uint8 {
	a0, a1 := block[0], block[1]
	if signed {
		a0, a1 = convert.NormS8(a0), convert.NormS8(a1)
	}
	ramp := bc4Ramp(a0, a1)
	idx := bc4Indices(block)

	var out [16]uint8
	for i, v := range idx {
		out[i] = ramp[v]
	}
	return out
}

// EncodeBC4Block approximates an 8-byte BC4 block from 16 channel values,
// using a least-squares 1D moment fit (fitEndpoints1D) for the endpoints and
// nearest-ramp-entry indices.
func EncodeBC4Block(px [16]uint8) [8]byte {
	a0, a1 := fitEndpoints1D(px)
	ramp := bc4Ramp(a1, a0) // a1 >= a0 (fitEndpoints1D's hi >= lo) selects 8-value mode
	var idx [16]uint8
	for i, v := range px {
		best, bestDist := 0, absDiff(v, ramp[0])
		for j := 1; j < 8; j++ {
			d := absDiff(v, ramp[j])
			if d < bestDist {
				best, bestDist = j, d
			}
		}
		idx[i] = uint8(best)
	}

	var block [8]byte
	block[0], block[1] = a1, a0
	packed := packBC4Indices(idx)
	copy(block[2:], packed[:])
	return block
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
