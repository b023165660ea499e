/*
DESCRIPTION
  bc5.go decodes and encodes BC5 blocks: two BC4 blocks placed side by
  side, one per channel (R then G), 16 bytes total.

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

// DecodeBC5Block decodes one 16-byte BC5 block to 16 (R,G) texel pairs.
func DecodeBC5Block(block []byte, signed bool) [16][2]uint8 {
	r := DecodeBC4Block(block[0:8], signed)
	g := DecodeBC4Block(block[8:16], signed)

	var out [16][2]uint8
	for i := range out {
		out[i] = [2]uint8{r[i], g[i]}
	}
	return out
}

// EncodeBC5Block approximates a 16-byte BC5 block from 16 (R,G) pairs.
func EncodeBC5Block(px [16][2]uint8) [16]byte {
	var r, g [16]uint8
	for i, p := range px {
		r[i], g[i] = p[0], p[1]
	}
	rBlock := EncodeBC4Block(r)
	gBlock := EncodeBC4Block(g)

	var out [16]byte
	copy(out[0:8], rBlock[:])
	copy(out[8:16], gBlock[:])
	return out
}
