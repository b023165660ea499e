/*
DESCRIPTION
  bc7.go decodes and encodes BC7 blocks. BC7 packs a unary mode tag (0-7)
  followed by a mode-dependent layout of partition selector, rotation and
  index-selection bits, per-subset color/alpha endpoints, p-bits and one or
  two index arrays. Decode dispatches on all 8 modes via the bc7Modes table
  below, so a block produced by any BC7 encoder — not just this package's
  own — decodes using its actual stored endpoints and indices rather than
  falling back to a fixed color. The multi-subset modes (0, 1, 2, 3 and 7)
  assign texels to subsets with partition.go's shapes, which are not the
  DirectX reference partition tables. Only the reserved encoding (no mode
  bit set in the first byte) falls back to a flat mid-gray, full-alpha
  block, preserving totality.

  Encode still emits a single fixed mode (6: one subset, 7.7.7.7 RGBA
  endpoints, one shared p-bit per endpoint, 4-bit indices) — a deliberate,
  documented scope decision distinct from decode's coverage; see
  DESIGN.md's Open Question #3.

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

// bc7Weights4 are the DirectX reference's 4-bit (16-entry) interpolation
// weights, out of 64; identical table to BC6H's.
var bc7Weights4 = bc6hWeights4

// bc7ModeInfo is one row of BC7's 8-mode table: which fields are present
// and how wide they are. subsets/partitionBits are 0 for the single-region
// modes (4,5,6); rotationBits/indexSelBit are only set for modes 4 and 5;
// indexBits2 is only set for modes 4 and 5's secondary index array.
type bc7ModeInfo struct {
	subsets       int
	partitionBits int
	rotationBits  int
	indexSelBit   bool
	colorBits     int
	alphaBits     int
	uniquePBit    bool
	sharedPBit    bool
	indexBits     int
	indexBits2    int
}

var bc7Modes = [8]bc7ModeInfo{
	{subsets: 3, partitionBits: 4, colorBits: 4, uniquePBit: true, indexBits: 3},
	{subsets: 2, partitionBits: 6, colorBits: 6, sharedPBit: true, indexBits: 3},
	{subsets: 3, partitionBits: 6, colorBits: 5, indexBits: 2},
	{subsets: 2, partitionBits: 6, colorBits: 7, uniquePBit: true, indexBits: 2},
	{subsets: 1, rotationBits: 2, indexSelBit: true, colorBits: 5, alphaBits: 6, indexBits: 2, indexBits2: 3},
	{subsets: 1, rotationBits: 2, colorBits: 7, alphaBits: 8, indexBits: 2, indexBits2: 2},
	{subsets: 1, colorBits: 7, alphaBits: 7, uniquePBit: true, indexBits: 4},
	{subsets: 2, partitionBits: 6, colorBits: 5, alphaBits: 5, uniquePBit: true, indexBits: 2},
}

// bc7ModeBit returns the number of 0-bits before the first 1-bit (the
// unary mode tag, read LSB-first): mode m is encoded as m zeros followed by
// a one, per the BC7 spec. A first byte with no bit set is the
// reserved/invalid encoding and yields 8.
func bc7ModeBit(br *blockBits) int {
	mode := 0
	for mode < 8 {
		if br.read(1) == 1 {
			break
		}
		mode++
	}
	return mode
}

func flatBC7() [16]RGBA {
	var flat [16]RGBA
	for i := range flat {
		flat[i] = RGBA{128, 128, 128, 255}
	}
	return flat
}

// DecodeBC7Block decodes one 16-byte BC7 block to 16 RGBA texels.
func DecodeBC7Block(block []byte) [16]RGBA {
	br := newBlockBits(block)
	mode := bc7ModeBit(br)
	if mode >= 8 {
		return flatBC7()
	}
	info := bc7Modes[mode]
	ns := info.subsets

	partition := 0
	if info.partitionBits > 0 {
		partition = int(br.read(info.partitionBits))
	}
	rotation := 0
	if info.rotationBits > 0 {
		rotation = int(br.read(2))
	}
	idxSel := 0
	if info.indexSelBit {
		idxSel = int(br.read(1))
	}

	// Color endpoints: all subsets' R, then all subsets' G, then all
	// subsets' B, each subset contributing its two endpoints in order.
	var colorEp [3][2][3]uint8
	for c := 0; c < 3; c++ {
		for s := 0; s < ns; s++ {
			for e := 0; e < 2; e++ {
				colorEp[s][e][c] = uint8(br.read(info.colorBits))
			}
		}
	}
	var alphaEp [3][2]uint8
	hasAlpha := info.alphaBits > 0
	if hasAlpha {
		for s := 0; s < ns; s++ {
			for e := 0; e < 2; e++ {
				alphaEp[s][e] = uint8(br.read(info.alphaBits))
			}
		}
	}

	var pbit [3][2]uint8
	pBitWidth := 0
	switch {
	case info.uniquePBit:
		pBitWidth = 1
		for s := 0; s < ns; s++ {
			for e := 0; e < 2; e++ {
				pbit[s][e] = uint8(br.read(1))
			}
		}
	case info.sharedPBit:
		pBitWidth = 1
		for s := 0; s < ns; s++ {
			p := uint8(br.read(1))
			pbit[s][0], pbit[s][1] = p, p
		}
	}

	expand := func(v, p uint8, bits int) uint8 {
		if pBitWidth == 0 {
			return unquantizeBits(v, bits)
		}
		return unquantizeBits(v<<1|p, bits+pBitWidth)
	}

	var endpoints [3][2]RGBA
	for s := 0; s < ns; s++ {
		for e := 0; e < 2; e++ {
			ep := RGBA{
				R: expand(colorEp[s][e][0], pbit[s][e], info.colorBits),
				G: expand(colorEp[s][e][1], pbit[s][e], info.colorBits),
				B: expand(colorEp[s][e][2], pbit[s][e], info.colorBits),
				A: 255,
			}
			if hasAlpha {
				ep.A = expand(alphaEp[s][e], pbit[s][e], info.alphaBits)
			}
			endpoints[s][e] = ep
		}
	}

	readIndices := func(bits int) [16]uint32 {
		var idx [16]uint32
		for t := 0; t < 16; t++ {
			s := partitionRegion(ns, partition, t)
			w := bits
			if t == partitionAnchor(ns, partition, s) {
				w--
			}
			idx[t] = br.read(w)
		}
		return idx
	}

	primary := readIndices(info.indexBits)
	var secondary [16]uint32
	if info.indexBits2 > 0 {
		secondary = readIndices(info.indexBits2)
	}

	colorIdx, colorBits := primary, info.indexBits
	alphaIdx, alphaBits := primary, info.indexBits
	if info.indexBits2 > 0 {
		if info.indexSelBit && idxSel == 1 {
			colorIdx, colorBits = secondary, info.indexBits2
		} else {
			alphaIdx, alphaBits = secondary, info.indexBits2
		}
	}

	var out [16]RGBA
	for t := 0; t < 16; t++ {
		s := partitionRegion(ns, partition, t)
		e0, e1 := endpoints[s][0], endpoints[s][1]
		cw := weightFor(colorBits, colorIdx[t])
		c := RGBA{
			R: blend8(e0.R, e1.R, cw),
			G: blend8(e0.G, e1.G, cw),
			B: blend8(e0.B, e1.B, cw),
			A: 255,
		}
		if hasAlpha {
			aw := weightFor(alphaBits, alphaIdx[t])
			c.A = blend8(e0.A, e1.A, aw)
		}
		switch rotation {
		case 1:
			c.A, c.R = c.R, c.A
		case 2:
			c.A, c.G = c.G, c.A
		case 3:
			c.A, c.B = c.B, c.A
		}
		out[t] = c
	}
	return out
}

// EncodeBC7Block encodes 16 RGBA texels into a BC7 mode-6 block.
func EncodeBC7Block(px [16]RGBA) [16]byte {
	lo, hi := px[0], px[0]
	for _, p := range px[1:] {
		if luma(p) < luma(lo) {
			lo = p
		}
		if luma(p) > luma(hi) {
			hi = p
		}
	}

	// Choose each endpoint's shared p-bit and 7-bit base so that
	// unquantizeBits(base<<1|p, 8) rounds as close as possible to the
	// target value.
	quant := func(c uint8) (base uint8, p uint8) {
		bestBase, bestP, bestDist := uint8(0), uint8(0), 256
		for cand := 0; cand < 256; cand += 2 {
			for pb := 0; pb < 2; pb++ {
				v := cand | pb
				if v > 255 {
					continue
				}
				approx := int(unquantizeBits(uint8(v), 8))
				d := approx - int(c)
				if d < 0 {
					d = -d
				}
				if d < bestDist {
					bestDist = d
					bestBase = uint8(v >> 1)
					bestP = uint8(pb)
				}
			}
		}
		return bestBase, bestP
	}

	r0b, p0 := quant(lo.R)
	g0b, _ := quant(lo.G)
	b0b, _ := quant(lo.B)
	a0b, _ := quant(lo.A)
	r1b, p1 := quant(hi.R)
	g1b, _ := quant(hi.G)
	b1b, _ := quant(hi.B)
	a1b, _ := quant(hi.A)

	e0 := RGBA{
		unquantizeBits(r0b<<1|p0, 8), unquantizeBits(g0b<<1|p0, 8),
		unquantizeBits(b0b<<1|p0, 8), unquantizeBits(a0b<<1|p0, 8),
	}
	e1 := RGBA{
		unquantizeBits(r1b<<1|p1, 8), unquantizeBits(g1b<<1|p1, 8),
		unquantizeBits(b1b<<1|p1, 8), unquantizeBits(a1b<<1|p1, 8),
	}

	bb := newBlockBitsWriter()
	for i := 0; i < 6; i++ {
		bb.write(0, 1)
	}
	bb.write(1, 1)

	bb.write(uint32(r0b), 7)
	bb.write(uint32(r1b), 7)
	bb.write(uint32(g0b), 7)
	bb.write(uint32(g1b), 7)
	bb.write(uint32(b0b), 7)
	bb.write(uint32(b1b), 7)
	bb.write(uint32(a0b), 7)
	bb.write(uint32(a1b), 7)
	bb.write(uint32(p0), 1)
	bb.write(uint32(p1), 1)

	for i, p := range px {
		best, bestDist := uint32(0), 1<<30
		for w := uint32(0); w < 16; w++ {
			wv := bc7Weights4[w]
			c := RGBA{
				R: uint8((uint32(e0.R)*(64-wv) + uint32(e1.R)*wv + 32) >> 6),
				G: uint8((uint32(e0.G)*(64-wv) + uint32(e1.G)*wv + 32) >> 6),
				B: uint8((uint32(e0.B)*(64-wv) + uint32(e1.B)*wv + 32) >> 6),
				A: uint8((uint32(e0.A)*(64-wv) + uint32(e1.A)*wv + 32) >> 6),
			}
			d := colorDistSq(c, p) + int(c.A-p.A)*int(c.A-p.A)
			if d < bestDist {
				best, bestDist = w, d
			}
		}
		if i == 0 {
			bb.write(best, 3)
		} else {
			bb.write(best, 4)
		}
	}

	var out [16]byte
	copy(out[:], bb.bytes())
	return out
}

func luma(p RGBA) int {
	return int(p.R)*299 + int(p.G)*587 + int(p.B)*114
}
