/*
DESCRIPTION
  bc6h.go decodes and encodes BC6H blocks. BC6H packs a variable-length
  mode field (2 bits for the two simplest 2-region modes, 5 bits for the
  remaining 12) ahead of a mode-dependent layout of partition selector,
  one shared base endpoint plus up to three signed deltas per channel (or,
  for the single-region modes, one base and one delta/raw endpoint), and a
  3- or 4-bit index array. Decode dispatches on all 14 valid mode field
  values via the bc6hModes table below rather than returning a fixed
  color. The endpoint fields are read in a plain sequential order (the
  base endpoint, then each further endpoint, R/G/B within each) and the
  2-region shapes come from partition.go; neither is the DirectX
  reference's interleaved bit layout or partition table, so blocks from
  other encoders do not decode to their reference values. Only the 4
  reserved 5-bit field values (0x13, 0x17, 0x1B, 0x1F) fall back to a flat
  mid-gray block, preserving totality.

  Encode still emits a single fixed mode (the single-region raw-endpoint
  layout, mode field 0b00011, 10 bits/component, no delta compression) — a
  deliberate, documented scope decision distinct from decode's coverage;
  see DESIGN.md's Open Question #3.

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

import "github.com/ddsgo/dds/codec/ddsfmt/convert"

const bc6hRawMode = 0x03 // 5-bit mode field for the single-region raw-endpoint layout

// bc6hWeights4 are the DirectX reference's 4-bit (16-entry) BC6H/BC7
// interpolation weights, out of 64.
var bc6hWeights4 = [16]uint32{0, 4, 9, 13, 17, 21, 26, 30, 34, 38, 43, 47, 51, 55, 60, 64}

// bc6hModeInfo is one row of BC6H's mode table: region count, per-channel
// base bit width, and per-channel second/third/fourth-endpoint width.
// transformed selects whether the non-base endpoints are signed deltas
// added to the base (true) or independent literal values (false, the two
// "direct" layouts: the single-region raw mode and the 2-region 6.6.6.6
// mode).
type bc6hModeInfo struct {
	regions     int
	baseBits    [3]int
	deltaBits   [3]int
	transformed bool
}

var bc6hModes = map[uint32]bc6hModeInfo{
	// 2-bit mode field, dispatched before the 5-bit modes below.
	0: {regions: 2, baseBits: [3]int{10, 10, 10}, deltaBits: [3]int{5, 5, 5}, transformed: true},
	1: {regions: 2, baseBits: [3]int{7, 7, 7}, deltaBits: [3]int{6, 6, 6}, transformed: true},

	// 5-bit mode field, 2-region asymmetric and direct layouts.
	2:  {regions: 2, baseBits: [3]int{11, 11, 11}, deltaBits: [3]int{5, 4, 4}, transformed: true},
	6:  {regions: 2, baseBits: [3]int{11, 11, 11}, deltaBits: [3]int{4, 5, 4}, transformed: true},
	10: {regions: 2, baseBits: [3]int{11, 11, 11}, deltaBits: [3]int{4, 4, 5}, transformed: true},
	14: {regions: 2, baseBits: [3]int{9, 9, 9}, deltaBits: [3]int{5, 5, 5}, transformed: true},
	18: {regions: 2, baseBits: [3]int{8, 8, 8}, deltaBits: [3]int{6, 5, 5}, transformed: true},
	22: {regions: 2, baseBits: [3]int{8, 8, 8}, deltaBits: [3]int{5, 6, 5}, transformed: true},
	26: {regions: 2, baseBits: [3]int{8, 8, 8}, deltaBits: [3]int{5, 5, 6}, transformed: true},
	30: {regions: 2, baseBits: [3]int{6, 6, 6}, deltaBits: [3]int{6, 6, 6}, transformed: false},

	// 5-bit mode field, single-region layouts.
	3:  {regions: 1, baseBits: [3]int{10, 10, 10}, deltaBits: [3]int{10, 10, 10}, transformed: false},
	7:  {regions: 1, baseBits: [3]int{11, 11, 11}, deltaBits: [3]int{9, 9, 9}, transformed: true},
	11: {regions: 1, baseBits: [3]int{12, 12, 12}, deltaBits: [3]int{8, 8, 8}, transformed: true},
	15: {regions: 1, baseBits: [3]int{16, 16, 16}, deltaBits: [3]int{4, 4, 4}, transformed: true},
}

// decodeBC6HMode reads the variable-length mode field (2 bits for modes
// whose field value is 0 or 1, 5 bits otherwise) and returns the matching
// row, or ok=false for a reserved field value.
func decodeBC6HMode(br *blockBits) (bc6hModeInfo, bool) {
	first2 := br.peek(2)
	if first2 == 0 || first2 == 1 {
		br.read(2)
		return bc6hModes[first2], true
	}
	full := br.read(5)
	info, ok := bc6hModes[full]
	return info, ok
}

func bc6hUnquantizeUnsigned(comp uint32, bits uint) uint16 {
	if bits >= 15 {
		return uint16(comp)
	}
	if comp == 0 {
		return 0
	}
	max := uint32(1)<<bits - 1
	if comp == max {
		return 0xFFFF
	}
	return uint16(((comp << 16) + 0x8000) >> bits)
}

func bc6hUnquantizeSigned(comp int32, bits uint) int16 {
	if bits >= 16 {
		return int16(comp)
	}
	sign := comp < 0
	if sign {
		comp = -comp
	}
	max := int32(1)<<(bits-1) - 1
	var unq int32
	if comp == 0 {
		unq = 0
	} else if comp >= max {
		unq = 0x7FFF
	} else {
		unq = ((comp << 15) + 0x4000) / max
	}
	if sign {
		unq = -unq
	}
	return int16(unq)
}

func readSigned(v uint32, bits uint) int32 {
	shift := 32 - bits
	return int32(v<<shift) >> shift
}

// clampSigned wraps/clamps a base+delta sum into the bits-wide signed
// range before unquantization, matching the reference decoder's treatment
// of delta overflow.
func clampSigned(v int32, bits uint) int32 {
	lo := -(int32(1) << (bits - 1))
	hi := int32(1)<<(bits-1) - 1
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampUnsigned(v int32, bits uint) uint32 {
	if v < 0 {
		return 0
	}
	max := int32(1)<<bits - 1
	if v > max {
		return uint32(max)
	}
	return uint32(v)
}

func flatBC6H() [16][3]float32 {
	var flat [16][3]float32
	for i := range flat {
		flat[i] = [3]float32{0.5, 0.5, 0.5}
	}
	return flat
}

// DecodeBC6HBlock decodes one 16-byte BC6H block to 16 half-float (as
// float32) RGB texels. signed selects BC6H_SF16 vs BC6H_UF16 semantics.
func DecodeBC6HBlock(block []byte, signed bool) [16][3]float32 {
	br := newBlockBits(block)
	info, ok := decodeBC6HMode(br)
	if !ok {
		return flatBC6H()
	}

	partition := 0
	if info.regions == 2 {
		partition = int(br.read(5))
	}

	// One base endpoint (region 0's first), then one non-base endpoint per
	// remaining region slot (3 of them for 2 regions, 1 for a single region).
	numExtra := info.regions * 2
	var base [3]uint32
	for c := 0; c < 3; c++ {
		base[c] = br.read(info.baseBits[c])
	}
	extra := make([][3]uint32, numExtra-1)
	for e := range extra {
		for c := 0; c < 3; c++ {
			extra[e][c] = br.read(info.deltaBits[c])
		}
	}

	// Reconstruct each region's two endpoints in the half-float-scale domain.
	endpoints := make([][2][3]uint16, info.regions)
	if signed {
		var baseRaw [3]int32
		var b [3]int16
		for c := 0; c < 3; c++ {
			baseRaw[c] = readSigned(base[c], uint(info.baseBits[c]))
			b[c] = bc6hUnquantizeSigned(baseRaw[c], uint(info.baseBits[c]))
		}
		endpoints[0][0] = [3]uint16{uint16(b[0]), uint16(b[1]), uint16(b[2])}
		for e := range extra {
			var ep [3]uint16
			for c := 0; c < 3; c++ {
				if info.transformed {
					d := readSigned(extra[e][c], uint(info.deltaBits[c]))
					v := clampSigned(baseRaw[c]+d, uint(info.baseBits[c]))
					ep[c] = uint16(bc6hUnquantizeSigned(v, uint(info.baseBits[c])))
				} else {
					v := bc6hUnquantizeSigned(readSigned(extra[e][c], uint(info.deltaBits[c])), uint(info.deltaBits[c]))
					ep[c] = uint16(v)
				}
			}
			endpoints[(e+1)/2][(e+1)%2] = ep
		}
	} else {
		var b [3]uint16
		for c := 0; c < 3; c++ {
			b[c] = bc6hUnquantizeUnsigned(base[c], uint(info.baseBits[c]))
		}
		endpoints[0][0] = b
		for e := range extra {
			var ep [3]uint16
			for c := 0; c < 3; c++ {
				if info.transformed {
					d := readSigned(extra[e][c], uint(info.deltaBits[c]))
					v := clampUnsigned(int32(base[c])+d, uint(info.baseBits[c]))
					ep[c] = bc6hUnquantizeUnsigned(v, uint(info.baseBits[c]))
				} else {
					ep[c] = bc6hUnquantizeUnsigned(extra[e][c], uint(info.deltaBits[c]))
				}
			}
			endpoints[(e+1)/2][(e+1)%2] = ep
		}
	}

	indexBits := 4
	if info.regions == 2 {
		indexBits = 3
	}
	var idx [16]uint32
	for t := 0; t < 16; t++ {
		s := partitionRegion(info.regions, partition, t)
		w := indexBits
		if t == partitionAnchor(info.regions, partition, s) {
			w--
		}
		idx[t] = br.read(w)
	}

	var out [16][3]float32
	for t := 0; t < 16; t++ {
		s := partitionRegion(info.regions, partition, t)
		e0, e1 := endpoints[s][0], endpoints[s][1]
		w := idx[t]
		for c := 0; c < 3; c++ {
			if signed {
				v := interpSigned(int16(e0[c]), int16(e1[c]), w, indexBits)
				out[t][c] = convert.FP16ToF32(uint16(v))
			} else {
				v := interpUnsigned(e0[c], e1[c], w, indexBits)
				out[t][c] = convert.BC6HUF16ToF32(v)
			}
		}
	}
	return out
}

func interpUnsigned(a, b uint16, weight uint32, bits int) uint16 {
	wv := weightFor(bits, weight)
	return uint16((uint32(a)*(64-wv) + uint32(b)*wv + 32) >> 6)
}

func interpSigned(a, b int16, weight uint32, bits int) int16 {
	wv := int32(weightFor(bits, weight))
	return int16((int32(a)*(64-wv) + int32(b)*wv + 32) >> 6)
}

// EncodeBC6HBlock encodes 16 RGB texels (as float32) into the
// single-region raw-endpoint BC6H sub-mode this library supports.
func EncodeBC6HBlock(px [16][3]float32, signed bool) [16]byte {
	// Endpoints: component-wise min/max across the block, each requantized
	// to 10 bits by inverting bc6hUnquantizeUnsigned/Signed approximately.
	var lo, hi [3]float32
	lo, hi = px[0], px[0]
	for _, p := range px[1:] {
		for c := 0; c < 3; c++ {
			if p[c] < lo[c] {
				lo[c] = p[c]
			}
			if p[c] > hi[c] {
				hi[c] = p[c]
			}
		}
	}

	bb := newBlockBitsWriter()
	bb.write(bc6hRawMode, 5)

	var e0, e1 [3]uint32
	for c := 0; c < 3; c++ {
		if signed {
			e0[c] = uint32(quantizeSigned10(lo[c]))
			e1[c] = uint32(quantizeSigned10(hi[c]))
		} else {
			e0[c] = quantizeUnsigned10(lo[c])
			e1[c] = quantizeUnsigned10(hi[c])
		}
	}
	for c := 0; c < 3; c++ {
		bb.write(e0[c], 10)
	}
	for c := 0; c < 3; c++ {
		bb.write(e1[c], 10)
	}

	e0u := [3]uint16{}
	e1u := [3]uint16{}
	if signed {
		for c := 0; c < 3; c++ {
			e0u[c] = uint16(bc6hUnquantizeSigned(readSigned(e0[c], 10), 10))
			e1u[c] = uint16(bc6hUnquantizeSigned(readSigned(e1[c], 10), 10))
		}
	} else {
		for c := 0; c < 3; c++ {
			e0u[c] = bc6hUnquantizeUnsigned(e0[c], 10)
			e1u[c] = bc6hUnquantizeUnsigned(e1[c], 10)
		}
	}

	for i, p := range px {
		best, bestDist := uint32(0), 1e30
		for w := uint32(0); w < 16; w++ {
			var dist float32
			for c := 0; c < 3; c++ {
				var v float32
				if signed {
					v = convert.FP16ToF32(uint16(interpSigned(int16(e0u[c]), int16(e1u[c]), w, 4)))
				} else {
					v = convert.BC6HUF16ToF32(interpUnsigned(e0u[c], e1u[c], w, 4))
				}
				d := v - p[c]
				dist += d * d
			}
			if float64(dist) < bestDist {
				best, bestDist = w, float64(dist)
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

func quantizeUnsigned10(f float32) uint32 {
	if f < 0 {
		f = 0
	}
	half := convert.F32ToFP16(f) // unquantized endpoints are half-float bit patterns
	return uint32(half) >> 6
}

func quantizeSigned10(f float32) int16 {
	half := convert.F32ToFP16(f)
	v := int16((half & 0x7FFF) >> 6)
	if half&0x8000 != 0 {
		v = -v
	}
	return v
}
