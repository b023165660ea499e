/*
DESCRIPTION
  size.go exposes the encoded byte size of one surface level, the piece of
  information container/dds's DataLayout needs to compute mip/array/cube
  map offsets without reaching into registry.go's or blockcodec.go's
  internals.

AUTHOR
  Mara Lindqvist <mara@ddsgo.dev>

LICENSE
  Copyright (C) 2026 the DDS-Go Authors. All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the DDS-Go Authors.
*/

package ddsfmt

// EncodedSize returns the number of encoded bytes one surface level of f
// occupies at the given pixel dimensions (depth counted as a multiplier of
// 2D slices, matching DDS volume textures). ok is false if f is not a
// known Format.
func EncodedSize(f Format, width, height, depth uint32) (size uint64, ok bool) {
	if f.blockCompressed() {
		blocksWide := (uint64(width) + 3) / 4
		blocksHigh := (uint64(height) + 3) / 4
		return blocksWide * blocksHigh * uint64(f.blockBytes()) * uint64(depth), true
	}

	layout, known := formatLayouts[f]
	if !known {
		return 0, false
	}
	// Unit rounding happens per row, not per surface: an odd-width YUY2 row
	// pads its final pair, so row bytes are ceil(width/unit)*unitBytes.
	rowBytes := uint64(layout.encodedBytes(int(width)))
	return rowBytes * uint64(height) * uint64(depth), true
}
