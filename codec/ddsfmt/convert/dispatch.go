/*
DESCRIPTION
  dispatch.go provides width-indexed entry points into the Unorm-n kernels
  for callers (the packed-uncompressed processors) that only know n at
  runtime, having read it out of a format descriptor table.

AUTHOR
  Mara Lindqvist <mara@ddsgo.dev>

LICENSE
  Copyright (C) 2026 the DDS-Go Authors. All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the DDS-Go Authors.
*/

package convert

// UnormToN8 converts a width-bit Unorm value (width in {1,2,4,5,6,8,10,16})
// to Unorm8.
func UnormToN8(width uint8, x uint32) uint8 {
	switch width {
	case 1:
		return N1ToN8(uint8(x))
	case 2:
		return N2ToN8(uint8(x))
	case 4:
		return N4ToN8(uint8(x))
	case 5:
		return N5ToN8(uint8(x))
	case 6:
		return N6ToN8(uint8(x))
	case 8:
		return uint8(x)
	case 10:
		return N10ToN8(uint16(x))
	case 16:
		return N16ToN8(uint16(x))
	default:
		panic("convert: unsupported Unorm width")
	}
}

// UnormToN16 is the Unorm16 analogue of UnormToN8.
func UnormToN16(width uint8, x uint32) uint16 {
	switch width {
	case 1:
		return N1ToN16(uint8(x))
	case 2:
		return N2ToN16(uint8(x))
	case 4:
		return N4ToN16(uint8(x))
	case 5:
		return N5ToN16(uint8(x))
	case 6:
		return N6ToN16(uint8(x))
	case 8:
		return N8ToN16(uint8(x))
	case 10:
		return N10ToN16(uint16(x))
	case 16:
		return uint16(x)
	default:
		panic("convert: unsupported Unorm width")
	}
}

// UnormToF32Exact is the bit-exact-round-trip Unorm-to-F32 analogue of
// UnormToN8.
func UnormToF32Exact(width uint8, x uint32) float32 {
	switch width {
	case 1:
		return N1ToF32(uint8(x))
	case 2:
		return N2ToF32(uint8(x))
	case 4:
		return N4ToF32Exact(uint8(x))
	case 5:
		return N5ToF32Exact(uint8(x))
	case 6:
		return N6ToF32Exact(uint8(x))
	case 8:
		return N8ToF32Exact(uint8(x))
	case 10:
		return N10ToF32Exact(uint16(x))
	case 16:
		return N16ToF32Exact(uint16(x))
	default:
		panic("convert: unsupported Unorm width")
	}
}
