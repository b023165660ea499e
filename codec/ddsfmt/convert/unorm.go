/*
DESCRIPTION
  unorm.go converts Unorm-n encoded scalars (n in {1,2,4,5,6,8,10,16}) to
  Unorm8, Unorm16 and F32. The multiply-add-shift constants below reproduce
  round(x * max_out / max_in) exactly for every possible input and are not
  meant to be re-derived by hand; see
  https://rundevelopment.github.io/projects/multiply-add-constants-finder
  for the tool that found them.

AUTHOR
  Mara Lindqvist <mara@ddsgo.dev>

LICENSE
  Copyright (C) 2026 the DDS-Go Authors. All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the DDS-Go Authors.
*/

// Package convert implements the bit-exact numeric conversions between the
// many scalar encodings used by DDS pixel formats (fixed-width normalized
// integers, reduced-precision floats, shared-exponent and YUV triples) and
// the library's three decoded precisions (U8, U16, F32).
//
// Every function here is total: it is defined for every bit pattern of its
// input width, allocates nothing, and touches no global state.
package convert

// Unorm1.

func N1ToN8(x uint8) uint8 {
	if x == 0 {
		return 0
	}
	return 0xFF
}

func N1ToN16(x uint8) uint16 {
	if x == 0 {
		return 0
	}
	return 0xFFFF
}

func N1ToF32(x uint8) float32 {
	if x == 0 {
		return 0
	}
	return 1
}

// Unorm2.

func N2ToN8(x uint8) uint8 {
	return x * 85
}

func N2ToN16(x uint8) uint16 {
	return uint16(x) * 21845
}

func N2ToF32(x uint8) float32 {
	const f = 1.0 / 3.0
	return float32(x) * f
}

// Unorm4.

func N4ToN8(x uint8) uint8 {
	return x * 17
}

func N4ToN16(x uint8) uint16 {
	return uint16(x) * 4369
}

func N4ToF32(x uint8) float32 {
	const f = 1.0 / 15.0
	return float32(x) * f
}

// N4ToF32Exact is the bit-exact x/15 factorization used for the round-trip
// property: k0=3 makes the product exact in IEEE-754 single precision for
// every 4-bit input.
func N4ToF32Exact(x uint8) float32 {
	const k0 = 3.0
	const k1 = 1.0 / (15.0 * k0)
	return (float32(x) * k0) * k1
}

// Unorm5.

func N5ToN8(x uint8) uint8 {
	return uint8((uint16(x)*2108 + 92) >> 8)
}

func N5ToN16(x uint8) uint16 {
	return uint16((uint32(x) * 138547200) >> 16)
}

func N5ToF32(x uint8) float32 {
	const f = 1.0 / 31.0
	return float32(x) * f
}

func N5ToF32Exact(x uint8) float32 {
	const k0 = 3.0
	const k1 = 1.0 / (31.0 * k0)
	return (float32(x) * k0) * k1
}

// Unorm6.

func N6ToN8(x uint8) uint8 {
	return uint8((uint16(x)*1036 + 132) >> 8)
}

func N6ToN16(x uint8) uint16 {
	return uint16((uint32(x)*68173056 + 30976) >> 16)
}

func N6ToF32(x uint8) float32 {
	const f = 1.0 / 63.0
	return float32(x) * f
}

func N6ToF32Exact(x uint8) float32 {
	const k0 = 5.0
	const k1 = 1.0 / (63.0 * k0)
	return (float32(x) * k0) * k1
}

// Unorm8.

func N8ToN16(x uint8) uint16 {
	return uint16(x) * 257
}

func N8ToF32(x uint8) float32 {
	const f = 1.0 / 255.0
	return float32(x) * f
}

func N8ToF32Exact(x uint8) float32 {
	const k0 = 3.0
	const k1 = 1.0 / (255.0 * k0)
	return (float32(x) * k0) * k1
}

// Unorm10.

func N10ToN8(x uint16) uint8 {
	return uint8((uint32(x)*16336 + 32656) >> 16)
}

func N10ToN16(x uint16) uint16 {
	return uint16((uint32(x)*4198340 + 32660) >> 16)
}

func N10ToF32(x uint16) float32 {
	const f = 1.0 / 1023.0
	return float32(x) * f
}

func N10ToF32Exact(x uint16) float32 {
	const k0 = 85.0
	const k1 = 1.0 / (1023.0 * k0)
	return (float32(x) * k0) * k1
}

// Unorm16.

func N16ToN8(x uint16) uint8 {
	return uint8((uint32(x)*255 + 32895) >> 16)
}

func N16ToF32(x uint16) float32 {
	const f = 1.0 / 65535.0
	return float32(x) * f
}

// N16ToF32Exact has no single-constant factorization that is exact for every
// 16-bit input, so it uses the two-term additive correction
// x*C0 + x*C1 with C0 = 1/65536 and C1 = (1+65536)/65536/65536/65536.
func N16ToF32Exact(x uint16) float32 {
	const c0 = 1.0 / 65536.0
	const c1 = (1.0 + 65536.0) / 65536.0 / 65536.0 / 65536.0
	tmp := float32(x)
	return (tmp * c0) + (tmp * c1)
}
