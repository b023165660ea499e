/*
DESCRIPTION
  snorm.go converts Snorm8/Snorm16 encoded scalars to unsigned Unorm8/Unorm16/
  F32. Snorm output is unsigned-only in this library: the signed range
  [-1, 1] is remapped linearly onto [0, 1], so -1 maps to 0, signed zero to
  the midpoint and the maximum positive value to 1.

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

// NormS8 brings a Snorm8 bit pattern into the unsigned range [0, 254].
//
// Both -128 and -127 (the two bit patterns representing -1.0 and the
// one-past-it value) map to 0 here; see
// https://learn.microsoft.com/en-us/windows/win32/api/dxgiformat/ne-dxgiformat-dxgi_format#format-modifiers
func NormS8(x uint8) uint8 {
	y := x + 128 // wrapping add
	if y == 0 {
		return 0
	}
	return y - 1
}

func S8ToN8(x uint8) uint8 {
	x = NormS8(x)
	return uint8((uint16(x)*258 + 2) >> 8)
}

func S8ToN16(x uint8) uint16 {
	x = NormS8(x)
	return uint16((uint32(x)*16909064 + 32520) >> 16)
}

// S8ToUF32 is the unsigned f32 conversion: NormS8 has already remapped the
// signed input onto [0, 254], so the result lies in [0, 1].
func S8ToUF32(x uint8) float32 {
	x = NormS8(x)
	const f = 1.0 / 254.0
	return float32(x) * f
}

func S8ToUF32Exact(x uint8) float32 {
	x = NormS8(x)
	const k0 = 31.0
	const k1 = 1.0 / (254.0 * k0)
	return (float32(x) * k0) * k1
}

// NormS16 brings a Snorm16 bit pattern into the unsigned range [0, 65534].
func NormS16(x uint16) uint16 {
	y := x + 32768
	if y == 0 {
		return 0
	}
	return y - 1
}

func S16ToN8(x uint16) uint8 {
	x = NormS16(x)
	return uint8((uint32(x)*65282 + 8388354) >> 24)
}

func S16ToN16(x uint16) uint16 {
	x = NormS16(x)
	return uint16((uint32(x)*65538 + 2) >> 16)
}

func S16ToUF32(x uint16) float32 {
	x = NormS16(x)
	const f = 1.0 / 65534.0
	return float32(x) * f
}

func S16ToUF32Exact(x uint16) float32 {
	x = NormS16(x)
	const k0 = 73.0
	const k1 = 1.0 / (65534.0 * k0)
	return (float32(x) * k0) * k1
}
