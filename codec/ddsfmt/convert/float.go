/*
DESCRIPTION
  float.go converts F32 values and the reduced-precision float encodings
  (FP16/s5e10, FP11/e5m6, FP10/e5m5, and the positive-only BC6H_UF16 variant
  of FP16) to Unorm8/Unorm16/F32.

  The FPn-to-Unorm kernels are fused on purpose: composing the naive
  "decode to f32, then round to unorm" path is correct on the happy path but
  diverges from the DirectX reference on denormals, Inf and NaN, so a single
  fused kernel is required to be bit-exact (see package doc and spec.md
  §4.1/§9).

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

import "math"

// FPToN8 converts an f32 in the [0,1] range (or outside it; it clamps) to
// Unorm8 with ties-to-away rounding. +Inf saturates to max; NaN and
// negatives go to 0. The clamp must happen before the float-to-integer
// conversion: Go leaves an out-of-range conversion implementation-defined,
// and HDR sources (BC6H, raw F32 surfaces) routinely exceed 1.0.
func FPToN8(x float32) uint8 {
	if !(x > 0) { // also catches NaN
		return 0
	}
	if x >= 1 {
		return 255
	}
	return uint8(x*255.0 + 0.5)
}

// FPToN16 is the Unorm16 analogue of FPToN8.
func FPToN16(x float32) uint16 {
	if !(x > 0) {
		return 0
	}
	if x >= 1 {
		return 65535
	}
	return uint16(x*65535.0 + 0.5)
}

// FP16ToN8 fuses FP16 decode with rounding to Unorm8.
func FP16ToN8(x uint16) uint8 {
	exp := x >> 10 & 0x1F
	mant := x & 0x3FF

	var val uint8
	if exp != 31 {
		// denormals round to 0 after this formula, no extra branch needed.
		v := (float32(mant) + 1024.0) * TwoPowI(int8(exp)-25)
		if v >= 1 {
			val = 255
		} else {
			val = uint8(v*255.0 + 0.5)
		}
	} else {
		if mant == 0 {
			val = 255 // Inf -> max
		} else {
			val = 0 // NaN -> 0
		}
	}
	if x&0x8000 != 0 {
		return 0 // negative -> 0
	}
	return val
}

// FP16ToN16 fuses FP16 decode with rounding to Unorm16.
func FP16ToN16(x uint16) uint16 {
	exp := x >> 10 & 0x1F
	mant := x & 0x3FF

	var val uint16
	if exp == 0 {
		const f = 65535.0 / 16777216.0
		val = uint16(float32(mant)*f + 0.5)
	} else if exp != 31 {
		v := (float32(mant) + 1024.0) * TwoPowI(int8(exp)-25)
		if v >= 1 {
			val = 65535
		} else {
			val = uint16(v*65535.0 + 0.5)
		}
	} else {
		if mant == 0 {
			val = 65535
		} else {
			val = 0
		}
	}
	if x&0x8000 != 0 {
		return 0
	}
	return val
}

// FP16ToF32 decodes an IEEE half-precision bit pattern.
func FP16ToF32(x uint16) float32 {
	exp := x >> 10 & 0x1F
	mant := x & 0x3FF

	var val float32
	if exp == 0 {
		val = float32(mant) * TwoPowI(-24)
	} else if exp != 31 {
		val = (float32(mant) + 1024.0) * TwoPowI(int8(exp)-25)
	} else {
		if mant == 0 {
			val = float32(math.Inf(1))
		} else {
			val = float32(math.NaN())
		}
	}
	if x&0x8000 != 0 {
		return -val
	}
	return val
}

// BC6HUF16ToN8 is FP16ToN8 specialized for BC6H_UF16 values, which are
// guaranteed to be non-negative and finite (no sign bit, no Inf/NaN).
func BC6HUF16ToN8(x uint16) uint8 {
	exp := x >> 10 & 0x1F
	mant := x & 0x3FF
	v := (float32(mant) + 1024.0) * TwoPowI(int8(exp)-25)
	if v >= 1 {
		return 255
	}
	return uint8(v*255.0 + 0.5)
}

// BC6HUF16ToN16 is the Unorm16 analogue of BC6HUF16ToN8.
func BC6HUF16ToN16(x uint16) uint16 {
	exp := x >> 10 & 0x1F
	mant := x & 0x3FF
	if exp == 0 {
		const f = 65535.0 / 16777216.0
		return uint16(float32(mant)*f + 0.5)
	}
	v := (float32(mant) + 1024.0) * TwoPowI(int8(exp)-25)
	if v >= 1 {
		return 65535
	}
	return uint16(v*65535.0 + 0.5)
}

// BC6HUF16ToF32 is the F32 analogue of BC6HUF16ToN8.
func BC6HUF16ToF32(x uint16) float32 {
	exp := x >> 10 & 0x1F
	mant := x & 0x3FF
	if exp == 0 {
		return float32(mant) * TwoPowI(-24)
	}
	return (float32(mant) + 1024.0) * TwoPowI(int8(exp)-25)
}

// FP11ToN8 fuses FP11 (e5m6, no sign bit) decode with rounding to Unorm8.
func FP11ToN8(x uint16) uint8 {
	exp := x >> 6 & 0x1F
	mant := x & 0x3F
	if exp != 31 {
		v := (float32(mant) + 64.0) * TwoPowI(int8(exp)-21)
		if v >= 1 {
			return 255
		}
		return uint8(v*255.0 + 0.5)
	}
	if mant == 0 {
		return 255
	}
	return 0
}

func FP11ToN16(x uint16) uint16 {
	exp := x >> 6 & 0x1F
	mant := x & 0x3F
	if exp == 0 {
		return (mant + 7) >> 4
	}
	if exp != 31 {
		v := (float32(mant) + 64.0) * TwoPowI(int8(exp)-21)
		if v >= 1 {
			return 65535
		}
		return uint16(v*65535.0 + 0.5)
	}
	if mant == 0 {
		return 65535
	}
	return 0
}

func FP11ToF32(x uint16) float32 {
	exp := x >> 6 & 0x1F
	mant := x & 0x3F
	if exp == 0 {
		return float32(mant) * TwoPowI(-20)
	}
	if exp != 31 {
		return (float32(mant) + 64.0) * TwoPowI(int8(exp)-21)
	}
	if mant == 0 {
		return float32(math.Inf(1))
	}
	return float32(math.NaN())
}

// FP10ToN8 fuses FP10 (e5m5, no sign bit) decode with rounding to Unorm8.
func FP10ToN8(x uint16) uint8 {
	exp := x >> 5 & 0x1F
	mant := x & 0x1F
	if exp != 31 {
		v := (float32(mant) + 32.0) * TwoPowI(int8(exp)-20)
		if v >= 1 {
			return 255
		}
		return uint8(v*255.0 + 0.5)
	}
	if mant == 0 {
		return 255
	}
	return 0
}

func FP10ToN16(x uint16) uint16 {
	exp := x >> 5 & 0x1F
	mant := x & 0x1F
	if exp == 0 {
		return (mant + 3) >> 3
	}
	if exp != 31 {
		v := (float32(mant) + 32.0) * TwoPowI(int8(exp)-20)
		if v >= 1 {
			return 65535
		}
		return uint16(v*65535.0 + 0.5)
	}
	if mant == 0 {
		return 65535
	}
	return 0
}

func FP10ToF32(x uint16) float32 {
	exp := x >> 5 & 0x1F
	mant := x & 0x1F
	if exp == 0 {
		return float32(mant) * TwoPowI(-19)
	}
	if exp != 31 {
		return (float32(mant) + 32.0) * TwoPowI(int8(exp)-20)
	}
	if mant == 0 {
		return float32(math.Inf(1))
	}
	return float32(math.NaN())
}
