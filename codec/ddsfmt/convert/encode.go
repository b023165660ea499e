/*
DESCRIPTION
  encode.go provides the encode-direction counterparts of float.go,
  shared_exp.go and yuv.go: F32 -> reduced-precision-float and F32 -> YUV,
  used by the encoders in codec/ddsfmt's registry. Unlike the decode
  kernels, these are not required to be bit-exact (spec.md only demands
  bit-exactness for decode). The reduced-float encoders truncate the
  mantissa (round toward zero) and flush underflow to zero rather than
  reproducing denormal encodings; the shared-exponent and YUV encoders
  round to nearest.

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

// f32ToReducedExp computes the reduced-float biased exponent field shared
// by FP16/FP11/FP10/BC6H_UF16: all four use bias 15 regardless of mantissa
// width, since the mantissa's implicit leading 1 is folded into the
// "mant+2^M" form the decode kernels use instead of being split out here.
func f32ToReducedExp(bits uint32) int32 {
	return int32((bits>>23)&0xFF) - 112 // -127 (IEEE bias) + 15 (reduced-float bias)
}

// F32ToFP16 converts x to an IEEE half-precision bit pattern, rounding
// toward zero on the mantissa and flushing underflow to zero.
func F32ToFP16(x float32) uint16 {
	bits := math.Float32bits(x)
	sign := uint16((bits >> 16) & 0x8000)
	if math.IsNaN(float64(x)) {
		return sign | 0x7E00
	}
	if math.IsInf(float64(x), 0) {
		return sign | 0x7C00
	}
	exp := f32ToReducedExp(bits)
	mant := bits & 0x7FFFFF
	switch {
	case exp <= 0:
		return sign
	case exp >= 31:
		return sign | 0x7C00
	default:
		return sign | uint16(exp)<<10 | uint16(mant>>13)
	}
}

// F32ToFP11 converts x to an e5m6 (FP11, no sign bit) bit pattern;
// negative values clamp to 0.
func F32ToFP11(x float32) uint16 {
	return f32ToUnsignedFP(x, 6)
}

// F32ToFP10 converts x to an e5m5 (FP10, no sign bit) bit pattern;
// negative values clamp to 0.
func F32ToFP10(x float32) uint16 {
	return f32ToUnsignedFP(x, 5)
}

// f32ToUnsignedFP converts a non-negative float into a no-sign-bit reduced
// float with a 5-bit exponent and mantBits mantissa bits (FP11/FP10).
func f32ToUnsignedFP(x float32, mantBits uint) uint16 {
	if x < 0 || math.IsNaN(float64(x)) {
		return 0
	}
	if math.IsInf(float64(x), 1) {
		return 0x1F << mantBits
	}
	bits := math.Float32bits(x)
	exp := f32ToReducedExp(bits)
	mant := bits & 0x7FFFFF
	switch {
	case exp <= 0:
		return 0
	case exp >= 31:
		return 0x1F << mantBits
	default:
		return uint16(exp)<<mantBits | uint16(mant>>(23-mantBits))
	}
}

// F32ToXR10 converts x to the 10-bit 2.8 fixed-point XR_BIAS
// representation, inverting XR10ToF32.
func F32ToXR10(x float32) uint16 {
	v := int32(x*510.0+0.5) + 0x180
	if v < 0 {
		v = 0
	} else if v > 1023 {
		v = 1023
	}
	return uint16(v)
}

// RGBToRGB9E5 encodes three non-negative channel values into the shared
// 5-bit-exponent, 9-bit-mantissa representation used by
// R9G9B9E5_SHAREDEXP, inverting RGB9E5ChannelToF32.
func RGBToRGB9E5(r, g, b float32) (mr, mg, mb uint16, exp uint8) {
	clamp := func(v float32) float32 {
		if v < 0 {
			return 0
		}
		if v > 65408.0 {
			return 65408.0
		}
		return v
	}
	r, g, b = clamp(r), clamp(g), clamp(b)
	maxC := r
	if g > maxC {
		maxC = g
	}
	if b > maxC {
		maxC = b
	}

	e := int8(0)
	if maxC > 0 {
		for maxC*TwoPowI(-(e-24)) > 511.5 && e < 31 {
			e++
		}
		for maxC*TwoPowI(-(e-24)) < 256 && e > 0 {
			e--
		}
	}
	scale := TwoPowI(-(e - 24))
	round := func(v float32) uint16 {
		m := v*scale + 0.5
		if m < 0 {
			m = 0
		} else if m > 511 {
			m = 511
		}
		return uint16(m)
	}
	return round(r), round(g), round(b), uint8(e)
}

// RGBToYUV8 encodes linear [0,1] RGB into 8-bit limited-range BT.601 YUV,
// the forward direction of YUV8ToRGBF32.
func RGBToYUV8(r, g, b float32) (y, u, v uint8) {
	clamp := func(f float32) uint8 {
		if f < 0 {
			f = 0
		} else if f > 255 {
			f = 255
		}
		return uint8(f + 0.5)
	}
	yf := 16 + 65.481*r + 128.553*g + 24.966*b
	uf := 128 - 37.797*r - 74.203*g + 112.0*b
	vf := 128 + 112.0*r - 93.786*g - 18.214*b
	return clamp(yf), clamp(uf), clamp(vf)
}

// RGBToYUV16 is the 16-bit-sample analogue of RGBToYUV8: the same BT.601
// limited-range matrix, with the black level at 4096 and the chroma
// neutral point at 32768.
func RGBToYUV16(r, g, b float32) (y, u, v uint16) {
	clamp := func(f float32) uint16 {
		if f < 0 {
			f = 0
		} else if f > 65535 {
			f = 65535
		}
		return uint16(f + 0.5)
	}
	scale := float32(65535.0 / 255.0)
	yf := 4096 + (65.481*r+128.553*g+24.966*b)*scale
	uf := 32768 + (-37.797*r-74.203*g+112.0*b)*scale
	vf := 32768 + (112.0*r-93.786*g-18.214*b)*scale
	return clamp(yf), clamp(uf), clamp(vf)
}
