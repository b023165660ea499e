/*
DESCRIPTION
  yuv.go converts limited-range BT.601 YUV triples (8/10/16-bit) to RGB.
  The constants are the standard BT.601 decode matrix:

    R = 1.164383*(Y-16)                       + 1.596027*(V-128)
    G = 1.164383*(Y-16) - 0.391762*(U-128) - 0.812968*(V-128)
    B = 1.164383*(Y-16) + 2.017232*(U-128)

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

const (
	yScale = 1.164383
	vToR   = 1.596027
	uToG   = -0.391762
	vToG   = -0.812968
	uToB   = 2.017232
)

func clampF32(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// YUV8ToRGBF32 decodes one 8-bit limited-range YUV sample to linear [0,1] RGB.
func YUV8ToRGBF32(y, u, v uint8) (r, g, b float32) {
	yy := (float32(y) - 16.0) * yScale
	uu := float32(u) - 128.0
	vv := float32(v) - 128.0

	r = clampF32((yy+vToR*vv)/255.0, 0, 1)
	g = clampF32((yy+uToG*uu+vToG*vv)/255.0, 0, 1)
	b = clampF32((yy+uToB*uu)/255.0, 0, 1)
	return
}

// YUV10ToRGBF32 is the 10-bit-sample analogue of YUV8ToRGBF32.
func YUV10ToRGBF32(y, u, v uint16) (r, g, b float32) {
	yy := (float32(y) - 64.0) * yScale
	uu := float32(u) - 512.0
	vv := float32(v) - 512.0

	r = clampF32((yy+vToR*vv)/1023.0, 0, 1)
	g = clampF32((yy+uToG*uu+vToG*vv)/1023.0, 0, 1)
	b = clampF32((yy+uToB*uu)/1023.0, 0, 1)
	return
}

// YUV16ToRGBF32 is the 16-bit-sample analogue of YUV8ToRGBF32.
func YUV16ToRGBF32(y, u, v uint16) (r, g, b float32) {
	yy := (float32(y) - 4096.0) * yScale
	uu := float32(u) - 32768.0
	vv := float32(v) - 32768.0

	r = clampF32((yy+vToR*vv)/65535.0, 0, 1)
	g = clampF32((yy+uToG*uu+vToG*vv)/65535.0, 0, 1)
	b = clampF32((yy+uToB*uu)/65535.0, 0, 1)
	return
}

// YUV8ToRGBN8 fuses YUV8ToRGBF32 with Unorm8 rounding.
func YUV8ToRGBN8(y, u, v uint8) (r, g, b uint8) {
	rf, gf, bf := YUV8ToRGBF32(y, u, v)
	return FPToN8(rf), FPToN8(gf), FPToN8(bf)
}

// YUV10ToRGBN8 fuses YUV10ToRGBF32 with Unorm8 rounding.
func YUV10ToRGBN8(y, u, v uint16) (r, g, b uint8) {
	rf, gf, bf := YUV10ToRGBF32(y, u, v)
	return FPToN8(rf), FPToN8(gf), FPToN8(bf)
}

// YUV16ToRGBN8 fuses YUV16ToRGBF32 with Unorm8 rounding.
func YUV16ToRGBN8(y, u, v uint16) (r, g, b uint8) {
	rf, gf, bf := YUV16ToRGBF32(y, u, v)
	return FPToN8(rf), FPToN8(gf), FPToN8(bf)
}

// YUV10ToRGBN16 fuses YUV10ToRGBF32 with Unorm16 rounding.
func YUV10ToRGBN16(y, u, v uint16) (r, g, b uint16) {
	rf, gf, bf := YUV10ToRGBF32(y, u, v)
	return FPToN16(rf), FPToN16(gf), FPToN16(bf)
}

// YUV16ToRGBN16 fuses YUV16ToRGBF32 with Unorm16 rounding.
func YUV16ToRGBN16(y, u, v uint16) (r, g, b uint16) {
	rf, gf, bf := YUV16ToRGBF32(y, u, v)
	return FPToN16(rf), FPToN16(gf), FPToN16(bf)
}
