/*
DESCRIPTION
  special_encode.go implements the EncodePixels functions mirroring
  special.go's decoders: the uncompressed formats that don't fit packed.go's
  generic bit-field shape. Like packed.go's encoderFor, these are
  approximations (bit-exactness is a decode-only requirement): each reads
  the relevant channels out of an RGBA-F32 tile and quantizes them into the
  format's native encoded bytes.

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

import (
	"encoding/binary"
	"math"

	"github.com/ddsgo/dds/codec/ddsfmt/convert"
)

func rgbaF32At(buf []byte, i int) (r, g, b, a float32) {
	base := i * 16
	r = math.Float32frombits(binary.LittleEndian.Uint32(buf[base+0:]))
	g = math.Float32frombits(binary.LittleEndian.Uint32(buf[base+4:]))
	b = math.Float32frombits(binary.LittleEndian.Uint32(buf[base+8:]))
	a = math.Float32frombits(binary.LittleEndian.Uint32(buf[base+12:]))
	return
}

func unormClamp(f float32) float32 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// quantizeN rounds a clamped-[0,1] f32 into [0,max].
func quantizeN(f, max float32) uint32 {
	return uint32(unormClamp(f)*max + 0.5)
}

func snormByte(f float32) byte {
	return byte(int8(int(unormClamp(f)*254+0.5) - 127))
}

func snormWord(f float32) uint16 {
	return uint16(int16(int(unormClamp(f)*65534+0.5) - 32767))
}

// widen8to10 scales an 8-bit channel to a 10-bit field by shifting it up 2
// bits and replicating its top 2 bits below, so 0 and 255 map to 0 and 1023.
func widen8to10(v uint8) uint16 {
	return uint16(v)<<2 | uint16(v)>>6
}

func r8SnormEncoder() EncodePixelsFn {
	return func(rgbaF32, encoded []byte) {
		n := len(rgbaF32) / 16
		for i := 0; i < n; i++ {
			r, _, _, _ := rgbaF32At(rgbaF32, i)
			encoded[i] = snormByte(r)
		}
	}
}

func r16SnormEncoder() EncodePixelsFn {
	return func(rgbaF32, encoded []byte) {
		n := len(rgbaF32) / 16
		for i := 0; i < n; i++ {
			r, _, _, _ := rgbaF32At(rgbaF32, i)
			binary.LittleEndian.PutUint16(encoded[i*2:], snormWord(r))
		}
	}
}

func r8g8UnormEncoder() EncodePixelsFn {
	return func(rgbaF32, encoded []byte) {
		n := len(rgbaF32) / 16
		for i := 0; i < n; i++ {
			r, g, _, _ := rgbaF32At(rgbaF32, i)
			encoded[i*2+0] = byte(quantizeN(r, 255))
			encoded[i*2+1] = byte(quantizeN(g, 255))
		}
	}
}

func r8g8SnormEncoder() EncodePixelsFn {
	return func(rgbaF32, encoded []byte) {
		n := len(rgbaF32) / 16
		for i := 0; i < n; i++ {
			r, g, _, _ := rgbaF32At(rgbaF32, i)
			encoded[i*2+0] = snormByte(r)
			encoded[i*2+1] = snormByte(g)
		}
	}
}

func r16g16UnormEncoder() EncodePixelsFn {
	return func(rgbaF32, encoded []byte) {
		n := len(rgbaF32) / 16
		for i := 0; i < n; i++ {
			r, g, _, _ := rgbaF32At(rgbaF32, i)
			binary.LittleEndian.PutUint16(encoded[i*4+0:], uint16(quantizeN(r, 65535)))
			binary.LittleEndian.PutUint16(encoded[i*4+2:], uint16(quantizeN(g, 65535)))
		}
	}
}

func r16g16SnormEncoder() EncodePixelsFn {
	return func(rgbaF32, encoded []byte) {
		n := len(rgbaF32) / 16
		for i := 0; i < n; i++ {
			r, g, _, _ := rgbaF32At(rgbaF32, i)
			binary.LittleEndian.PutUint16(encoded[i*4+0:], snormWord(r))
			binary.LittleEndian.PutUint16(encoded[i*4+2:], snormWord(g))
		}
	}
}

func r16g16b16a16SnormEncoder() EncodePixelsFn {
	return func(rgbaF32, encoded []byte) {
		n := len(rgbaF32) / 16
		for i := 0; i < n; i++ {
			r, g, b, a := rgbaF32At(rgbaF32, i)
			binary.LittleEndian.PutUint16(encoded[i*8+0:], snormWord(r))
			binary.LittleEndian.PutUint16(encoded[i*8+2:], snormWord(g))
			binary.LittleEndian.PutUint16(encoded[i*8+4:], snormWord(b))
			binary.LittleEndian.PutUint16(encoded[i*8+6:], snormWord(a))
		}
	}
}

func r16g16FloatEncoder() EncodePixelsFn {
	return func(rgbaF32, encoded []byte) {
		n := len(rgbaF32) / 16
		for i := 0; i < n; i++ {
			r, g, _, _ := rgbaF32At(rgbaF32, i)
			binary.LittleEndian.PutUint16(encoded[i*4+0:], convert.F32ToFP16(r))
			binary.LittleEndian.PutUint16(encoded[i*4+2:], convert.F32ToFP16(g))
		}
	}
}

func r32g32FloatEncoder() EncodePixelsFn {
	return func(rgbaF32, encoded []byte) {
		n := len(rgbaF32) / 16
		for i := 0; i < n; i++ {
			copy(encoded[i*8:i*8+8], rgbaF32[i*16:i*16+8])
		}
	}
}

func r32g32b32FloatEncoder() EncodePixelsFn {
	return func(rgbaF32, encoded []byte) {
		n := len(rgbaF32) / 16
		for i := 0; i < n; i++ {
			copy(encoded[i*12:i*12+12], rgbaF32[i*16:i*16+12])
		}
	}
}

func r16g16b16a16UnormEncoder() EncodePixelsFn {
	return func(rgbaF32, encoded []byte) {
		n := len(rgbaF32) / 16
		for i := 0; i < n; i++ {
			r, g, b, a := rgbaF32At(rgbaF32, i)
			binary.LittleEndian.PutUint16(encoded[i*8+0:], uint16(quantizeN(r, 65535)))
			binary.LittleEndian.PutUint16(encoded[i*8+2:], uint16(quantizeN(g, 65535)))
			binary.LittleEndian.PutUint16(encoded[i*8+4:], uint16(quantizeN(b, 65535)))
			binary.LittleEndian.PutUint16(encoded[i*8+6:], uint16(quantizeN(a, 65535)))
		}
	}
}

// r8g8b8a8SnormEncoder maps [0,1] onto the full Snorm8 range, inverting the
// decoders' remap of [-1,1] onto [0,1]: 0 encodes as -127 (-1.0), 0.5 as 0
// and 1 as 127.
func r8g8b8a8SnormEncoder() EncodePixelsFn {
	return func(rgbaF32, encoded []byte) {
		n := len(rgbaF32) / 16
		for i := 0; i < n; i++ {
			r, g, b, a := rgbaF32At(rgbaF32, i)
			encoded[i*4+0] = snormByte(r)
			encoded[i*4+1] = snormByte(g)
			encoded[i*4+2] = snormByte(b)
			encoded[i*4+3] = snormByte(a)
		}
	}
}

func r10g10b10XrBiasA2UnormEncoder() EncodePixelsFn {
	return func(rgbaF32, encoded []byte) {
		n := len(rgbaF32) / 16
		for i := 0; i < n; i++ {
			r, g, b, a := rgbaF32At(rgbaF32, i)
			word := uint32(convert.F32ToXR10(r)) |
				uint32(convert.F32ToXR10(g))<<10 |
				uint32(convert.F32ToXR10(b))<<20 |
				quantizeN(a, 3)<<30
			binary.LittleEndian.PutUint32(encoded[i*4:], word)
		}
	}
}

// r1UnormEncoder thresholds each texel's R channel at 0.5, packing 8
// pixels per byte MSB first.
func r1UnormEncoder() EncodePixelsFn {
	return func(rgbaF32, encoded []byte) {
		n := len(rgbaF32) / 16
		for i := range encoded {
			encoded[i] = 0
		}
		for i := 0; i < n; i++ {
			r, _, _, _ := rgbaF32At(rgbaF32, i)
			if r >= 0.5 {
				encoded[i/8] |= 1 << uint(7-i%8)
			}
		}
	}
}

func r16FloatEncoder() EncodePixelsFn {
	return func(rgbaF32, encoded []byte) {
		n := len(rgbaF32) / 16
		for i := 0; i < n; i++ {
			r, _, _, _ := rgbaF32At(rgbaF32, i)
			binary.LittleEndian.PutUint16(encoded[i*2:], convert.F32ToFP16(r))
		}
	}
}

func r16g16b16a16FloatEncoder() EncodePixelsFn {
	return func(rgbaF32, encoded []byte) {
		n := len(rgbaF32) / 16
		for i := 0; i < n; i++ {
			r, g, b, a := rgbaF32At(rgbaF32, i)
			binary.LittleEndian.PutUint16(encoded[i*8+0:], convert.F32ToFP16(r))
			binary.LittleEndian.PutUint16(encoded[i*8+2:], convert.F32ToFP16(g))
			binary.LittleEndian.PutUint16(encoded[i*8+4:], convert.F32ToFP16(b))
			binary.LittleEndian.PutUint16(encoded[i*8+6:], convert.F32ToFP16(a))
		}
	}
}

func r32FloatEncoder() EncodePixelsFn {
	return func(rgbaF32, encoded []byte) {
		n := len(rgbaF32) / 16
		for i := 0; i < n; i++ {
			r, _, _, _ := rgbaF32At(rgbaF32, i)
			binary.LittleEndian.PutUint32(encoded[i*4:], math.Float32bits(r))
		}
	}
}

func r32g32b32a32FloatEncoder() EncodePixelsFn {
	return func(rgbaF32, encoded []byte) {
		copy(encoded, rgbaF32)
	}
}

func r11g11b10FloatEncoder() EncodePixelsFn {
	return func(rgbaF32, encoded []byte) {
		n := len(rgbaF32) / 16
		for i := 0; i < n; i++ {
			r, g, b, _ := rgbaF32At(rgbaF32, i)
			word := uint32(convert.F32ToFP11(r)) |
				uint32(convert.F32ToFP11(g))<<11 |
				uint32(convert.F32ToFP10(b))<<22
			binary.LittleEndian.PutUint32(encoded[i*4:], word)
		}
	}
}

func r9g9b9e5SharedExpEncoder() EncodePixelsFn {
	return func(rgbaF32, encoded []byte) {
		n := len(rgbaF32) / 16
		for i := 0; i < n; i++ {
			r, g, b, _ := rgbaF32At(rgbaF32, i)
			mr, mg, mb, exp := convert.RGBToRGB9E5(r, g, b)
			word := uint32(mr) | uint32(mg)<<9 | uint32(mb)<<18 | uint32(exp)<<27
			binary.LittleEndian.PutUint32(encoded[i*4:], word)
		}
	}
}

// ayuvEncoder writes AYUV's V,U,Y,A byte order.
func ayuvEncoder() EncodePixelsFn {
	return func(rgbaF32, encoded []byte) {
		n := len(rgbaF32) / 16
		for i := 0; i < n; i++ {
			r, g, b, a := rgbaF32At(rgbaF32, i)
			y, u, v := convert.RGBToYUV8(r, g, b)
			encoded[i*4+0] = v
			encoded[i*4+1] = u
			encoded[i*4+2] = y
			encoded[i*4+3] = byte(quantizeN(a, 255))
		}
	}
}

// yuy2Encoder packs 2 pixels (Y0,U,Y1,V) per 4-byte unit, averaging the
// pair's independently-computed chroma as most YUY2 encoders do.
func yuy2Encoder() EncodePixelsFn {
	return func(rgbaF32, encoded []byte) {
		n := len(rgbaF32) / 16
		pairs := n / 2
		for p := 0; p < pairs; p++ {
			r0, g0, b0, _ := rgbaF32At(rgbaF32, p*2)
			r1, g1, b1, _ := rgbaF32At(rgbaF32, p*2+1)
			y0, u0, v0 := convert.RGBToYUV8(r0, g0, b0)
			y1, u1, v1 := convert.RGBToYUV8(r1, g1, b1)
			u := uint8((uint16(u0) + uint16(u1)) / 2)
			v := uint8((uint16(v0) + uint16(v1)) / 2)
			encoded[p*4+0] = y0
			encoded[p*4+1] = u
			encoded[p*4+2] = y1
			encoded[p*4+3] = v
		}
	}
}

// uyvyEncoder is yuy2Encoder with the chroma bytes leading (U,Y0,V,Y1).
func uyvyEncoder() EncodePixelsFn {
	return func(rgbaF32, encoded []byte) {
		n := len(rgbaF32) / 16
		pairs := n / 2
		for p := 0; p < pairs; p++ {
			r0, g0, b0, _ := rgbaF32At(rgbaF32, p*2)
			r1, g1, b1, _ := rgbaF32At(rgbaF32, p*2+1)
			y0, u0, v0 := convert.RGBToYUV8(r0, g0, b0)
			y1, u1, v1 := convert.RGBToYUV8(r1, g1, b1)
			u := uint8((uint16(u0) + uint16(u1)) / 2)
			v := uint8((uint16(v0) + uint16(v1)) / 2)
			encoded[p*4+0] = u
			encoded[p*4+1] = y0
			encoded[p*4+2] = v
			encoded[p*4+3] = y1
		}
	}
}

// rgbgPairEncoder builds the encoders shared by R8G8_B8G8 and G8R8_G8B8:
// the pair's shared R and B samples are the average of the two pixels'
// channels, the G samples are per pixel.
func rgbgPairEncoder(writePair func(encoded []byte, r, g0, b, g1 uint8)) EncodePixelsFn {
	return func(rgbaF32, encoded []byte) {
		n := len(rgbaF32) / 16
		pairs := n / 2
		for p := 0; p < pairs; p++ {
			r0, g0, b0, _ := rgbaF32At(rgbaF32, p*2)
			r1, g1, b1, _ := rgbaF32At(rgbaF32, p*2+1)
			r := byte(quantizeN((r0+r1)*0.5, 255))
			b := byte(quantizeN((b0+b1)*0.5, 255))
			writePair(encoded[p*4:], r, byte(quantizeN(g0, 255)), b, byte(quantizeN(g1, 255)))
		}
	}
}

func rgbgEncoder() EncodePixelsFn {
	return rgbgPairEncoder(func(encoded []byte, r, g0, b, g1 uint8) {
		encoded[0], encoded[1], encoded[2], encoded[3] = r, g0, b, g1
	})
}

func grgbEncoder() EncodePixelsFn {
	return rgbgPairEncoder(func(encoded []byte, r, g0, b, g1 uint8) {
		encoded[0], encoded[1], encoded[2], encoded[3] = g0, r, g1, b
	})
}

// y216PairEncoder builds the encoders shared by Y216 and Y210: four
// little-endian u16 samples (Y0,U,Y1,V) per pair, with the pair's chroma
// averaged. mask narrows each sample (0xFFC0 keeps Y210's top 10 bits,
// 0xFFFF keeps all of Y216's).
func y216PairEncoder(mask uint16) EncodePixelsFn {
	return func(rgbaF32, encoded []byte) {
		n := len(rgbaF32) / 16
		pairs := n / 2
		for p := 0; p < pairs; p++ {
			r0, g0, b0, _ := rgbaF32At(rgbaF32, p*2)
			r1, g1, b1, _ := rgbaF32At(rgbaF32, p*2+1)
			y0, u0, v0 := convert.RGBToYUV16(r0, g0, b0)
			y1, u1, v1 := convert.RGBToYUV16(r1, g1, b1)
			u := uint16((uint32(u0) + uint32(u1)) / 2)
			v := uint16((uint32(v0) + uint32(v1)) / 2)
			binary.LittleEndian.PutUint16(encoded[p*8+0:], y0&mask)
			binary.LittleEndian.PutUint16(encoded[p*8+2:], u&mask)
			binary.LittleEndian.PutUint16(encoded[p*8+4:], y1&mask)
			binary.LittleEndian.PutUint16(encoded[p*8+6:], v&mask)
		}
	}
}

func y210Encoder() EncodePixelsFn { return y216PairEncoder(0xFFC0) }
func y216Encoder() EncodePixelsFn { return y216PairEncoder(0xFFFF) }

// y410Encoder packs A2V10U10Y10 into one 32-bit word, widening the 8-bit
// YUV computation to 10 bits by top-bit replication.
func y410Encoder() EncodePixelsFn {
	return func(rgbaF32, encoded []byte) {
		n := len(rgbaF32) / 16
		for i := 0; i < n; i++ {
			r, g, b, a := rgbaF32At(rgbaF32, i)
			y8, u8, v8 := convert.RGBToYUV8(r, g, b)
			word := uint32(widen8to10(y8)) |
				uint32(widen8to10(u8))<<10 |
				uint32(widen8to10(v8))<<20 |
				quantizeN(a, 3)<<30
			binary.LittleEndian.PutUint32(encoded[i*4:], word)
		}
	}
}

// y416Encoder writes U16 V,Y,U,A per pixel.
func y416Encoder() EncodePixelsFn {
	return func(rgbaF32, encoded []byte) {
		n := len(rgbaF32) / 16
		for i := 0; i < n; i++ {
			r, g, b, a := rgbaF32At(rgbaF32, i)
			y, u, v := convert.RGBToYUV16(r, g, b)
			binary.LittleEndian.PutUint16(encoded[i*8+0:], v)
			binary.LittleEndian.PutUint16(encoded[i*8+2:], y)
			binary.LittleEndian.PutUint16(encoded[i*8+4:], u)
			binary.LittleEndian.PutUint16(encoded[i*8+6:], uint16(quantizeN(a, 65535)))
		}
	}
}
