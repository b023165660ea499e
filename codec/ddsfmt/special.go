/*
DESCRIPTION
  special.go implements the ProcessPixels functions for the uncompressed
  formats that don't fit the generic packed-Unorm shape in packed.go: wide
  16-bit-per-channel words, Snorm, XR-bias, float widths (FP16/FP11/FP10/
  F32), the shared-exponent format, and the packed YUV formats.

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

func putF32(dst []byte, v float32) {
	binary.LittleEndian.PutUint32(dst, math.Float32bits(v))
}

// r16g16b16a16UnormProcessors decode 4x16-bit unsigned Unorm channels.
func r16g16b16a16UnormProcessors() [3]ProcessPixelsFn {
	return [3]ProcessPixelsFn{
		U8: func(encoded, decoded []byte) {
			n := len(decoded) / 4
			for i := 0; i < n; i++ {
				for c := 0; c < 4; c++ {
					v := binary.LittleEndian.Uint16(encoded[(i*4+c)*2:])
					decoded[i*4+c] = convert.N16ToN8(v)
				}
			}
		},
		U16: func(encoded, decoded []byte) {
			copy(decoded, encoded[:len(decoded)])
		},
		F32: func(encoded, decoded []byte) {
			n := len(decoded) / 16
			for i := 0; i < n; i++ {
				for c := 0; c < 4; c++ {
					v := binary.LittleEndian.Uint16(encoded[(i*4+c)*2:])
					putF32(decoded[(i*4+c)*4:], convert.N16ToF32Exact(v))
				}
			}
		},
	}
}

// r8SnormProcessors decode a single 8-bit signed-normalized channel,
// remapping the signed range [-1,1] onto [0,1] (signed 0 decodes to the
// midpoint).
func r8SnormProcessors() [3]ProcessPixelsFn {
	return [3]ProcessPixelsFn{
		U8: func(encoded, decoded []byte) {
			for i := range decoded {
				decoded[i] = convert.S8ToN8(encoded[i])
			}
		},
		U16: func(encoded, decoded []byte) {
			n := len(decoded) / 2
			for i := 0; i < n; i++ {
				binary.LittleEndian.PutUint16(decoded[i*2:], convert.S8ToN16(encoded[i]))
			}
		},
		F32: func(encoded, decoded []byte) {
			n := len(decoded) / 4
			for i := 0; i < n; i++ {
				putF32(decoded[i*4:], convert.S8ToUF32Exact(encoded[i]))
			}
		},
	}
}

// r16SnormProcessors decode a single 16-bit signed-normalized channel.
func r16SnormProcessors() [3]ProcessPixelsFn {
	return [3]ProcessPixelsFn{
		U8: func(encoded, decoded []byte) {
			for i := range decoded {
				decoded[i] = convert.S16ToN8(binary.LittleEndian.Uint16(encoded[i*2:]))
			}
		},
		U16: func(encoded, decoded []byte) {
			n := len(decoded) / 2
			for i := 0; i < n; i++ {
				binary.LittleEndian.PutUint16(decoded[i*2:], convert.S16ToN16(binary.LittleEndian.Uint16(encoded[i*2:])))
			}
		},
		F32: func(encoded, decoded []byte) {
			n := len(decoded) / 4
			for i := 0; i < n; i++ {
				putF32(decoded[i*4:], convert.S16ToUF32Exact(binary.LittleEndian.Uint16(encoded[i*2:])))
			}
		},
	}
}

// Two-channel formats decode to an RGB native layout with B pinned to 0;
// there is no RG ColorFormat in the decoded model.

func r8g8UnormProcessors() [3]ProcessPixelsFn {
	return [3]ProcessPixelsFn{
		U8: func(encoded, decoded []byte) {
			n := len(decoded) / 3
			for i := 0; i < n; i++ {
				decoded[i*3+0] = encoded[i*2+0]
				decoded[i*3+1] = encoded[i*2+1]
				decoded[i*3+2] = 0
			}
		},
		U16: func(encoded, decoded []byte) {
			n := len(decoded) / 6
			for i := 0; i < n; i++ {
				binary.LittleEndian.PutUint16(decoded[(i*3+0)*2:], convert.N8ToN16(encoded[i*2+0]))
				binary.LittleEndian.PutUint16(decoded[(i*3+1)*2:], convert.N8ToN16(encoded[i*2+1]))
				binary.LittleEndian.PutUint16(decoded[(i*3+2)*2:], 0)
			}
		},
		F32: func(encoded, decoded []byte) {
			n := len(decoded) / 12
			for i := 0; i < n; i++ {
				putF32(decoded[(i*3+0)*4:], convert.N8ToF32Exact(encoded[i*2+0]))
				putF32(decoded[(i*3+1)*4:], convert.N8ToF32Exact(encoded[i*2+1]))
				putF32(decoded[(i*3+2)*4:], 0)
			}
		},
	}
}

func r8g8SnormProcessors() [3]ProcessPixelsFn {
	return [3]ProcessPixelsFn{
		U8: func(encoded, decoded []byte) {
			n := len(decoded) / 3
			for i := 0; i < n; i++ {
				decoded[i*3+0] = convert.S8ToN8(encoded[i*2+0])
				decoded[i*3+1] = convert.S8ToN8(encoded[i*2+1])
				decoded[i*3+2] = 0
			}
		},
		U16: func(encoded, decoded []byte) {
			n := len(decoded) / 6
			for i := 0; i < n; i++ {
				binary.LittleEndian.PutUint16(decoded[(i*3+0)*2:], convert.S8ToN16(encoded[i*2+0]))
				binary.LittleEndian.PutUint16(decoded[(i*3+1)*2:], convert.S8ToN16(encoded[i*2+1]))
				binary.LittleEndian.PutUint16(decoded[(i*3+2)*2:], 0)
			}
		},
		F32: func(encoded, decoded []byte) {
			n := len(decoded) / 12
			for i := 0; i < n; i++ {
				putF32(decoded[(i*3+0)*4:], convert.S8ToUF32Exact(encoded[i*2+0]))
				putF32(decoded[(i*3+1)*4:], convert.S8ToUF32Exact(encoded[i*2+1]))
				putF32(decoded[(i*3+2)*4:], 0)
			}
		},
	}
}

func r16g16UnormProcessors() [3]ProcessPixelsFn {
	return [3]ProcessPixelsFn{
		U8: func(encoded, decoded []byte) {
			n := len(decoded) / 3
			for i := 0; i < n; i++ {
				decoded[i*3+0] = convert.N16ToN8(binary.LittleEndian.Uint16(encoded[i*4+0:]))
				decoded[i*3+1] = convert.N16ToN8(binary.LittleEndian.Uint16(encoded[i*4+2:]))
				decoded[i*3+2] = 0
			}
		},
		U16: func(encoded, decoded []byte) {
			n := len(decoded) / 6
			for i := 0; i < n; i++ {
				copy(decoded[(i*3+0)*2:(i*3+2)*2], encoded[i*4:i*4+4])
				binary.LittleEndian.PutUint16(decoded[(i*3+2)*2:], 0)
			}
		},
		F32: func(encoded, decoded []byte) {
			n := len(decoded) / 12
			for i := 0; i < n; i++ {
				putF32(decoded[(i*3+0)*4:], convert.N16ToF32Exact(binary.LittleEndian.Uint16(encoded[i*4+0:])))
				putF32(decoded[(i*3+1)*4:], convert.N16ToF32Exact(binary.LittleEndian.Uint16(encoded[i*4+2:])))
				putF32(decoded[(i*3+2)*4:], 0)
			}
		},
	}
}

func r16g16SnormProcessors() [3]ProcessPixelsFn {
	return [3]ProcessPixelsFn{
		U8: func(encoded, decoded []byte) {
			n := len(decoded) / 3
			for i := 0; i < n; i++ {
				decoded[i*3+0] = convert.S16ToN8(binary.LittleEndian.Uint16(encoded[i*4+0:]))
				decoded[i*3+1] = convert.S16ToN8(binary.LittleEndian.Uint16(encoded[i*4+2:]))
				decoded[i*3+2] = 0
			}
		},
		U16: func(encoded, decoded []byte) {
			n := len(decoded) / 6
			for i := 0; i < n; i++ {
				binary.LittleEndian.PutUint16(decoded[(i*3+0)*2:], convert.S16ToN16(binary.LittleEndian.Uint16(encoded[i*4+0:])))
				binary.LittleEndian.PutUint16(decoded[(i*3+1)*2:], convert.S16ToN16(binary.LittleEndian.Uint16(encoded[i*4+2:])))
				binary.LittleEndian.PutUint16(decoded[(i*3+2)*2:], 0)
			}
		},
		F32: func(encoded, decoded []byte) {
			n := len(decoded) / 12
			for i := 0; i < n; i++ {
				putF32(decoded[(i*3+0)*4:], convert.S16ToUF32Exact(binary.LittleEndian.Uint16(encoded[i*4+0:])))
				putF32(decoded[(i*3+1)*4:], convert.S16ToUF32Exact(binary.LittleEndian.Uint16(encoded[i*4+2:])))
				putF32(decoded[(i*3+2)*4:], 0)
			}
		},
	}
}

func r16g16b16a16SnormProcessors() [3]ProcessPixelsFn {
	return [3]ProcessPixelsFn{
		U8: func(encoded, decoded []byte) {
			n := len(decoded) / 4
			for i := 0; i < n; i++ {
				for c := 0; c < 4; c++ {
					decoded[i*4+c] = convert.S16ToN8(binary.LittleEndian.Uint16(encoded[(i*4+c)*2:]))
				}
			}
		},
		U16: func(encoded, decoded []byte) {
			n := len(decoded) / 8
			for i := 0; i < n; i++ {
				for c := 0; c < 4; c++ {
					binary.LittleEndian.PutUint16(decoded[(i*4+c)*2:], convert.S16ToN16(binary.LittleEndian.Uint16(encoded[(i*4+c)*2:])))
				}
			}
		},
		F32: func(encoded, decoded []byte) {
			n := len(decoded) / 16
			for i := 0; i < n; i++ {
				for c := 0; c < 4; c++ {
					putF32(decoded[(i*4+c)*4:], convert.S16ToUF32Exact(binary.LittleEndian.Uint16(encoded[(i*4+c)*2:])))
				}
			}
		},
	}
}

func r16g16FloatProcessors() [3]ProcessPixelsFn {
	return [3]ProcessPixelsFn{
		U8: func(encoded, decoded []byte) {
			n := len(decoded) / 3
			for i := 0; i < n; i++ {
				decoded[i*3+0] = convert.FP16ToN8(binary.LittleEndian.Uint16(encoded[i*4+0:]))
				decoded[i*3+1] = convert.FP16ToN8(binary.LittleEndian.Uint16(encoded[i*4+2:]))
				decoded[i*3+2] = 0
			}
		},
		U16: func(encoded, decoded []byte) {
			n := len(decoded) / 6
			for i := 0; i < n; i++ {
				binary.LittleEndian.PutUint16(decoded[(i*3+0)*2:], convert.FP16ToN16(binary.LittleEndian.Uint16(encoded[i*4+0:])))
				binary.LittleEndian.PutUint16(decoded[(i*3+1)*2:], convert.FP16ToN16(binary.LittleEndian.Uint16(encoded[i*4+2:])))
				binary.LittleEndian.PutUint16(decoded[(i*3+2)*2:], 0)
			}
		},
		F32: func(encoded, decoded []byte) {
			n := len(decoded) / 12
			for i := 0; i < n; i++ {
				putF32(decoded[(i*3+0)*4:], convert.FP16ToF32(binary.LittleEndian.Uint16(encoded[i*4+0:])))
				putF32(decoded[(i*3+1)*4:], convert.FP16ToF32(binary.LittleEndian.Uint16(encoded[i*4+2:])))
				putF32(decoded[(i*3+2)*4:], 0)
			}
		},
	}
}

func r32g32FloatProcessors() [3]ProcessPixelsFn {
	toF32 := func(encoded []byte, i, c int) float32 {
		return math.Float32frombits(binary.LittleEndian.Uint32(encoded[(i*2+c)*4:]))
	}
	return [3]ProcessPixelsFn{
		U8: func(encoded, decoded []byte) {
			n := len(decoded) / 3
			for i := 0; i < n; i++ {
				decoded[i*3+0] = convert.FPToN8(toF32(encoded, i, 0))
				decoded[i*3+1] = convert.FPToN8(toF32(encoded, i, 1))
				decoded[i*3+2] = 0
			}
		},
		U16: func(encoded, decoded []byte) {
			n := len(decoded) / 6
			for i := 0; i < n; i++ {
				binary.LittleEndian.PutUint16(decoded[(i*3+0)*2:], convert.FPToN16(toF32(encoded, i, 0)))
				binary.LittleEndian.PutUint16(decoded[(i*3+1)*2:], convert.FPToN16(toF32(encoded, i, 1)))
				binary.LittleEndian.PutUint16(decoded[(i*3+2)*2:], 0)
			}
		},
		F32: func(encoded, decoded []byte) {
			n := len(decoded) / 12
			for i := 0; i < n; i++ {
				copy(decoded[i*12:i*12+8], encoded[i*8:i*8+8])
				binary.LittleEndian.PutUint32(decoded[i*12+8:], 0)
			}
		},
	}
}

func r32g32b32FloatProcessors() [3]ProcessPixelsFn {
	toF32 := func(encoded []byte, i, c int) float32 {
		return math.Float32frombits(binary.LittleEndian.Uint32(encoded[(i*3+c)*4:]))
	}
	return [3]ProcessPixelsFn{
		U8: func(encoded, decoded []byte) {
			n := len(decoded) / 3
			for i := 0; i < n; i++ {
				for c := 0; c < 3; c++ {
					decoded[i*3+c] = convert.FPToN8(toF32(encoded, i, c))
				}
			}
		},
		U16: func(encoded, decoded []byte) {
			n := len(decoded) / 6
			for i := 0; i < n; i++ {
				for c := 0; c < 3; c++ {
					binary.LittleEndian.PutUint16(decoded[(i*3+c)*2:], convert.FPToN16(toF32(encoded, i, c)))
				}
			}
		},
		F32: func(encoded, decoded []byte) {
			copy(decoded, encoded[:len(decoded)])
		},
	}
}

// r8g8b8a8SnormProcessors decode 4x8-bit signed-normalized channels,
// remapping the signed range [-1,1] onto [0,1] (signed 0 decodes to the
// midpoint).
func r8g8b8a8SnormProcessors() [3]ProcessPixelsFn {
	return [3]ProcessPixelsFn{
		U8: func(encoded, decoded []byte) {
			for i := range decoded {
				decoded[i] = convert.S8ToN8(encoded[i])
			}
		},
		U16: func(encoded, decoded []byte) {
			n := len(decoded) / 2
			for i := 0; i < n; i++ {
				binary.LittleEndian.PutUint16(decoded[i*2:], convert.S8ToN16(encoded[i]))
			}
		},
		F32: func(encoded, decoded []byte) {
			n := len(decoded) / 4
			for i := 0; i < n; i++ {
				putF32(decoded[i*4:], convert.S8ToUF32Exact(encoded[i]))
			}
		},
	}
}

// r10g10b10XrBiasA2UnormProcessors decode the 2.8-fixed-point XR_BIAS RGB
// channels plus a plain Unorm2 alpha.
func r10g10b10XrBiasA2UnormProcessors() [3]ProcessPixelsFn {
	extract := func(word uint32) (r, g, b, a uint32) {
		return word & 0x3FF, (word >> 10) & 0x3FF, (word >> 20) & 0x3FF, (word >> 30) & 0x3
	}
	return [3]ProcessPixelsFn{
		U8: func(encoded, decoded []byte) {
			n := len(decoded) / 4
			for i := 0; i < n; i++ {
				word := binary.LittleEndian.Uint32(encoded[i*4:])
				r, g, b, a := extract(word)
				decoded[i*4+0] = convert.XR10ToN8(uint16(r))
				decoded[i*4+1] = convert.XR10ToN8(uint16(g))
				decoded[i*4+2] = convert.XR10ToN8(uint16(b))
				decoded[i*4+3] = convert.UnormToN8(2, a)
			}
		},
		U16: func(encoded, decoded []byte) {
			n := len(decoded) / 8
			for i := 0; i < n; i++ {
				word := binary.LittleEndian.Uint32(encoded[i*4:])
				r, g, b, a := extract(word)
				binary.LittleEndian.PutUint16(decoded[(i*4+0)*2:], convert.XR10ToN16(uint16(r)))
				binary.LittleEndian.PutUint16(decoded[(i*4+1)*2:], convert.XR10ToN16(uint16(g)))
				binary.LittleEndian.PutUint16(decoded[(i*4+2)*2:], convert.XR10ToN16(uint16(b)))
				binary.LittleEndian.PutUint16(decoded[(i*4+3)*2:], convert.UnormToN16(2, a))
			}
		},
		F32: func(encoded, decoded []byte) {
			n := len(decoded) / 16
			for i := 0; i < n; i++ {
				word := binary.LittleEndian.Uint32(encoded[i*4:])
				r, g, b, a := extract(word)
				putF32(decoded[(i*4+0)*4:], convert.XR10ToF32(uint16(r)))
				putF32(decoded[(i*4+1)*4:], convert.XR10ToF32(uint16(g)))
				putF32(decoded[(i*4+2)*4:], convert.XR10ToF32(uint16(b)))
				putF32(decoded[(i*4+3)*4:], convert.UnormToF32Exact(2, a))
			}
		},
	}
}

// r1UnormProcessors decode the 1-bit-per-pixel packed bitmap format, 8
// pixels per byte, MSB first.
func r1UnormProcessors() [3]ProcessPixelsFn {
	bit := func(encoded []byte, i int) uint8 {
		b := encoded[i/8]
		shift := 7 - uint(i%8)
		return (b >> shift) & 1
	}
	return [3]ProcessPixelsFn{
		U8: func(encoded, decoded []byte) {
			for i := range decoded {
				decoded[i] = convert.N1ToN8(bit(encoded, i))
			}
		},
		U16: func(encoded, decoded []byte) {
			n := len(decoded) / 2
			for i := 0; i < n; i++ {
				binary.LittleEndian.PutUint16(decoded[i*2:], convert.N1ToN16(bit(encoded, i)))
			}
		},
		F32: func(encoded, decoded []byte) {
			n := len(decoded) / 4
			for i := 0; i < n; i++ {
				putF32(decoded[i*4:], convert.N1ToF32(bit(encoded, i)))
			}
		},
	}
}

// r16FloatProcessors decode a single FP16 channel (Grayscale native).
func r16FloatProcessors() [3]ProcessPixelsFn {
	return [3]ProcessPixelsFn{
		U8: func(encoded, decoded []byte) {
			for i := range decoded {
				decoded[i] = convert.FP16ToN8(binary.LittleEndian.Uint16(encoded[i*2:]))
			}
		},
		U16: func(encoded, decoded []byte) {
			n := len(decoded) / 2
			for i := 0; i < n; i++ {
				binary.LittleEndian.PutUint16(decoded[i*2:], convert.FP16ToN16(binary.LittleEndian.Uint16(encoded[i*2:])))
			}
		},
		F32: func(encoded, decoded []byte) {
			n := len(decoded) / 4
			for i := 0; i < n; i++ {
				putF32(decoded[i*4:], convert.FP16ToF32(binary.LittleEndian.Uint16(encoded[i*2:])))
			}
		},
	}
}

// r16g16b16a16FloatProcessors decode 4 FP16 channels.
func r16g16b16a16FloatProcessors() [3]ProcessPixelsFn {
	return [3]ProcessPixelsFn{
		U8: func(encoded, decoded []byte) {
			n := len(decoded) / 4
			for i := 0; i < n; i++ {
				for c := 0; c < 4; c++ {
					decoded[i*4+c] = convert.FP16ToN8(binary.LittleEndian.Uint16(encoded[(i*4+c)*2:]))
				}
			}
		},
		U16: func(encoded, decoded []byte) {
			n := len(decoded) / 8
			for i := 0; i < n; i++ {
				for c := 0; c < 4; c++ {
					v := convert.FP16ToN16(binary.LittleEndian.Uint16(encoded[(i*4+c)*2:]))
					binary.LittleEndian.PutUint16(decoded[(i*4+c)*2:], v)
				}
			}
		},
		F32: func(encoded, decoded []byte) {
			n := len(decoded) / 16
			for i := 0; i < n; i++ {
				for c := 0; c < 4; c++ {
					f := convert.FP16ToF32(binary.LittleEndian.Uint16(encoded[(i*4+c)*2:]))
					putF32(decoded[(i*4+c)*4:], f)
				}
			}
		},
	}
}

// r32FloatProcessors decode a single raw IEEE-754 f32 channel.
func r32FloatProcessors() [3]ProcessPixelsFn {
	toF32 := func(encoded []byte, i int) float32 {
		return math.Float32frombits(binary.LittleEndian.Uint32(encoded[i*4:]))
	}
	return [3]ProcessPixelsFn{
		U8: func(encoded, decoded []byte) {
			for i := range decoded {
				decoded[i] = convert.FPToN8(toF32(encoded, i))
			}
		},
		U16: func(encoded, decoded []byte) {
			n := len(decoded) / 2
			for i := 0; i < n; i++ {
				binary.LittleEndian.PutUint16(decoded[i*2:], convert.FPToN16(toF32(encoded, i)))
			}
		},
		F32: func(encoded, decoded []byte) {
			copy(decoded, encoded[:len(decoded)])
		},
	}
}

// r32g32b32a32FloatProcessors decode 4 raw IEEE-754 f32 channels.
func r32g32b32a32FloatProcessors() [3]ProcessPixelsFn {
	toF32 := func(encoded []byte, i int) float32 {
		return math.Float32frombits(binary.LittleEndian.Uint32(encoded[i*4:]))
	}
	return [3]ProcessPixelsFn{
		U8: func(encoded, decoded []byte) {
			n := len(decoded)
			for i := 0; i < n; i++ {
				decoded[i] = convert.FPToN8(toF32(encoded, i))
			}
		},
		U16: func(encoded, decoded []byte) {
			n := len(decoded) / 2
			for i := 0; i < n; i++ {
				binary.LittleEndian.PutUint16(decoded[i*2:], convert.FPToN16(toF32(encoded, i)))
			}
		},
		F32: func(encoded, decoded []byte) {
			copy(decoded, encoded[:len(decoded)])
		},
	}
}

// r11g11b10FloatProcessors decode FP11, FP11, FP10 packed into one 32-bit
// word.
func r11g11b10FloatProcessors() [3]ProcessPixelsFn {
	extract := func(word uint32) (r, g, b uint16) {
		return uint16(word & 0x7FF), uint16((word >> 11) & 0x7FF), uint16((word >> 22) & 0x3FF)
	}
	return [3]ProcessPixelsFn{
		U8: func(encoded, decoded []byte) {
			n := len(decoded) / 3
			for i := 0; i < n; i++ {
				word := binary.LittleEndian.Uint32(encoded[i*4:])
				r, g, b := extract(word)
				decoded[i*3+0] = convert.FP11ToN8(r)
				decoded[i*3+1] = convert.FP11ToN8(g)
				decoded[i*3+2] = convert.FP10ToN8(b)
			}
		},
		U16: func(encoded, decoded []byte) {
			n := len(decoded) / 6
			for i := 0; i < n; i++ {
				word := binary.LittleEndian.Uint32(encoded[i*4:])
				r, g, b := extract(word)
				binary.LittleEndian.PutUint16(decoded[(i*3+0)*2:], convert.FP11ToN16(r))
				binary.LittleEndian.PutUint16(decoded[(i*3+1)*2:], convert.FP11ToN16(g))
				binary.LittleEndian.PutUint16(decoded[(i*3+2)*2:], convert.FP10ToN16(b))
			}
		},
		F32: func(encoded, decoded []byte) {
			n := len(decoded) / 12
			for i := 0; i < n; i++ {
				word := binary.LittleEndian.Uint32(encoded[i*4:])
				r, g, b := extract(word)
				putF32(decoded[(i*3+0)*4:], convert.FP11ToF32(r))
				putF32(decoded[(i*3+1)*4:], convert.FP11ToF32(g))
				putF32(decoded[(i*3+2)*4:], convert.FP10ToF32(b))
			}
		},
	}
}

// r9g9b9e5SharedExpProcessors decode the shared-exponent RGB format.
func r9g9b9e5SharedExpProcessors() [3]ProcessPixelsFn {
	extract := func(word uint32) (r, g, b uint16, exp uint8) {
		return uint16(word & 0x1FF), uint16((word >> 9) & 0x1FF), uint16((word >> 18) & 0x1FF), uint8((word >> 27) & 0x1F)
	}
	return [3]ProcessPixelsFn{
		U8: func(encoded, decoded []byte) {
			n := len(decoded) / 3
			for i := 0; i < n; i++ {
				word := binary.LittleEndian.Uint32(encoded[i*4:])
				r, g, b, exp := extract(word)
				decoded[i*3+0] = convert.RGB9E5ChannelToN8(r, exp)
				decoded[i*3+1] = convert.RGB9E5ChannelToN8(g, exp)
				decoded[i*3+2] = convert.RGB9E5ChannelToN8(b, exp)
			}
		},
		U16: func(encoded, decoded []byte) {
			n := len(decoded) / 6
			for i := 0; i < n; i++ {
				word := binary.LittleEndian.Uint32(encoded[i*4:])
				r, g, b, exp := extract(word)
				binary.LittleEndian.PutUint16(decoded[(i*3+0)*2:], convert.RGB9E5ChannelToN16(r, exp))
				binary.LittleEndian.PutUint16(decoded[(i*3+1)*2:], convert.RGB9E5ChannelToN16(g, exp))
				binary.LittleEndian.PutUint16(decoded[(i*3+2)*2:], convert.RGB9E5ChannelToN16(b, exp))
			}
		},
		F32: func(encoded, decoded []byte) {
			n := len(decoded) / 12
			for i := 0; i < n; i++ {
				word := binary.LittleEndian.Uint32(encoded[i*4:])
				r, g, b, exp := extract(word)
				putF32(decoded[(i*3+0)*4:], convert.RGB9E5ChannelToF32(r, exp))
				putF32(decoded[(i*3+1)*4:], convert.RGB9E5ChannelToF32(g, exp))
				putF32(decoded[(i*3+2)*4:], convert.RGB9E5ChannelToF32(b, exp))
			}
		},
	}
}

// ayuvProcessors decode AYUV: one byte each of V, U, Y, A per pixel.
func ayuvProcessors() [3]ProcessPixelsFn {
	return [3]ProcessPixelsFn{
		U8: func(encoded, decoded []byte) {
			n := len(decoded) / 4
			for i := 0; i < n; i++ {
				v, u, y, a := encoded[i*4+0], encoded[i*4+1], encoded[i*4+2], encoded[i*4+3]
				r, g, b := convert.YUV8ToRGBN8(y, u, v)
				decoded[i*4+0], decoded[i*4+1], decoded[i*4+2], decoded[i*4+3] = r, g, b, a
			}
		},
		U16: func(encoded, decoded []byte) {
			n := len(decoded) / 8
			for i := 0; i < n; i++ {
				v, u, y, a := encoded[i*4+0], encoded[i*4+1], encoded[i*4+2], encoded[i*4+3]
				r, g, b := convert.YUV8ToRGBN8(y, u, v)
				binary.LittleEndian.PutUint16(decoded[(i*4+0)*2:], convert.N8ToN16(r))
				binary.LittleEndian.PutUint16(decoded[(i*4+1)*2:], convert.N8ToN16(g))
				binary.LittleEndian.PutUint16(decoded[(i*4+2)*2:], convert.N8ToN16(b))
				binary.LittleEndian.PutUint16(decoded[(i*4+3)*2:], convert.N8ToN16(a))
			}
		},
		F32: func(encoded, decoded []byte) {
			n := len(decoded) / 16
			for i := 0; i < n; i++ {
				v, u, y, a := encoded[i*4+0], encoded[i*4+1], encoded[i*4+2], encoded[i*4+3]
				rf, gf, bf := convert.YUV8ToRGBF32(y, u, v)
				putF32(decoded[(i*4+0)*4:], rf)
				putF32(decoded[(i*4+1)*4:], gf)
				putF32(decoded[(i*4+2)*4:], bf)
				putF32(decoded[(i*4+3)*4:], convert.N8ToF32(a))
			}
		},
	}
}

// yuy2Processors decode YUY2's 4:2:2 packing: one U/V pair shared between
// each horizontal pair of pixels (Y0,U,Y1,V per 4 bytes).
func yuy2Processors() [3]ProcessPixelsFn {
	decodePair := func(encoded []byte) (y0, u, y1, v uint8) {
		return encoded[0], encoded[1], encoded[2], encoded[3]
	}
	return [3]ProcessPixelsFn{
		U8: func(encoded, decoded []byte) {
			pairs := len(decoded) / (2 * 3)
			for p := 0; p < pairs; p++ {
				y0, u, y1, v := decodePair(encoded[p*4:])
				r0, g0, b0 := convert.YUV8ToRGBN8(y0, u, v)
				r1, g1, b1 := convert.YUV8ToRGBN8(y1, u, v)
				decoded[p*6+0], decoded[p*6+1], decoded[p*6+2] = r0, g0, b0
				decoded[p*6+3], decoded[p*6+4], decoded[p*6+5] = r1, g1, b1
			}
		},
		U16: func(encoded, decoded []byte) {
			pairs := len(decoded) / (2 * 6)
			for p := 0; p < pairs; p++ {
				y0, u, y1, v := decodePair(encoded[p*4:])
				r0, g0, b0 := convert.YUV8ToRGBN8(y0, u, v)
				r1, g1, b1 := convert.YUV8ToRGBN8(y1, u, v)
				base := p * 12
				for j, c := range []uint8{r0, g0, b0, r1, g1, b1} {
					binary.LittleEndian.PutUint16(decoded[base+j*2:], convert.N8ToN16(c))
				}
			}
		},
		F32: func(encoded, decoded []byte) {
			pairs := len(decoded) / (2 * 12)
			for p := 0; p < pairs; p++ {
				y0, u, y1, v := decodePair(encoded[p*4:])
				r0, g0, b0 := convert.YUV8ToRGBF32(y0, u, v)
				r1, g1, b1 := convert.YUV8ToRGBF32(y1, u, v)
				base := p * 24
				for j, c := range []float32{r0, g0, b0, r1, g1, b1} {
					putF32(decoded[base+j*4:], c)
				}
			}
		},
	}
}

// uyvyProcessors decode UYVY: YUY2's 4:2:2 pairing with the chroma bytes
// leading (U,Y0,V,Y1 per 4 bytes).
func uyvyProcessors() [3]ProcessPixelsFn {
	decodePair := func(encoded []byte) (y0, u, y1, v uint8) {
		return encoded[1], encoded[0], encoded[3], encoded[2]
	}
	return [3]ProcessPixelsFn{
		U8: func(encoded, decoded []byte) {
			pairs := len(decoded) / (2 * 3)
			for p := 0; p < pairs; p++ {
				y0, u, y1, v := decodePair(encoded[p*4:])
				r0, g0, b0 := convert.YUV8ToRGBN8(y0, u, v)
				r1, g1, b1 := convert.YUV8ToRGBN8(y1, u, v)
				decoded[p*6+0], decoded[p*6+1], decoded[p*6+2] = r0, g0, b0
				decoded[p*6+3], decoded[p*6+4], decoded[p*6+5] = r1, g1, b1
			}
		},
		U16: func(encoded, decoded []byte) {
			pairs := len(decoded) / (2 * 6)
			for p := 0; p < pairs; p++ {
				y0, u, y1, v := decodePair(encoded[p*4:])
				r0, g0, b0 := convert.YUV8ToRGBN8(y0, u, v)
				r1, g1, b1 := convert.YUV8ToRGBN8(y1, u, v)
				base := p * 12
				for j, c := range []uint8{r0, g0, b0, r1, g1, b1} {
					binary.LittleEndian.PutUint16(decoded[base+j*2:], convert.N8ToN16(c))
				}
			}
		},
		F32: func(encoded, decoded []byte) {
			pairs := len(decoded) / (2 * 12)
			for p := 0; p < pairs; p++ {
				y0, u, y1, v := decodePair(encoded[p*4:])
				r0, g0, b0 := convert.YUV8ToRGBF32(y0, u, v)
				r1, g1, b1 := convert.YUV8ToRGBF32(y1, u, v)
				base := p * 24
				for j, c := range []float32{r0, g0, b0, r1, g1, b1} {
					putF32(decoded[base+j*4:], c)
				}
			}
		},
	}
}

// rgbgPairProcessors build the decoders shared by R8G8_B8G8 and G8R8_G8B8:
// each 4-byte unit carries a pair of pixels sharing one R and one B sample,
// with a G sample per pixel.
func rgbgPairProcessors(decodePair func(encoded []byte) (r, g0, b, g1 uint8)) [3]ProcessPixelsFn {
	return [3]ProcessPixelsFn{
		U8: func(encoded, decoded []byte) {
			pairs := len(decoded) / (2 * 3)
			for p := 0; p < pairs; p++ {
				r, g0, b, g1 := decodePair(encoded[p*4:])
				decoded[p*6+0], decoded[p*6+1], decoded[p*6+2] = r, g0, b
				decoded[p*6+3], decoded[p*6+4], decoded[p*6+5] = r, g1, b
			}
		},
		U16: func(encoded, decoded []byte) {
			pairs := len(decoded) / (2 * 6)
			for p := 0; p < pairs; p++ {
				r, g0, b, g1 := decodePair(encoded[p*4:])
				base := p * 12
				for j, c := range []uint8{r, g0, b, r, g1, b} {
					binary.LittleEndian.PutUint16(decoded[base+j*2:], convert.N8ToN16(c))
				}
			}
		},
		F32: func(encoded, decoded []byte) {
			pairs := len(decoded) / (2 * 12)
			for p := 0; p < pairs; p++ {
				r, g0, b, g1 := decodePair(encoded[p*4:])
				base := p * 24
				for j, c := range []uint8{r, g0, b, r, g1, b} {
					putF32(decoded[base+j*4:], convert.N8ToF32Exact(c))
				}
			}
		},
	}
}

func rgbgProcessors() [3]ProcessPixelsFn {
	return rgbgPairProcessors(func(encoded []byte) (r, g0, b, g1 uint8) {
		return encoded[0], encoded[1], encoded[2], encoded[3]
	})
}

func grgbProcessors() [3]ProcessPixelsFn {
	return rgbgPairProcessors(func(encoded []byte) (r, g0, b, g1 uint8) {
		return encoded[1], encoded[0], encoded[3], encoded[2]
	})
}

// y216PairProcessors build the decoders shared by Y216 and Y210: each
// 8-byte unit is four little-endian u16 samples (Y0,U,Y1,V) at 16-bit
// precision; Y210 stores its 10-bit samples in the words' top bits, so
// decoding it as 16-bit YUV is exact.
func y216PairProcessors() [3]ProcessPixelsFn {
	decodePair := func(encoded []byte) (y0, u, y1, v uint16) {
		return binary.LittleEndian.Uint16(encoded[0:]),
			binary.LittleEndian.Uint16(encoded[2:]),
			binary.LittleEndian.Uint16(encoded[4:]),
			binary.LittleEndian.Uint16(encoded[6:])
	}
	return [3]ProcessPixelsFn{
		U8: func(encoded, decoded []byte) {
			pairs := len(decoded) / (2 * 3)
			for p := 0; p < pairs; p++ {
				y0, u, y1, v := decodePair(encoded[p*8:])
				r0, g0, b0 := convert.YUV16ToRGBN8(y0, u, v)
				r1, g1, b1 := convert.YUV16ToRGBN8(y1, u, v)
				decoded[p*6+0], decoded[p*6+1], decoded[p*6+2] = r0, g0, b0
				decoded[p*6+3], decoded[p*6+4], decoded[p*6+5] = r1, g1, b1
			}
		},
		U16: func(encoded, decoded []byte) {
			pairs := len(decoded) / (2 * 6)
			for p := 0; p < pairs; p++ {
				y0, u, y1, v := decodePair(encoded[p*8:])
				r0, g0, b0 := convert.YUV16ToRGBN16(y0, u, v)
				r1, g1, b1 := convert.YUV16ToRGBN16(y1, u, v)
				base := p * 12
				for j, c := range []uint16{r0, g0, b0, r1, g1, b1} {
					binary.LittleEndian.PutUint16(decoded[base+j*2:], c)
				}
			}
		},
		F32: func(encoded, decoded []byte) {
			pairs := len(decoded) / (2 * 12)
			for p := 0; p < pairs; p++ {
				y0, u, y1, v := decodePair(encoded[p*8:])
				r0, g0, b0 := convert.YUV16ToRGBF32(y0, u, v)
				r1, g1, b1 := convert.YUV16ToRGBF32(y1, u, v)
				base := p * 24
				for j, c := range []float32{r0, g0, b0, r1, g1, b1} {
					putF32(decoded[base+j*4:], c)
				}
			}
		},
	}
}

// y410Processors decode Y410: A2V10U10Y10 packed into one 32-bit word.
func y410Processors() [3]ProcessPixelsFn {
	extract := func(word uint32) (y, u, v uint16, a uint8) {
		return uint16(word & 0x3FF), uint16((word >> 10) & 0x3FF), uint16((word >> 20) & 0x3FF), uint8((word >> 30) & 0x3)
	}
	return [3]ProcessPixelsFn{
		U8: func(encoded, decoded []byte) {
			n := len(decoded) / 4
			for i := 0; i < n; i++ {
				word := binary.LittleEndian.Uint32(encoded[i*4:])
				y, u, v, a := extract(word)
				r, g, b := convert.YUV10ToRGBN8(y, u, v)
				decoded[i*4+0], decoded[i*4+1], decoded[i*4+2] = r, g, b
				decoded[i*4+3] = convert.UnormToN8(2, uint32(a))
			}
		},
		U16: func(encoded, decoded []byte) {
			n := len(decoded) / 8
			for i := 0; i < n; i++ {
				word := binary.LittleEndian.Uint32(encoded[i*4:])
				y, u, v, a := extract(word)
				r, g, b := convert.YUV10ToRGBN16(y, u, v)
				binary.LittleEndian.PutUint16(decoded[(i*4+0)*2:], r)
				binary.LittleEndian.PutUint16(decoded[(i*4+1)*2:], g)
				binary.LittleEndian.PutUint16(decoded[(i*4+2)*2:], b)
				binary.LittleEndian.PutUint16(decoded[(i*4+3)*2:], convert.UnormToN16(2, uint32(a)))
			}
		},
		F32: func(encoded, decoded []byte) {
			n := len(decoded) / 16
			for i := 0; i < n; i++ {
				word := binary.LittleEndian.Uint32(encoded[i*4:])
				y, u, v, a := extract(word)
				rf, gf, bf := convert.YUV10ToRGBF32(y, u, v)
				putF32(decoded[(i*4+0)*4:], rf)
				putF32(decoded[(i*4+1)*4:], gf)
				putF32(decoded[(i*4+2)*4:], bf)
				putF32(decoded[(i*4+3)*4:], convert.UnormToF32Exact(2, uint32(a)))
			}
		},
	}
}

// y416Processors decode Y416: U16 V,Y,U,A quadruplet per pixel.
func y416Processors() [3]ProcessPixelsFn {
	return [3]ProcessPixelsFn{
		U8: func(encoded, decoded []byte) {
			n := len(decoded) / 4
			for i := 0; i < n; i++ {
				v := binary.LittleEndian.Uint16(encoded[i*8+0:])
				y := binary.LittleEndian.Uint16(encoded[i*8+2:])
				u := binary.LittleEndian.Uint16(encoded[i*8+4:])
				a := binary.LittleEndian.Uint16(encoded[i*8+6:])
				r, g, b := convert.YUV16ToRGBN8(y, u, v)
				decoded[i*4+0], decoded[i*4+1], decoded[i*4+2] = r, g, b
				decoded[i*4+3] = convert.N16ToN8(a)
			}
		},
		U16: func(encoded, decoded []byte) {
			n := len(decoded) / 8
			for i := 0; i < n; i++ {
				v := binary.LittleEndian.Uint16(encoded[i*8+0:])
				y := binary.LittleEndian.Uint16(encoded[i*8+2:])
				u := binary.LittleEndian.Uint16(encoded[i*8+4:])
				a := binary.LittleEndian.Uint16(encoded[i*8+6:])
				r, g, b := convert.YUV16ToRGBN16(y, u, v)
				binary.LittleEndian.PutUint16(decoded[(i*4+0)*2:], r)
				binary.LittleEndian.PutUint16(decoded[(i*4+1)*2:], g)
				binary.LittleEndian.PutUint16(decoded[(i*4+2)*2:], b)
				binary.LittleEndian.PutUint16(decoded[(i*4+3)*2:], a)
			}
		},
		F32: func(encoded, decoded []byte) {
			n := len(decoded) / 16
			for i := 0; i < n; i++ {
				v := binary.LittleEndian.Uint16(encoded[i*8+0:])
				y := binary.LittleEndian.Uint16(encoded[i*8+2:])
				u := binary.LittleEndian.Uint16(encoded[i*8+4:])
				a := binary.LittleEndian.Uint16(encoded[i*8+6:])
				rf, gf, bf := convert.YUV16ToRGBF32(y, u, v)
				putF32(decoded[(i*4+0)*4:], rf)
				putF32(decoded[(i*4+1)*4:], gf)
				putF32(decoded[(i*4+2)*4:], bf)
				putF32(decoded[(i*4+3)*4:], convert.N16ToF32(a))
			}
		},
	}
}
