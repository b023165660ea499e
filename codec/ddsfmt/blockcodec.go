/*
DESCRIPTION
  blockcodec.go bridges the per-block bcn decoders/encoders (which work in
  bcn.RGBA bytes, or for BC6H in half-float-as-float32 triples) to the
  engine's RGBA-F32 intermediate representation, the same shape Encode's
  toRGBAF32 and the channel adapter use elsewhere. decode.go/encode.go's
  block-format paths call through here once per 4x4 tile.

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
	"github.com/ddsgo/dds/codec/ddsfmt/bcn"
	"github.com/ddsgo/dds/codec/ddsfmt/convert"
)

// blockNativeChannels returns the Channels a block-compressed Format
// decodes to before channel adaptation: RGBA for the BC1/2/3/6H/7
// families, Grayscale for BC4 (single channel), and RGB for BC5 (two
// channels, carried in R and G; B is always 0 — this library's convention
// for a two-channel format with no native RG ColorFormat).
func blockNativeChannels(f Format) Channels {
	switch f {
	case BC4Unorm, BC4Snorm:
		return Grayscale
	case BC5Unorm, BC5Snorm:
		return RGB
	default:
		return RGBA
	}
}

func rgbaBytesToF32(px [16]bcn.RGBA) [16][4]float32 {
	var out [16][4]float32
	for i, p := range px {
		out[i] = [4]float32{
			convert.N8ToF32(p.R),
			convert.N8ToF32(p.G),
			convert.N8ToF32(p.B),
			convert.N8ToF32(p.A),
		}
	}
	return out
}

func f32ToRGBABytes(px [16][4]float32) [16]bcn.RGBA {
	var out [16]bcn.RGBA
	for i, p := range px {
		out[i] = bcn.RGBA{
			R: convert.FPToN8(p[0]),
			G: convert.FPToN8(p[1]),
			B: convert.FPToN8(p[2]),
			A: convert.FPToN8(p[3]),
		}
	}
	return out
}

// decodeBlockRGBAF32 decodes one encoded block of f (f.blockBytes() bytes)
// into 16 texels of RGBA in [0,1] (BC6H's RGB is unclamped HDR; its A is
// always 1, since BC6H carries no alpha).
func decodeBlockRGBAF32(f Format, block []byte) [16][4]float32 {
	switch f {
	case BC1Unorm, BC1UnormSRGB:
		return rgbaBytesToF32(bcn.DecodeBC1Block(block))
	case BC2Unorm, BC2UnormPremultiplied:
		return rgbaBytesToF32(bcn.DecodeBC2Block(block, f == BC2UnormPremultiplied))
	case BC3Unorm, BC3UnormPremultiplied:
		return rgbaBytesToF32(bcn.DecodeBC3Block(block, f == BC3UnormPremultiplied))
	case BC3UnormRXGB:
		return rgbaBytesToF32(bcn.DecodeBC3RXGBBlock(block))
	case BC4Unorm, BC4Snorm:
		vals := bcn.DecodeBC4Block(block, f == BC4Snorm)
		var out [16][4]float32
		for i, v := range vals {
			out[i] = [4]float32{convert.N8ToF32(v), 0, 0, 1}
		}
		return out
	case BC5Unorm, BC5Snorm:
		vals := bcn.DecodeBC5Block(block, f == BC5Snorm)
		var out [16][4]float32
		for i, v := range vals {
			out[i] = [4]float32{convert.N8ToF32(v[0]), convert.N8ToF32(v[1]), 0, 1}
		}
		return out
	case BC6HUF16, BC6HSF16:
		vals := bcn.DecodeBC6HBlock(block, f == BC6HSF16)
		var out [16][4]float32
		for i, v := range vals {
			out[i] = [4]float32{v[0], v[1], v[2], 1}
		}
		return out
	case BC7Unorm, BC7UnormSRGB:
		return rgbaBytesToF32(bcn.DecodeBC7Block(block))
	default:
		panic("ddsfmt: " + f.String() + " is not block-compressed")
	}
}

// encodeOneBlock encodes 16 RGBA-F32 texels into f's native block bytes.
func encodeOneBlock(f Format, px [16][4]float32) []byte {
	switch f {
	case BC1Unorm, BC1UnormSRGB:
		block := bcn.EncodeBC1Block(f32ToRGBABytes(px))
		return block[:]
	case BC2Unorm, BC2UnormPremultiplied:
		block := bcn.EncodeBC2Block(f32ToRGBABytes(px), f == BC2UnormPremultiplied)
		return block[:]
	case BC3Unorm, BC3UnormPremultiplied:
		block := bcn.EncodeBC3Block(f32ToRGBABytes(px), f == BC3UnormPremultiplied)
		return block[:]
	case BC3UnormRXGB:
		block := bcn.EncodeBC3RXGBBlock(f32ToRGBABytes(px))
		return block[:]
	case BC4Unorm, BC4Snorm:
		var r [16]uint8
		for i, p := range px {
			r[i] = convert.FPToN8(p[0])
		}
		block := bcn.EncodeBC4Block(r)
		return block[:]
	case BC5Unorm, BC5Snorm:
		var rg [16][2]uint8
		for i, p := range px {
			rg[i] = [2]uint8{convert.FPToN8(p[0]), convert.FPToN8(p[1])}
		}
		block := bcn.EncodeBC5Block(rg)
		return block[:]
	case BC6HUF16, BC6HSF16:
		var rgb [16][3]float32
		for i, p := range px {
			rgb[i] = [3]float32{p[0], p[1], p[2]}
		}
		block := bcn.EncodeBC6HBlock(rgb, f == BC6HSF16)
		return block[:]
	case BC7Unorm, BC7UnormSRGB:
		block := bcn.EncodeBC7Block(f32ToRGBABytes(px))
		return block[:]
	default:
		panic("ddsfmt: " + f.String() + " is not block-compressed")
	}
}
