/*
DESCRIPTION
  packed.go implements the generic decode path for "packed uncompressed"
  formats: one little-endian word per pixel (1, 2 or 4 bytes) whose bits are
  sliced into per-channel Unorm-n fields. Most uncompressed DDS formats
  (B5G6R5, B4G4R4A4, R10G10B10A2, R8G8B8A8, ...) are an instance of this
  shape, differing only in word size and field layout, so one generic
  ProcessPixels builder serves all of them instead of one hand-written
  function per format.

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

// bitField is one channel's bit range within a packed word, offset from
// bit 0 (LSB).
type bitField struct {
	Offset, Width uint8
}

func (f bitField) extract(word uint32) uint32 {
	return (word >> f.Offset) & ((1 << f.Width) - 1)
}

// packedLayout describes one packed-uncompressed format: its word size in
// bytes and the bit field for each of its native channels, in channel
// order (R,G,B,A for RGB/RGBA; the single field for Grayscale/Alpha).
type packedLayout struct {
	WordBytes int
	Channels  Channels
	Fields    [4]bitField // only the first Channels.Count() entries are used
}

func readWord(wordBytes int, encoded []byte) uint32 {
	switch wordBytes {
	case 1:
		return uint32(encoded[0])
	case 2:
		return uint32(binary.LittleEndian.Uint16(encoded))
	case 3:
		return uint32(encoded[0]) | uint32(encoded[1])<<8 | uint32(encoded[2])<<16
	case 4:
		return binary.LittleEndian.Uint32(encoded)
	default:
		panic("ddsfmt: unsupported packed word size")
	}
}

// processorsFor builds the three (one per Precision) ProcessPixels
// functions for a packedLayout, the shape every Uncompressed DecoderSet
// entry needs.
func (l packedLayout) processorsFor() [3]ProcessPixelsFn {
	n := l.Channels.Count()
	return [3]ProcessPixelsFn{
		U8: func(encoded, decoded []byte) {
			pixels := len(decoded) / n
			for i := 0; i < pixels; i++ {
				word := readWord(l.WordBytes, encoded[i*l.WordBytes:])
				for c := 0; c < n; c++ {
					v := l.Fields[c].extract(word)
					decoded[i*n+c] = convert.UnormToN8(l.Fields[c].Width, v)
				}
			}
		},
		U16: func(encoded, decoded []byte) {
			pixels := len(decoded) / (n * 2)
			for i := 0; i < pixels; i++ {
				word := readWord(l.WordBytes, encoded[i*l.WordBytes:])
				for c := 0; c < n; c++ {
					v := l.Fields[c].extract(word)
					binary.LittleEndian.PutUint16(decoded[(i*n+c)*2:], convert.UnormToN16(l.Fields[c].Width, v))
				}
			}
		},
		F32: func(encoded, decoded []byte) {
			pixels := len(decoded) / (n * 4)
			for i := 0; i < pixels; i++ {
				word := readWord(l.WordBytes, encoded[i*l.WordBytes:])
				for c := 0; c < n; c++ {
					v := l.Fields[c].extract(word)
					f := convert.UnormToF32Exact(l.Fields[c].Width, v)
					binary.LittleEndian.PutUint32(decoded[(i*n+c)*4:], math.Float32bits(f))
				}
			}
		},
	}
}

// quantize rounds a clamped-[0,1] f32 value into a width-bit field.
func quantize(f float32, width uint8) uint32 {
	if f < 0 {
		f = 0
	} else if f > 1 {
		f = 1
	}
	max := float32((uint32(1) << width) - 1)
	return uint32(f*max + 0.5)
}

// nativeValues picks, from an RGBA-F32 pixel, the scalar values this
// layout's Channels cares about: R only for Grayscale (matching the
// library's RGB->Grayscale-takes-R rule), A only for Alpha, R/G/B for RGB,
// all four for RGBA.
func (l packedLayout) nativeValues(rgbaF32 []byte) [4]float32 {
	r := math.Float32frombits(binary.LittleEndian.Uint32(rgbaF32[0:]))
	g := math.Float32frombits(binary.LittleEndian.Uint32(rgbaF32[4:]))
	b := math.Float32frombits(binary.LittleEndian.Uint32(rgbaF32[8:]))
	a := math.Float32frombits(binary.LittleEndian.Uint32(rgbaF32[12:]))
	switch l.Channels {
	case Grayscale:
		return [4]float32{r}
	case Alpha:
		return [4]float32{a}
	case RGB:
		return [4]float32{r, g, b}
	default:
		return [4]float32{r, g, b, a}
	}
}

func writeWord(wordBytes int, dst []byte, word uint32) {
	switch wordBytes {
	case 1:
		dst[0] = byte(word)
	case 2:
		binary.LittleEndian.PutUint16(dst, uint16(word))
	case 3:
		dst[0], dst[1], dst[2] = byte(word), byte(word>>8), byte(word>>16)
	case 4:
		binary.LittleEndian.PutUint32(dst, word)
	}
}

// encoderFor builds the EncodePixelsFn for a packedLayout: an approximate
// (not bit-exact — bit-exactness is a decode-only requirement) quantization
// of each channel's F32 value into its bit field.
func (l packedLayout) encoderFor() EncodePixelsFn {
	n := l.Channels.Count()
	return func(rgbaF32, encoded []byte) {
		pixels := len(rgbaF32) / 16
		for i := 0; i < pixels; i++ {
			values := l.nativeValues(rgbaF32[i*16:])
			var word uint32
			for c := 0; c < n; c++ {
				word |= quantize(values[c], l.Fields[c].Width) << l.Fields[c].Offset
			}
			writeWord(l.WordBytes, encoded[i*l.WordBytes:], word)
		}
	}
}

// packedLayouts is the table of packed-uncompressed formats' bit layouts.
var packedLayouts = map[Format]packedLayout{
	R8Unorm: {WordBytes: 1, Channels: Grayscale, Fields: [4]bitField{{0, 8}}},
	A8Unorm: {WordBytes: 1, Channels: Alpha, Fields: [4]bitField{{0, 8}}},
	R8G8B8Unorm:   {WordBytes: 3, Channels: RGB, Fields: [4]bitField{{0, 8}, {8, 8}, {16, 8}}},
	B8G8R8Unorm:   {WordBytes: 3, Channels: RGB, Fields: [4]bitField{{16, 8}, {8, 8}, {0, 8}}},
	R8G8B8A8Unorm: {WordBytes: 4, Channels: RGBA, Fields: [4]bitField{{0, 8}, {8, 8}, {16, 8}, {24, 8}}},
	B8G8R8A8Unorm: {WordBytes: 4, Channels: RGBA, Fields: [4]bitField{{16, 8}, {8, 8}, {0, 8}, {24, 8}}},
	B8G8R8X8Unorm: {WordBytes: 4, Channels: RGB, Fields: [4]bitField{{16, 8}, {8, 8}, {0, 8}}},
	R16Unorm:      {WordBytes: 2, Channels: Grayscale, Fields: [4]bitField{{0, 16}}},
	B5G6R5Unorm:   {WordBytes: 2, Channels: RGB, Fields: [4]bitField{{11, 5}, {5, 6}, {0, 5}}},
	B5G5R5A1Unorm:    {WordBytes: 2, Channels: RGBA, Fields: [4]bitField{{10, 5}, {5, 5}, {0, 5}, {15, 1}}},
	B4G4R4A4Unorm:    {WordBytes: 2, Channels: RGBA, Fields: [4]bitField{{8, 4}, {4, 4}, {0, 4}, {12, 4}}},
	A4B4G4R4Unorm:    {WordBytes: 2, Channels: RGBA, Fields: [4]bitField{{12, 4}, {8, 4}, {4, 4}, {0, 4}}},
	R10G10B10A2Unorm: {WordBytes: 4, Channels: RGBA, Fields: [4]bitField{{0, 10}, {10, 10}, {20, 10}, {30, 2}}},
}
