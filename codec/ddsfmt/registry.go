/*
DESCRIPTION
  registry.go ties every non-block-compressed Format to its native channel
  layout and its decode/encode closures, the single table Decode and Encode
  dispatch through. Block-compressed formats (BC1-BC7) are not in this
  table: their native unit is a 4x4 pixel block rather than a per-pixel or
  per-packed-word stream, so they are dispatched separately in blockcodec.go.

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

// formatLayout is one non-block Format's native shape: the Channels its
// decoders produce before channel adaptation, the pixel/byte granularity
// of one encoded "unit" (1 pixel for almost everything, 8 for R1Unorm's
// bit-packing, 2 for YUY2's 4:2:2 pairing), and its decode/encode
// closures.
type formatLayout struct {
	Native     Channels
	UnitPixels int
	UnitBytes  int
	Decode     [3]ProcessPixelsFn
	Encode     EncodePixelsFn
}

// encodedBytes returns the encoded byte length for pixelCount pixels of
// this layout, rounding up to a whole unit (relevant only to R1Unorm and
// the pair-packed formats RGBG/GRGB, YUY2/UYVY and Y210/Y216; every other
// layout has UnitPixels == 1).
func (l formatLayout) encodedBytes(pixelCount int) int {
	units := (pixelCount + l.UnitPixels - 1) / l.UnitPixels
	return units * l.UnitBytes
}

var formatLayouts map[Format]formatLayout

func init() {
	formatLayouts = make(map[Format]formatLayout, len(packedLayouts)+32)

	for f, l := range packedLayouts {
		formatLayouts[f] = formatLayout{
			Native:     l.Channels,
			UnitPixels: 1,
			UnitBytes:  l.WordBytes,
			Decode:     l.processorsFor(),
			Encode:     l.encoderFor(),
		}
	}

	formatLayouts[R8Snorm] = formatLayout{Grayscale, 1, 1, r8SnormProcessors(), r8SnormEncoder()}
	formatLayouts[R16Snorm] = formatLayout{Grayscale, 1, 2, r16SnormProcessors(), r16SnormEncoder()}
	formatLayouts[R8G8Unorm] = formatLayout{RGB, 1, 2, r8g8UnormProcessors(), r8g8UnormEncoder()}
	formatLayouts[R8G8Snorm] = formatLayout{RGB, 1, 2, r8g8SnormProcessors(), r8g8SnormEncoder()}
	formatLayouts[R16G16Unorm] = formatLayout{RGB, 1, 4, r16g16UnormProcessors(), r16g16UnormEncoder()}
	formatLayouts[R16G16Snorm] = formatLayout{RGB, 1, 4, r16g16SnormProcessors(), r16g16SnormEncoder()}
	formatLayouts[R16G16B16A16Unorm] = formatLayout{RGBA, 1, 8, r16g16b16a16UnormProcessors(), r16g16b16a16UnormEncoder()}
	formatLayouts[R16G16B16A16Snorm] = formatLayout{RGBA, 1, 8, r16g16b16a16SnormProcessors(), r16g16b16a16SnormEncoder()}
	formatLayouts[R8G8B8A8Snorm] = formatLayout{RGBA, 1, 4, r8g8b8a8SnormProcessors(), r8g8b8a8SnormEncoder()}
	formatLayouts[R10G10B10XRBiasA2Unorm] = formatLayout{RGBA, 1, 4, r10g10b10XrBiasA2UnormProcessors(), r10g10b10XrBiasA2UnormEncoder()}
	formatLayouts[R1Unorm] = formatLayout{Grayscale, 8, 1, r1UnormProcessors(), r1UnormEncoder()}
	formatLayouts[R16Float] = formatLayout{Grayscale, 1, 2, r16FloatProcessors(), r16FloatEncoder()}
	formatLayouts[R16G16Float] = formatLayout{RGB, 1, 4, r16g16FloatProcessors(), r16g16FloatEncoder()}
	formatLayouts[R16G16B16A16Float] = formatLayout{RGBA, 1, 8, r16g16b16a16FloatProcessors(), r16g16b16a16FloatEncoder()}
	formatLayouts[R32Float] = formatLayout{Grayscale, 1, 4, r32FloatProcessors(), r32FloatEncoder()}
	formatLayouts[R32G32Float] = formatLayout{RGB, 1, 8, r32g32FloatProcessors(), r32g32FloatEncoder()}
	formatLayouts[R32G32B32Float] = formatLayout{RGB, 1, 12, r32g32b32FloatProcessors(), r32g32b32FloatEncoder()}
	formatLayouts[R32G32B32A32Float] = formatLayout{RGBA, 1, 16, r32g32b32a32FloatProcessors(), r32g32b32a32FloatEncoder()}
	formatLayouts[R11G11B10Float] = formatLayout{RGB, 1, 4, r11g11b10FloatProcessors(), r11g11b10FloatEncoder()}
	formatLayouts[R9G9B9E5SharedExp] = formatLayout{RGB, 1, 4, r9g9b9e5SharedExpProcessors(), r9g9b9e5SharedExpEncoder()}
	formatLayouts[AYUV] = formatLayout{RGBA, 1, 4, ayuvProcessors(), ayuvEncoder()}
	formatLayouts[Y410] = formatLayout{RGBA, 1, 4, y410Processors(), y410Encoder()}
	formatLayouts[Y416] = formatLayout{RGBA, 1, 8, y416Processors(), y416Encoder()}
	formatLayouts[R8G8B8G8Unorm] = formatLayout{RGB, 2, 4, rgbgProcessors(), rgbgEncoder()}
	formatLayouts[G8R8G8B8Unorm] = formatLayout{RGB, 2, 4, grgbProcessors(), grgbEncoder()}
	formatLayouts[YUY2] = formatLayout{RGB, 2, 4, yuy2Processors(), yuy2Encoder()}
	formatLayouts[UYVY] = formatLayout{RGB, 2, 4, uyvyProcessors(), uyvyEncoder()}
	formatLayouts[Y210] = formatLayout{RGB, 2, 8, y216PairProcessors(), y210Encoder()}
	formatLayouts[Y216] = formatLayout{RGB, 2, 8, y216PairProcessors(), y216Encoder()}
}

// Supports reports whether f can decode to or encode from color.
func Supports(f Format, color ColorFormat) bool {
	if f.blockCompressed() {
		if _, ok := blockPrecisionSupported(f, color.Precision); !ok {
			return false
		}
		return true
	}
	_, ok := formatLayouts[f]
	return ok
}

// SupportedChannels returns the set of Channels a decode of f can adapt to;
// the channel adapter (adapter.go) can reach every Channels value from any
// native Channels, so this is always the full set once f is known at all.
func SupportedChannels(f Format) []Channels {
	if f.blockCompressed() {
		return allChannels[:]
	}
	if _, ok := formatLayouts[f]; ok {
		return allChannels[:]
	}
	return nil
}

// SupportedPrecisions returns the set of Precisions f supports. Every
// format supports all three via its numeric kernels, except BC6H, which is
// HDR data with no natural Unorm range and is restricted to F32.
func SupportedPrecisions(f Format) []Precision {
	if f == BC6HUF16 || f == BC6HSF16 {
		return []Precision{F32}
	}
	if Supports(f, ColorFormat{RGBA, U8}) || f.blockCompressed() {
		return allPrecisions[:]
	}
	return nil
}

func blockPrecisionSupported(f Format, p Precision) (Precision, bool) {
	if f == BC6HUF16 || f == BC6HSF16 {
		if p != F32 {
			return p, false
		}
	}
	return p, true
}

// EncodingSupport describes the caveats callers can query before calling
// Encode: whether the encoder dithers, how many rows must be grouped for a
// caller-side parallel split to reproduce sequential output, and the
// width granularity the encoded form imposes.
type EncodingSupport struct {
	// Dithering reports whether this library's encoder applies any
	// dithering. It never does: every encoder here is a deterministic
	// nearest/round-to-value quantizer.
	Dithering bool
	// SplitHeight is the number of rows that must stay grouped when a
	// caller splits an image for parallel encoding: 4 for block-compressed
	// formats (a block row), 1 for everything else.
	SplitHeight uint32
	// LocalDithering reports whether dithering error stays within one
	// chunk, making a parallel split bit-identical to sequential encoding.
	// True for block-compressed formats (trivially, since nothing dithers
	// and blocks are independent), false otherwise.
	LocalDithering bool
	// SizeMultiple is the granularity of this format's encoded form: 4 for
	// block-compressed formats, subsampleWidth() otherwise (2 for the
	// pair-packed formats, 1 for everything else). Encode also accepts
	// sizes that are not a multiple of it and pads the partial block or pair.
	SizeMultiple uint32
}

// GetEncodingSupport reports f's encoding caveats.
func GetEncodingSupport(f Format) EncodingSupport {
	if f.blockCompressed() {
		return EncodingSupport{Dithering: false, SplitHeight: 4, LocalDithering: true, SizeMultiple: 4}
	}
	return EncodingSupport{Dithering: false, SplitHeight: 1, LocalDithering: false, SizeMultiple: uint32(f.subsampleWidth())}
}
