/*
DESCRIPTION
  adapter.go implements the channel adapter: it rewrites a processor's
  native-channel-layout output into a caller-requested channel layout, using
  either a direct pass-through, a constant fill (for the Alpha<->non-alpha
  pairs that carry no shared information), or a per-pixel remap through a
  small stack-sized staging buffer.

  This is the only place in the package that reshapes channels; the numeric
  kernels and processors never mix channels.

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

// stagingPixels is the capacity, in pixels, of the adapter's internal
// staging buffer: 64 pixels of the largest possible pixel (RGBA-F32, 16
// bytes) is 1024 bytes, comfortably stack-sized.
const stagingPixels = 64

// maxPixelBytes is the byte size of the largest ColorFormat (RGBA * F32).
const maxPixelBytes = 16

// ProcessPixelsFn converts exactly decoded.len/decodedBPP consecutive
// pixels from encoded to decoded. It must be pure and retain no state
// between calls.
type ProcessPixelsFn func(encoded, decoded []byte)

// adaptChannels runs process (which consumes encodedBPP bytes per pixel and
// produces pixels in nativeChannels at prec) over pixelCount pixels and
// writes them in wantChannels/prec to out, applying fill or remap as
// needed. out must be exactly
// pixelCount*ColorFormat{wantChannels,prec}.BytesPerPixel() long.
func adaptChannels(nativeChannels, wantChannels Channels, prec Precision, encodedBPP, pixelCount int, process ProcessPixelsFn, encoded, out []byte) {
	if nativeChannels == wantChannels {
		process(encoded, out)
		return
	}

	if fillValue, isFill := constantFill(nativeChannels, wantChannels); isFill {
		fillConstant(wantChannels, prec, fillValue, out)
		return
	}

	nativeBPP := ColorFormat{nativeChannels, prec}.BytesPerPixel()
	wantBPP := ColorFormat{wantChannels, prec}.BytesPerPixel()

	var nativeStage [stagingPixels * maxPixelBytes]byte
	var wantStage [stagingPixels * maxPixelBytes]byte

	done := 0
	for done < pixelCount {
		n := pixelCount - done
		if n > stagingPixels {
			n = stagingPixels
		}

		nativeChunk := nativeStage[:n*nativeBPP]
		wantChunk := wantStage[:n*wantBPP]
		encChunk := encoded[done*encodedBPP : (done+n)*encodedBPP]

		process(encChunk, nativeChunk)
		remapChunk(nativeChannels, wantChannels, prec, n, nativeChunk, wantChunk)

		copy(out[done*wantBPP:(done+n)*wantBPP], wantChunk)
		done += n
	}
}

// constantFill reports whether (from,to) is one of the Alpha<->non-alpha
// pairs that carry no shared information, and if so the fill value: 1
// when the target is Alpha and the source carries no alpha (to==Alpha), 0
// when the source is Alpha and the target carries no alpha channel to hold
// it (from==Alpha).
func constantFill(from, to Channels) (one bool, isFill bool) {
	if to == Alpha && from != Alpha && from != RGBA {
		return true, true
	}
	if from == Alpha && to != Alpha && to != RGBA {
		return false, true
	}
	return false, false
}

func fillConstant(to Channels, prec Precision, one bool, out []byte) {
	size := prec.Size()
	var value []byte
	switch prec {
	case U8:
		if one {
			value = []byte{0xFF}
		} else {
			value = []byte{0x00}
		}
	case U16:
		if one {
			value = []byte{0xFF, 0xFF}
		} else {
			value = []byte{0x00, 0x00}
		}
	case F32:
		if one {
			value = []byte{0x00, 0x00, 0x80, 0x3F} // 1.0f LE
		} else {
			value = []byte{0x00, 0x00, 0x00, 0x00}
		}
	}
	for i := 0; i < len(out); i += size {
		copy(out[i:i+size], value)
	}
}

// remapChunk applies the per-pixel channel mapping for the pairs spec.md
// §4.2 lists explicitly (everything not handled by constantFill).
func remapChunk(from, to Channels, prec Precision, n int, in, out []byte) {
	size := prec.Size()
	fromBPP := from.Count() * size
	toBPP := to.Count() * size

	one := oneBytes(prec)

	for i := 0; i < n; i++ {
		src := in[i*fromBPP : (i+1)*fromBPP]
		dst := out[i*toBPP : (i+1)*toBPP]

		switch {
		case from == Grayscale && to == RGB:
			copy(dst[0*size:1*size], src)
			copy(dst[1*size:2*size], src)
			copy(dst[2*size:3*size], src)
		case from == Grayscale && to == RGBA:
			copy(dst[0*size:1*size], src)
			copy(dst[1*size:2*size], src)
			copy(dst[2*size:3*size], src)
			copy(dst[3*size:4*size], one)
		case from == RGB && to == Grayscale:
			copy(dst[0:size], src[0:size]) // R channel only, not luminance.
		case from == RGBA && to == Grayscale:
			copy(dst[0:size], src[0:size])
		case from == RGB && to == RGBA:
			copy(dst[0:3*size], src)
			copy(dst[3*size:4*size], one)
		case from == RGBA && to == RGB:
			copy(dst, src[0:3*size])
		case from == RGBA && to == Alpha:
			copy(dst[0:size], src[3*size:4*size])
		case from == Alpha && to == RGBA:
			for c := 0; c < 3; c++ {
				clearBytes(dst[c*size : (c+1)*size])
			}
			copy(dst[3*size:4*size], src)
		default:
			panic("ddsfmt: unhandled channel remap " + from.String() + "->" + to.String())
		}
	}
}

// adaptDecoded reshapes n pixels already decoded in nativeChannels/prec
// into wantChannels/prec, writing to out. Unlike adaptChannels it takes an
// already-decoded buffer rather than a ProcessPixelsFn + encoded bytes; used
// by the row-streaming and block-format decode paths once a tile has been
// produced in its native channel layout.
func adaptDecoded(nativeChannels, wantChannels Channels, prec Precision, n int, native, out []byte) {
	if nativeChannels == wantChannels {
		copy(out, native)
		return
	}
	if fillValue, isFill := constantFill(nativeChannels, wantChannels); isFill {
		fillConstant(wantChannels, prec, fillValue, out)
		return
	}
	remapChunk(nativeChannels, wantChannels, prec, n, native, out)
}

func oneBytes(p Precision) []byte {
	switch p {
	case U8:
		return []byte{0xFF}
	case U16:
		return []byte{0xFF, 0xFF}
	default:
		return []byte{0x00, 0x00, 0x80, 0x3F}
	}
}

func clearBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
