/*
DESCRIPTION
  encode.go implements the encode-side mirror of decode.go: the caller's
  input pixels (in an arbitrary ColorFormat) are normalized to an
  RGBA-F32 intermediate, then handed to the Format's EncodePixels function
  (non-block formats) or to one block's worth of bcn encoder (block
  formats), which writes the format's native encoded bytes. Bit-exactness
  is a decode-only requirement (spec.md §9); every encoder here is an
  approximation, same as the DirectX reference's own encoders.

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
	"io"
	"math"

	"github.com/ddsgo/dds/codec/ddsfmt/convert"
)

// encodeTileP is the pixel count of the intermediate RGBA-F32 buffer used
// to encode one tile at a time of a non-block format, bounding peak memory
// independently of image size.
const encodeTileP = 512

// EncodePixelsFn converts exactly len(rgbaF32)/16 pixels of RGBA-F32 input
// into a Format's encoded byte form, appending to (or filling) encoded.
type EncodePixelsFn func(rgbaF32 []byte, encoded []byte)

// Encode writes size.Pixels() pixels from in (in the given ColorFormat) to
// w in Format's encoded form.
func Encode(f Format, in []byte, color ColorFormat, size Size, w io.Writer) error {
	pixels := int(size.Pixels())
	bpp := color.BytesPerPixel()
	if len(in) != pixels*bpp {
		return &UnexpectedBufferSize{Expected: pixels * bpp, Actual: len(in)}
	}

	if f.blockCompressed() {
		if !Supports(f, color) {
			return &UnsupportedColorFormat{Format: f, Color: color}
		}
		return encodeBlockFormat(f, in, color, size, w)
	}

	layout, ok := formatLayouts[f]
	if !ok {
		return &UnsupportedColorFormat{Format: f, Color: color}
	}
	return encodeUncompressed(layout, in, color, size, w)
}

// encodeUncompressed widens encodeTileP pixels at a time to RGBA-F32 and
// hands them to the format's EncodePixelsFn. Formats whose encoded unit
// spans more than one pixel go through the row-at-a-time path instead,
// since their units must not straddle row boundaries.
func encodeUncompressed(layout formatLayout, in []byte, color ColorFormat, size Size, w io.Writer) error {
	if layout.UnitPixels > 1 {
		return encodeSubsampled(layout, in, color, size, w)
	}

	pixels := int(size.Pixels())
	bpp := color.BytesPerPixel()

	var rgbaTile [encodeTileP * 16]byte
	outTile := make([]byte, layout.encodedBytes(encodeTileP))

	done := 0
	for done < pixels {
		n := pixels - done
		if n > encodeTileP {
			n = encodeTileP
		}

		chunk := in[done*bpp : (done+n)*bpp]
		toRGBAF32(chunk, color.Channels, color.Precision, n, rgbaTile[:n*16])

		outLen := layout.encodedBytes(n)
		layout.Encode(rgbaTile[:n*16], outTile[:outLen])

		if _, err := w.Write(outTile[:outLen]); err != nil {
			return WrapIO(err, "ddsfmt: writing encoded tile")
		}
		done += n
	}
	return nil
}

// encodeSubsampled encodes one image row at a time: each row rounds up to
// a whole number of encoded units independently, and a final partial unit
// is padded by repeating the row's last in-range pixel.
func encodeSubsampled(layout formatLayout, in []byte, color ColorFormat, size Size, w io.Writer) error {
	bpp := color.BytesPerPixel()
	rowPixels := int(size.Width)
	rows := int(size.Height) * int(size.Depth)
	padded := ((rowPixels + layout.UnitPixels - 1) / layout.UnitPixels) * layout.UnitPixels

	rgbaRow := make([]byte, padded*16)
	outRow := make([]byte, layout.encodedBytes(rowPixels))

	for row := 0; row < rows; row++ {
		chunk := in[row*rowPixels*bpp : (row+1)*rowPixels*bpp]
		toRGBAF32(chunk, color.Channels, color.Precision, rowPixels, rgbaRow[:rowPixels*16])
		for p := rowPixels; p < padded; p++ {
			copy(rgbaRow[p*16:(p+1)*16], rgbaRow[(rowPixels-1)*16:rowPixels*16])
		}

		layout.Encode(rgbaRow, outRow)
		if _, err := w.Write(outRow); err != nil {
			return WrapIO(err, "ddsfmt: writing encoded row")
		}
	}
	return nil
}

// encodeBlockFormat iterates 4x4 tiles over the image (rather than flat
// runs of 16 pixels, which would split incorrectly whenever width isn't a
// multiple of 4), clamping out-of-bounds edge texels to the nearest
// in-bounds one.
func encodeBlockFormat(f Format, in []byte, color ColorFormat, size Size, w io.Writer) error {
	bpp := color.BytesPerPixel()
	width, height, depth := int(size.Width), int(size.Height), int(size.Depth)
	rowBytes := width * bpp
	blocksPerRow := (width + 3) / 4
	blockRows := (height + 3) / 4

	for d := 0; d < depth; d++ {
		planeOffset := d * height * rowBytes
		for by := 0; by < blockRows; by++ {
			for bx := 0; bx < blocksPerRow; bx++ {
				var px [16][4]float32
				for ty := 0; ty < 4; ty++ {
					py := by*4 + ty
					if py >= height {
						py = height - 1
					}
					for tx := 0; tx < 4; tx++ {
						sx := bx*4 + tx
						if sx >= width {
							sx = width - 1
						}
						srcOff := planeOffset + py*rowBytes + sx*bpp
						px[ty*4+tx] = pixelToRGBAF32(in[srcOff:srcOff+bpp], color.Channels, color.Precision)
					}
				}
				block := encodeOneBlock(f, px)
				if _, err := w.Write(block); err != nil {
					return WrapIO(err, "ddsfmt: writing block")
				}
			}
		}
	}
	return nil
}

func pixelToRGBAF32(src []byte, channels Channels, prec Precision) [4]float32 {
	var buf [16]byte
	toRGBAF32(src, channels, prec, 1, buf[:])
	return [4]float32{
		math.Float32frombits(binary.LittleEndian.Uint32(buf[0:])),
		math.Float32frombits(binary.LittleEndian.Uint32(buf[4:])),
		math.Float32frombits(binary.LittleEndian.Uint32(buf[8:])),
		math.Float32frombits(binary.LittleEndian.Uint32(buf[12:])),
	}
}

// toRGBAF32 widens pixelCount pixels from (channels,prec) to RGBA-F32,
// writing 16 bytes per pixel into out.
func toRGBAF32(in []byte, channels Channels, prec Precision, pixelCount int, out []byte) {
	n := channels.Count()
	f32 := make([]byte, pixelCount*n*4)

	switch prec {
	case F32:
		copy(f32, in)
	case U8:
		for i := 0; i < pixelCount*n; i++ {
			binary.LittleEndian.PutUint32(f32[i*4:], math.Float32bits(convert.N8ToF32(in[i])))
		}
	case U16:
		for i := 0; i < pixelCount*n; i++ {
			v := binary.LittleEndian.Uint16(in[i*2:])
			binary.LittleEndian.PutUint32(f32[i*4:], math.Float32bits(convert.N16ToF32(v)))
		}
	}

	if channels == RGBA {
		copy(out, f32)
		return
	}
	remapChunk(channels, RGBA, F32, pixelCount, f32, out)
}
