/*
DESCRIPTION
  dds.go ties Header, Format resolution, and DataLayout together into
  Decoder, the container layer's entry point: read a DDS header from a
  stream and learn everything codec/ddsfmt.Decode/DecodeRect needs (the
  Format, the per-surface Size, and the byte offset of each mip/array/cube
  level) without reading the pixel data itself. Options.Permissive enables
  the header-repair heuristics of original_source/src/lib.rs's
  create_layout_and_fix_header: some older or buggy encoders write headers
  whose declared layout doesn't match the file's actual length, and these
  heuristics guess the intended values from the (otherwise reliable) file
  length.

AUTHOR
  Mara Lindqvist <mara@ddsgo.dev>

LICENSE
  Copyright (C) 2026 the DDS-Go Authors. All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the DDS-Go Authors.
*/

package dds

import (
	"io"
	"math/bits"

	"github.com/ausocean/utils/logging"
	"github.com/ddsgo/dds/codec/ddsfmt"
)

// Decoder holds a parsed header, its resolved Format, and its DataLayout.
// After construction, the reader it was built from is positioned at the
// start of the data section; every Surface.Offset in Layout is relative to
// that position.
type Decoder struct {
	Header Header
	Format ddsfmt.Format
	Layout DataLayout
}

// NewDecoder reads a header from r per options, resolves its Format, and
// computes its DataLayout (repairing the header first if options.Permissive
// is set and repair is needed).
func NewDecoder(r io.Reader, options Options, log logging.Logger) (*Decoder, error) {
	header, err := ReadHeader(r, options)
	if err != nil {
		return nil, err
	}
	return newDecoderFromHeader(header, options, log)
}

func newDecoderFromHeader(header Header, options Options, log logging.Logger) (*Decoder, error) {
	format, err := FormatOf(header)
	if err != nil {
		return nil, err
	}

	var layout DataLayout
	if options.Permissive {
		layout, err = createLayoutAndFixHeader(&header, format, options, log)
	} else {
		layout, err = DataLayoutFromHeader(header, format)
	}
	if err != nil {
		return nil, err
	}

	return &Decoder{Header: header, Format: format, Layout: layout}, nil
}

// IsSRGB reports whether the decoded texture is tagged sRGB.
func (d *Decoder) IsSRGB() bool {
	return d.Header.IsSRGB()
}

func nonDataLen(header Header) uint64 {
	n := uint64(len(magic)) + headerSize
	if header.Dxt10 != nil {
		n += dxt10Size
	}
	return n
}

func expectedDataLen(header Header, options Options) (uint64, bool) {
	if options.FileLen == 0 {
		return 0, false
	}
	nonData := nonDataLen(header)
	if options.FileLen < nonData {
		return 0, false
	}
	return options.FileLen - nonData, true
}

// createLayoutAndFixHeader mirrors original_source's three repair
// heuristics, tried in order, each only kept if it makes the computed
// DataLen match the file's actual data length:
//  1. A DX10 array_size of 0 is repaired to 1 (some writers use 0 to mean
//     "one element"; this repair is applied unconditionally, since a
//     nonzero expected data length can never be produced by an empty
//     array).
//  2. A single cube map incorrectly stored with array_size == 6 (instead
//     of 1, with the x6 implied by the cube map flag) is repaired to 1.
//  3. An incorrect mipmap_count is replaced by one of four guesses: 1 (no
//     mipmaps), a full mip chain, an off-by-one-low, or an off-by-one-high
//     count.
//
// If none of these make the layout match, the original (possibly still
// wrong) layout is returned rather than an error: a best-effort layout is
// more useful to a caller than total failure.
func createLayoutAndFixHeader(header *Header, format ddsfmt.Format, options Options, log logging.Logger) (DataLayout, error) {
	current, currentErr := DataLayoutFromHeader(*header, format)

	expected, known := expectedDataLen(*header, options)
	if !known {
		return current, currentErr
	}
	if currentErr == nil && current.DataLen() == expected {
		return current, nil
	}

	// Repair 1: array_size == 0 -> 1.
	if expected > 0 && header.Dxt10 != nil && header.Dxt10.ArraySize == 0 {
		header.Dxt10.ArraySize = 1
		if layout, err := DataLayoutFromHeader(*header, format); err == nil {
			current, currentErr = layout, nil
			if layout.DataLen() == expected {
				logFix(log, "repaired array_size 0 -> 1")
				return layout, nil
			}
		}
	}

	// Repair 2: a single cube map with array_size == 6.
	if header.Dxt10 != nil &&
		header.Dxt10.ArraySize == 6 &&
		header.Dxt10.ResourceDimension == ResourceDimensionTexture2D &&
		header.Dxt10.MiscFlag&MiscFlagTextureCube != 0 {

		candidate := *header
		dxt10 := *header.Dxt10
		dxt10.ArraySize = 1
		candidate.Dxt10 = &dxt10
		if layout, err := DataLayoutFromHeader(candidate, format); err == nil && layout.DataLen() == expected {
			*header = candidate
			logFix(log, "repaired cube-map array_size 6 -> 1")
			return layout, nil
		}
	}

	// Repair 3: guess the mipmap count.
	maxDimension := header.Width
	if header.Height > maxDimension {
		maxDimension = header.Height
	}
	if header.Depth > maxDimension {
		maxDimension = header.Depth
	}
	maxLevels := uint32(32 - bits.LeadingZeros32(maxDimension))
	mipmap := header.MipmapCount
	for _, guess := range []uint32{1, maxLevels, mipmap - 1, mipmap + 1} {
		if guess == 0 {
			continue
		}
		candidate := *header
		candidate.MipmapCount = guess
		if layout, err := DataLayoutFromHeader(candidate, format); err == nil && layout.DataLen() == expected {
			*header = candidate
			logFix(log, "repaired mipmap_count guess")
			return layout, nil
		}
	}

	return current, currentErr
}

func logFix(log logging.Logger, msg string) {
	if log == nil {
		return
	}
	log.Debug(msg)
}
