/*
DESCRIPTION
  errors.go defines the container-layer error taxonomy: malformed magic
  bytes, an array_size that exceeds Options.MaxArraySize, and the three
  "format could not be resolved" errors (DXGI, FourCC, and DX9 bitmask
  pixel format), mirroring codec/ddsfmt's typed-error shape one layer up.

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

import "fmt"

// InvalidMagicBytes is returned when the first 4 bytes of the file aren't
// "DDS " and Options.SkipMagicBytes is false.
type InvalidMagicBytes struct {
	Got [4]byte
}

func (e *InvalidMagicBytes) Error() string {
	return fmt.Sprintf("dds: invalid magic bytes %q, want \"DDS \"", e.Got[:])
}

// ArraySizeTooBig is returned when a DX10 header's array_size exceeds
// Options.MaxArraySize.
type ArraySizeTooBig struct {
	ArraySize uint32
}

func (e *ArraySizeTooBig) Error() string {
	return fmt.Sprintf("dds: array_size %d exceeds the configured maximum", e.ArraySize)
}

// UnsupportedDxgiFormat is returned when a DX10 header names a DXGI format
// with no corresponding codec/ddsfmt Format.
type UnsupportedDxgiFormat struct {
	DxgiFormat DxgiFormat
}

func (e *UnsupportedDxgiFormat) Error() string {
	return fmt.Sprintf("dds: unsupported DXGI format %v", e.DxgiFormat)
}

// UnsupportedFourCC is returned when a DX9 header's FourCC tag names no
// corresponding codec/ddsfmt Format.
type UnsupportedFourCC struct {
	FourCC FourCC
}

func (e *UnsupportedFourCC) Error() string {
	return fmt.Sprintf("dds: unsupported FourCC %#08x", uint32(e.FourCC))
}

// UnsupportedPixelFormat is returned when a DX9 header's bitmask pixel
// format matches none of the known patterns.
type UnsupportedPixelFormat struct{}

func (e *UnsupportedPixelFormat) Error() string {
	return "dds: unsupported (mask-based) pixel format"
}

// InvalidHeader is returned when DataLayout computation cannot size a mip
// level: buildMipChain reports it when ddsfmt.EncodedSize does not know the
// format. Dimensions and offsets are not checked for overflow.
type InvalidHeader struct {
	Reason string
}

func (e *InvalidHeader) Error() string {
	return "dds: invalid header: " + e.Reason
}
