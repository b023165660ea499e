/*
DESCRIPTION
  header.go reads the DDS file header: the 4-byte magic, the 124-byte
  DDS_HEADER, its embedded 32-byte pixel format, and (for DX10+ files) the
  20-byte DDS_HEADER_DXT10 extension. All fields are little-endian, matching
  the on-disk layout Microsoft's DDS specification defines.

AUTHOR
  Mara Lindqvist <mara@ddsgo.dev>

LICENSE
  Copyright (C) 2026 the DDS-Go Authors. All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the DDS-Go Authors.
*/

// Package dds parses DDS file headers and exposes the data layout and
// resolved pixel Format a caller needs to drive codec/ddsfmt's Decode,
// DecodeRect, and Encode.
package dds

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// magic is the 4-byte signature at the start of every DDS file.
var magic = [4]byte{'D', 'D', 'S', ' '}

const headerSize = 124
const pixelFormatSize = 32
const dxt10Size = 20

// PixelFormatFlags is the DDS_PIXELFORMAT.dwFlags bitmask.
type PixelFormatFlags uint32

const (
	PFAlphaPixels PixelFormatFlags = 0x1
	PFAlpha       PixelFormatFlags = 0x2
	PFFourCC      PixelFormatFlags = 0x4
	PFPAL8        PixelFormatFlags = 0x20
	PFRGB         PixelFormatFlags = 0x40
	PFYUV         PixelFormatFlags = 0x200
	PFLuminance   PixelFormatFlags = 0x20000
	PFBumpDUDV    PixelFormatFlags = 0x80000

	PFRGBA            = PFRGB | PFAlphaPixels
	PFLuminanceAlpha  = PFLuminance | PFAlphaPixels
)

// FourCC is a 4-byte little-endian tag, either a 4-character code (e.g.
// "DXT1") or, per the legacy D3DFORMAT convention, a bare integer.
type FourCC uint32

func fourCC(s string) FourCC {
	return FourCC(binary.LittleEndian.Uint32([]byte(s)))
}

var (
	FourCCDXT1 = fourCC("DXT1")
	FourCCDXT2 = fourCC("DXT2")
	FourCCDXT3 = fourCC("DXT3")
	FourCCDXT4 = fourCC("DXT4")
	FourCCDXT5 = fourCC("DXT5")
	FourCCATI1 = fourCC("ATI1")
	FourCCATI2 = fourCC("ATI2")
	FourCCBC4U = fourCC("BC4U")
	FourCCBC4S = fourCC("BC4S")
	FourCCBC5U = fourCC("BC5U")
	FourCCBC5S = fourCC("BC5S")
	FourCCRXGB = fourCC("RXGB")
	FourCCRGBG = fourCC("RGBG")
	FourCCGRGB = fourCC("GRGB")
	FourCCUYVY = fourCC("UYVY")
	FourCCYUY2 = fourCC("YUY2")
	FourCCDX10 = fourCC("DX10")
)

// PixelFormat is DDS_PIXELFORMAT.
type PixelFormat struct {
	Flags       PixelFormatFlags
	FourCC      FourCC
	RGBBitCount uint32
	RBitMask    uint32
	GBitMask    uint32
	BBitMask    uint32
	ABitMask    uint32
}

// parsePixelFormat decodes the 32-byte DDS_PIXELFORMAT starting at buf[0].
// buf[0:4] is dwSize, always 32; not validated (permissive by default).
func parsePixelFormat(buf []byte) PixelFormat {
	return PixelFormat{
		Flags:       PixelFormatFlags(binary.LittleEndian.Uint32(buf[4:8])),
		FourCC:      FourCC(binary.LittleEndian.Uint32(buf[8:12])),
		RGBBitCount: binary.LittleEndian.Uint32(buf[12:16]),
		RBitMask:    binary.LittleEndian.Uint32(buf[16:20]),
		GBitMask:    binary.LittleEndian.Uint32(buf[20:24]),
		BBitMask:    binary.LittleEndian.Uint32(buf[24:28]),
		ABitMask:    binary.LittleEndian.Uint32(buf[28:32]),
	}
}

// HeaderFlags is DDS_HEADER.dwFlags.
type HeaderFlags uint32

const (
	HeaderFlagCaps        HeaderFlags = 0x1
	HeaderFlagHeight      HeaderFlags = 0x2
	HeaderFlagWidth       HeaderFlags = 0x4
	HeaderFlagPitch       HeaderFlags = 0x8
	HeaderFlagPixelFormat HeaderFlags = 0x1000
	HeaderFlagMipmapCount HeaderFlags = 0x20000
	HeaderFlagLinearSize  HeaderFlags = 0x80000
	HeaderFlagDepth       HeaderFlags = 0x800000
)

// Caps2 is DDS_HEADER.dwCaps2, identifying cube maps and volume textures.
type Caps2 uint32

const (
	Caps2CubeMap           Caps2 = 0x200
	Caps2CubeMapPositiveX  Caps2 = 0x400
	Caps2CubeMapNegativeX  Caps2 = 0x800
	Caps2CubeMapPositiveY  Caps2 = 0x1000
	Caps2CubeMapNegativeY  Caps2 = 0x2000
	Caps2CubeMapPositiveZ  Caps2 = 0x4000
	Caps2CubeMapNegativeZ  Caps2 = 0x8000
	Caps2CubeMapAllFaces         = Caps2CubeMapPositiveX | Caps2CubeMapNegativeX | Caps2CubeMapPositiveY | Caps2CubeMapNegativeY | Caps2CubeMapPositiveZ | Caps2CubeMapNegativeZ
	Caps2Volume            Caps2 = 0x200000
)

// Header is the 124-byte DDS_HEADER plus its embedded pixel format.
type Header struct {
	Flags           HeaderFlags
	Height          uint32
	Width           uint32
	PitchOrLinear   uint32
	Depth           uint32
	MipmapCount     uint32
	PixelFormat     PixelFormat
	Caps2           Caps2
	Dxt10           *HeaderDxt10
}

// ResourceDimension is DDS_HEADER_DXT10.resourceDimension.
type ResourceDimension uint32

const (
	ResourceDimensionUnknown   ResourceDimension = 0
	ResourceDimensionBuffer    ResourceDimension = 1
	ResourceDimensionTexture1D ResourceDimension = 2
	ResourceDimensionTexture2D ResourceDimension = 3
	ResourceDimensionTexture3D ResourceDimension = 4
)

// MiscFlags is DDS_HEADER_DXT10.miscFlag.
type MiscFlags uint32

const MiscFlagTextureCube MiscFlags = 0x4

// AlphaMode is the low 3 bits of DDS_HEADER_DXT10.miscFlags2.
type AlphaMode uint32

const (
	AlphaModeUnknown       AlphaMode = 0
	AlphaModeStraight      AlphaMode = 1
	AlphaModePremultiplied AlphaMode = 2
	AlphaModeOpaque        AlphaMode = 3
	AlphaModeCustom        AlphaMode = 4
)

// HeaderDxt10 is the DX10 header extension, present when
// PixelFormat.FourCC == FourCCDX10.
type HeaderDxt10 struct {
	DxgiFormat        DxgiFormat
	ResourceDimension ResourceDimension
	MiscFlag          MiscFlags
	ArraySize         uint32
	MiscFlags2        uint32
}

// AlphaMode returns the alpha mode declared in miscFlags2.
func (h HeaderDxt10) AlphaMode() AlphaMode {
	return AlphaMode(h.MiscFlags2 & 0x7)
}

// Options configures how Read interprets a DDS header.
type Options struct {
	// SkipMagicBytes assumes the magic bytes are absent and starts reading
	// the header immediately.
	SkipMagicBytes bool
	// MaxArraySize rejects headers whose DX10 array_size exceeds this
	// value, guarding against a maliciously large allocation request. Zero
	// means "use the default" (4096); to disable the limit entirely, set
	// this to math.MaxUint32.
	MaxArraySize uint32
	// Permissive, when true, tolerates and attempts to repair certain
	// invalid-but-common header values instead of rejecting the file. It
	// requires FileLen to be set to have any effect.
	Permissive bool
	// FileLen is the total size of the file in bytes, magic bytes
	// included. Only consulted when Permissive is true.
	FileLen uint64
}

// DefaultMaxArraySize is the max_array_size default (4096) per Options.
const DefaultMaxArraySize = 4096

func (o Options) maxArraySize() uint32 {
	if o.MaxArraySize == 0 {
		return DefaultMaxArraySize
	}
	return o.MaxArraySize
}

// ReadHeader reads a DDS header (magic, DDS_HEADER, and the DX10 extension
// if present) from r per options.
func ReadHeader(r io.Reader, options Options) (Header, error) {
	if !options.SkipMagicBytes {
		var m [4]byte
		if _, err := io.ReadFull(r, m[:]); err != nil {
			return Header{}, errors.Wrap(err, "dds: reading magic bytes")
		}
		if m != magic {
			return Header{}, &InvalidMagicBytes{Got: m}
		}
	}

	var buf [headerSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return Header{}, errors.Wrap(err, "dds: reading header")
	}

	h := Header{
		Flags:         HeaderFlags(binary.LittleEndian.Uint32(buf[4:8])),
		Height:        binary.LittleEndian.Uint32(buf[8:12]),
		Width:         binary.LittleEndian.Uint32(buf[12:16]),
		PitchOrLinear: binary.LittleEndian.Uint32(buf[16:20]),
		Depth:         binary.LittleEndian.Uint32(buf[20:24]),
		MipmapCount:   binary.LittleEndian.Uint32(buf[24:28]),
		Caps2:         Caps2(binary.LittleEndian.Uint32(buf[caps2Offset : caps2Offset+4])),
	}
	if h.MipmapCount == 0 {
		h.MipmapCount = 1
	}

	h.PixelFormat = parsePixelFormat(buf[pixelFormatOffset : pixelFormatOffset+pixelFormatSize])

	if h.PixelFormat.Flags&PFFourCC != 0 && h.PixelFormat.FourCC == FourCCDX10 {
		var ext [dxt10Size]byte
		if _, err := io.ReadFull(r, ext[:]); err != nil {
			return Header{}, errors.Wrap(err, "dds: reading DX10 header extension")
		}
		dxt10 := &HeaderDxt10{
			DxgiFormat:        DxgiFormat(binary.LittleEndian.Uint32(ext[0:4])),
			ResourceDimension: ResourceDimension(binary.LittleEndian.Uint32(ext[4:8])),
			MiscFlag:          MiscFlags(binary.LittleEndian.Uint32(ext[8:12])),
			ArraySize:         binary.LittleEndian.Uint32(ext[12:16]),
			MiscFlags2:        binary.LittleEndian.Uint32(ext[16:20]),
		}
		if dxt10.ArraySize > options.maxArraySize() {
			return Header{}, &ArraySizeTooBig{ArraySize: dxt10.ArraySize}
		}
		h.Dxt10 = dxt10
	}

	return h, nil
}

// pixelFormatOffset is dwSize+dwFlags+dwHeight+dwWidth+dwPitchOrLinearSize+
// dwDepth+dwMipMapCount (7 x 4 bytes) + dwReserved1 (11 x 4 bytes) = 72.
const pixelFormatOffset = 72

// caps2Offset is the offset of dwCaps2 within the 124-byte header:
// pixelFormatOffset (72) + pixel format (32) + dwCaps (4) = 108.
const caps2Offset = 108

// IsCubeMap reports whether h describes a cube map texture.
func (h Header) IsCubeMap() bool {
	return h.Caps2&Caps2CubeMap != 0
}

// IsVolume reports whether h describes a volume (3D) texture.
func (h Header) IsVolume() bool {
	return h.Caps2&Caps2Volume != 0 || (h.Dxt10 != nil && h.Dxt10.ResourceDimension == ResourceDimensionTexture3D)
}
