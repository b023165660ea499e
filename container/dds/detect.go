/*
DESCRIPTION
  detect.go resolves a parsed Header to a codec/ddsfmt.Format: DXGI format
  codes for DX10+ headers, FourCC tags (including the legacy bare-integer
  D3DFORMAT codes written by older encoders) for DX9 headers, and the DX9
  bitmask pixel-format patterns for headers with neither a DX10 extension
  nor a recognized FourCC. The reverse direction (Format back to a DXGI
  code, FourCC tag, or mask descriptor, for writing headers) lives here
  too; not every Format round-trips (UYVY and the premultiplied/RXGB BC
  variants have no DXGI code, 24-bit RGB has no DXGI code, and most DX10-era
  formats have no DX9 mask). Grounded on original_source/src/detect.rs and
  format.rs; the only detection the tables here reduce away is the
  bi-planar family (NV12/P010/P016), whose two-plane data layout
  codec/ddsfmt does not carry.

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

import "github.com/ddsgo/dds/codec/ddsfmt"

// DxgiFormat is the subset of Microsoft's DXGI_FORMAT enumeration this
// library recognizes. Values match the public DXGI_FORMAT numbering.
type DxgiFormat uint32

const (
	DxgiUnknown                DxgiFormat = 0
	DxgiR32G32B32A32Typeless   DxgiFormat = 1
	DxgiR32G32B32A32Float      DxgiFormat = 2
	DxgiR32G32B32Typeless      DxgiFormat = 5
	DxgiR32G32B32Float         DxgiFormat = 6
	DxgiR16G16B16A16Typeless   DxgiFormat = 9
	DxgiR16G16B16A16Float      DxgiFormat = 10
	DxgiR16G16B16A16Unorm      DxgiFormat = 11
	DxgiR16G16B16A16Snorm      DxgiFormat = 13
	DxgiR32G32Typeless         DxgiFormat = 15
	DxgiR32G32Float            DxgiFormat = 16
	DxgiR10G10B10A2Typeless    DxgiFormat = 23
	DxgiR10G10B10A2Unorm       DxgiFormat = 24
	DxgiR11G11B10Float         DxgiFormat = 26
	DxgiR8G8B8A8Typeless       DxgiFormat = 27
	DxgiR8G8B8A8Unorm          DxgiFormat = 28
	DxgiR8G8B8A8UnormSRGB      DxgiFormat = 29
	DxgiR8G8B8A8Snorm          DxgiFormat = 31
	DxgiR16G16Typeless         DxgiFormat = 33
	DxgiR16G16Float            DxgiFormat = 34
	DxgiR16G16Unorm            DxgiFormat = 35
	DxgiR16G16Snorm            DxgiFormat = 37
	DxgiR32Typeless            DxgiFormat = 39
	DxgiR32Float               DxgiFormat = 41
	DxgiR8G8Typeless           DxgiFormat = 48
	DxgiR8G8Unorm              DxgiFormat = 49
	DxgiR8G8Snorm              DxgiFormat = 51
	DxgiR16Typeless            DxgiFormat = 53
	DxgiR16Float               DxgiFormat = 54
	DxgiR16Unorm               DxgiFormat = 56
	DxgiR16Snorm               DxgiFormat = 58
	DxgiR8Typeless             DxgiFormat = 60
	DxgiR8Unorm                DxgiFormat = 61
	DxgiR8Snorm                DxgiFormat = 63
	DxgiA8Unorm                DxgiFormat = 65
	DxgiR1Unorm                DxgiFormat = 66
	DxgiR9G9B9E5SharedExp      DxgiFormat = 67
	DxgiR8G8B8G8Unorm          DxgiFormat = 68
	DxgiG8R8G8B8Unorm          DxgiFormat = 69
	DxgiBC1Typeless            DxgiFormat = 70
	DxgiBC1Unorm               DxgiFormat = 71
	DxgiBC1UnormSRGB           DxgiFormat = 72
	DxgiBC2Typeless            DxgiFormat = 73
	DxgiBC2Unorm               DxgiFormat = 74
	DxgiBC2UnormSRGB           DxgiFormat = 75
	DxgiBC3Typeless            DxgiFormat = 76
	DxgiBC3Unorm               DxgiFormat = 77
	DxgiBC3UnormSRGB           DxgiFormat = 78
	DxgiBC4Typeless            DxgiFormat = 79
	DxgiBC4Unorm               DxgiFormat = 80
	DxgiBC4Snorm               DxgiFormat = 81
	DxgiBC5Typeless            DxgiFormat = 82
	DxgiBC5Unorm               DxgiFormat = 83
	DxgiBC5Snorm               DxgiFormat = 84
	DxgiB5G6R5Unorm            DxgiFormat = 85
	DxgiB5G5R5A1Unorm          DxgiFormat = 86
	DxgiB8G8R8A8Unorm          DxgiFormat = 87
	DxgiB8G8R8X8Unorm          DxgiFormat = 88
	DxgiR10G10B10XRBiasA2Unorm DxgiFormat = 89
	DxgiB8G8R8A8Typeless       DxgiFormat = 90
	DxgiB8G8R8A8UnormSRGB      DxgiFormat = 91
	DxgiB8G8R8X8Typeless       DxgiFormat = 92
	DxgiB8G8R8X8UnormSRGB      DxgiFormat = 93
	DxgiBC6HTypeless           DxgiFormat = 94
	DxgiBC6HUF16               DxgiFormat = 95
	DxgiBC6HSF16               DxgiFormat = 96
	DxgiBC7Typeless            DxgiFormat = 97
	DxgiBC7Unorm               DxgiFormat = 98
	DxgiBC7UnormSRGB           DxgiFormat = 99
	DxgiAYUV                   DxgiFormat = 100
	DxgiY410                   DxgiFormat = 101
	DxgiY416                   DxgiFormat = 102
	DxgiNV12                   DxgiFormat = 103
	DxgiP010                   DxgiFormat = 104
	DxgiP016                   DxgiFormat = 105
	DxgiYUY2                   DxgiFormat = 107
	DxgiY210                   DxgiFormat = 108
	DxgiY216                   DxgiFormat = 109
	DxgiB4G4R4A4Unorm          DxgiFormat = 115
	DxgiA4B4G4R4Unorm          DxgiFormat = 191
)

func (f DxgiFormat) String() string {
	if name, ok := dxgiNames[f]; ok {
		return name
	}
	return "DXGI_FORMAT(unknown)"
}

var dxgiNames = map[DxgiFormat]string{
	DxgiR8G8B8A8Unorm: "R8G8B8A8_UNORM", DxgiR8G8B8A8Snorm: "R8G8B8A8_SNORM",
	DxgiB8G8R8A8Unorm: "B8G8R8A8_UNORM", DxgiB8G8R8X8Unorm: "B8G8R8X8_UNORM",
	DxgiB5G6R5Unorm: "B5G6R5_UNORM", DxgiB5G5R5A1Unorm: "B5G5R5A1_UNORM",
	DxgiB4G4R4A4Unorm: "B4G4R4A4_UNORM", DxgiA4B4G4R4Unorm: "A4B4G4R4_UNORM",
	DxgiR8Unorm: "R8_UNORM", DxgiR8Snorm: "R8_SNORM",
	DxgiR8G8Unorm: "R8G8_UNORM", DxgiR8G8Snorm: "R8G8_SNORM",
	DxgiA8Unorm: "A8_UNORM", DxgiR16Unorm: "R16_UNORM", DxgiR16Snorm: "R16_SNORM",
	DxgiR16G16Unorm: "R16G16_UNORM", DxgiR16G16Snorm: "R16G16_SNORM",
	DxgiR16G16B16A16Unorm: "R16G16B16A16_UNORM", DxgiR16G16B16A16Snorm: "R16G16B16A16_SNORM",
	DxgiR10G10B10A2Unorm: "R10G10B10A2_UNORM",
	DxgiR10G10B10XRBiasA2Unorm: "R10G10B10_XR_BIAS_A2_UNORM", DxgiR1Unorm: "R1_UNORM",
	DxgiR16Float: "R16_FLOAT", DxgiR16G16Float: "R16G16_FLOAT",
	DxgiR16G16B16A16Float: "R16G16B16A16_FLOAT",
	DxgiR32Float: "R32_FLOAT", DxgiR32G32Float: "R32G32_FLOAT",
	DxgiR32G32B32Float: "R32G32B32_FLOAT", DxgiR32G32B32A32Float: "R32G32B32A32_FLOAT",
	DxgiR11G11B10Float: "R11G11B10_FLOAT", DxgiR9G9B9E5SharedExp: "R9G9B9E5_SHAREDEXP",
	DxgiR8G8B8G8Unorm: "R8G8_B8G8_UNORM", DxgiG8R8G8B8Unorm: "G8R8_G8B8_UNORM",
	DxgiAYUV: "AYUV", DxgiYUY2: "YUY2", DxgiY410: "Y410", DxgiY416: "Y416",
	DxgiY210: "Y210", DxgiY216: "Y216",
	DxgiBC1Unorm: "BC1_UNORM", DxgiBC2Unorm: "BC2_UNORM", DxgiBC3Unorm: "BC3_UNORM",
	DxgiBC4Unorm: "BC4_UNORM", DxgiBC4Snorm: "BC4_SNORM",
	DxgiBC5Unorm: "BC5_UNORM", DxgiBC5Snorm: "BC5_SNORM",
	DxgiBC6HUF16: "BC6H_UF16", DxgiBC6HSF16: "BC6H_SF16",
	DxgiBC7Unorm: "BC7_UNORM",
}

// IsSRGB reports whether f is one of the _SRGB DXGI variants.
func (f DxgiFormat) IsSRGB() bool {
	switch f {
	case DxgiR8G8B8A8UnormSRGB, DxgiB8G8R8A8UnormSRGB, DxgiB8G8R8X8UnormSRGB,
		DxgiBC1UnormSRGB, DxgiBC2UnormSRGB, DxgiBC3UnormSRGB, DxgiBC7UnormSRGB:
		return true
	default:
		return false
	}
}

// dxgiToFormat resolves a DxgiFormat to a codec/ddsfmt.Format.
func dxgiToFormat(f DxgiFormat) (ddsfmt.Format, bool) {
	switch f {
	case DxgiR8G8B8A8Typeless, DxgiR8G8B8A8Unorm, DxgiR8G8B8A8UnormSRGB:
		return ddsfmt.R8G8B8A8Unorm, true
	case DxgiR8G8B8A8Snorm:
		return ddsfmt.R8G8B8A8Snorm, true
	case DxgiB8G8R8A8Typeless, DxgiB8G8R8A8Unorm, DxgiB8G8R8A8UnormSRGB:
		return ddsfmt.B8G8R8A8Unorm, true
	case DxgiB8G8R8X8Typeless, DxgiB8G8R8X8Unorm, DxgiB8G8R8X8UnormSRGB:
		return ddsfmt.B8G8R8X8Unorm, true
	case DxgiR8Typeless, DxgiR8Unorm:
		return ddsfmt.R8Unorm, true
	case DxgiR8Snorm:
		return ddsfmt.R8Snorm, true
	case DxgiR8G8Typeless, DxgiR8G8Unorm:
		return ddsfmt.R8G8Unorm, true
	case DxgiR8G8Snorm:
		return ddsfmt.R8G8Snorm, true
	case DxgiA8Unorm:
		return ddsfmt.A8Unorm, true
	case DxgiR16Typeless, DxgiR16Unorm:
		return ddsfmt.R16Unorm, true
	case DxgiR16Snorm:
		return ddsfmt.R16Snorm, true
	case DxgiR16Float:
		return ddsfmt.R16Float, true
	case DxgiR16G16Typeless, DxgiR16G16Unorm:
		return ddsfmt.R16G16Unorm, true
	case DxgiR16G16Snorm:
		return ddsfmt.R16G16Snorm, true
	case DxgiR16G16Float:
		return ddsfmt.R16G16Float, true
	case DxgiR16G16B16A16Typeless, DxgiR16G16B16A16Unorm:
		return ddsfmt.R16G16B16A16Unorm, true
	case DxgiR16G16B16A16Snorm:
		return ddsfmt.R16G16B16A16Snorm, true
	case DxgiR16G16B16A16Float:
		return ddsfmt.R16G16B16A16Float, true
	case DxgiR32Typeless, DxgiR32Float:
		return ddsfmt.R32Float, true
	case DxgiR32G32Typeless, DxgiR32G32Float:
		return ddsfmt.R32G32Float, true
	case DxgiR32G32B32Typeless, DxgiR32G32B32Float:
		return ddsfmt.R32G32B32Float, true
	case DxgiR32G32B32A32Typeless, DxgiR32G32B32A32Float:
		return ddsfmt.R32G32B32A32Float, true
	case DxgiR10G10B10A2Typeless, DxgiR10G10B10A2Unorm:
		return ddsfmt.R10G10B10A2Unorm, true
	case DxgiR11G11B10Float:
		return ddsfmt.R11G11B10Float, true
	case DxgiR9G9B9E5SharedExp:
		return ddsfmt.R9G9B9E5SharedExp, true
	case DxgiR10G10B10XRBiasA2Unorm:
		return ddsfmt.R10G10B10XRBiasA2Unorm, true
	case DxgiB5G6R5Unorm:
		return ddsfmt.B5G6R5Unorm, true
	case DxgiB5G5R5A1Unorm:
		return ddsfmt.B5G5R5A1Unorm, true
	case DxgiB4G4R4A4Unorm:
		return ddsfmt.B4G4R4A4Unorm, true
	case DxgiA4B4G4R4Unorm:
		return ddsfmt.A4B4G4R4Unorm, true
	case DxgiR1Unorm:
		return ddsfmt.R1Unorm, true
	case DxgiR8G8B8G8Unorm:
		return ddsfmt.R8G8B8G8Unorm, true
	case DxgiG8R8G8B8Unorm:
		return ddsfmt.G8R8G8B8Unorm, true
	case DxgiAYUV:
		return ddsfmt.AYUV, true
	case DxgiYUY2:
		return ddsfmt.YUY2, true
	case DxgiY210:
		return ddsfmt.Y210, true
	case DxgiY216:
		return ddsfmt.Y216, true
	case DxgiY410:
		return ddsfmt.Y410, true
	case DxgiY416:
		return ddsfmt.Y416, true
	case DxgiBC1Typeless, DxgiBC1Unorm:
		return ddsfmt.BC1Unorm, true
	case DxgiBC1UnormSRGB:
		return ddsfmt.BC1UnormSRGB, true
	case DxgiBC2Typeless, DxgiBC2Unorm, DxgiBC2UnormSRGB:
		return ddsfmt.BC2Unorm, true
	case DxgiBC3Typeless, DxgiBC3Unorm, DxgiBC3UnormSRGB:
		return ddsfmt.BC3Unorm, true
	case DxgiBC4Typeless, DxgiBC4Unorm:
		return ddsfmt.BC4Unorm, true
	case DxgiBC4Snorm:
		return ddsfmt.BC4Snorm, true
	case DxgiBC5Typeless, DxgiBC5Unorm:
		return ddsfmt.BC5Unorm, true
	case DxgiBC5Snorm:
		return ddsfmt.BC5Snorm, true
	case DxgiBC6HTypeless, DxgiBC6HUF16:
		return ddsfmt.BC6HUF16, true
	case DxgiBC6HSF16:
		return ddsfmt.BC6HSF16, true
	case DxgiBC7Typeless, DxgiBC7Unorm:
		return ddsfmt.BC7Unorm, true
	case DxgiBC7UnormSRGB:
		return ddsfmt.BC7UnormSRGB, true
	default:
		return 0, false
	}
}

// fourCCToDxgi mirrors detect.rs's four_cc_to_dxgi: the handful of FourCC
// tags (including bare-integer legacy D3DFORMAT codes) with a direct DXGI
// equivalent.
func fourCCToDxgi(f FourCC) (DxgiFormat, bool) {
	switch f {
	case FourCCDXT1:
		return DxgiBC1Unorm, true
	case FourCCDXT3:
		return DxgiBC2Unorm, true
	case FourCCDXT5:
		return DxgiBC3Unorm, true
	case FourCCATI1, FourCCBC4U:
		return DxgiBC4Unorm, true
	case FourCCBC4S:
		return DxgiBC4Snorm, true
	case FourCCATI2, FourCCBC5U:
		return DxgiBC5Unorm, true
	case FourCCBC5S:
		return DxgiBC5Snorm, true
	case FourCCRGBG:
		return DxgiR8G8B8G8Unorm, true
	case FourCCGRGB:
		return DxgiG8R8G8B8Unorm, true
	case FourCCYUY2:
		return DxgiYUY2, true
	// Legacy D3DFORMAT constants some encoders (notably texconv) write
	// directly into the FourCC field instead of using a DX10 header.
	case 36:
		return DxgiR16G16B16A16Unorm, true
	case 110:
		return DxgiR16G16B16A16Snorm, true
	case 111:
		return DxgiR16Float, true
	case 112:
		return DxgiR16G16Float, true
	case 113:
		return DxgiR16G16B16A16Float, true
	case 114:
		return DxgiR32Float, true
	case 115:
		return DxgiR32G32Float, true
	case 116:
		return DxgiR32G32B32A32Float, true
	default:
		return 0, false
	}
}

// fourCCToFormat mirrors detect.rs's four_cc_to_supported: FourCC tags with
// no DXGI equivalent (DXT2/DXT4's premultiplied alpha, RXGB's R-in-alpha
// swizzle) are resolved directly.
func fourCCToFormat(f FourCC) (ddsfmt.Format, bool) {
	if dxgi, ok := fourCCToDxgi(f); ok {
		return dxgiToFormat(dxgi)
	}
	switch f {
	case FourCCDXT2:
		return ddsfmt.BC2UnormPremultiplied, true
	case FourCCDXT4:
		return ddsfmt.BC3UnormPremultiplied, true
	case FourCCRXGB:
		return ddsfmt.BC3UnormRXGB, true
	case FourCCUYVY:
		return ddsfmt.UYVY, true
	default:
		return 0, false
	}
}

// pfPattern is one entry of the DX9 bitmask pixel-format table.
type pfPattern struct {
	flags                                PixelFormatFlags
	bitCount, rMask, gMask, bMask, aMask uint32
}

func (p pfPattern) matches(pf PixelFormat) bool {
	return pf.Flags == p.flags &&
		pf.RGBBitCount == p.bitCount &&
		pf.RBitMask == p.rMask &&
		pf.GBitMask == p.gMask &&
		pf.BBitMask == p.bMask &&
		pf.ABitMask == p.aMask
}

// knownPixelFormats is the DX9 bitmask pattern table, mirroring
// original_source's KNOWN_PIXEL_FORMATS. The first entry matching a given
// Format is also the canonical mask descriptor MaskFromFormat writes.
var knownPixelFormats = []struct {
	pattern pfPattern
	format  ddsfmt.Format
}{
	// alpha
	{pfPattern{PFAlpha, 8, 0, 0, 0, 0xFF}, ddsfmt.A8Unorm},
	// grayscale
	{pfPattern{PFLuminance, 8, 0xFF, 0, 0, 0}, ddsfmt.R8Unorm},
	{pfPattern{PFRGB | PFLuminance, 8, 0xFF, 0, 0, 0}, ddsfmt.R8Unorm},
	{pfPattern{PFLuminance, 16, 0xFFFF, 0, 0, 0}, ddsfmt.R16Unorm},
	// rgb
	{pfPattern{PFRGB, 16, 0xF800, 0x07E0, 0x001F, 0}, ddsfmt.B5G6R5Unorm},
	{pfPattern{PFRGB, 32, 0xFF0000, 0xFF00, 0xFF, 0}, ddsfmt.B8G8R8X8Unorm},
	{pfPattern{PFRGB, 32, 0xFFFF, 0xFFFF0000, 0, 0}, ddsfmt.R16G16Unorm},
	{pfPattern{PFRGB, 16, 0xFF, 0xFF00, 0, 0}, ddsfmt.R8G8Unorm},
	{pfPattern{PFRGB, 24, 0xFF0000, 0xFF00, 0xFF, 0}, ddsfmt.B8G8R8Unorm},
	{pfPattern{PFRGB, 24, 0xFF, 0xFF00, 0xFF0000, 0}, ddsfmt.R8G8B8Unorm},
	// rgba
	{pfPattern{PFRGBA, 16, 0xF00, 0xF0, 0xF, 0xF000}, ddsfmt.B4G4R4A4Unorm},
	{pfPattern{PFRGBA, 16, 0x7C00, 0x3E0, 0x1F, 0x8000}, ddsfmt.B5G5R5A1Unorm},
	{pfPattern{PFRGBA, 32, 0xFF0000, 0xFF00, 0xFF, 0xFF000000}, ddsfmt.B8G8R8A8Unorm},
	{pfPattern{PFRGBA, 32, 0xFF, 0xFF00, 0xFF0000, 0xFF000000}, ddsfmt.R8G8B8A8Unorm},
	{pfPattern{PFRGBA, 32, 0x3FF00000, 0xFFC00, 0x3FF, 0xC0000000}, ddsfmt.R10G10B10A2Unorm},
	// snorm (BUMPDUDV)
	{pfPattern{PFBumpDUDV, 32, 0xFF, 0xFF00, 0xFF0000, 0xFF000000}, ddsfmt.R8G8B8A8Snorm},
	{pfPattern{PFBumpDUDV, 16, 0xFF, 0xFF00, 0, 0}, ddsfmt.R8G8Snorm},
	{pfPattern{PFBumpDUDV, 32, 0xFFFF, 0xFFFF0000, 0, 0}, ddsfmt.R16G16Snorm},
	// A8L8, written by some legacy encoders for two-channel data
	{pfPattern{PFLuminanceAlpha, 16, 0xFF, 0, 0, 0xFF00}, ddsfmt.R8G8Unorm},
}

func maskedToFormat(pf PixelFormat) (ddsfmt.Format, bool) {
	for _, entry := range knownPixelFormats {
		if entry.pattern.matches(pf) {
			return entry.format, true
		}
	}
	return 0, false
}

// FormatOf resolves h to a codec/ddsfmt.Format: the DX10 extension's DXGI
// format if present (with its alpha mode folded in for BC2/BC3), otherwise
// the DX9 pixel format's FourCC tag or, for a tagless bitmask pixel
// format, the known mask pattern it matches exactly.
func FormatOf(h Header) (ddsfmt.Format, error) {
	if h.Dxt10 != nil {
		f, ok := dxgiToFormat(h.Dxt10.DxgiFormat)
		if !ok {
			return 0, &UnsupportedDxgiFormat{DxgiFormat: h.Dxt10.DxgiFormat}
		}
		if h.Dxt10.AlphaMode() == AlphaModePremultiplied {
			switch f {
			case ddsfmt.BC2Unorm:
				f = ddsfmt.BC2UnormPremultiplied
			case ddsfmt.BC3Unorm:
				f = ddsfmt.BC3UnormPremultiplied
			}
		}
		return f, nil
	}

	if h.PixelFormat.Flags&PFFourCC != 0 {
		f, ok := fourCCToFormat(h.PixelFormat.FourCC)
		if !ok {
			return 0, &UnsupportedFourCC{FourCC: h.PixelFormat.FourCC}
		}
		return f, nil
	}

	f, ok := maskedToFormat(h.PixelFormat)
	if !ok {
		return 0, &UnsupportedPixelFormat{}
	}
	return f, nil
}

// IsSRGB reports whether h's resolved format is tagged sRGB. This is only
// representable for DX10+ headers; legacy DX9 formats are always treated
// as linear.
func (h Header) IsSRGB() bool {
	if h.Dxt10 == nil {
		return false
	}
	return h.Dxt10.DxgiFormat.IsSRGB()
}

// fourCCFromDxgi is the write-side inverse of fourCCToDxgi: the canonical
// FourCC tag (or bare-integer D3DFORMAT code) for DXGI formats that have
// one. Every tag returned here resolves back to the same DxgiFormat
// through fourCCToDxgi.
func fourCCFromDxgi(d DxgiFormat) (FourCC, bool) {
	switch d {
	case DxgiBC1Unorm:
		return FourCCDXT1, true
	case DxgiBC2Unorm:
		return FourCCDXT3, true
	case DxgiBC3Unorm:
		return FourCCDXT5, true
	case DxgiBC4Unorm:
		return FourCCBC4U, true
	case DxgiBC4Snorm:
		return FourCCBC4S, true
	case DxgiBC5Unorm:
		return FourCCBC5U, true
	case DxgiBC5Snorm:
		return FourCCBC5S, true
	case DxgiR8G8B8G8Unorm:
		return FourCCRGBG, true
	case DxgiG8R8G8B8Unorm:
		return FourCCGRGB, true
	case DxgiYUY2:
		return FourCCYUY2, true
	case DxgiR16G16B16A16Unorm:
		return FourCC(36), true
	case DxgiR16G16B16A16Snorm:
		return FourCC(110), true
	case DxgiR16Float:
		return FourCC(111), true
	case DxgiR16G16Float:
		return FourCC(112), true
	case DxgiR16G16B16A16Float:
		return FourCC(113), true
	case DxgiR32Float:
		return FourCC(114), true
	case DxgiR32G32Float:
		return FourCC(115), true
	case DxgiR32G32B32A32Float:
		return FourCC(116), true
	default:
		return 0, false
	}
}

// DxgiFromFormat returns the canonical DXGI format code for f, for writing
// DX10 headers. Not every Format is representable: UYVY and the
// premultiplied/RXGB BC variants exist only as DX9 FourCC tags, and 24-bit
// RGB only as a DX9 bitmask pixel format.
func DxgiFromFormat(f ddsfmt.Format) (DxgiFormat, bool) {
	switch f {
	case ddsfmt.R8Unorm:
		return DxgiR8Unorm, true
	case ddsfmt.R8Snorm:
		return DxgiR8Snorm, true
	case ddsfmt.A8Unorm:
		return DxgiA8Unorm, true
	case ddsfmt.R8G8Unorm:
		return DxgiR8G8Unorm, true
	case ddsfmt.R8G8Snorm:
		return DxgiR8G8Snorm, true
	case ddsfmt.R8G8B8A8Unorm:
		return DxgiR8G8B8A8Unorm, true
	case ddsfmt.B8G8R8A8Unorm:
		return DxgiB8G8R8A8Unorm, true
	case ddsfmt.B8G8R8X8Unorm:
		return DxgiB8G8R8X8Unorm, true
	case ddsfmt.R8G8B8A8Snorm:
		return DxgiR8G8B8A8Snorm, true
	case ddsfmt.R16Unorm:
		return DxgiR16Unorm, true
	case ddsfmt.R16Snorm:
		return DxgiR16Snorm, true
	case ddsfmt.R16G16Unorm:
		return DxgiR16G16Unorm, true
	case ddsfmt.R16G16Snorm:
		return DxgiR16G16Snorm, true
	case ddsfmt.R16G16B16A16Unorm:
		return DxgiR16G16B16A16Unorm, true
	case ddsfmt.R16G16B16A16Snorm:
		return DxgiR16G16B16A16Snorm, true
	case ddsfmt.B5G6R5Unorm:
		return DxgiB5G6R5Unorm, true
	case ddsfmt.B5G5R5A1Unorm:
		return DxgiB5G5R5A1Unorm, true
	case ddsfmt.B4G4R4A4Unorm:
		return DxgiB4G4R4A4Unorm, true
	case ddsfmt.A4B4G4R4Unorm:
		return DxgiA4B4G4R4Unorm, true
	case ddsfmt.R10G10B10A2Unorm:
		return DxgiR10G10B10A2Unorm, true
	case ddsfmt.R10G10B10XRBiasA2Unorm:
		return DxgiR10G10B10XRBiasA2Unorm, true
	case ddsfmt.R1Unorm:
		return DxgiR1Unorm, true
	case ddsfmt.R16Float:
		return DxgiR16Float, true
	case ddsfmt.R16G16Float:
		return DxgiR16G16Float, true
	case ddsfmt.R16G16B16A16Float:
		return DxgiR16G16B16A16Float, true
	case ddsfmt.R32Float:
		return DxgiR32Float, true
	case ddsfmt.R32G32Float:
		return DxgiR32G32Float, true
	case ddsfmt.R32G32B32Float:
		return DxgiR32G32B32Float, true
	case ddsfmt.R32G32B32A32Float:
		return DxgiR32G32B32A32Float, true
	case ddsfmt.R11G11B10Float:
		return DxgiR11G11B10Float, true
	case ddsfmt.R9G9B9E5SharedExp:
		return DxgiR9G9B9E5SharedExp, true
	case ddsfmt.AYUV:
		return DxgiAYUV, true
	case ddsfmt.Y410:
		return DxgiY410, true
	case ddsfmt.Y416:
		return DxgiY416, true
	case ddsfmt.R8G8B8G8Unorm:
		return DxgiR8G8B8G8Unorm, true
	case ddsfmt.G8R8G8B8Unorm:
		return DxgiG8R8G8B8Unorm, true
	case ddsfmt.YUY2:
		return DxgiYUY2, true
	case ddsfmt.Y210:
		return DxgiY210, true
	case ddsfmt.Y216:
		return DxgiY216, true
	case ddsfmt.BC1Unorm:
		return DxgiBC1Unorm, true
	case ddsfmt.BC1UnormSRGB:
		return DxgiBC1UnormSRGB, true
	case ddsfmt.BC2Unorm:
		return DxgiBC2Unorm, true
	case ddsfmt.BC3Unorm:
		return DxgiBC3Unorm, true
	case ddsfmt.BC4Unorm:
		return DxgiBC4Unorm, true
	case ddsfmt.BC4Snorm:
		return DxgiBC4Snorm, true
	case ddsfmt.BC5Unorm:
		return DxgiBC5Unorm, true
	case ddsfmt.BC5Snorm:
		return DxgiBC5Snorm, true
	case ddsfmt.BC6HUF16:
		return DxgiBC6HUF16, true
	case ddsfmt.BC6HSF16:
		return DxgiBC6HSF16, true
	case ddsfmt.BC7Unorm:
		return DxgiBC7Unorm, true
	case ddsfmt.BC7UnormSRGB:
		return DxgiBC7UnormSRGB, true
	default:
		return 0, false
	}
}

// FourCCFromFormat returns the canonical FourCC tag for f, for writing DX9
// headers. Only the BC family, the pair-packed RGB formats, and the packed
// YUV pair formats have one.
func FourCCFromFormat(f ddsfmt.Format) (FourCC, bool) {
	switch f {
	case ddsfmt.BC1Unorm:
		return FourCCDXT1, true
	case ddsfmt.BC2Unorm:
		return FourCCDXT3, true
	case ddsfmt.BC2UnormPremultiplied:
		return FourCCDXT2, true
	case ddsfmt.BC3Unorm:
		return FourCCDXT5, true
	case ddsfmt.BC3UnormPremultiplied:
		return FourCCDXT4, true
	case ddsfmt.BC3UnormRXGB:
		return FourCCRXGB, true
	case ddsfmt.BC4Unorm:
		return FourCCBC4U, true
	case ddsfmt.BC4Snorm:
		return FourCCBC4S, true
	case ddsfmt.BC5Unorm:
		return FourCCBC5U, true
	case ddsfmt.BC5Snorm:
		return FourCCBC5S, true
	case ddsfmt.R8G8B8G8Unorm:
		return FourCCRGBG, true
	case ddsfmt.G8R8G8B8Unorm:
		return FourCCGRGB, true
	case ddsfmt.YUY2:
		return FourCCYUY2, true
	case ddsfmt.UYVY:
		return FourCCUYVY, true
	default:
		return 0, false
	}
}

// MaskFromFormat returns the canonical DX9 bitmask pixel-format descriptor
// for f: the first knownPixelFormats pattern that detects as f.
func MaskFromFormat(f ddsfmt.Format) (PixelFormat, bool) {
	for _, entry := range knownPixelFormats {
		if entry.format == f {
			p := entry.pattern
			return PixelFormat{
				Flags:       p.flags,
				RGBBitCount: p.bitCount,
				RBitMask:    p.rMask,
				GBitMask:    p.gMask,
				BBitMask:    p.bMask,
				ABitMask:    p.aMask,
			}, true
		}
	}
	return PixelFormat{}, false
}
