/*
DESCRIPTION
  format.go defines Format, the closed enum of logical pixel formats the
  container layer resolves DDS headers to. Each uncompressed Format's native
  ColorFormat, decoder set and (optional) encoder set are wired up in
  registry.go, and block-compressed Formats are dispatched in blockcodec.go; this
  file only names the enum and its small set of per-variant queries that
  don't need the registry (block size, sub-sample width).

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

// Format is the closed set of logical pixel formats this engine can decode
// and (where noted) encode. It is a superset name for what a DDS header
// (DXGI enum, FourCC tag, or DX9 bitmask descriptor) resolves to.
type Format uint8

const (
	// Uncompressed, fixed-point.
	R8Unorm Format = iota
	R8Snorm
	A8Unorm
	R8G8Unorm
	R8G8Snorm
	R8G8B8Unorm
	B8G8R8Unorm
	R8G8B8A8Unorm
	B8G8R8A8Unorm
	B8G8R8X8Unorm
	R8G8B8A8Snorm
	R16Unorm
	R16Snorm
	R16G16Unorm
	R16G16Snorm
	R16G16B16A16Unorm
	R16G16B16A16Snorm
	B5G6R5Unorm
	B5G5R5A1Unorm
	B4G4R4A4Unorm
	A4B4G4R4Unorm
	R10G10B10A2Unorm
	R10G10B10XRBiasA2Unorm
	R1Unorm

	// Uncompressed, float.
	R16Float
	R16G16Float
	R16G16B16A16Float
	R32Float
	R32G32Float
	R32G32B32Float
	R32G32B32A32Float
	R11G11B10Float
	R9G9B9E5SharedExp

	// YUV, packed.
	AYUV
	Y410
	Y416

	// Sub-sampled: a horizontal run of pixels shares one encoded unit.
	R8G8B8G8Unorm
	G8R8G8B8Unorm
	YUY2
	UYVY
	Y210
	Y216

	// Block-compressed.
	BC1Unorm
	BC1UnormSRGB
	BC2Unorm
	BC2UnormPremultiplied
	BC3Unorm
	BC3UnormPremultiplied
	BC3UnormRXGB
	BC4Unorm
	BC4Snorm
	BC5Unorm
	BC5Snorm
	BC6HUF16
	BC6HSF16
	BC7Unorm
	BC7UnormSRGB

	numFormats
)

var formatNames = [numFormats]string{
	R8Unorm:                "R8_UNORM",
	R8Snorm:                "R8_SNORM",
	A8Unorm:                "A8_UNORM",
	R8G8Unorm:              "R8G8_UNORM",
	R8G8Snorm:              "R8G8_SNORM",
	R8G8B8Unorm:            "R8G8B8_UNORM",
	B8G8R8Unorm:            "B8G8R8_UNORM",
	R8G8B8A8Unorm:          "R8G8B8A8_UNORM",
	B8G8R8A8Unorm:          "B8G8R8A8_UNORM",
	B8G8R8X8Unorm:          "B8G8R8X8_UNORM",
	R8G8B8A8Snorm:          "R8G8B8A8_SNORM",
	R16Unorm:               "R16_UNORM",
	R16Snorm:               "R16_SNORM",
	R16G16Unorm:            "R16G16_UNORM",
	R16G16Snorm:            "R16G16_SNORM",
	R16G16B16A16Unorm:      "R16G16B16A16_UNORM",
	R16G16B16A16Snorm:      "R16G16B16A16_SNORM",
	B5G6R5Unorm:            "B5G6R5_UNORM",
	B5G5R5A1Unorm:          "B5G5R5A1_UNORM",
	B4G4R4A4Unorm:          "B4G4R4A4_UNORM",
	A4B4G4R4Unorm:          "A4B4G4R4_UNORM",
	R10G10B10A2Unorm:       "R10G10B10A2_UNORM",
	R10G10B10XRBiasA2Unorm: "R10G10B10_XR_BIAS_A2_UNORM",
	R1Unorm:                "R1_UNORM",
	R16Float:               "R16_FLOAT",
	R16G16Float:            "R16G16_FLOAT",
	R16G16B16A16Float:      "R16G16B16A16_FLOAT",
	R32Float:               "R32_FLOAT",
	R32G32Float:            "R32G32_FLOAT",
	R32G32B32Float:         "R32G32B32_FLOAT",
	R32G32B32A32Float:      "R32G32B32A32_FLOAT",
	R11G11B10Float:         "R11G11B10_FLOAT",
	R9G9B9E5SharedExp:      "R9G9B9E5_SHAREDEXP",
	AYUV:                   "AYUV",
	Y410:                   "Y410",
	Y416:                   "Y416",
	R8G8B8G8Unorm:          "R8G8_B8G8_UNORM",
	G8R8G8B8Unorm:          "G8R8_G8B8_UNORM",
	YUY2:                   "YUY2",
	UYVY:                   "UYVY",
	Y210:                   "Y210",
	Y216:                   "Y216",
	BC1Unorm:               "BC1_UNORM",
	BC1UnormSRGB:           "BC1_UNORM_SRGB",
	BC2Unorm:               "BC2_UNORM",
	BC2UnormPremultiplied:  "BC2_UNORM_PREMULTIPLIED",
	BC3Unorm:               "BC3_UNORM",
	BC3UnormPremultiplied:  "BC3_UNORM_PREMULTIPLIED",
	BC3UnormRXGB:           "BC3_UNORM_RXGB",
	BC4Unorm:               "BC4_UNORM",
	BC4Snorm:               "BC4_SNORM",
	BC5Unorm:               "BC5_UNORM",
	BC5Snorm:               "BC5_SNORM",
	BC6HUF16:               "BC6H_UF16",
	BC6HSF16:               "BC6H_SF16",
	BC7Unorm:               "BC7_UNORM",
	BC7UnormSRGB:           "BC7_UNORM_SRGB",
}

func (f Format) String() string {
	if int(f) < len(formatNames) && formatNames[f] != "" {
		return formatNames[f]
	}
	return "Format(invalid)"
}

// blockCompressed reports whether f is one of the BCn family.
func (f Format) blockCompressed() bool {
	return f >= BC1Unorm && f < numFormats
}

// blockBytes returns the encoded byte size of one 4x4 block for a
// block-compressed format: 8 for BC1/BC4, 16 for everything else.
func (f Format) blockBytes() int {
	switch f {
	case BC1Unorm, BC1UnormSRGB, BC4Unorm, BC4Snorm:
		return 8
	default:
		return 16
	}
}

// subsampleWidth returns the horizontal run of pixels that share one
// minimal addressable unit: 2 for the 4:2:2-style pair packings, 1
// otherwise.
func (f Format) subsampleWidth() int {
	switch f {
	case YUY2, UYVY, Y210, Y216, R8G8B8G8Unorm, G8R8G8B8Unorm:
		return 2
	default:
		return 1
	}
}
