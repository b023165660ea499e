/*
DESCRIPTION
  header_test.go checks ReadHeader's magic/field parsing, the DX10
  extension path, and the array_size guard.

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
	"bytes"
	"encoding/binary"
	"testing"
)

// buildHeaderBytes assembles a minimal well-formed DDS header (magic + 124
// byte DDS_HEADER + optional DX10 extension) for a given width/height/depth/
// mipmapCount, using a DX9 FourCC pixel format unless dx10 is non-nil.
func buildHeaderBytes(width, height, depth, mipmapCount uint32, fourCC FourCC, dx10 *HeaderDxt10) []byte {
	var buf bytes.Buffer
	buf.Write(magic[:])

	var h [headerSize]byte
	binary.LittleEndian.PutUint32(h[4:8], uint32(HeaderFlagCaps|HeaderFlagHeight|HeaderFlagWidth|HeaderFlagPixelFormat))
	binary.LittleEndian.PutUint32(h[8:12], height)
	binary.LittleEndian.PutUint32(h[12:16], width)
	binary.LittleEndian.PutUint32(h[20:24], depth)
	binary.LittleEndian.PutUint32(h[24:28], mipmapCount)

	pf := h[pixelFormatOffset : pixelFormatOffset+pixelFormatSize]
	binary.LittleEndian.PutUint32(pf[0:4], pixelFormatSize)
	binary.LittleEndian.PutUint32(pf[4:8], uint32(PFFourCC))
	binary.LittleEndian.PutUint32(pf[8:12], uint32(fourCC))

	buf.Write(h[:])

	if dx10 != nil {
		var ext [dxt10Size]byte
		binary.LittleEndian.PutUint32(ext[0:4], uint32(dx10.DxgiFormat))
		binary.LittleEndian.PutUint32(ext[4:8], uint32(dx10.ResourceDimension))
		binary.LittleEndian.PutUint32(ext[8:12], uint32(dx10.MiscFlag))
		binary.LittleEndian.PutUint32(ext[12:16], dx10.ArraySize)
		binary.LittleEndian.PutUint32(ext[16:20], dx10.MiscFlags2)
		buf.Write(ext[:])
	}

	return buf.Bytes()
}

func TestReadHeaderFieldsAndFourCC(t *testing.T) {
	raw := buildHeaderBytes(64, 32, 1, 3, FourCCDXT1, nil)
	h, err := ReadHeader(bytes.NewReader(raw), Options{})
	if err != nil {
		t.Fatalf("ReadHeader: %v", err)
	}
	if h.Width != 64 || h.Height != 32 || h.MipmapCount != 3 {
		t.Fatalf("header dims = %dx%d mips=%d, want 64x32 mips=3", h.Width, h.Height, h.MipmapCount)
	}
	if h.PixelFormat.FourCC != FourCCDXT1 {
		t.Fatalf("PixelFormat.FourCC = %v, want DXT1", h.PixelFormat.FourCC)
	}
	if h.Dxt10 != nil {
		t.Fatalf("Dxt10 should be nil for a DX9 FourCC header")
	}
}

func TestReadHeaderMipmapCountZeroDefaultsToOne(t *testing.T) {
	raw := buildHeaderBytes(8, 8, 1, 0, FourCCDXT1, nil)
	h, err := ReadHeader(bytes.NewReader(raw), Options{})
	if err != nil {
		t.Fatalf("ReadHeader: %v", err)
	}
	if h.MipmapCount != 1 {
		t.Fatalf("MipmapCount = %d, want 1 (0 repaired unconditionally)", h.MipmapCount)
	}
}

func TestReadHeaderInvalidMagic(t *testing.T) {
	raw := append([]byte("BAD!"), make([]byte, headerSize)...)
	_, err := ReadHeader(bytes.NewReader(raw), Options{})
	if _, ok := err.(*InvalidMagicBytes); !ok {
		t.Fatalf("ReadHeader: err=%v, want *InvalidMagicBytes", err)
	}
}

func TestReadHeaderSkipMagicBytes(t *testing.T) {
	raw := buildHeaderBytes(4, 4, 1, 1, FourCCDXT1, nil)
	withoutMagic := raw[4:]
	h, err := ReadHeader(bytes.NewReader(withoutMagic), Options{SkipMagicBytes: true})
	if err != nil {
		t.Fatalf("ReadHeader with SkipMagicBytes: %v", err)
	}
	if h.Width != 4 {
		t.Fatalf("Width = %d, want 4", h.Width)
	}
}

func TestReadHeaderDX10Extension(t *testing.T) {
	dx10 := &HeaderDxt10{
		DxgiFormat:        DxgiR8G8B8A8Unorm,
		ResourceDimension: ResourceDimensionTexture2D,
		ArraySize:         2,
	}
	raw := buildHeaderBytes(16, 16, 1, 1, FourCCDX10, dx10)
	h, err := ReadHeader(bytes.NewReader(raw), Options{})
	if err != nil {
		t.Fatalf("ReadHeader: %v", err)
	}
	if h.Dxt10 == nil {
		t.Fatalf("Dxt10 should be populated for FourCCDX10")
	}
	if h.Dxt10.DxgiFormat != DxgiR8G8B8A8Unorm || h.Dxt10.ArraySize != 2 {
		t.Fatalf("Dxt10 = %+v, want DxgiR8G8B8A8Unorm/ArraySize=2", h.Dxt10)
	}
}

func TestReadHeaderArraySizeTooBig(t *testing.T) {
	dx10 := &HeaderDxt10{DxgiFormat: DxgiR8G8B8A8Unorm, ArraySize: 5000}
	raw := buildHeaderBytes(16, 16, 1, 1, FourCCDX10, dx10)
	_, err := ReadHeader(bytes.NewReader(raw), Options{MaxArraySize: 4096})
	if _, ok := err.(*ArraySizeTooBig); !ok {
		t.Fatalf("ReadHeader: err=%v, want *ArraySizeTooBig", err)
	}
}

func TestReadHeaderArraySizeDefaultMax(t *testing.T) {
	dx10 := &HeaderDxt10{DxgiFormat: DxgiR8G8B8A8Unorm, ArraySize: DefaultMaxArraySize + 1}
	raw := buildHeaderBytes(16, 16, 1, 1, FourCCDX10, dx10)
	_, err := ReadHeader(bytes.NewReader(raw), Options{})
	if _, ok := err.(*ArraySizeTooBig); !ok {
		t.Fatalf("ReadHeader with default MaxArraySize: err=%v, want *ArraySizeTooBig", err)
	}
}

func TestHeaderIsCubeMapAndVolume(t *testing.T) {
	h := Header{Caps2: Caps2CubeMap}
	if !h.IsCubeMap() {
		t.Fatalf("IsCubeMap should be true when Caps2CubeMap is set")
	}
	h = Header{Dxt10: &HeaderDxt10{ResourceDimension: ResourceDimensionTexture3D}}
	if !h.IsVolume() {
		t.Fatalf("IsVolume should be true for ResourceDimensionTexture3D")
	}
}
