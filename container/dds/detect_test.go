/*
DESCRIPTION
  detect_test.go checks Format resolution from DX10 DXGI codes, DX9 FourCC
  tags (including the FourCC<->DXGI round trip property spec.md §8 calls
  out), and DX9 bitmask pixel-format patterns.

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
	"testing"

	"github.com/ddsgo/dds/codec/ddsfmt"
)

// TestFourCCDxgiRoundTripAgreesWithDirectFormat is spec.md §8's FourCC<->
// DXGI round-trip property: for every FourCC tag with a DXGI equivalent,
// resolving it through fourCCToDxgi then dxgiToFormat must agree with
// resolving it directly through fourCCToFormat.
func TestFourCCDxgiRoundTripAgreesWithDirectFormat(t *testing.T) {
	tags := []FourCC{
		FourCCDXT1, FourCCDXT3, FourCCDXT5, FourCCATI1, FourCCATI2,
		FourCCBC4U, FourCCBC4S, FourCCBC5U, FourCCBC5S, FourCCYUY2,
	}
	for _, tag := range tags {
		dxgi, ok := fourCCToDxgi(tag)
		if !ok {
			t.Fatalf("fourCCToDxgi(%v): no entry", tag)
		}
		viaDxgi, ok := dxgiToFormat(dxgi)
		if !ok {
			t.Fatalf("dxgiToFormat(%v): no entry", dxgi)
		}
		direct, ok := fourCCToFormat(tag)
		if !ok {
			t.Fatalf("fourCCToFormat(%v): no entry", tag)
		}
		if viaDxgi != direct {
			t.Fatalf("FourCC %v: via DXGI = %v, direct = %v", tag, viaDxgi, direct)
		}
	}
}

func TestFourCCToFormatNoDxgiEquivalent(t *testing.T) {
	cases := map[FourCC]string{
		FourCCDXT2: "BC2UnormPremultiplied",
		FourCCDXT4: "BC3UnormPremultiplied",
		FourCCRXGB: "BC3UnormRXGB",
	}
	for tag := range cases {
		if _, ok := fourCCToDxgi(tag); ok {
			t.Fatalf("%v unexpectedly has a DXGI equivalent", tag)
		}
		if _, ok := fourCCToFormat(tag); !ok {
			t.Fatalf("fourCCToFormat(%v): no entry", tag)
		}
	}
}

func TestDxgiIsSRGB(t *testing.T) {
	if !DxgiBC1UnormSRGB.IsSRGB() {
		t.Fatalf("DxgiBC1UnormSRGB.IsSRGB() should be true")
	}
	if DxgiBC1Unorm.IsSRGB() {
		t.Fatalf("DxgiBC1Unorm.IsSRGB() should be false")
	}
}

func TestMaskedToFormatB5G6R5(t *testing.T) {
	pf := PixelFormat{Flags: PFRGB, RGBBitCount: 16, RBitMask: 0xF800, GBitMask: 0x07E0, BBitMask: 0x001F}
	f, ok := maskedToFormat(pf)
	if !ok {
		t.Fatalf("maskedToFormat: no match for B5G6R5 pattern")
	}
	if f != ddsfmt.B5G6R5Unorm {
		t.Fatalf("maskedToFormat = %v, want B5G6R5Unorm", f)
	}
}

func TestMaskedToFormatNoMatch(t *testing.T) {
	pf := PixelFormat{Flags: PFRGB, RGBBitCount: 24}
	if _, ok := maskedToFormat(pf); ok {
		t.Fatalf("maskedToFormat should reject an unrecognized 24bpp pattern")
	}
}

func TestFormatOfDX10TakesPrecedenceOverFourCC(t *testing.T) {
	h := Header{
		PixelFormat: PixelFormat{Flags: PFFourCC, FourCC: FourCCDXT1},
		Dxt10:       &HeaderDxt10{DxgiFormat: DxgiR8G8B8A8Unorm},
	}
	f, err := FormatOf(h)
	if err != nil {
		t.Fatalf("FormatOf: %v", err)
	}
	want, _ := dxgiToFormat(DxgiR8G8B8A8Unorm)
	if f != want {
		t.Fatalf("FormatOf = %v, want %v (DX10 wins over FourCC)", f, want)
	}
}

func TestFormatOfUnsupportedDxgi(t *testing.T) {
	h := Header{Dxt10: &HeaderDxt10{DxgiFormat: DxgiNV12}}
	_, err := FormatOf(h)
	if _, ok := err.(*UnsupportedDxgiFormat); !ok {
		t.Fatalf("FormatOf(NV12): err=%v, want *UnsupportedDxgiFormat", err)
	}
}

func TestFormatOfUnsupportedFourCC(t *testing.T) {
	h := Header{PixelFormat: PixelFormat{Flags: PFFourCC, FourCC: FourCC(0xDEADBEEF)}}
	_, err := FormatOf(h)
	if _, ok := err.(*UnsupportedFourCC); !ok {
		t.Fatalf("FormatOf(bogus FourCC): err=%v, want *UnsupportedFourCC", err)
	}
}

func TestFormatOfUnsupportedBitmask(t *testing.T) {
	h := Header{PixelFormat: PixelFormat{Flags: PFRGB, RGBBitCount: 24}}
	_, err := FormatOf(h)
	if _, ok := err.(*UnsupportedPixelFormat); !ok {
		t.Fatalf("FormatOf(bogus bitmask): err=%v, want *UnsupportedPixelFormat", err)
	}
}

// TestFourCCFromDxgiRoundTrip is spec.md §8's FourCC<->DXGI round-trip
// property: every DXGI format with a canonical FourCC must resolve back to
// itself.
func TestFourCCFromDxgiRoundTrip(t *testing.T) {
	all := []DxgiFormat{
		DxgiBC1Unorm, DxgiBC2Unorm, DxgiBC3Unorm, DxgiBC4Unorm, DxgiBC4Snorm,
		DxgiBC5Unorm, DxgiBC5Snorm, DxgiR8G8B8G8Unorm, DxgiG8R8G8B8Unorm,
		DxgiYUY2, DxgiR16G16B16A16Unorm, DxgiR16G16B16A16Snorm, DxgiR16Float,
		DxgiR16G16Float, DxgiR16G16B16A16Float, DxgiR32Float, DxgiR32G32Float,
		DxgiR32G32B32A32Float,
		// and a few with no FourCC at all, which must simply report !ok
		DxgiR8G8B8A8Unorm, DxgiBC7Unorm, DxgiAYUV,
	}
	for _, d := range all {
		tag, ok := fourCCFromDxgi(d)
		if !ok {
			continue
		}
		back, ok := fourCCToDxgi(tag)
		if !ok {
			t.Fatalf("fourCCToDxgi(fourCCFromDxgi(%v) = %v): no entry", d, tag)
		}
		if back != d {
			t.Fatalf("FourCC round trip for %v: got %v back", d, back)
		}
	}
}

func TestLegacyD3DFormatCodesResolve(t *testing.T) {
	cases := map[FourCC]ddsfmt.Format{
		FourCC(36):  ddsfmt.R16G16B16A16Unorm,
		FourCC(110): ddsfmt.R16G16B16A16Snorm,
		FourCC(111): ddsfmt.R16Float,
		FourCC(112): ddsfmt.R16G16Float,
		FourCC(113): ddsfmt.R16G16B16A16Float,
		FourCC(114): ddsfmt.R32Float,
		FourCC(115): ddsfmt.R32G32Float,
		FourCC(116): ddsfmt.R32G32B32A32Float,
	}
	for tag, want := range cases {
		got, ok := fourCCToFormat(tag)
		if !ok {
			t.Fatalf("fourCCToFormat(%d): no entry", uint32(tag))
		}
		if got != want {
			t.Fatalf("fourCCToFormat(%d) = %v, want %v", uint32(tag), got, want)
		}
	}
}

func TestSubsampledFourCCTagsResolve(t *testing.T) {
	cases := map[FourCC]ddsfmt.Format{
		FourCCRGBG: ddsfmt.R8G8B8G8Unorm,
		FourCCGRGB: ddsfmt.G8R8G8B8Unorm,
		FourCCUYVY: ddsfmt.UYVY,
		FourCCYUY2: ddsfmt.YUY2,
	}
	for tag, want := range cases {
		got, ok := fourCCToFormat(tag)
		if !ok {
			t.Fatalf("fourCCToFormat(%v): no entry", tag)
		}
		if got != want {
			t.Fatalf("fourCCToFormat(%v) = %v, want %v", tag, got, want)
		}
	}
}

// TestDxgiFromFormatRoundTrip checks that every Format with a DXGI code
// resolves back to itself, and that the known DXGI-less formats report !ok.
func TestDxgiFromFormatRoundTrip(t *testing.T) {
	noDxgi := map[ddsfmt.Format]bool{
		ddsfmt.R8G8B8Unorm: true, ddsfmt.B8G8R8Unorm: true, ddsfmt.UYVY: true,
		ddsfmt.BC2UnormPremultiplied: true, ddsfmt.BC3UnormPremultiplied: true,
		ddsfmt.BC3UnormRXGB: true,
	}
	for f := ddsfmt.Format(0); f.String() != "Format(invalid)"; f++ {
		d, ok := DxgiFromFormat(f)
		if !ok {
			if !noDxgi[f] {
				t.Fatalf("DxgiFromFormat(%v): no entry, but %v should have one", f, f)
			}
			continue
		}
		back, ok := dxgiToFormat(d)
		if !ok {
			t.Fatalf("dxgiToFormat(DxgiFromFormat(%v) = %v): no entry", f, d)
		}
		if back != f {
			t.Fatalf("DXGI round trip for %v: got %v back", f, back)
		}
	}
}

func TestFourCCFromFormatRoundTrip(t *testing.T) {
	for f := ddsfmt.Format(0); f.String() != "Format(invalid)"; f++ {
		tag, ok := FourCCFromFormat(f)
		if !ok {
			continue
		}
		back, ok := fourCCToFormat(tag)
		if !ok {
			t.Fatalf("fourCCToFormat(FourCCFromFormat(%v) = %v): no entry", f, tag)
		}
		if back != f {
			t.Fatalf("FourCC round trip for %v: got %v back", f, back)
		}
	}
}

func TestMaskFromFormatRoundTrip(t *testing.T) {
	for f := ddsfmt.Format(0); f.String() != "Format(invalid)"; f++ {
		pf, ok := MaskFromFormat(f)
		if !ok {
			continue
		}
		back, ok := maskedToFormat(pf)
		if !ok {
			t.Fatalf("maskedToFormat(MaskFromFormat(%v)): no match", f)
		}
		if back != f {
			t.Fatalf("mask round trip for %v: got %v back", f, back)
		}
	}
}

func TestMaskedToFormat24BitRGB(t *testing.T) {
	pf := PixelFormat{Flags: PFRGB, RGBBitCount: 24, RBitMask: 0xFF0000, GBitMask: 0xFF00, BBitMask: 0xFF}
	f, ok := maskedToFormat(pf)
	if !ok || f != ddsfmt.B8G8R8Unorm {
		t.Fatalf("maskedToFormat(24bpp BGR) = %v, %v; want B8G8R8Unorm", f, ok)
	}
}

// TestFormatOfPremultipliedAlphaMode checks the DX10 alpha-mode remap:
// miscFlags2 declaring premultiplied alpha turns BC2/BC3 into their
// premultiplied variants, and leaves other formats alone.
func TestFormatOfPremultipliedAlphaMode(t *testing.T) {
	premul := uint32(AlphaModePremultiplied)
	cases := []struct {
		dxgi DxgiFormat
		want ddsfmt.Format
	}{
		{DxgiBC2Unorm, ddsfmt.BC2UnormPremultiplied},
		{DxgiBC3Unorm, ddsfmt.BC3UnormPremultiplied},
		{DxgiBC1Unorm, ddsfmt.BC1Unorm},
		{DxgiR8G8B8A8Unorm, ddsfmt.R8G8B8A8Unorm},
	}
	for _, c := range cases {
		h := Header{Dxt10: &HeaderDxt10{DxgiFormat: c.dxgi, MiscFlags2: premul}}
		f, err := FormatOf(h)
		if err != nil {
			t.Fatalf("FormatOf(%v premultiplied): %v", c.dxgi, err)
		}
		if f != c.want {
			t.Fatalf("FormatOf(%v premultiplied) = %v, want %v", c.dxgi, f, c.want)
		}
	}

	h := Header{Dxt10: &HeaderDxt10{DxgiFormat: DxgiBC2Unorm, MiscFlags2: uint32(AlphaModeStraight)}}
	f, err := FormatOf(h)
	if err != nil || f != ddsfmt.BC2Unorm {
		t.Fatalf("FormatOf(BC2 straight alpha) = %v, %v; want BC2Unorm", f, err)
	}
}

func TestHeaderIsSRGBOnlyForDX10(t *testing.T) {
	h := Header{PixelFormat: PixelFormat{Flags: PFFourCC, FourCC: FourCCDXT1}}
	if h.IsSRGB() {
		t.Fatalf("a DX9 header should never report IsSRGB")
	}
	h.Dxt10 = &HeaderDxt10{DxgiFormat: DxgiBC1UnormSRGB}
	if !h.IsSRGB() {
		t.Fatalf("IsSRGB should be true for a DX10 sRGB DXGI format")
	}
}
