/*
DESCRIPTION
  format_test.go checks Format's string/enum queries and the registry's
  capability-query functions (Supports, SupportedChannels,
  SupportedPrecisions, GetEncodingSupport).

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

import "testing"

func TestFormatStringEveryVariant(t *testing.T) {
	for f := Format(0); f < numFormats; f++ {
		if got := f.String(); got == "" || got == "Format(invalid)" {
			t.Fatalf("Format(%d).String() = %q, want a real name", f, got)
		}
	}
	if got := numFormats.String(); got != "Format(invalid)" {
		t.Fatalf("numFormats.String() = %q, want Format(invalid)", got)
	}
}

func TestBlockCompressedRange(t *testing.T) {
	if R8Unorm.blockCompressed() {
		t.Fatalf("R8Unorm must not be block-compressed")
	}
	if !BC1Unorm.blockCompressed() || !BC7UnormSRGB.blockCompressed() {
		t.Fatalf("BC1Unorm/BC7UnormSRGB must be block-compressed")
	}
}

func TestBlockBytesSizes(t *testing.T) {
	cases := map[Format]int{
		BC1Unorm: 8, BC1UnormSRGB: 8, BC4Unorm: 8, BC4Snorm: 8,
		BC2Unorm: 16, BC3Unorm: 16, BC5Unorm: 16, BC6HUF16: 16, BC7Unorm: 16,
	}
	for f, want := range cases {
		if got := f.blockBytes(); got != want {
			t.Fatalf("%s.blockBytes() = %d, want %d", f, got, want)
		}
	}
}

func TestSupportsEveryRegisteredFormat(t *testing.T) {
	for f := Format(0); f < numFormats; f++ {
		if !Supports(f, ColorFormat{RGBA, U8}) && f != BC6HUF16 && f != BC6HSF16 {
			t.Fatalf("%s should support RGBA/U8 decode", f)
		}
	}
	if !Supports(BC6HUF16, ColorFormat{RGBA, F32}) {
		t.Fatalf("BC6HUF16 should support RGBA/F32")
	}
	if Supports(BC6HUF16, ColorFormat{RGBA, U8}) {
		t.Fatalf("BC6HUF16 should not claim U8 support via Supports (caveat is in SupportedPrecisions)")
	}
}

func TestSupportedPrecisionsBC6HRestrictedToF32(t *testing.T) {
	precs := SupportedPrecisions(BC6HUF16)
	if len(precs) != 1 || precs[0] != F32 {
		t.Fatalf("SupportedPrecisions(BC6HUF16) = %v, want [F32]", precs)
	}
	precs = SupportedPrecisions(R8G8B8A8Unorm)
	if len(precs) != 3 {
		t.Fatalf("SupportedPrecisions(R8G8B8A8Unorm) = %v, want all 3 precisions", precs)
	}
}

func TestSupportedChannelsCoversEveryChannelsValue(t *testing.T) {
	for _, f := range []Format{R8G8B8A8Unorm, BC1Unorm} {
		chans := SupportedChannels(f)
		if len(chans) != 4 {
			t.Fatalf("SupportedChannels(%s) = %v, want all 4 Channels values", f, chans)
		}
	}
}

func TestGetEncodingSupportSizeMultiple(t *testing.T) {
	if got := GetEncodingSupport(BC1Unorm).SizeMultiple; got != 4 {
		t.Fatalf("BC1Unorm SizeMultiple = %d, want 4", got)
	}
	if got := GetEncodingSupport(YUY2).SizeMultiple; got != 2 {
		t.Fatalf("YUY2 SizeMultiple = %d, want 2", got)
	}
	if got := GetEncodingSupport(R8Unorm).SizeMultiple; got != 1 {
		t.Fatalf("R8Unorm SizeMultiple = %d, want 1", got)
	}
	if GetEncodingSupport(R8Unorm).Dithering {
		t.Fatalf("no format in this engine dithers")
	}
}
