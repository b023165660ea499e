/*
DESCRIPTION
  decode_test.go checks Decode's top-level dispatch against the literal
  B5G6R5 scenario spec.md §8 gives, a buffer-size totality check, and an
  encode/decode round trip through the generic packed path and a
  block-compressed path.

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
	"bytes"
	"testing"
)

// TestB5G6R5Scenario is spec.md §8 scenario 2: bytes [0x1F,0xF8] decode to
// RGB-U8 (255,0,255).
func TestB5G6R5Scenario(t *testing.T) {
	in := bytes.NewReader([]byte{0x1F, 0xF8})
	out := make([]byte, 3)
	if err := Decode(B5G6R5Unorm, in, Size{1, 1, 1}, ColorFormat{RGB, U8}, out); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if out[0] != 255 || out[1] != 0 || out[2] != 255 {
		t.Fatalf("decoded RGB = %v, want [255,0,255]", out)
	}
}

func TestDecodeRejectsWrongBufferSize(t *testing.T) {
	in := bytes.NewReader(make([]byte, 8))
	out := make([]byte, 2) // should be 1*1*4 = 4 for RGBA/U8
	err := Decode(R8G8B8A8Unorm, in, Size{1, 1, 1}, ColorFormat{RGBA, U8}, out)
	if _, ok := err.(*UnexpectedBufferSize); !ok {
		t.Fatalf("Decode with wrong buffer size: err=%v, want *UnexpectedBufferSize", err)
	}
}

func TestEncodeDecodeRoundTripPacked(t *testing.T) {
	size := Size{4, 4, 1}
	color := ColorFormat{RGBA, U8}
	src := make([]byte, size.Pixels()*uint64(color.BytesPerPixel()))
	for i := range src {
		src[i] = byte(i * 7)
	}

	var buf bytes.Buffer
	if err := Encode(R8G8B8A8Unorm, src, color, size, &buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	out := make([]byte, len(src))
	if err := Decode(R8G8B8A8Unorm, bytes.NewReader(buf.Bytes()), size, color, out); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	for i := range src {
		if out[i] != src[i] {
			t.Fatalf("round trip byte %d = %d, want %d", i, out[i], src[i])
		}
	}
}

func TestEncodeDecodeRoundTripBlockCompressed(t *testing.T) {
	size := Size{4, 4, 1}
	color := ColorFormat{RGBA, U8}
	src := make([]byte, size.Pixels()*uint64(color.BytesPerPixel()))
	for i := 0; i < 16; i++ {
		src[i*4+0] = 10
		src[i*4+1] = 200
		src[i*4+2] = 30
		src[i*4+3] = 255
	}

	var buf bytes.Buffer
	if err := Encode(BC1Unorm, src, color, size, &buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if buf.Len() != 8 {
		t.Fatalf("one 4x4 BC1 block should be 8 bytes, got %d", buf.Len())
	}

	out := make([]byte, len(src))
	if err := Decode(BC1Unorm, bytes.NewReader(buf.Bytes()), size, color, out); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	for i := 0; i < 16; i++ {
		if absDiffByte(out[i*4+0], 10) > 4 || absDiffByte(out[i*4+1], 200) > 4 || absDiffByte(out[i*4+2], 30) > 4 {
			t.Fatalf("texel %d RGB = (%d,%d,%d), want near (10,200,30)", i, out[i*4], out[i*4+1], out[i*4+2])
		}
	}
}

func absDiffByte(a, b byte) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

func TestDecodeUnsupportedColorFormatForBlockFormat(t *testing.T) {
	in := bytes.NewReader(make([]byte, 16))
	out := make([]byte, 16*1)
	err := Decode(BC6HUF16, in, Size{4, 4, 1}, ColorFormat{Grayscale, U8}, out)
	if _, ok := err.(*UnsupportedColorFormat); !ok {
		t.Fatalf("Decode(BC6HUF16, Grayscale/U8): err=%v, want *UnsupportedColorFormat", err)
	}
}
