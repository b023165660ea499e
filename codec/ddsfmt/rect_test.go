/*
DESCRIPTION
  rect_test.go checks Rect bounds/buffer validation, the literal BC1 rect
  scenario spec.md §8 gives, and the "Rect subset of full decode" property
  for both a packed and a block-compressed format.

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

func TestRectCheckBoundsOutOfRange(t *testing.T) {
	r := Rect{X: 10, Y: 0, Width: 10, Height: 4}
	if err := r.checkBounds(Size{Width: 16, Height: 16, Depth: 1}); err != ErrRectOutOfBounds {
		t.Fatalf("checkBounds: err=%v, want ErrRectOutOfBounds", err)
	}
}

func TestRectCheckBufferTooSmall(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 4, Height: 4}
	if err := r.checkBuffer(4, 16, make([]byte, 63)); err == nil {
		t.Fatalf("checkBuffer should reject a buffer one byte too small")
	}
	if err := r.checkBuffer(4, 16, make([]byte, 64)); err != nil {
		t.Fatalf("checkBuffer should accept an exactly-sized buffer: %v", err)
	}
}

func TestRectCheckBufferRowPitchTooSmall(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 4, Height: 4}
	if err := r.checkBuffer(4, 8, make([]byte, 64)); err == nil {
		t.Fatalf("row pitch 8 < 4*4bpp=16, should be rejected")
	}
}

// TestBC1RectScenario is spec.md §8 scenario 6: a 16x16 solid-red BC1
// image's rect {4,0,4,4} decodes to a 4x4 solid-red sub-image.
func TestBC1RectScenario(t *testing.T) {
	const w, h = 16, 16
	size := Size{w, h, 1}
	color := ColorFormat{RGBA, U8}
	src := make([]byte, size.Pixels()*uint64(color.BytesPerPixel()))
	for i := 0; i < int(size.Pixels()); i++ {
		src[i*4+0] = 255
		src[i*4+1] = 0
		src[i*4+2] = 0
		src[i*4+3] = 255
	}

	var encoded bytes.Buffer
	if err := Encode(BC1Unorm, src, color, size, &encoded); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	rect := Rect{X: 4, Y: 0, Width: 4, Height: 4}
	rowPitch := int(rect.Width) * color.BytesPerPixel()
	out := make([]byte, rowPitch*int(rect.Height))
	if err := DecodeRect(BC1Unorm, bytes.NewReader(encoded.Bytes()), size, rect, color, out, rowPitch); err != nil {
		t.Fatalf("DecodeRect: %v", err)
	}
	for i := 0; i < 16; i++ {
		if absDiffByte(out[i*4+0], 255) > 4 || out[i*4+1] != 0 || out[i*4+2] != 0 {
			t.Fatalf("rect texel %d = %v, want solid red", i, out[i*4:i*4+4])
		}
	}
}

func TestDecodeRectSubsetOfFullDecodePacked(t *testing.T) {
	const w, h = 8, 8
	size := Size{w, h, 1}
	color := ColorFormat{RGBA, U8}

	var encoded bytes.Buffer
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			encoded.WriteByte(byte(x*8 + y))
			encoded.WriteByte(byte(y * 8))
			encoded.WriteByte(byte(x * 4))
			encoded.WriteByte(255)
		}
	}
	encodedBytes := encoded.Bytes()

	full := make([]byte, len(encodedBytes))
	if err := Decode(R8G8B8A8Unorm, bytes.NewReader(encodedBytes), size, color, full); err != nil {
		t.Fatalf("Decode: %v", err)
	}

	rect := Rect{X: 2, Y: 3, Width: 3, Height: 2}
	rowPitch := int(rect.Width) * color.BytesPerPixel()
	sub := make([]byte, rowPitch*int(rect.Height))
	if err := DecodeRect(R8G8B8A8Unorm, bytes.NewReader(encodedBytes), size, rect, color, sub, rowPitch); err != nil {
		t.Fatalf("DecodeRect: %v", err)
	}

	bpp := color.BytesPerPixel()
	for ry := 0; ry < int(rect.Height); ry++ {
		for rx := 0; rx < int(rect.Width); rx++ {
			fx, fy := int(rect.X)+rx, int(rect.Y)+ry
			fullOff := (fy*w + fx) * bpp
			subOff := ry*rowPitch + rx*bpp
			for c := 0; c < bpp; c++ {
				if sub[subOff+c] != full[fullOff+c] {
					t.Fatalf("rect (%d,%d) channel %d = %d, want %d (full decode)", rx, ry, c, sub[subOff+c], full[fullOff+c])
				}
			}
		}
	}
}
