/*
DESCRIPTION
  rect.go defines Rect, the sub-image window accepted by DecodeRect, and its
  bounds checking against a full image Size.

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

// Rect is a sub-rectangle of an image, in pixel coordinates.
type Rect struct {
	X, Y, Width, Height uint32
}

// checkBounds verifies that r lies entirely within an image of size s,
// computing the far edge in 64-bit to avoid overflow for rects near
// uint32's range.
func (r Rect) checkBounds(s Size) error {
	endX := uint64(r.X) + uint64(r.Width)
	endY := uint64(r.Y) + uint64(r.Height)
	if endX > uint64(s.Width) || endY > uint64(s.Height) {
		return ErrRectOutOfBounds
	}
	return nil
}

// checkBuffer verifies that rowPitch is wide enough for one row of rect r
// at bytesPerPixel, and that buf is long enough for rowPitch*r.Height.
func (r Rect) checkBuffer(bytesPerPixel, rowPitch int, buf []byte) error {
	minPitch := int(r.Width) * bytesPerPixel
	if rowPitch < minPitch {
		return &RowPitchTooSmall{RequiredMinimum: minPitch}
	}
	minBuf := rowPitch * int(r.Height)
	if len(buf) < minBuf {
		return &RectBufferTooSmall{RequiredMinimum: minBuf}
	}
	return nil
}
