/*
DESCRIPTION
  errors.go defines the bit-exact error taxonomy of the conversion engine:
  caller errors (pre-flight, reader untouched), resource errors
  (MemoryLimitExceeded), and I/O errors (surfaced verbatim from the
  reader/writer). There is no data-validation error: the decoder tolerates
  any bit pattern in the encoded pixel stream.

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
	"fmt"

	"github.com/pkg/errors"
)

// ErrMemoryLimitExceeded is returned when an allocation would overshoot a
// DecodeContext's remaining memory budget.
var ErrMemoryLimitExceeded = errors.New("ddsfmt: memory limit exceeded")

// ErrRectOutOfBounds is returned when a requested Rect does not fit inside
// the image it is being decoded from.
var ErrRectOutOfBounds = errors.New("ddsfmt: rect out of bounds")

// UnexpectedBufferSize reports that a caller-provided buffer's length did
// not equal the length the operation requires.
type UnexpectedBufferSize struct {
	Expected int
	Actual   int
}

func (e *UnexpectedBufferSize) Error() string {
	return fmt.Sprintf("ddsfmt: unexpected buffer size: expected %d, got %d", e.Expected, e.Actual)
}

// RowPitchTooSmall reports that a caller-supplied row pitch cannot hold one
// row of the requested rect at the requested ColorFormat.
type RowPitchTooSmall struct {
	RequiredMinimum int
}

func (e *RowPitchTooSmall) Error() string {
	return fmt.Sprintf("ddsfmt: row pitch too small: need at least %d", e.RequiredMinimum)
}

// RectBufferTooSmall reports that a caller-supplied rect output buffer is
// shorter than row_pitch * rect.Height.
type RectBufferTooSmall struct {
	RequiredMinimum int
}

func (e *RectBufferTooSmall) Error() string {
	return fmt.Sprintf("ddsfmt: rect buffer too small: need at least %d", e.RequiredMinimum)
}

// UnsupportedColorFormat reports that Format cannot produce or consume
// Color through any decoder/encoder entry.
type UnsupportedColorFormat struct {
	Format Format
	Color  ColorFormat
}

func (e *UnsupportedColorFormat) Error() string {
	return fmt.Sprintf("ddsfmt: %s does not support color format %s", e.Format, e.Color)
}

// WrapIO wraps an I/O error (from the caller's reader/writer) with context,
// leaving the original error visible via errors.Unwrap/errors.Is.
func WrapIO(err error, context string) error {
	if err == nil {
		return nil
	}
	return errors.Wrap(err, context)
}
