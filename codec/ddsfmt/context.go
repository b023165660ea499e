/*
DESCRIPTION
  context.go implements DecodeContext, the per-call memory budget: every
  scratch allocation the engine makes beyond its fixed stack buffers charges
  the budget and fails closed with ErrMemoryLimitExceeded on overshoot.

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

// DefaultMemoryLimit is used by NewDecodeContext when the caller does not
// supply one; it's generous enough for any single-call scratch allocation
// this engine makes (read buffer, rect scratch row, pixel staging spill).
const DefaultMemoryLimit = 256 << 20 // 256 MiB

// DecodeContext holds the target ColorFormat, image Size and a remaining
// memory budget for one top-level decode call. It is not safe for
// concurrent use; create one per call.
type DecodeContext struct {
	Color     ColorFormat
	Size      Size
	remaining int64
	unlimited bool
}

// NewDecodeContext creates a DecodeContext with the given memory limit in
// bytes. A non-positive limit means unlimited (limit <= 0 disables the
// budget check, matching a caller who explicitly opts out).
func NewDecodeContext(color ColorFormat, size Size, limit int64) *DecodeContext {
	return &DecodeContext{Color: color, Size: size, remaining: limit, unlimited: limit <= 0}
}

// Charge deducts n bytes from the remaining budget, returning
// ErrMemoryLimitExceeded if that would take it negative. A DecodeContext
// created with a non-positive limit never fails. The unlimited flag is
// fixed at construction time so a budget legitimately exhausted to exactly
// zero stays enforced, rather than being mistaken for "no limit".
func (c *DecodeContext) Charge(n int) error {
	if c.unlimited {
		return nil
	}
	if int64(n) > c.remaining {
		return ErrMemoryLimitExceeded
	}
	c.remaining -= int64(n)
	return nil
}

// Remaining reports the current budget in bytes.
func (c *DecodeContext) Remaining() int64 {
	return c.remaining
}

// Size describes an image's dimensions in pixels. Depth is 1 for 2D
// textures; width/height/depth are all counted in pixels, not blocks.
type Size struct {
	Width, Height, Depth uint32
}

// Pixels returns the total pixel count of Size, as a 64-bit value to avoid
// overflow for large volume textures.
func (s Size) Pixels() uint64 {
	return uint64(s.Width) * uint64(s.Height) * uint64(s.Depth)
}
