/*
DESCRIPTION
  util.go provides small numeric helpers shared by the float conversion
  kernels.

AUTHOR
  Mara Lindqvist <mara@ddsgo.dev>

LICENSE
  Copyright (C) 2026 the DDS-Go Authors. All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the DDS-Go Authors.
*/

package convert

import "math"

// TwoPowI computes 2^exponent as an f32 directly from its IEEE-754 bit
// pattern, avoiding the libm call that math.Pow would require.
func TwoPowI(exponent int8) float32 {
	bits := uint32(int32(exponent)+127) << 23
	return math.Float32frombits(bits)
}
