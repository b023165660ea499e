/*
DESCRIPTION
  shared_exp.go converts the RGB9E5 shared-exponent encoding used by
  R9G9B9E5_SHAREDEXP: three 9-bit unsigned mantissas and one shared 5-bit
  exponent, biased by 15, each channel's real value being
  mantissa * 2^(exponent-15-9).

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

// RGB9E5ChannelToF32 decodes a single channel of an RGB9E5 pixel to F32 given its
// 9-bit mantissa and the pixel's shared 5-bit exponent.
func RGB9E5ChannelToF32(mantissa uint16, exp uint8) float32 {
	return float32(mantissa) * TwoPowI(int8(exp)-24)
}

// RGB9E5ChannelToN8 is the fused mantissa+exponent to Unorm8 kernel.
func RGB9E5ChannelToN8(mantissa uint16, exp uint8) uint8 {
	v := float32(mantissa) * TwoPowI(int8(exp)-24) * 255.0
	if v < 0 {
		v = 0
	} else if v > 255 {
		v = 255
	}
	return uint8(v + 0.5)
}

// RGB9E5ChannelToN16 is the fused mantissa+exponent to Unorm16 kernel.
func RGB9E5ChannelToN16(mantissa uint16, exp uint8) uint16 {
	v := float32(mantissa) * TwoPowI(int8(exp)-24) * 65535.0
	if v < 0 {
		v = 0
	} else if v > 65535 {
		v = 65535
	}
	return uint16(v + 0.5)
}
