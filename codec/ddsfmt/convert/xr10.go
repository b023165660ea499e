/*
DESCRIPTION
  xr10.go converts the 10-bit XR_BIAS fixed-point format used by
  R10G10B10_XR_BIAS_A2_UNORM. It is a 2.8 fixed-point number biased by -1.5
  and scaled by 256/510, giving an effective range of about
  [-0.75294, 1.25294].

  https://learn.microsoft.com/en-us/windows-hardware/drivers/display/xr-bias-to-float-conversion-rules

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

func XR10ToN8(x uint16) uint8 {
	// new range: [-384, 639] (or [-0.75294, 1.25294])
	v := int16(x) - 0x180
	// new range: [0, 510] (or [0.0, 1.0]), clamped
	if v < 0 {
		v = 0
	} else if v > 510 {
		v = 510
	}
	u := uint16(v)
	// round(u / 510 * 255), done faster
	return uint8((u + 1) >> 1)
}

func XR10ToN16(x uint16) uint16 {
	v := int16(x) - 0x180
	if v < 0 {
		v = 0
	} else if v > 510 {
		v = 510
	}
	u := uint16(v)
	return uint16((uint32(u)*8421376 + 65535) >> 16)
}

func XR10ToF32(x uint16) float32 {
	// 0x180 == 1.5 in 2.8 fixed-point.
	const f = 1.0 / 510.0
	return float32(int16(x)-0x180) * f
}
