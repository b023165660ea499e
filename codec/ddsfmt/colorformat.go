/*
DESCRIPTION
  colorformat.go defines the Channels/Precision/ColorFormat closed enums that
  make up the decoded (as opposed to encoded) side of the conversion engine.

AUTHOR
  Mara Lindqvist <mara@ddsgo.dev>

LICENSE
  Copyright (C) 2026 the DDS-Go Authors. All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the DDS-Go Authors.
*/

// Package ddsfmt implements the DDS pixel format conversion engine: the
// closed set of logical pixel Formats, the numeric and block-compression
// decoders/encoders for them, and the dispatch and streaming machinery that
// ties a Format to a caller-requested ColorFormat.
//
// Package ddsfmt never performs I/O beyond the io.Reader/io.Writer it is
// handed and never logs; both concerns belong to the container layer.
package ddsfmt

import "fmt"

// Channels is the closed set of supported decoded channel layouts.
type Channels uint8

const (
	Grayscale Channels = iota
	Alpha
	RGB
	RGBA
)

// Count returns the number of scalar components in one pixel of c.
func (c Channels) Count() int {
	switch c {
	case Grayscale, Alpha:
		return 1
	case RGB:
		return 3
	case RGBA:
		return 4
	default:
		panic(fmt.Sprintf("ddsfmt: invalid Channels %d", uint8(c)))
	}
}

func (c Channels) String() string {
	switch c {
	case Grayscale:
		return "Grayscale"
	case Alpha:
		return "Alpha"
	case RGB:
		return "RGB"
	case RGBA:
		return "RGBA"
	default:
		return fmt.Sprintf("Channels(%d)", uint8(c))
	}
}

// index is this Channels' position in the (channels, precision) key formula.
func (c Channels) index() int {
	return int(c)
}

// Precision is the closed set of supported decoded scalar precisions.
type Precision uint8

const (
	U8 Precision = iota
	U16
	F32
)

// Size returns the byte size of one scalar of p.
func (p Precision) Size() int {
	switch p {
	case U8:
		return 1
	case U16:
		return 2
	case F32:
		return 4
	default:
		panic(fmt.Sprintf("ddsfmt: invalid Precision %d", uint8(p)))
	}
}

func (p Precision) String() string {
	switch p {
	case U8:
		return "U8"
	case U16:
		return "U16"
	case F32:
		return "F32"
	default:
		return fmt.Sprintf("Precision(%d)", uint8(p))
	}
}

func (p Precision) index() int {
	return int(p)
}

// ColorFormat is the (Channels, Precision) pair that names a decoded pixel
// layout. It has a unique key in [0,12) given by channels.index()*3 +
// precision.index(), used as the array index throughout the registry.
type ColorFormat struct {
	Channels  Channels
	Precision Precision
}

// Key returns ColorFormat's unique index in [0, 12).
func (c ColorFormat) Key() int {
	return c.Channels.index()*3 + c.Precision.index()
}

// BytesPerPixel returns channels.Count() * precision.Size().
func (c ColorFormat) BytesPerPixel() int {
	return c.Channels.Count() * c.Precision.Size()
}

func (c ColorFormat) String() string {
	return fmt.Sprintf("%s/%s", c.Channels, c.Precision)
}

// numColorFormats is the size of the dense [0,12) key space.
const numColorFormats = 12

// allChannels and allPrecisions enumerate the closed sets in index order.
var (
	allChannels   = [4]Channels{Grayscale, Alpha, RGB, RGBA}
	allPrecisions = [3]Precision{U8, U16, F32}
)

// ColorFormatSet is a bitset over the 12 possible ColorFormat keys.
type ColorFormatSet uint16

func (s ColorFormatSet) Has(c ColorFormat) bool {
	return s&(1<<uint(c.Key())) != 0
}

func (s *ColorFormatSet) Add(c ColorFormat) {
	*s |= 1 << uint(c.Key())
}

// Channels returns the set of Channels reachable by at least one entry of s.
func (s ColorFormatSet) Channels() []Channels {
	seen := map[Channels]bool{}
	var out []Channels
	for _, ch := range allChannels {
		for _, pr := range allPrecisions {
			if s.Has(ColorFormat{ch, pr}) && !seen[ch] {
				seen[ch] = true
				out = append(out, ch)
			}
		}
	}
	return out
}

// Precisions returns the set of Precisions reachable by at least one entry
// of s.
func (s ColorFormatSet) Precisions() []Precision {
	seen := map[Precision]bool{}
	var out []Precision
	for _, pr := range allPrecisions {
		for _, ch := range allChannels {
			if s.Has(ColorFormat{ch, pr}) && !seen[pr] {
				seen[pr] = true
				out = append(out, pr)
			}
		}
	}
	return out
}
