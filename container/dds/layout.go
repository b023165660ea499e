/*
DESCRIPTION
  layout.go computes DataLayout: the byte offset and size of every mipmap
  level of every surface (array element x cube face) described by a
  header, relative to the start of the data section (immediately after the
  header / DX10 extension). Grounded on original_source/src/lib.rs and
  tests/layout.rs, which describe DataLayout as one of three shapes:
  a single Texture, a Volume (3D, whose mip levels also halve depth), or a
  TextureArray (array_size * (6 if cube map) repetitions of a Texture's mip
  chain, each stored contiguously).

AUTHOR
  Mara Lindqvist <mara@ddsgo.dev>

LICENSE
  Copyright (C) 2026 the DDS-Go Authors. All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the DDS-Go Authors.
*/

package dds

import "github.com/ddsgo/dds/codec/ddsfmt"

// Surface is one mipmap level's offset (in bytes, relative to the start of
// the data section) and pixel dimensions.
type Surface struct {
	Offset uint64
	Size   ddsfmt.Size
	Bytes  uint64
}

// Kind distinguishes the three shapes a DataLayout can take.
type Kind int

const (
	KindTexture Kind = iota
	KindVolume
	KindTextureArray
)

// DataLayout describes every surface level in a DDS data section and their
// byte offsets.
type DataLayout struct {
	Kind Kind

	// Texture / Volume: the one surface's mip chain (length mipmapCount).
	// TextureArray: the first element's mip chain; every other element
	// repeats the same chain with a constant stride (chain's DataLen).
	Mips []Surface

	// ArrayCount is array_size * (6 if cube map), 1 for Kind == Texture or
	// KindVolume.
	ArrayCount uint32
	IsCubeMap  bool
}

// DataLen returns the total number of data-section bytes this layout
// covers.
func (l DataLayout) DataLen() uint64 {
	if len(l.Mips) == 0 {
		return 0
	}
	chain := l.Mips[len(l.Mips)-1].Offset + l.Mips[len(l.Mips)-1].Bytes
	if l.Kind == KindTextureArray {
		return chain * uint64(l.ArrayCount)
	}
	return chain
}

// Element returns the mip chain for array/cube-map index i (0-based),
// offset by i's share of the repeated per-element stride. For
// Kind != KindTextureArray, only i == 0 is valid.
func (l DataLayout) Element(i uint32) []Surface {
	if l.Kind != KindTextureArray || i == 0 {
		return l.Mips
	}
	stride := l.Mips[len(l.Mips)-1].Offset + l.Mips[len(l.Mips)-1].Bytes
	out := make([]Surface, len(l.Mips))
	for j, m := range l.Mips {
		out[j] = Surface{Offset: m.Offset + stride*uint64(i), Size: m.Size, Bytes: m.Bytes}
	}
	return out
}

func mipDimension(base uint32, level uint32) uint32 {
	d := base >> level
	if d == 0 {
		d = 1
	}
	return d
}

// buildMipChain computes the offsets/sizes of one surface's mipmapCount
// levels, starting at width x height x depth for level 0 and halving
// (floor, minimum 1) each dimension per level.
func buildMipChain(f ddsfmt.Format, width, height, depth, mipmapCount uint32) ([]Surface, error) {
	if mipmapCount == 0 {
		mipmapCount = 1
	}
	mips := make([]Surface, mipmapCount)
	var offset uint64
	for level := uint32(0); level < mipmapCount; level++ {
		w := mipDimension(width, level)
		h := mipDimension(height, level)
		d := mipDimension(depth, level)
		size, ok := ddsfmt.EncodedSize(f, w, h, d)
		if !ok {
			return nil, &InvalidHeader{Reason: "unsupported format in mip chain"}
		}
		mips[level] = Surface{Offset: offset, Size: ddsfmt.Size{Width: w, Height: h, Depth: d}, Bytes: size}
		offset += size
	}
	return mips, nil
}

// DataLayoutFromHeader computes the DataLayout for header, given its
// already-resolved pixel format.
func DataLayoutFromHeader(header Header, format ddsfmt.Format) (DataLayout, error) {
	depth := header.Depth
	if depth == 0 {
		depth = 1
	}
	mipmapCount := header.MipmapCount
	if mipmapCount == 0 {
		mipmapCount = 1
	}

	arrayCount := uint32(1)
	if header.Dxt10 != nil {
		arrayCount = header.Dxt10.ArraySize
		if arrayCount == 0 {
			arrayCount = 1
		}
	}
	isCubeMap := header.IsCubeMap()
	if isCubeMap {
		arrayCount *= 6
	}

	if header.IsVolume() {
		mips, err := buildMipChain(format, header.Width, header.Height, depth, mipmapCount)
		if err != nil {
			return DataLayout{}, err
		}
		return DataLayout{Kind: KindVolume, Mips: mips, ArrayCount: 1}, nil
	}

	mips, err := buildMipChain(format, header.Width, header.Height, 1, mipmapCount)
	if err != nil {
		return DataLayout{}, err
	}
	if arrayCount <= 1 {
		return DataLayout{Kind: KindTexture, Mips: mips, ArrayCount: 1}, nil
	}
	return DataLayout{Kind: KindTextureArray, Mips: mips, ArrayCount: arrayCount, IsCubeMap: isCubeMap}, nil
}
