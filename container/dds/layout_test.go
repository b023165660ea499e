/*
DESCRIPTION
  layout_test.go checks buildMipChain's dimension-halving and
  DataLayoutFromHeader's three Kind shapes (Texture, Volume, TextureArray),
  including the cube-map x6 array count.

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

import (
	"testing"

	"github.com/ddsgo/dds/codec/ddsfmt"
)

func TestMipDimensionHalvesWithFloor(t *testing.T) {
	cases := []struct{ base, level, want uint32 }{
		{8, 0, 8}, {8, 1, 4}, {8, 2, 2}, {8, 3, 1}, {8, 4, 1},
		{1, 0, 1}, {1, 5, 1},
	}
	for _, c := range cases {
		if got := mipDimension(c.base, c.level); got != c.want {
			t.Fatalf("mipDimension(%d,%d) = %d, want %d", c.base, c.level, got, c.want)
		}
	}
}

func TestBuildMipChainOffsetsAccumulate(t *testing.T) {
	mips, err := buildMipChain(ddsfmt.R8G8B8A8Unorm, 8, 8, 1, 4)
	if err != nil {
		t.Fatalf("buildMipChain: %v", err)
	}
	if len(mips) != 4 {
		t.Fatalf("len(mips) = %d, want 4", len(mips))
	}
	wantSizes := []uint32{8, 4, 2, 1}
	var offset uint64
	for i, m := range mips {
		if m.Size.Width != wantSizes[i] || m.Size.Height != wantSizes[i] {
			t.Fatalf("level %d size = %dx%d, want %dx%d", i, m.Size.Width, m.Size.Height, wantSizes[i], wantSizes[i])
		}
		if m.Offset != offset {
			t.Fatalf("level %d offset = %d, want %d", i, m.Offset, offset)
		}
		offset += m.Bytes
	}
}

func TestBuildMipChainZeroMipmapCountDefaultsToOne(t *testing.T) {
	mips, err := buildMipChain(ddsfmt.R8Unorm, 4, 4, 1, 0)
	if err != nil {
		t.Fatalf("buildMipChain: %v", err)
	}
	if len(mips) != 1 {
		t.Fatalf("len(mips) = %d, want 1", len(mips))
	}
}

func TestDataLayoutFromHeaderSimpleTexture(t *testing.T) {
	h := Header{Width: 16, Height: 16, MipmapCount: 1}
	layout, err := DataLayoutFromHeader(h, ddsfmt.R8G8B8A8Unorm)
	if err != nil {
		t.Fatalf("DataLayoutFromHeader: %v", err)
	}
	if layout.Kind != KindTexture || layout.ArrayCount != 1 {
		t.Fatalf("layout = %+v, want Kind=KindTexture ArrayCount=1", layout)
	}
	if layout.DataLen() != 16*16*4 {
		t.Fatalf("DataLen() = %d, want %d", layout.DataLen(), 16*16*4)
	}
}

func TestDataLayoutFromHeaderVolumeHalvesDepth(t *testing.T) {
	h := Header{Width: 8, Height: 8, Depth: 8, MipmapCount: 4, Caps2: Caps2Volume}
	layout, err := DataLayoutFromHeader(h, ddsfmt.R8Unorm)
	if err != nil {
		t.Fatalf("DataLayoutFromHeader: %v", err)
	}
	if layout.Kind != KindVolume {
		t.Fatalf("Kind = %v, want KindVolume", layout.Kind)
	}
	wantDepths := []uint32{8, 4, 2, 1}
	for i, m := range layout.Mips {
		if m.Size.Depth != wantDepths[i] {
			t.Fatalf("level %d depth = %d, want %d", i, m.Size.Depth, wantDepths[i])
		}
	}
}

func TestDataLayoutFromHeaderTextureArrayStride(t *testing.T) {
	h := Header{
		Width: 4, Height: 4, MipmapCount: 1,
		Dxt10: &HeaderDxt10{ArraySize: 3, ResourceDimension: ResourceDimensionTexture2D},
	}
	layout, err := DataLayoutFromHeader(h, ddsfmt.R8G8B8A8Unorm)
	if err != nil {
		t.Fatalf("DataLayoutFromHeader: %v", err)
	}
	if layout.Kind != KindTextureArray || layout.ArrayCount != 3 {
		t.Fatalf("layout = %+v, want Kind=KindTextureArray ArrayCount=3", layout)
	}
	stride := layout.Mips[0].Bytes
	elem1 := layout.Element(1)
	if elem1[0].Offset != stride {
		t.Fatalf("Element(1)[0].Offset = %d, want stride %d", elem1[0].Offset, stride)
	}
	if layout.DataLen() != stride*3 {
		t.Fatalf("DataLen() = %d, want %d", layout.DataLen(), stride*3)
	}
}

func TestDataLayoutFromHeaderCubeMapMultipliesArrayCountBySix(t *testing.T) {
	h := Header{
		Width: 4, Height: 4, MipmapCount: 1, Caps2: Caps2CubeMap,
		Dxt10: &HeaderDxt10{ArraySize: 1, ResourceDimension: ResourceDimensionTexture2D, MiscFlag: MiscFlagTextureCube},
	}
	layout, err := DataLayoutFromHeader(h, ddsfmt.R8G8B8A8Unorm)
	if err != nil {
		t.Fatalf("DataLayoutFromHeader: %v", err)
	}
	if layout.ArrayCount != 6 || !layout.IsCubeMap {
		t.Fatalf("layout = %+v, want ArrayCount=6 IsCubeMap=true", layout)
	}
}

func TestDataLayoutElementZeroIsIdentity(t *testing.T) {
	h := Header{Width: 4, Height: 4, MipmapCount: 1}
	layout, err := DataLayoutFromHeader(h, ddsfmt.R8G8B8A8Unorm)
	if err != nil {
		t.Fatalf("DataLayoutFromHeader: %v", err)
	}
	if layout.Element(0)[0].Offset != layout.Mips[0].Offset {
		t.Fatalf("Element(0) should equal Mips for Kind != KindTextureArray")
	}
}
