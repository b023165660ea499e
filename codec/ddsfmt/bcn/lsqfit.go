/*
DESCRIPTION
  lsqfit.go computes least-squares endpoint fits for the BC1/BC4/BC5
  encoders: a 3D principal-axis line through a block's RGB texels (BC1) and
  a 1D moment fit through a block's single-channel texels (BC4, reused by
  BC5). Both replace a naive min/max endpoint pick with the same numeric
  toolkit the teacher's cmd/rv/probe.go uses for frame statistics
  (gonum.org/v1/gonum/stat), extended here to gonum/mat's symmetric
  eigendecomposition for the 3D case.

AUTHOR
  Mara Lindqvist <mara@ddsgo.dev>

LICENSE
  Copyright (C) 2026 the DDS-Go Authors. All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the DDS-Go Authors.
*/

package bcn

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// fitLine3D finds the two RGB texels in px that lie furthest apart along
// the block's principal axis: the centroid is the per-channel mean (via
// stat.Mean) and the axis is the dominant eigenvector of the channel
// covariance matrix (via stat.CovarianceMatrix and mat.EigenSym). This is
// the least-squares line through the 16 points in the sense that it
// minimizes total squared perpendicular distance, the same criterion
// BC1's endpoint fit is specified to use.
//
// Degenerate blocks (every texel identical, or a covariance matrix whose
// eigendecomposition fails) fall back to the min/max-luminance pair.
func fitLine3D(px [16]RGBA) (lo, hi RGBA) {
	var rs, gs, bs [16]float64
	for i, p := range px {
		rs[i], gs[i], bs[i] = float64(p.R), float64(p.G), float64(p.B)
	}
	cr := stat.Mean(rs[:], nil)
	cg := stat.Mean(gs[:], nil)
	cb := stat.Mean(bs[:], nil)

	centered := mat.NewDense(16, 3, nil)
	for i := range px {
		centered.Set(i, 0, rs[i]-cr)
		centered.Set(i, 1, gs[i]-cg)
		centered.Set(i, 2, bs[i]-cb)
	}

	var cov mat.SymDense
	stat.CovarianceMatrix(&cov, centered, nil)

	var eig mat.EigenSym
	if !eig.Factorize(&cov, true) {
		return minMaxByLuminance(px)
	}

	values := eig.Values(nil)
	var vectors mat.Dense
	eig.VectorsTo(&vectors)

	best := 0
	for i, v := range values {
		if v > values[best] {
			best = i
		}
	}
	if values[best] <= 0 {
		// Flat block: every texel is the same point, no axis to fit.
		return minMaxByLuminance(px)
	}
	ax, ay, az := vectors.At(0, best), vectors.At(1, best), vectors.At(2, best)

	minT, maxT := math.Inf(1), math.Inf(-1)
	var minP, maxP [3]float64
	for i := range px {
		t := (rs[i]-cr)*ax + (gs[i]-cg)*ay + (bs[i]-cb)*az
		if t < minT {
			minT = t
			minP = [3]float64{rs[i], gs[i], bs[i]}
		}
		if t > maxT {
			maxT = t
			maxP = [3]float64{rs[i], gs[i], bs[i]}
		}
	}
	lo = RGBA{clampChan(minP[0]), clampChan(minP[1]), clampChan(minP[2]), 255}
	hi = RGBA{clampChan(maxP[0]), clampChan(maxP[1]), clampChan(maxP[2]), 255}
	return
}

// minMaxByLuminance is fitLine3D's fallback for degenerate blocks (zero
// variance, or a covariance matrix whose eigendecomposition fails): the
// darkest and brightest texel by integer luma.
func minMaxByLuminance(px [16]RGBA) (lo, hi RGBA) {
	lum := func(p RGBA) int { return int(p.R)*299 + int(p.G)*587 + int(p.B)*114 }
	lo, hi = px[0], px[0]
	loL, hiL := lum(px[0]), lum(px[0])
	for _, p := range px[1:] {
		l := lum(p)
		if l < loL {
			lo, loL = p, l
		}
		if l > hiL {
			hi, hiL = p, l
		}
	}
	return lo, hi
}

func clampChan(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}

// fitEndpoints1D computes a 1D moment-matched endpoint pair for a BC4
// channel ramp: mean ± sqrt(3)*stddev (the range that matches a uniform
// distribution's variance to the sample's), clamped to the sample's actual
// [min,max] so the ramp never extrapolates past observed texels.
func fitEndpoints1D(px [16]uint8) (lo, hi uint8) {
	var vals [16]float64
	minV, maxV := px[0], px[0]
	for i, v := range px {
		vals[i] = float64(v)
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}
	mean := stat.Mean(vals[:], nil)
	sd := stat.StdDev(vals[:], nil)

	spread := sd * math.Sqrt(3)
	loF, hiF := mean-spread, mean+spread
	if loF < float64(minV) {
		loF = float64(minV)
	}
	if hiF > float64(maxV) {
		hiF = float64(maxV)
	}
	lo, hi = clampChan(loF), clampChan(hiF)
	if lo == hi {
		if hi < 255 {
			hi++
		} else {
			lo--
		}
	}
	return lo, hi
}
