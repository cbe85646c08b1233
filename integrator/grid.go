// Copyright 2024 The Cepgen-sub003 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package integrator implements the adaptive Monte-Carlo integration layer
// (spec.md section 4.6): a VEGAS-style importance-sampling grid with a
// recursive-stratified-sampling MISER fallback. VEGAS runs through
// Integrate(f, Params) and MISER through Miser(f, MiserParams); both take the
// same Func and return the same Result, and the generator package picks one
// by algorithm name.
package integrator

import "math"

// grid holds the per-dimension bin edges of a VEGAS importance-sampling
// map. Each dimension is divided into the same number of equal-probability
// bins; refine reassigns the edges so a bin's new width is
// inversely proportional to its accumulated integrand mass, the importance
// update spec.md section 4.6 step 4 describes.
type grid struct {
	ndim int
	bins int
	// edges[d] has bins+1 monotonically increasing values in [0,1], with
	// edges[d][0]=0 and edges[d][bins]=1.
	edges [][]float64
}

func newGrid(ndim, bins int) *grid {
	g := &grid{ndim: ndim, bins: bins, edges: make([][]float64, ndim)}
	for d := 0; d < ndim; d++ {
		g.edges[d] = make([]float64, bins+1)
		for i := 0; i <= bins; i++ {
			g.edges[d][i] = float64(i) / float64(bins)
		}
	}
	return g
}

// mapPoint transforms a uniform hypercube coordinate u (itself in [0,1]^ndim)
// into the grid-warped point x, returning x and the Jacobian weight of the
// transformation (the product, over dimensions, of bins*(bin width)).
func (g *grid) mapPoint(u []float64, x []float64) float64 {
	jac := 1.0
	for d := 0; d < g.ndim; d++ {
		pos := u[d] * float64(g.bins)
		bin := int(pos)
		if bin >= g.bins {
			bin = g.bins - 1
		}
		frac := pos - float64(bin)
		lo, hi := g.edges[d][bin], g.edges[d][bin+1]
		width := hi - lo
		x[d] = lo + frac*width
		jac *= width * float64(g.bins)
	}
	return jac
}

// refine rebuilds every dimension's bin edges from accumulated per-bin
// integrand mass, smoothing contiguous bins with exponent alpha in [1,2]
// before redistributing edges to equalise per-bin mass (spec.md section 4.6
// step 4).
func (g *grid) refine(binSums [][]float64, alpha float64) {
	for d := 0; d < g.ndim; d++ {
		smoothed := smoothBins(binSums[d], alpha)
		g.edges[d] = redistribute(g.edges[d], smoothed)
	}
}

// smoothBins averages each bin with its immediate neighbours (the standard
// VEGAS 3-point smoothing) then raises the result to the given exponent,
// clamping to a small positive floor so a bin that saw zero integrand mass
// still gets a nonzero share of the next iteration's grid.
func smoothBins(sums []float64, alpha float64) []float64 {
	n := len(sums)
	out := make([]float64, n)
	total := 0.0
	for i := 0; i < n; i++ {
		total += sums[i]
	}
	if total <= 0 {
		for i := range out {
			out[i] = 1
		}
		return out
	}
	for i := 0; i < n; i++ {
		left, right := sums[i], sums[i]
		if i > 0 {
			left = sums[i-1]
		}
		if i < n-1 {
			right = sums[i+1]
		}
		avg := (left + sums[i] + right) / 3
		if avg <= 0 {
			avg = 1e-30
		}
		out[i] = pow(avg, alpha)
	}
	return out
}

// redistribute rebuilds bin edges so each new bin spans equal accumulated
// weight under the smoothed per-old-bin mass.
func redistribute(oldEdges []float64, weight []float64) []float64 {
	n := len(weight)
	total := 0.0
	for _, w := range weight {
		total += w
	}
	target := total / float64(n)

	newEdges := make([]float64, n+1)
	newEdges[0] = oldEdges[0]
	newEdges[n] = oldEdges[n]

	acc, oldBin := 0.0, 0
	need := target
	for i := 1; i < n; i++ {
		for need > 0 && oldBin < n {
			w := weight[oldBin]
			if w >= need {
				frac := need / w
				lo, hi := oldEdges[oldBin], oldEdges[oldBin+1]
				newEdges[i] = lo + frac*(hi-lo)
				weight[oldBin] -= need
				need = 0
			} else {
				need -= w
				acc += w
				oldBin++
			}
		}
		need = target
	}
	_ = acc
	return newEdges
}

func pow(x, y float64) float64 {
	return math.Pow(x, y)
}
