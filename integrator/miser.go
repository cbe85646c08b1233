// Copyright 2024 The Cepgen-sub003 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package integrator

import (
	"math"

	"github.com/cpmech/gosl/rnd"
)

// MiserParams configures a recursive-stratified-sampling run.
type MiserParams struct {
	NDim        int
	MinSamples  int // below this, a sub-region is evaluated by plain sampling
	TotalSamples int
	Cancel      func() bool
}

// DefaultMiserParams returns defaults sized for a handful of dimensions.
func DefaultMiserParams(ndim int) MiserParams {
	return MiserParams{NDim: ndim, MinSamples: 64, TotalSamples: 100000}
}

// region is an axis-aligned sub-hypercube of the unit cube.
type region struct {
	lo, hi []float64
}

func (r region) volume() float64 {
	v := 1.0
	for d := range r.lo {
		v *= r.hi[d] - r.lo[d]
	}
	return v
}

func (r region) sample(u []float64, x []float64) {
	for d := range r.lo {
		x[d] = r.lo[d] + u[d]*(r.hi[d]-r.lo[d])
	}
}

// Miser integrates f over [0,1]^p.NDim using recursive stratified sampling:
// each region is split along the axis of largest estimated variance into two
// equal halves, samples are divided between them proportionally to their
// standard deviations, and the recursion bottoms out once a region's sample
// budget falls below MinSamples (spec.md section 4.6, "MISER alternative").
func Miser(f Func, p MiserParams) Result {
	full := region{lo: make([]float64, p.NDim), hi: make([]float64, p.NDim)}
	for d := range full.hi {
		full.hi[d] = 1
	}
	minSamples := p.MinSamples
	if minSamples < 8 {
		minSamples = 64
	}
	aborted := false
	value, variance := miserRecurse(f, full, p.TotalSamples, minSamples, p.Cancel, &aborted)
	return Result{Value: value, Uncertainty: math.Sqrt(math.Max(variance, 0)), Aborted: aborted}
}

func miserRecurse(f Func, r region, samples, minSamples int, cancel func() bool, aborted *bool) (mean, variance float64) {
	ndim := len(r.lo)
	if samples < 2 {
		return 0, 0
	}
	if cancel != nil && cancel() {
		*aborted = true
		return 0, 0
	}

	// below the minimum-samples floor, fall back to plain Monte-Carlo over
	// the region.
	if samples <= minSamples {
		return plainSample(f, r, samples, cancel, aborted)
	}

	// probe each axis with a small pilot sample to estimate its variance,
	// then split along the axis of largest variance (MISER's bisection
	// rule).
	pilot := samples / 8
	if pilot < 8 {
		pilot = 8
	}
	bestAxis := 0
	bestVar := -1.0
	lowMean, highMean := make([]float64, ndim), make([]float64, ndim)
	lowVar, highVar := make([]float64, ndim), make([]float64, ndim)
	for d := 0; d < ndim; d++ {
		mid := (r.lo[d] + r.hi[d]) / 2
		lowR, highR := splitAt(r, d, mid)
		lm, lv := plainSample(f, lowR, pilot/2, cancel, aborted)
		hm, hv := plainSample(f, highR, pilot/2, cancel, aborted)
		lowMean[d], highMean[d] = lm, hm
		lowVar[d], highVar[d] = lv, hv
		totalVar := lv + hv
		if totalVar > bestVar {
			bestVar = totalVar
			bestAxis = d
		}
	}

	mid := (r.lo[bestAxis] + r.hi[bestAxis]) / 2
	lowR, highR := splitAt(r, bestAxis, mid)

	sdLow := math.Sqrt(math.Max(lowVar[bestAxis], 1e-300))
	sdHigh := math.Sqrt(math.Max(highVar[bestAxis], 1e-300))
	frac := sdLow / (sdLow + sdHigh)
	remaining := samples - pilot
	if remaining < 2 {
		remaining = 2
	}
	nLow := int(frac * float64(remaining))
	nHigh := remaining - nLow
	if nLow < 2 {
		nLow = 2
	}
	if nHigh < 2 {
		nHigh = 2
	}

	lm, lv := miserRecurse(f, lowR, nLow, minSamples, cancel, aborted)
	hm, hv := miserRecurse(f, highR, nHigh, minSamples, cancel, aborted)

	volLow, volHigh := lowR.volume(), highR.volume()
	volTotal := volLow + volHigh
	mean = (lm*volLow + hm*volHigh) / volTotal
	variance = (lv*volLow*volLow + hv*volHigh*volHigh) / (volTotal * volTotal)
	return mean, variance
}

func splitAt(r region, axis int, mid float64) (region, region) {
	ndim := len(r.lo)
	lowR := region{lo: append([]float64{}, r.lo...), hi: append([]float64{}, r.hi...)}
	highR := region{lo: append([]float64{}, r.lo...), hi: append([]float64{}, r.hi...)}
	lowR.hi[axis] = mid
	highR.lo[axis] = mid
	_ = ndim
	return lowR, highR
}

func plainSample(f Func, r region, n int, cancel func() bool, aborted *bool) (mean, variance float64) {
	if n <= 0 {
		return 0, 0
	}
	ndim := len(r.lo)
	x := make([]float64, ndim)
	u := make([]float64, ndim)
	sum, sum2 := 0.0, 0.0
	count := 0
	for i := 0; i < n; i++ {
		if cancel != nil && cancel() {
			*aborted = true
			break
		}
		for d := 0; d < ndim; d++ {
			u[d] = rnd.Float64(0, 1)
		}
		r.sample(u, x)
		val := f(x)
		sum += val
		sum2 += val * val
		count++
	}
	if count == 0 {
		return 0, 0
	}
	mean = sum / float64(count)
	variance = math.Max(sum2/float64(count)-mean*mean, 0) / float64(count)
	return mean, variance
}
