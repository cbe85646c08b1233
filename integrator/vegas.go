// Copyright 2024 The Cepgen-sub003 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package integrator

import (
	"math"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/rnd"
	"gonum.org/v1/gonum/stat"
)

// Func is the integrand signature Integrate expects: a point in [0,1]^ndim
// mapping to a non-negative real value (spec.md section 4.6's f: [0,1]^N ->
// R>=0 contract).
type Func func(x []float64) float64

// Params configures a VEGAS run.
type Params struct {
	NDim        int
	Bins        int     // equal-probability bins per axis, K in spec.md section 4.6
	Iterations  int     // J
	SamplesIter int     // M, stratified samples per iteration
	Alpha       float64 // grid-refinement smoothing exponent, in [1,2]
	Verbose     bool
	// Cancel is polled once per sample; when it reports true the integrator
	// stops early and returns the partial accumulation with Aborted set.
	Cancel func() bool
}

// DefaultParams returns sane VEGAS defaults (10 iterations of 10000 samples
// over 50 bins per axis, matching the scale the LPAIR/kT literature uses
// for a handful of integration dimensions).
func DefaultParams(ndim int) Params {
	return Params{
		NDim:        ndim,
		Bins:        50,
		Iterations:  10,
		SamplesIter: 10000,
		Alpha:       1.5,
	}
}

// Result is the outcome of an integration run: the combined estimate, its
// standard uncertainty, and the refined grid needed to seed the subsequent
// generation phase (spec.md section 4.6, "Persist the refined grid").
type Result struct {
	Value       float64
	Uncertainty float64
	Aborted     bool
	grid        *grid
}

// Integrate runs VEGAS-style adaptive Monte-Carlo integration of f over
// [0,1]^p.NDim (spec.md section 4.6).
func Integrate(f Func, p Params) Result {
	g := newGrid(p.NDim, p.Bins)

	var means, variances []float64
	aborted := false

	x := make([]float64, p.NDim)
	u := make([]float64, p.NDim)

	for iter := 0; iter < p.Iterations && !aborted; iter++ {
		binSums := make([][]float64, p.NDim)
		for d := range binSums {
			binSums[d] = make([]float64, p.Bins)
		}

		sum, sum2 := 0.0, 0.0
		n := 0
		for s := 0; s < p.SamplesIter; s++ {
			if p.Cancel != nil && p.Cancel() {
				aborted = true
				break
			}
			binIdx := make([]int, p.NDim)
			for d := 0; d < p.NDim; d++ {
				if d == 0 {
					stratum := s % p.Bins
					u[d] = (float64(stratum) + rnd.Float64(0, 1)) / float64(p.Bins)
					binIdx[d] = stratum
					continue
				}
				u[d] = rnd.Float64(0, 1)
				bin := int(u[d] * float64(p.Bins))
				if bin >= p.Bins {
					bin = p.Bins - 1
				}
				binIdx[d] = bin
			}
			jac := g.mapPoint(u, x)
			fx := f(x)
			val := fx * jac

			sum += val
			sum2 += val * val
			n++

			for d := 0; d < p.NDim; d++ {
				binSums[d][binIdx[d]] += math.Abs(val)
			}
		}
		if n == 0 {
			break
		}
		mean := sum / float64(n)
		variance := math.Max(sum2/float64(n)-mean*mean, 0) / float64(n)

		means = append(means, mean)
		variances = append(variances, variance)

		if p.Verbose {
			io.Pf("vegas: iteration %d  I=%v  sigma=%v\n", iter, mean, math.Sqrt(variance))
		}

		g.refine(binSums, p.Alpha)
	}

	value, uncertainty := combine(means, variances)
	if p.Verbose {
		io.PfGreen("vegas: combined I=%v +/- %v\n", value, uncertainty)
	}
	return Result{Value: value, Uncertainty: uncertainty, Aborted: aborted, grid: g}
}

// combine performs inverse-variance weighting of independent iteration
// estimates (spec.md section 4.6, "Combine iteration estimates by
// inverse-variance weighting"), delegating to gonum/stat's weighted mean so
// the combination matches the same routine CombineRuns uses across separate
// generator instances (spec.md section 4.7).
func combine(means, variances []float64) (float64, float64) {
	if len(means) == 0 {
		return 0, 0
	}
	weights := make([]float64, len(variances))
	sumW := 0.0
	for i, v := range variances {
		if v <= 0 {
			v = 1e-300
		}
		weights[i] = 1 / v
		sumW += weights[i]
	}
	if sumW == 0 {
		return stat.Mean(means, nil), 0
	}
	mean := stat.Mean(means, weights)
	return mean, math.Sqrt(1 / sumW)
}
