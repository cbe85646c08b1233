// Copyright 2024 The Cepgen-sub003 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package generator

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// RunResult is one independent Driver's cross-section estimate, the unit
// CombineRuns reduces over (spec.md section 5, "run multiple Generator
// instances with disjoint RNG seeds and reduce their (sigma, deltasigma)
// pairs by inverse-variance combination").
type RunResult struct {
	CrossSection      float64
	CrossSectionError float64
}

// CombineRuns performs the same inverse-variance weighted reduction
// integrator.combine applies across VEGAS iterations within a single run,
// but across wholly independent Driver instances — the coarse-grained
// parallelism model spec.md section 5 describes in place of shared-memory
// concurrency within one instance. It mirrors gofem's mpi-gathered-then-
// locally-combined summary pattern (fem.FEM.Nproc/Proc), except the
// reduction here runs after every instance's run has already completed and
// returned, rather than via a live mpi.AllReduce.
func CombineRuns(runs []RunResult) RunResult {
	if len(runs) == 0 {
		return RunResult{}
	}
	means := make([]float64, len(runs))
	weights := make([]float64, len(runs))
	sumW := 0.0
	for i, r := range runs {
		means[i] = r.CrossSection
		v := r.CrossSectionError * r.CrossSectionError
		if v <= 0 {
			v = 1e-300
		}
		weights[i] = 1 / v
		sumW += weights[i]
	}
	if sumW == 0 {
		return RunResult{CrossSection: stat.Mean(means, nil)}
	}
	combined := stat.Mean(means, weights)
	return RunResult{CrossSection: combined, CrossSectionError: math.Sqrt(1 / sumW)}
}
