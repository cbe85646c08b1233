// Copyright 2024 The Cepgen-sub003 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package integrator

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_vegasConstant01(tst *testing.T) {

	chk.PrintTitle("vegasConstant01")

	f := func(x []float64) float64 { return 1 }
	p := DefaultParams(2)
	p.Iterations = 5
	p.SamplesIter = 2000
	res := Integrate(f, p)
	chk.Scalar(tst, "integral of 1 over unit square", 0.05, res.Value, 1.0)
}

func Test_vegasLinear01(tst *testing.T) {

	chk.PrintTitle("vegasLinear01")

	f := func(x []float64) float64 { return 2 * x[0] }
	p := DefaultParams(1)
	p.Iterations = 8
	p.SamplesIter = 4000
	res := Integrate(f, p)
	chk.Scalar(tst, "integral of 2x over [0,1]", 0.1, res.Value, 1.0)
}

func Test_miserConstant01(tst *testing.T) {

	chk.PrintTitle("miserConstant01")

	f := func(x []float64) float64 { return 1 }
	p := DefaultMiserParams(2)
	p.TotalSamples = 20000
	res := Miser(f, p)
	if math.Abs(res.Value-1.0) > 0.1 {
		tst.Errorf("Miser: expected ~1.0, got %v", res.Value)
	}
}

func Test_vegasCancel01(tst *testing.T) {

	chk.PrintTitle("vegasCancel01")

	calls := 0
	f := func(x []float64) float64 { calls++; return 1 }
	p := DefaultParams(2)
	p.Iterations = 100
	p.SamplesIter = 1000
	p.Cancel = func() bool { return calls > 500 }
	res := Integrate(f, p)
	if !res.Aborted {
		tst.Errorf("expected Aborted=true after cancellation")
	}
}
