// Copyright 2024 The Cepgen-sub003 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kinematics

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_massOnShell01(tst *testing.T) {

	chk.PrintTitle("massOnShell01")

	m := 0.938272046
	v := NewFourVector(0.1, 0.2, 0.3, math.Sqrt(0.1*0.1+0.2*0.2+0.3*0.3+m*m))
	chk.Scalar(tst, "Mass", 1e-9, v.Mass(), m)
}

func Test_massSpaceLikeIsNegative01(tst *testing.T) {

	chk.PrintTitle("massSpaceLikeIsNegative01")

	// a virtual photon propagator: E^2 < |p|^2, Mass2 < 0.
	v := NewFourVector(1, 0, 0, 0.1)
	if v.Mass2() >= 0 {
		tst.Errorf("expected a space-like four-vector, Mass2=%v", v.Mass2())
	}
	if v.Mass() >= 0 {
		tst.Errorf("Mass() should be signed negative for a space-like vector, got %v", v.Mass())
	}
}

func Test_addSubRoundTrip01(tst *testing.T) {

	chk.PrintTitle("addSubRoundTrip01")

	a := NewFourVector(1, 2, 3, 10)
	b := NewFourVector(0.5, -1, 2, 5)
	sum := a.Add(b)
	back := sum.Sub(b)
	chk.Scalar(tst, "Px round-trip", 1e-12, back.Px, a.Px)
	chk.Scalar(tst, "Py round-trip", 1e-12, back.Py, a.Py)
	chk.Scalar(tst, "Pz round-trip", 1e-12, back.Pz, a.Pz)
	chk.Scalar(tst, "E round-trip", 1e-12, back.E, a.E)
}

func Test_betaGammaBoostPreservesMass01(tst *testing.T) {

	chk.PrintTitle("betaGammaBoostPreservesMass01")

	v := NewFourVector(1, 1, 2, 5)
	mBefore := v.Mass()
	boosted := v.BetaGammaBoost(1.25, 0.75)
	mAfter := boosted.Mass()
	chk.Scalar(tst, "invariant mass under boost", 1e-9, mAfter, mBefore)
}

func Test_rotatePhiPreservesPt01(tst *testing.T) {

	chk.PrintTitle("rotatePhiPreservesPt01")

	v := NewFourVector(3, 4, 1, 10)
	rotated := v.RotatePhi(1.234, 1)
	chk.Scalar(tst, "Pt invariant under phi rotation", 1e-9, rotated.Pt(), v.Pt())
}

func Test_rapidityOfRestFrame01(tst *testing.T) {

	chk.PrintTitle("rapidityOfRestFrame01")

	m := 1.0
	v := NewFourVector(0, 0, 0, m)
	chk.Scalar(tst, "rapidity at rest", 1e-12, v.Rapidity(), 0)
}

func Test_limitsIn01(tst *testing.T) {

	chk.PrintTitle("limitsIn01")

	l := NewLimits(1, 5)
	if !l.In(1) || !l.In(5) || !l.In(3) {
		tst.Errorf("bounds should be inclusive")
	}
	if l.In(0.999) || l.In(5.001) {
		tst.Errorf("values outside [1,5] should not be In")
	}
	if !Unbounded.In(-1e300) || !Unbounded.In(1e300) {
		tst.Errorf("Unbounded should accept anything")
	}
}

func Test_limitsMinOrMaxOr01(tst *testing.T) {

	chk.PrintTitle("limitsMinOrMaxOr01")

	chk.Scalar(tst, "MinOr default", 1e-15, Unbounded.MinOr(0.5), 0.5)
	chk.Scalar(tst, "MaxOr default", 1e-15, Unbounded.MaxOr(2.5), 2.5)

	l := NewLimitsMin(10)
	chk.Scalar(tst, "MinOr set", 1e-15, l.MinOr(0), 10)
	chk.Scalar(tst, "MaxOr unset falls to default", 1e-15, l.MaxOr(99), 99)
}
