// Copyright 2024 The Cepgen-sub003 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package formfactor

import (
	"math"
	"testing"

	"github.com/cepgen/cepgen-sub003/cepgenerr"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/num"
)

func Test_trivial01(tst *testing.T) {

	chk.PrintTitle("trivial01")

	m, err := New("trivial")
	if err != nil {
		tst.Errorf("New(trivial) failed: %v", err)
		return
	}
	pair := m.Compute(1.0, 0.88, 0.88)
	chk.Scalar(tst, "FE", 1e-15, pair.FE, 1.0)
	chk.Scalar(tst, "FM", 1e-15, pair.FM, 1.0)
}

func Test_dipole01(tst *testing.T) {

	chk.PrintTitle("dipole01")

	mp2 := 0.938272046 * 0.938272046
	m, err := New("dipole")
	if err != nil {
		tst.Errorf("New(dipole) failed: %v", err)
		return
	}

	// at Q^2 = 0 the dipole form factors reduce to their static values
	pair := m.Compute(0, mp2, mp2)
	chk.Scalar(tst, "FE(Q2=0)", 1e-12, pair.FE, 1.0)
	chk.Scalar(tst, "FM(Q2=0)", 1e-12, pair.FM, 2.79*2.79)
}

func Test_dipole02(tst *testing.T) {

	chk.PrintTitle("dipole02")

	// the magnetic form factor FM must decay monotonically with increasing Q^2
	mp2 := 0.938272046 * 0.938272046
	m, _ := New("dipole")
	prev := m.Compute(0.01, mp2, mp2)
	for _, q2 := range []float64{0.1, 0.5, 1.0, 5.0, 10.0} {
		cur := m.Compute(q2, mp2, mp2)
		if cur.FM >= prev.FM {
			tst.Errorf("dipole FM did not decrease: Q2=%v prev=%v cur=%v", q2, prev.FM, cur.FM)
		}
		prev = cur
	}
}

func Test_unknown01(tst *testing.T) {

	chk.PrintTitle("unknown01")

	_, err := New("nonexistent")
	if err == nil {
		tst.Errorf("New(nonexistent) should have failed")
		return
	}
	if !cepgenerr.Is(err, cepgenerr.ConfigInvalid) {
		tst.Errorf("New(nonexistent) should return a ConfigInvalid error, got %v", err)
	}
}

func Test_names01(tst *testing.T) {

	chk.PrintTitle("names01")

	names := Names()
	want := map[string]bool{
		"trivial": false, "dipole": false, "suriyennie": false,
		"fiorebrasse": false, "szczurekuleshchenko": false,
	}
	for _, n := range names {
		want[n] = true
	}
	for n, found := range want {
		if !found {
			tst.Errorf("model %q is not registered", n)
		}
	}
}

func Test_fiorebrasse01(tst *testing.T) {

	chk.PrintTitle("fiorebrasse01")

	mp2 := 0.938272046 * 0.938272046
	m, _ := New("fiorebrasse")

	// below the pi-nucleon resonance threshold the model returns zero
	pair := m.Compute(1.0, mp2, 1.0*1.0)
	chk.Scalar(tst, "FE(below threshold)", 1e-15, pair.FE, 0.0)
	chk.Scalar(tst, "FM(below threshold)", 1e-15, pair.FM, 0.0)
}

// Test_suriYennieFMContinuous01 checks F_M varies smoothly with Q^2 away
// from the q2=0 branch point, using a central finite-difference estimate as
// a numerical witness: a bug in the closed form (e.g. a sign flip on one of
// the rational terms) tends to show up as a derivative that blows up or
// flips sign where the analytic curve should be flat.
func Test_suriYennieFMContinuous01(tst *testing.T) {

	chk.PrintTitle("suriYennieFMContinuous01")

	mp2 := 0.938272046 * 0.938272046
	mx2 := 1.2 * 1.2
	m, err := New("suriyennie")
	if err != nil {
		tst.Errorf("New(suriyennie) failed: %v", err)
		return
	}

	fm := func(q2 float64, args ...interface{}) float64 {
		return m.Compute(q2, mp2, mx2).FM
	}

	for _, q2 := range []float64{0.5, 1.0, 2.0, 5.0} {
		deriv, err := num.DerivCentral(fm, q2, 1e-4)
		if err != nil {
			tst.Errorf("DerivCentral at q2=%v failed: %v", q2, err)
			continue
		}
		if math.IsNaN(deriv) || math.IsInf(deriv, 0) {
			tst.Errorf("F_M'(q2=%v) is not finite: %v", q2, deriv)
		}
	}
}
