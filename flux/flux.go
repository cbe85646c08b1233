// Copyright 2024 The Cepgen-sub003 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package flux implements the equivalent-photon-approximation flux
// integrands consumed by the kT-factorised processes (spec.md section 4.2):
// the elastic proton flux built on a formfactor.Model, and the inelastic
// flux built on a PDF-convolution structure function.
package flux

import (
	"math"

	"github.com/cepgen/cepgen-sub003/formfactor"
	"github.com/cepgen/cepgen-sub003/kinematics"
)

// alphaEM is the fine-structure constant at zero momentum transfer.
const alphaEM = 1.0 / 137.035999679

// Elastic evaluates the equivalent-photon flux radiated by a proton
// scattering elastically, at longitudinal momentum fraction x and photon
// transverse virtuality kt2, using the elastic or dipole form factor ff.
// It returns 0 outside the physical 0 < x < 1, kt2 > 0 domain.
func Elastic(x, kt2 float64, ff formfactor.Model) float64 {
	if x <= 0 || x >= 1 || kt2 <= 0 {
		return 0
	}
	mp := kinematics.Mass(kinematics.Proton)
	mp2 := mp * mp

	q2ela := (kt2 + x*x*mp2) / (1 - x)
	pair := ff.Compute(q2ela, mp2, mp2)

	ela1 := math.Pow(kt2/(kt2+x*x*mp2), 2)
	return alphaEM / math.Pi * ela1 * pair.FE / q2ela
}

// Inelastic evaluates the equivalent-photon flux radiated by a proton
// dissociating into a diffractive system of mass mx, at longitudinal
// momentum fraction x and photon transverse virtuality kt2, via the
// Szczurek-Uleshchenko PDF-convolution structure function. pdf supplies the
// leading-order proton parton densities; it is never nil-checked here, by
// the same convention formfactor.SzczurekUleshchenko.Compute follows.
func Inelastic(x, kt2, mx float64, pdf formfactor.PDFFunc) float64 {
	if x <= 0 || x >= 1 || kt2 <= 0 {
		return 0
	}
	mp := kinematics.Mass(kinematics.Proton)
	mp2 := mp * mp
	mx2 := mx * mx
	const q02 = 0.8 // low-Q^2 scale shift

	q2min := 1 / (1 - x) * (x*(mx2-mp2) + x*x*mp2)
	q2 := kt2/(1-x) + q2min
	xBj := q2 / (q2 + mx2 - mp2)
	mu2 := q2 + q02

	xuv, xdv, xus, xds, xss, _ := pdf(xBj, mu2)
	f2aux := 4.0/9.0*(xuv+2*xus) + 1.0/9.0*(xdv+2*xds) + 1.0/9.0*2*xss
	f2corr := q2 / (q2 + q02) * f2aux

	term1 := 1 - (q2-kt2)/q2
	term2 := math.Pow(kt2/(kt2+x*(mx2-mp2)+x*x*mp2), 2)
	faux := f2corr / (mx2 + q2 - mp2) * term1 * term2

	return alphaEM / math.Pi * (1 - x) * faux / kt2
}

// InelasticFromModel evaluates the equivalent-photon flux radiated by a
// proton dissociating into a diffractive system of mass mx, at longitudinal
// momentum fraction x and photon transverse virtuality kt2, via the
// configured inelastic form-factor model's FE output (proportional to the
// W2/F2 structure function) rather than a direct PDF convolution. This is
// the path for table/closed-form fits such as FioreBrasse and SuriYennie,
// which need no external PDF grid; Inelastic above remains the
// Szczurek-Uleshchenko PDF-convolution path, whose own model wraps the same
// F2-to-FE conversion internally.
func InelasticFromModel(x, kt2, mx float64, ff formfactor.Model) float64 {
	if x <= 0 || x >= 1 || kt2 <= 0 {
		return 0
	}
	mp := kinematics.Mass(kinematics.Proton)
	mp2 := mp * mp
	mx2 := mx * mx

	q2min := 1 / (1 - x) * (x*(mx2-mp2) + x*x*mp2)
	q2 := kt2/(1-x) + q2min

	pair := ff.Compute(q2, mp2, mx2)
	// FE = w2/k and w2 = k*x/q2*F2_corr (see SzczurekUleshchenko.Compute), so
	// F2_corr = FE*q2/x; substituting into PhotonFluxes.cpp's f_aux recovers
	// the same closed form as Inelastic above, sourced from ff instead of pdf.
	xm := q2 / (mx2 + q2 + mp2)
	f2corr := pair.FE * q2 / xm

	term1 := 1 - (q2-kt2)/q2
	term2 := math.Pow(kt2/(kt2+x*(mx2-mp2)+x*x*mp2), 2)
	faux := f2corr / (mx2 + q2 - mp2) * term1 * term2

	return alphaEM / math.Pi * (1 - x) * faux / kt2
}
