// Copyright 2024 The Cepgen-sub003 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package formfactor

import (
	"math"
	"strings"

	"github.com/cepgen/cepgen-sub003/cepgenerr"
	"github.com/cpmech/gosl/fun"
)

// PDFFunc evaluates a leading-order proton PDF set (GRV95LO by default) at
// momentum fraction x and factorisation scale squared q2, returning the
// up/down valence, up/down/strange sea and gluon momentum densities
// x*q(x, Q^2), in the convention of the original grv95lo_ Fortran routine.
type PDFFunc func(x, q2 float64) (xuv, xdv, xus, xds, xss, xg float64)

// SzczurekUleshchenko implements the PDF-convolution inelastic structure
// function (spec.md section 4.1): F2 is built from a leading-order proton
// PDF set via the quark-charge sum, corrected for the photon virtuality
// scale, and F1 follows from the Callan-Gross relation.
type SzczurekUleshchenko struct {
	q20 float64 // low-Q^2 scale shift, default 0.8 GeV^2
	pdf PDFFunc
}

func init() {
	register("szczurekuleshchenko", func() Model {
		return &SzczurekUleshchenko{q20: 0.8, pdf: grv95loStub}
	})
}

// Init reads the optional "q20" scale-shift parameter. The PDF callback
// itself is not steerable from a parameter list; callers needing a
// different set construct a SzczurekUleshchenko directly and assign PDF.
func (o *SzczurekUleshchenko) Init(prms fun.Prms) error {
	o.q20 = 0.8
	if o.pdf == nil {
		o.pdf = grv95loStub
	}
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "q20":
			o.q20 = p.V
		default:
			return cepgenerr.New(cepgenerr.ConfigInvalid, "formfactor/szczurekuleshchenko: unknown parameter %q", p.N)
		}
	}
	return nil
}

// GetPrms returns the default scale-shift parameter.
func (o *SzczurekUleshchenko) GetPrms(example bool) fun.Prms {
	return fun.Prms{&fun.Prm{N: "q20", V: 0.8}}
}

// Name returns the registered model name.
func (o *SzczurekUleshchenko) Name() string { return "szczurekuleshchenko" }

// SetPDF overrides the proton PDF callback used by Compute, e.g. to plug in
// a real GRV95LO or other leading-order set at wiring time.
func (o *SzczurekUleshchenko) SetPDF(pdf PDFFunc) { o.pdf = pdf }

// Compute implements the Szczurek-Uleshchenko PDF-convolution F1/F2 closed
// form, re-expressed as an FE/FM pair.
func (o *SzczurekUleshchenko) Compute(q2, mass2, remnantMass2 float64) Pair {
	k := 2 * math.Sqrt(mass2)
	x := q2 / (remnantMass2 + q2 + mass2)
	amu2 := q2 + o.q20

	xuv, xdv, xus, xds, xss, _ := o.pdf(x, amu2)

	f2Aux := 4.0/9.0*(xuv+2*xus) + 1.0/9.0*(xdv+2*xds) + 1.0/9.0*2*xss
	f2Corr := q2 / amu2 * f2Aux
	f1 := f2Corr / (2 * x) // Callan-Gross relation

	w2 := k * x / q2 * f2Corr
	w1 := 2 * f1 / k

	return Pair{FM: -w1 * k / q2, FE: w2 / k}
}

// grv95loStub is the fallback PDF callback used when no external set has
// been wired in: it returns zero densities everywhere, which collapses
// Compute to FE = FM = 0 rather than panicking on a nil function pointer.
// Generator configuration is expected to call SetPDF with a real GRV95LO
// (or other LO) implementation before this model is exercised.
func grv95loStub(x, q2 float64) (xuv, xdv, xus, xds, xss, xg float64) {
	return 0, 0, 0, 0, 0, 0
}
