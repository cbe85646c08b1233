// Copyright 2024 The Cepgen-sub003 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package formfactor

import (
	"strings"

	"github.com/cepgen/cepgen-sub003/cepgenerr"
	"github.com/cpmech/gosl/fun"
)

// Dipole implements the elastic dipole form factor (spec.md section 4.1):
//
//	G_E = (1 + Q^2/lambda2)^-2, G_M = mu_p * G_E
//	F_E = (4 m^2 G_E^2 + Q^2 G_M^2) / (4 m^2 + Q^2)
//	F_M = G_M^2
type Dipole struct {
	lambda2 float64 // dipole mass scale squared, default 0.71 GeV^2
	muP     float64 // proton magnetic moment, default 2.79
}

func init() {
	register("dipole", func() Model { return &Dipole{lambda2: 0.71, muP: 2.79} })
}

// Init reads the optional "lambda2" and "mu" parameters, defaulting to the
// standard 0.71 GeV^2 / 2.79 dipole values.
func (o *Dipole) Init(prms fun.Prms) error {
	o.lambda2 = 0.71
	o.muP = 2.79
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "lambda2":
			o.lambda2 = p.V
		case "mu":
			o.muP = p.V
		default:
			return cepgenerr.New(cepgenerr.ConfigInvalid, "formfactor/dipole: unknown parameter %q", p.N)
		}
	}
	return nil
}

// GetPrms returns the standard dipole constants.
func (o *Dipole) GetPrms(example bool) fun.Prms {
	return fun.Prms{
		&fun.Prm{N: "lambda2", V: 0.71},
		&fun.Prm{N: "mu", V: 2.79},
	}
}

// Name returns the registered model name.
func (o *Dipole) Name() string { return "dipole" }

// Compute implements the elastic dipole parametrisation.
func (o *Dipole) Compute(q2, mass2, remnantMass2 float64) Pair {
	ge := 1.0 / sqr(1+q2/o.lambda2)
	gm := o.muP * ge
	fe := (4*mass2*ge*ge + q2*gm*gm) / (4*mass2 + q2)
	fm := gm * gm
	return Pair{FE: fe, FM: fm}
}

func sqr(x float64) float64 { return x * x }
