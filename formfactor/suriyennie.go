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

// SuriYennie implements the low-Q^2 inelastic parametrisation (spec.md
// section 4.1), a closed-form fit in the fitted constants
// {c1, c2, d1, cp, bp, rho}.
type SuriYennie struct {
	c1, c2, d1, cp, bp, rho float64
}

func init() {
	register("suriyennie", func() Model {
		return &SuriYennie{c1: 0.86926, c2: 2.23422, d1: 0.12549, cp: 0.96, bp: 0.63, rho: 0.585}
	})
}

// Init reads the fitted constants, defaulting to the published values.
func (o *SuriYennie) Init(prms fun.Prms) error {
	*o = SuriYennie{c1: 0.86926, c2: 2.23422, d1: 0.12549, cp: 0.96, bp: 0.63, rho: 0.585}
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "c1":
			o.c1 = p.V
		case "c2":
			o.c2 = p.V
		case "d1":
			o.d1 = p.V
		case "cp":
			o.cp = p.V
		case "bp":
			o.bp = p.V
		case "rho":
			o.rho = p.V
		default:
			return cepgenerr.New(cepgenerr.ConfigInvalid, "formfactor/suriyennie: unknown parameter %q", p.N)
		}
	}
	return nil
}

// GetPrms returns the published fitted constants.
func (o *SuriYennie) GetPrms(example bool) fun.Prms {
	return fun.Prms{
		&fun.Prm{N: "c1", V: 0.86926},
		&fun.Prm{N: "c2", V: 2.23422},
		&fun.Prm{N: "d1", V: 0.12549},
		&fun.Prm{N: "cp", V: 0.96},
		&fun.Prm{N: "bp", V: 0.63},
		&fun.Prm{N: "rho", V: 0.585},
	}
}

// Name returns the registered model name.
func (o *SuriYennie) Name() string { return "suriyennie" }

// Compute implements the Suri-Yennie F_M/F_E closed form.
func (o *SuriYennie) Compute(q2, mass2, remnantMass2 float64) Pair {
	if q2 <= 0 {
		return Pair{}
	}
	x := q2 / (q2 + remnantMass2)
	dm2 := remnantMass2 - mass2
	en := dm2 + q2
	tau := -q2 / (4 * mass2)
	rhot := o.rho + q2
	rhoNorm := o.rho / rhot

	fm := (-1 / q2) * (-o.c1*rhoNorm*rhoNorm*dm2 - o.c2*mass2*math.Pow(1-x, 4)/(x*(x*o.cp-2*o.bp)+1))
	fe := (-tau*fm + o.d1*dm2*q2*rhoNorm*math.Pow(dm2/en, 2)/(rhot*mass2)) / (1 + en*en/(4*mass2*q2))
	return Pair{FE: fe, FM: fm}
}
