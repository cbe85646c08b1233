// Copyright 2024 The Cepgen-sub003 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package formfactor

import "github.com/cpmech/gosl/fun"

// Trivial implements the point-like (lepton) form factor: FE = FM = 1.
type Trivial struct{}

func init() {
	register("trivial", func() Model { return new(Trivial) })
}

// Init accepts and ignores any parameters; the trivial model has none.
func (o *Trivial) Init(prms fun.Prms) error { return nil }

// GetPrms returns an empty parameter list.
func (o *Trivial) GetPrms(example bool) fun.Prms { return fun.Prms{} }

// Name returns the registered model name.
func (o *Trivial) Name() string { return "trivial" }

// Compute always returns FE = FM = 1.
func (o *Trivial) Compute(q2, mass2, remnantMass2 float64) Pair {
	return Pair{FE: 1, FM: 1}
}
