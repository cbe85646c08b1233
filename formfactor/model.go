// Copyright 2024 The Cepgen-sub003 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package formfactor implements the elastic form-factor and inelastic
// structure-function parametrisations consumed by the photon-flux and
// LPAIR/kT-factorised process layers (spec.md section 4.1). The Model
// interface and its self-registering allocators mirror
// mdl/retention.Model / mreten.BrooksCorey's "allocators[name] = ctor"
// idiom from the teacher repository.
package formfactor

import (
	"github.com/cepgen/cepgen-sub003/cepgenerr"
	"github.com/cpmech/gosl/fun"
)

// Pair holds the electric and magnetic form factors for one incoming leg.
type Pair struct {
	FE, FM float64
}

// Model computes electric/magnetic form factors (elastic) or F1/F2 structure
// functions re-expressed as an FE/FM pair (inelastic) for one leg.
type Model interface {
	// Init sets the model's fitted constants from a named parameter list.
	Init(prms fun.Prms) error
	// GetPrms returns an example parameter list (used for self-description
	// and steering-card round-trips).
	GetPrms(example bool) fun.Prms
	// Name returns the registered model name.
	Name() string
	// Compute returns (FE, FM) given the space-like virtuality q2 = -t >= 0,
	// the leg's initial on-shell mass squared, and — for inelastic legs —
	// the outgoing remnant's invariant mass squared (ignored by elastic and
	// trivial models).
	Compute(q2, mass2, remnantMass2 float64) Pair
}

// allocators holds all available form-factor models, keyed by the name used
// in the process/structure_functions configuration key (spec.md section 6).
var allocators = map[string]func() Model{}

// register is called from each model's init() the way mreten/bc.go registers
// "bc" -> BrooksCorey.
func register(name string, alloc func() Model) {
	allocators[name] = alloc
}

// New returns a new, uninitialised form-factor model by name. Unknown names
// are a fatal configuration error (spec.md section 7: "Choices other than
// the declared four are rejected at configuration time").
func New(name string) (Model, error) {
	alloc, ok := allocators[name]
	if !ok {
		return nil, cepgenerr.New(cepgenerr.ConfigInvalid, "formfactor: unknown model %q", name)
	}
	return alloc(), nil
}

// Names returns the sorted set of registered model names, used by the
// registry-introspection helper described in SPEC_FULL.md E.4.
func Names() []string {
	out := make([]string, 0, len(allocators))
	for k := range allocators {
		out = append(out, k)
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}
