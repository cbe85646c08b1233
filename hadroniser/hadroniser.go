// Copyright 2024 The Cepgen-sub003 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hadroniser declares the external showering/hadronisation plugin
// contract (spec.md section 4.8) and a reference pass-through
// implementation. The interface shape — an Init/GetPrms-style configuration
// step plus a single per-event operation looked up by registered name —
// follows msolid.Model and msolid.GetModel's registry-with-cache pattern
// from the teacher repository, adapted from a constitutive-model allocator
// to a hadronisation-engine allocator.
package hadroniser

import (
	"github.com/cepgen/cepgen-sub003/cepgenerr"
	"github.com/cepgen/cepgen-sub003/event"
	"github.com/cpmech/gosl/fun"
)

// Hadroniser replaces every StatusUndecayed remnant particle by a shower of
// final-state daughters (spec.md section 4.8). The core guarantees that
// every remnant particle handed to Hadronise carries a valid four-momentum
// and mass and an empty daughter set on entry; a successful hadronisation
// must attach new particles through event.AddDaughter so the parent/daughter
// sets stay mutually consistent and the id space remains contiguous.
type Hadroniser interface {
	// Init sets the RNG seed and beam energies a concrete engine needs
	// before its first ReadString/Hadronise call.
	Init(seed int64, beam1E, beam2E float64, prms fun.Prms) error
	// ReadString forwards one engine-specific configuration directive
	// (a PYTHIA-style command card line), unparsed.
	ReadString(cmd string) error
	// Hadronise replaces ev's StatusUndecayed particles with showers. It
	// returns false when the attempt fails; the driver then calls it again on
	// the same event up to its trial budget, and only once the budget is spent
	// draws a new event (spec.md section 4.7, "trials
	// exceeding the budget are logged and the event is marked litigious").
	Hadronise(ev *event.Event) (bool, error)
}

// allocators holds every registered hadroniser engine, keyed by the name
// used in the hadroniser.name configuration key (spec.md section 6),
// mirroring process.allocators' self-registration idiom.
var allocators = map[string]func() Hadroniser{}

// Register is called from a concrete engine package's init().
func Register(name string, alloc func() Hadroniser) {
	allocators[name] = alloc
}

// New returns a freshly allocated, unconfigured hadroniser by name.
func New(name string) (Hadroniser, error) {
	alloc, ok := allocators[name]
	if !ok {
		return nil, cepgenerr.New(cepgenerr.ConfigInvalid, "hadroniser: unknown engine %q", name)
	}
	return alloc(), nil
}

// Names returns the sorted set of registered engine names.
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
