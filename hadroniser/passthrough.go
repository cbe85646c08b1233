// Copyright 2024 The Cepgen-sub003 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hadroniser

import (
	"github.com/cepgen/cepgen-sub003/event"
	"github.com/cpmech/gosl/fun"
)

func init() {
	Register("passthrough", func() Hadroniser { return NewPassthrough() })
}

// Passthrough is the reference hadroniser: it promotes every
// StatusUndecayed particle directly to StatusFinalState without attaching
// any daughters, leaving the remnant's measured four-momentum untouched.
// It never requests a regeneration. Useful for pure leptonic final states
// (pptoll, gamgamll's central dileptons) where the dissociated remnants
// carry no further structure worth modelling, and as a smoke-test default
// when no showering engine is configured.
type Passthrough struct {
	seed           int64
	beam1E, beam2E float64
}

// NewPassthrough returns an unconfigured Passthrough.
func NewPassthrough() *Passthrough { return &Passthrough{} }

// Init records the seed and beam energies; Passthrough does not use them but
// keeps them for engines that wrap it (e.g. a future decay-only mode keyed
// off beam energy thresholds).
func (p *Passthrough) Init(seed int64, beam1E, beam2E float64, _ fun.Prms) error {
	p.seed, p.beam1E, p.beam2E = seed, beam1E, beam2E
	return nil
}

// ReadString accepts and ignores every configuration directive.
func (p *Passthrough) ReadString(_ string) error { return nil }

// Hadronise promotes every undecayed particle to final state in place.
func (p *Passthrough) Hadronise(ev *event.Event) (bool, error) {
	for _, part := range ev.All() {
		if part.Status == event.StatusUndecayed {
			part.Status = event.StatusFinalState
		}
	}
	return true, nil
}
