// Copyright 2024 The Cepgen-sub003 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hadroniser

import (
	"testing"

	"github.com/cepgen/cepgen-sub003/cepgenerr"
	"github.com/cepgen/cepgen-sub003/event"
	"github.com/cepgen/cepgen-sub003/kinematics"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

func Test_newUnknown01(tst *testing.T) {

	chk.PrintTitle("newUnknown01")

	_, err := New("nonexistent")
	if err == nil {
		tst.Errorf("New(nonexistent) should have failed")
		return
	}
	if !cepgenerr.Is(err, cepgenerr.ConfigInvalid) {
		tst.Errorf("New(nonexistent) should return a ConfigInvalid error, got %v", err)
	}
}

func Test_namesIncludesPassthrough01(tst *testing.T) {

	chk.PrintTitle("namesIncludesPassthrough01")

	found := false
	for _, n := range Names() {
		if n == "passthrough" {
			found = true
		}
	}
	if !found {
		tst.Errorf("passthrough should be registered")
	}
}

func Test_passthroughPromotesUndecayed01(tst *testing.T) {

	chk.PrintTitle("passthroughPromotesUndecayed01")

	h, err := New("passthrough")
	if err != nil {
		tst.Errorf("New(passthrough) failed: %v", err)
		return
	}
	if err := h.Init(1, 6500, 6500, fun.Prms{}); err != nil {
		tst.Errorf("Init failed: %v", err)
		return
	}

	ev := event.New()
	remnant := ev.AddParticle(event.OutgoingBeam1, kinematics.Proton)
	remnant.Status = event.StatusUndecayed
	stable := ev.AddParticle(event.CentralSystem, kinematics.Muon)
	stable.Status = event.StatusFinalState

	ok, err := h.Hadronise(ev)
	if err != nil {
		tst.Errorf("Hadronise failed: %v", err)
		return
	}
	if !ok {
		tst.Errorf("Passthrough.Hadronise should never request a regeneration")
	}
	if remnant.Status != event.StatusFinalState {
		tst.Errorf("undecayed remnant should be promoted to FinalState")
	}
	if stable.Status != event.StatusFinalState {
		tst.Errorf("already-final particle status should be left untouched")
	}
}
