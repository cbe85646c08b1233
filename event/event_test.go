// Copyright 2024 The Cepgen-sub003 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package event

import (
	"testing"

	"github.com/cepgen/cepgen-sub003/kinematics"
	"github.com/cpmech/gosl/chk"
)

func Test_addParticleAndByRole01(tst *testing.T) {

	chk.PrintTitle("addParticleAndByRole01")

	ev := New()
	ev.AddParticle(IncomingBeam1, kinematics.Proton)
	ev.AddParticle(IncomingBeam2, kinematics.Proton)
	ev.AddParticle(CentralSystem, kinematics.Muon)
	ev.AddParticle(CentralSystem, kinematics.Muon)

	chk.Scalar(tst, "central system count", 1e-15, float64(len(ev.ByRole(CentralSystem))), 2)
	chk.Scalar(tst, "total particle count", 1e-15, float64(len(ev.All())), 4)

	_, ambiguous, ok := ev.OneByRole(CentralSystem)
	if !ok {
		tst.Errorf("OneByRole(CentralSystem) should find a particle")
	}
	if !ambiguous {
		tst.Errorf("OneByRole(CentralSystem) should report ambiguous with two particles sharing the role")
	}
}

func Test_oneByRoleMissing01(tst *testing.T) {

	chk.PrintTitle("oneByRoleMissing01")

	ev := New()
	_, _, ok := ev.OneByRole(OutgoingBeam1)
	if ok {
		tst.Errorf("OneByRole should report false on an empty event")
	}
}

func Test_pruneRestoresPrimordial01(tst *testing.T) {

	chk.PrintTitle("pruneRestoresPrimordial01")

	ev := New()
	ev.AddParticle(IncomingBeam1, kinematics.Proton)
	ev.AddParticle(IncomingBeam2, kinematics.Proton)
	ev.Freeze()

	ev.AddParticle(CentralSystem, kinematics.Muon)
	ev.AddParticle(CentralSystem, kinematics.Muon)
	chk.Scalar(tst, "count before prune", 1e-15, float64(len(ev.All())), 4)

	ev.Prune()
	chk.Scalar(tst, "count after prune", 1e-15, float64(len(ev.All())), 2)
	chk.Scalar(tst, "central system emptied", 1e-15, float64(len(ev.ByRole(CentralSystem))), 0)

	// a fresh sample should reuse the same ids after pruning.
	p := ev.AddParticle(CentralSystem, kinematics.Muon)
	chk.Scalar(tst, "reused id", 1e-15, float64(p.ID), 2)
}

func Test_addDaughterConsistency01(tst *testing.T) {

	chk.PrintTitle("addDaughterConsistency01")

	ev := New()
	parent := ev.AddParticle(Intermediate, kinematics.Z)
	child := ev.AddParticle(CentralSystem, kinematics.Muon)

	if err := ev.AddDaughter(parent.ID, child.ID); err != nil {
		tst.Errorf("AddDaughter failed: %v", err)
		return
	}
	children := parent.Children()
	if len(children) != 1 || children[0] != child.ID {
		tst.Errorf("expected parent.Children() == [%d], got %v", child.ID, children)
	}
	parents := child.Parents()
	if len(parents) != 1 || parents[0] != parent.ID {
		tst.Errorf("expected child.Parents() == [%d], got %v", parent.ID, parents)
	}
}

func Test_addDaughterUnknownID01(tst *testing.T) {

	chk.PrintTitle("addDaughterUnknownID01")

	ev := New()
	p := ev.AddParticle(CentralSystem, kinematics.Muon)
	if err := ev.AddDaughter(p.ID, 999); err == nil {
		tst.Errorf("AddDaughter with an unknown child id should fail")
	}
}

// Test_momentumTableRoundTrip01 checks MomentumTable/RestoreMomenta round
// trip bit-for-bit, the invariant spec.md section 8 calls out explicitly.
func Test_momentumTableRoundTrip01(tst *testing.T) {

	chk.PrintTitle("momentumTableRoundTrip01")

	ev := New()
	p1 := ev.AddParticle(IncomingBeam1, kinematics.Proton)
	p2 := ev.AddParticle(CentralSystem, kinematics.Muon)
	p1.Momentum = kinematics.NewFourVector(0, 0, 6500, 6500.0000678)
	p2.Momentum = kinematics.NewFourVector(1, 2, 3, 10)

	ids, moms := ev.MomentumTable()

	ev2 := New()
	ev2.AddParticle(IncomingBeam1, kinematics.Proton)
	ev2.AddParticle(CentralSystem, kinematics.Muon)
	if err := ev2.RestoreMomenta(ids, moms); err != nil {
		tst.Errorf("RestoreMomenta failed: %v", err)
		return
	}
	r1, _ := ev2.ByID(ids[0])
	r2, _ := ev2.ByID(ids[1])
	chk.Scalar(tst, "p1 E", 1e-12, r1.Momentum.E, p1.Momentum.E)
	chk.Scalar(tst, "p2 Pz", 1e-12, r2.Momentum.Pz, p2.Momentum.Pz)
}
