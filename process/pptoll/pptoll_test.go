// Copyright 2024 The Cepgen-sub003 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pptoll

import (
	"testing"

	"github.com/cepgen/cepgen-sub003/event"
	"github.com/cepgen/cepgen-sub003/kinematics"
	"github.com/cepgen/cepgen-sub003/process"
	"github.com/cpmech/gosl/chk"
)

func elasticElasticKinematics() process.KinematicsConfig {
	return process.KinematicsConfig{
		Beam1Pz:    6500,
		Beam2Pz:    6500,
		Beam1PdgID: kinematics.Proton,
		Beam2PdgID: kinematics.Proton,
		Mode:       process.ElasticElastic,
	}
}

func Test_registered01(tst *testing.T) {

	chk.PrintTitle("registered01")

	p, err := process.New("pptoll")
	if err != nil {
		tst.Errorf("process.New(pptoll) failed: %v", err)
		return
	}
	if p == nil {
		tst.Errorf("process.New(pptoll) returned nil")
	}

	if _, err := process.New("pptoll-tau"); err != nil {
		tst.Errorf("process.New(pptoll-tau) failed: %v", err)
	}
}

func Test_centralSystemDefault01(tst *testing.T) {

	chk.PrintTitle("centralSystemDefault01")

	k := New()
	species := k.CentralSystem()
	chk.Scalar(tst, "central species count", 1e-15, float64(len(species)), 2)
	if species[0] != kinematics.Muon || species[1] != kinematics.Muon {
		tst.Errorf("default PPtoLL central system should be mu+mu-, got %v", species)
	}

	tauK := NewWithLepton(kinematics.Tau)
	tauSpecies := tauK.CentralSystem()
	if tauSpecies[0] != kinematics.Tau || tauSpecies[1] != kinematics.Tau {
		tst.Errorf("NewWithLepton(Tau) central system should be tau+tau-, got %v", tauSpecies)
	}
}

func Test_numDimensions01(tst *testing.T) {

	chk.PrintTitle("numDimensions01")

	p, err := process.New("pptoll")
	if err != nil {
		tst.Errorf("process.New(pptoll) failed: %v", err)
		return
	}
	// 4 shared kt dimensions + 4 kernel dimensions, no dissociated leg in ee mode.
	chk.Scalar(tst, "ee dims", 1e-15, float64(p.NumDimensions(process.ElasticElastic)), 8)
	chk.Scalar(tst, "ei dims", 1e-15, float64(p.NumDimensions(process.ElasticInelastic)), 9)
	chk.Scalar(tst, "ii dims", 1e-15, float64(p.NumDimensions(process.InelasticInelastic)), 10)
}

// Test_weightNonNegative01 samples a handful of interior hypercube points and
// checks ComputeWeight never returns a negative cross section contribution.
func Test_weightNonNegative01(tst *testing.T) {

	chk.PrintTitle("weightNonNegative01")

	p, err := process.New("pptoll")
	if err != nil {
		tst.Errorf("process.New(pptoll) failed: %v", err)
		return
	}
	if err := p.SetKinematics(elasticElasticKinematics()); err != nil {
		tst.Errorf("SetKinematics failed: %v", err)
		return
	}
	ndim := p.NumDimensions(process.ElasticElastic)

	points := [][]float64{
		{0.3, 0.3, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5},
		{0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5},
		{0.7, 0.2, 0.4, 0.6, 0.3, 0.8, 0.1, 0.9},
	}
	for _, x := range points {
		if len(x) != ndim {
			tst.Errorf("test point has %d coordinates, process wants %d", len(x), ndim)
			continue
		}
		if err := p.SetPoint(x); err != nil {
			tst.Errorf("SetPoint failed: %v", err)
			continue
		}
		p.BeforeComputeWeight()
		w := p.ComputeWeight()
		if w < 0 {
			tst.Errorf("negative weight for x=%v: %v", x, w)
		}
	}
}

// Test_fillKinematicsMomentumConservation01 checks four-momentum balance on
// an accepted point: beam1+beam2 == outgoing-proton-1 + outgoing-proton-2 +
// central-system particles (spec.md section 8).
func Test_fillKinematicsMomentumConservation01(tst *testing.T) {

	chk.PrintTitle("fillKinematicsMomentumConservation01")

	p, err := process.New("pptoll")
	if err != nil {
		tst.Errorf("process.New(pptoll) failed: %v", err)
		return
	}
	kin := elasticElasticKinematics()
	if err := p.SetKinematics(kin); err != nil {
		tst.Errorf("SetKinematics failed: %v", err)
		return
	}
	ev := event.New()
	p.AddEventContent(ev)
	ev.Freeze()

	var accepted bool
	for _, x := range [][]float64{
		{0.3, 0.3, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5},
		{0.45, 0.55, 0.4, 0.6, 0.4, 0.6, 0.3, 0.7},
		{0.5, 0.5, 0.6, 0.4, 0.6, 0.4, 0.5, 0.5},
	} {
		ev.Prune()
		if err := p.SetPoint(x); err != nil {
			continue
		}
		p.BeforeComputeWeight()
		if p.ComputeWeight() > 0 {
			p.FillKinematics(ev, false)
			accepted = true
			break
		}
	}
	if !accepted {
		tst.Skip("no sampled point was accepted; cannot check momentum conservation")
		return
	}

	beam1, _, _ := ev.OneByRole(event.IncomingBeam1)
	beam2, _, _ := ev.OneByRole(event.IncomingBeam2)
	out1, _, _ := ev.OneByRole(event.OutgoingBeam1)
	out2, _, _ := ev.OneByRole(event.OutgoingBeam2)
	central := ev.ByRole(event.CentralSystem)

	lhs := beam1.Momentum.Add(beam2.Momentum)
	rhs := out1.Momentum.Add(out2.Momentum)
	for _, c := range central {
		rhs = rhs.Add(c.Momentum)
	}

	chk.Scalar(tst, "Px balance", 1e-6, lhs.Px-rhs.Px, 0)
	chk.Scalar(tst, "Py balance", 1e-6, lhs.Py-rhs.Py, 0)
	chk.Scalar(tst, "Pz balance", 1e-6, lhs.Pz-rhs.Pz, 0)
	chk.Scalar(tst, "E balance", 1e-6, lhs.E-rhs.E, 0)
}
