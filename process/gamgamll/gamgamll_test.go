// Copyright 2024 The Cepgen-sub003 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gamgamll

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

	p, err := process.New("lpair")
	if err != nil {
		tst.Errorf("process.New(lpair) failed: %v", err)
		return
	}
	chk.String(tst, p.Name(), "lpair")
}

func Test_numDimensions01(tst *testing.T) {

	chk.PrintTitle("numDimensions01")

	g := New(0)
	chk.Scalar(tst, "ee dims", 1e-15, float64(g.NumDimensions(process.ElasticElastic)), 7)
	chk.Scalar(tst, "ei dims", 1e-15, float64(g.NumDimensions(process.ElasticInelastic)), 8)
	chk.Scalar(tst, "ie dims", 1e-15, float64(g.NumDimensions(process.InelasticElastic)), 8)
	chk.Scalar(tst, "ii dims", 1e-15, float64(g.NumDimensions(process.InelasticInelastic)), 9)
}

func Test_eventContent01(tst *testing.T) {

	chk.PrintTitle("eventContent01")

	g := New(0)
	if err := g.SetKinematics(elasticElasticKinematics()); err != nil {
		tst.Errorf("SetKinematics failed: %v", err)
		return
	}
	ev := event.New()
	g.AddEventContent(ev)

	if len(ev.ByRole(event.CentralSystem)) != 2 {
		tst.Errorf("expected 2 central-system particles, got %d", len(ev.ByRole(event.CentralSystem)))
	}
	if len(ev.ByRole(event.IncomingBeam1)) != 1 {
		tst.Errorf("expected exactly one IncomingBeam1 particle")
	}
}

// Test_weightNonNegative01 samples a handful of interior hypercube points and
// checks ComputeWeight never returns a negative cross section contribution
// (spec.md section 8's "weight is never negative" property).
func Test_weightNonNegative01(tst *testing.T) {

	chk.PrintTitle("weightNonNegative01")

	g := New(0)
	if err := g.SetKinematics(elasticElasticKinematics()); err != nil {
		tst.Errorf("SetKinematics failed: %v", err)
		return
	}
	ev := event.New()
	g.AddEventContent(ev)
	ev.Freeze()

	points := [][]float64{
		{0.3, 0.3, 0.5, 0.5, 0.5, 0.5, 0.5, 0, 0},
		{0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0, 0},
		{0.7, 0.2, 0.4, 0.6, 0.3, 0.8, 0.1, 0, 0},
	}
	for _, x := range points {
		ev.Prune()
		if err := g.SetPoint(x); err != nil {
			tst.Errorf("SetPoint failed: %v", err)
			continue
		}
		g.BeforeComputeWeight()
		w := g.ComputeWeight()
		if w < 0 {
			tst.Errorf("negative weight for x=%v: %v", x, w)
		}
	}
}

// Test_fillKinematicsMomentumConservation01 checks that an accepted point's
// filled central-system momenta, summed with the outgoing beams, balance
// against the incoming beams to within a loose numerical tolerance.
func Test_fillKinematicsMomentumConservation01(tst *testing.T) {

	chk.PrintTitle("fillKinematicsMomentumConservation01")

	g := New(0)
	if err := g.SetKinematics(elasticElasticKinematics()); err != nil {
		tst.Errorf("SetKinematics failed: %v", err)
		return
	}
	ev := event.New()
	g.AddEventContent(ev)
	ev.Freeze()

	var accepted bool
	for _, x := range [][]float64{
		{0.3, 0.3, 0.5, 0.5, 0.5, 0.5, 0.5, 0, 0},
		{0.5, 0.4, 0.6, 0.5, 0.4, 0.5, 0.6, 0, 0},
		{0.6, 0.5, 0.4, 0.3, 0.6, 0.4, 0.3, 0, 0},
	} {
		ev.Prune()
		if err := g.SetPoint(x); err != nil {
			continue
		}
		g.BeforeComputeWeight()
		if g.ComputeWeight() > 0 {
			g.FillKinematics(ev, false)
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
