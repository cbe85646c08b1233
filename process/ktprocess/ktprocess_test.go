// Copyright 2024 The Cepgen-sub003 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ktprocess

import (
	"testing"

	"github.com/cepgen/cepgen-sub003/event"
	"github.com/cepgen/cepgen-sub003/kinematics"
	"github.com/cepgen/cepgen-sub003/process"
	"github.com/cpmech/gosl/chk"
)

// fakeKernel is a minimal Kernel exercising only the shared Base machinery,
// the same role formfactor_test.go's trivial model plays for the formfactor
// registry tests.
type fakeKernel struct {
	userDims int
}

func (k *fakeKernel) NumUserDimensions() int { return k.userDims }
func (k *fakeKernel) PrepareKinematics(b *Base) {}
func (k *fakeKernel) Jacobian(b *Base) float64 { return 1 }
func (k *fakeKernel) MatrixElement(b *Base) float64 {
	b.PX = kinematics.NewFourVector(0, 0, b.Beam1Pz, b.Beam1E)
	b.PY = kinematics.NewFourVector(0, 0, b.Beam2Pz, b.Beam2E)
	return 1
}
func (k *fakeKernel) FillCentralParticles(b *Base, ev *event.Event) {}
func (k *fakeKernel) CentralSystem() []kinematics.PDGID {
	return []kinematics.PDGID{kinematics.Muon, kinematics.Muon}
}

func elasticElasticKinematics() process.KinematicsConfig {
	return process.KinematicsConfig{
		Beam1Pz:    6500,
		Beam2Pz:    6500,
		Beam1PdgID: kinematics.Proton,
		Beam2PdgID: kinematics.Proton,
		Mode:       process.ElasticElastic,
	}
}

func Test_numDimensions01(tst *testing.T) {

	chk.PrintTitle("numDimensions01")

	b := NewBase(&fakeKernel{userDims: 2})
	chk.Scalar(tst, "ee dims", 1e-15, float64(b.NumDimensions(process.ElasticElastic)), 6)
	chk.Scalar(tst, "ei dims", 1e-15, float64(b.NumDimensions(process.ElasticInelastic)), 7)
	chk.Scalar(tst, "ie dims", 1e-15, float64(b.NumDimensions(process.InelasticElastic)), 7)
	chk.Scalar(tst, "ii dims", 1e-15, float64(b.NumDimensions(process.InelasticInelastic)), 8)
}

func Test_addEventContent01(tst *testing.T) {

	chk.PrintTitle("addEventContent01")

	b := NewBase(&fakeKernel{userDims: 2})
	if err := b.SetKinematics(elasticElasticKinematics()); err != nil {
		tst.Errorf("SetKinematics failed: %v", err)
		return
	}
	ev := event.New()
	b.AddEventContent(ev)

	if len(ev.ByRole(event.Parton1)) != 1 || len(ev.ByRole(event.Parton2)) != 1 {
		tst.Errorf("expected exactly one Parton1 and one Parton2 particle")
	}
	if len(ev.ByRole(event.CentralSystem)) != 2 {
		tst.Errorf("expected 2 central-system particles, got %d", len(ev.ByRole(event.CentralSystem)))
	}
	if len(ev.ByRole(event.OutgoingBeam1)) != 1 || len(ev.ByRole(event.OutgoingBeam2)) != 1 {
		tst.Errorf("expected exactly one OutgoingBeam1 and one OutgoingBeam2 particle")
	}
}

func Test_setKinematicsDerivesMandelstamS01(tst *testing.T) {

	chk.PrintTitle("setKinematicsDerivesMandelstamS01")

	b := NewBase(&fakeKernel{userDims: 2})
	if err := b.SetKinematics(elasticElasticKinematics()); err != nil {
		tst.Errorf("SetKinematics failed: %v", err)
		return
	}
	// symmetric pp collider: sqrt(s) should be close to 2*Pz for Pz >> m_p.
	chk.Scalar(tst, "sqrt(s) ~ 2*Pz", 1e-2, b.Sqs, 2*6500)
}

// Test_fillKinematicsConservesMomentum01 checks the shared FillKinematics
// logic balances beams against outgoing protons and partons for a trivial
// kernel whose matrix element places the whole beam momentum onto PX/PY (no
// central system recoil).
func Test_fillKinematicsConservesMomentum01(tst *testing.T) {

	chk.PrintTitle("fillKinematicsConservesMomentum01")

	b := NewBase(&fakeKernel{userDims: 2})
	if err := b.SetKinematics(elasticElasticKinematics()); err != nil {
		tst.Errorf("SetKinematics failed: %v", err)
		return
	}
	ev := event.New()
	b.AddEventContent(ev)
	ev.Freeze()

	if err := b.SetPoint(make([]float64, b.NumDimensions(process.ElasticElastic))); err != nil {
		tst.Errorf("SetPoint failed: %v", err)
		return
	}
	b.BeforeComputeWeight()
	_ = b.ComputeWeight()
	b.FillKinematics(ev, false)

	ib1, _, _ := ev.OneByRole(event.IncomingBeam1)
	ib2, _, _ := ev.OneByRole(event.IncomingBeam2)
	op1, _, _ := ev.OneByRole(event.OutgoingBeam1)
	op2, _, _ := ev.OneByRole(event.OutgoingBeam2)
	g1, _, _ := ev.OneByRole(event.Parton1)
	g2, _, _ := ev.OneByRole(event.Parton2)

	chk.Scalar(tst, "outgoing beam1 Pz", 1e-6, op1.Momentum.Pz, ib1.Momentum.Pz)
	chk.Scalar(tst, "outgoing beam2 Pz", 1e-6, op2.Momentum.Pz, ib2.Momentum.Pz)
	chk.Scalar(tst, "parton1 is zero", 1e-6, g1.Momentum.E, 0)
	chk.Scalar(tst, "parton2 is zero", 1e-6, g2.Momentum.E, 0)
}
