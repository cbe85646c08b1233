// Copyright 2024 The Cepgen-sub003 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pptoll implements the kT-factorised p p -> (gamma gamma) -> l+ l-
// process (spec.md section 4.5). The retrieved original_source tree carries
// PPtoWW.cpp but not its lepton-pair sibling, so the Sudakov-decomposition
// kinematics below are adapted directly from pptoww.PPtoWW (y1/y2/pt_diff
// hypercube mapping, Sudakov x1/x2/z fractions, outgoing-proton
// reconstruction) with the matrix element replaced by the standard
// helicity-summed gamma gamma -> l+ l- (Breit-Wheeler) amplitude, the same
// substitution GamGamLL::periPP makes for the 2->3 LPAIR kernel.
package pptoll

import (
	"math"

	"github.com/cepgen/cepgen-sub003/event"
	"github.com/cepgen/cepgen-sub003/kinematics"
	"github.com/cepgen/cepgen-sub003/process"
	"github.com/cepgen/cepgen-sub003/process/ktprocess"
	"github.com/cpmech/gosl/rnd"
)

const gev2ToPb = 3.89379338e8
const alphaEM = 1.0 / 137.035999679

func init() {
	process.Register("pptoll", func() process.Process {
		return ktprocess.NewBase(New())
	})
	process.Register("pptoll-tau", func() process.Process {
		return ktprocess.NewBase(NewWithLepton(kinematics.Tau))
	})
}

// PPtoLL is the ktprocess.Kernel for gamma gamma -> l+ l-.
type PPtoLL struct {
	lepton kinematics.PDGID

	y1, y2          float64
	ptDiff, phiDiff float64
	pL1, pL2        kinematics.FourVector
	s, sqs          float64
}

// New returns a muon-pair kernel, the default central system (spec.md
// section 4's "Default central system: mu+mu-").
func New() *PPtoLL { return &PPtoLL{lepton: kinematics.Muon} }

// NewWithLepton returns a kernel producing the given charged-lepton pair.
func NewWithLepton(pdg kinematics.PDGID) *PPtoLL { return &PPtoLL{lepton: pdg} }

func (p *PPtoLL) NumUserDimensions() int { return 4 }

func (p *PPtoLL) CentralSystem() []kinematics.PDGID {
	return []kinematics.PDGID{p.lepton, p.lepton}
}

func (p *PPtoLL) PrepareKinematics(b *ktprocess.Base) {
	p.s, p.sqs = b.S, b.Sqs

	base := ktprocess.NumRequiredDimensions
	p.y1 = rangeMap(b, base+0, -6, 6)
	p.y2 = rangeMap(b, base+1, -6, 6)
	p.ptDiff = rangeMap(b, base+2, 0, 500)
	p.phiDiff = 2 * math.Pi * b.XAt(base+3)
}

func rangeMap(b *ktprocess.Base, i int, lo, hi float64) float64 {
	return lo + (hi-lo)*b.XAt(i)
}

func (p *PPtoLL) Jacobian(b *ktprocess.Base) float64 {
	jac := b.MinimalJacobian()
	jac *= 12.0
	jac *= 12.0
	jac *= 500.0
	jac *= 2 * math.Pi
	return jac
}

func (p *PPtoLL) MatrixElement(b *ktprocess.Base) float64 {
	ml := kinematics.Mass(p.lepton)
	ml2 := ml * ml

	q1tx, q1ty := b.QT1*math.Cos(b.PhiQT1), b.QT1*math.Sin(b.PhiQT1)
	q2tx, q2ty := b.QT2*math.Cos(b.PhiQT2), b.QT2*math.Sin(b.PhiQT2)

	ptsumx, ptsumy := q1tx+q2tx, q1ty+q2ty
	ptsum := math.Hypot(ptsumx, ptsumy)

	ptdiffx := p.ptDiff * math.Cos(p.phiDiff)
	ptdiffy := p.ptDiff * math.Sin(p.phiDiff)

	pt1x, pt1y := 0.5*(ptsumx+ptdiffx), 0.5*(ptsumy+ptdiffy)
	pt2x, pt2y := 0.5*(ptsumx-ptdiffx), 0.5*(ptsumy-ptdiffy)
	pt1 := math.Hypot(pt1x, pt1y)
	pt2 := math.Hypot(pt2x, pt2y)

	ptLim := b.KinematicsConfig().Cuts.SinglePartPt
	if ptLim.HasMin && (pt1 < ptLim.Min || pt2 < ptLim.Min) {
		return 0
	}
	if ptLim.HasMax && (pt1 > ptLim.Max || pt2 > ptLim.Max) {
		return 0
	}

	amt1 := math.Sqrt(pt1*pt1 + ml2)
	amt2 := math.Sqrt(pt2*pt2 + ml2)

	invm := math.Sqrt(amt1*amt1 + amt2*amt2 + 2*amt1*amt2*math.Cosh(p.y1-p.y2) - ptsum*ptsum)
	massLim := b.KinematicsConfig().Cuts.PairMassSum
	if massLim.HasMin && invm < massLim.Min {
		return 0
	}
	if massLim.HasMax && invm > massLim.Max {
		return 0
	}

	dely := math.Abs(p.y1 - p.y2)
	delyLim := b.KinematicsConfig().Cuts.PairYDiff
	if delyLim.HasMin && dely < delyLim.Min {
		return 0
	}
	if delyLim.HasMax && dely > delyLim.Max {
		return 0
	}

	alpha1 := amt1 / p.sqs * math.Exp(p.y1)
	alpha2 := amt2 / p.sqs * math.Exp(p.y2)
	beta1 := amt1 / p.sqs * math.Exp(-p.y1)
	beta2 := amt2 / p.sqs * math.Exp(-p.y2)

	q1t2 := q1tx*q1tx + q1ty*q1ty
	q2t2 := q2tx*q2tx + q2ty*q2ty

	x1 := alpha1 + alpha2
	x2 := beta1 + beta2
	if x1 > 1 || x2 > 1 {
		return 0
	}

	ak1z, ak10 := b.Beam1Pz, b.Beam1E
	ak2z, ak20 := b.Beam2Pz, b.Beam2E

	p.pL1 = kinematics.NewFourVector(pt1x, pt1y, alpha1*ak1z+beta1*ak2z, alpha1*ak10+beta1*ak20)
	p.pL2 = kinematics.NewFourVector(pt2x, pt2y, alpha2*ak1z+beta2*ak2z, alpha2*ak10+beta2*ak20)

	mp := kinematics.Mass(kinematics.Proton)
	ww := 0.5 * (1 + math.Sqrt(1-4*mp*mp/p.s))
	q1 := kinematics.NewFourVector(q1tx, q1ty,
		0.5*x1*ww*p.sqs*(1-q1t2/(x1*x1*ww*ww*p.s)),
		0.5*x1*ww*p.sqs*(1+q1t2/(x1*x1*ww*ww*p.s)))
	q2 := kinematics.NewFourVector(q2tx, q2ty,
		-0.5*x2*ww*p.sqs*(1-q2t2/(x2*x2*ww*ww*p.s)),
		0.5*x2*ww*p.sqs*(1+q2t2/(x2*x2*ww*ww*p.s)))

	b.PX = kinematics.NewFourVector(0, 0, b.Beam1Pz, b.Beam1E).Sub(q1)
	b.PY = kinematics.NewFourVector(0, 0, b.Beam2Pz, b.Beam2E).Sub(q2)

	that1 := q1.Sub(p.pL1).Mass2()
	uhat1 := q1.Sub(p.pL2).Mass2()
	that := that1 - ml2
	uhat := uhat1 - ml2
	shat := x1 * x2 * p.s

	// helicity-summed gamma gamma -> l+ l- amplitude (Breit-Wheeler), the
	// same matrix element GamGamLL::periPP folds into its t11/t22 terms for
	// the peripheral 2->3 kernel.
	amat2 := 2 * math.Pow(4*math.Pi*alphaEM, 2) * (that/uhat + uhat/that + 4*ml2/shat*(1-ml2/shat*(that/uhat+uhat/that+2)))

	b.ComputeIncomingFluxes(x1, q1t2, x2, q2t2)

	aintegral := amat2 * (2 * math.Pi) / (16 * math.Pi * math.Pi * (x1 * x2 * p.s) * (x1 * x2 * p.s)) *
		b.Flux1 / math.Pi * b.Flux2 / math.Pi * 0.25 *
		gev2ToPb * 0.5 / math.Pi

	return aintegral * b.QT1 * b.QT2 * p.ptDiff
}

func (p *PPtoLL) FillCentralParticles(b *ktprocess.Base, ev *event.Event) {
	sign := 1
	if rnd.Float64(0, 1) <= 0.5 {
		sign = -1
	}
	central := ev.ByRole(event.CentralSystem)
	if len(central) < 2 {
		return
	}
	central[0].SetPdgID(central[0].PdgID, sign)
	central[0].Status = event.StatusFinalState
	central[0].Momentum = p.pL1

	central[1].SetPdgID(central[1].PdgID, -sign)
	central[1].Status = event.StatusFinalState
	central[1].Momentum = p.pL2
}
