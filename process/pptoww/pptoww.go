// Copyright 2024 The Cepgen-sub003 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pptoww implements the kT-factorised p p -> (gamma gamma) -> W+ W-
// process (spec.md section 4.5), grounded on CepGen/Processes/PPtoWW.cpp's
// two matrix-element branches: the on-shell Denner-Dittmaier-Schuster form
// (method 0) and the off-shell Nachtmann helicity-amplitude sum (method 1).
package pptoww

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

// Method selects which of PPtoWW.cpp's two matrix-element forms computes
// the amplitude.
type Method int

const (
	// MethodOnShell is the closed-form Denner-Dittmaier-Schuster amplitude
	// (method==0 in the original), valid for on-shell W bosons.
	MethodOnShell Method = 0
	// MethodNachtmann is the off-shell Nachtmann helicity-amplitude sum
	// (method==1 in the original), the default.
	MethodNachtmann Method = 1
)

func init() {
	process.Register("pptoww", func() process.Process {
		return ktprocess.NewBase(New())
	})
	process.Register("pptoww-onshell", func() process.Process {
		return ktprocess.NewBase(NewWithMethod(MethodOnShell))
	})
}

// PPtoWW is the ktprocess.Kernel for gamma gamma -> W+ W-.
type PPtoWW struct {
	Method           Method
	y1, y2           float64
	ptDiff, phiDiff  float64
	pW1, pW2         kinematics.FourVector
	s, sqs           float64
}

// New returns an unconfigured PPtoWW kernel using the default off-shell
// Nachtmann amplitude (method 1).
func New() *PPtoWW { return &PPtoWW{Method: MethodNachtmann} }

// NewWithMethod returns an unconfigured PPtoWW kernel evaluating the given
// matrix-element method.
func NewWithMethod(method Method) *PPtoWW { return &PPtoWW{Method: method} }

func (p *PPtoWW) NumUserDimensions() int { return 4 }

func (p *PPtoWW) CentralSystem() []kinematics.PDGID {
	return []kinematics.PDGID{kinematics.WPlus, kinematics.WPlus}
}

func (p *PPtoWW) PrepareKinematics(b *ktprocess.Base) {
	p.s, p.sqs = b.S, b.Sqs

	base := ktprocess.NumRequiredDimensions
	p.y1 = rangeMap(b, base+0, -6, 6)
	p.y2 = rangeMap(b, base+1, -6, 6)

	ptDiffMax := 500.0
	p.ptDiff = rangeMap(b, base+2, 0, ptDiffMax)
	p.phiDiff = 2 * math.Pi * b.XAt(base+3)
}

// rangeMap reproduces Kinematics::Limits::x(u) = min + (max-min)*u.
func rangeMap(b *ktprocess.Base, i int, lo, hi float64) float64 {
	return lo + (hi-lo)*b.XAt(i)
}

func (p *PPtoWW) Jacobian(b *ktprocess.Base) float64 {
	jac := b.MinimalJacobian()
	jac *= 12.0 // d(y1) range width, -6..6
	jac *= 12.0 // d(y2)
	jac *= 500.0 // d(Dpt)
	jac *= 2 * math.Pi
	return jac
}

func (p *PPtoWW) MatrixElement(b *ktprocess.Base) float64 {
	mp := kinematics.Mass(kinematics.Proton)
	mp2 := mp * mp
	mw := kinematics.Mass(kinematics.WPlus)
	mw2 := mw * mw

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

	amt1 := math.Sqrt(pt1*pt1 + mw2)
	amt2 := math.Sqrt(pt2*pt2 + mw2)

	// W-pair invariant mass window
	invm := math.Sqrt(amt1*amt1 + amt2*amt2 + 2*amt1*amt2*math.Cosh(p.y1-p.y2) - ptsum*ptsum)
	massLim := b.KinematicsConfig().Cuts.PairMassSum
	if massLim.HasMin && invm < massLim.Min {
		return 0
	}
	if massLim.HasMax && invm > massLim.Max {
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

	p.pW1 = kinematics.NewFourVector(pt1x, pt1y, alpha1*ak1z+beta1*ak2z, alpha1*ak10+beta1*ak20)
	p.pW2 = kinematics.NewFourVector(pt2x, pt2y, alpha2*ak1z+beta2*ak2z, alpha2*ak10+beta2*ak20)

	ww := 0.5 * (1 + math.Sqrt(1-4*mp2/p.s))
	q1 := kinematics.NewFourVector(q1tx, q1ty,
		0.5*x1*ww*p.sqs*(1-q1t2/(x1*x1*ww*ww*p.s)),
		0.5*x1*ww*p.sqs*(1+q1t2/(x1*x1*ww*ww*p.s)))
	q2 := kinematics.NewFourVector(q2tx, q2ty,
		-0.5*x2*ww*p.sqs*(1-q2t2/(x2*x2*ww*ww*p.s)),
		0.5*x2*ww*p.sqs*(1+q2t2/(x2*x2*ww*ww*p.s)))

	b.PX = kinematics.NewFourVector(0, 0, b.Beam1Pz, b.Beam1E).Sub(q1)
	b.PY = kinematics.NewFourVector(0, 0, b.Beam2Pz, b.Beam2E).Sub(q2)

	shat := q1.Add(q2).Mass2()
	that1 := q1.Sub(p.pW1).Mass2()
	that2 := q2.Sub(p.pW2).Mass2()
	uhat1 := q1.Sub(p.pW2).Mass2()
	uhat2 := q2.Sub(p.pW1).Mass2()
	that := 0.5 * (that1 + that2)
	uhat := 0.5 * (uhat1 + uhat2)

	var amat2 float64
	switch p.Method {
	case MethodOnShell:
		amat2 = onShellMatrixElement(shat, that, uhat, mw2)
	default:
		amat2 = nachtmannMatrixElement(shat, that, uhat, mw2, b.PhiQT1, b.PhiQT2)
	}

	b.ComputeIncomingFluxes(x1, q1t2, x2, q2t2)

	aintegral := amat2 * (2 * math.Pi) / (16 * math.Pi * math.Pi * (x1 * x2 * p.s) * (x1 * x2 * p.s)) *
		b.Flux1 / math.Pi * b.Flux2 / math.Pi * 0.25 *
		gev2ToPb * 0.5 / math.Pi

	return aintegral * b.QT1 * b.QT2 * p.ptDiff
}

// onShellMatrixElement is the closed-form Denner-Dittmaier-Schuster
// amplitude squared for on-shell gamma gamma -> W+ W- (method 0 in
// PPtoWW.cpp, lines 248-264).
func onShellMatrixElement(shat, that, uhat, mw2 float64) float64 {
	mw4 := mw2 * mw2
	term1 := 2 * shat * (2*shat + 3*mw2) / (3 * (mw2 - that) * (mw2 - uhat))
	term2 := 2 * shat * shat * (shat*shat + 3*mw4) / (3 * math.Pow(mw2-that, 2) * math.Pow(mw2-uhat, 2))
	auxilGamgam := 1 - term1 + term2
	beta := math.Sqrt(1 - 4*mw2/shat)
	return 3 * alphaEM * alphaEM * beta / (2 * shat) * auxilGamgam / (beta / (64 * math.Pi * math.Pi * shat))
}

// nachtmannMatrixElement sums the off-shell Nachtmann helicity amplitudes
// over the nine W+ W- polarisation combinations (method 1 in PPtoWW.cpp).
func nachtmannMatrixElement(shat, that, uhat, mw2, phiQT1, phiQT2 float64) float64 {
	e2 := 4 * math.Pi * alphaEM
	phiDiff := phiQT1 - phiQT2
	phiSum := phiQT1 + phiQT2

	var amat0, amat1, amatInterf float64
	lambdas := []int{-1, 0, 1}
	for _, l3 := range lambdas {
		for _, l4 := range lambdas {
			pp := wwAmplitude(shat, that, uhat, 1, 1, l3, l4, mw2)
			mm := wwAmplitude(shat, that, uhat, -1, -1, l3, l4, mw2)
			pm := wwAmplitude(shat, that, uhat, 1, -1, l3, l4, mw2)
			mpl := wwAmplitude(shat, that, uhat, -1, 1, l3, l4, mw2)
			amat0 += pp*pp + mm*mm + 2*math.Cos(2*phiDiff)*pp*mm
			amat1 += pm*pm + mpl*mpl + 2*math.Cos(2*phiSum)*pm*mpl
			amatInterf -= 2 * (math.Cos(phiSum+phiDiff)*(pp*pm+mm*mpl) + math.Cos(phiSum-phiDiff)*(pp*mpl+mm*pm))
		}
	}
	return e2 * e2 * (amat0 + amat1 + amatInterf)
}

// wwAmplitude is the off-shell Nachtmann helicity amplitude for
// gamma(lam1) gamma(lam2) -> W(lam3) W(lam4).
func wwAmplitude(shat, that, uhat float64, lam1, lam2, lam3, lam4 int, mw2 float64) float64 {
	cosTheta := (that - uhat) / shat / math.Sqrt(1+1e-10-4*mw2/shat)
	cosTheta2 := cosTheta * cosTheta
	sinTheta2 := 1 - cosTheta2
	sinTheta := math.Sqrt(sinTheta2)
	beta := math.Sqrt(1 - 4*mw2/shat)
	beta2 := beta * beta
	gamma := 1 / math.Sqrt(1-beta2)
	gamma2 := gamma * gamma
	invA := 1 / (1 - beta2*cosTheta2)

	l1, l2, l3, l4 := float64(lam1), float64(lam2), float64(lam3), float64(lam4)
	sqrt2 := math.Sqrt2

	term1 := 1 / gamma2 * ((gamma2+1)*(1-l1*l2)*sinTheta2 - (1 + l1*l2))
	term2 := -sqrt2 / gamma * (l1 - l2) * (1 + l1*l3*cosTheta) * sinTheta
	term3 := -0.5 * (2*beta*(l1+l2)*(l3+l4) - (1/gamma2)*(1+l3*l4)*(2*l1*l2+(1-l1*l2)*cosTheta2) +
		(1+l1*l2*l3*l4)*(3+l1*l2) + 2*(l1-l2)*(l3-l4)*cosTheta + (1-l1*l2)*(1-l3*l4)*cosTheta2)
	term4 := -sqrt2 / gamma * (l2 - l1) * (1 + l2*l4*cosTheta) * sinTheta

	switch {
	case lam3 == 0 && lam4 == 0:
		return invA * term1
	case lam4 == 0:
		return invA * term2
	case lam3 == 0:
		return invA * term4
	case lam3 != 0 && lam4 != 0:
		return invA * term3
	default:
		return 0
	}
}

func (p *PPtoWW) FillCentralParticles(b *ktprocess.Base, ev *event.Event) {
	sign := 1
	if rnd.Float64(0, 1) <= 0.5 {
		sign = -1
	}
	central := ev.ByRole(event.CentralSystem)
	if len(central) < 2 {
		return
	}
	central[0].SetPdgID(central[0].PdgID, sign)
	central[0].Status = event.StatusUndecayed
	central[0].Momentum = p.pW1

	central[1].SetPdgID(central[1].PdgID, -sign)
	central[1].Status = event.StatusUndecayed
	central[1].Momentum = p.pW2
}
