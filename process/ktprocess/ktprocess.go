// Copyright 2024 The Cepgen-sub003 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ktprocess implements the shared kT-factorisation scaffolding
// (spec.md section 4.5) that process/pptoll and process/pptoww embed:
// the four required transverse-virtuality dimensions, remnant-mass mapping
// and incoming-flux evaluation common to every kT-factorised 2->4 process.
// It is grounded on processes/GenericKTProcess.{h,cpp}'s template-method
// split between a fixed ComputeWeight driver and the
// PrepareKTKinematics/ComputeJacobian/ComputeKTFactorisedMatrixElement/
// FillCentralParticlesKinematics hooks a concrete process overrides.
package ktprocess

import (
	"math"

	"github.com/cepgen/cepgen-sub003/event"
	"github.com/cepgen/cepgen-sub003/flux"
	"github.com/cepgen/cepgen-sub003/formfactor"
	"github.com/cepgen/cepgen-sub003/kinematics"
	"github.com/cepgen/cepgen-sub003/process"
)

const numRequiredDimensions = 4

// NumRequiredDimensions is the count of transverse-virtuality dimensions
// every kT-factorised process consumes before a Kernel's own dimensions.
const NumRequiredDimensions = numRequiredDimensions

// Kernel is the set of hooks a concrete kT-factorised process implements;
// Base calls these from ComputeWeight and FillKinematics, mirroring
// GenericKTProcess's pure-virtual trio.
type Kernel interface {
	// NumUserDimensions is the process-specific dimension count beyond the
	// 4 required transverse-virtuality coordinates.
	NumUserDimensions() int
	// PrepareKinematics derives any process-specific kinematic quantity
	// from the currently committed point, before the jacobian/matrix
	// element are evaluated.
	PrepareKinematics(b *Base)
	// Jacobian returns the process-specific Jacobian factor.
	Jacobian(b *Base) float64
	// MatrixElement returns the kT-factorised matrix element for the
	// currently prepared kinematics.
	MatrixElement(b *Base) float64
	// FillCentralParticles writes the central system's momenta into ev.
	FillCentralParticles(b *Base, ev *event.Event)
	// CentralSystem names the PDG species produced in the final state.
	CentralSystem() []kinematics.PDGID
}

// Base implements process.Process except for the three Kernel hooks,
// exactly the division of labour GenericKTProcess draws between itself and
// its subclasses.
type Base struct {
	Kernel Kernel

	kin process.KinematicsConfig
	x   []float64

	LogQmin, LogQmax float64
	QT1, QT2         float64
	PhiQT1, PhiQT2   float64
	MX, MY           float64
	Flux1, Flux2     float64
	PX, PY           kinematics.FourVector

	// S, Sqs and the beam energies/longitudinal momenta are derived once in
	// SetKinematics from KinematicsConfig, the same quantities GamGamLL and
	// the kT processes both read off the shared Event in the original
	// source; here they are plain fields so a Kernel can use them without an
	// Event reference during ComputeWeight.
	S, Sqs             float64
	Beam1E, Beam1Pz    float64
	Beam2E, Beam2Pz    float64

	ff     formfactor.Model // elastic leg, always the dipole model
	ffX    formfactor.Model // inelastic structure-function model for leg 1
	ffY    formfactor.Model // inelastic structure-function model for leg 2
}

// XAt returns the hypercube coordinate at the given dimension index.
func (b *Base) XAt(i int) float64 { return b.x[i] }

// KinematicsConfig returns the installed kinematics configuration.
func (b *Base) KinematicsConfig() process.KinematicsConfig { return b.kin }

// ComputeIncomingFluxes exposes the shared flux evaluation to a Kernel.
func (b *Base) ComputeIncomingFluxes(x1, q1t2, x2, q2t2 float64) {
	b.computeIncomingFluxes(x1, q1t2, x2, q2t2)
}

// NewBase wraps a Kernel into a process.Process-compatible driver.
func NewBase(k Kernel) *Base {
	return &Base{Kernel: k}
}

func (b *Base) Name() string { return "<generic kt process>" }

// AddEventContent registers the proton/parton/central-system topology.
func (b *Base) AddEventContent(ev *event.Event) {
	ev.AddParticle(event.IncomingBeam1, kinematics.Proton)
	ev.AddParticle(event.IncomingBeam2, kinematics.Proton)
	ev.AddParticle(event.Parton1, kinematics.Photon)
	ev.AddParticle(event.Parton2, kinematics.Photon)
	ev.AddParticle(event.OutgoingBeam1, kinematics.Proton)
	ev.AddParticle(event.OutgoingBeam2, kinematics.Proton)
	for _, pdg := range b.Kernel.CentralSystem() {
		ev.AddParticle(event.CentralSystem, pdg)
	}
}

// NumDimensions adds the 4 virtuality dimensions, the Kernel's own, and one
// per dissociated leg.
func (b *Base) NumDimensions(mode process.Mode) int {
	n := numRequiredDimensions + b.Kernel.NumUserDimensions()
	switch mode {
	case process.ElasticInelastic, process.InelasticElastic:
		n++
	case process.InelasticInelastic:
		n += 2
	}
	return n
}

// SetKinematics installs the beam/cut configuration, deriving the
// log-virtuality integration range from the parton Q^2 cut.
func (b *Base) SetKinematics(k process.KinematicsConfig) error {
	b.kin = k
	q2min := k.Cuts.PartonQ2.MinOr(1e-10)
	q2max := k.Cuts.PartonQ2.MaxOr(1e4)
	b.LogQmin = 0.5 * math.Log(q2min)
	b.LogQmax = 0.5 * math.Log(q2max)

	mp := kinematics.Mass(kinematics.Proton)
	b.Beam1Pz, b.Beam2Pz = k.Beam1Pz, -k.Beam2Pz
	b.Beam1E = math.Sqrt(k.Beam1Pz*k.Beam1Pz + mp*mp)
	b.Beam2E = math.Sqrt(k.Beam2Pz*k.Beam2Pz + mp*mp)
	b.S = math.Pow(b.Beam1E+b.Beam2E, 2) - math.Pow(b.Beam1Pz+b.Beam2Pz, 2)
	b.Sqs = math.Sqrt(b.S)

	elastic, err := formfactor.New("dipole")
	if err != nil {
		return err
	}
	b.ff = elastic

	if k.Mode == process.ElasticInelastic || k.Mode == process.InelasticInelastic {
		b.ffY, err = formfactor.New(string(k.StructureFunctions))
		if err != nil {
			return err
		}
	}
	if k.Mode == process.InelasticElastic || k.Mode == process.InelasticInelastic {
		b.ffX, err = formfactor.New(string(k.StructureFunctions))
		if err != nil {
			return err
		}
	}
	return nil
}

// SetPoint commits the current hypercube coordinate.
func (b *Base) SetPoint(x []float64) error {
	b.x = x
	return nil
}

// BeforeComputeWeight is a no-op for kT processes: remnant masses are
// derived inside ComputeWeight from the committed point, following
// ComputeOutgoingPrimaryParticlesMasses's placement directly in
// GenericKTProcess::ComputeWeight rather than a separate phase.
func (b *Base) BeforeComputeWeight() {}

func (b *Base) addPartonContent() {
	b.QT1 = math.Exp(b.LogQmin + (b.LogQmax-b.LogQmin)*b.x[0])
	b.QT2 = math.Exp(b.LogQmin + (b.LogQmax-b.LogQmin)*b.x[1])
	b.PhiQT1 = 2 * math.Pi * b.x[2]
	b.PhiQT2 = 2 * math.Pi * b.x[3]
}

func (b *Base) computeOutgoingPrimaryParticlesMasses() {
	opIndex := numRequiredDimensions + b.Kernel.NumUserDimensions()
	mp := kinematics.Mass(kinematics.Proton)
	mxLim := b.kin.Cuts.RemnantMX
	mxMin := mxLim.MinOr(mp)
	mxMax := mxLim.MaxOr(mp)

	switch b.kin.Mode {
	case process.ElasticElastic:
		b.MX, b.MY = mp, mp
	case process.ElasticInelastic:
		b.MX = mp
		b.MY = mxMin + (mxMax-mxMin)*b.x[opIndex]
	case process.InelasticElastic:
		b.MX = mxMin + (mxMax-mxMin)*b.x[opIndex]
		b.MY = mp
	case process.InelasticInelastic:
		b.MX = mxMin + (mxMax-mxMin)*b.x[opIndex]
		b.MY = mxMin + (mxMax-mxMin)*b.x[opIndex+1]
	}
}

func (b *Base) computeIncomingFluxes(x1, q1t2, x2, q2t2 float64) {
	b.Flux1, b.Flux2 = 0, 0
	switch b.kin.Mode {
	case process.ElasticElastic:
		b.Flux1 = flux.Elastic(x1, q1t2, b.ff)
		b.Flux2 = flux.Elastic(x2, q2t2, b.ff)
	case process.ElasticInelastic:
		b.Flux1 = flux.Elastic(x1, q1t2, b.ff)
		b.Flux2 = flux.InelasticFromModel(x2, q2t2, b.MY, b.ffY)
	case process.InelasticElastic:
		b.Flux1 = flux.InelasticFromModel(x1, q1t2, b.MX, b.ffX)
		b.Flux2 = flux.Elastic(x2, q2t2, b.ff)
	case process.InelasticInelastic:
		b.Flux1 = flux.InelasticFromModel(x1, q1t2, b.MX, b.ffX)
		b.Flux2 = flux.InelasticFromModel(x2, q2t2, b.MY, b.ffY)
	}
	if b.Flux1 < 1e-20 {
		b.Flux1 = 0
	}
	if b.Flux2 < 1e-20 {
		b.Flux2 = 0
	}
}

// MinimalJacobian returns the Jacobian contribution common to every
// kT-factorised process: the log-virtuality and azimuth measure, plus the
// remnant-mass-squared measure for each dissociated leg.
func (b *Base) MinimalJacobian() float64 {
	jac := (b.LogQmax - b.LogQmin) * b.QT1
	jac *= (b.LogQmax - b.LogQmin) * b.QT2
	jac *= 2 * math.Pi
	jac *= 2 * math.Pi

	mxLim := b.kin.Cuts.RemnantMX
	mp := kinematics.Mass(kinematics.Proton)
	dmx := mxLim.MaxOr(mp) - mxLim.MinOr(mp)
	switch b.kin.Mode {
	case process.ElasticInelastic:
		jac *= dmx * 2 * b.MY
	case process.InelasticElastic:
		jac *= dmx * 2 * b.MX
	case process.InelasticInelastic:
		jac *= dmx * 2 * b.MX
		jac *= dmx * 2 * b.MY
	}
	return jac
}

// ComputeWeight drives the fixed kT-factorisation sequence: derive parton
// virtualities, let the Kernel prepare its kinematics and remnant masses,
// then combine the Kernel's Jacobian and matrix element.
func (b *Base) ComputeWeight() float64 {
	b.addPartonContent()
	b.computeOutgoingPrimaryParticlesMasses()
	b.Kernel.PrepareKinematics(b)

	jac := b.Kernel.Jacobian(b)
	integrand := b.Kernel.MatrixElement(b)
	return jac * integrand
}

// FillKinematics writes the incoming beams, the outgoing protons/remnants and
// the incoming partons, then delegates the central system to the Kernel.
func (b *Base) FillKinematics(ev *event.Event, symmetrise bool) {
	op1, _, _ := ev.OneByRole(event.OutgoingBeam1)
	op2, _, _ := ev.OneByRole(event.OutgoingBeam2)

	ib1, _, _ := ev.OneByRole(event.IncomingBeam1)
	ib2, _, _ := ev.OneByRole(event.IncomingBeam2)
	ib1.Momentum = kinematics.NewFourVector(0, 0, b.Beam1Pz, b.Beam1E)
	ib2.Momentum = kinematics.NewFourVector(0, 0, b.Beam2Pz, b.Beam2E)

	switch b.kin.Mode {
	case process.ElasticElastic:
		op1.Status = event.StatusFinalState
		op2.Status = event.StatusFinalState
	case process.ElasticInelastic:
		op1.Status = event.StatusFinalState
		op2.Status = event.StatusUndecayed
		op2.SetMass(b.MY)
	case process.InelasticElastic:
		op1.Status = event.StatusUndecayed
		op1.SetMass(b.MX)
		op2.Status = event.StatusFinalState
	case process.InelasticInelastic:
		op1.Status = event.StatusUndecayed
		op1.SetMass(b.MX)
		op2.Status = event.StatusUndecayed
		op2.SetMass(b.MY)
	}
	op1.Momentum = b.PX
	op2.Momentum = b.PY

	if g1, _, _ := ev.OneByRole(event.Parton1); g1 != nil {
		g1.Momentum = ib1.Momentum.Sub(b.PX)
		g1.Status = event.StatusIncoming
	}
	if g2, _, _ := ev.OneByRole(event.Parton2); g2 != nil {
		g2.Momentum = ib2.Momentum.Sub(b.PY)
		g2.Status = event.StatusIncoming
	}

	b.Kernel.FillCentralParticles(b, ev)
}
