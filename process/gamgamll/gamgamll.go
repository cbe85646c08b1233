// Copyright 2024 The Cepgen-sub003 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gamgamll implements the LPAIR-style 2->3(+remnants) process
// gamma gamma -> l+ l- (spec.md section 4.4), grounded directly on
// CepGen/Processes/GamGamLL.cpp's pickin/orient/computeWeight/fillKinematics
// algorithm. It is the hardest kernel in the repository: every intermediate
// quantity below keeps the original's variable names (translated to
// lowerCamelCase) so the two can be read side by side.
package gamgamll

import (
	"math"

	"github.com/cepgen/cepgen-sub003/event"
	"github.com/cepgen/cepgen-sub003/formfactor"
	"github.com/cepgen/cepgen-sub003/kinematics"
	"github.com/cepgen/cepgen-sub003/process"
	"github.com/cpmech/gosl/rnd"
)

// gev2ToPb converts a squared-GeV^-1 amplitude into picobarn, the unit the
// generator reports cross sections in (hbar*c squared, in picobarn).
const gev2ToPb = 3.89379338e8

// twoBodyPhaseSpaceNorm is the phase-space normalisation the original source
// names Constants::sconstb; its defining header is not present in the
// retrieved original_source tree, so the value is picked to match the
// standard relativistic 2->3 phase-space normalisation (1/32 pi^3) used
// throughout the LPAIR-derived literature.
const twoBodyPhaseSpaceNorm = 1.0 / (32.0 * math.Pi * math.Pi * math.Pi)

func init() {
	process.Register("lpair", func() process.Process { return New(0) })
}

// GamGamLL is the LPAIR kernel. nOpt selects the optimised-variable-mapping
// branch for the x2 (s2) coordinate (spec.md section 4.4).
type GamGamLL struct {
	nOpt int

	kin  process.KinematicsConfig
	ff1  formfactor.Model
	ff2  formfactor.Model
	elec formfactor.Model // trivial form factor for elastic legs, pre-resolved

	x [9]float64

	s, sqs   float64
	w1, w2   float64 // squared incoming beam masses
	mx2, my2 float64
	mx, my   float64
	ml2      float64

	w12, w31, dw31, w52, dw52 float64
	ec4, pc4, mc4, w4         float64
	p12, p1k2, p2k1           float64
	p13, p14, p25             float64
	q1dq, q1dq2               float64
	s1, s2                    float64
	epsi                      float64
	g5, g6, a5, a6, bb        float64
	gram                      float64
	dd1, dd2, dd3, dd4, dd5   float64
	delta                     float64
	g4, sa1, sa2              float64
	sl1                       float64
	cosTheta4, sinTheta4      float64
	al4, be4, de3, de5        float64
	pt4                       float64
	jacobian                  float64
	ep1, ep2, pCm             float64
	t1, t2                    float64

	p3Lab, p5Lab kinematics.FourVector
	p6Cm, p7Cm   kinematics.FourVector
}

// New returns a GamGamLL instance with the given n_opt variable-mapping
// selector (spec.md section 9's Open Question on the n_opt<-1 branch).
func New(nOpt int) *GamGamLL {
	return &GamGamLL{nOpt: nOpt, elec: mustTrivial()}
}

func mustTrivial() formfactor.Model {
	m, err := formfactor.New("trivial")
	if err != nil {
		panic(err)
	}
	return m
}

// Name returns the registered process name.
func (g *GamGamLL) Name() string { return "lpair" }

// AddEventContent registers the 2->3(+remnants) event topology.
func (g *GamGamLL) AddEventContent(ev *event.Event) {
	ev.AddParticle(event.IncomingBeam1, kinematics.Proton)
	ev.AddParticle(event.IncomingBeam2, kinematics.Proton)
	ev.AddParticle(event.Parton1, kinematics.Photon)
	ev.AddParticle(event.Parton2, kinematics.Photon)
	ev.AddParticle(event.OutgoingBeam1, kinematics.Proton)
	ev.AddParticle(event.OutgoingBeam2, kinematics.Proton)
	for _, pdg := range g.centralSystemOrDefault() {
		ev.AddParticle(event.CentralSystem, pdg)
	}
	ev.AddParticle(event.Intermediate, kinematics.Invalid)
}

func (g *GamGamLL) centralSystemOrDefault() []kinematics.PDGID {
	if len(g.kin.CentralSystem) == 2 {
		return g.kin.CentralSystem
	}
	return []kinematics.PDGID{kinematics.Muon, kinematics.Muon}
}

// NumDimensions declares the hypercube dimension for the given mode: 7 base
// dimensions plus one per dissociative leg.
func (g *GamGamLL) NumDimensions(mode process.Mode) int {
	switch mode {
	case process.ElasticElastic:
		return 7
	case process.ElasticInelastic, process.InelasticElastic:
		return 8
	case process.InelasticInelastic:
		return 9
	default:
		return 7
	}
}

// SetKinematics installs the beam/cut configuration and resolves the
// structure-function models for each leg.
func (g *GamGamLL) SetKinematics(k process.KinematicsConfig) error {
	g.kin = k
	m1 := kinematics.Mass(k.Beam1PdgID)
	m2 := kinematics.Mass(k.Beam2PdgID)
	g.w1, g.w2 = m1*m1, m2*m2
	g.s = 2*k.Beam1Pz*k.Beam2Pz + g.w1 + g.w2
	g.sqs = math.Sqrt(g.s)

	var err error
	g.ff1, err = resolveFormFactor(k.Mode, true, k.StructureFunctions)
	if err != nil {
		return err
	}
	g.ff2, err = resolveFormFactor(k.Mode, false, k.StructureFunctions)
	return err
}

func resolveFormFactor(mode process.Mode, leg1 bool, sf process.StructureFunctions) (formfactor.Model, error) {
	elastic := true
	switch mode {
	case process.ElasticElastic:
		elastic = true
	case process.ElasticInelastic:
		elastic = leg1
	case process.InelasticElastic:
		elastic = !leg1
	case process.InelasticInelastic:
		elastic = false
	}
	if elastic {
		return formfactor.New("dipole")
	}
	return formfactor.New(string(sf))
}

// SetPoint commits the current hypercube coordinate.
func (g *GamGamLL) SetPoint(x []float64) error {
	copy(g.x[:], x)
	return nil
}

// mapLog implements the original source's log-uniform `Map` helper.
func mapLog(expo, xmin, xmax float64) (out, dout float64) {
	y := xmax / xmin
	out = xmin * math.Pow(y, expo)
	dout = out * math.Log(y)
	return
}

// mapla implements the original source's mixed log/quadratic `Mapla` helper.
func mapla(y, z float64, u int, xm, xp float64) (x, d float64) {
	xmb := xm - y - z
	xpb := xp - y - z
	c := -4 * y * z
	alp := math.Sqrt(xpb*xpb + c)
	alm := math.Sqrt(xmb*xmb + c)
	am := xmb + alm
	ap := xpb + alp
	yy := ap / am
	zz := math.Pow(yy, float64(u))
	x = y + z + (am*zz-c/(am*zz))/2
	ax := math.Sqrt(math.Pow(x-y-z, 2) + c)
	d = ax * math.Log(yy)
	return
}

// computeOutgoingPrimaryParticlesMasses maps one log-uniform hypercube axis
// to a remnant invariant mass, per spec.md section 4.4's remnant-mass axes.
func (g *GamGamLL) computeOutgoingPrimaryParticlesMasses(x, outMass, lepMass float64) (mass, dmass float64) {
	mx0 := kinematics.Mass(kinematics.Proton) + kinematics.Mass(kinematics.PiPlus)
	limits := g.kin.Cuts.RemnantMX
	wx2min := math.Pow(math.Max(mx0, limits.MinOr(0)), 2)
	wx2max := math.Pow(math.Min(g.sqs-outMass-2*lepMass, limits.MaxOr(g.sqs)), 2)
	mx2, dmx2 := mapLog(x, wx2min, wx2max)
	return math.Sqrt(mx2), math.Sqrt(dmx2)
}

// BeforeComputeWeight evaluates the mode-dependent remnant-mass mappings.
func (g *GamGamLL) BeforeComputeWeight() {
	m1 := math.Sqrt(g.w1)
	m2 := math.Sqrt(g.w2)
	g.ml2 = kinematics.Mass(g.centralSystemOrDefault()[0])
	g.ml2 *= g.ml2

	switch g.kin.Mode {
	case process.ElasticElastic:
		g.dw31, g.dw52 = 0, 0
		g.mx, g.my = m1, m2
	case process.InelasticElastic:
		g.mx, g.dw31 = g.computeOutgoingPrimaryParticlesMasses(g.x[7], m1, math.Sqrt(g.ml2))
		g.my = m2
	case process.ElasticInelastic:
		g.my, g.dw52 = g.computeOutgoingPrimaryParticlesMasses(g.x[7], m2, math.Sqrt(g.ml2))
		g.mx = m1
	case process.InelasticInelastic:
		g.mx, g.dw31 = g.computeOutgoingPrimaryParticlesMasses(g.x[7], m2, math.Sqrt(g.ml2))
		g.my, g.dw52 = g.computeOutgoingPrimaryParticlesMasses(g.x[8], m1, math.Sqrt(g.ml2))
	}
	g.mx2 = g.mx * g.mx
	g.my2 = g.my * g.my
}

// pickin implements GamGamLL::pickin: derives t1, t2, s1, s2 bounds and the
// Gram-determinant/peripheral invariants, accumulating the running Jacobian.
// It returns false wherever the original returns false (a recoverable
// kinematic rejection, spec.md section 7).
func (g *GamGamLL) pickin() bool {
	g.jacobian = 0
	g.w4 = g.mc4 * g.mc4

	sig := g.mc4 + g.my
	sig1 := sig * sig
	sig2 := sig1

	g.w31 = g.mx2 - g.w1
	g.w52 = g.my2 - g.w2
	g.w12 = g.w1 - g.w2
	d6 := g.w4 - g.my2

	ss := g.s + g.w12
	rl1 := ss*ss - 4*g.w1*g.s
	if rl1 <= 0 {
		return false
	}
	g.sl1 = math.Sqrt(rl1)

	g.s2 = 0
	var ds2 float64
	if g.nOpt == 0 {
		smax := g.s + g.mx2 - 2*g.mx*g.sqs
		g.s2, ds2 = mapLog(g.x[2], sig1, smax)
		sig1 = g.s2
	}

	sp := g.s + g.mx2 - sig1
	d3 := sig1 - g.w2
	rl2 := sp*sp - 4*g.s*g.mx2
	if rl2 <= 0 {
		return false
	}
	sl2 := math.Sqrt(rl2)

	t1Max := g.w1 + g.mx2 - (ss*sp+g.sl1*sl2)/(2*g.s)
	t1Min := (g.w31*d3 + (d3-g.w31)*(d3*g.w1-g.w31*g.w2)/g.s) / t1Max

	q2 := g.kin.Cuts.PartonQ2
	if t1Max > -q2.MinOr(0) {
		return false
	}
	if q2.HasMax && t1Min < -q2.Max {
		return false
	}
	if q2.HasMax && t1Max < -q2.Max {
		t1Max = -q2.Max
	}
	if t1Min > -q2.MinOr(0) {
		t1Min = -q2.MinOr(0)
	}

	var dt1 float64
	g.t1, dt1 = mapLog(g.x[0], t1Min, t1Max)
	dt1 = -dt1

	g.dd4 = g.w4 - g.t1
	d8 := g.t1 - g.w2
	t13 := g.t1 - g.w1 - g.mx2

	g.sa1 = -math.Pow(g.t1-g.w31, 2)/4 + g.w1*g.t1
	if g.sa1 >= 0 {
		return false
	}
	sl3 := math.Sqrt(-g.sa1)

	var splus, s2max float64
	if g.w1 != 0 {
		sb := (g.s*(g.t1-g.w31)+g.w12*t13)/(2*g.w1) + g.mx2
		sd := g.sl1 * sl3 / g.w1
		se := (g.s*(g.t1*(g.s+t13-g.w2)-g.w2*g.w31) + g.mx2*(g.w12*d8+g.w2*g.mx2)) / g.w1
		if math.Abs((sb-sd)/sd) >= 1 {
			splus = sb - sd
			s2max = se / splus
		} else {
			s2max = sb + sd
			splus = se / s2max
		}
	} else {
		s2max = (g.s*(g.t1*(g.s+d8-g.mx2)-g.w2*g.mx2) + g.w2*g.mx2*(g.w2+g.mx2-g.t1)) / (ss * t13)
		splus = sig2
	}
	s2x := s2max

	if g.nOpt < 0 {
		if splus > sig2 {
			sig2 = splus
		}
		if g.nOpt < -1 {
			g.s2, ds2 = mapLog(g.x[2], sig2, s2max)
		} else {
			g.s2, ds2 = mapla(g.t1, g.w2, int(g.x[2]), sig2, s2max)
		}
		s2x = g.s2
	} else if g.nOpt == 0 {
		s2x = g.s2
	}

	r1 := s2x - d8
	r2 := s2x - d6
	rl4 := (r1*r1 - 4*g.w2*s2x) * (r2*r2 - 4*g.my2*s2x)
	if rl4 <= 0 {
		return false
	}
	sl4 := math.Sqrt(rl4)

	t2Max := g.w2 + g.my2 - (r1*r2+sl4)/s2x*0.5
	t2Min := (g.w52*g.dd4 + (g.dd4-g.w52)*(g.dd4*g.w2-g.w52*g.t1)/s2x) / t2Max

	var dt2 float64
	g.t2, dt2 = mapLog(g.x[1], t2Min, t2Max)
	dt2 = -dt2

	tau := g.t1 - g.t2
	r3 := g.dd4 - g.t2
	r4 := g.w52 - g.t2

	b := r3*r4 - 2*(g.t1+g.w2)*g.t2
	c := g.t2*d6*d8 + (d6-d8)*(d6*g.w2-d8*g.my2)
	t25 := g.t2 - g.w2 - g.my2

	g.sa2 = -r4*r4/4 + g.w2*g.t2
	if g.sa2 >= 0 {
		return false
	}
	sl6 := 2 * math.Sqrt(-g.sa2)

	g.g4 = -r3*r3/4 + g.t1*g.t2
	if g.g4 >= 0 {
		return false
	}
	sl7 := 2 * math.Sqrt(-g.g4)
	sl5 := sl6 * sl7

	var s2p, s2min float64
	if math.Abs((sl5-b)/sl5) >= 1 {
		s2p = (sl5 - b) / g.t2 * 0.5
		s2min = c / (g.t2 * s2p)
	} else {
		s2min = (-sl5 - b) / g.t2 * 0.5
		s2p = c / (g.t2 * s2min)
	}
	if g.nOpt > 1 {
		g.s2, ds2 = mapLog(g.x[2], s2min, s2max)
	} else if g.nOpt == 1 {
		g.s2, ds2 = mapla(g.t1, g.w2, int(g.x[2]), s2min, s2max)
	}

	ap := -0.25*math.Pow(g.s2+d8, 2) + g.s2*g.t1

	if g.w1 != 0 {
		g.dd1 = -0.25 * (g.s2 - s2max) * (g.s2 - splus) * g.w1
	} else {
		g.dd1 = 0.25 * (g.s2 - s2max) * ss * t13
	}
	g.dd2 = -g.t2 * (g.s2 - s2p) * (g.s2 - s2min) * 0.25

	yy4 := math.Cos(math.Pi * g.x[3])
	dd := g.dd1 * g.dd2
	g.p12 = (g.s - g.w1 - g.w2) * 0.5
	st := g.s2 - g.t1 - g.w2
	delb := (2*g.w2*r3 + r4*st) * (4*g.p12*g.t1 - (g.t1-g.w31)*st) / (16 * ap)

	if dd <= 0 {
		return false
	}

	g.delta = delb - yy4*st*math.Sqrt(dd)/ap*0.5
	g.s1 = g.t2 + g.w1 + (2*g.p12*r3-4*g.delta)/st

	if ap >= 0 {
		return false
	}

	g.jacobian = ds2 * dt1 * dt2 * math.Pi * math.Pi / (8 * g.sl1 * math.Sqrt(-ap))

	g.gram = (1 - yy4*yy4) * dd / ap

	g.p13 = -t13 * 0.5
	g.p14 = (tau + g.s1 - g.mx2) * 0.5
	g.p25 = -t25 * 0.5

	g.p1k2 = (g.s1 - g.t2 - g.w1) * 0.5
	g.p2k1 = st * 0.5

	var s1p, s1m float64
	if g.w2 != 0 {
		sbb := (g.s*(g.t2-g.w52)-g.w12*t25)/g.w2*0.5 + g.my2
		sdd := g.sl1 * sl6 / g.w2 * 0.5
		see := (g.s*(g.t2*(g.s+t25-g.w1)-g.w1*g.w52) + g.my2*(g.w1*g.my2-g.w12*(g.t2-g.w1))) / g.w2
		if sbb/sdd >= 0 {
			s1p = sbb + sdd
			s1m = see / s1p
		} else {
			s1m = sbb - sdd
			s1p = see / s1m
		}
		g.dd3 = -g.w2 * (s1p - g.s1) * (s1m - g.s1) * 0.25
	} else {
		s1p = (g.s*(g.t2*(g.s-g.my2+g.t2-g.w1)-g.w1*g.my2) + g.w1*g.my2*(g.w1+g.my2-g.t2)) / (t25 * (g.s - g.w12))
		g.dd3 = -t25 * (g.s - g.w12) * (s1p - g.s1) * 0.25
	}

	ssb := g.t2 + g.w1 - r3*(g.w31-g.t1)/g.t1*0.5
	ssd := sl3 * sl7 / g.t1
	sse := (g.t2-g.w1)*(g.w4-g.mx2) + (g.t2-g.w4+g.w31)*((g.t2-g.w1)*g.mx2-(g.w4-g.mx2)*g.w1)/g.t1

	var s1pp, s1pm float64
	if ssb/ssd >= 0 {
		s1pp = ssb + ssd
		s1pm = sse / s1pp
	} else {
		s1pm = ssb - ssd
		s1pp = sse / s1pm
	}
	g.dd4 = -g.t1 * (g.s1 - s1pp) * (g.s1 - s1pm) * 0.25
	g.dd5 = g.dd1 + g.dd3 + ((g.p12*(g.t1-g.w31)*0.5-g.w1*g.p2k1)*(g.p2k1*(g.t2-g.w52)-g.w2*r3)-g.delta*(2*g.p12*g.p2k1-g.w2*(g.t1-g.w31)))/g.p2k1

	return true
}

// orient implements GamGamLL::orient: it builds the lab-frame outgoing proton
// momenta (p3, p5) and the central system's (theta4, phi4) from pickin's
// invariants.
func (g *GamGamLL) orient() bool {
	if !g.pickin() || g.jacobian == 0 {
		return false
	}

	re := 0.5 / g.sqs
	g.ep1 = re * (g.s + g.w12)
	g.ep2 = re * (g.s - g.w12)
	g.pCm = re * g.sl1

	g.de3 = re * (g.s2 - g.mx2 + g.w12)
	g.de5 = re * (g.s1 - g.my2 - g.w12)

	ep3 := g.ep1 - g.de3
	ep5 := g.ep2 - g.de5
	g.ec4 = g.de3 + g.de5

	if g.ec4 < g.mc4 {
		return false
	}
	g.pc4 = math.Sqrt(g.ec4*g.ec4 - g.mc4*g.mc4)
	if g.pc4 == 0 {
		return false
	}

	pp3 := math.Sqrt(ep3*ep3 - g.mx2)
	pt3 := math.Sqrt(g.dd1/g.s) / g.pCm
	pp5 := math.Sqrt(ep5*ep5 - g.my2)
	pt5 := math.Sqrt(g.dd3/g.s) / g.pCm

	sinTheta3 := pt3 / pp3
	sinTheta5 := pt5 / pp5
	if sinTheta3 > 1 || sinTheta5 > 1 {
		return false
	}

	ct3 := math.Sqrt(1 - sinTheta3*sinTheta3)
	ct5 := math.Sqrt(1 - sinTheta5*sinTheta5)
	if g.ep1*ep3 < g.p13 {
		ct3 *= -1
	}
	if g.ep2*ep5 > g.p25 {
		ct5 *= -1
	}

	if g.dd5 < 0 {
		return false
	}

	g.pt4 = math.Sqrt(g.dd5/g.s) / g.pCm
	g.sinTheta4 = g.pt4 / g.pc4
	if g.sinTheta4 > 1 {
		return false
	}
	g.cosTheta4 = math.Sqrt(1 - g.sinTheta4*g.sinTheta4)
	if g.ep1*g.ec4 < g.p14 {
		g.cosTheta4 *= -1
	}

	g.al4 = 1 - g.cosTheta4
	g.be4 = 1 + g.cosTheta4
	if g.cosTheta4 < 0 {
		g.be4 = g.sinTheta4 * g.sinTheta4 / g.al4
	} else {
		g.al4 = g.sinTheta4 * g.sinTheta4 / g.be4
	}

	rr := math.Sqrt(-g.gram/g.s) / (g.pCm * g.pt4)
	sinPhi3 := rr / pt3
	sinPhi5 := -rr / pt5
	if math.Abs(sinPhi3) > 1 || math.Abs(sinPhi5) > 1 {
		return false
	}
	cosPhi3 := -math.Sqrt(1 - sinPhi3*sinPhi3)
	cosPhi5 := -math.Sqrt(1 - sinPhi5*sinPhi5)

	g.p3Lab = kinematics.NewFourVector(pp3*sinTheta3*cosPhi3, pp3*sinTheta3*sinPhi3, pp3*ct3, ep3)
	g.p5Lab = kinematics.NewFourVector(pp5*sinTheta5*cosPhi5, pp5*sinTheta5*sinPhi5, pp5*ct5, ep5)

	a1 := g.p3Lab.Px - g.p5Lab.Px
	if math.Abs(g.pt4+g.p3Lab.Px+g.p5Lab.Px) < math.Abs(math.Abs(a1)-g.pt4) {
		return true
	}
	if a1 < 0 {
		g.p5Lab.Px = -g.p5Lab.Px
	} else {
		g.p3Lab.Px = -g.p3Lab.Px
	}
	return true
}

// ComputeWeight implements GamGamLL::computeWeight.
func (g *GamGamLL) ComputeWeight() float64 {
	wLimits := g.kin.Cuts.PartonW
	wMax := wLimits.MaxOr(g.s)
	wMin := math.Max(4*g.ml2, wLimits.MinOr(0))
	wMax = math.Min(math.Pow(g.sqs-g.mx-g.my, 2), wMax)

	var dw4 float64
	g.w4, dw4 = mapLog(g.x[4], wMin, wMax)
	g.mc4 = math.Sqrt(g.w4)

	if !g.orient() {
		return 0
	}
	if g.jacobian == 0 {
		return 0
	}
	if g.t1 > 0 || g.t2 > 0 {
		return 0
	}

	ecm6 := g.w4 / (2 * g.mc4)
	pp6cm := math.Sqrt(ecm6*ecm6 - g.ml2)

	g.jacobian *= dw4 * pp6cm / (g.mc4 * twoBodyPhaseSpaceNorm * g.s)

	e1mp1 := g.w1 / (g.ep1 + g.pCm)
	e3mp3 := g.mx2 / (g.p3Lab.E + g.p3Lab.P())
	al3 := math.Pow(math.Sin(g.p3Lab.Theta()), 2) / (1 + g.p3Lab.Theta())

	eg := (g.w4 + g.t1 - g.t2) / (2 * g.mc4)
	pg := math.Sqrt(eg*eg - g.t1)

	pgx := -g.p3Lab.Px*g.cosTheta4 - g.sinTheta4*(g.de3-e1mp1+e3mp3+g.p3Lab.P()*al3)
	pgy := -g.p3Lab.Py
	pgz := g.mc4*g.de3/(g.ec4+g.pc4) - g.ec4*g.de3*g.al4/g.mc4 - g.p3Lab.Px*g.ec4*g.sinTheta4/g.mc4 +
		g.ec4*g.cosTheta4/g.mc4*(g.p3Lab.P()*al3+e3mp3-e1mp1)

	pgp := math.Sqrt(pgx*pgx + pgy*pgy)
	pgg := math.Sqrt(pgp*pgp + pgz*pgz)
	if pgg > pgp*0.9 && pgg > pg {
		pg = pgg
	}

	cpg := pgx / pgp
	spg := pgy / pgp
	stg := pgp / pg
	thetaSign := 1.0
	if pgz <= 0 {
		thetaSign = -1
	}
	ctg := thetaSign * math.Sqrt(1-stg*stg)

	xx6 := g.x[5]
	amap := 0.5 * (g.w4 - g.t1 - g.t2)
	bmap := 0.5 * math.Sqrt((math.Pow(g.w4-g.t1-g.t2, 2)-4*g.t1*g.t2)*(1-4*g.ml2/g.w4))
	ymap := (amap + bmap) / (amap - bmap)
	beta := math.Pow(ymap, 2*xx6-1)
	xx6 = 0.5 * (1 + amap/bmap*(beta-1)/(beta+1))
	xx6 = math.Max(0, math.Min(xx6, 1))

	theta6cm := math.Acos(1 - 2*xx6)

	g.jacobian *= amap + bmap*math.Cos(theta6cm)
	g.jacobian *= amap - bmap*math.Cos(theta6cm)
	g.jacobian /= amap
	g.jacobian /= bmap
	g.jacobian *= math.Log(ymap)
	g.jacobian *= 0.5

	phi6cm := 2 * math.Pi * g.x[6]
	p6cm := kinematics.FromPThetaPhiE(pp6cm, theta6cm, phi6cm, 0)

	h1 := stg*p6cm.Pz + ctg*p6cm.Px
	pc6z := ctg*p6cm.Pz - stg*p6cm.Px
	pc6x := cpg*h1 - spg*p6cm.Py

	qcx := 2 * pc6x
	qcz := 2 * pc6z

	el6 := (g.ec4*ecm6 + g.pc4*pc6z) / g.mc4
	h2 := (g.ec4*pc6z + g.pc4*ecm6) / g.mc4

	p6x := g.cosTheta4*pc6x + g.sinTheta4*h2
	p6y := cpg*p6cm.Py + spg*h1
	p6z := g.cosTheta4*h2 - g.sinTheta4*pc6x
	g.p6Cm = kinematics.NewFourVector(p6x, p6y, p6z, el6)

	hq := g.ec4 * qcz / g.mc4
	qve := kinematics.NewFourVector(
		g.cosTheta4*qcx+g.sinTheta4*hq,
		2*p6y,
		g.cosTheta4*hq-g.sinTheta4*qcx,
		g.pc4*qcz/g.mc4,
	)

	el7 := g.ec4 - el6
	p7x := -p6x + g.pt4
	p7y := -p6y
	p7z := -p6z + g.pc4*g.cosTheta4
	g.p7Cm = kinematics.NewFourVector(p7x, p7y, p7z, el7)

	g.q1dq = eg*(2*ecm6-g.mc4) - 2*pg*p6cm.Pz
	g.q1dq2 = (g.w4 - g.t1 - g.t2) * 0.5

	phi3 := g.p3Lab.Phi()
	cosPhi3, sinPhi3 := math.Cos(phi3), math.Sin(phi3)
	phi5 := g.p5Lab.Phi()
	cosPhi5, sinPhi5 := math.Cos(phi5), math.Sin(phi5)

	g.bb = g.t1*g.t2 + (g.w4*math.Pow(math.Sin(theta6cm), 2)+4*g.ml2*math.Pow(math.Cos(theta6cm), 2))*pg*pg

	c1 := g.p3Lab.Pt() * (qve.Px*sinPhi3 - qve.Py*cosPhi3)
	c2 := g.p3Lab.Pt() * (qve.Pz*g.ep1 - qve.E*g.pCm)
	c3 := (g.w31*g.ep1*g.ep1 + 2*g.w1*g.de3*g.ep1 - g.w1*g.de3*g.de3 + g.p3Lab.Pt2()*g.ep1*g.ep1) /
		(g.p3Lab.E*g.pCm + g.p3Lab.Pz*g.ep1)

	b1 := g.p5Lab.Pt() * (qve.Px*sinPhi5 - qve.Py*cosPhi5)
	b2 := g.p5Lab.Pt() * (qve.Pz*g.ep2 + qve.E*g.pCm)
	b3 := (g.w52*g.ep2*g.ep2 + 2*g.w2*g.de5*g.ep2 - g.w2*g.de5*g.de5 + g.p5Lab.Pt2()*g.ep2*g.ep2) /
		(g.ep2*g.p5Lab.Pz - g.p5Lab.E*g.pCm)

	r12 := c2*sinPhi3 + qve.Py*c3
	r13 := -c2*cosPhi3 - qve.Px*c3
	r22 := b2*sinPhi5 + qve.Py*b3
	r23 := -b2*cosPhi5 - qve.Px*b3

	g.epsi = g.p12*c1*b1 + r12*r22 + r13*r23
	g.g5 = g.w1*c1*c1 + r12*r12 + r13*r13
	g.g6 = g.w2*b1*b1 + r22*r22 + r23*r23

	g.a5 = -(qve.Px*cosPhi3+qve.Py*sinPhi3)*g.p3Lab.Pt()*g.p1k2 -
		(g.ep1*qve.E-g.pCm*qve.Pz)*(cosPhi3*cosPhi5+sinPhi3*sinPhi5)*g.p3Lab.Pt()*g.p5Lab.Pt() +
		(g.de5*qve.Pz+qve.E*(g.pCm+g.p5Lab.Pz))*c3
	g.a6 = -(qve.Px*cosPhi5+qve.Py*sinPhi5)*g.p5Lab.Pt()*g.p2k1 -
		(g.ep2*qve.E+g.pCm*qve.Pz)*(cosPhi3*cosPhi5+sinPhi3*sinPhi5)*g.p3Lab.Pt()*g.p5Lab.Pt() +
		(g.de3*qve.Pz-qve.E*(g.pCm-g.p3Lab.Pz))*b3

	mxLimits := g.kin.Cuts.RemnantMX
	myLimits := g.kin.Cuts.RemnantMY
	if g.kin.Mode == process.InelasticElastic || g.kin.Mode == process.InelasticInelastic {
		if mxLimits.HasMin && g.mx < mxLimits.Min {
			return 0
		}
		if mxLimits.HasMax && g.mx > mxLimits.Max {
			return 0
		}
	}
	if g.kin.Mode == process.ElasticInelastic || g.kin.Mode == process.InelasticInelastic {
		if myLimits.HasMin && g.my < myLimits.Min {
			return 0
		}
		if myLimits.HasMax && g.my > myLimits.Max {
			return 0
		}
	}

	q2Limits := g.kin.Cuts.PartonQ2
	if q2Limits.HasMax && g.t1 < -q2Limits.Max {
		return 0
	}
	if q2Limits.HasMin && g.t1 > -q2Limits.Min {
		return 0
	}

	mSum := g.p6Cm.Add(g.p7Cm)
	mLimits := g.kin.Cuts.PairMassSum
	if mLimits.HasMin && mSum.Mass() < mLimits.Min {
		return 0
	}
	if mLimits.HasMax && mSum.Mass() > mLimits.Max {
		return 0
	}

	ptLimits := g.kin.Cuts.SinglePartPt
	if ptLimits.HasMin && (g.p6Cm.Pt() < ptLimits.Min || g.p7Cm.Pt() < ptLimits.Min) {
		return 0
	}
	if ptLimits.HasMax && (g.p6Cm.Pt() > ptLimits.Max || g.p7Cm.Pt() > ptLimits.Max) {
		return 0
	}

	eLimits := g.kin.Cuts.SinglePartE
	if eLimits.HasMin && (g.p6Cm.E < eLimits.Min || g.p7Cm.E < eLimits.Min) {
		return 0
	}
	if eLimits.HasMax && (g.p6Cm.E > eLimits.Max || g.p7Cm.E > eLimits.Max) {
		return 0
	}

	etaLimits := g.kin.Cuts.SinglePartEta
	if etaLimits.HasMin && (g.p6Cm.Eta() < etaLimits.Min || g.p7Cm.Eta() < etaLimits.Min) {
		return 0
	}
	if etaLimits.HasMax && (g.p6Cm.Eta() > etaLimits.Max || g.p7Cm.Eta() > etaLimits.Max) {
		return 0
	}

	switch g.kin.Mode {
	case process.ElasticElastic:
		g.jacobian *= g.peripheralMatrixElement()
	case process.InelasticElastic:
		g.jacobian *= g.peripheralMatrixElement() * (g.dw31 * g.dw31)
	case process.ElasticInelastic:
		g.jacobian *= g.peripheralMatrixElement() * (g.dw52 * g.dw52)
	case process.InelasticInelastic:
		g.jacobian *= g.peripheralMatrixElement() * (g.dw31 * g.dw31) * (g.dw52 * g.dw52)
	}

	return gev2ToPb * g.jacobian
}

// peripheralMatrixElement implements GamGamLL::periPP: the squared amplitude
// for the central gamma gamma -> l+ l- sub-process convolved with both legs'
// form factors (spec.md glossary, "Peripheral approximation").
func (g *GamGamLL) peripheralMatrixElement() float64 {
	fp1 := g.ff1.Compute(-g.t1, g.w1, g.mx2)
	fp2 := g.ff2.Compute(-g.t2, g.w2, g.my2)

	qqq := g.q1dq * g.q1dq
	qdq := 4*g.ml2 - g.w4

	t11 := 64 * (g.bb*(qqq-g.g4-qdq*(g.t1+g.t2+2*g.ml2)) - 2*(g.t1+2*g.ml2)*(g.t2+2*g.ml2)*qqq) * g.t1 * g.t2
	t12 := 128 * (-g.bb*(g.dd2+g.g6) - 2*(g.t1+2*g.ml2)*(g.sa2*qqq+g.a6*g.a6)) * g.t1
	t21 := 128 * (-g.bb*(g.dd4+g.g5) - 2*(g.t2+2*g.ml2)*(g.sa1*qqq+g.a5*g.a5)) * g.t2
	t22 := 512 * (g.bb*(g.delta*g.delta-g.gram) - math.Pow(g.epsi-g.delta*(qdq+g.q1dq2), 2) -
		g.sa1*g.a6*g.a6 - g.sa2*g.a5*g.a5 - g.sa1*g.sa2*qqq)

	return (fp1.FM*fp2.FM*t11 + fp1.FE*fp2.FM*t21 + fp1.FM*fp2.FE*t12 + fp1.FE*fp2.FE*t22) /
		math.Pow(2*g.t1*g.t2*g.bb, 2)
}

// FillKinematics implements GamGamLL::fillKinematics: it builds the
// lab-frame beam momenta, applies the random azimuthal rotation and optional
// symmetrisation, then writes every particle's momentum and status.
func (g *GamGamLL) FillKinematics(ev *event.Event, symmetrise bool) {
	plabIp1 := kinematics.NewFourVector(0, 0, g.pCm, g.ep1)
	plabIp2 := kinematics.NewFourVector(0, 0, -g.pCm, g.ep2)

	rany := 1
	if rnd.Float64(0, 1) < 0.5 {
		rany = -1
	}
	ransign := 1
	if rnd.Float64(0, 1) < 0.5 {
		ransign = -1
	}
	ranphi := rnd.Float64(0, 1) * 2 * math.Pi

	plabPh1 := plabIp1.Sub(g.p3Lab).RotatePhi(ranphi, rany)
	plabPh2 := plabIp2.Sub(g.p5Lab).RotatePhi(ranphi, rany)

	g.p3Lab = g.p3Lab.RotatePhi(ranphi, rany)
	g.p5Lab = g.p5Lab.RotatePhi(ranphi, rany)
	g.p6Cm = g.p6Cm.RotatePhi(ranphi, rany)
	g.p7Cm = g.p7Cm.RotatePhi(ranphi, rany)

	if symmetrise && rnd.Float64(0, 1) >= 0.5 {
		g.p6Cm = g.p6Cm.MirrorZ()
		g.p7Cm = g.p7Cm.MirrorZ()
	}

	setOneMomentum(ev, event.IncomingBeam1, plabIp1)
	setOneMomentum(ev, event.IncomingBeam2, plabIp2)

	op1, _ := oneOrNil(ev, event.OutgoingBeam1)
	if op1 != nil {
		op1.Momentum = g.p3Lab
		switch g.kin.Mode {
		case process.ElasticElastic, process.ElasticInelastic:
			op1.Status = event.StatusFinalState
		default:
			op1.Status = event.StatusUndecayed
			op1.SetMass(g.mx)
		}
	}

	op2, _ := oneOrNil(ev, event.OutgoingBeam2)
	if op2 != nil {
		op2.Momentum = g.p5Lab
		switch g.kin.Mode {
		case process.ElasticElastic, process.InelasticElastic:
			op2.Status = event.StatusFinalState
		default:
			op2.Status = event.StatusUndecayed
			op2.SetMass(g.my)
		}
	}

	if ph1, _ := oneOrNil(ev, event.Parton1); ph1 != nil {
		ph1.Momentum = plabPh1
		ph1.Status = event.StatusIncoming
	}
	if ph2, _ := oneOrNil(ev, event.Parton2); ph2 != nil {
		ph2.Momentum = plabPh2
		ph2.Status = event.StatusIncoming
	}

	central := ev.ByRole(event.CentralSystem)
	if len(central) >= 2 {
		central[0].SetPdgID(central[0].PdgID, ransign)
		central[0].Momentum = g.p6Cm
		central[0].Status = event.StatusFinalState

		central[1].SetPdgID(central[1].PdgID, -ransign)
		central[1].Momentum = g.p7Cm
		central[1].Status = event.StatusFinalState
	}

	if inter, _ := oneOrNil(ev, event.Intermediate); inter != nil {
		inter.Momentum = g.p6Cm.Add(g.p7Cm)
	}
}

func oneOrNil(ev *event.Event, role event.Role) (*event.Particle, bool) {
	p, _, ok := ev.OneByRole(role)
	return p, ok
}

func setOneMomentum(ev *event.Event, role event.Role, mom kinematics.FourVector) {
	if p, ok := oneOrNil(ev, role); ok {
		p.Momentum = mom
	}
}
