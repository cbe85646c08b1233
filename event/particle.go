// Copyright 2024 The Cepgen-sub003 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package event

import (
	"github.com/cepgen/cepgen-sub003/kinematics"
)

// Particle holds one event-local particle. Parent/child sets are id sets,
// not pointers (spec.md section 9, "Cyclic parent/child links"): resolution
// to another Particle always goes through the owning Event's id index, so
// there is no raw ownership between particles.
type Particle struct {
	ID       int
	Role     Role
	PdgID    kinematics.PDGID
	Status   Status
	Charge   float64
	Helicity float64
	Momentum kinematics.FourVector
	mass     float64 // overridden mass, 0 means "use the PDG table"
	parents  map[int]struct{}
	children map[int]struct{}
}

// newParticle allocates a particle with default on-shell mass from the PDG
// table for its species.
func newParticle(id int, role Role, pdg kinematics.PDGID) *Particle {
	return &Particle{
		ID:       id,
		Role:     role,
		PdgID:    pdg,
		Status:   StatusUndefined,
		Charge:   kinematics.Charge(pdg),
		mass:     kinematics.Mass(pdg),
		parents:  make(map[int]struct{}),
		children: make(map[int]struct{}),
	}
}

// Mass returns the particle's mass: the overridden value if SetMass was
// called, otherwise the PDG on-shell mass for PdgID.
func (p *Particle) Mass() float64 {
	return p.mass
}

// SetMass overrides the on-shell mass (used for dissociated proton remnants,
// whose invariant mass is drawn from a hypercube coordinate rather than
// looked up statically).
func (p *Particle) SetMass(m float64) {
	p.mass = m
}

// SetPdgID sets the PDG species and re-derives the charge; the mass is taken
// from the PDG table only when the stored mass is 0. A negative chargeSign
// flips the PDG code by the stored electric charge the way
// Particle::setPdgId(id, sign) does in the original source.
func (p *Particle) SetPdgID(pdg kinematics.PDGID, chargeSign int) {
	p.PdgID = pdg
	p.Charge = kinematics.Charge(pdg)
	if p.mass == 0 {
		p.mass = kinematics.Mass(pdg)
	}
	if chargeSign < 0 {
		p.Charge = -p.Charge
	}
}

// SignedPdgID returns the PDG id signed by the particle's stored charge.
func (p *Particle) SignedPdgID() int {
	if p.Charge < 0 {
		return -int(p.PdgID)
	}
	return int(p.PdgID)
}

// Parents returns the sorted ids of this particle's parents.
func (p *Particle) Parents() []int {
	return sortedKeys(p.parents)
}

// Children returns the sorted ids of this particle's children.
func (p *Particle) Children() []int {
	return sortedKeys(p.children)
}

func sortedKeys(m map[int]struct{}) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}
