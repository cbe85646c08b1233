// Copyright 2024 The Cepgen-sub003 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package event

import (
	"github.com/cepgen/cepgen-sub003/cepgenerr"
	"github.com/cepgen/cepgen-sub003/kinematics"
)

// Event is an append-only particle table with a role->ids and id->index
// auxiliary index, giving O(1) amortised insertion and O(1)+iteration role
// lookup (spec.md section 9). It is reused across weight evaluations within
// the generation loop: Prune restores it to a saved "primordial" marker so
// the table does not need to be reallocated for every hypercube sample.
type Event struct {
	particles  []*Particle
	idx        map[int]int // id -> index in particles
	byRole     map[Role][]int
	nextID     int
	primordial int // length of particles[] at the last Freeze call
}

// New returns an empty event.
func New() *Event {
	return &Event{
		idx:    make(map[int]int),
		byRole: make(map[Role][]int),
	}
}

// AddParticle appends a new particle with the given role and species,
// returning it for further mutation (momentum, status, mass override).
func (e *Event) AddParticle(role Role, pdg kinematics.PDGID) *Particle {
	id := e.nextID
	e.nextID++
	p := newParticle(id, role, pdg)
	e.idx[id] = len(e.particles)
	e.particles = append(e.particles, p)
	e.byRole[role] = append(e.byRole[role], id)
	return p
}

// AddDaughter records that child is a daughter of parent, keeping the
// parent/child sets mutually consistent (spec.md section 3 invariant).
func (e *Event) AddDaughter(parentID, childID int) error {
	parent, ok := e.ByID(parentID)
	if !ok {
		return cepgenerr.New(cepgenerr.KinematicsInvalid, "event: unknown parent id %d", parentID)
	}
	child, ok := e.ByID(childID)
	if !ok {
		return cepgenerr.New(cepgenerr.KinematicsInvalid, "event: unknown child id %d", childID)
	}
	parent.children[childID] = struct{}{}
	child.parents[parentID] = struct{}{}
	return nil
}

// ByID returns the particle with the given id.
func (e *Event) ByID(id int) (*Particle, bool) {
	i, ok := e.idx[id]
	if !ok {
		return nil, false
	}
	return e.particles[i], true
}

// ByRole returns every particle carrying the given role, in id order.
func (e *Event) ByRole(role Role) []*Particle {
	ids := e.byRole[role]
	out := make([]*Particle, 0, len(ids))
	for _, id := range ids {
		if p, ok := e.ByID(id); ok {
			out = append(out, p)
		}
	}
	return out
}

// OneByRole returns the first particle carrying the given role, and reports
// true as its second value when more than one particle shares the role (the
// "ambiguous" case spec.md section 3 calls out as warning-worthy; the caller
// decides whether and how to log it, per the injected-logger design note).
func (e *Event) OneByRole(role Role) (p *Particle, ambiguous bool, ok bool) {
	all := e.ByRole(role)
	if len(all) == 0 {
		return nil, false, false
	}
	return all[0], len(all) > 1, true
}

// All returns every particle in id (insertion) order.
func (e *Event) All() []*Particle {
	out := make([]*Particle, len(e.particles))
	copy(out, e.particles)
	return out
}

// Freeze records the current size as the "primordial" marker that Prune
// rewinds to.
func (e *Event) Freeze() {
	e.primordial = len(e.particles)
}

// Prune discards every particle added after the last Freeze call, restoring
// the role/id indices accordingly, so the event can be reused for the next
// hypercube sample without reallocating its backing slice.
func (e *Event) Prune() {
	for _, p := range e.particles[e.primordial:] {
		delete(e.idx, p.ID)
	}
	e.particles = e.particles[:e.primordial]
	e.nextID = e.primordial
	for role, ids := range e.byRole {
		kept := ids[:0]
		for _, id := range ids {
			if id < e.primordial {
				kept = append(kept, id)
			}
		}
		e.byRole[role] = kept
	}
}

// MomentumTable returns the four-momenta of every particle in id order,
// together with the ids they correspond to — the flattened form used for the
// event/momentum-table/event round-trip test in spec.md section 8.
func (e *Event) MomentumTable() ([]int, []kinematics.FourVector) {
	ids := make([]int, len(e.particles))
	moms := make([]kinematics.FourVector, len(e.particles))
	for i, p := range e.particles {
		ids[i] = p.ID
		moms[i] = p.Momentum
	}
	return ids, moms
}

// RestoreMomenta writes back four-momenta produced by MomentumTable,
// matching ids positionally; it is the inverse of MomentumTable and is used
// to verify the round-trip invariant bit-for-bit.
func (e *Event) RestoreMomenta(ids []int, moms []kinematics.FourVector) error {
	if len(ids) != len(moms) {
		return cepgenerr.New(cepgenerr.KinematicsInvalid, "event: momentum table length mismatch")
	}
	for i, id := range ids {
		p, ok := e.ByID(id)
		if !ok {
			return cepgenerr.New(cepgenerr.KinematicsInvalid, "event: unknown id %d in momentum table", id)
		}
		p.Momentum = moms[i]
	}
	return nil
}
