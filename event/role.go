// Copyright 2024 The Cepgen-sub003 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package event implements the particle container consumed by every process
// implementation: an append-only particle table indexed by role and by id,
// redesigned (per spec.md section 9, "Event as multimap") away from the
// original C++ ordered multimap into the side-index shape gofem's
// fem/domain.go uses for its Vid2node lookup.
package event

import "github.com/cpmech/gosl/utl"

// Role is an event-local tag describing a particle's position in the
// process graph. Roles are not unique within an event: CentralSystem
// typically holds two particles, and a dissociated remnant may expand to
// many after hadronisation.
type Role int

const (
	RoleUnknown Role = iota
	IncomingBeam1
	IncomingBeam2
	OutgoingBeam1
	OutgoingBeam2
	Parton1
	Parton2
	CentralSystem
	Intermediate
)

func (r Role) String() string {
	switch r {
	case IncomingBeam1:
		return "IncomingBeam1"
	case IncomingBeam2:
		return "IncomingBeam2"
	case OutgoingBeam1:
		return "OutgoingBeam1"
	case OutgoingBeam2:
		return "OutgoingBeam2"
	case Parton1:
		return "Parton1"
	case Parton2:
		return "Parton2"
	case CentralSystem:
		return "CentralSystem"
	case Intermediate:
		return "Intermediate"
	default:
		return "Unknown"
	}
}

// roleNames lists every named Role in the same order as roleValues, feeding
// RoleByName's lookup.
var roleNames = []string{
	"IncomingBeam1", "IncomingBeam2", "OutgoingBeam1", "OutgoingBeam2",
	"Parton1", "Parton2", "CentralSystem", "Intermediate",
}

var roleValues = []Role{
	IncomingBeam1, IncomingBeam2, OutgoingBeam1, OutgoingBeam2,
	Parton1, Parton2, CentralSystem, Intermediate,
}

// RoleByName resolves a role's string name back to its Role value, the
// inverse of Role.String. Used by configuration and introspection code that
// names a role the way a steering card would rather than importing the
// numeric constant. Grounded on inp/func.go's
// utl.StrIndexSmall(pd.Skip, f.Name) membership check against a small fixed
// string slice.
func RoleByName(name string) (Role, bool) {
	i := utl.StrIndexSmall(roleNames, name)
	if i < 0 {
		return RoleUnknown, false
	}
	return roleValues[i], true
}

// Status is the internal status code for a particle.
type Status int

const (
	StatusUndefined Status = iota
	StatusIncoming
	StatusUndecayed
	StatusFinalState
	StatusResonance
	StatusDebugResonance
)

func (s Status) String() string {
	switch s {
	case StatusIncoming:
		return "Incoming"
	case StatusUndecayed:
		return "Undecayed"
	case StatusFinalState:
		return "FinalState"
	case StatusResonance:
		return "Resonance"
	case StatusDebugResonance:
		return "DebugResonance"
	default:
		return "Undefined"
	}
}
