// Copyright 2024 The Cepgen-sub003 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kinematics

// PDGID is a Particle Data Group particle identifier.
type PDGID int

// The subset of the PDG numbering scheme this generator needs, extended
// beyond the distilled spec's {proton, photon, muon} core with the species
// named in CepGen/Physics/Particle.h so W+W- final states, diquark remnants
// and Pomeron/Reggeon exchanges all resolve to a mass/charge entry.
const (
	Invalid         PDGID = 0
	DQuark          PDGID = 1
	UQuark          PDGID = 2
	Electron        PDGID = 11
	ElectronNeutrino PDGID = 12
	Muon            PDGID = 13
	MuonNeutrino    PDGID = 14
	Tau             PDGID = 15
	TauNeutrino     PDGID = 16
	Gluon           PDGID = 21
	Photon          PDGID = 22
	Z               PDGID = 23
	WPlus           PDGID = 24
	PiZero          PDGID = 111
	PiPlus          PDGID = 211
	UDDiquark0      PDGID = 2101
	UDDiquark1      PDGID = 2103
	UUDiquark1      PDGID = 2203
	Neutron         PDGID = 2112
	Proton          PDGID = 2212
	Reggeon         PDGID = 110
	Pomeron         PDGID = 990
)

// particleData holds the static on-shell properties of a particle species.
type particleData struct {
	mass   float64 // GeV
	charge float64 // units of e
}

// pdgTable is the static mass/charge database, analogous to the allocator
// maps used throughout gofem's mdl/* packages but holding data, not factories.
var pdgTable = map[PDGID]particleData{
	Invalid:          {0, 0},
	DQuark:           {0.0048, -1.0 / 3.0},
	UQuark:           {0.0023, 2.0 / 3.0},
	Electron:         {0.000510998928, -1},
	ElectronNeutrino: {0, 0},
	Muon:             {0.1056583715, -1},
	MuonNeutrino:     {0, 0},
	Tau:              {1.77682, -1},
	TauNeutrino:      {0, 0},
	Gluon:            {0, 0},
	Photon:           {0, 0},
	Z:                {91.1876, 0},
	WPlus:            {80.385, 1},
	PiZero:           {0.1349766, 0},
	PiPlus:           {0.13957018, 1},
	UDDiquark0:       {0.57933, 1.0 / 3.0},
	UDDiquark1:       {0.77133, 1.0 / 3.0},
	UUDiquark1:       {0.77133, 4.0 / 3.0},
	Neutron:          {0.939565346, 0},
	Proton:           {0.938272046, 1},
	Reggeon:          {0, 0},
	Pomeron:          {0, 0},
}

// Mass returns the on-shell mass of the given species, or 0 if unknown.
func Mass(id PDGID) float64 {
	return pdgTable[id].mass
}

// Charge returns the electric charge (in units of e) of the given species.
func Charge(id PDGID) float64 {
	return pdgTable[id].charge
}

// SignedID flips the sign of a charged-lepton PDG id by the stored electric
// charge, matching Particle::setPdgId(id, sign)'s "integerPdgId" convention
// from the original source: a negatively-charged lepton keeps a positive
// PDG code, its antiparticle carries the negated code.
func SignedID(id PDGID, chargeSign int) int {
	c := Charge(id)
	if c == 0 {
		return int(id)
	}
	if chargeSign < 0 {
		return -int(id)
	}
	return int(id)
}
