// Copyright 2024 The Cepgen-sub003 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package process declares the abstract 2->N process contract (spec.md
// section 4.3): hypercube dimension, event-topology registration, kinematics
// installation, point commitment, weight evaluation and kinematics filling.
// Concrete kernels (process/gamgamll, process/pptoll, process/pptoww)
// implement Process and self-register the way ele.GetAllocator's factories
// register element types in the teacher repository.
package process

import (
	"github.com/cepgen/cepgen-sub003/cepgenerr"
	"github.com/cepgen/cepgen-sub003/event"
	"github.com/cepgen/cepgen-sub003/kinematics"
)

// Mode enumerates the elastic/inelastic status of each incoming leg.
type Mode int

const (
	ElasticElastic Mode = iota
	ElasticInelastic
	InelasticElastic
	InelasticInelastic
)

func (m Mode) String() string {
	switch m {
	case ElasticElastic:
		return "ElasticElastic"
	case ElasticInelastic:
		return "ElasticInelastic"
	case InelasticElastic:
		return "InelasticElastic"
	case InelasticInelastic:
		return "InelasticInelastic"
	default:
		return "Unknown"
	}
}

// StructureFunctions names the inelastic structure-function/form-factor
// model consumed by a dissociative leg.
type StructureFunctions string

const (
	SuriYennie          StructureFunctions = "suriyennie"
	FioreBrasse         StructureFunctions = "fiorebrasse"
	SzczurekUleshchenko StructureFunctions = "szczurekuleshchenko"
)

// KinematicsConfig installs beams, mode, central-system species and cuts
// (spec.md section 3, "Kinematics configuration").
type KinematicsConfig struct {
	Beam1Pz, Beam2Pz       float64
	Beam1PdgID, Beam2PdgID kinematics.PDGID
	Mode                   Mode
	StructureFunctions     StructureFunctions
	CentralSystem          []kinematics.PDGID
	Cuts                   CutTable
}

// CutTable is the closed set of cut ranges spec.md section 3 enumerates.
// Every Limits field defaults to kinematics.Unbounded, which constrains
// neither side (no lower bound of zero is applied), unless explicitly set.
type CutTable struct {
	SinglePartPt   kinematics.Limits
	SinglePartEta  kinematics.Limits
	SinglePartY    kinematics.Limits
	SinglePartE    kinematics.Limits
	SinglePartMass kinematics.Limits
	PairPtDiff     kinematics.Limits
	PairYDiff      kinematics.Limits
	PairMassSum    kinematics.Limits
	PartonQ2       kinematics.Limits
	PartonW        kinematics.Limits
	RemnantMX      kinematics.Limits
	RemnantMY      kinematics.Limits
}

// Process is the abstract 2->N kernel contract every concrete process
// implements (spec.md section 4.3).
type Process interface {
	// Name returns the registered process name.
	Name() string
	// AddEventContent registers the initial and final particle roles into
	// the event skeleton (one IncomingBeam1/2, Parton1/2, OutgoingBeam1/2
	// and CentralSystem particle per declared species).
	AddEventContent(ev *event.Event)
	// NumDimensions declares the hypercube dimension for the given mode.
	NumDimensions(mode Mode) int
	// SetKinematics installs the beam and cut configuration.
	SetKinematics(k KinematicsConfig) error
	// SetPoint commits the current hypercube coordinate, x[i] in [0,1].
	SetPoint(x []float64) error
	// BeforeComputeWeight evaluates mode-dependent remnant-mass mappings
	// before the first ComputeWeight call on a committed point.
	BeforeComputeWeight()
	// ComputeWeight returns the integrand value; it is pure with respect to
	// (x, config) and returns exactly 0 on any cut failure or out-of-range
	// mapping rather than an error (spec.md section 7).
	ComputeWeight() float64
	// FillKinematics populates ev with the four-momenta reconstructed from
	// the currently committed point. When symmetrise is true the process may
	// reflect the event to mitigate grid artefacts.
	FillKinematics(ev *event.Event, symmetrise bool)
}

// allocators holds every registered process, keyed by the name used in the
// process.name configuration key (spec.md section 6).
var allocators = map[string]func() Process{}

// Register is called from each process package's init(), mirroring
// ele.factory's "allocators[name] = func(...) Element" idiom.
func Register(name string, alloc func() Process) {
	allocators[name] = alloc
}

// New returns a freshly allocated, unconfigured process by name.
func New(name string) (Process, error) {
	alloc, ok := allocators[name]
	if !ok {
		return nil, cepgenerr.New(cepgenerr.ConfigInvalid, "process: unknown process %q", name)
	}
	return alloc(), nil
}

// Names returns the sorted set of registered process names.
func Names() []string {
	out := make([]string, 0, len(allocators))
	for k := range allocators {
		out = append(out, k)
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}
