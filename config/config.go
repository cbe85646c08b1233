// Copyright 2024 The Cepgen-sub003 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config implements the run configuration read from a JSON card
// (spec.md section 6), following inp.Data's flat JSON-tagged struct
// convention from the teacher repository.
package config

import (
	"encoding/json"
	"os"

	"github.com/cepgen/cepgen-sub003/cepgenerr"
	"github.com/cepgen/cepgen-sub003/formfactor"
	"github.com/cepgen/cepgen-sub003/hadroniser"
	"github.com/cepgen/cepgen-sub003/kinematics"
	"github.com/cepgen/cepgen-sub003/process"
)

// BeamConfig describes one incoming beam.
type BeamConfig struct {
	Pz    float64 `json:"pz"`    // longitudinal momentum, GeV
	PdgID int     `json:"pdgId"` // incoming particle species
}

// LimitConfig is one optional cut range with JSON tags; a nil Min or Max
// pointer (the Go zero value) leaves that bound unset, and toLimits sets
// HasMin/HasMax only for the pointers that are present.
type LimitConfig struct {
	Min    *float64 `json:"min,omitempty"`
	Max    *float64 `json:"max,omitempty"`
}

func (l LimitConfig) toLimits() kinematics.Limits {
	lim := kinematics.Limits{}
	if l.Min != nil {
		lim.Min, lim.HasMin = *l.Min, true
	}
	if l.Max != nil {
		lim.Max, lim.HasMax = *l.Max, true
	}
	return lim
}

// CutsConfig is the JSON form of process.CutTable.
type CutsConfig struct {
	SinglePartPt   LimitConfig `json:"singlePartPt"`
	SinglePartEta  LimitConfig `json:"singlePartEta"`
	SinglePartY    LimitConfig `json:"singlePartY"`
	SinglePartE    LimitConfig `json:"singlePartE"`
	SinglePartMass LimitConfig `json:"singlePartMass"`
	PairPtDiff     LimitConfig `json:"pairPtDiff"`
	PairYDiff      LimitConfig `json:"pairYDiff"`
	PairMassSum    LimitConfig `json:"pairMassSum"`
	PartonQ2       LimitConfig `json:"partonQ2"`
	PartonW        LimitConfig `json:"partonW"`
	RemnantMX      LimitConfig `json:"remnantMx"`
	RemnantMY      LimitConfig `json:"remnantMy"`
}

func (c CutsConfig) toCutTable() process.CutTable {
	return process.CutTable{
		SinglePartPt:   c.SinglePartPt.toLimits(),
		SinglePartEta:  c.SinglePartEta.toLimits(),
		SinglePartY:    c.SinglePartY.toLimits(),
		SinglePartE:    c.SinglePartE.toLimits(),
		SinglePartMass: c.SinglePartMass.toLimits(),
		PairPtDiff:     c.PairPtDiff.toLimits(),
		PairYDiff:      c.PairYDiff.toLimits(),
		PairMassSum:    c.PairMassSum.toLimits(),
		PartonQ2:       c.PartonQ2.toLimits(),
		PartonW:        c.PartonW.toLimits(),
		RemnantMX:      c.RemnantMX.toLimits(),
		RemnantMY:      c.RemnantMY.toLimits(),
	}
}

// ProcessConfig selects and configures the 2->N kernel.
type ProcessConfig struct {
	Name               string      `json:"name"`
	Mode               string      `json:"mode"`               // "ee", "ei", "ie", "ii"
	StructureFunctions string      `json:"structureFunctions"` // suriyennie, fiorebrasse, szczurekuleshchenko
	CentralSystem      []int       `json:"centralSystem"`      // PDG ids, typically a pair
	Cuts               CutsConfig  `json:"cuts"`
}

func parseMode(s string) (process.Mode, error) {
	switch s {
	case "", "ee":
		return process.ElasticElastic, nil
	case "ei":
		return process.ElasticInelastic, nil
	case "ie":
		return process.InelasticElastic, nil
	case "ii":
		return process.InelasticInelastic, nil
	default:
		return 0, cepgenerr.New(cepgenerr.ConfigInvalid, "config: unknown process mode %q", s)
	}
}

// IntegratorConfig configures the VEGAS/MISER integration phase (spec.md
// section 4.6).
type IntegratorConfig struct {
	Algorithm   string `json:"algorithm"` // "vegas" or "miser"
	Bins        int    `json:"bins"`
	Iterations  int    `json:"iterations"`
	SamplesIter int    `json:"samplesPerIteration"`
	Alpha       float64 `json:"alpha"`
	TotalSamples int    `json:"totalSamples"` // MISER only
}

// GeneratorConfig configures the acceptance-rejection generation phase and
// output (spec.md section 4.7).
type GeneratorConfig struct {
	NumEvents   int      `json:"numEvents"`
	Seed        int64    `json:"seed"`
	Taming      []string `json:"taming"`
	Hadroniser  string   `json:"hadroniser"`
	NumInstances int     `json:"numInstances"` // coarse-grained multi-instance parallelism, spec.md section 5
}

// Config is the root JSON configuration card.
type Config struct {
	Beam1      BeamConfig       `json:"beam1"`
	Beam2      BeamConfig       `json:"beam2"`
	Process    ProcessConfig    `json:"process"`
	Integrator IntegratorConfig `json:"integrator"`
	Generator  GeneratorConfig  `json:"generator"`
}

// Load reads and parses a JSON configuration card from path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, cepgenerr.New(cepgenerr.ConfigInvalid, "config: cannot read %s: %v", path, err)
	}
	var c Config
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, cepgenerr.New(cepgenerr.ConfigInvalid, "config: malformed JSON in %s: %v", path, err)
	}
	return &c, nil
}

// KinematicsConfig converts the JSON process/cuts section into the
// process.KinematicsConfig a Process consumes.
func (c *Config) KinematicsConfig() (process.KinematicsConfig, error) {
	mode, err := parseMode(c.Process.Mode)
	if err != nil {
		return process.KinematicsConfig{}, err
	}
	central := make([]kinematics.PDGID, len(c.Process.CentralSystem))
	for i, id := range c.Process.CentralSystem {
		central[i] = kinematics.PDGID(id)
	}
	return process.KinematicsConfig{
		Beam1Pz:            c.Beam1.Pz,
		Beam2Pz:            c.Beam2.Pz,
		Beam1PdgID:         kinematics.PDGID(c.Beam1.PdgID),
		Beam2PdgID:         kinematics.PDGID(c.Beam2.PdgID),
		Mode:               mode,
		StructureFunctions: process.StructureFunctions(c.Process.StructureFunctions),
		CentralSystem:      central,
		Cuts:               c.Process.Cuts.toCutTable(),
	}, nil
}

// Registry is a dump of every name registered against one of the module
// registries at the time Describe is called. It is a thin introspection
// helper, not a steering-card parser, grounded on
// src/cepgenDescribeModules.cc in the original implementation: that binary
// lists available processes/form-factors/hadronisers for a user building a
// configuration card, and this is its library-level equivalent.
type Registry struct {
	Processes    []string
	FormFactors  []string
	Hadronisers  []string
}

// Describe returns the names currently registered in each module registry.
func Describe() Registry {
	return Registry{
		Processes:   process.Names(),
		FormFactors: formfactor.Names(),
		Hadronisers: hadroniser.Names(),
	}
}
