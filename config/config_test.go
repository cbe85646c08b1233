// Copyright 2024 The Cepgen-sub003 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/cepgen/cepgen-sub003/cepgenerr"
	"github.com/cepgen/cepgen-sub003/process"
	"github.com/cpmech/gosl/chk"
)

const sampleCard = `{
  "beam1": {"pz": 6500, "pdgId": 2212},
  "beam2": {"pz": 6500, "pdgId": 2212},
  "process": {
    "name": "pptoll",
    "mode": "ee",
    "centralSystem": [13, 13],
    "cuts": {
      "singlePartPt": {"min": 5},
      "pairMassSum": {"min": 10, "max": 500}
    }
  },
  "integrator": {"algorithm": "vegas", "bins": 50, "iterations": 10, "samplesPerIteration": 10000, "alpha": 1.5},
  "generator": {"numEvents": 1000, "seed": 42}
}`

func writeSampleCard(tst *testing.T) string {
	dir := tst.TempDir()
	path := filepath.Join(dir, "run.json")
	if err := os.WriteFile(path, []byte(sampleCard), 0o644); err != nil {
		tst.Fatalf("cannot write sample card: %v", err)
	}
	return path
}

func Test_loadAndKinematicsConfig01(tst *testing.T) {

	chk.PrintTitle("loadAndKinematicsConfig01")

	path := writeSampleCard(tst)
	c, err := Load(path)
	if err != nil {
		tst.Errorf("Load failed: %v", err)
		return
	}
	chk.Scalar(tst, "beam1 pz", 1e-12, c.Beam1.Pz, 6500)
	chk.Scalar(tst, "generator seed", 1e-15, float64(c.Generator.Seed), 42)

	kin, err := c.KinematicsConfig()
	if err != nil {
		tst.Errorf("KinematicsConfig failed: %v", err)
		return
	}
	if kin.Mode != process.ElasticElastic {
		tst.Errorf("expected ElasticElastic mode, got %v", kin.Mode)
	}
	if !kin.Cuts.SinglePartPt.HasMin || kin.Cuts.SinglePartPt.HasMax {
		tst.Errorf("singlePartPt should carry only a lower bound")
	}
	chk.Scalar(tst, "singlePartPt min", 1e-12, kin.Cuts.SinglePartPt.Min, 5)
	chk.Scalar(tst, "pairMassSum max", 1e-12, kin.Cuts.PairMassSum.Max, 500)
}

func Test_loadMissingFile01(tst *testing.T) {

	chk.PrintTitle("loadMissingFile01")

	_, err := Load(filepath.Join(tst.TempDir(), "does-not-exist.json"))
	if err == nil {
		tst.Errorf("Load should fail on a missing file")
		return
	}
	if !cepgenerr.Is(err, cepgenerr.ConfigInvalid) {
		tst.Errorf("Load should return a ConfigInvalid error, got %v", err)
	}
}

func Test_loadMalformedJSON01(tst *testing.T) {

	chk.PrintTitle("loadMalformedJSON01")

	dir := tst.TempDir()
	path := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		tst.Fatalf("cannot write malformed card: %v", err)
	}
	_, err := Load(path)
	if !cepgenerr.Is(err, cepgenerr.ConfigInvalid) {
		tst.Errorf("Load should return a ConfigInvalid error on malformed JSON, got %v", err)
	}
}

func Test_unknownModeRejected01(tst *testing.T) {

	chk.PrintTitle("unknownModeRejected01")

	c := &Config{Process: ProcessConfig{Mode: "bogus"}}
	_, err := c.KinematicsConfig()
	if !cepgenerr.Is(err, cepgenerr.ConfigInvalid) {
		tst.Errorf("unknown mode should yield a ConfigInvalid error, got %v", err)
	}
}

// Test_configRoundTrip01 covers spec.md section 8's seed scenario 5:
// parse a config, serialise it back, re-parse, and confirm the resulting
// tree equals the original.
func Test_configRoundTrip01(tst *testing.T) {

	chk.PrintTitle("configRoundTrip01")

	path := writeSampleCard(tst)
	c1, err := Load(path)
	if err != nil {
		tst.Errorf("Load failed: %v", err)
		return
	}

	serialised, err := json.Marshal(c1)
	if err != nil {
		tst.Errorf("Marshal failed: %v", err)
		return
	}
	var c2 Config
	if err := json.Unmarshal(serialised, &c2); err != nil {
		tst.Errorf("Unmarshal failed: %v", err)
		return
	}

	if !reflect.DeepEqual(*c1, c2) {
		tst.Errorf("round-tripped config does not equal the original:\n%+v\n%+v", *c1, c2)
	}
}

func Test_describeListsRegisteredModules01(tst *testing.T) {

	chk.PrintTitle("describeListsRegisteredModules01")

	reg := Describe()
	found := false
	for _, n := range reg.Hadronisers {
		if n == "passthrough" {
			found = true
		}
	}
	if !found {
		tst.Errorf("Describe().Hadronisers should list the passthrough engine")
	}
	if len(reg.FormFactors) == 0 {
		tst.Errorf("Describe().FormFactors should not be empty")
	}
}
