// Copyright 2024 The Cepgen-sub003 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package generator

import (
	"strings"

	"github.com/cepgen/cepgen-sub003/cepgenerr"
	"github.com/cepgen/cepgen-sub003/kinematics"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Observable names an event-derived scalar a taming function may be keyed
// on (spec.md section 4.7, "keyed by observable"). Three observables are
// exposed: the central-system mass and transverse momentum, and the larger
// of the two parton virtualities.
type Observable string

const (
	ObservableCentralMass Observable = "m_central"
	ObservableCentralPt   Observable = "pt_central"
	ObservableQ2          Observable = "q2"
)

// TamingFunction is one named scalar expression; at integrand-evaluation
// time the driver evaluates it against the current observable value and
// multiplies the result into the weight. Its shape mirrors inp.FuncData:
// a type name plus a parameter list resolved through gosl/fun's function
// registry, rather than a closure, so a taming table round-trips through
// the same JSON configuration card as the rest of the run.
type TamingFunction struct {
	Observable Observable
	Type       string // gosl/fun function type, e.g. "cte", "rmp"
	Prms       fun.Prms
	fn         fun.TimeSpace
}

// compile resolves fn.Type/fn.Prms into a callable gosl/fun.TimeSpace,
// following inp.FuncsData.Get's fun.New(type, prms) call.
func (t *TamingFunction) compile() error {
	f, err := fun.New(t.Type, t.Prms)
	if err != nil {
		return cepgenerr.New(cepgenerr.ConfigInvalid, "generator: taming function %q: %v", t.Observable, err)
	}
	t.fn = f
	return nil
}

// Eval evaluates the taming function at the observable's current value,
// treating it as a one-dimensional function of that scalar the way
// inp.FuncData's functions are evaluated as f(t, x) with x unused.
func (t *TamingFunction) Eval(value float64) float64 {
	if t.fn == nil {
		return 1
	}
	return t.fn.F(value, nil)
}

// NewTamingFunction builds a TamingFunction from the raw observable name the
// configuration card carries, normalising case the way inp.FuncData's name
// lookups tolerate either case.
func NewTamingFunction(observable, fnType string, prms fun.Prms) *TamingFunction {
	return &TamingFunction{Observable: normaliseObservable(observable), Type: fnType, Prms: prms}
}

// TamingTable is the ordered set of taming functions the driver multiplies
// into the integrand, one lookup per declared observable.
type TamingTable []*TamingFunction

// Compile resolves every entry's underlying gosl/fun function, failing fast
// on the first unrecognised type (spec.md section 7, "fail fast everywhere
// the intent of the configuration is ambiguous").
func (t TamingTable) Compile() error {
	for _, f := range t {
		if err := f.compile(); err != nil {
			return err
		}
	}
	return nil
}

// Apply multiplies every matching taming factor into weight, given the
// central-system four-momentum sum and the larger of the two parton
// virtualities for this sample.
func (t TamingTable) Apply(weight float64, centralSum kinematics.FourVector, q2 float64) float64 {
	for _, f := range t {
		switch f.Observable {
		case ObservableCentralMass:
			weight *= f.Eval(centralSum.Mass())
		case ObservableCentralPt:
			weight *= f.Eval(centralSum.Pt())
		case ObservableQ2:
			weight *= f.Eval(q2)
		default:
			chk.Panic("generator: unknown taming observable %q", f.Observable)
		}
	}
	return weight
}

func normaliseObservable(s string) Observable {
	return Observable(strings.ToLower(s))
}
