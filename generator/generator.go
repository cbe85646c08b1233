// Copyright 2024 The Cepgen-sub003 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package generator implements the run driver (spec.md section 4.7): it
// owns the process, the integrator, the RNG seed, the taming-function table
// and an optional hadroniser, and drives both the integration phase and the
// acceptance-rejection generation phase. Its shape — a struct owning a
// sub-solver, a stage loop, and an onexit-style disposition computation —
// follows fem.FEM's Run/SetStage/onexit structure from the teacher
// repository, adapted from a finite-element time loop to an event-by-event
// Monte-Carlo loop.
package generator

import (
	"time"

	"github.com/cepgen/cepgen-sub003/cepgenerr"
	"github.com/cepgen/cepgen-sub003/event"
	"github.com/cepgen/cepgen-sub003/hadroniser"
	"github.com/cepgen/cepgen-sub003/integrator"
	"github.com/cepgen/cepgen-sub003/kinematics"
	"github.com/cepgen/cepgen-sub003/process"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/rnd"
)

// Sink receives each accepted, fully-dressed event.
type Sink func(ev *event.Event, genTime, totalTime float64)

// Disposition is the driver's numeric exit code (spec.md section 6, "Exit
// disposition").
type Disposition int

const (
	DispositionOK Disposition = 0
	// DispositionAborted marks a cooperative cancellation.
	DispositionAborted Disposition = 1
	// DispositionNonFinite marks a NaN/Inf integrator estimate.
	DispositionNonFinite Disposition = 2
	// DispositionHadroniserBudget marks too many consecutive hadronisation
	// trial-budget failures.
	DispositionHadroniserBudget Disposition = 3
)

// Params configures a Driver run.
type Params struct {
	Seed int64

	Algorithm     string // "vegas" or "miser", see integrator package
	Bins          int
	Iterations    int
	SamplesIter   int
	Alpha         float64
	TotalSamples  int // MISER only

	MaxRethrows           int // acceptance-rejection re-throw budget before raising w_max
	MaxHadroniserTrials    int
	MaxConsecutiveBudgetFails int // triggers DispositionHadroniserBudget

	PrintEvery int

	Taming TamingTable

	// Cancel is polled inside both the integration loop and the
	// acceptance-rejection loop (spec.md section 5, "Cancellation").
	Cancel func() bool
}

// DefaultParams returns sane defaults matching integrator.DefaultParams.
func DefaultParams() Params {
	return Params{
		Seed:                      1,
		Algorithm:                 "vegas",
		Bins:                      50,
		Iterations:                10,
		SamplesIter:               10000,
		Alpha:                     1.5,
		TotalSamples:              100000,
		MaxRethrows:               1000,
		MaxHadroniserTrials:       10,
		MaxConsecutiveBudgetFails: 25,
		PrintEvery:                10000,
	}
}

// Driver owns the process, integrator grid and optional hadroniser for one
// generation run (spec.md section 4.7). It is not safe for concurrent use
// by more than one goroutine; parallelism is coarse-grained across separate
// Driver instances combined with CombineRuns (spec.md section 5).
type Driver struct {
	proc    process.Process
	kin     process.KinematicsConfig
	had     hadroniser.Hadroniser
	params  Params
	sink    Sink

	ev      *event.Event
	xBuf    []float64
	wMax    float64
	gridReady bool

	crossSection, crossSectionErr float64

	consecutiveBudgetFails int
	aborted                bool
}

// New builds a driver around proc, already configured via SetKinematics.
func New(proc process.Process, kin process.KinematicsConfig, params Params) (*Driver, error) {
	if err := proc.SetKinematics(kin); err != nil {
		return nil, err
	}
	ndim := proc.NumDimensions(kin.Mode)
	ev := event.New()
	proc.AddEventContent(ev)
	ev.Freeze()
	return &Driver{
		proc:   proc,
		kin:    kin,
		params: params,
		ev:     ev,
		xBuf:   make([]float64, ndim),
	}, nil
}

// SetHadroniser installs an optional showering engine.
func (d *Driver) SetHadroniser(h hadroniser.Hadroniser) { d.had = h }

// SetOutputModule installs the sink invoked once per accepted event.
func (d *Driver) SetOutputModule(sink Sink) { d.sink = sink }

// integrand evaluates the process weight at x, folding in the taming table.
// It always restores the event to its primordial state first (spec.md
// section 5, "the event object is reused across samples and must be restored
// to its primordial state before each weight evaluation").
func (d *Driver) integrand(x []float64) float64 {
	d.ev.Prune()
	if err := d.proc.SetPoint(x); err != nil {
		return 0
	}
	d.proc.BeforeComputeWeight()
	w := d.proc.ComputeWeight()
	if w <= 0 {
		return 0
	}
	if len(d.params.Taming) > 0 {
		d.proc.FillKinematics(d.ev, false)
		central := centralSum(d.ev)
		q2 := partonQ2(d.ev)
		w = d.params.Taming.Apply(w, central, q2)
	}
	if w > d.wMax {
		d.wMax = w
	}
	return w
}

// ComputeCrossSection runs the integration phase, returning (sigma, delta
// sigma) in picobarn (spec.md section 4.7).
func (d *Driver) ComputeCrossSection() (float64, float64, error) {
	if err := d.params.Taming.Compile(); err != nil {
		return 0, 0, err
	}
	rnd.Init(int(d.params.Seed))

	var res integrator.Result
	switch d.params.Algorithm {
	case "", "vegas":
		p := integrator.DefaultParams(len(d.xBuf))
		p.Bins, p.Iterations, p.SamplesIter, p.Alpha = d.params.Bins, d.params.Iterations, d.params.SamplesIter, d.params.Alpha
		p.Cancel = d.params.Cancel
		res = integrator.Integrate(d.integrand, p)
	case "miser":
		p := integrator.DefaultMiserParams(len(d.xBuf))
		p.TotalSamples = d.params.TotalSamples
		p.Cancel = d.params.Cancel
		res = integrator.Miser(d.integrand, p)
	default:
		return 0, 0, cepgenerr.New(cepgenerr.ConfigInvalid, "generator: unknown integrator algorithm %q", d.params.Algorithm)
	}
	if res.Aborted {
		d.aborted = true
	}
	d.crossSection, d.crossSectionErr = res.Value, res.Uncertainty
	if isNonFinite(res.Value) || isNonFinite(res.Uncertainty) {
		return 0, 0, cepgenerr.New(cepgenerr.IntegratorFailure, "generator: non-finite cross-section estimate I=%v dI=%v", res.Value, res.Uncertainty)
	}
	d.gridReady = true
	return res.Value, res.Uncertainty, nil
}

// Next draws a single accepted, fully-dressed event.
func (d *Driver) Next() (*event.Event, error) {
	if !d.gridReady {
		if _, _, err := d.ComputeCrossSection(); err != nil {
			return nil, err
		}
	}
	rethrowBudget := d.params.MaxRethrows
	if rethrowBudget <= 0 {
		rethrowBudget = 1000
	}
	for attempt := 0; ; attempt++ {
		if d.params.Cancel != nil && d.params.Cancel() {
			d.aborted = true
			return nil, nil
		}
		if attempt > 0 && attempt%rethrowBudget == 0 {
			// the configured re-throw budget was exhausted without an
			// acceptance: raise the ceiling rather than spin forever on an
			// underestimated w_max.
			d.wMax *= 1.5
		}
		for i := range d.xBuf {
			d.xBuf[i] = rnd.Float64(0, 1)
		}
		w := d.integrand(d.xBuf)
		if w <= 0 {
			continue
		}
		if rnd.Float64(0, 1) > w/d.wMax {
			continue
		}

		d.ev.Prune()
		if err := d.proc.SetPoint(d.xBuf); err != nil {
			continue
		}
		d.proc.BeforeComputeWeight()
		if d.proc.ComputeWeight() <= 0 {
			continue
		}
		d.proc.FillKinematics(d.ev, true)

		if d.had != nil {
			ok, trialErr := d.hadroniseWithBudget()
			if trialErr != nil {
				return nil, trialErr
			}
			if !ok {
				continue
			}
		}
		return d.ev, nil
	}
}

func (d *Driver) hadroniseWithBudget() (bool, error) {
	for trial := 0; trial < d.params.MaxHadroniserTrials; trial++ {
		ok, err := d.had.Hadronise(d.ev)
		if err != nil {
			return false, err
		}
		if ok {
			d.consecutiveBudgetFails = 0
			return true, nil
		}
	}
	d.consecutiveBudgetFails++
	io.Pf("generator: hadroniser exceeded trial budget; event marked litigious\n")
	if d.consecutiveBudgetFails >= d.params.MaxConsecutiveBudgetFails {
		return false, cepgenerr.New(cepgenerr.HadroniserFailure, "generator: %d consecutive hadronisation budget failures", d.consecutiveBudgetFails)
	}
	return false, nil
}

// Generate runs the generation phase for n accepted events, invoking sink
// with each completed event in acceptance order (spec.md section 4.7,
// section 5 "Ordering guarantees").
func (d *Driver) Generate(n int) error {
	start := time.Now()
	for i := 0; i < n; i++ {
		evStart := time.Now()
		ev, err := d.Next()
		if err != nil {
			return err
		}
		if ev == nil {
			// cancellation observed inside Next.
			break
		}
		if d.sink != nil {
			d.sink(ev, time.Since(evStart).Seconds(), time.Since(start).Seconds())
		}
		if d.params.PrintEvery > 0 && (i+1)%d.params.PrintEvery == 0 {
			io.Pf("generator: %d/%d events generated\n", i+1, n)
		}
		if d.aborted {
			break
		}
	}
	return nil
}

// Disposition reports the driver's exit disposition after a run (spec.md
// section 6).
func (d *Driver) Disposition() Disposition {
	if d.consecutiveBudgetFails >= d.params.MaxConsecutiveBudgetFails {
		return DispositionHadroniserBudget
	}
	if isNonFinite(d.crossSection) || isNonFinite(d.crossSectionErr) {
		return DispositionNonFinite
	}
	if d.aborted {
		return DispositionAborted
	}
	return DispositionOK
}

func isNonFinite(v float64) bool {
	return v != v || v > 1e300 || v < -1e300
}

func centralSum(ev *event.Event) (sum kinematics.FourVector) {
	for _, p := range ev.ByRole(event.CentralSystem) {
		sum = sum.Add(p.Momentum)
	}
	return sum
}

func partonQ2(ev *event.Event) float64 {
	q2 := 0.0
	for _, role := range [...]event.Role{event.Parton1, event.Parton2} {
		if p, _, ok := ev.OneByRole(role); ok {
			if v := -p.Momentum.Mass2(); v > q2 {
				q2 = v
			}
		}
	}
	return q2
}
