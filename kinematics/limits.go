// Copyright 2024 The Cepgen-sub003 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kinematics

import "math"

// Limits is a cut range with explicit has-min/has-max flags. A bound whose
// flag is false constrains nothing: the zero value (Unbounded) accepts every
// value, negative ones included, and no lower bound of zero is applied.
type Limits struct {
	Min, Max       float64
	HasMin, HasMax bool
}

// NewLimits builds a fully bounded range.
func NewLimits(min, max float64) Limits {
	return Limits{Min: min, Max: max, HasMin: true, HasMax: true}
}

// NewLimitsMin builds a range with only a lower bound.
func NewLimitsMin(min float64) Limits {
	return Limits{Min: min, HasMin: true}
}

// NewLimitsMax builds a range with only an upper bound.
func NewLimitsMax(max float64) Limits {
	return Limits{Max: max, HasMax: true}
}

// In reports whether v lies within the range (inclusive of bounds that are set).
func (l Limits) In(v float64) bool {
	if l.HasMin && v < l.Min {
		return false
	}
	if l.HasMax && v > l.Max {
		return false
	}
	return true
}

// MaxOr returns Max if set, otherwise the supplied default.
func (l Limits) MaxOr(def float64) float64 {
	if l.HasMax {
		return l.Max
	}
	return def
}

// MinOr returns Min if set, otherwise the supplied default.
func (l Limits) MinOr(def float64) float64 {
	if l.HasMin {
		return l.Min
	}
	return def
}

// Valid reports whether the range is non-empty given both bounds are set.
func (l Limits) Valid() bool {
	if l.HasMin && l.HasMax {
		return l.Min <= l.Max
	}
	return true
}

// Unbounded is the zero-value range: no lower, no upper bound.
var Unbounded = Limits{}

// clampUpper narrows a trial upper bound to respect an optional cut ceiling.
func clampUpper(trial float64, l Limits) float64 {
	if l.HasMax && trial > l.Max {
		return l.Max
	}
	return trial
}

// clampLower narrows a trial lower bound to respect an optional cut floor.
func clampLower(trial float64, l Limits) float64 {
	if l.HasMin && trial < l.Min {
		return l.Min
	}
	return trial
}

// infIfUnset returns +Inf for a missing max bound so range-intersection math
// stays branch-free.
func infIfUnset(l Limits) float64 {
	if l.HasMax {
		return l.Max
	}
	return math.Inf(1)
}
