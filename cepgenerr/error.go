// Copyright 2024 The Cepgen-sub003 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cepgenerr carries the structured fatal-error kinds spec.md section
// 7 distinguishes from ordinary recoverable-zero returns: unknown process
// name, unknown structure-function choice, inconsistent beam configuration,
// invalid configuration field type, or a non-finite integrator estimate.
// Recoverable kinematic failures (out-of-range mappings, failed cuts) are
// never represented here — they are plain zero weights, per section 9's
// "Exceptions for control flow" note.
package cepgenerr

import "github.com/cpmech/gosl/io"

// Kind classifies a fatal error.
type Kind int

const (
	// ConfigInvalid marks a malformed or inconsistent configuration mapping
	// (unknown process/form-factor/integrator name, wrong field type).
	ConfigInvalid Kind = iota
	// KinematicsInvalid marks an inconsistent beam or event-bookkeeping
	// configuration (not a per-sample physical rejection, which returns 0).
	KinematicsInvalid
	// IntegratorFailure marks a NaN/Inf cross-section estimate.
	IntegratorFailure
	// HadroniserFailure marks a hadroniser that exceeded its trial budget.
	HadroniserFailure
)

func (k Kind) String() string {
	switch k {
	case ConfigInvalid:
		return "ConfigInvalid"
	case KinematicsInvalid:
		return "KinematicsInvalid"
	case IntegratorFailure:
		return "IntegratorFailure"
	case HadroniserFailure:
		return "HadroniserFailure"
	default:
		return "Unknown"
	}
}

// Error wraps a Kind with a formatted diagnostic carrying the offending key
// and value, per spec.md section 7's "fail fast everywhere the intent of
// the configuration is ambiguous" policy.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return io.Sf("cepgen: %s: %s", e.Kind, e.Message)
}

// New builds a *Error the way gosl/chk.Err builds a formatted error.
func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: io.Sf(format, args...)}
}

// Is reports whether err is a *Error of the given kind, for use in tests and
// in the driver's exit-disposition computation (spec.md section 6).
func Is(err error, kind Kind) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == kind
}
