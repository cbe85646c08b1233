// Copyright 2024 The Cepgen-sub003 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cepgenerr

import (
	"errors"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_newAndIs01(tst *testing.T) {

	chk.PrintTitle("newAndIs01")

	err := New(ConfigInvalid, "unknown process %q", "bogus")
	if !Is(err, ConfigInvalid) {
		tst.Errorf("Is(err, ConfigInvalid) should be true")
	}
	if Is(err, KinematicsInvalid) {
		tst.Errorf("Is(err, KinematicsInvalid) should be false for a ConfigInvalid error")
	}
	chk.String(tst, err.Error(), `cepgen: ConfigInvalid: unknown process "bogus"`)
}

func Test_isRejectsPlainError01(tst *testing.T) {

	chk.PrintTitle("isRejectsPlainError01")

	plain := errors.New("not a cepgen error")
	if Is(plain, ConfigInvalid) {
		tst.Errorf("Is should reject an error that is not a *Error")
	}
}

func Test_kindStrings01(tst *testing.T) {

	chk.PrintTitle("kindStrings01")

	chk.String(tst, ConfigInvalid.String(), "ConfigInvalid")
	chk.String(tst, KinematicsInvalid.String(), "KinematicsInvalid")
	chk.String(tst, IntegratorFailure.String(), "IntegratorFailure")
	chk.String(tst, HadroniserFailure.String(), "HadroniserFailure")
}
