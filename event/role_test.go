// Copyright 2024 The Cepgen-sub003 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package event

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_roleByNameRoundTrip01(tst *testing.T) {

	chk.PrintTitle("roleByNameRoundTrip01")

	for _, r := range roleValues {
		got, ok := RoleByName(r.String())
		if !ok {
			tst.Errorf("RoleByName(%q) reported not found", r.String())
			continue
		}
		if got != r {
			tst.Errorf("RoleByName(%q) = %v, want %v", r.String(), got, r)
		}
	}
}

func Test_roleByNameUnknown01(tst *testing.T) {

	chk.PrintTitle("roleByNameUnknown01")

	if _, ok := RoleByName("NotARole"); ok {
		tst.Errorf("RoleByName(\"NotARole\") should report not found")
	}
}
