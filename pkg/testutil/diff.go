// Copyright (C) 2022  Ambassador Labs
//
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/pmezard/go-difflib/difflib"
)

var spewConfig = spew.ConfigState{ //nolint:exhaustivestruct
	Indent:                  "  ",
	DisableCapacities:       true,
	DisablePointerAddresses: true,
	SortKeys:                true,
}

// Dump renders a value for failure output, with pointer addresses and
// capacities suppressed so that dumps are stable across runs.
func Dump(v interface{}) string {
	return spewConfig.Sdump(v)
}

// AssertEqualDump asserts that the dumps of exp and act are identical, and
// on mismatch reports a unified diff of the two dumps rather than one
// unreadable line per value.
func AssertEqualDump(t *testing.T, exp, act interface{}) bool {
	t.Helper()
	expStr, actStr := Dump(exp), Dump(act)
	if expStr == actStr {
		return true
	}
	diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{ //nolint:exhaustivestruct
		A:        difflib.SplitLines(expStr),
		B:        difflib.SplitLines(actStr),
		FromFile: "Expected",
		ToFile:   "Actual",
		Context:  3,
	})
	t.Errorf("Not equal:\n%s", diff)
	return false
}
