// Copyright (C) 2022  Ambassador Labs
//
// SPDX-License-Identifier: Apache-2.0

// Package testutil has helpers for testing the version algebra: a
// testing/quick harness that also replays fixed seed cases, and diff-based
// equality assertions with readable dumps.
package testutil

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
)

// QuickConfig is an alias so that callers don't need to import
// testing/quick themselves.
type QuickConfig = quick.Config

// QuickCheck is like testing/quick.Check, but additionally replays each of
// the given static argument tuples through the property, so that known
// corner cases are always exercised no matter what the randomizer picks.
func QuickCheck(t *testing.T, fn interface{}, cfg QuickConfig, statics ...[]interface{}) {
	t.Helper()
	err := quick.Check(fn, &cfg)
	assert.NoError(t, err)
	var setupErr quick.SetupError
	if errors.As(err, &setupErr) {
		return
	}

	fnVal := reflect.ValueOf(fn)
	for i, tc := range statics {
		if len(tc) != fnVal.Type().NumIn() {
			t.Errorf("static#%d has %d args, but the property takes %d",
				i, len(tc), fnVal.Type().NumIn())
			continue
		}
		args := make([]reflect.Value, len(tc))
		for j := range args {
			args[j] = reflect.ValueOf(tc[j])
		}
		if !fnVal.Call(args)[0].Bool() {
			assert.NoError(t, fmt.Errorf("static%w", &quick.CheckError{
				Count: i + 1,
				In:    tc,
			}))
		}
	}
}
