package main

import (
	"context"

	"github.com/datawire/dlib/dlog"

	"github.com/datawire/verset/pkg/version"
)

func parseConstraint(ctx context.Context, str string) (version.Value, error) {
	val, err := version.Parse(str)
	if err != nil {
		return nil, err
	}
	dlog.Debugf(ctx, "parsed %q as %T %q", str, val, val)
	return val, nil
}
