package version_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/datawire/verset/pkg/version"
)

func mustVersion(t *testing.T, str string) version.Version {
	t.Helper()
	ver, err := version.ParseVersion(str)
	require.NoError(t, err)
	return ver
}

func mustParse(t *testing.T, str string) version.Value {
	t.Helper()
	val, err := version.Parse(str)
	require.NoError(t, err)
	require.NotNil(t, val)
	return val
}
