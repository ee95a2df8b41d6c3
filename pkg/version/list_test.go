package version_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datawire/verset/pkg/version"
)

func TestListCanonicalForm(t *testing.T) {
	t.Parallel()
	// Whatever order elements arrive in, a List ends up sorted, disjoint,
	// and merged.
	testcases := map[string]struct {
		InStr  string
		OutStr string
	}{
		"sorted":              {"2.0,1.0,1.5", "1.0,1.5,2.0"},
		"duplicate":           {"1.0,1.0", "1.0"},
		"overlapping-ranges":  {"1.0:2.0,1.5:2.5,4.0", "1.0:2.5,4.0"},
		"adjacent-ranges":     {"1.0:1.5,1.6:2.0", "1.0:2.0"},
		"adjacent-versions":   {"1.5,1.6", "1.5,1.6"},
		"version-in-range":    {"1.5,1.0:2.0", "1.0:2.0"},
		"version-near-range":  {"1.5,1.6:2.0", "1.5:2.0"},
		"family-collapse":     {"4.7.3,4.7", "4.7"},
		"concrete-range":      {"1.2:1.2,1.5", "1.2,1.5"},
		"chain":               {"1.0:1.5,1.6:2.0,2.1:3.0", "1.0:3.0"},
		"universe-swallows":   {"1.0,:,2.0", ":"},
		"mixed":               {"3.0,1.0:2.0", "1.0:2.0,3.0"},
	}
	for tcName, tc := range testcases {
		tc := tc
		t.Run(tcName, func(t *testing.T) {
			t.Parallel()
			val := mustParse(t, tc.InStr)
			require.IsType(t, &version.List{}, val)
			assert.Equal(t, tc.OutStr, val.String())
		})
	}
}

func TestListUnionIntersection(t *testing.T) {
	t.Parallel()
	testcases := map[string]struct {
		A, B         string
		Union        string
		Intersection string
	}{
		"interleaved": {
			"1.0:2.0,3.0:4.0", "1.5:3.5",
			"1.0:4.0", "1.5:2.0,3.0:3.5",
		},
		"disjoint": {
			"1.0,2.0", "3.0,4.0",
			"1.0,2.0,3.0,4.0", "",
		},
		"swallow": {
			"1.0:9.0", "2.0,3.0:4.0",
			"1.0:9.0", "2.0,3.0:4.0",
		},
		"point-overlap": {
			"1.0:2.0", "2.0:3.0",
			"1.0:3.0", "2.0",
		},
	}
	for tcName, tc := range testcases {
		tc := tc
		t.Run(tcName, func(t *testing.T) {
			t.Parallel()
			a, b := mustParse(t, tc.A), mustParse(t, tc.B)
			assert.Equal(t, tc.Union, version.Union(a, b).String())
			assert.Equal(t, tc.Union, version.Union(b, a).String())
			assert.Equal(t, tc.Intersection, version.Intersection(a, b).String())
			assert.Equal(t, tc.Intersection, version.Intersection(b, a).String())
		})
	}
}

func TestListContains(t *testing.T) {
	t.Parallel()
	testcases := map[string]struct {
		Outer, Inner string
		Out          bool
	}{
		"points-in-ranges": {"1.0:2.0,3.0:4.0", "1.5,3.2", true},
		"point-in-gap":     {"1.0:2.0,3.0:4.0", "2.5", false},
		"partial":          {"1.0:2.0,3.0:4.0", "1.5,2.5", false},
		"list-in-range":    {"1.0:5.0", "1.0:2.0,3.0:4.0", true},
		"family":           {"4.7:4.8,6.0", "4.7.3", true},
		"empty-outer":      {"", "1.0", false},
	}
	for tcName, tc := range testcases {
		tc := tc
		t.Run(tcName, func(t *testing.T) {
			t.Parallel()
			outer := version.NewList()
			if tc.Outer != "" {
				outer.Add(mustParse(t, tc.Outer))
			}
			assert.Equal(t, tc.Out, version.Contains(outer, mustParse(t, tc.Inner)))
		})
	}
}

func TestListOverlapsSatisfies(t *testing.T) {
	t.Parallel()
	a := mustParse(t, "1.0:2.0,4.0:5.0")
	b := mustParse(t, "3.0,4.5")
	c := mustParse(t, "2.5:3.5")

	assert.False(t, version.Overlaps(a, c))
	assert.True(t, version.Overlaps(b, c))
	assert.True(t, version.Overlaps(a, b))

	assert.True(t, version.Satisfies(a, b))
	assert.False(t, version.Satisfies(a, c))

	// Strict satisfaction is plain containment.
	assert.True(t, version.SatisfiesStrict(mustParse(t, "1.5,4.2"), a))
	assert.False(t, version.SatisfiesStrict(mustParse(t, "1.5,3.0"), a))

	empty := version.NewList()
	assert.False(t, version.Overlaps(empty, a))
	assert.False(t, version.Satisfies(empty, a))
}

func TestListEndpoints(t *testing.T) {
	t.Parallel()
	l := mustParse(t, "1.0:2.0,3.0,develop").(*version.List)

	require.NotNil(t, l.Lowest())
	assert.Equal(t, "1.0", l.Lowest().String())
	require.NotNil(t, l.Highest())
	assert.Equal(t, "develop", l.Highest().String())
	require.NotNil(t, l.HighestNumeric())
	assert.Equal(t, "3.0", l.HighestNumeric().String())
	require.NotNil(t, l.Preferred())
	assert.Equal(t, "3.0", l.Preferred().String())

	dev := version.NewList(mustVersion(t, "develop"))
	assert.Nil(t, dev.HighestNumeric())
	require.NotNil(t, dev.Preferred())
	assert.Equal(t, "develop", dev.Preferred().String())

	empty := version.NewList()
	assert.Nil(t, empty.Lowest())
	assert.Nil(t, empty.Highest())
	assert.Nil(t, empty.Preferred())

	unbounded := mustParse(t, "1.0:2.0,3.0:").(*version.List)
	assert.Nil(t, unbounded.Highest())
}

func TestListConcrete(t *testing.T) {
	t.Parallel()
	c, ok := mustParse(t, "1.2:1.2,1.2").(*version.List).Concrete()
	require.True(t, ok)
	assert.Equal(t, "1.2", c.String())

	_, ok = mustParse(t, "1.2,1.3").(*version.List).Concrete()
	assert.False(t, ok)

	_, ok = version.NewList().Concrete()
	assert.False(t, ok)
}

func TestListIntersect(t *testing.T) {
	t.Parallel()
	l := mustParse(t, "1.0:2.0,3.0:4.0").(*version.List)
	changed := l.Intersect(version.NewList(mustParse(t, "1.5:3.5")))
	assert.True(t, changed)
	assert.Equal(t, "1.5:2.0,3.0:3.5", l.String())

	changed = l.Intersect(l.Copy())
	assert.False(t, changed)
}

func TestListCopyIsIndependent(t *testing.T) {
	t.Parallel()
	l := mustParse(t, "1.0,2.0").(*version.List)
	cp := l.Copy()
	cp.Add(mustVersion(t, "3.0"))
	assert.Equal(t, "1.0,2.0", l.String())
	assert.Equal(t, "1.0,2.0,3.0", cp.String())
}
