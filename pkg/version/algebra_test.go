package version_test

import (
	"math/rand"
	"reflect"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datawire/verset/pkg/testutil"
	"github.com/datawire/verset/pkg/version"
)

// lawCorpus is a pile of constraints that between them exercise points,
// closed/half-open/unbounded ranges, exclusive edges, lists, families, and
// infinity names.
var lawCorpus = []string{
	"1.0",
	"1.5",
	"2.0",
	"4.7",
	"4.7.3",
	"develop",
	"1.0:2.0",
	"1.5:3.0",
	"1.0:!2.0",
	"1.0!:2.0",
	"4.7:4.8",
	"4.7.3:4.9",
	"1.0:",
	":2.0",
	":",
	"1.0:1.5,1.7:2.0",
	"1.0:2.0,3.0:4.0",
	"1.2:!1.3",
	"0.5,2.5,4.5",
}

func corpusValues(t *testing.T) []version.Value {
	t.Helper()
	vals := make([]version.Value, 0, len(lawCorpus))
	for _, str := range lawCorpus {
		vals = append(vals, mustParse(t, str))
	}
	return vals
}

func TestReflexivity(t *testing.T) {
	t.Parallel()
	for _, x := range corpusValues(t) {
		assert.Truef(t, version.Equal(x, x), "%q == %q", x, x)
		assert.Truef(t, version.Contains(x, x), "%q in %q", x, x)
		assert.Truef(t, version.Overlaps(x, x), "%q overlaps %q", x, x)
		assert.Truef(t, version.Satisfies(x, x), "%q satisfies %q", x, x)
	}
}

func TestSymmetry(t *testing.T) {
	t.Parallel()
	vals := corpusValues(t)
	for _, x := range vals {
		for _, y := range vals {
			assert.Equalf(t, version.Overlaps(x, y), version.Overlaps(y, x),
				"overlaps(%q, %q)", x, y)
			assert.Truef(t, version.Equal(version.Union(x, y), version.Union(y, x)),
				"union(%q, %q)", x, y)
			assert.Truef(t, version.Equal(version.Intersection(x, y), version.Intersection(y, x)),
				"intersection(%q, %q)", x, y)
		}
	}
}

func TestIdempotence(t *testing.T) {
	t.Parallel()
	for _, x := range corpusValues(t) {
		assert.Truef(t, version.Equal(x, version.Union(x, x)), "%q union %q", x, x)
		assert.Truef(t, version.Equal(x, version.Intersection(x, x)), "%q intersection %q", x, x)
	}
}

func TestAbsorption(t *testing.T) {
	t.Parallel()
	vals := corpusValues(t)
	for _, x := range vals {
		for _, y := range vals {
			assert.Truef(t, version.Equal(x, version.Union(x, version.Intersection(x, y))),
				"x=%q y=%q: x != x ∪ (x ∩ y)", x, y)
			assert.Truef(t, version.Equal(x, version.Intersection(x, version.Union(x, y))),
				"x=%q y=%q: x != x ∩ (x ∪ y)", x, y)
		}
	}
}

func TestDistributivity(t *testing.T) {
	t.Parallel()
	// Intersection distributes over union at the List level.
	corpus := []string{
		"4.7",
		"4.7.3",
		"4.7:4.8",
		"1.0",
		"2.5",
		"1.0:2.0",
		"1.5:3.0",
		"1.0:!2.0",
		"1.0:",
		":2.0",
		"1.0:1.5,1.7:2.0",
		"1.0:2.0,3.0:4.0",
	}
	vals := make([]version.Value, 0, len(corpus))
	for _, str := range corpus {
		vals = append(vals, mustParse(t, str))
	}
	for _, x := range vals {
		for _, y := range vals {
			for _, z := range vals {
				lhs := version.Intersection(x, version.Union(y, z))
				rhs := version.Union(version.Intersection(x, y), version.Intersection(x, z))
				assert.Truef(t, version.Equal(lhs, rhs),
					"x=%q y=%q z=%q: %q != %q", x, y, z, lhs, rhs)
			}
		}
	}
}

func TestOrderConsistency(t *testing.T) {
	t.Parallel()
	vals := corpusValues(t)
	for _, x := range vals {
		for _, y := range vals {
			dxy, dyx := version.Cmp(x, y), version.Cmp(y, x)
			assert.Equalf(t, dxy < 0, dyx > 0, "Cmp(%q, %q) vs Cmp(%q, %q)", x, y, y, x)
			for _, z := range vals {
				if version.Less(x, y) && version.Less(y, z) {
					assert.Truef(t, version.Less(x, z),
						"%q < %q < %q but not %q < %q", x, y, z, x, z)
				}
			}
		}
	}
}

func TestStringRoundTrip(t *testing.T) {
	t.Parallel()
	for _, x := range corpusValues(t) {
		back := mustParse(t, x.String())
		assert.Truef(t, version.Equal(x, back), "%q reparsed as %q", x, back)
	}
	for _, x := range corpusValues(t) {
		data, err := version.MarshalYAML(x)
		require.NoError(t, err)
		back, err := version.UnmarshalYAML(data)
		require.NoError(t, err)
		assert.Truef(t, version.Equal(x, back), "%q deserialized as %q", x, back)
	}
}

func TestCanonicalAfterAdds(t *testing.T) {
	t.Parallel()
	// However the corpus is shuffled into a List, the result is sorted
	// and disjoint, and re-adding any element changes nothing.
	vals := corpusValues(t)
	r := rand.New(rand.NewSource(4))
	for trial := 0; trial < 20; trial++ {
		l := version.NewList()
		perm := r.Perm(len(vals))
		for _, i := range perm {
			l.Add(vals[i])
		}
		for i := 0; i+1 < l.Len(); i++ {
			assert.Truef(t, version.Less(l.At(i), l.At(i+1)),
				"trial %d: %q not sorted", trial, l)
			assert.Falsef(t, version.Overlaps(l.At(i), l.At(i+1)),
				"trial %d: %q not disjoint", trial, l)
		}
		before := l.String()
		for _, i := range perm {
			l.Add(vals[i])
		}
		assert.Equal(t, before, l.String())
	}
}

// quickVersion generates random version strings for testing/quick.
type quickVersion string

func (quickVersion) Generate(r *rand.Rand, _ int) reflect.Value {
	seps := []string{".", "-", "_", ""}
	words := []string{"a", "b", "rc", "alpha", "beta", "develop", "main"}
	var b strings.Builder
	nseg := 1 + r.Intn(5)
	for i := 0; i < nseg; i++ {
		if i > 0 {
			b.WriteString(seps[r.Intn(len(seps))])
		}
		if r.Intn(3) == 0 {
			b.WriteString(words[r.Intn(len(words))])
		} else {
			b.WriteString(strconv.Itoa(r.Intn(30)))
		}
	}
	return reflect.ValueOf(quickVersion(b.String()))
}

func TestQuickVersionProperties(t *testing.T) {
	t.Parallel()

	t.Run("round-trip", func(t *testing.T) {
		t.Parallel()
		testutil.QuickCheck(t, func(s quickVersion) bool {
			ver, err := version.ParseVersion(string(s))
			if err != nil {
				// The generator can glue two digit runs together
				// with the empty separator, but never emits an
				// invalid character.
				return false
			}
			back, err := version.ParseVersion(ver.String())
			return err == nil && ver.Equal(back)
		}, testutil.QuickConfig{MaxCount: 500},
			[]interface{}{quickVersion("1.2.3")},
			[]interface{}{quickVersion("develop")},
			[]interface{}{quickVersion("1-2_3b")},
		)
	})

	t.Run("trichotomy", func(t *testing.T) {
		t.Parallel()
		testutil.QuickCheck(t, func(sa, sb quickVersion) bool {
			a, err := version.ParseVersion(string(sa))
			if err != nil {
				return false
			}
			b, err := version.ParseVersion(string(sb))
			if err != nil {
				return false
			}
			states := 0
			if a.Less(b) {
				states++
			}
			if b.Less(a) {
				states++
			}
			if a.Equal(b) {
				states++
			}
			if states != 1 {
				return false
			}
			// Hash agrees with Equal.
			return !a.Equal(b) || a.Hash() == b.Hash()
		}, testutil.QuickConfig{MaxCount: 500},
			[]interface{}{quickVersion("1.0"), quickVersion("1-0")},
			[]interface{}{quickVersion("4.7"), quickVersion("4.7.3")},
		)
	})
}
