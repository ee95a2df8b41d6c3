// Copyright (C) 2022  Ambassador Labs
//
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"strings"
)

// Range is a contiguous range of versions between two optional endpoints.
// A nil endpoint means the range is unbounded on that side.  Each finite
// endpoint is either included ("1.0:2.0" includes both edges) or excluded
// ("1.0:!2.0" stops just short of 2.0).
//
// The zero Range is not valid; use NewRange or Parse.
type Range struct {
	start, end                  *Version
	includesLeft, includesRight bool
}

// NewRange builds a range from its endpoints.  A nil endpoint must have its
// includes flag set to true.  Finite endpoints must satisfy start <= end,
// except that a family prefix may bound its own members from above: the pair
// (4.7.3, 4.7) is the set of 4.7-family versions at or above 4.7.3.  A range
// with start == end must include both edges or neither; including neither
// names the empty set, which is represented by the empty List, not by a
// Range.
func NewRange(start, end *Version, includesLeft, includesRight bool) (Range, error) {
	r := Range{
		start:         start,
		end:           end,
		includesLeft:  includesLeft,
		includesRight: includesRight,
	}
	if start == nil && !includesLeft {
		return Range{}, &InvalidRangeError{Input: r.String(), Detail: "an open lower endpoint cannot be exclusive"}
	}
	if end == nil && !includesRight {
		return Range{}, &InvalidRangeError{Input: r.String(), Detail: "an open upper endpoint cannot be exclusive"}
	}
	if start != nil && end != nil {
		if start.Equal(*end) {
			switch {
			case includesLeft != includesRight:
				return Range{}, &InvalidRangeError{Input: r.String(), Detail: "a single-version range must include both endpoints or neither"}
			case !includesLeft:
				return Range{}, &InvalidRangeError{Input: r.String(), Detail: "a single excluded version is the empty set"}
			}
		} else if end.Less(*start) && !end.Contains(*start) {
			return Range{}, &InvalidRangeError{Input: r.String(), Detail: "start must not be greater than end"}
		}
	}
	return r, nil
}

// Start returns the lower endpoint, or nil if unbounded below.
func (r Range) Start() *Version { return r.start }

// End returns the upper endpoint, or nil if unbounded above.
func (r Range) End() *Version { return r.end }

// IncludesStart reports whether the range includes its lower endpoint.
func (r Range) IncludesStart() bool { return r.includesLeft }

// IncludesEnd reports whether the range includes its upper endpoint.
func (r Range) IncludesEnd() bool { return r.includesRight }

func (r Range) low() endpoint {
	return endpoint{value: r.start, side: leftSide, includes: r.includesLeft}
}

func (r Range) high() endpoint {
	return endpoint{value: r.end, side: rightSide, includes: r.includesRight}
}

// String formats the range in the constraint mini-language: "1.0:2.0",
// "1.0:!2.0", "1.0!:", ":", and so on.  A concrete range formats as its
// single version.
func (r Range) String() string {
	if r.start == nil && r.end == nil {
		return ":"
	}
	if r.start != nil && r.end != nil && r.start.Equal(*r.end) {
		return r.start.String()
	}

	var b strings.Builder
	if r.start != nil {
		b.WriteString(r.start.String())
		if !r.includesLeft {
			b.WriteString("!")
		}
	}
	b.WriteString(":")
	if r.end != nil {
		if !r.includesRight {
			b.WriteString("!")
		}
		b.WriteString(r.end.String())
	}
	return b.String()
}

// Equal reports whether the two ranges have the same endpoints and the same
// inclusivity.
func (r Range) Equal(other Range) bool {
	return versionPtrEqual(r.start, other.start) &&
		versionPtrEqual(r.end, other.end) &&
		r.includesLeft == other.includesLeft &&
		r.includesRight == other.includesRight
}

func versionPtrEqual(a, b *Version) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}

// Cmp orders ranges first by lower endpoint, then by upper endpoint.  A nil
// start sorts below everything else; a nil end sorts above.
func (r Range) Cmp(other Range) int {
	if d := cmpEndpoint(r.low(), other.low()); d != 0 {
		return d
	}
	return cmpEndpoint(r.high(), other.high())
}

// Less reports whether r sorts strictly before other.
func (r Range) Less(other Range) bool { return r.Cmp(other) < 0 }

// Hash returns a hash of the endpoints, consistent with Equal.
func (r Range) Hash() uint64 {
	h := uint64(0x9e3779b97f4a7c15)
	for _, v := range []*Version{r.start, r.end} {
		h *= 1099511628211
		if v != nil {
			h ^= v.Hash()
		}
	}
	if r.includesLeft {
		h ^= 1
	}
	if r.includesRight {
		h ^= 2
	}
	return h
}

// Concrete returns the single version this range names, if it names exactly
// one.
func (r Range) Concrete() (Version, bool) {
	if r.start == nil || r.end == nil || !r.start.Equal(*r.end) {
		return Version{}, false
	}
	if !r.includesLeft || !r.includesRight {
		return Version{}, false
	}
	return *r.start, true
}

// Lowest implements Value; nil means unbounded below.
func (r Range) Lowest() *Version { return r.start }

// Highest implements Value; nil means unbounded above.
func (r Range) Highest() *Version { return r.end }

func (r Range) isValue() {}

// containsRange reports whether every version in other is also in r.  Both
// bounds respect inclusivity and the family-prefix relation: a range with
// the low endpoint 4.7 contains one with the low endpoint 4.7.3.
func (r Range) containsRange(other Range) bool {
	return cmpEndpoint(r.low(), other.low()) <= 0 &&
		cmpEndpoint(r.high(), other.high()) >= 0
}

// overlapsRange reports whether the two ranges share at least one version or
// one version family.  The check is symmetric in the prefix relation:
// 4.7:4.8 overlaps 4.7.3:4.9 even though 4.7 < 4.7.3, because 4.7.3 is in
// the 4.7 family.
func (r Range) overlapsRange(other Range) bool {
	return !endpointBefore(r.high(), other.low()) &&
		!endpointBefore(other.high(), r.low())
}

// satisfiesRange reports whether some version in r would satisfy some
// version in other.  It must either:
//
//	a) overlap with the other range, or
//	b) have a start that satisfies other's end.
//
// This is the same as overlapsRange, except that overlapsRange reads its
// endpoints as specific versions (4.7 is 4.7.0.0...), while satisfies reads
// other's end as a family: if a user asks for gcc@4.5:4.7 and a package is
// compatible with gcc@4.7.3:4.8, the package can be built, because 4.7.3 is
// a 4.7.  Checking r's end against other's start is unnecessary; overlap
// already covers it.  Note that Overlaps is symmetric while Satisfies is
// not.
func (r Range) satisfiesRange(other Range) bool {
	if r.overlapsRange(other) {
		return true
	}
	return r.start != nil && other.end != nil && r.start.Satisfies(*other.end)
}

// adjacentRange reports whether the two ranges are disjoint but have no
// versions between them, so that their union is still a single range.
func (r Range) adjacentRange(other Range) bool {
	return endpointAdjacent(r.high(), other.low()) ||
		endpointAdjacent(other.high(), r.low())
}

// unionRange returns the union of the two ranges: a single merged Range when
// they overlap or are adjacent, otherwise a two-element List.
func (r Range) unionRange(other Range) Value {
	if r.overlapsRange(other) || r.adjacentRange(other) {
		lo := minEndpoint(r.low(), other.low())
		hi := maxEndpoint(r.high(), other.high())
		return rangeFromEndpoints(lo, hi)
	}
	return NewList(r, other)
}

// intersectionRange returns the intersection of the two ranges: the Range
// between the greater of the lows and the lesser of the highs when they
// overlap, otherwise the empty List.
func (r Range) intersectionRange(other Range) Value {
	if !r.overlapsRange(other) {
		return NewList()
	}
	lo := maxEndpoint(r.low(), other.low())
	hi := minEndpoint(r.high(), other.high())
	return rangeFromEndpoints(lo, hi)
}

// rangeFromEndpoints assembles a Range from edges already known to form a
// non-empty interval.
func rangeFromEndpoints(lo, hi endpoint) Value {
	r := Range{
		start:         lo.value,
		end:           hi.value,
		includesLeft:  lo.includes,
		includesRight: hi.includes,
	}
	if v, ok := r.Concrete(); ok {
		return v
	}
	return r
}
