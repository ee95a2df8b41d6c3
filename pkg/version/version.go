// Copyright (C) 2022  Ambassador Labs
//
// SPDX-License-Identifier: Apache-2.0

// Package version implements the version algebra used by package recipes and
// the dependency resolver.  There are three kinds of values:
//
//	Version
//	  A single version of a package.
//	Range
//	  A contiguous range of versions of a package.
//	List
//	  A sorted, disjoint list of Versions and Ranges.
//
// All three implement Value, and every binary operation (Equal, Less,
// Contains, Satisfies, Overlaps, Union, Intersection) accepts any pair of
// them; mixed operands are promoted to the greater of the two kinds in the
// order Version < Range < List before dispatching.
package version

import (
	"hash/fnv"
	"regexp"
	"strconv"
	"strings"

	"k8s.io/apimachinery/pkg/util/intstr"
)

// Versions are segmented at every alphabetic/numeric boundary; the strings
// between segments are kept for display only.
var segmentRegexp = regexp.MustCompile(`[A-Za-z]+|[0-9]+`)

var validRegexp = regexp.MustCompile(`^[A-Za-z0-9_.*-]+$`)

// infinityVersions are version names that compare greater than any numbered
// version.  The position in the list implies the comparison rule: a later
// name compares greater than an earlier one.
var infinityVersions = []string{"develop", "main", "master", "head", "trunk"}

// infinityIndex returns the position of seg in infinityVersions, or -1 if
// seg is not an infinity name.  Only alphabetic segments can be infinite.
func infinityIndex(seg intstr.IntOrString) int {
	if seg.Type != intstr.String {
		return -1
	}
	for i, name := range infinityVersions {
		if seg.StrVal == name {
			return i
		}
	}
	return -1
}

// Version is a single version of a package: a non-empty sequence of integer
// and alphabetic segments.  Identity, ordering, and hashing are functions of
// the segment sequence alone; the original string and its separators are kept
// so that the version formats back the way it was written.
//
// The zero Version is not valid; use ParseVersion.
type Version struct {
	str        string
	segments   []intstr.IntOrString
	separators []string
}

// ParseVersion parses a string to a single Version.  It does not understand
// ranges, lists, or star suffixes; for those, use Parse.
func ParseVersion(str string) (Version, error) {
	str = strings.TrimSpace(str)
	if !validRegexp.MatchString(str) {
		return Version{}, &InvalidCharacterError{Input: str}
	}

	locs := segmentRegexp.FindAllStringIndex(str, -1)
	if len(locs) == 0 {
		return Version{}, &InvalidCharacterError{Input: str, Detail: "no version segments"}
	}

	segments := make([]intstr.IntOrString, len(locs))
	separators := make([]string, 0, len(locs)-1)
	for i, loc := range locs {
		segments[i] = parseSegment(str[loc[0]:loc[1]])
		if i > 0 {
			separators = append(separators, str[locs[i-1][1]:loc[0]])
		}
	}

	return Version{
		str:        str,
		segments:   segments,
		separators: separators,
	}, nil
}

// parseSegment converts a segment to an int if possible.  Numeric runs too
// large for an int32 stay strings.
func parseSegment(run string) intstr.IntOrString {
	if n, err := strconv.ParseInt(run, 10, 32); err == nil {
		return intstr.FromInt(int(n))
	}
	return intstr.FromString(run)
}

// String returns the version as it was originally written.
func (v Version) String() string { return v.str }

// Len returns the number of segments.
func (v Version) Len() int { return len(v.segments) }

// Segments returns a copy of the segment sequence.
func (v Version) Segments() []intstr.IntOrString {
	out := make([]intstr.IntOrString, len(v.segments))
	copy(out, v.segments)
	return out
}

// Equal reports whether the two versions have identical segment sequences.
// Separators do not participate: "1-2" and "1.2" are equal.
func (v Version) Equal(other Version) bool {
	if len(v.segments) != len(other.segments) {
		return false
	}
	for i := range v.segments {
		if v.segments[i] != other.segments[i] {
			return false
		}
	}
	return true
}

// cmpSegment compares two segments the way rpmvercmp does, with the addition
// of the infinity names: an infinity name beats everything else, two infinity
// names compare by list position, and a number beats a non-infinity word.
func cmpSegment(a, b intstr.IntOrString) int {
	ai, bi := infinityIndex(a), infinityIndex(b)
	switch {
	case ai >= 0 && bi >= 0:
		return ai - bi
	case ai >= 0:
		return 1
	case bi >= 0:
		return -1
	}
	if a.Type != b.Type {
		// Numbers are always "newer" than letters, for consistency
		// with RPM.  See rpmvercmp.c.
		if a.Type == intstr.Int {
			return 1
		}
		return -1
	}
	if a.Type == intstr.Int {
		switch {
		case a.IntVal < b.IntVal:
			return -1
		case a.IntVal > b.IntVal:
			return 1
		}
		return 0
	}
	switch {
	case a.StrVal < b.StrVal:
		return -1
	case a.StrVal > b.StrVal:
		return 1
	}
	return 0
}

// Cmp returns a number < 0 if version 'v' is less than version 'other', > 0
// if 'v' is greater than 'other', or 0 if they are equal.
func (v Version) Cmp(other Version) int {
	n := len(v.segments)
	if len(other.segments) < n {
		n = len(other.segments)
	}
	for i := 0; i < n; i++ {
		if d := cmpSegment(v.segments[i], other.segments[i]); d != 0 {
			return d
		}
	}
	// If the common prefix is equal, the one with more segments is
	// greater: 4.7 < 4.7.3.
	return len(v.segments) - len(other.segments)
}

// Less reports whether v sorts strictly before other.
func (v Version) Less(other Version) bool { return v.Cmp(other) < 0 }

// Hash returns a hash of the segment sequence, consistent with Equal.
func (v Version) Hash() uint64 {
	h := fnv.New64a()
	for _, seg := range v.segments {
		if seg.Type == intstr.Int {
			h.Write([]byte{0})
			h.Write([]byte(strconv.Itoa(int(seg.IntVal))))
		} else {
			h.Write([]byte{1})
			h.Write([]byte(seg.StrVal))
		}
		h.Write([]byte{0xff})
	}
	return h.Sum64()
}

// Contains reports whether other is in the family of versions named by v,
// that is, whether v's segments are a prefix of other's.  4.7 contains
// 4.7.3 even though 4.7 < 4.7.3; containment and ordering are distinct
// relations.
func (v Version) Contains(other Version) bool {
	if len(v.segments) > len(other.segments) {
		return false
	}
	for i := range v.segments {
		if v.segments[i] != other.segments[i] {
			return false
		}
	}
	return true
}

// Satisfies reports whether v is at least as specific as other and shares
// other as a prefix: gcc@4.7.3 satisfies a request for gcc@4.7, so that a
// user asking to build with gcc@4.7 can be handed 4.7.3.
func (v Version) Satisfies(other Version) bool {
	return other.Contains(v)
}

// UpTo returns the version truncated to the first n segments, reassembled
// with the original separators.  A negative n counts from the end: UpTo(-1)
// drops the last segment.  n is clamped to [1, Len].
func (v Version) UpTo(n int) Version {
	if n < 0 {
		n += len(v.segments)
	}
	if n < 1 {
		n = 1
	}
	if n > len(v.segments) {
		n = len(v.segments)
	}
	return v.slice(n)
}

func (v Version) slice(n int) Version {
	var b strings.Builder
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteString(v.separators[i-1])
		}
		b.WriteString(segmentString(v.segments[i]))
	}
	out, err := ParseVersion(b.String())
	if err != nil {
		// The input came from a valid Version, so this cannot happen.
		panic(err)
	}
	return out
}

func segmentString(seg intstr.IntOrString) string {
	if seg.Type == intstr.Int {
		return strconv.Itoa(int(seg.IntVal))
	}
	return seg.StrVal
}

// IsPredecessor reports whether other is the immediate successor of v: both
// have the same number of segments, both end in an integer, and other's last
// segment is exactly one more.  No version w exists with v < w < other
// outside of v's own family.
func (v Version) IsPredecessor(other Version) bool {
	if len(v.segments) != len(other.segments) {
		return false
	}
	last, olast := v.segments[len(v.segments)-1], other.segments[len(other.segments)-1]
	if last.Type != intstr.Int || olast.Type != intstr.Int {
		return false
	}
	return olast.IntVal-last.IntVal == 1
}

// IsSuccessor reports whether v is the immediate successor of other.
func (v Version) IsSuccessor(other Version) bool {
	return other.IsPredecessor(v)
}

// IsDevelop reports whether any segment is one of the infinity names
// (develop, main, master, head, trunk).
func (v Version) IsDevelop() bool {
	for _, seg := range v.segments {
		if infinityIndex(seg) >= 0 {
			return true
		}
	}
	return false
}

// Dotted returns the version with all separators replaced by dots.
func (v Version) Dotted() Version { return v.reseparate(".") }

// Dashed returns the version with all separators replaced by dashes.
func (v Version) Dashed() Version { return v.reseparate("-") }

// Underscored returns the version with all separators replaced by
// underscores.
func (v Version) Underscored() Version { return v.reseparate("_") }

// Joined returns the version with all separator characters removed.
func (v Version) Joined() Version { return v.reseparate("") }

func (v Version) reseparate(sep string) Version {
	str := v.str
	for _, old := range []string{".", "-", "_"} {
		if old != sep {
			str = strings.ReplaceAll(str, old, sep)
		}
	}
	out, err := ParseVersion(str)
	if err != nil {
		panic(err)
	}
	return out
}

// Concrete implements Value; a Version is always concrete.
func (v Version) Concrete() (Version, bool) { return v, true }

// Lowest implements Value.
func (v Version) Lowest() *Version { return &v }

// Highest implements Value.
func (v Version) Highest() *Version { return &v }

func (v Version) isValue() {}

// versionUnion is the Version/Version case of Union.  A version and a member
// of its family merge to the family; anything else is a two-element list.
func (v Version) versionUnion(other Version) Value {
	switch {
	case v.Equal(other) || v.Contains(other):
		return v
	case other.Contains(v):
		return other
	default:
		return NewList(v, other)
	}
}

// versionIntersection is the Version/Version case of Intersection, the dual
// of versionUnion: intersecting a family with one of its members narrows to
// the member, and unrelated versions narrow to nothing.
func (v Version) versionIntersection(other Version) Value {
	switch {
	case v.Contains(other):
		return other
	case other.Contains(v):
		return v
	default:
		return NewList()
	}
}

// versionOverlaps is the Version/Version case of Overlaps.
func (v Version) versionOverlaps(other Version) bool {
	return v.Contains(other) || other.Contains(v)
}
