// Copyright (C) 2022  Ambassador Labs
//
// SPDX-License-Identifier: Apache-2.0

package version

// Value is a Version, a Range, or a *List.  Binary operations accept any
// pair of them: both operands are first promoted to the greater of the two
// kinds, in the order Version < Range < List, so that 1.2 == 1.2:1.2 and
// "1.2 union 1.3:1.4" both do what they look like they do.
type Value interface {
	String() string

	// Concrete returns the single Version this value names, if it names
	// exactly one.
	Concrete() (Version, bool)

	// Lowest returns the smallest version reached by this value, or nil
	// if it is empty or unbounded below.
	Lowest() *Version

	// Highest returns the largest version reached by this value, or nil
	// if it is empty or unbounded above.
	Highest() *Version

	// Hash returns a hash consistent with Equal for values of the same
	// kind.
	Hash() uint64

	isValue()
}

const (
	kindVersion = iota
	kindRange
	kindList
)

func kindOf(v Value) int {
	switch v.(type) {
	case Version:
		return kindVersion
	case Range:
		return kindRange
	case *List:
		return kindList
	default:
		panic(&UncoerceableTypeError{Value: v})
	}
}

// toRange promotes a Version to the concrete range [v, v]; a Range passes
// through.
func toRange(v Value) Range {
	switch v := v.(type) {
	case Version:
		return Range{start: &v, end: &v, includesLeft: true, includesRight: true}
	case Range:
		return v
	default:
		panic(&UncoerceableTypeError{Value: v})
	}
}

// toList wraps a Version or Range in a singleton List; a List passes
// through.
func toList(v Value) *List {
	if l, ok := v.(*List); ok {
		return l
	}
	return NewList(v)
}

// Equal reports whether the two values name the same set of versions in the
// same shape, after promotion: a Version equals the concrete Range over it,
// but a Version does not equal a two-element List even if that List is
// mathematically the same set.
func Equal(a, b Value) bool {
	switch commonKind(a, b) {
	case kindVersion:
		return a.(Version).Equal(b.(Version))
	case kindRange:
		return toRange(a).Equal(toRange(b))
	default:
		return toList(a).Equal(toList(b))
	}
}

// Cmp totally orders values of any kinds: Versions and Ranges by their
// endpoints, Lists lexicographically.
func Cmp(a, b Value) int {
	switch commonKind(a, b) {
	case kindVersion:
		return a.(Version).Cmp(b.(Version))
	case kindRange:
		return toRange(a).Cmp(toRange(b))
	default:
		return toList(a).Cmp(toList(b))
	}
}

// Less reports whether a sorts strictly before b.
func Less(a, b Value) bool { return Cmp(a, b) < 0 }

// Contains reports whether inner is a subset of outer, under the family
// reading of versions: the Version 4.7, and any range bounded by it,
// contains 4.7.3.
func Contains(outer, inner Value) bool {
	switch commonKind(outer, inner) {
	case kindVersion:
		return outer.(Version).Contains(inner.(Version))
	case kindRange:
		return toRange(outer).containsRange(toRange(inner))
	default:
		return toList(outer).containsList(toList(inner))
	}
}

// Overlaps reports whether the two values share at least one version or
// version family.  Overlaps is symmetric.
func Overlaps(a, b Value) bool {
	switch commonKind(a, b) {
	case kindVersion:
		return a.(Version).versionOverlaps(b.(Version))
	case kindRange:
		return toRange(a).overlapsRange(toRange(b))
	default:
		return toList(a).overlapsList(toList(b))
	}
}

// Satisfies reports whether some version in a would satisfy some version in
// b, reading b's versions as families: 4.7.3 satisfies 4.7, and 4.5:4.7
// satisfies 4.7.3:4.8.  Satisfies is NOT symmetric.
func Satisfies(a, b Value) bool {
	switch commonKind(a, b) {
	case kindVersion:
		return a.(Version).Satisfies(b.(Version))
	case kindRange:
		return toRange(a).satisfiesRange(toRange(b))
	default:
		return toList(a).satisfiesList(toList(b))
	}
}

// SatisfiesStrict reports whether a lies entirely within b.
func SatisfiesStrict(a, b Value) bool {
	return Contains(b, a)
}

// Union returns the set union of the two values, in the narrowest shape
// that can hold it.
func Union(a, b Value) Value {
	switch commonKind(a, b) {
	case kindVersion:
		return a.(Version).versionUnion(b.(Version))
	case kindRange:
		return toRange(a).unionRange(toRange(b))
	default:
		return toList(a).unionList(toList(b))
	}
}

// Intersection returns the set intersection of the two values.  The empty
// List is a normal outcome, not an error; callers deciding satisfiability
// must treat it as "no version fits".
func Intersection(a, b Value) Value {
	switch commonKind(a, b) {
	case kindVersion:
		return a.(Version).versionIntersection(b.(Version))
	case kindRange:
		return toRange(a).intersectionRange(toRange(b))
	default:
		return toList(a).intersectionList(toList(b))
	}
}

func commonKind(a, b Value) int {
	ka, kb := kindOf(a), kindOf(b)
	if ka > kb {
		return ka
	}
	return kb
}
