// Copyright (C) 2022  Ambassador Labs
//
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"sort"
	"strings"
)

// List is a sorted, non-redundant list of Versions and Ranges.  Add keeps
// three invariants: elements are sorted, no two elements overlap, and no two
// neighboring elements could be merged into one Range.  The empty List is
// the empty set; it is how operations report "no version fits".
//
// A List is the only mutable kind of Value; share Lists between goroutines
// read-only, or Copy them.
type List struct {
	elements []Value
}

// NewList builds a canonical List from any mix of Versions, Ranges, and
// other Lists.
func NewList(vs ...Value) *List {
	l := &List{}
	for _, v := range vs {
		l.Add(v)
	}
	return l
}

// Len returns the number of elements.
func (l *List) Len() int { return len(l.elements) }

// At returns the i'th element in sorted order.
func (l *List) At(i int) Value { return l.elements[i] }

// Elements returns a copy of the element slice.
func (l *List) Elements() []Value {
	out := make([]Value, len(l.elements))
	copy(out, l.elements)
	return out
}

// Copy returns a List that can be mutated independently.
func (l *List) Copy() *List {
	return &List{elements: l.Elements()}
}

// Add inserts a Version, Range, or all elements of another List, restoring
// the sorted/disjoint/merged invariants: the new element is merged with
// every existing element it overlaps or abuts, and the result is placed at
// its sort position.
func (l *List) Add(v Value) {
	switch v := v.(type) {
	case *List:
		for _, e := range v.elements {
			l.Add(e)
		}
	case Version, Range:
		// A range that names exactly one version is stored as that
		// version.
		if c, ok := v.Concrete(); ok {
			v = c
		}

		i := sort.Search(len(l.elements), func(j int) bool {
			return Cmp(l.elements[j], v) >= 0
		})

		for i-1 >= 0 && mergeable(v, l.elements[i-1]) {
			v = mergeOne(v, l.elements[i-1])
			l.elements = append(l.elements[:i-1], l.elements[i:]...)
			i--
		}
		for i < len(l.elements) && mergeable(v, l.elements[i]) {
			v = mergeOne(v, l.elements[i])
			l.elements = append(l.elements[:i], l.elements[i+1:]...)
		}

		l.elements = append(l.elements, nil)
		copy(l.elements[i+1:], l.elements[i:])
		l.elements[i] = v
	default:
		panic(&UncoerceableTypeError{Value: v})
	}
}

// mergeable reports whether Union of the two elements is a single element.
// Two Versions merge only when one is in the other's family; once a Range
// is involved, overlap and integer adjacency both merge.
func mergeable(a, b Value) bool {
	av, aIsVersion := a.(Version)
	bv, bIsVersion := b.(Version)
	if aIsVersion && bIsVersion {
		return av.versionOverlaps(bv)
	}
	ar, br := toRange(a), toRange(b)
	return ar.overlapsRange(br) || ar.adjacentRange(br)
}

// mergeOne unions two elements known to be mergeable into one element.
func mergeOne(a, b Value) Value {
	u := Union(a, b)
	if ul, ok := u.(*List); ok {
		// mergeable() said this cannot happen.
		panic("merge of mergeable elements produced " + ul.String())
	}
	return u
}

// String formats the list as a comma-separated constraint, elements in
// sorted order.
func (l *List) String() string {
	parts := make([]string, len(l.elements))
	for i, e := range l.elements {
		parts[i] = e.String()
	}
	return strings.Join(parts, ",")
}

// Equal reports whether the two lists have equal elements.
func (l *List) Equal(other *List) bool {
	if len(l.elements) != len(other.elements) {
		return false
	}
	for i := range l.elements {
		if !Equal(l.elements[i], other.elements[i]) {
			return false
		}
	}
	return true
}

// Cmp orders lists lexicographically by their elements.
func (l *List) Cmp(other *List) int {
	n := len(l.elements)
	if len(other.elements) < n {
		n = len(other.elements)
	}
	for i := 0; i < n; i++ {
		if d := Cmp(l.elements[i], other.elements[i]); d != 0 {
			return d
		}
	}
	return len(l.elements) - len(other.elements)
}

// Hash returns a hash of the element sequence, consistent with Equal.
func (l *List) Hash() uint64 {
	h := uint64(1469598103934665603)
	for _, e := range l.elements {
		h ^= e.Hash()
		h *= 1099511628211
	}
	return h
}

// Concrete returns the single version this list names, if it names exactly
// one.
func (l *List) Concrete() (Version, bool) {
	if len(l.elements) != 1 {
		return Version{}, false
	}
	return l.elements[0].Concrete()
}

// Lowest returns the low endpoint of the first element, or nil if the list
// is empty or unbounded below.
func (l *List) Lowest() *Version {
	if len(l.elements) == 0 {
		return nil
	}
	return l.elements[0].Lowest()
}

// Highest returns the high endpoint of the last element, or nil if the list
// is empty or unbounded above.
func (l *List) Highest() *Version {
	if len(l.elements) == 0 {
		return nil
	}
	return l.elements[len(l.elements)-1].Highest()
}

// HighestNumeric returns the high endpoint of the last element that is not
// itself one of the infinity names, or nil if every element is.
func (l *List) HighestNumeric() *Version {
	for i := len(l.elements) - 1; i >= 0; i-- {
		if !isInfinityName(l.elements[i].String()) {
			return l.elements[i].Highest()
		}
	}
	return nil
}

func isInfinityName(s string) bool {
	for _, name := range infinityVersions {
		if s == name {
			return true
		}
	}
	return false
}

// Preferred returns the version a resolver should pick absent other
// constraints: the highest numbered version if there is one, else the
// highest version overall.
func (l *List) Preferred() *Version {
	if v := l.HighestNumeric(); v != nil {
		return v
	}
	return l.Highest()
}

func (l *List) isValue() {}

// containsList reports whether every element of other is contained in some
// element of l.
func (l *List) containsList(other *List) bool {
	if len(l.elements) == 0 {
		return false
	}
	for _, e := range other.elements {
		if !l.containsElement(e) {
			return false
		}
	}
	return true
}

func (l *List) containsElement(e Value) bool {
	i := sort.Search(len(l.elements), func(j int) bool {
		return Cmp(l.elements[j], e) >= 0
	})
	// Sorting does not follow the family relation (4.7 sorts before
	// 4.7.3 but contains it), so scan from one element before the
	// insertion point.
	if i > 0 {
		i--
	}
	for ; i < len(l.elements); i++ {
		if Contains(l.elements[i], e) {
			return true
		}
	}
	return false
}

// overlapsList reports whether the two lists share any version, by sweeping
// both sorted element lists in tandem.
func (l *List) overlapsList(other *List) bool {
	s, o := 0, 0
	for s < len(l.elements) && o < len(other.elements) {
		switch {
		case Overlaps(l.elements[s], other.elements[o]):
			return true
		case Less(l.elements[s], other.elements[o]):
			s++
		default:
			o++
		}
	}
	return false
}

// satisfiesList reports whether some element of l satisfies some element of
// other.  The sweep is the same as overlapsList, with the element-level
// Satisfies in place of Overlaps.
func (l *List) satisfiesList(other *List) bool {
	s, o := 0, 0
	for s < len(l.elements) && o < len(other.elements) {
		switch {
		case Satisfies(l.elements[s], other.elements[o]):
			return true
		case Less(l.elements[s], other.elements[o]):
			s++
		default:
			o++
		}
	}
	return false
}

// Update adds every element of other to l in place.
func (l *List) Update(other *List) {
	for _, e := range other.elements {
		l.Add(e)
	}
}

// unionList returns a new canonical List with the elements of both.
func (l *List) unionList(other *List) *List {
	out := l.Copy()
	out.Update(other)
	return out
}

// intersectionList intersects elementwise; Add canonicalizes the
// accumulated pieces.
func (l *List) intersectionList(other *List) *List {
	out := NewList()
	for _, s := range l.elements {
		for _, o := range other.elements {
			out.Add(Intersection(s, o))
		}
	}
	return out
}

// Intersect narrows l to its intersection with other, in place, and reports
// whether l changed.
func (l *List) Intersect(other *List) bool {
	isect := l.intersectionList(other)
	changed := !l.Equal(isect)
	l.elements = isect.elements
	return changed
}
