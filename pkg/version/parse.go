// Copyright (C) 2022  Ambassador Labs
//
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"strconv"
	"strings"

	"k8s.io/apimachinery/pkg/util/intstr"
)

// Parse parses the constraint mini-language into the narrowest Value that
// represents it:
//
//	list   := range ("," range)*
//	range  := version ":" version       -- closed interval
//	        | version ":"               -- unbounded above
//	        | ":" version               -- unbounded below
//	        | ":"                       -- every version
//	        | version                   -- a single version
//
// A "!" on the inside of a ":" marks that endpoint as excluded: "1.0:!2.0"
// reaches up to but not including 2.0.  A trailing ".*" turns a version into
// the range of its family: "1.2.*" is the same as "1.2:!1.3".  Spaces are
// ignored.
func Parse(str string) (Value, error) {
	s := strings.ReplaceAll(str, " ", "")
	switch {
	case strings.Contains(s, ","):
		l := NewList()
		for _, part := range strings.Split(s, ",") {
			v, err := Parse(part)
			if err != nil {
				return nil, err
			}
			l.Add(v)
		}
		return l, nil
	case strings.Contains(s, ":"):
		return parseRange(s)
	case strings.Contains(s, "*"):
		return parseStar(s)
	default:
		return ParseVersion(s)
	}
}

func parseRange(s string) (Value, error) {
	parts := strings.SplitN(s, ":", 2)
	left, right := parts[0], parts[1]
	if strings.Contains(right, ":") {
		return nil, &InvalidRangeError{Input: s, Detail: "more than one ':'"}
	}

	includesLeft, includesRight := true, true
	if strings.HasSuffix(left, "!") {
		includesLeft = false
		left = strings.TrimSuffix(left, "!")
	}
	if strings.HasPrefix(right, "!") {
		includesRight = false
		right = strings.TrimPrefix(right, "!")
	}

	if strings.Contains(left, "*") || strings.Contains(right, "*") {
		// A star expands to a range of its own; it can only stand
		// alone, possibly written as the degenerate "1.2.*:1.2.*".
		if left != right {
			return nil, &StarInequalityError{Input: s}
		}
		if !includesLeft || !includesRight {
			return nil, &InvalidRangeError{Input: s, Detail: "a starred version cannot be excluded"}
		}
		return parseStar(left)
	}

	var start, end *Version
	if left != "" {
		v, err := ParseVersion(left)
		if err != nil {
			return nil, err
		}
		start = &v
	}
	if right != "" {
		v, err := ParseVersion(right)
		if err != nil {
			return nil, err
		}
		end = &v
	}
	r, err := NewRange(start, end, includesLeft, includesRight)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// parseStar expands a trailing ".*" ("-*" and "_*" work too) into the
// half-open range of the named family: "1.2.*" covers everything from 1.2
// up to but not including 1.3.  An alphabetic tail rides along: "1.2b.*"
// covers [1.2b, 1.3b).  Downstream code never sees the star.
func parseStar(s string) (Value, error) {
	if strings.Count(s, "*") != 1 || !strings.HasSuffix(s, "*") ||
		len(s) < 2 || !strings.ContainsAny(s[len(s)-2:len(s)-1], "._-") {
		return nil, &InvalidCharacterError{Input: s, Detail: "'*' is only valid as a trailing '.*' component"}
	}

	low, err := ParseVersion(s[:len(s)-2])
	if err != nil {
		return nil, err
	}

	i := len(low.segments) - 1
	if low.segments[i].Type != intstr.Int {
		i--
		if i < 0 || low.segments[i].Type != intstr.Int {
			return nil, &InvalidRangeError{Input: s, Detail: "star expansion requires an integer component"}
		}
	}

	var b strings.Builder
	for j, seg := range low.segments {
		if j > 0 {
			b.WriteString(low.separators[j-1])
		}
		if j == i {
			b.WriteString(strconv.Itoa(int(seg.IntVal) + 1))
		} else {
			b.WriteString(segmentString(seg))
		}
	}
	high, err := ParseVersion(b.String())
	if err != nil {
		return nil, err
	}

	r, err := NewRange(&low, &high, true, false)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// Make converts a Go value to a Version, Range, or List: a string is
// parsed, a number is stringified first ("1.5" from 1.5), an already-typed
// value passes through (a Version carrying a star suffix is expanded), and
// a slice of any of these becomes a List.
func Make(obj interface{}) (Value, error) {
	switch obj := obj.(type) {
	case string:
		return Parse(obj)
	case int:
		return Parse(strconv.Itoa(obj))
	case int64:
		return Parse(strconv.FormatInt(obj, 10))
	case float64:
		return Parse(strconv.FormatFloat(obj, 'f', -1, 64))
	case Version:
		if strings.Contains(obj.str, "*") {
			return parseStar(obj.str)
		}
		return obj, nil
	case Range:
		return obj, nil
	case *List:
		return obj, nil
	case []string:
		l := NewList()
		for _, s := range obj {
			v, err := Make(s)
			if err != nil {
				return nil, err
			}
			l.Add(v)
		}
		return l, nil
	case []interface{}:
		l := NewList()
		for _, s := range obj {
			v, err := Make(s)
			if err != nil {
				return nil, err
			}
			l.Add(v)
		}
		return l, nil
	case []Value:
		l := NewList()
		for _, v := range obj {
			v, err := Make(v)
			if err != nil {
				return nil, err
			}
			l.Add(v)
		}
		return l, nil
	default:
		return nil, &UncoerceableTypeError{Value: obj}
	}
}
