// Copyright (C) 2022  Ambassador Labs
//
// SPDX-License-Identifier: Apache-2.0

package cliutil

import (
	"strings"
)

// Wrap greedily wraps s to a maximum width w.  Pass w == 0 to not wrap.
// Lines are actually filled to w-5, leaving slop so that a short word does
// not end up alone on a line.
func Wrap(w int, s string) string {
	return wrap(0, w, s)
}

// WrapIndent is Wrap with continuation lines indented by i spaces.  The
// first line is not indented; that is assumed to be done by the caller.
func WrapIndent(i, w int, s string) string {
	return wrap(i, w, s)
}

func wrap(indent, width int, s string) string {
	if width == 0 {
		return s
	}
	fill := width - 5
	if fill <= indent {
		return s
	}

	var out strings.Builder
	for i, paragraph := range strings.Split(s, "\n") {
		if i > 0 {
			out.WriteString("\n")
			if paragraph != "" && indent > 0 {
				out.WriteString(strings.Repeat(" ", indent))
			}
		}
		col := indent
		for j, word := range strings.Fields(paragraph) {
			switch {
			case j == 0:
				// first word on the line
			case col+1+len(word) > fill:
				out.WriteString("\n")
				out.WriteString(strings.Repeat(" ", indent))
				col = indent
			default:
				out.WriteString(" ")
				col++
			}
			out.WriteString(word)
			col += len(word)
		}
	}
	return out.String()
}
