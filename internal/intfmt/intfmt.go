// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package intfmt renders sequences in the brace delimited form
// used for debug output, e.g. {1, 2, 3}.
package intfmt

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Seq returns the values of seq formatted with %v as {a, b, c}.
func Seq[T any](seq iter.Seq[T]) string {
	out := &strings.Builder{}
	out.WriteByte('{')
	first := true
	for v := range seq {
		if !first {
			out.WriteString(", ")
		}
		first = false
		fmt.Fprintf(out, "%v", v)
	}
	out.WriteByte('}')
	return out.String()
}

// Slice is like Seq for a slice.
func Slice[T any](vals []T) string {
	return Seq(slices.Values(vals))
}

// Range formats the n elements of vals starting at j. It is safe to call
// with a window that extends beyond vals, in which case the window is
// clipped.
func Range[T any](vals []T, j, n int) string {
	j = max(0, min(j, len(vals)))
	e := max(j, min(j+n, len(vals)))
	return Slice(vals[j:e])
}
