// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package intsort

import "cloudeng.io/intsort/internal/intfmt"

// Format returns xs formatted as {x0, x1, ...}.
func Format(xs []int) string {
	return intfmt.Slice(xs)
}

// FormatRange returns the n elements of xs starting at j formatted as
// {xs[j], ..., xs[j+n-1]}. The window is clipped to the bounds of xs.
func FormatRange(xs []int, j, n int) string {
	return intfmt.Range(xs, j, n)
}
