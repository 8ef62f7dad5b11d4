// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package intsort

import "cloudeng.io/intsort/container/worklist"

// Partition sorts xs[0:n] in place using a quicksort whose pending
// sub-ranges are kept on a work-list rather than the call stack. The
// first element of each range is used as its pivot.
func Partition(xs []int, n int, opts ...Option) error {
	o := newOptions(opts)
	if err := validate(xs, n, o); err != nil {
		return err
	}
	if o.stats != nil {
		*o.stats = Stats{}
	}
	if n <= 1 {
		return nil
	}
	wl := worklist.New()
	push := func(r worklist.Range) {
		wl.PushFront(r)
		o.stats.pushed(wl.Len())
	}
	push(worklist.Range{Start: 0, End: n - 1})
	for !wl.IsEmpty() {
		r := wl.PopFront()
		o.stats.popped()
		if r.Start < 0 || r.End-r.Start <= 0 {
			continue
		}
		m := partition(xs, r.Start, r.End, o.stats)
		o.stats.partitioned()
		push(worklist.Range{Start: m + 1, End: r.End})
		push(worklist.Range{Start: r.Start, End: m - 1})
	}
	return nil
}

// partition arranges xs[start:end+1] around the pivot xs[start] and returns
// the pivot's final index m. On return every element before m is <= the
// pivot and every element after m is > the pivot.
//
// The pivot is always held at one of the two cursors. While it is at lo,
// hi scans down looking for an element that belongs on the low side; once
// found the two are exchanged, which moves the pivot to hi, and lo starts
// scanning up for an element that belongs on the high side.
func partition(xs []int, start, end int, stats *Stats) int {
	lo, hi := start, end
	pivotAtLo := true
	for lo < hi {
		if pivotAtLo {
			if xs[lo] >= xs[hi] {
				xs[lo], xs[hi] = xs[hi], xs[lo]
				stats.swapped()
				lo++
				pivotAtLo = false
				continue
			}
			hi--
			continue
		}
		if xs[hi] < xs[lo] {
			xs[lo], xs[hi] = xs[hi], xs[lo]
			stats.swapped()
			hi--
			pivotAtLo = true
			continue
		}
		lo++
	}
	return lo
}
