// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package intsort

import "cloudeng.io/intsort/container/heap"

// Heap sorts xs[0:n] in place by pushing every element onto a min-heap
// and then popping them back into xs in increasing order.
func Heap(xs []int, n int, opts ...Option) error {
	o := newOptions(opts)
	if err := validate(xs, n, o); err != nil {
		return err
	}
	hopts := []heap.Option{heap.WithCapacity(n), heap.WithSliceCap(n)}
	if o.stats != nil {
		*o.stats = Stats{}
		hopts = append(hopts, heap.WithSwapCallback(func(_, _ int) {
			o.stats.swapped()
		}))
	}
	h := heap.NewMin(hopts...)
	for _, x := range xs[:n] {
		h.Push(x)
		o.stats.pushed(h.Len())
	}
	for i := range n {
		xs[i] = h.Pop()
		o.stats.popped()
	}
	return nil
}
