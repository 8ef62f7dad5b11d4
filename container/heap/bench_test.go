// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap_test

import (
	stdheap "container/heap"
	"sort"
	"testing"

	"cloudeng.io/intsort/container/heap"
)

type intSlice struct{ sort.IntSlice }

func (h *intSlice) Push(v any) {
	h.IntSlice = append(h.IntSlice, v.(int))
}

func (h *intSlice) Pop() (v any) {
	n := len(h.IntSlice)
	v = h.IntSlice[n-1]
	h.IntSlice = h.IntSlice[:n-1]
	return
}

const benchSize = 10000

func BenchmarkMin(b *testing.B) {
	in := uniformRand(1, benchSize, 1<<20)
	b.ResetTimer()
	for range b.N {
		h := heap.NewMin(heap.WithSliceCap(benchSize))
		for _, k := range in {
			h.Push(k)
		}
		for !h.IsEmpty() {
			h.Pop()
		}
	}
}

func BenchmarkStdlib(b *testing.B) {
	in := uniformRand(1, benchSize, 1<<20)
	b.ResetTimer()
	for range b.N {
		h := &intSlice{IntSlice: make([]int, 0, benchSize)}
		for _, k := range in {
			stdheap.Push(h, k)
		}
		for h.Len() > 0 {
			stdheap.Pop(h)
		}
	}
}

func BenchmarkDup(b *testing.B) {
	h := heap.NewMin(heap.WithSliceCap(benchSize))
	for range b.N {
		for range benchSize {
			h.Push(0) // all elements are the same
		}
		for !h.IsEmpty() {
			h.Pop()
		}
	}
}
