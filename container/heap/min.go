// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package heap provides an array-backed binary min-heap of ints.
//
// The heap is a left-complete binary tree laid out by index: for index
// i the parent is at (i+1)/2-1 and the children are at (i+1)*2-1 and
// (i+1)*2. Every parent key is less than or equal to its children's keys.
package heap

import (
	"fmt"

	"cloudeng.io/errors"
	"cloudeng.io/intsort/internal/intfmt"
	"cloudeng.io/intsort/internal/invariants"
)

var (
	// ErrCapacityExceeded is the panic value (wrapped) when a key is pushed
	// onto a heap that is already at its capacity.
	ErrCapacityExceeded = errors.New("heap: capacity exceeded")
	// ErrEmpty is the panic value (wrapped) when a key is requested from
	// an empty heap.
	ErrEmpty = errors.New("heap: empty")
	// ErrHeapOrder is returned when the heap order invariant does not hold.
	ErrHeapOrder = errors.New("heap: heap order violated")
)

// Min represents a min-heap of ints. The zero value is an empty,
// unbounded heap ready for use.
type Min struct {
	keys     []int
	capacity int
	callback func(i, j int)
}

// NewMin creates a new instance of Min.
func NewMin(opts ...Option) *Min {
	var o options
	for _, fn := range opts {
		fn(&o)
	}
	h := &Min{
		capacity: o.capacity,
		callback: o.callback,
	}
	if o.keys != nil {
		if h.capacity > 0 && len(o.keys) > h.capacity {
			panic(fmt.Errorf("%w: %v keys supplied for a heap of capacity %v", ErrCapacityExceeded, len(o.keys), h.capacity))
		}
		h.keys = o.keys
		h.heapify()
		h.check()
		return h
	}
	h.keys = make([]int, 0, o.sliceCap)
	return h
}

func (h *Min) heapify() {
	for i := len(h.keys)/2 - 1; i >= 0; i-- {
		h.down(i)
	}
}

// Len returns the number of keys in the heap.
func (h *Min) Len() int {
	return len(h.keys)
}

// Cap returns the capacity of the heap, 0 if it is unbounded.
func (h *Min) Cap() int {
	return h.capacity
}

// IsEmpty returns true if the heap contains no keys.
func (h *Min) IsEmpty() bool {
	return len(h.keys) == 0
}

// Push pushes x onto the heap. It panics with an error wrapping
// ErrCapacityExceeded if the heap is bounded and full.
func (h *Min) Push(x int) {
	if h.capacity > 0 && len(h.keys) >= h.capacity {
		panic(fmt.Errorf("%w: push %v onto a full heap of capacity %v", ErrCapacityExceeded, x, h.capacity))
	}
	h.keys = append(h.keys, x)
	h.up(len(h.keys) - 1)
	h.check()
}

// Pop removes and returns the smallest key in the heap. It panics with
// an error wrapping ErrEmpty if the heap is empty.
func (h *Min) Pop() int {
	n := len(h.keys) - 1
	if n < 0 {
		panic(fmt.Errorf("%w: pop", ErrEmpty))
	}
	x := h.keys[0]
	h.keys[0] = h.keys[n]
	h.keys = h.keys[:n]
	h.down(0)
	h.check()
	return x
}

// Peek returns the smallest key in the heap without removing it. It panics
// with an error wrapping ErrEmpty if the heap is empty.
func (h *Min) Peek() int {
	if len(h.keys) == 0 {
		panic(fmt.Errorf("%w: peek", ErrEmpty))
	}
	return h.keys[0]
}

// Reset empties the heap and releases its storage.
func (h *Min) Reset() {
	h.keys = nil
}

// String returns the keys in their heap order, ie. breadth-first, as
// {k0, k1, ...}.
func (h *Min) String() string {
	return intfmt.Slice(h.keys)
}

func parent(i int) int { return (i+1)/2 - 1 }
func left(i int) int   { return (i+1)*2 - 1 }
func right(i int) int  { return (i + 1) * 2 }

func (h *Min) swap(i, j int) {
	h.keys[i], h.keys[j] = h.keys[j], h.keys[i]
	if h.callback != nil {
		h.callback(i, j)
	}
}

func (h *Min) up(i int) {
	for i > 0 {
		p := parent(i)
		if h.keys[i] >= h.keys[p] {
			break
		}
		h.swap(i, p)
		i = p
	}
}

func (h *Min) down(i0 int) bool {
	n := len(h.keys)
	i := i0
	for {
		l := left(i)
		if l >= n || l < 0 { // l < 0 after int overflow
			break
		}
		c := l
		if r := right(i); r < n && h.keys[r] < h.keys[l] {
			c = r
		}
		if h.keys[c] >= h.keys[i] {
			break
		}
		h.swap(i, c)
		i = c
	}
	return i > i0
}

func (h *Min) check() {
	if !invariants.Enabled {
		return
	}
	if err := h.validate(); err != nil {
		panic(err)
	}
}

// validate scans every parent with at least one child.
func (h *Min) validate() error {
	n := len(h.keys)
	if h.capacity > 0 && n > h.capacity {
		return fmt.Errorf("%w: size %v > capacity %v", ErrCapacityExceeded, n, h.capacity)
	}
	for i := range n / 2 {
		for _, c := range []int{left(i), right(i)} {
			if c < n && h.keys[i] > h.keys[c] {
				return fmt.Errorf("%w: [%v] %v > [%v] %v", ErrHeapOrder, i, h.keys[i], c, h.keys[c])
			}
		}
	}
	return nil
}
