// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

type options struct {
	sliceCap int
	capacity int
	keys     []int
	callback func(i, j int)
}

// Option represents the options that can be passed to NewMin.
type Option func(*options)

// WithSliceCap sets the initial capacity of the slice used to hold keys.
func WithSliceCap(n int) Option {
	return func(o *options) {
		o.sliceCap = n
	}
}

// WithCapacity bounds the number of keys that the heap may hold, a
// Push onto a full heap panics with ErrCapacityExceeded. A capacity of
// zero, the default, means the heap is unbounded.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

// WithData sets the initial data for the heap. The slice is used as the
// heap's backing store and is reordered in place.
func WithData(keys []int) Option {
	return func(o *options) {
		o.keys = keys
	}
}

// WithSwapCallback provides a callback that is called with the indices of
// every pair of keys exchanged by the heap.
func WithSwapCallback(fn func(i, j int)) Option {
	return func(o *options) {
		o.callback = fn
	}
}
