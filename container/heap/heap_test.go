// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap_test

import (
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"testing"

	"cloudeng.io/intsort/container/heap"
)

func ExampleMin() {
	h := heap.NewMin()
	for _, k := range []int{5, 3, 8, 1} {
		h.Push(k)
	}
	fmt.Println(h)
	for !h.IsEmpty() {
		fmt.Printf("%v ", h.Pop())
	}
	fmt.Println()
	// Output:
	// {1, 3, 8, 5}
	// 1 3 5 8
}

func uniformRand(seed int64, n, limit int) []int {
	rnd := rand.New(rand.NewSource(seed)) // #nosec: G404
	r := make([]int, n)
	for i := range r {
		r[i] = rnd.Intn(limit) - limit/2
	}
	return r
}

func popAll(t *testing.T, h *heap.Min) []int {
	t.Helper()
	var out []int
	for !h.IsEmpty() {
		out = append(out, h.Pop())
		h.Verify(t)
	}
	return out
}

func TestPushPop(t *testing.T) {
	h := heap.NewMin()
	if !h.IsEmpty() {
		t.Errorf("new heap is not empty")
	}
	for _, k := range []int{5, 3, 8, 1} {
		h.Push(k)
		h.Verify(t)
	}
	if got, want := h.Len(), 4; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := h.Peek(), 1; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := popAll(t, h), []int{1, 3, 5, 8}; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := h.Len(), 0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	// The zero value is usable.
	var zh heap.Min
	zh.Push(2)
	zh.Push(-1)
	if got, want := popAll(t, &zh), []int{-1, 2}; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestRandom(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3, 7, 8, 9, 100, 1000} {
		for _, limit := range []int{2, 10, 1 << 20} {
			in := uniformRand(int64(n*limit), n, limit)
			h := heap.NewMin(heap.WithSliceCap(n))
			for _, k := range in {
				h.Push(k)
				h.Verify(t)
			}
			got := popAll(t, h)
			want := slices.Clone(in)
			slices.Sort(want)
			if !slices.Equal(got, want) {
				t.Errorf("n=%v, limit=%v: got %v, want %v", n, limit, got, want)
			}
		}
	}
}

func TestInterleaved(t *testing.T) {
	rnd := rand.New(rand.NewSource(0x1234)) // #nosec: G404
	h := heap.NewMin()
	var shadow []int
	for i := 0; i < 5000; i++ {
		if len(shadow) == 0 || rnd.Intn(3) > 0 {
			k := rnd.Intn(50)
			h.Push(k)
			shadow = append(shadow, k)
		} else {
			slices.Sort(shadow)
			if got, want := h.Pop(), shadow[0]; got != want {
				t.Fatalf("%v: got %v, want %v", i, got, want)
			}
			shadow = shadow[1:]
		}
		h.Verify(t)
		if got, want := h.Len(), len(shadow); got != want {
			t.Fatalf("%v: got %v, want %v", i, got, want)
		}
	}
}

func TestWithData(t *testing.T) {
	data := []int{9, 8, 7, 6, 5, 4, 3, 2, 1, 0, 4, 4}
	want := slices.Clone(data)
	slices.Sort(want)
	h := heap.NewMin(heap.WithData(data))
	h.Verify(t)
	if got, want := h.Len(), len(data); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got := popAll(t, h); !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSwapCallback(t *testing.T) {
	swaps := 0
	h := heap.NewMin(heap.WithSwapCallback(func(i, j int) {
		swaps++
	}))
	h.Push(3)
	h.Push(2)
	h.Push(1)
	if got, want := swaps, 2; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	// Sorted input never needs to bubble up.
	swaps = 0
	h = heap.NewMin(heap.WithSwapCallback(func(i, j int) {
		swaps++
	}))
	for i := range 10 {
		h.Push(i)
	}
	if got, want := swaps, 0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func expectPanic(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Errorf("expected a panic")
			return
		}
		err, ok := r.(error)
		if !ok {
			t.Errorf("panic value %v is not an error", r)
			return
		}
		if !errors.Is(err, target) {
			t.Errorf("got %v, want %v", err, target)
		}
	}()
	fn()
}

func TestCapacity(t *testing.T) {
	h := heap.NewMin(heap.WithCapacity(2))
	if got, want := h.Cap(), 2; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	h.Push(1)
	h.Push(2)
	expectPanic(t, heap.ErrCapacityExceeded, func() { h.Push(3) })
	if got, want := h.Len(), 2; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	h.Pop()
	h.Push(3)
	if got, want := popAll(t, h), []int{2, 3}; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	expectPanic(t, heap.ErrCapacityExceeded, func() {
		heap.NewMin(heap.WithCapacity(1), heap.WithData([]int{1, 2}))
	})
}

func TestEmpty(t *testing.T) {
	h := heap.NewMin()
	expectPanic(t, heap.ErrEmpty, func() { h.Pop() })
	expectPanic(t, heap.ErrEmpty, func() { h.Peek() })
	h.Push(1)
	h.Pop()
	expectPanic(t, heap.ErrEmpty, func() { h.Pop() })
}

func TestReset(t *testing.T) {
	h := heap.NewMin(heap.WithSliceCap(10))
	h.Push(1)
	h.Push(0)
	h.Reset()
	if !h.IsEmpty() {
		t.Errorf("heap should be empty after reset")
	}
	if got, want := len(h.Keys()), 0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := cap(h.Keys()), 0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	h.Push(4)
	if got, want := h.Pop(), 4; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDuplicates(t *testing.T) {
	h := heap.NewMin()
	for range 100 {
		h.Push(7)
	}
	h.Push(6)
	h.Push(8)
	h.Verify(t)
	out := popAll(t, h)
	if got, want := out[0], 6; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := out[len(out)-1], 8; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if !slices.IsSorted(out) {
		t.Errorf("not sorted: %v", out)
	}
}
