// SPDX-License-Identifier: MIT

// Package scratch supplies working buffers to the alignment engines.
//
// The LAP solver needs five dim-sized integer buffers per call. Instead of a
// process-wide allocator hook, callers pass an Allocator through the solver
// options:
//
//   - Heap: plain make(); the default.
//   - Pool: reuses buffers through sync.Pool; safe for concurrent solves.
//   - Limited: fails with ErrAllocationFailure once a live-element budget
//     would be exceeded; lets hosts cap memory and tests exercise the
//     failure path.
//
// Every buffer obtained from an Allocator must be handed back with Release;
// Take does this bookkeeping for a group of buffers.
package scratch

import (
	"errors"
	"fmt"
	"sync"
)

// ErrAllocationFailure is returned when an Allocator cannot supply a buffer.
var ErrAllocationFailure = errors.New("scratch: allocation failure")

// Allocator hands out zeroed integer buffers of exactly n elements.
type Allocator interface {
	// Ints returns a zeroed []int of length n, or ErrAllocationFailure.
	Ints(n int) ([]int, error)
	// Release returns a buffer obtained from Ints. Releasing nil is a no-op.
	Release(buf []int)
}

type heap struct{}

func (heap) Ints(n int) ([]int, error) {
	if n < 0 {
		return nil, fmt.Errorf("scratch: Ints(%d): %w", n, ErrAllocationFailure)
	}

	return make([]int, n), nil
}

func (heap) Release([]int) {}

// Heap allocates with make and lets the garbage collector reclaim buffers.
var Heap Allocator = heap{}

// OrHeap returns a, or Heap when a is nil.
func OrHeap(a Allocator) Allocator {
	if a == nil {
		return Heap
	}

	return a
}

// Take obtains one buffer per size from a. On failure every buffer already
// obtained is released before the error is returned. On success the returned
// release func hands all buffers back; it is safe to call once.
func Take(a Allocator, sizes ...int) ([][]int, func(), error) {
	a = OrHeap(a)
	bufs := make([][]int, 0, len(sizes))
	release := func() {
		for _, b := range bufs {
			a.Release(b)
		}
		bufs = bufs[:0]
	}
	for _, n := range sizes {
		b, err := a.Ints(n)
		if err != nil {
			release()
			return nil, func() {}, err
		}
		bufs = append(bufs, b)
	}
	out := append([][]int(nil), bufs...)

	return out, release, nil
}

// Limited enforces a budget on the number of live (not yet released) elements.
type Limited struct {
	mu   sync.Mutex
	max  int
	live int
}

// NewLimited returns an allocator that never holds more than max live elements.
func NewLimited(max int) *Limited { return &Limited{max: max} }

// Ints returns a buffer or ErrAllocationFailure when the budget is exhausted.
func (l *Limited) Ints(n int) ([]int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if n < 0 || l.live+n > l.max {
		return nil, fmt.Errorf("scratch: Ints(%d) with %d of %d live: %w", n, l.live, l.max, ErrAllocationFailure)
	}
	l.live += n

	return make([]int, n), nil
}

// Release credits len(buf) elements back to the budget.
func (l *Limited) Release(buf []int) {
	if buf == nil {
		return
	}
	l.mu.Lock()
	l.live -= len(buf)
	l.mu.Unlock()
}

// Live reports the number of elements currently handed out.
func (l *Limited) Live() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.live
}

// Pool recycles buffers through a sync.Pool.
type Pool struct {
	p sync.Pool
}

// NewPool returns an empty buffer pool.
func NewPool() *Pool { return &Pool{} }

// Ints returns a zeroed buffer of length n, reusing a pooled one when large enough.
func (p *Pool) Ints(n int) ([]int, error) {
	if n < 0 {
		return nil, fmt.Errorf("scratch: Ints(%d): %w", n, ErrAllocationFailure)
	}
	if v, ok := p.p.Get().(*[]int); ok && cap(*v) >= n {
		buf := (*v)[:n]
		clear(buf)
		return buf, nil
	}

	return make([]int, n), nil
}

// Release puts buf back into the pool.
func (p *Pool) Release(buf []int) {
	if buf == nil {
		return
	}
	p.p.Put(&buf)
}
