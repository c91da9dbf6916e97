// Package handles maps opaque integer handles to Go values.
//
// Values handed to foreign code cannot be passed as Go pointers, so they are
// kept in a Table and referred to by Handle. A handle carries the slot index
// in its low 32 bits and the slot's generation in its high 32 bits. A slot's
// generation changes whenever its value is removed, so stale and doubly
// released handles are detected instead of aliasing a newer value.
package handles

import (
	"fmt"
	"sync"
)

// Handle identifies a value in a Table. The zero Handle is never issued.
type Handle uint64

func makeHandle(index int, gen uint32) Handle {
	return Handle(uint64(gen)<<32 | uint64(index+1))
}

func (h Handle) index() int     { return int(uint32(h)) - 1 }
func (h Handle) gen() uint32    { return uint32(h >> 32) }
func (h Handle) String() string { return fmt.Sprintf("handle(%d@%d)", h.index(), h.gen()) }

type slot[T any] struct {
	gen   uint32
	used  bool
	value T
}

// Table holds values addressed by handles. It is safe for concurrent use.
type Table[T any] struct {
	mu    sync.RWMutex
	slots []slot[T]
	free  []int
	live  int
}

// NewTable creates an empty table.
func NewTable[T any]() *Table[T] {
	return &Table[T]{
		slots: make([]slot[T], 0, 16),
	}
}

// Insert stores value and returns its handle.
func (t *Table[T]) Insert(value T) Handle {
	t.mu.Lock()
	defer t.mu.Unlock()

	var i int
	if n := len(t.free); n > 0 {
		i = t.free[n-1]
		t.free = t.free[:n-1]
	} else {
		i = len(t.slots)
		t.slots = append(t.slots, slot[T]{gen: 1})
	}
	s := &t.slots[i]
	s.used = true
	s.value = value
	t.live++
	return makeHandle(i, s.gen)
}

// Get returns the value for h. ok is false for the zero handle, for handles
// never issued by t, and for handles whose value has been removed.
func (t *Table[T]) Get(h Handle) (value T, ok bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	s := t.lookup(h)
	if s == nil {
		return value, false
	}
	return s.value, true
}

// Remove deletes the value for h and returns it. ok is false if h does not
// refer to a live value, e.g. when it has been removed before.
func (t *Table[T]) Remove(h Handle) (value T, ok bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := t.lookup(h)
	if s == nil {
		return value, false
	}
	value = s.value
	var zero T
	s.value = zero
	s.used = false
	s.gen++
	if s.gen == 0 {
		s.gen = 1
	}
	t.free = append(t.free, h.index())
	t.live--
	return value, true
}

// Len returns the number of live values.
func (t *Table[T]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.live
}

func (t *Table[T]) lookup(h Handle) *slot[T] {
	i := h.index()
	if h == 0 || i < 0 || i >= len(t.slots) {
		return nil
	}
	s := &t.slots[i]
	if !s.used || s.gen != h.gen() {
		return nil
	}
	return s
}
