package engine

// Handle identifies an arena slot. The generation counter makes handles to
// freed slots stale rather than silently pointing at a reused entity.
type Handle struct {
	index int
	gen   uint32
}

type slot[T any] struct {
	value    T
	gen      uint32
	occupied bool
}

// Arena stores entities in stable slots. Removal frees a slot in place
// instead of shifting indices, so handles held across a pass stay valid
// and iteration order is deterministic (ascending slot index).
type Arena[T any] struct {
	slots []slot[T]
	free  []int
	count int
}

// Insert adds a value and returns its handle, reusing the lowest freed slot
func (a *Arena[T]) Insert(v T) Handle {
	var idx int
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		a.slots = append(a.slots, slot[T]{})
		idx = len(a.slots) - 1
	}
	s := &a.slots[idx]
	s.value = v
	s.gen++
	s.occupied = true
	a.count++
	return Handle{index: idx, gen: s.gen}
}

// Get returns a pointer to the value for a live handle
func (a *Arena[T]) Get(h Handle) (*T, bool) {
	if h.index < 0 || h.index >= len(a.slots) {
		return nil, false
	}
	s := &a.slots[h.index]
	if !s.occupied || s.gen != h.gen {
		return nil, false
	}
	return &s.value, true
}

// Remove frees the slot for a live handle. Removal is idempotent: exactly
// one call per handle succeeds, stale or repeated calls return false.
func (a *Arena[T]) Remove(h Handle) bool {
	if h.index < 0 || h.index >= len(a.slots) {
		return false
	}
	s := &a.slots[h.index]
	if !s.occupied || s.gen != h.gen {
		return false
	}
	var zero T
	s.value = zero
	s.occupied = false
	a.free = append(a.free, h.index)
	a.count--
	return true
}

// Live returns a snapshot of live handles in slot order. Iterating the
// snapshot is safe against removals made during the pass.
func (a *Arena[T]) Live() []Handle {
	out := make([]Handle, 0, a.count)
	for i := range a.slots {
		if a.slots[i].occupied {
			out = append(out, Handle{index: i, gen: a.slots[i].gen})
		}
	}
	return out
}

// Len returns the number of live entities
func (a *Arena[T]) Len() int {
	return a.count
}
