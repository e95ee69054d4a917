package arena

import "sync"

// SafeArena is a mutex-protected wrapper around Arena for concurrent access.
// All operations are serialized, including reads, since region state and the
// frontier are updated with plain read-modify-write sequences.
type SafeArena struct {
	mu sync.Mutex
	a  *Arena
}

// NewSafeArena creates a new thread-safe arena configured by opts.
func NewSafeArena(opts ...Option) *SafeArena {
	return &SafeArena{a: NewArena(opts...)}
}

// Reserve thread-safely claims a region of capacity elements.
func (s *SafeArena) Reserve(capacity Word) (Handle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Reserve(capacity)
}

// ReserveZeroed thread-safely claims a region and clears all of its slots.
func (s *SafeArena) ReserveZeroed(capacity Word) (Handle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.ReserveZeroed(capacity)
}

// Create is identical to Reserve - provided for API consistency.
func (s *SafeArena) Create(capacity Word) (Handle, error) {
	return s.Reserve(capacity)
}

// CreateDefault thread-safely claims a region of DefaultCapacity elements.
func (s *SafeArena) CreateDefault() (Handle, error) {
	return s.Reserve(DefaultCapacity)
}

// Push thread-safely appends v with the checked guards.
func (s *SafeArena) Push(h Handle, v Word) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Push(h, v)
}

// Pop thread-safely removes the last element.
func (s *SafeArena) Pop(h Handle) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Pop(h)
}

// PushAt thread-safely appends v checking only the collision sentinel.
func (s *SafeArena) PushAt(h Handle, v Word) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.PushAt(h, v)
}

// PushUnchecked thread-safely appends v without guards. The lock protects
// the arena's bookkeeping, not the memory the push may corrupt.
func (s *SafeArena) PushUnchecked(h Handle, v Word) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.PushUnchecked(h, v)
}

// PopUnchecked thread-safely removes the last element without guards.
func (s *SafeArena) PopUnchecked(h Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.PopUnchecked(h)
}

// Len thread-safely returns the region length.
func (s *SafeArena) Len(h Handle) Word {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Len(h)
}

// At thread-safely returns the raw content of element slot i.
func (s *SafeArena) At(h Handle, i Word) Word {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.At(h, i)
}

// ToArray thread-safely copies the live elements of the region.
func (s *SafeArena) ToArray(h Handle) []Word {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.ToArray(h)
}

// Frontier thread-safely returns the address of the first unclaimed slot.
func (s *SafeArena) Frontier() Word {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Frontier()
}

// Reset thread-safely zeroes memory and rewinds the frontier.
func (s *SafeArena) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Reset()
}

// Release thread-safely drops the memory and makes the arena unusable.
func (s *SafeArena) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Release()
}

// Metrics thread-safely returns a snapshot of arena statistics.
func (s *SafeArena) Metrics() ArenaMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Metrics()
}
