// Package arena implements growable word regions on a bump-pointer memory arena.
//
// # Overview
//
// The arena is a linear, word-addressable store with a frontier that only
// moves forward. Each reservation claims one length slot followed by a fixed
// number of element slots. It is meant for environments where allocating
// resizable collections is expensive:
//
//   - Virtual-machine interpreters and gas-metered execution
//   - Embedded arenas with a hard address ceiling
//   - Append-only keyed stores over a flat address space
//
// # Basic Usage
//
//	a := arena.NewArena()      // Paged memory, default ceiling
//	h, err := a.Create(10)     // Region for up to 10 words
//	if err != nil { ... }      // arena.ErrArenaExhausted
//
//	_ = a.Push(h, 42)          // arena.ErrCapacityExceeded when full
//	v := a.At(h, 0)            // 42
//	words := a.ToArray(h)      // Detached copy
//	_ = a.Pop(h)               // arena.ErrEmptyRegion when empty
//
//	a.Reset()                  // Reclaim everything at once
//
// # Memory Layout
//
// A region with handle h and capacity c spans slots h..h+c. Slot h holds the
// length L, slots h+1..h+L hold the elements in insertion order. Popped slots
// are cleared to zero, and a checked push refuses to land on a non-zero slot,
// which catches collisions with neighbouring regions.
//
// # Checked and Unchecked Operations
//
// Push and Pop are checked: a failed check leaves the region unchanged.
// PushAt checks only the zero sentinel and works on any address, including
// handles made with RawHandle or KeyedHandle. PushUnchecked and PopUnchecked
// check nothing and will overwrite neighbouring regions when misused.
//
// # Thread Safety
//
// The basic Arena type is not thread-safe. For concurrent access, use SafeArena:
//
//	s := arena.NewSafeArena(arena.WithCeiling(1 << 16))
//	h, _ := s.CreateDefault()
//	_ = s.Push(h, 7)
//
// # Metrics and Monitoring
//
//	fmt.Println(a.Metrics())
//	prometheus.MustRegister(arena.NewCollector(s, "vm"))
package arena
