// Package arena implements growable word regions on top of a bump-pointer
// memory arena.
// Typical usage: reserve a region once, then push and pop words through its
// handle. Space is reclaimed only by resetting the whole arena.
package arena

import (
	"slices"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

const (
	// DefaultCapacity is the element capacity used by CreateDefault.
	DefaultCapacity Word = 256
	// DefaultCeiling is the ceiling of an arena over unbounded memory (1 Mi words).
	DefaultCeiling Word = 1 << 20
)

// arenaOptions holds configuration settings for an Arena.
type arenaOptions struct {
	base       Word
	ceiling    Word
	ceilingSet bool
	memory     Memory
	logger     log.Logger
}

// Option configures an Arena.
type Option func(*arenaOptions)

// WithBase sets the address of the first reservation.
func WithBase(base Word) Option {
	return func(o *arenaOptions) {
		o.base = base
	}
}

// WithCeiling sets the exclusive upper address bound for reservations.
// It is clamped to the limit of the backing memory.
func WithCeiling(ceiling Word) Option {
	return func(o *arenaOptions) {
		o.ceiling = ceiling
		o.ceilingSet = true
	}
}

// WithMemory sets the backing store. Default: a fresh PagedMemory.
func WithMemory(memory Memory) Option {
	return func(o *arenaOptions) {
		o.memory = memory
	}
}

// WithLogger sets the logger used to report rejected operations.
func WithLogger(logger log.Logger) Option {
	return func(o *arenaOptions) {
		o.logger = logger
	}
}

// Arena hands out regions from a monotonically advancing frontier.
// Not goroutine-safe. Use SafeArena for concurrent access.
type Arena struct {
	memory   Memory
	logger   log.Logger
	base     Word
	frontier Word
	ceiling  Word
	regions  []Word // starts of managed regions, ascending
}

// NewArena creates an Arena. Without WithCeiling the ceiling is the limit of
// bounded memory, or DefaultCeiling for unbounded memory.
func NewArena(opts ...Option) *Arena {
	var o arenaOptions
	for _, op := range opts {
		op(&o)
	}
	if o.memory == nil {
		o.memory = NewPagedMemory()
	}
	if o.logger == nil {
		o.logger = log.NewNopLogger()
	}

	limit := o.memory.Limit()
	switch {
	case o.ceilingSet:
		o.ceiling = min(o.ceiling, limit)
	case limit == MaxWord:
		o.ceiling = DefaultCeiling
	default:
		o.ceiling = limit
	}
	if o.base > o.ceiling {
		panic("arena: base beyond ceiling")
	}

	return &Arena{
		memory:   o.memory,
		logger:   o.logger,
		base:     o.base,
		frontier: o.base,
		ceiling:  o.ceiling,
	}
}

// Frontier returns the address of the first unclaimed slot.
func (a *Arena) Frontier() Word {
	return a.frontier
}

// Base returns the address the frontier starts from.
func (a *Arena) Base() Word {
	return a.base
}

// Ceiling returns the exclusive upper bound for reservations.
func (a *Arena) Ceiling() Word {
	return a.ceiling
}

// Memory returns the backing store.
func (a *Arena) Memory() Memory {
	return a.memory
}

// Capacity returns the element capacity of a managed region. The second
// result is false for unmanaged handles.
func (a *Arena) Capacity(h Handle) (Word, bool) {
	a.panicIfReleased()
	return a.capacityOf(h)
}

func (a *Arena) capacityOf(h Handle) (Word, bool) {
	i, ok := slices.BinarySearch(a.regions, Word(h))
	if !ok {
		return 0, false
	}
	end := a.frontier
	if i+1 < len(a.regions) {
		end = a.regions[i+1]
	}
	return end - Word(h) - 1, true
}

// Reset zeroes the backing memory and rewinds the frontier to the base.
// Every handle issued so far becomes invalid.
func (a *Arena) Reset() {
	a.panicIfReleased()
	level.Debug(a.logger).Log("msg", "resetting arena", "frontier", a.frontier, "regions", len(a.regions))
	a.memory.Clear()
	a.frontier = a.base
	a.regions = a.regions[:0]
}

// Release drops the backing memory and makes the arena unusable.
// Any subsequent operations will panic.
func (a *Arena) Release() {
	a.memory = nil
	a.regions = nil
}

// panicIfReleased panics if the arena has been released.
func (a *Arena) panicIfReleased() {
	if a.memory == nil {
		panic("arena: use after Release()")
	}
}
