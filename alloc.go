package arena

import (
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
)

// Reserve claims capacity+1 slots at the frontier and returns the new
// region's handle. Only the length slot is cleared; element slots are
// expected to be zero already, and stale content there is reported by Push
// as a collision. On failure the frontier is left unchanged.
func (a *Arena) Reserve(capacity Word) (Handle, error) {
	a.panicIfReleased()

	slots := capacity + 1
	end := a.frontier + slots
	if slots == 0 || end < a.frontier || end > a.ceiling {
		level.Warn(a.logger).Log("msg", "arena exhausted", "requested", capacity, "frontier", a.frontier, "ceiling", a.ceiling)
		return 0, errors.Wrapf(ErrArenaExhausted, "reserve %d slots at %d (ceiling %d)", slots, a.frontier, a.ceiling)
	}

	h := Handle(a.frontier)
	a.regions = append(a.regions, a.frontier)
	a.frontier = end
	a.memory.Store(h.slot(0), 0)
	return h, nil
}

// ReserveZeroed is like Reserve but clears every slot of the region.
// This is O(capacity) and only needed when the backing memory may hold
// stale data beyond the frontier.
func (a *Arena) ReserveZeroed(capacity Word) (Handle, error) {
	h, err := a.Reserve(capacity)
	if err != nil {
		return 0, err
	}
	for i := Word(1); i <= capacity; i++ {
		a.memory.Store(h.slot(i), 0)
	}
	return h, nil
}

// Create reserves a region able to hold capacity elements.
func (a *Arena) Create(capacity Word) (Handle, error) {
	return a.Reserve(capacity)
}

// CreateDefault reserves a region of DefaultCapacity elements.
func (a *Arena) CreateDefault() (Handle, error) {
	return a.Reserve(DefaultCapacity)
}
