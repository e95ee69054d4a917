package arena

import (
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
)

// PushAt appends v to the region at h checking only that the landing slot is
// zero. Neither the frontier nor any recorded capacity is consulted, so h may
// be any address, which turns regions into an append-only keyed store as long
// as distinct keys' slot ranges never overlap.
func (a *Arena) PushAt(h Handle, v Word) error {
	a.panicIfReleased()

	l := a.memory.Load(h.slot(0))
	landing := h.slot(l + 1)
	if a.memory.Load(landing) != 0 {
		level.Debug(a.logger).Log("msg", "push rejected", "handle", Word(h), "length", l, "reason", "slot in use")
		return errors.Wrapf(ErrCapacityExceeded, "push to %d at length %d: slot in use", Word(h), l)
	}

	a.memory.Store(landing, v)
	a.memory.Store(h.slot(0), l+1)
	return nil
}

// PushUnchecked appends v to the region at h without any precondition.
//
// It writes wherever handle arithmetic points, including into neighbouring
// regions. Callers take full responsibility for the memory it touches.
func (a *Arena) PushUnchecked(h Handle, v Word) {
	a.panicIfReleased()
	l := a.memory.Load(h.slot(0))
	a.memory.Store(h.slot(l+1), v)
	a.memory.Store(h.slot(0), l+1)
}

// PopUnchecked removes the last element of the region at h without any
// precondition. Popping an empty region clears its length slot and then
// wraps the length to MaxWord.
func (a *Arena) PopUnchecked(h Handle) {
	a.panicIfReleased()
	l := a.memory.Load(h.slot(0))
	a.memory.Store(h.slot(l), 0)
	a.memory.Store(h.slot(0), l-1)
}
