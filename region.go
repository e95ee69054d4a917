package arena

import (
	"iter"

	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
)

// Push appends v to the region at h.
//
// The landing slot is h+Len(h)+1. The push is rejected with
// ErrCapacityExceeded, leaving the region untouched, when
//   - h is managed and the region is full,
//   - h is unmanaged and the landing slot is at or past the frontier, or
//   - the landing slot is not zero, which means another region wrote there.
func (a *Arena) Push(h Handle, v Word) error {
	a.panicIfReleased()

	l := a.memory.Load(h.slot(0))
	landing := h.slot(l + 1)
	if capacity, managed := a.capacityOf(h); managed {
		if l >= capacity {
			return a.rejectPush(h, l, "region full")
		}
	} else if landing <= Word(h) || landing >= a.frontier {
		return a.rejectPush(h, l, "past frontier")
	}
	if a.memory.Load(landing) != 0 {
		return a.rejectPush(h, l, "slot in use")
	}

	a.memory.Store(landing, v)
	a.memory.Store(h.slot(0), l+1)
	return nil
}

func (a *Arena) rejectPush(h Handle, l Word, reason string) error {
	level.Debug(a.logger).Log("msg", "push rejected", "handle", Word(h), "length", l, "reason", reason, "frontier", a.frontier)
	return errors.Wrapf(ErrCapacityExceeded, "push to %d at length %d: %s", Word(h), l, reason)
}

// Pop removes the last element of the region at h and clears its slot.
func (a *Arena) Pop(h Handle) error {
	a.panicIfReleased()

	l := a.memory.Load(h.slot(0))
	if l == 0 {
		level.Debug(a.logger).Log("msg", "pop rejected", "handle", Word(h))
		return errors.Wrapf(ErrEmptyRegion, "pop from %d", Word(h))
	}

	// Push relies on vacated slots reading zero.
	a.memory.Store(h.slot(l), 0)
	a.memory.Store(h.slot(0), l-1)
	return nil
}

// Len returns the length word of the region at h.
func (a *Arena) Len(h Handle) Word {
	a.panicIfReleased()
	return a.memory.Load(h.slot(0))
}

// At returns the raw content of element slot i. There is no bound check:
// indexes past the length read whatever the slot holds.
func (a *Arena) At(h Handle, i Word) Word {
	a.panicIfReleased()
	return a.memory.Load(h.slot(i + 1))
}

// ToArray copies the live elements of the region into a new slice.
// A length corrupted by the unchecked tier can make the copy arbitrarily large.
func (a *Arena) ToArray(h Handle) []Word {
	a.panicIfReleased()

	l := a.memory.Load(h.slot(0))
	out := make([]Word, l)
	for i := range out {
		out[i] = a.memory.Load(h.slot(Word(i) + 1))
	}
	return out
}

// Values iterates over the live elements of the region. The length is read
// once when iteration starts.
func (a *Arena) Values(h Handle) iter.Seq2[int, Word] {
	return func(yield func(int, Word) bool) {
		a.panicIfReleased()
		l := a.memory.Load(h.slot(0))
		for i := Word(0); i < l; i++ {
			if !yield(int(i), a.memory.Load(h.slot(i+1))) {
				return
			}
		}
	}
}
