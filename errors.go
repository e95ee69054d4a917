package arena

import "github.com/pkg/errors"

var (
	// ErrArenaExhausted is returned when a reservation would cross the ceiling.
	ErrArenaExhausted = errors.New("arena: exhausted")
	// ErrCapacityExceeded is returned when a checked push detects an overrun
	// or a collision with a neighbouring region.
	ErrCapacityExceeded = errors.New("arena: region capacity exceeded")
	// ErrEmptyRegion is returned by a checked pop on an empty region.
	ErrEmptyRegion = errors.New("arena: region is empty")
)
