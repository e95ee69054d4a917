package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// snapshot copies slots [from, to) of the backing memory.
func snapshot(a *Arena, from, to Word) []Word {
	out := make([]Word, 0, to-from)
	for addr := from; addr < to; addr++ {
		out = append(out, a.Memory().Load(addr))
	}
	return out
}

func TestPushPopRoundTrip(t *testing.T) {
	for _, c := range []Word{1, 2, 4, 17, 256} {
		for _, n := range []Word{0, 1, c / 2, c} {
			a := NewArena()

			before, err := a.Create(3)
			require.NoError(t, err)
			require.NoError(t, a.Push(before, 0xaa))
			h, err := a.Create(c)
			require.NoError(t, err)
			after, err := a.Create(3)
			require.NoError(t, err)
			require.NoError(t, a.Push(after, 0xbb))

			head := snapshot(a, 0, h.Addr())
			tail := snapshot(a, after.Addr(), a.Frontier())

			for i := Word(0); i < n; i++ {
				require.NoError(t, a.Push(h, (i+1)*7), "capacity %d push %d", c, i)
			}
			require.Equal(t, n, a.Len(h))
			for i := Word(0); i < n; i++ {
				assert.Equal(t, (i+1)*7, a.At(h, i))
			}

			for i := Word(0); i < n; i++ {
				require.NoError(t, a.Pop(h))
			}
			assert.Equal(t, Word(0), a.Len(h))
			for i := Word(0); i < c; i++ {
				assert.Equal(t, Word(0), a.At(h, i), "popped slots are cleared")
			}

			assert.Equal(t, head, snapshot(a, 0, h.Addr()))
			assert.Equal(t, tail, snapshot(a, after.Addr(), a.Frontier()))
		}
	}
}

func TestPushCapacityExceeded(t *testing.T) {
	tests := []struct {
		name      string
		neighbour bool
	}{
		{"last region", false},
		{"followed by empty region", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewArena()
			h, err := a.Create(4)
			require.NoError(t, err)
			var next Handle
			if tt.neighbour {
				next, err = a.Create(4)
				require.NoError(t, err)
			}

			for i := Word(1); i <= 4; i++ {
				require.NoError(t, a.Push(h, i))
			}
			err = a.Push(h, 5)
			require.ErrorIs(t, err, ErrCapacityExceeded)
			assert.Equal(t, Word(4), a.Len(h))
			assert.Equal(t, []Word{1, 2, 3, 4}, a.ToArray(h))
			if tt.neighbour {
				assert.Equal(t, Word(0), a.Len(next))
			}
		})
	}
}

func TestPushZeroCapacity(t *testing.T) {
	a := NewArena()
	h, err := a.Create(0)
	require.NoError(t, err)
	require.ErrorIs(t, a.Push(h, 1), ErrCapacityExceeded)
	assert.Equal(t, Word(0), a.Len(h))
}

func TestPopEmpty(t *testing.T) {
	a := NewArena()
	h, err := a.Create(4)
	require.NoError(t, err)
	frontier := a.Frontier()

	err = a.Pop(h)
	require.ErrorIs(t, err, ErrEmptyRegion)
	assert.Equal(t, Word(0), a.Len(h))
	assert.Equal(t, frontier, a.Frontier())

	require.NoError(t, a.Push(h, 9))
	require.NoError(t, a.Pop(h))
	require.ErrorIs(t, a.Pop(h), ErrEmptyRegion)
}

func TestPushCollision(t *testing.T) {
	a := NewArena()
	h, err := a.Create(4)
	require.NoError(t, err)

	// Something else wrote into the region's second element slot.
	a.Memory().Store(h.Addr()+2, 77)

	require.NoError(t, a.Push(h, 1))
	err = a.Push(h, 2)
	require.ErrorIs(t, err, ErrCapacityExceeded)
	assert.Equal(t, Word(1), a.Len(h))
	assert.Equal(t, Word(77), a.At(h, 1))
}

func TestPushUnmanagedHandle(t *testing.T) {
	a := NewArena()
	_, err := a.Create(10)
	require.NoError(t, err)
	require.Equal(t, Word(11), a.Frontier())

	// Landing slots 6..10 lie before the frontier, 11 does not.
	h := RawHandle(5)
	for i := Word(1); i <= 5; i++ {
		require.NoError(t, a.Push(h, i))
	}
	require.ErrorIs(t, a.Push(h, 6), ErrCapacityExceeded)
	assert.Equal(t, Word(5), a.Len(h))

	beyond := RawHandle(100)
	require.ErrorIs(t, a.Push(beyond, 1), ErrCapacityExceeded)
	assert.Equal(t, Word(0), a.Len(beyond))
}

func TestPushGuardComparesAddresses(t *testing.T) {
	a := NewArena()
	_, err := a.Create(10)
	require.NoError(t, err)

	// A small value past the frontier does not make the slot reachable.
	a.Memory().Store(12, 3)
	require.ErrorIs(t, a.Push(RawHandle(11), 1), ErrCapacityExceeded)

	// A large value before the frontier is a collision, not a frontier check.
	a.Memory().Store(4, 1<<40)
	require.ErrorIs(t, a.Push(RawHandle(3), 1), ErrCapacityExceeded)

	require.NoError(t, a.Push(RawHandle(6), 1))
}

func TestPushWrappedHandle(t *testing.T) {
	a := NewArena()
	_, err := a.Create(10)
	require.NoError(t, err)

	h := RawHandle(MaxWord)
	require.ErrorIs(t, a.Push(h, 1), ErrCapacityExceeded)
	assert.Equal(t, Word(0), a.Len(h))
	assert.Equal(t, Word(0), a.Memory().Load(0))
}

func TestPushZeroValue(t *testing.T) {
	a := NewArena()
	h, err := a.Create(4)
	require.NoError(t, err)

	require.NoError(t, a.Push(h, 0))
	require.NoError(t, a.Push(h, 5))
	assert.Equal(t, []Word{0, 5}, a.ToArray(h))
}

func TestAtReadsRawContent(t *testing.T) {
	a := NewArena()
	h1, err := a.Create(2)
	require.NoError(t, err)
	h2, err := a.Create(2)
	require.NoError(t, err)
	require.NoError(t, a.Push(h2, 9))

	// Index 2 of h1 is the length slot of h2, index 3 its first element.
	assert.Equal(t, Word(1), a.At(h1, 2))
	assert.Equal(t, Word(9), a.At(h1, 3))
	assert.Equal(t, Word(0), a.At(h1, 1000))
}

func TestToArrayDetached(t *testing.T) {
	a := NewArena()
	h, err := a.Create(8)
	require.NoError(t, err)
	for _, v := range []Word{3, 1, 4, 1, 5} {
		require.NoError(t, a.Push(h, v))
	}

	got := a.ToArray(h)
	require.Len(t, got, int(a.Len(h)))
	for i, v := range got {
		assert.Equal(t, a.At(h, Word(i)), v)
	}

	require.NoError(t, a.Pop(h))
	require.NoError(t, a.Push(h, 9))
	require.NoError(t, a.Push(h, 2))
	assert.Equal(t, []Word{3, 1, 4, 1, 5}, got)
	assert.Equal(t, []Word{3, 1, 4, 1, 9, 2}, a.ToArray(h))
}

func TestValues(t *testing.T) {
	a := NewArena()
	h, err := a.Create(8)
	require.NoError(t, err)
	for _, v := range []Word{10, 20, 30} {
		require.NoError(t, a.Push(h, v))
	}

	var got []Word
	for i, v := range a.Values(h) {
		assert.Equal(t, a.At(h, Word(i)), v)
		got = append(got, v)
	}
	assert.Equal(t, []Word{10, 20, 30}, got)

	got = got[:0]
	for _, v := range a.Values(h) {
		if v == 20 {
			break
		}
		got = append(got, v)
	}
	assert.Equal(t, []Word{10}, got)
}
