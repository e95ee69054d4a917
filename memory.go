package arena

import "github.com/dolthub/swiss"

// Memory is the word-addressable backing store of an Arena. It is supplied by
// the host; slots that were never written must read as zero.
type Memory interface {
	// Load returns the word at addr.
	Load(addr Word) Word
	// Store writes v at addr.
	Store(addr, v Word)
	// Clear zeroes every slot.
	Clear()
	// Limit returns the exclusive upper bound of addressable slots.
	Limit() Word
}

const (
	pageShift = 9
	pageWords = 1 << pageShift
	pageMask  = pageWords - 1
)

type page [pageWords]Word

// PagedMemory is a sparse Memory spanning the whole 64-bit address space.
// Pages materialize on the first non-zero store into them, so unmanaged
// handles can live at arbitrary addresses without reserving anything.
type PagedMemory struct {
	pages *swiss.Map[Word, *page]
}

// NewPagedMemory returns an empty PagedMemory.
func NewPagedMemory() *PagedMemory {
	return &PagedMemory{pages: swiss.NewMap[Word, *page](16)}
}

func (m *PagedMemory) Load(addr Word) Word {
	p, ok := m.pages.Get(addr >> pageShift)
	if !ok {
		return 0
	}
	return p[addr&pageMask]
}

func (m *PagedMemory) Store(addr, v Word) {
	key := addr >> pageShift
	p, ok := m.pages.Get(key)
	if !ok {
		if v == 0 {
			return
		}
		p = new(page)
		m.pages.Put(key, p)
	}
	p[addr&pageMask] = v
}

func (m *PagedMemory) Clear() {
	m.pages.Clear()
}

func (m *PagedMemory) Limit() Word {
	return MaxWord
}

// Pages returns the number of materialized pages.
func (m *PagedMemory) Pages() int {
	return m.pages.Count()
}

// SliceMemory is a linear Memory over a host-provided slice. Loads past the
// end read zero and stores past the end are discarded.
type SliceMemory struct {
	words []Word
}

// NewSliceMemory wraps words. The slice should be zeroed; stale content is
// reported by the checked tier as a collision.
func NewSliceMemory(words []Word) *SliceMemory {
	return &SliceMemory{words: words}
}

func (m *SliceMemory) Load(addr Word) Word {
	if addr >= Word(len(m.words)) {
		return 0
	}
	return m.words[addr]
}

func (m *SliceMemory) Store(addr, v Word) {
	if addr >= Word(len(m.words)) {
		return
	}
	m.words[addr] = v
}

func (m *SliceMemory) Clear() {
	clear(m.words)
}

func (m *SliceMemory) Limit() Word {
	return Word(len(m.words))
}
