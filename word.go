package arena

// Word is the fixed-width machine word stored in every slot. Element values,
// lengths and addresses all share this type. Addresses count slots, not bytes.
type Word uint64

// MaxWord is the largest representable Word.
const MaxWord = ^Word(0)

// Handle identifies slot 0 of a region. A Handle carries no validity
// guarantee: it is managed when returned by Reserve and unmanaged when
// fabricated with RawHandle.
type Handle Word

// RawHandle turns an arbitrary address into a Handle. Regions addressed this
// way are unmanaged: no capacity is recorded for them and keeping them
// disjoint is up to the caller.
func RawHandle(addr Word) Handle {
	return Handle(addr)
}

// Addr returns the raw address of slot 0.
func (h Handle) Addr() Word {
	return Word(h)
}

// slot returns the address of the i-th slot of the region. Arithmetic wraps.
func (h Handle) slot(i Word) Word {
	return Word(h) + i
}
