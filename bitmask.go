package clackers

// bitMask is a fixed size set of bits.
type bitMask struct {
	values []uint64
}

func newBitMask(n int) *bitMask {
	numInts := n/64 + 1
	return &bitMask{
		values: make([]uint64, numInts),
	}
}

func (bm *bitMask) Set(i int) {
	idx, shift := i/64, i%64
	bm.values[idx] |= uint64(1) << shift
}

// Flip inverts bit i and returns its new value.
func (bm *bitMask) Flip(i int) bool {
	idx, shift := i/64, i%64
	bm.values[idx] ^= uint64(1) << shift
	return bm.IsSet(i)
}

func (bm *bitMask) IsSet(i int) bool {
	idx, shift := i/64, i%64
	return bm.values[idx]&(uint64(1)<<shift) != 0
}

func (bm *bitMask) Clone() *bitMask {
	values := make([]uint64, len(bm.values))
	copy(values, bm.values)
	return &bitMask{values: values}
}
