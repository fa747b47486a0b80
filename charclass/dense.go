package charclass

import (
	"math/bits"
)

// mDense is a 256-bit membership bitmap over bytes.
type mDense struct {
	Set [8]uint32
}

var _ Pattern[byte] = (*mDense)(nil)

func denseSet(given []byte) *mDense {
	m := &mDense{}
	for _, b := range given {
		m.set(b)
	}
	return m
}

func (m *mDense) set(b byte) {
	index, mask := denseIM(b)
	m.Set[index] |= mask
}

func (m *mDense) Contains(b byte) bool {
	index, mask := denseIM(b)
	return (m.Set[index] & mask) == mask
}

func (m *mDense) count() int {
	var n int
	for _, word := range m.Set {
		n += bits.OnesCount32(word)
	}
	return n
}

func (m *mDense) String() string {
	switch m.count() {
	case 0:
		return None[byte]().String()
	case 256:
		return All[byte]().String()
	}
	return genericString(m)
}

func denseIM(b byte) (index uint, mask uint32) {
	i := uint((b & 0xe0) >> 5)
	j := uint(b & 0x1f)
	mask = uint32(1) << j
	return i, mask
}
