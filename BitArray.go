package Go_AVL

import (
	"math/bits"
)

// NewBitArray holding at least size bits, all down.
func NewBitArray(size uint) BitArray {
	return BitArray{bits: make([]uint, (size+bits.UintSize-1)/bits.UintSize)}
}

// BitArray is a fixed size set of bits.
type BitArray struct {
	bits []uint
}

func (u BitArray) Len() uint {
	return uint(len(u.bits)) * bits.UintSize
}

func (u BitArray) Get(i uint) bool {
	return (u.bits[i/bits.UintSize]>>(i%bits.UintSize))&1 == 1
}

func (u BitArray) Up(i uint) {
	u.bits[i/bits.UintSize] |= 1 << (i % bits.UintSize)
}

func (u BitArray) Down(i uint) {
	u.bits[i/bits.UintSize] &^= 1 << (i % bits.UintSize)
}

// Swap sets bit i up and reports whether it was already up.
func (u BitArray) Swap(i uint) bool {
	w, m := &u.bits[i/bits.UintSize], uint(1)<<(i%bits.UintSize)
	was := *w&m != 0
	*w |= m
	return was
}

// Count of bits that are up.
func (u BitArray) Count() (n uint) {
	for _, w := range u.bits {
		n += uint(bits.OnesCount(w))
	}
	return
}
