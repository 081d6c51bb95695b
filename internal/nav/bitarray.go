package nav

import "fmt"

// BitArray is a fixed-capacity bit set packed into 32-bit words.
// Any access outside [0, Len()) is a programmer error and panics;
// callers that need boundary tolerance must check first.
type BitArray struct {
	words   []uint32
	numBits int
}

// NewBitArray creates a BitArray with all bits clear.
func NewBitArray(numBits int) *BitArray {
	return &BitArray{
		words:   make([]uint32, (numBits+31)/32),
		numBits: numBits,
	}
}

func (b *BitArray) check(pos int) {
	if pos < 0 || pos >= b.numBits {
		panic(fmt.Sprintf("nav: bit index %d out of range [0,%d)", pos, b.numBits))
	}
}

// Set turns the bit at pos on.
func (b *BitArray) Set(pos int) {
	b.check(pos)
	b.words[pos/32] |= 1 << (pos % 32)
}

// Clear turns the bit at pos off.
func (b *BitArray) Clear(pos int) {
	b.check(pos)
	b.words[pos/32] &^= 1 << (pos % 32)
}

// Toggle flips the bit at pos.
func (b *BitArray) Toggle(pos int) {
	b.check(pos)
	b.words[pos/32] ^= 1 << (pos % 32)
}

// SetBool sets the bit at pos to the given value.
func (b *BitArray) SetBool(pos int, value bool) {
	if value {
		b.Set(pos)
	} else {
		b.Clear(pos)
	}
}

// Get reports whether the bit at pos is set.
func (b *BitArray) Get(pos int) bool {
	b.check(pos)
	return b.words[pos/32]&(1<<(pos%32)) != 0
}

// Len returns the declared bit capacity.
func (b *BitArray) Len() int {
	return b.numBits
}
