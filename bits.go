package moore

// wordBits is the width of a single buffer word.
const wordBits = 64

// Words returns the number of 64-bit words needed to hold the given number
// of bits. Words(0) is 0.
func Words(bits int) int {
	return (bits + wordBits - 1) / wordBits
}

// Bit reports the value of bit i in a word-packed vector. Bit i lives at
// word i/64, bit i%64.
func Bit(words []uint64, i int) bool {
	return words[i/wordBits]>>(uint(i)%wordBits)&1 != 0
}

// SetBit sets bit i of a word-packed vector to v.
func SetBit(words []uint64, i int, v bool) {
	if v {
		words[i/wordBits] |= 1 << (uint(i) % wordBits)
	} else {
		words[i/wordBits] &^= 1 << (uint(i) % wordBits)
	}
}

// maskTail clears the unused high bits of the last word of a vector holding
// the given number of bits. Buffers must keep those bits zero after every
// write, including writes performed by caller-supplied functions.
func maskTail(words []uint64, bits int) {
	if r := uint(bits) % wordBits; r != 0 && len(words) > 0 {
		words[len(words)-1] &= 1<<r - 1
	}
}
