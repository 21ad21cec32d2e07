package malib

import (
	moore "github.com/wg469282/Moore-s-Automatons"
)

// Register returns a bank of bits data flip-flops: its output is its
// input delayed by exactly one tick.
func Register(bits int) (*moore.Automaton, error) {
	return moore.NewSimple(bits, bits, func(next, in, _ []uint64, _, s int) {
		copy(next, in[:moore.Words(s)])
	})
}
