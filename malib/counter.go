package malib

import (
	"github.com/pkg/errors"

	moore "github.com/wg469282/Moore-s-Automatons"
)

// increment writes state+1 into next, rippling the carry across words.
// The core's tail masking wraps the count at 2^bits.
func increment(next, state []uint64, words int) {
	copy(next, state[:words])
	for i := 0; i < words; i++ {
		next[i]++
		if next[i] != 0 {
			break
		}
	}
}

// Counter returns a free-running modulo-2^bits counter with no inputs and
// an identity output.
func Counter(bits int) (*moore.Automaton, error) {
	return moore.NewSimple(0, bits, func(next, _, state []uint64, _, s int) {
		increment(next, state, moore.Words(s))
	})
}

// CounterEnable returns a modulo-2^bits counter that counts only while its
// single input bit is set and holds otherwise.
func CounterEnable(bits int) (*moore.Automaton, error) {
	return moore.NewSimple(1, bits, func(next, in, state []uint64, _, s int) {
		if moore.Bit(in, 0) {
			increment(next, state, moore.Words(s))
		} else {
			copy(next, state[:moore.Words(s)])
		}
	})
}

// Pulse returns an automaton with a single output bit that goes high for
// exactly one tick out of every 2^bits, when its internal modulo counter
// reads all ones.
func Pulse(bits int) (*moore.Automaton, error) {
	if bits <= 0 {
		return nil, errors.Wrapf(moore.ErrInvalidArgument, "pulse width %d", bits)
	}
	return moore.New(0, 1, bits,
		func(next, _, state []uint64, _, s int) {
			increment(next, state, moore.Words(s))
		},
		func(out, state []uint64, _, s int) {
			out[0] = 0
			if allOnes(state, s) {
				out[0] = 1
			}
		},
		make([]uint64, moore.Words(bits)))
}

// allOnes reports whether every one of the low bits of state is set.
func allOnes(state []uint64, bits int) bool {
	words := moore.Words(bits)
	for i := 0; i < words; i++ {
		want := ^uint64(0)
		if i == words-1 && bits%64 != 0 {
			want = 1<<(uint(bits)%64) - 1
		}
		if state[i] != want {
			return false
		}
	}
	return true
}
