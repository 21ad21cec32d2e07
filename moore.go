package moore

import (
	"math"

	"github.com/pkg/errors"
)

// A TransitionFunc computes the next state of an automaton from its current
// input and state. It must write exactly s bits into nextState, must be pure
// and total over the declared widths, and must not retain any of the slices
// it is given. For an automaton with no inputs, input is nil and n is 0.
type TransitionFunc func(nextState, input, state []uint64, n, s int)

// An OutputFunc computes the output of an automaton from its current state.
// It must write exactly m bits into output and obeys the same purity
// contract as TransitionFunc.
type OutputFunc func(output, state []uint64, m, s int)

// connection binds one input bit to a bit of another automaton's output.
// A zero connection (nil src) means the input bit is unconnected.
type connection struct {
	src *Automaton
	out int
}

// An Automaton is a Moore machine with n input bits, m output bits and s
// state bits. All buffers are packed into 64-bit words, least significant
// bit first; the unused high bits of the last word of any buffer are
// always zero.
//
// An Automaton is not safe for concurrent use. All automata reachable
// through connections must be driven from a single goroutine, or callers
// must serialize every topology-mutating call and Step externally.
type Automaton struct {
	n, m, s int
	t       TransitionFunc
	y       OutputFunc

	state     []uint64 // current state, s bits
	nextState []uint64 // future state slot, swapped with state on commit
	output    []uint64 // current output, m bits

	manualInput []uint64 // externally set input bits, n bits
	finalInput  []uint64 // merged input actually fed to t, n bits

	incoming   []connection // one slot per input bit
	dependents []*Automaton // live automata reading from this one's outputs

	dead bool
}

// maxBits is the largest bit width for which the word-count conversion
// cannot overflow.
const maxBits = math.MaxInt - (wordBits - 1)

// New creates an automaton with n input bits, m output bits and s state
// bits. The initial state is copied from init, which must hold at least
// Words(s) words, and the initial output is computed immediately by y.
//
// New fails with ErrInvalidArgument if t, y or init is nil, if m or s is
// zero, or if any width is malformed, and with ErrResourceExhausted if a
// width is too large to size a buffer.
func New(n, m, s int, t TransitionFunc, y OutputFunc, init []uint64) (*Automaton, error) {
	switch {
	case t == nil:
		return nil, errors.Wrap(ErrInvalidArgument, "nil transition function")
	case y == nil:
		return nil, errors.Wrap(ErrInvalidArgument, "nil output function")
	case init == nil:
		return nil, errors.Wrap(ErrInvalidArgument, "nil initial state")
	case n < 0 || m <= 0 || s <= 0:
		return nil, errors.Wrapf(ErrInvalidArgument, "malformed widths n=%d m=%d s=%d", n, m, s)
	case n > maxBits || m > maxBits || s > maxBits:
		return nil, errors.Wrapf(ErrResourceExhausted, "widths n=%d m=%d s=%d overflow buffer sizing", n, m, s)
	}
	if len(init) < Words(s) {
		return nil, errors.Wrapf(ErrInvalidArgument, "initial state holds %d words, need %d", len(init), Words(s))
	}

	a := &Automaton{
		n: n, m: m, s: s,
		t:         t,
		y:         y,
		state:     make([]uint64, Words(s)),
		nextState: make([]uint64, Words(s)),
		output:    make([]uint64, Words(m)),
	}
	if n > 0 {
		a.manualInput = make([]uint64, Words(n))
		a.finalInput = make([]uint64, Words(n))
		a.incoming = make([]connection, n)
	}

	copy(a.state, init[:Words(s)])
	maskTail(a.state, s)
	a.y(a.output, a.state, a.m, a.s)
	maskTail(a.output, a.m)
	return a, nil
}

// Identity is an OutputFunc that copies the state bits verbatim to the
// output. It is only meaningful when m == s, as arranged by NewSimple.
func Identity(output, state []uint64, m, s int) {
	if m != s || s <= 0 {
		return
	}
	copy(output, state[:Words(s)])
	maskTail(output, s)
}

// NewSimple creates an automaton whose output is its state: it is
// equivalent to New(n, s, s, t, Identity, zero) with an all-zero initial
// state.
func NewSimple(n, s int, t TransitionFunc) (*Automaton, error) {
	if t == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "nil transition function")
	}
	if s <= 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "malformed state width s=%d", s)
	}
	if s > maxBits {
		return nil, errors.Wrapf(ErrResourceExhausted, "state width s=%d overflows buffer sizing", s)
	}
	return New(n, s, s, t, Identity, make([]uint64, Words(s)))
}

// Inputs returns the automaton's input bit width. It returns 0 for a nil
// or deleted automaton.
func (a *Automaton) Inputs() int {
	if a == nil || a.dead {
		return 0
	}
	return a.n
}

// Outputs returns the automaton's output bit width. It returns 0 for a nil
// or deleted automaton.
func (a *Automaton) Outputs() int {
	if a == nil || a.dead {
		return 0
	}
	return a.m
}

// StateBits returns the automaton's state bit width. It returns 0 for a
// nil or deleted automaton.
func (a *Automaton) StateBits() int {
	if a == nil || a.dead {
		return 0
	}
	return a.s
}

// SetInput overwrites the manual input buffer. bits must hold at least
// Words(n) words. A bit currently driven by a live connection keeps the
// stored value but has no observable effect until that connection is
// removed: the input merge always prefers a connected source.
func (a *Automaton) SetInput(bits []uint64) error {
	if a == nil || a.dead {
		return errors.Wrap(ErrInvalidArgument, "nil or deleted automaton")
	}
	if bits == nil {
		return errors.Wrap(ErrInvalidArgument, "nil input bits")
	}
	if a.n == 0 {
		return errors.Wrap(ErrInvalidArgument, "automaton has no inputs")
	}
	if len(bits) < Words(a.n) {
		return errors.Wrapf(ErrInvalidArgument, "input holds %d words, need %d", len(bits), Words(a.n))
	}
	copy(a.manualInput, bits[:Words(a.n)])
	maskTail(a.manualInput, a.n)
	return nil
}

// SetState overwrites the state buffer and immediately recomputes the
// output. bits must hold at least Words(s) words. This is the only path
// besides Step that changes the output.
func (a *Automaton) SetState(bits []uint64) error {
	if a == nil || a.dead {
		return errors.Wrap(ErrInvalidArgument, "nil or deleted automaton")
	}
	if bits == nil {
		return errors.Wrap(ErrInvalidArgument, "nil state bits")
	}
	if len(bits) < Words(a.s) {
		return errors.Wrapf(ErrInvalidArgument, "state holds %d words, need %d", len(bits), Words(a.s))
	}
	copy(a.state, bits[:Words(a.s)])
	maskTail(a.state, a.s)
	a.y(a.output, a.state, a.m, a.s)
	maskTail(a.output, a.m)
	return nil
}

// Output returns the current output buffer. The returned slice is shared
// with the automaton and must be treated as read-only; it is valid until
// the next SetState, Step or Delete on this automaton.
func (a *Automaton) Output() ([]uint64, error) {
	if a == nil || a.dead {
		return nil, errors.Wrap(ErrInvalidArgument, "nil or deleted automaton")
	}
	return a.output, nil
}

// Delete destroys the automaton and repairs both sides of every connection
// touching it: it is removed from each source's dependents, and every
// dependent's slot pointing at it is cleared. Delete is idempotent and
// nil-safe. Other automata may still hold stale references to a deleted
// automaton; every operation treats those as unconnected.
func (a *Automaton) Delete() {
	if a == nil || a.dead {
		return
	}
	// Mark dead first so reference cycles met during cleanup do not
	// re-enter this instance.
	a.dead = true

	for i := range a.incoming {
		if src := a.incoming[i].src; src != nil && !src.dead {
			src.removeDependent(a)
		}
	}
	for _, dep := range a.dependents {
		if dep == nil || dep.dead {
			continue
		}
		for i := range dep.incoming {
			if dep.incoming[i].src == a {
				dep.incoming[i] = connection{}
			}
		}
	}

	a.state, a.nextState, a.output = nil, nil, nil
	a.manualInput, a.finalInput = nil, nil
	a.incoming, a.dependents = nil, nil
	a.t, a.y = nil, nil
}
