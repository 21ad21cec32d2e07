package moore

import "github.com/pkg/errors"

// Step advances every listed automaton by exactly one synchronous tick.
// It fails with ErrInvalidArgument if the list is empty or contains a nil
// or deleted automaton, in which case no automaton is touched.
//
// The tick runs in three strictly separated phases over the whole list:
// first every final input is resolved from the pre-step outputs, then
// every transition function runs, and only then are all next states
// committed and outputs recomputed. The phases must not be fused: an
// automaton in a mutually connected batch has to observe the same logical
// previous-tick snapshot regardless of list order. Automata not in the
// list keep their outputs and may still be read as sources.
func Step(automata ...*Automaton) error {
	if len(automata) == 0 {
		return errors.Wrap(ErrInvalidArgument, "empty automata list")
	}
	for i, a := range automata {
		if a == nil || a.dead {
			return errors.Wrapf(ErrInvalidArgument, "nil or deleted automaton at index %d", i)
		}
	}

	// Phase 1: input resolution against the pre-step output snapshot.
	for _, a := range automata {
		a.mergeInputs()
	}

	// Phase 2: transition evaluation, nothing committed yet.
	for _, a := range automata {
		var in []uint64
		if a.n > 0 {
			in = a.finalInput
		}
		a.t(a.nextState, in, a.state, a.n, a.s)
		maskTail(a.nextState, a.s)
	}

	// Phase 3: commit. Swapping the buffers is O(1); the stale slice
	// becomes the next tick's scratch space.
	for _, a := range automata {
		a.state, a.nextState = a.nextState, a.state
		a.y(a.output, a.state, a.m, a.s)
		maskTail(a.output, a.m)
	}
	return nil
}

// mergeInputs resolves the final input fed to the transition function.
// Per input bit: a live connected source with an in-range output index
// wins; anything else (no source, deleted source, out-of-range index)
// falls back to the manually set value.
func (a *Automaton) mergeInputs() {
	if a.n == 0 {
		return
	}
	for w := range a.finalInput {
		a.finalInput[w] = 0
	}
	for i := 0; i < a.n; i++ {
		c := a.incoming[i]
		var v bool
		if c.src != nil && !c.src.dead && c.out < c.src.m {
			v = Bit(c.src.output, c.out)
		} else {
			v = Bit(a.manualInput, i)
		}
		if v {
			SetBit(a.finalInput, i, true)
		}
	}
}
