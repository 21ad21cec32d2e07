// Package matest provides utility functions for testing automata.
package matest

import (
	"math/rand"
	"testing"
	"time"

	moore "github.com/wg469282/Moore-s-Automatons"
)

// Compare drives a and b with identical random manual inputs for the given
// number of ticks and fails the test on the first output divergence. Both
// automata must have the same input and output widths.
func Compare(t *testing.T, a, b *moore.Automaton, steps int) {
	t.Helper()

	if a.Inputs() != b.Inputs() {
		t.Fatalf("input width mismatch: %d != %d", a.Inputs(), b.Inputs())
	}
	if a.Outputs() != b.Outputs() {
		t.Fatalf("output width mismatch: %d != %d", a.Outputs(), b.Outputs())
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	in := make([]uint64, moore.Words(a.Inputs()))

	for step := 0; step < steps; step++ {
		if len(in) > 0 {
			for w := range in {
				in[w] = rng.Uint64()
			}
			if err := a.SetInput(in); err != nil {
				t.Fatal(err)
			}
			if err := b.SetInput(in); err != nil {
				t.Fatal(err)
			}
		}
		if err := moore.Step(a, b); err != nil {
			t.Fatal(err)
		}
		oa, err := a.Output()
		if err != nil {
			t.Fatal(err)
		}
		ob, err := b.Output()
		if err != nil {
			t.Fatal(err)
		}
		for w := range oa {
			if oa[w] != ob[w] {
				t.Fatalf("step %d: outputs differ at word %d: %#x != %#x (input %#x)",
					step, w, oa[w], ob[w], in)
			}
		}
	}
}
