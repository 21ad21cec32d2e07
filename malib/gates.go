// Package malib provides prebuilt automata for common sequential building
// blocks: registered logic gates, counters and registers.
//
// All gates are registered (clocked): the gate function is latched into a
// single state bit on each tick, so the output follows the inputs with a
// one-tick delay, as a Moore machine requires.
package malib

import (
	moore "github.com/wg469282/Moore-s-Automatons"
)

// gate returns a registered two-input gate: the single state bit latches
// fn(input bit 0, input bit 1) each tick and the output follows the state.
func gate(fn func(a, b bool) bool) (*moore.Automaton, error) {
	return moore.NewSimple(2, 1, func(next, in, _ []uint64, _, _ int) {
		next[0] = 0
		if fn(moore.Bit(in, 0), moore.Bit(in, 1)) {
			next[0] = 1
		}
	})
}

// And returns a registered AND gate.
//
//	Inputs: a (bit 0), b (bit 1)
//	Output: a && b, delayed one tick
func And() (*moore.Automaton, error) {
	return gate(func(a, b bool) bool { return a && b })
}

// Nand returns a registered NAND gate.
func Nand() (*moore.Automaton, error) {
	return gate(func(a, b bool) bool { return !(a && b) })
}

// Or returns a registered OR gate.
func Or() (*moore.Automaton, error) {
	return gate(func(a, b bool) bool { return a || b })
}

// Nor returns a registered NOR gate.
func Nor() (*moore.Automaton, error) {
	return gate(func(a, b bool) bool { return !(a || b) })
}

// Xor returns a registered XOR gate.
func Xor() (*moore.Automaton, error) {
	return gate(func(a, b bool) bool { return a != b })
}

// Not returns a registered inverter with a single input bit.
func Not() (*moore.Automaton, error) {
	return moore.NewSimple(1, 1, func(next, in, _ []uint64, _, _ int) {
		next[0] = 0
		if !moore.Bit(in, 0) {
			next[0] = 1
		}
	})
}
