/*
Package moore simulates networks of Moore-type finite state machines.

An Automaton owns bit-packed state, output and input buffers and per-bit
connections to other automata's outputs. Its output is a pure function of
its current state; its next state is a pure function of its current state
and input. Both functions are supplied by the caller at construction time.

Step advances any number of automata by one synchronous tick. All final
inputs are resolved from a single snapshot of pre-step outputs before any
state is committed, so feedback loops across automata (including an
automaton wired to its own output) are well defined and independent of
the order in which automata are listed.

*/
package moore
