package moore

import "github.com/pkg/errors"

// Connect binds count consecutive input bits of a, starting at in, to
// count consecutive output bits of src, starting at out. Each addressed
// slot's prior source, if any, is overwritten; a source left with no
// surviving connection to a loses its dependents entry for a.
//
// Cycles are legal and expected: src may transitively depend on a's own
// outputs (including src == a). Because Step always reads the previous
// tick's committed outputs, feedback is well defined and never re-entrant.
func (a *Automaton) Connect(in int, src *Automaton, out, count int) error {
	if a == nil || a.dead {
		return errors.Wrap(ErrInvalidArgument, "nil or deleted target")
	}
	if src == nil || src.dead {
		return errors.Wrap(ErrInvalidArgument, "nil or deleted source")
	}
	if count <= 0 {
		return errors.Wrapf(ErrInvalidArgument, "connect count %d", count)
	}
	if in < 0 || in >= a.n || count > a.n-in {
		return errors.Wrapf(ErrInvalidArgument, "input range [%d,%d) exceeds width %d", in, in+count, a.n)
	}
	if out < 0 || out >= src.m || count > src.m-out {
		return errors.Wrapf(ErrInvalidArgument, "output range [%d,%d) exceeds width %d", out, out+count, src.m)
	}

	var replaced []*Automaton
	for i := 0; i < count; i++ {
		if old := a.incoming[in+i].src; old != nil && old != src && !containsAutomaton(replaced, old) {
			replaced = append(replaced, old)
		}
		a.incoming[in+i] = connection{src: src, out: out + i}
	}
	src.addDependent(a)

	// An overwritten source keeps its dependents entry only while some
	// other slot of a still points at it.
	for _, old := range replaced {
		if !old.dead && !a.hasSource(old) {
			old.removeDependent(a)
		}
	}
	return nil
}

// Disconnect clears the sources of count consecutive input bits starting
// at in. Slots with no source are skipped silently. Each source that loses
// its last connection to a is also dropped from that source's dependents.
func (a *Automaton) Disconnect(in, count int) error {
	if a == nil || a.dead {
		return errors.Wrap(ErrInvalidArgument, "nil or deleted automaton")
	}
	if count <= 0 {
		return errors.Wrapf(ErrInvalidArgument, "disconnect count %d", count)
	}
	if in < 0 || in >= a.n || count > a.n-in {
		return errors.Wrapf(ErrInvalidArgument, "input range [%d,%d) exceeds width %d", in, in+count, a.n)
	}

	var cleared []*Automaton
	for i := in; i < in+count; i++ {
		if src := a.incoming[i].src; src != nil && !containsAutomaton(cleared, src) {
			cleared = append(cleared, src)
		}
		a.incoming[i] = connection{}
	}

	// The dependents entry goes only when no slot at all still points at
	// the source, so the rescan covers every slot, not just the range.
	for _, src := range cleared {
		if !src.dead && !a.hasSource(src) {
			src.removeDependent(a)
		}
	}
	return nil
}

// hasSource reports whether any of a's input slots is sourced from src.
func (a *Automaton) hasSource(src *Automaton) bool {
	for i := range a.incoming {
		if a.incoming[i].src == src {
			return true
		}
	}
	return false
}

// addDependent registers dep as a reader of a's outputs. Idempotent.
func (a *Automaton) addDependent(dep *Automaton) {
	if containsAutomaton(a.dependents, dep) {
		return
	}
	a.dependents = append(a.dependents, dep)
}

// removeDependent compacts a's dependents, dropping every occurrence of
// dep. Used by Disconnect, Connect overwrites and Delete.
func (a *Automaton) removeDependent(dep *Automaton) {
	j := 0
	for _, d := range a.dependents {
		if d != dep {
			a.dependents[j] = d
			j++
		}
	}
	for k := j; k < len(a.dependents); k++ {
		a.dependents[k] = nil
	}
	a.dependents = a.dependents[:j]
}

func containsAutomaton(list []*Automaton, a *Automaton) bool {
	for _, e := range list {
		if e == a {
			return true
		}
	}
	return false
}
