package sat

import "strings"

// clause is an immutable-length disjunction of literals built by the
// preprocessor; after preprocessing it has no duplicate literals and no
// literal opposite another literal in the same clause. A clause is only
// ever constructed with two or more literals — unit and empty clauses are
// resolved entirely inside the preprocessor and never reach the watch
// index (see preprocess.go).
//
// literals[0] and literals[1] are always the clause's two currently watched
// literals. The rest of the slice is in no particular order; propagate
// reorders it in place as watches move (see propagate below).
type clause struct {
	literals []Literal

	// prevPos resumes the search for a new literal to watch from where the
	// previous search left off, so that repeatedly propagating the same
	// long clause does not re-scan literals known to still be false. Must
	// stay within [2, len(literals)].
	prevPos int
}

func newClause(literals []Literal) *clause {
	lits := make([]Literal, len(literals))
	copy(lits, literals)
	return &clause{literals: lits, prevPos: 2}
}

func (c *clause) String() string {
	if len(c.literals) == 0 {
		return "clause[]"
	}
	var sb strings.Builder
	sb.WriteString("clause[")
	sb.WriteString(c.literals[0].String())
	for _, l := range c.literals[1:] {
		sb.WriteByte(' ')
		sb.WriteString(l.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

// watched returns the clause's current pair of watched literals.
func (c *clause) watched() (Literal, Literal) {
	return c.literals[0], c.literals[1]
}

// propagation is the outcome of offering c a literal that just turned
// false. Exactly one of its cases applies:
//
//   - moved: c no longer watches `this`; it now watches newWatch instead.
//     The caller must move c from this's watch list to newWatch's.
//   - !moved && ok: c still watches `this` (the other watch was already
//     true, or was unit and has just been assigned). The caller leaves c
//     on this's watch list.
//   - !ok: c is falsified. The caller leaves c on this's watch list (the
//     watched pair hasn't changed) and must report the conflict upward.
type propagation struct {
	moved    bool
	newWatch Literal

	// forced is set when c just turned unit and assigned its other watch;
	// the caller must enqueue it for further propagation.
	forced    Literal
	hasForced bool

	ok bool
}

// propagate is called when `this`, one of c's two watched literals, has
// just become false. It restores the "literals[1] is the affected watch"
// invariant, then implements the watched-literal algorithm from the
// propagation engine:
//
//  1. if the other watch is true, the clause is already satisfied: nothing
//     to do.
//  2. otherwise look for a replacement watch among the non-watched
//     literals that isn't false; if found, move the watch there.
//  3. otherwise the clause is unit on the other watch: assign it (via
//     s.assign, which reports a conflict if it is already false).
//
// propagate never touches the watch index itself; the caller (see
// Solver.propagateOne) owns all watch-list bookkeeping, which keeps this
// method free of the aliasing hazards of mutating a list while it is being
// iterated.
func (c *clause) propagate(s *Solver, this Literal, updateTrail bool) propagation {
	if c.literals[0] == this {
		c.literals[0], c.literals[1] = c.literals[1], c.literals[0]
	}
	other := c.literals[0]

	if s.assigns.value(other) == True {
		return propagation{ok: true}
	}

	if c.prevPos >= len(c.literals) {
		c.prevPos = 2
	}
	for i := c.prevPos; i < len(c.literals); i++ {
		if s.assigns.value(c.literals[i]) != False {
			c.prevPos = i
			c.literals[1], c.literals[i] = c.literals[i], c.literals[1]
			return propagation{moved: true, newWatch: c.literals[1], ok: true}
		}
	}
	for i := 2; i < c.prevPos; i++ {
		if s.assigns.value(c.literals[i]) != False {
			c.prevPos = i
			c.literals[1], c.literals[i] = c.literals[i], c.literals[1]
			return propagation{moved: true, newWatch: c.literals[1], ok: true}
		}
	}

	// No replacement: the clause keeps watching `this`, and other must
	// become true for the clause to remain satisfiable.
	if !s.assign(other, Deduced, updateTrail) {
		return propagation{ok: false}
	}
	return propagation{forced: other, hasForced: true, ok: true}
}
