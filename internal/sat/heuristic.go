package sat

import "github.com/rhartert/yagh"

// heuristic picks the next unassigned variable to branch on. Unlike a
// classic VSIDS-style order, it is built exactly once, right after
// preprocessing, from each variable's literal-occurrence count in the
// (preprocessed) clause database, and is never touched again: no activity
// bumping, no decay, no phase saving. Branching always guesses the variable
// true.
//
// The permutation is built with a binary heap (github.com/rhartert/yagh)
// purely as a convenient sorting primitive: each variable is pushed once and
// then drained completely by repeated Pop, smallest key first. The key is
// -count*numVars + id, so a higher count always pops first and, between equal
// counts, the lower id does; the order never depends on how the heap breaks
// ties between equal keys.
type heuristic struct {
	order []int // variable ids, descending occurrence count, ties ascending id
}

// newHeuristic builds the one-shot decision order. occurrences must be
// indexed by variable id and hold the number of clauses (after
// preprocessing) in which the variable appears, in either polarity.
func newHeuristic(numVars int, occurrences []int) *heuristic {
	h := yagh.New[int](0)
	h.GrowBy(numVars)
	for v := 0; v < numVars; v++ {
		h.Put(v, -occurrences[v]*numVars+v)
	}

	order := make([]int, 0, numVars)
	for {
		next, ok := h.Pop()
		if !ok {
			break
		}
		order = append(order, next.Elem)
	}

	return &heuristic{order: order}
}

// next scans the permutation from the start and returns the first
// unassigned variable's positive literal, or false if every variable
// already has a value. Backjumping can unassign a variable the search had
// already passed over, so the scan cannot remember where it left off; it
// always starts fresh.
func (h *heuristic) next(s *Solver) (Literal, bool) {
	for _, v := range h.order {
		if s.assigns.varValue(v) == Unset {
			return PositiveLiteral(v), true
		}
	}
	return 0, false
}
