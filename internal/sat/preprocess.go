package sat

import "sort"

// preprocess runs the six-step simplification pipeline over s.raw and
// leaves its result in s.preprocessed (clauses of length >= 2 only) plus
// whatever trail entries the free-variable closure and root-level unit
// propagation produced. It returns false if the formula is found
// unsatisfiable during preprocessing.
func (s *Solver) preprocess() bool {
	clauses := make([][]Literal, len(s.raw))
	for i, c := range s.raw {
		clauses[i] = dedupClauseLiterals(c)
	}

	clauses = dedupClauses(clauses)
	clauses = eliminatePureLiterals(clauses, s.numVars)
	clauses = removeTautologies(clauses)

	s.closeFreeVariables(clauses)

	clauses, ok := s.rootUnitPropagate(clauses)
	if !ok {
		return false
	}

	s.preprocessed = clauses
	return true
}

// dedupClauseLiterals sorts a clause's literals and drops repeats. The
// sortedness is relied on later by removeTautologies, since a variable's
// two literals (2v, 2v+1) become adjacent once sorted.
func dedupClauseLiterals(lits []Literal) []Literal {
	sorted := append([]Literal(nil), lits...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	out := sorted[:0]
	for i, l := range sorted {
		if i == 0 || l != sorted[i-1] {
			out = append(out, l)
		}
	}
	return out
}

// dedupClauses sorts the clause database lexicographically and drops
// repeated clauses. Requires every clause already be literal-sorted.
func dedupClauses(clauses [][]Literal) [][]Literal {
	sort.Slice(clauses, func(i, j int) bool { return lessLits(clauses[i], clauses[j]) })

	out := clauses[:0]
	for i, c := range clauses {
		if i == 0 || !equalLits(c, clauses[i-1]) {
			out = append(out, c)
		}
	}
	return out
}

func lessLits(a, b []Literal) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}

func equalLits(a, b []Literal) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// eliminatePureLiterals drops every clause containing a literal whose
// negation never appears anywhere in the database.
func eliminatePureLiterals(clauses [][]Literal, numVars int) [][]Literal {
	hasPos := newResetSet(numVars)
	hasNeg := newResetSet(numVars)
	hasPos.Clear()
	hasNeg.Clear()
	for _, c := range clauses {
		for _, l := range c {
			if l.IsPositive() {
				hasPos.Add(l.VarID())
			} else {
				hasNeg.Add(l.VarID())
			}
		}
	}

	pureSign := make([]LBool, numVars) // Unset = not pure
	anyPure := false
	for v := 0; v < numVars; v++ {
		switch {
		case hasPos.Contains(v) && !hasNeg.Contains(v):
			pureSign[v] = True
			anyPure = true
		case hasNeg.Contains(v) && !hasPos.Contains(v):
			pureSign[v] = False
			anyPure = true
		}
	}
	if !anyPure {
		return clauses
	}

	out := clauses[:0]
	for _, c := range clauses {
		keep := true
		for _, l := range c {
			if sign := pureSign[l.VarID()]; sign != Unset && (sign == True) == l.IsPositive() {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, c)
		}
	}
	return out
}

// removeTautologies drops any clause containing both a variable's literals.
func removeTautologies(clauses [][]Literal) [][]Literal {
	out := clauses[:0]
	for _, c := range clauses {
		tautological := false
		for i := 0; i+1 < len(c); i++ {
			if c[i].VarID() == c[i+1].VarID() {
				tautological = true
				break
			}
		}
		if !tautological {
			out = append(out, c)
		}
	}
	return out
}

// closeFreeVariables assigns True to, and pushes a Deduced trail entry for,
// every variable that appears in no surviving clause. This guarantees a
// SAT verdict always carries a total model, including for variables that
// were eliminated as pure literals (their clauses are gone, so they no
// longer appear anywhere either).
func (s *Solver) closeFreeVariables(clauses [][]Literal) {
	appears := newResetSet(s.numVars)
	appears.Clear()
	for _, c := range clauses {
		for _, l := range c {
			appears.Add(l.VarID())
		}
	}
	for v := 0; v < s.numVars; v++ {
		if !appears.Contains(v) {
			lit := PositiveLiteral(v)
			s.assigns.set(lit, True)
			s.trail.Push(Entry{Lit: lit, Kind: Deduced})
		}
	}
}

// rootUnitPropagate repeatedly finds a unit clause, asserts its literal,
// removes every clause it satisfies, and strips its negation from every
// remaining clause, until no unit clause remains. It returns false the
// moment an empty clause appears or a unit clause contradicts an existing
// assignment.
func (s *Solver) rootUnitPropagate(clauses [][]Literal) ([][]Literal, bool) {
	for {
		for _, c := range clauses {
			if len(c) == 0 {
				return clauses, false
			}
		}

		lit, found := findUnit(clauses)
		if !found {
			return clauses, true
		}

		switch s.assigns.value(lit) {
		case False:
			return clauses, false
		case Unset:
			s.assigns.set(lit, True)
			s.trail.Push(Entry{Lit: lit, Kind: Deduced})
		}

		clauses = applyUnit(clauses, lit)
	}
}

func findUnit(clauses [][]Literal) (Literal, bool) {
	for _, c := range clauses {
		if len(c) == 1 {
			return c[0], true
		}
	}
	return 0, false
}

func applyUnit(clauses [][]Literal, lit Literal) [][]Literal {
	opp := lit.Opposite()
	out := clauses[:0]
	for _, c := range clauses {
		if containsLiteral(c, lit) {
			continue
		}
		out = append(out, stripLiteral(c, opp))
	}
	return out
}

func containsLiteral(c []Literal, l Literal) bool {
	for _, x := range c {
		if x == l {
			return true
		}
	}
	return false
}

func stripLiteral(c []Literal, l Literal) []Literal {
	out := make([]Literal, 0, len(c))
	for _, x := range c {
		if x != l {
			out = append(out, x)
		}
	}
	return out
}
