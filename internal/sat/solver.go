package sat

// Solver decides satisfiability of a CNF formula built up through
// AddVariable/AddClause calls, via DPLL search with two-watched-literal
// propagation and chronological backtracking extended with a backjumping
// probe. A Solver is single-use: call Solve once after adding every
// variable and clause.
type Solver struct {
	numVars int
	raw     [][]Literal // clauses as added, consumed by preprocess

	preprocessed [][]Literal // surviving clauses right after preprocessing
	clauses      []*clause   // same clauses, installed into the watch index

	assigns *assignment
	trail   *trail
	watch   *watchIndex
	pending *literalQueue // work queue substituting recursive propagation

	heur *heuristic

	tracer Tracer
}

// NewSolver returns an empty Solver with no variables or clauses.
func NewSolver() *Solver {
	return &Solver{
		assigns: newAssignment(0),
		trail:   newTrail(64),
		watch:   newWatchIndex(0),
		pending: newLiteralQueue(64),
		tracer:  NopTracer{},
	}
}

// SetTracer installs t as the sink for search events. A nil t restores the
// no-op default.
func (s *Solver) SetTracer(t Tracer) {
	if t == nil {
		t = NopTracer{}
	}
	s.tracer = t
}

// AddVariable allocates a fresh variable and returns its id.
func (s *Solver) AddVariable() int {
	v := s.numVars
	s.numVars++
	s.assigns.grow()
	s.watch.grow()
	return v
}

// NumVariables returns the number of variables added so far.
func (s *Solver) NumVariables() int {
	return s.numVars
}

// AddClause adds a disjunction of literals to the formula. lits is copied;
// the caller may reuse its backing storage. Every literal must reference a
// variable already returned by AddVariable.
func (s *Solver) AddClause(lits []Literal) {
	cp := make([]Literal, len(lits))
	copy(cp, lits)
	s.raw = append(s.raw, cp)
}

// Solve runs preprocessing followed by search and reports whether the
// formula is satisfiable. Model is only meaningful after Solve returns true.
func (s *Solver) Solve() bool {
	if !s.preprocess() {
		return false
	}
	if s.trail.Len() == s.numVars {
		return true
	}

	s.installClauses()
	s.heur = newHeuristic(s.numVars, s.occurrenceCounts())

	if !s.decide() {
		return true
	}

	for {
		top := s.trail.Top()
		if s.propagate(top.Lit, true) {
			if s.trail.Len() == s.numVars {
				return true
			}
			if !s.decide() {
				return true
			}
			continue
		}

		s.tracer.Conflict(s.trail.Len())
		if !s.backjump() {
			return false
		}
	}
}

// Model returns the truth value assigned to every variable. Only valid
// after Solve has returned true.
func (s *Solver) Model() []bool {
	model := make([]bool, s.numVars)
	for v := 0; v < s.numVars; v++ {
		model[v] = s.assigns.varValue(v) == True
	}
	return model
}

// installClauses builds the watch index from the preprocessor's surviving
// clauses. Called once, after preprocess and before the first decision.
func (s *Solver) installClauses() {
	s.clauses = make([]*clause, 0, len(s.preprocessed))
	for _, lits := range s.preprocessed {
		c := newClause(lits)
		s.clauses = append(s.clauses, c)
		s.watch.install(c)
	}
}

// decide consults the heuristic and pushes its choice as a Decision. It
// returns false when every variable already has a value.
func (s *Solver) decide() bool {
	lit, ok := s.heur.next(s)
	if !ok {
		return false
	}
	if !s.assign(lit, Decision, true) {
		internalf("decision on %s conflicts with an existing assignment", lit)
	}
	s.tracer.Decide(lit)
	return true
}

// assign records l as true. It reports false (without mutating anything)
// if l is already false; it is a no-op success if l is already true. It
// does not enqueue l for propagation — callers that need l's consequences
// explored (propagate, and the probe) do that themselves.
func (s *Solver) assign(l Literal, kind Kind, updateTrail bool) bool {
	switch s.assigns.value(l) {
	case True:
		return true
	case False:
		return false
	}
	s.assigns.set(l, True)
	if updateTrail {
		s.trail.Push(Entry{Lit: l, Kind: kind})
	}
	return true
}

// propagate explores every consequence of l having just become true,
// starting from l itself. It returns false as soon as some clause is
// falsified; the pending queue is drained at that point and no implicit
// undo happens here — the caller (backjump, or the top-level search loop)
// owns rewinding.
//
// When updateTrail is false, assignments still happen but nothing is
// pushed onto the trail — used by the backjump probe to test a hypothesis
// without committing to it.
func (s *Solver) propagate(l Literal, updateTrail bool) bool {
	s.pending.Clear()
	s.pending.Push(l)
	for !s.pending.IsEmpty() {
		cur := s.pending.Pop()
		if !s.propagateOne(cur, updateTrail) {
			s.pending.Clear()
			return false
		}
	}
	return true
}

// propagateOne processes every clause watching the negation of justTrue
// (the literal that just turned false), per the propagation engine
// algorithm. It compacts watch lists in place: clauses that keep watching
// `this` are retained, clauses that moved are spliced onto their new
// list's tail, and on conflict every unprocessed clause is preserved
// untouched.
func (s *Solver) propagateOne(justTrue Literal, updateTrail bool) bool {
	this := justTrue.Opposite()
	ws := s.watch.listOf(this)

	j := 0
	ok := true
	for i := 0; i < len(ws); i++ {
		c := ws[i]
		r := c.propagate(s, this, updateTrail)

		if !r.ok {
			ws[j] = c
			j++
			for i++; i < len(ws); i++ {
				ws[j] = ws[i]
				j++
			}
			ok = false
			break
		}

		if r.moved {
			s.watch.add(r.newWatch, c)
		} else {
			ws[j] = c
			j++
		}
		if r.hasForced {
			s.tracer.Propagate(r.forced)
			s.pending.Push(r.forced)
		}
	}
	s.watch.setListOf(this, ws[:j])
	return ok
}

// backtrack pops Deduced entries, clearing each one's assignment, until the
// trail is empty or its top entry is a Decision (left in place).
func (s *Solver) backtrack() {
	for s.trail.Len() > 0 && s.trail.Top().Kind != Decision {
		e := s.trail.Pop()
		s.assigns.clear(e.Lit)
	}
}

// backjump runs the conflict-driven backjumping probe described in the
// backtrack/backjump driver: it chronologically backtracks to the last
// decision x, then repeatedly asks whether x alone (without the
// intermediate decisions between it and some earlier decision y) would
// still propagate to a conflict in some clause; each time the answer is yes, y
// is discarded and the probe tries the next decision further back. It
// returns false once no decision is left to try (UNSAT).
func (s *Solver) backjump() bool {
	s.backtrack()
	if s.trail.Len() == 0 {
		return false
	}

	x := s.trail.Pop()
	s.assigns.clear(x.Lit)
	conflictTrailLen := s.trail.Len()

	for {
		outerHead := s.trail.Snapshot()
		outerAssign := s.assigns.snapshot()

		s.backtrack()
		if s.trail.Len() == 0 {
			s.trail.Restore(outerHead)
			s.assigns.restore(outerAssign)
			break
		}

		y := s.trail.Top()
		s.trail.SetTop(Entry{Lit: x.Lit, Kind: Decision})
		s.assigns.clear(y.Lit)
		s.assigns.set(x.Lit, True)
		innerSave := s.assigns.snapshot()

		ok := s.propagate(x.Lit, false)
		s.assigns.restore(innerSave)

		if !ok {
			// The skip is valid: x alone reproduces a conflict without y.
			// Discard y for good and keep walking further back.
			s.trail.Pop()
			s.assigns.clear(x.Lit)
			continue
		}

		// The skip is not valid: y is load-bearing. Undo the probe.
		s.trail.SetTop(y)
		s.trail.Restore(outerHead)
		s.assigns.restore(outerAssign)
		break
	}

	s.tracer.Backjump(conflictTrailLen, s.trail.Len())
	s.tracer.Lemma(s.conflictClause(x))

	flipped := x.Lit.Opposite()
	if !s.assign(flipped, Deduced, true) {
		internalf("flipped decision %s conflicts with an existing assignment", flipped)
	}
	return true
}

// conflictClause returns the clause implied by the current trail's
// decisions at the moment x was identified as the conflict driver: the
// negation of every Decision literal still on the trail, plus the negation
// of x itself. It is never added to the clause database or the watch
// index — the reference behavior this package follows retains it only
// conceptually, for tracing, and does not learn from it.
func (s *Solver) conflictClause(x Entry) []Literal {
	lits := make([]Literal, 0, s.trail.Len()+1)
	for i := 0; i < s.trail.Len(); i++ {
		e := s.trail.At(i)
		if e.Kind == Decision {
			lits = append(lits, e.Lit.Opposite())
		}
	}
	return append(lits, x.Lit.Opposite())
}

func (s *Solver) occurrenceCounts() []int {
	counts := make([]int, s.numVars)
	for _, c := range s.clauses {
		for _, l := range c.literals {
			counts[l.VarID()]++
		}
	}
	return counts
}
