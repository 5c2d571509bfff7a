package sat

import (
	"log"
	"strings"
)

// Tracer observes search events for diagnostics. It never influences the
// decision the solver makes; every method is called synchronously from
// inside Solve.
type Tracer interface {
	Decide(lit Literal)
	Propagate(lit Literal)
	Conflict(trailLen int)
	Backjump(from, to int)

	// Lemma reports the conflict clause identified by the backjumping
	// probe: the negated decisions that jointly forced the conflict, plus
	// the negated conflict driver. It is never added to the clause
	// database (see Solver.conflictClause); Lemma exists only so a tracer
	// can report it.
	Lemma(lits []Literal)
}

// NopTracer discards every event. It is the Solver's default, so tracing
// has no cost unless a caller opts in.
type NopTracer struct{}

func (NopTracer) Decide(Literal)     {}
func (NopTracer) Propagate(Literal)  {}
func (NopTracer) Conflict(int)       {}
func (NopTracer) Backjump(int, int)  {}
func (NopTracer) Lemma([]Literal)    {}

// LogTracer writes one line per event through a stdlib logger. Intended for
// a command-line -trace flag; the logger should be pointed at stderr so
// stdout keeps carrying only the solver's verdict.
type LogTracer struct {
	Logger *log.Logger
}

func (t *LogTracer) Decide(lit Literal) {
	t.Logger.Printf("decide %s", lit)
}

func (t *LogTracer) Propagate(lit Literal) {
	t.Logger.Printf("propagate %s", lit)
}

func (t *LogTracer) Conflict(trailLen int) {
	t.Logger.Printf("conflict, trail length %d", trailLen)
}

func (t *LogTracer) Backjump(from, to int) {
	t.Logger.Printf("backjump trail %d -> %d", from, to)
}

func (t *LogTracer) Lemma(lits []Literal) {
	strs := make([]string, len(lits))
	for i, l := range lits {
		strs[i] = l.String()
	}
	t.Logger.Printf("conflict clause [%s]", strings.Join(strs, " "))
}
