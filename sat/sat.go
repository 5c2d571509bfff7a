// Package sat re-exports the handful of types a caller needs to embed the
// engine in its own process (building a formula variable by variable and
// clause by clause) without importing internal/sat directly.
package sat

import "github.com/andrepd/dpll-go/internal/sat"

type (
	// Literal is a signed reference to a boolean variable. See
	// internal/sat.Literal for the encoding.
	Literal = sat.Literal
	// LBool is a tri-state assignment: Unset, True or False.
	LBool = sat.LBool
)

const (
	Unset = sat.Unset
	True  = sat.True
	False = sat.False
)

// PositiveLiteral returns the positive literal of variable v.
func PositiveLiteral(v int) Literal { return sat.PositiveLiteral(v) }

// NegativeLiteral returns the negative literal of variable v.
func NegativeLiteral(v int) Literal { return sat.NegativeLiteral(v) }

// Solver decides satisfiability of a CNF formula. See internal/sat.Solver
// for the full API; this alias lets a caller declare a field or variable of
// this type without an internal/ import.
type Solver = sat.Solver

// NewSolver returns an empty Solver with no variables or clauses.
func NewSolver() *Solver { return sat.NewSolver() }
