// Package dimacs reads and writes DIMACS CNF formulas. Parsing is delegated
// to github.com/rhartert/dimacs; this package adapts its callback-style
// Builder to a sat.Solver's AddVariable/AddClause, adds gzip-aware file and
// stdin sources, and serializes a clause database back to the same text
// format so that parse -> serialize -> parse round-trips.
package dimacs

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"

	rdimacs "github.com/rhartert/dimacs"

	"github.com/andrepd/dpll-go/internal/sat"
)

// Solver is the subset of *sat.Solver this package populates.
type Solver interface {
	AddVariable() int
	AddClause([]sat.Literal)
}

// Load reads a DIMACS CNF formula from r into solver.
func Load(r io.Reader, solver Solver) error {
	b := &builder{solver: solver}
	if err := rdimacs.ReadBuilder(r, b); err != nil {
		return fmt.Errorf("dimacs: %w", err)
	}
	if !b.sawProblem {
		return fmt.Errorf("dimacs: missing problem line")
	}
	return nil
}

// LoadFile opens filename (gunzipping it if gzipped is true) and loads it
// into solver. The file name itself is not inspected; a caller that wants
// ".gz" files decompressed passes gzipped accordingly.
func LoadFile(filename string, gzipped bool, solver Solver) error {
	f, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("dimacs: opening %q: %w", filename, err)
	}
	defer f.Close()

	var r io.Reader = f
	if gzipped {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return fmt.Errorf("dimacs: %q: %w", filename, err)
		}
		defer gz.Close()
		r = gz
	}

	if err := Load(r, solver); err != nil {
		return fmt.Errorf("%q: %w", filename, err)
	}
	return nil
}

// builder adapts a Solver to rdimacs.Builder.
type builder struct {
	solver     Solver
	sawProblem bool
}

func (b *builder) Problem(problem string, nVars int, nClauses int) error {
	if problem != "cnf" {
		return fmt.Errorf("unsupported problem type %q, want \"cnf\"", problem)
	}
	b.sawProblem = true
	for i := 0; i < nVars; i++ {
		b.solver.AddVariable()
	}
	return nil
}

func (b *builder) Clause(tmpClause []int) error {
	if !b.sawProblem {
		return fmt.Errorf("clause before problem line")
	}
	clause := make([]sat.Literal, len(tmpClause))
	for i, l := range tmpClause {
		switch {
		case l < 0:
			clause[i] = sat.NegativeLiteral(-l - 1)
		case l > 0:
			clause[i] = sat.PositiveLiteral(l - 1)
		default:
			return fmt.Errorf("literal must be nonzero")
		}
	}
	b.solver.AddClause(clause)
	return nil
}

func (b *builder) Comment(string) error {
	return nil
}

// Write serializes a clause database back to DIMACS CNF text: a problem
// line declaring numVars and len(clauses), followed by one line per clause,
// each literal written as a signed decimal and the line terminated by a
// trailing 0, mirroring the format Load/LoadFile accept. Parsing the output
// of Write reproduces the same clauses (up to literal order within a
// clause), which is what makes parse -> serialize -> parse a round-trip.
func Write(w io.Writer, numVars int, clauses [][]sat.Literal) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "p cnf %d %d\n", numVars, len(clauses)); err != nil {
		return fmt.Errorf("dimacs: writing problem line: %w", err)
	}

	for _, c := range clauses {
		for _, l := range c {
			if _, err := fmt.Fprintf(bw, "%d ", literalToInt(l)); err != nil {
				return fmt.Errorf("dimacs: writing clause: %w", err)
			}
		}
		if _, err := fmt.Fprintln(bw, "0"); err != nil {
			return fmt.Errorf("dimacs: writing clause: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("dimacs: %w", err)
	}
	return nil
}

// literalToInt is the inverse of builder.Clause's literal decoding: variable
// ids are 0-indexed internally but 1-indexed and signed in DIMACS text.
func literalToInt(l sat.Literal) int {
	n := l.VarID() + 1
	if !l.IsPositive() {
		n = -n
	}
	return n
}
