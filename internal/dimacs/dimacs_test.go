package dimacs

import (
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/andrepd/dpll-go/internal/sat"
)

// fakeSolver records AddVariable/AddClause calls without doing any solving,
// so tests here exercise only the DIMACS-to-solver adaptation.
type fakeSolver struct {
	numVars int
	clauses [][]sat.Literal
}

func (f *fakeSolver) AddVariable() int {
	v := f.numVars
	f.numVars++
	return v
}

func (f *fakeSolver) AddClause(lits []sat.Literal) {
	f.clauses = append(f.clauses, lits)
}

func TestLoad_ValidCNF(t *testing.T) {
	src := "c a comment line\np cnf 3 2\n1 -2 0\n2 3 0\n"
	f := &fakeSolver{}

	if err := Load(strings.NewReader(src), f); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if f.numVars != 3 {
		t.Errorf("numVars = %d, want 3", f.numVars)
	}
	want := [][]sat.Literal{
		{sat.PositiveLiteral(0), sat.NegativeLiteral(1)},
		{sat.PositiveLiteral(1), sat.PositiveLiteral(2)},
	}
	if diff := cmp.Diff(want, f.clauses); diff != "" {
		t.Errorf("clauses mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_MissingProblemLine(t *testing.T) {
	f := &fakeSolver{}
	err := Load(strings.NewReader("c only a comment\n"), f)
	if err == nil {
		t.Fatal("Load() error = nil, want an error for missing problem line")
	}
}

func TestLoad_NonCNFProblemType(t *testing.T) {
	f := &fakeSolver{}
	err := Load(strings.NewReader("p sat 1 1\n"), f)
	if err == nil {
		t.Fatal("Load() error = nil, want an error for a non-cnf problem type")
	}
}

func TestBuilder_ClauseBeforeProblem(t *testing.T) {
	b := &builder{solver: &fakeSolver{}}
	if err := b.Clause([]int{1, -2}); err == nil {
		t.Fatal("Clause() before Problem() error = nil, want an error")
	}
}

func TestBuilder_ZeroLiteralRejected(t *testing.T) {
	f := &fakeSolver{}
	b := &builder{solver: f}
	if err := b.Problem("cnf", 1, 1); err != nil {
		t.Fatalf("Problem() error = %v", err)
	}
	if err := b.Clause([]int{0}); err == nil {
		t.Fatal("Clause([0]) error = nil, want an error for a zero literal")
	}
}

func TestLoadFile_PlainAndGzipped(t *testing.T) {
	src := "p cnf 2 1\n1 2 0\n"
	dir := t.TempDir()

	plain := filepath.Join(dir, "instance.cnf")
	if err := os.WriteFile(plain, []byte(src), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	f1 := &fakeSolver{}
	if err := LoadFile(plain, false, f1); err != nil {
		t.Fatalf("LoadFile(plain) error = %v", err)
	}
	if f1.numVars != 2 || len(f1.clauses) != 1 {
		t.Errorf("LoadFile(plain) = %d vars, %d clauses, want 2, 1", f1.numVars, len(f1.clauses))
	}

	gz := filepath.Join(dir, "instance.cnf.gz")
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	if _, err := w.Write([]byte(src)); err != nil {
		t.Fatalf("gzip.Write() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("gzip.Close() error = %v", err)
	}
	if err := os.WriteFile(gz, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("WriteFile(gz) error = %v", err)
	}

	f2 := &fakeSolver{}
	if err := LoadFile(gz, true, f2); err != nil {
		t.Fatalf("LoadFile(gzipped) error = %v", err)
	}
	if f2.numVars != 2 || len(f2.clauses) != 1 {
		t.Errorf("LoadFile(gzipped) = %d vars, %d clauses, want 2, 1", f2.numVars, len(f2.clauses))
	}
}

func TestLoadFile_MissingFile(t *testing.T) {
	f := &fakeSolver{}
	if err := LoadFile(filepath.Join(t.TempDir(), "missing.cnf"), false, f); err == nil {
		t.Fatal("LoadFile() on a missing file: error = nil, want an error")
	}
}

func TestRoundTrip_ParseSerializeParse(t *testing.T) {
	src := "c a comment line\np cnf 4 3\n1 -2 0\n2 3 -4 0\n-1 4 0\n"

	first := &fakeSolver{}
	if err := Load(strings.NewReader(src), first); err != nil {
		t.Fatalf("first Load() error = %v", err)
	}

	var buf bytes.Buffer
	if err := Write(&buf, first.numVars, first.clauses); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	second := &fakeSolver{}
	if err := Load(&buf, second); err != nil {
		t.Fatalf("second Load() error = %v\nserialized form:\n%s", err, buf.String())
	}

	if second.numVars != first.numVars {
		t.Errorf("numVars after round-trip = %d, want %d", second.numVars, first.numVars)
	}
	if diff := cmp.Diff(first.clauses, second.clauses); diff != "" {
		t.Errorf("clauses after round-trip mismatch (-want +got):\n%s", diff)
	}
}

func TestWrite_EmptyDatabase(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, 0, nil); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if want := "p cnf 0 0\n"; buf.String() != want {
		t.Errorf("Write() = %q, want %q", buf.String(), want)
	}
}
