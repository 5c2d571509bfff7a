package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime/pprof"
	"strings"

	"github.com/andrepd/dpll-go/internal/dimacs"
	"github.com/andrepd/dpll-go/internal/sat"
)

var (
	flagCPUProfile = flag.String("cpuprofile", "", "write a pprof CPU profile to this file")
	flagMemProfile = flag.String("memprofile", "", "write a pprof heap profile to this file")
	flagTrace      = flag.Bool("trace", false, "log decide/propagate/backjump events to stderr")
)

type config struct {
	instanceFile string // "" means read from stdin
	cpuProfile   string
	memProfile   string
	trace        bool
}

func parseConfig() *config {
	flag.Parse()
	return &config{
		instanceFile: flag.Arg(0),
		cpuProfile:   *flagCPUProfile,
		memProfile:   *flagMemProfile,
		trace:        *flagTrace,
	}
}

// run parses the instance, solves it, and prints exactly one line to
// stdout: "SATISFIABLE" or "UNSATISFIABLE". All other diagnostics go to
// stderr via log or the tracer.
func run(cfg *config) error {
	s := sat.NewSolver()
	if cfg.trace {
		s.SetTracer(&sat.LogTracer{Logger: log.New(os.Stderr, "", log.LstdFlags)})
	}

	if cfg.instanceFile == "" {
		if err := dimacs.Load(os.Stdin, s); err != nil {
			return fmt.Errorf("could not parse instance: %w", err)
		}
	} else {
		gzipped := strings.HasSuffix(cfg.instanceFile, ".gz")
		if err := dimacs.LoadFile(cfg.instanceFile, gzipped, s); err != nil {
			return fmt.Errorf("could not parse instance: %w", err)
		}
	}

	if s.Solve() {
		fmt.Println("SATISFIABLE")
	} else {
		fmt.Println("UNSATISFIABLE")
	}
	return nil
}

func main() {
	cfg := parseConfig()

	if cfg.cpuProfile != "" {
		f, err := os.Create(filepath.Clean(cfg.cpuProfile))
		if err != nil {
			log.Fatal(err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal(err)
		}
		defer pprof.StopCPUProfile()
	}

	if err := run(cfg); err != nil {
		log.Fatal(err)
	}

	if cfg.memProfile != "" {
		f, err := os.Create(filepath.Clean(cfg.memProfile))
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.Fatal(err)
		}
	}
}
