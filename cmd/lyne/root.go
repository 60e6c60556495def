package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"svw.info/lyne/internal/domain"
	"svw.info/lyne/internal/ports"
	"svw.info/lyne/internal/solver"
)

var (
	flagLogLevel string
	flagEngine   string
	flagConn     int
	flagMaxNodes int
	flagWorkers  int
)

var rootCmd = &cobra.Command{
	Use:          "lyne",
	Short:        "Solve, generate and serve path-routing grid puzzles",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		lvl, err := logrus.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid log level %q", flagLogLevel)
		}
		logrus.SetLevel(lvl)
		return nil
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagLogLevel, "log-level", "info", "trace|debug|info|warn|error")
	pf.StringVar(&flagEngine, "engine", "backtrack", "search engine: backtrack|parallel")
	pf.IntVar(&flagConn, "conn", 4, "movement model: 4 orthogonal, 8 with diagonals")
	pf.IntVar(&flagMaxNodes, "max-nodes", 0, "search budget in applied moves, 0 is unbounded")
	pf.IntVar(&flagWorkers, "workers", 0, "workers for the parallel engine, 0 is one per CPU")
}

func connectivity(n int) (domain.Connectivity, error) {
	switch n {
	case 4:
		return domain.Conn4, nil
	case 8:
		return domain.Conn8, nil
	default:
		return domain.Conn4, fmt.Errorf("conn must be 4 or 8, got %d", n)
	}
}

// buildSolver assembles the engine the flags ask for.
func buildSolver() (ports.Solver, error) {
	conn, err := connectivity(flagConn)
	if err != nil {
		return nil, err
	}
	switch flagEngine {
	case "backtrack", "backtracking":
		s := solver.NewBacktrackingSolver()
		s.Conn = conn
		s.MaxNodes = flagMaxNodes
		return s, nil
	case "parallel":
		s := solver.NewParallelSolver(flagWorkers)
		s.Conn = conn
		s.MaxNodes = flagMaxNodes
		return s, nil
	default:
		return nil, fmt.Errorf("unknown engine %q", flagEngine)
	}
}
