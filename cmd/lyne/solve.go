package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"svw.info/lyne/internal/board"
	"svw.info/lyne/internal/report"
	"svw.info/lyne/internal/validator"
)

var (
	flagMoves  bool
	flagJSON   bool
	flagUnique bool
)

var solveCmd = &cobra.Command{
	Use:   "solve [file]",
	Short: "Solve a board read from a file or stdin",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var data []byte
		var err error
		if len(args) == 1 {
			data, err = os.ReadFile(args[0])
		} else {
			data, err = io.ReadAll(os.Stdin)
		}
		if err != nil {
			return err
		}
		g, err := board.ParseText(string(data))
		if err != nil {
			return err
		}
		s, err := buildSolver()
		if err != nil {
			return err
		}

		if flagUnique {
			unique, st, err := s.Unique(cmd.Context(), g)
			if err != nil {
				return err
			}
			fmt.Printf("unique: %v (%d nodes, %s)\n", unique, st.Nodes, st.Duration)
			return nil
		}

		sol, st, err := s.Solve(cmd.Context(), g)
		if err != nil {
			return err
		}
		if ok, conflicts, verr := validator.New().Validate(cmd.Context(), g, sol); verr != nil || !ok {
			logrus.WithField("conflicts", conflicts).Error("solver produced an invalid assignment")
			return fmt.Errorf("internal error: solution failed coverage validation")
		}

		switch {
		case flagJSON:
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(sol); err != nil {
				return err
			}
		case flagMoves:
			fmt.Print(report.Moves(sol))
		default:
			fmt.Print(report.Trace(sol))
		}
		logrus.WithFields(logrus.Fields{
			"nodes":    st.Nodes,
			"duration": st.Duration,
		}).Info("solved")
		return nil
	},
}

func init() {
	solveCmd.Flags().BoolVar(&flagMoves, "moves", false, "print per-color move listings instead of the coordinate trace")
	solveCmd.Flags().BoolVar(&flagJSON, "json", false, "print the solution as JSON")
	solveCmd.Flags().BoolVar(&flagUnique, "unique", false, "report whether the board has exactly one solution")
	rootCmd.AddCommand(solveCmd)
}
