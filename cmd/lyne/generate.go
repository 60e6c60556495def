package main

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"svw.info/lyne/internal/domain"
	"svw.info/lyne/internal/generator"
)

var (
	flagSeed       int64
	flagDifficulty string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a solvable board and print it",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := buildSolver()
		if err != nil {
			return err
		}
		var d domain.Difficulty
		switch flagDifficulty {
		case "easy":
			d = domain.Easy
		case "medium":
			d = domain.Medium
		case "hard":
			d = domain.Hard
		case "expert":
			d = domain.Expert
		default:
			return fmt.Errorf("unknown difficulty %q", flagDifficulty)
		}
		seed := flagSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		p, st, err := generator.NewWalkGenerator(s).Generate(cmd.Context(), seed, d)
		if err != nil {
			return err
		}
		for _, row := range p.Rows {
			fmt.Println(row)
		}
		logrus.WithFields(logrus.Fields{
			"seed":       seed,
			"difficulty": d,
			"nodes":      st.Nodes,
			"duration":   st.Duration,
		}).Info("generated")
		return nil
	},
}

func init() {
	generateCmd.Flags().Int64Var(&flagSeed, "seed", 0, "random seed, 0 picks one from the clock")
	generateCmd.Flags().StringVar(&flagDifficulty, "difficulty", "medium", "easy|medium|hard|expert")
	rootCmd.AddCommand(generateCmd)
}
