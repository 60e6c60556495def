// Package solver implements the backtracking path search: one path per
// color, routed color-by-color over the grid until every cell's visit
// capacity is exactly consumed.
package solver

import (
	"github.com/sirupsen/logrus"

	"svw.info/lyne/internal/domain"
)

// BacktrackingSolver is the sequential depth-first engine. Colors are routed
// in a fixed order and directions are tried in a fixed order, so repeated
// solves of the same board yield the same verdict and the same solution.
type BacktrackingSolver struct {
	// Conn selects the movement model. Conn4 (orthogonal steps only) is the
	// default; Conn8 adds diagonal steps with the crossing rule.
	Conn domain.Connectivity
	// MaxNodes bounds the number of moves the search may apply before it
	// gives up with ErrBudgetExhausted. Zero means unbounded.
	MaxNodes int
	// Log receives routing progress at Debug level.
	Log logrus.FieldLogger
}

func NewBacktrackingSolver() *BacktrackingSolver {
	return &BacktrackingSolver{Conn: domain.Conn4, Log: logrus.StandardLogger()}
}

func (s *BacktrackingSolver) logger() logrus.FieldLogger {
	if s.Log != nil {
		return s.Log
	}
	return logrus.StandardLogger()
}

// How often SolveProgress reports the explored-node count.
const progressEvery = 2048
