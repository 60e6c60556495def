package domain

import "errors"

var (
	// ErrMalformedBoard indicates a structural input defect: a color with a
	// wrong endpoint count, a non-rectangular board, or an unknown symbol.
	// It is detected before any search starts.
	ErrMalformedBoard = errors.New("lyne: malformed board")

	// ErrUnsolvable is the ordinary negative verdict: the search space was
	// exhausted without a valid assignment.
	ErrUnsolvable = errors.New("lyne: no solution")

	// ErrBudgetExhausted indicates the solver gave up because the configured
	// node budget was spent before the search space was exhausted.
	ErrBudgetExhausted = errors.New("lyne: search budget exhausted")
)
