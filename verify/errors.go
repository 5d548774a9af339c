package verify

import "errors"

var (
	// ErrNilEdge indicates a nil edge passed to CheckEdge.
	ErrNilEdge = errors.New("verify: edge is nil")
	// ErrNilRandomize indicates a nil randomize callback.
	ErrNilRandomize = errors.New("verify: randomize callback is nil")
	// ErrNonPositiveTrials indicates Options.Trials < 1.
	ErrNonPositiveTrials = errors.New("verify: trials must be ≥ 1")
	// ErrNonPositiveTolerance indicates Options.Tolerance ≤ 0.
	ErrNonPositiveTolerance = errors.New("verify: tolerance must be > 0")
)
