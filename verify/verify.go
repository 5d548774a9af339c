// Package verify - the analytic-vs-numeric trial loop.
package verify

import (
	"fmt"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/katalvlaran/lvlslam/edge"
)

// Mismatch records one Jacobian entry outside tolerance:
// which trial, which endpoint block, and both values.
type Mismatch struct {
	Trial    int
	Slot     int
	Row, Col int
	Analytic float64
	Numeric  float64
}

// String renders the mismatch for diagnostics.
func (m Mismatch) String() string {
	return fmt.Sprintf("trial %d slot %d entry (%d,%d): numeric %.12g vs analytic %.12g",
		m.Trial, m.Slot, m.Row, m.Col, m.Numeric, m.Analytic)
}

// Report summarizes a verification run.
type Report struct {
	// Trials is the number of trials executed.
	Trials int
	// Entries is the total number of Jacobian entries compared.
	Entries int
	// Mismatches lists every entry outside tolerance, in trial order.
	Mismatches []Mismatch
}

// OK reports whether every compared entry was within tolerance.
func (r Report) OK() bool { return len(r.Mismatches) == 0 }

// String renders a one-line summary.
func (r Report) String() string {
	return fmt.Sprintf("verify: %d trials, %d entries, %d mismatches",
		r.Trials, r.Entries, len(r.Mismatches))
}

// Randomize draws fresh endpoint estimates and a fresh measurement for
// the given trial. It runs before every linearization pair, so no
// state leaks between trials.
type Randomize func(trial int)

// CheckEdge drives the verification state machine for one edge:
// Setup → (Randomize → Linearize analytic → Linearize numeric →
// Compare) × Trials → Report.
//
// Two independently allocated workspaces are used so analytic and
// numeric results never alias: the analytic pass writes into the
// numeric workspace (binding it for the numeric pass), the result is
// bulk-copied into the analytic workspace, and the numeric pass then
// overwrites the numeric workspace in place — the exact layout both
// paths negotiated via UpdateSize.
//
// A mismatching entry is recorded and the run continues; only setup
// and contract violations abort with an error.
// Complexity: O(Trials · cost(linearization)).
func CheckEdge(e edge.BinaryEdge, randomize Randomize, opts Options) (Report, error) {
	var rep Report
	if e == nil {
		return rep, ErrNilEdge
	}
	if randomize == nil {
		return rep, ErrNilRandomize
	}
	if err := opts.Validate(); err != nil {
		return rep, err
	}

	analytic := edge.NewWorkspace()
	numeric := edge.NewWorkspace()
	for _, ws := range [2]*edge.Workspace{analytic, numeric} {
		if err := ws.UpdateSize(e); err != nil {
			return rep, err
		}
		if err := ws.Allocate(); err != nil {
			return rep, err
		}
	}

	for trial := 0; trial < opts.Trials; trial++ {
		randomize(trial)

		// analytic Jacobian, written into the numeric workspace
		if err := e.LinearizeOplus(numeric); err != nil {
			return rep, err
		}
		// transplant the analytic result into its own workspace
		if err := analytic.CopyFrom(numeric); err != nil {
			return rep, err
		}
		// numeric Jacobian overwrites the bound (numeric) workspace
		if err := e.LinearizeNumeric(); err != nil {
			return rep, err
		}

		for slot := 0; slot < 2; slot++ {
			a, err := analytic.BlockForVertex(slot)
			if err != nil {
				return rep, err
			}
			n, err := numeric.BlockForVertex(slot)
			if err != nil {
				return rep, err
			}
			rows, cols := a.Dims()
			for row := 0; row < rows; row++ {
				for col := 0; col < cols; col++ {
					av, nv := a.At(row, col), n.At(row, col)
					if !scalar.EqualWithinAbs(nv, av, opts.Tolerance) {
						rep.Mismatches = append(rep.Mismatches, Mismatch{
							Trial: trial, Slot: slot, Row: row, Col: col,
							Analytic: av, Numeric: nv,
						})
					}
				}
			}
			rep.Entries += rows * cols
		}
		rep.Trials++
	}
	return rep, nil
}

// CheckEdgeSE3 runs the pose-pose scenario: two VertexSE3 endpoints,
// identity information, estimates and measurement redrawn from
// independent seeded streams every trial.
func CheckEdgeSE3(opts Options) (Report, error) {
	v0 := edge.NewVertexSE3(0)
	v1 := edge.NewVertexSE3(1)
	e := edge.NewEdgeSE3()
	if err := e.SetVertex(0, v0); err != nil {
		return Report{}, err
	}
	if err := e.SetVertex(1, v1); err != nil {
		return Report{}, err
	}

	base := rngFromSeed(opts.Seed)
	r0 := deriveRNG(base, 0)
	r1 := deriveRNG(base, 1)
	rz := deriveRNG(base, 2)

	return CheckEdge(e, func(int) {
		v0.SetEstimate(RandomIsometry(r0))
		v1.SetEstimate(RandomIsometry(r1))
		e.SetMeasurement(RandomIsometry(rz))
	}, opts)
}

// CheckEdgePointXYZ runs the point-point scenario: two VertexPointXYZ
// endpoints, identity information, uniform random points and
// measurement every trial.
func CheckEdgePointXYZ(opts Options) (Report, error) {
	v0 := edge.NewVertexPointXYZ(0)
	v1 := edge.NewVertexPointXYZ(1)
	e := edge.NewEdgePointXYZ()
	if err := e.SetVertex(0, v0); err != nil {
		return Report{}, err
	}
	if err := e.SetVertex(1, v1); err != nil {
		return Report{}, err
	}

	base := rngFromSeed(opts.Seed)
	r0 := deriveRNG(base, 0)
	r1 := deriveRNG(base, 1)
	rz := deriveRNG(base, 2)

	return CheckEdge(e, func(int) {
		v0.SetEstimate(RandomPoint(r0))
		v1.SetEstimate(RandomPoint(r1))
		e.SetMeasurement(RandomPoint(rz))
	}, opts)
}
