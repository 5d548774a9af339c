package verify_test

import (
	"fmt"

	"github.com/katalvlaran/lvlslam/verify"
)

// ////////////////////////////////////////////////////////////////////////////
// ExampleCheckEdgePointXYZ
// ////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Verify the point-point edge over 250 seeded trials. Each trial
//	redraws both endpoint estimates and the measurement, computes the
//	analytic Jacobian blocks, then the central-difference blocks, and
//	compares them entrywise.
//
// Use case:
//
//	The smoke test to run after touching any error or Jacobian code.
func ExampleCheckEdgePointXYZ() {
	opts := verify.DefaultOptions()
	opts.Seed = 7
	opts.Trials = 250

	report, err := verify.CheckEdgePointXYZ(opts)
	if err != nil {
		fmt.Println("setup failed:", err)
		return
	}
	fmt.Println(report)
	// Output: verify: 250 trials, 4500 entries, 0 mismatches
}

// ExampleCheckEdgeSE3 verifies the pose-pose edge on a reduced trial
// count; production checks use DefaultOptions().Trials.
func ExampleCheckEdgeSE3() {
	opts := verify.DefaultOptions()
	opts.Seed = 42
	opts.Trials = 50

	report, err := verify.CheckEdgeSE3(opts)
	if err != nil {
		fmt.Println("setup failed:", err)
		return
	}
	fmt.Println(report.OK(), report.Entries)
	// Output: true 3600
}
