// Package verify cross-checks analytic edge Jacobians against numeric
// (finite-difference) Jacobians over randomized, seeded trials.
//
// 🚀 What is verify?
//
//	The correctness gate for hand-derived Jacobians:
//	  • CheckEdge — the generic trial loop: randomize, linearize both
//	    ways into two independent workspaces, compare entrywise
//	  • CheckEdgeSE3 / CheckEdgePointXYZ — ready-made scenarios for the
//	    two edge variants shipped in lvlslam/edge
//	  • RandomRotation / RandomIsometry / RandomPoint — broad,
//	    non-degenerate manifold samplers driven by an explicit RNG
//
// ⚙️ Protocol per trial:
//
//	randomize estimates + measurement
//	LinearizeOplus(numericWS)      // analytic, into the numeric workspace
//	analyticWS.CopyFrom(numericWS) // transplant via bulk copy
//	LinearizeNumeric()             // overwrite numeric workspace in place
//	compare |numeric − analytic| ≤ tolerance, entry by entry
//
// A mismatch is recorded (trial, endpoint slot, entry) and the run
// continues — each trial is independent, and the full failure
// distribution is more diagnostic than the first hit.
//
// Determinism: all randomness flows from Options.Seed; seed 0 maps to
// a fixed default so the zero Options value is reproducible too.
package verify
