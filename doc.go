// Package lvlslam is a linearization and verification toolkit for
// pose-graph SLAM edges — analytic Jacobians on SE(3) manifolds,
// cross-checked against finite differences and automatic differentiation.
//
// 🚀 What is lvlslam?
//
//	A small, deterministic library that brings together:
//		• SE(3) primitives: rigid transforms, quaternion charts and their
//		  closed-form derivatives
//		• Binary edge contracts: pose-pose and point-point measurement
//		  residuals with analytic Jacobian blocks
//		• Jacobian workspaces: size-negotiated, reusable dual-block buffers
//		• A randomized verification harness: analytic vs. numeric Jacobians,
//		  entrywise, over thousands of seeded trials
//
// ✨ Why choose lvlslam?
//
//   - Hand-derived Jacobians are easy to get subtly wrong — lvlslam makes
//     cross-validation a first-class, repeatable operation
//   - Deterministic – every random source is seeded, no ambient randomness
//   - Sentinel errors everywhere – no panics on caller-triggered conditions
//
// Under the hood, everything is organized under three subpackages:
//
//	se3/    — rigid transforms, the rotation↔quaternion chart and its 3×9 derivative
//	edge/   — vertices, Jacobian workspaces, and the binary edge linearization contract
//	verify/ — the seeded randomized analytic-vs-numeric verification harness
//
// Quick sketch of the verification flow:
//
//	    randomize ──► analytic J ──► copy ──► numeric J ──► entrywise diff
//	       ×N                 (two independent workspaces)
//
// Dense linear algebra is built on gonum (mat, num/quat, num/dual).
//
//	go get github.com/katalvlaran/lvlslam
package lvlslam
