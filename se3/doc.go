// Package se3 provides rigid-body transforms in 3D and the quaternion
// chart used to parameterize rotations on a manifold.
//
// 🚀 What is se3?
//
//	The numeric foundation of lvlslam:
//	  • Isometry — a rotation + translation pair with Mul/Inverse/Apply
//	  • QuatFromRotation — stable rotation-matrix → quaternion extraction
//	    on the half-sphere chart (implied real part always ≥ 0)
//	  • DQuatDRotation — the closed-form 3×9 derivative of that chart,
//	    guaranteed to select the same branch as the value function
//	  • ToVectorMQT / FromVectorMQT — the minimal (translation,
//	    quaternion-vector) parameterization used for edge errors and
//	    manifold increments
//
// ✨ Chart convention:
//
//   - The manifold coordinate is the vector (imaginary) part of a unit
//     quaternion; the omitted real part is implied non-negative. When an
//     extraction would yield a negative real part, the whole 3-vector is
//     negated. This keeps the local parameterization free of the
//     quaternion double cover.
//   - The 3×9 derivative is taken with respect to the column-major
//     flattening of the rotation matrix.
//
// All functions are pure; inputs are expected to be orthonormal rotation
// matrices — degenerate inputs are outside the contract and are not
// detected.
package se3
