// Package se3 - the rotation-matrix → quaternion chart and its
// closed-form derivative.
//
// The extraction branches on the trace for numerical stability (the
// standard stable quaternion extraction). Value and derivative share
// one branch selector, ChartBranch, so the two can never diverge.
package se3

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// BranchTrace is the ChartBranch result for the trace(R) > 0 case.
// The remaining results 0, 1, 2 name the dominant diagonal axis.
const BranchTrace = -1

// ChartBranch selects the extraction case for the rotation r:
// BranchTrace when trace(r) > 0, otherwise the index of the largest
// diagonal entry. The tie-break is strict greater-than, applied in the
// fixed order R(1,1) > R(0,0) then R(2,2) > R(i,i); exact ties pick
// the lower index.
// Complexity: O(1).
func ChartBranch(r mat.Matrix) int {
	if r.At(0, 0)+r.At(1, 1)+r.At(2, 2) > 0 {
		return BranchTrace
	}
	i := 0
	if r.At(1, 1) > r.At(0, 0) {
		i = 1
	}
	if r.At(2, 2) > r.At(i, i) {
		i = 2
	}
	return i
}

// QuatFromRotation converts a 3×3 orthonormal rotation matrix to the
// 3-component quaternion manifold coordinate (the vector part of the
// unit quaternion with non-negative real part).
//
// Stage 1 (Branch):  pick the stable extraction case via ChartBranch.
// Stage 2 (Extract): closed-form components for the selected case.
// Stage 3 (Orient):  flip the sign of the whole vector when the
// implied real part would be negative (half-sphere convention).
// Complexity: O(1).
func QuatFromRotation(r mat.Matrix) [3]float64 {
	var q [3]float64
	switch i := ChartBranch(r); i {
	case BranchTrace:
		t := math.Sqrt(r.At(0, 0) + r.At(1, 1) + r.At(2, 2) + 1)
		s := 0.5 / t
		// real part 0.5·t is positive here, no flip needed
		q[0] = (r.At(2, 1) - r.At(1, 2)) * s
		q[1] = (r.At(0, 2) - r.At(2, 0)) * s
		q[2] = (r.At(1, 0) - r.At(0, 1)) * s
	default:
		j := (i + 1) % 3
		k := (j + 1) % 3
		t := math.Sqrt(r.At(i, i) - r.At(j, j) - r.At(k, k) + 1)
		s := 0.5 / t
		q[i] = 0.5 * t
		q[j] = (r.At(j, i) + r.At(i, j)) * s
		q[k] = (r.At(k, i) + r.At(i, k)) * s
		if w := (r.At(k, j) - r.At(j, k)) * s; w < 0 {
			q[0], q[1], q[2] = -q[0], -q[1], -q[2]
		}
	}
	return q
}

// flatIdx maps a rotation-matrix entry (row, col) to its position in
// the column-major 9-vector flattening used by DQuatDRotation.
func flatIdx(row, col int) int {
	return row + 3*col
}

// DQuatDRotation returns the analytic 3×9 Jacobian of QuatFromRotation
// with respect to the column-major flattening of r, evaluated on the
// same branch as the value function.
//
// Derivation per branch: with t the branch square root and s = 0.5/t,
// every component has the form q = f(R)·s (or 0.5·t), so off-diagonal
// partials are ±s and diagonal partials collapse to ∓q·0.5/t².
// Complexity: O(1).
func DQuatDRotation(r mat.Matrix) *mat.Dense {
	jac := mat.NewDense(3, 9, nil)
	switch i := ChartBranch(r); i {
	case BranchTrace:
		t := math.Sqrt(r.At(0, 0) + r.At(1, 1) + r.At(2, 2) + 1)
		s := 0.5 / t
		c := 0.5 / (t * t)
		q := [3]float64{
			(r.At(2, 1) - r.At(1, 2)) * s,
			(r.At(0, 2) - r.At(2, 0)) * s,
			(r.At(1, 0) - r.At(0, 1)) * s,
		}
		var a, d int
		for a = 0; a < 3; a++ {
			for d = 0; d < 3; d++ {
				jac.Set(a, flatIdx(d, d), -q[a]*c)
			}
		}
		jac.Set(0, flatIdx(2, 1), s)
		jac.Set(0, flatIdx(1, 2), -s)
		jac.Set(1, flatIdx(0, 2), s)
		jac.Set(1, flatIdx(2, 0), -s)
		jac.Set(2, flatIdx(1, 0), s)
		jac.Set(2, flatIdx(0, 1), -s)
	default:
		j := (i + 1) % 3
		k := (j + 1) % 3
		t := math.Sqrt(r.At(i, i) - r.At(j, j) - r.At(k, k) + 1)
		s := 0.5 / t
		c := 0.5 / (t * t)
		qj := (r.At(j, i) + r.At(i, j)) * s
		qk := (r.At(k, i) + r.At(i, k)) * s

		// row i: q[i] = 0.5·t
		jac.Set(i, flatIdx(i, i), 0.5*s)
		jac.Set(i, flatIdx(j, j), -0.5*s)
		jac.Set(i, flatIdx(k, k), -0.5*s)

		// row j: q[j] = (R(j,i)+R(i,j))·s
		jac.Set(j, flatIdx(j, i), s)
		jac.Set(j, flatIdx(i, j), s)
		jac.Set(j, flatIdx(i, i), -qj*c)
		jac.Set(j, flatIdx(j, j), qj*c)
		jac.Set(j, flatIdx(k, k), qj*c)

		// row k: q[k] = (R(k,i)+R(i,k))·s
		jac.Set(k, flatIdx(k, i), s)
		jac.Set(k, flatIdx(i, k), s)
		jac.Set(k, flatIdx(i, i), -qk*c)
		jac.Set(k, flatIdx(j, j), qk*c)
		jac.Set(k, flatIdx(k, k), qk*c)

		// the half-sphere flip negates the value, hence the Jacobian
		if w := (r.At(k, j) - r.At(j, k)) * s; w < 0 {
			jac.Scale(-1, jac)
		}
	}
	return jac
}
