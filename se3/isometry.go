// Package se3 - rigid transform type and the minimal MQT vectorization.
//
// Isometry values are treated as immutable: every operation returns a
// fresh value and never mutates its operands. This keeps vertex
// push/pop snapshots O(1) and makes the numeric differentiation path
// free of aliasing hazards.
package se3

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"
)

// Isometry is a proper rigid transform in 3D: x ↦ R·x + T.
// R is a 3×3 orthonormal rotation and T a 3-vector translation.
type Isometry struct {
	R *mat.Dense
	T *mat.VecDense
}

// NewIsometry builds an Isometry from a rotation and a translation,
// deep-copying both so the result owns its storage.
// Complexity: O(1) with constant-size copies.
func NewIsometry(r mat.Matrix, t mat.Vector) Isometry {
	rc := mat.NewDense(3, 3, nil)
	rc.Copy(r)
	tc := mat.NewVecDense(3, nil)
	tc.CopyVec(t)
	return Isometry{R: rc, T: tc}
}

// Identity returns the identity transform.
func Identity() Isometry {
	r := mat.NewDense(3, 3, nil)
	r.Set(0, 0, 1)
	r.Set(1, 1, 1)
	r.Set(2, 2, 1)
	return Isometry{R: r, T: mat.NewVecDense(3, nil)}
}

// Mul composes two transforms: (x.Mul(y))(p) == x(y(p)).
// Complexity: O(1) constant-size matrix products.
func (x Isometry) Mul(y Isometry) Isometry {
	r := mat.NewDense(3, 3, nil)
	r.Mul(x.R, y.R)
	t := mat.NewVecDense(3, nil)
	t.MulVec(x.R, y.T)
	t.AddVec(t, x.T)
	return Isometry{R: r, T: t}
}

// Inverse returns the transform y with x.Mul(y) == Identity():
// rotation Rᵀ, translation −Rᵀ·T.
func (x Isometry) Inverse() Isometry {
	r := mat.NewDense(3, 3, nil)
	r.Copy(x.R.T())
	t := mat.NewVecDense(3, nil)
	t.MulVec(r, x.T)
	t.ScaleVec(-1, t)
	return Isometry{R: r, T: t}
}

// Apply transforms the point p: R·p + T.
func (x Isometry) Apply(p mat.Vector) *mat.VecDense {
	out := mat.NewVecDense(3, nil)
	out.MulVec(x.R, p)
	out.AddVec(out, x.T)
	return out
}

// ToVectorMQT packs the transform into its minimal 6-vector form:
// the translation followed by the quaternion manifold coordinate of
// the rotation (MQT = "minimal quaternion + translation").
func ToVectorMQT(x Isometry) [6]float64 {
	q := QuatFromRotation(x.R)
	return [6]float64{
		x.T.AtVec(0), x.T.AtVec(1), x.T.AtVec(2),
		q[0], q[1], q[2],
	}
}

// FromVectorMQT is the inverse of ToVectorMQT: the last three entries
// are the quaternion vector part with implied non-negative real part.
// The vector norm must not exceed 1.
func FromVectorMQT(v [6]float64) Isometry {
	return Isometry{
		R: RotationFromQuat([3]float64{v[3], v[4], v[5]}),
		T: mat.NewVecDense(3, []float64{v[0], v[1], v[2]}),
	}
}

// Oplus applies a local tangent-space increment to the transform:
// x ← x · D(δ), where D is the transform encoded by δ in MQT form.
// Oplus of the zero vector is the identity operation.
func (x Isometry) Oplus(delta [6]float64) Isometry {
	return x.Mul(FromVectorMQT(delta))
}

// RotationFromQuat reconstructs the rotation matrix of the unit
// quaternion whose vector part is v and whose real part is the implied
// non-negative sqrt(1 − |v|²). Inverse of QuatFromRotation on the
// half-sphere chart.
func RotationFromQuat(v [3]float64) *mat.Dense {
	n := v[0]*v[0] + v[1]*v[1] + v[2]*v[2]
	// clamp against rounding just above the unit sphere
	w := math.Sqrt(math.Max(0, 1-n))
	return rotationFromUnitQuat(quat.Number{Real: w, Imag: v[0], Jmag: v[1], Kmag: v[2]})
}

// RotationFromAxisAngle builds the rotation of angle radians about
// axis (normalized internally; a zero axis yields the identity).
func RotationFromAxisAngle(axis [3]float64, angle float64) *mat.Dense {
	n := math.Sqrt(axis[0]*axis[0] + axis[1]*axis[1] + axis[2]*axis[2])
	if n == 0 {
		return Identity().R
	}
	s := math.Sin(angle/2) / n
	return rotationFromUnitQuat(quat.Number{
		Real: math.Cos(angle / 2),
		Imag: s * axis[0],
		Jmag: s * axis[1],
		Kmag: s * axis[2],
	})
}

// rotationFromUnitQuat rotates the three basis vectors by q·e·q* and
// assembles them as matrix columns. q must have unit norm.
func rotationFromUnitQuat(q quat.Number) *mat.Dense {
	conj := quat.Conj(q)
	basis := [3]quat.Number{{Imag: 1}, {Jmag: 1}, {Kmag: 1}}
	out := mat.NewDense(3, 3, nil)
	var c int
	for c = 0; c < 3; c++ {
		v := quat.Mul(quat.Mul(q, basis[c]), conj)
		out.Set(0, c, v.Imag)
		out.Set(1, c, v.Jmag)
		out.Set(2, c, v.Kmag)
	}
	return out
}
