// Package verify - manifold value samplers.
package verify

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlslam/se3"
)

// boxVec draws a vector uniform in the cube [-1, 1]³.
func boxVec(rng *rand.Rand) [3]float64 {
	return [3]float64{
		2*rng.Float64() - 1,
		2*rng.Float64() - 1,
		2*rng.Float64() - 1,
	}
}

// RandomRotation samples a rotation matrix via randomized axis-angle:
// the sum of two uniform box vectors supplies both the axis (its
// direction) and the angle (its norm, up to 2√3 rad). The resulting
// distribution is broad and non-degenerate across both branches of
// the quaternion chart.
func RandomRotation(rng *rand.Rand) *mat.Dense {
	a := boxVec(rng)
	b := boxVec(rng)
	v := [3]float64{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
	angle := math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
	return se3.RotationFromAxisAngle(v, angle)
}

// RandomIsometry samples a rigid transform: RandomRotation plus a
// translation uniform in [-1, 1]³.
func RandomIsometry(rng *rand.Rand) se3.Isometry {
	t := boxVec(rng)
	return se3.Isometry{
		R: RandomRotation(rng),
		T: mat.NewVecDense(3, []float64{t[0], t[1], t[2]}),
	}
}

// RandomPoint samples a 3D point uniform in [-1, 1]³.
func RandomPoint(rng *rand.Rand) *mat.VecDense {
	p := boxVec(rng)
	return mat.NewVecDense(3, []float64{p[0], p[1], p[2]})
}
