package se3_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlslam/se3"
)

// randomIsometry samples a transform for the algebraic identities.
func randomIsometry(rng *rand.Rand) se3.Isometry {
	return se3.Isometry{
		R: randomRotation(rng),
		T: mat.NewVecDense(3, []float64{
			2*rng.Float64() - 1,
			2*rng.Float64() - 1,
			2*rng.Float64() - 1,
		}),
	}
}

// TestIsometry_MulInverse: x · x⁻¹ is the identity transform.
func TestIsometry_MulInverse(t *testing.T) {
	rng := rand.New(rand.NewSource(19))
	id := se3.Identity()
	for trial := 0; trial < 1000; trial++ {
		x := randomIsometry(rng)
		got := x.Mul(x.Inverse())
		require.Less(t, maxAbsDiff(got.R, id.R), 1e-12, "trial %d rotation", trial)
		for r := 0; r < 3; r++ {
			require.InDelta(t, 0, got.T.AtVec(r), 1e-12, "trial %d translation", trial)
		}
	}
}

// TestIsometry_Apply: a 90° turn about z maps e_x to e_y, then shifts.
func TestIsometry_Apply(t *testing.T) {
	x := se3.Isometry{
		R: se3.RotationFromAxisAngle([3]float64{0, 0, 1}, math.Pi/2),
		T: mat.NewVecDense(3, []float64{1, 2, 3}),
	}
	p := x.Apply(mat.NewVecDense(3, []float64{1, 0, 0}))
	require.InDelta(t, 1, p.AtVec(0), 1e-12)
	require.InDelta(t, 3, p.AtVec(1), 1e-12)
	require.InDelta(t, 3, p.AtVec(2), 1e-12)
}

// TestVectorMQT_RoundTrip: FromVectorMQT(ToVectorMQT(x)) reproduces
// the transform for any rotation (the chart picks one hemisphere, but
// both hemispheres encode the same rotation).
func TestVectorMQT_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(23))
	for trial := 0; trial < 1000; trial++ {
		x := randomIsometry(rng)
		back := se3.FromVectorMQT(se3.ToVectorMQT(x))
		require.Less(t, maxAbsDiff(x.R, back.R), 1e-9, "trial %d rotation", trial)
		for r := 0; r < 3; r++ {
			require.InDelta(t, x.T.AtVec(r), back.T.AtVec(r), 1e-12, "trial %d translation", trial)
		}
	}
}

// TestOplus_Zero: the zero increment is a no-op, the contract the
// numeric differentiation path relies on.
func TestOplus_Zero(t *testing.T) {
	rng := rand.New(rand.NewSource(29))
	x := randomIsometry(rng)
	got := x.Oplus([6]float64{})
	require.Less(t, maxAbsDiff(x.R, got.R), 1e-15)
	for r := 0; r < 3; r++ {
		require.InDelta(t, x.T.AtVec(r), got.T.AtVec(r), 1e-15)
	}
}

// TestRotationFromAxisAngle_Quarter: the 90° turn about z in closed
// form, plus the zero-axis fallback to identity.
func TestRotationFromAxisAngle_Quarter(t *testing.T) {
	got := se3.RotationFromAxisAngle([3]float64{0, 0, 2}, math.Pi/2) // non-unit axis on purpose
	want := mat.NewDense(3, 3, []float64{
		0, -1, 0,
		1, 0, 0,
		0, 0, 1,
	})
	require.Less(t, maxAbsDiff(want, got), 1e-12)

	id := se3.RotationFromAxisAngle([3]float64{}, 1.23)
	require.Less(t, maxAbsDiff(se3.Identity().R, id), 1e-15)
}

// TestRotationOrthonormal: sampled rotations satisfy RᵀR = I and
// det(R) = +1.
func TestRotationOrthonormal(t *testing.T) {
	rng := rand.New(rand.NewSource(31))
	id := se3.Identity().R
	for trial := 0; trial < 1000; trial++ {
		r := randomRotation(rng)
		var gram mat.Dense
		gram.Mul(r.T(), r)
		require.Less(t, maxAbsDiff(id, &gram), 1e-12, "trial %d", trial)
		require.InDelta(t, 1, mat.Det(r), 1e-12, "trial %d", trial)
	}
}
