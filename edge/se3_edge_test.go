package edge_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlslam/edge"
	"github.com/katalvlaran/lvlslam/se3"
)

// fixedPose builds a deterministic non-trivial pose.
func fixedPose(axis [3]float64, angle float64, tx, ty, tz float64) se3.Isometry {
	return se3.Isometry{
		R: se3.RotationFromAxisAngle(axis, angle),
		T: mat.NewVecDense(3, []float64{tx, ty, tz}),
	}
}

// boundMeasuredSE3Edge binds two pose vertices and a measurement.
func boundMeasuredSE3Edge(t *testing.T, xi, xj, z se3.Isometry) *edge.EdgeSE3 {
	t.Helper()
	v0 := edge.NewVertexSE3(0)
	v1 := edge.NewVertexSE3(1)
	v0.SetEstimate(xi)
	v1.SetEstimate(xj)
	e := edge.NewEdgeSE3()
	require.NoError(t, e.SetVertex(0, v0))
	require.NoError(t, e.SetVertex(1, v1))
	e.SetMeasurement(z)
	return e
}

// TestEdgeSE3_ZeroResidual: when the measurement equals the relative
// transform Xi⁻¹·Xj, the residual vanishes.
func TestEdgeSE3_ZeroResidual(t *testing.T) {
	xi := fixedPose([3]float64{1, 0, 1}, 0.8, 0.2, -0.4, 0.9)
	xj := fixedPose([3]float64{0, 1, -1}, -1.3, -0.6, 0.3, 0.1)
	z := xi.Inverse().Mul(xj)
	e := boundMeasuredSE3Edge(t, xi, xj, z)

	res, err := e.ComputeError()
	require.NoError(t, err)
	for r, v := range res {
		require.InDelta(t, 0, v, 1e-12, "component %d", r)
	}

	chi2, err := e.Chi2()
	require.NoError(t, err)
	require.InDelta(t, 0, chi2, 1e-12)
}

// TestEdgeSE3_LinearizeAtIdentity: with all estimates and the
// measurement at identity, the closed-form blocks reduce to
// Ji = [−I 0; 0 −I] and Jj = [I 0; 0 I].
func TestEdgeSE3_LinearizeAtIdentity(t *testing.T) {
	e := boundMeasuredSE3Edge(t, se3.Identity(), se3.Identity(), se3.Identity())
	ws := edge.NewWorkspace()
	require.NoError(t, ws.UpdateSize(e))
	require.NoError(t, ws.Allocate())
	require.NoError(t, e.LinearizeOplus(ws))

	ji, err := ws.BlockForVertex(0)
	require.NoError(t, err)
	jj, err := ws.BlockForVertex(1)
	require.NoError(t, err)
	for r := 0; r < edge.SE3ErrorDim; r++ {
		for c := 0; c < edge.SE3LocalDim; c++ {
			want := 0.0
			if r == c {
				want = 1
			}
			require.InDelta(t, -want, ji.At(r, c), 1e-12, "Ji(%d,%d)", r, c)
			require.InDelta(t, want, jj.At(r, c), 1e-12, "Jj(%d,%d)", r, c)
		}
	}
}

// TestEdgeSE3_TranslationRotationCoupling: with identity rotations and
// a pure translation in Xj, the only off-diagonal analytic block is
// ∂t/∂δq_i = 2·[tp]×.
func TestEdgeSE3_TranslationRotationCoupling(t *testing.T) {
	xj := fixedPose([3]float64{}, 0, 1, 2, 3)
	e := boundMeasuredSE3Edge(t, se3.Identity(), xj, se3.Identity())
	ws := edge.NewWorkspace()
	require.NoError(t, ws.UpdateSize(e))
	require.NoError(t, ws.Allocate())
	require.NoError(t, e.LinearizeOplus(ws))

	ji, err := ws.BlockForVertex(0)
	require.NoError(t, err)
	// 2·[tp]× for tp = (1,2,3)
	want := [3][3]float64{
		{0, -6, 4},
		{6, 0, -2},
		{-4, 2, 0},
	}
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			require.InDelta(t, want[r][c], ji.At(r, 3+c), 1e-12, "Ji(%d,%d)", r, 3+c)
		}
	}
}

// TestEdgeSE3_WorkspaceMismatch: a workspace negotiated for a smaller
// edge cannot be bound.
func TestEdgeSE3_WorkspaceMismatch(t *testing.T) {
	small := edge.NewWorkspace()
	pe := edge.NewEdgePointXYZ()
	require.NoError(t, pe.SetVertex(0, edge.NewVertexPointXYZ(0)))
	require.NoError(t, pe.SetVertex(1, edge.NewVertexPointXYZ(1)))
	require.NoError(t, small.UpdateSize(pe))
	require.NoError(t, small.Allocate())

	e := boundMeasuredSE3Edge(t, se3.Identity(), se3.Identity(), se3.Identity())
	require.ErrorIs(t, e.LinearizeOplus(small), edge.ErrWorkspaceSizeMismatch)
}

// TestEdgeSE3_Preconditions: sentinels for unbound endpoints, missing
// measurement, wrong vertex variant and unbound numeric workspace.
func TestEdgeSE3_Preconditions(t *testing.T) {
	e := edge.NewEdgeSE3()
	_, err := e.ComputeError()
	require.ErrorIs(t, err, edge.ErrVertexNotSet)

	require.ErrorIs(t, e.SetVertex(0, edge.NewVertexPointXYZ(0)), edge.ErrVertexType)
	require.NoError(t, e.SetVertex(0, edge.NewVertexSE3(0)))
	require.NoError(t, e.SetVertex(1, edge.NewVertexSE3(1)))

	_, err = e.ComputeError()
	require.ErrorIs(t, err, edge.ErrNoMeasurement)

	e.SetMeasurement(se3.Identity())
	require.ErrorIs(t, e.LinearizeNumeric(), edge.ErrWorkspaceNotBound)
}

// TestEdgeSE3_MeasurementRoundTrip: Measurement returns what was set.
func TestEdgeSE3_MeasurementRoundTrip(t *testing.T) {
	z := fixedPose([3]float64{0, 0, 1}, math.Pi/3, 0.5, 0, -0.5)
	e := edge.NewEdgeSE3()
	e.SetMeasurement(z)
	got := e.Measurement()
	require.Equal(t, z.T.AtVec(0), got.T.AtVec(0))
	require.Equal(t, z.R.At(0, 1), got.R.At(0, 1))
}
