// Package edge - the pose-pose edge.
//
// EdgeSE3 relates two rigid poses through a relative-transform
// measurement Z. Its residual is the MQT vectorization of the error
// transform E = Z⁻¹·Xi⁻¹·Xj, and its analytic Jacobian chains the
// closed-form quaternion-chart derivative (se3.DQuatDRotation) with
// the first-order expansion of the right-multiplicative Oplus
// increment, dR(δq)/dδq_a at zero = 2·[e_a]×.
package edge

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlslam/se3"
)

// SE3ErrorDim is the error dimension of EdgeSE3: 3 translation + 3
// quaternion-vector components.
const SE3ErrorDim = 6

// EdgeSE3 is a binary edge between two VertexSE3 endpoints with an
// se3.Isometry measurement.
type EdgeSE3 struct {
	baseBinaryEdge
	meas    se3.Isometry
	measInv se3.Isometry
	hasMeas bool
}

// NewEdgeSE3 returns an edge with unbound endpoints, no measurement
// and identity information.
func NewEdgeSE3() *EdgeSE3 {
	return &EdgeSE3{baseBinaryEdge: newBaseBinaryEdge(SE3ErrorDim)}
}

// SetVertex binds a *VertexSE3 endpoint to slot ∈ {0, 1}.
func (e *EdgeSE3) SetVertex(slot int, v Vertex) error {
	if v != nil {
		if _, ok := v.(*VertexSE3); !ok {
			return ErrVertexType
		}
	}
	return e.bindVertex(slot, v)
}

// SetMeasurement stores the relative-transform measurement Z and
// caches its inverse for error and Jacobian evaluation.
func (e *EdgeSE3) SetMeasurement(z se3.Isometry) {
	e.meas = z
	e.measInv = z.Inverse()
	e.hasMeas = true
}

// Measurement returns the stored measurement.
func (e *EdgeSE3) Measurement() se3.Isometry { return e.meas }

// ComputeError returns ToVectorMQT(Z⁻¹·Xi⁻¹·Xj), length 6.
func (e *EdgeSE3) ComputeError() ([]float64, error) {
	xi, xj, err := e.endpoints()
	if err != nil {
		return nil, err
	}
	delta := e.measInv.Mul(xi.Estimate().Inverse()).Mul(xj.Estimate())
	v := se3.ToVectorMQT(delta)
	return v[:], nil
}

// Chi2 returns eᵀ·Ω·e at the current estimates.
func (e *EdgeSE3) Chi2() (float64, error) { return e.chi2(e) }

// LinearizeNumeric overwrites the bound workspace with central
// differences of ComputeError.
func (e *EdgeSE3) LinearizeNumeric() error { return e.linearizeNumeric(e) }

// LinearizeOplus writes the closed-form Jacobian blocks into ws and
// binds ws to the edge.
//
// With A = Z⁻¹ = (Ra, ·), P = Xi⁻¹·Xj = (Rp, tp) and E = A·P = (Re, te):
//
//	∂te/∂δt_i = −Ra          ∂te/∂δq_i = 2·Ra·[tp]×
//	∂te/∂δt_j = Re           ∂te/∂δq_j = 0
//	∂q/∂δt_i  = 0            ∂q/∂δq_i  = dq_dR(Re)·vec(−2·Ra·[e_a]×·Rp)
//	∂q/∂δt_j  = 0            ∂q/∂δq_j  = dq_dR(Re)·vec(2·Re·[e_a]×)
//
// where vec is the column-major flattening matching DQuatDRotation.
func (e *EdgeSE3) LinearizeOplus(ws *Workspace) error {
	xi, xj, err := e.endpoints()
	if err != nil {
		return err
	}
	if err = e.bindWorkspace(ws); err != nil {
		return err
	}

	a := e.measInv
	p := xi.Estimate().Inverse().Mul(xj.Estimate())
	eiso := a.Mul(p)
	dqdr := se3.DQuatDRotation(eiso.R)

	ji, _ := ws.BlockForVertex(0)
	jj, _ := ws.BlockForVertex(1)
	ji.Zero()
	jj.Zero()

	tp := [3]float64{p.T.AtVec(0), p.T.AtVec(1), p.T.AtVec(2)}
	var row, col, axis int

	// translation rows, translation columns
	for row = 0; row < 3; row++ {
		for col = 0; col < 3; col++ {
			ji.Set(row, col, -a.R.At(row, col))
			jj.Set(row, col, eiso.R.At(row, col))
		}
	}

	// translation rows, rotation columns of endpoint 0: 2·Ra·[tp]×
	for axis = 0; axis < 3; axis++ {
		c := mulVec3(a.R, cross3(tp, unit3(axis)))
		for row = 0; row < 3; row++ {
			ji.Set(row, 3+axis, 2*c[row])
		}
	}

	// rotation rows via the chart chain rule
	var flat [9]float64
	for axis = 0; axis < 3; axis++ {
		// endpoint 0: −2·Ra·[e_axis]×·Rp, column by column
		for col = 0; col < 3; col++ {
			c := mulVec3(a.R, cross3(unit3(axis), matCol3(p.R, col)))
			flat[3*col] = -2 * c[0]
			flat[3*col+1] = -2 * c[1]
			flat[3*col+2] = -2 * c[2]
		}
		q := mulFlat(dqdr, flat)
		for row = 0; row < 3; row++ {
			ji.Set(3+row, 3+axis, q[row])
		}

		// endpoint 1: 2·Re·[e_axis]×
		for col = 0; col < 3; col++ {
			c := mulVec3(eiso.R, cross3(unit3(axis), unit3(col)))
			flat[3*col] = 2 * c[0]
			flat[3*col+1] = 2 * c[1]
			flat[3*col+2] = 2 * c[2]
		}
		q = mulFlat(dqdr, flat)
		for row = 0; row < 3; row++ {
			jj.Set(3+row, 3+axis, q[row])
		}
	}
	return nil
}

// endpoints returns the two typed endpoints, checking binding and
// measurement preconditions.
func (e *EdgeSE3) endpoints() (*VertexSE3, *VertexSE3, error) {
	v0, v1, err := e.vertexPair()
	if err != nil {
		return nil, nil, err
	}
	if !e.hasMeas {
		return nil, nil, ErrNoMeasurement
	}
	return v0.(*VertexSE3), v1.(*VertexSE3), nil
}

// unit3 returns the standard basis vector e_a.
func unit3(a int) [3]float64 {
	var v [3]float64
	v[a] = 1
	return v
}

// cross3 returns u × v.
func cross3(u, v [3]float64) [3]float64 {
	return [3]float64{
		u[1]*v[2] - u[2]*v[1],
		u[2]*v[0] - u[0]*v[2],
		u[0]*v[1] - u[1]*v[0],
	}
}

// matCol3 extracts column c of a 3×3 matrix.
func matCol3(m mat.Matrix, c int) [3]float64 {
	return [3]float64{m.At(0, c), m.At(1, c), m.At(2, c)}
}

// mulVec3 returns m·v for a 3×3 matrix.
func mulVec3(m mat.Matrix, v [3]float64) [3]float64 {
	var out [3]float64
	for r := 0; r < 3; r++ {
		out[r] = m.At(r, 0)*v[0] + m.At(r, 1)*v[1] + m.At(r, 2)*v[2]
	}
	return out
}

// mulFlat multiplies the 3×9 chart Jacobian by a column-major
// flattened 3×3 matrix.
func mulFlat(j mat.Matrix, flat [9]float64) [3]float64 {
	var out [3]float64
	for r := 0; r < 3; r++ {
		s := 0.0
		for p := 0; p < 9; p++ {
			s += j.At(r, p) * flat[p]
		}
		out[r] = s
	}
	return out
}

var _ BinaryEdge = (*EdgeSE3)(nil)
